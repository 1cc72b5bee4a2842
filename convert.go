package docedit

import (
	"io"

	"github.com/tidwall/gjson"

	"github.com/tsawler/docedit/delta"
	"github.com/tsawler/docedit/htmlconv"
	"github.com/tsawler/docedit/markdown"
)

// ToHTML renders the document as an HTML fragment.
func (e *Editor) ToHTML() string {
	return htmlconv.Export(e.doc)
}

// ToMarkdown renders the document as Markdown.
func (e *Editor) ToMarkdown() string {
	return markdown.Export(e.doc)
}

// ToDelta renders the document as a delta op-log JSON string.
func (e *Editor) ToDelta() string {
	return delta.Export(e.doc)
}

// ApplyDelta replaces the document with one built from a delta op-log. The
// previous document is recorded for undo. Invalid JSON leaves the document
// unchanged.
func (e *Editor) ApplyDelta(opsJSON string) {
	e.record()
	if !gjson.Valid(opsJSON) {
		return
	}
	e.doc = delta.Import(opsJSON)
}

// ImportHTML replaces the document with one parsed from HTML. The previous
// document is recorded for undo.
func (e *Editor) ImportHTML(r io.Reader) error {
	doc, err := htmlconv.Import(r)
	if err != nil {
		return err
	}
	e.record()
	e.doc = doc
	return nil
}
