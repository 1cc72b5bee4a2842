// Package docedit is the editing core of a structured rich-text document.
// It owns an in-memory document tree, applies structural and inline
// mutations to it, and supports linear undo/redo over full document
// snapshots.
//
// Basic usage:
//
//	ed := docedit.New()
//	ed.InsertTable(2, 2)
//	ed.SetCellText(0, 0, "A")
//	ed.MergeCells(0, 0, 1, 1)
//	html := ed.ToHTML()
//
// Every mutating method first records an undo snapshot, then mutates the
// tree. Out-of-range indices never fail loudly: the operation is silently
// clamped or becomes a no-op, matching the behavior a UI event loop expects.
// A snapshot is taken even when the mutation turns out to be a no-op; the
// resulting no-op undo step is harmless.
//
// The core does not track live selections. Callers holding anchors translate
// them across structural table edits with the pure mapping functions in the
// selection package, invoked in lockstep with each structural call.
//
// An Editor serializes nothing itself beyond the document JSON wire format;
// the htmlconv, markdown, and delta packages convert documents at the
// boundary as pure functions.
package docedit

import (
	"github.com/tsawler/docedit/history"
	"github.com/tsawler/docedit/model"
)

// Editor is a single-writer editing session: a document and its undo/redo
// history, owned together. Editors are not safe for concurrent use; the
// caller serializes all operations.
type Editor struct {
	doc  *model.Document
	hist *history.History
}

// New creates an editor with an empty document.
func New() *Editor {
	return &Editor{
		doc:  model.NewDocument(),
		hist: history.New(),
	}
}

// FromDocument creates an editor over an existing document. The editor takes
// ownership of the document.
func FromDocument(doc *model.Document) *Editor {
	ed := New()
	if doc != nil {
		ed.doc = doc
	}
	return ed
}

// FromJSON creates an editor from a document in the JSON wire format.
// Malformed input yields an editor with an empty document rather than an
// error.
func FromJSON(data []byte) *Editor {
	ed := New()
	var doc model.Document
	if err := (&doc).UnmarshalJSON(data); err == nil {
		ed.doc = &doc
	}
	return ed
}

// Document returns the document being edited. Mutating it directly bypasses
// history; prefer the Editor methods.
func (e *Editor) Document() *model.Document {
	return e.doc
}

// ToJSON serializes the document to the JSON wire format.
func (e *Editor) ToJSON() []byte {
	data, err := e.doc.MarshalJSON()
	if err != nil {
		return []byte("{}")
	}
	return data
}

// record pushes an undo snapshot of the current document. Every mutating
// method calls it exactly once, before touching the tree.
func (e *Editor) record() {
	e.hist.RecordBeforeChange(e.doc)
}

// Undo restores the document state preceding the last mutation. It returns
// false when there is nothing to undo.
func (e *Editor) Undo() bool {
	prev, ok := e.hist.Undo(e.doc)
	if !ok {
		return false
	}
	e.doc = prev
	return true
}

// Redo restores the state undone by the last Undo. It returns false when
// there is nothing to redo.
func (e *Editor) Redo() bool {
	next, ok := e.hist.Redo(e.doc)
	if !ok {
		return false
	}
	e.doc = next
	return true
}

// CanUndo reports whether Undo would succeed.
func (e *Editor) CanUndo() bool { return e.hist.CanUndo() }

// CanRedo reports whether Redo would succeed.
func (e *Editor) CanRedo() bool { return e.hist.CanRedo() }

// ClearHistory drops all undo and redo snapshots.
func (e *Editor) ClearHistory() { e.hist.Clear() }
