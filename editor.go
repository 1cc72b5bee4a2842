package docedit

import (
	"fmt"

	"github.com/tsawler/docedit/inline"
	"github.com/tsawler/docedit/model"
	"github.com/tsawler/docedit/selection"
)

// InsertNode inserts a node at the given index, clamped to [0, len].
func (e *Editor) InsertNode(at int, n model.Node) {
	e.record()
	e.doc.InsertNode(at, n)
}

// DeleteNode removes the node at the given index. Out-of-range indices are a
// no-op.
func (e *Editor) DeleteNode(at int) {
	e.record()
	e.doc.DeleteNode(at)
}

// InsertParagraph inserts a paragraph at the given index, clamped to
// [0, len].
func (e *Editor) InsertParagraph(at int, text string) {
	e.record()
	e.doc.InsertNode(at, &model.Paragraph{Text: text})
}

// InsertHeading inserts a heading at the given index, clamped to [0, len].
func (e *Editor) InsertHeading(at, level int, text string) {
	e.record()
	e.doc.InsertNode(at, &model.Heading{Level: level, Text: text})
}

// SetParagraphText replaces the text of the paragraph at the given index.
// The call is a no-op when the node is not a paragraph. Any stale span list
// is dropped so spans keep concatenating to the text.
func (e *Editor) SetParagraphText(index int, text string) {
	e.record()
	p, ok := e.doc.NodeAt(index).(*model.Paragraph)
	if !ok {
		return
	}
	if p.Text != text {
		p.Spans = nil
	}
	p.Text = text
}

// SetHeadingText replaces the text of the heading at the given index. The
// call is a no-op when the node is not a heading.
func (e *Editor) SetHeadingText(index int, text string) {
	e.record()
	h, ok := e.doc.NodeAt(index).(*model.Heading)
	if !ok {
		return
	}
	if h.Text != text {
		h.Spans = nil
	}
	h.Text = text
}

// SetTextStyle applies a style delta, given as a JSON payload, to the byte
// range [start, end) of the paragraph or heading at the given index. An
// unparseable payload aborts only this style application; unrecognized
// fields within a valid payload are ignored field by field.
func (e *Editor) SetTextStyle(index, start, end int, styleJSON string) {
	e.record()
	delta, ok := inline.ParseStyleDelta(styleJSON)
	if !ok {
		return
	}
	switch n := e.doc.NodeAt(index).(type) {
	case *model.Paragraph:
		n.Spans = inline.Apply(n.Text, n.Spans, start, end, delta)
	case *model.Heading:
		n.Spans = inline.Apply(n.Text, n.Spans, start, end, delta)
	}
}

// InsertImageAfter inserts an image node after the given index.
func (e *Editor) InsertImageAfter(after int, src, alt string) {
	e.record()
	e.doc.InsertNode(after+1, &model.Image{Src: src, Alt: alt})
}

// InsertMediaAfter inserts a media node after the given index.
func (e *Editor) InsertMediaAfter(after int, key, contentType string) {
	e.record()
	e.doc.InsertNode(after+1, &model.Media{Key: key, ContentType: contentType})
}

// InsertFormulaInline appends an inline formula node.
func (e *Editor) InsertFormulaInline(tex string) {
	e.record()
	e.doc.InsertNode(e.doc.NodeCount(), &model.FormulaInline{TeX: tex})
}

// InsertFormulaBlock appends a block formula node.
func (e *Editor) InsertFormulaBlock(tex string) {
	e.record()
	e.doc.InsertNode(e.doc.NodeCount(), &model.FormulaBlock{TeX: tex})
}

// InsertFormulaInlineAfter inserts an inline formula node after the given
// index.
func (e *Editor) InsertFormulaInlineAfter(after int, tex string) {
	e.record()
	e.doc.InsertNode(after+1, &model.FormulaInline{TeX: tex})
}

// InsertFormulaBlockAfter inserts a block formula node after the given
// index.
func (e *Editor) InsertFormulaBlockAfter(after int, tex string) {
	e.record()
	e.doc.InsertNode(after+1, &model.FormulaBlock{TeX: tex})
}

// InsertInfoBox appends an info box node.
func (e *Editor) InsertInfoBox(kind, text string) {
	e.record()
	e.doc.InsertNode(e.doc.NodeCount(), &model.InfoBox{Kind: kind, Text: text})
}

// UpdateInfoBox replaces the kind and text of the info box at the given
// index. The call is a no-op when the node is not an info box.
func (e *Editor) UpdateInfoBox(index int, kind, text string) {
	e.record()
	b, ok := e.doc.NodeAt(index).(*model.InfoBox)
	if !ok {
		return
	}
	b.Kind = kind
	b.Text = text
}

// InsertMultipleChoice appends a multiple-choice block seeded with a
// placeholder question and four options.
func (e *Editor) InsertMultipleChoice(multiple bool) {
	e.record()
	block := &model.MultipleChoiceBlock{
		Question: "New question",
		Options: []model.ChoiceOption{
			{Text: "Option A"},
			{Text: "Option B"},
			{Text: "Option C"},
			{Text: "Option D"},
		},
		Multiple: multiple,
	}
	e.doc.InsertNode(e.doc.NodeCount(), block)
}

// UpdateMultipleChoice replaces the content of the multiple-choice block at
// the given index. The call is a no-op when the node is not a
// multiple-choice block.
func (e *Editor) UpdateMultipleChoice(index int, question string, options []model.ChoiceOption, multiple bool) {
	e.record()
	b, ok := e.doc.NodeAt(index).(*model.MultipleChoiceBlock)
	if !ok {
		return
	}
	b.Question = question
	b.Options = options
	b.Multiple = multiple
}

// AddComment appends a new comment thread with a sequential id and a single
// initial message, returning the id. The anchor is optional; nil creates an
// unanchored thread.
func (e *Editor) AddComment(anchor *selection.Range, author, text string, tsMS int64) string {
	e.record()
	id := fmt.Sprintf("thread-%d", len(e.doc.Threads)+1)
	thread := model.NewCommentThread(id, anchor)
	thread.AddMessage(author, text, tsMS)
	e.doc.Threads = append(e.doc.Threads, thread)
	return id
}

// AddCommentMessage appends a message to an existing thread. Unknown ids are
// a no-op.
func (e *Editor) AddCommentMessage(id, author, text string, tsMS int64) {
	e.record()
	t := e.doc.Thread(id)
	if t == nil {
		return
	}
	t.AddMessage(author, text, tsMS)
}

// ResolveComment flips the resolved flag of the matching thread. Unknown ids
// are a no-op. Threads are never removed.
func (e *Editor) ResolveComment(id string, resolved bool) {
	e.record()
	t := e.doc.Thread(id)
	if t == nil {
		return
	}
	t.SetResolved(resolved)
}
