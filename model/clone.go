package model

// Clone returns a deep copy of the document. Cloning the document is the
// unit of undo/redo snapshotting, so every node, span, cell, and thread is
// copied; the clone shares no mutable state with the original.
func (d *Document) Clone() *Document {
	out := &Document{}
	if d.Nodes != nil {
		out.Nodes = make([]Node, len(d.Nodes))
		for i, n := range d.Nodes {
			out.Nodes[i] = n.Clone()
		}
	}
	if d.Threads != nil {
		out.Threads = make([]CommentThread, len(d.Threads))
		for i := range d.Threads {
			out.Threads[i] = d.Threads[i].clone()
		}
	}
	return out
}

func cloneSpans(spans []InlineSpan) []InlineSpan {
	if spans == nil {
		return nil
	}
	out := make([]InlineSpan, len(spans))
	copy(out, spans)
	return out
}

// Clone returns a deep copy of the paragraph.
func (p *Paragraph) Clone() Node {
	return &Paragraph{Text: p.Text, Spans: cloneSpans(p.Spans)}
}

// Clone returns a deep copy of the heading.
func (h *Heading) Clone() Node {
	return &Heading{Level: h.Level, Text: h.Text, Spans: cloneSpans(h.Spans)}
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() Node {
	out := &Table{
		FreezeHeader:   t.FreezeHeader,
		FreezeFirstCol: t.FreezeFirstCol,
	}
	if t.ColumnWidths != nil {
		out.ColumnWidths = make([]int, len(t.ColumnWidths))
		copy(out.ColumnWidths, t.ColumnWidths)
	}
	if t.Rows != nil {
		out.Rows = make([]TableRow, len(t.Rows))
		for i, row := range t.Rows {
			cells := make([]TableCell, len(row.Cells))
			for j, cell := range row.Cells {
				cells[j] = cell.clone()
			}
			out.Rows[i] = TableRow{Cells: cells, HeightPx: row.HeightPx}
		}
	}
	return out
}

func (c TableCell) clone() TableCell {
	out := c
	out.Spans = cloneSpans(c.Spans)
	if c.Style.Border != nil {
		b := *c.Style.Border
		out.Style.Border = &b
	}
	return out
}

// Clone returns a copy of the image node.
func (i *Image) Clone() Node {
	out := *i
	return &out
}

// Clone returns a copy of the media node.
func (m *Media) Clone() Node {
	out := *m
	return &out
}

// Clone returns a copy of the inline formula node.
func (f *FormulaInline) Clone() Node {
	out := *f
	return &out
}

// Clone returns a copy of the block formula node.
func (f *FormulaBlock) Clone() Node {
	out := *f
	return &out
}

// Clone returns a deep copy of the multiple-choice block.
func (m *MultipleChoiceBlock) Clone() Node {
	out := &MultipleChoiceBlock{Question: m.Question, Multiple: m.Multiple}
	if m.Options != nil {
		out.Options = make([]ChoiceOption, len(m.Options))
		copy(out.Options, m.Options)
	}
	return out
}

// Clone returns a copy of the info box node.
func (b *InfoBox) Clone() Node {
	out := *b
	return &out
}

// Clone returns a copy of the comment anchor node.
func (c *CommentAnchor) Clone() Node {
	out := *c
	return &out
}

func (t CommentThread) clone() CommentThread {
	out := t
	if t.Messages != nil {
		out.Messages = make([]CommentMessage, len(t.Messages))
		copy(out.Messages, t.Messages)
	}
	if t.Anchor != nil {
		a := *t.Anchor
		out.Anchor = &a
	}
	return out
}
