package docedit

import (
	"github.com/tsawler/docedit/inline"
	"github.com/tsawler/docedit/model"
	"github.com/tsawler/docedit/table"
)

// Table operations come in two addressing forms. The methods taking an
// explicit table node index (the InTable variants) are preferred and support
// documents with multiple tables. The short forms address the first table
// node in the document, a convenience kept for callers written against the
// single-table API. All forms snapshot first and silently no-op on
// out-of-range coordinates.

// InsertTable appends a rows x cols table with default-width columns.
func (e *Editor) InsertTable(rows, cols int) {
	e.record()
	e.doc.InsertNode(e.doc.NodeCount(), model.NewTable(rows, cols))
}

// InsertTableAfter inserts a rows x cols table after the given node index.
func (e *Editor) InsertTableAfter(after, rows, cols int) {
	e.record()
	e.doc.InsertNode(after+1, model.NewTable(rows, cols))
}

// firstTable resolves the legacy "first table in the document" address.
func (e *Editor) firstTable() *model.Table {
	idx, ok := e.doc.FirstTableIndex()
	if !ok {
		return nil
	}
	return e.doc.TableAt(idx)
}

// InsertRow inserts a row into the first table at the given index.
func (e *Editor) InsertRow(at int) {
	e.record()
	if t := e.firstTable(); t != nil {
		table.InsertRow(t, at)
	}
}

// InsertRowInTable inserts a row into the table at the given node index.
func (e *Editor) InsertRowInTable(tableIndex, at int) {
	e.record()
	if t := e.doc.TableAt(tableIndex); t != nil {
		table.InsertRow(t, at)
	}
}

// DeleteRow removes a row from the first table.
func (e *Editor) DeleteRow(at int) {
	e.record()
	if t := e.firstTable(); t != nil {
		table.DeleteRow(t, at)
	}
}

// DeleteRowInTable removes a row from the table at the given node index.
func (e *Editor) DeleteRowInTable(tableIndex, at int) {
	e.record()
	if t := e.doc.TableAt(tableIndex); t != nil {
		table.DeleteRow(t, at)
	}
}

// MoveRow moves a row of the first table from one index to another.
func (e *Editor) MoveRow(from, to int) {
	e.record()
	if t := e.firstTable(); t != nil {
		table.MoveRow(t, from, to)
	}
}

// MoveRowInTable moves a row of the table at the given node index.
func (e *Editor) MoveRowInTable(tableIndex, from, to int) {
	e.record()
	if t := e.doc.TableAt(tableIndex); t != nil {
		table.MoveRow(t, from, to)
	}
}

// InsertColumn inserts a column into the first table at the given index.
func (e *Editor) InsertColumn(at int) {
	e.record()
	if t := e.firstTable(); t != nil {
		table.InsertColumn(t, at)
	}
}

// InsertColumnInTable inserts a column into the table at the given node
// index.
func (e *Editor) InsertColumnInTable(tableIndex, at int) {
	e.record()
	if t := e.doc.TableAt(tableIndex); t != nil {
		table.InsertColumn(t, at)
	}
}

// DeleteColumn removes a column from the first table.
func (e *Editor) DeleteColumn(at int) {
	e.record()
	if t := e.firstTable(); t != nil {
		table.DeleteColumn(t, at)
	}
}

// DeleteColumnInTable removes a column from the table at the given node
// index.
func (e *Editor) DeleteColumnInTable(tableIndex, at int) {
	e.record()
	if t := e.doc.TableAt(tableIndex); t != nil {
		table.DeleteColumn(t, at)
	}
}

// MoveColumn moves a column of the first table from one index to another.
func (e *Editor) MoveColumn(from, to int) {
	e.record()
	if t := e.firstTable(); t != nil {
		table.MoveColumn(t, from, to)
	}
}

// MoveColumnInTable moves a column of the table at the given node index.
func (e *Editor) MoveColumnInTable(tableIndex, from, to int) {
	e.record()
	if t := e.doc.TableAt(tableIndex); t != nil {
		table.MoveColumn(t, from, to)
	}
}

// MergeCells merges the rectangle spanned by two corner coordinates in the
// first table.
func (e *Editor) MergeCells(r1, c1, r2, c2 int) {
	e.record()
	if t := e.firstTable(); t != nil {
		table.MergeCells(t, r1, c1, r2, c2)
	}
}

// MergeCellsInTable merges a rectangle in the table at the given node index.
func (e *Editor) MergeCellsInTable(tableIndex, r1, c1, r2, c2 int) {
	e.record()
	if t := e.doc.TableAt(tableIndex); t != nil {
		table.MergeCells(t, r1, c1, r2, c2)
	}
}

// SplitCell splits the cell at (row, col) of the first table back into unit
// cells.
func (e *Editor) SplitCell(row, col int) {
	e.record()
	if t := e.firstTable(); t != nil {
		table.SplitCell(t, row, col)
	}
}

// SplitCellInTable splits a cell in the table at the given node index.
func (e *Editor) SplitCellInTable(tableIndex, row, col int) {
	e.record()
	if t := e.doc.TableAt(tableIndex); t != nil {
		table.SplitCell(t, row, col)
	}
}

// SetCellText replaces the text of a cell in the first table.
func (e *Editor) SetCellText(row, col int, text string) {
	e.record()
	if t := e.firstTable(); t != nil {
		table.SetCellText(t, row, col, text)
	}
}

// SetCellTextInTable replaces the text of a cell in the table at the given
// node index.
func (e *Editor) SetCellTextInTable(tableIndex, row, col int, text string) {
	e.record()
	if t := e.doc.TableAt(tableIndex); t != nil {
		table.SetCellText(t, row, col, text)
	}
}

// SetCellStyle merges a JSON style payload into a cell of the first table,
// field by field. An unparseable payload aborts only the style application.
func (e *Editor) SetCellStyle(row, col int, styleJSON string) {
	e.record()
	t := e.firstTable()
	if t == nil {
		return
	}
	if style, ok := table.ParseCellStyle(styleJSON); ok {
		table.ApplyCellStyle(t, row, col, style)
	}
}

// SetCellStyleInTable merges a JSON style payload into a cell of the table
// at the given node index.
func (e *Editor) SetCellStyleInTable(tableIndex, row, col int, styleJSON string) {
	e.record()
	t := e.doc.TableAt(tableIndex)
	if t == nil {
		return
	}
	if style, ok := table.ParseCellStyle(styleJSON); ok {
		table.ApplyCellStyle(t, row, col, style)
	}
}

// SetCellTextStyle applies an inline style delta to a byte range of a cell's
// text in the first table.
func (e *Editor) SetCellTextStyle(row, col, start, end int, styleJSON string) {
	e.record()
	if t := e.firstTable(); t != nil {
		applyCellTextStyle(t, row, col, start, end, styleJSON)
	}
}

// SetCellTextStyleInTable applies an inline style delta to a byte range of a
// cell's text in the table at the given node index.
func (e *Editor) SetCellTextStyleInTable(tableIndex, row, col, start, end int, styleJSON string) {
	e.record()
	if t := e.doc.TableAt(tableIndex); t != nil {
		applyCellTextStyle(t, row, col, start, end, styleJSON)
	}
}

func applyCellTextStyle(t *model.Table, row, col, start, end int, styleJSON string) {
	cell := t.Cell(row, col)
	if cell == nil {
		return
	}
	delta, ok := inline.ParseStyleDelta(styleJSON)
	if !ok {
		return
	}
	cell.Spans = inline.Apply(cell.Text, cell.Spans, start, end, delta)
}

// SetColumnWidth sets a column width on the first table, clamped to the
// minimum width.
func (e *Editor) SetColumnWidth(col, px int) {
	e.record()
	if t := e.firstTable(); t != nil {
		table.SetColumnWidth(t, col, px)
	}
}

// SetColumnWidthInTable sets a column width on the table at the given node
// index.
func (e *Editor) SetColumnWidthInTable(tableIndex, col, px int) {
	e.record()
	if t := e.doc.TableAt(tableIndex); t != nil {
		table.SetColumnWidth(t, col, px)
	}
}

// SetRowHeight sets a row height on the first table, clamped to the minimum
// height.
func (e *Editor) SetRowHeight(row, px int) {
	e.record()
	if t := e.firstTable(); t != nil {
		table.SetRowHeight(t, row, px)
	}
}

// SetRowHeightInTable sets a row height on the table at the given node
// index.
func (e *Editor) SetRowHeightInTable(tableIndex, row, px int) {
	e.record()
	if t := e.doc.TableAt(tableIndex); t != nil {
		table.SetRowHeight(t, row, px)
	}
}

// SetFreeze sets the freeze flags on the first table.
func (e *Editor) SetFreeze(header, firstCol bool) {
	e.record()
	if t := e.firstTable(); t != nil {
		table.SetFreeze(t, header, firstCol)
	}
}

// SetFreezeInTable sets the freeze flags on the table at the given node
// index.
func (e *Editor) SetFreezeInTable(tableIndex int, header, firstCol bool) {
	e.record()
	if t := e.doc.TableAt(tableIndex); t != nil {
		table.SetFreeze(t, header, firstCol)
	}
}
