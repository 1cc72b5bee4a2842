package model

import "strings"

// Table represents a table node: ordered rows of cells, optional per-column
// pixel widths, and freeze flags for the header row and first column.
//
// The grid is rectangular: every row's cell count equals the column count
// implied by ColumnWidths (when non-empty) or the first row's length. Merged
// regions keep their covered cells in place, marked as placeholders.
type Table struct {
	Rows           []TableRow
	FreezeHeader   bool
	FreezeFirstCol bool
	// ColumnWidths holds per-column widths in pixels. Empty means auto layout.
	ColumnWidths []int
}

func (t *Table) Type() NodeType { return NodeTypeTable }

// DefaultColumnWidth is the pixel width assigned to newly created columns.
const DefaultColumnWidth = 120

// NewTable creates a table with the given dimensions. Cells are
// default-initialized: empty text, 1x1 span, no style.
func NewTable(rows, cols int) *Table {
	table := &Table{Rows: make([]TableRow, rows)}
	for i := range table.Rows {
		table.Rows[i] = NewTableRow(cols)
	}
	if cols > 0 {
		table.ColumnWidths = make([]int, cols)
		for i := range table.ColumnWidths {
			table.ColumnWidths[i] = DefaultColumnWidth
		}
	}
	return table
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the column count implied by ColumnWidths when non-empty,
// or the first row's length otherwise.
func (t *Table) ColCount() int {
	if len(t.ColumnWidths) > 0 {
		return len(t.ColumnWidths)
	}
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0].Cells)
}

// Cell returns the cell at the given position, or nil when out of range.
func (t *Table) Cell(row, col int) *TableCell {
	if row < 0 || row >= len(t.Rows) {
		return nil
	}
	if col < 0 || col >= len(t.Rows[row].Cells) {
		return nil
	}
	return &t.Rows[row].Cells[col]
}

// HasSpanningCells reports whether any cell spans more than one row or
// column.
func (t *Table) HasSpanningCells() bool {
	for _, row := range t.Rows {
		for _, cell := range row.Cells {
			if cell.ColSpan > 1 || cell.RowSpan > 1 {
				return true
			}
		}
	}
	return false
}

// PlainText returns a tab/newline separated rendering of the cell text,
// skipping placeholder cells.
func (t *Table) PlainText() string {
	var sb strings.Builder
	for i, row := range t.Rows {
		if i > 0 {
			sb.WriteString("\n")
		}
		first := true
		for _, cell := range row.Cells {
			if cell.Placeholder {
				continue
			}
			if !first {
				sb.WriteString("\t")
			}
			sb.WriteString(cell.Text)
			first = false
		}
	}
	return sb.String()
}

// TableRow is an ordered list of cells plus an optional pixel height
// (zero means auto).
type TableRow struct {
	Cells    []TableCell
	HeightPx int
}

// NewTableRow creates a row of default-initialized cells.
func NewTableRow(cols int) TableRow {
	row := TableRow{Cells: make([]TableCell, cols)}
	for i := range row.Cells {
		row.Cells[i] = NewTableCell()
	}
	return row
}

// TableCell represents a single table cell.
//
// For every merged rectangular region exactly one cell, the top-left master,
// carries the region's ColSpan/RowSpan and aggregated text; every other cell
// in the rectangle is a placeholder with cleared text and a 1x1 span.
type TableCell struct {
	Text    string
	Spans   []InlineSpan
	ColSpan int
	RowSpan int
	Style   CellStyle
	// Placeholder marks a cell covered by a spanning master cell. Renderers
	// skip it.
	Placeholder bool
}

// NewTableCell returns an empty 1x1 cell.
func NewTableCell() TableCell {
	return TableCell{ColSpan: 1, RowSpan: 1}
}

// CellStyle represents cell styling. Zero values mean "not set".
type CellStyle struct {
	Background string       `json:"background,omitempty"`
	Border     *BorderStyle `json:"border,omitempty"`
}

// Merge overlays the set fields of incoming onto the style: a present
// incoming field overwrites, an absent one leaves the existing value alone.
func (s *CellStyle) Merge(incoming CellStyle) {
	if incoming.Background != "" {
		s.Background = incoming.Background
	}
	if incoming.Border != nil {
		b := *incoming.Border
		s.Border = &b
	}
}

// BorderStyle describes a cell border.
type BorderStyle struct {
	Color   string `json:"color"`
	WidthPx int    `json:"width_px"`
}
