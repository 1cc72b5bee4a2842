package table

import (
	"github.com/tidwall/gjson"

	"github.com/tsawler/docedit/model"
)

// ParseCellStyle reads a cell style from a JSON payload such as
// {"background":"#fee","border":{"color":"#333","width_px":2}}. Parsing is
// tolerant: recognized fields are read, invalid or unrecognized ones are
// ignored field by field. The second return value is false when the payload
// is not valid JSON at all.
func ParseCellStyle(styleJSON string) (model.CellStyle, bool) {
	if !gjson.Valid(styleJSON) {
		return model.CellStyle{}, false
	}
	v := gjson.Parse(styleJSON)
	var style model.CellStyle
	if bg := v.Get("background"); bg.Type == gjson.String {
		style.Background = bg.String()
	}
	if border := v.Get("border"); border.IsObject() {
		b := model.BorderStyle{Color: "#000", WidthPx: 1}
		if c := border.Get("color"); c.Type == gjson.String {
			b.Color = c.String()
		}
		if w := border.Get("width_px"); w.Type == gjson.Number {
			b.WidthPx = int(w.Int())
		}
		style.Border = &b
	}
	return style, true
}

// ApplyCellStyle merges a parsed style into the cell at (row, col),
// field by field: present incoming fields overwrite, absent ones leave the
// existing value alone. Out-of-range coordinates are a no-op.
func ApplyCellStyle(t *model.Table, row, col int, style model.CellStyle) {
	cell := t.Cell(row, col)
	if cell == nil {
		return
	}
	cell.Style.Merge(style)
}

// ApplyRowStyle merges a parsed style into every cell of a row.
// Out-of-range rows are a no-op.
func ApplyRowStyle(t *model.Table, row int, style model.CellStyle) {
	if row < 0 || row >= len(t.Rows) {
		return
	}
	for c := range t.Rows[row].Cells {
		t.Rows[row].Cells[c].Style.Merge(style)
	}
}

// ApplyColumnStyle merges a parsed style into every cell of a column.
// Rows narrower than the column index are skipped.
func ApplyColumnStyle(t *model.Table, col int, style model.CellStyle) {
	if col < 0 {
		return
	}
	for r := range t.Rows {
		if col < len(t.Rows[r].Cells) {
			t.Rows[r].Cells[col].Style.Merge(style)
		}
	}
}

// SetCellText replaces the text of the cell at (row, col) and drops any
// stale span list. Out-of-range coordinates are a no-op.
func SetCellText(t *model.Table, row, col int, text string) {
	cell := t.Cell(row, col)
	if cell == nil {
		return
	}
	if cell.Text != text {
		cell.Spans = nil
	}
	cell.Text = text
}
