package table

import "github.com/tsawler/docedit/model"

const (
	// MinColumnWidth is the smallest column width a setter will accept.
	MinColumnWidth = 20
	// MinRowHeight is the smallest row height a setter will accept.
	MinRowHeight = 12
)

// InsertRow inserts a default-initialized row at the given index, clamped to
// [0, RowCount]. The new row's cell count matches the table's column count.
func InsertRow(t *model.Table, at int) {
	cols := t.ColCount()
	if len(t.Rows) > 0 && len(t.Rows[0].Cells) > cols {
		cols = len(t.Rows[0].Cells)
	}
	row := model.NewTableRow(cols)
	idx := clampIndex(at, len(t.Rows))
	t.Rows = append(t.Rows, model.TableRow{})
	copy(t.Rows[idx+1:], t.Rows[idx:])
	t.Rows[idx] = row
}

// DeleteRow removes the row at the given index. Out-of-range indices are a
// no-op.
func DeleteRow(t *model.Table, at int) {
	if at < 0 || at >= len(t.Rows) {
		return
	}
	t.Rows = append(t.Rows[:at], t.Rows[at+1:]...)
}

// MoveRow removes the row at from and reinserts it at to. Both indices are
// clamped independently to the valid range; the move is a no-op when they
// coincide after clamping.
func MoveRow(t *model.Table, from, to int) {
	n := len(t.Rows)
	if n == 0 {
		return
	}
	from = clampIndex(from, n-1)
	to = clampIndex(to, n-1)
	if from == to {
		return
	}
	row := t.Rows[from]
	t.Rows = append(t.Rows[:from], t.Rows[from+1:]...)
	t.Rows = append(t.Rows, model.TableRow{})
	copy(t.Rows[to+1:], t.Rows[to:])
	t.Rows[to] = row
}

// InsertColumn inserts a default-initialized column at the given index,
// clamped to [0, ColCount]. The width list gains an entry with the default
// width; a table using auto layout is first given explicit widths so the
// list stays in step with the grid.
func InsertColumn(t *model.Table, at int) {
	if len(t.ColumnWidths) == 0 {
		if cols := t.ColCount(); cols > 0 {
			t.ColumnWidths = make([]int, cols)
			for i := range t.ColumnWidths {
				t.ColumnWidths[i] = model.DefaultColumnWidth
			}
		}
	}
	idx := clampIndex(at, len(t.ColumnWidths))
	for i := range t.Rows {
		ci := clampIndex(at, len(t.Rows[i].Cells))
		cells := t.Rows[i].Cells
		cells = append(cells, model.TableCell{})
		copy(cells[ci+1:], cells[ci:])
		cells[ci] = model.NewTableCell()
		t.Rows[i].Cells = cells
	}
	t.ColumnWidths = append(t.ColumnWidths, 0)
	copy(t.ColumnWidths[idx+1:], t.ColumnWidths[idx:])
	t.ColumnWidths[idx] = model.DefaultColumnWidth
}

// DeleteColumn removes the column at the given index from every row and from
// the width list. Out-of-range indices are a no-op.
func DeleteColumn(t *model.Table, at int) {
	if at < 0 || at >= t.ColCount() {
		return
	}
	for i := range t.Rows {
		cells := t.Rows[i].Cells
		if at < len(cells) {
			t.Rows[i].Cells = append(cells[:at], cells[at+1:]...)
		}
	}
	if at < len(t.ColumnWidths) {
		t.ColumnWidths = append(t.ColumnWidths[:at], t.ColumnWidths[at+1:]...)
	}
}

// MoveColumn removes the column at from and reinserts it at to, moving the
// cell in every row and the width entry. Indices are clamped independently;
// the move is a no-op when they coincide after clamping.
func MoveColumn(t *model.Table, from, to int) {
	n := t.ColCount()
	if n == 0 {
		return
	}
	from = clampIndex(from, n-1)
	to = clampIndex(to, n-1)
	if from == to {
		return
	}
	for i := range t.Rows {
		cells := t.Rows[i].Cells
		if from >= len(cells) {
			continue
		}
		cell := cells[from]
		cells = append(cells[:from], cells[from+1:]...)
		ti := to
		if ti > len(cells) {
			ti = len(cells)
		}
		cells = append(cells, model.TableCell{})
		copy(cells[ti+1:], cells[ti:])
		cells[ti] = cell
		t.Rows[i].Cells = cells
	}
	if from < len(t.ColumnWidths) && to < len(t.ColumnWidths) {
		w := t.ColumnWidths[from]
		t.ColumnWidths = append(t.ColumnWidths[:from], t.ColumnWidths[from+1:]...)
		t.ColumnWidths = append(t.ColumnWidths, 0)
		copy(t.ColumnWidths[to+1:], t.ColumnWidths[to:])
		t.ColumnWidths[to] = w
	}
}

// SetColumnWidth sets the pixel width of a column, clamped to MinColumnWidth.
// The width list grows with default-width entries when the column index lies
// beyond it.
func SetColumnWidth(t *model.Table, col, px int) {
	if col < 0 {
		return
	}
	for len(t.ColumnWidths) <= col {
		t.ColumnWidths = append(t.ColumnWidths, model.DefaultColumnWidth)
	}
	if px < MinColumnWidth {
		px = MinColumnWidth
	}
	t.ColumnWidths[col] = px
}

// SetRowHeight sets the pixel height of a row, clamped to MinRowHeight.
// Out-of-range rows are a no-op.
func SetRowHeight(t *model.Table, row, px int) {
	if row < 0 || row >= len(t.Rows) {
		return
	}
	if px < MinRowHeight {
		px = MinRowHeight
	}
	t.Rows[row].HeightPx = px
}

// SetFreeze sets the header-row and first-column freeze flags.
func SetFreeze(t *model.Table, header, firstCol bool) {
	t.FreezeHeader = header
	t.FreezeFirstCol = firstCol
}

// clampIndex clamps v to [0, max].
func clampIndex(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
