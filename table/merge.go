package table

import (
	"strings"

	"github.com/tsawler/docedit/model"
)

// MergeCells merges the rectangular region spanned by the two corner
// coordinates (r1,c1) and (r2,c2); corner order does not matter. The
// top-left cell becomes the master: its colspan/rowspan cover the rectangle
// and its text becomes the space-joined concatenation of its own text with
// every other cell's text in row-major order. Every other cell in the
// rectangle becomes a placeholder with cleared text.
//
// Merging over placeholders left by an earlier merge simply overwrites their
// state; the last operation wins and overlapping spans are not detected or
// rejected. Out-of-range rectangles are a no-op.
func MergeCells(t *model.Table, r1, c1, r2, c2 int) {
	minR, maxR := minMax(r1, r2)
	minC, maxC := minMax(c1, c2)
	if minR < 0 || minC < 0 || maxR >= len(t.Rows) {
		return
	}
	if maxC >= len(t.Rows[minR].Cells) {
		return
	}

	parts := make([]string, 0, (maxR-minR+1)*(maxC-minC+1))
	master := &t.Rows[minR].Cells[minC]
	if master.Text != "" {
		parts = append(parts, master.Text)
	}
	for r := minR; r <= maxR; r++ {
		for c := minC; c <= maxC; c++ {
			if r == minR && c == minC {
				continue
			}
			cell := t.Cell(r, c)
			if cell == nil {
				continue
			}
			if cell.Text != "" {
				parts = append(parts, cell.Text)
			}
			cell.Placeholder = true
			cell.Text = ""
			cell.Spans = nil
			cell.ColSpan = 1
			cell.RowSpan = 1
		}
	}

	joined := strings.Join(parts, " ")
	if joined != master.Text {
		// The aggregated text replaces the master's own; any stale span
		// list would no longer concatenate to it.
		master.Spans = nil
	}
	master.Text = joined
	master.ColSpan = maxC - minC + 1
	master.RowSpan = maxR - minR + 1
	master.Placeholder = false
}

// SplitCell splits the cell at (row, col) back into unit cells: the cell's
// span resets to 1x1 and every other cell inside the rectangle it previously
// covered has its placeholder flag cleared and its span reset. Text is not
// restored: a merge followed by a split keeps the aggregated text on the
// former master and leaves the uncovered cells empty. Out-of-range
// coordinates are a no-op.
func SplitCell(t *model.Table, row, col int) {
	cell := t.Cell(row, col)
	if cell == nil {
		return
	}
	rowSpan := cell.RowSpan
	colSpan := cell.ColSpan
	if rowSpan < 1 {
		rowSpan = 1
	}
	if colSpan < 1 {
		colSpan = 1
	}
	cell.RowSpan = 1
	cell.ColSpan = 1

	for r := row; r < row+rowSpan && r < len(t.Rows); r++ {
		for c := col; c < col+colSpan && c < len(t.Rows[r].Cells); c++ {
			if r == row && c == col {
				continue
			}
			covered := &t.Rows[r].Cells[c]
			covered.Placeholder = false
			covered.RowSpan = 1
			covered.ColSpan = 1
		}
	}
}

func minMax(a, b int) (int, int) {
	if a <= b {
		return a, b
	}
	return b, a
}
