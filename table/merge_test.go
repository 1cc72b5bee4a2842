package table

import (
	"testing"

	"github.com/tsawler/docedit/model"
)

func TestMergeCells(t *testing.T) {
	tbl := model.NewTable(3, 3)
	tbl.Cell(0, 0).Text = "A"
	tbl.Cell(0, 1).Text = "B"
	tbl.Cell(1, 0).Text = "C"
	tbl.Cell(1, 1).Text = "D"

	MergeCells(tbl, 0, 0, 1, 1)

	master := tbl.Cell(0, 0)
	if master.ColSpan != 2 || master.RowSpan != 2 {
		t.Errorf("master span = %dx%d, want 2x2", master.ColSpan, master.RowSpan)
	}
	if master.Text != "A B C D" {
		t.Errorf("master text = %q, want %q", master.Text, "A B C D")
	}
	if master.Placeholder {
		t.Error("master must not be a placeholder")
	}

	for _, pos := range [][2]int{{0, 1}, {1, 0}, {1, 1}} {
		cell := tbl.Cell(pos[0], pos[1])
		if !cell.Placeholder {
			t.Errorf("cell (%d,%d) should be a placeholder", pos[0], pos[1])
		}
		if cell.Text != "" {
			t.Errorf("cell (%d,%d) text = %q, want empty", pos[0], pos[1], cell.Text)
		}
		if cell.ColSpan != 1 || cell.RowSpan != 1 {
			t.Errorf("cell (%d,%d) span = %dx%d, want 1x1", pos[0], pos[1], cell.ColSpan, cell.RowSpan)
		}
	}

	// Cells outside the rectangle are untouched.
	if tbl.Cell(2, 2).Placeholder {
		t.Error("cell (2,2) outside the rectangle became a placeholder")
	}
}

func TestMergeCells_CornerOrderIrrelevant(t *testing.T) {
	tbl := model.NewTable(2, 2)
	tbl.Cell(0, 0).Text = "A"
	tbl.Cell(1, 1).Text = "D"

	// Bottom-right corner given first.
	MergeCells(tbl, 1, 1, 0, 0)

	master := tbl.Cell(0, 0)
	if master.ColSpan != 2 || master.RowSpan != 2 {
		t.Errorf("master span = %dx%d, want 2x2", master.ColSpan, master.RowSpan)
	}
	if master.Text != "A D" {
		t.Errorf("master text = %q, want %q", master.Text, "A D")
	}
}

func TestMergeCells_SkipsEmptyTexts(t *testing.T) {
	tbl := model.NewTable(1, 3)
	tbl.Cell(0, 0).Text = "left"
	tbl.Cell(0, 2).Text = "right"

	MergeCells(tbl, 0, 0, 0, 2)

	if got := tbl.Cell(0, 0).Text; got != "left right" {
		t.Errorf("master text = %q, want %q (empty cell skipped)", got, "left right")
	}
}

func TestMergeCells_DropsStaleSpansOnAggregation(t *testing.T) {
	tbl := model.NewTable(1, 2)
	tbl.Cell(0, 0).Text = "hi"
	tbl.Cell(0, 0).Spans = []model.InlineSpan{{Text: "hi", Style: model.InlineStyle{Bold: true}}}
	tbl.Cell(0, 1).Text = "there"

	MergeCells(tbl, 0, 0, 0, 1)

	master := tbl.Cell(0, 0)
	if master.Text != "hi there" {
		t.Errorf("master text = %q", master.Text)
	}
	if master.Spans != nil {
		t.Error("spans should be dropped when aggregation changes the text")
	}
}

func TestMergeCells_KeepsSpansWhenTextUnchanged(t *testing.T) {
	tbl := model.NewTable(1, 2)
	tbl.Cell(0, 0).Text = "only"
	tbl.Cell(0, 0).Spans = []model.InlineSpan{{Text: "only", Style: model.InlineStyle{Bold: true}}}

	// The other cell is empty, so the aggregated text equals the master's.
	MergeCells(tbl, 0, 0, 0, 1)

	if tbl.Cell(0, 0).Spans == nil {
		t.Error("spans should survive when the text is unchanged")
	}
}

func TestMergeCells_OutOfRangeNoOp(t *testing.T) {
	tbl := model.NewTable(2, 2)
	tbl.Cell(0, 0).Text = "A"

	tests := []struct {
		name           string
		r1, c1, r2, c2 int
	}{
		{"row past end", 0, 0, 2, 1},
		{"column past end", 0, 0, 1, 2},
		{"negative row", -1, 0, 1, 1},
		{"negative column", 0, -1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			MergeCells(tbl, tt.r1, tt.c1, tt.r2, tt.c2)
			if tbl.Cell(0, 0).ColSpan != 1 || tbl.HasSpanningCells() {
				t.Error("out-of-range merge changed the table")
			}
		})
	}
}

func TestMergeCells_LastWriteWins(t *testing.T) {
	tbl := model.NewTable(2, 3)
	tbl.Cell(0, 0).Text = "A"
	tbl.Cell(0, 1).Text = "B"
	tbl.Cell(0, 2).Text = "C"

	MergeCells(tbl, 0, 0, 0, 1)
	// The second merge overlaps the first; it simply overwrites.
	MergeCells(tbl, 0, 1, 0, 2)

	second := tbl.Cell(0, 1)
	if second.ColSpan != 2 || second.Placeholder {
		t.Errorf("second master = %+v, want 2x1 non-placeholder", second)
	}
	if got := tbl.Cell(0, 2); !got.Placeholder {
		t.Error("cell (0,2) should be a placeholder of the second merge")
	}
	// The first master keeps its span; no overlap detection exists.
	if tbl.Cell(0, 0).ColSpan != 2 {
		t.Errorf("first master colspan = %d, want 2", tbl.Cell(0, 0).ColSpan)
	}
}

func TestSplitCell(t *testing.T) {
	tbl := model.NewTable(2, 2)
	tbl.Cell(0, 0).Text = "A"
	tbl.Cell(1, 1).Text = "D"
	MergeCells(tbl, 0, 0, 1, 1)

	SplitCell(tbl, 0, 0)

	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			cell := tbl.Cell(r, c)
			if cell.Placeholder {
				t.Errorf("cell (%d,%d) still a placeholder after split", r, c)
			}
			if cell.ColSpan != 1 || cell.RowSpan != 1 {
				t.Errorf("cell (%d,%d) span = %dx%d, want 1x1", r, c, cell.ColSpan, cell.RowSpan)
			}
		}
	}

	// The aggregated text stays on the former master; covered cells stay
	// empty. Splitting is lossy.
	if got := tbl.Cell(0, 0).Text; got != "A D" {
		t.Errorf("former master text = %q, want %q", got, "A D")
	}
	if got := tbl.Cell(1, 1).Text; got != "" {
		t.Errorf("cell (1,1) text = %q, want empty", got)
	}
}

func TestSplitCell_UnmergedCellIsHarmless(t *testing.T) {
	tbl := model.NewTable(2, 2)
	tbl.Cell(0, 0).Text = "A"
	SplitCell(tbl, 0, 0)
	if tbl.Cell(0, 0).Text != "A" || tbl.HasSpanningCells() {
		t.Error("splitting an unmerged cell should change nothing")
	}
}

func TestSplitCell_OutOfRangeNoOp(t *testing.T) {
	tbl := model.NewTable(1, 1)
	SplitCell(tbl, 5, 5)
	SplitCell(tbl, -1, 0)
	if tbl.RowCount() != 1 || tbl.ColCount() != 1 {
		t.Error("out-of-range split changed the table")
	}
}
