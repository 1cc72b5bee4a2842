package selection

import (
	"encoding/json"
	"testing"
)

func TestAnchor_JSONRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		anchor Anchor
		want   string
	}{
		{
			name:   "text anchor",
			anchor: TextAnchor(2, 7),
			want:   `{"Text":{"node_index":2,"char_offset":7}}`,
		},
		{
			name:   "cell anchor",
			anchor: CellAnchor(1, 0, 3, 4),
			want:   `{"TableCell":{"table_node_index":1,"row":0,"col":3,"char_offset":4}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.anchor)
			if err != nil {
				t.Fatalf("Marshal() error: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal() = %s, want %s", data, tt.want)
			}

			var got Anchor
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("Unmarshal() error: %v", err)
			}
			if got != tt.anchor {
				t.Errorf("round trip = %+v, want %+v", got, tt.anchor)
			}
		})
	}
}

func TestAnchor_UnmarshalJSON_UnknownTag(t *testing.T) {
	var a Anchor
	if err := json.Unmarshal([]byte(`{"Orbit":{"x":1}}`), &a); err == nil {
		t.Error("expected error for unrecognized anchor tag")
	}
}

func TestAnchor_MapRowInsert(t *testing.T) {
	tests := []struct {
		name    string
		anchor  Anchor
		at      int
		wantRow int
	}{
		{"row above insertion stays", CellAnchor(0, 1, 0, 0), 2, 1},
		{"row at insertion shifts down", CellAnchor(0, 2, 0, 0), 2, 3},
		{"row below insertion shifts down", CellAnchor(0, 4, 0, 0), 2, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := tt.anchor
			a.MapRowInsert(0, tt.at)
			if a.Row != tt.wantRow {
				t.Errorf("Row = %d, want %d", a.Row, tt.wantRow)
			}
		})
	}
}

func TestAnchor_MapColumnInsert(t *testing.T) {
	// A cell anchor at (2,0) with a column inserted at 1 keeps its column; the
	// same anchor with a row inserted at 1 moves to (3,0).
	a := CellAnchor(0, 2, 0, 5)
	a.MapColumnInsert(0, 1)
	if a.Row != 2 || a.Col != 0 {
		t.Errorf("after column insert at 1: (%d,%d), want (2,0)", a.Row, a.Col)
	}
	a.MapRowInsert(0, 1)
	if a.Row != 3 || a.Col != 0 {
		t.Errorf("after row insert at 1: (%d,%d), want (3,0)", a.Row, a.Col)
	}
	if a.CharOffset != 5 {
		t.Errorf("CharOffset = %d, want 5 (unchanged)", a.CharOffset)
	}
}

func TestAnchor_MapRowMove(t *testing.T) {
	tests := []struct {
		name     string
		row      int
		from, to int
		want     int
	}{
		{"moved row follows", 1, 1, 3, 3},
		{"row in (from,to] shifts toward vacated slot", 2, 1, 3, 1},
		{"row at to shifts toward vacated slot", 3, 1, 3, 2},
		{"row past to stays", 4, 1, 3, 4},
		{"moved row follows backward", 3, 3, 0, 0},
		{"row in [to,from) shifts down", 1, 3, 0, 2},
		{"row before to stays on backward move", 0, 3, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := CellAnchor(0, tt.row, 0, 0)
			a.MapRowMove(0, tt.from, tt.to)
			if a.Row != tt.want {
				t.Errorf("Row = %d, want %d", a.Row, tt.want)
			}
		})
	}
}

func TestAnchor_MapColumnMove(t *testing.T) {
	a := CellAnchor(0, 0, 2, 0)
	a.MapColumnMove(0, 2, 0)
	if a.Col != 0 {
		t.Errorf("Col = %d, want 0 (moved column follows)", a.Col)
	}

	b := CellAnchor(0, 0, 1, 0)
	b.MapColumnMove(0, 2, 0)
	if b.Col != 2 {
		t.Errorf("Col = %d, want 2 (shifted by backward move)", b.Col)
	}
}

func TestAnchor_MapMerge(t *testing.T) {
	tests := []struct {
		name             string
		row, col         int
		wantRow, wantCol int
	}{
		{"inside rect collapses to master", 2, 2, 1, 1},
		{"master stays", 1, 1, 1, 1},
		{"bottom-right corner collapses", 2, 3, 1, 1},
		{"outside rect untouched", 0, 0, 0, 0},
		{"outside rect column untouched", 1, 4, 1, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := CellAnchor(0, tt.row, tt.col, 9)
			// Corners given in reverse order; MapMerge normalizes.
			a.MapMerge(0, 2, 3, 1, 1)
			if a.Row != tt.wantRow || a.Col != tt.wantCol {
				t.Errorf("(%d,%d) -> (%d,%d), want (%d,%d)",
					tt.row, tt.col, a.Row, a.Col, tt.wantRow, tt.wantCol)
			}
			if a.CharOffset != 9 {
				t.Errorf("CharOffset = %d, want 9 (unchanged)", a.CharOffset)
			}
		})
	}
}

func TestAnchor_MapSplit_NoOp(t *testing.T) {
	a := CellAnchor(0, 1, 1, 4)
	a.MapSplit(0, 1, 1)
	if a != CellAnchor(0, 1, 1, 4) {
		t.Errorf("MapSplit changed the anchor: %+v", a)
	}
}

func TestAnchor_Map_IgnoresOtherTargets(t *testing.T) {
	// Text anchors are never remapped by table transforms.
	text := TextAnchor(3, 10)
	text.MapRowInsert(0, 0)
	text.MapColumnMove(0, 0, 2)
	text.MapMerge(0, 0, 0, 5, 5)
	if text != TextAnchor(3, 10) {
		t.Errorf("text anchor changed: %+v", text)
	}

	// Cell anchors into a different table are untouched.
	other := CellAnchor(7, 1, 1, 0)
	other.MapRowInsert(0, 0)
	other.MapMerge(0, 0, 0, 5, 5)
	if other != CellAnchor(7, 1, 1, 0) {
		t.Errorf("anchor into other table changed: %+v", other)
	}
}

func TestRange_MapAppliesToBothEndpoints(t *testing.T) {
	r := Range{
		Start: CellAnchor(0, 1, 0, 0),
		End:   CellAnchor(0, 3, 0, 0),
	}
	r.MapRowInsert(0, 2)
	if r.Start.Row != 1 {
		t.Errorf("Start.Row = %d, want 1", r.Start.Row)
	}
	if r.End.Row != 4 {
		t.Errorf("End.Row = %d, want 4", r.End.Row)
	}
}
