package selection

// MapRowInsert updates the anchor for a row inserted at row index at in the
// table at tableNodeIndex. Cell anchors at or below the insertion point shift
// down by one; everything else is untouched.
func (a *Anchor) MapRowInsert(tableNodeIndex, at int) {
	if a.Kind != AnchorTableCell || a.TableNodeIndex != tableNodeIndex {
		return
	}
	if a.Row >= at {
		a.Row++
	}
}

// MapColumnInsert updates the anchor for a column inserted at column index at
// in the table at tableNodeIndex.
func (a *Anchor) MapColumnInsert(tableNodeIndex, at int) {
	if a.Kind != AnchorTableCell || a.TableNodeIndex != tableNodeIndex {
		return
	}
	if a.Col >= at {
		a.Col++
	}
}

// MapRowMove updates the anchor for a row moved from index from to index to.
// An anchor on the moved row follows it; anchors strictly between the two
// indices shift by one toward the vacated slot.
func (a *Anchor) MapRowMove(tableNodeIndex, from, to int) {
	if a.Kind != AnchorTableCell || a.TableNodeIndex != tableNodeIndex {
		return
	}
	a.Row = moveIndex(a.Row, from, to)
}

// MapColumnMove updates the anchor for a column moved from index from to
// index to.
func (a *Anchor) MapColumnMove(tableNodeIndex, from, to int) {
	if a.Kind != AnchorTableCell || a.TableNodeIndex != tableNodeIndex {
		return
	}
	a.Col = moveIndex(a.Col, from, to)
}

// MapMerge updates the anchor for a cell merge covering the rectangle with
// corners (r1,c1) and (r2,c2). Corner order does not matter. Any anchor
// inside the rectangle collapses to the master cell at the rectangle's
// top-left.
func (a *Anchor) MapMerge(tableNodeIndex, r1, c1, r2, c2 int) {
	if a.Kind != AnchorTableCell || a.TableNodeIndex != tableNodeIndex {
		return
	}
	minR, maxR := minMax(r1, r2)
	minC, maxC := minMax(c1, c2)
	if a.Row >= minR && a.Row <= maxR && a.Col >= minC && a.Col <= maxC {
		a.Row = minR
		a.Col = minC
	}
}

// MapSplit updates the anchor for a cell split at (row, col). Splitting needs
// no remapping: anchors inside the former master cell stay valid, and anchors
// collapsed into it by an earlier merge remain there.
func (a *Anchor) MapSplit(tableNodeIndex, row, col int) {
	_ = tableNodeIndex
	_ = row
	_ = col
}

// MapRowInsert applies MapRowInsert to both endpoints.
func (r *Range) MapRowInsert(tableNodeIndex, at int) {
	r.Start.MapRowInsert(tableNodeIndex, at)
	r.End.MapRowInsert(tableNodeIndex, at)
}

// MapColumnInsert applies MapColumnInsert to both endpoints.
func (r *Range) MapColumnInsert(tableNodeIndex, at int) {
	r.Start.MapColumnInsert(tableNodeIndex, at)
	r.End.MapColumnInsert(tableNodeIndex, at)
}

// MapRowMove applies MapRowMove to both endpoints.
func (r *Range) MapRowMove(tableNodeIndex, from, to int) {
	r.Start.MapRowMove(tableNodeIndex, from, to)
	r.End.MapRowMove(tableNodeIndex, from, to)
}

// MapColumnMove applies MapColumnMove to both endpoints.
func (r *Range) MapColumnMove(tableNodeIndex, from, to int) {
	r.Start.MapColumnMove(tableNodeIndex, from, to)
	r.End.MapColumnMove(tableNodeIndex, from, to)
}

// MapMerge applies MapMerge to both endpoints.
func (r *Range) MapMerge(tableNodeIndex, r1, c1, r2, c2 int) {
	r.Start.MapMerge(tableNodeIndex, r1, c1, r2, c2)
	r.End.MapMerge(tableNodeIndex, r1, c1, r2, c2)
}

// MapSplit applies MapSplit to both endpoints.
func (r *Range) MapSplit(tableNodeIndex, row, col int) {
	r.Start.MapSplit(tableNodeIndex, row, col)
	r.End.MapSplit(tableNodeIndex, row, col)
}

// moveIndex applies standard array-move semantics: the element at from lands
// at to, and elements between them shift by one toward the vacated slot.
func moveIndex(i, from, to int) int {
	switch {
	case i == from:
		return to
	case from < to && i > from && i <= to:
		return i - 1
	case to < from && i >= to && i < from:
		return i + 1
	default:
		return i
	}
}

func minMax(a, b int) (int, int) {
	if a <= b {
		return a, b
	}
	return b, a
}
