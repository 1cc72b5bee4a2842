// Package table implements the structural transform algebra for table
// nodes: row and column insert, move, and delete, the merge/split algebra
// for spanning cells, and cell/row/column styling.
//
// All operations are pure functions over a *model.Table and follow one error
// philosophy: out-of-range coordinates are silently clamped or ignored.
// Nothing in this package panics or returns an error for bad input; an
// operation either takes effect or has none.
package table
