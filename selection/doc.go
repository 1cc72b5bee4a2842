// Package selection provides stable references into a document, anchors and
// selection ranges, together with pure mapping functions that translate them
// across structural table edits.
//
// The editing core does not track live selections itself. A caller that holds
// anchors (cursors, selections, comment placements) invokes the matching Map
// function in lockstep with each structural table operation, and the anchor
// continues to reference the same logical cell. Text anchors and anchors in a
// different table are always left untouched.
package selection
