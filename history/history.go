package history

import "github.com/tsawler/docedit/model"

// History holds the undo and redo stacks for one document. A History and the
// document it tracks are owned together by a single editing session.
type History struct {
	undo []*model.Document
	redo []*model.Document
}

// New creates an empty history.
func New() *History {
	return &History{}
}

// RecordBeforeChange pushes a deep copy of the current document onto the
// undo stack and clears the redo stack: a new edit invalidates the redo
// future.
func (h *History) RecordBeforeChange(current *model.Document) {
	h.undo = append(h.undo, current.Clone())
	h.redo = nil
}

// Undo pops the most recent snapshot, pushing the current document onto the
// redo stack. It returns the restored document and true, or nil and false
// when the undo stack is empty.
func (h *History) Undo(current *model.Document) (*model.Document, bool) {
	if len(h.undo) == 0 {
		return nil, false
	}
	prev := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, current)
	return prev, true
}

// Redo is the mirror image of Undo: it pops the redo stack, pushing the
// current document onto the undo stack.
func (h *History) Redo(current *model.Document) (*model.Document, bool) {
	if len(h.redo) == 0 {
		return nil, false
	}
	next := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, current)
	return next, true
}

// CanUndo reports whether an undo snapshot is available.
func (h *History) CanUndo() bool {
	return len(h.undo) > 0
}

// CanRedo reports whether a redo snapshot is available.
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

// Clear drops both stacks.
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
}
