// Package history provides linear undo/redo over full document snapshots.
//
// Before every mutating operation the caller records the pre-mutation
// document; recording pushes a deep copy onto the undo stack and clears the
// redo stack. Snapshots are full copies, a simplicity-over-memory tradeoff
// appropriate for documents of modest size. The stacks are neither
// compacted nor capped; callers making high-frequency edits should batch at
// a coarser grain before recording.
package history
