package model

import "github.com/tsawler/docedit/selection"

// CommentThread is an anchored discussion thread. Threads are appended to a
// document and never reordered or removed; resolving is a flag flip.
type CommentThread struct {
	ID       string           `json:"id"`
	Resolved bool             `json:"resolved"`
	Messages []CommentMessage `json:"messages,omitempty"`
	// Anchor records where the thread was created. Nil means the thread is
	// not anchored to a document position.
	Anchor *selection.Range `json:"anchor,omitempty"`
}

// CommentMessage is a single message within a thread.
type CommentMessage struct {
	Author      string `json:"author"`
	Text        string `json:"text"`
	TimestampMS int64  `json:"ts_ms"`
}

// NewCommentThread creates an unresolved thread with no messages.
func NewCommentThread(id string, anchor *selection.Range) CommentThread {
	return CommentThread{ID: id, Anchor: anchor}
}

// AddMessage appends a message to the thread.
func (t *CommentThread) AddMessage(author, text string, tsMS int64) {
	t.Messages = append(t.Messages, CommentMessage{Author: author, Text: text, TimestampMS: tsMS})
}

// SetResolved flips the resolved flag.
func (t *CommentThread) SetResolved(resolved bool) {
	t.Resolved = resolved
}
