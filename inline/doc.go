// Package inline implements the inline-style range algebra: applying a style
// delta to a half-open character range of a paragraph's, heading's, or
// cell's text by splitting and recombining its styled spans.
//
// Range offsets are byte offsets into the encoded text, not user-perceived
// characters. For text containing multi-byte characters a range boundary can
// therefore land inside a character; this documented behavior is preserved
// deliberately pending a decision to move to codepoint-indexed ranges.
package inline
