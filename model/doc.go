// Package model defines the document tree for a structured rich-text
// document: an ordered sequence of block-level nodes plus a set of anchored
// comment threads.
//
// # Nodes
//
// All block content implements the [Node] interface. The concrete types are:
//
//   - [Paragraph] - plain or styled text
//   - [Heading] - headings (levels 1-6)
//   - [Table] - tables with cell spanning, widths, and freeze flags
//   - [Image] - an image reference (src + alt)
//   - [Media] - an opaque media attachment (storage key + content type)
//   - [FormulaInline], [FormulaBlock] - TeX formulas
//   - [MultipleChoiceBlock] - a question with selectable options
//   - [InfoBox] - a highlighted callout
//   - [CommentAnchor] - an inline marker tying a position to a comment thread
//
// The node set is closed: consumers switch exhaustively on [NodeType], so
// adding a node kind means updating every converter. That is intentional; it
// acts as a completeness check at review time.
//
// # Styled text
//
// Paragraphs, headings, and table cells carry plain text plus an optional
// ordered list of [InlineSpan] values. When spans are present they are the
// source of truth and must concatenate to the plain text exactly.
//
// # Wire format
//
// The package owns the JSON wire format. Nodes serialize as tagged objects
// whose "type" field names the variant. Decoding is tolerant: unknown node
// types are skipped and missing optional fields default to empty, so a
// document written by a newer producer still loads.
package model
