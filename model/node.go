package model

import "strings"

// NodeType represents the type of a block-level node.
type NodeType int

const (
	NodeTypeUnknown NodeType = iota
	NodeTypeParagraph
	NodeTypeHeading
	NodeTypeTable
	NodeTypeImage
	NodeTypeMedia
	NodeTypeFormulaInline
	NodeTypeFormulaBlock
	NodeTypeMultipleChoice
	NodeTypeInfoBox
	NodeTypeCommentAnchor
)

func (nt NodeType) String() string {
	switch nt {
	case NodeTypeParagraph:
		return "Paragraph"
	case NodeTypeHeading:
		return "Heading"
	case NodeTypeTable:
		return "Table"
	case NodeTypeImage:
		return "Image"
	case NodeTypeMedia:
		return "Media"
	case NodeTypeFormulaInline:
		return "FormulaInline"
	case NodeTypeFormulaBlock:
		return "FormulaBlock"
	case NodeTypeMultipleChoice:
		return "MultipleChoiceBlock"
	case NodeTypeInfoBox:
		return "InfoBox"
	case NodeTypeCommentAnchor:
		return "CommentAnchor"
	default:
		return "Unknown"
	}
}

// Node is the interface for all block-level nodes.
type Node interface {
	Type() NodeType
	// Clone returns a deep copy of the node.
	Clone() Node
}

// InlineStyle represents the formatting of a run of text. Zero values mean
// "not set": an empty Link, Color, or Highlight and a zero FontSizePx are
// treated as absent.
type InlineStyle struct {
	Bold       bool   `json:"bold,omitempty"`
	Italic     bool   `json:"italic,omitempty"`
	Underline  bool   `json:"underline,omitempty"`
	Code       bool   `json:"code,omitempty"`
	Link       string `json:"link,omitempty"`
	Color      string `json:"color,omitempty"`
	Highlight  string `json:"highlight,omitempty"`
	FontSizePx int    `json:"font_size_px,omitempty"`
}

// IsZero reports whether no style attribute is set.
func (s InlineStyle) IsZero() bool {
	return s == InlineStyle{}
}

// InlineSpan is a contiguous run of text sharing one inline style. Stored
// spans must never have empty text.
type InlineSpan struct {
	Text  string      `json:"text"`
	Style InlineStyle `json:"style"`
}

// SpanText concatenates the text of the given spans. When a node carries
// spans they are the source of truth, and SpanText must equal the node's
// plain text exactly.
func SpanText(spans []InlineSpan) string {
	var sb strings.Builder
	for _, sp := range spans {
		sb.WriteString(sp.Text)
	}
	return sb.String()
}

// Paragraph represents a paragraph of text, optionally styled with spans.
type Paragraph struct {
	Text  string
	Spans []InlineSpan
}

func (p *Paragraph) Type() NodeType { return NodeTypeParagraph }

// Heading represents a heading with level 1-6.
type Heading struct {
	Level int
	Text  string
	Spans []InlineSpan
}

func (h *Heading) Type() NodeType { return NodeTypeHeading }

// ClampLevel returns the heading level clamped to the valid 1-6 range.
func (h *Heading) ClampLevel() int {
	if h.Level < 1 {
		return 1
	}
	if h.Level > 6 {
		return 6
	}
	return h.Level
}

// Image represents an image reference.
type Image struct {
	Src string
	Alt string
}

func (i *Image) Type() NodeType { return NodeTypeImage }

// Media represents an opaque media attachment identified by a storage key.
type Media struct {
	Key         string
	ContentType string
}

func (m *Media) Type() NodeType { return NodeTypeMedia }

// FormulaInline represents an inline TeX formula.
type FormulaInline struct {
	TeX string
}

func (f *FormulaInline) Type() NodeType { return NodeTypeFormulaInline }

// FormulaBlock represents a display-mode TeX formula.
type FormulaBlock struct {
	TeX string
}

func (f *FormulaBlock) Type() NodeType { return NodeTypeFormulaBlock }

// ChoiceOption is a single selectable option of a MultipleChoiceBlock.
type ChoiceOption struct {
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

// MultipleChoiceBlock represents a question with selectable options.
type MultipleChoiceBlock struct {
	Question string
	Options  []ChoiceOption
	Multiple bool
}

func (m *MultipleChoiceBlock) Type() NodeType { return NodeTypeMultipleChoice }

// InfoBox represents a highlighted callout with a kind such as "note" or
// "warning".
type InfoBox struct {
	Kind string
	Text string
}

func (b *InfoBox) Type() NodeType { return NodeTypeInfoBox }

// CommentAnchor is an inline marker tying a document position to a comment
// thread.
type CommentAnchor struct {
	ThreadID string
}

func (c *CommentAnchor) Type() NodeType { return NodeTypeCommentAnchor }
