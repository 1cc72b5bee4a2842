package model

import (
	"encoding/json"
	"fmt"
)

// The wire format is a structured object with a "nodes" list and a "threads"
// list. Each node is a tagged object whose "type" field names the variant;
// variant-specific fields use snake_case names. Optional fields (spans,
// column widths, row heights, anchors) are omitted when absent and default
// to empty on read.

type documentJSON struct {
	Nodes   []json.RawMessage `json:"nodes"`
	Threads []CommentThread   `json:"threads"`
}

// MarshalJSON encodes the document in the wire format.
func (d *Document) MarshalJSON() ([]byte, error) {
	out := documentJSON{
		Nodes:   make([]json.RawMessage, 0, len(d.Nodes)),
		Threads: d.Threads,
	}
	if out.Threads == nil {
		out.Threads = []CommentThread{}
	}
	for i, n := range d.Nodes {
		raw, err := MarshalNode(n)
		if err != nil {
			return nil, fmt.Errorf("encoding node %d: %w", i, err)
		}
		out.Nodes = append(out.Nodes, raw)
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the wire format. Decoding is tolerant: nodes with an
// unrecognized type tag are skipped rather than failing the document.
func (d *Document) UnmarshalJSON(data []byte) error {
	var in documentJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("decoding document: %w", err)
	}
	d.Nodes = nil
	d.Threads = nil
	for _, raw := range in.Nodes {
		n, err := UnmarshalNode(raw)
		if err != nil {
			return err
		}
		if n != nil {
			d.Nodes = append(d.Nodes, n)
		}
	}
	if len(in.Threads) > 0 {
		d.Threads = in.Threads
	}
	return nil
}

type paragraphJSON struct {
	Type  string       `json:"type"`
	Text  string       `json:"text"`
	Spans []InlineSpan `json:"spans,omitempty"`
}

type headingJSON struct {
	Type  string       `json:"type"`
	Level int          `json:"level"`
	Text  string       `json:"text"`
	Spans []InlineSpan `json:"spans,omitempty"`
}

type tableJSON struct {
	Type           string     `json:"type"`
	Rows           []TableRow `json:"rows"`
	FreezeHeader   bool       `json:"freeze_header"`
	FreezeFirstCol bool       `json:"freeze_first_col"`
	ColumnWidths   []int      `json:"column_widths,omitempty"`
}

type imageJSON struct {
	Type string `json:"type"`
	Src  string `json:"src"`
	Alt  string `json:"alt"`
}

type mediaJSON struct {
	Type        string `json:"type"`
	Key         string `json:"key"`
	ContentType string `json:"content_type"`
}

type formulaJSON struct {
	Type string `json:"type"`
	TeX  string `json:"tex"`
}

type multipleChoiceJSON struct {
	Type     string         `json:"type"`
	Question string         `json:"question"`
	Options  []ChoiceOption `json:"options,omitempty"`
	Multiple bool           `json:"multiple"`
}

type infoBoxJSON struct {
	Type string `json:"type"`
	Kind string `json:"kind"`
	Text string `json:"text"`
}

type commentAnchorJSON struct {
	Type     string `json:"type"`
	ThreadID string `json:"thread_id"`
}

// MarshalNode encodes a single node as a tagged object.
func MarshalNode(n Node) ([]byte, error) {
	switch v := n.(type) {
	case *Paragraph:
		return json.Marshal(paragraphJSON{Type: v.Type().String(), Text: v.Text, Spans: v.Spans})
	case *Heading:
		return json.Marshal(headingJSON{Type: v.Type().String(), Level: v.Level, Text: v.Text, Spans: v.Spans})
	case *Table:
		return json.Marshal(tableJSON{
			Type:           v.Type().String(),
			Rows:           v.Rows,
			FreezeHeader:   v.FreezeHeader,
			FreezeFirstCol: v.FreezeFirstCol,
			ColumnWidths:   v.ColumnWidths,
		})
	case *Image:
		return json.Marshal(imageJSON{Type: v.Type().String(), Src: v.Src, Alt: v.Alt})
	case *Media:
		return json.Marshal(mediaJSON{Type: v.Type().String(), Key: v.Key, ContentType: v.ContentType})
	case *FormulaInline:
		return json.Marshal(formulaJSON{Type: v.Type().String(), TeX: v.TeX})
	case *FormulaBlock:
		return json.Marshal(formulaJSON{Type: v.Type().String(), TeX: v.TeX})
	case *MultipleChoiceBlock:
		return json.Marshal(multipleChoiceJSON{Type: v.Type().String(), Question: v.Question, Options: v.Options, Multiple: v.Multiple})
	case *InfoBox:
		return json.Marshal(infoBoxJSON{Type: v.Type().String(), Kind: v.Kind, Text: v.Text})
	case *CommentAnchor:
		return json.Marshal(commentAnchorJSON{Type: v.Type().String(), ThreadID: v.ThreadID})
	default:
		return nil, fmt.Errorf("unsupported node type %T", n)
	}
}

// UnmarshalNode decodes a single tagged node object. Unrecognized type tags
// yield (nil, nil) so callers can skip them.
func UnmarshalNode(data []byte) (Node, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("decoding node tag: %w", err)
	}
	switch probe.Type {
	case "Paragraph":
		var v paragraphJSON
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("decoding paragraph: %w", err)
		}
		return &Paragraph{Text: v.Text, Spans: v.Spans}, nil
	case "Heading":
		var v headingJSON
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("decoding heading: %w", err)
		}
		return &Heading{Level: v.Level, Text: v.Text, Spans: v.Spans}, nil
	case "Table":
		var v tableJSON
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("decoding table: %w", err)
		}
		return &Table{
			Rows:           v.Rows,
			FreezeHeader:   v.FreezeHeader,
			FreezeFirstCol: v.FreezeFirstCol,
			ColumnWidths:   v.ColumnWidths,
		}, nil
	case "Image":
		var v imageJSON
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("decoding image: %w", err)
		}
		return &Image{Src: v.Src, Alt: v.Alt}, nil
	case "Media":
		var v mediaJSON
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("decoding media: %w", err)
		}
		return &Media{Key: v.Key, ContentType: v.ContentType}, nil
	case "FormulaInline":
		var v formulaJSON
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("decoding formula: %w", err)
		}
		return &FormulaInline{TeX: v.TeX}, nil
	case "FormulaBlock":
		var v formulaJSON
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("decoding formula: %w", err)
		}
		return &FormulaBlock{TeX: v.TeX}, nil
	case "MultipleChoiceBlock":
		var v multipleChoiceJSON
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("decoding multiple-choice block: %w", err)
		}
		return &MultipleChoiceBlock{Question: v.Question, Options: v.Options, Multiple: v.Multiple}, nil
	case "InfoBox":
		var v infoBoxJSON
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("decoding info box: %w", err)
		}
		return &InfoBox{Kind: v.Kind, Text: v.Text}, nil
	case "CommentAnchor":
		var v commentAnchorJSON
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("decoding comment anchor: %w", err)
		}
		return &CommentAnchor{ThreadID: v.ThreadID}, nil
	default:
		return nil, nil
	}
}

type tableRowJSON struct {
	Cells    []TableCell `json:"cells"`
	HeightPx int         `json:"height_px,omitempty"`
}

// MarshalJSON encodes the row with snake_case field names.
func (r TableRow) MarshalJSON() ([]byte, error) {
	cells := r.Cells
	if cells == nil {
		cells = []TableCell{}
	}
	return json.Marshal(tableRowJSON{Cells: cells, HeightPx: r.HeightPx})
}

// UnmarshalJSON decodes the row.
func (r *TableRow) UnmarshalJSON(data []byte) error {
	var v tableRowJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("decoding table row: %w", err)
	}
	r.Cells = v.Cells
	r.HeightPx = v.HeightPx
	return nil
}

type tableCellJSON struct {
	Text        string       `json:"text"`
	Spans       []InlineSpan `json:"spans,omitempty"`
	ColSpan     int          `json:"colspan"`
	RowSpan     int          `json:"rowspan"`
	Style       CellStyle    `json:"style"`
	Placeholder bool         `json:"placeholder,omitempty"`
}

// MarshalJSON encodes the cell with snake_case field names.
func (c TableCell) MarshalJSON() ([]byte, error) {
	return json.Marshal(tableCellJSON{
		Text:        c.Text,
		Spans:       c.Spans,
		ColSpan:     c.ColSpan,
		RowSpan:     c.RowSpan,
		Style:       c.Style,
		Placeholder: c.Placeholder,
	})
}

// UnmarshalJSON decodes the cell. Missing or zero colspan/rowspan values are
// normalized to 1.
func (c *TableCell) UnmarshalJSON(data []byte) error {
	var v tableCellJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("decoding table cell: %w", err)
	}
	if v.ColSpan < 1 {
		v.ColSpan = 1
	}
	if v.RowSpan < 1 {
		v.RowSpan = 1
	}
	c.Text = v.Text
	c.Spans = v.Spans
	c.ColSpan = v.ColSpan
	c.RowSpan = v.RowSpan
	c.Style = v.Style
	c.Placeholder = v.Placeholder
	return nil
}
