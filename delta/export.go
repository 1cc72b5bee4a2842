package delta

import (
	"encoding/json"
	"fmt"

	"github.com/tsawler/docedit/model"
)

// op is a single delta insert operation.
type op struct {
	Insert     interface{}            `json:"insert"`
	Attributes map[string]interface{} `json:"attributes,omitempty"`
}

// mediaInsert and infoBoxInsert are the payloads of the custom typed
// inserts for nodes the delta format cannot express natively.
type mediaInsert struct {
	Key         string `json:"key"`
	ContentType string `json:"content_type"`
}

type infoBoxInsert struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// Export renders the document as a delta op-log JSON string of the form
// {"ops":[...]}.
func Export(doc *model.Document) string {
	ops := make([]op, 0, len(doc.Nodes))
	for _, n := range doc.Nodes {
		switch v := n.(type) {
		case *model.Paragraph:
			ops = appendTextOps(ops, v.Text, v.Spans)
			ops = append(ops, op{Insert: "\n"})
		case *model.Heading:
			ops = appendTextOps(ops, v.Text, v.Spans)
			ops = append(ops, op{
				Insert:     "\n",
				Attributes: map[string]interface{}{"header": v.ClampLevel()},
			})
		case *model.Image:
			ops = append(ops, op{Insert: map[string]interface{}{"image": v.Src}})
			ops = append(ops, op{Insert: "\n"})
		case *model.FormulaInline:
			ops = append(ops, op{Insert: map[string]interface{}{"formula": v.TeX}})
		case *model.FormulaBlock:
			ops = append(ops, op{Insert: map[string]interface{}{"formula": v.TeX}})
			ops = append(ops, op{Insert: "\n"})
		case *model.Table:
			ops = appendCustomOp(ops, "table", v)
		case *model.Media:
			ops = append(ops, op{Insert: map[string]mediaInsert{
				"media": {Key: v.Key, ContentType: v.ContentType},
			}})
		case *model.CommentAnchor:
			ops = append(ops, op{Insert: map[string]interface{}{"comment": v.ThreadID}})
		case *model.MultipleChoiceBlock:
			ops = appendCustomOp(ops, "mcq", v)
		case *model.InfoBox:
			ops = append(ops, op{Insert: map[string]infoBoxInsert{
				"infobox": {Kind: v.Kind, Text: v.Text},
			}})
		}
	}

	data, err := json.Marshal(struct {
		Ops []op `json:"ops"`
	}{Ops: ops})
	if err != nil {
		return `{"ops":[]}`
	}
	return string(data)
}

// appendCustomOp embeds a node's tagged wire object as a custom typed
// insert, e.g. {"insert":{"table":{"type":"Table",...}}}.
func appendCustomOp(ops []op, key string, n model.Node) []op {
	raw, err := model.MarshalNode(n)
	if err != nil {
		return ops
	}
	return append(ops, op{Insert: map[string]json.RawMessage{key: raw}})
}

// appendTextOps emits one insert per styled span, or a single unattributed
// insert for plain text.
func appendTextOps(ops []op, text string, spans []model.InlineSpan) []op {
	if spans == nil {
		if text != "" {
			ops = append(ops, op{Insert: text})
		}
		return ops
	}
	for _, sp := range spans {
		attrs := spanAttributes(sp.Style)
		ops = append(ops, op{Insert: sp.Text, Attributes: attrs})
	}
	return ops
}

// spanAttributes maps an inline style onto delta attributes. Highlight maps
// to the widget's "background" attribute and the pixel font size to "size".
func spanAttributes(st model.InlineStyle) map[string]interface{} {
	attrs := map[string]interface{}{}
	if st.Bold {
		attrs["bold"] = true
	}
	if st.Italic {
		attrs["italic"] = true
	}
	if st.Underline {
		attrs["underline"] = true
	}
	if st.Code {
		attrs["code"] = true
	}
	if st.Link != "" {
		attrs["link"] = st.Link
	}
	if st.Color != "" {
		attrs["color"] = st.Color
	}
	if st.Highlight != "" {
		attrs["background"] = st.Highlight
	}
	if st.FontSizePx > 0 {
		attrs["size"] = fmt.Sprintf("%dpx", st.FontSizePx)
	}
	if len(attrs) == 0 {
		return nil
	}
	return attrs
}
