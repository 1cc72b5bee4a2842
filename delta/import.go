package delta

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/tsawler/docedit/model"
)

// Import parses a delta op-log JSON string into a document. Text runs
// accumulate until a newline insert closes the line as a paragraph, or as a
// heading when the newline carries a "header" attribute. Recognized embeds
// map back onto their node types; unrecognized ops are skipped.
func Import(s string) *model.Document {
	doc := &model.Document{}
	if !gjson.Valid(s) {
		return doc
	}

	var pending []model.InlineSpan
	flush := func(headerLevel int) {
		text := model.SpanText(pending)
		spans := pending
		pending = nil
		styled := false
		for _, sp := range spans {
			if !sp.Style.IsZero() {
				styled = true
				break
			}
		}
		if !styled {
			spans = nil
		}
		if text == "" {
			return
		}
		if headerLevel > 0 {
			h := &model.Heading{Level: headerLevel, Text: text, Spans: spans}
			h.Level = h.ClampLevel()
			doc.Nodes = append(doc.Nodes, h)
			return
		}
		doc.Nodes = append(doc.Nodes, &model.Paragraph{Text: text, Spans: spans})
	}

	gjson.Get(s, "ops").ForEach(func(_, opVal gjson.Result) bool {
		insert := opVal.Get("insert")
		attrs := opVal.Get("attributes")

		if insert.Type == gjson.String {
			style := parseAttributes(attrs)
			header := 0
			if h := attrs.Get("header"); h.Type == gjson.Number {
				header = int(h.Int())
			}
			parts := strings.Split(insert.String(), "\n")
			for i, part := range parts {
				if part != "" {
					pending = append(pending, model.InlineSpan{Text: part, Style: style})
				}
				if i < len(parts)-1 {
					flush(header)
				}
			}
			return true
		}

		if insert.IsObject() {
			if n := importEmbed(insert); n != nil {
				flush(0)
				doc.Nodes = append(doc.Nodes, n)
			}
		}
		return true
	})
	flush(0)
	return doc
}

// importEmbed maps a non-text insert object onto a node, or nil when the
// embed type is not recognized.
func importEmbed(insert gjson.Result) model.Node {
	if v := insert.Get("image"); v.Exists() {
		return &model.Image{Src: v.String()}
	}
	if v := insert.Get("formula"); v.Exists() {
		return &model.FormulaInline{TeX: v.String()}
	}
	if v := insert.Get("comment"); v.Exists() {
		return &model.CommentAnchor{ThreadID: v.String()}
	}
	if v := insert.Get("media"); v.IsObject() {
		return &model.Media{
			Key:         v.Get("key").String(),
			ContentType: v.Get("content_type").String(),
		}
	}
	if v := insert.Get("infobox"); v.IsObject() {
		return &model.InfoBox{Kind: v.Get("kind").String(), Text: v.Get("text").String()}
	}
	if v := insert.Get("table"); v.IsObject() {
		if n, err := model.UnmarshalNode([]byte(v.Raw)); err == nil {
			if t, ok := n.(*model.Table); ok {
				return t
			}
		}
	}
	if v := insert.Get("mcq"); v.IsObject() {
		if n, err := model.UnmarshalNode([]byte(v.Raw)); err == nil {
			if m, ok := n.(*model.MultipleChoiceBlock); ok {
				return m
			}
		}
	}
	return nil
}

// parseAttributes reads the inline attributes of a text insert, ignoring any
// field whose value has the wrong type.
func parseAttributes(attrs gjson.Result) model.InlineStyle {
	var st model.InlineStyle
	if !attrs.IsObject() {
		return st
	}
	st.Bold = attrs.Get("bold").Type == gjson.True
	st.Italic = attrs.Get("italic").Type == gjson.True
	st.Underline = attrs.Get("underline").Type == gjson.True
	st.Code = attrs.Get("code").Type == gjson.True
	if v := attrs.Get("link"); v.Type == gjson.String {
		st.Link = v.String()
	}
	if v := attrs.Get("color"); v.Type == gjson.String {
		st.Color = v.String()
	}
	if v := attrs.Get("background"); v.Type == gjson.String {
		st.Highlight = v.String()
	}
	if v := attrs.Get("size"); v.Type == gjson.String {
		if px, err := strconv.Atoi(strings.TrimSuffix(v.String(), "px")); err == nil && px > 0 {
			st.FontSizePx = px
		}
	}
	return st
}
