package inline

import (
	"github.com/tidwall/gjson"

	"github.com/tsawler/docedit/model"
)

// StyleDelta describes a style change to apply over a text range. Boolean
// flags are OR'd into the existing style; scalar fields overwrite only when
// set (non-empty string, non-zero size).
type StyleDelta struct {
	Bold       bool
	Italic     bool
	Underline  bool
	Code       bool
	Link       string
	Color      string
	Highlight  string
	FontSizePx int
}

// ParseStyleDelta reads a style delta from a JSON payload. Parsing is
// tolerant: recognized fields are applied, invalid or unrecognized ones are
// ignored field by field. The second return value is false when the payload
// is not valid JSON at all, in which case the style application should be
// skipped entirely.
func ParseStyleDelta(styleJSON string) (StyleDelta, bool) {
	if !gjson.Valid(styleJSON) {
		return StyleDelta{}, false
	}
	v := gjson.Parse(styleJSON)
	var d StyleDelta
	d.Bold = v.Get("bold").Bool()
	d.Italic = v.Get("italic").Bool()
	d.Underline = v.Get("underline").Bool()
	d.Code = v.Get("code").Bool()
	if link := v.Get("link"); link.Type == gjson.String {
		d.Link = link.String()
	}
	if c := v.Get("color"); c.Type == gjson.String {
		d.Color = c.String()
	}
	if h := v.Get("highlight"); h.Type == gjson.String {
		d.Highlight = h.String()
	}
	if fs := v.Get("font_size_px"); fs.Type == gjson.Number {
		d.FontSizePx = int(fs.Int())
	}
	return d, true
}

// merge overlays the delta onto an existing style.
func (d StyleDelta) merge(base model.InlineStyle) model.InlineStyle {
	out := base
	if d.Bold {
		out.Bold = true
	}
	if d.Italic {
		out.Italic = true
	}
	if d.Underline {
		out.Underline = true
	}
	if d.Code {
		out.Code = true
	}
	if d.Link != "" {
		out.Link = d.Link
	}
	if d.Color != "" {
		out.Color = d.Color
	}
	if d.Highlight != "" {
		out.Highlight = d.Highlight
	}
	if d.FontSizePx != 0 {
		out.FontSizePx = d.FontSizePx
	}
	return out
}
