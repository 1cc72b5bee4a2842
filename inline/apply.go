package inline

import "github.com/tsawler/docedit/model"

// Apply applies a style delta to the half-open byte range [start, end) of
// text and returns the new span list. When spans is nil the text is treated
// as a single span with the default style. Range bounds are clamped to
// [0, len(text)] and end is floored to start; a range that collapses to zero
// length leaves the styling unchanged (the spans may still be synthesized
// from the plain text).
//
// Each existing span overlapping the range splits into up to three pieces:
// an unaffected prefix, the styled middle (existing style merged with the
// delta), and an unaffected suffix. Zero-length pieces are dropped, so the
// concatenated text of the result always equals the input text.
func Apply(text string, spans []model.InlineSpan, start, end int, delta StyleDelta) []model.InlineSpan {
	s := clamp(start, 0, len(text))
	e := clamp(end, 0, len(text))
	if e < s {
		e = s
	}

	if spans == nil {
		if text == "" {
			return nil
		}
		spans = []model.InlineSpan{{Text: text}}
	}

	out := make([]model.InlineSpan, 0, len(spans)+2)
	pos := 0
	for _, span := range spans {
		length := len(span.Text)
		spanStart := pos
		spanEnd := pos + length
		pos += length

		if e <= spanStart || s >= spanEnd {
			out = append(out, span)
			continue
		}

		localS := clamp(s-spanStart, 0, length)
		localE := clamp(e-spanStart, 0, length)
		if localS > 0 {
			out = append(out, model.InlineSpan{Text: span.Text[:localS], Style: span.Style})
		}
		if localS < localE {
			out = append(out, model.InlineSpan{
				Text:  span.Text[localS:localE],
				Style: delta.merge(span.Style),
			})
		}
		if localE < length {
			out = append(out, model.InlineSpan{Text: span.Text[localE:], Style: span.Style})
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
