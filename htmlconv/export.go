package htmlconv

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/docedit/model"
)

// Export renders the document as HTML markup wrapped in a div.doc
// container.
func Export(doc *model.Document) string {
	var sb strings.Builder
	sb.WriteString("<div class=\"doc\">\n")
	for _, n := range doc.Nodes {
		sb.WriteString("  ")
		sb.WriteString(ExportNode(n))
		sb.WriteString("\n")
	}
	sb.WriteString("</div>")
	return sb.String()
}

// ExportNode renders a single node as HTML markup without the document
// wrapper.
func ExportNode(n model.Node) string {
	switch v := n.(type) {
	case *model.Paragraph:
		return "<p>" + renderText(v.Text, v.Spans) + "</p>"
	case *model.Heading:
		lvl := v.ClampLevel()
		return fmt.Sprintf("<h%d>%s</h%d>", lvl, renderText(v.Text, v.Spans), lvl)
	case *model.Table:
		return renderTable(v)
	case *model.Image:
		return fmt.Sprintf("<img src=%q alt=%q/>", html.EscapeString(v.Src), html.EscapeString(v.Alt))
	case *model.Media:
		return fmt.Sprintf("<div data-media key=%q type=%q></div>",
			html.EscapeString(v.Key), html.EscapeString(v.ContentType))
	case *model.FormulaInline:
		return fmt.Sprintf("<span class=\"formula-inline\">%s</span>", html.EscapeString(v.TeX))
	case *model.FormulaBlock:
		return fmt.Sprintf("<div class=\"formula-block\">%s</div>", html.EscapeString(v.TeX))
	case *model.MultipleChoiceBlock:
		return renderMultipleChoice(v)
	case *model.InfoBox:
		return fmt.Sprintf("<div class=\"infobox infobox-%s\">%s</div>",
			html.EscapeString(v.Kind), html.EscapeString(v.Text))
	case *model.CommentAnchor:
		return fmt.Sprintf("<sup data-comment=%q></sup>", html.EscapeString(v.ThreadID))
	default:
		return ""
	}
}

// renderText renders styled spans when present, escaped plain text
// otherwise.
func renderText(text string, spans []model.InlineSpan) string {
	if spans == nil {
		return html.EscapeString(text)
	}
	var sb strings.Builder
	for _, sp := range spans {
		sb.WriteString(renderSpan(sp))
	}
	return sb.String()
}

// renderSpan wraps a span's escaped text in its style elements. The wrap
// order is fixed: code innermost, then underline, italic, bold, then a
// styled span for color/highlight/size, then the link outermost.
func renderSpan(sp model.InlineSpan) string {
	inner := html.EscapeString(sp.Text)
	st := sp.Style
	if st.Code {
		inner = "<code>" + inner + "</code>"
	}
	if st.Underline {
		inner = "<u>" + inner + "</u>"
	}
	if st.Italic {
		inner = "<em>" + inner + "</em>"
	}
	if st.Bold {
		inner = "<strong>" + inner + "</strong>"
	}
	if css := spanCSS(st); css != "" {
		inner = fmt.Sprintf("<span style=%q>%s</span>", css, inner)
	}
	if st.Link != "" {
		inner = fmt.Sprintf("<a href=%q>%s</a>", html.EscapeString(st.Link), inner)
	}
	return inner
}

// spanCSS builds the style attribute for the scalar style fields.
func spanCSS(st model.InlineStyle) string {
	var parts []string
	if st.Color != "" {
		parts = append(parts, "color:"+st.Color)
	}
	if st.Highlight != "" {
		parts = append(parts, "background:"+st.Highlight)
	}
	if st.FontSizePx > 0 {
		parts = append(parts, fmt.Sprintf("font-size:%dpx", st.FontSizePx))
	}
	return strings.Join(parts, ";")
}

func renderTable(t *model.Table) string {
	var sb strings.Builder
	sb.WriteString("<table data-doc-table>\n")
	for _, row := range t.Rows {
		sb.WriteString("    <tr>\n")
		for _, cell := range row.Cells {
			if cell.Placeholder {
				continue
			}
			sb.WriteString("      <td")
			if cell.ColSpan > 1 {
				fmt.Fprintf(&sb, " colspan=\"%d\"", cell.ColSpan)
			}
			if cell.RowSpan > 1 {
				fmt.Fprintf(&sb, " rowspan=\"%d\"", cell.RowSpan)
			}
			if cell.Style.Background != "" {
				fmt.Fprintf(&sb, " style=\"background:%s\"", html.EscapeString(cell.Style.Background))
			}
			sb.WriteString(">")
			sb.WriteString(renderText(cell.Text, cell.Spans))
			sb.WriteString("</td>\n")
		}
		sb.WriteString("    </tr>\n")
	}
	sb.WriteString("  </table>")
	return sb.String()
}

func renderMultipleChoice(m *model.MultipleChoiceBlock) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<div class=\"mcq\" data-multiple=\"%t\">\n", m.Multiple)
	fmt.Fprintf(&sb, "    <p class=\"mcq-question\">%s</p>\n", html.EscapeString(m.Question))
	sb.WriteString("    <ul>\n")
	for _, opt := range m.Options {
		fmt.Fprintf(&sb, "      <li data-correct=\"%t\">%s</li>\n", opt.Correct, html.EscapeString(opt.Text))
	}
	sb.WriteString("    </ul>\n")
	sb.WriteString("  </div>")
	return sb.String()
}
