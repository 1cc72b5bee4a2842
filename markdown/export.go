package markdown

import (
	"fmt"
	"strings"

	"github.com/tsawler/docedit/htmlconv"
	"github.com/tsawler/docedit/model"
)

// Export renders the document as Markdown, one block per node separated by
// blank lines.
func Export(doc *model.Document) string {
	var sb strings.Builder
	for _, n := range doc.Nodes {
		switch v := n.(type) {
		case *model.Paragraph:
			sb.WriteString(renderText(v.Text, v.Spans))
			sb.WriteString("\n\n")
		case *model.Heading:
			sb.WriteString(strings.Repeat("#", v.ClampLevel()))
			sb.WriteString(" ")
			sb.WriteString(renderText(v.Text, v.Spans))
			sb.WriteString("\n\n")
		case *model.Table:
			if v.HasSpanningCells() {
				// GitHub-flavored tables cannot express spans.
				sb.WriteString(htmlconv.ExportNode(v))
			} else {
				sb.WriteString(renderTable(v))
			}
			sb.WriteString("\n\n")
		case *model.Image:
			fmt.Fprintf(&sb, "![%s](%s)\n\n", v.Alt, v.Src)
		case *model.Media:
			fmt.Fprintf(&sb, "%s\n\n", htmlconv.ExportNode(v))
		case *model.FormulaInline:
			fmt.Fprintf(&sb, "$%s$\n\n", v.TeX)
		case *model.FormulaBlock:
			fmt.Fprintf(&sb, "$$\n%s\n$$\n\n", v.TeX)
		case *model.MultipleChoiceBlock:
			sb.WriteString(renderMultipleChoice(v))
			sb.WriteString("\n\n")
		case *model.InfoBox:
			fmt.Fprintf(&sb, "> **%s:** %s\n\n", v.Kind, v.Text)
		case *model.CommentAnchor:
			// Comment anchors have no Markdown representation.
		}
	}
	out := strings.TrimRight(sb.String(), "\n")
	return out + "\n"
}

// renderText renders styled spans when present, plain text otherwise.
func renderText(text string, spans []model.InlineSpan) string {
	if spans == nil {
		return text
	}
	var sb strings.Builder
	for _, sp := range spans {
		sb.WriteString(renderSpan(sp))
	}
	return sb.String()
}

// renderSpan wraps escaped span text in its Markdown markers. Underline has
// no native Markdown form and uses an HTML u element; scalar style fields
// (color, highlight, size) are not representable and are dropped.
func renderSpan(sp model.InlineSpan) string {
	text := strings.NewReplacer("*", "\\*", "_", "\\_").Replace(sp.Text)
	st := sp.Style
	if st.Code {
		text = "`" + text + "`"
	}
	if st.Bold {
		text = "**" + text + "**"
	}
	if st.Italic {
		text = "_" + text + "_"
	}
	if st.Underline {
		text = "<u>" + text + "</u>"
	}
	if st.Link != "" {
		text = fmt.Sprintf("[%s](%s)", text, st.Link)
	}
	return text
}

// renderTable renders a GitHub-flavored table: header row, separator, body
// rows.
func renderTable(t *model.Table) string {
	if len(t.Rows) == 0 {
		return ""
	}
	var sb strings.Builder
	writeRow(&sb, t.Rows[0])
	sb.WriteString("|")
	for range t.Rows[0].Cells {
		sb.WriteString(" --- |")
	}
	sb.WriteString("\n")
	for _, row := range t.Rows[1:] {
		writeRow(&sb, row)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func writeRow(sb *strings.Builder, row model.TableRow) {
	sb.WriteString("|")
	for _, cell := range row.Cells {
		sb.WriteString(" ")
		sb.WriteString(escapeCell(strings.TrimSpace(cell.Text)))
		sb.WriteString(" |")
	}
	sb.WriteString("\n")
}

// escapeCell escapes the characters that break a table row.
func escapeCell(s string) string {
	return strings.NewReplacer("\\", "\\\\", "|", "\\|", "\n", " ").Replace(s)
}

// renderMultipleChoice renders the block as a question followed by a task
// list, checking the correct options.
func renderMultipleChoice(m *model.MultipleChoiceBlock) string {
	var sb strings.Builder
	sb.WriteString(m.Question)
	for _, opt := range m.Options {
		mark := " "
		if opt.Correct {
			mark = "x"
		}
		fmt.Fprintf(&sb, "\n- [%s] %s", mark, opt.Text)
	}
	return sb.String()
}
