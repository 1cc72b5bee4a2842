package htmlconv

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"

	"github.com/tsawler/docedit/model"
)

// Import parses HTML from r, charset-aware, and maps recognized elements
// onto document nodes. Parsing is best-effort: unrecognized markup degrades
// to plain paragraphs or is skipped.
func Import(r io.Reader) (*model.Document, error) {
	cr, err := charset.NewReader(r, "")
	if err != nil {
		return nil, fmt.Errorf("detecting charset: %w", err)
	}
	root, err := html.Parse(cr)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	body := findElement(root, "body")
	if body == nil {
		body = root
	}

	doc := &model.Document{}
	importBlocks(body, doc)
	return doc, nil
}

// ImportString parses HTML from a string.
func ImportString(s string) (*model.Document, error) {
	return Import(strings.NewReader(s))
}

// importBlocks walks block-level elements, appending document nodes.
func importBlocks(n *html.Node, doc *model.Document) {
	if n.Type == html.ElementNode {
		if shouldSkipElement(n.Data) {
			return
		}
		switch n.Data {
		case "h1", "h2", "h3", "h4", "h5", "h6":
			level := int(n.Data[1] - '0')
			text, spans := extractInline(n)
			if text != "" {
				doc.Nodes = append(doc.Nodes, &model.Heading{Level: level, Text: text, Spans: spans})
			}
			return

		case "p":
			if class(n) == "mcq-question" {
				// Consumed by the surrounding mcq container.
				return
			}
			text, spans := extractInline(n)
			if text != "" {
				doc.Nodes = append(doc.Nodes, &model.Paragraph{Text: text, Spans: spans})
			}
			return

		case "table":
			if t := importTable(n); t != nil && len(t.Rows) > 0 {
				doc.Nodes = append(doc.Nodes, t)
			}
			return

		case "img":
			doc.Nodes = append(doc.Nodes, &model.Image{Src: attr(n, "src"), Alt: attr(n, "alt")})
			return

		case "span":
			if strings.Contains(class(n), "formula-inline") {
				doc.Nodes = append(doc.Nodes, &model.FormulaInline{TeX: textContent(n)})
				return
			}

		case "sup":
			if id := attr(n, "data-comment"); id != "" {
				doc.Nodes = append(doc.Nodes, &model.CommentAnchor{ThreadID: id})
				return
			}

		case "div":
			cls := class(n)
			switch {
			case hasAttr(n, "data-media"):
				doc.Nodes = append(doc.Nodes, &model.Media{Key: attr(n, "key"), ContentType: attr(n, "type")})
				return
			case strings.Contains(cls, "formula-block"):
				doc.Nodes = append(doc.Nodes, &model.FormulaBlock{TeX: textContent(n)})
				return
			case strings.Contains(cls, "infobox"):
				doc.Nodes = append(doc.Nodes, importInfoBox(n))
				return
			case strings.Contains(cls, "mcq"):
				doc.Nodes = append(doc.Nodes, importMultipleChoice(n))
				return
			}
			// Plain div: treat as a container and recurse.
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		importBlocks(c, doc)
	}
}

// extractInline collects the text and styled spans of an inline subtree.
// When no span carries any styling the spans are dropped and only the plain
// text is returned.
func extractInline(n *html.Node) (string, []model.InlineSpan) {
	var spans []model.InlineSpan
	collectSpans(n, model.InlineStyle{}, &spans)
	text := model.SpanText(spans)
	for _, sp := range spans {
		if !sp.Style.IsZero() {
			return text, spans
		}
	}
	return text, nil
}

func collectSpans(n *html.Node, st model.InlineStyle, spans *[]model.InlineSpan) {
	if n.Type == html.TextNode {
		text := strings.NewReplacer("\n", " ", "\r", " ", "\t", " ").Replace(n.Data)
		if strings.TrimSpace(text) == "" {
			return
		}
		*spans = append(*spans, model.InlineSpan{Text: text, Style: st})
		return
	}
	if n.Type != html.ElementNode {
		return
	}
	switch n.Data {
	case "strong", "b":
		st.Bold = true
	case "em", "i":
		st.Italic = true
	case "u":
		st.Underline = true
	case "code":
		st.Code = true
	case "a":
		if href := attr(n, "href"); href != "" {
			st.Link = href
		}
	case "span":
		applyStyleAttr(&st, attr(n, "style"))
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectSpans(c, st, spans)
	}
}

// applyStyleAttr reads the inline CSS properties the exporter writes:
// color, background, and font-size.
func applyStyleAttr(st *model.InlineStyle, style string) {
	for _, decl := range strings.Split(style, ";") {
		key, val, ok := cutDecl(decl)
		if !ok {
			continue
		}
		switch key {
		case "color":
			st.Color = val
		case "background":
			st.Highlight = val
		case "font-size":
			if px, err := strconv.Atoi(strings.TrimSuffix(val, "px")); err == nil {
				st.FontSizePx = px
			}
		}
	}
}

func cutDecl(decl string) (string, string, bool) {
	i := strings.IndexByte(decl, ':')
	if i < 0 {
		return "", "", false
	}
	return strings.TrimSpace(decl[:i]), strings.TrimSpace(decl[i+1:]), true
}

// importedCell is a cell as written in the markup, before grid expansion.
type importedCell struct {
	text       string
	spans      []model.InlineSpan
	colSpan    int
	rowSpan    int
	background string
}

// importTable rebuilds a table node from markup, reconstructing the
// placeholder cells that the exporter skipped. Cells are placed left to
// right per row, skipping grid positions covered by earlier spans.
func importTable(tableNode *html.Node) *model.Table {
	var rows [][]importedCell
	var collectRows func(n *html.Node)
	collectRows = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.Data {
			case "thead", "tbody", "tfoot":
				collectRows(c)
			case "tr":
				rows = append(rows, importRow(c))
			}
		}
	}
	collectRows(tableNode)
	if len(rows) == 0 {
		return nil
	}

	// First pass: place cells on the grid to learn its dimensions.
	occupied := map[[2]int]bool{}
	type placement struct {
		r, c int
		cell importedCell
	}
	var placements []placement
	height, width := 0, 0
	for r, row := range rows {
		c := 0
		for _, cell := range row {
			for occupied[[2]int{r, c}] {
				c++
			}
			placements = append(placements, placement{r: r, c: c, cell: cell})
			for rr := r; rr < r+cell.rowSpan; rr++ {
				for cc := c; cc < c+cell.colSpan; cc++ {
					occupied[[2]int{rr, cc}] = true
					if rr+1 > height {
						height = rr + 1
					}
					if cc+1 > width {
						width = cc + 1
					}
				}
			}
			c += cell.colSpan
		}
	}
	if len(rows) > height {
		height = len(rows)
	}

	t := &model.Table{Rows: make([]model.TableRow, height)}
	for i := range t.Rows {
		t.Rows[i] = model.NewTableRow(width)
	}
	for _, p := range placements {
		target := t.Cell(p.r, p.c)
		if target == nil {
			continue
		}
		target.Text = p.cell.text
		target.Spans = p.cell.spans
		target.ColSpan = p.cell.colSpan
		target.RowSpan = p.cell.rowSpan
		if p.cell.background != "" {
			target.Style.Background = p.cell.background
		}
		for rr := p.r; rr < p.r+p.cell.rowSpan && rr < height; rr++ {
			for cc := p.c; cc < p.c+p.cell.colSpan && cc < width; cc++ {
				if rr == p.r && cc == p.c {
					continue
				}
				t.Rows[rr].Cells[cc].Placeholder = true
			}
		}
	}
	return t
}

func importRow(tr *html.Node) []importedCell {
	var row []importedCell
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || (c.Data != "td" && c.Data != "th") {
			continue
		}
		text, spans := extractInline(c)
		cell := importedCell{text: strings.TrimSpace(text), spans: spans, colSpan: 1, rowSpan: 1}
		if v, err := strconv.Atoi(attr(c, "colspan")); err == nil && v > 1 {
			cell.colSpan = v
		}
		if v, err := strconv.Atoi(attr(c, "rowspan")); err == nil && v > 1 {
			cell.rowSpan = v
		}
		for _, decl := range strings.Split(attr(c, "style"), ";") {
			if key, val, ok := cutDecl(decl); ok && key == "background" {
				cell.background = val
			}
		}
		row = append(row, cell)
	}
	return row
}

func importInfoBox(n *html.Node) *model.InfoBox {
	kind := ""
	for _, part := range strings.Fields(class(n)) {
		if rest := strings.TrimPrefix(part, "infobox-"); rest != part {
			kind = rest
			break
		}
	}
	return &model.InfoBox{Kind: kind, Text: strings.TrimSpace(textContent(n))}
}

func importMultipleChoice(n *html.Node) *model.MultipleChoiceBlock {
	block := &model.MultipleChoiceBlock{
		Multiple: attr(n, "data-multiple") == "true",
	}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch {
			case n.Data == "p" && strings.Contains(class(n), "mcq-question"):
				block.Question = strings.TrimSpace(textContent(n))
				return
			case n.Data == "li":
				block.Options = append(block.Options, model.ChoiceOption{
					Text:    strings.TrimSpace(textContent(n)),
					Correct: attr(n, "data-correct") == "true",
				})
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return block
}

// shouldSkipElement reports whether the element never contributes document
// content.
func shouldSkipElement(tag string) bool {
	switch tag {
	case "script", "style", "noscript", "template", "svg", "math", "iframe", "object", "embed":
		return true
	}
	return false
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

func class(n *html.Node) string {
	return attr(n, "class")
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
