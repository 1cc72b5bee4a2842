package htmlconv

import (
	"testing"

	"github.com/tsawler/docedit/model"
)

func TestImportString_Blocks(t *testing.T) {
	doc, err := ImportString(`
		<h2>Section</h2>
		<p>Plain paragraph.</p>
		<img src="cat.png" alt="a cat">
		<div class="formula-block">x^2</div>
		<div class="infobox infobox-warning">Careful!</div>
	`)
	if err != nil {
		t.Fatalf("ImportString() error: %v", err)
	}

	if doc.NodeCount() != 5 {
		t.Fatalf("NodeCount() = %d, want 5", doc.NodeCount())
	}

	h := doc.NodeAt(0).(*model.Heading)
	if h.Level != 2 || h.Text != "Section" {
		t.Errorf("heading = %+v", h)
	}
	if p := doc.NodeAt(1).(*model.Paragraph); p.Text != "Plain paragraph." {
		t.Errorf("paragraph text = %q", p.Text)
	}
	img := doc.NodeAt(2).(*model.Image)
	if img.Src != "cat.png" || img.Alt != "a cat" {
		t.Errorf("image = %+v", img)
	}
	if f := doc.NodeAt(3).(*model.FormulaBlock); f.TeX != "x^2" {
		t.Errorf("formula = %+v", f)
	}
	box := doc.NodeAt(4).(*model.InfoBox)
	if box.Kind != "warning" || box.Text != "Careful!" {
		t.Errorf("info box = %+v", box)
	}
}

func TestImportString_InlineStyles(t *testing.T) {
	doc, err := ImportString(`<p>plain <strong>bold</strong> and <em>italic <u>under</u></em> <a href="https://x.example">link</a></p>`)
	if err != nil {
		t.Fatalf("ImportString() error: %v", err)
	}
	if doc.NodeCount() != 1 {
		t.Fatalf("NodeCount() = %d, want 1", doc.NodeCount())
	}

	p := doc.NodeAt(0).(*model.Paragraph)
	if p.Spans == nil {
		t.Fatal("expected spans for styled markup")
	}
	if got := model.SpanText(p.Spans); got != p.Text {
		t.Errorf("spans concatenate to %q, text is %q", got, p.Text)
	}

	var boldText, nestedText, linkText string
	for _, sp := range p.Spans {
		if sp.Style.Bold {
			boldText += sp.Text
		}
		if sp.Style.Italic && sp.Style.Underline {
			nestedText += sp.Text
		}
		if sp.Style.Link != "" {
			linkText += sp.Text
		}
	}
	if boldText != "bold" {
		t.Errorf("bold text = %q, want bold", boldText)
	}
	if nestedText != "under" {
		t.Errorf("italic+underline text = %q, want under", nestedText)
	}
	if linkText != "link" {
		t.Errorf("linked text = %q, want link", linkText)
	}
}

func TestImportString_StyleAttr(t *testing.T) {
	doc, err := ImportString(`<p><span style="color: #f00; background: #ff0; font-size: 18px">hot</span></p>`)
	if err != nil {
		t.Fatalf("ImportString() error: %v", err)
	}

	p := doc.NodeAt(0).(*model.Paragraph)
	if p.Spans == nil {
		t.Fatal("expected spans")
	}
	st := p.Spans[0].Style
	if st.Color != "#f00" || st.Highlight != "#ff0" || st.FontSizePx != 18 {
		t.Errorf("style = %+v", st)
	}
}

func TestImportString_UnstyledSpansDropped(t *testing.T) {
	doc, err := ImportString(`<p>no styling at all</p>`)
	if err != nil {
		t.Fatalf("ImportString() error: %v", err)
	}
	p := doc.NodeAt(0).(*model.Paragraph)
	if p.Spans != nil {
		t.Errorf("plain text should carry no spans, got %+v", p.Spans)
	}
}

func TestImportString_TableWithSpans(t *testing.T) {
	doc, err := ImportString(`
		<table>
			<tr><td colspan="2" rowspan="2">A</td><td>B</td></tr>
			<tr><td>C</td></tr>
			<tr><td>D</td><td>E</td><td>F</td></tr>
		</table>
	`)
	if err != nil {
		t.Fatalf("ImportString() error: %v", err)
	}

	tbl := doc.NodeAt(0).(*model.Table)
	if tbl.RowCount() != 3 {
		t.Fatalf("RowCount() = %d, want 3", tbl.RowCount())
	}

	master := tbl.Cell(0, 0)
	if master.Text != "A" || master.ColSpan != 2 || master.RowSpan != 2 {
		t.Errorf("master = %+v, want A spanning 2x2", master)
	}
	// The grid reconstructs the placeholders the markup omits.
	for _, pos := range [][2]int{{0, 1}, {1, 0}, {1, 1}} {
		if !tbl.Cell(pos[0], pos[1]).Placeholder {
			t.Errorf("cell (%d,%d) should be a placeholder", pos[0], pos[1])
		}
	}
	// B lands to the right of the span, C below it.
	if got := tbl.Cell(0, 2).Text; got != "B" {
		t.Errorf("cell (0,2) = %q, want B", got)
	}
	if got := tbl.Cell(1, 2).Text; got != "C" {
		t.Errorf("cell (1,2) = %q, want C", got)
	}
	if got := tbl.Cell(2, 0).Text; got != "D" {
		t.Errorf("cell (2,0) = %q, want D", got)
	}
}

func TestImportString_MultipleChoice(t *testing.T) {
	doc, err := ImportString(`
		<div class="mcq" data-multiple="true">
			<p class="mcq-question">Pick all that apply</p>
			<ul>
				<li data-correct="true">right</li>
				<li data-correct="false">wrong</li>
			</ul>
		</div>
	`)
	if err != nil {
		t.Fatalf("ImportString() error: %v", err)
	}

	block := doc.NodeAt(0).(*model.MultipleChoiceBlock)
	if block.Question != "Pick all that apply" || !block.Multiple {
		t.Errorf("block = %+v", block)
	}
	if len(block.Options) != 2 || !block.Options[0].Correct || block.Options[1].Correct {
		t.Errorf("options = %+v", block.Options)
	}
}

func TestImportString_SkipsScripts(t *testing.T) {
	doc, err := ImportString(`<script>alert("p")</script><p>real</p><style>p{}</style>`)
	if err != nil {
		t.Fatalf("ImportString() error: %v", err)
	}
	if doc.NodeCount() != 1 {
		t.Fatalf("NodeCount() = %d, want 1", doc.NodeCount())
	}
	if p := doc.NodeAt(0).(*model.Paragraph); p.Text != "real" {
		t.Errorf("paragraph = %q", p.Text)
	}
}

func TestExportImport_RoundTrip(t *testing.T) {
	tbl := model.NewTable(2, 2)
	tbl.Cell(0, 0).Text = "A B"
	tbl.Cell(0, 0).ColSpan = 2
	tbl.Cell(0, 1).Placeholder = true
	tbl.Cell(1, 0).Text = "C"
	tbl.Cell(1, 1).Text = "D"

	doc := &model.Document{Nodes: []model.Node{
		&model.Heading{Level: 1, Text: "Title"},
		&model.Paragraph{
			Text: "hello world",
			Spans: []model.InlineSpan{
				{Text: "hello ", Style: model.InlineStyle{Bold: true}},
				{Text: "world", Style: model.InlineStyle{}},
			},
		},
		tbl,
		&model.InfoBox{Kind: "note", Text: "remember"},
	}}

	back, err := ImportString(Export(doc))
	if err != nil {
		t.Fatalf("round trip error: %v", err)
	}
	if back.NodeCount() != 4 {
		t.Fatalf("NodeCount() = %d, want 4", back.NodeCount())
	}

	if h := back.NodeAt(0).(*model.Heading); h.Text != "Title" || h.Level != 1 {
		t.Errorf("heading = %+v", h)
	}
	p := back.NodeAt(1).(*model.Paragraph)
	if p.Text != "hello world" {
		t.Errorf("paragraph text = %q", p.Text)
	}
	if p.Spans == nil || !p.Spans[0].Style.Bold {
		t.Errorf("bold span lost: %+v", p.Spans)
	}

	backTbl := back.NodeAt(2).(*model.Table)
	if backTbl.Cell(0, 0).ColSpan != 2 || !backTbl.Cell(0, 1).Placeholder {
		t.Error("table span structure lost in round trip")
	}
	if backTbl.Cell(1, 1).Text != "D" {
		t.Errorf("cell (1,1) = %q, want D", backTbl.Cell(1, 1).Text)
	}
}
