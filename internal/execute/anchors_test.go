package execute

import (
	"fmt"
	"testing"

	"github.com/statline/statline/internal/ir"
	"github.com/statline/statline/internal/processor"
)

func block(id, text string, page int, x0, y0, x1, y1 float64) ir.Block {
	return ir.Block{
		ID:         id,
		Text:       text,
		BBox:       ir.BBox{X0: x0, Y0: y0, X1: x1, Y1: y1, Page: page},
		Confidence: 0.9,
		Type:       ir.BlockText,
	}
}

// boxScoreDoc is a two-page box score: varsity on page 0, JV on page 1.
// Page 0 carries a header, a five-row player table between PLAYER and
// TOTALS, and the score line.
func boxScoreDoc() *ir.Document {
	doc := &ir.Document{
		Filename:  "tribune.pdf",
		PageCount: 2,
		Pages:     []ir.PageDim{{Index: 0, Width: 1, Height: 1}, {Index: 1, Width: 1, Height: 1}},
		Method:    "pdf-ocr",
	}
	add := func(b ir.Block) { doc.Blocks = append(doc.Blocks, b) }

	add(block("hdr", "VARSITY", 0, 0.10, 0.03, 0.30, 0.06))
	add(block("fin1", "FINAL", 0, 0.50, 0.03, 0.58, 0.06))
	add(block("fin2", "SCORE", 0, 0.59, 0.03, 0.67, 0.06))
	add(block("score", "62-58", 0, 0.72, 0.03, 0.80, 0.06))

	// deliberately appended out of reading order
	add(block("tot0", "TOTALS", 0, 0.10, 0.40, 0.22, 0.42))
	add(block("ply0", "PLAYER", 0, 0.10, 0.05, 0.22, 0.07))

	players := []struct {
		name  string
		fouls string
		oreb  string
		dreb  string
	}{
		{"BLEESS, KEVIN", "2", "3", "7"},
		{"OLSON, MARK", "1", "4", "6"},
		{"Raymond", "3", "1", "2"},
		{"Pribyl", "2", "2", "1"},
		{"Sikkink", "1", "0", "1"},
	}
	for i, p := range players {
		y := 0.10 + float64(i)*0.05
		add(block(fmt.Sprintf("n%d", i), p.name, 0, 0.10, y, 0.30, y+0.02))
		add(block(fmt.Sprintf("f%d", i), p.fouls, 0, 0.40, y, 0.44, y+0.02))
		add(block(fmt.Sprintf("o%d", i), p.oreb, 0, 0.55, y, 0.59, y+0.02))
		add(block(fmt.Sprintf("d%d", i), p.dreb, 0, 0.70, y, 0.74, y+0.02))
	}

	// page 1: JV table with the same landmarks
	add(block("ply1", "PLAYER", 1, 0.10, 0.05, 0.22, 0.07))
	add(block("jn0", "Smith", 1, 0.10, 0.10, 0.30, 0.12))
	add(block("jf0", "4", 1, 0.40, 0.10, 0.44, 0.12))
	add(block("jn1", "Jones", 1, 0.10, 0.15, 0.30, 0.17))
	add(block("jf1", "2", 1, 0.40, 0.15, 0.44, 0.17))
	add(block("tot1", "TOTALS", 1, 0.10, 0.20, 0.22, 0.22))

	return doc
}

func TestFindAnchorsOrdersOccurrences(t *testing.T) {
	doc := boxScoreDoc()
	matches := FindAnchors(doc, []processor.Anchor{
		{Name: "totals", Patterns: []string{"TOTALS"}},
	})
	ms := matches["totals"]
	if len(ms) != 2 {
		t.Fatalf("got %d matches, want 2", len(ms))
	}
	if ms[0].Block.BBox.Page != 0 || ms[1].Block.BBox.Page != 1 {
		t.Errorf("matches out of page order: %v then %v", ms[0].Block.BBox, ms[1].Block.BBox)
	}
}

func TestFindAnchorsOccurrenceHints(t *testing.T) {
	// two occurrences at y 0.05 and 0.40 on one page, appended out of order
	doc := &ir.Document{PageCount: 1}
	doc.Blocks = append(doc.Blocks,
		block("b", "TOTALS", 0, 0.1, 0.40, 0.2, 0.42),
		block("a", "TOTALS", 0, 0.1, 0.05, 0.2, 0.07),
	)

	first := FindAnchors(doc, []processor.Anchor{
		{Name: "t", Patterns: []string{"TOTALS"}, LocationHint: "first_occurrence"},
	})["t"]
	if len(first) != 1 || first[0].Block.BBox.Y0 != 0.05 {
		t.Errorf("first_occurrence: got %+v, want block at y 0.05", first)
	}

	second := FindAnchors(doc, []processor.Anchor{
		{Name: "t", Patterns: []string{"TOTALS"}, LocationHint: "second_occurrence"},
	})["t"]
	if len(second) != 1 || second[0].Block.BBox.Y0 != 0.40 {
		t.Errorf("second_occurrence: got %+v, want block at y 0.40", second)
	}

	last := FindAnchors(doc, []processor.Anchor{
		{Name: "t", Patterns: []string{"TOTALS"}, LocationHint: "last_occurrence"},
	})["t"]
	if len(last) != 1 || last[0].Block.BBox.Y0 != 0.40 {
		t.Errorf("last_occurrence: got %+v, want block at y 0.40", last)
	}
}

func TestFindAnchorsGeometricHints(t *testing.T) {
	doc := boxScoreDoc()
	top := FindAnchors(doc, []processor.Anchor{
		{Name: "p", Patterns: []string{"PLAYER"}, LocationHint: "top_third"},
	})["p"]
	if len(top) != 2 {
		t.Errorf("top_third: got %d matches, want 2", len(top))
	}

	bottom := FindAnchors(doc, []processor.Anchor{
		{Name: "t", Patterns: []string{"TOTALS"}, LocationHint: "bottom_half"},
	})["t"]
	if len(bottom) != 0 {
		t.Errorf("bottom_half: got %d matches, want 0", len(bottom))
	}

	right := FindAnchors(doc, []processor.Anchor{
		{Name: "s", Patterns: []string{"62-58"}, LocationHint: "right_half"},
	})["s"]
	if len(right) != 1 {
		t.Errorf("right_half: got %d matches, want 1", len(right))
	}
}

func TestFindAnchorsProximityMatch(t *testing.T) {
	doc := boxScoreDoc()
	ms := FindAnchors(doc, []processor.Anchor{
		{Name: "final", Patterns: []string{"FINAL SCORE"}},
	})["final"]
	if len(ms) != 1 {
		t.Fatalf("got %d matches, want 1", len(ms))
	}
	if ms[0].Block.Text != "FINAL SCORE" {
		t.Errorf("got synthesized text %q, want FINAL SCORE", ms[0].Block.Text)
	}
	bb := ms[0].Block.BBox
	if bb.X0 != 0.50 || bb.X1 != 0.67 {
		t.Errorf("synthesized bbox %+v does not span both words", bb)
	}
}

func TestFindAnchorsBackupPatterns(t *testing.T) {
	doc := boxScoreDoc()
	ms := FindAnchors(doc, []processor.Anchor{
		{Name: "roster", Patterns: []string{"LINEUP"}, BackupPatterns: []string{"PLAYER"}},
	})["roster"]
	if len(ms) == 0 {
		t.Fatal("backup pattern did not match")
	}
	if !ms[0].Backup {
		t.Error("match not flagged as backup")
	}
}

func TestFindAnchorsExactAndRegex(t *testing.T) {
	doc := boxScoreDoc()

	exact := FindAnchors(doc, []processor.Anchor{
		{Name: "v", Patterns: []string{"varsity"}, PatternType: "exact"},
	})["v"]
	if len(exact) != 1 {
		t.Errorf("exact: got %d matches, want 1", len(exact))
	}

	none := FindAnchors(doc, []processor.Anchor{
		{Name: "v", Patterns: []string{"VARS"}, PatternType: "exact"},
	})["v"]
	if len(none) != 0 {
		t.Errorf("exact substring: got %d matches, want 0", len(none))
	}

	re := FindAnchors(doc, []processor.Anchor{
		{Name: "score", Patterns: []string{`^\d+-\d+$`}, PatternType: "regex"},
	})["score"]
	if len(re) != 1 {
		t.Errorf("regex: got %d matches, want 1", len(re))
	}
}
