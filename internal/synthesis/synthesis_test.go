package synthesis

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/statline/statline/internal/common"
	"github.com/statline/statline/internal/ir"
	"github.com/statline/statline/internal/llm"
	"github.com/statline/statline/internal/processor"
)

type fakeSynthesizer struct {
	rules processor.RuleSet
	raw   []byte
	err   error
	got   llm.SynthesisRequest
}

func (f *fakeSynthesizer) SynthesizeRules(_ context.Context, req llm.SynthesisRequest) (processor.RuleSet, []byte, error) {
	f.got = req
	return f.rules, f.raw, f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func block(id, text string, page int, x0, y0, x1, y1 float64) ir.Block {
	return ir.Block{
		ID:         id,
		Text:       text,
		BBox:       ir.BBox{X0: x0, Y0: y0, X1: x1, Y1: y1, Page: page},
		Confidence: 0.95,
		Type:       ir.BlockText,
	}
}

func exampleDoc() *ir.Document {
	blocks := []ir.Block{
		block("b0", "FINAL SCORE", 1, 0.10, 0.05, 0.30, 0.08),
		block("b1", "62-58", 1, 0.32, 0.05, 0.40, 0.08),
	}
	return &ir.Document{
		Filename:   "game.pdf",
		PageCount:  1,
		Pages:      []ir.PageDim{{Index: 0, Width: 2550, Height: 3300}},
		Blocks:     blocks,
		RawText:    "FINAL SCORE 62-58",
		LayoutHash: "abc123",
		Method:     "tesseract",
	}
}

func scoreRules() processor.RuleSet {
	return processor.RuleSet{
		Anchors: []processor.Anchor{
			{Name: "score_label", Patterns: []string{"FINAL SCORE"}, Required: true},
		},
		ExtractionOps: []processor.ExtractionOp{
			{Field: "final_score", Source: "anchor.score_label.text"},
		},
	}
}

func TestSynthesizeBuildsProcessor(t *testing.T) {
	fake := &fakeSynthesizer{rules: scoreRules(), raw: []byte(`{}`)}
	s := NewSynthesizer(fake, testLogger())

	proc, report, err := s.Synthesize(context.Background(), exampleDoc(),
		[]byte(`{"final_score":"FINAL SCORE"}`), "basketball", "tribune_final")
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if proc.Name != "tribune_final" {
		t.Errorf("Name = %q", proc.Name)
	}
	if proc.DocumentType != "basketball_box_score" {
		t.Errorf("DocumentType = %q, want canonical basketball_box_score", proc.DocumentType)
	}
	if proc.Version != 1 {
		t.Errorf("Version = %d, want 1", proc.Version)
	}
	if proc.LayoutHash != "abc123" {
		t.Errorf("LayoutHash = %q", proc.LayoutHash)
	}
	if proc.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("ID not assigned")
	}
	if report.Similarity < 0.9 {
		t.Errorf("Similarity = %v, want near 1 for a reproducing rule set", report.Similarity)
	}
	if report.LowSimilarity {
		t.Error("LowSimilarity should be false")
	}
	// the request carried a bounded summary, not the whole IR
	if !strings.Contains(fake.got.BlockSummary, "FINAL SCORE") {
		t.Errorf("BlockSummary missing block text:\n%s", fake.got.BlockSummary)
	}
	if fake.got.DocumentType != "basketball_box_score" {
		t.Errorf("request DocumentType = %q", fake.got.DocumentType)
	}
}

func TestSynthesizeLowSimilarity(t *testing.T) {
	fake := &fakeSynthesizer{rules: scoreRules()}
	s := NewSynthesizer(fake, testLogger())

	_, report, err := s.Synthesize(context.Background(), exampleDoc(),
		[]byte(`{"home_team":"Central","away_team":"Washburn","final":{"home":62,"away":58},"quarter_scores":[18,12,16,16]}`),
		"basketball_box_score", "p")
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if !report.LowSimilarity {
		t.Errorf("Similarity = %v; diverging output should be flagged low", report.Similarity)
	}
}

func TestSynthesizeInvalidRules(t *testing.T) {
	rules := scoreRules()
	rules.ExtractionOps[0].Source = "region.missing.column[0]"
	fake := &fakeSynthesizer{rules: rules}
	s := NewSynthesizer(fake, testLogger())

	_, _, err := s.Synthesize(context.Background(), exampleDoc(), []byte(`{}`), "basketball_box_score", "p")
	if err == nil {
		t.Fatal("expected error for rules referencing an undefined region")
	}
	if got := common.ErrorCode(err); got != common.CodeSynthesisParse {
		t.Errorf("ErrorCode = %q, want %q", got, common.CodeSynthesisParse)
	}
}

func TestSynthesizeModelError(t *testing.T) {
	fake := &fakeSynthesizer{err: errors.New("boom")}
	s := NewSynthesizer(fake, testLogger())

	_, _, err := s.Synthesize(context.Background(), exampleDoc(), []byte(`{}`), "basketball_box_score", "p")
	if err == nil {
		t.Fatal("expected error")
	}
	if got := common.ErrorCode(err); got != common.CodeSynthesisParse {
		t.Errorf("ErrorCode = %q, want %q", got, common.CodeSynthesisParse)
	}
}

func TestSynthesizeRejectsBadInputs(t *testing.T) {
	fake := &fakeSynthesizer{rules: scoreRules()}
	s := NewSynthesizer(fake, testLogger())

	if _, _, err := s.Synthesize(context.Background(), exampleDoc(), []byte(`{}`), "recipe_card", "p"); err == nil {
		t.Error("expected error for unknown document type")
	}
	if _, _, err := s.Synthesize(context.Background(), exampleDoc(), []byte(`not json`), "basketball_box_score", "p"); err == nil {
		t.Error("expected error for non-json desired output")
	}
}

func TestBuildBlockSummaryBounded(t *testing.T) {
	doc := exampleDoc()
	for i := 0; i < 500; i++ {
		doc.Blocks = append(doc.Blocks, block("x", strings.Repeat("LONGTEXT", 40), 1, 0.1, 0.5, 0.2, 0.52))
	}
	summary := BuildBlockSummary(doc, maxSummaryBlocks)
	lines := strings.Count(summary, "\n")
	if lines > maxSummaryBlocks+1 {
		t.Errorf("summary has %d lines, want at most %d", lines, maxSummaryBlocks+1)
	}
	for _, line := range strings.Split(summary, "\n") {
		if len(line) > maxBlockTextChars+80 {
			t.Errorf("line too long (%d bytes): %q", len(line), line[:80])
		}
	}
}

func TestOutputSimilarity(t *testing.T) {
	cases := []struct {
		name string
		a, b any
		min  float64
		max  float64
	}{
		{"identical", map[string]any{"a": 1.0}, map[string]any{"a": 1.0}, 1, 1},
		{"disjoint", map[string]any{"home": "Central"}, map[string]any{"x": 99.0}, 0, 0.5},
		{"one field off",
			map[string]any{"home": "Central", "away": "Washburn", "score": "62-58"},
			map[string]any{"home": "Central", "away": "Washburn", "score": "61-58"},
			0.9, 1,
		},
		{"both empty", nil, nil, 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := OutputSimilarity(tc.a, tc.b)
			if got < tc.min || got > tc.max {
				t.Errorf("OutputSimilarity = %v, want in [%v, %v]", got, tc.min, tc.max)
			}
		})
	}
}
