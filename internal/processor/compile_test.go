package processor

import (
	"strings"
	"testing"

	"github.com/statline/statline/internal/common"
)

func validProcessor() *Processor {
	return &Processor{
		Name:         "tribune_box_score",
		DocumentType: "basketball_box_score",
		Version:      1,
		RuleSet: RuleSet{
			Anchors: []Anchor{
				{Name: "player_stats", Patterns: []string{"PLAYER"}, Required: true},
				{Name: "totals", Patterns: []string{"TOTALS"}},
			},
			Regions: []Region{
				{Name: "players", Type: "table", StartAnchor: "player_stats", EndAnchor: "totals"},
			},
			ExtractionOps: []ExtractionOp{
				{Field: "players[].name", Source: "region.players.column[0]", Transform: "normalize_name"},
				{Field: "players[].points", Source: "region.players.column[1]", Transform: "to_int"},
				{Field: "game.title", Source: "anchor.player_stats.text"},
			},
			Calculations: []Calculation{
				{Field: "totals.points", Formula: "sum(players[].points)"},
			},
			Validations: []Validation{
				{Name: "has_players", Check: "len(players[]) > 0", Severity: "error"},
			},
		},
	}
}

func TestValidateAcceptsWellFormed(t *testing.T) {
	if err := validProcessor().Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateAcceptsEveryRegionType(t *testing.T) {
	for _, typ := range []string{"table", "key_value", "list", "free_text"} {
		p := validProcessor()
		p.Regions[0].Type = typ
		if err := p.Validate(); err != nil {
			t.Errorf("region type %q rejected: %v", typ, err)
		}
	}
}

func TestValidateCatchesProblems(t *testing.T) {
	cases := []struct {
		name string
		mut  func(p *Processor)
		want string
	}{
		{"no anchors", func(p *Processor) { p.Anchors = nil }, "no anchors"},
		{"region bad anchor", func(p *Processor) { p.Regions[0].StartAnchor = "nope" }, `start anchor "nope"`},
		{"bad source", func(p *Processor) { p.ExtractionOps[0].Source = "players.column[0]" }, "bad source"},
		{"bad transform", func(p *Processor) { p.ExtractionOps[0].Transform = "titlecase" }, "unknown transform"},
		{"bad formula", func(p *Processor) { p.Calculations[0].Formula = "sum(" }, "calculation"},
		{"two array segments", func(p *Processor) { p.ExtractionOps[0].Field = "a[].b[].c" }, "more than one []"},
		{"bad severity", func(p *Processor) { p.Validations[0].Severity = "fatal" }, "unknown severity"},
		{"bad hint", func(p *Processor) { p.Anchors[0].LocationHint = "middle" }, "unknown location hint"},
		{"bad regex", func(p *Processor) {
			p.Anchors[0].PatternType = "regex"
			p.Anchors[0].Patterns = []string{"(["}
		}, "bad regex"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validProcessor()
			tc.mut(p)
			err := p.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if code := common.ErrorCode(err); code != common.CodeProcessorInvalid {
				t.Errorf("got code %q, want %q", code, common.CodeProcessorInvalid)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestParseSource(t *testing.T) {
	s, err := ParseSource("region.players.column[3]")
	if err != nil {
		t.Fatalf("ParseSource: %v", err)
	}
	if s.Kind != "region" || s.Name != "players" || s.Attr != "column" || s.Column != 3 {
		t.Errorf("got %+v", s)
	}

	s, err = ParseSource("anchor.totals.text")
	if err != nil {
		t.Fatalf("ParseSource: %v", err)
	}
	if s.Kind != "anchor" || s.Attr != "text" {
		t.Errorf("got %+v", s)
	}

	for _, raw := range []string{
		"anchor.totals.column[0]",
		"region.players",
		"table.players.text",
		"region.players.column[x]",
	} {
		if _, err := ParseSource(raw); err == nil {
			t.Errorf("ParseSource(%q): expected error", raw)
		}
	}
}

func TestCompileParsesEverythingOnce(t *testing.T) {
	c, err := Compile(validProcessor())
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if len(c.Ops) != 3 || len(c.Calcs) != 1 || len(c.Checks) != 1 {
		t.Errorf("got %d ops, %d calcs, %d checks", len(c.Ops), len(c.Calcs), len(c.Checks))
	}
	if c.Calcs[0].Expr == nil {
		t.Error("calculation AST missing")
	}
}

func TestCompileLenientSetsAsideBadCalcs(t *testing.T) {
	p := validProcessor()
	p.Calculations = append(p.Calculations, Calculation{Field: "totals.bad", Formula: "sum("})
	c, err := CompileLenient(p)
	if err != nil {
		t.Fatalf("CompileLenient: %v", err)
	}
	if len(c.Calcs) != 1 {
		t.Errorf("got %d good calcs, want 1", len(c.Calcs))
	}
	if len(c.BadCalcs) != 1 {
		t.Errorf("got %d bad calcs, want 1", len(c.BadCalcs))
	}
}

func TestJSONRoundTrip(t *testing.T) {
	p := validProcessor()
	data, err := p.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	back, err := FromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if back.Name != p.Name || len(back.Anchors) != 2 || len(back.ExtractionOps) != 3 {
		t.Errorf("round trip lost fields: %+v", back)
	}
}

func TestFromJSONRejectsInvalid(t *testing.T) {
	if _, err := FromJSON([]byte(`{"name":"x","anchors":[]}`)); err == nil {
		t.Fatal("expected error for processor without anchors")
	}
}
