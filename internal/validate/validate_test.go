package validate

import (
	"testing"

	"github.com/statline/statline/internal/processor"
)

func compiledChecks(t *testing.T, vals []processor.Validation) []processor.CompiledCheck {
	t.Helper()
	p := &processor.Processor{
		Name: "t",
		RuleSet: processor.RuleSet{
			Anchors:     []processor.Anchor{{Name: "a", Patterns: []string{"x"}}},
			Validations: vals,
		},
	}
	c, err := processor.Compile(p)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	return c.Checks
}

func TestRunReportsSeverities(t *testing.T) {
	checks := compiledChecks(t, []processor.Validation{
		{Name: "score_positive", Check: "game.score > 0", Severity: "error"},
		{Name: "score_plausible", Check: "game.score < 200", Severity: "warning"},
	})
	data := map[string]any{"game": map[string]any{"score": float64(-3)}}

	results := Run(data, checks)
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Passed || results[0].Severity != "error" {
		t.Errorf("score_positive: got %+v, want failed error", results[0])
	}
	if !results[1].Passed {
		t.Errorf("score_plausible: got %+v, want passed", results[1])
	}
}

func TestRunCollectsEvalWarnings(t *testing.T) {
	checks := compiledChecks(t, []processor.Validation{
		{Name: "totals_match", Check: "sum(players[].points) == game.score", Severity: "warning"},
	})
	results := Run(map[string]any{}, checks)
	if len(results[0].Warnings) == 0 {
		t.Error("expected eval warnings for missing fields")
	}
}

func TestScoreWeights(t *testing.T) {
	full := Counts{AnchorsMatched: 2, AnchorsRequired: 2, FieldsResolved: 4, FieldsTotal: 4, ChecksPassed: 1, ChecksTotal: 1}
	if got := Score(full); got != 100 {
		t.Errorf("got %v, want 100", got)
	}

	none := Counts{AnchorsRequired: 2, FieldsTotal: 4, ChecksTotal: 1}
	if got := Score(none); got != 0 {
		t.Errorf("got %v, want 0", got)
	}

	// 0.4*0.5 + 0.4*0.5 + 0.2*1, rounded: the half case must land on
	// exactly 60 despite float64 accumulation
	half := Counts{AnchorsMatched: 1, AnchorsRequired: 2, FieldsResolved: 2, FieldsTotal: 4, ChecksTotal: 0}
	if got := Score(half); got != 60 {
		t.Errorf("got %v, want exactly 60", got)
	}
}

func TestScoreIsMonotoneInAnchors(t *testing.T) {
	base := Counts{AnchorsRequired: 10, FieldsResolved: 5, FieldsTotal: 10, ChecksPassed: 1, ChecksTotal: 2}
	prev := -1.0
	for matched := 0; matched <= 10; matched++ {
		c := base
		c.AnchorsMatched = matched
		got := Score(c)
		if got < prev {
			t.Fatalf("score dropped from %v to %v at %d anchors", prev, got, matched)
		}
		prev = got
	}
}

func TestScoreEmptyDenominators(t *testing.T) {
	// a processor with no required anchors and no checks is not punished
	c := Counts{FieldsResolved: 3, FieldsTotal: 3}
	if got := Score(c); got != 100 {
		t.Errorf("got %v, want 100", got)
	}
}

func TestScoreStaysInRange(t *testing.T) {
	c := Counts{AnchorsMatched: 99, AnchorsRequired: 2, FieldsResolved: -1, FieldsTotal: 4}
	got := Score(c)
	if got < 0 || got > 100 {
		t.Errorf("score %v out of range", got)
	}
}
