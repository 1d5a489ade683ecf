package execute

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/statline/statline/constants"
	"github.com/statline/statline/internal/common"
	"github.com/statline/statline/internal/processor"
)

func boxScoreProcessor() *processor.Processor {
	return &processor.Processor{
		Name:         "tribune_box_score",
		DocumentType: "basketball_box_score",
		Version:      1,
		RuleSet: processor.RuleSet{
			Anchors: []processor.Anchor{
				{Name: "title", Patterns: []string{"VARSITY"}},
				{Name: "varsity_table", Patterns: []string{"PLAYER"}, LocationHint: "first_occurrence", Required: true},
				{Name: "varsity_totals", Patterns: []string{"TOTALS"}, LocationHint: "first_occurrence"},
				{Name: "jv_table", Patterns: []string{"PLAYER"}, LocationHint: "second_occurrence"},
				{Name: "jv_totals", Patterns: []string{"TOTALS"}, LocationHint: "second_occurrence"},
				{Name: "injuries", Patterns: []string{"INJURY REPORT"}},
			},
			Regions: []processor.Region{
				{Name: "varsity", Type: "table", StartAnchor: "varsity_table", EndAnchor: "varsity_totals"},
				{Name: "jv", Type: "table", StartAnchor: "jv_table", EndAnchor: "jv_totals"},
				{Name: "injuries", Type: "free_text", StartAnchor: "injuries"},
			},
			ExtractionOps: []processor.ExtractionOp{
				{Field: "title", Source: "anchor.title.text"},
				{Field: "players[].name", Source: "region.varsity.column[0]", Transform: "normalize_name"},
				{Field: "players[].fouls", Source: "region.varsity.column[1]", Transform: "to_int"},
				{Field: "players[].oreb", Source: "region.varsity.column[2]", Transform: "to_int"},
				{Field: "players[].dreb", Source: "region.varsity.column[3]", Transform: "to_int"},
				{Field: "jv[].name", Source: "region.jv.column[0]", Transform: "normalize_name"},
				{Field: "jv[].fouls", Source: "region.jv.column[1]", Transform: "to_int"},
				{Field: "injuries_text", Source: "region.injuries.text"},
			},
			Calculations: []processor.Calculation{
				{Field: "totals.fouls", Formula: "sum(players[].fouls)"},
				{Field: "totals.rebounds", Formula: "sum(players[].oreb) + sum(players[].dreb)"},
			},
			Validations: []processor.Validation{
				{Name: "five_players", Check: "len(players[]) == 5", Severity: "error"},
				{Name: "fouls_sane", Check: "totals.fouls < 20", Severity: "warning"},
			},
		},
	}
}

func runBoxScore(t *testing.T) *Result {
	t.Helper()
	c, err := processor.Compile(boxScoreProcessor())
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	res, err := NewExecutor(nil).Execute(boxScoreDoc(), c, Options{})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	return res
}

func TestExecuteEndToEnd(t *testing.T) {
	res := runBoxScore(t)

	players, _ := res.Data["players"].([]any)
	if len(players) != 5 {
		t.Fatalf("got %d players, want 5", len(players))
	}
	first := players[0].(map[string]any)
	if first["name"] != "Kevin Bleess" {
		t.Errorf("got name %v, want Kevin Bleess", first["name"])
	}
	if first["fouls"] != 2 {
		t.Errorf("got fouls %v, want 2", first["fouls"])
	}

	totals := res.Data["totals"].(map[string]any)
	if totals["fouls"] != float64(9) {
		t.Errorf("got total fouls %v, want 9", totals["fouls"])
	}
	if totals["rebounds"] != float64(27) {
		t.Errorf("got total rebounds %v, want 27", totals["rebounds"])
	}

	jv, _ := res.Data["jv"].([]any)
	if len(jv) != 2 {
		t.Errorf("got %d jv players, want 2", len(jv))
	}

	if !res.Success {
		t.Errorf("run not successful, issues: %+v", res.Issues)
	}
}

func TestExecutePartialFailureIsContained(t *testing.T) {
	res := runBoxScore(t)

	var regionWarnings int
	for _, issue := range res.Issues {
		if issue.Code == IssueRegionUnresolved {
			regionWarnings++
			if issue.Severity != constants.SeverityWarning {
				t.Errorf("region issue severity %q, want warning", issue.Severity)
			}
			if issue.Region != "injuries" {
				t.Errorf("region issue names %q, want injuries", issue.Region)
			}
		}
	}
	if regionWarnings != 1 {
		t.Errorf("got %d region warnings, want exactly 1", regionWarnings)
	}

	if v, ok := res.Data["injuries_text"]; !ok || v != nil {
		t.Errorf("unresolved region field = %v, want explicit null", v)
	}

	// the unresolved region must not block the rest
	if res.Counts.FieldsResolved != 7 {
		t.Errorf("got %d resolved fields, want 7", res.Counts.FieldsResolved)
	}
}

func TestExecuteConfidence(t *testing.T) {
	res := runBoxScore(t)
	// anchors 1/1, fields 7/8, checks 2/2
	want := 100 * (0.4 + 0.4*7.0/8.0 + 0.2)
	if res.Confidence != want {
		t.Errorf("got confidence %v, want %v", res.Confidence, want)
	}
	if res.Band != constants.BandHigh {
		t.Errorf("got band %v, want HIGH", res.Band)
	}
}

func TestExecuteListRegion(t *testing.T) {
	p := &processor.Processor{
		Name:         "jv_roster",
		DocumentType: "basketball_box_score",
		Version:      1,
		RuleSet: processor.RuleSet{
			Anchors: []processor.Anchor{
				{Name: "roster", Patterns: []string{"PLAYER"}, LocationHint: "second_occurrence", Required: true},
				{Name: "roster_end", Patterns: []string{"TOTALS"}, LocationHint: "second_occurrence"},
			},
			Regions: []processor.Region{
				{Name: "roster", Type: "list", StartAnchor: "roster", EndAnchor: "roster_end"},
			},
			ExtractionOps: []processor.ExtractionOp{
				{Field: "names[]", Source: "region.roster.column[0]"},
			},
		},
	}
	c, err := processor.Compile(p)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	res, err := NewExecutor(nil).Execute(boxScoreDoc(), c, Options{})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	names, _ := res.Data["names"].([]any)
	if len(names) != 2 {
		t.Fatalf("got %d names, want 2", len(names))
	}
	if names[0] != "Smith" || names[1] != "Jones" {
		t.Errorf("got names %v, want [Smith Jones]", names)
	}
}

func TestExecuteIsDeterministic(t *testing.T) {
	a, _ := json.Marshal(runBoxScore(t).Data)
	b, _ := json.Marshal(runBoxScore(t).Data)
	if !bytes.Equal(a, b) {
		t.Error("two runs over the same document differ")
	}
}

func TestExecuteCrossPageRegion(t *testing.T) {
	p := boxScoreProcessor()
	p.Regions = []processor.Region{
		{Name: "varsity", Type: "table", StartAnchor: "varsity_table", EndAnchor: "jv_totals"},
	}
	p.ExtractionOps = []processor.ExtractionOp{
		{Field: "players[].name", Source: "region.varsity.column[0]"},
	}
	p.Calculations, p.Validations = nil, nil

	c, err := processor.Compile(p)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	res, err := NewExecutor(nil).Execute(boxScoreDoc(), c, Options{})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if len(res.Issues) != 1 || res.Issues[0].Code != IssueRegionUnresolved {
		t.Fatalf("got issues %+v, want one region warning", res.Issues)
	}
	if res.Counts.FieldsResolved != 0 {
		t.Errorf("cross-page region still resolved fields")
	}
	if !res.Success {
		t.Error("cross-page mismatch is a warning, not a failure")
	}
}

func TestExecuteMissingRequiredAnchor(t *testing.T) {
	p := boxScoreProcessor()
	p.Anchors[1].Patterns = []string{"NO SUCH LANDMARK ANYWHERE"}
	c, err := processor.Compile(p)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	res, err := NewExecutor(nil).Execute(boxScoreDoc(), c, Options{})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if res.Success {
		t.Error("missing required anchor should fail the run")
	}
	var found bool
	for _, issue := range res.Issues {
		if issue.Code == IssueMissingAnchor && issue.Severity == constants.SeverityError {
			found = true
		}
	}
	if !found {
		t.Errorf("no blocking missing-anchor issue in %+v", res.Issues)
	}
	if res.Band != constants.BandLow {
		t.Errorf("band = %v, want LOW when a required anchor is missing", res.Band)
	}

	// strict mode turns it into an error return
	_, err = NewExecutor(nil).Execute(boxScoreDoc(), c, Options{Strict: true})
	if err == nil {
		t.Fatal("strict mode: expected error")
	}
	if code := common.ErrorCode(err); code != common.CodeMissingAnchor {
		t.Errorf("got code %q, want %q", code, common.CodeMissingAnchor)
	}
}

func TestExecuteMalformedCalculationIsIsolated(t *testing.T) {
	p := boxScoreProcessor()
	p.Calculations = append(p.Calculations, processor.Calculation{Field: "totals.bad", Formula: "sum(("})
	c, err := processor.CompileLenient(p)
	if err != nil {
		t.Fatalf("CompileLenient: %v", err)
	}
	res, err := NewExecutor(nil).Execute(boxScoreDoc(), c, Options{})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	totals := res.Data["totals"].(map[string]any)
	if v, ok := totals["bad"]; !ok || v != nil {
		t.Errorf("malformed calculation field = %v, want explicit null", v)
	}
	if totals["fouls"] != float64(9) {
		t.Errorf("healthy calculation affected: got %v, want 9", totals["fouls"])
	}
	var found bool
	for _, issue := range res.Issues {
		if issue.Code == IssueCalculation && issue.Severity == constants.SeverityError {
			found = true
		}
	}
	if !found {
		t.Errorf("no error issue for malformed calculation in %+v", res.Issues)
	}
	if res.Band == constants.BandHigh {
		t.Errorf("band = %v; a blocking issue must not land in the high band", res.Band)
	}
}

func TestExecuteMissingAnchorForcesLowScore(t *testing.T) {
	// five of six required anchors match and every field resolves, so the
	// raw weighted score sits above 90; the blocking miss must pull it low
	p := &processor.Processor{
		Name:         "landmark_heavy",
		DocumentType: "basketball_box_score",
		Version:      1,
		RuleSet: processor.RuleSet{
			Anchors: []processor.Anchor{
				{Name: "a", Patterns: []string{"VARSITY"}, Required: true},
				{Name: "b", Patterns: []string{"PLAYER"}, LocationHint: "first_occurrence", Required: true},
				{Name: "c", Patterns: []string{"TOTALS"}, LocationHint: "first_occurrence", Required: true},
				{Name: "d", Patterns: []string{"FINAL"}, Required: true},
				{Name: "e", Patterns: []string{"SCORE"}, Required: true},
				{Name: "gone", Patterns: []string{"NO SUCH LANDMARK"}, Required: true},
			},
			ExtractionOps: []processor.ExtractionOp{
				{Field: "title", Source: "anchor.a.text"},
			},
		},
	}
	c, err := processor.Compile(p)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	res, err := NewExecutor(nil).Execute(boxScoreDoc(), c, Options{})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if res.Success {
		t.Error("run with a missed required anchor reported success")
	}
	if res.Confidence > 69 {
		t.Errorf("confidence = %v, want <= 69", res.Confidence)
	}
	if res.Band != constants.BandLow {
		t.Errorf("band = %v, want LOW", res.Band)
	}
}
