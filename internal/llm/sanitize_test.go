package llm

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestStripFences(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"fenced no lang", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"leading space", "  ```json\n{\"a\":1}\n```  ", `{"a":1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := string(StripFences([]byte(tc.in)))
			if got != tc.want {
				t.Errorf("StripFences(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeAndSanitizeRuleSet(t *testing.T) {
	raw := `{
		"anchors": [
			{"name": "player_header", "pattern": "PLAYER", "type": "EXACT", "required": "true", "why": "column heading"}
		],
		"regions": [
			{"name": "varsity", "region_type": "Table", "start": "player_header", "end": "totals", "columns": {"points": "2"}},
			{"name": "notes", "region_type": "Text", "start": "player_header"}
		],
		"ops": [
			{"path": "players[].name", "from": "region.varsity.column[0]", "transform": "NONE"},
			{"field": "players[].points", "source": "region.varsity.column[2]", "transform": "to_int"}
		],
		"checks": [
			{"name": "points_present", "condition": "exists(players)", "severity": "Error"}
		],
		"model_notes": "anchored on the stat line header"
	}`

	out, dropped, err := NormalizeAndSanitizeRuleSet([]byte(raw), testLogger())
	if err != nil {
		t.Fatalf("NormalizeAndSanitizeRuleSet: %v", err)
	}
	if len(dropped) == 0 {
		t.Fatal("expected dropped entries, got none")
	}

	var m map[string]any
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatalf("unmarshal sanitized: %v", err)
	}

	if _, ok := m["model_notes"]; ok {
		t.Error("unknown top-level key model_notes survived")
	}
	if _, ok := m["ops"]; ok {
		t.Error("ops should have been renamed extraction_ops")
	}

	anchors := m["anchors"].([]any)
	a := anchors[0].(map[string]any)
	if _, ok := a["why"]; ok {
		t.Error("unknown anchor key survived")
	}
	if got, want := a["pattern_type"], "exact"; got != want {
		t.Errorf("pattern_type = %v, want %v", got, want)
	}
	if ps, ok := a["patterns"].([]any); !ok || len(ps) != 1 || ps[0] != "PLAYER" {
		t.Errorf("patterns = %v, want [PLAYER]", a["patterns"])
	}
	if got, want := a["required"], true; got != want {
		t.Errorf("required = %v (%T), want %v", got, got, want)
	}

	regions := m["regions"].([]any)
	r := regions[0].(map[string]any)
	if got, want := r["type"], "table"; got != want {
		t.Errorf("region type = %v, want %v", got, want)
	}
	if got, want := r["start_anchor"], "player_header"; got != want {
		t.Errorf("start_anchor = %v, want %v", got, want)
	}
	fc := r["field_column_mapping"].(map[string]any)
	if got, want := fc["points"], float64(2); got != want {
		t.Errorf("column index = %v, want %v", got, want)
	}
	notes := regions[1].(map[string]any)
	if got, want := notes["type"], "free_text"; got != want {
		t.Errorf("text region type = %v, want %v", got, want)
	}

	ops := m["extraction_ops"].([]any)
	if len(ops) != 2 {
		t.Fatalf("len(extraction_ops) = %d, want 2", len(ops))
	}
	op0 := ops[0].(map[string]any)
	if got, want := op0["field"], "players[].name"; got != want {
		t.Errorf("op field = %v, want %v", got, want)
	}
	if got, want := op0["source"], "region.varsity.column[0]"; got != want {
		t.Errorf("op source = %v, want %v", got, want)
	}
	if _, ok := op0["transform"]; ok {
		t.Error("transform none should have been dropped")
	}

	checks := m["validations"].([]any)
	c := checks[0].(map[string]any)
	if got, want := c["check"], "exists(players)"; got != want {
		t.Errorf("check = %v, want %v", got, want)
	}
	if got, want := c["severity"], "error"; got != want {
		t.Errorf("severity = %v, want %v", got, want)
	}
}

func TestNormalizeAndSanitizeRuleSetUnwrapsEnvelope(t *testing.T) {
	raw := `{"rules": {"anchors": [{"name": "a", "patterns": ["SCORE"]}], "extraction_ops": [{"field": "f", "source": "anchor.a.text"}]}}`
	out, _, err := NormalizeAndSanitizeRuleSet([]byte(raw), testLogger())
	if err != nil {
		t.Fatalf("NormalizeAndSanitizeRuleSet: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := m["anchors"]; !ok {
		t.Error("envelope was not unwrapped")
	}
}

func TestNormalizeAndSanitizeRuleSetRejectsNonJSON(t *testing.T) {
	if _, _, err := NormalizeAndSanitizeRuleSet([]byte("here are the rules:"), testLogger()); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestSanitizedOutputValidates(t *testing.T) {
	raw := `{
		"anchors": [{"name": "score_label", "pattern": "FINAL SCORE", "required": true}],
		"ops": [{"path": "final_score", "from": "anchor.score_label.text"}]
	}`
	schema := BuildRuleSetJSONSchema()
	if err := ValidateJSONAgainstSchema(schema, []byte(raw)); err == nil {
		t.Fatal("raw response should not validate before sanitizing")
	}
	cleaned, _, err := NormalizeAndSanitizeRuleSet([]byte(raw), testLogger())
	if err != nil {
		t.Fatalf("NormalizeAndSanitizeRuleSet: %v", err)
	}
	if err := ValidateJSONAgainstSchema(schema, cleaned); err != nil {
		t.Fatalf("sanitized response should validate: %v", err)
	}
}

func TestValidateJSONAgainstSchema(t *testing.T) {
	schema := BuildRuleSetJSONSchema()

	good := `{
		"anchors": [{"name": "hdr", "patterns": ["PLAYER"], "pattern_type": "exact", "required": true}],
		"regions": [{"name": "box", "type": "table", "start_anchor": "hdr"}],
		"extraction_ops": [{"field": "players[].name", "source": "region.box.column[0]", "transform": "normalize_name"}],
		"calculations": [{"field": "totals.points", "formula": "sum(players[].points)"}],
		"validations": [{"name": "has_rows", "check": "count(players[].name) > 0", "severity": "warning"}]
	}`
	if err := ValidateJSONAgainstSchema(schema, []byte(good)); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}

	bad := []struct {
		name string
		json string
	}{
		{"missing anchors", `{"extraction_ops": [{"field": "f", "source": "anchor.a.text"}]}`},
		{"empty anchors", `{"anchors": [], "extraction_ops": [{"field": "f", "source": "anchor.a.text"}]}`},
		{"bad source", `{"anchors": [{"name": "a", "patterns": ["X"]}], "extraction_ops": [{"field": "f", "source": "table.box.cell[0]"}]}`},
		{"bad pattern type", `{"anchors": [{"name": "a", "patterns": ["X"], "pattern_type": "fuzzy"}], "extraction_ops": [{"field": "f", "source": "anchor.a.text"}]}`},
		{"bad severity", `{"anchors": [{"name": "a", "patterns": ["X"]}], "extraction_ops": [{"field": "f", "source": "anchor.a.text"}], "validations": [{"name": "v", "check": "exists(f)", "severity": "fatal"}]}`},
		{"unknown key", `{"anchors": [{"name": "a", "patterns": ["X"]}], "extraction_ops": [{"field": "f", "source": "anchor.a.text"}], "notes": "hi"}`},
		{"not json", `rules follow`},
	}
	for _, tc := range bad {
		t.Run(tc.name, func(t *testing.T) {
			if err := ValidateJSONAgainstSchema(schema, []byte(tc.json)); err == nil {
				t.Errorf("expected validation error for %s", tc.name)
			}
		})
	}
}

func TestBuildPromptsBounded(t *testing.T) {
	req := SynthesisRequest{
		DocumentType:   "basketball_box_score",
		ProcessorName:  "tribune_box_score",
		BlockSummary:   strings.Repeat("b0 [0.10,0.10,0.20,0.12] text PLAYER\n", 500),
		RawTextExcerpt: strings.Repeat("VARSITY BOX SCORE\n", 500),
		DesiredOutput:  `{"players": []}`,
	}
	user := BuildUserPrompt(req)
	if len(user) > maxBlockSummaryChars+maxRawTextChars+maxDesiredChars+500 {
		t.Errorf("user prompt not bounded: %d bytes", len(user))
	}
	if !strings.Contains(user, "…(truncated)") {
		t.Error("oversized sections should be marked truncated")
	}
	sys := BuildSystemPrompt(req)
	if !strings.Contains(sys, "basketball_box_score") {
		t.Error("system prompt should carry the document type")
	}
}
