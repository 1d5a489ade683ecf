package fieldpath

import (
	"testing"
)

func mustParse(t *testing.T, raw string) Path {
	t.Helper()
	p, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse(%q): %v", raw, err)
	}
	return p
}

func TestParseRejectsBadPaths(t *testing.T) {
	for _, raw := range []string{
		"",
		"  ",
		"a..b",
		"players[].stats[].points",
		"pla[yers",
		"[].name",
	} {
		if _, err := Parse(raw); err == nil {
			t.Errorf("Parse(%q): expected error", raw)
		}
	}
}

func TestSetScalar(t *testing.T) {
	root := map[string]any{}
	Set(root, mustParse(t, "game.home_team"), 0, "Lakers")
	Set(root, mustParse(t, "game.away_team"), 0, "Celtics")

	game, ok := root["game"].(map[string]any)
	if !ok {
		t.Fatal("game subtree missing")
	}
	if got := game["home_team"]; got != "Lakers" {
		t.Errorf("got %v, want Lakers", got)
	}
	if got := game["away_team"]; got != "Celtics" {
		t.Errorf("got %v, want Celtics", got)
	}
}

func TestSetArrayElements(t *testing.T) {
	root := map[string]any{}
	p := mustParse(t, "players[].name")
	Set(root, p, 0, "James")
	Set(root, p, 2, "Davis")

	arr, ok := root["players"].([]any)
	if !ok {
		t.Fatal("players array missing")
	}
	if len(arr) != 3 {
		t.Fatalf("got %d elements, want 3", len(arr))
	}
	first := arr[0].(map[string]any)
	if first["name"] != "James" {
		t.Errorf("got %v, want James", first["name"])
	}
	// gap element exists as an empty object
	if _, ok := arr[1].(map[string]any); !ok {
		t.Errorf("gap element is %T, want map", arr[1])
	}
}

func TestGet(t *testing.T) {
	root := map[string]any{}
	Set(root, mustParse(t, "teams.home.score"), 0, 102)

	v, ok := Get(root, mustParse(t, "teams.home.score"))
	if !ok || v != 102 {
		t.Errorf("got %v/%v, want 102/true", v, ok)
	}
	if _, ok := Get(root, mustParse(t, "teams.away.score")); ok {
		t.Error("expected miss for absent path")
	}
}

func TestValuesAcrossArray(t *testing.T) {
	root := map[string]any{}
	p := mustParse(t, "players[].fouls")
	for i, v := range []any{2, 1, 3, 2, 1} {
		Set(root, p, i, v)
	}
	vals, ok := Values(root, p)
	if !ok {
		t.Fatal("Values miss")
	}
	if len(vals) != 5 {
		t.Fatalf("got %d values, want 5", len(vals))
	}
}

func TestValuesSkipsMissingFields(t *testing.T) {
	root := map[string]any{}
	Set(root, mustParse(t, "players[].name"), 0, "James")
	Set(root, mustParse(t, "players[].name"), 1, "Davis")
	Set(root, mustParse(t, "players[].fouls"), 0, 2)

	vals, ok := Values(root, mustParse(t, "players[].fouls"))
	if !ok {
		t.Fatal("Values miss")
	}
	if len(vals) != 1 {
		t.Errorf("got %d values, want 1", len(vals))
	}
}
