package formula

import (
	"testing"
)

func statData() map[string]any {
	return map[string]any{
		"teams": map[string]any{
			"home": map[string]any{"score": float64(102)},
			"away": map[string]any{"score": float64(99)},
		},
		"players": []any{
			map[string]any{"name": "James", "fouls": float64(2), "oreb": float64(3), "dreb": float64(7)},
			map[string]any{"name": "Davis", "fouls": float64(1), "oreb": float64(4), "dreb": float64(6)},
			map[string]any{"name": "Reaves", "fouls": float64(3), "oreb": float64(1), "dreb": float64(2)},
			map[string]any{"name": "Russell", "fouls": float64(2), "oreb": float64(2), "dreb": float64(1)},
			map[string]any{"name": "Hachimura", "fouls": float64(1), "oreb": float64(0), "dreb": float64(1)},
		},
	}
}

func evalFormula(t *testing.T, src string, data map[string]any) (float64, []string) {
	t.Helper()
	e, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	env := &Env{Data: data}
	return e.Eval(env), env.Warnings
}

func TestSumOverArray(t *testing.T) {
	got, warns := evalFormula(t, "sum(players[].fouls)", statData())
	if got != 9 {
		t.Errorf("got %v, want 9", got)
	}
	if len(warns) != 0 {
		t.Errorf("unexpected warnings: %v", warns)
	}
}

func TestCompoundFormula(t *testing.T) {
	got, _ := evalFormula(t, "sum(players[].oreb) + sum(players[].dreb)", statData())
	if got != 27 {
		t.Errorf("got %v, want 27", got)
	}
}

func TestOperatorPrecedence(t *testing.T) {
	got, _ := evalFormula(t, "2 + 3 * 4", nil)
	if got != 14 {
		t.Errorf("got %v, want 14", got)
	}
	got, _ = evalFormula(t, "(2 + 3) * 4", nil)
	if got != 20 {
		t.Errorf("got %v, want 20", got)
	}
}

func TestMissingArrayWarnsAndYieldsZero(t *testing.T) {
	got, warns := evalFormula(t, "sum(bench[].fouls)", statData())
	if got != 0 {
		t.Errorf("got %v, want 0", got)
	}
	if len(warns) != 1 {
		t.Errorf("got %d warnings, want 1", len(warns))
	}
}

func TestNonNumericElementsCountAsZero(t *testing.T) {
	data := map[string]any{
		"players": []any{
			map[string]any{"fouls": float64(2)},
			map[string]any{"fouls": "DNP"},
			map[string]any{"fouls": float64(3)},
		},
	}
	got, warns := evalFormula(t, "sum(players[].fouls)", data)
	if got != 5 {
		t.Errorf("got %v, want 5", got)
	}
	if len(warns) != 1 {
		t.Errorf("got %d warnings, want 1", len(warns))
	}
}

func TestDivisionByZero(t *testing.T) {
	got, warns := evalFormula(t, "10 / sum(bench[].fouls)", statData())
	if got != 0 {
		t.Errorf("got %v, want 0", got)
	}
	if len(warns) == 0 {
		t.Error("expected a warning")
	}
}

func TestParseErrors(t *testing.T) {
	for _, src := range []string{
		"",
		"sum(",
		"sum()",
		"1 +",
		"foo(players[].x)",
		"sum(players[].a[].b)",
		"1 2",
	} {
		if _, err := Parse(src); err == nil {
			t.Errorf("Parse(%q): expected error", src)
		}
	}
}

func evalCheck(t *testing.T, src string, data map[string]any) bool {
	t.Helper()
	c, err := ParseCheck(src)
	if err != nil {
		t.Fatalf("ParseCheck(%q): %v", src, err)
	}
	return c.Eval(&Env{Data: data})
}

func TestChecks(t *testing.T) {
	data := statData()
	cases := []struct {
		src  string
		want bool
	}{
		{"sum(players[].fouls) == 9", true},
		{"sum(players[].fouls) > 10", false},
		{"teams.home.score > teams.away.score", true},
		{"len(players[]) == 5", true},
		{"exists(teams.home.score)", true},
		{"exists(teams.home.coach)", false},
		{"!exists(teams.home.coach)", true},
		{"teams.home.score > 100 && len(players[]) >= 5", true},
		{"teams.home.score < 100 || teams.away.score < 100", true},
		{"(teams.home.score > 100) && sum(players[].fouls) < 20", true},
		{"(teams.home.score + teams.away.score) > 200", true},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			if got := evalCheck(t, tc.src, data); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestParseCheckErrors(t *testing.T) {
	for _, src := range []string{
		"",
		"teams.home.score",
		"exists()",
		"sum(players[].fouls) ==",
		"== 3",
	} {
		if _, err := ParseCheck(src); err == nil {
			t.Errorf("ParseCheck(%q): expected error", src)
		}
	}
}
