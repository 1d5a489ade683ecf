package execute

import (
	"testing"
)

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"BLEESS, KEVIN", "Kevin Bleess"},
		{"24 BLEESS, KEVIN", "Kevin Bleess"},
		{"#12 Smith", "Smith"},
		{"  kevin   bleess ", "Kevin Bleess"},
		{"Kevin Bleess", "Kevin Bleess"},
	}
	for _, tc := range cases {
		if got := normalizeName(tc.in); got != tc.want {
			t.Errorf("normalizeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeNameIsIdempotent(t *testing.T) {
	for _, in := range []string{"BLEESS, KEVIN", "24 OLSON, MARK", "Kevin Bleess", "#3 raymond"} {
		once := normalizeName(in)
		twice := normalizeName(once)
		if once != twice {
			t.Errorf("normalizeName(%q): %q then %q, want fixed point", in, once, twice)
		}
	}
}

func TestToInt(t *testing.T) {
	v, err := applyTransform("to_int", "14 pts")
	if err != nil || v != 14 {
		t.Errorf("got %v/%v, want 14", v, err)
	}
	if _, err := applyTransform("to_int", "DNP"); err == nil {
		t.Error("to_int on non-numeric input should fail")
	}
	v, err = applyTransform("to_int", "-3")
	if err != nil || v != -3 {
		t.Errorf("got %v/%v, want -3", v, err)
	}
}

func TestToFloat(t *testing.T) {
	v, err := applyTransform("to_float", " 45.5% ")
	if err != nil || v != 45.5 {
		t.Errorf("got %v/%v, want 45.5", v, err)
	}
	if _, err := applyTransform("to_float", "n/a"); err == nil {
		t.Error("to_float on non-numeric input should fail")
	}
}

func TestSimpleTransforms(t *testing.T) {
	cases := []struct {
		transform string
		in        any
		want      any
	}{
		{"strip", "  x  ", "x"},
		{"upper", "Lakers", "LAKERS"},
		{"lower", "Lakers", "lakers"},
		{"last_name_only", "Kevin Bleess", "Bleess"},
		{"last_name_only", "Cher", "Cher"},
		{"", "untouched", "untouched"},
	}
	for _, tc := range cases {
		got, err := applyTransform(tc.transform, tc.in)
		if err != nil {
			t.Errorf("applyTransform(%q, %v): %v", tc.transform, tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("applyTransform(%q, %v) = %v, want %v", tc.transform, tc.in, got, tc.want)
		}
	}
}

func TestTransformsNeverSeeNil(t *testing.T) {
	got, err := applyTransform("to_int", nil)
	if err != nil || got != nil {
		t.Errorf("nil input: got %v/%v, want nil/nil", got, err)
	}
}
