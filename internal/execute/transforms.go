package execute

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	reJerseyPrefix = regexp.MustCompile(`^\s*#?\d+[\s.):-]*`)
	reSpaces       = regexp.MustCompile(`\s+`)
	reLeadingInt   = regexp.MustCompile(`^-?\d+`)
)

// applyTransform runs a pure value transform. Transforms never see nil,
// never mutate documents, and fail softly: the caller turns an error into
// a null field plus a warning issue.
func applyTransform(name string, value any) (any, error) {
	if name == "" || value == nil {
		return value, nil
	}
	s := fmt.Sprintf("%v", value)

	switch name {
	case "strip":
		return strings.TrimSpace(s), nil
	case "upper":
		return strings.ToUpper(s), nil
	case "lower":
		return strings.ToLower(s), nil
	case "to_int":
		m := reLeadingInt.FindString(strings.TrimSpace(s))
		if m == "" {
			return nil, fmt.Errorf("to_int: %q has no leading integer", s)
		}
		n, err := strconv.Atoi(m)
		if err != nil {
			return nil, fmt.Errorf("to_int: %q: %v", s, err)
		}
		return n, nil
	case "to_float":
		f, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "%"), 64)
		if err != nil {
			return nil, fmt.Errorf("to_float: %q: %v", s, err)
		}
		return f, nil
	case "last_name_only":
		parts := strings.Fields(s)
		if len(parts) == 0 {
			return s, nil
		}
		return parts[len(parts)-1], nil
	case "normalize_name":
		return normalizeName(s), nil
	default:
		return nil, fmt.Errorf("unknown transform %q", name)
	}
}

// normalizeName cleans an OCR'd athlete name: jersey-number prefixes go,
// "LAST, FIRST" flips to "First Last", whitespace collapses, and each word
// is title-cased. The function is idempotent.
func normalizeName(s string) string {
	s = reJerseyPrefix.ReplaceAllString(s, "")
	s = reSpaces.ReplaceAllString(strings.TrimSpace(s), " ")

	if i := strings.Index(s, ","); i >= 0 {
		last := strings.TrimSpace(s[:i])
		first := strings.TrimSpace(s[i+1:])
		if last != "" && first != "" {
			s = first + " " + last
		} else {
			s = strings.TrimSpace(last + first)
		}
	}

	words := strings.Fields(s)
	for i, w := range words {
		words[i] = titleWord(w)
	}
	return strings.Join(words, " ")
}

func titleWord(w string) string {
	r := []rune(strings.ToLower(w))
	if len(r) == 0 {
		return w
	}
	r[0] = []rune(strings.ToUpper(string(r[0])))[0]
	return string(r)
}
