// Package fieldpath addresses values inside the nested extraction output.
// A path is dot-separated; at most one segment may carry a trailing "[]",
// which marks the repeated level: "teams.home.players[].points".
package fieldpath

import (
	"fmt"
	"strings"
)

type Segment struct {
	Name  string
	Array bool
}

type Path struct {
	Segments []Segment
	raw      string
}

// Parse validates and splits a dotted field path.
func Parse(raw string) (Path, error) {
	if strings.TrimSpace(raw) == "" {
		return Path{}, fmt.Errorf("empty field path")
	}
	parts := strings.Split(raw, ".")
	p := Path{raw: raw}
	arrays := 0
	for _, part := range parts {
		seg := Segment{Name: part}
		if strings.HasSuffix(part, "[]") {
			seg.Name = strings.TrimSuffix(part, "[]")
			seg.Array = true
			arrays++
		}
		if seg.Name == "" {
			return Path{}, fmt.Errorf("field path %q has an empty segment", raw)
		}
		if strings.ContainsAny(seg.Name, "[]") {
			return Path{}, fmt.Errorf("field path %q: brackets are only valid as a trailing []", raw)
		}
		p.Segments = append(p.Segments, seg)
	}
	if arrays > 1 {
		return Path{}, fmt.Errorf("field path %q has more than one [] segment", raw)
	}
	return p, nil
}

func (p Path) String() string { return p.raw }

// HasArray reports whether the path addresses a repeated level.
func (p Path) HasArray() bool {
	for _, s := range p.Segments {
		if s.Array {
			return true
		}
	}
	return false
}

// Set writes a value into the output tree, creating intermediate maps as
// needed. For array paths, idx selects the element, which is created (along
// with any gap) on first touch. For scalar paths idx is ignored.
func Set(root map[string]any, p Path, idx int, value any) {
	cur := root
	for i, seg := range p.Segments {
		last := i == len(p.Segments)-1

		if seg.Array {
			arr, _ := cur[seg.Name].([]any)
			for len(arr) <= idx {
				arr = append(arr, map[string]any{})
			}
			cur[seg.Name] = arr
			if last {
				arr[idx] = value
				return
			}
			elem, ok := arr[idx].(map[string]any)
			if !ok {
				elem = map[string]any{}
				arr[idx] = elem
			}
			cur = elem
			continue
		}

		if last {
			cur[seg.Name] = value
			return
		}
		next, ok := cur[seg.Name].(map[string]any)
		if !ok {
			next = map[string]any{}
			cur[seg.Name] = next
		}
		cur = next
	}
}

// Get resolves a scalar path. Array paths resolve to the []any at the
// repeated level only when [] is the final segment.
func Get(root map[string]any, p Path) (any, bool) {
	var cur any = root
	for _, seg := range p.Segments {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[seg.Name]
		if !ok {
			return nil, false
		}
		if seg.Array {
			if _, ok := cur.([]any); !ok {
				return nil, false
			}
		}
	}
	return cur, true
}

// Values collects the value under the trailing segments for every element
// of the repeated level. Missing elements and non-map elements are skipped.
func Values(root map[string]any, p Path) ([]any, bool) {
	if !p.HasArray() {
		v, ok := Get(root, p)
		if !ok {
			return nil, false
		}
		return []any{v}, true
	}

	var cur any = root
	var arrIdx int
	for i, seg := range p.Segments {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[seg.Name]
		if !ok {
			return nil, false
		}
		if seg.Array {
			arrIdx = i
			break
		}
	}
	arr, ok := cur.([]any)
	if !ok {
		return nil, false
	}

	rest := p.Segments[arrIdx+1:]
	var out []any
	for _, elem := range arr {
		v := elem
		found := true
		for _, seg := range rest {
			m, ok := v.(map[string]any)
			if !ok {
				found = false
				break
			}
			v, ok = m[seg.Name]
			if !ok {
				found = false
				break
			}
		}
		if found {
			out = append(out, v)
		}
	}
	return out, true
}
