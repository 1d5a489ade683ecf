package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"strconv"
	"strings"
)

// StripFences removes a surrounding markdown code fence, if present. Models
// occasionally wrap JSON in ```json ... ``` despite response_format.
func StripFences(raw []byte) []byte {
	s := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(s, "```") {
		return raw
	}
	s = strings.TrimPrefix(s, "```")
	// drop a language tag like "json" on the fence line
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		first := strings.TrimSpace(s[:i])
		if len(first) <= 8 {
			s = s[i+1:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return []byte(strings.TrimSpace(s))
}

// NormalizeAndSanitizeRuleSet
// - Strips markdown fences and unwraps a {"rules": {...}} envelope
// - Renames known synonyms (ops -> extraction_ops, checks -> validations, ...)
// - Coerces scalars the model gets wrong (single pattern string -> list)
// - Removes unknown keys (strict additionalProperties = false friendliness)
func NormalizeAndSanitizeRuleSet(raw []byte, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	if err := json.Unmarshal(StripFences(raw), &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	dropped := make([]string, 0, 8)

	// unwrap a single envelope key if the model nested the rule set
	for _, env := range []string{"rules", "ruleset", "rule_set", "processor"} {
		if inner, ok := m[env].(map[string]any); ok && len(m) == 1 {
			m = inner
			dropped = append(dropped, env+"(unwrapped)")
			break
		}
	}

	renamed := func(obj map[string]any, from, to string) {
		if v, ok := obj[from]; ok {
			if _, exists := obj[to]; !exists {
				obj[to] = v
			}
			delete(obj, from)
			dropped = append(dropped, from+"->"+to)
		}
	}

	// 1) rename top-level synonyms to our schema
	renamed(m, "ops", "extraction_ops")
	renamed(m, "operations", "extraction_ops")
	renamed(m, "extractions", "extraction_ops")
	renamed(m, "checks", "validations")
	renamed(m, "validation_rules", "validations")
	renamed(m, "calcs", "calculations")

	// 2) per-element fixes and unknown-key removal
	keepKeys := func(obj map[string]any, where string, allowed map[string]struct{}) {
		for k := range maps.Clone(obj) {
			if _, ok := allowed[k]; !ok {
				delete(obj, k)
				dropped = append(dropped, where+"."+k+"(unknown)")
			}
		}
	}
	asList := func(v any) []any {
		if xs, ok := v.([]any); ok {
			return xs
		}
		return nil
	}
	// single string where a list belongs -> wrap it
	coerceStringList := func(obj map[string]any, key string) {
		if s, ok := obj[key].(string); ok {
			obj[key] = []any{s}
			dropped = append(dropped, key+"(wrapped)")
		}
	}

	anchorKeys := map[string]struct{}{
		"name": {}, "patterns": {}, "backup_patterns": {}, "pattern_type": {},
		"location_hint": {}, "required": {},
	}
	for i, v := range asList(m["anchors"]) {
		a, ok := v.(map[string]any)
		if !ok {
			continue
		}
		where := "anchors[" + strconv.Itoa(i) + "]"
		renamed(a, "pattern", "patterns")
		renamed(a, "backup_pattern", "backup_patterns")
		renamed(a, "backups", "backup_patterns")
		renamed(a, "type", "pattern_type")
		renamed(a, "match_type", "pattern_type")
		renamed(a, "hint", "location_hint")
		coerceStringList(a, "patterns")
		coerceStringList(a, "backup_patterns")
		if s, ok := a["required"].(string); ok {
			a["required"] = strings.EqualFold(strings.TrimSpace(s), "true")
			dropped = append(dropped, where+".required(coerced)")
		}
		for _, k := range []string{"pattern_type", "location_hint"} {
			if s, ok := a[k].(string); ok {
				a[k] = strings.ToLower(strings.TrimSpace(s))
			}
		}
		keepKeys(a, where, anchorKeys)
	}

	regionKeys := map[string]struct{}{
		"name": {}, "type": {}, "start_anchor": {}, "end_anchor": {},
		"field_column_mapping": {},
	}
	for i, v := range asList(m["regions"]) {
		r, ok := v.(map[string]any)
		if !ok {
			continue
		}
		where := "regions[" + strconv.Itoa(i) + "]"
		renamed(r, "region_type", "type")
		renamed(r, "start", "start_anchor")
		renamed(r, "end", "end_anchor")
		renamed(r, "columns", "field_column_mapping")
		renamed(r, "field_columns", "field_column_mapping")
		if s, ok := r["type"].(string); ok {
			t := strings.ToLower(strings.TrimSpace(s))
			if t == "text" {
				t = "free_text"
			}
			r["type"] = t
		}
		if fc, ok := r["field_column_mapping"].(map[string]any); ok {
			for k, cv := range fc {
				if s, ok := cv.(string); ok {
					if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
						fc[k] = n
						dropped = append(dropped, where+".field_column_mapping."+k+"(coerced)")
					} else {
						delete(fc, k)
						dropped = append(dropped, where+".field_column_mapping."+k+"(type)")
					}
				}
			}
		}
		keepKeys(r, where, regionKeys)
	}

	opKeys := map[string]struct{}{"field": {}, "source": {}, "transform": {}}
	for i, v := range asList(m["extraction_ops"]) {
		op, ok := v.(map[string]any)
		if !ok {
			continue
		}
		where := "extraction_ops[" + strconv.Itoa(i) + "]"
		renamed(op, "path", "field")
		renamed(op, "target", "field")
		renamed(op, "from", "source")
		if t, ok := op["transform"]; ok {
			switch s := t.(type) {
			case nil:
				delete(op, "transform")
				dropped = append(dropped, where+".transform(null)")
			case string:
				s2 := strings.ToLower(strings.TrimSpace(s))
				if s2 == "" || s2 == "none" {
					delete(op, "transform")
					dropped = append(dropped, where+".transform(empty)")
				} else {
					op["transform"] = s2
				}
			default:
				delete(op, "transform")
				dropped = append(dropped, where+".transform(type)")
			}
		}
		keepKeys(op, where, opKeys)
	}

	calcKeys := map[string]struct{}{"field": {}, "formula": {}}
	for i, v := range asList(m["calculations"]) {
		c, ok := v.(map[string]any)
		if !ok {
			continue
		}
		where := "calculations[" + strconv.Itoa(i) + "]"
		renamed(c, "path", "field")
		renamed(c, "target", "field")
		renamed(c, "expr", "formula")
		renamed(c, "expression", "formula")
		keepKeys(c, where, calcKeys)
	}

	checkKeys := map[string]struct{}{"name": {}, "check": {}, "severity": {}}
	for i, v := range asList(m["validations"]) {
		c, ok := v.(map[string]any)
		if !ok {
			continue
		}
		where := "validations[" + strconv.Itoa(i) + "]"
		renamed(c, "rule", "check")
		renamed(c, "condition", "check")
		renamed(c, "expr", "check")
		if s, ok := c["severity"].(string); ok {
			c["severity"] = strings.ToLower(strings.TrimSpace(s))
		}
		keepKeys(c, where, checkKeys)
	}

	// 3) remove unknown top-level keys
	topKeys := map[string]struct{}{
		"anchors": {}, "regions": {}, "extraction_ops": {},
		"calculations": {}, "validations": {}, "template": {},
	}
	keepKeys(m, "ruleset", topKeys)

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(dropped) > 0 {
		logger.Warn("llm.synthesize.normalize_sanitize", "dropped", dropped)
	}
	return out, dropped, nil
}
