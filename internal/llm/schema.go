package llm

import "github.com/statline/statline/constants"

// BuildRuleSetJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing the rule spec the model must return. We pass this
// to the provider as a structured output constraint and also use it locally
// to validate the untrusted response.
func BuildRuleSetJSONSchema() map[string]any {
	anchor := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name":            map[string]any{"type": "string", "minLength": 1},
			"patterns":        stringList(1),
			"backup_patterns": stringList(0),
			"pattern_type": map[string]any{
				"type": "string",
				"enum": []string{constants.PatternContains, constants.PatternExact, constants.PatternRegex},
			},
			"location_hint": map[string]any{
				"type": "string",
				"enum": constants.LocationHints,
			},
			"required": map[string]any{"type": "boolean"},
		},
		"required": []string{"name", "patterns"},
	}

	region := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name": map[string]any{"type": "string", "minLength": 1},
			"type": map[string]any{
				"type": "string",
				"enum": []string{constants.RegionTable, constants.RegionKeyValue, constants.RegionList, constants.RegionFreeText},
			},
			"start_anchor": map[string]any{"type": "string", "minLength": 1},
			"end_anchor":   map[string]any{"type": "string"},
			"field_column_mapping": map[string]any{
				"type":                 "object",
				"additionalProperties": map[string]any{"type": "integer", "minimum": 0},
			},
		},
		"required": []string{"name", "type", "start_anchor"},
	}

	op := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"field":  map[string]any{"type": "string", "minLength": 1},
			"source": map[string]any{"type": "string", "pattern": `^(region|anchor)\.[A-Za-z0-9_-]+\.(text|column\[\d+\])$`},
			"transform": map[string]any{
				"type": "string",
				"enum": constants.Transforms,
			},
		},
		"required": []string{"field", "source"},
	}

	calculation := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"field":   map[string]any{"type": "string", "minLength": 1},
			"formula": map[string]any{"type": "string", "minLength": 1},
		},
		"required": []string{"field", "formula"},
	}

	validation := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name":  map[string]any{"type": "string", "minLength": 1},
			"check": map[string]any{"type": "string", "minLength": 1},
			"severity": map[string]any{
				"type": "string",
				"enum": []string{constants.SeverityError, constants.SeverityWarning},
			},
		},
		"required": []string{"name", "check", "severity"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"anchors":        map[string]any{"type": "array", "minItems": 1, "items": anchor},
			"regions":        map[string]any{"type": "array", "items": region},
			"extraction_ops": map[string]any{"type": "array", "minItems": 1, "items": op},
			"calculations":   map[string]any{"type": "array", "items": calculation},
			"validations":    map[string]any{"type": "array", "items": validation},
			"template":       map[string]any{"type": "string"},
		},
		"required": []string{"anchors", "extraction_ops"},
	}
}

func stringList(minItems int) map[string]any {
	return map[string]any{
		"type":     "array",
		"minItems": minItems,
		"items":    map[string]any{"type": "string", "minLength": 1},
	}
}
