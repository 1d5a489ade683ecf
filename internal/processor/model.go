// Package processor defines the learned extraction rules for one document
// layout and compiles them into an executable form. A processor is created
// by the rule synthesizer, persisted as JSON, and re-applied by the
// executor to every future document with the same layout.
package processor

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Anchor is a stable text landmark. Patterns are tried in order; backup
// patterns only when no primary pattern matches anywhere.
type Anchor struct {
	Name           string   `json:"name"`
	Patterns       []string `json:"patterns"`
	BackupPatterns []string `json:"backup_patterns,omitempty"`
	PatternType    string   `json:"pattern_type,omitempty"` // contains (default) | exact | regex
	LocationHint   string   `json:"location_hint,omitempty"`
	Required       bool     `json:"required"`
}

// Region is a rectangular slice of a page bounded by anchors. EndAnchor may
// be empty, which extends the region to the bottom of the start anchor's
// page.
type Region struct {
	Name        string `json:"name"`
	Type        string `json:"type"` // table | key_value | free_text
	StartAnchor string `json:"start_anchor"`
	EndAnchor   string `json:"end_anchor,omitempty"`

	// FieldColumnMapping names the table columns for prompt context and
	// review tooling. Extraction ops address columns by index regardless.
	FieldColumnMapping map[string]int `json:"field_column_mapping,omitempty"`
}

// ExtractionOp moves one value (or one column of values) from a source to
// a field path in the output tree.
type ExtractionOp struct {
	Field     string `json:"field"`  // dotted path, one [] allowed
	Source    string `json:"source"` // region.<name>.column[N] | region.<name>.text | anchor.<name>.text
	Transform string `json:"transform,omitempty"`
}

// Calculation derives a field from already-extracted values.
type Calculation struct {
	Field   string `json:"field"`
	Formula string `json:"formula"`
}

// Validation is a boolean check over the final output tree.
type Validation struct {
	Name     string `json:"name"`
	Check    string `json:"check"`
	Severity string `json:"severity"` // error | warning
}

// RuleSet is the learned rule payload, shared between the synthesizer's
// response format and the stored processor.
type RuleSet struct {
	Anchors       []Anchor       `json:"anchors"`
	Regions       []Region       `json:"regions"`
	ExtractionOps []ExtractionOp `json:"extraction_ops"`
	Calculations  []Calculation  `json:"calculations,omitempty"`
	Validations   []Validation   `json:"validations,omitempty"`
	Template      string         `json:"template,omitempty"`
}

// Processor is a versioned, persistent extraction program for one layout.
type Processor struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	DocumentType string    `json:"document_type"`
	Version      int       `json:"version"`
	LayoutHash   string    `json:"layout_hash,omitempty"`

	RuleSet

	SuccessCount int       `json:"success_count"`
	FailureCount int       `json:"failure_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToJSON serializes with stable keys for persistence.
func (p *Processor) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}

// FromJSON deserializes and validates a stored processor.
func FromJSON(data []byte) (*Processor, error) {
	var p Processor
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}
