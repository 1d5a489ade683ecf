// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/statline/statline/gen/ent/processor"
)

// Processor is the model entity for the Processor schema.
type Processor struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// DocumentType holds the value of the "document_type" field.
	DocumentType string `json:"document_type,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// LayoutHash holds the value of the "layout_hash" field.
	LayoutHash string `json:"layout_hash,omitempty"`
	// Rules holds the value of the "rules" field.
	Rules json.RawMessage `json:"rules,omitempty"`
	// Template holds the value of the "template" field.
	Template *string `json:"template,omitempty"`
	// SuccessCount holds the value of the "success_count" field.
	SuccessCount int `json:"success_count,omitempty"`
	// FailureCount holds the value of the "failure_count" field.
	FailureCount int `json:"failure_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProcessorQuery when eager-loading is set.
	Edges        ProcessorEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProcessorEdges holds the relations/edges for other nodes in the graph.
type ProcessorEdges struct {
	// Examples holds the value of the examples edge.
	Examples []*Example `json:"examples,omitempty"`
	// Extractions holds the value of the extractions edge.
	Extractions []*Extraction `json:"extractions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ExamplesOrErr returns the Examples value or an error if the edge
// was not loaded in eager-loading.
func (e ProcessorEdges) ExamplesOrErr() ([]*Example, error) {
	if e.loadedTypes[0] {
		return e.Examples, nil
	}
	return nil, &NotLoadedError{edge: "examples"}
}

// ExtractionsOrErr returns the Extractions value or an error if the edge
// was not loaded in eager-loading.
func (e ProcessorEdges) ExtractionsOrErr() ([]*Extraction, error) {
	if e.loadedTypes[1] {
		return e.Extractions, nil
	}
	return nil, &NotLoadedError{edge: "extractions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Processor) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case processor.FieldRules:
			values[i] = new([]byte)
		case processor.FieldVersion, processor.FieldSuccessCount, processor.FieldFailureCount:
			values[i] = new(sql.NullInt64)
		case processor.FieldName, processor.FieldDocumentType, processor.FieldLayoutHash, processor.FieldTemplate:
			values[i] = new(sql.NullString)
		case processor.FieldCreatedAt, processor.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case processor.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Processor fields.
func (_m *Processor) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case processor.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case processor.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case processor.FieldDocumentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_type", values[i])
			} else if value.Valid {
				_m.DocumentType = value.String
			}
		case processor.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case processor.FieldLayoutHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field layout_hash", values[i])
			} else if value.Valid {
				_m.LayoutHash = value.String
			}
		case processor.FieldRules:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field rules", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Rules); err != nil {
					return fmt.Errorf("unmarshal field rules: %w", err)
				}
			}
		case processor.FieldTemplate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field template", values[i])
			} else if value.Valid {
				_m.Template = new(string)
				*_m.Template = value.String
			}
		case processor.FieldSuccessCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field success_count", values[i])
			} else if value.Valid {
				_m.SuccessCount = int(value.Int64)
			}
		case processor.FieldFailureCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field failure_count", values[i])
			} else if value.Valid {
				_m.FailureCount = int(value.Int64)
			}
		case processor.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case processor.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Processor.
// This includes values selected through modifiers, order, etc.
func (_m *Processor) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryExamples queries the "examples" edge of the Processor entity.
func (_m *Processor) QueryExamples() *ExampleQuery {
	return NewProcessorClient(_m.config).QueryExamples(_m)
}

// QueryExtractions queries the "extractions" edge of the Processor entity.
func (_m *Processor) QueryExtractions() *ExtractionQuery {
	return NewProcessorClient(_m.config).QueryExtractions(_m)
}

// Update returns a builder for updating this Processor.
// Note that you need to call Processor.Unwrap() before calling this method if this Processor
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Processor) Update() *ProcessorUpdateOne {
	return NewProcessorClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Processor entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Processor) Unwrap() *Processor {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Processor is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Processor) String() string {
	var builder strings.Builder
	builder.WriteString("Processor(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("document_type=")
	builder.WriteString(_m.DocumentType)
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("layout_hash=")
	builder.WriteString(_m.LayoutHash)
	builder.WriteString(", ")
	builder.WriteString("rules=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rules))
	builder.WriteString(", ")
	if v := _m.Template; v != nil {
		builder.WriteString("template=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("success_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SuccessCount))
	builder.WriteString(", ")
	builder.WriteString("failure_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailureCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Processors is a parsable slice of Processor.
type Processors []*Processor
