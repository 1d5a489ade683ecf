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
	"github.com/statline/statline/gen/ent/example"
	"github.com/statline/statline/gen/ent/processor"
)

// Example is the model entity for the Example schema.
type Example struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProcessorID holds the value of the "processor_id" field.
	ProcessorID uuid.UUID `json:"processor_id,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// LayoutHash holds the value of the "layout_hash" field.
	LayoutHash string `json:"layout_hash,omitempty"`
	// IrJSON holds the value of the "ir_json" field.
	IrJSON json.RawMessage `json:"ir_json,omitempty"`
	// DesiredOutput holds the value of the "desired_output" field.
	DesiredOutput json.RawMessage `json:"desired_output,omitempty"`
	// SynthesisReport holds the value of the "synthesis_report" field.
	SynthesisReport json.RawMessage `json:"synthesis_report,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExampleQuery when eager-loading is set.
	Edges        ExampleEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExampleEdges holds the relations/edges for other nodes in the graph.
type ExampleEdges struct {
	// Processor holds the value of the processor edge.
	Processor *Processor `json:"processor,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProcessorOrErr returns the Processor value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExampleEdges) ProcessorOrErr() (*Processor, error) {
	if e.Processor != nil {
		return e.Processor, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: processor.Label}
	}
	return nil, &NotLoadedError{edge: "processor"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Example) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case example.FieldIrJSON, example.FieldDesiredOutput, example.FieldSynthesisReport:
			values[i] = new([]byte)
		case example.FieldFilename, example.FieldLayoutHash:
			values[i] = new(sql.NullString)
		case example.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case example.FieldID, example.FieldProcessorID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Example fields.
func (_m *Example) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case example.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case example.FieldProcessorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field processor_id", values[i])
			} else if value != nil {
				_m.ProcessorID = *value
			}
		case example.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case example.FieldLayoutHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field layout_hash", values[i])
			} else if value.Valid {
				_m.LayoutHash = value.String
			}
		case example.FieldIrJSON:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field ir_json", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.IrJSON); err != nil {
					return fmt.Errorf("unmarshal field ir_json: %w", err)
				}
			}
		case example.FieldDesiredOutput:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field desired_output", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DesiredOutput); err != nil {
					return fmt.Errorf("unmarshal field desired_output: %w", err)
				}
			}
		case example.FieldSynthesisReport:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field synthesis_report", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SynthesisReport); err != nil {
					return fmt.Errorf("unmarshal field synthesis_report: %w", err)
				}
			}
		case example.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Example.
// This includes values selected through modifiers, order, etc.
func (_m *Example) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProcessor queries the "processor" edge of the Example entity.
func (_m *Example) QueryProcessor() *ProcessorQuery {
	return NewExampleClient(_m.config).QueryProcessor(_m)
}

// Update returns a builder for updating this Example.
// Note that you need to call Example.Unwrap() before calling this method if this Example
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Example) Update() *ExampleUpdateOne {
	return NewExampleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Example entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Example) Unwrap() *Example {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Example is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Example) String() string {
	var builder strings.Builder
	builder.WriteString("Example(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("processor_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProcessorID))
	builder.WriteString(", ")
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("layout_hash=")
	builder.WriteString(_m.LayoutHash)
	builder.WriteString(", ")
	builder.WriteString("ir_json=")
	builder.WriteString(fmt.Sprintf("%v", _m.IrJSON))
	builder.WriteString(", ")
	builder.WriteString("desired_output=")
	builder.WriteString(fmt.Sprintf("%v", _m.DesiredOutput))
	builder.WriteString(", ")
	builder.WriteString("synthesis_report=")
	builder.WriteString(fmt.Sprintf("%v", _m.SynthesisReport))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Examples is a parsable slice of Example.
type Examples []*Example
