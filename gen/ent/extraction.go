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
	"github.com/statline/statline/gen/ent/extraction"
	"github.com/statline/statline/gen/ent/processor"
)

// Extraction is the model entity for the Extraction schema.
type Extraction struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProcessorID holds the value of the "processor_id" field.
	ProcessorID uuid.UUID `json:"processor_id,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// Format holds the value of the "format" field.
	Format string `json:"format,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// IrMethod holds the value of the "ir_method" field.
	IrMethod *string `json:"ir_method,omitempty"`
	// LayoutHash holds the value of the "layout_hash" field.
	LayoutHash string `json:"layout_hash,omitempty"`
	// Output holds the value of the "output" field.
	Output json.RawMessage `json:"output,omitempty"`
	// Issues holds the value of the "issues" field.
	Issues json.RawMessage `json:"issues,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence *float32 `json:"confidence,omitempty"`
	// Band holds the value of the "band" field.
	Band *string `json:"band,omitempty"`
	// Success holds the value of the "success" field.
	Success bool `json:"success,omitempty"`
	// NeedsReview holds the value of the "needs_review" field.
	NeedsReview bool `json:"needs_review,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs int64 `json:"duration_ms,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExtractionQuery when eager-loading is set.
	Edges        ExtractionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExtractionEdges holds the relations/edges for other nodes in the graph.
type ExtractionEdges struct {
	// Processor holds the value of the processor edge.
	Processor *Processor `json:"processor,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProcessorOrErr returns the Processor value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractionEdges) ProcessorOrErr() (*Processor, error) {
	if e.Processor != nil {
		return e.Processor, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: processor.Label}
	}
	return nil, &NotLoadedError{edge: "processor"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Extraction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extraction.FieldOutput, extraction.FieldIssues:
			values[i] = new([]byte)
		case extraction.FieldSuccess, extraction.FieldNeedsReview:
			values[i] = new(sql.NullBool)
		case extraction.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case extraction.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case extraction.FieldFilename, extraction.FieldFormat, extraction.FieldStatus, extraction.FieldIrMethod, extraction.FieldLayoutHash, extraction.FieldBand, extraction.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case extraction.FieldStartedAt, extraction.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		case extraction.FieldID, extraction.FieldProcessorID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Extraction fields.
func (_m *Extraction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extraction.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case extraction.FieldProcessorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field processor_id", values[i])
			} else if value != nil {
				_m.ProcessorID = *value
			}
		case extraction.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case extraction.FieldFormat:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field format", values[i])
			} else if value.Valid {
				_m.Format = value.String
			}
		case extraction.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case extraction.FieldIrMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ir_method", values[i])
			} else if value.Valid {
				_m.IrMethod = new(string)
				*_m.IrMethod = value.String
			}
		case extraction.FieldLayoutHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field layout_hash", values[i])
			} else if value.Valid {
				_m.LayoutHash = value.String
			}
		case extraction.FieldOutput:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field output", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Output); err != nil {
					return fmt.Errorf("unmarshal field output: %w", err)
				}
			}
		case extraction.FieldIssues:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field issues", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Issues); err != nil {
					return fmt.Errorf("unmarshal field issues: %w", err)
				}
			}
		case extraction.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = new(float32)
				*_m.Confidence = float32(value.Float64)
			}
		case extraction.FieldBand:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field band", values[i])
			} else if value.Valid {
				_m.Band = new(string)
				*_m.Band = value.String
			}
		case extraction.FieldSuccess:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field success", values[i])
			} else if value.Valid {
				_m.Success = value.Bool
			}
		case extraction.FieldNeedsReview:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field needs_review", values[i])
			} else if value.Valid {
				_m.NeedsReview = value.Bool
			}
		case extraction.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case extraction.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case extraction.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		case extraction.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Extraction.
// This includes values selected through modifiers, order, etc.
func (_m *Extraction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProcessor queries the "processor" edge of the Extraction entity.
func (_m *Extraction) QueryProcessor() *ProcessorQuery {
	return NewExtractionClient(_m.config).QueryProcessor(_m)
}

// Update returns a builder for updating this Extraction.
// Note that you need to call Extraction.Unwrap() before calling this method if this Extraction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Extraction) Update() *ExtractionUpdateOne {
	return NewExtractionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Extraction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Extraction) Unwrap() *Extraction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Extraction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Extraction) String() string {
	var builder strings.Builder
	builder.WriteString("Extraction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("processor_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProcessorID))
	builder.WriteString(", ")
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("format=")
	builder.WriteString(_m.Format)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.IrMethod; v != nil {
		builder.WriteString("ir_method=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("layout_hash=")
	builder.WriteString(_m.LayoutHash)
	builder.WriteString(", ")
	builder.WriteString("output=")
	builder.WriteString(fmt.Sprintf("%v", _m.Output))
	builder.WriteString(", ")
	builder.WriteString("issues=")
	builder.WriteString(fmt.Sprintf("%v", _m.Issues))
	builder.WriteString(", ")
	if v := _m.Confidence; v != nil {
		builder.WriteString("confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Band; v != nil {
		builder.WriteString("band=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("success=")
	builder.WriteString(fmt.Sprintf("%v", _m.Success))
	builder.WriteString(", ")
	builder.WriteString("needs_review=")
	builder.WriteString(fmt.Sprintf("%v", _m.NeedsReview))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMs))
	builder.WriteByte(')')
	return builder.String()
}

// Extractions is a parsable slice of Extraction.
type Extractions []*Extraction
