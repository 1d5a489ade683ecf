// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/statline/statline/gen/ent/example"
	"github.com/statline/statline/gen/ent/extraction"
	"github.com/statline/statline/gen/ent/predicate"
	"github.com/statline/statline/gen/ent/processor"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeExample    = "Example"
	TypeExtraction = "Extraction"
	TypeProcessor  = "Processor"
)

// ExampleMutation represents an operation that mutates the Example nodes in the graph.
type ExampleMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	filename               *string
	layout_hash            *string
	ir_json                *json.RawMessage
	appendir_json          json.RawMessage
	desired_output         *json.RawMessage
	appenddesired_output   json.RawMessage
	synthesis_report       *json.RawMessage
	appendsynthesis_report json.RawMessage
	created_at             *time.Time
	clearedFields          map[string]struct{}
	processor              *uuid.UUID
	clearedprocessor       bool
	done                   bool
	oldValue               func(context.Context) (*Example, error)
	predicates             []predicate.Example
}

var _ ent.Mutation = (*ExampleMutation)(nil)

// exampleOption allows management of the mutation configuration using functional options.
type exampleOption func(*ExampleMutation)

// newExampleMutation creates new mutation for the Example entity.
func newExampleMutation(c config, op Op, opts ...exampleOption) *ExampleMutation {
	m := &ExampleMutation{
		config:        c,
		op:            op,
		typ:           TypeExample,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExampleID sets the ID field of the mutation.
func withExampleID(id uuid.UUID) exampleOption {
	return func(m *ExampleMutation) {
		var (
			err   error
			once  sync.Once
			value *Example
		)
		m.oldValue = func(ctx context.Context) (*Example, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Example.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExample sets the old Example of the mutation.
func withExample(node *Example) exampleOption {
	return func(m *ExampleMutation) {
		m.oldValue = func(context.Context) (*Example, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExampleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExampleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Example entities.
func (m *ExampleMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExampleMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExampleMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Example.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProcessorID sets the "processor_id" field.
func (m *ExampleMutation) SetProcessorID(u uuid.UUID) {
	m.processor = &u
}

// ProcessorID returns the value of the "processor_id" field in the mutation.
func (m *ExampleMutation) ProcessorID() (r uuid.UUID, exists bool) {
	v := m.processor
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessorID returns the old "processor_id" field's value of the Example entity.
// If the Example object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExampleMutation) OldProcessorID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessorID: %w", err)
	}
	return oldValue.ProcessorID, nil
}

// ResetProcessorID resets all changes to the "processor_id" field.
func (m *ExampleMutation) ResetProcessorID() {
	m.processor = nil
}

// SetFilename sets the "filename" field.
func (m *ExampleMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *ExampleMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Example entity.
// If the Example object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExampleMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *ExampleMutation) ResetFilename() {
	m.filename = nil
}

// SetLayoutHash sets the "layout_hash" field.
func (m *ExampleMutation) SetLayoutHash(s string) {
	m.layout_hash = &s
}

// LayoutHash returns the value of the "layout_hash" field in the mutation.
func (m *ExampleMutation) LayoutHash() (r string, exists bool) {
	v := m.layout_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldLayoutHash returns the old "layout_hash" field's value of the Example entity.
// If the Example object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExampleMutation) OldLayoutHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLayoutHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLayoutHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLayoutHash: %w", err)
	}
	return oldValue.LayoutHash, nil
}

// ClearLayoutHash clears the value of the "layout_hash" field.
func (m *ExampleMutation) ClearLayoutHash() {
	m.layout_hash = nil
	m.clearedFields[example.FieldLayoutHash] = struct{}{}
}

// LayoutHashCleared returns if the "layout_hash" field was cleared in this mutation.
func (m *ExampleMutation) LayoutHashCleared() bool {
	_, ok := m.clearedFields[example.FieldLayoutHash]
	return ok
}

// ResetLayoutHash resets all changes to the "layout_hash" field.
func (m *ExampleMutation) ResetLayoutHash() {
	m.layout_hash = nil
	delete(m.clearedFields, example.FieldLayoutHash)
}

// SetIrJSON sets the "ir_json" field.
func (m *ExampleMutation) SetIrJSON(jm json.RawMessage) {
	m.ir_json = &jm
	m.appendir_json = nil
}

// IrJSON returns the value of the "ir_json" field in the mutation.
func (m *ExampleMutation) IrJSON() (r json.RawMessage, exists bool) {
	v := m.ir_json
	if v == nil {
		return
	}
	return *v, true
}

// OldIrJSON returns the old "ir_json" field's value of the Example entity.
// If the Example object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExampleMutation) OldIrJSON(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIrJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIrJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIrJSON: %w", err)
	}
	return oldValue.IrJSON, nil
}

// AppendIrJSON adds jm to the "ir_json" field.
func (m *ExampleMutation) AppendIrJSON(jm json.RawMessage) {
	m.appendir_json = append(m.appendir_json, jm...)
}

// AppendedIrJSON returns the list of values that were appended to the "ir_json" field in this mutation.
func (m *ExampleMutation) AppendedIrJSON() (json.RawMessage, bool) {
	if len(m.appendir_json) == 0 {
		return nil, false
	}
	return m.appendir_json, true
}

// ResetIrJSON resets all changes to the "ir_json" field.
func (m *ExampleMutation) ResetIrJSON() {
	m.ir_json = nil
	m.appendir_json = nil
}

// SetDesiredOutput sets the "desired_output" field.
func (m *ExampleMutation) SetDesiredOutput(jm json.RawMessage) {
	m.desired_output = &jm
	m.appenddesired_output = nil
}

// DesiredOutput returns the value of the "desired_output" field in the mutation.
func (m *ExampleMutation) DesiredOutput() (r json.RawMessage, exists bool) {
	v := m.desired_output
	if v == nil {
		return
	}
	return *v, true
}

// OldDesiredOutput returns the old "desired_output" field's value of the Example entity.
// If the Example object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExampleMutation) OldDesiredOutput(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDesiredOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDesiredOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDesiredOutput: %w", err)
	}
	return oldValue.DesiredOutput, nil
}

// AppendDesiredOutput adds jm to the "desired_output" field.
func (m *ExampleMutation) AppendDesiredOutput(jm json.RawMessage) {
	m.appenddesired_output = append(m.appenddesired_output, jm...)
}

// AppendedDesiredOutput returns the list of values that were appended to the "desired_output" field in this mutation.
func (m *ExampleMutation) AppendedDesiredOutput() (json.RawMessage, bool) {
	if len(m.appenddesired_output) == 0 {
		return nil, false
	}
	return m.appenddesired_output, true
}

// ResetDesiredOutput resets all changes to the "desired_output" field.
func (m *ExampleMutation) ResetDesiredOutput() {
	m.desired_output = nil
	m.appenddesired_output = nil
}

// SetSynthesisReport sets the "synthesis_report" field.
func (m *ExampleMutation) SetSynthesisReport(jm json.RawMessage) {
	m.synthesis_report = &jm
	m.appendsynthesis_report = nil
}

// SynthesisReport returns the value of the "synthesis_report" field in the mutation.
func (m *ExampleMutation) SynthesisReport() (r json.RawMessage, exists bool) {
	v := m.synthesis_report
	if v == nil {
		return
	}
	return *v, true
}

// OldSynthesisReport returns the old "synthesis_report" field's value of the Example entity.
// If the Example object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExampleMutation) OldSynthesisReport(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSynthesisReport is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSynthesisReport requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSynthesisReport: %w", err)
	}
	return oldValue.SynthesisReport, nil
}

// AppendSynthesisReport adds jm to the "synthesis_report" field.
func (m *ExampleMutation) AppendSynthesisReport(jm json.RawMessage) {
	m.appendsynthesis_report = append(m.appendsynthesis_report, jm...)
}

// AppendedSynthesisReport returns the list of values that were appended to the "synthesis_report" field in this mutation.
func (m *ExampleMutation) AppendedSynthesisReport() (json.RawMessage, bool) {
	if len(m.appendsynthesis_report) == 0 {
		return nil, false
	}
	return m.appendsynthesis_report, true
}

// ClearSynthesisReport clears the value of the "synthesis_report" field.
func (m *ExampleMutation) ClearSynthesisReport() {
	m.synthesis_report = nil
	m.appendsynthesis_report = nil
	m.clearedFields[example.FieldSynthesisReport] = struct{}{}
}

// SynthesisReportCleared returns if the "synthesis_report" field was cleared in this mutation.
func (m *ExampleMutation) SynthesisReportCleared() bool {
	_, ok := m.clearedFields[example.FieldSynthesisReport]
	return ok
}

// ResetSynthesisReport resets all changes to the "synthesis_report" field.
func (m *ExampleMutation) ResetSynthesisReport() {
	m.synthesis_report = nil
	m.appendsynthesis_report = nil
	delete(m.clearedFields, example.FieldSynthesisReport)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExampleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExampleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Example entity.
// If the Example object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExampleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExampleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearProcessor clears the "processor" edge to the Processor entity.
func (m *ExampleMutation) ClearProcessor() {
	m.clearedprocessor = true
	m.clearedFields[example.FieldProcessorID] = struct{}{}
}

// ProcessorCleared reports if the "processor" edge to the Processor entity was cleared.
func (m *ExampleMutation) ProcessorCleared() bool {
	return m.clearedprocessor
}

// ProcessorIDs returns the "processor" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProcessorID instead. It exists only for internal usage by the builders.
func (m *ExampleMutation) ProcessorIDs() (ids []uuid.UUID) {
	if id := m.processor; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProcessor resets all changes to the "processor" edge.
func (m *ExampleMutation) ResetProcessor() {
	m.processor = nil
	m.clearedprocessor = false
}

// Where appends a list predicates to the ExampleMutation builder.
func (m *ExampleMutation) Where(ps ...predicate.Example) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExampleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExampleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Example, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExampleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExampleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Example).
func (m *ExampleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExampleMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.processor != nil {
		fields = append(fields, example.FieldProcessorID)
	}
	if m.filename != nil {
		fields = append(fields, example.FieldFilename)
	}
	if m.layout_hash != nil {
		fields = append(fields, example.FieldLayoutHash)
	}
	if m.ir_json != nil {
		fields = append(fields, example.FieldIrJSON)
	}
	if m.desired_output != nil {
		fields = append(fields, example.FieldDesiredOutput)
	}
	if m.synthesis_report != nil {
		fields = append(fields, example.FieldSynthesisReport)
	}
	if m.created_at != nil {
		fields = append(fields, example.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExampleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case example.FieldProcessorID:
		return m.ProcessorID()
	case example.FieldFilename:
		return m.Filename()
	case example.FieldLayoutHash:
		return m.LayoutHash()
	case example.FieldIrJSON:
		return m.IrJSON()
	case example.FieldDesiredOutput:
		return m.DesiredOutput()
	case example.FieldSynthesisReport:
		return m.SynthesisReport()
	case example.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExampleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case example.FieldProcessorID:
		return m.OldProcessorID(ctx)
	case example.FieldFilename:
		return m.OldFilename(ctx)
	case example.FieldLayoutHash:
		return m.OldLayoutHash(ctx)
	case example.FieldIrJSON:
		return m.OldIrJSON(ctx)
	case example.FieldDesiredOutput:
		return m.OldDesiredOutput(ctx)
	case example.FieldSynthesisReport:
		return m.OldSynthesisReport(ctx)
	case example.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Example field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExampleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case example.FieldProcessorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessorID(v)
		return nil
	case example.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case example.FieldLayoutHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLayoutHash(v)
		return nil
	case example.FieldIrJSON:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIrJSON(v)
		return nil
	case example.FieldDesiredOutput:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDesiredOutput(v)
		return nil
	case example.FieldSynthesisReport:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSynthesisReport(v)
		return nil
	case example.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Example field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExampleMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExampleMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExampleMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Example numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExampleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(example.FieldLayoutHash) {
		fields = append(fields, example.FieldLayoutHash)
	}
	if m.FieldCleared(example.FieldSynthesisReport) {
		fields = append(fields, example.FieldSynthesisReport)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExampleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExampleMutation) ClearField(name string) error {
	switch name {
	case example.FieldLayoutHash:
		m.ClearLayoutHash()
		return nil
	case example.FieldSynthesisReport:
		m.ClearSynthesisReport()
		return nil
	}
	return fmt.Errorf("unknown Example nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExampleMutation) ResetField(name string) error {
	switch name {
	case example.FieldProcessorID:
		m.ResetProcessorID()
		return nil
	case example.FieldFilename:
		m.ResetFilename()
		return nil
	case example.FieldLayoutHash:
		m.ResetLayoutHash()
		return nil
	case example.FieldIrJSON:
		m.ResetIrJSON()
		return nil
	case example.FieldDesiredOutput:
		m.ResetDesiredOutput()
		return nil
	case example.FieldSynthesisReport:
		m.ResetSynthesisReport()
		return nil
	case example.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Example field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExampleMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.processor != nil {
		edges = append(edges, example.EdgeProcessor)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExampleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case example.EdgeProcessor:
		if id := m.processor; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExampleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExampleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExampleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedprocessor {
		edges = append(edges, example.EdgeProcessor)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExampleMutation) EdgeCleared(name string) bool {
	switch name {
	case example.EdgeProcessor:
		return m.clearedprocessor
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExampleMutation) ClearEdge(name string) error {
	switch name {
	case example.EdgeProcessor:
		m.ClearProcessor()
		return nil
	}
	return fmt.Errorf("unknown Example unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExampleMutation) ResetEdge(name string) error {
	switch name {
	case example.EdgeProcessor:
		m.ResetProcessor()
		return nil
	}
	return fmt.Errorf("unknown Example edge %s", name)
}

// ExtractionMutation represents an operation that mutates the Extraction nodes in the graph.
type ExtractionMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	filename         *string
	format           *string
	status           *string
	ir_method        *string
	layout_hash      *string
	output           *json.RawMessage
	appendoutput     json.RawMessage
	issues           *json.RawMessage
	appendissues     json.RawMessage
	confidence       *float32
	addconfidence    *float32
	band             *string
	success          *bool
	needs_review     *bool
	error_message    *string
	started_at       *time.Time
	finished_at      *time.Time
	duration_ms      *int64
	addduration_ms   *int64
	clearedFields    map[string]struct{}
	processor        *uuid.UUID
	clearedprocessor bool
	done             bool
	oldValue         func(context.Context) (*Extraction, error)
	predicates       []predicate.Extraction
}

var _ ent.Mutation = (*ExtractionMutation)(nil)

// extractionOption allows management of the mutation configuration using functional options.
type extractionOption func(*ExtractionMutation)

// newExtractionMutation creates new mutation for the Extraction entity.
func newExtractionMutation(c config, op Op, opts ...extractionOption) *ExtractionMutation {
	m := &ExtractionMutation{
		config:        c,
		op:            op,
		typ:           TypeExtraction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractionID sets the ID field of the mutation.
func withExtractionID(id uuid.UUID) extractionOption {
	return func(m *ExtractionMutation) {
		var (
			err   error
			once  sync.Once
			value *Extraction
		)
		m.oldValue = func(ctx context.Context) (*Extraction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Extraction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtraction sets the old Extraction of the mutation.
func withExtraction(node *Extraction) extractionOption {
	return func(m *ExtractionMutation) {
		m.oldValue = func(context.Context) (*Extraction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Extraction entities.
func (m *ExtractionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Extraction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProcessorID sets the "processor_id" field.
func (m *ExtractionMutation) SetProcessorID(u uuid.UUID) {
	m.processor = &u
}

// ProcessorID returns the value of the "processor_id" field in the mutation.
func (m *ExtractionMutation) ProcessorID() (r uuid.UUID, exists bool) {
	v := m.processor
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessorID returns the old "processor_id" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldProcessorID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessorID: %w", err)
	}
	return oldValue.ProcessorID, nil
}

// ResetProcessorID resets all changes to the "processor_id" field.
func (m *ExtractionMutation) ResetProcessorID() {
	m.processor = nil
}

// SetFilename sets the "filename" field.
func (m *ExtractionMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *ExtractionMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *ExtractionMutation) ResetFilename() {
	m.filename = nil
}

// SetFormat sets the "format" field.
func (m *ExtractionMutation) SetFormat(s string) {
	m.format = &s
}

// Format returns the value of the "format" field in the mutation.
func (m *ExtractionMutation) Format() (r string, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ResetFormat resets all changes to the "format" field.
func (m *ExtractionMutation) ResetFormat() {
	m.format = nil
}

// SetStatus sets the "status" field.
func (m *ExtractionMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ExtractionMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExtractionMutation) ResetStatus() {
	m.status = nil
}

// SetIrMethod sets the "ir_method" field.
func (m *ExtractionMutation) SetIrMethod(s string) {
	m.ir_method = &s
}

// IrMethod returns the value of the "ir_method" field in the mutation.
func (m *ExtractionMutation) IrMethod() (r string, exists bool) {
	v := m.ir_method
	if v == nil {
		return
	}
	return *v, true
}

// OldIrMethod returns the old "ir_method" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldIrMethod(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIrMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIrMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIrMethod: %w", err)
	}
	return oldValue.IrMethod, nil
}

// ClearIrMethod clears the value of the "ir_method" field.
func (m *ExtractionMutation) ClearIrMethod() {
	m.ir_method = nil
	m.clearedFields[extraction.FieldIrMethod] = struct{}{}
}

// IrMethodCleared returns if the "ir_method" field was cleared in this mutation.
func (m *ExtractionMutation) IrMethodCleared() bool {
	_, ok := m.clearedFields[extraction.FieldIrMethod]
	return ok
}

// ResetIrMethod resets all changes to the "ir_method" field.
func (m *ExtractionMutation) ResetIrMethod() {
	m.ir_method = nil
	delete(m.clearedFields, extraction.FieldIrMethod)
}

// SetLayoutHash sets the "layout_hash" field.
func (m *ExtractionMutation) SetLayoutHash(s string) {
	m.layout_hash = &s
}

// LayoutHash returns the value of the "layout_hash" field in the mutation.
func (m *ExtractionMutation) LayoutHash() (r string, exists bool) {
	v := m.layout_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldLayoutHash returns the old "layout_hash" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldLayoutHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLayoutHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLayoutHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLayoutHash: %w", err)
	}
	return oldValue.LayoutHash, nil
}

// ClearLayoutHash clears the value of the "layout_hash" field.
func (m *ExtractionMutation) ClearLayoutHash() {
	m.layout_hash = nil
	m.clearedFields[extraction.FieldLayoutHash] = struct{}{}
}

// LayoutHashCleared returns if the "layout_hash" field was cleared in this mutation.
func (m *ExtractionMutation) LayoutHashCleared() bool {
	_, ok := m.clearedFields[extraction.FieldLayoutHash]
	return ok
}

// ResetLayoutHash resets all changes to the "layout_hash" field.
func (m *ExtractionMutation) ResetLayoutHash() {
	m.layout_hash = nil
	delete(m.clearedFields, extraction.FieldLayoutHash)
}

// SetOutput sets the "output" field.
func (m *ExtractionMutation) SetOutput(jm json.RawMessage) {
	m.output = &jm
	m.appendoutput = nil
}

// Output returns the value of the "output" field in the mutation.
func (m *ExtractionMutation) Output() (r json.RawMessage, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldOutput(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// AppendOutput adds jm to the "output" field.
func (m *ExtractionMutation) AppendOutput(jm json.RawMessage) {
	m.appendoutput = append(m.appendoutput, jm...)
}

// AppendedOutput returns the list of values that were appended to the "output" field in this mutation.
func (m *ExtractionMutation) AppendedOutput() (json.RawMessage, bool) {
	if len(m.appendoutput) == 0 {
		return nil, false
	}
	return m.appendoutput, true
}

// ClearOutput clears the value of the "output" field.
func (m *ExtractionMutation) ClearOutput() {
	m.output = nil
	m.appendoutput = nil
	m.clearedFields[extraction.FieldOutput] = struct{}{}
}

// OutputCleared returns if the "output" field was cleared in this mutation.
func (m *ExtractionMutation) OutputCleared() bool {
	_, ok := m.clearedFields[extraction.FieldOutput]
	return ok
}

// ResetOutput resets all changes to the "output" field.
func (m *ExtractionMutation) ResetOutput() {
	m.output = nil
	m.appendoutput = nil
	delete(m.clearedFields, extraction.FieldOutput)
}

// SetIssues sets the "issues" field.
func (m *ExtractionMutation) SetIssues(jm json.RawMessage) {
	m.issues = &jm
	m.appendissues = nil
}

// Issues returns the value of the "issues" field in the mutation.
func (m *ExtractionMutation) Issues() (r json.RawMessage, exists bool) {
	v := m.issues
	if v == nil {
		return
	}
	return *v, true
}

// OldIssues returns the old "issues" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldIssues(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssues is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssues requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssues: %w", err)
	}
	return oldValue.Issues, nil
}

// AppendIssues adds jm to the "issues" field.
func (m *ExtractionMutation) AppendIssues(jm json.RawMessage) {
	m.appendissues = append(m.appendissues, jm...)
}

// AppendedIssues returns the list of values that were appended to the "issues" field in this mutation.
func (m *ExtractionMutation) AppendedIssues() (json.RawMessage, bool) {
	if len(m.appendissues) == 0 {
		return nil, false
	}
	return m.appendissues, true
}

// ClearIssues clears the value of the "issues" field.
func (m *ExtractionMutation) ClearIssues() {
	m.issues = nil
	m.appendissues = nil
	m.clearedFields[extraction.FieldIssues] = struct{}{}
}

// IssuesCleared returns if the "issues" field was cleared in this mutation.
func (m *ExtractionMutation) IssuesCleared() bool {
	_, ok := m.clearedFields[extraction.FieldIssues]
	return ok
}

// ResetIssues resets all changes to the "issues" field.
func (m *ExtractionMutation) ResetIssues() {
	m.issues = nil
	m.appendissues = nil
	delete(m.clearedFields, extraction.FieldIssues)
}

// SetConfidence sets the "confidence" field.
func (m *ExtractionMutation) SetConfidence(f float32) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *ExtractionMutation) Confidence() (r float32, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *ExtractionMutation) AddConfidence(f float32) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *ExtractionMutation) AddedConfidence() (r float32, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *ExtractionMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[extraction.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *ExtractionMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[extraction.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *ExtractionMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, extraction.FieldConfidence)
}

// SetBand sets the "band" field.
func (m *ExtractionMutation) SetBand(s string) {
	m.band = &s
}

// Band returns the value of the "band" field in the mutation.
func (m *ExtractionMutation) Band() (r string, exists bool) {
	v := m.band
	if v == nil {
		return
	}
	return *v, true
}

// OldBand returns the old "band" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldBand(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBand: %w", err)
	}
	return oldValue.Band, nil
}

// ClearBand clears the value of the "band" field.
func (m *ExtractionMutation) ClearBand() {
	m.band = nil
	m.clearedFields[extraction.FieldBand] = struct{}{}
}

// BandCleared returns if the "band" field was cleared in this mutation.
func (m *ExtractionMutation) BandCleared() bool {
	_, ok := m.clearedFields[extraction.FieldBand]
	return ok
}

// ResetBand resets all changes to the "band" field.
func (m *ExtractionMutation) ResetBand() {
	m.band = nil
	delete(m.clearedFields, extraction.FieldBand)
}

// SetSuccess sets the "success" field.
func (m *ExtractionMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *ExtractionMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *ExtractionMutation) ResetSuccess() {
	m.success = nil
}

// SetNeedsReview sets the "needs_review" field.
func (m *ExtractionMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *ExtractionMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *ExtractionMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *ExtractionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExtractionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ExtractionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[extraction.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExtractionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[extraction.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExtractionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, extraction.FieldErrorMessage)
}

// SetStartedAt sets the "started_at" field.
func (m *ExtractionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ExtractionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ExtractionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *ExtractionMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ExtractionMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ExtractionMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[extraction.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ExtractionMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[extraction.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ExtractionMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, extraction.FieldFinishedAt)
}

// SetDurationMs sets the "duration_ms" field.
func (m *ExtractionMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *ExtractionMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *ExtractionMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *ExtractionMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *ExtractionMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[extraction.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *ExtractionMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[extraction.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *ExtractionMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, extraction.FieldDurationMs)
}

// ClearProcessor clears the "processor" edge to the Processor entity.
func (m *ExtractionMutation) ClearProcessor() {
	m.clearedprocessor = true
	m.clearedFields[extraction.FieldProcessorID] = struct{}{}
}

// ProcessorCleared reports if the "processor" edge to the Processor entity was cleared.
func (m *ExtractionMutation) ProcessorCleared() bool {
	return m.clearedprocessor
}

// ProcessorIDs returns the "processor" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProcessorID instead. It exists only for internal usage by the builders.
func (m *ExtractionMutation) ProcessorIDs() (ids []uuid.UUID) {
	if id := m.processor; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProcessor resets all changes to the "processor" edge.
func (m *ExtractionMutation) ResetProcessor() {
	m.processor = nil
	m.clearedprocessor = false
}

// Where appends a list predicates to the ExtractionMutation builder.
func (m *ExtractionMutation) Where(ps ...predicate.Extraction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Extraction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Extraction).
func (m *ExtractionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractionMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.processor != nil {
		fields = append(fields, extraction.FieldProcessorID)
	}
	if m.filename != nil {
		fields = append(fields, extraction.FieldFilename)
	}
	if m.format != nil {
		fields = append(fields, extraction.FieldFormat)
	}
	if m.status != nil {
		fields = append(fields, extraction.FieldStatus)
	}
	if m.ir_method != nil {
		fields = append(fields, extraction.FieldIrMethod)
	}
	if m.layout_hash != nil {
		fields = append(fields, extraction.FieldLayoutHash)
	}
	if m.output != nil {
		fields = append(fields, extraction.FieldOutput)
	}
	if m.issues != nil {
		fields = append(fields, extraction.FieldIssues)
	}
	if m.confidence != nil {
		fields = append(fields, extraction.FieldConfidence)
	}
	if m.band != nil {
		fields = append(fields, extraction.FieldBand)
	}
	if m.success != nil {
		fields = append(fields, extraction.FieldSuccess)
	}
	if m.needs_review != nil {
		fields = append(fields, extraction.FieldNeedsReview)
	}
	if m.error_message != nil {
		fields = append(fields, extraction.FieldErrorMessage)
	}
	if m.started_at != nil {
		fields = append(fields, extraction.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, extraction.FieldFinishedAt)
	}
	if m.duration_ms != nil {
		fields = append(fields, extraction.FieldDurationMs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extraction.FieldProcessorID:
		return m.ProcessorID()
	case extraction.FieldFilename:
		return m.Filename()
	case extraction.FieldFormat:
		return m.Format()
	case extraction.FieldStatus:
		return m.Status()
	case extraction.FieldIrMethod:
		return m.IrMethod()
	case extraction.FieldLayoutHash:
		return m.LayoutHash()
	case extraction.FieldOutput:
		return m.Output()
	case extraction.FieldIssues:
		return m.Issues()
	case extraction.FieldConfidence:
		return m.Confidence()
	case extraction.FieldBand:
		return m.Band()
	case extraction.FieldSuccess:
		return m.Success()
	case extraction.FieldNeedsReview:
		return m.NeedsReview()
	case extraction.FieldErrorMessage:
		return m.ErrorMessage()
	case extraction.FieldStartedAt:
		return m.StartedAt()
	case extraction.FieldFinishedAt:
		return m.FinishedAt()
	case extraction.FieldDurationMs:
		return m.DurationMs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extraction.FieldProcessorID:
		return m.OldProcessorID(ctx)
	case extraction.FieldFilename:
		return m.OldFilename(ctx)
	case extraction.FieldFormat:
		return m.OldFormat(ctx)
	case extraction.FieldStatus:
		return m.OldStatus(ctx)
	case extraction.FieldIrMethod:
		return m.OldIrMethod(ctx)
	case extraction.FieldLayoutHash:
		return m.OldLayoutHash(ctx)
	case extraction.FieldOutput:
		return m.OldOutput(ctx)
	case extraction.FieldIssues:
		return m.OldIssues(ctx)
	case extraction.FieldConfidence:
		return m.OldConfidence(ctx)
	case extraction.FieldBand:
		return m.OldBand(ctx)
	case extraction.FieldSuccess:
		return m.OldSuccess(ctx)
	case extraction.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	case extraction.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case extraction.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case extraction.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case extraction.FieldDurationMs:
		return m.OldDurationMs(ctx)
	}
	return nil, fmt.Errorf("unknown Extraction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extraction.FieldProcessorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessorID(v)
		return nil
	case extraction.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case extraction.FieldFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case extraction.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case extraction.FieldIrMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIrMethod(v)
		return nil
	case extraction.FieldLayoutHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLayoutHash(v)
		return nil
	case extraction.FieldOutput:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case extraction.FieldIssues:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssues(v)
		return nil
	case extraction.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case extraction.FieldBand:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBand(v)
		return nil
	case extraction.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case extraction.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	case extraction.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case extraction.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case extraction.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case extraction.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown Extraction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractionMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, extraction.FieldConfidence)
	}
	if m.addduration_ms != nil {
		fields = append(fields, extraction.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extraction.FieldConfidence:
		return m.AddedConfidence()
	case extraction.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extraction.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case extraction.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown Extraction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extraction.FieldIrMethod) {
		fields = append(fields, extraction.FieldIrMethod)
	}
	if m.FieldCleared(extraction.FieldLayoutHash) {
		fields = append(fields, extraction.FieldLayoutHash)
	}
	if m.FieldCleared(extraction.FieldOutput) {
		fields = append(fields, extraction.FieldOutput)
	}
	if m.FieldCleared(extraction.FieldIssues) {
		fields = append(fields, extraction.FieldIssues)
	}
	if m.FieldCleared(extraction.FieldConfidence) {
		fields = append(fields, extraction.FieldConfidence)
	}
	if m.FieldCleared(extraction.FieldBand) {
		fields = append(fields, extraction.FieldBand)
	}
	if m.FieldCleared(extraction.FieldErrorMessage) {
		fields = append(fields, extraction.FieldErrorMessage)
	}
	if m.FieldCleared(extraction.FieldFinishedAt) {
		fields = append(fields, extraction.FieldFinishedAt)
	}
	if m.FieldCleared(extraction.FieldDurationMs) {
		fields = append(fields, extraction.FieldDurationMs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractionMutation) ClearField(name string) error {
	switch name {
	case extraction.FieldIrMethod:
		m.ClearIrMethod()
		return nil
	case extraction.FieldLayoutHash:
		m.ClearLayoutHash()
		return nil
	case extraction.FieldOutput:
		m.ClearOutput()
		return nil
	case extraction.FieldIssues:
		m.ClearIssues()
		return nil
	case extraction.FieldConfidence:
		m.ClearConfidence()
		return nil
	case extraction.FieldBand:
		m.ClearBand()
		return nil
	case extraction.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case extraction.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case extraction.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	}
	return fmt.Errorf("unknown Extraction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractionMutation) ResetField(name string) error {
	switch name {
	case extraction.FieldProcessorID:
		m.ResetProcessorID()
		return nil
	case extraction.FieldFilename:
		m.ResetFilename()
		return nil
	case extraction.FieldFormat:
		m.ResetFormat()
		return nil
	case extraction.FieldStatus:
		m.ResetStatus()
		return nil
	case extraction.FieldIrMethod:
		m.ResetIrMethod()
		return nil
	case extraction.FieldLayoutHash:
		m.ResetLayoutHash()
		return nil
	case extraction.FieldOutput:
		m.ResetOutput()
		return nil
	case extraction.FieldIssues:
		m.ResetIssues()
		return nil
	case extraction.FieldConfidence:
		m.ResetConfidence()
		return nil
	case extraction.FieldBand:
		m.ResetBand()
		return nil
	case extraction.FieldSuccess:
		m.ResetSuccess()
		return nil
	case extraction.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	case extraction.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case extraction.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case extraction.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case extraction.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	}
	return fmt.Errorf("unknown Extraction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.processor != nil {
		edges = append(edges, extraction.EdgeProcessor)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extraction.EdgeProcessor:
		if id := m.processor; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedprocessor {
		edges = append(edges, extraction.EdgeProcessor)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractionMutation) EdgeCleared(name string) bool {
	switch name {
	case extraction.EdgeProcessor:
		return m.clearedprocessor
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractionMutation) ClearEdge(name string) error {
	switch name {
	case extraction.EdgeProcessor:
		m.ClearProcessor()
		return nil
	}
	return fmt.Errorf("unknown Extraction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractionMutation) ResetEdge(name string) error {
	switch name {
	case extraction.EdgeProcessor:
		m.ResetProcessor()
		return nil
	}
	return fmt.Errorf("unknown Extraction edge %s", name)
}

// ProcessorMutation represents an operation that mutates the Processor nodes in the graph.
type ProcessorMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	name               *string
	document_type      *string
	version            *int
	addversion         *int
	layout_hash        *string
	rules              *json.RawMessage
	appendrules        json.RawMessage
	template           *string
	success_count      *int
	addsuccess_count   *int
	failure_count      *int
	addfailure_count   *int
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	examples           map[uuid.UUID]struct{}
	removedexamples    map[uuid.UUID]struct{}
	clearedexamples    bool
	extractions        map[uuid.UUID]struct{}
	removedextractions map[uuid.UUID]struct{}
	clearedextractions bool
	done               bool
	oldValue           func(context.Context) (*Processor, error)
	predicates         []predicate.Processor
}

var _ ent.Mutation = (*ProcessorMutation)(nil)

// processorOption allows management of the mutation configuration using functional options.
type processorOption func(*ProcessorMutation)

// newProcessorMutation creates new mutation for the Processor entity.
func newProcessorMutation(c config, op Op, opts ...processorOption) *ProcessorMutation {
	m := &ProcessorMutation{
		config:        c,
		op:            op,
		typ:           TypeProcessor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProcessorID sets the ID field of the mutation.
func withProcessorID(id uuid.UUID) processorOption {
	return func(m *ProcessorMutation) {
		var (
			err   error
			once  sync.Once
			value *Processor
		)
		m.oldValue = func(ctx context.Context) (*Processor, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Processor.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProcessor sets the old Processor of the mutation.
func withProcessor(node *Processor) processorOption {
	return func(m *ProcessorMutation) {
		m.oldValue = func(context.Context) (*Processor, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProcessorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProcessorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Processor entities.
func (m *ProcessorMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProcessorMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProcessorMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Processor.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ProcessorMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProcessorMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Processor entity.
// If the Processor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessorMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProcessorMutation) ResetName() {
	m.name = nil
}

// SetDocumentType sets the "document_type" field.
func (m *ProcessorMutation) SetDocumentType(s string) {
	m.document_type = &s
}

// DocumentType returns the value of the "document_type" field in the mutation.
func (m *ProcessorMutation) DocumentType() (r string, exists bool) {
	v := m.document_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentType returns the old "document_type" field's value of the Processor entity.
// If the Processor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessorMutation) OldDocumentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentType: %w", err)
	}
	return oldValue.DocumentType, nil
}

// ResetDocumentType resets all changes to the "document_type" field.
func (m *ProcessorMutation) ResetDocumentType() {
	m.document_type = nil
}

// SetVersion sets the "version" field.
func (m *ProcessorMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *ProcessorMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Processor entity.
// If the Processor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessorMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *ProcessorMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *ProcessorMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *ProcessorMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetLayoutHash sets the "layout_hash" field.
func (m *ProcessorMutation) SetLayoutHash(s string) {
	m.layout_hash = &s
}

// LayoutHash returns the value of the "layout_hash" field in the mutation.
func (m *ProcessorMutation) LayoutHash() (r string, exists bool) {
	v := m.layout_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldLayoutHash returns the old "layout_hash" field's value of the Processor entity.
// If the Processor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessorMutation) OldLayoutHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLayoutHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLayoutHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLayoutHash: %w", err)
	}
	return oldValue.LayoutHash, nil
}

// ClearLayoutHash clears the value of the "layout_hash" field.
func (m *ProcessorMutation) ClearLayoutHash() {
	m.layout_hash = nil
	m.clearedFields[processor.FieldLayoutHash] = struct{}{}
}

// LayoutHashCleared returns if the "layout_hash" field was cleared in this mutation.
func (m *ProcessorMutation) LayoutHashCleared() bool {
	_, ok := m.clearedFields[processor.FieldLayoutHash]
	return ok
}

// ResetLayoutHash resets all changes to the "layout_hash" field.
func (m *ProcessorMutation) ResetLayoutHash() {
	m.layout_hash = nil
	delete(m.clearedFields, processor.FieldLayoutHash)
}

// SetRules sets the "rules" field.
func (m *ProcessorMutation) SetRules(jm json.RawMessage) {
	m.rules = &jm
	m.appendrules = nil
}

// Rules returns the value of the "rules" field in the mutation.
func (m *ProcessorMutation) Rules() (r json.RawMessage, exists bool) {
	v := m.rules
	if v == nil {
		return
	}
	return *v, true
}

// OldRules returns the old "rules" field's value of the Processor entity.
// If the Processor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessorMutation) OldRules(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRules is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRules requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRules: %w", err)
	}
	return oldValue.Rules, nil
}

// AppendRules adds jm to the "rules" field.
func (m *ProcessorMutation) AppendRules(jm json.RawMessage) {
	m.appendrules = append(m.appendrules, jm...)
}

// AppendedRules returns the list of values that were appended to the "rules" field in this mutation.
func (m *ProcessorMutation) AppendedRules() (json.RawMessage, bool) {
	if len(m.appendrules) == 0 {
		return nil, false
	}
	return m.appendrules, true
}

// ResetRules resets all changes to the "rules" field.
func (m *ProcessorMutation) ResetRules() {
	m.rules = nil
	m.appendrules = nil
}

// SetTemplate sets the "template" field.
func (m *ProcessorMutation) SetTemplate(s string) {
	m.template = &s
}

// Template returns the value of the "template" field in the mutation.
func (m *ProcessorMutation) Template() (r string, exists bool) {
	v := m.template
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplate returns the old "template" field's value of the Processor entity.
// If the Processor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessorMutation) OldTemplate(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplate: %w", err)
	}
	return oldValue.Template, nil
}

// ClearTemplate clears the value of the "template" field.
func (m *ProcessorMutation) ClearTemplate() {
	m.template = nil
	m.clearedFields[processor.FieldTemplate] = struct{}{}
}

// TemplateCleared returns if the "template" field was cleared in this mutation.
func (m *ProcessorMutation) TemplateCleared() bool {
	_, ok := m.clearedFields[processor.FieldTemplate]
	return ok
}

// ResetTemplate resets all changes to the "template" field.
func (m *ProcessorMutation) ResetTemplate() {
	m.template = nil
	delete(m.clearedFields, processor.FieldTemplate)
}

// SetSuccessCount sets the "success_count" field.
func (m *ProcessorMutation) SetSuccessCount(i int) {
	m.success_count = &i
	m.addsuccess_count = nil
}

// SuccessCount returns the value of the "success_count" field in the mutation.
func (m *ProcessorMutation) SuccessCount() (r int, exists bool) {
	v := m.success_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccessCount returns the old "success_count" field's value of the Processor entity.
// If the Processor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessorMutation) OldSuccessCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccessCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccessCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccessCount: %w", err)
	}
	return oldValue.SuccessCount, nil
}

// AddSuccessCount adds i to the "success_count" field.
func (m *ProcessorMutation) AddSuccessCount(i int) {
	if m.addsuccess_count != nil {
		*m.addsuccess_count += i
	} else {
		m.addsuccess_count = &i
	}
}

// AddedSuccessCount returns the value that was added to the "success_count" field in this mutation.
func (m *ProcessorMutation) AddedSuccessCount() (r int, exists bool) {
	v := m.addsuccess_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSuccessCount resets all changes to the "success_count" field.
func (m *ProcessorMutation) ResetSuccessCount() {
	m.success_count = nil
	m.addsuccess_count = nil
}

// SetFailureCount sets the "failure_count" field.
func (m *ProcessorMutation) SetFailureCount(i int) {
	m.failure_count = &i
	m.addfailure_count = nil
}

// FailureCount returns the value of the "failure_count" field in the mutation.
func (m *ProcessorMutation) FailureCount() (r int, exists bool) {
	v := m.failure_count
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureCount returns the old "failure_count" field's value of the Processor entity.
// If the Processor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessorMutation) OldFailureCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureCount: %w", err)
	}
	return oldValue.FailureCount, nil
}

// AddFailureCount adds i to the "failure_count" field.
func (m *ProcessorMutation) AddFailureCount(i int) {
	if m.addfailure_count != nil {
		*m.addfailure_count += i
	} else {
		m.addfailure_count = &i
	}
}

// AddedFailureCount returns the value that was added to the "failure_count" field in this mutation.
func (m *ProcessorMutation) AddedFailureCount() (r int, exists bool) {
	v := m.addfailure_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailureCount resets all changes to the "failure_count" field.
func (m *ProcessorMutation) ResetFailureCount() {
	m.failure_count = nil
	m.addfailure_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProcessorMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProcessorMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Processor entity.
// If the Processor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessorMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProcessorMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProcessorMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProcessorMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Processor entity.
// If the Processor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessorMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProcessorMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddExampleIDs adds the "examples" edge to the Example entity by ids.
func (m *ProcessorMutation) AddExampleIDs(ids ...uuid.UUID) {
	if m.examples == nil {
		m.examples = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.examples[ids[i]] = struct{}{}
	}
}

// ClearExamples clears the "examples" edge to the Example entity.
func (m *ProcessorMutation) ClearExamples() {
	m.clearedexamples = true
}

// ExamplesCleared reports if the "examples" edge to the Example entity was cleared.
func (m *ProcessorMutation) ExamplesCleared() bool {
	return m.clearedexamples
}

// RemoveExampleIDs removes the "examples" edge to the Example entity by IDs.
func (m *ProcessorMutation) RemoveExampleIDs(ids ...uuid.UUID) {
	if m.removedexamples == nil {
		m.removedexamples = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.examples, ids[i])
		m.removedexamples[ids[i]] = struct{}{}
	}
}

// RemovedExamples returns the removed IDs of the "examples" edge to the Example entity.
func (m *ProcessorMutation) RemovedExamplesIDs() (ids []uuid.UUID) {
	for id := range m.removedexamples {
		ids = append(ids, id)
	}
	return
}

// ExamplesIDs returns the "examples" edge IDs in the mutation.
func (m *ProcessorMutation) ExamplesIDs() (ids []uuid.UUID) {
	for id := range m.examples {
		ids = append(ids, id)
	}
	return
}

// ResetExamples resets all changes to the "examples" edge.
func (m *ProcessorMutation) ResetExamples() {
	m.examples = nil
	m.clearedexamples = false
	m.removedexamples = nil
}

// AddExtractionIDs adds the "extractions" edge to the Extraction entity by ids.
func (m *ProcessorMutation) AddExtractionIDs(ids ...uuid.UUID) {
	if m.extractions == nil {
		m.extractions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.extractions[ids[i]] = struct{}{}
	}
}

// ClearExtractions clears the "extractions" edge to the Extraction entity.
func (m *ProcessorMutation) ClearExtractions() {
	m.clearedextractions = true
}

// ExtractionsCleared reports if the "extractions" edge to the Extraction entity was cleared.
func (m *ProcessorMutation) ExtractionsCleared() bool {
	return m.clearedextractions
}

// RemoveExtractionIDs removes the "extractions" edge to the Extraction entity by IDs.
func (m *ProcessorMutation) RemoveExtractionIDs(ids ...uuid.UUID) {
	if m.removedextractions == nil {
		m.removedextractions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.extractions, ids[i])
		m.removedextractions[ids[i]] = struct{}{}
	}
}

// RemovedExtractions returns the removed IDs of the "extractions" edge to the Extraction entity.
func (m *ProcessorMutation) RemovedExtractionsIDs() (ids []uuid.UUID) {
	for id := range m.removedextractions {
		ids = append(ids, id)
	}
	return
}

// ExtractionsIDs returns the "extractions" edge IDs in the mutation.
func (m *ProcessorMutation) ExtractionsIDs() (ids []uuid.UUID) {
	for id := range m.extractions {
		ids = append(ids, id)
	}
	return
}

// ResetExtractions resets all changes to the "extractions" edge.
func (m *ProcessorMutation) ResetExtractions() {
	m.extractions = nil
	m.clearedextractions = false
	m.removedextractions = nil
}

// Where appends a list predicates to the ProcessorMutation builder.
func (m *ProcessorMutation) Where(ps ...predicate.Processor) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProcessorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProcessorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Processor, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProcessorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProcessorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Processor).
func (m *ProcessorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProcessorMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.name != nil {
		fields = append(fields, processor.FieldName)
	}
	if m.document_type != nil {
		fields = append(fields, processor.FieldDocumentType)
	}
	if m.version != nil {
		fields = append(fields, processor.FieldVersion)
	}
	if m.layout_hash != nil {
		fields = append(fields, processor.FieldLayoutHash)
	}
	if m.rules != nil {
		fields = append(fields, processor.FieldRules)
	}
	if m.template != nil {
		fields = append(fields, processor.FieldTemplate)
	}
	if m.success_count != nil {
		fields = append(fields, processor.FieldSuccessCount)
	}
	if m.failure_count != nil {
		fields = append(fields, processor.FieldFailureCount)
	}
	if m.created_at != nil {
		fields = append(fields, processor.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, processor.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProcessorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case processor.FieldName:
		return m.Name()
	case processor.FieldDocumentType:
		return m.DocumentType()
	case processor.FieldVersion:
		return m.Version()
	case processor.FieldLayoutHash:
		return m.LayoutHash()
	case processor.FieldRules:
		return m.Rules()
	case processor.FieldTemplate:
		return m.Template()
	case processor.FieldSuccessCount:
		return m.SuccessCount()
	case processor.FieldFailureCount:
		return m.FailureCount()
	case processor.FieldCreatedAt:
		return m.CreatedAt()
	case processor.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProcessorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case processor.FieldName:
		return m.OldName(ctx)
	case processor.FieldDocumentType:
		return m.OldDocumentType(ctx)
	case processor.FieldVersion:
		return m.OldVersion(ctx)
	case processor.FieldLayoutHash:
		return m.OldLayoutHash(ctx)
	case processor.FieldRules:
		return m.OldRules(ctx)
	case processor.FieldTemplate:
		return m.OldTemplate(ctx)
	case processor.FieldSuccessCount:
		return m.OldSuccessCount(ctx)
	case processor.FieldFailureCount:
		return m.OldFailureCount(ctx)
	case processor.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case processor.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Processor field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case processor.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case processor.FieldDocumentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentType(v)
		return nil
	case processor.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case processor.FieldLayoutHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLayoutHash(v)
		return nil
	case processor.FieldRules:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRules(v)
		return nil
	case processor.FieldTemplate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplate(v)
		return nil
	case processor.FieldSuccessCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccessCount(v)
		return nil
	case processor.FieldFailureCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureCount(v)
		return nil
	case processor.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case processor.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Processor field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProcessorMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, processor.FieldVersion)
	}
	if m.addsuccess_count != nil {
		fields = append(fields, processor.FieldSuccessCount)
	}
	if m.addfailure_count != nil {
		fields = append(fields, processor.FieldFailureCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProcessorMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case processor.FieldVersion:
		return m.AddedVersion()
	case processor.FieldSuccessCount:
		return m.AddedSuccessCount()
	case processor.FieldFailureCount:
		return m.AddedFailureCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessorMutation) AddField(name string, value ent.Value) error {
	switch name {
	case processor.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	case processor.FieldSuccessCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSuccessCount(v)
		return nil
	case processor.FieldFailureCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailureCount(v)
		return nil
	}
	return fmt.Errorf("unknown Processor numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProcessorMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(processor.FieldLayoutHash) {
		fields = append(fields, processor.FieldLayoutHash)
	}
	if m.FieldCleared(processor.FieldTemplate) {
		fields = append(fields, processor.FieldTemplate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProcessorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProcessorMutation) ClearField(name string) error {
	switch name {
	case processor.FieldLayoutHash:
		m.ClearLayoutHash()
		return nil
	case processor.FieldTemplate:
		m.ClearTemplate()
		return nil
	}
	return fmt.Errorf("unknown Processor nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProcessorMutation) ResetField(name string) error {
	switch name {
	case processor.FieldName:
		m.ResetName()
		return nil
	case processor.FieldDocumentType:
		m.ResetDocumentType()
		return nil
	case processor.FieldVersion:
		m.ResetVersion()
		return nil
	case processor.FieldLayoutHash:
		m.ResetLayoutHash()
		return nil
	case processor.FieldRules:
		m.ResetRules()
		return nil
	case processor.FieldTemplate:
		m.ResetTemplate()
		return nil
	case processor.FieldSuccessCount:
		m.ResetSuccessCount()
		return nil
	case processor.FieldFailureCount:
		m.ResetFailureCount()
		return nil
	case processor.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case processor.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Processor field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProcessorMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.examples != nil {
		edges = append(edges, processor.EdgeExamples)
	}
	if m.extractions != nil {
		edges = append(edges, processor.EdgeExtractions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProcessorMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case processor.EdgeExamples:
		ids := make([]ent.Value, 0, len(m.examples))
		for id := range m.examples {
			ids = append(ids, id)
		}
		return ids
	case processor.EdgeExtractions:
		ids := make([]ent.Value, 0, len(m.extractions))
		for id := range m.extractions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProcessorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedexamples != nil {
		edges = append(edges, processor.EdgeExamples)
	}
	if m.removedextractions != nil {
		edges = append(edges, processor.EdgeExtractions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProcessorMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case processor.EdgeExamples:
		ids := make([]ent.Value, 0, len(m.removedexamples))
		for id := range m.removedexamples {
			ids = append(ids, id)
		}
		return ids
	case processor.EdgeExtractions:
		ids := make([]ent.Value, 0, len(m.removedextractions))
		for id := range m.removedextractions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProcessorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedexamples {
		edges = append(edges, processor.EdgeExamples)
	}
	if m.clearedextractions {
		edges = append(edges, processor.EdgeExtractions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProcessorMutation) EdgeCleared(name string) bool {
	switch name {
	case processor.EdgeExamples:
		return m.clearedexamples
	case processor.EdgeExtractions:
		return m.clearedextractions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProcessorMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Processor unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProcessorMutation) ResetEdge(name string) error {
	switch name {
	case processor.EdgeExamples:
		m.ResetExamples()
		return nil
	case processor.EdgeExtractions:
		m.ResetExtractions()
		return nil
	}
	return fmt.Errorf("unknown Processor edge %s", name)
}
