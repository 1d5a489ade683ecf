// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/statline/statline/gen/ent/example"
	"github.com/statline/statline/gen/ent/extraction"
	"github.com/statline/statline/gen/ent/predicate"
	"github.com/statline/statline/gen/ent/processor"
)

// ProcessorUpdate is the builder for updating Processor entities.
type ProcessorUpdate struct {
	config
	hooks    []Hook
	mutation *ProcessorMutation
}

// Where appends a list predicates to the ProcessorUpdate builder.
func (_u *ProcessorUpdate) Where(ps ...predicate.Processor) *ProcessorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ProcessorUpdate) SetName(v string) *ProcessorUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProcessorUpdate) SetNillableName(v *string) *ProcessorUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *ProcessorUpdate) SetDocumentType(v string) *ProcessorUpdate {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *ProcessorUpdate) SetNillableDocumentType(v *string) *ProcessorUpdate {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *ProcessorUpdate) SetVersion(v int) *ProcessorUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ProcessorUpdate) SetNillableVersion(v *int) *ProcessorUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ProcessorUpdate) AddVersion(v int) *ProcessorUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetLayoutHash sets the "layout_hash" field.
func (_u *ProcessorUpdate) SetLayoutHash(v string) *ProcessorUpdate {
	_u.mutation.SetLayoutHash(v)
	return _u
}

// SetNillableLayoutHash sets the "layout_hash" field if the given value is not nil.
func (_u *ProcessorUpdate) SetNillableLayoutHash(v *string) *ProcessorUpdate {
	if v != nil {
		_u.SetLayoutHash(*v)
	}
	return _u
}

// ClearLayoutHash clears the value of the "layout_hash" field.
func (_u *ProcessorUpdate) ClearLayoutHash() *ProcessorUpdate {
	_u.mutation.ClearLayoutHash()
	return _u
}

// SetRules sets the "rules" field.
func (_u *ProcessorUpdate) SetRules(v json.RawMessage) *ProcessorUpdate {
	_u.mutation.SetRules(v)
	return _u
}

// AppendRules appends value to the "rules" field.
func (_u *ProcessorUpdate) AppendRules(v json.RawMessage) *ProcessorUpdate {
	_u.mutation.AppendRules(v)
	return _u
}

// SetTemplate sets the "template" field.
func (_u *ProcessorUpdate) SetTemplate(v string) *ProcessorUpdate {
	_u.mutation.SetTemplate(v)
	return _u
}

// SetNillableTemplate sets the "template" field if the given value is not nil.
func (_u *ProcessorUpdate) SetNillableTemplate(v *string) *ProcessorUpdate {
	if v != nil {
		_u.SetTemplate(*v)
	}
	return _u
}

// ClearTemplate clears the value of the "template" field.
func (_u *ProcessorUpdate) ClearTemplate() *ProcessorUpdate {
	_u.mutation.ClearTemplate()
	return _u
}

// SetSuccessCount sets the "success_count" field.
func (_u *ProcessorUpdate) SetSuccessCount(v int) *ProcessorUpdate {
	_u.mutation.ResetSuccessCount()
	_u.mutation.SetSuccessCount(v)
	return _u
}

// SetNillableSuccessCount sets the "success_count" field if the given value is not nil.
func (_u *ProcessorUpdate) SetNillableSuccessCount(v *int) *ProcessorUpdate {
	if v != nil {
		_u.SetSuccessCount(*v)
	}
	return _u
}

// AddSuccessCount adds value to the "success_count" field.
func (_u *ProcessorUpdate) AddSuccessCount(v int) *ProcessorUpdate {
	_u.mutation.AddSuccessCount(v)
	return _u
}

// SetFailureCount sets the "failure_count" field.
func (_u *ProcessorUpdate) SetFailureCount(v int) *ProcessorUpdate {
	_u.mutation.ResetFailureCount()
	_u.mutation.SetFailureCount(v)
	return _u
}

// SetNillableFailureCount sets the "failure_count" field if the given value is not nil.
func (_u *ProcessorUpdate) SetNillableFailureCount(v *int) *ProcessorUpdate {
	if v != nil {
		_u.SetFailureCount(*v)
	}
	return _u
}

// AddFailureCount adds value to the "failure_count" field.
func (_u *ProcessorUpdate) AddFailureCount(v int) *ProcessorUpdate {
	_u.mutation.AddFailureCount(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ProcessorUpdate) SetCreatedAt(v time.Time) *ProcessorUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ProcessorUpdate) SetNillableCreatedAt(v *time.Time) *ProcessorUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProcessorUpdate) SetUpdatedAt(v time.Time) *ProcessorUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddExampleIDs adds the "examples" edge to the Example entity by IDs.
func (_u *ProcessorUpdate) AddExampleIDs(ids ...uuid.UUID) *ProcessorUpdate {
	_u.mutation.AddExampleIDs(ids...)
	return _u
}

// AddExamples adds the "examples" edges to the Example entity.
func (_u *ProcessorUpdate) AddExamples(v ...*Example) *ProcessorUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExampleIDs(ids...)
}

// AddExtractionIDs adds the "extractions" edge to the Extraction entity by IDs.
func (_u *ProcessorUpdate) AddExtractionIDs(ids ...uuid.UUID) *ProcessorUpdate {
	_u.mutation.AddExtractionIDs(ids...)
	return _u
}

// AddExtractions adds the "extractions" edges to the Extraction entity.
func (_u *ProcessorUpdate) AddExtractions(v ...*Extraction) *ProcessorUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExtractionIDs(ids...)
}

// Mutation returns the ProcessorMutation object of the builder.
func (_u *ProcessorUpdate) Mutation() *ProcessorMutation {
	return _u.mutation
}

// ClearExamples clears all "examples" edges to the Example entity.
func (_u *ProcessorUpdate) ClearExamples() *ProcessorUpdate {
	_u.mutation.ClearExamples()
	return _u
}

// RemoveExampleIDs removes the "examples" edge to Example entities by IDs.
func (_u *ProcessorUpdate) RemoveExampleIDs(ids ...uuid.UUID) *ProcessorUpdate {
	_u.mutation.RemoveExampleIDs(ids...)
	return _u
}

// RemoveExamples removes "examples" edges to Example entities.
func (_u *ProcessorUpdate) RemoveExamples(v ...*Example) *ProcessorUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExampleIDs(ids...)
}

// ClearExtractions clears all "extractions" edges to the Extraction entity.
func (_u *ProcessorUpdate) ClearExtractions() *ProcessorUpdate {
	_u.mutation.ClearExtractions()
	return _u
}

// RemoveExtractionIDs removes the "extractions" edge to Extraction entities by IDs.
func (_u *ProcessorUpdate) RemoveExtractionIDs(ids ...uuid.UUID) *ProcessorUpdate {
	_u.mutation.RemoveExtractionIDs(ids...)
	return _u
}

// RemoveExtractions removes "extractions" edges to Extraction entities.
func (_u *ProcessorUpdate) RemoveExtractions(v ...*Extraction) *ProcessorUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExtractionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProcessorUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProcessorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProcessorUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := processor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessorUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := processor.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Processor.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentType(); ok {
		if err := processor.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "Processor.document_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Version(); ok {
		if err := processor.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "Processor.version": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SuccessCount(); ok {
		if err := processor.SuccessCountValidator(v); err != nil {
			return &ValidationError{Name: "success_count", err: fmt.Errorf(`ent: validator failed for field "Processor.success_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailureCount(); ok {
		if err := processor.FailureCountValidator(v); err != nil {
			return &ValidationError{Name: "failure_count", err: fmt.Errorf(`ent: validator failed for field "Processor.failure_count": %w`, err)}
		}
	}
	return nil
}

func (_u *ProcessorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processor.Table, processor.Columns, sqlgraph.NewFieldSpec(processor.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(processor.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(processor.FieldDocumentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(processor.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(processor.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LayoutHash(); ok {
		_spec.SetField(processor.FieldLayoutHash, field.TypeString, value)
	}
	if _u.mutation.LayoutHashCleared() {
		_spec.ClearField(processor.FieldLayoutHash, field.TypeString)
	}
	if value, ok := _u.mutation.Rules(); ok {
		_spec.SetField(processor.FieldRules, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRules(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, processor.FieldRules, value)
		})
	}
	if value, ok := _u.mutation.Template(); ok {
		_spec.SetField(processor.FieldTemplate, field.TypeString, value)
	}
	if _u.mutation.TemplateCleared() {
		_spec.ClearField(processor.FieldTemplate, field.TypeString)
	}
	if value, ok := _u.mutation.SuccessCount(); ok {
		_spec.SetField(processor.FieldSuccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccessCount(); ok {
		_spec.AddField(processor.FieldSuccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailureCount(); ok {
		_spec.SetField(processor.FieldFailureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailureCount(); ok {
		_spec.AddField(processor.FieldFailureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(processor.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(processor.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ExamplesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   processor.ExamplesTable,
			Columns: []string{processor.ExamplesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(example.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExamplesIDs(); len(nodes) > 0 && !_u.mutation.ExamplesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   processor.ExamplesTable,
			Columns: []string{processor.ExamplesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(example.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExamplesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   processor.ExamplesTable,
			Columns: []string{processor.ExamplesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(example.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ExtractionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   processor.ExtractionsTable,
			Columns: []string{processor.ExtractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExtractionsIDs(); len(nodes) > 0 && !_u.mutation.ExtractionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   processor.ExtractionsTable,
			Columns: []string{processor.ExtractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExtractionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   processor.ExtractionsTable,
			Columns: []string{processor.ExtractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProcessorUpdateOne is the builder for updating a single Processor entity.
type ProcessorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProcessorMutation
}

// SetName sets the "name" field.
func (_u *ProcessorUpdateOne) SetName(v string) *ProcessorUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProcessorUpdateOne) SetNillableName(v *string) *ProcessorUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *ProcessorUpdateOne) SetDocumentType(v string) *ProcessorUpdateOne {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *ProcessorUpdateOne) SetNillableDocumentType(v *string) *ProcessorUpdateOne {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *ProcessorUpdateOne) SetVersion(v int) *ProcessorUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ProcessorUpdateOne) SetNillableVersion(v *int) *ProcessorUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ProcessorUpdateOne) AddVersion(v int) *ProcessorUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetLayoutHash sets the "layout_hash" field.
func (_u *ProcessorUpdateOne) SetLayoutHash(v string) *ProcessorUpdateOne {
	_u.mutation.SetLayoutHash(v)
	return _u
}

// SetNillableLayoutHash sets the "layout_hash" field if the given value is not nil.
func (_u *ProcessorUpdateOne) SetNillableLayoutHash(v *string) *ProcessorUpdateOne {
	if v != nil {
		_u.SetLayoutHash(*v)
	}
	return _u
}

// ClearLayoutHash clears the value of the "layout_hash" field.
func (_u *ProcessorUpdateOne) ClearLayoutHash() *ProcessorUpdateOne {
	_u.mutation.ClearLayoutHash()
	return _u
}

// SetRules sets the "rules" field.
func (_u *ProcessorUpdateOne) SetRules(v json.RawMessage) *ProcessorUpdateOne {
	_u.mutation.SetRules(v)
	return _u
}

// AppendRules appends value to the "rules" field.
func (_u *ProcessorUpdateOne) AppendRules(v json.RawMessage) *ProcessorUpdateOne {
	_u.mutation.AppendRules(v)
	return _u
}

// SetTemplate sets the "template" field.
func (_u *ProcessorUpdateOne) SetTemplate(v string) *ProcessorUpdateOne {
	_u.mutation.SetTemplate(v)
	return _u
}

// SetNillableTemplate sets the "template" field if the given value is not nil.
func (_u *ProcessorUpdateOne) SetNillableTemplate(v *string) *ProcessorUpdateOne {
	if v != nil {
		_u.SetTemplate(*v)
	}
	return _u
}

// ClearTemplate clears the value of the "template" field.
func (_u *ProcessorUpdateOne) ClearTemplate() *ProcessorUpdateOne {
	_u.mutation.ClearTemplate()
	return _u
}

// SetSuccessCount sets the "success_count" field.
func (_u *ProcessorUpdateOne) SetSuccessCount(v int) *ProcessorUpdateOne {
	_u.mutation.ResetSuccessCount()
	_u.mutation.SetSuccessCount(v)
	return _u
}

// SetNillableSuccessCount sets the "success_count" field if the given value is not nil.
func (_u *ProcessorUpdateOne) SetNillableSuccessCount(v *int) *ProcessorUpdateOne {
	if v != nil {
		_u.SetSuccessCount(*v)
	}
	return _u
}

// AddSuccessCount adds value to the "success_count" field.
func (_u *ProcessorUpdateOne) AddSuccessCount(v int) *ProcessorUpdateOne {
	_u.mutation.AddSuccessCount(v)
	return _u
}

// SetFailureCount sets the "failure_count" field.
func (_u *ProcessorUpdateOne) SetFailureCount(v int) *ProcessorUpdateOne {
	_u.mutation.ResetFailureCount()
	_u.mutation.SetFailureCount(v)
	return _u
}

// SetNillableFailureCount sets the "failure_count" field if the given value is not nil.
func (_u *ProcessorUpdateOne) SetNillableFailureCount(v *int) *ProcessorUpdateOne {
	if v != nil {
		_u.SetFailureCount(*v)
	}
	return _u
}

// AddFailureCount adds value to the "failure_count" field.
func (_u *ProcessorUpdateOne) AddFailureCount(v int) *ProcessorUpdateOne {
	_u.mutation.AddFailureCount(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ProcessorUpdateOne) SetCreatedAt(v time.Time) *ProcessorUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ProcessorUpdateOne) SetNillableCreatedAt(v *time.Time) *ProcessorUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProcessorUpdateOne) SetUpdatedAt(v time.Time) *ProcessorUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddExampleIDs adds the "examples" edge to the Example entity by IDs.
func (_u *ProcessorUpdateOne) AddExampleIDs(ids ...uuid.UUID) *ProcessorUpdateOne {
	_u.mutation.AddExampleIDs(ids...)
	return _u
}

// AddExamples adds the "examples" edges to the Example entity.
func (_u *ProcessorUpdateOne) AddExamples(v ...*Example) *ProcessorUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExampleIDs(ids...)
}

// AddExtractionIDs adds the "extractions" edge to the Extraction entity by IDs.
func (_u *ProcessorUpdateOne) AddExtractionIDs(ids ...uuid.UUID) *ProcessorUpdateOne {
	_u.mutation.AddExtractionIDs(ids...)
	return _u
}

// AddExtractions adds the "extractions" edges to the Extraction entity.
func (_u *ProcessorUpdateOne) AddExtractions(v ...*Extraction) *ProcessorUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExtractionIDs(ids...)
}

// Mutation returns the ProcessorMutation object of the builder.
func (_u *ProcessorUpdateOne) Mutation() *ProcessorMutation {
	return _u.mutation
}

// ClearExamples clears all "examples" edges to the Example entity.
func (_u *ProcessorUpdateOne) ClearExamples() *ProcessorUpdateOne {
	_u.mutation.ClearExamples()
	return _u
}

// RemoveExampleIDs removes the "examples" edge to Example entities by IDs.
func (_u *ProcessorUpdateOne) RemoveExampleIDs(ids ...uuid.UUID) *ProcessorUpdateOne {
	_u.mutation.RemoveExampleIDs(ids...)
	return _u
}

// RemoveExamples removes "examples" edges to Example entities.
func (_u *ProcessorUpdateOne) RemoveExamples(v ...*Example) *ProcessorUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExampleIDs(ids...)
}

// ClearExtractions clears all "extractions" edges to the Extraction entity.
func (_u *ProcessorUpdateOne) ClearExtractions() *ProcessorUpdateOne {
	_u.mutation.ClearExtractions()
	return _u
}

// RemoveExtractionIDs removes the "extractions" edge to Extraction entities by IDs.
func (_u *ProcessorUpdateOne) RemoveExtractionIDs(ids ...uuid.UUID) *ProcessorUpdateOne {
	_u.mutation.RemoveExtractionIDs(ids...)
	return _u
}

// RemoveExtractions removes "extractions" edges to Extraction entities.
func (_u *ProcessorUpdateOne) RemoveExtractions(v ...*Extraction) *ProcessorUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExtractionIDs(ids...)
}

// Where appends a list predicates to the ProcessorUpdate builder.
func (_u *ProcessorUpdateOne) Where(ps ...predicate.Processor) *ProcessorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProcessorUpdateOne) Select(field string, fields ...string) *ProcessorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Processor entity.
func (_u *ProcessorUpdateOne) Save(ctx context.Context) (*Processor, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessorUpdateOne) SaveX(ctx context.Context) *Processor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProcessorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProcessorUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := processor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessorUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := processor.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Processor.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentType(); ok {
		if err := processor.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "Processor.document_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Version(); ok {
		if err := processor.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "Processor.version": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SuccessCount(); ok {
		if err := processor.SuccessCountValidator(v); err != nil {
			return &ValidationError{Name: "success_count", err: fmt.Errorf(`ent: validator failed for field "Processor.success_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailureCount(); ok {
		if err := processor.FailureCountValidator(v); err != nil {
			return &ValidationError{Name: "failure_count", err: fmt.Errorf(`ent: validator failed for field "Processor.failure_count": %w`, err)}
		}
	}
	return nil
}

func (_u *ProcessorUpdateOne) sqlSave(ctx context.Context) (_node *Processor, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processor.Table, processor.Columns, sqlgraph.NewFieldSpec(processor.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Processor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, processor.FieldID)
		for _, f := range fields {
			if !processor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != processor.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(processor.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(processor.FieldDocumentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(processor.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(processor.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LayoutHash(); ok {
		_spec.SetField(processor.FieldLayoutHash, field.TypeString, value)
	}
	if _u.mutation.LayoutHashCleared() {
		_spec.ClearField(processor.FieldLayoutHash, field.TypeString)
	}
	if value, ok := _u.mutation.Rules(); ok {
		_spec.SetField(processor.FieldRules, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRules(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, processor.FieldRules, value)
		})
	}
	if value, ok := _u.mutation.Template(); ok {
		_spec.SetField(processor.FieldTemplate, field.TypeString, value)
	}
	if _u.mutation.TemplateCleared() {
		_spec.ClearField(processor.FieldTemplate, field.TypeString)
	}
	if value, ok := _u.mutation.SuccessCount(); ok {
		_spec.SetField(processor.FieldSuccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccessCount(); ok {
		_spec.AddField(processor.FieldSuccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailureCount(); ok {
		_spec.SetField(processor.FieldFailureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailureCount(); ok {
		_spec.AddField(processor.FieldFailureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(processor.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(processor.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ExamplesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   processor.ExamplesTable,
			Columns: []string{processor.ExamplesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(example.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExamplesIDs(); len(nodes) > 0 && !_u.mutation.ExamplesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   processor.ExamplesTable,
			Columns: []string{processor.ExamplesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(example.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExamplesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   processor.ExamplesTable,
			Columns: []string{processor.ExamplesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(example.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ExtractionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   processor.ExtractionsTable,
			Columns: []string{processor.ExtractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExtractionsIDs(); len(nodes) > 0 && !_u.mutation.ExtractionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   processor.ExtractionsTable,
			Columns: []string{processor.ExtractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExtractionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   processor.ExtractionsTable,
			Columns: []string{processor.ExtractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Processor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
