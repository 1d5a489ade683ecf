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
	"github.com/statline/statline/gen/ent/extraction"
	"github.com/statline/statline/gen/ent/predicate"
	"github.com/statline/statline/gen/ent/processor"
)

// ExtractionUpdate is the builder for updating Extraction entities.
type ExtractionUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractionMutation
}

// Where appends a list predicates to the ExtractionUpdate builder.
func (_u *ExtractionUpdate) Where(ps ...predicate.Extraction) *ExtractionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProcessorID sets the "processor_id" field.
func (_u *ExtractionUpdate) SetProcessorID(v uuid.UUID) *ExtractionUpdate {
	_u.mutation.SetProcessorID(v)
	return _u
}

// SetNillableProcessorID sets the "processor_id" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableProcessorID(v *uuid.UUID) *ExtractionUpdate {
	if v != nil {
		_u.SetProcessorID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *ExtractionUpdate) SetFilename(v string) *ExtractionUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableFilename(v *string) *ExtractionUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *ExtractionUpdate) SetFormat(v string) *ExtractionUpdate {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableFormat(v *string) *ExtractionUpdate {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractionUpdate) SetStatus(v string) *ExtractionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableStatus(v *string) *ExtractionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIrMethod sets the "ir_method" field.
func (_u *ExtractionUpdate) SetIrMethod(v string) *ExtractionUpdate {
	_u.mutation.SetIrMethod(v)
	return _u
}

// SetNillableIrMethod sets the "ir_method" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableIrMethod(v *string) *ExtractionUpdate {
	if v != nil {
		_u.SetIrMethod(*v)
	}
	return _u
}

// ClearIrMethod clears the value of the "ir_method" field.
func (_u *ExtractionUpdate) ClearIrMethod() *ExtractionUpdate {
	_u.mutation.ClearIrMethod()
	return _u
}

// SetLayoutHash sets the "layout_hash" field.
func (_u *ExtractionUpdate) SetLayoutHash(v string) *ExtractionUpdate {
	_u.mutation.SetLayoutHash(v)
	return _u
}

// SetNillableLayoutHash sets the "layout_hash" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableLayoutHash(v *string) *ExtractionUpdate {
	if v != nil {
		_u.SetLayoutHash(*v)
	}
	return _u
}

// ClearLayoutHash clears the value of the "layout_hash" field.
func (_u *ExtractionUpdate) ClearLayoutHash() *ExtractionUpdate {
	_u.mutation.ClearLayoutHash()
	return _u
}

// SetOutput sets the "output" field.
func (_u *ExtractionUpdate) SetOutput(v json.RawMessage) *ExtractionUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// AppendOutput appends value to the "output" field.
func (_u *ExtractionUpdate) AppendOutput(v json.RawMessage) *ExtractionUpdate {
	_u.mutation.AppendOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *ExtractionUpdate) ClearOutput() *ExtractionUpdate {
	_u.mutation.ClearOutput()
	return _u
}

// SetIssues sets the "issues" field.
func (_u *ExtractionUpdate) SetIssues(v json.RawMessage) *ExtractionUpdate {
	_u.mutation.SetIssues(v)
	return _u
}

// AppendIssues appends value to the "issues" field.
func (_u *ExtractionUpdate) AppendIssues(v json.RawMessage) *ExtractionUpdate {
	_u.mutation.AppendIssues(v)
	return _u
}

// ClearIssues clears the value of the "issues" field.
func (_u *ExtractionUpdate) ClearIssues() *ExtractionUpdate {
	_u.mutation.ClearIssues()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ExtractionUpdate) SetConfidence(v float32) *ExtractionUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableConfidence(v *float32) *ExtractionUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ExtractionUpdate) AddConfidence(v float32) *ExtractionUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *ExtractionUpdate) ClearConfidence() *ExtractionUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetBand sets the "band" field.
func (_u *ExtractionUpdate) SetBand(v string) *ExtractionUpdate {
	_u.mutation.SetBand(v)
	return _u
}

// SetNillableBand sets the "band" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableBand(v *string) *ExtractionUpdate {
	if v != nil {
		_u.SetBand(*v)
	}
	return _u
}

// ClearBand clears the value of the "band" field.
func (_u *ExtractionUpdate) ClearBand() *ExtractionUpdate {
	_u.mutation.ClearBand()
	return _u
}

// SetSuccess sets the "success" field.
func (_u *ExtractionUpdate) SetSuccess(v bool) *ExtractionUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableSuccess(v *bool) *ExtractionUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *ExtractionUpdate) SetNeedsReview(v bool) *ExtractionUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableNeedsReview(v *bool) *ExtractionUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractionUpdate) SetErrorMessage(v string) *ExtractionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableErrorMessage(v *string) *ExtractionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractionUpdate) ClearErrorMessage() *ExtractionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExtractionUpdate) SetStartedAt(v time.Time) *ExtractionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableStartedAt(v *time.Time) *ExtractionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ExtractionUpdate) SetFinishedAt(v time.Time) *ExtractionUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableFinishedAt(v *time.Time) *ExtractionUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ExtractionUpdate) ClearFinishedAt() *ExtractionUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ExtractionUpdate) SetDurationMs(v int64) *ExtractionUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableDurationMs(v *int64) *ExtractionUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ExtractionUpdate) AddDurationMs(v int64) *ExtractionUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *ExtractionUpdate) ClearDurationMs() *ExtractionUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetProcessor sets the "processor" edge to the Processor entity.
func (_u *ExtractionUpdate) SetProcessor(v *Processor) *ExtractionUpdate {
	return _u.SetProcessorID(v.ID)
}

// Mutation returns the ExtractionMutation object of the builder.
func (_u *ExtractionUpdate) Mutation() *ExtractionMutation {
	return _u.mutation
}

// ClearProcessor clears the "processor" edge to the Processor entity.
func (_u *ExtractionUpdate) ClearProcessor() *ExtractionUpdate {
	_u.mutation.ClearProcessor()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := extraction.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Extraction.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Format(); ok {
		if err := extraction.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "Extraction.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := extraction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Extraction.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Band(); ok {
		if err := extraction.BandValidator(v); err != nil {
			return &ValidationError{Name: "band", err: fmt.Errorf(`ent: validator failed for field "Extraction.band": %w`, err)}
		}
	}
	if _u.mutation.ProcessorCleared() && len(_u.mutation.ProcessorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Extraction.processor"`)
	}
	return nil
}

func (_u *ExtractionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extraction.Table, extraction.Columns, sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(extraction.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(extraction.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extraction.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.IrMethod(); ok {
		_spec.SetField(extraction.FieldIrMethod, field.TypeString, value)
	}
	if _u.mutation.IrMethodCleared() {
		_spec.ClearField(extraction.FieldIrMethod, field.TypeString)
	}
	if value, ok := _u.mutation.LayoutHash(); ok {
		_spec.SetField(extraction.FieldLayoutHash, field.TypeString, value)
	}
	if _u.mutation.LayoutHashCleared() {
		_spec.ClearField(extraction.FieldLayoutHash, field.TypeString)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(extraction.FieldOutput, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOutput(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extraction.FieldOutput, value)
		})
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(extraction.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.Issues(); ok {
		_spec.SetField(extraction.FieldIssues, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIssues(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extraction.FieldIssues, value)
		})
	}
	if _u.mutation.IssuesCleared() {
		_spec.ClearField(extraction.FieldIssues, field.TypeJSON)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(extraction.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(extraction.FieldConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(extraction.FieldConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.Band(); ok {
		_spec.SetField(extraction.FieldBand, field.TypeString, value)
	}
	if _u.mutation.BandCleared() {
		_spec.ClearField(extraction.FieldBand, field.TypeString)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(extraction.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(extraction.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extraction.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extraction.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(extraction.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(extraction.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(extraction.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(extraction.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(extraction.FieldDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(extraction.FieldDurationMs, field.TypeInt64)
	}
	if _u.mutation.ProcessorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extraction.ProcessorTable,
			Columns: []string{extraction.ProcessorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processor.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProcessorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extraction.ProcessorTable,
			Columns: []string{extraction.ProcessorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extraction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractionUpdateOne is the builder for updating a single Extraction entity.
type ExtractionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractionMutation
}

// SetProcessorID sets the "processor_id" field.
func (_u *ExtractionUpdateOne) SetProcessorID(v uuid.UUID) *ExtractionUpdateOne {
	_u.mutation.SetProcessorID(v)
	return _u
}

// SetNillableProcessorID sets the "processor_id" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableProcessorID(v *uuid.UUID) *ExtractionUpdateOne {
	if v != nil {
		_u.SetProcessorID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *ExtractionUpdateOne) SetFilename(v string) *ExtractionUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableFilename(v *string) *ExtractionUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *ExtractionUpdateOne) SetFormat(v string) *ExtractionUpdateOne {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableFormat(v *string) *ExtractionUpdateOne {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractionUpdateOne) SetStatus(v string) *ExtractionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableStatus(v *string) *ExtractionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIrMethod sets the "ir_method" field.
func (_u *ExtractionUpdateOne) SetIrMethod(v string) *ExtractionUpdateOne {
	_u.mutation.SetIrMethod(v)
	return _u
}

// SetNillableIrMethod sets the "ir_method" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableIrMethod(v *string) *ExtractionUpdateOne {
	if v != nil {
		_u.SetIrMethod(*v)
	}
	return _u
}

// ClearIrMethod clears the value of the "ir_method" field.
func (_u *ExtractionUpdateOne) ClearIrMethod() *ExtractionUpdateOne {
	_u.mutation.ClearIrMethod()
	return _u
}

// SetLayoutHash sets the "layout_hash" field.
func (_u *ExtractionUpdateOne) SetLayoutHash(v string) *ExtractionUpdateOne {
	_u.mutation.SetLayoutHash(v)
	return _u
}

// SetNillableLayoutHash sets the "layout_hash" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableLayoutHash(v *string) *ExtractionUpdateOne {
	if v != nil {
		_u.SetLayoutHash(*v)
	}
	return _u
}

// ClearLayoutHash clears the value of the "layout_hash" field.
func (_u *ExtractionUpdateOne) ClearLayoutHash() *ExtractionUpdateOne {
	_u.mutation.ClearLayoutHash()
	return _u
}

// SetOutput sets the "output" field.
func (_u *ExtractionUpdateOne) SetOutput(v json.RawMessage) *ExtractionUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// AppendOutput appends value to the "output" field.
func (_u *ExtractionUpdateOne) AppendOutput(v json.RawMessage) *ExtractionUpdateOne {
	_u.mutation.AppendOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *ExtractionUpdateOne) ClearOutput() *ExtractionUpdateOne {
	_u.mutation.ClearOutput()
	return _u
}

// SetIssues sets the "issues" field.
func (_u *ExtractionUpdateOne) SetIssues(v json.RawMessage) *ExtractionUpdateOne {
	_u.mutation.SetIssues(v)
	return _u
}

// AppendIssues appends value to the "issues" field.
func (_u *ExtractionUpdateOne) AppendIssues(v json.RawMessage) *ExtractionUpdateOne {
	_u.mutation.AppendIssues(v)
	return _u
}

// ClearIssues clears the value of the "issues" field.
func (_u *ExtractionUpdateOne) ClearIssues() *ExtractionUpdateOne {
	_u.mutation.ClearIssues()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ExtractionUpdateOne) SetConfidence(v float32) *ExtractionUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableConfidence(v *float32) *ExtractionUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ExtractionUpdateOne) AddConfidence(v float32) *ExtractionUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *ExtractionUpdateOne) ClearConfidence() *ExtractionUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetBand sets the "band" field.
func (_u *ExtractionUpdateOne) SetBand(v string) *ExtractionUpdateOne {
	_u.mutation.SetBand(v)
	return _u
}

// SetNillableBand sets the "band" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableBand(v *string) *ExtractionUpdateOne {
	if v != nil {
		_u.SetBand(*v)
	}
	return _u
}

// ClearBand clears the value of the "band" field.
func (_u *ExtractionUpdateOne) ClearBand() *ExtractionUpdateOne {
	_u.mutation.ClearBand()
	return _u
}

// SetSuccess sets the "success" field.
func (_u *ExtractionUpdateOne) SetSuccess(v bool) *ExtractionUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableSuccess(v *bool) *ExtractionUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *ExtractionUpdateOne) SetNeedsReview(v bool) *ExtractionUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableNeedsReview(v *bool) *ExtractionUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractionUpdateOne) SetErrorMessage(v string) *ExtractionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableErrorMessage(v *string) *ExtractionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractionUpdateOne) ClearErrorMessage() *ExtractionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExtractionUpdateOne) SetStartedAt(v time.Time) *ExtractionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableStartedAt(v *time.Time) *ExtractionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ExtractionUpdateOne) SetFinishedAt(v time.Time) *ExtractionUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableFinishedAt(v *time.Time) *ExtractionUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ExtractionUpdateOne) ClearFinishedAt() *ExtractionUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ExtractionUpdateOne) SetDurationMs(v int64) *ExtractionUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableDurationMs(v *int64) *ExtractionUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ExtractionUpdateOne) AddDurationMs(v int64) *ExtractionUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *ExtractionUpdateOne) ClearDurationMs() *ExtractionUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetProcessor sets the "processor" edge to the Processor entity.
func (_u *ExtractionUpdateOne) SetProcessor(v *Processor) *ExtractionUpdateOne {
	return _u.SetProcessorID(v.ID)
}

// Mutation returns the ExtractionMutation object of the builder.
func (_u *ExtractionUpdateOne) Mutation() *ExtractionMutation {
	return _u.mutation
}

// ClearProcessor clears the "processor" edge to the Processor entity.
func (_u *ExtractionUpdateOne) ClearProcessor() *ExtractionUpdateOne {
	_u.mutation.ClearProcessor()
	return _u
}

// Where appends a list predicates to the ExtractionUpdate builder.
func (_u *ExtractionUpdateOne) Where(ps ...predicate.Extraction) *ExtractionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractionUpdateOne) Select(field string, fields ...string) *ExtractionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Extraction entity.
func (_u *ExtractionUpdateOne) Save(ctx context.Context) (*Extraction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionUpdateOne) SaveX(ctx context.Context) *Extraction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := extraction.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Extraction.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Format(); ok {
		if err := extraction.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "Extraction.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := extraction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Extraction.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Band(); ok {
		if err := extraction.BandValidator(v); err != nil {
			return &ValidationError{Name: "band", err: fmt.Errorf(`ent: validator failed for field "Extraction.band": %w`, err)}
		}
	}
	if _u.mutation.ProcessorCleared() && len(_u.mutation.ProcessorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Extraction.processor"`)
	}
	return nil
}

func (_u *ExtractionUpdateOne) sqlSave(ctx context.Context) (_node *Extraction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extraction.Table, extraction.Columns, sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Extraction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extraction.FieldID)
		for _, f := range fields {
			if !extraction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extraction.FieldID {
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
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(extraction.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(extraction.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extraction.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.IrMethod(); ok {
		_spec.SetField(extraction.FieldIrMethod, field.TypeString, value)
	}
	if _u.mutation.IrMethodCleared() {
		_spec.ClearField(extraction.FieldIrMethod, field.TypeString)
	}
	if value, ok := _u.mutation.LayoutHash(); ok {
		_spec.SetField(extraction.FieldLayoutHash, field.TypeString, value)
	}
	if _u.mutation.LayoutHashCleared() {
		_spec.ClearField(extraction.FieldLayoutHash, field.TypeString)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(extraction.FieldOutput, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOutput(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extraction.FieldOutput, value)
		})
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(extraction.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.Issues(); ok {
		_spec.SetField(extraction.FieldIssues, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIssues(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extraction.FieldIssues, value)
		})
	}
	if _u.mutation.IssuesCleared() {
		_spec.ClearField(extraction.FieldIssues, field.TypeJSON)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(extraction.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(extraction.FieldConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(extraction.FieldConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.Band(); ok {
		_spec.SetField(extraction.FieldBand, field.TypeString, value)
	}
	if _u.mutation.BandCleared() {
		_spec.ClearField(extraction.FieldBand, field.TypeString)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(extraction.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(extraction.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extraction.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extraction.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(extraction.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(extraction.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(extraction.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(extraction.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(extraction.FieldDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(extraction.FieldDurationMs, field.TypeInt64)
	}
	if _u.mutation.ProcessorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extraction.ProcessorTable,
			Columns: []string{extraction.ProcessorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processor.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProcessorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extraction.ProcessorTable,
			Columns: []string{extraction.ProcessorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Extraction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extraction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
