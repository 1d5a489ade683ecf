// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/statline/statline/gen/ent/extraction"
	"github.com/statline/statline/gen/ent/processor"
)

// ExtractionCreate is the builder for creating a Extraction entity.
type ExtractionCreate struct {
	config
	mutation *ExtractionMutation
	hooks    []Hook
}

// SetProcessorID sets the "processor_id" field.
func (_c *ExtractionCreate) SetProcessorID(v uuid.UUID) *ExtractionCreate {
	_c.mutation.SetProcessorID(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *ExtractionCreate) SetFilename(v string) *ExtractionCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetFormat sets the "format" field.
func (_c *ExtractionCreate) SetFormat(v string) *ExtractionCreate {
	_c.mutation.SetFormat(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExtractionCreate) SetStatus(v string) *ExtractionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetIrMethod sets the "ir_method" field.
func (_c *ExtractionCreate) SetIrMethod(v string) *ExtractionCreate {
	_c.mutation.SetIrMethod(v)
	return _c
}

// SetNillableIrMethod sets the "ir_method" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableIrMethod(v *string) *ExtractionCreate {
	if v != nil {
		_c.SetIrMethod(*v)
	}
	return _c
}

// SetLayoutHash sets the "layout_hash" field.
func (_c *ExtractionCreate) SetLayoutHash(v string) *ExtractionCreate {
	_c.mutation.SetLayoutHash(v)
	return _c
}

// SetNillableLayoutHash sets the "layout_hash" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableLayoutHash(v *string) *ExtractionCreate {
	if v != nil {
		_c.SetLayoutHash(*v)
	}
	return _c
}

// SetOutput sets the "output" field.
func (_c *ExtractionCreate) SetOutput(v json.RawMessage) *ExtractionCreate {
	_c.mutation.SetOutput(v)
	return _c
}

// SetIssues sets the "issues" field.
func (_c *ExtractionCreate) SetIssues(v json.RawMessage) *ExtractionCreate {
	_c.mutation.SetIssues(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ExtractionCreate) SetConfidence(v float32) *ExtractionCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableConfidence(v *float32) *ExtractionCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetBand sets the "band" field.
func (_c *ExtractionCreate) SetBand(v string) *ExtractionCreate {
	_c.mutation.SetBand(v)
	return _c
}

// SetNillableBand sets the "band" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableBand(v *string) *ExtractionCreate {
	if v != nil {
		_c.SetBand(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *ExtractionCreate) SetSuccess(v bool) *ExtractionCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableSuccess(v *bool) *ExtractionCreate {
	if v != nil {
		_c.SetSuccess(*v)
	}
	return _c
}

// SetNeedsReview sets the "needs_review" field.
func (_c *ExtractionCreate) SetNeedsReview(v bool) *ExtractionCreate {
	_c.mutation.SetNeedsReview(v)
	return _c
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableNeedsReview(v *bool) *ExtractionCreate {
	if v != nil {
		_c.SetNeedsReview(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ExtractionCreate) SetErrorMessage(v string) *ExtractionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableErrorMessage(v *string) *ExtractionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ExtractionCreate) SetStartedAt(v time.Time) *ExtractionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableStartedAt(v *time.Time) *ExtractionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *ExtractionCreate) SetFinishedAt(v time.Time) *ExtractionCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableFinishedAt(v *time.Time) *ExtractionCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *ExtractionCreate) SetDurationMs(v int64) *ExtractionCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableDurationMs(v *int64) *ExtractionCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractionCreate) SetID(v uuid.UUID) *ExtractionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableID(v *uuid.UUID) *ExtractionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProcessor sets the "processor" edge to the Processor entity.
func (_c *ExtractionCreate) SetProcessor(v *Processor) *ExtractionCreate {
	return _c.SetProcessorID(v.ID)
}

// Mutation returns the ExtractionMutation object of the builder.
func (_c *ExtractionCreate) Mutation() *ExtractionMutation {
	return _c.mutation
}

// Save creates the Extraction in the database.
func (_c *ExtractionCreate) Save(ctx context.Context) (*Extraction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractionCreate) SaveX(ctx context.Context) *Extraction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractionCreate) defaults() {
	if _, ok := _c.mutation.Success(); !ok {
		v := extraction.DefaultSuccess
		_c.mutation.SetSuccess(v)
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		v := extraction.DefaultNeedsReview
		_c.mutation.SetNeedsReview(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := extraction.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extraction.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractionCreate) check() error {
	if _, ok := _c.mutation.ProcessorID(); !ok {
		return &ValidationError{Name: "processor_id", err: errors.New(`ent: missing required field "Extraction.processor_id"`)}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "Extraction.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := extraction.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Extraction.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Format(); !ok {
		return &ValidationError{Name: "format", err: errors.New(`ent: missing required field "Extraction.format"`)}
	}
	if v, ok := _c.mutation.Format(); ok {
		if err := extraction.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "Extraction.format": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Extraction.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := extraction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Extraction.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Band(); ok {
		if err := extraction.BandValidator(v); err != nil {
			return &ValidationError{Name: "band", err: fmt.Errorf(`ent: validator failed for field "Extraction.band": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "Extraction.success"`)}
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		return &ValidationError{Name: "needs_review", err: errors.New(`ent: missing required field "Extraction.needs_review"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "Extraction.started_at"`)}
	}
	if len(_c.mutation.ProcessorIDs()) == 0 {
		return &ValidationError{Name: "processor", err: errors.New(`ent: missing required edge "Extraction.processor"`)}
	}
	return nil
}

func (_c *ExtractionCreate) sqlSave(ctx context.Context) (*Extraction, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExtractionCreate) createSpec() (*Extraction, *sqlgraph.CreateSpec) {
	var (
		_node = &Extraction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extraction.Table, sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(extraction.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.Format(); ok {
		_spec.SetField(extraction.FieldFormat, field.TypeString, value)
		_node.Format = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(extraction.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.IrMethod(); ok {
		_spec.SetField(extraction.FieldIrMethod, field.TypeString, value)
		_node.IrMethod = &value
	}
	if value, ok := _c.mutation.LayoutHash(); ok {
		_spec.SetField(extraction.FieldLayoutHash, field.TypeString, value)
		_node.LayoutHash = value
	}
	if value, ok := _c.mutation.Output(); ok {
		_spec.SetField(extraction.FieldOutput, field.TypeJSON, value)
		_node.Output = value
	}
	if value, ok := _c.mutation.Issues(); ok {
		_spec.SetField(extraction.FieldIssues, field.TypeJSON, value)
		_node.Issues = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(extraction.FieldConfidence, field.TypeFloat32, value)
		_node.Confidence = &value
	}
	if value, ok := _c.mutation.Band(); ok {
		_spec.SetField(extraction.FieldBand, field.TypeString, value)
		_node.Band = &value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(extraction.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.NeedsReview(); ok {
		_spec.SetField(extraction.FieldNeedsReview, field.TypeBool, value)
		_node.NeedsReview = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(extraction.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(extraction.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(extraction.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(extraction.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if nodes := _c.mutation.ProcessorIDs(); len(nodes) > 0 {
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
		_node.ProcessorID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExtractionCreateBulk is the builder for creating many Extraction entities in bulk.
type ExtractionCreateBulk struct {
	config
	err      error
	builders []*ExtractionCreate
}

// Save creates the Extraction entities in the database.
func (_c *ExtractionCreateBulk) Save(ctx context.Context) ([]*Extraction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Extraction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ExtractionCreateBulk) SaveX(ctx context.Context) []*Extraction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
