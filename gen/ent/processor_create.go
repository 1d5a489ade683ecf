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
	"github.com/statline/statline/gen/ent/example"
	"github.com/statline/statline/gen/ent/extraction"
	"github.com/statline/statline/gen/ent/processor"
)

// ProcessorCreate is the builder for creating a Processor entity.
type ProcessorCreate struct {
	config
	mutation *ProcessorMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *ProcessorCreate) SetName(v string) *ProcessorCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDocumentType sets the "document_type" field.
func (_c *ProcessorCreate) SetDocumentType(v string) *ProcessorCreate {
	_c.mutation.SetDocumentType(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *ProcessorCreate) SetVersion(v int) *ProcessorCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *ProcessorCreate) SetNillableVersion(v *int) *ProcessorCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetLayoutHash sets the "layout_hash" field.
func (_c *ProcessorCreate) SetLayoutHash(v string) *ProcessorCreate {
	_c.mutation.SetLayoutHash(v)
	return _c
}

// SetNillableLayoutHash sets the "layout_hash" field if the given value is not nil.
func (_c *ProcessorCreate) SetNillableLayoutHash(v *string) *ProcessorCreate {
	if v != nil {
		_c.SetLayoutHash(*v)
	}
	return _c
}

// SetRules sets the "rules" field.
func (_c *ProcessorCreate) SetRules(v json.RawMessage) *ProcessorCreate {
	_c.mutation.SetRules(v)
	return _c
}

// SetTemplate sets the "template" field.
func (_c *ProcessorCreate) SetTemplate(v string) *ProcessorCreate {
	_c.mutation.SetTemplate(v)
	return _c
}

// SetNillableTemplate sets the "template" field if the given value is not nil.
func (_c *ProcessorCreate) SetNillableTemplate(v *string) *ProcessorCreate {
	if v != nil {
		_c.SetTemplate(*v)
	}
	return _c
}

// SetSuccessCount sets the "success_count" field.
func (_c *ProcessorCreate) SetSuccessCount(v int) *ProcessorCreate {
	_c.mutation.SetSuccessCount(v)
	return _c
}

// SetNillableSuccessCount sets the "success_count" field if the given value is not nil.
func (_c *ProcessorCreate) SetNillableSuccessCount(v *int) *ProcessorCreate {
	if v != nil {
		_c.SetSuccessCount(*v)
	}
	return _c
}

// SetFailureCount sets the "failure_count" field.
func (_c *ProcessorCreate) SetFailureCount(v int) *ProcessorCreate {
	_c.mutation.SetFailureCount(v)
	return _c
}

// SetNillableFailureCount sets the "failure_count" field if the given value is not nil.
func (_c *ProcessorCreate) SetNillableFailureCount(v *int) *ProcessorCreate {
	if v != nil {
		_c.SetFailureCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProcessorCreate) SetCreatedAt(v time.Time) *ProcessorCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProcessorCreate) SetNillableCreatedAt(v *time.Time) *ProcessorCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProcessorCreate) SetUpdatedAt(v time.Time) *ProcessorCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProcessorCreate) SetNillableUpdatedAt(v *time.Time) *ProcessorCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProcessorCreate) SetID(v uuid.UUID) *ProcessorCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ProcessorCreate) SetNillableID(v *uuid.UUID) *ProcessorCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddExampleIDs adds the "examples" edge to the Example entity by IDs.
func (_c *ProcessorCreate) AddExampleIDs(ids ...uuid.UUID) *ProcessorCreate {
	_c.mutation.AddExampleIDs(ids...)
	return _c
}

// AddExamples adds the "examples" edges to the Example entity.
func (_c *ProcessorCreate) AddExamples(v ...*Example) *ProcessorCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddExampleIDs(ids...)
}

// AddExtractionIDs adds the "extractions" edge to the Extraction entity by IDs.
func (_c *ProcessorCreate) AddExtractionIDs(ids ...uuid.UUID) *ProcessorCreate {
	_c.mutation.AddExtractionIDs(ids...)
	return _c
}

// AddExtractions adds the "extractions" edges to the Extraction entity.
func (_c *ProcessorCreate) AddExtractions(v ...*Extraction) *ProcessorCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddExtractionIDs(ids...)
}

// Mutation returns the ProcessorMutation object of the builder.
func (_c *ProcessorCreate) Mutation() *ProcessorMutation {
	return _c.mutation
}

// Save creates the Processor in the database.
func (_c *ProcessorCreate) Save(ctx context.Context) (*Processor, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProcessorCreate) SaveX(ctx context.Context) *Processor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProcessorCreate) defaults() {
	if _, ok := _c.mutation.Version(); !ok {
		v := processor.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.SuccessCount(); !ok {
		v := processor.DefaultSuccessCount
		_c.mutation.SetSuccessCount(v)
	}
	if _, ok := _c.mutation.FailureCount(); !ok {
		v := processor.DefaultFailureCount
		_c.mutation.SetFailureCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := processor.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := processor.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := processor.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProcessorCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Processor.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := processor.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Processor.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DocumentType(); !ok {
		return &ValidationError{Name: "document_type", err: errors.New(`ent: missing required field "Processor.document_type"`)}
	}
	if v, ok := _c.mutation.DocumentType(); ok {
		if err := processor.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "Processor.document_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Processor.version"`)}
	}
	if v, ok := _c.mutation.Version(); ok {
		if err := processor.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "Processor.version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Rules(); !ok {
		return &ValidationError{Name: "rules", err: errors.New(`ent: missing required field "Processor.rules"`)}
	}
	if _, ok := _c.mutation.SuccessCount(); !ok {
		return &ValidationError{Name: "success_count", err: errors.New(`ent: missing required field "Processor.success_count"`)}
	}
	if v, ok := _c.mutation.SuccessCount(); ok {
		if err := processor.SuccessCountValidator(v); err != nil {
			return &ValidationError{Name: "success_count", err: fmt.Errorf(`ent: validator failed for field "Processor.success_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FailureCount(); !ok {
		return &ValidationError{Name: "failure_count", err: errors.New(`ent: missing required field "Processor.failure_count"`)}
	}
	if v, ok := _c.mutation.FailureCount(); ok {
		if err := processor.FailureCountValidator(v); err != nil {
			return &ValidationError{Name: "failure_count", err: fmt.Errorf(`ent: validator failed for field "Processor.failure_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Processor.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Processor.updated_at"`)}
	}
	return nil
}

func (_c *ProcessorCreate) sqlSave(ctx context.Context) (*Processor, error) {
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

func (_c *ProcessorCreate) createSpec() (*Processor, *sqlgraph.CreateSpec) {
	var (
		_node = &Processor{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(processor.Table, sqlgraph.NewFieldSpec(processor.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(processor.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.DocumentType(); ok {
		_spec.SetField(processor.FieldDocumentType, field.TypeString, value)
		_node.DocumentType = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(processor.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.LayoutHash(); ok {
		_spec.SetField(processor.FieldLayoutHash, field.TypeString, value)
		_node.LayoutHash = value
	}
	if value, ok := _c.mutation.Rules(); ok {
		_spec.SetField(processor.FieldRules, field.TypeJSON, value)
		_node.Rules = value
	}
	if value, ok := _c.mutation.Template(); ok {
		_spec.SetField(processor.FieldTemplate, field.TypeString, value)
		_node.Template = &value
	}
	if value, ok := _c.mutation.SuccessCount(); ok {
		_spec.SetField(processor.FieldSuccessCount, field.TypeInt, value)
		_node.SuccessCount = value
	}
	if value, ok := _c.mutation.FailureCount(); ok {
		_spec.SetField(processor.FieldFailureCount, field.TypeInt, value)
		_node.FailureCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(processor.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(processor.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ExamplesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ExtractionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ProcessorCreateBulk is the builder for creating many Processor entities in bulk.
type ProcessorCreateBulk struct {
	config
	err      error
	builders []*ProcessorCreate
}

// Save creates the Processor entities in the database.
func (_c *ProcessorCreateBulk) Save(ctx context.Context) ([]*Processor, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Processor, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProcessorMutation)
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
func (_c *ProcessorCreateBulk) SaveX(ctx context.Context) []*Processor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
