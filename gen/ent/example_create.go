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
	"github.com/statline/statline/gen/ent/processor"
)

// ExampleCreate is the builder for creating a Example entity.
type ExampleCreate struct {
	config
	mutation *ExampleMutation
	hooks    []Hook
}

// SetProcessorID sets the "processor_id" field.
func (_c *ExampleCreate) SetProcessorID(v uuid.UUID) *ExampleCreate {
	_c.mutation.SetProcessorID(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *ExampleCreate) SetFilename(v string) *ExampleCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetLayoutHash sets the "layout_hash" field.
func (_c *ExampleCreate) SetLayoutHash(v string) *ExampleCreate {
	_c.mutation.SetLayoutHash(v)
	return _c
}

// SetNillableLayoutHash sets the "layout_hash" field if the given value is not nil.
func (_c *ExampleCreate) SetNillableLayoutHash(v *string) *ExampleCreate {
	if v != nil {
		_c.SetLayoutHash(*v)
	}
	return _c
}

// SetIrJSON sets the "ir_json" field.
func (_c *ExampleCreate) SetIrJSON(v json.RawMessage) *ExampleCreate {
	_c.mutation.SetIrJSON(v)
	return _c
}

// SetDesiredOutput sets the "desired_output" field.
func (_c *ExampleCreate) SetDesiredOutput(v json.RawMessage) *ExampleCreate {
	_c.mutation.SetDesiredOutput(v)
	return _c
}

// SetSynthesisReport sets the "synthesis_report" field.
func (_c *ExampleCreate) SetSynthesisReport(v json.RawMessage) *ExampleCreate {
	_c.mutation.SetSynthesisReport(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExampleCreate) SetCreatedAt(v time.Time) *ExampleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExampleCreate) SetNillableCreatedAt(v *time.Time) *ExampleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExampleCreate) SetID(v uuid.UUID) *ExampleCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExampleCreate) SetNillableID(v *uuid.UUID) *ExampleCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProcessor sets the "processor" edge to the Processor entity.
func (_c *ExampleCreate) SetProcessor(v *Processor) *ExampleCreate {
	return _c.SetProcessorID(v.ID)
}

// Mutation returns the ExampleMutation object of the builder.
func (_c *ExampleCreate) Mutation() *ExampleMutation {
	return _c.mutation
}

// Save creates the Example in the database.
func (_c *ExampleCreate) Save(ctx context.Context) (*Example, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExampleCreate) SaveX(ctx context.Context) *Example {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExampleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExampleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExampleCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := example.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := example.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExampleCreate) check() error {
	if _, ok := _c.mutation.ProcessorID(); !ok {
		return &ValidationError{Name: "processor_id", err: errors.New(`ent: missing required field "Example.processor_id"`)}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "Example.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := example.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Example.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IrJSON(); !ok {
		return &ValidationError{Name: "ir_json", err: errors.New(`ent: missing required field "Example.ir_json"`)}
	}
	if _, ok := _c.mutation.DesiredOutput(); !ok {
		return &ValidationError{Name: "desired_output", err: errors.New(`ent: missing required field "Example.desired_output"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Example.created_at"`)}
	}
	if len(_c.mutation.ProcessorIDs()) == 0 {
		return &ValidationError{Name: "processor", err: errors.New(`ent: missing required edge "Example.processor"`)}
	}
	return nil
}

func (_c *ExampleCreate) sqlSave(ctx context.Context) (*Example, error) {
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

func (_c *ExampleCreate) createSpec() (*Example, *sqlgraph.CreateSpec) {
	var (
		_node = &Example{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(example.Table, sqlgraph.NewFieldSpec(example.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(example.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.LayoutHash(); ok {
		_spec.SetField(example.FieldLayoutHash, field.TypeString, value)
		_node.LayoutHash = value
	}
	if value, ok := _c.mutation.IrJSON(); ok {
		_spec.SetField(example.FieldIrJSON, field.TypeJSON, value)
		_node.IrJSON = value
	}
	if value, ok := _c.mutation.DesiredOutput(); ok {
		_spec.SetField(example.FieldDesiredOutput, field.TypeJSON, value)
		_node.DesiredOutput = value
	}
	if value, ok := _c.mutation.SynthesisReport(); ok {
		_spec.SetField(example.FieldSynthesisReport, field.TypeJSON, value)
		_node.SynthesisReport = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(example.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ProcessorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   example.ProcessorTable,
			Columns: []string{example.ProcessorColumn},
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

// ExampleCreateBulk is the builder for creating many Example entities in bulk.
type ExampleCreateBulk struct {
	config
	err      error
	builders []*ExampleCreate
}

// Save creates the Example entities in the database.
func (_c *ExampleCreateBulk) Save(ctx context.Context) ([]*Example, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Example, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExampleMutation)
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
func (_c *ExampleCreateBulk) SaveX(ctx context.Context) []*Example {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExampleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExampleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
