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
	"github.com/statline/statline/gen/ent/predicate"
	"github.com/statline/statline/gen/ent/processor"
)

// ExampleUpdate is the builder for updating Example entities.
type ExampleUpdate struct {
	config
	hooks    []Hook
	mutation *ExampleMutation
}

// Where appends a list predicates to the ExampleUpdate builder.
func (_u *ExampleUpdate) Where(ps ...predicate.Example) *ExampleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProcessorID sets the "processor_id" field.
func (_u *ExampleUpdate) SetProcessorID(v uuid.UUID) *ExampleUpdate {
	_u.mutation.SetProcessorID(v)
	return _u
}

// SetNillableProcessorID sets the "processor_id" field if the given value is not nil.
func (_u *ExampleUpdate) SetNillableProcessorID(v *uuid.UUID) *ExampleUpdate {
	if v != nil {
		_u.SetProcessorID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *ExampleUpdate) SetFilename(v string) *ExampleUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ExampleUpdate) SetNillableFilename(v *string) *ExampleUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetLayoutHash sets the "layout_hash" field.
func (_u *ExampleUpdate) SetLayoutHash(v string) *ExampleUpdate {
	_u.mutation.SetLayoutHash(v)
	return _u
}

// SetNillableLayoutHash sets the "layout_hash" field if the given value is not nil.
func (_u *ExampleUpdate) SetNillableLayoutHash(v *string) *ExampleUpdate {
	if v != nil {
		_u.SetLayoutHash(*v)
	}
	return _u
}

// ClearLayoutHash clears the value of the "layout_hash" field.
func (_u *ExampleUpdate) ClearLayoutHash() *ExampleUpdate {
	_u.mutation.ClearLayoutHash()
	return _u
}

// SetIrJSON sets the "ir_json" field.
func (_u *ExampleUpdate) SetIrJSON(v json.RawMessage) *ExampleUpdate {
	_u.mutation.SetIrJSON(v)
	return _u
}

// AppendIrJSON appends value to the "ir_json" field.
func (_u *ExampleUpdate) AppendIrJSON(v json.RawMessage) *ExampleUpdate {
	_u.mutation.AppendIrJSON(v)
	return _u
}

// SetDesiredOutput sets the "desired_output" field.
func (_u *ExampleUpdate) SetDesiredOutput(v json.RawMessage) *ExampleUpdate {
	_u.mutation.SetDesiredOutput(v)
	return _u
}

// AppendDesiredOutput appends value to the "desired_output" field.
func (_u *ExampleUpdate) AppendDesiredOutput(v json.RawMessage) *ExampleUpdate {
	_u.mutation.AppendDesiredOutput(v)
	return _u
}

// SetSynthesisReport sets the "synthesis_report" field.
func (_u *ExampleUpdate) SetSynthesisReport(v json.RawMessage) *ExampleUpdate {
	_u.mutation.SetSynthesisReport(v)
	return _u
}

// AppendSynthesisReport appends value to the "synthesis_report" field.
func (_u *ExampleUpdate) AppendSynthesisReport(v json.RawMessage) *ExampleUpdate {
	_u.mutation.AppendSynthesisReport(v)
	return _u
}

// ClearSynthesisReport clears the value of the "synthesis_report" field.
func (_u *ExampleUpdate) ClearSynthesisReport() *ExampleUpdate {
	_u.mutation.ClearSynthesisReport()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExampleUpdate) SetCreatedAt(v time.Time) *ExampleUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExampleUpdate) SetNillableCreatedAt(v *time.Time) *ExampleUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetProcessor sets the "processor" edge to the Processor entity.
func (_u *ExampleUpdate) SetProcessor(v *Processor) *ExampleUpdate {
	return _u.SetProcessorID(v.ID)
}

// Mutation returns the ExampleMutation object of the builder.
func (_u *ExampleUpdate) Mutation() *ExampleMutation {
	return _u.mutation
}

// ClearProcessor clears the "processor" edge to the Processor entity.
func (_u *ExampleUpdate) ClearProcessor() *ExampleUpdate {
	_u.mutation.ClearProcessor()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExampleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExampleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExampleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExampleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExampleUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := example.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Example.filename": %w`, err)}
		}
	}
	if _u.mutation.ProcessorCleared() && len(_u.mutation.ProcessorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Example.processor"`)
	}
	return nil
}

func (_u *ExampleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(example.Table, example.Columns, sqlgraph.NewFieldSpec(example.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(example.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.LayoutHash(); ok {
		_spec.SetField(example.FieldLayoutHash, field.TypeString, value)
	}
	if _u.mutation.LayoutHashCleared() {
		_spec.ClearField(example.FieldLayoutHash, field.TypeString)
	}
	if value, ok := _u.mutation.IrJSON(); ok {
		_spec.SetField(example.FieldIrJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIrJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, example.FieldIrJSON, value)
		})
	}
	if value, ok := _u.mutation.DesiredOutput(); ok {
		_spec.SetField(example.FieldDesiredOutput, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDesiredOutput(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, example.FieldDesiredOutput, value)
		})
	}
	if value, ok := _u.mutation.SynthesisReport(); ok {
		_spec.SetField(example.FieldSynthesisReport, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSynthesisReport(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, example.FieldSynthesisReport, value)
		})
	}
	if _u.mutation.SynthesisReportCleared() {
		_spec.ClearField(example.FieldSynthesisReport, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(example.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProcessorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{example.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExampleUpdateOne is the builder for updating a single Example entity.
type ExampleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExampleMutation
}

// SetProcessorID sets the "processor_id" field.
func (_u *ExampleUpdateOne) SetProcessorID(v uuid.UUID) *ExampleUpdateOne {
	_u.mutation.SetProcessorID(v)
	return _u
}

// SetNillableProcessorID sets the "processor_id" field if the given value is not nil.
func (_u *ExampleUpdateOne) SetNillableProcessorID(v *uuid.UUID) *ExampleUpdateOne {
	if v != nil {
		_u.SetProcessorID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *ExampleUpdateOne) SetFilename(v string) *ExampleUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ExampleUpdateOne) SetNillableFilename(v *string) *ExampleUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetLayoutHash sets the "layout_hash" field.
func (_u *ExampleUpdateOne) SetLayoutHash(v string) *ExampleUpdateOne {
	_u.mutation.SetLayoutHash(v)
	return _u
}

// SetNillableLayoutHash sets the "layout_hash" field if the given value is not nil.
func (_u *ExampleUpdateOne) SetNillableLayoutHash(v *string) *ExampleUpdateOne {
	if v != nil {
		_u.SetLayoutHash(*v)
	}
	return _u
}

// ClearLayoutHash clears the value of the "layout_hash" field.
func (_u *ExampleUpdateOne) ClearLayoutHash() *ExampleUpdateOne {
	_u.mutation.ClearLayoutHash()
	return _u
}

// SetIrJSON sets the "ir_json" field.
func (_u *ExampleUpdateOne) SetIrJSON(v json.RawMessage) *ExampleUpdateOne {
	_u.mutation.SetIrJSON(v)
	return _u
}

// AppendIrJSON appends value to the "ir_json" field.
func (_u *ExampleUpdateOne) AppendIrJSON(v json.RawMessage) *ExampleUpdateOne {
	_u.mutation.AppendIrJSON(v)
	return _u
}

// SetDesiredOutput sets the "desired_output" field.
func (_u *ExampleUpdateOne) SetDesiredOutput(v json.RawMessage) *ExampleUpdateOne {
	_u.mutation.SetDesiredOutput(v)
	return _u
}

// AppendDesiredOutput appends value to the "desired_output" field.
func (_u *ExampleUpdateOne) AppendDesiredOutput(v json.RawMessage) *ExampleUpdateOne {
	_u.mutation.AppendDesiredOutput(v)
	return _u
}

// SetSynthesisReport sets the "synthesis_report" field.
func (_u *ExampleUpdateOne) SetSynthesisReport(v json.RawMessage) *ExampleUpdateOne {
	_u.mutation.SetSynthesisReport(v)
	return _u
}

// AppendSynthesisReport appends value to the "synthesis_report" field.
func (_u *ExampleUpdateOne) AppendSynthesisReport(v json.RawMessage) *ExampleUpdateOne {
	_u.mutation.AppendSynthesisReport(v)
	return _u
}

// ClearSynthesisReport clears the value of the "synthesis_report" field.
func (_u *ExampleUpdateOne) ClearSynthesisReport() *ExampleUpdateOne {
	_u.mutation.ClearSynthesisReport()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExampleUpdateOne) SetCreatedAt(v time.Time) *ExampleUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExampleUpdateOne) SetNillableCreatedAt(v *time.Time) *ExampleUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetProcessor sets the "processor" edge to the Processor entity.
func (_u *ExampleUpdateOne) SetProcessor(v *Processor) *ExampleUpdateOne {
	return _u.SetProcessorID(v.ID)
}

// Mutation returns the ExampleMutation object of the builder.
func (_u *ExampleUpdateOne) Mutation() *ExampleMutation {
	return _u.mutation
}

// ClearProcessor clears the "processor" edge to the Processor entity.
func (_u *ExampleUpdateOne) ClearProcessor() *ExampleUpdateOne {
	_u.mutation.ClearProcessor()
	return _u
}

// Where appends a list predicates to the ExampleUpdate builder.
func (_u *ExampleUpdateOne) Where(ps ...predicate.Example) *ExampleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExampleUpdateOne) Select(field string, fields ...string) *ExampleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Example entity.
func (_u *ExampleUpdateOne) Save(ctx context.Context) (*Example, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExampleUpdateOne) SaveX(ctx context.Context) *Example {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExampleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExampleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExampleUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := example.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Example.filename": %w`, err)}
		}
	}
	if _u.mutation.ProcessorCleared() && len(_u.mutation.ProcessorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Example.processor"`)
	}
	return nil
}

func (_u *ExampleUpdateOne) sqlSave(ctx context.Context) (_node *Example, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(example.Table, example.Columns, sqlgraph.NewFieldSpec(example.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Example.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, example.FieldID)
		for _, f := range fields {
			if !example.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != example.FieldID {
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
		_spec.SetField(example.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.LayoutHash(); ok {
		_spec.SetField(example.FieldLayoutHash, field.TypeString, value)
	}
	if _u.mutation.LayoutHashCleared() {
		_spec.ClearField(example.FieldLayoutHash, field.TypeString)
	}
	if value, ok := _u.mutation.IrJSON(); ok {
		_spec.SetField(example.FieldIrJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIrJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, example.FieldIrJSON, value)
		})
	}
	if value, ok := _u.mutation.DesiredOutput(); ok {
		_spec.SetField(example.FieldDesiredOutput, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDesiredOutput(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, example.FieldDesiredOutput, value)
		})
	}
	if value, ok := _u.mutation.SynthesisReport(); ok {
		_spec.SetField(example.FieldSynthesisReport, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSynthesisReport(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, example.FieldSynthesisReport, value)
		})
	}
	if _u.mutation.SynthesisReportCleared() {
		_spec.ClearField(example.FieldSynthesisReport, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(example.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProcessorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Example{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{example.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
