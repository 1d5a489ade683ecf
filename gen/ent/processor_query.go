// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/statline/statline/gen/ent/example"
	"github.com/statline/statline/gen/ent/extraction"
	"github.com/statline/statline/gen/ent/predicate"
	"github.com/statline/statline/gen/ent/processor"
)

// ProcessorQuery is the builder for querying Processor entities.
type ProcessorQuery struct {
	config
	ctx             *QueryContext
	order           []processor.OrderOption
	inters          []Interceptor
	predicates      []predicate.Processor
	withExamples    *ExampleQuery
	withExtractions *ExtractionQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ProcessorQuery builder.
func (_q *ProcessorQuery) Where(ps ...predicate.Processor) *ProcessorQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ProcessorQuery) Limit(limit int) *ProcessorQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ProcessorQuery) Offset(offset int) *ProcessorQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ProcessorQuery) Unique(unique bool) *ProcessorQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ProcessorQuery) Order(o ...processor.OrderOption) *ProcessorQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryExamples chains the current query on the "examples" edge.
func (_q *ProcessorQuery) QueryExamples() *ExampleQuery {
	query := (&ExampleClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(processor.Table, processor.FieldID, selector),
			sqlgraph.To(example.Table, example.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, processor.ExamplesTable, processor.ExamplesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryExtractions chains the current query on the "extractions" edge.
func (_q *ProcessorQuery) QueryExtractions() *ExtractionQuery {
	query := (&ExtractionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(processor.Table, processor.FieldID, selector),
			sqlgraph.To(extraction.Table, extraction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, processor.ExtractionsTable, processor.ExtractionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Processor entity from the query.
// Returns a *NotFoundError when no Processor was found.
func (_q *ProcessorQuery) First(ctx context.Context) (*Processor, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{processor.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ProcessorQuery) FirstX(ctx context.Context) *Processor {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Processor ID from the query.
// Returns a *NotFoundError when no Processor ID was found.
func (_q *ProcessorQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{processor.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ProcessorQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Processor entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Processor entity is found.
// Returns a *NotFoundError when no Processor entities are found.
func (_q *ProcessorQuery) Only(ctx context.Context) (*Processor, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{processor.Label}
	default:
		return nil, &NotSingularError{processor.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ProcessorQuery) OnlyX(ctx context.Context) *Processor {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Processor ID in the query.
// Returns a *NotSingularError when more than one Processor ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ProcessorQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{processor.Label}
	default:
		err = &NotSingularError{processor.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ProcessorQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Processors.
func (_q *ProcessorQuery) All(ctx context.Context) ([]*Processor, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Processor, *ProcessorQuery]()
	return withInterceptors[[]*Processor](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ProcessorQuery) AllX(ctx context.Context) []*Processor {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Processor IDs.
func (_q *ProcessorQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(processor.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ProcessorQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ProcessorQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ProcessorQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ProcessorQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ProcessorQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *ProcessorQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ProcessorQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ProcessorQuery) Clone() *ProcessorQuery {
	if _q == nil {
		return nil
	}
	return &ProcessorQuery{
		config:          _q.config,
		ctx:             _q.ctx.Clone(),
		order:           append([]processor.OrderOption{}, _q.order...),
		inters:          append([]Interceptor{}, _q.inters...),
		predicates:      append([]predicate.Processor{}, _q.predicates...),
		withExamples:    _q.withExamples.Clone(),
		withExtractions: _q.withExtractions.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithExamples tells the query-builder to eager-load the nodes that are connected to
// the "examples" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ProcessorQuery) WithExamples(opts ...func(*ExampleQuery)) *ProcessorQuery {
	query := (&ExampleClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withExamples = query
	return _q
}

// WithExtractions tells the query-builder to eager-load the nodes that are connected to
// the "extractions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ProcessorQuery) WithExtractions(opts ...func(*ExtractionQuery)) *ProcessorQuery {
	query := (&ExtractionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withExtractions = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Processor.Query().
//		GroupBy(processor.FieldName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ProcessorQuery) GroupBy(field string, fields ...string) *ProcessorGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ProcessorGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = processor.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//	}
//
//	client.Processor.Query().
//		Select(processor.FieldName).
//		Scan(ctx, &v)
func (_q *ProcessorQuery) Select(fields ...string) *ProcessorSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ProcessorSelect{ProcessorQuery: _q}
	sbuild.label = processor.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ProcessorSelect configured with the given aggregations.
func (_q *ProcessorQuery) Aggregate(fns ...AggregateFunc) *ProcessorSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ProcessorQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !processor.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *ProcessorQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Processor, error) {
	var (
		nodes       = []*Processor{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withExamples != nil,
			_q.withExtractions != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Processor).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Processor{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withExamples; query != nil {
		if err := _q.loadExamples(ctx, query, nodes,
			func(n *Processor) { n.Edges.Examples = []*Example{} },
			func(n *Processor, e *Example) { n.Edges.Examples = append(n.Edges.Examples, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withExtractions; query != nil {
		if err := _q.loadExtractions(ctx, query, nodes,
			func(n *Processor) { n.Edges.Extractions = []*Extraction{} },
			func(n *Processor, e *Extraction) { n.Edges.Extractions = append(n.Edges.Extractions, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ProcessorQuery) loadExamples(ctx context.Context, query *ExampleQuery, nodes []*Processor, init func(*Processor), assign func(*Processor, *Example)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Processor)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(example.FieldProcessorID)
	}
	query.Where(predicate.Example(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(processor.ExamplesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ProcessorID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "processor_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ProcessorQuery) loadExtractions(ctx context.Context, query *ExtractionQuery, nodes []*Processor, init func(*Processor), assign func(*Processor, *Extraction)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Processor)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(extraction.FieldProcessorID)
	}
	query.Where(predicate.Extraction(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(processor.ExtractionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ProcessorID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "processor_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ProcessorQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ProcessorQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(processor.Table, processor.Columns, sqlgraph.NewFieldSpec(processor.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, processor.FieldID)
		for i := range fields {
			if fields[i] != processor.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *ProcessorQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(processor.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = processor.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ProcessorGroupBy is the group-by builder for Processor entities.
type ProcessorGroupBy struct {
	selector
	build *ProcessorQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ProcessorGroupBy) Aggregate(fns ...AggregateFunc) *ProcessorGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ProcessorGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ProcessorQuery, *ProcessorGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ProcessorGroupBy) sqlScan(ctx context.Context, root *ProcessorQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ProcessorSelect is the builder for selecting fields of Processor entities.
type ProcessorSelect struct {
	*ProcessorQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ProcessorSelect) Aggregate(fns ...AggregateFunc) *ProcessorSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ProcessorSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ProcessorQuery, *ProcessorSelect](ctx, _s.ProcessorQuery, _s, _s.inters, v)
}

func (_s *ProcessorSelect) sqlScan(ctx context.Context, root *ProcessorQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
