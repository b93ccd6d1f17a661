// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/learnloop/learnloop/ent/knowledgeitem"
	"github.com/learnloop/learnloop/ent/predicate"
)

// KnowledgeItemQuery is the builder for querying KnowledgeItem entities.
type KnowledgeItemQuery struct {
	config
	ctx        *QueryContext
	order      []knowledgeitem.OrderOption
	inters     []Interceptor
	predicates []predicate.KnowledgeItem
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the KnowledgeItemQuery builder.
func (_q *KnowledgeItemQuery) Where(ps ...predicate.KnowledgeItem) *KnowledgeItemQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *KnowledgeItemQuery) Limit(limit int) *KnowledgeItemQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *KnowledgeItemQuery) Offset(offset int) *KnowledgeItemQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *KnowledgeItemQuery) Unique(unique bool) *KnowledgeItemQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *KnowledgeItemQuery) Order(o ...knowledgeitem.OrderOption) *KnowledgeItemQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// First returns the first KnowledgeItem entity from the query.
// Returns a *NotFoundError when no KnowledgeItem was found.
func (_q *KnowledgeItemQuery) First(ctx context.Context) (*KnowledgeItem, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{knowledgeitem.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *KnowledgeItemQuery) FirstX(ctx context.Context) *KnowledgeItem {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first KnowledgeItem ID from the query.
// Returns a *NotFoundError when no KnowledgeItem ID was found.
func (_q *KnowledgeItemQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{knowledgeitem.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *KnowledgeItemQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single KnowledgeItem entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one KnowledgeItem entity is found.
// Returns a *NotFoundError when no KnowledgeItem entities are found.
func (_q *KnowledgeItemQuery) Only(ctx context.Context) (*KnowledgeItem, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{knowledgeitem.Label}
	default:
		return nil, &NotSingularError{knowledgeitem.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *KnowledgeItemQuery) OnlyX(ctx context.Context) *KnowledgeItem {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only KnowledgeItem ID in the query.
// Returns a *NotSingularError when more than one KnowledgeItem ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *KnowledgeItemQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{knowledgeitem.Label}
	default:
		err = &NotSingularError{knowledgeitem.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *KnowledgeItemQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of KnowledgeItems.
func (_q *KnowledgeItemQuery) All(ctx context.Context) ([]*KnowledgeItem, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*KnowledgeItem, *KnowledgeItemQuery]()
	return withInterceptors[[]*KnowledgeItem](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *KnowledgeItemQuery) AllX(ctx context.Context) []*KnowledgeItem {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of KnowledgeItem IDs.
func (_q *KnowledgeItemQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(knowledgeitem.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *KnowledgeItemQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *KnowledgeItemQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*KnowledgeItemQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *KnowledgeItemQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *KnowledgeItemQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *KnowledgeItemQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the KnowledgeItemQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *KnowledgeItemQuery) Clone() *KnowledgeItemQuery {
	if _q == nil {
		return nil
	}
	return &KnowledgeItemQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]knowledgeitem.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.KnowledgeItem{}, _q.predicates...),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Subject string `json:"subject,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.KnowledgeItem.Query().
//		GroupBy(knowledgeitem.FieldSubject).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *KnowledgeItemQuery) GroupBy(field string, fields ...string) *KnowledgeItemGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &KnowledgeItemGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = knowledgeitem.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Subject string `json:"subject,omitempty"`
//	}
//
//	client.KnowledgeItem.Query().
//		Select(knowledgeitem.FieldSubject).
//		Scan(ctx, &v)
func (_q *KnowledgeItemQuery) Select(fields ...string) *KnowledgeItemSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &KnowledgeItemSelect{KnowledgeItemQuery: _q}
	sbuild.label = knowledgeitem.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a KnowledgeItemSelect configured with the given aggregations.
func (_q *KnowledgeItemQuery) Aggregate(fns ...AggregateFunc) *KnowledgeItemSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *KnowledgeItemQuery) prepareQuery(ctx context.Context) error {
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
		if !knowledgeitem.ValidColumn(f) {
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

func (_q *KnowledgeItemQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*KnowledgeItem, error) {
	var (
		nodes = []*KnowledgeItem{}
		_spec = _q.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*KnowledgeItem).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &KnowledgeItem{config: _q.config}
		nodes = append(nodes, node)
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
	return nodes, nil
}

func (_q *KnowledgeItemQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *KnowledgeItemQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(knowledgeitem.Table, knowledgeitem.Columns, sqlgraph.NewFieldSpec(knowledgeitem.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, knowledgeitem.FieldID)
		for i := range fields {
			if fields[i] != knowledgeitem.FieldID {
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

func (_q *KnowledgeItemQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(knowledgeitem.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = knowledgeitem.Columns
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

// KnowledgeItemGroupBy is the group-by builder for KnowledgeItem entities.
type KnowledgeItemGroupBy struct {
	selector
	build *KnowledgeItemQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *KnowledgeItemGroupBy) Aggregate(fns ...AggregateFunc) *KnowledgeItemGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *KnowledgeItemGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*KnowledgeItemQuery, *KnowledgeItemGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *KnowledgeItemGroupBy) sqlScan(ctx context.Context, root *KnowledgeItemQuery, v any) error {
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

// KnowledgeItemSelect is the builder for selecting fields of KnowledgeItem entities.
type KnowledgeItemSelect struct {
	*KnowledgeItemQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *KnowledgeItemSelect) Aggregate(fns ...AggregateFunc) *KnowledgeItemSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *KnowledgeItemSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*KnowledgeItemQuery, *KnowledgeItemSelect](ctx, _s.KnowledgeItemQuery, _s, _s.inters, v)
}

func (_s *KnowledgeItemSelect) sqlScan(ctx context.Context, root *KnowledgeItemQuery, v any) error {
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
