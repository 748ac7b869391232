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
	"github.com/cardwise/cardwise/ent/learnerparams"
	"github.com/cardwise/cardwise/ent/predicate"
)

// LearnerParamsQuery is the builder for querying LearnerParams entities.
type LearnerParamsQuery struct {
	config
	ctx        *QueryContext
	order      []learnerparams.OrderOption
	inters     []Interceptor
	predicates []predicate.LearnerParams
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the LearnerParamsQuery builder.
func (lpq *LearnerParamsQuery) Where(ps ...predicate.LearnerParams) *LearnerParamsQuery {
	lpq.predicates = append(lpq.predicates, ps...)
	return lpq
}

// Limit the number of records to be returned by this query.
func (lpq *LearnerParamsQuery) Limit(limit int) *LearnerParamsQuery {
	lpq.ctx.Limit = &limit
	return lpq
}

// Offset to start from.
func (lpq *LearnerParamsQuery) Offset(offset int) *LearnerParamsQuery {
	lpq.ctx.Offset = &offset
	return lpq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (lpq *LearnerParamsQuery) Unique(unique bool) *LearnerParamsQuery {
	lpq.ctx.Unique = &unique
	return lpq
}

// Order specifies how the records should be ordered.
func (lpq *LearnerParamsQuery) Order(o ...learnerparams.OrderOption) *LearnerParamsQuery {
	lpq.order = append(lpq.order, o...)
	return lpq
}

// First returns the first LearnerParams entity from the query.
// Returns a *NotFoundError when no LearnerParams was found.
func (lpq *LearnerParamsQuery) First(ctx context.Context) (*LearnerParams, error) {
	nodes, err := lpq.Limit(1).All(setContextOp(ctx, lpq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{learnerparams.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (lpq *LearnerParamsQuery) FirstX(ctx context.Context) *LearnerParams {
	node, err := lpq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first LearnerParams ID from the query.
// Returns a *NotFoundError when no LearnerParams ID was found.
func (lpq *LearnerParamsQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = lpq.Limit(1).IDs(setContextOp(ctx, lpq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{learnerparams.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (lpq *LearnerParamsQuery) FirstIDX(ctx context.Context) int {
	id, err := lpq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single LearnerParams entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one LearnerParams entity is found.
// Returns a *NotFoundError when no LearnerParams entities are found.
func (lpq *LearnerParamsQuery) Only(ctx context.Context) (*LearnerParams, error) {
	nodes, err := lpq.Limit(2).All(setContextOp(ctx, lpq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{learnerparams.Label}
	default:
		return nil, &NotSingularError{learnerparams.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (lpq *LearnerParamsQuery) OnlyX(ctx context.Context) *LearnerParams {
	node, err := lpq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only LearnerParams ID in the query.
// Returns a *NotSingularError when more than one LearnerParams ID is found.
// Returns a *NotFoundError when no entities are found.
func (lpq *LearnerParamsQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = lpq.Limit(2).IDs(setContextOp(ctx, lpq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{learnerparams.Label}
	default:
		err = &NotSingularError{learnerparams.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (lpq *LearnerParamsQuery) OnlyIDX(ctx context.Context) int {
	id, err := lpq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of LearnerParamsSlice.
func (lpq *LearnerParamsQuery) All(ctx context.Context) ([]*LearnerParams, error) {
	ctx = setContextOp(ctx, lpq.ctx, ent.OpQueryAll)
	if err := lpq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*LearnerParams, *LearnerParamsQuery]()
	return withInterceptors[[]*LearnerParams](ctx, lpq, qr, lpq.inters)
}

// AllX is like All, but panics if an error occurs.
func (lpq *LearnerParamsQuery) AllX(ctx context.Context) []*LearnerParams {
	nodes, err := lpq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of LearnerParams IDs.
func (lpq *LearnerParamsQuery) IDs(ctx context.Context) (ids []int, err error) {
	if lpq.ctx.Unique == nil && lpq.path != nil {
		lpq.Unique(true)
	}
	ctx = setContextOp(ctx, lpq.ctx, ent.OpQueryIDs)
	if err = lpq.Select(learnerparams.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (lpq *LearnerParamsQuery) IDsX(ctx context.Context) []int {
	ids, err := lpq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (lpq *LearnerParamsQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, lpq.ctx, ent.OpQueryCount)
	if err := lpq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, lpq, querierCount[*LearnerParamsQuery](), lpq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (lpq *LearnerParamsQuery) CountX(ctx context.Context) int {
	count, err := lpq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (lpq *LearnerParamsQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, lpq.ctx, ent.OpQueryExist)
	switch _, err := lpq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (lpq *LearnerParamsQuery) ExistX(ctx context.Context) bool {
	exist, err := lpq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the LearnerParamsQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (lpq *LearnerParamsQuery) Clone() *LearnerParamsQuery {
	if lpq == nil {
		return nil
	}
	return &LearnerParamsQuery{
		config:     lpq.config,
		ctx:        lpq.ctx.Clone(),
		order:      append([]learnerparams.OrderOption{}, lpq.order...),
		inters:     append([]Interceptor{}, lpq.inters...),
		predicates: append([]predicate.LearnerParams{}, lpq.predicates...),
		// clone intermediate query.
		sql:  lpq.sql.Clone(),
		path: lpq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		UserID string `json:"user_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.LearnerParams.Query().
//		GroupBy(learnerparams.FieldUserID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (lpq *LearnerParamsQuery) GroupBy(field string, fields ...string) *LearnerParamsGroupBy {
	lpq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &LearnerParamsGroupBy{build: lpq}
	grbuild.flds = &lpq.ctx.Fields
	grbuild.label = learnerparams.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		UserID string `json:"user_id,omitempty"`
//	}
//
//	client.LearnerParams.Query().
//		Select(learnerparams.FieldUserID).
//		Scan(ctx, &v)
func (lpq *LearnerParamsQuery) Select(fields ...string) *LearnerParamsSelect {
	lpq.ctx.Fields = append(lpq.ctx.Fields, fields...)
	sbuild := &LearnerParamsSelect{LearnerParamsQuery: lpq}
	sbuild.label = learnerparams.Label
	sbuild.flds, sbuild.scan = &lpq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a LearnerParamsSelect configured with the given aggregations.
func (lpq *LearnerParamsQuery) Aggregate(fns ...AggregateFunc) *LearnerParamsSelect {
	return lpq.Select().Aggregate(fns...)
}

func (lpq *LearnerParamsQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range lpq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, lpq); err != nil {
				return err
			}
		}
	}
	for _, f := range lpq.ctx.Fields {
		if !learnerparams.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if lpq.path != nil {
		prev, err := lpq.path(ctx)
		if err != nil {
			return err
		}
		lpq.sql = prev
	}
	return nil
}

func (lpq *LearnerParamsQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*LearnerParams, error) {
	var (
		nodes = []*LearnerParams{}
		_spec = lpq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*LearnerParams).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &LearnerParams{config: lpq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, lpq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (lpq *LearnerParamsQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := lpq.querySpec()
	_spec.Node.Columns = lpq.ctx.Fields
	if len(lpq.ctx.Fields) > 0 {
		_spec.Unique = lpq.ctx.Unique != nil && *lpq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, lpq.driver, _spec)
}

func (lpq *LearnerParamsQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(learnerparams.Table, learnerparams.Columns, sqlgraph.NewFieldSpec(learnerparams.FieldID, field.TypeInt))
	_spec.From = lpq.sql
	if unique := lpq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if lpq.path != nil {
		_spec.Unique = true
	}
	if fields := lpq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learnerparams.FieldID)
		for i := range fields {
			if fields[i] != learnerparams.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := lpq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := lpq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := lpq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := lpq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (lpq *LearnerParamsQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(lpq.driver.Dialect())
	t1 := builder.Table(learnerparams.Table)
	columns := lpq.ctx.Fields
	if len(columns) == 0 {
		columns = learnerparams.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if lpq.sql != nil {
		selector = lpq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if lpq.ctx.Unique != nil && *lpq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range lpq.predicates {
		p(selector)
	}
	for _, p := range lpq.order {
		p(selector)
	}
	if offset := lpq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := lpq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// LearnerParamsGroupBy is the group-by builder for LearnerParams entities.
type LearnerParamsGroupBy struct {
	selector
	build *LearnerParamsQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (lpgb *LearnerParamsGroupBy) Aggregate(fns ...AggregateFunc) *LearnerParamsGroupBy {
	lpgb.fns = append(lpgb.fns, fns...)
	return lpgb
}

// Scan applies the selector query and scans the result into the given value.
func (lpgb *LearnerParamsGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, lpgb.build.ctx, ent.OpQueryGroupBy)
	if err := lpgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*LearnerParamsQuery, *LearnerParamsGroupBy](ctx, lpgb.build, lpgb, lpgb.build.inters, v)
}

func (lpgb *LearnerParamsGroupBy) sqlScan(ctx context.Context, root *LearnerParamsQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(lpgb.fns))
	for _, fn := range lpgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*lpgb.flds)+len(lpgb.fns))
		for _, f := range *lpgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*lpgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := lpgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// LearnerParamsSelect is the builder for selecting fields of LearnerParams entities.
type LearnerParamsSelect struct {
	*LearnerParamsQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (lps *LearnerParamsSelect) Aggregate(fns ...AggregateFunc) *LearnerParamsSelect {
	lps.fns = append(lps.fns, fns...)
	return lps
}

// Scan applies the selector query and scans the result into the given value.
func (lps *LearnerParamsSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, lps.ctx, ent.OpQuerySelect)
	if err := lps.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*LearnerParamsQuery, *LearnerParamsSelect](ctx, lps.LearnerParamsQuery, lps, lps.inters, v)
}

func (lps *LearnerParamsSelect) sqlScan(ctx context.Context, root *LearnerParamsQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(lps.fns))
	for _, fn := range lps.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*lps.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := lps.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
