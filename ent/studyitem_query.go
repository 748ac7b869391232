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
	"github.com/cardwise/cardwise/ent/predicate"
	"github.com/cardwise/cardwise/ent/studyitem"
)

// StudyItemQuery is the builder for querying StudyItem entities.
type StudyItemQuery struct {
	config
	ctx        *QueryContext
	order      []studyitem.OrderOption
	inters     []Interceptor
	predicates []predicate.StudyItem
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the StudyItemQuery builder.
func (siq *StudyItemQuery) Where(ps ...predicate.StudyItem) *StudyItemQuery {
	siq.predicates = append(siq.predicates, ps...)
	return siq
}

// Limit the number of records to be returned by this query.
func (siq *StudyItemQuery) Limit(limit int) *StudyItemQuery {
	siq.ctx.Limit = &limit
	return siq
}

// Offset to start from.
func (siq *StudyItemQuery) Offset(offset int) *StudyItemQuery {
	siq.ctx.Offset = &offset
	return siq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (siq *StudyItemQuery) Unique(unique bool) *StudyItemQuery {
	siq.ctx.Unique = &unique
	return siq
}

// Order specifies how the records should be ordered.
func (siq *StudyItemQuery) Order(o ...studyitem.OrderOption) *StudyItemQuery {
	siq.order = append(siq.order, o...)
	return siq
}

// First returns the first StudyItem entity from the query.
// Returns a *NotFoundError when no StudyItem was found.
func (siq *StudyItemQuery) First(ctx context.Context) (*StudyItem, error) {
	nodes, err := siq.Limit(1).All(setContextOp(ctx, siq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{studyitem.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (siq *StudyItemQuery) FirstX(ctx context.Context) *StudyItem {
	node, err := siq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first StudyItem ID from the query.
// Returns a *NotFoundError when no StudyItem ID was found.
func (siq *StudyItemQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = siq.Limit(1).IDs(setContextOp(ctx, siq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{studyitem.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (siq *StudyItemQuery) FirstIDX(ctx context.Context) string {
	id, err := siq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single StudyItem entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one StudyItem entity is found.
// Returns a *NotFoundError when no StudyItem entities are found.
func (siq *StudyItemQuery) Only(ctx context.Context) (*StudyItem, error) {
	nodes, err := siq.Limit(2).All(setContextOp(ctx, siq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{studyitem.Label}
	default:
		return nil, &NotSingularError{studyitem.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (siq *StudyItemQuery) OnlyX(ctx context.Context) *StudyItem {
	node, err := siq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only StudyItem ID in the query.
// Returns a *NotSingularError when more than one StudyItem ID is found.
// Returns a *NotFoundError when no entities are found.
func (siq *StudyItemQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = siq.Limit(2).IDs(setContextOp(ctx, siq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{studyitem.Label}
	default:
		err = &NotSingularError{studyitem.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (siq *StudyItemQuery) OnlyIDX(ctx context.Context) string {
	id, err := siq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of StudyItems.
func (siq *StudyItemQuery) All(ctx context.Context) ([]*StudyItem, error) {
	ctx = setContextOp(ctx, siq.ctx, ent.OpQueryAll)
	if err := siq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*StudyItem, *StudyItemQuery]()
	return withInterceptors[[]*StudyItem](ctx, siq, qr, siq.inters)
}

// AllX is like All, but panics if an error occurs.
func (siq *StudyItemQuery) AllX(ctx context.Context) []*StudyItem {
	nodes, err := siq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of StudyItem IDs.
func (siq *StudyItemQuery) IDs(ctx context.Context) (ids []string, err error) {
	if siq.ctx.Unique == nil && siq.path != nil {
		siq.Unique(true)
	}
	ctx = setContextOp(ctx, siq.ctx, ent.OpQueryIDs)
	if err = siq.Select(studyitem.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (siq *StudyItemQuery) IDsX(ctx context.Context) []string {
	ids, err := siq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (siq *StudyItemQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, siq.ctx, ent.OpQueryCount)
	if err := siq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, siq, querierCount[*StudyItemQuery](), siq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (siq *StudyItemQuery) CountX(ctx context.Context) int {
	count, err := siq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (siq *StudyItemQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, siq.ctx, ent.OpQueryExist)
	switch _, err := siq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (siq *StudyItemQuery) ExistX(ctx context.Context) bool {
	exist, err := siq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the StudyItemQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (siq *StudyItemQuery) Clone() *StudyItemQuery {
	if siq == nil {
		return nil
	}
	return &StudyItemQuery{
		config:     siq.config,
		ctx:        siq.ctx.Clone(),
		order:      append([]studyitem.OrderOption{}, siq.order...),
		inters:     append([]Interceptor{}, siq.inters...),
		predicates: append([]predicate.StudyItem{}, siq.predicates...),
		// clone intermediate query.
		sql:  siq.sql.Clone(),
		path: siq.path,
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
//	client.StudyItem.Query().
//		GroupBy(studyitem.FieldUserID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (siq *StudyItemQuery) GroupBy(field string, fields ...string) *StudyItemGroupBy {
	siq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &StudyItemGroupBy{build: siq}
	grbuild.flds = &siq.ctx.Fields
	grbuild.label = studyitem.Label
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
//	client.StudyItem.Query().
//		Select(studyitem.FieldUserID).
//		Scan(ctx, &v)
func (siq *StudyItemQuery) Select(fields ...string) *StudyItemSelect {
	siq.ctx.Fields = append(siq.ctx.Fields, fields...)
	sbuild := &StudyItemSelect{StudyItemQuery: siq}
	sbuild.label = studyitem.Label
	sbuild.flds, sbuild.scan = &siq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a StudyItemSelect configured with the given aggregations.
func (siq *StudyItemQuery) Aggregate(fns ...AggregateFunc) *StudyItemSelect {
	return siq.Select().Aggregate(fns...)
}

func (siq *StudyItemQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range siq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, siq); err != nil {
				return err
			}
		}
	}
	for _, f := range siq.ctx.Fields {
		if !studyitem.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if siq.path != nil {
		prev, err := siq.path(ctx)
		if err != nil {
			return err
		}
		siq.sql = prev
	}
	return nil
}

func (siq *StudyItemQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*StudyItem, error) {
	var (
		nodes = []*StudyItem{}
		_spec = siq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*StudyItem).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &StudyItem{config: siq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, siq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (siq *StudyItemQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := siq.querySpec()
	_spec.Node.Columns = siq.ctx.Fields
	if len(siq.ctx.Fields) > 0 {
		_spec.Unique = siq.ctx.Unique != nil && *siq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, siq.driver, _spec)
}

func (siq *StudyItemQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(studyitem.Table, studyitem.Columns, sqlgraph.NewFieldSpec(studyitem.FieldID, field.TypeString))
	_spec.From = siq.sql
	if unique := siq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if siq.path != nil {
		_spec.Unique = true
	}
	if fields := siq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, studyitem.FieldID)
		for i := range fields {
			if fields[i] != studyitem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := siq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := siq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := siq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := siq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (siq *StudyItemQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(siq.driver.Dialect())
	t1 := builder.Table(studyitem.Table)
	columns := siq.ctx.Fields
	if len(columns) == 0 {
		columns = studyitem.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if siq.sql != nil {
		selector = siq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if siq.ctx.Unique != nil && *siq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range siq.predicates {
		p(selector)
	}
	for _, p := range siq.order {
		p(selector)
	}
	if offset := siq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := siq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// StudyItemGroupBy is the group-by builder for StudyItem entities.
type StudyItemGroupBy struct {
	selector
	build *StudyItemQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (sigb *StudyItemGroupBy) Aggregate(fns ...AggregateFunc) *StudyItemGroupBy {
	sigb.fns = append(sigb.fns, fns...)
	return sigb
}

// Scan applies the selector query and scans the result into the given value.
func (sigb *StudyItemGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, sigb.build.ctx, ent.OpQueryGroupBy)
	if err := sigb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*StudyItemQuery, *StudyItemGroupBy](ctx, sigb.build, sigb, sigb.build.inters, v)
}

func (sigb *StudyItemGroupBy) sqlScan(ctx context.Context, root *StudyItemQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(sigb.fns))
	for _, fn := range sigb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*sigb.flds)+len(sigb.fns))
		for _, f := range *sigb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*sigb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := sigb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// StudyItemSelect is the builder for selecting fields of StudyItem entities.
type StudyItemSelect struct {
	*StudyItemQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (sis *StudyItemSelect) Aggregate(fns ...AggregateFunc) *StudyItemSelect {
	sis.fns = append(sis.fns, fns...)
	return sis
}

// Scan applies the selector query and scans the result into the given value.
func (sis *StudyItemSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, sis.ctx, ent.OpQuerySelect)
	if err := sis.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*StudyItemQuery, *StudyItemSelect](ctx, sis.StudyItemQuery, sis, sis.inters, v)
}

func (sis *StudyItemSelect) sqlScan(ctx context.Context, root *StudyItemQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(sis.fns))
	for _, fn := range sis.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*sis.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := sis.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
