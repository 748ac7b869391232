// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/cardwise/cardwise/ent/predicate"
	"github.com/cardwise/cardwise/ent/reviewevent"
)

// ReviewEventUpdate is the builder for updating ReviewEvent entities.
type ReviewEventUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewEventMutation
}

// Where appends a list predicates to the ReviewEventUpdate builder.
func (reu *ReviewEventUpdate) Where(ps ...predicate.ReviewEvent) *ReviewEventUpdate {
	reu.mutation.Where(ps...)
	return reu
}

// SetItemID sets the "item_id" field.
func (reu *ReviewEventUpdate) SetItemID(s string) *ReviewEventUpdate {
	reu.mutation.SetItemID(s)
	return reu
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (reu *ReviewEventUpdate) SetNillableItemID(s *string) *ReviewEventUpdate {
	if s != nil {
		reu.SetItemID(*s)
	}
	return reu
}

// SetUserID sets the "user_id" field.
func (reu *ReviewEventUpdate) SetUserID(s string) *ReviewEventUpdate {
	reu.mutation.SetUserID(s)
	return reu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (reu *ReviewEventUpdate) SetNillableUserID(s *string) *ReviewEventUpdate {
	if s != nil {
		reu.SetUserID(*s)
	}
	return reu
}

// SetRating sets the "rating" field.
func (reu *ReviewEventUpdate) SetRating(i int) *ReviewEventUpdate {
	reu.mutation.ResetRating()
	reu.mutation.SetRating(i)
	return reu
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (reu *ReviewEventUpdate) SetNillableRating(i *int) *ReviewEventUpdate {
	if i != nil {
		reu.SetRating(*i)
	}
	return reu
}

// AddRating adds i to the "rating" field.
func (reu *ReviewEventUpdate) AddRating(i int) *ReviewEventUpdate {
	reu.mutation.AddRating(i)
	return reu
}

// SetIntervalDays sets the "interval_days" field.
func (reu *ReviewEventUpdate) SetIntervalDays(i int) *ReviewEventUpdate {
	reu.mutation.ResetIntervalDays()
	reu.mutation.SetIntervalDays(i)
	return reu
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (reu *ReviewEventUpdate) SetNillableIntervalDays(i *int) *ReviewEventUpdate {
	if i != nil {
		reu.SetIntervalDays(*i)
	}
	return reu
}

// AddIntervalDays adds i to the "interval_days" field.
func (reu *ReviewEventUpdate) AddIntervalDays(i int) *ReviewEventUpdate {
	reu.mutation.AddIntervalDays(i)
	return reu
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (reu *ReviewEventUpdate) SetTimeSpentSecs(f float64) *ReviewEventUpdate {
	reu.mutation.ResetTimeSpentSecs()
	reu.mutation.SetTimeSpentSecs(f)
	return reu
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (reu *ReviewEventUpdate) SetNillableTimeSpentSecs(f *float64) *ReviewEventUpdate {
	if f != nil {
		reu.SetTimeSpentSecs(*f)
	}
	return reu
}

// AddTimeSpentSecs adds f to the "time_spent_secs" field.
func (reu *ReviewEventUpdate) AddTimeSpentSecs(f float64) *ReviewEventUpdate {
	reu.mutation.AddTimeSpentSecs(f)
	return reu
}

// SetEaseAfter sets the "ease_after" field.
func (reu *ReviewEventUpdate) SetEaseAfter(f float64) *ReviewEventUpdate {
	reu.mutation.ResetEaseAfter()
	reu.mutation.SetEaseAfter(f)
	return reu
}

// SetNillableEaseAfter sets the "ease_after" field if the given value is not nil.
func (reu *ReviewEventUpdate) SetNillableEaseAfter(f *float64) *ReviewEventUpdate {
	if f != nil {
		reu.SetEaseAfter(*f)
	}
	return reu
}

// AddEaseAfter adds f to the "ease_after" field.
func (reu *ReviewEventUpdate) AddEaseAfter(f float64) *ReviewEventUpdate {
	reu.mutation.AddEaseAfter(f)
	return reu
}

// SetTags sets the "tags" field.
func (reu *ReviewEventUpdate) SetTags(s []string) *ReviewEventUpdate {
	reu.mutation.SetTags(s)
	return reu
}

// AppendTags appends s to the "tags" field.
func (reu *ReviewEventUpdate) AppendTags(s []string) *ReviewEventUpdate {
	reu.mutation.AppendTags(s)
	return reu
}

// ClearTags clears the value of the "tags" field.
func (reu *ReviewEventUpdate) ClearTags() *ReviewEventUpdate {
	reu.mutation.ClearTags()
	return reu
}

// SetFactors sets the "factors" field.
func (reu *ReviewEventUpdate) SetFactors(m map[string]float64) *ReviewEventUpdate {
	reu.mutation.SetFactors(m)
	return reu
}

// Mutation returns the ReviewEventMutation object of the builder.
func (reu *ReviewEventUpdate) Mutation() *ReviewEventMutation {
	return reu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (reu *ReviewEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, reu.sqlSave, reu.mutation, reu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (reu *ReviewEventUpdate) SaveX(ctx context.Context) int {
	affected, err := reu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (reu *ReviewEventUpdate) Exec(ctx context.Context) error {
	_, err := reu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (reu *ReviewEventUpdate) ExecX(ctx context.Context) {
	if err := reu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (reu *ReviewEventUpdate) check() error {
	if v, ok := reu.mutation.ItemID(); ok {
		if err := reviewevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.item_id": %w`, err)}
		}
	}
	if v, ok := reu.mutation.UserID(); ok {
		if err := reviewevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.user_id": %w`, err)}
		}
	}
	return nil
}

func (reu *ReviewEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := reu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewevent.Table, reviewevent.Columns, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	if ps := reu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := reu.mutation.ItemID(); ok {
		_spec.SetField(reviewevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := reu.mutation.UserID(); ok {
		_spec.SetField(reviewevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := reu.mutation.Rating(); ok {
		_spec.SetField(reviewevent.FieldRating, field.TypeInt, value)
	}
	if value, ok := reu.mutation.AddedRating(); ok {
		_spec.AddField(reviewevent.FieldRating, field.TypeInt, value)
	}
	if value, ok := reu.mutation.IntervalDays(); ok {
		_spec.SetField(reviewevent.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := reu.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewevent.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := reu.mutation.TimeSpentSecs(); ok {
		_spec.SetField(reviewevent.FieldTimeSpentSecs, field.TypeFloat64, value)
	}
	if value, ok := reu.mutation.AddedTimeSpentSecs(); ok {
		_spec.AddField(reviewevent.FieldTimeSpentSecs, field.TypeFloat64, value)
	}
	if value, ok := reu.mutation.EaseAfter(); ok {
		_spec.SetField(reviewevent.FieldEaseAfter, field.TypeFloat64, value)
	}
	if value, ok := reu.mutation.AddedEaseAfter(); ok {
		_spec.AddField(reviewevent.FieldEaseAfter, field.TypeFloat64, value)
	}
	if value, ok := reu.mutation.Tags(); ok {
		_spec.SetField(reviewevent.FieldTags, field.TypeJSON, value)
	}
	if value, ok := reu.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reviewevent.FieldTags, value)
		})
	}
	if reu.mutation.TagsCleared() {
		_spec.ClearField(reviewevent.FieldTags, field.TypeJSON)
	}
	if value, ok := reu.mutation.Factors(); ok {
		_spec.SetField(reviewevent.FieldFactors, field.TypeJSON, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, reu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	reu.mutation.done = true
	return n, nil
}

// ReviewEventUpdateOne is the builder for updating a single ReviewEvent entity.
type ReviewEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewEventMutation
}

// SetItemID sets the "item_id" field.
func (reuo *ReviewEventUpdateOne) SetItemID(s string) *ReviewEventUpdateOne {
	reuo.mutation.SetItemID(s)
	return reuo
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (reuo *ReviewEventUpdateOne) SetNillableItemID(s *string) *ReviewEventUpdateOne {
	if s != nil {
		reuo.SetItemID(*s)
	}
	return reuo
}

// SetUserID sets the "user_id" field.
func (reuo *ReviewEventUpdateOne) SetUserID(s string) *ReviewEventUpdateOne {
	reuo.mutation.SetUserID(s)
	return reuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (reuo *ReviewEventUpdateOne) SetNillableUserID(s *string) *ReviewEventUpdateOne {
	if s != nil {
		reuo.SetUserID(*s)
	}
	return reuo
}

// SetRating sets the "rating" field.
func (reuo *ReviewEventUpdateOne) SetRating(i int) *ReviewEventUpdateOne {
	reuo.mutation.ResetRating()
	reuo.mutation.SetRating(i)
	return reuo
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (reuo *ReviewEventUpdateOne) SetNillableRating(i *int) *ReviewEventUpdateOne {
	if i != nil {
		reuo.SetRating(*i)
	}
	return reuo
}

// AddRating adds i to the "rating" field.
func (reuo *ReviewEventUpdateOne) AddRating(i int) *ReviewEventUpdateOne {
	reuo.mutation.AddRating(i)
	return reuo
}

// SetIntervalDays sets the "interval_days" field.
func (reuo *ReviewEventUpdateOne) SetIntervalDays(i int) *ReviewEventUpdateOne {
	reuo.mutation.ResetIntervalDays()
	reuo.mutation.SetIntervalDays(i)
	return reuo
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (reuo *ReviewEventUpdateOne) SetNillableIntervalDays(i *int) *ReviewEventUpdateOne {
	if i != nil {
		reuo.SetIntervalDays(*i)
	}
	return reuo
}

// AddIntervalDays adds i to the "interval_days" field.
func (reuo *ReviewEventUpdateOne) AddIntervalDays(i int) *ReviewEventUpdateOne {
	reuo.mutation.AddIntervalDays(i)
	return reuo
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (reuo *ReviewEventUpdateOne) SetTimeSpentSecs(f float64) *ReviewEventUpdateOne {
	reuo.mutation.ResetTimeSpentSecs()
	reuo.mutation.SetTimeSpentSecs(f)
	return reuo
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (reuo *ReviewEventUpdateOne) SetNillableTimeSpentSecs(f *float64) *ReviewEventUpdateOne {
	if f != nil {
		reuo.SetTimeSpentSecs(*f)
	}
	return reuo
}

// AddTimeSpentSecs adds f to the "time_spent_secs" field.
func (reuo *ReviewEventUpdateOne) AddTimeSpentSecs(f float64) *ReviewEventUpdateOne {
	reuo.mutation.AddTimeSpentSecs(f)
	return reuo
}

// SetEaseAfter sets the "ease_after" field.
func (reuo *ReviewEventUpdateOne) SetEaseAfter(f float64) *ReviewEventUpdateOne {
	reuo.mutation.ResetEaseAfter()
	reuo.mutation.SetEaseAfter(f)
	return reuo
}

// SetNillableEaseAfter sets the "ease_after" field if the given value is not nil.
func (reuo *ReviewEventUpdateOne) SetNillableEaseAfter(f *float64) *ReviewEventUpdateOne {
	if f != nil {
		reuo.SetEaseAfter(*f)
	}
	return reuo
}

// AddEaseAfter adds f to the "ease_after" field.
func (reuo *ReviewEventUpdateOne) AddEaseAfter(f float64) *ReviewEventUpdateOne {
	reuo.mutation.AddEaseAfter(f)
	return reuo
}

// SetTags sets the "tags" field.
func (reuo *ReviewEventUpdateOne) SetTags(s []string) *ReviewEventUpdateOne {
	reuo.mutation.SetTags(s)
	return reuo
}

// AppendTags appends s to the "tags" field.
func (reuo *ReviewEventUpdateOne) AppendTags(s []string) *ReviewEventUpdateOne {
	reuo.mutation.AppendTags(s)
	return reuo
}

// ClearTags clears the value of the "tags" field.
func (reuo *ReviewEventUpdateOne) ClearTags() *ReviewEventUpdateOne {
	reuo.mutation.ClearTags()
	return reuo
}

// SetFactors sets the "factors" field.
func (reuo *ReviewEventUpdateOne) SetFactors(m map[string]float64) *ReviewEventUpdateOne {
	reuo.mutation.SetFactors(m)
	return reuo
}

// Mutation returns the ReviewEventMutation object of the builder.
func (reuo *ReviewEventUpdateOne) Mutation() *ReviewEventMutation {
	return reuo.mutation
}

// Where appends a list predicates to the ReviewEventUpdate builder.
func (reuo *ReviewEventUpdateOne) Where(ps ...predicate.ReviewEvent) *ReviewEventUpdateOne {
	reuo.mutation.Where(ps...)
	return reuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (reuo *ReviewEventUpdateOne) Select(field string, fields ...string) *ReviewEventUpdateOne {
	reuo.fields = append([]string{field}, fields...)
	return reuo
}

// Save executes the query and returns the updated ReviewEvent entity.
func (reuo *ReviewEventUpdateOne) Save(ctx context.Context) (*ReviewEvent, error) {
	return withHooks(ctx, reuo.sqlSave, reuo.mutation, reuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (reuo *ReviewEventUpdateOne) SaveX(ctx context.Context) *ReviewEvent {
	node, err := reuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (reuo *ReviewEventUpdateOne) Exec(ctx context.Context) error {
	_, err := reuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (reuo *ReviewEventUpdateOne) ExecX(ctx context.Context) {
	if err := reuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (reuo *ReviewEventUpdateOne) check() error {
	if v, ok := reuo.mutation.ItemID(); ok {
		if err := reviewevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.item_id": %w`, err)}
		}
	}
	if v, ok := reuo.mutation.UserID(); ok {
		if err := reviewevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.user_id": %w`, err)}
		}
	}
	return nil
}

func (reuo *ReviewEventUpdateOne) sqlSave(ctx context.Context) (_node *ReviewEvent, err error) {
	if err := reuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewevent.Table, reviewevent.Columns, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	id, ok := reuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := reuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewevent.FieldID)
		for _, f := range fields {
			if !reviewevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := reuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := reuo.mutation.ItemID(); ok {
		_spec.SetField(reviewevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := reuo.mutation.UserID(); ok {
		_spec.SetField(reviewevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := reuo.mutation.Rating(); ok {
		_spec.SetField(reviewevent.FieldRating, field.TypeInt, value)
	}
	if value, ok := reuo.mutation.AddedRating(); ok {
		_spec.AddField(reviewevent.FieldRating, field.TypeInt, value)
	}
	if value, ok := reuo.mutation.IntervalDays(); ok {
		_spec.SetField(reviewevent.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := reuo.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewevent.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := reuo.mutation.TimeSpentSecs(); ok {
		_spec.SetField(reviewevent.FieldTimeSpentSecs, field.TypeFloat64, value)
	}
	if value, ok := reuo.mutation.AddedTimeSpentSecs(); ok {
		_spec.AddField(reviewevent.FieldTimeSpentSecs, field.TypeFloat64, value)
	}
	if value, ok := reuo.mutation.EaseAfter(); ok {
		_spec.SetField(reviewevent.FieldEaseAfter, field.TypeFloat64, value)
	}
	if value, ok := reuo.mutation.AddedEaseAfter(); ok {
		_spec.AddField(reviewevent.FieldEaseAfter, field.TypeFloat64, value)
	}
	if value, ok := reuo.mutation.Tags(); ok {
		_spec.SetField(reviewevent.FieldTags, field.TypeJSON, value)
	}
	if value, ok := reuo.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reviewevent.FieldTags, value)
		})
	}
	if reuo.mutation.TagsCleared() {
		_spec.ClearField(reviewevent.FieldTags, field.TypeJSON)
	}
	if value, ok := reuo.mutation.Factors(); ok {
		_spec.SetField(reviewevent.FieldFactors, field.TypeJSON, value)
	}
	_node = &ReviewEvent{config: reuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, reuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	reuo.mutation.done = true
	return _node, nil
}
