// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cardwise/cardwise/ent/predicate"
	"github.com/cardwise/cardwise/ent/sessionrecord"
)

// SessionRecordUpdate is the builder for updating SessionRecord entities.
type SessionRecordUpdate struct {
	config
	hooks    []Hook
	mutation *SessionRecordMutation
}

// Where appends a list predicates to the SessionRecordUpdate builder.
func (sru *SessionRecordUpdate) Where(ps ...predicate.SessionRecord) *SessionRecordUpdate {
	sru.mutation.Where(ps...)
	return sru
}

// SetUserID sets the "user_id" field.
func (sru *SessionRecordUpdate) SetUserID(s string) *SessionRecordUpdate {
	sru.mutation.SetUserID(s)
	return sru
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (sru *SessionRecordUpdate) SetNillableUserID(s *string) *SessionRecordUpdate {
	if s != nil {
		sru.SetUserID(*s)
	}
	return sru
}

// SetStatus sets the "status" field.
func (sru *SessionRecordUpdate) SetStatus(s string) *SessionRecordUpdate {
	sru.mutation.SetStatus(s)
	return sru
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (sru *SessionRecordUpdate) SetNillableStatus(s *string) *SessionRecordUpdate {
	if s != nil {
		sru.SetStatus(*s)
	}
	return sru
}

// SetEndedAt sets the "ended_at" field.
func (sru *SessionRecordUpdate) SetEndedAt(t time.Time) *SessionRecordUpdate {
	sru.mutation.SetEndedAt(t)
	return sru
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (sru *SessionRecordUpdate) SetNillableEndedAt(t *time.Time) *SessionRecordUpdate {
	if t != nil {
		sru.SetEndedAt(*t)
	}
	return sru
}

// ClearEndedAt clears the value of the "ended_at" field.
func (sru *SessionRecordUpdate) ClearEndedAt() *SessionRecordUpdate {
	sru.mutation.ClearEndedAt()
	return sru
}

// SetTotalItems sets the "total_items" field.
func (sru *SessionRecordUpdate) SetTotalItems(i int) *SessionRecordUpdate {
	sru.mutation.ResetTotalItems()
	sru.mutation.SetTotalItems(i)
	return sru
}

// SetNillableTotalItems sets the "total_items" field if the given value is not nil.
func (sru *SessionRecordUpdate) SetNillableTotalItems(i *int) *SessionRecordUpdate {
	if i != nil {
		sru.SetTotalItems(*i)
	}
	return sru
}

// AddTotalItems adds i to the "total_items" field.
func (sru *SessionRecordUpdate) AddTotalItems(i int) *SessionRecordUpdate {
	sru.mutation.AddTotalItems(i)
	return sru
}

// SetCompleted sets the "completed" field.
func (sru *SessionRecordUpdate) SetCompleted(i int) *SessionRecordUpdate {
	sru.mutation.ResetCompleted()
	sru.mutation.SetCompleted(i)
	return sru
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (sru *SessionRecordUpdate) SetNillableCompleted(i *int) *SessionRecordUpdate {
	if i != nil {
		sru.SetCompleted(*i)
	}
	return sru
}

// AddCompleted adds i to the "completed" field.
func (sru *SessionRecordUpdate) AddCompleted(i int) *SessionRecordUpdate {
	sru.mutation.AddCompleted(i)
	return sru
}

// SetAverageRating sets the "average_rating" field.
func (sru *SessionRecordUpdate) SetAverageRating(f float64) *SessionRecordUpdate {
	sru.mutation.ResetAverageRating()
	sru.mutation.SetAverageRating(f)
	return sru
}

// SetNillableAverageRating sets the "average_rating" field if the given value is not nil.
func (sru *SessionRecordUpdate) SetNillableAverageRating(f *float64) *SessionRecordUpdate {
	if f != nil {
		sru.SetAverageRating(*f)
	}
	return sru
}

// AddAverageRating adds f to the "average_rating" field.
func (sru *SessionRecordUpdate) AddAverageRating(f float64) *SessionRecordUpdate {
	sru.mutation.AddAverageRating(f)
	return sru
}

// SetPerfectCount sets the "perfect_count" field.
func (sru *SessionRecordUpdate) SetPerfectCount(i int) *SessionRecordUpdate {
	sru.mutation.ResetPerfectCount()
	sru.mutation.SetPerfectCount(i)
	return sru
}

// SetNillablePerfectCount sets the "perfect_count" field if the given value is not nil.
func (sru *SessionRecordUpdate) SetNillablePerfectCount(i *int) *SessionRecordUpdate {
	if i != nil {
		sru.SetPerfectCount(*i)
	}
	return sru
}

// AddPerfectCount adds i to the "perfect_count" field.
func (sru *SessionRecordUpdate) AddPerfectCount(i int) *SessionRecordUpdate {
	sru.mutation.AddPerfectCount(i)
	return sru
}

// SetCompletionRate sets the "completion_rate" field.
func (sru *SessionRecordUpdate) SetCompletionRate(f float64) *SessionRecordUpdate {
	sru.mutation.ResetCompletionRate()
	sru.mutation.SetCompletionRate(f)
	return sru
}

// SetNillableCompletionRate sets the "completion_rate" field if the given value is not nil.
func (sru *SessionRecordUpdate) SetNillableCompletionRate(f *float64) *SessionRecordUpdate {
	if f != nil {
		sru.SetCompletionRate(*f)
	}
	return sru
}

// AddCompletionRate adds f to the "completion_rate" field.
func (sru *SessionRecordUpdate) AddCompletionRate(f float64) *SessionRecordUpdate {
	sru.mutation.AddCompletionRate(f)
	return sru
}

// Mutation returns the SessionRecordMutation object of the builder.
func (sru *SessionRecordUpdate) Mutation() *SessionRecordMutation {
	return sru.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (sru *SessionRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, sru.sqlSave, sru.mutation, sru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (sru *SessionRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := sru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (sru *SessionRecordUpdate) Exec(ctx context.Context) error {
	_, err := sru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sru *SessionRecordUpdate) ExecX(ctx context.Context) {
	if err := sru.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sru *SessionRecordUpdate) check() error {
	if v, ok := sru.mutation.UserID(); ok {
		if err := sessionrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.user_id": %w`, err)}
		}
	}
	return nil
}

func (sru *SessionRecordUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := sru.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionrecord.Table, sessionrecord.Columns, sqlgraph.NewFieldSpec(sessionrecord.FieldID, field.TypeString))
	if ps := sru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := sru.mutation.UserID(); ok {
		_spec.SetField(sessionrecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := sru.mutation.Status(); ok {
		_spec.SetField(sessionrecord.FieldStatus, field.TypeString, value)
	}
	if value, ok := sru.mutation.EndedAt(); ok {
		_spec.SetField(sessionrecord.FieldEndedAt, field.TypeTime, value)
	}
	if sru.mutation.EndedAtCleared() {
		_spec.ClearField(sessionrecord.FieldEndedAt, field.TypeTime)
	}
	if value, ok := sru.mutation.TotalItems(); ok {
		_spec.SetField(sessionrecord.FieldTotalItems, field.TypeInt, value)
	}
	if value, ok := sru.mutation.AddedTotalItems(); ok {
		_spec.AddField(sessionrecord.FieldTotalItems, field.TypeInt, value)
	}
	if value, ok := sru.mutation.Completed(); ok {
		_spec.SetField(sessionrecord.FieldCompleted, field.TypeInt, value)
	}
	if value, ok := sru.mutation.AddedCompleted(); ok {
		_spec.AddField(sessionrecord.FieldCompleted, field.TypeInt, value)
	}
	if value, ok := sru.mutation.AverageRating(); ok {
		_spec.SetField(sessionrecord.FieldAverageRating, field.TypeFloat64, value)
	}
	if value, ok := sru.mutation.AddedAverageRating(); ok {
		_spec.AddField(sessionrecord.FieldAverageRating, field.TypeFloat64, value)
	}
	if value, ok := sru.mutation.PerfectCount(); ok {
		_spec.SetField(sessionrecord.FieldPerfectCount, field.TypeInt, value)
	}
	if value, ok := sru.mutation.AddedPerfectCount(); ok {
		_spec.AddField(sessionrecord.FieldPerfectCount, field.TypeInt, value)
	}
	if value, ok := sru.mutation.CompletionRate(); ok {
		_spec.SetField(sessionrecord.FieldCompletionRate, field.TypeFloat64, value)
	}
	if value, ok := sru.mutation.AddedCompletionRate(); ok {
		_spec.AddField(sessionrecord.FieldCompletionRate, field.TypeFloat64, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, sru.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	sru.mutation.done = true
	return n, nil
}

// SessionRecordUpdateOne is the builder for updating a single SessionRecord entity.
type SessionRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionRecordMutation
}

// SetUserID sets the "user_id" field.
func (sruo *SessionRecordUpdateOne) SetUserID(s string) *SessionRecordUpdateOne {
	sruo.mutation.SetUserID(s)
	return sruo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (sruo *SessionRecordUpdateOne) SetNillableUserID(s *string) *SessionRecordUpdateOne {
	if s != nil {
		sruo.SetUserID(*s)
	}
	return sruo
}

// SetStatus sets the "status" field.
func (sruo *SessionRecordUpdateOne) SetStatus(s string) *SessionRecordUpdateOne {
	sruo.mutation.SetStatus(s)
	return sruo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (sruo *SessionRecordUpdateOne) SetNillableStatus(s *string) *SessionRecordUpdateOne {
	if s != nil {
		sruo.SetStatus(*s)
	}
	return sruo
}

// SetEndedAt sets the "ended_at" field.
func (sruo *SessionRecordUpdateOne) SetEndedAt(t time.Time) *SessionRecordUpdateOne {
	sruo.mutation.SetEndedAt(t)
	return sruo
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (sruo *SessionRecordUpdateOne) SetNillableEndedAt(t *time.Time) *SessionRecordUpdateOne {
	if t != nil {
		sruo.SetEndedAt(*t)
	}
	return sruo
}

// ClearEndedAt clears the value of the "ended_at" field.
func (sruo *SessionRecordUpdateOne) ClearEndedAt() *SessionRecordUpdateOne {
	sruo.mutation.ClearEndedAt()
	return sruo
}

// SetTotalItems sets the "total_items" field.
func (sruo *SessionRecordUpdateOne) SetTotalItems(i int) *SessionRecordUpdateOne {
	sruo.mutation.ResetTotalItems()
	sruo.mutation.SetTotalItems(i)
	return sruo
}

// SetNillableTotalItems sets the "total_items" field if the given value is not nil.
func (sruo *SessionRecordUpdateOne) SetNillableTotalItems(i *int) *SessionRecordUpdateOne {
	if i != nil {
		sruo.SetTotalItems(*i)
	}
	return sruo
}

// AddTotalItems adds i to the "total_items" field.
func (sruo *SessionRecordUpdateOne) AddTotalItems(i int) *SessionRecordUpdateOne {
	sruo.mutation.AddTotalItems(i)
	return sruo
}

// SetCompleted sets the "completed" field.
func (sruo *SessionRecordUpdateOne) SetCompleted(i int) *SessionRecordUpdateOne {
	sruo.mutation.ResetCompleted()
	sruo.mutation.SetCompleted(i)
	return sruo
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (sruo *SessionRecordUpdateOne) SetNillableCompleted(i *int) *SessionRecordUpdateOne {
	if i != nil {
		sruo.SetCompleted(*i)
	}
	return sruo
}

// AddCompleted adds i to the "completed" field.
func (sruo *SessionRecordUpdateOne) AddCompleted(i int) *SessionRecordUpdateOne {
	sruo.mutation.AddCompleted(i)
	return sruo
}

// SetAverageRating sets the "average_rating" field.
func (sruo *SessionRecordUpdateOne) SetAverageRating(f float64) *SessionRecordUpdateOne {
	sruo.mutation.ResetAverageRating()
	sruo.mutation.SetAverageRating(f)
	return sruo
}

// SetNillableAverageRating sets the "average_rating" field if the given value is not nil.
func (sruo *SessionRecordUpdateOne) SetNillableAverageRating(f *float64) *SessionRecordUpdateOne {
	if f != nil {
		sruo.SetAverageRating(*f)
	}
	return sruo
}

// AddAverageRating adds f to the "average_rating" field.
func (sruo *SessionRecordUpdateOne) AddAverageRating(f float64) *SessionRecordUpdateOne {
	sruo.mutation.AddAverageRating(f)
	return sruo
}

// SetPerfectCount sets the "perfect_count" field.
func (sruo *SessionRecordUpdateOne) SetPerfectCount(i int) *SessionRecordUpdateOne {
	sruo.mutation.ResetPerfectCount()
	sruo.mutation.SetPerfectCount(i)
	return sruo
}

// SetNillablePerfectCount sets the "perfect_count" field if the given value is not nil.
func (sruo *SessionRecordUpdateOne) SetNillablePerfectCount(i *int) *SessionRecordUpdateOne {
	if i != nil {
		sruo.SetPerfectCount(*i)
	}
	return sruo
}

// AddPerfectCount adds i to the "perfect_count" field.
func (sruo *SessionRecordUpdateOne) AddPerfectCount(i int) *SessionRecordUpdateOne {
	sruo.mutation.AddPerfectCount(i)
	return sruo
}

// SetCompletionRate sets the "completion_rate" field.
func (sruo *SessionRecordUpdateOne) SetCompletionRate(f float64) *SessionRecordUpdateOne {
	sruo.mutation.ResetCompletionRate()
	sruo.mutation.SetCompletionRate(f)
	return sruo
}

// SetNillableCompletionRate sets the "completion_rate" field if the given value is not nil.
func (sruo *SessionRecordUpdateOne) SetNillableCompletionRate(f *float64) *SessionRecordUpdateOne {
	if f != nil {
		sruo.SetCompletionRate(*f)
	}
	return sruo
}

// AddCompletionRate adds f to the "completion_rate" field.
func (sruo *SessionRecordUpdateOne) AddCompletionRate(f float64) *SessionRecordUpdateOne {
	sruo.mutation.AddCompletionRate(f)
	return sruo
}

// Mutation returns the SessionRecordMutation object of the builder.
func (sruo *SessionRecordUpdateOne) Mutation() *SessionRecordMutation {
	return sruo.mutation
}

// Where appends a list predicates to the SessionRecordUpdate builder.
func (sruo *SessionRecordUpdateOne) Where(ps ...predicate.SessionRecord) *SessionRecordUpdateOne {
	sruo.mutation.Where(ps...)
	return sruo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (sruo *SessionRecordUpdateOne) Select(field string, fields ...string) *SessionRecordUpdateOne {
	sruo.fields = append([]string{field}, fields...)
	return sruo
}

// Save executes the query and returns the updated SessionRecord entity.
func (sruo *SessionRecordUpdateOne) Save(ctx context.Context) (*SessionRecord, error) {
	return withHooks(ctx, sruo.sqlSave, sruo.mutation, sruo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (sruo *SessionRecordUpdateOne) SaveX(ctx context.Context) *SessionRecord {
	node, err := sruo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (sruo *SessionRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := sruo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sruo *SessionRecordUpdateOne) ExecX(ctx context.Context) {
	if err := sruo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sruo *SessionRecordUpdateOne) check() error {
	if v, ok := sruo.mutation.UserID(); ok {
		if err := sessionrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.user_id": %w`, err)}
		}
	}
	return nil
}

func (sruo *SessionRecordUpdateOne) sqlSave(ctx context.Context) (_node *SessionRecord, err error) {
	if err := sruo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionrecord.Table, sessionrecord.Columns, sqlgraph.NewFieldSpec(sessionrecord.FieldID, field.TypeString))
	id, ok := sruo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := sruo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionrecord.FieldID)
		for _, f := range fields {
			if !sessionrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := sruo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := sruo.mutation.UserID(); ok {
		_spec.SetField(sessionrecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := sruo.mutation.Status(); ok {
		_spec.SetField(sessionrecord.FieldStatus, field.TypeString, value)
	}
	if value, ok := sruo.mutation.EndedAt(); ok {
		_spec.SetField(sessionrecord.FieldEndedAt, field.TypeTime, value)
	}
	if sruo.mutation.EndedAtCleared() {
		_spec.ClearField(sessionrecord.FieldEndedAt, field.TypeTime)
	}
	if value, ok := sruo.mutation.TotalItems(); ok {
		_spec.SetField(sessionrecord.FieldTotalItems, field.TypeInt, value)
	}
	if value, ok := sruo.mutation.AddedTotalItems(); ok {
		_spec.AddField(sessionrecord.FieldTotalItems, field.TypeInt, value)
	}
	if value, ok := sruo.mutation.Completed(); ok {
		_spec.SetField(sessionrecord.FieldCompleted, field.TypeInt, value)
	}
	if value, ok := sruo.mutation.AddedCompleted(); ok {
		_spec.AddField(sessionrecord.FieldCompleted, field.TypeInt, value)
	}
	if value, ok := sruo.mutation.AverageRating(); ok {
		_spec.SetField(sessionrecord.FieldAverageRating, field.TypeFloat64, value)
	}
	if value, ok := sruo.mutation.AddedAverageRating(); ok {
		_spec.AddField(sessionrecord.FieldAverageRating, field.TypeFloat64, value)
	}
	if value, ok := sruo.mutation.PerfectCount(); ok {
		_spec.SetField(sessionrecord.FieldPerfectCount, field.TypeInt, value)
	}
	if value, ok := sruo.mutation.AddedPerfectCount(); ok {
		_spec.AddField(sessionrecord.FieldPerfectCount, field.TypeInt, value)
	}
	if value, ok := sruo.mutation.CompletionRate(); ok {
		_spec.SetField(sessionrecord.FieldCompletionRate, field.TypeFloat64, value)
	}
	if value, ok := sruo.mutation.AddedCompletionRate(); ok {
		_spec.AddField(sessionrecord.FieldCompletionRate, field.TypeFloat64, value)
	}
	_node = &SessionRecord{config: sruo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, sruo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	sruo.mutation.done = true
	return _node, nil
}
