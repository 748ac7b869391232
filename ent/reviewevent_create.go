// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cardwise/cardwise/ent/reviewevent"
)

// ReviewEventCreate is the builder for creating a ReviewEvent entity.
type ReviewEventCreate struct {
	config
	mutation *ReviewEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (rec *ReviewEventCreate) SetSequence(i int64) *ReviewEventCreate {
	rec.mutation.SetSequence(i)
	return rec
}

// SetTimestamp sets the "timestamp" field.
func (rec *ReviewEventCreate) SetTimestamp(t time.Time) *ReviewEventCreate {
	rec.mutation.SetTimestamp(t)
	return rec
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (rec *ReviewEventCreate) SetNillableTimestamp(t *time.Time) *ReviewEventCreate {
	if t != nil {
		rec.SetTimestamp(*t)
	}
	return rec
}

// SetItemID sets the "item_id" field.
func (rec *ReviewEventCreate) SetItemID(s string) *ReviewEventCreate {
	rec.mutation.SetItemID(s)
	return rec
}

// SetUserID sets the "user_id" field.
func (rec *ReviewEventCreate) SetUserID(s string) *ReviewEventCreate {
	rec.mutation.SetUserID(s)
	return rec
}

// SetRating sets the "rating" field.
func (rec *ReviewEventCreate) SetRating(i int) *ReviewEventCreate {
	rec.mutation.SetRating(i)
	return rec
}

// SetIntervalDays sets the "interval_days" field.
func (rec *ReviewEventCreate) SetIntervalDays(i int) *ReviewEventCreate {
	rec.mutation.SetIntervalDays(i)
	return rec
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (rec *ReviewEventCreate) SetTimeSpentSecs(f float64) *ReviewEventCreate {
	rec.mutation.SetTimeSpentSecs(f)
	return rec
}

// SetEaseAfter sets the "ease_after" field.
func (rec *ReviewEventCreate) SetEaseAfter(f float64) *ReviewEventCreate {
	rec.mutation.SetEaseAfter(f)
	return rec
}

// SetTags sets the "tags" field.
func (rec *ReviewEventCreate) SetTags(s []string) *ReviewEventCreate {
	rec.mutation.SetTags(s)
	return rec
}

// SetFactors sets the "factors" field.
func (rec *ReviewEventCreate) SetFactors(m map[string]float64) *ReviewEventCreate {
	rec.mutation.SetFactors(m)
	return rec
}

// Mutation returns the ReviewEventMutation object of the builder.
func (rec *ReviewEventCreate) Mutation() *ReviewEventMutation {
	return rec.mutation
}

// Save creates the ReviewEvent in the database.
func (rec *ReviewEventCreate) Save(ctx context.Context) (*ReviewEvent, error) {
	rec.defaults()
	return withHooks(ctx, rec.sqlSave, rec.mutation, rec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (rec *ReviewEventCreate) SaveX(ctx context.Context) *ReviewEvent {
	v, err := rec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (rec *ReviewEventCreate) Exec(ctx context.Context) error {
	_, err := rec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rec *ReviewEventCreate) ExecX(ctx context.Context) {
	if err := rec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (rec *ReviewEventCreate) defaults() {
	if _, ok := rec.mutation.Timestamp(); !ok {
		v := reviewevent.DefaultTimestamp()
		rec.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (rec *ReviewEventCreate) check() error {
	if _, ok := rec.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ReviewEvent.sequence"`)}
	}
	if _, ok := rec.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ReviewEvent.timestamp"`)}
	}
	if _, ok := rec.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "ReviewEvent.item_id"`)}
	}
	if v, ok := rec.mutation.ItemID(); ok {
		if err := reviewevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.item_id": %w`, err)}
		}
	}
	if _, ok := rec.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ReviewEvent.user_id"`)}
	}
	if v, ok := rec.mutation.UserID(); ok {
		if err := reviewevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.user_id": %w`, err)}
		}
	}
	if _, ok := rec.mutation.Rating(); !ok {
		return &ValidationError{Name: "rating", err: errors.New(`ent: missing required field "ReviewEvent.rating"`)}
	}
	if _, ok := rec.mutation.IntervalDays(); !ok {
		return &ValidationError{Name: "interval_days", err: errors.New(`ent: missing required field "ReviewEvent.interval_days"`)}
	}
	if _, ok := rec.mutation.TimeSpentSecs(); !ok {
		return &ValidationError{Name: "time_spent_secs", err: errors.New(`ent: missing required field "ReviewEvent.time_spent_secs"`)}
	}
	if _, ok := rec.mutation.EaseAfter(); !ok {
		return &ValidationError{Name: "ease_after", err: errors.New(`ent: missing required field "ReviewEvent.ease_after"`)}
	}
	if _, ok := rec.mutation.Factors(); !ok {
		return &ValidationError{Name: "factors", err: errors.New(`ent: missing required field "ReviewEvent.factors"`)}
	}
	return nil
}

func (rec *ReviewEventCreate) sqlSave(ctx context.Context) (*ReviewEvent, error) {
	if err := rec.check(); err != nil {
		return nil, err
	}
	_node, _spec := rec.createSpec()
	if err := sqlgraph.CreateNode(ctx, rec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	rec.mutation.id = &_node.ID
	rec.mutation.done = true
	return _node, nil
}

func (rec *ReviewEventCreate) createSpec() (*ReviewEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ReviewEvent{config: rec.config}
		_spec = sqlgraph.NewCreateSpec(reviewevent.Table, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	)
	if value, ok := rec.mutation.Sequence(); ok {
		_spec.SetField(reviewevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := rec.mutation.Timestamp(); ok {
		_spec.SetField(reviewevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := rec.mutation.ItemID(); ok {
		_spec.SetField(reviewevent.FieldItemID, field.TypeString, value)
		_node.ItemID = value
	}
	if value, ok := rec.mutation.UserID(); ok {
		_spec.SetField(reviewevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := rec.mutation.Rating(); ok {
		_spec.SetField(reviewevent.FieldRating, field.TypeInt, value)
		_node.Rating = value
	}
	if value, ok := rec.mutation.IntervalDays(); ok {
		_spec.SetField(reviewevent.FieldIntervalDays, field.TypeInt, value)
		_node.IntervalDays = value
	}
	if value, ok := rec.mutation.TimeSpentSecs(); ok {
		_spec.SetField(reviewevent.FieldTimeSpentSecs, field.TypeFloat64, value)
		_node.TimeSpentSecs = value
	}
	if value, ok := rec.mutation.EaseAfter(); ok {
		_spec.SetField(reviewevent.FieldEaseAfter, field.TypeFloat64, value)
		_node.EaseAfter = value
	}
	if value, ok := rec.mutation.Tags(); ok {
		_spec.SetField(reviewevent.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := rec.mutation.Factors(); ok {
		_spec.SetField(reviewevent.FieldFactors, field.TypeJSON, value)
		_node.Factors = value
	}
	return _node, _spec
}

// ReviewEventCreateBulk is the builder for creating many ReviewEvent entities in bulk.
type ReviewEventCreateBulk struct {
	config
	err      error
	builders []*ReviewEventCreate
}

// Save creates the ReviewEvent entities in the database.
func (recb *ReviewEventCreateBulk) Save(ctx context.Context) ([]*ReviewEvent, error) {
	if recb.err != nil {
		return nil, recb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(recb.builders))
	nodes := make([]*ReviewEvent, len(recb.builders))
	mutators := make([]Mutator, len(recb.builders))
	for i := range recb.builders {
		func(i int, root context.Context) {
			builder := recb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewEventMutation)
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
					_, err = mutators[i+1].Mutate(root, recb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, recb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
		if _, err := mutators[0].Mutate(ctx, recb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (recb *ReviewEventCreateBulk) SaveX(ctx context.Context) []*ReviewEvent {
	v, err := recb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (recb *ReviewEventCreateBulk) Exec(ctx context.Context) error {
	_, err := recb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (recb *ReviewEventCreateBulk) ExecX(ctx context.Context) {
	if err := recb.Exec(ctx); err != nil {
		panic(err)
	}
}
