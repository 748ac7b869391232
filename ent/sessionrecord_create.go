// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cardwise/cardwise/ent/sessionrecord"
)

// SessionRecordCreate is the builder for creating a SessionRecord entity.
type SessionRecordCreate struct {
	config
	mutation *SessionRecordMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (src *SessionRecordCreate) SetUserID(s string) *SessionRecordCreate {
	src.mutation.SetUserID(s)
	return src
}

// SetStatus sets the "status" field.
func (src *SessionRecordCreate) SetStatus(s string) *SessionRecordCreate {
	src.mutation.SetStatus(s)
	return src
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (src *SessionRecordCreate) SetNillableStatus(s *string) *SessionRecordCreate {
	if s != nil {
		src.SetStatus(*s)
	}
	return src
}

// SetStartedAt sets the "started_at" field.
func (src *SessionRecordCreate) SetStartedAt(t time.Time) *SessionRecordCreate {
	src.mutation.SetStartedAt(t)
	return src
}

// SetEndedAt sets the "ended_at" field.
func (src *SessionRecordCreate) SetEndedAt(t time.Time) *SessionRecordCreate {
	src.mutation.SetEndedAt(t)
	return src
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (src *SessionRecordCreate) SetNillableEndedAt(t *time.Time) *SessionRecordCreate {
	if t != nil {
		src.SetEndedAt(*t)
	}
	return src
}

// SetTotalItems sets the "total_items" field.
func (src *SessionRecordCreate) SetTotalItems(i int) *SessionRecordCreate {
	src.mutation.SetTotalItems(i)
	return src
}

// SetCompleted sets the "completed" field.
func (src *SessionRecordCreate) SetCompleted(i int) *SessionRecordCreate {
	src.mutation.SetCompleted(i)
	return src
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (src *SessionRecordCreate) SetNillableCompleted(i *int) *SessionRecordCreate {
	if i != nil {
		src.SetCompleted(*i)
	}
	return src
}

// SetAverageRating sets the "average_rating" field.
func (src *SessionRecordCreate) SetAverageRating(f float64) *SessionRecordCreate {
	src.mutation.SetAverageRating(f)
	return src
}

// SetNillableAverageRating sets the "average_rating" field if the given value is not nil.
func (src *SessionRecordCreate) SetNillableAverageRating(f *float64) *SessionRecordCreate {
	if f != nil {
		src.SetAverageRating(*f)
	}
	return src
}

// SetPerfectCount sets the "perfect_count" field.
func (src *SessionRecordCreate) SetPerfectCount(i int) *SessionRecordCreate {
	src.mutation.SetPerfectCount(i)
	return src
}

// SetNillablePerfectCount sets the "perfect_count" field if the given value is not nil.
func (src *SessionRecordCreate) SetNillablePerfectCount(i *int) *SessionRecordCreate {
	if i != nil {
		src.SetPerfectCount(*i)
	}
	return src
}

// SetCompletionRate sets the "completion_rate" field.
func (src *SessionRecordCreate) SetCompletionRate(f float64) *SessionRecordCreate {
	src.mutation.SetCompletionRate(f)
	return src
}

// SetNillableCompletionRate sets the "completion_rate" field if the given value is not nil.
func (src *SessionRecordCreate) SetNillableCompletionRate(f *float64) *SessionRecordCreate {
	if f != nil {
		src.SetCompletionRate(*f)
	}
	return src
}

// SetID sets the "id" field.
func (src *SessionRecordCreate) SetID(s string) *SessionRecordCreate {
	src.mutation.SetID(s)
	return src
}

// Mutation returns the SessionRecordMutation object of the builder.
func (src *SessionRecordCreate) Mutation() *SessionRecordMutation {
	return src.mutation
}

// Save creates the SessionRecord in the database.
func (src *SessionRecordCreate) Save(ctx context.Context) (*SessionRecord, error) {
	src.defaults()
	return withHooks(ctx, src.sqlSave, src.mutation, src.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (src *SessionRecordCreate) SaveX(ctx context.Context) *SessionRecord {
	v, err := src.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (src *SessionRecordCreate) Exec(ctx context.Context) error {
	_, err := src.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (src *SessionRecordCreate) ExecX(ctx context.Context) {
	if err := src.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (src *SessionRecordCreate) defaults() {
	if _, ok := src.mutation.Status(); !ok {
		v := sessionrecord.DefaultStatus
		src.mutation.SetStatus(v)
	}
	if _, ok := src.mutation.Completed(); !ok {
		v := sessionrecord.DefaultCompleted
		src.mutation.SetCompleted(v)
	}
	if _, ok := src.mutation.AverageRating(); !ok {
		v := sessionrecord.DefaultAverageRating
		src.mutation.SetAverageRating(v)
	}
	if _, ok := src.mutation.PerfectCount(); !ok {
		v := sessionrecord.DefaultPerfectCount
		src.mutation.SetPerfectCount(v)
	}
	if _, ok := src.mutation.CompletionRate(); !ok {
		v := sessionrecord.DefaultCompletionRate
		src.mutation.SetCompletionRate(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (src *SessionRecordCreate) check() error {
	if _, ok := src.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "SessionRecord.user_id"`)}
	}
	if v, ok := src.mutation.UserID(); ok {
		if err := sessionrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.user_id": %w`, err)}
		}
	}
	if _, ok := src.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SessionRecord.status"`)}
	}
	if _, ok := src.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "SessionRecord.started_at"`)}
	}
	if _, ok := src.mutation.TotalItems(); !ok {
		return &ValidationError{Name: "total_items", err: errors.New(`ent: missing required field "SessionRecord.total_items"`)}
	}
	if _, ok := src.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "SessionRecord.completed"`)}
	}
	if _, ok := src.mutation.AverageRating(); !ok {
		return &ValidationError{Name: "average_rating", err: errors.New(`ent: missing required field "SessionRecord.average_rating"`)}
	}
	if _, ok := src.mutation.PerfectCount(); !ok {
		return &ValidationError{Name: "perfect_count", err: errors.New(`ent: missing required field "SessionRecord.perfect_count"`)}
	}
	if _, ok := src.mutation.CompletionRate(); !ok {
		return &ValidationError{Name: "completion_rate", err: errors.New(`ent: missing required field "SessionRecord.completion_rate"`)}
	}
	return nil
}

func (src *SessionRecordCreate) sqlSave(ctx context.Context) (*SessionRecord, error) {
	if err := src.check(); err != nil {
		return nil, err
	}
	_node, _spec := src.createSpec()
	if err := sqlgraph.CreateNode(ctx, src.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected SessionRecord.ID type: %T", _spec.ID.Value)
		}
	}
	src.mutation.id = &_node.ID
	src.mutation.done = true
	return _node, nil
}

func (src *SessionRecordCreate) createSpec() (*SessionRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionRecord{config: src.config}
		_spec = sqlgraph.NewCreateSpec(sessionrecord.Table, sqlgraph.NewFieldSpec(sessionrecord.FieldID, field.TypeString))
	)
	if id, ok := src.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := src.mutation.UserID(); ok {
		_spec.SetField(sessionrecord.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := src.mutation.Status(); ok {
		_spec.SetField(sessionrecord.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := src.mutation.StartedAt(); ok {
		_spec.SetField(sessionrecord.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := src.mutation.EndedAt(); ok {
		_spec.SetField(sessionrecord.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = value
	}
	if value, ok := src.mutation.TotalItems(); ok {
		_spec.SetField(sessionrecord.FieldTotalItems, field.TypeInt, value)
		_node.TotalItems = value
	}
	if value, ok := src.mutation.Completed(); ok {
		_spec.SetField(sessionrecord.FieldCompleted, field.TypeInt, value)
		_node.Completed = value
	}
	if value, ok := src.mutation.AverageRating(); ok {
		_spec.SetField(sessionrecord.FieldAverageRating, field.TypeFloat64, value)
		_node.AverageRating = value
	}
	if value, ok := src.mutation.PerfectCount(); ok {
		_spec.SetField(sessionrecord.FieldPerfectCount, field.TypeInt, value)
		_node.PerfectCount = value
	}
	if value, ok := src.mutation.CompletionRate(); ok {
		_spec.SetField(sessionrecord.FieldCompletionRate, field.TypeFloat64, value)
		_node.CompletionRate = value
	}
	return _node, _spec
}

// SessionRecordCreateBulk is the builder for creating many SessionRecord entities in bulk.
type SessionRecordCreateBulk struct {
	config
	err      error
	builders []*SessionRecordCreate
}

// Save creates the SessionRecord entities in the database.
func (srcb *SessionRecordCreateBulk) Save(ctx context.Context) ([]*SessionRecord, error) {
	if srcb.err != nil {
		return nil, srcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(srcb.builders))
	nodes := make([]*SessionRecord, len(srcb.builders))
	mutators := make([]Mutator, len(srcb.builders))
	for i := range srcb.builders {
		func(i int, root context.Context) {
			builder := srcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionRecordMutation)
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
					_, err = mutators[i+1].Mutate(root, srcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, srcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, srcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (srcb *SessionRecordCreateBulk) SaveX(ctx context.Context) []*SessionRecord {
	v, err := srcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (srcb *SessionRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := srcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (srcb *SessionRecordCreateBulk) ExecX(ctx context.Context) {
	if err := srcb.Exec(ctx); err != nil {
		panic(err)
	}
}
