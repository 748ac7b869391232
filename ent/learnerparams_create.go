// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cardwise/cardwise/ent/learnerparams"
)

// LearnerParamsCreate is the builder for creating a LearnerParams entity.
type LearnerParamsCreate struct {
	config
	mutation *LearnerParamsMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (lpc *LearnerParamsCreate) SetUserID(s string) *LearnerParamsCreate {
	lpc.mutation.SetUserID(s)
	return lpc
}

// SetInitialEase sets the "initial_ease" field.
func (lpc *LearnerParamsCreate) SetInitialEase(f float64) *LearnerParamsCreate {
	lpc.mutation.SetInitialEase(f)
	return lpc
}

// SetMinEase sets the "min_ease" field.
func (lpc *LearnerParamsCreate) SetMinEase(f float64) *LearnerParamsCreate {
	lpc.mutation.SetMinEase(f)
	return lpc
}

// SetEaseBonus sets the "ease_bonus" field.
func (lpc *LearnerParamsCreate) SetEaseBonus(f float64) *LearnerParamsCreate {
	lpc.mutation.SetEaseBonus(f)
	return lpc
}

// SetEasePenalty sets the "ease_penalty" field.
func (lpc *LearnerParamsCreate) SetEasePenalty(f float64) *LearnerParamsCreate {
	lpc.mutation.SetEasePenalty(f)
	return lpc
}

// SetIntervalModifier sets the "interval_modifier" field.
func (lpc *LearnerParamsCreate) SetIntervalModifier(f float64) *LearnerParamsCreate {
	lpc.mutation.SetIntervalModifier(f)
	return lpc
}

// SetMaxIntervalDays sets the "max_interval_days" field.
func (lpc *LearnerParamsCreate) SetMaxIntervalDays(i int) *LearnerParamsCreate {
	lpc.mutation.SetMaxIntervalDays(i)
	return lpc
}

// SetNewPerDay sets the "new_per_day" field.
func (lpc *LearnerParamsCreate) SetNewPerDay(i int) *LearnerParamsCreate {
	lpc.mutation.SetNewPerDay(i)
	return lpc
}

// SetReviewsPerDay sets the "reviews_per_day" field.
func (lpc *LearnerParamsCreate) SetReviewsPerDay(i int) *LearnerParamsCreate {
	lpc.mutation.SetReviewsPerDay(i)
	return lpc
}

// SetAdaptive sets the "adaptive" field.
func (lpc *LearnerParamsCreate) SetAdaptive(b bool) *LearnerParamsCreate {
	lpc.mutation.SetAdaptive(b)
	return lpc
}

// SetNillableAdaptive sets the "adaptive" field if the given value is not nil.
func (lpc *LearnerParamsCreate) SetNillableAdaptive(b *bool) *LearnerParamsCreate {
	if b != nil {
		lpc.SetAdaptive(*b)
	}
	return lpc
}

// SetSettings sets the "settings" field.
func (lpc *LearnerParamsCreate) SetSettings(m map[string]interface{}) *LearnerParamsCreate {
	lpc.mutation.SetSettings(m)
	return lpc
}

// SetAnalyzedAt sets the "analyzed_at" field.
func (lpc *LearnerParamsCreate) SetAnalyzedAt(t time.Time) *LearnerParamsCreate {
	lpc.mutation.SetAnalyzedAt(t)
	return lpc
}

// SetNillableAnalyzedAt sets the "analyzed_at" field if the given value is not nil.
func (lpc *LearnerParamsCreate) SetNillableAnalyzedAt(t *time.Time) *LearnerParamsCreate {
	if t != nil {
		lpc.SetAnalyzedAt(*t)
	}
	return lpc
}

// Mutation returns the LearnerParamsMutation object of the builder.
func (lpc *LearnerParamsCreate) Mutation() *LearnerParamsMutation {
	return lpc.mutation
}

// Save creates the LearnerParams in the database.
func (lpc *LearnerParamsCreate) Save(ctx context.Context) (*LearnerParams, error) {
	lpc.defaults()
	return withHooks(ctx, lpc.sqlSave, lpc.mutation, lpc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (lpc *LearnerParamsCreate) SaveX(ctx context.Context) *LearnerParams {
	v, err := lpc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (lpc *LearnerParamsCreate) Exec(ctx context.Context) error {
	_, err := lpc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lpc *LearnerParamsCreate) ExecX(ctx context.Context) {
	if err := lpc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (lpc *LearnerParamsCreate) defaults() {
	if _, ok := lpc.mutation.Adaptive(); !ok {
		v := learnerparams.DefaultAdaptive
		lpc.mutation.SetAdaptive(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (lpc *LearnerParamsCreate) check() error {
	if _, ok := lpc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "LearnerParams.user_id"`)}
	}
	if v, ok := lpc.mutation.UserID(); ok {
		if err := learnerparams.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LearnerParams.user_id": %w`, err)}
		}
	}
	if _, ok := lpc.mutation.InitialEase(); !ok {
		return &ValidationError{Name: "initial_ease", err: errors.New(`ent: missing required field "LearnerParams.initial_ease"`)}
	}
	if _, ok := lpc.mutation.MinEase(); !ok {
		return &ValidationError{Name: "min_ease", err: errors.New(`ent: missing required field "LearnerParams.min_ease"`)}
	}
	if _, ok := lpc.mutation.EaseBonus(); !ok {
		return &ValidationError{Name: "ease_bonus", err: errors.New(`ent: missing required field "LearnerParams.ease_bonus"`)}
	}
	if _, ok := lpc.mutation.EasePenalty(); !ok {
		return &ValidationError{Name: "ease_penalty", err: errors.New(`ent: missing required field "LearnerParams.ease_penalty"`)}
	}
	if _, ok := lpc.mutation.IntervalModifier(); !ok {
		return &ValidationError{Name: "interval_modifier", err: errors.New(`ent: missing required field "LearnerParams.interval_modifier"`)}
	}
	if _, ok := lpc.mutation.MaxIntervalDays(); !ok {
		return &ValidationError{Name: "max_interval_days", err: errors.New(`ent: missing required field "LearnerParams.max_interval_days"`)}
	}
	if _, ok := lpc.mutation.NewPerDay(); !ok {
		return &ValidationError{Name: "new_per_day", err: errors.New(`ent: missing required field "LearnerParams.new_per_day"`)}
	}
	if _, ok := lpc.mutation.ReviewsPerDay(); !ok {
		return &ValidationError{Name: "reviews_per_day", err: errors.New(`ent: missing required field "LearnerParams.reviews_per_day"`)}
	}
	if _, ok := lpc.mutation.Adaptive(); !ok {
		return &ValidationError{Name: "adaptive", err: errors.New(`ent: missing required field "LearnerParams.adaptive"`)}
	}
	if _, ok := lpc.mutation.Settings(); !ok {
		return &ValidationError{Name: "settings", err: errors.New(`ent: missing required field "LearnerParams.settings"`)}
	}
	return nil
}

func (lpc *LearnerParamsCreate) sqlSave(ctx context.Context) (*LearnerParams, error) {
	if err := lpc.check(); err != nil {
		return nil, err
	}
	_node, _spec := lpc.createSpec()
	if err := sqlgraph.CreateNode(ctx, lpc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	lpc.mutation.id = &_node.ID
	lpc.mutation.done = true
	return _node, nil
}

func (lpc *LearnerParamsCreate) createSpec() (*LearnerParams, *sqlgraph.CreateSpec) {
	var (
		_node = &LearnerParams{config: lpc.config}
		_spec = sqlgraph.NewCreateSpec(learnerparams.Table, sqlgraph.NewFieldSpec(learnerparams.FieldID, field.TypeInt))
	)
	if value, ok := lpc.mutation.UserID(); ok {
		_spec.SetField(learnerparams.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := lpc.mutation.InitialEase(); ok {
		_spec.SetField(learnerparams.FieldInitialEase, field.TypeFloat64, value)
		_node.InitialEase = value
	}
	if value, ok := lpc.mutation.MinEase(); ok {
		_spec.SetField(learnerparams.FieldMinEase, field.TypeFloat64, value)
		_node.MinEase = value
	}
	if value, ok := lpc.mutation.EaseBonus(); ok {
		_spec.SetField(learnerparams.FieldEaseBonus, field.TypeFloat64, value)
		_node.EaseBonus = value
	}
	if value, ok := lpc.mutation.EasePenalty(); ok {
		_spec.SetField(learnerparams.FieldEasePenalty, field.TypeFloat64, value)
		_node.EasePenalty = value
	}
	if value, ok := lpc.mutation.IntervalModifier(); ok {
		_spec.SetField(learnerparams.FieldIntervalModifier, field.TypeFloat64, value)
		_node.IntervalModifier = value
	}
	if value, ok := lpc.mutation.MaxIntervalDays(); ok {
		_spec.SetField(learnerparams.FieldMaxIntervalDays, field.TypeInt, value)
		_node.MaxIntervalDays = value
	}
	if value, ok := lpc.mutation.NewPerDay(); ok {
		_spec.SetField(learnerparams.FieldNewPerDay, field.TypeInt, value)
		_node.NewPerDay = value
	}
	if value, ok := lpc.mutation.ReviewsPerDay(); ok {
		_spec.SetField(learnerparams.FieldReviewsPerDay, field.TypeInt, value)
		_node.ReviewsPerDay = value
	}
	if value, ok := lpc.mutation.Adaptive(); ok {
		_spec.SetField(learnerparams.FieldAdaptive, field.TypeBool, value)
		_node.Adaptive = value
	}
	if value, ok := lpc.mutation.Settings(); ok {
		_spec.SetField(learnerparams.FieldSettings, field.TypeJSON, value)
		_node.Settings = value
	}
	if value, ok := lpc.mutation.AnalyzedAt(); ok {
		_spec.SetField(learnerparams.FieldAnalyzedAt, field.TypeTime, value)
		_node.AnalyzedAt = value
	}
	return _node, _spec
}

// LearnerParamsCreateBulk is the builder for creating many LearnerParams entities in bulk.
type LearnerParamsCreateBulk struct {
	config
	err      error
	builders []*LearnerParamsCreate
}

// Save creates the LearnerParams entities in the database.
func (lpcb *LearnerParamsCreateBulk) Save(ctx context.Context) ([]*LearnerParams, error) {
	if lpcb.err != nil {
		return nil, lpcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(lpcb.builders))
	nodes := make([]*LearnerParams, len(lpcb.builders))
	mutators := make([]Mutator, len(lpcb.builders))
	for i := range lpcb.builders {
		func(i int, root context.Context) {
			builder := lpcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearnerParamsMutation)
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
					_, err = mutators[i+1].Mutate(root, lpcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, lpcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, lpcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (lpcb *LearnerParamsCreateBulk) SaveX(ctx context.Context) []*LearnerParams {
	v, err := lpcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (lpcb *LearnerParamsCreateBulk) Exec(ctx context.Context) error {
	_, err := lpcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lpcb *LearnerParamsCreateBulk) ExecX(ctx context.Context) {
	if err := lpcb.Exec(ctx); err != nil {
		panic(err)
	}
}
