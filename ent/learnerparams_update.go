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
	"github.com/cardwise/cardwise/ent/learnerparams"
	"github.com/cardwise/cardwise/ent/predicate"
)

// LearnerParamsUpdate is the builder for updating LearnerParams entities.
type LearnerParamsUpdate struct {
	config
	hooks    []Hook
	mutation *LearnerParamsMutation
}

// Where appends a list predicates to the LearnerParamsUpdate builder.
func (lpu *LearnerParamsUpdate) Where(ps ...predicate.LearnerParams) *LearnerParamsUpdate {
	lpu.mutation.Where(ps...)
	return lpu
}

// SetUserID sets the "user_id" field.
func (lpu *LearnerParamsUpdate) SetUserID(s string) *LearnerParamsUpdate {
	lpu.mutation.SetUserID(s)
	return lpu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (lpu *LearnerParamsUpdate) SetNillableUserID(s *string) *LearnerParamsUpdate {
	if s != nil {
		lpu.SetUserID(*s)
	}
	return lpu
}

// SetInitialEase sets the "initial_ease" field.
func (lpu *LearnerParamsUpdate) SetInitialEase(f float64) *LearnerParamsUpdate {
	lpu.mutation.ResetInitialEase()
	lpu.mutation.SetInitialEase(f)
	return lpu
}

// SetNillableInitialEase sets the "initial_ease" field if the given value is not nil.
func (lpu *LearnerParamsUpdate) SetNillableInitialEase(f *float64) *LearnerParamsUpdate {
	if f != nil {
		lpu.SetInitialEase(*f)
	}
	return lpu
}

// AddInitialEase adds f to the "initial_ease" field.
func (lpu *LearnerParamsUpdate) AddInitialEase(f float64) *LearnerParamsUpdate {
	lpu.mutation.AddInitialEase(f)
	return lpu
}

// SetMinEase sets the "min_ease" field.
func (lpu *LearnerParamsUpdate) SetMinEase(f float64) *LearnerParamsUpdate {
	lpu.mutation.ResetMinEase()
	lpu.mutation.SetMinEase(f)
	return lpu
}

// SetNillableMinEase sets the "min_ease" field if the given value is not nil.
func (lpu *LearnerParamsUpdate) SetNillableMinEase(f *float64) *LearnerParamsUpdate {
	if f != nil {
		lpu.SetMinEase(*f)
	}
	return lpu
}

// AddMinEase adds f to the "min_ease" field.
func (lpu *LearnerParamsUpdate) AddMinEase(f float64) *LearnerParamsUpdate {
	lpu.mutation.AddMinEase(f)
	return lpu
}

// SetEaseBonus sets the "ease_bonus" field.
func (lpu *LearnerParamsUpdate) SetEaseBonus(f float64) *LearnerParamsUpdate {
	lpu.mutation.ResetEaseBonus()
	lpu.mutation.SetEaseBonus(f)
	return lpu
}

// SetNillableEaseBonus sets the "ease_bonus" field if the given value is not nil.
func (lpu *LearnerParamsUpdate) SetNillableEaseBonus(f *float64) *LearnerParamsUpdate {
	if f != nil {
		lpu.SetEaseBonus(*f)
	}
	return lpu
}

// AddEaseBonus adds f to the "ease_bonus" field.
func (lpu *LearnerParamsUpdate) AddEaseBonus(f float64) *LearnerParamsUpdate {
	lpu.mutation.AddEaseBonus(f)
	return lpu
}

// SetEasePenalty sets the "ease_penalty" field.
func (lpu *LearnerParamsUpdate) SetEasePenalty(f float64) *LearnerParamsUpdate {
	lpu.mutation.ResetEasePenalty()
	lpu.mutation.SetEasePenalty(f)
	return lpu
}

// SetNillableEasePenalty sets the "ease_penalty" field if the given value is not nil.
func (lpu *LearnerParamsUpdate) SetNillableEasePenalty(f *float64) *LearnerParamsUpdate {
	if f != nil {
		lpu.SetEasePenalty(*f)
	}
	return lpu
}

// AddEasePenalty adds f to the "ease_penalty" field.
func (lpu *LearnerParamsUpdate) AddEasePenalty(f float64) *LearnerParamsUpdate {
	lpu.mutation.AddEasePenalty(f)
	return lpu
}

// SetIntervalModifier sets the "interval_modifier" field.
func (lpu *LearnerParamsUpdate) SetIntervalModifier(f float64) *LearnerParamsUpdate {
	lpu.mutation.ResetIntervalModifier()
	lpu.mutation.SetIntervalModifier(f)
	return lpu
}

// SetNillableIntervalModifier sets the "interval_modifier" field if the given value is not nil.
func (lpu *LearnerParamsUpdate) SetNillableIntervalModifier(f *float64) *LearnerParamsUpdate {
	if f != nil {
		lpu.SetIntervalModifier(*f)
	}
	return lpu
}

// AddIntervalModifier adds f to the "interval_modifier" field.
func (lpu *LearnerParamsUpdate) AddIntervalModifier(f float64) *LearnerParamsUpdate {
	lpu.mutation.AddIntervalModifier(f)
	return lpu
}

// SetMaxIntervalDays sets the "max_interval_days" field.
func (lpu *LearnerParamsUpdate) SetMaxIntervalDays(i int) *LearnerParamsUpdate {
	lpu.mutation.ResetMaxIntervalDays()
	lpu.mutation.SetMaxIntervalDays(i)
	return lpu
}

// SetNillableMaxIntervalDays sets the "max_interval_days" field if the given value is not nil.
func (lpu *LearnerParamsUpdate) SetNillableMaxIntervalDays(i *int) *LearnerParamsUpdate {
	if i != nil {
		lpu.SetMaxIntervalDays(*i)
	}
	return lpu
}

// AddMaxIntervalDays adds i to the "max_interval_days" field.
func (lpu *LearnerParamsUpdate) AddMaxIntervalDays(i int) *LearnerParamsUpdate {
	lpu.mutation.AddMaxIntervalDays(i)
	return lpu
}

// SetNewPerDay sets the "new_per_day" field.
func (lpu *LearnerParamsUpdate) SetNewPerDay(i int) *LearnerParamsUpdate {
	lpu.mutation.ResetNewPerDay()
	lpu.mutation.SetNewPerDay(i)
	return lpu
}

// SetNillableNewPerDay sets the "new_per_day" field if the given value is not nil.
func (lpu *LearnerParamsUpdate) SetNillableNewPerDay(i *int) *LearnerParamsUpdate {
	if i != nil {
		lpu.SetNewPerDay(*i)
	}
	return lpu
}

// AddNewPerDay adds i to the "new_per_day" field.
func (lpu *LearnerParamsUpdate) AddNewPerDay(i int) *LearnerParamsUpdate {
	lpu.mutation.AddNewPerDay(i)
	return lpu
}

// SetReviewsPerDay sets the "reviews_per_day" field.
func (lpu *LearnerParamsUpdate) SetReviewsPerDay(i int) *LearnerParamsUpdate {
	lpu.mutation.ResetReviewsPerDay()
	lpu.mutation.SetReviewsPerDay(i)
	return lpu
}

// SetNillableReviewsPerDay sets the "reviews_per_day" field if the given value is not nil.
func (lpu *LearnerParamsUpdate) SetNillableReviewsPerDay(i *int) *LearnerParamsUpdate {
	if i != nil {
		lpu.SetReviewsPerDay(*i)
	}
	return lpu
}

// AddReviewsPerDay adds i to the "reviews_per_day" field.
func (lpu *LearnerParamsUpdate) AddReviewsPerDay(i int) *LearnerParamsUpdate {
	lpu.mutation.AddReviewsPerDay(i)
	return lpu
}

// SetAdaptive sets the "adaptive" field.
func (lpu *LearnerParamsUpdate) SetAdaptive(b bool) *LearnerParamsUpdate {
	lpu.mutation.SetAdaptive(b)
	return lpu
}

// SetNillableAdaptive sets the "adaptive" field if the given value is not nil.
func (lpu *LearnerParamsUpdate) SetNillableAdaptive(b *bool) *LearnerParamsUpdate {
	if b != nil {
		lpu.SetAdaptive(*b)
	}
	return lpu
}

// SetSettings sets the "settings" field.
func (lpu *LearnerParamsUpdate) SetSettings(m map[string]interface{}) *LearnerParamsUpdate {
	lpu.mutation.SetSettings(m)
	return lpu
}

// SetAnalyzedAt sets the "analyzed_at" field.
func (lpu *LearnerParamsUpdate) SetAnalyzedAt(t time.Time) *LearnerParamsUpdate {
	lpu.mutation.SetAnalyzedAt(t)
	return lpu
}

// SetNillableAnalyzedAt sets the "analyzed_at" field if the given value is not nil.
func (lpu *LearnerParamsUpdate) SetNillableAnalyzedAt(t *time.Time) *LearnerParamsUpdate {
	if t != nil {
		lpu.SetAnalyzedAt(*t)
	}
	return lpu
}

// ClearAnalyzedAt clears the value of the "analyzed_at" field.
func (lpu *LearnerParamsUpdate) ClearAnalyzedAt() *LearnerParamsUpdate {
	lpu.mutation.ClearAnalyzedAt()
	return lpu
}

// Mutation returns the LearnerParamsMutation object of the builder.
func (lpu *LearnerParamsUpdate) Mutation() *LearnerParamsMutation {
	return lpu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (lpu *LearnerParamsUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, lpu.sqlSave, lpu.mutation, lpu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (lpu *LearnerParamsUpdate) SaveX(ctx context.Context) int {
	affected, err := lpu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (lpu *LearnerParamsUpdate) Exec(ctx context.Context) error {
	_, err := lpu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lpu *LearnerParamsUpdate) ExecX(ctx context.Context) {
	if err := lpu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (lpu *LearnerParamsUpdate) check() error {
	if v, ok := lpu.mutation.UserID(); ok {
		if err := learnerparams.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LearnerParams.user_id": %w`, err)}
		}
	}
	return nil
}

func (lpu *LearnerParamsUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := lpu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(learnerparams.Table, learnerparams.Columns, sqlgraph.NewFieldSpec(learnerparams.FieldID, field.TypeInt))
	if ps := lpu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := lpu.mutation.UserID(); ok {
		_spec.SetField(learnerparams.FieldUserID, field.TypeString, value)
	}
	if value, ok := lpu.mutation.InitialEase(); ok {
		_spec.SetField(learnerparams.FieldInitialEase, field.TypeFloat64, value)
	}
	if value, ok := lpu.mutation.AddedInitialEase(); ok {
		_spec.AddField(learnerparams.FieldInitialEase, field.TypeFloat64, value)
	}
	if value, ok := lpu.mutation.MinEase(); ok {
		_spec.SetField(learnerparams.FieldMinEase, field.TypeFloat64, value)
	}
	if value, ok := lpu.mutation.AddedMinEase(); ok {
		_spec.AddField(learnerparams.FieldMinEase, field.TypeFloat64, value)
	}
	if value, ok := lpu.mutation.EaseBonus(); ok {
		_spec.SetField(learnerparams.FieldEaseBonus, field.TypeFloat64, value)
	}
	if value, ok := lpu.mutation.AddedEaseBonus(); ok {
		_spec.AddField(learnerparams.FieldEaseBonus, field.TypeFloat64, value)
	}
	if value, ok := lpu.mutation.EasePenalty(); ok {
		_spec.SetField(learnerparams.FieldEasePenalty, field.TypeFloat64, value)
	}
	if value, ok := lpu.mutation.AddedEasePenalty(); ok {
		_spec.AddField(learnerparams.FieldEasePenalty, field.TypeFloat64, value)
	}
	if value, ok := lpu.mutation.IntervalModifier(); ok {
		_spec.SetField(learnerparams.FieldIntervalModifier, field.TypeFloat64, value)
	}
	if value, ok := lpu.mutation.AddedIntervalModifier(); ok {
		_spec.AddField(learnerparams.FieldIntervalModifier, field.TypeFloat64, value)
	}
	if value, ok := lpu.mutation.MaxIntervalDays(); ok {
		_spec.SetField(learnerparams.FieldMaxIntervalDays, field.TypeInt, value)
	}
	if value, ok := lpu.mutation.AddedMaxIntervalDays(); ok {
		_spec.AddField(learnerparams.FieldMaxIntervalDays, field.TypeInt, value)
	}
	if value, ok := lpu.mutation.NewPerDay(); ok {
		_spec.SetField(learnerparams.FieldNewPerDay, field.TypeInt, value)
	}
	if value, ok := lpu.mutation.AddedNewPerDay(); ok {
		_spec.AddField(learnerparams.FieldNewPerDay, field.TypeInt, value)
	}
	if value, ok := lpu.mutation.ReviewsPerDay(); ok {
		_spec.SetField(learnerparams.FieldReviewsPerDay, field.TypeInt, value)
	}
	if value, ok := lpu.mutation.AddedReviewsPerDay(); ok {
		_spec.AddField(learnerparams.FieldReviewsPerDay, field.TypeInt, value)
	}
	if value, ok := lpu.mutation.Adaptive(); ok {
		_spec.SetField(learnerparams.FieldAdaptive, field.TypeBool, value)
	}
	if value, ok := lpu.mutation.Settings(); ok {
		_spec.SetField(learnerparams.FieldSettings, field.TypeJSON, value)
	}
	if value, ok := lpu.mutation.AnalyzedAt(); ok {
		_spec.SetField(learnerparams.FieldAnalyzedAt, field.TypeTime, value)
	}
	if lpu.mutation.AnalyzedAtCleared() {
		_spec.ClearField(learnerparams.FieldAnalyzedAt, field.TypeTime)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, lpu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learnerparams.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	lpu.mutation.done = true
	return n, nil
}

// LearnerParamsUpdateOne is the builder for updating a single LearnerParams entity.
type LearnerParamsUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearnerParamsMutation
}

// SetUserID sets the "user_id" field.
func (lpuo *LearnerParamsUpdateOne) SetUserID(s string) *LearnerParamsUpdateOne {
	lpuo.mutation.SetUserID(s)
	return lpuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (lpuo *LearnerParamsUpdateOne) SetNillableUserID(s *string) *LearnerParamsUpdateOne {
	if s != nil {
		lpuo.SetUserID(*s)
	}
	return lpuo
}

// SetInitialEase sets the "initial_ease" field.
func (lpuo *LearnerParamsUpdateOne) SetInitialEase(f float64) *LearnerParamsUpdateOne {
	lpuo.mutation.ResetInitialEase()
	lpuo.mutation.SetInitialEase(f)
	return lpuo
}

// SetNillableInitialEase sets the "initial_ease" field if the given value is not nil.
func (lpuo *LearnerParamsUpdateOne) SetNillableInitialEase(f *float64) *LearnerParamsUpdateOne {
	if f != nil {
		lpuo.SetInitialEase(*f)
	}
	return lpuo
}

// AddInitialEase adds f to the "initial_ease" field.
func (lpuo *LearnerParamsUpdateOne) AddInitialEase(f float64) *LearnerParamsUpdateOne {
	lpuo.mutation.AddInitialEase(f)
	return lpuo
}

// SetMinEase sets the "min_ease" field.
func (lpuo *LearnerParamsUpdateOne) SetMinEase(f float64) *LearnerParamsUpdateOne {
	lpuo.mutation.ResetMinEase()
	lpuo.mutation.SetMinEase(f)
	return lpuo
}

// SetNillableMinEase sets the "min_ease" field if the given value is not nil.
func (lpuo *LearnerParamsUpdateOne) SetNillableMinEase(f *float64) *LearnerParamsUpdateOne {
	if f != nil {
		lpuo.SetMinEase(*f)
	}
	return lpuo
}

// AddMinEase adds f to the "min_ease" field.
func (lpuo *LearnerParamsUpdateOne) AddMinEase(f float64) *LearnerParamsUpdateOne {
	lpuo.mutation.AddMinEase(f)
	return lpuo
}

// SetEaseBonus sets the "ease_bonus" field.
func (lpuo *LearnerParamsUpdateOne) SetEaseBonus(f float64) *LearnerParamsUpdateOne {
	lpuo.mutation.ResetEaseBonus()
	lpuo.mutation.SetEaseBonus(f)
	return lpuo
}

// SetNillableEaseBonus sets the "ease_bonus" field if the given value is not nil.
func (lpuo *LearnerParamsUpdateOne) SetNillableEaseBonus(f *float64) *LearnerParamsUpdateOne {
	if f != nil {
		lpuo.SetEaseBonus(*f)
	}
	return lpuo
}

// AddEaseBonus adds f to the "ease_bonus" field.
func (lpuo *LearnerParamsUpdateOne) AddEaseBonus(f float64) *LearnerParamsUpdateOne {
	lpuo.mutation.AddEaseBonus(f)
	return lpuo
}

// SetEasePenalty sets the "ease_penalty" field.
func (lpuo *LearnerParamsUpdateOne) SetEasePenalty(f float64) *LearnerParamsUpdateOne {
	lpuo.mutation.ResetEasePenalty()
	lpuo.mutation.SetEasePenalty(f)
	return lpuo
}

// SetNillableEasePenalty sets the "ease_penalty" field if the given value is not nil.
func (lpuo *LearnerParamsUpdateOne) SetNillableEasePenalty(f *float64) *LearnerParamsUpdateOne {
	if f != nil {
		lpuo.SetEasePenalty(*f)
	}
	return lpuo
}

// AddEasePenalty adds f to the "ease_penalty" field.
func (lpuo *LearnerParamsUpdateOne) AddEasePenalty(f float64) *LearnerParamsUpdateOne {
	lpuo.mutation.AddEasePenalty(f)
	return lpuo
}

// SetIntervalModifier sets the "interval_modifier" field.
func (lpuo *LearnerParamsUpdateOne) SetIntervalModifier(f float64) *LearnerParamsUpdateOne {
	lpuo.mutation.ResetIntervalModifier()
	lpuo.mutation.SetIntervalModifier(f)
	return lpuo
}

// SetNillableIntervalModifier sets the "interval_modifier" field if the given value is not nil.
func (lpuo *LearnerParamsUpdateOne) SetNillableIntervalModifier(f *float64) *LearnerParamsUpdateOne {
	if f != nil {
		lpuo.SetIntervalModifier(*f)
	}
	return lpuo
}

// AddIntervalModifier adds f to the "interval_modifier" field.
func (lpuo *LearnerParamsUpdateOne) AddIntervalModifier(f float64) *LearnerParamsUpdateOne {
	lpuo.mutation.AddIntervalModifier(f)
	return lpuo
}

// SetMaxIntervalDays sets the "max_interval_days" field.
func (lpuo *LearnerParamsUpdateOne) SetMaxIntervalDays(i int) *LearnerParamsUpdateOne {
	lpuo.mutation.ResetMaxIntervalDays()
	lpuo.mutation.SetMaxIntervalDays(i)
	return lpuo
}

// SetNillableMaxIntervalDays sets the "max_interval_days" field if the given value is not nil.
func (lpuo *LearnerParamsUpdateOne) SetNillableMaxIntervalDays(i *int) *LearnerParamsUpdateOne {
	if i != nil {
		lpuo.SetMaxIntervalDays(*i)
	}
	return lpuo
}

// AddMaxIntervalDays adds i to the "max_interval_days" field.
func (lpuo *LearnerParamsUpdateOne) AddMaxIntervalDays(i int) *LearnerParamsUpdateOne {
	lpuo.mutation.AddMaxIntervalDays(i)
	return lpuo
}

// SetNewPerDay sets the "new_per_day" field.
func (lpuo *LearnerParamsUpdateOne) SetNewPerDay(i int) *LearnerParamsUpdateOne {
	lpuo.mutation.ResetNewPerDay()
	lpuo.mutation.SetNewPerDay(i)
	return lpuo
}

// SetNillableNewPerDay sets the "new_per_day" field if the given value is not nil.
func (lpuo *LearnerParamsUpdateOne) SetNillableNewPerDay(i *int) *LearnerParamsUpdateOne {
	if i != nil {
		lpuo.SetNewPerDay(*i)
	}
	return lpuo
}

// AddNewPerDay adds i to the "new_per_day" field.
func (lpuo *LearnerParamsUpdateOne) AddNewPerDay(i int) *LearnerParamsUpdateOne {
	lpuo.mutation.AddNewPerDay(i)
	return lpuo
}

// SetReviewsPerDay sets the "reviews_per_day" field.
func (lpuo *LearnerParamsUpdateOne) SetReviewsPerDay(i int) *LearnerParamsUpdateOne {
	lpuo.mutation.ResetReviewsPerDay()
	lpuo.mutation.SetReviewsPerDay(i)
	return lpuo
}

// SetNillableReviewsPerDay sets the "reviews_per_day" field if the given value is not nil.
func (lpuo *LearnerParamsUpdateOne) SetNillableReviewsPerDay(i *int) *LearnerParamsUpdateOne {
	if i != nil {
		lpuo.SetReviewsPerDay(*i)
	}
	return lpuo
}

// AddReviewsPerDay adds i to the "reviews_per_day" field.
func (lpuo *LearnerParamsUpdateOne) AddReviewsPerDay(i int) *LearnerParamsUpdateOne {
	lpuo.mutation.AddReviewsPerDay(i)
	return lpuo
}

// SetAdaptive sets the "adaptive" field.
func (lpuo *LearnerParamsUpdateOne) SetAdaptive(b bool) *LearnerParamsUpdateOne {
	lpuo.mutation.SetAdaptive(b)
	return lpuo
}

// SetNillableAdaptive sets the "adaptive" field if the given value is not nil.
func (lpuo *LearnerParamsUpdateOne) SetNillableAdaptive(b *bool) *LearnerParamsUpdateOne {
	if b != nil {
		lpuo.SetAdaptive(*b)
	}
	return lpuo
}

// SetSettings sets the "settings" field.
func (lpuo *LearnerParamsUpdateOne) SetSettings(m map[string]interface{}) *LearnerParamsUpdateOne {
	lpuo.mutation.SetSettings(m)
	return lpuo
}

// SetAnalyzedAt sets the "analyzed_at" field.
func (lpuo *LearnerParamsUpdateOne) SetAnalyzedAt(t time.Time) *LearnerParamsUpdateOne {
	lpuo.mutation.SetAnalyzedAt(t)
	return lpuo
}

// SetNillableAnalyzedAt sets the "analyzed_at" field if the given value is not nil.
func (lpuo *LearnerParamsUpdateOne) SetNillableAnalyzedAt(t *time.Time) *LearnerParamsUpdateOne {
	if t != nil {
		lpuo.SetAnalyzedAt(*t)
	}
	return lpuo
}

// ClearAnalyzedAt clears the value of the "analyzed_at" field.
func (lpuo *LearnerParamsUpdateOne) ClearAnalyzedAt() *LearnerParamsUpdateOne {
	lpuo.mutation.ClearAnalyzedAt()
	return lpuo
}

// Mutation returns the LearnerParamsMutation object of the builder.
func (lpuo *LearnerParamsUpdateOne) Mutation() *LearnerParamsMutation {
	return lpuo.mutation
}

// Where appends a list predicates to the LearnerParamsUpdate builder.
func (lpuo *LearnerParamsUpdateOne) Where(ps ...predicate.LearnerParams) *LearnerParamsUpdateOne {
	lpuo.mutation.Where(ps...)
	return lpuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (lpuo *LearnerParamsUpdateOne) Select(field string, fields ...string) *LearnerParamsUpdateOne {
	lpuo.fields = append([]string{field}, fields...)
	return lpuo
}

// Save executes the query and returns the updated LearnerParams entity.
func (lpuo *LearnerParamsUpdateOne) Save(ctx context.Context) (*LearnerParams, error) {
	return withHooks(ctx, lpuo.sqlSave, lpuo.mutation, lpuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (lpuo *LearnerParamsUpdateOne) SaveX(ctx context.Context) *LearnerParams {
	node, err := lpuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (lpuo *LearnerParamsUpdateOne) Exec(ctx context.Context) error {
	_, err := lpuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lpuo *LearnerParamsUpdateOne) ExecX(ctx context.Context) {
	if err := lpuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (lpuo *LearnerParamsUpdateOne) check() error {
	if v, ok := lpuo.mutation.UserID(); ok {
		if err := learnerparams.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LearnerParams.user_id": %w`, err)}
		}
	}
	return nil
}

func (lpuo *LearnerParamsUpdateOne) sqlSave(ctx context.Context) (_node *LearnerParams, err error) {
	if err := lpuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learnerparams.Table, learnerparams.Columns, sqlgraph.NewFieldSpec(learnerparams.FieldID, field.TypeInt))
	id, ok := lpuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearnerParams.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := lpuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learnerparams.FieldID)
		for _, f := range fields {
			if !learnerparams.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learnerparams.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := lpuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := lpuo.mutation.UserID(); ok {
		_spec.SetField(learnerparams.FieldUserID, field.TypeString, value)
	}
	if value, ok := lpuo.mutation.InitialEase(); ok {
		_spec.SetField(learnerparams.FieldInitialEase, field.TypeFloat64, value)
	}
	if value, ok := lpuo.mutation.AddedInitialEase(); ok {
		_spec.AddField(learnerparams.FieldInitialEase, field.TypeFloat64, value)
	}
	if value, ok := lpuo.mutation.MinEase(); ok {
		_spec.SetField(learnerparams.FieldMinEase, field.TypeFloat64, value)
	}
	if value, ok := lpuo.mutation.AddedMinEase(); ok {
		_spec.AddField(learnerparams.FieldMinEase, field.TypeFloat64, value)
	}
	if value, ok := lpuo.mutation.EaseBonus(); ok {
		_spec.SetField(learnerparams.FieldEaseBonus, field.TypeFloat64, value)
	}
	if value, ok := lpuo.mutation.AddedEaseBonus(); ok {
		_spec.AddField(learnerparams.FieldEaseBonus, field.TypeFloat64, value)
	}
	if value, ok := lpuo.mutation.EasePenalty(); ok {
		_spec.SetField(learnerparams.FieldEasePenalty, field.TypeFloat64, value)
	}
	if value, ok := lpuo.mutation.AddedEasePenalty(); ok {
		_spec.AddField(learnerparams.FieldEasePenalty, field.TypeFloat64, value)
	}
	if value, ok := lpuo.mutation.IntervalModifier(); ok {
		_spec.SetField(learnerparams.FieldIntervalModifier, field.TypeFloat64, value)
	}
	if value, ok := lpuo.mutation.AddedIntervalModifier(); ok {
		_spec.AddField(learnerparams.FieldIntervalModifier, field.TypeFloat64, value)
	}
	if value, ok := lpuo.mutation.MaxIntervalDays(); ok {
		_spec.SetField(learnerparams.FieldMaxIntervalDays, field.TypeInt, value)
	}
	if value, ok := lpuo.mutation.AddedMaxIntervalDays(); ok {
		_spec.AddField(learnerparams.FieldMaxIntervalDays, field.TypeInt, value)
	}
	if value, ok := lpuo.mutation.NewPerDay(); ok {
		_spec.SetField(learnerparams.FieldNewPerDay, field.TypeInt, value)
	}
	if value, ok := lpuo.mutation.AddedNewPerDay(); ok {
		_spec.AddField(learnerparams.FieldNewPerDay, field.TypeInt, value)
	}
	if value, ok := lpuo.mutation.ReviewsPerDay(); ok {
		_spec.SetField(learnerparams.FieldReviewsPerDay, field.TypeInt, value)
	}
	if value, ok := lpuo.mutation.AddedReviewsPerDay(); ok {
		_spec.AddField(learnerparams.FieldReviewsPerDay, field.TypeInt, value)
	}
	if value, ok := lpuo.mutation.Adaptive(); ok {
		_spec.SetField(learnerparams.FieldAdaptive, field.TypeBool, value)
	}
	if value, ok := lpuo.mutation.Settings(); ok {
		_spec.SetField(learnerparams.FieldSettings, field.TypeJSON, value)
	}
	if value, ok := lpuo.mutation.AnalyzedAt(); ok {
		_spec.SetField(learnerparams.FieldAnalyzedAt, field.TypeTime, value)
	}
	if lpuo.mutation.AnalyzedAtCleared() {
		_spec.ClearField(learnerparams.FieldAnalyzedAt, field.TypeTime)
	}
	_node = &LearnerParams{config: lpuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, lpuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learnerparams.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	lpuo.mutation.done = true
	return _node, nil
}
