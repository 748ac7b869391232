// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/cardwise/cardwise/ent/predicate"
	"github.com/cardwise/cardwise/ent/studyitem"
)

// StudyItemUpdate is the builder for updating StudyItem entities.
type StudyItemUpdate struct {
	config
	hooks    []Hook
	mutation *StudyItemMutation
}

// Where appends a list predicates to the StudyItemUpdate builder.
func (siu *StudyItemUpdate) Where(ps ...predicate.StudyItem) *StudyItemUpdate {
	siu.mutation.Where(ps...)
	return siu
}

// SetUserID sets the "user_id" field.
func (siu *StudyItemUpdate) SetUserID(s string) *StudyItemUpdate {
	siu.mutation.SetUserID(s)
	return siu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (siu *StudyItemUpdate) SetNillableUserID(s *string) *StudyItemUpdate {
	if s != nil {
		siu.SetUserID(*s)
	}
	return siu
}

// SetFront sets the "front" field.
func (siu *StudyItemUpdate) SetFront(s string) *StudyItemUpdate {
	siu.mutation.SetFront(s)
	return siu
}

// SetNillableFront sets the "front" field if the given value is not nil.
func (siu *StudyItemUpdate) SetNillableFront(s *string) *StudyItemUpdate {
	if s != nil {
		siu.SetFront(*s)
	}
	return siu
}

// SetBack sets the "back" field.
func (siu *StudyItemUpdate) SetBack(s string) *StudyItemUpdate {
	siu.mutation.SetBack(s)
	return siu
}

// SetNillableBack sets the "back" field if the given value is not nil.
func (siu *StudyItemUpdate) SetNillableBack(s *string) *StudyItemUpdate {
	if s != nil {
		siu.SetBack(*s)
	}
	return siu
}

// SetContentType sets the "content_type" field.
func (siu *StudyItemUpdate) SetContentType(s string) *StudyItemUpdate {
	siu.mutation.SetContentType(s)
	return siu
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (siu *StudyItemUpdate) SetNillableContentType(s *string) *StudyItemUpdate {
	if s != nil {
		siu.SetContentType(*s)
	}
	return siu
}

// SetTags sets the "tags" field.
func (siu *StudyItemUpdate) SetTags(s []string) *StudyItemUpdate {
	siu.mutation.SetTags(s)
	return siu
}

// AppendTags appends s to the "tags" field.
func (siu *StudyItemUpdate) AppendTags(s []string) *StudyItemUpdate {
	siu.mutation.AppendTags(s)
	return siu
}

// ClearTags clears the value of the "tags" field.
func (siu *StudyItemUpdate) ClearTags() *StudyItemUpdate {
	siu.mutation.ClearTags()
	return siu
}

// SetSourceRef sets the "source_ref" field.
func (siu *StudyItemUpdate) SetSourceRef(s string) *StudyItemUpdate {
	siu.mutation.SetSourceRef(s)
	return siu
}

// SetNillableSourceRef sets the "source_ref" field if the given value is not nil.
func (siu *StudyItemUpdate) SetNillableSourceRef(s *string) *StudyItemUpdate {
	if s != nil {
		siu.SetSourceRef(*s)
	}
	return siu
}

// ClearSourceRef clears the value of the "source_ref" field.
func (siu *StudyItemUpdate) ClearSourceRef() *StudyItemUpdate {
	siu.mutation.ClearSourceRef()
	return siu
}

// SetEaseFactor sets the "ease_factor" field.
func (siu *StudyItemUpdate) SetEaseFactor(f float64) *StudyItemUpdate {
	siu.mutation.ResetEaseFactor()
	siu.mutation.SetEaseFactor(f)
	return siu
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (siu *StudyItemUpdate) SetNillableEaseFactor(f *float64) *StudyItemUpdate {
	if f != nil {
		siu.SetEaseFactor(*f)
	}
	return siu
}

// AddEaseFactor adds f to the "ease_factor" field.
func (siu *StudyItemUpdate) AddEaseFactor(f float64) *StudyItemUpdate {
	siu.mutation.AddEaseFactor(f)
	return siu
}

// SetIntervalDays sets the "interval_days" field.
func (siu *StudyItemUpdate) SetIntervalDays(i int) *StudyItemUpdate {
	siu.mutation.ResetIntervalDays()
	siu.mutation.SetIntervalDays(i)
	return siu
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (siu *StudyItemUpdate) SetNillableIntervalDays(i *int) *StudyItemUpdate {
	if i != nil {
		siu.SetIntervalDays(*i)
	}
	return siu
}

// AddIntervalDays adds i to the "interval_days" field.
func (siu *StudyItemUpdate) AddIntervalDays(i int) *StudyItemUpdate {
	siu.mutation.AddIntervalDays(i)
	return siu
}

// SetRepetitions sets the "repetitions" field.
func (siu *StudyItemUpdate) SetRepetitions(i int) *StudyItemUpdate {
	siu.mutation.ResetRepetitions()
	siu.mutation.SetRepetitions(i)
	return siu
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (siu *StudyItemUpdate) SetNillableRepetitions(i *int) *StudyItemUpdate {
	if i != nil {
		siu.SetRepetitions(*i)
	}
	return siu
}

// AddRepetitions adds i to the "repetitions" field.
func (siu *StudyItemUpdate) AddRepetitions(i int) *StudyItemUpdate {
	siu.mutation.AddRepetitions(i)
	return siu
}

// SetStage sets the "stage" field.
func (siu *StudyItemUpdate) SetStage(s string) *StudyItemUpdate {
	siu.mutation.SetStage(s)
	return siu
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (siu *StudyItemUpdate) SetNillableStage(s *string) *StudyItemUpdate {
	if s != nil {
		siu.SetStage(*s)
	}
	return siu
}

// SetLastReviewAt sets the "last_review_at" field.
func (siu *StudyItemUpdate) SetLastReviewAt(t time.Time) *StudyItemUpdate {
	siu.mutation.SetLastReviewAt(t)
	return siu
}

// SetNillableLastReviewAt sets the "last_review_at" field if the given value is not nil.
func (siu *StudyItemUpdate) SetNillableLastReviewAt(t *time.Time) *StudyItemUpdate {
	if t != nil {
		siu.SetLastReviewAt(*t)
	}
	return siu
}

// ClearLastReviewAt clears the value of the "last_review_at" field.
func (siu *StudyItemUpdate) ClearLastReviewAt() *StudyItemUpdate {
	siu.mutation.ClearLastReviewAt()
	return siu
}

// SetNextReviewAt sets the "next_review_at" field.
func (siu *StudyItemUpdate) SetNextReviewAt(t time.Time) *StudyItemUpdate {
	siu.mutation.SetNextReviewAt(t)
	return siu
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (siu *StudyItemUpdate) SetNillableNextReviewAt(t *time.Time) *StudyItemUpdate {
	if t != nil {
		siu.SetNextReviewAt(*t)
	}
	return siu
}

// Mutation returns the StudyItemMutation object of the builder.
func (siu *StudyItemUpdate) Mutation() *StudyItemMutation {
	return siu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (siu *StudyItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, siu.sqlSave, siu.mutation, siu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (siu *StudyItemUpdate) SaveX(ctx context.Context) int {
	affected, err := siu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (siu *StudyItemUpdate) Exec(ctx context.Context) error {
	_, err := siu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (siu *StudyItemUpdate) ExecX(ctx context.Context) {
	if err := siu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (siu *StudyItemUpdate) check() error {
	if v, ok := siu.mutation.UserID(); ok {
		if err := studyitem.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "StudyItem.user_id": %w`, err)}
		}
	}
	if v, ok := siu.mutation.Front(); ok {
		if err := studyitem.FrontValidator(v); err != nil {
			return &ValidationError{Name: "front", err: fmt.Errorf(`ent: validator failed for field "StudyItem.front": %w`, err)}
		}
	}
	return nil
}

func (siu *StudyItemUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := siu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(studyitem.Table, studyitem.Columns, sqlgraph.NewFieldSpec(studyitem.FieldID, field.TypeString))
	if ps := siu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := siu.mutation.UserID(); ok {
		_spec.SetField(studyitem.FieldUserID, field.TypeString, value)
	}
	if value, ok := siu.mutation.Front(); ok {
		_spec.SetField(studyitem.FieldFront, field.TypeString, value)
	}
	if value, ok := siu.mutation.Back(); ok {
		_spec.SetField(studyitem.FieldBack, field.TypeString, value)
	}
	if value, ok := siu.mutation.ContentType(); ok {
		_spec.SetField(studyitem.FieldContentType, field.TypeString, value)
	}
	if value, ok := siu.mutation.Tags(); ok {
		_spec.SetField(studyitem.FieldTags, field.TypeJSON, value)
	}
	if value, ok := siu.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, studyitem.FieldTags, value)
		})
	}
	if siu.mutation.TagsCleared() {
		_spec.ClearField(studyitem.FieldTags, field.TypeJSON)
	}
	if value, ok := siu.mutation.SourceRef(); ok {
		_spec.SetField(studyitem.FieldSourceRef, field.TypeString, value)
	}
	if siu.mutation.SourceRefCleared() {
		_spec.ClearField(studyitem.FieldSourceRef, field.TypeString)
	}
	if value, ok := siu.mutation.EaseFactor(); ok {
		_spec.SetField(studyitem.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := siu.mutation.AddedEaseFactor(); ok {
		_spec.AddField(studyitem.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := siu.mutation.IntervalDays(); ok {
		_spec.SetField(studyitem.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := siu.mutation.AddedIntervalDays(); ok {
		_spec.AddField(studyitem.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := siu.mutation.Repetitions(); ok {
		_spec.SetField(studyitem.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := siu.mutation.AddedRepetitions(); ok {
		_spec.AddField(studyitem.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := siu.mutation.Stage(); ok {
		_spec.SetField(studyitem.FieldStage, field.TypeString, value)
	}
	if value, ok := siu.mutation.LastReviewAt(); ok {
		_spec.SetField(studyitem.FieldLastReviewAt, field.TypeTime, value)
	}
	if siu.mutation.LastReviewAtCleared() {
		_spec.ClearField(studyitem.FieldLastReviewAt, field.TypeTime)
	}
	if value, ok := siu.mutation.NextReviewAt(); ok {
		_spec.SetField(studyitem.FieldNextReviewAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, siu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studyitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	siu.mutation.done = true
	return n, nil
}

// StudyItemUpdateOne is the builder for updating a single StudyItem entity.
type StudyItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudyItemMutation
}

// SetUserID sets the "user_id" field.
func (siuo *StudyItemUpdateOne) SetUserID(s string) *StudyItemUpdateOne {
	siuo.mutation.SetUserID(s)
	return siuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (siuo *StudyItemUpdateOne) SetNillableUserID(s *string) *StudyItemUpdateOne {
	if s != nil {
		siuo.SetUserID(*s)
	}
	return siuo
}

// SetFront sets the "front" field.
func (siuo *StudyItemUpdateOne) SetFront(s string) *StudyItemUpdateOne {
	siuo.mutation.SetFront(s)
	return siuo
}

// SetNillableFront sets the "front" field if the given value is not nil.
func (siuo *StudyItemUpdateOne) SetNillableFront(s *string) *StudyItemUpdateOne {
	if s != nil {
		siuo.SetFront(*s)
	}
	return siuo
}

// SetBack sets the "back" field.
func (siuo *StudyItemUpdateOne) SetBack(s string) *StudyItemUpdateOne {
	siuo.mutation.SetBack(s)
	return siuo
}

// SetNillableBack sets the "back" field if the given value is not nil.
func (siuo *StudyItemUpdateOne) SetNillableBack(s *string) *StudyItemUpdateOne {
	if s != nil {
		siuo.SetBack(*s)
	}
	return siuo
}

// SetContentType sets the "content_type" field.
func (siuo *StudyItemUpdateOne) SetContentType(s string) *StudyItemUpdateOne {
	siuo.mutation.SetContentType(s)
	return siuo
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (siuo *StudyItemUpdateOne) SetNillableContentType(s *string) *StudyItemUpdateOne {
	if s != nil {
		siuo.SetContentType(*s)
	}
	return siuo
}

// SetTags sets the "tags" field.
func (siuo *StudyItemUpdateOne) SetTags(s []string) *StudyItemUpdateOne {
	siuo.mutation.SetTags(s)
	return siuo
}

// AppendTags appends s to the "tags" field.
func (siuo *StudyItemUpdateOne) AppendTags(s []string) *StudyItemUpdateOne {
	siuo.mutation.AppendTags(s)
	return siuo
}

// ClearTags clears the value of the "tags" field.
func (siuo *StudyItemUpdateOne) ClearTags() *StudyItemUpdateOne {
	siuo.mutation.ClearTags()
	return siuo
}

// SetSourceRef sets the "source_ref" field.
func (siuo *StudyItemUpdateOne) SetSourceRef(s string) *StudyItemUpdateOne {
	siuo.mutation.SetSourceRef(s)
	return siuo
}

// SetNillableSourceRef sets the "source_ref" field if the given value is not nil.
func (siuo *StudyItemUpdateOne) SetNillableSourceRef(s *string) *StudyItemUpdateOne {
	if s != nil {
		siuo.SetSourceRef(*s)
	}
	return siuo
}

// ClearSourceRef clears the value of the "source_ref" field.
func (siuo *StudyItemUpdateOne) ClearSourceRef() *StudyItemUpdateOne {
	siuo.mutation.ClearSourceRef()
	return siuo
}

// SetEaseFactor sets the "ease_factor" field.
func (siuo *StudyItemUpdateOne) SetEaseFactor(f float64) *StudyItemUpdateOne {
	siuo.mutation.ResetEaseFactor()
	siuo.mutation.SetEaseFactor(f)
	return siuo
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (siuo *StudyItemUpdateOne) SetNillableEaseFactor(f *float64) *StudyItemUpdateOne {
	if f != nil {
		siuo.SetEaseFactor(*f)
	}
	return siuo
}

// AddEaseFactor adds f to the "ease_factor" field.
func (siuo *StudyItemUpdateOne) AddEaseFactor(f float64) *StudyItemUpdateOne {
	siuo.mutation.AddEaseFactor(f)
	return siuo
}

// SetIntervalDays sets the "interval_days" field.
func (siuo *StudyItemUpdateOne) SetIntervalDays(i int) *StudyItemUpdateOne {
	siuo.mutation.ResetIntervalDays()
	siuo.mutation.SetIntervalDays(i)
	return siuo
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (siuo *StudyItemUpdateOne) SetNillableIntervalDays(i *int) *StudyItemUpdateOne {
	if i != nil {
		siuo.SetIntervalDays(*i)
	}
	return siuo
}

// AddIntervalDays adds i to the "interval_days" field.
func (siuo *StudyItemUpdateOne) AddIntervalDays(i int) *StudyItemUpdateOne {
	siuo.mutation.AddIntervalDays(i)
	return siuo
}

// SetRepetitions sets the "repetitions" field.
func (siuo *StudyItemUpdateOne) SetRepetitions(i int) *StudyItemUpdateOne {
	siuo.mutation.ResetRepetitions()
	siuo.mutation.SetRepetitions(i)
	return siuo
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (siuo *StudyItemUpdateOne) SetNillableRepetitions(i *int) *StudyItemUpdateOne {
	if i != nil {
		siuo.SetRepetitions(*i)
	}
	return siuo
}

// AddRepetitions adds i to the "repetitions" field.
func (siuo *StudyItemUpdateOne) AddRepetitions(i int) *StudyItemUpdateOne {
	siuo.mutation.AddRepetitions(i)
	return siuo
}

// SetStage sets the "stage" field.
func (siuo *StudyItemUpdateOne) SetStage(s string) *StudyItemUpdateOne {
	siuo.mutation.SetStage(s)
	return siuo
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (siuo *StudyItemUpdateOne) SetNillableStage(s *string) *StudyItemUpdateOne {
	if s != nil {
		siuo.SetStage(*s)
	}
	return siuo
}

// SetLastReviewAt sets the "last_review_at" field.
func (siuo *StudyItemUpdateOne) SetLastReviewAt(t time.Time) *StudyItemUpdateOne {
	siuo.mutation.SetLastReviewAt(t)
	return siuo
}

// SetNillableLastReviewAt sets the "last_review_at" field if the given value is not nil.
func (siuo *StudyItemUpdateOne) SetNillableLastReviewAt(t *time.Time) *StudyItemUpdateOne {
	if t != nil {
		siuo.SetLastReviewAt(*t)
	}
	return siuo
}

// ClearLastReviewAt clears the value of the "last_review_at" field.
func (siuo *StudyItemUpdateOne) ClearLastReviewAt() *StudyItemUpdateOne {
	siuo.mutation.ClearLastReviewAt()
	return siuo
}

// SetNextReviewAt sets the "next_review_at" field.
func (siuo *StudyItemUpdateOne) SetNextReviewAt(t time.Time) *StudyItemUpdateOne {
	siuo.mutation.SetNextReviewAt(t)
	return siuo
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (siuo *StudyItemUpdateOne) SetNillableNextReviewAt(t *time.Time) *StudyItemUpdateOne {
	if t != nil {
		siuo.SetNextReviewAt(*t)
	}
	return siuo
}

// Mutation returns the StudyItemMutation object of the builder.
func (siuo *StudyItemUpdateOne) Mutation() *StudyItemMutation {
	return siuo.mutation
}

// Where appends a list predicates to the StudyItemUpdate builder.
func (siuo *StudyItemUpdateOne) Where(ps ...predicate.StudyItem) *StudyItemUpdateOne {
	siuo.mutation.Where(ps...)
	return siuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (siuo *StudyItemUpdateOne) Select(field string, fields ...string) *StudyItemUpdateOne {
	siuo.fields = append([]string{field}, fields...)
	return siuo
}

// Save executes the query and returns the updated StudyItem entity.
func (siuo *StudyItemUpdateOne) Save(ctx context.Context) (*StudyItem, error) {
	return withHooks(ctx, siuo.sqlSave, siuo.mutation, siuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (siuo *StudyItemUpdateOne) SaveX(ctx context.Context) *StudyItem {
	node, err := siuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (siuo *StudyItemUpdateOne) Exec(ctx context.Context) error {
	_, err := siuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (siuo *StudyItemUpdateOne) ExecX(ctx context.Context) {
	if err := siuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (siuo *StudyItemUpdateOne) check() error {
	if v, ok := siuo.mutation.UserID(); ok {
		if err := studyitem.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "StudyItem.user_id": %w`, err)}
		}
	}
	if v, ok := siuo.mutation.Front(); ok {
		if err := studyitem.FrontValidator(v); err != nil {
			return &ValidationError{Name: "front", err: fmt.Errorf(`ent: validator failed for field "StudyItem.front": %w`, err)}
		}
	}
	return nil
}

func (siuo *StudyItemUpdateOne) sqlSave(ctx context.Context) (_node *StudyItem, err error) {
	if err := siuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studyitem.Table, studyitem.Columns, sqlgraph.NewFieldSpec(studyitem.FieldID, field.TypeString))
	id, ok := siuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StudyItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := siuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, studyitem.FieldID)
		for _, f := range fields {
			if !studyitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != studyitem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := siuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := siuo.mutation.UserID(); ok {
		_spec.SetField(studyitem.FieldUserID, field.TypeString, value)
	}
	if value, ok := siuo.mutation.Front(); ok {
		_spec.SetField(studyitem.FieldFront, field.TypeString, value)
	}
	if value, ok := siuo.mutation.Back(); ok {
		_spec.SetField(studyitem.FieldBack, field.TypeString, value)
	}
	if value, ok := siuo.mutation.ContentType(); ok {
		_spec.SetField(studyitem.FieldContentType, field.TypeString, value)
	}
	if value, ok := siuo.mutation.Tags(); ok {
		_spec.SetField(studyitem.FieldTags, field.TypeJSON, value)
	}
	if value, ok := siuo.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, studyitem.FieldTags, value)
		})
	}
	if siuo.mutation.TagsCleared() {
		_spec.ClearField(studyitem.FieldTags, field.TypeJSON)
	}
	if value, ok := siuo.mutation.SourceRef(); ok {
		_spec.SetField(studyitem.FieldSourceRef, field.TypeString, value)
	}
	if siuo.mutation.SourceRefCleared() {
		_spec.ClearField(studyitem.FieldSourceRef, field.TypeString)
	}
	if value, ok := siuo.mutation.EaseFactor(); ok {
		_spec.SetField(studyitem.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := siuo.mutation.AddedEaseFactor(); ok {
		_spec.AddField(studyitem.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := siuo.mutation.IntervalDays(); ok {
		_spec.SetField(studyitem.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := siuo.mutation.AddedIntervalDays(); ok {
		_spec.AddField(studyitem.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := siuo.mutation.Repetitions(); ok {
		_spec.SetField(studyitem.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := siuo.mutation.AddedRepetitions(); ok {
		_spec.AddField(studyitem.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := siuo.mutation.Stage(); ok {
		_spec.SetField(studyitem.FieldStage, field.TypeString, value)
	}
	if value, ok := siuo.mutation.LastReviewAt(); ok {
		_spec.SetField(studyitem.FieldLastReviewAt, field.TypeTime, value)
	}
	if siuo.mutation.LastReviewAtCleared() {
		_spec.ClearField(studyitem.FieldLastReviewAt, field.TypeTime)
	}
	if value, ok := siuo.mutation.NextReviewAt(); ok {
		_spec.SetField(studyitem.FieldNextReviewAt, field.TypeTime, value)
	}
	_node = &StudyItem{config: siuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, siuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studyitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	siuo.mutation.done = true
	return _node, nil
}
