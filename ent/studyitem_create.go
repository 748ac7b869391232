// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cardwise/cardwise/ent/studyitem"
)

// StudyItemCreate is the builder for creating a StudyItem entity.
type StudyItemCreate struct {
	config
	mutation *StudyItemMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (sic *StudyItemCreate) SetUserID(s string) *StudyItemCreate {
	sic.mutation.SetUserID(s)
	return sic
}

// SetFront sets the "front" field.
func (sic *StudyItemCreate) SetFront(s string) *StudyItemCreate {
	sic.mutation.SetFront(s)
	return sic
}

// SetBack sets the "back" field.
func (sic *StudyItemCreate) SetBack(s string) *StudyItemCreate {
	sic.mutation.SetBack(s)
	return sic
}

// SetContentType sets the "content_type" field.
func (sic *StudyItemCreate) SetContentType(s string) *StudyItemCreate {
	sic.mutation.SetContentType(s)
	return sic
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (sic *StudyItemCreate) SetNillableContentType(s *string) *StudyItemCreate {
	if s != nil {
		sic.SetContentType(*s)
	}
	return sic
}

// SetTags sets the "tags" field.
func (sic *StudyItemCreate) SetTags(s []string) *StudyItemCreate {
	sic.mutation.SetTags(s)
	return sic
}

// SetSourceRef sets the "source_ref" field.
func (sic *StudyItemCreate) SetSourceRef(s string) *StudyItemCreate {
	sic.mutation.SetSourceRef(s)
	return sic
}

// SetNillableSourceRef sets the "source_ref" field if the given value is not nil.
func (sic *StudyItemCreate) SetNillableSourceRef(s *string) *StudyItemCreate {
	if s != nil {
		sic.SetSourceRef(*s)
	}
	return sic
}

// SetEaseFactor sets the "ease_factor" field.
func (sic *StudyItemCreate) SetEaseFactor(f float64) *StudyItemCreate {
	sic.mutation.SetEaseFactor(f)
	return sic
}

// SetIntervalDays sets the "interval_days" field.
func (sic *StudyItemCreate) SetIntervalDays(i int) *StudyItemCreate {
	sic.mutation.SetIntervalDays(i)
	return sic
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (sic *StudyItemCreate) SetNillableIntervalDays(i *int) *StudyItemCreate {
	if i != nil {
		sic.SetIntervalDays(*i)
	}
	return sic
}

// SetRepetitions sets the "repetitions" field.
func (sic *StudyItemCreate) SetRepetitions(i int) *StudyItemCreate {
	sic.mutation.SetRepetitions(i)
	return sic
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (sic *StudyItemCreate) SetNillableRepetitions(i *int) *StudyItemCreate {
	if i != nil {
		sic.SetRepetitions(*i)
	}
	return sic
}

// SetStage sets the "stage" field.
func (sic *StudyItemCreate) SetStage(s string) *StudyItemCreate {
	sic.mutation.SetStage(s)
	return sic
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (sic *StudyItemCreate) SetNillableStage(s *string) *StudyItemCreate {
	if s != nil {
		sic.SetStage(*s)
	}
	return sic
}

// SetLastReviewAt sets the "last_review_at" field.
func (sic *StudyItemCreate) SetLastReviewAt(t time.Time) *StudyItemCreate {
	sic.mutation.SetLastReviewAt(t)
	return sic
}

// SetNillableLastReviewAt sets the "last_review_at" field if the given value is not nil.
func (sic *StudyItemCreate) SetNillableLastReviewAt(t *time.Time) *StudyItemCreate {
	if t != nil {
		sic.SetLastReviewAt(*t)
	}
	return sic
}

// SetNextReviewAt sets the "next_review_at" field.
func (sic *StudyItemCreate) SetNextReviewAt(t time.Time) *StudyItemCreate {
	sic.mutation.SetNextReviewAt(t)
	return sic
}

// SetID sets the "id" field.
func (sic *StudyItemCreate) SetID(s string) *StudyItemCreate {
	sic.mutation.SetID(s)
	return sic
}

// Mutation returns the StudyItemMutation object of the builder.
func (sic *StudyItemCreate) Mutation() *StudyItemMutation {
	return sic.mutation
}

// Save creates the StudyItem in the database.
func (sic *StudyItemCreate) Save(ctx context.Context) (*StudyItem, error) {
	sic.defaults()
	return withHooks(ctx, sic.sqlSave, sic.mutation, sic.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (sic *StudyItemCreate) SaveX(ctx context.Context) *StudyItem {
	v, err := sic.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sic *StudyItemCreate) Exec(ctx context.Context) error {
	_, err := sic.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sic *StudyItemCreate) ExecX(ctx context.Context) {
	if err := sic.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (sic *StudyItemCreate) defaults() {
	if _, ok := sic.mutation.ContentType(); !ok {
		v := studyitem.DefaultContentType
		sic.mutation.SetContentType(v)
	}
	if _, ok := sic.mutation.IntervalDays(); !ok {
		v := studyitem.DefaultIntervalDays
		sic.mutation.SetIntervalDays(v)
	}
	if _, ok := sic.mutation.Repetitions(); !ok {
		v := studyitem.DefaultRepetitions
		sic.mutation.SetRepetitions(v)
	}
	if _, ok := sic.mutation.Stage(); !ok {
		v := studyitem.DefaultStage
		sic.mutation.SetStage(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sic *StudyItemCreate) check() error {
	if _, ok := sic.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "StudyItem.user_id"`)}
	}
	if v, ok := sic.mutation.UserID(); ok {
		if err := studyitem.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "StudyItem.user_id": %w`, err)}
		}
	}
	if _, ok := sic.mutation.Front(); !ok {
		return &ValidationError{Name: "front", err: errors.New(`ent: missing required field "StudyItem.front"`)}
	}
	if v, ok := sic.mutation.Front(); ok {
		if err := studyitem.FrontValidator(v); err != nil {
			return &ValidationError{Name: "front", err: fmt.Errorf(`ent: validator failed for field "StudyItem.front": %w`, err)}
		}
	}
	if _, ok := sic.mutation.Back(); !ok {
		return &ValidationError{Name: "back", err: errors.New(`ent: missing required field "StudyItem.back"`)}
	}
	if _, ok := sic.mutation.ContentType(); !ok {
		return &ValidationError{Name: "content_type", err: errors.New(`ent: missing required field "StudyItem.content_type"`)}
	}
	if _, ok := sic.mutation.EaseFactor(); !ok {
		return &ValidationError{Name: "ease_factor", err: errors.New(`ent: missing required field "StudyItem.ease_factor"`)}
	}
	if _, ok := sic.mutation.IntervalDays(); !ok {
		return &ValidationError{Name: "interval_days", err: errors.New(`ent: missing required field "StudyItem.interval_days"`)}
	}
	if _, ok := sic.mutation.Repetitions(); !ok {
		return &ValidationError{Name: "repetitions", err: errors.New(`ent: missing required field "StudyItem.repetitions"`)}
	}
	if _, ok := sic.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "StudyItem.stage"`)}
	}
	if _, ok := sic.mutation.NextReviewAt(); !ok {
		return &ValidationError{Name: "next_review_at", err: errors.New(`ent: missing required field "StudyItem.next_review_at"`)}
	}
	return nil
}

func (sic *StudyItemCreate) sqlSave(ctx context.Context) (*StudyItem, error) {
	if err := sic.check(); err != nil {
		return nil, err
	}
	_node, _spec := sic.createSpec()
	if err := sqlgraph.CreateNode(ctx, sic.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected StudyItem.ID type: %T", _spec.ID.Value)
		}
	}
	sic.mutation.id = &_node.ID
	sic.mutation.done = true
	return _node, nil
}

func (sic *StudyItemCreate) createSpec() (*StudyItem, *sqlgraph.CreateSpec) {
	var (
		_node = &StudyItem{config: sic.config}
		_spec = sqlgraph.NewCreateSpec(studyitem.Table, sqlgraph.NewFieldSpec(studyitem.FieldID, field.TypeString))
	)
	if id, ok := sic.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := sic.mutation.UserID(); ok {
		_spec.SetField(studyitem.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := sic.mutation.Front(); ok {
		_spec.SetField(studyitem.FieldFront, field.TypeString, value)
		_node.Front = value
	}
	if value, ok := sic.mutation.Back(); ok {
		_spec.SetField(studyitem.FieldBack, field.TypeString, value)
		_node.Back = value
	}
	if value, ok := sic.mutation.ContentType(); ok {
		_spec.SetField(studyitem.FieldContentType, field.TypeString, value)
		_node.ContentType = value
	}
	if value, ok := sic.mutation.Tags(); ok {
		_spec.SetField(studyitem.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := sic.mutation.SourceRef(); ok {
		_spec.SetField(studyitem.FieldSourceRef, field.TypeString, value)
		_node.SourceRef = value
	}
	if value, ok := sic.mutation.EaseFactor(); ok {
		_spec.SetField(studyitem.FieldEaseFactor, field.TypeFloat64, value)
		_node.EaseFactor = value
	}
	if value, ok := sic.mutation.IntervalDays(); ok {
		_spec.SetField(studyitem.FieldIntervalDays, field.TypeInt, value)
		_node.IntervalDays = value
	}
	if value, ok := sic.mutation.Repetitions(); ok {
		_spec.SetField(studyitem.FieldRepetitions, field.TypeInt, value)
		_node.Repetitions = value
	}
	if value, ok := sic.mutation.Stage(); ok {
		_spec.SetField(studyitem.FieldStage, field.TypeString, value)
		_node.Stage = value
	}
	if value, ok := sic.mutation.LastReviewAt(); ok {
		_spec.SetField(studyitem.FieldLastReviewAt, field.TypeTime, value)
		_node.LastReviewAt = value
	}
	if value, ok := sic.mutation.NextReviewAt(); ok {
		_spec.SetField(studyitem.FieldNextReviewAt, field.TypeTime, value)
		_node.NextReviewAt = value
	}
	return _node, _spec
}

// StudyItemCreateBulk is the builder for creating many StudyItem entities in bulk.
type StudyItemCreateBulk struct {
	config
	err      error
	builders []*StudyItemCreate
}

// Save creates the StudyItem entities in the database.
func (sicb *StudyItemCreateBulk) Save(ctx context.Context) ([]*StudyItem, error) {
	if sicb.err != nil {
		return nil, sicb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(sicb.builders))
	nodes := make([]*StudyItem, len(sicb.builders))
	mutators := make([]Mutator, len(sicb.builders))
	for i := range sicb.builders {
		func(i int, root context.Context) {
			builder := sicb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudyItemMutation)
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
					_, err = mutators[i+1].Mutate(root, sicb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, sicb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, sicb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (sicb *StudyItemCreateBulk) SaveX(ctx context.Context) []*StudyItem {
	v, err := sicb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sicb *StudyItemCreateBulk) Exec(ctx context.Context) error {
	_, err := sicb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sicb *StudyItemCreateBulk) ExecX(ctx context.Context) {
	if err := sicb.Exec(ctx); err != nil {
		panic(err)
	}
}
