// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cardwise/cardwise/ent/learnerparams"
	"github.com/cardwise/cardwise/ent/predicate"
)

// LearnerParamsDelete is the builder for deleting a LearnerParams entity.
type LearnerParamsDelete struct {
	config
	hooks    []Hook
	mutation *LearnerParamsMutation
}

// Where appends a list predicates to the LearnerParamsDelete builder.
func (lpd *LearnerParamsDelete) Where(ps ...predicate.LearnerParams) *LearnerParamsDelete {
	lpd.mutation.Where(ps...)
	return lpd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (lpd *LearnerParamsDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, lpd.sqlExec, lpd.mutation, lpd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (lpd *LearnerParamsDelete) ExecX(ctx context.Context) int {
	n, err := lpd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (lpd *LearnerParamsDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(learnerparams.Table, sqlgraph.NewFieldSpec(learnerparams.FieldID, field.TypeInt))
	if ps := lpd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, lpd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	lpd.mutation.done = true
	return affected, err
}

// LearnerParamsDeleteOne is the builder for deleting a single LearnerParams entity.
type LearnerParamsDeleteOne struct {
	lpd *LearnerParamsDelete
}

// Where appends a list predicates to the LearnerParamsDelete builder.
func (lpdo *LearnerParamsDeleteOne) Where(ps ...predicate.LearnerParams) *LearnerParamsDeleteOne {
	lpdo.lpd.mutation.Where(ps...)
	return lpdo
}

// Exec executes the deletion query.
func (lpdo *LearnerParamsDeleteOne) Exec(ctx context.Context) error {
	n, err := lpdo.lpd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{learnerparams.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (lpdo *LearnerParamsDeleteOne) ExecX(ctx context.Context) {
	if err := lpdo.Exec(ctx); err != nil {
		panic(err)
	}
}
