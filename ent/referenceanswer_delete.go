// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ssanyal/recruitdojo/ent/predicate"
	"github.com/ssanyal/recruitdojo/ent/referenceanswer"
)

// ReferenceAnswerDelete is the builder for deleting a ReferenceAnswer entity.
type ReferenceAnswerDelete struct {
	config
	hooks    []Hook
	mutation *ReferenceAnswerMutation
}

// Where appends a list predicates to the ReferenceAnswerDelete builder.
func (_d *ReferenceAnswerDelete) Where(ps ...predicate.ReferenceAnswer) *ReferenceAnswerDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ReferenceAnswerDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ReferenceAnswerDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ReferenceAnswerDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(referenceanswer.Table, sqlgraph.NewFieldSpec(referenceanswer.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ReferenceAnswerDeleteOne is the builder for deleting a single ReferenceAnswer entity.
type ReferenceAnswerDeleteOne struct {
	_d *ReferenceAnswerDelete
}

// Where appends a list predicates to the ReferenceAnswerDelete builder.
func (_d *ReferenceAnswerDeleteOne) Where(ps ...predicate.ReferenceAnswer) *ReferenceAnswerDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ReferenceAnswerDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{referenceanswer.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ReferenceAnswerDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
