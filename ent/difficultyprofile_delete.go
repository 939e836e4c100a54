// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ssanyal/recruitdojo/ent/difficultyprofile"
	"github.com/ssanyal/recruitdojo/ent/predicate"
)

// DifficultyProfileDelete is the builder for deleting a DifficultyProfile entity.
type DifficultyProfileDelete struct {
	config
	hooks    []Hook
	mutation *DifficultyProfileMutation
}

// Where appends a list predicates to the DifficultyProfileDelete builder.
func (_d *DifficultyProfileDelete) Where(ps ...predicate.DifficultyProfile) *DifficultyProfileDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DifficultyProfileDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DifficultyProfileDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DifficultyProfileDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(difficultyprofile.Table, sqlgraph.NewFieldSpec(difficultyprofile.FieldID, field.TypeInt))
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

// DifficultyProfileDeleteOne is the builder for deleting a single DifficultyProfile entity.
type DifficultyProfileDeleteOne struct {
	_d *DifficultyProfileDelete
}

// Where appends a list predicates to the DifficultyProfileDelete builder.
func (_d *DifficultyProfileDeleteOne) Where(ps ...predicate.DifficultyProfile) *DifficultyProfileDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DifficultyProfileDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{difficultyprofile.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DifficultyProfileDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
