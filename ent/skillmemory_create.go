// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ssanyal/recruitdojo/ent/skillmemory"
)

// SkillMemoryCreate is the builder for creating a SkillMemory entity.
type SkillMemoryCreate struct {
	config
	mutation *SkillMemoryMutation
	hooks    []Hook
}

// SetPlayerID sets the "player_id" field.
func (_c *SkillMemoryCreate) SetPlayerID(v int) *SkillMemoryCreate {
	_c.mutation.SetPlayerID(v)
	return _c
}

// SetSkillID sets the "skill_id" field.
func (_c *SkillMemoryCreate) SetSkillID(v string) *SkillMemoryCreate {
	_c.mutation.SetSkillID(v)
	return _c
}

// SetEf sets the "ef" field.
func (_c *SkillMemoryCreate) SetEf(v float64) *SkillMemoryCreate {
	_c.mutation.SetEf(v)
	return _c
}

// SetNillableEf sets the "ef" field if the given value is not nil.
func (_c *SkillMemoryCreate) SetNillableEf(v *float64) *SkillMemoryCreate {
	if v != nil {
		_c.SetEf(*v)
	}
	return _c
}

// SetIntervalDays sets the "interval_days" field.
func (_c *SkillMemoryCreate) SetIntervalDays(v int) *SkillMemoryCreate {
	_c.mutation.SetIntervalDays(v)
	return _c
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_c *SkillMemoryCreate) SetNillableIntervalDays(v *int) *SkillMemoryCreate {
	if v != nil {
		_c.SetIntervalDays(*v)
	}
	return _c
}

// SetRepetitions sets the "repetitions" field.
func (_c *SkillMemoryCreate) SetRepetitions(v int) *SkillMemoryCreate {
	_c.mutation.SetRepetitions(v)
	return _c
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_c *SkillMemoryCreate) SetNillableRepetitions(v *int) *SkillMemoryCreate {
	if v != nil {
		_c.SetRepetitions(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *SkillMemoryCreate) SetAttempts(v int) *SkillMemoryCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *SkillMemoryCreate) SetNillableAttempts(v *int) *SkillMemoryCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetLastScore sets the "last_score" field.
func (_c *SkillMemoryCreate) SetLastScore(v int) *SkillMemoryCreate {
	_c.mutation.SetLastScore(v)
	return _c
}

// SetNillableLastScore sets the "last_score" field if the given value is not nil.
func (_c *SkillMemoryCreate) SetNillableLastScore(v *int) *SkillMemoryCreate {
	if v != nil {
		_c.SetLastScore(*v)
	}
	return _c
}

// SetLastQuality sets the "last_quality" field.
func (_c *SkillMemoryCreate) SetLastQuality(v int) *SkillMemoryCreate {
	_c.mutation.SetLastQuality(v)
	return _c
}

// SetNillableLastQuality sets the "last_quality" field if the given value is not nil.
func (_c *SkillMemoryCreate) SetNillableLastQuality(v *int) *SkillMemoryCreate {
	if v != nil {
		_c.SetLastQuality(*v)
	}
	return _c
}

// SetAvgScore sets the "avg_score" field.
func (_c *SkillMemoryCreate) SetAvgScore(v float64) *SkillMemoryCreate {
	_c.mutation.SetAvgScore(v)
	return _c
}

// SetNillableAvgScore sets the "avg_score" field if the given value is not nil.
func (_c *SkillMemoryCreate) SetNillableAvgScore(v *float64) *SkillMemoryCreate {
	if v != nil {
		_c.SetAvgScore(*v)
	}
	return _c
}

// SetScores sets the "scores" field.
func (_c *SkillMemoryCreate) SetScores(v []int) *SkillMemoryCreate {
	_c.mutation.SetScores(v)
	return _c
}

// SetLastReview sets the "last_review" field.
func (_c *SkillMemoryCreate) SetLastReview(v time.Time) *SkillMemoryCreate {
	_c.mutation.SetLastReview(v)
	return _c
}

// SetNillableLastReview sets the "last_review" field if the given value is not nil.
func (_c *SkillMemoryCreate) SetNillableLastReview(v *time.Time) *SkillMemoryCreate {
	if v != nil {
		_c.SetLastReview(*v)
	}
	return _c
}

// SetNextReview sets the "next_review" field.
func (_c *SkillMemoryCreate) SetNextReview(v time.Time) *SkillMemoryCreate {
	_c.mutation.SetNextReview(v)
	return _c
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (_c *SkillMemoryCreate) SetNillableNextReview(v *time.Time) *SkillMemoryCreate {
	if v != nil {
		_c.SetNextReview(*v)
	}
	return _c
}

// Mutation returns the SkillMemoryMutation object of the builder.
func (_c *SkillMemoryCreate) Mutation() *SkillMemoryMutation {
	return _c.mutation
}

// Save creates the SkillMemory in the database.
func (_c *SkillMemoryCreate) Save(ctx context.Context) (*SkillMemory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SkillMemoryCreate) SaveX(ctx context.Context) *SkillMemory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SkillMemoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SkillMemoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SkillMemoryCreate) defaults() {
	if _, ok := _c.mutation.Ef(); !ok {
		v := skillmemory.DefaultEf
		_c.mutation.SetEf(v)
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		v := skillmemory.DefaultIntervalDays
		_c.mutation.SetIntervalDays(v)
	}
	if _, ok := _c.mutation.Repetitions(); !ok {
		v := skillmemory.DefaultRepetitions
		_c.mutation.SetRepetitions(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := skillmemory.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.LastScore(); !ok {
		v := skillmemory.DefaultLastScore
		_c.mutation.SetLastScore(v)
	}
	if _, ok := _c.mutation.LastQuality(); !ok {
		v := skillmemory.DefaultLastQuality
		_c.mutation.SetLastQuality(v)
	}
	if _, ok := _c.mutation.AvgScore(); !ok {
		v := skillmemory.DefaultAvgScore
		_c.mutation.SetAvgScore(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SkillMemoryCreate) check() error {
	if _, ok := _c.mutation.PlayerID(); !ok {
		return &ValidationError{Name: "player_id", err: errors.New(`ent: missing required field "SkillMemory.player_id"`)}
	}
	if _, ok := _c.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "SkillMemory.skill_id"`)}
	}
	if _, ok := _c.mutation.Ef(); !ok {
		return &ValidationError{Name: "ef", err: errors.New(`ent: missing required field "SkillMemory.ef"`)}
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		return &ValidationError{Name: "interval_days", err: errors.New(`ent: missing required field "SkillMemory.interval_days"`)}
	}
	if _, ok := _c.mutation.Repetitions(); !ok {
		return &ValidationError{Name: "repetitions", err: errors.New(`ent: missing required field "SkillMemory.repetitions"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "SkillMemory.attempts"`)}
	}
	if _, ok := _c.mutation.LastScore(); !ok {
		return &ValidationError{Name: "last_score", err: errors.New(`ent: missing required field "SkillMemory.last_score"`)}
	}
	if _, ok := _c.mutation.LastQuality(); !ok {
		return &ValidationError{Name: "last_quality", err: errors.New(`ent: missing required field "SkillMemory.last_quality"`)}
	}
	if _, ok := _c.mutation.AvgScore(); !ok {
		return &ValidationError{Name: "avg_score", err: errors.New(`ent: missing required field "SkillMemory.avg_score"`)}
	}
	return nil
}

func (_c *SkillMemoryCreate) sqlSave(ctx context.Context) (*SkillMemory, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SkillMemoryCreate) createSpec() (*SkillMemory, *sqlgraph.CreateSpec) {
	var (
		_node = &SkillMemory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(skillmemory.Table, sqlgraph.NewFieldSpec(skillmemory.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.PlayerID(); ok {
		_spec.SetField(skillmemory.FieldPlayerID, field.TypeInt, value)
		_node.PlayerID = value
	}
	if value, ok := _c.mutation.SkillID(); ok {
		_spec.SetField(skillmemory.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := _c.mutation.Ef(); ok {
		_spec.SetField(skillmemory.FieldEf, field.TypeFloat64, value)
		_node.Ef = value
	}
	if value, ok := _c.mutation.IntervalDays(); ok {
		_spec.SetField(skillmemory.FieldIntervalDays, field.TypeInt, value)
		_node.IntervalDays = value
	}
	if value, ok := _c.mutation.Repetitions(); ok {
		_spec.SetField(skillmemory.FieldRepetitions, field.TypeInt, value)
		_node.Repetitions = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(skillmemory.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.LastScore(); ok {
		_spec.SetField(skillmemory.FieldLastScore, field.TypeInt, value)
		_node.LastScore = value
	}
	if value, ok := _c.mutation.LastQuality(); ok {
		_spec.SetField(skillmemory.FieldLastQuality, field.TypeInt, value)
		_node.LastQuality = value
	}
	if value, ok := _c.mutation.AvgScore(); ok {
		_spec.SetField(skillmemory.FieldAvgScore, field.TypeFloat64, value)
		_node.AvgScore = value
	}
	if value, ok := _c.mutation.Scores(); ok {
		_spec.SetField(skillmemory.FieldScores, field.TypeJSON, value)
		_node.Scores = value
	}
	if value, ok := _c.mutation.LastReview(); ok {
		_spec.SetField(skillmemory.FieldLastReview, field.TypeTime, value)
		_node.LastReview = value
	}
	if value, ok := _c.mutation.NextReview(); ok {
		_spec.SetField(skillmemory.FieldNextReview, field.TypeTime, value)
		_node.NextReview = value
	}
	return _node, _spec
}

// SkillMemoryCreateBulk is the builder for creating many SkillMemory entities in bulk.
type SkillMemoryCreateBulk struct {
	config
	err      error
	builders []*SkillMemoryCreate
}

// Save creates the SkillMemory entities in the database.
func (_c *SkillMemoryCreateBulk) Save(ctx context.Context) ([]*SkillMemory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SkillMemory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SkillMemoryMutation)
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
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SkillMemoryCreateBulk) SaveX(ctx context.Context) []*SkillMemory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SkillMemoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SkillMemoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
