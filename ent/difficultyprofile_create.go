// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ssanyal/recruitdojo/ent/difficultyprofile"
)

// DifficultyProfileCreate is the builder for creating a DifficultyProfile entity.
type DifficultyProfileCreate struct {
	config
	mutation *DifficultyProfileMutation
	hooks    []Hook
}

// SetPlayerID sets the "player_id" field.
func (_c *DifficultyProfileCreate) SetPlayerID(v int) *DifficultyProfileCreate {
	_c.mutation.SetPlayerID(v)
	return _c
}

// SetSkillCategory sets the "skill_category" field.
func (_c *DifficultyProfileCreate) SetSkillCategory(v string) *DifficultyProfileCreate {
	_c.mutation.SetSkillCategory(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *DifficultyProfileCreate) SetDifficulty(v string) *DifficultyProfileCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *DifficultyProfileCreate) SetAttempts(v int) *DifficultyProfileCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *DifficultyProfileCreate) SetNillableAttempts(v *int) *DifficultyProfileCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetAvgScore sets the "avg_score" field.
func (_c *DifficultyProfileCreate) SetAvgScore(v float64) *DifficultyProfileCreate {
	_c.mutation.SetAvgScore(v)
	return _c
}

// SetNillableAvgScore sets the "avg_score" field if the given value is not nil.
func (_c *DifficultyProfileCreate) SetNillableAvgScore(v *float64) *DifficultyProfileCreate {
	if v != nil {
		_c.SetAvgScore(*v)
	}
	return _c
}

// SetBestScore sets the "best_score" field.
func (_c *DifficultyProfileCreate) SetBestScore(v int) *DifficultyProfileCreate {
	_c.mutation.SetBestScore(v)
	return _c
}

// SetNillableBestScore sets the "best_score" field if the given value is not nil.
func (_c *DifficultyProfileCreate) SetNillableBestScore(v *int) *DifficultyProfileCreate {
	if v != nil {
		_c.SetBestScore(*v)
	}
	return _c
}

// SetWorstScore sets the "worst_score" field.
func (_c *DifficultyProfileCreate) SetWorstScore(v int) *DifficultyProfileCreate {
	_c.mutation.SetWorstScore(v)
	return _c
}

// SetNillableWorstScore sets the "worst_score" field if the given value is not nil.
func (_c *DifficultyProfileCreate) SetNillableWorstScore(v *int) *DifficultyProfileCreate {
	if v != nil {
		_c.SetWorstScore(*v)
	}
	return _c
}

// SetHighScores sets the "high_scores" field.
func (_c *DifficultyProfileCreate) SetHighScores(v int) *DifficultyProfileCreate {
	_c.mutation.SetHighScores(v)
	return _c
}

// SetNillableHighScores sets the "high_scores" field if the given value is not nil.
func (_c *DifficultyProfileCreate) SetNillableHighScores(v *int) *DifficultyProfileCreate {
	if v != nil {
		_c.SetHighScores(*v)
	}
	return _c
}

// SetExcellentScores sets the "excellent_scores" field.
func (_c *DifficultyProfileCreate) SetExcellentScores(v int) *DifficultyProfileCreate {
	_c.mutation.SetExcellentScores(v)
	return _c
}

// SetNillableExcellentScores sets the "excellent_scores" field if the given value is not nil.
func (_c *DifficultyProfileCreate) SetNillableExcellentScores(v *int) *DifficultyProfileCreate {
	if v != nil {
		_c.SetExcellentScores(*v)
	}
	return _c
}

// SetStreak sets the "streak" field.
func (_c *DifficultyProfileCreate) SetStreak(v int) *DifficultyProfileCreate {
	_c.mutation.SetStreak(v)
	return _c
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_c *DifficultyProfileCreate) SetNillableStreak(v *int) *DifficultyProfileCreate {
	if v != nil {
		_c.SetStreak(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *DifficultyProfileCreate) SetConfidence(v float64) *DifficultyProfileCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *DifficultyProfileCreate) SetNillableConfidence(v *float64) *DifficultyProfileCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetRecent sets the "recent" field.
func (_c *DifficultyProfileCreate) SetRecent(v []int) *DifficultyProfileCreate {
	_c.mutation.SetRecent(v)
	return _c
}

// Mutation returns the DifficultyProfileMutation object of the builder.
func (_c *DifficultyProfileCreate) Mutation() *DifficultyProfileMutation {
	return _c.mutation
}

// Save creates the DifficultyProfile in the database.
func (_c *DifficultyProfileCreate) Save(ctx context.Context) (*DifficultyProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DifficultyProfileCreate) SaveX(ctx context.Context) *DifficultyProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DifficultyProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DifficultyProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DifficultyProfileCreate) defaults() {
	if _, ok := _c.mutation.Attempts(); !ok {
		v := difficultyprofile.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.AvgScore(); !ok {
		v := difficultyprofile.DefaultAvgScore
		_c.mutation.SetAvgScore(v)
	}
	if _, ok := _c.mutation.BestScore(); !ok {
		v := difficultyprofile.DefaultBestScore
		_c.mutation.SetBestScore(v)
	}
	if _, ok := _c.mutation.WorstScore(); !ok {
		v := difficultyprofile.DefaultWorstScore
		_c.mutation.SetWorstScore(v)
	}
	if _, ok := _c.mutation.HighScores(); !ok {
		v := difficultyprofile.DefaultHighScores
		_c.mutation.SetHighScores(v)
	}
	if _, ok := _c.mutation.ExcellentScores(); !ok {
		v := difficultyprofile.DefaultExcellentScores
		_c.mutation.SetExcellentScores(v)
	}
	if _, ok := _c.mutation.Streak(); !ok {
		v := difficultyprofile.DefaultStreak
		_c.mutation.SetStreak(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := difficultyprofile.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DifficultyProfileCreate) check() error {
	if _, ok := _c.mutation.PlayerID(); !ok {
		return &ValidationError{Name: "player_id", err: errors.New(`ent: missing required field "DifficultyProfile.player_id"`)}
	}
	if _, ok := _c.mutation.SkillCategory(); !ok {
		return &ValidationError{Name: "skill_category", err: errors.New(`ent: missing required field "DifficultyProfile.skill_category"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "DifficultyProfile.difficulty"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "DifficultyProfile.attempts"`)}
	}
	if _, ok := _c.mutation.AvgScore(); !ok {
		return &ValidationError{Name: "avg_score", err: errors.New(`ent: missing required field "DifficultyProfile.avg_score"`)}
	}
	if _, ok := _c.mutation.BestScore(); !ok {
		return &ValidationError{Name: "best_score", err: errors.New(`ent: missing required field "DifficultyProfile.best_score"`)}
	}
	if _, ok := _c.mutation.WorstScore(); !ok {
		return &ValidationError{Name: "worst_score", err: errors.New(`ent: missing required field "DifficultyProfile.worst_score"`)}
	}
	if _, ok := _c.mutation.HighScores(); !ok {
		return &ValidationError{Name: "high_scores", err: errors.New(`ent: missing required field "DifficultyProfile.high_scores"`)}
	}
	if _, ok := _c.mutation.ExcellentScores(); !ok {
		return &ValidationError{Name: "excellent_scores", err: errors.New(`ent: missing required field "DifficultyProfile.excellent_scores"`)}
	}
	if _, ok := _c.mutation.Streak(); !ok {
		return &ValidationError{Name: "streak", err: errors.New(`ent: missing required field "DifficultyProfile.streak"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "DifficultyProfile.confidence"`)}
	}
	return nil
}

func (_c *DifficultyProfileCreate) sqlSave(ctx context.Context) (*DifficultyProfile, error) {
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

func (_c *DifficultyProfileCreate) createSpec() (*DifficultyProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &DifficultyProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(difficultyprofile.Table, sqlgraph.NewFieldSpec(difficultyprofile.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.PlayerID(); ok {
		_spec.SetField(difficultyprofile.FieldPlayerID, field.TypeInt, value)
		_node.PlayerID = value
	}
	if value, ok := _c.mutation.SkillCategory(); ok {
		_spec.SetField(difficultyprofile.FieldSkillCategory, field.TypeString, value)
		_node.SkillCategory = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(difficultyprofile.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(difficultyprofile.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.AvgScore(); ok {
		_spec.SetField(difficultyprofile.FieldAvgScore, field.TypeFloat64, value)
		_node.AvgScore = value
	}
	if value, ok := _c.mutation.BestScore(); ok {
		_spec.SetField(difficultyprofile.FieldBestScore, field.TypeInt, value)
		_node.BestScore = value
	}
	if value, ok := _c.mutation.WorstScore(); ok {
		_spec.SetField(difficultyprofile.FieldWorstScore, field.TypeInt, value)
		_node.WorstScore = value
	}
	if value, ok := _c.mutation.HighScores(); ok {
		_spec.SetField(difficultyprofile.FieldHighScores, field.TypeInt, value)
		_node.HighScores = value
	}
	if value, ok := _c.mutation.ExcellentScores(); ok {
		_spec.SetField(difficultyprofile.FieldExcellentScores, field.TypeInt, value)
		_node.ExcellentScores = value
	}
	if value, ok := _c.mutation.Streak(); ok {
		_spec.SetField(difficultyprofile.FieldStreak, field.TypeInt, value)
		_node.Streak = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(difficultyprofile.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Recent(); ok {
		_spec.SetField(difficultyprofile.FieldRecent, field.TypeJSON, value)
		_node.Recent = value
	}
	return _node, _spec
}

// DifficultyProfileCreateBulk is the builder for creating many DifficultyProfile entities in bulk.
type DifficultyProfileCreateBulk struct {
	config
	err      error
	builders []*DifficultyProfileCreate
}

// Save creates the DifficultyProfile entities in the database.
func (_c *DifficultyProfileCreateBulk) Save(ctx context.Context) ([]*DifficultyProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DifficultyProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DifficultyProfileMutation)
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
func (_c *DifficultyProfileCreateBulk) SaveX(ctx context.Context) []*DifficultyProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DifficultyProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DifficultyProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
