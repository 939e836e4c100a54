// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/ssanyal/recruitdojo/ent/difficultyprofile"
	"github.com/ssanyal/recruitdojo/ent/predicate"
)

// DifficultyProfileUpdate is the builder for updating DifficultyProfile entities.
type DifficultyProfileUpdate struct {
	config
	hooks    []Hook
	mutation *DifficultyProfileMutation
}

// Where appends a list predicates to the DifficultyProfileUpdate builder.
func (_u *DifficultyProfileUpdate) Where(ps ...predicate.DifficultyProfile) *DifficultyProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPlayerID sets the "player_id" field.
func (_u *DifficultyProfileUpdate) SetPlayerID(v int) *DifficultyProfileUpdate {
	_u.mutation.ResetPlayerID()
	_u.mutation.SetPlayerID(v)
	return _u
}

// SetNillablePlayerID sets the "player_id" field if the given value is not nil.
func (_u *DifficultyProfileUpdate) SetNillablePlayerID(v *int) *DifficultyProfileUpdate {
	if v != nil {
		_u.SetPlayerID(*v)
	}
	return _u
}

// AddPlayerID adds value to the "player_id" field.
func (_u *DifficultyProfileUpdate) AddPlayerID(v int) *DifficultyProfileUpdate {
	_u.mutation.AddPlayerID(v)
	return _u
}

// SetSkillCategory sets the "skill_category" field.
func (_u *DifficultyProfileUpdate) SetSkillCategory(v string) *DifficultyProfileUpdate {
	_u.mutation.SetSkillCategory(v)
	return _u
}

// SetNillableSkillCategory sets the "skill_category" field if the given value is not nil.
func (_u *DifficultyProfileUpdate) SetNillableSkillCategory(v *string) *DifficultyProfileUpdate {
	if v != nil {
		_u.SetSkillCategory(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *DifficultyProfileUpdate) SetDifficulty(v string) *DifficultyProfileUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *DifficultyProfileUpdate) SetNillableDifficulty(v *string) *DifficultyProfileUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *DifficultyProfileUpdate) SetAttempts(v int) *DifficultyProfileUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *DifficultyProfileUpdate) SetNillableAttempts(v *int) *DifficultyProfileUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *DifficultyProfileUpdate) AddAttempts(v int) *DifficultyProfileUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetAvgScore sets the "avg_score" field.
func (_u *DifficultyProfileUpdate) SetAvgScore(v float64) *DifficultyProfileUpdate {
	_u.mutation.ResetAvgScore()
	_u.mutation.SetAvgScore(v)
	return _u
}

// SetNillableAvgScore sets the "avg_score" field if the given value is not nil.
func (_u *DifficultyProfileUpdate) SetNillableAvgScore(v *float64) *DifficultyProfileUpdate {
	if v != nil {
		_u.SetAvgScore(*v)
	}
	return _u
}

// AddAvgScore adds value to the "avg_score" field.
func (_u *DifficultyProfileUpdate) AddAvgScore(v float64) *DifficultyProfileUpdate {
	_u.mutation.AddAvgScore(v)
	return _u
}

// SetBestScore sets the "best_score" field.
func (_u *DifficultyProfileUpdate) SetBestScore(v int) *DifficultyProfileUpdate {
	_u.mutation.ResetBestScore()
	_u.mutation.SetBestScore(v)
	return _u
}

// SetNillableBestScore sets the "best_score" field if the given value is not nil.
func (_u *DifficultyProfileUpdate) SetNillableBestScore(v *int) *DifficultyProfileUpdate {
	if v != nil {
		_u.SetBestScore(*v)
	}
	return _u
}

// AddBestScore adds value to the "best_score" field.
func (_u *DifficultyProfileUpdate) AddBestScore(v int) *DifficultyProfileUpdate {
	_u.mutation.AddBestScore(v)
	return _u
}

// SetWorstScore sets the "worst_score" field.
func (_u *DifficultyProfileUpdate) SetWorstScore(v int) *DifficultyProfileUpdate {
	_u.mutation.ResetWorstScore()
	_u.mutation.SetWorstScore(v)
	return _u
}

// SetNillableWorstScore sets the "worst_score" field if the given value is not nil.
func (_u *DifficultyProfileUpdate) SetNillableWorstScore(v *int) *DifficultyProfileUpdate {
	if v != nil {
		_u.SetWorstScore(*v)
	}
	return _u
}

// AddWorstScore adds value to the "worst_score" field.
func (_u *DifficultyProfileUpdate) AddWorstScore(v int) *DifficultyProfileUpdate {
	_u.mutation.AddWorstScore(v)
	return _u
}

// SetHighScores sets the "high_scores" field.
func (_u *DifficultyProfileUpdate) SetHighScores(v int) *DifficultyProfileUpdate {
	_u.mutation.ResetHighScores()
	_u.mutation.SetHighScores(v)
	return _u
}

// SetNillableHighScores sets the "high_scores" field if the given value is not nil.
func (_u *DifficultyProfileUpdate) SetNillableHighScores(v *int) *DifficultyProfileUpdate {
	if v != nil {
		_u.SetHighScores(*v)
	}
	return _u
}

// AddHighScores adds value to the "high_scores" field.
func (_u *DifficultyProfileUpdate) AddHighScores(v int) *DifficultyProfileUpdate {
	_u.mutation.AddHighScores(v)
	return _u
}

// SetExcellentScores sets the "excellent_scores" field.
func (_u *DifficultyProfileUpdate) SetExcellentScores(v int) *DifficultyProfileUpdate {
	_u.mutation.ResetExcellentScores()
	_u.mutation.SetExcellentScores(v)
	return _u
}

// SetNillableExcellentScores sets the "excellent_scores" field if the given value is not nil.
func (_u *DifficultyProfileUpdate) SetNillableExcellentScores(v *int) *DifficultyProfileUpdate {
	if v != nil {
		_u.SetExcellentScores(*v)
	}
	return _u
}

// AddExcellentScores adds value to the "excellent_scores" field.
func (_u *DifficultyProfileUpdate) AddExcellentScores(v int) *DifficultyProfileUpdate {
	_u.mutation.AddExcellentScores(v)
	return _u
}

// SetStreak sets the "streak" field.
func (_u *DifficultyProfileUpdate) SetStreak(v int) *DifficultyProfileUpdate {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *DifficultyProfileUpdate) SetNillableStreak(v *int) *DifficultyProfileUpdate {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *DifficultyProfileUpdate) AddStreak(v int) *DifficultyProfileUpdate {
	_u.mutation.AddStreak(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *DifficultyProfileUpdate) SetConfidence(v float64) *DifficultyProfileUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *DifficultyProfileUpdate) SetNillableConfidence(v *float64) *DifficultyProfileUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *DifficultyProfileUpdate) AddConfidence(v float64) *DifficultyProfileUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetRecent sets the "recent" field.
func (_u *DifficultyProfileUpdate) SetRecent(v []int) *DifficultyProfileUpdate {
	_u.mutation.SetRecent(v)
	return _u
}

// AppendRecent appends value to the "recent" field.
func (_u *DifficultyProfileUpdate) AppendRecent(v []int) *DifficultyProfileUpdate {
	_u.mutation.AppendRecent(v)
	return _u
}

// ClearRecent clears the value of the "recent" field.
func (_u *DifficultyProfileUpdate) ClearRecent() *DifficultyProfileUpdate {
	_u.mutation.ClearRecent()
	return _u
}

// Mutation returns the DifficultyProfileMutation object of the builder.
func (_u *DifficultyProfileUpdate) Mutation() *DifficultyProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DifficultyProfileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DifficultyProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DifficultyProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DifficultyProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DifficultyProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(difficultyprofile.Table, difficultyprofile.Columns, sqlgraph.NewFieldSpec(difficultyprofile.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PlayerID(); ok {
		_spec.SetField(difficultyprofile.FieldPlayerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlayerID(); ok {
		_spec.AddField(difficultyprofile.FieldPlayerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SkillCategory(); ok {
		_spec.SetField(difficultyprofile.FieldSkillCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(difficultyprofile.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(difficultyprofile.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(difficultyprofile.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgScore(); ok {
		_spec.SetField(difficultyprofile.FieldAvgScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgScore(); ok {
		_spec.AddField(difficultyprofile.FieldAvgScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BestScore(); ok {
		_spec.SetField(difficultyprofile.FieldBestScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBestScore(); ok {
		_spec.AddField(difficultyprofile.FieldBestScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WorstScore(); ok {
		_spec.SetField(difficultyprofile.FieldWorstScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWorstScore(); ok {
		_spec.AddField(difficultyprofile.FieldWorstScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HighScores(); ok {
		_spec.SetField(difficultyprofile.FieldHighScores, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHighScores(); ok {
		_spec.AddField(difficultyprofile.FieldHighScores, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExcellentScores(); ok {
		_spec.SetField(difficultyprofile.FieldExcellentScores, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExcellentScores(); ok {
		_spec.AddField(difficultyprofile.FieldExcellentScores, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(difficultyprofile.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(difficultyprofile.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(difficultyprofile.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(difficultyprofile.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Recent(); ok {
		_spec.SetField(difficultyprofile.FieldRecent, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecent(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, difficultyprofile.FieldRecent, value)
		})
	}
	if _u.mutation.RecentCleared() {
		_spec.ClearField(difficultyprofile.FieldRecent, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{difficultyprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DifficultyProfileUpdateOne is the builder for updating a single DifficultyProfile entity.
type DifficultyProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DifficultyProfileMutation
}

// SetPlayerID sets the "player_id" field.
func (_u *DifficultyProfileUpdateOne) SetPlayerID(v int) *DifficultyProfileUpdateOne {
	_u.mutation.ResetPlayerID()
	_u.mutation.SetPlayerID(v)
	return _u
}

// SetNillablePlayerID sets the "player_id" field if the given value is not nil.
func (_u *DifficultyProfileUpdateOne) SetNillablePlayerID(v *int) *DifficultyProfileUpdateOne {
	if v != nil {
		_u.SetPlayerID(*v)
	}
	return _u
}

// AddPlayerID adds value to the "player_id" field.
func (_u *DifficultyProfileUpdateOne) AddPlayerID(v int) *DifficultyProfileUpdateOne {
	_u.mutation.AddPlayerID(v)
	return _u
}

// SetSkillCategory sets the "skill_category" field.
func (_u *DifficultyProfileUpdateOne) SetSkillCategory(v string) *DifficultyProfileUpdateOne {
	_u.mutation.SetSkillCategory(v)
	return _u
}

// SetNillableSkillCategory sets the "skill_category" field if the given value is not nil.
func (_u *DifficultyProfileUpdateOne) SetNillableSkillCategory(v *string) *DifficultyProfileUpdateOne {
	if v != nil {
		_u.SetSkillCategory(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *DifficultyProfileUpdateOne) SetDifficulty(v string) *DifficultyProfileUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *DifficultyProfileUpdateOne) SetNillableDifficulty(v *string) *DifficultyProfileUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *DifficultyProfileUpdateOne) SetAttempts(v int) *DifficultyProfileUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *DifficultyProfileUpdateOne) SetNillableAttempts(v *int) *DifficultyProfileUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *DifficultyProfileUpdateOne) AddAttempts(v int) *DifficultyProfileUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetAvgScore sets the "avg_score" field.
func (_u *DifficultyProfileUpdateOne) SetAvgScore(v float64) *DifficultyProfileUpdateOne {
	_u.mutation.ResetAvgScore()
	_u.mutation.SetAvgScore(v)
	return _u
}

// SetNillableAvgScore sets the "avg_score" field if the given value is not nil.
func (_u *DifficultyProfileUpdateOne) SetNillableAvgScore(v *float64) *DifficultyProfileUpdateOne {
	if v != nil {
		_u.SetAvgScore(*v)
	}
	return _u
}

// AddAvgScore adds value to the "avg_score" field.
func (_u *DifficultyProfileUpdateOne) AddAvgScore(v float64) *DifficultyProfileUpdateOne {
	_u.mutation.AddAvgScore(v)
	return _u
}

// SetBestScore sets the "best_score" field.
func (_u *DifficultyProfileUpdateOne) SetBestScore(v int) *DifficultyProfileUpdateOne {
	_u.mutation.ResetBestScore()
	_u.mutation.SetBestScore(v)
	return _u
}

// SetNillableBestScore sets the "best_score" field if the given value is not nil.
func (_u *DifficultyProfileUpdateOne) SetNillableBestScore(v *int) *DifficultyProfileUpdateOne {
	if v != nil {
		_u.SetBestScore(*v)
	}
	return _u
}

// AddBestScore adds value to the "best_score" field.
func (_u *DifficultyProfileUpdateOne) AddBestScore(v int) *DifficultyProfileUpdateOne {
	_u.mutation.AddBestScore(v)
	return _u
}

// SetWorstScore sets the "worst_score" field.
func (_u *DifficultyProfileUpdateOne) SetWorstScore(v int) *DifficultyProfileUpdateOne {
	_u.mutation.ResetWorstScore()
	_u.mutation.SetWorstScore(v)
	return _u
}

// SetNillableWorstScore sets the "worst_score" field if the given value is not nil.
func (_u *DifficultyProfileUpdateOne) SetNillableWorstScore(v *int) *DifficultyProfileUpdateOne {
	if v != nil {
		_u.SetWorstScore(*v)
	}
	return _u
}

// AddWorstScore adds value to the "worst_score" field.
func (_u *DifficultyProfileUpdateOne) AddWorstScore(v int) *DifficultyProfileUpdateOne {
	_u.mutation.AddWorstScore(v)
	return _u
}

// SetHighScores sets the "high_scores" field.
func (_u *DifficultyProfileUpdateOne) SetHighScores(v int) *DifficultyProfileUpdateOne {
	_u.mutation.ResetHighScores()
	_u.mutation.SetHighScores(v)
	return _u
}

// SetNillableHighScores sets the "high_scores" field if the given value is not nil.
func (_u *DifficultyProfileUpdateOne) SetNillableHighScores(v *int) *DifficultyProfileUpdateOne {
	if v != nil {
		_u.SetHighScores(*v)
	}
	return _u
}

// AddHighScores adds value to the "high_scores" field.
func (_u *DifficultyProfileUpdateOne) AddHighScores(v int) *DifficultyProfileUpdateOne {
	_u.mutation.AddHighScores(v)
	return _u
}

// SetExcellentScores sets the "excellent_scores" field.
func (_u *DifficultyProfileUpdateOne) SetExcellentScores(v int) *DifficultyProfileUpdateOne {
	_u.mutation.ResetExcellentScores()
	_u.mutation.SetExcellentScores(v)
	return _u
}

// SetNillableExcellentScores sets the "excellent_scores" field if the given value is not nil.
func (_u *DifficultyProfileUpdateOne) SetNillableExcellentScores(v *int) *DifficultyProfileUpdateOne {
	if v != nil {
		_u.SetExcellentScores(*v)
	}
	return _u
}

// AddExcellentScores adds value to the "excellent_scores" field.
func (_u *DifficultyProfileUpdateOne) AddExcellentScores(v int) *DifficultyProfileUpdateOne {
	_u.mutation.AddExcellentScores(v)
	return _u
}

// SetStreak sets the "streak" field.
func (_u *DifficultyProfileUpdateOne) SetStreak(v int) *DifficultyProfileUpdateOne {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *DifficultyProfileUpdateOne) SetNillableStreak(v *int) *DifficultyProfileUpdateOne {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *DifficultyProfileUpdateOne) AddStreak(v int) *DifficultyProfileUpdateOne {
	_u.mutation.AddStreak(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *DifficultyProfileUpdateOne) SetConfidence(v float64) *DifficultyProfileUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *DifficultyProfileUpdateOne) SetNillableConfidence(v *float64) *DifficultyProfileUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *DifficultyProfileUpdateOne) AddConfidence(v float64) *DifficultyProfileUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetRecent sets the "recent" field.
func (_u *DifficultyProfileUpdateOne) SetRecent(v []int) *DifficultyProfileUpdateOne {
	_u.mutation.SetRecent(v)
	return _u
}

// AppendRecent appends value to the "recent" field.
func (_u *DifficultyProfileUpdateOne) AppendRecent(v []int) *DifficultyProfileUpdateOne {
	_u.mutation.AppendRecent(v)
	return _u
}

// ClearRecent clears the value of the "recent" field.
func (_u *DifficultyProfileUpdateOne) ClearRecent() *DifficultyProfileUpdateOne {
	_u.mutation.ClearRecent()
	return _u
}

// Mutation returns the DifficultyProfileMutation object of the builder.
func (_u *DifficultyProfileUpdateOne) Mutation() *DifficultyProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the DifficultyProfileUpdate builder.
func (_u *DifficultyProfileUpdateOne) Where(ps ...predicate.DifficultyProfile) *DifficultyProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DifficultyProfileUpdateOne) Select(field string, fields ...string) *DifficultyProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DifficultyProfile entity.
func (_u *DifficultyProfileUpdateOne) Save(ctx context.Context) (*DifficultyProfile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DifficultyProfileUpdateOne) SaveX(ctx context.Context) *DifficultyProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DifficultyProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DifficultyProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DifficultyProfileUpdateOne) sqlSave(ctx context.Context) (_node *DifficultyProfile, err error) {
	_spec := sqlgraph.NewUpdateSpec(difficultyprofile.Table, difficultyprofile.Columns, sqlgraph.NewFieldSpec(difficultyprofile.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DifficultyProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, difficultyprofile.FieldID)
		for _, f := range fields {
			if !difficultyprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != difficultyprofile.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PlayerID(); ok {
		_spec.SetField(difficultyprofile.FieldPlayerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlayerID(); ok {
		_spec.AddField(difficultyprofile.FieldPlayerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SkillCategory(); ok {
		_spec.SetField(difficultyprofile.FieldSkillCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(difficultyprofile.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(difficultyprofile.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(difficultyprofile.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgScore(); ok {
		_spec.SetField(difficultyprofile.FieldAvgScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgScore(); ok {
		_spec.AddField(difficultyprofile.FieldAvgScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BestScore(); ok {
		_spec.SetField(difficultyprofile.FieldBestScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBestScore(); ok {
		_spec.AddField(difficultyprofile.FieldBestScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WorstScore(); ok {
		_spec.SetField(difficultyprofile.FieldWorstScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWorstScore(); ok {
		_spec.AddField(difficultyprofile.FieldWorstScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HighScores(); ok {
		_spec.SetField(difficultyprofile.FieldHighScores, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHighScores(); ok {
		_spec.AddField(difficultyprofile.FieldHighScores, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExcellentScores(); ok {
		_spec.SetField(difficultyprofile.FieldExcellentScores, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExcellentScores(); ok {
		_spec.AddField(difficultyprofile.FieldExcellentScores, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(difficultyprofile.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(difficultyprofile.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(difficultyprofile.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(difficultyprofile.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Recent(); ok {
		_spec.SetField(difficultyprofile.FieldRecent, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecent(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, difficultyprofile.FieldRecent, value)
		})
	}
	if _u.mutation.RecentCleared() {
		_spec.ClearField(difficultyprofile.FieldRecent, field.TypeJSON)
	}
	_node = &DifficultyProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{difficultyprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
