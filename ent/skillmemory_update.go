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
	"github.com/ssanyal/recruitdojo/ent/predicate"
	"github.com/ssanyal/recruitdojo/ent/skillmemory"
)

// SkillMemoryUpdate is the builder for updating SkillMemory entities.
type SkillMemoryUpdate struct {
	config
	hooks    []Hook
	mutation *SkillMemoryMutation
}

// Where appends a list predicates to the SkillMemoryUpdate builder.
func (_u *SkillMemoryUpdate) Where(ps ...predicate.SkillMemory) *SkillMemoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPlayerID sets the "player_id" field.
func (_u *SkillMemoryUpdate) SetPlayerID(v int) *SkillMemoryUpdate {
	_u.mutation.ResetPlayerID()
	_u.mutation.SetPlayerID(v)
	return _u
}

// SetNillablePlayerID sets the "player_id" field if the given value is not nil.
func (_u *SkillMemoryUpdate) SetNillablePlayerID(v *int) *SkillMemoryUpdate {
	if v != nil {
		_u.SetPlayerID(*v)
	}
	return _u
}

// AddPlayerID adds value to the "player_id" field.
func (_u *SkillMemoryUpdate) AddPlayerID(v int) *SkillMemoryUpdate {
	_u.mutation.AddPlayerID(v)
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *SkillMemoryUpdate) SetSkillID(v string) *SkillMemoryUpdate {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *SkillMemoryUpdate) SetNillableSkillID(v *string) *SkillMemoryUpdate {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetEf sets the "ef" field.
func (_u *SkillMemoryUpdate) SetEf(v float64) *SkillMemoryUpdate {
	_u.mutation.ResetEf()
	_u.mutation.SetEf(v)
	return _u
}

// SetNillableEf sets the "ef" field if the given value is not nil.
func (_u *SkillMemoryUpdate) SetNillableEf(v *float64) *SkillMemoryUpdate {
	if v != nil {
		_u.SetEf(*v)
	}
	return _u
}

// AddEf adds value to the "ef" field.
func (_u *SkillMemoryUpdate) AddEf(v float64) *SkillMemoryUpdate {
	_u.mutation.AddEf(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *SkillMemoryUpdate) SetIntervalDays(v int) *SkillMemoryUpdate {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *SkillMemoryUpdate) SetNillableIntervalDays(v *int) *SkillMemoryUpdate {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *SkillMemoryUpdate) AddIntervalDays(v int) *SkillMemoryUpdate {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetRepetitions sets the "repetitions" field.
func (_u *SkillMemoryUpdate) SetRepetitions(v int) *SkillMemoryUpdate {
	_u.mutation.ResetRepetitions()
	_u.mutation.SetRepetitions(v)
	return _u
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_u *SkillMemoryUpdate) SetNillableRepetitions(v *int) *SkillMemoryUpdate {
	if v != nil {
		_u.SetRepetitions(*v)
	}
	return _u
}

// AddRepetitions adds value to the "repetitions" field.
func (_u *SkillMemoryUpdate) AddRepetitions(v int) *SkillMemoryUpdate {
	_u.mutation.AddRepetitions(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *SkillMemoryUpdate) SetAttempts(v int) *SkillMemoryUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *SkillMemoryUpdate) SetNillableAttempts(v *int) *SkillMemoryUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *SkillMemoryUpdate) AddAttempts(v int) *SkillMemoryUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetLastScore sets the "last_score" field.
func (_u *SkillMemoryUpdate) SetLastScore(v int) *SkillMemoryUpdate {
	_u.mutation.ResetLastScore()
	_u.mutation.SetLastScore(v)
	return _u
}

// SetNillableLastScore sets the "last_score" field if the given value is not nil.
func (_u *SkillMemoryUpdate) SetNillableLastScore(v *int) *SkillMemoryUpdate {
	if v != nil {
		_u.SetLastScore(*v)
	}
	return _u
}

// AddLastScore adds value to the "last_score" field.
func (_u *SkillMemoryUpdate) AddLastScore(v int) *SkillMemoryUpdate {
	_u.mutation.AddLastScore(v)
	return _u
}

// SetLastQuality sets the "last_quality" field.
func (_u *SkillMemoryUpdate) SetLastQuality(v int) *SkillMemoryUpdate {
	_u.mutation.ResetLastQuality()
	_u.mutation.SetLastQuality(v)
	return _u
}

// SetNillableLastQuality sets the "last_quality" field if the given value is not nil.
func (_u *SkillMemoryUpdate) SetNillableLastQuality(v *int) *SkillMemoryUpdate {
	if v != nil {
		_u.SetLastQuality(*v)
	}
	return _u
}

// AddLastQuality adds value to the "last_quality" field.
func (_u *SkillMemoryUpdate) AddLastQuality(v int) *SkillMemoryUpdate {
	_u.mutation.AddLastQuality(v)
	return _u
}

// SetAvgScore sets the "avg_score" field.
func (_u *SkillMemoryUpdate) SetAvgScore(v float64) *SkillMemoryUpdate {
	_u.mutation.ResetAvgScore()
	_u.mutation.SetAvgScore(v)
	return _u
}

// SetNillableAvgScore sets the "avg_score" field if the given value is not nil.
func (_u *SkillMemoryUpdate) SetNillableAvgScore(v *float64) *SkillMemoryUpdate {
	if v != nil {
		_u.SetAvgScore(*v)
	}
	return _u
}

// AddAvgScore adds value to the "avg_score" field.
func (_u *SkillMemoryUpdate) AddAvgScore(v float64) *SkillMemoryUpdate {
	_u.mutation.AddAvgScore(v)
	return _u
}

// SetScores sets the "scores" field.
func (_u *SkillMemoryUpdate) SetScores(v []int) *SkillMemoryUpdate {
	_u.mutation.SetScores(v)
	return _u
}

// AppendScores appends value to the "scores" field.
func (_u *SkillMemoryUpdate) AppendScores(v []int) *SkillMemoryUpdate {
	_u.mutation.AppendScores(v)
	return _u
}

// ClearScores clears the value of the "scores" field.
func (_u *SkillMemoryUpdate) ClearScores() *SkillMemoryUpdate {
	_u.mutation.ClearScores()
	return _u
}

// SetLastReview sets the "last_review" field.
func (_u *SkillMemoryUpdate) SetLastReview(v time.Time) *SkillMemoryUpdate {
	_u.mutation.SetLastReview(v)
	return _u
}

// SetNillableLastReview sets the "last_review" field if the given value is not nil.
func (_u *SkillMemoryUpdate) SetNillableLastReview(v *time.Time) *SkillMemoryUpdate {
	if v != nil {
		_u.SetLastReview(*v)
	}
	return _u
}

// ClearLastReview clears the value of the "last_review" field.
func (_u *SkillMemoryUpdate) ClearLastReview() *SkillMemoryUpdate {
	_u.mutation.ClearLastReview()
	return _u
}

// SetNextReview sets the "next_review" field.
func (_u *SkillMemoryUpdate) SetNextReview(v time.Time) *SkillMemoryUpdate {
	_u.mutation.SetNextReview(v)
	return _u
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (_u *SkillMemoryUpdate) SetNillableNextReview(v *time.Time) *SkillMemoryUpdate {
	if v != nil {
		_u.SetNextReview(*v)
	}
	return _u
}

// ClearNextReview clears the value of the "next_review" field.
func (_u *SkillMemoryUpdate) ClearNextReview() *SkillMemoryUpdate {
	_u.mutation.ClearNextReview()
	return _u
}

// Mutation returns the SkillMemoryMutation object of the builder.
func (_u *SkillMemoryUpdate) Mutation() *SkillMemoryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SkillMemoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SkillMemoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SkillMemoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SkillMemoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SkillMemoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(skillmemory.Table, skillmemory.Columns, sqlgraph.NewFieldSpec(skillmemory.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PlayerID(); ok {
		_spec.SetField(skillmemory.FieldPlayerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlayerID(); ok {
		_spec.AddField(skillmemory.FieldPlayerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(skillmemory.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Ef(); ok {
		_spec.SetField(skillmemory.FieldEf, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEf(); ok {
		_spec.AddField(skillmemory.FieldEf, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(skillmemory.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(skillmemory.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Repetitions(); ok {
		_spec.SetField(skillmemory.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepetitions(); ok {
		_spec.AddField(skillmemory.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(skillmemory.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(skillmemory.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastScore(); ok {
		_spec.SetField(skillmemory.FieldLastScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastScore(); ok {
		_spec.AddField(skillmemory.FieldLastScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastQuality(); ok {
		_spec.SetField(skillmemory.FieldLastQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastQuality(); ok {
		_spec.AddField(skillmemory.FieldLastQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgScore(); ok {
		_spec.SetField(skillmemory.FieldAvgScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgScore(); ok {
		_spec.AddField(skillmemory.FieldAvgScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Scores(); ok {
		_spec.SetField(skillmemory.FieldScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedScores(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, skillmemory.FieldScores, value)
		})
	}
	if _u.mutation.ScoresCleared() {
		_spec.ClearField(skillmemory.FieldScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastReview(); ok {
		_spec.SetField(skillmemory.FieldLastReview, field.TypeTime, value)
	}
	if _u.mutation.LastReviewCleared() {
		_spec.ClearField(skillmemory.FieldLastReview, field.TypeTime)
	}
	if value, ok := _u.mutation.NextReview(); ok {
		_spec.SetField(skillmemory.FieldNextReview, field.TypeTime, value)
	}
	if _u.mutation.NextReviewCleared() {
		_spec.ClearField(skillmemory.FieldNextReview, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skillmemory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SkillMemoryUpdateOne is the builder for updating a single SkillMemory entity.
type SkillMemoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SkillMemoryMutation
}

// SetPlayerID sets the "player_id" field.
func (_u *SkillMemoryUpdateOne) SetPlayerID(v int) *SkillMemoryUpdateOne {
	_u.mutation.ResetPlayerID()
	_u.mutation.SetPlayerID(v)
	return _u
}

// SetNillablePlayerID sets the "player_id" field if the given value is not nil.
func (_u *SkillMemoryUpdateOne) SetNillablePlayerID(v *int) *SkillMemoryUpdateOne {
	if v != nil {
		_u.SetPlayerID(*v)
	}
	return _u
}

// AddPlayerID adds value to the "player_id" field.
func (_u *SkillMemoryUpdateOne) AddPlayerID(v int) *SkillMemoryUpdateOne {
	_u.mutation.AddPlayerID(v)
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *SkillMemoryUpdateOne) SetSkillID(v string) *SkillMemoryUpdateOne {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *SkillMemoryUpdateOne) SetNillableSkillID(v *string) *SkillMemoryUpdateOne {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetEf sets the "ef" field.
func (_u *SkillMemoryUpdateOne) SetEf(v float64) *SkillMemoryUpdateOne {
	_u.mutation.ResetEf()
	_u.mutation.SetEf(v)
	return _u
}

// SetNillableEf sets the "ef" field if the given value is not nil.
func (_u *SkillMemoryUpdateOne) SetNillableEf(v *float64) *SkillMemoryUpdateOne {
	if v != nil {
		_u.SetEf(*v)
	}
	return _u
}

// AddEf adds value to the "ef" field.
func (_u *SkillMemoryUpdateOne) AddEf(v float64) *SkillMemoryUpdateOne {
	_u.mutation.AddEf(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *SkillMemoryUpdateOne) SetIntervalDays(v int) *SkillMemoryUpdateOne {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *SkillMemoryUpdateOne) SetNillableIntervalDays(v *int) *SkillMemoryUpdateOne {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *SkillMemoryUpdateOne) AddIntervalDays(v int) *SkillMemoryUpdateOne {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetRepetitions sets the "repetitions" field.
func (_u *SkillMemoryUpdateOne) SetRepetitions(v int) *SkillMemoryUpdateOne {
	_u.mutation.ResetRepetitions()
	_u.mutation.SetRepetitions(v)
	return _u
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_u *SkillMemoryUpdateOne) SetNillableRepetitions(v *int) *SkillMemoryUpdateOne {
	if v != nil {
		_u.SetRepetitions(*v)
	}
	return _u
}

// AddRepetitions adds value to the "repetitions" field.
func (_u *SkillMemoryUpdateOne) AddRepetitions(v int) *SkillMemoryUpdateOne {
	_u.mutation.AddRepetitions(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *SkillMemoryUpdateOne) SetAttempts(v int) *SkillMemoryUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *SkillMemoryUpdateOne) SetNillableAttempts(v *int) *SkillMemoryUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *SkillMemoryUpdateOne) AddAttempts(v int) *SkillMemoryUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetLastScore sets the "last_score" field.
func (_u *SkillMemoryUpdateOne) SetLastScore(v int) *SkillMemoryUpdateOne {
	_u.mutation.ResetLastScore()
	_u.mutation.SetLastScore(v)
	return _u
}

// SetNillableLastScore sets the "last_score" field if the given value is not nil.
func (_u *SkillMemoryUpdateOne) SetNillableLastScore(v *int) *SkillMemoryUpdateOne {
	if v != nil {
		_u.SetLastScore(*v)
	}
	return _u
}

// AddLastScore adds value to the "last_score" field.
func (_u *SkillMemoryUpdateOne) AddLastScore(v int) *SkillMemoryUpdateOne {
	_u.mutation.AddLastScore(v)
	return _u
}

// SetLastQuality sets the "last_quality" field.
func (_u *SkillMemoryUpdateOne) SetLastQuality(v int) *SkillMemoryUpdateOne {
	_u.mutation.ResetLastQuality()
	_u.mutation.SetLastQuality(v)
	return _u
}

// SetNillableLastQuality sets the "last_quality" field if the given value is not nil.
func (_u *SkillMemoryUpdateOne) SetNillableLastQuality(v *int) *SkillMemoryUpdateOne {
	if v != nil {
		_u.SetLastQuality(*v)
	}
	return _u
}

// AddLastQuality adds value to the "last_quality" field.
func (_u *SkillMemoryUpdateOne) AddLastQuality(v int) *SkillMemoryUpdateOne {
	_u.mutation.AddLastQuality(v)
	return _u
}

// SetAvgScore sets the "avg_score" field.
func (_u *SkillMemoryUpdateOne) SetAvgScore(v float64) *SkillMemoryUpdateOne {
	_u.mutation.ResetAvgScore()
	_u.mutation.SetAvgScore(v)
	return _u
}

// SetNillableAvgScore sets the "avg_score" field if the given value is not nil.
func (_u *SkillMemoryUpdateOne) SetNillableAvgScore(v *float64) *SkillMemoryUpdateOne {
	if v != nil {
		_u.SetAvgScore(*v)
	}
	return _u
}

// AddAvgScore adds value to the "avg_score" field.
func (_u *SkillMemoryUpdateOne) AddAvgScore(v float64) *SkillMemoryUpdateOne {
	_u.mutation.AddAvgScore(v)
	return _u
}

// SetScores sets the "scores" field.
func (_u *SkillMemoryUpdateOne) SetScores(v []int) *SkillMemoryUpdateOne {
	_u.mutation.SetScores(v)
	return _u
}

// AppendScores appends value to the "scores" field.
func (_u *SkillMemoryUpdateOne) AppendScores(v []int) *SkillMemoryUpdateOne {
	_u.mutation.AppendScores(v)
	return _u
}

// ClearScores clears the value of the "scores" field.
func (_u *SkillMemoryUpdateOne) ClearScores() *SkillMemoryUpdateOne {
	_u.mutation.ClearScores()
	return _u
}

// SetLastReview sets the "last_review" field.
func (_u *SkillMemoryUpdateOne) SetLastReview(v time.Time) *SkillMemoryUpdateOne {
	_u.mutation.SetLastReview(v)
	return _u
}

// SetNillableLastReview sets the "last_review" field if the given value is not nil.
func (_u *SkillMemoryUpdateOne) SetNillableLastReview(v *time.Time) *SkillMemoryUpdateOne {
	if v != nil {
		_u.SetLastReview(*v)
	}
	return _u
}

// ClearLastReview clears the value of the "last_review" field.
func (_u *SkillMemoryUpdateOne) ClearLastReview() *SkillMemoryUpdateOne {
	_u.mutation.ClearLastReview()
	return _u
}

// SetNextReview sets the "next_review" field.
func (_u *SkillMemoryUpdateOne) SetNextReview(v time.Time) *SkillMemoryUpdateOne {
	_u.mutation.SetNextReview(v)
	return _u
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (_u *SkillMemoryUpdateOne) SetNillableNextReview(v *time.Time) *SkillMemoryUpdateOne {
	if v != nil {
		_u.SetNextReview(*v)
	}
	return _u
}

// ClearNextReview clears the value of the "next_review" field.
func (_u *SkillMemoryUpdateOne) ClearNextReview() *SkillMemoryUpdateOne {
	_u.mutation.ClearNextReview()
	return _u
}

// Mutation returns the SkillMemoryMutation object of the builder.
func (_u *SkillMemoryUpdateOne) Mutation() *SkillMemoryMutation {
	return _u.mutation
}

// Where appends a list predicates to the SkillMemoryUpdate builder.
func (_u *SkillMemoryUpdateOne) Where(ps ...predicate.SkillMemory) *SkillMemoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SkillMemoryUpdateOne) Select(field string, fields ...string) *SkillMemoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SkillMemory entity.
func (_u *SkillMemoryUpdateOne) Save(ctx context.Context) (*SkillMemory, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SkillMemoryUpdateOne) SaveX(ctx context.Context) *SkillMemory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SkillMemoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SkillMemoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SkillMemoryUpdateOne) sqlSave(ctx context.Context) (_node *SkillMemory, err error) {
	_spec := sqlgraph.NewUpdateSpec(skillmemory.Table, skillmemory.Columns, sqlgraph.NewFieldSpec(skillmemory.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SkillMemory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, skillmemory.FieldID)
		for _, f := range fields {
			if !skillmemory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != skillmemory.FieldID {
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
		_spec.SetField(skillmemory.FieldPlayerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlayerID(); ok {
		_spec.AddField(skillmemory.FieldPlayerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(skillmemory.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Ef(); ok {
		_spec.SetField(skillmemory.FieldEf, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEf(); ok {
		_spec.AddField(skillmemory.FieldEf, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(skillmemory.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(skillmemory.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Repetitions(); ok {
		_spec.SetField(skillmemory.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepetitions(); ok {
		_spec.AddField(skillmemory.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(skillmemory.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(skillmemory.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastScore(); ok {
		_spec.SetField(skillmemory.FieldLastScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastScore(); ok {
		_spec.AddField(skillmemory.FieldLastScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastQuality(); ok {
		_spec.SetField(skillmemory.FieldLastQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastQuality(); ok {
		_spec.AddField(skillmemory.FieldLastQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgScore(); ok {
		_spec.SetField(skillmemory.FieldAvgScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgScore(); ok {
		_spec.AddField(skillmemory.FieldAvgScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Scores(); ok {
		_spec.SetField(skillmemory.FieldScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedScores(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, skillmemory.FieldScores, value)
		})
	}
	if _u.mutation.ScoresCleared() {
		_spec.ClearField(skillmemory.FieldScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastReview(); ok {
		_spec.SetField(skillmemory.FieldLastReview, field.TypeTime, value)
	}
	if _u.mutation.LastReviewCleared() {
		_spec.ClearField(skillmemory.FieldLastReview, field.TypeTime)
	}
	if value, ok := _u.mutation.NextReview(); ok {
		_spec.SetField(skillmemory.FieldNextReview, field.TypeTime, value)
	}
	if _u.mutation.NextReviewCleared() {
		_spec.ClearField(skillmemory.FieldNextReview, field.TypeTime)
	}
	_node = &SkillMemory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skillmemory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
