// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ssanyal/recruitdojo/ent/attempt"
	"github.com/ssanyal/recruitdojo/ent/predicate"
)

// AttemptUpdate is the builder for updating Attempt entities.
type AttemptUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptMutation
}

// Where appends a list predicates to the AttemptUpdate builder.
func (_u *AttemptUpdate) Where(ps ...predicate.Attempt) *AttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPlayerID sets the "player_id" field.
func (_u *AttemptUpdate) SetPlayerID(v int) *AttemptUpdate {
	_u.mutation.ResetPlayerID()
	_u.mutation.SetPlayerID(v)
	return _u
}

// SetNillablePlayerID sets the "player_id" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillablePlayerID(v *int) *AttemptUpdate {
	if v != nil {
		_u.SetPlayerID(*v)
	}
	return _u
}

// AddPlayerID adds value to the "player_id" field.
func (_u *AttemptUpdate) AddPlayerID(v int) *AttemptUpdate {
	_u.mutation.AddPlayerID(v)
	return _u
}

// SetChallengeID sets the "challenge_id" field.
func (_u *AttemptUpdate) SetChallengeID(v string) *AttemptUpdate {
	_u.mutation.SetChallengeID(v)
	return _u
}

// SetNillableChallengeID sets the "challenge_id" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableChallengeID(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetChallengeID(*v)
	}
	return _u
}

// SetSkillCategory sets the "skill_category" field.
func (_u *AttemptUpdate) SetSkillCategory(v string) *AttemptUpdate {
	_u.mutation.SetSkillCategory(v)
	return _u
}

// SetNillableSkillCategory sets the "skill_category" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableSkillCategory(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetSkillCategory(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *AttemptUpdate) SetDifficulty(v string) *AttemptUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableDifficulty(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetSubmission sets the "submission" field.
func (_u *AttemptUpdate) SetSubmission(v string) *AttemptUpdate {
	_u.mutation.SetSubmission(v)
	return _u
}

// SetNillableSubmission sets the "submission" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableSubmission(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetSubmission(*v)
	}
	return _u
}

// SetValidatorScore sets the "validator_score" field.
func (_u *AttemptUpdate) SetValidatorScore(v int) *AttemptUpdate {
	_u.mutation.ResetValidatorScore()
	_u.mutation.SetValidatorScore(v)
	return _u
}

// SetNillableValidatorScore sets the "validator_score" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableValidatorScore(v *int) *AttemptUpdate {
	if v != nil {
		_u.SetValidatorScore(*v)
	}
	return _u
}

// AddValidatorScore adds value to the "validator_score" field.
func (_u *AttemptUpdate) AddValidatorScore(v int) *AttemptUpdate {
	_u.mutation.AddValidatorScore(v)
	return _u
}

// SetAiScore sets the "ai_score" field.
func (_u *AttemptUpdate) SetAiScore(v int) *AttemptUpdate {
	_u.mutation.ResetAiScore()
	_u.mutation.SetAiScore(v)
	return _u
}

// SetNillableAiScore sets the "ai_score" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableAiScore(v *int) *AttemptUpdate {
	if v != nil {
		_u.SetAiScore(*v)
	}
	return _u
}

// AddAiScore adds value to the "ai_score" field.
func (_u *AttemptUpdate) AddAiScore(v int) *AttemptUpdate {
	_u.mutation.AddAiScore(v)
	return _u
}

// SetAiAvailable sets the "ai_available" field.
func (_u *AttemptUpdate) SetAiAvailable(v bool) *AttemptUpdate {
	_u.mutation.SetAiAvailable(v)
	return _u
}

// SetNillableAiAvailable sets the "ai_available" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableAiAvailable(v *bool) *AttemptUpdate {
	if v != nil {
		_u.SetAiAvailable(*v)
	}
	return _u
}

// SetFinalScore sets the "final_score" field.
func (_u *AttemptUpdate) SetFinalScore(v int) *AttemptUpdate {
	_u.mutation.ResetFinalScore()
	_u.mutation.SetFinalScore(v)
	return _u
}

// SetNillableFinalScore sets the "final_score" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableFinalScore(v *int) *AttemptUpdate {
	if v != nil {
		_u.SetFinalScore(*v)
	}
	return _u
}

// AddFinalScore adds value to the "final_score" field.
func (_u *AttemptUpdate) AddFinalScore(v int) *AttemptUpdate {
	_u.mutation.AddFinalScore(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *AttemptUpdate) SetConfidence(v int) *AttemptUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableConfidence(v *int) *AttemptUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *AttemptUpdate) AddConfidence(v int) *AttemptUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *AttemptUpdate) SetRiskLevel(v string) *AttemptUpdate {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableRiskLevel(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// SetHintsUsed sets the "hints_used" field.
func (_u *AttemptUpdate) SetHintsUsed(v int) *AttemptUpdate {
	_u.mutation.ResetHintsUsed()
	_u.mutation.SetHintsUsed(v)
	return _u
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableHintsUsed(v *int) *AttemptUpdate {
	if v != nil {
		_u.SetHintsUsed(*v)
	}
	return _u
}

// AddHintsUsed adds value to the "hints_used" field.
func (_u *AttemptUpdate) AddHintsUsed(v int) *AttemptUpdate {
	_u.mutation.AddHintsUsed(v)
	return _u
}

// SetFeedbackHTML sets the "feedback_html" field.
func (_u *AttemptUpdate) SetFeedbackHTML(v string) *AttemptUpdate {
	_u.mutation.SetFeedbackHTML(v)
	return _u
}

// SetNillableFeedbackHTML sets the "feedback_html" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableFeedbackHTML(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetFeedbackHTML(*v)
	}
	return _u
}

// Mutation returns the AttemptMutation object of the builder.
func (_u *AttemptUpdate) Mutation() *AttemptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(attempt.Table, attempt.Columns, sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PlayerID(); ok {
		_spec.SetField(attempt.FieldPlayerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlayerID(); ok {
		_spec.AddField(attempt.FieldPlayerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChallengeID(); ok {
		_spec.SetField(attempt.FieldChallengeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillCategory(); ok {
		_spec.SetField(attempt.FieldSkillCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(attempt.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Submission(); ok {
		_spec.SetField(attempt.FieldSubmission, field.TypeString, value)
	}
	if value, ok := _u.mutation.ValidatorScore(); ok {
		_spec.SetField(attempt.FieldValidatorScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedValidatorScore(); ok {
		_spec.AddField(attempt.FieldValidatorScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AiScore(); ok {
		_spec.SetField(attempt.FieldAiScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAiScore(); ok {
		_spec.AddField(attempt.FieldAiScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AiAvailable(); ok {
		_spec.SetField(attempt.FieldAiAvailable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FinalScore(); ok {
		_spec.SetField(attempt.FieldFinalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFinalScore(); ok {
		_spec.AddField(attempt.FieldFinalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(attempt.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(attempt.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(attempt.FieldRiskLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.HintsUsed(); ok {
		_spec.SetField(attempt.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsUsed(); ok {
		_spec.AddField(attempt.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FeedbackHTML(); ok {
		_spec.SetField(attempt.FieldFeedbackHTML, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptUpdateOne is the builder for updating a single Attempt entity.
type AttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptMutation
}

// SetPlayerID sets the "player_id" field.
func (_u *AttemptUpdateOne) SetPlayerID(v int) *AttemptUpdateOne {
	_u.mutation.ResetPlayerID()
	_u.mutation.SetPlayerID(v)
	return _u
}

// SetNillablePlayerID sets the "player_id" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillablePlayerID(v *int) *AttemptUpdateOne {
	if v != nil {
		_u.SetPlayerID(*v)
	}
	return _u
}

// AddPlayerID adds value to the "player_id" field.
func (_u *AttemptUpdateOne) AddPlayerID(v int) *AttemptUpdateOne {
	_u.mutation.AddPlayerID(v)
	return _u
}

// SetChallengeID sets the "challenge_id" field.
func (_u *AttemptUpdateOne) SetChallengeID(v string) *AttemptUpdateOne {
	_u.mutation.SetChallengeID(v)
	return _u
}

// SetNillableChallengeID sets the "challenge_id" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableChallengeID(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetChallengeID(*v)
	}
	return _u
}

// SetSkillCategory sets the "skill_category" field.
func (_u *AttemptUpdateOne) SetSkillCategory(v string) *AttemptUpdateOne {
	_u.mutation.SetSkillCategory(v)
	return _u
}

// SetNillableSkillCategory sets the "skill_category" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableSkillCategory(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetSkillCategory(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *AttemptUpdateOne) SetDifficulty(v string) *AttemptUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableDifficulty(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetSubmission sets the "submission" field.
func (_u *AttemptUpdateOne) SetSubmission(v string) *AttemptUpdateOne {
	_u.mutation.SetSubmission(v)
	return _u
}

// SetNillableSubmission sets the "submission" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableSubmission(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetSubmission(*v)
	}
	return _u
}

// SetValidatorScore sets the "validator_score" field.
func (_u *AttemptUpdateOne) SetValidatorScore(v int) *AttemptUpdateOne {
	_u.mutation.ResetValidatorScore()
	_u.mutation.SetValidatorScore(v)
	return _u
}

// SetNillableValidatorScore sets the "validator_score" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableValidatorScore(v *int) *AttemptUpdateOne {
	if v != nil {
		_u.SetValidatorScore(*v)
	}
	return _u
}

// AddValidatorScore adds value to the "validator_score" field.
func (_u *AttemptUpdateOne) AddValidatorScore(v int) *AttemptUpdateOne {
	_u.mutation.AddValidatorScore(v)
	return _u
}

// SetAiScore sets the "ai_score" field.
func (_u *AttemptUpdateOne) SetAiScore(v int) *AttemptUpdateOne {
	_u.mutation.ResetAiScore()
	_u.mutation.SetAiScore(v)
	return _u
}

// SetNillableAiScore sets the "ai_score" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableAiScore(v *int) *AttemptUpdateOne {
	if v != nil {
		_u.SetAiScore(*v)
	}
	return _u
}

// AddAiScore adds value to the "ai_score" field.
func (_u *AttemptUpdateOne) AddAiScore(v int) *AttemptUpdateOne {
	_u.mutation.AddAiScore(v)
	return _u
}

// SetAiAvailable sets the "ai_available" field.
func (_u *AttemptUpdateOne) SetAiAvailable(v bool) *AttemptUpdateOne {
	_u.mutation.SetAiAvailable(v)
	return _u
}

// SetNillableAiAvailable sets the "ai_available" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableAiAvailable(v *bool) *AttemptUpdateOne {
	if v != nil {
		_u.SetAiAvailable(*v)
	}
	return _u
}

// SetFinalScore sets the "final_score" field.
func (_u *AttemptUpdateOne) SetFinalScore(v int) *AttemptUpdateOne {
	_u.mutation.ResetFinalScore()
	_u.mutation.SetFinalScore(v)
	return _u
}

// SetNillableFinalScore sets the "final_score" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableFinalScore(v *int) *AttemptUpdateOne {
	if v != nil {
		_u.SetFinalScore(*v)
	}
	return _u
}

// AddFinalScore adds value to the "final_score" field.
func (_u *AttemptUpdateOne) AddFinalScore(v int) *AttemptUpdateOne {
	_u.mutation.AddFinalScore(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *AttemptUpdateOne) SetConfidence(v int) *AttemptUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableConfidence(v *int) *AttemptUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *AttemptUpdateOne) AddConfidence(v int) *AttemptUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *AttemptUpdateOne) SetRiskLevel(v string) *AttemptUpdateOne {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableRiskLevel(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// SetHintsUsed sets the "hints_used" field.
func (_u *AttemptUpdateOne) SetHintsUsed(v int) *AttemptUpdateOne {
	_u.mutation.ResetHintsUsed()
	_u.mutation.SetHintsUsed(v)
	return _u
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableHintsUsed(v *int) *AttemptUpdateOne {
	if v != nil {
		_u.SetHintsUsed(*v)
	}
	return _u
}

// AddHintsUsed adds value to the "hints_used" field.
func (_u *AttemptUpdateOne) AddHintsUsed(v int) *AttemptUpdateOne {
	_u.mutation.AddHintsUsed(v)
	return _u
}

// SetFeedbackHTML sets the "feedback_html" field.
func (_u *AttemptUpdateOne) SetFeedbackHTML(v string) *AttemptUpdateOne {
	_u.mutation.SetFeedbackHTML(v)
	return _u
}

// SetNillableFeedbackHTML sets the "feedback_html" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableFeedbackHTML(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetFeedbackHTML(*v)
	}
	return _u
}

// Mutation returns the AttemptMutation object of the builder.
func (_u *AttemptUpdateOne) Mutation() *AttemptMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptUpdate builder.
func (_u *AttemptUpdateOne) Where(ps ...predicate.Attempt) *AttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptUpdateOne) Select(field string, fields ...string) *AttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Attempt entity.
func (_u *AttemptUpdateOne) Save(ctx context.Context) (*Attempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptUpdateOne) SaveX(ctx context.Context) *Attempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AttemptUpdateOne) sqlSave(ctx context.Context) (_node *Attempt, err error) {
	_spec := sqlgraph.NewUpdateSpec(attempt.Table, attempt.Columns, sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Attempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attempt.FieldID)
		for _, f := range fields {
			if !attempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attempt.FieldID {
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
		_spec.SetField(attempt.FieldPlayerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlayerID(); ok {
		_spec.AddField(attempt.FieldPlayerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChallengeID(); ok {
		_spec.SetField(attempt.FieldChallengeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillCategory(); ok {
		_spec.SetField(attempt.FieldSkillCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(attempt.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Submission(); ok {
		_spec.SetField(attempt.FieldSubmission, field.TypeString, value)
	}
	if value, ok := _u.mutation.ValidatorScore(); ok {
		_spec.SetField(attempt.FieldValidatorScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedValidatorScore(); ok {
		_spec.AddField(attempt.FieldValidatorScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AiScore(); ok {
		_spec.SetField(attempt.FieldAiScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAiScore(); ok {
		_spec.AddField(attempt.FieldAiScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AiAvailable(); ok {
		_spec.SetField(attempt.FieldAiAvailable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FinalScore(); ok {
		_spec.SetField(attempt.FieldFinalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFinalScore(); ok {
		_spec.AddField(attempt.FieldFinalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(attempt.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(attempt.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(attempt.FieldRiskLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.HintsUsed(); ok {
		_spec.SetField(attempt.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsUsed(); ok {
		_spec.AddField(attempt.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FeedbackHTML(); ok {
		_spec.SetField(attempt.FieldFeedbackHTML, field.TypeString, value)
	}
	_node = &Attempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
