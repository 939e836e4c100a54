// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ssanyal/recruitdojo/ent/attempt"
)

// AttemptCreate is the builder for creating a Attempt entity.
type AttemptCreate struct {
	config
	mutation *AttemptMutation
	hooks    []Hook
}

// SetPlayerID sets the "player_id" field.
func (_c *AttemptCreate) SetPlayerID(v int) *AttemptCreate {
	_c.mutation.SetPlayerID(v)
	return _c
}

// SetChallengeID sets the "challenge_id" field.
func (_c *AttemptCreate) SetChallengeID(v string) *AttemptCreate {
	_c.mutation.SetChallengeID(v)
	return _c
}

// SetSkillCategory sets the "skill_category" field.
func (_c *AttemptCreate) SetSkillCategory(v string) *AttemptCreate {
	_c.mutation.SetSkillCategory(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *AttemptCreate) SetDifficulty(v string) *AttemptCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetSubmission sets the "submission" field.
func (_c *AttemptCreate) SetSubmission(v string) *AttemptCreate {
	_c.mutation.SetSubmission(v)
	return _c
}

// SetValidatorScore sets the "validator_score" field.
func (_c *AttemptCreate) SetValidatorScore(v int) *AttemptCreate {
	_c.mutation.SetValidatorScore(v)
	return _c
}

// SetAiScore sets the "ai_score" field.
func (_c *AttemptCreate) SetAiScore(v int) *AttemptCreate {
	_c.mutation.SetAiScore(v)
	return _c
}

// SetNillableAiScore sets the "ai_score" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableAiScore(v *int) *AttemptCreate {
	if v != nil {
		_c.SetAiScore(*v)
	}
	return _c
}

// SetAiAvailable sets the "ai_available" field.
func (_c *AttemptCreate) SetAiAvailable(v bool) *AttemptCreate {
	_c.mutation.SetAiAvailable(v)
	return _c
}

// SetNillableAiAvailable sets the "ai_available" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableAiAvailable(v *bool) *AttemptCreate {
	if v != nil {
		_c.SetAiAvailable(*v)
	}
	return _c
}

// SetFinalScore sets the "final_score" field.
func (_c *AttemptCreate) SetFinalScore(v int) *AttemptCreate {
	_c.mutation.SetFinalScore(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *AttemptCreate) SetConfidence(v int) *AttemptCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableConfidence(v *int) *AttemptCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetRiskLevel sets the "risk_level" field.
func (_c *AttemptCreate) SetRiskLevel(v string) *AttemptCreate {
	_c.mutation.SetRiskLevel(v)
	return _c
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableRiskLevel(v *string) *AttemptCreate {
	if v != nil {
		_c.SetRiskLevel(*v)
	}
	return _c
}

// SetHintsUsed sets the "hints_used" field.
func (_c *AttemptCreate) SetHintsUsed(v int) *AttemptCreate {
	_c.mutation.SetHintsUsed(v)
	return _c
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableHintsUsed(v *int) *AttemptCreate {
	if v != nil {
		_c.SetHintsUsed(*v)
	}
	return _c
}

// SetFeedbackHTML sets the "feedback_html" field.
func (_c *AttemptCreate) SetFeedbackHTML(v string) *AttemptCreate {
	_c.mutation.SetFeedbackHTML(v)
	return _c
}

// SetNillableFeedbackHTML sets the "feedback_html" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableFeedbackHTML(v *string) *AttemptCreate {
	if v != nil {
		_c.SetFeedbackHTML(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AttemptCreate) SetCreatedAt(v time.Time) *AttemptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableCreatedAt(v *time.Time) *AttemptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the AttemptMutation object of the builder.
func (_c *AttemptCreate) Mutation() *AttemptMutation {
	return _c.mutation
}

// Save creates the Attempt in the database.
func (_c *AttemptCreate) Save(ctx context.Context) (*Attempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttemptCreate) SaveX(ctx context.Context) *Attempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttemptCreate) defaults() {
	if _, ok := _c.mutation.AiScore(); !ok {
		v := attempt.DefaultAiScore
		_c.mutation.SetAiScore(v)
	}
	if _, ok := _c.mutation.AiAvailable(); !ok {
		v := attempt.DefaultAiAvailable
		_c.mutation.SetAiAvailable(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := attempt.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.RiskLevel(); !ok {
		v := attempt.DefaultRiskLevel
		_c.mutation.SetRiskLevel(v)
	}
	if _, ok := _c.mutation.HintsUsed(); !ok {
		v := attempt.DefaultHintsUsed
		_c.mutation.SetHintsUsed(v)
	}
	if _, ok := _c.mutation.FeedbackHTML(); !ok {
		v := attempt.DefaultFeedbackHTML
		_c.mutation.SetFeedbackHTML(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := attempt.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttemptCreate) check() error {
	if _, ok := _c.mutation.PlayerID(); !ok {
		return &ValidationError{Name: "player_id", err: errors.New(`ent: missing required field "Attempt.player_id"`)}
	}
	if _, ok := _c.mutation.ChallengeID(); !ok {
		return &ValidationError{Name: "challenge_id", err: errors.New(`ent: missing required field "Attempt.challenge_id"`)}
	}
	if _, ok := _c.mutation.SkillCategory(); !ok {
		return &ValidationError{Name: "skill_category", err: errors.New(`ent: missing required field "Attempt.skill_category"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Attempt.difficulty"`)}
	}
	if _, ok := _c.mutation.Submission(); !ok {
		return &ValidationError{Name: "submission", err: errors.New(`ent: missing required field "Attempt.submission"`)}
	}
	if _, ok := _c.mutation.ValidatorScore(); !ok {
		return &ValidationError{Name: "validator_score", err: errors.New(`ent: missing required field "Attempt.validator_score"`)}
	}
	if _, ok := _c.mutation.AiScore(); !ok {
		return &ValidationError{Name: "ai_score", err: errors.New(`ent: missing required field "Attempt.ai_score"`)}
	}
	if _, ok := _c.mutation.AiAvailable(); !ok {
		return &ValidationError{Name: "ai_available", err: errors.New(`ent: missing required field "Attempt.ai_available"`)}
	}
	if _, ok := _c.mutation.FinalScore(); !ok {
		return &ValidationError{Name: "final_score", err: errors.New(`ent: missing required field "Attempt.final_score"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "Attempt.confidence"`)}
	}
	if _, ok := _c.mutation.RiskLevel(); !ok {
		return &ValidationError{Name: "risk_level", err: errors.New(`ent: missing required field "Attempt.risk_level"`)}
	}
	if _, ok := _c.mutation.HintsUsed(); !ok {
		return &ValidationError{Name: "hints_used", err: errors.New(`ent: missing required field "Attempt.hints_used"`)}
	}
	if _, ok := _c.mutation.FeedbackHTML(); !ok {
		return &ValidationError{Name: "feedback_html", err: errors.New(`ent: missing required field "Attempt.feedback_html"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Attempt.created_at"`)}
	}
	return nil
}

func (_c *AttemptCreate) sqlSave(ctx context.Context) (*Attempt, error) {
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

func (_c *AttemptCreate) createSpec() (*Attempt, *sqlgraph.CreateSpec) {
	var (
		_node = &Attempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attempt.Table, sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.PlayerID(); ok {
		_spec.SetField(attempt.FieldPlayerID, field.TypeInt, value)
		_node.PlayerID = value
	}
	if value, ok := _c.mutation.ChallengeID(); ok {
		_spec.SetField(attempt.FieldChallengeID, field.TypeString, value)
		_node.ChallengeID = value
	}
	if value, ok := _c.mutation.SkillCategory(); ok {
		_spec.SetField(attempt.FieldSkillCategory, field.TypeString, value)
		_node.SkillCategory = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(attempt.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Submission(); ok {
		_spec.SetField(attempt.FieldSubmission, field.TypeString, value)
		_node.Submission = value
	}
	if value, ok := _c.mutation.ValidatorScore(); ok {
		_spec.SetField(attempt.FieldValidatorScore, field.TypeInt, value)
		_node.ValidatorScore = value
	}
	if value, ok := _c.mutation.AiScore(); ok {
		_spec.SetField(attempt.FieldAiScore, field.TypeInt, value)
		_node.AiScore = value
	}
	if value, ok := _c.mutation.AiAvailable(); ok {
		_spec.SetField(attempt.FieldAiAvailable, field.TypeBool, value)
		_node.AiAvailable = value
	}
	if value, ok := _c.mutation.FinalScore(); ok {
		_spec.SetField(attempt.FieldFinalScore, field.TypeInt, value)
		_node.FinalScore = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(attempt.FieldConfidence, field.TypeInt, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.RiskLevel(); ok {
		_spec.SetField(attempt.FieldRiskLevel, field.TypeString, value)
		_node.RiskLevel = value
	}
	if value, ok := _c.mutation.HintsUsed(); ok {
		_spec.SetField(attempt.FieldHintsUsed, field.TypeInt, value)
		_node.HintsUsed = value
	}
	if value, ok := _c.mutation.FeedbackHTML(); ok {
		_spec.SetField(attempt.FieldFeedbackHTML, field.TypeString, value)
		_node.FeedbackHTML = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(attempt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// AttemptCreateBulk is the builder for creating many Attempt entities in bulk.
type AttemptCreateBulk struct {
	config
	err      error
	builders []*AttemptCreate
}

// Save creates the Attempt entities in the database.
func (_c *AttemptCreateBulk) Save(ctx context.Context) ([]*Attempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Attempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptMutation)
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
func (_c *AttemptCreateBulk) SaveX(ctx context.Context) []*Attempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
