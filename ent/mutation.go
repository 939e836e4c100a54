// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/ssanyal/recruitdojo/ent/attempt"
	"github.com/ssanyal/recruitdojo/ent/calibration"
	"github.com/ssanyal/recruitdojo/ent/difficultyprofile"
	"github.com/ssanyal/recruitdojo/ent/llmrequestevent"
	"github.com/ssanyal/recruitdojo/ent/player"
	"github.com/ssanyal/recruitdojo/ent/predicate"
	"github.com/ssanyal/recruitdojo/ent/referenceanswer"
	"github.com/ssanyal/recruitdojo/ent/skillmemory"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAttempt           = "Attempt"
	TypeCalibration       = "Calibration"
	TypeDifficultyProfile = "DifficultyProfile"
	TypeLLMRequestEvent   = "LLMRequestEvent"
	TypePlayer            = "Player"
	TypeReferenceAnswer   = "ReferenceAnswer"
	TypeSkillMemory       = "SkillMemory"
)

// AttemptMutation represents an operation that mutates the Attempt nodes in the graph.
type AttemptMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	player_id          *int
	addplayer_id       *int
	challenge_id       *string
	skill_category     *string
	difficulty         *string
	submission         *string
	validator_score    *int
	addvalidator_score *int
	ai_score           *int
	addai_score        *int
	ai_available       *bool
	final_score        *int
	addfinal_score     *int
	confidence         *int
	addconfidence      *int
	risk_level         *string
	hints_used         *int
	addhints_used      *int
	feedback_html      *string
	created_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Attempt, error)
	predicates         []predicate.Attempt
}

var _ ent.Mutation = (*AttemptMutation)(nil)

// attemptOption allows management of the mutation configuration using functional options.
type attemptOption func(*AttemptMutation)

// newAttemptMutation creates new mutation for the Attempt entity.
func newAttemptMutation(c config, op Op, opts ...attemptOption) *AttemptMutation {
	m := &AttemptMutation{
		config:        c,
		op:            op,
		typ:           TypeAttempt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAttemptID sets the ID field of the mutation.
func withAttemptID(id int) attemptOption {
	return func(m *AttemptMutation) {
		var (
			err   error
			once  sync.Once
			value *Attempt
		)
		m.oldValue = func(ctx context.Context) (*Attempt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Attempt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAttempt sets the old Attempt of the mutation.
func withAttempt(node *Attempt) attemptOption {
	return func(m *AttemptMutation) {
		m.oldValue = func(context.Context) (*Attempt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AttemptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AttemptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AttemptMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AttemptMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Attempt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPlayerID sets the "player_id" field.
func (m *AttemptMutation) SetPlayerID(i int) {
	m.player_id = &i
	m.addplayer_id = nil
}

// PlayerID returns the value of the "player_id" field in the mutation.
func (m *AttemptMutation) PlayerID() (r int, exists bool) {
	v := m.player_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPlayerID returns the old "player_id" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldPlayerID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlayerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlayerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlayerID: %w", err)
	}
	return oldValue.PlayerID, nil
}

// AddPlayerID adds i to the "player_id" field.
func (m *AttemptMutation) AddPlayerID(i int) {
	if m.addplayer_id != nil {
		*m.addplayer_id += i
	} else {
		m.addplayer_id = &i
	}
}

// AddedPlayerID returns the value that was added to the "player_id" field in this mutation.
func (m *AttemptMutation) AddedPlayerID() (r int, exists bool) {
	v := m.addplayer_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetPlayerID resets all changes to the "player_id" field.
func (m *AttemptMutation) ResetPlayerID() {
	m.player_id = nil
	m.addplayer_id = nil
}

// SetChallengeID sets the "challenge_id" field.
func (m *AttemptMutation) SetChallengeID(s string) {
	m.challenge_id = &s
}

// ChallengeID returns the value of the "challenge_id" field in the mutation.
func (m *AttemptMutation) ChallengeID() (r string, exists bool) {
	v := m.challenge_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChallengeID returns the old "challenge_id" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldChallengeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChallengeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChallengeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChallengeID: %w", err)
	}
	return oldValue.ChallengeID, nil
}

// ResetChallengeID resets all changes to the "challenge_id" field.
func (m *AttemptMutation) ResetChallengeID() {
	m.challenge_id = nil
}

// SetSkillCategory sets the "skill_category" field.
func (m *AttemptMutation) SetSkillCategory(s string) {
	m.skill_category = &s
}

// SkillCategory returns the value of the "skill_category" field in the mutation.
func (m *AttemptMutation) SkillCategory() (r string, exists bool) {
	v := m.skill_category
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillCategory returns the old "skill_category" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldSkillCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillCategory: %w", err)
	}
	return oldValue.SkillCategory, nil
}

// ResetSkillCategory resets all changes to the "skill_category" field.
func (m *AttemptMutation) ResetSkillCategory() {
	m.skill_category = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *AttemptMutation) SetDifficulty(s string) {
	m.difficulty = &s
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *AttemptMutation) Difficulty() (r string, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldDifficulty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *AttemptMutation) ResetDifficulty() {
	m.difficulty = nil
}

// SetSubmission sets the "submission" field.
func (m *AttemptMutation) SetSubmission(s string) {
	m.submission = &s
}

// Submission returns the value of the "submission" field in the mutation.
func (m *AttemptMutation) Submission() (r string, exists bool) {
	v := m.submission
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmission returns the old "submission" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldSubmission(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmission is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmission requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmission: %w", err)
	}
	return oldValue.Submission, nil
}

// ResetSubmission resets all changes to the "submission" field.
func (m *AttemptMutation) ResetSubmission() {
	m.submission = nil
}

// SetValidatorScore sets the "validator_score" field.
func (m *AttemptMutation) SetValidatorScore(i int) {
	m.validator_score = &i
	m.addvalidator_score = nil
}

// ValidatorScore returns the value of the "validator_score" field in the mutation.
func (m *AttemptMutation) ValidatorScore() (r int, exists bool) {
	v := m.validator_score
	if v == nil {
		return
	}
	return *v, true
}

// OldValidatorScore returns the old "validator_score" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldValidatorScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidatorScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidatorScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidatorScore: %w", err)
	}
	return oldValue.ValidatorScore, nil
}

// AddValidatorScore adds i to the "validator_score" field.
func (m *AttemptMutation) AddValidatorScore(i int) {
	if m.addvalidator_score != nil {
		*m.addvalidator_score += i
	} else {
		m.addvalidator_score = &i
	}
}

// AddedValidatorScore returns the value that was added to the "validator_score" field in this mutation.
func (m *AttemptMutation) AddedValidatorScore() (r int, exists bool) {
	v := m.addvalidator_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetValidatorScore resets all changes to the "validator_score" field.
func (m *AttemptMutation) ResetValidatorScore() {
	m.validator_score = nil
	m.addvalidator_score = nil
}

// SetAiScore sets the "ai_score" field.
func (m *AttemptMutation) SetAiScore(i int) {
	m.ai_score = &i
	m.addai_score = nil
}

// AiScore returns the value of the "ai_score" field in the mutation.
func (m *AttemptMutation) AiScore() (r int, exists bool) {
	v := m.ai_score
	if v == nil {
		return
	}
	return *v, true
}

// OldAiScore returns the old "ai_score" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldAiScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiScore: %w", err)
	}
	return oldValue.AiScore, nil
}

// AddAiScore adds i to the "ai_score" field.
func (m *AttemptMutation) AddAiScore(i int) {
	if m.addai_score != nil {
		*m.addai_score += i
	} else {
		m.addai_score = &i
	}
}

// AddedAiScore returns the value that was added to the "ai_score" field in this mutation.
func (m *AttemptMutation) AddedAiScore() (r int, exists bool) {
	v := m.addai_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetAiScore resets all changes to the "ai_score" field.
func (m *AttemptMutation) ResetAiScore() {
	m.ai_score = nil
	m.addai_score = nil
}

// SetAiAvailable sets the "ai_available" field.
func (m *AttemptMutation) SetAiAvailable(b bool) {
	m.ai_available = &b
}

// AiAvailable returns the value of the "ai_available" field in the mutation.
func (m *AttemptMutation) AiAvailable() (r bool, exists bool) {
	v := m.ai_available
	if v == nil {
		return
	}
	return *v, true
}

// OldAiAvailable returns the old "ai_available" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldAiAvailable(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiAvailable is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiAvailable requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiAvailable: %w", err)
	}
	return oldValue.AiAvailable, nil
}

// ResetAiAvailable resets all changes to the "ai_available" field.
func (m *AttemptMutation) ResetAiAvailable() {
	m.ai_available = nil
}

// SetFinalScore sets the "final_score" field.
func (m *AttemptMutation) SetFinalScore(i int) {
	m.final_score = &i
	m.addfinal_score = nil
}

// FinalScore returns the value of the "final_score" field in the mutation.
func (m *AttemptMutation) FinalScore() (r int, exists bool) {
	v := m.final_score
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalScore returns the old "final_score" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldFinalScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalScore: %w", err)
	}
	return oldValue.FinalScore, nil
}

// AddFinalScore adds i to the "final_score" field.
func (m *AttemptMutation) AddFinalScore(i int) {
	if m.addfinal_score != nil {
		*m.addfinal_score += i
	} else {
		m.addfinal_score = &i
	}
}

// AddedFinalScore returns the value that was added to the "final_score" field in this mutation.
func (m *AttemptMutation) AddedFinalScore() (r int, exists bool) {
	v := m.addfinal_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetFinalScore resets all changes to the "final_score" field.
func (m *AttemptMutation) ResetFinalScore() {
	m.final_score = nil
	m.addfinal_score = nil
}

// SetConfidence sets the "confidence" field.
func (m *AttemptMutation) SetConfidence(i int) {
	m.confidence = &i
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *AttemptMutation) Confidence() (r int, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldConfidence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds i to the "confidence" field.
func (m *AttemptMutation) AddConfidence(i int) {
	if m.addconfidence != nil {
		*m.addconfidence += i
	} else {
		m.addconfidence = &i
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *AttemptMutation) AddedConfidence() (r int, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *AttemptMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetRiskLevel sets the "risk_level" field.
func (m *AttemptMutation) SetRiskLevel(s string) {
	m.risk_level = &s
}

// RiskLevel returns the value of the "risk_level" field in the mutation.
func (m *AttemptMutation) RiskLevel() (r string, exists bool) {
	v := m.risk_level
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskLevel returns the old "risk_level" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldRiskLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskLevel: %w", err)
	}
	return oldValue.RiskLevel, nil
}

// ResetRiskLevel resets all changes to the "risk_level" field.
func (m *AttemptMutation) ResetRiskLevel() {
	m.risk_level = nil
}

// SetHintsUsed sets the "hints_used" field.
func (m *AttemptMutation) SetHintsUsed(i int) {
	m.hints_used = &i
	m.addhints_used = nil
}

// HintsUsed returns the value of the "hints_used" field in the mutation.
func (m *AttemptMutation) HintsUsed() (r int, exists bool) {
	v := m.hints_used
	if v == nil {
		return
	}
	return *v, true
}

// OldHintsUsed returns the old "hints_used" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldHintsUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHintsUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHintsUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHintsUsed: %w", err)
	}
	return oldValue.HintsUsed, nil
}

// AddHintsUsed adds i to the "hints_used" field.
func (m *AttemptMutation) AddHintsUsed(i int) {
	if m.addhints_used != nil {
		*m.addhints_used += i
	} else {
		m.addhints_used = &i
	}
}

// AddedHintsUsed returns the value that was added to the "hints_used" field in this mutation.
func (m *AttemptMutation) AddedHintsUsed() (r int, exists bool) {
	v := m.addhints_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetHintsUsed resets all changes to the "hints_used" field.
func (m *AttemptMutation) ResetHintsUsed() {
	m.hints_used = nil
	m.addhints_used = nil
}

// SetFeedbackHTML sets the "feedback_html" field.
func (m *AttemptMutation) SetFeedbackHTML(s string) {
	m.feedback_html = &s
}

// FeedbackHTML returns the value of the "feedback_html" field in the mutation.
func (m *AttemptMutation) FeedbackHTML() (r string, exists bool) {
	v := m.feedback_html
	if v == nil {
		return
	}
	return *v, true
}

// OldFeedbackHTML returns the old "feedback_html" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldFeedbackHTML(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeedbackHTML is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeedbackHTML requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeedbackHTML: %w", err)
	}
	return oldValue.FeedbackHTML, nil
}

// ResetFeedbackHTML resets all changes to the "feedback_html" field.
func (m *AttemptMutation) ResetFeedbackHTML() {
	m.feedback_html = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AttemptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AttemptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AttemptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AttemptMutation builder.
func (m *AttemptMutation) Where(ps ...predicate.Attempt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AttemptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AttemptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Attempt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AttemptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AttemptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Attempt).
func (m *AttemptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AttemptMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.player_id != nil {
		fields = append(fields, attempt.FieldPlayerID)
	}
	if m.challenge_id != nil {
		fields = append(fields, attempt.FieldChallengeID)
	}
	if m.skill_category != nil {
		fields = append(fields, attempt.FieldSkillCategory)
	}
	if m.difficulty != nil {
		fields = append(fields, attempt.FieldDifficulty)
	}
	if m.submission != nil {
		fields = append(fields, attempt.FieldSubmission)
	}
	if m.validator_score != nil {
		fields = append(fields, attempt.FieldValidatorScore)
	}
	if m.ai_score != nil {
		fields = append(fields, attempt.FieldAiScore)
	}
	if m.ai_available != nil {
		fields = append(fields, attempt.FieldAiAvailable)
	}
	if m.final_score != nil {
		fields = append(fields, attempt.FieldFinalScore)
	}
	if m.confidence != nil {
		fields = append(fields, attempt.FieldConfidence)
	}
	if m.risk_level != nil {
		fields = append(fields, attempt.FieldRiskLevel)
	}
	if m.hints_used != nil {
		fields = append(fields, attempt.FieldHintsUsed)
	}
	if m.feedback_html != nil {
		fields = append(fields, attempt.FieldFeedbackHTML)
	}
	if m.created_at != nil {
		fields = append(fields, attempt.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AttemptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case attempt.FieldPlayerID:
		return m.PlayerID()
	case attempt.FieldChallengeID:
		return m.ChallengeID()
	case attempt.FieldSkillCategory:
		return m.SkillCategory()
	case attempt.FieldDifficulty:
		return m.Difficulty()
	case attempt.FieldSubmission:
		return m.Submission()
	case attempt.FieldValidatorScore:
		return m.ValidatorScore()
	case attempt.FieldAiScore:
		return m.AiScore()
	case attempt.FieldAiAvailable:
		return m.AiAvailable()
	case attempt.FieldFinalScore:
		return m.FinalScore()
	case attempt.FieldConfidence:
		return m.Confidence()
	case attempt.FieldRiskLevel:
		return m.RiskLevel()
	case attempt.FieldHintsUsed:
		return m.HintsUsed()
	case attempt.FieldFeedbackHTML:
		return m.FeedbackHTML()
	case attempt.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AttemptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case attempt.FieldPlayerID:
		return m.OldPlayerID(ctx)
	case attempt.FieldChallengeID:
		return m.OldChallengeID(ctx)
	case attempt.FieldSkillCategory:
		return m.OldSkillCategory(ctx)
	case attempt.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case attempt.FieldSubmission:
		return m.OldSubmission(ctx)
	case attempt.FieldValidatorScore:
		return m.OldValidatorScore(ctx)
	case attempt.FieldAiScore:
		return m.OldAiScore(ctx)
	case attempt.FieldAiAvailable:
		return m.OldAiAvailable(ctx)
	case attempt.FieldFinalScore:
		return m.OldFinalScore(ctx)
	case attempt.FieldConfidence:
		return m.OldConfidence(ctx)
	case attempt.FieldRiskLevel:
		return m.OldRiskLevel(ctx)
	case attempt.FieldHintsUsed:
		return m.OldHintsUsed(ctx)
	case attempt.FieldFeedbackHTML:
		return m.OldFeedbackHTML(ctx)
	case attempt.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Attempt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case attempt.FieldPlayerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlayerID(v)
		return nil
	case attempt.FieldChallengeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChallengeID(v)
		return nil
	case attempt.FieldSkillCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillCategory(v)
		return nil
	case attempt.FieldDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case attempt.FieldSubmission:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmission(v)
		return nil
	case attempt.FieldValidatorScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidatorScore(v)
		return nil
	case attempt.FieldAiScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiScore(v)
		return nil
	case attempt.FieldAiAvailable:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiAvailable(v)
		return nil
	case attempt.FieldFinalScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalScore(v)
		return nil
	case attempt.FieldConfidence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case attempt.FieldRiskLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskLevel(v)
		return nil
	case attempt.FieldHintsUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHintsUsed(v)
		return nil
	case attempt.FieldFeedbackHTML:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeedbackHTML(v)
		return nil
	case attempt.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Attempt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AttemptMutation) AddedFields() []string {
	var fields []string
	if m.addplayer_id != nil {
		fields = append(fields, attempt.FieldPlayerID)
	}
	if m.addvalidator_score != nil {
		fields = append(fields, attempt.FieldValidatorScore)
	}
	if m.addai_score != nil {
		fields = append(fields, attempt.FieldAiScore)
	}
	if m.addfinal_score != nil {
		fields = append(fields, attempt.FieldFinalScore)
	}
	if m.addconfidence != nil {
		fields = append(fields, attempt.FieldConfidence)
	}
	if m.addhints_used != nil {
		fields = append(fields, attempt.FieldHintsUsed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AttemptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case attempt.FieldPlayerID:
		return m.AddedPlayerID()
	case attempt.FieldValidatorScore:
		return m.AddedValidatorScore()
	case attempt.FieldAiScore:
		return m.AddedAiScore()
	case attempt.FieldFinalScore:
		return m.AddedFinalScore()
	case attempt.FieldConfidence:
		return m.AddedConfidence()
	case attempt.FieldHintsUsed:
		return m.AddedHintsUsed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case attempt.FieldPlayerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPlayerID(v)
		return nil
	case attempt.FieldValidatorScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddValidatorScore(v)
		return nil
	case attempt.FieldAiScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAiScore(v)
		return nil
	case attempt.FieldFinalScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFinalScore(v)
		return nil
	case attempt.FieldConfidence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case attempt.FieldHintsUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHintsUsed(v)
		return nil
	}
	return fmt.Errorf("unknown Attempt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AttemptMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AttemptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AttemptMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Attempt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AttemptMutation) ResetField(name string) error {
	switch name {
	case attempt.FieldPlayerID:
		m.ResetPlayerID()
		return nil
	case attempt.FieldChallengeID:
		m.ResetChallengeID()
		return nil
	case attempt.FieldSkillCategory:
		m.ResetSkillCategory()
		return nil
	case attempt.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case attempt.FieldSubmission:
		m.ResetSubmission()
		return nil
	case attempt.FieldValidatorScore:
		m.ResetValidatorScore()
		return nil
	case attempt.FieldAiScore:
		m.ResetAiScore()
		return nil
	case attempt.FieldAiAvailable:
		m.ResetAiAvailable()
		return nil
	case attempt.FieldFinalScore:
		m.ResetFinalScore()
		return nil
	case attempt.FieldConfidence:
		m.ResetConfidence()
		return nil
	case attempt.FieldRiskLevel:
		m.ResetRiskLevel()
		return nil
	case attempt.FieldHintsUsed:
		m.ResetHintsUsed()
		return nil
	case attempt.FieldFeedbackHTML:
		m.ResetFeedbackHTML()
		return nil
	case attempt.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Attempt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AttemptMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AttemptMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AttemptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AttemptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AttemptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AttemptMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AttemptMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Attempt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AttemptMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Attempt edge %s", name)
}

// CalibrationMutation represents an operation that mutates the Calibration nodes in the graph.
type CalibrationMutation struct {
	config
	op              Op
	typ             string
	id              *int
	challenge_id    *string
	_offset         *float64
	add_offset      *float64
	sample_count    *int
	addsample_count *int
	mean            *float64
	addmean         *float64
	median          *float64
	addmedian       *float64
	stddev          *float64
	addstddev       *float64
	p25             *float64
	addp25          *float64
	p75             *float64
	addp75          *float64
	confidence      *float64
	addconfidence   *float64
	needs_review    *bool
	computed_at     *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Calibration, error)
	predicates      []predicate.Calibration
}

var _ ent.Mutation = (*CalibrationMutation)(nil)

// calibrationOption allows management of the mutation configuration using functional options.
type calibrationOption func(*CalibrationMutation)

// newCalibrationMutation creates new mutation for the Calibration entity.
func newCalibrationMutation(c config, op Op, opts ...calibrationOption) *CalibrationMutation {
	m := &CalibrationMutation{
		config:        c,
		op:            op,
		typ:           TypeCalibration,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCalibrationID sets the ID field of the mutation.
func withCalibrationID(id int) calibrationOption {
	return func(m *CalibrationMutation) {
		var (
			err   error
			once  sync.Once
			value *Calibration
		)
		m.oldValue = func(ctx context.Context) (*Calibration, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Calibration.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCalibration sets the old Calibration of the mutation.
func withCalibration(node *Calibration) calibrationOption {
	return func(m *CalibrationMutation) {
		m.oldValue = func(context.Context) (*Calibration, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CalibrationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CalibrationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CalibrationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CalibrationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Calibration.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChallengeID sets the "challenge_id" field.
func (m *CalibrationMutation) SetChallengeID(s string) {
	m.challenge_id = &s
}

// ChallengeID returns the value of the "challenge_id" field in the mutation.
func (m *CalibrationMutation) ChallengeID() (r string, exists bool) {
	v := m.challenge_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChallengeID returns the old "challenge_id" field's value of the Calibration entity.
// If the Calibration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalibrationMutation) OldChallengeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChallengeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChallengeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChallengeID: %w", err)
	}
	return oldValue.ChallengeID, nil
}

// ResetChallengeID resets all changes to the "challenge_id" field.
func (m *CalibrationMutation) ResetChallengeID() {
	m.challenge_id = nil
}

// SetOffset sets the "offset" field.
func (m *CalibrationMutation) SetOffset(f float64) {
	m._offset = &f
	m.add_offset = nil
}

// Offset returns the value of the "offset" field in the mutation.
func (m *CalibrationMutation) Offset() (r float64, exists bool) {
	v := m._offset
	if v == nil {
		return
	}
	return *v, true
}

// OldOffset returns the old "offset" field's value of the Calibration entity.
// If the Calibration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalibrationMutation) OldOffset(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOffset is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOffset requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOffset: %w", err)
	}
	return oldValue.Offset, nil
}

// AddOffset adds f to the "offset" field.
func (m *CalibrationMutation) AddOffset(f float64) {
	if m.add_offset != nil {
		*m.add_offset += f
	} else {
		m.add_offset = &f
	}
}

// AddedOffset returns the value that was added to the "offset" field in this mutation.
func (m *CalibrationMutation) AddedOffset() (r float64, exists bool) {
	v := m.add_offset
	if v == nil {
		return
	}
	return *v, true
}

// ResetOffset resets all changes to the "offset" field.
func (m *CalibrationMutation) ResetOffset() {
	m._offset = nil
	m.add_offset = nil
}

// SetSampleCount sets the "sample_count" field.
func (m *CalibrationMutation) SetSampleCount(i int) {
	m.sample_count = &i
	m.addsample_count = nil
}

// SampleCount returns the value of the "sample_count" field in the mutation.
func (m *CalibrationMutation) SampleCount() (r int, exists bool) {
	v := m.sample_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSampleCount returns the old "sample_count" field's value of the Calibration entity.
// If the Calibration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalibrationMutation) OldSampleCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSampleCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSampleCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSampleCount: %w", err)
	}
	return oldValue.SampleCount, nil
}

// AddSampleCount adds i to the "sample_count" field.
func (m *CalibrationMutation) AddSampleCount(i int) {
	if m.addsample_count != nil {
		*m.addsample_count += i
	} else {
		m.addsample_count = &i
	}
}

// AddedSampleCount returns the value that was added to the "sample_count" field in this mutation.
func (m *CalibrationMutation) AddedSampleCount() (r int, exists bool) {
	v := m.addsample_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSampleCount resets all changes to the "sample_count" field.
func (m *CalibrationMutation) ResetSampleCount() {
	m.sample_count = nil
	m.addsample_count = nil
}

// SetMean sets the "mean" field.
func (m *CalibrationMutation) SetMean(f float64) {
	m.mean = &f
	m.addmean = nil
}

// Mean returns the value of the "mean" field in the mutation.
func (m *CalibrationMutation) Mean() (r float64, exists bool) {
	v := m.mean
	if v == nil {
		return
	}
	return *v, true
}

// OldMean returns the old "mean" field's value of the Calibration entity.
// If the Calibration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalibrationMutation) OldMean(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMean is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMean requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMean: %w", err)
	}
	return oldValue.Mean, nil
}

// AddMean adds f to the "mean" field.
func (m *CalibrationMutation) AddMean(f float64) {
	if m.addmean != nil {
		*m.addmean += f
	} else {
		m.addmean = &f
	}
}

// AddedMean returns the value that was added to the "mean" field in this mutation.
func (m *CalibrationMutation) AddedMean() (r float64, exists bool) {
	v := m.addmean
	if v == nil {
		return
	}
	return *v, true
}

// ResetMean resets all changes to the "mean" field.
func (m *CalibrationMutation) ResetMean() {
	m.mean = nil
	m.addmean = nil
}

// SetMedian sets the "median" field.
func (m *CalibrationMutation) SetMedian(f float64) {
	m.median = &f
	m.addmedian = nil
}

// Median returns the value of the "median" field in the mutation.
func (m *CalibrationMutation) Median() (r float64, exists bool) {
	v := m.median
	if v == nil {
		return
	}
	return *v, true
}

// OldMedian returns the old "median" field's value of the Calibration entity.
// If the Calibration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalibrationMutation) OldMedian(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMedian is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMedian requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMedian: %w", err)
	}
	return oldValue.Median, nil
}

// AddMedian adds f to the "median" field.
func (m *CalibrationMutation) AddMedian(f float64) {
	if m.addmedian != nil {
		*m.addmedian += f
	} else {
		m.addmedian = &f
	}
}

// AddedMedian returns the value that was added to the "median" field in this mutation.
func (m *CalibrationMutation) AddedMedian() (r float64, exists bool) {
	v := m.addmedian
	if v == nil {
		return
	}
	return *v, true
}

// ResetMedian resets all changes to the "median" field.
func (m *CalibrationMutation) ResetMedian() {
	m.median = nil
	m.addmedian = nil
}

// SetStddev sets the "stddev" field.
func (m *CalibrationMutation) SetStddev(f float64) {
	m.stddev = &f
	m.addstddev = nil
}

// Stddev returns the value of the "stddev" field in the mutation.
func (m *CalibrationMutation) Stddev() (r float64, exists bool) {
	v := m.stddev
	if v == nil {
		return
	}
	return *v, true
}

// OldStddev returns the old "stddev" field's value of the Calibration entity.
// If the Calibration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalibrationMutation) OldStddev(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStddev is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStddev requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStddev: %w", err)
	}
	return oldValue.Stddev, nil
}

// AddStddev adds f to the "stddev" field.
func (m *CalibrationMutation) AddStddev(f float64) {
	if m.addstddev != nil {
		*m.addstddev += f
	} else {
		m.addstddev = &f
	}
}

// AddedStddev returns the value that was added to the "stddev" field in this mutation.
func (m *CalibrationMutation) AddedStddev() (r float64, exists bool) {
	v := m.addstddev
	if v == nil {
		return
	}
	return *v, true
}

// ResetStddev resets all changes to the "stddev" field.
func (m *CalibrationMutation) ResetStddev() {
	m.stddev = nil
	m.addstddev = nil
}

// SetP25 sets the "p25" field.
func (m *CalibrationMutation) SetP25(f float64) {
	m.p25 = &f
	m.addp25 = nil
}

// P25 returns the value of the "p25" field in the mutation.
func (m *CalibrationMutation) P25() (r float64, exists bool) {
	v := m.p25
	if v == nil {
		return
	}
	return *v, true
}

// OldP25 returns the old "p25" field's value of the Calibration entity.
// If the Calibration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalibrationMutation) OldP25(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldP25 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldP25 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldP25: %w", err)
	}
	return oldValue.P25, nil
}

// AddP25 adds f to the "p25" field.
func (m *CalibrationMutation) AddP25(f float64) {
	if m.addp25 != nil {
		*m.addp25 += f
	} else {
		m.addp25 = &f
	}
}

// AddedP25 returns the value that was added to the "p25" field in this mutation.
func (m *CalibrationMutation) AddedP25() (r float64, exists bool) {
	v := m.addp25
	if v == nil {
		return
	}
	return *v, true
}

// ResetP25 resets all changes to the "p25" field.
func (m *CalibrationMutation) ResetP25() {
	m.p25 = nil
	m.addp25 = nil
}

// SetP75 sets the "p75" field.
func (m *CalibrationMutation) SetP75(f float64) {
	m.p75 = &f
	m.addp75 = nil
}

// P75 returns the value of the "p75" field in the mutation.
func (m *CalibrationMutation) P75() (r float64, exists bool) {
	v := m.p75
	if v == nil {
		return
	}
	return *v, true
}

// OldP75 returns the old "p75" field's value of the Calibration entity.
// If the Calibration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalibrationMutation) OldP75(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldP75 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldP75 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldP75: %w", err)
	}
	return oldValue.P75, nil
}

// AddP75 adds f to the "p75" field.
func (m *CalibrationMutation) AddP75(f float64) {
	if m.addp75 != nil {
		*m.addp75 += f
	} else {
		m.addp75 = &f
	}
}

// AddedP75 returns the value that was added to the "p75" field in this mutation.
func (m *CalibrationMutation) AddedP75() (r float64, exists bool) {
	v := m.addp75
	if v == nil {
		return
	}
	return *v, true
}

// ResetP75 resets all changes to the "p75" field.
func (m *CalibrationMutation) ResetP75() {
	m.p75 = nil
	m.addp75 = nil
}

// SetConfidence sets the "confidence" field.
func (m *CalibrationMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *CalibrationMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Calibration entity.
// If the Calibration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalibrationMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *CalibrationMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *CalibrationMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *CalibrationMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetNeedsReview sets the "needs_review" field.
func (m *CalibrationMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *CalibrationMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the Calibration entity.
// If the Calibration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalibrationMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *CalibrationMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// SetComputedAt sets the "computed_at" field.
func (m *CalibrationMutation) SetComputedAt(t time.Time) {
	m.computed_at = &t
}

// ComputedAt returns the value of the "computed_at" field in the mutation.
func (m *CalibrationMutation) ComputedAt() (r time.Time, exists bool) {
	v := m.computed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldComputedAt returns the old "computed_at" field's value of the Calibration entity.
// If the Calibration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalibrationMutation) OldComputedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComputedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComputedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComputedAt: %w", err)
	}
	return oldValue.ComputedAt, nil
}

// ResetComputedAt resets all changes to the "computed_at" field.
func (m *CalibrationMutation) ResetComputedAt() {
	m.computed_at = nil
}

// Where appends a list predicates to the CalibrationMutation builder.
func (m *CalibrationMutation) Where(ps ...predicate.Calibration) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CalibrationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CalibrationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Calibration, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CalibrationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CalibrationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Calibration).
func (m *CalibrationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CalibrationMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.challenge_id != nil {
		fields = append(fields, calibration.FieldChallengeID)
	}
	if m._offset != nil {
		fields = append(fields, calibration.FieldOffset)
	}
	if m.sample_count != nil {
		fields = append(fields, calibration.FieldSampleCount)
	}
	if m.mean != nil {
		fields = append(fields, calibration.FieldMean)
	}
	if m.median != nil {
		fields = append(fields, calibration.FieldMedian)
	}
	if m.stddev != nil {
		fields = append(fields, calibration.FieldStddev)
	}
	if m.p25 != nil {
		fields = append(fields, calibration.FieldP25)
	}
	if m.p75 != nil {
		fields = append(fields, calibration.FieldP75)
	}
	if m.confidence != nil {
		fields = append(fields, calibration.FieldConfidence)
	}
	if m.needs_review != nil {
		fields = append(fields, calibration.FieldNeedsReview)
	}
	if m.computed_at != nil {
		fields = append(fields, calibration.FieldComputedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CalibrationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case calibration.FieldChallengeID:
		return m.ChallengeID()
	case calibration.FieldOffset:
		return m.Offset()
	case calibration.FieldSampleCount:
		return m.SampleCount()
	case calibration.FieldMean:
		return m.Mean()
	case calibration.FieldMedian:
		return m.Median()
	case calibration.FieldStddev:
		return m.Stddev()
	case calibration.FieldP25:
		return m.P25()
	case calibration.FieldP75:
		return m.P75()
	case calibration.FieldConfidence:
		return m.Confidence()
	case calibration.FieldNeedsReview:
		return m.NeedsReview()
	case calibration.FieldComputedAt:
		return m.ComputedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CalibrationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case calibration.FieldChallengeID:
		return m.OldChallengeID(ctx)
	case calibration.FieldOffset:
		return m.OldOffset(ctx)
	case calibration.FieldSampleCount:
		return m.OldSampleCount(ctx)
	case calibration.FieldMean:
		return m.OldMean(ctx)
	case calibration.FieldMedian:
		return m.OldMedian(ctx)
	case calibration.FieldStddev:
		return m.OldStddev(ctx)
	case calibration.FieldP25:
		return m.OldP25(ctx)
	case calibration.FieldP75:
		return m.OldP75(ctx)
	case calibration.FieldConfidence:
		return m.OldConfidence(ctx)
	case calibration.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	case calibration.FieldComputedAt:
		return m.OldComputedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Calibration field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CalibrationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case calibration.FieldChallengeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChallengeID(v)
		return nil
	case calibration.FieldOffset:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOffset(v)
		return nil
	case calibration.FieldSampleCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSampleCount(v)
		return nil
	case calibration.FieldMean:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMean(v)
		return nil
	case calibration.FieldMedian:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMedian(v)
		return nil
	case calibration.FieldStddev:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStddev(v)
		return nil
	case calibration.FieldP25:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetP25(v)
		return nil
	case calibration.FieldP75:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetP75(v)
		return nil
	case calibration.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case calibration.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	case calibration.FieldComputedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComputedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Calibration field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CalibrationMutation) AddedFields() []string {
	var fields []string
	if m.add_offset != nil {
		fields = append(fields, calibration.FieldOffset)
	}
	if m.addsample_count != nil {
		fields = append(fields, calibration.FieldSampleCount)
	}
	if m.addmean != nil {
		fields = append(fields, calibration.FieldMean)
	}
	if m.addmedian != nil {
		fields = append(fields, calibration.FieldMedian)
	}
	if m.addstddev != nil {
		fields = append(fields, calibration.FieldStddev)
	}
	if m.addp25 != nil {
		fields = append(fields, calibration.FieldP25)
	}
	if m.addp75 != nil {
		fields = append(fields, calibration.FieldP75)
	}
	if m.addconfidence != nil {
		fields = append(fields, calibration.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CalibrationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case calibration.FieldOffset:
		return m.AddedOffset()
	case calibration.FieldSampleCount:
		return m.AddedSampleCount()
	case calibration.FieldMean:
		return m.AddedMean()
	case calibration.FieldMedian:
		return m.AddedMedian()
	case calibration.FieldStddev:
		return m.AddedStddev()
	case calibration.FieldP25:
		return m.AddedP25()
	case calibration.FieldP75:
		return m.AddedP75()
	case calibration.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CalibrationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case calibration.FieldOffset:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOffset(v)
		return nil
	case calibration.FieldSampleCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSampleCount(v)
		return nil
	case calibration.FieldMean:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMean(v)
		return nil
	case calibration.FieldMedian:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMedian(v)
		return nil
	case calibration.FieldStddev:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStddev(v)
		return nil
	case calibration.FieldP25:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddP25(v)
		return nil
	case calibration.FieldP75:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddP75(v)
		return nil
	case calibration.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Calibration numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CalibrationMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CalibrationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CalibrationMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Calibration nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CalibrationMutation) ResetField(name string) error {
	switch name {
	case calibration.FieldChallengeID:
		m.ResetChallengeID()
		return nil
	case calibration.FieldOffset:
		m.ResetOffset()
		return nil
	case calibration.FieldSampleCount:
		m.ResetSampleCount()
		return nil
	case calibration.FieldMean:
		m.ResetMean()
		return nil
	case calibration.FieldMedian:
		m.ResetMedian()
		return nil
	case calibration.FieldStddev:
		m.ResetStddev()
		return nil
	case calibration.FieldP25:
		m.ResetP25()
		return nil
	case calibration.FieldP75:
		m.ResetP75()
		return nil
	case calibration.FieldConfidence:
		m.ResetConfidence()
		return nil
	case calibration.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	case calibration.FieldComputedAt:
		m.ResetComputedAt()
		return nil
	}
	return fmt.Errorf("unknown Calibration field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CalibrationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CalibrationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CalibrationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CalibrationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CalibrationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CalibrationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CalibrationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Calibration unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CalibrationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Calibration edge %s", name)
}

// DifficultyProfileMutation represents an operation that mutates the DifficultyProfile nodes in the graph.
type DifficultyProfileMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	player_id           *int
	addplayer_id        *int
	skill_category      *string
	difficulty          *string
	attempts            *int
	addattempts         *int
	avg_score           *float64
	addavg_score        *float64
	best_score          *int
	addbest_score       *int
	worst_score         *int
	addworst_score      *int
	high_scores         *int
	addhigh_scores      *int
	excellent_scores    *int
	addexcellent_scores *int
	streak              *int
	addstreak           *int
	confidence          *float64
	addconfidence       *float64
	recent              *[]int
	appendrecent        []int
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*DifficultyProfile, error)
	predicates          []predicate.DifficultyProfile
}

var _ ent.Mutation = (*DifficultyProfileMutation)(nil)

// difficultyprofileOption allows management of the mutation configuration using functional options.
type difficultyprofileOption func(*DifficultyProfileMutation)

// newDifficultyProfileMutation creates new mutation for the DifficultyProfile entity.
func newDifficultyProfileMutation(c config, op Op, opts ...difficultyprofileOption) *DifficultyProfileMutation {
	m := &DifficultyProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeDifficultyProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDifficultyProfileID sets the ID field of the mutation.
func withDifficultyProfileID(id int) difficultyprofileOption {
	return func(m *DifficultyProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *DifficultyProfile
		)
		m.oldValue = func(ctx context.Context) (*DifficultyProfile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DifficultyProfile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDifficultyProfile sets the old DifficultyProfile of the mutation.
func withDifficultyProfile(node *DifficultyProfile) difficultyprofileOption {
	return func(m *DifficultyProfileMutation) {
		m.oldValue = func(context.Context) (*DifficultyProfile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DifficultyProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DifficultyProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DifficultyProfileMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DifficultyProfileMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DifficultyProfile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPlayerID sets the "player_id" field.
func (m *DifficultyProfileMutation) SetPlayerID(i int) {
	m.player_id = &i
	m.addplayer_id = nil
}

// PlayerID returns the value of the "player_id" field in the mutation.
func (m *DifficultyProfileMutation) PlayerID() (r int, exists bool) {
	v := m.player_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPlayerID returns the old "player_id" field's value of the DifficultyProfile entity.
// If the DifficultyProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DifficultyProfileMutation) OldPlayerID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlayerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlayerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlayerID: %w", err)
	}
	return oldValue.PlayerID, nil
}

// AddPlayerID adds i to the "player_id" field.
func (m *DifficultyProfileMutation) AddPlayerID(i int) {
	if m.addplayer_id != nil {
		*m.addplayer_id += i
	} else {
		m.addplayer_id = &i
	}
}

// AddedPlayerID returns the value that was added to the "player_id" field in this mutation.
func (m *DifficultyProfileMutation) AddedPlayerID() (r int, exists bool) {
	v := m.addplayer_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetPlayerID resets all changes to the "player_id" field.
func (m *DifficultyProfileMutation) ResetPlayerID() {
	m.player_id = nil
	m.addplayer_id = nil
}

// SetSkillCategory sets the "skill_category" field.
func (m *DifficultyProfileMutation) SetSkillCategory(s string) {
	m.skill_category = &s
}

// SkillCategory returns the value of the "skill_category" field in the mutation.
func (m *DifficultyProfileMutation) SkillCategory() (r string, exists bool) {
	v := m.skill_category
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillCategory returns the old "skill_category" field's value of the DifficultyProfile entity.
// If the DifficultyProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DifficultyProfileMutation) OldSkillCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillCategory: %w", err)
	}
	return oldValue.SkillCategory, nil
}

// ResetSkillCategory resets all changes to the "skill_category" field.
func (m *DifficultyProfileMutation) ResetSkillCategory() {
	m.skill_category = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *DifficultyProfileMutation) SetDifficulty(s string) {
	m.difficulty = &s
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *DifficultyProfileMutation) Difficulty() (r string, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the DifficultyProfile entity.
// If the DifficultyProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DifficultyProfileMutation) OldDifficulty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *DifficultyProfileMutation) ResetDifficulty() {
	m.difficulty = nil
}

// SetAttempts sets the "attempts" field.
func (m *DifficultyProfileMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *DifficultyProfileMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the DifficultyProfile entity.
// If the DifficultyProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DifficultyProfileMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *DifficultyProfileMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *DifficultyProfileMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *DifficultyProfileMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetAvgScore sets the "avg_score" field.
func (m *DifficultyProfileMutation) SetAvgScore(f float64) {
	m.avg_score = &f
	m.addavg_score = nil
}

// AvgScore returns the value of the "avg_score" field in the mutation.
func (m *DifficultyProfileMutation) AvgScore() (r float64, exists bool) {
	v := m.avg_score
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgScore returns the old "avg_score" field's value of the DifficultyProfile entity.
// If the DifficultyProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DifficultyProfileMutation) OldAvgScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgScore: %w", err)
	}
	return oldValue.AvgScore, nil
}

// AddAvgScore adds f to the "avg_score" field.
func (m *DifficultyProfileMutation) AddAvgScore(f float64) {
	if m.addavg_score != nil {
		*m.addavg_score += f
	} else {
		m.addavg_score = &f
	}
}

// AddedAvgScore returns the value that was added to the "avg_score" field in this mutation.
func (m *DifficultyProfileMutation) AddedAvgScore() (r float64, exists bool) {
	v := m.addavg_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgScore resets all changes to the "avg_score" field.
func (m *DifficultyProfileMutation) ResetAvgScore() {
	m.avg_score = nil
	m.addavg_score = nil
}

// SetBestScore sets the "best_score" field.
func (m *DifficultyProfileMutation) SetBestScore(i int) {
	m.best_score = &i
	m.addbest_score = nil
}

// BestScore returns the value of the "best_score" field in the mutation.
func (m *DifficultyProfileMutation) BestScore() (r int, exists bool) {
	v := m.best_score
	if v == nil {
		return
	}
	return *v, true
}

// OldBestScore returns the old "best_score" field's value of the DifficultyProfile entity.
// If the DifficultyProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DifficultyProfileMutation) OldBestScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBestScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBestScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBestScore: %w", err)
	}
	return oldValue.BestScore, nil
}

// AddBestScore adds i to the "best_score" field.
func (m *DifficultyProfileMutation) AddBestScore(i int) {
	if m.addbest_score != nil {
		*m.addbest_score += i
	} else {
		m.addbest_score = &i
	}
}

// AddedBestScore returns the value that was added to the "best_score" field in this mutation.
func (m *DifficultyProfileMutation) AddedBestScore() (r int, exists bool) {
	v := m.addbest_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetBestScore resets all changes to the "best_score" field.
func (m *DifficultyProfileMutation) ResetBestScore() {
	m.best_score = nil
	m.addbest_score = nil
}

// SetWorstScore sets the "worst_score" field.
func (m *DifficultyProfileMutation) SetWorstScore(i int) {
	m.worst_score = &i
	m.addworst_score = nil
}

// WorstScore returns the value of the "worst_score" field in the mutation.
func (m *DifficultyProfileMutation) WorstScore() (r int, exists bool) {
	v := m.worst_score
	if v == nil {
		return
	}
	return *v, true
}

// OldWorstScore returns the old "worst_score" field's value of the DifficultyProfile entity.
// If the DifficultyProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DifficultyProfileMutation) OldWorstScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorstScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorstScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorstScore: %w", err)
	}
	return oldValue.WorstScore, nil
}

// AddWorstScore adds i to the "worst_score" field.
func (m *DifficultyProfileMutation) AddWorstScore(i int) {
	if m.addworst_score != nil {
		*m.addworst_score += i
	} else {
		m.addworst_score = &i
	}
}

// AddedWorstScore returns the value that was added to the "worst_score" field in this mutation.
func (m *DifficultyProfileMutation) AddedWorstScore() (r int, exists bool) {
	v := m.addworst_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetWorstScore resets all changes to the "worst_score" field.
func (m *DifficultyProfileMutation) ResetWorstScore() {
	m.worst_score = nil
	m.addworst_score = nil
}

// SetHighScores sets the "high_scores" field.
func (m *DifficultyProfileMutation) SetHighScores(i int) {
	m.high_scores = &i
	m.addhigh_scores = nil
}

// HighScores returns the value of the "high_scores" field in the mutation.
func (m *DifficultyProfileMutation) HighScores() (r int, exists bool) {
	v := m.high_scores
	if v == nil {
		return
	}
	return *v, true
}

// OldHighScores returns the old "high_scores" field's value of the DifficultyProfile entity.
// If the DifficultyProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DifficultyProfileMutation) OldHighScores(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHighScores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHighScores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHighScores: %w", err)
	}
	return oldValue.HighScores, nil
}

// AddHighScores adds i to the "high_scores" field.
func (m *DifficultyProfileMutation) AddHighScores(i int) {
	if m.addhigh_scores != nil {
		*m.addhigh_scores += i
	} else {
		m.addhigh_scores = &i
	}
}

// AddedHighScores returns the value that was added to the "high_scores" field in this mutation.
func (m *DifficultyProfileMutation) AddedHighScores() (r int, exists bool) {
	v := m.addhigh_scores
	if v == nil {
		return
	}
	return *v, true
}

// ResetHighScores resets all changes to the "high_scores" field.
func (m *DifficultyProfileMutation) ResetHighScores() {
	m.high_scores = nil
	m.addhigh_scores = nil
}

// SetExcellentScores sets the "excellent_scores" field.
func (m *DifficultyProfileMutation) SetExcellentScores(i int) {
	m.excellent_scores = &i
	m.addexcellent_scores = nil
}

// ExcellentScores returns the value of the "excellent_scores" field in the mutation.
func (m *DifficultyProfileMutation) ExcellentScores() (r int, exists bool) {
	v := m.excellent_scores
	if v == nil {
		return
	}
	return *v, true
}

// OldExcellentScores returns the old "excellent_scores" field's value of the DifficultyProfile entity.
// If the DifficultyProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DifficultyProfileMutation) OldExcellentScores(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExcellentScores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExcellentScores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExcellentScores: %w", err)
	}
	return oldValue.ExcellentScores, nil
}

// AddExcellentScores adds i to the "excellent_scores" field.
func (m *DifficultyProfileMutation) AddExcellentScores(i int) {
	if m.addexcellent_scores != nil {
		*m.addexcellent_scores += i
	} else {
		m.addexcellent_scores = &i
	}
}

// AddedExcellentScores returns the value that was added to the "excellent_scores" field in this mutation.
func (m *DifficultyProfileMutation) AddedExcellentScores() (r int, exists bool) {
	v := m.addexcellent_scores
	if v == nil {
		return
	}
	return *v, true
}

// ResetExcellentScores resets all changes to the "excellent_scores" field.
func (m *DifficultyProfileMutation) ResetExcellentScores() {
	m.excellent_scores = nil
	m.addexcellent_scores = nil
}

// SetStreak sets the "streak" field.
func (m *DifficultyProfileMutation) SetStreak(i int) {
	m.streak = &i
	m.addstreak = nil
}

// Streak returns the value of the "streak" field in the mutation.
func (m *DifficultyProfileMutation) Streak() (r int, exists bool) {
	v := m.streak
	if v == nil {
		return
	}
	return *v, true
}

// OldStreak returns the old "streak" field's value of the DifficultyProfile entity.
// If the DifficultyProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DifficultyProfileMutation) OldStreak(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreak is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreak requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreak: %w", err)
	}
	return oldValue.Streak, nil
}

// AddStreak adds i to the "streak" field.
func (m *DifficultyProfileMutation) AddStreak(i int) {
	if m.addstreak != nil {
		*m.addstreak += i
	} else {
		m.addstreak = &i
	}
}

// AddedStreak returns the value that was added to the "streak" field in this mutation.
func (m *DifficultyProfileMutation) AddedStreak() (r int, exists bool) {
	v := m.addstreak
	if v == nil {
		return
	}
	return *v, true
}

// ResetStreak resets all changes to the "streak" field.
func (m *DifficultyProfileMutation) ResetStreak() {
	m.streak = nil
	m.addstreak = nil
}

// SetConfidence sets the "confidence" field.
func (m *DifficultyProfileMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *DifficultyProfileMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the DifficultyProfile entity.
// If the DifficultyProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DifficultyProfileMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *DifficultyProfileMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *DifficultyProfileMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *DifficultyProfileMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetRecent sets the "recent" field.
func (m *DifficultyProfileMutation) SetRecent(i []int) {
	m.recent = &i
	m.appendrecent = nil
}

// Recent returns the value of the "recent" field in the mutation.
func (m *DifficultyProfileMutation) Recent() (r []int, exists bool) {
	v := m.recent
	if v == nil {
		return
	}
	return *v, true
}

// OldRecent returns the old "recent" field's value of the DifficultyProfile entity.
// If the DifficultyProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DifficultyProfileMutation) OldRecent(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecent: %w", err)
	}
	return oldValue.Recent, nil
}

// AppendRecent adds i to the "recent" field.
func (m *DifficultyProfileMutation) AppendRecent(i []int) {
	m.appendrecent = append(m.appendrecent, i...)
}

// AppendedRecent returns the list of values that were appended to the "recent" field in this mutation.
func (m *DifficultyProfileMutation) AppendedRecent() ([]int, bool) {
	if len(m.appendrecent) == 0 {
		return nil, false
	}
	return m.appendrecent, true
}

// ClearRecent clears the value of the "recent" field.
func (m *DifficultyProfileMutation) ClearRecent() {
	m.recent = nil
	m.appendrecent = nil
	m.clearedFields[difficultyprofile.FieldRecent] = struct{}{}
}

// RecentCleared returns if the "recent" field was cleared in this mutation.
func (m *DifficultyProfileMutation) RecentCleared() bool {
	_, ok := m.clearedFields[difficultyprofile.FieldRecent]
	return ok
}

// ResetRecent resets all changes to the "recent" field.
func (m *DifficultyProfileMutation) ResetRecent() {
	m.recent = nil
	m.appendrecent = nil
	delete(m.clearedFields, difficultyprofile.FieldRecent)
}

// Where appends a list predicates to the DifficultyProfileMutation builder.
func (m *DifficultyProfileMutation) Where(ps ...predicate.DifficultyProfile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DifficultyProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DifficultyProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DifficultyProfile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DifficultyProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DifficultyProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DifficultyProfile).
func (m *DifficultyProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DifficultyProfileMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.player_id != nil {
		fields = append(fields, difficultyprofile.FieldPlayerID)
	}
	if m.skill_category != nil {
		fields = append(fields, difficultyprofile.FieldSkillCategory)
	}
	if m.difficulty != nil {
		fields = append(fields, difficultyprofile.FieldDifficulty)
	}
	if m.attempts != nil {
		fields = append(fields, difficultyprofile.FieldAttempts)
	}
	if m.avg_score != nil {
		fields = append(fields, difficultyprofile.FieldAvgScore)
	}
	if m.best_score != nil {
		fields = append(fields, difficultyprofile.FieldBestScore)
	}
	if m.worst_score != nil {
		fields = append(fields, difficultyprofile.FieldWorstScore)
	}
	if m.high_scores != nil {
		fields = append(fields, difficultyprofile.FieldHighScores)
	}
	if m.excellent_scores != nil {
		fields = append(fields, difficultyprofile.FieldExcellentScores)
	}
	if m.streak != nil {
		fields = append(fields, difficultyprofile.FieldStreak)
	}
	if m.confidence != nil {
		fields = append(fields, difficultyprofile.FieldConfidence)
	}
	if m.recent != nil {
		fields = append(fields, difficultyprofile.FieldRecent)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DifficultyProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case difficultyprofile.FieldPlayerID:
		return m.PlayerID()
	case difficultyprofile.FieldSkillCategory:
		return m.SkillCategory()
	case difficultyprofile.FieldDifficulty:
		return m.Difficulty()
	case difficultyprofile.FieldAttempts:
		return m.Attempts()
	case difficultyprofile.FieldAvgScore:
		return m.AvgScore()
	case difficultyprofile.FieldBestScore:
		return m.BestScore()
	case difficultyprofile.FieldWorstScore:
		return m.WorstScore()
	case difficultyprofile.FieldHighScores:
		return m.HighScores()
	case difficultyprofile.FieldExcellentScores:
		return m.ExcellentScores()
	case difficultyprofile.FieldStreak:
		return m.Streak()
	case difficultyprofile.FieldConfidence:
		return m.Confidence()
	case difficultyprofile.FieldRecent:
		return m.Recent()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DifficultyProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case difficultyprofile.FieldPlayerID:
		return m.OldPlayerID(ctx)
	case difficultyprofile.FieldSkillCategory:
		return m.OldSkillCategory(ctx)
	case difficultyprofile.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case difficultyprofile.FieldAttempts:
		return m.OldAttempts(ctx)
	case difficultyprofile.FieldAvgScore:
		return m.OldAvgScore(ctx)
	case difficultyprofile.FieldBestScore:
		return m.OldBestScore(ctx)
	case difficultyprofile.FieldWorstScore:
		return m.OldWorstScore(ctx)
	case difficultyprofile.FieldHighScores:
		return m.OldHighScores(ctx)
	case difficultyprofile.FieldExcellentScores:
		return m.OldExcellentScores(ctx)
	case difficultyprofile.FieldStreak:
		return m.OldStreak(ctx)
	case difficultyprofile.FieldConfidence:
		return m.OldConfidence(ctx)
	case difficultyprofile.FieldRecent:
		return m.OldRecent(ctx)
	}
	return nil, fmt.Errorf("unknown DifficultyProfile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DifficultyProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case difficultyprofile.FieldPlayerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlayerID(v)
		return nil
	case difficultyprofile.FieldSkillCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillCategory(v)
		return nil
	case difficultyprofile.FieldDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case difficultyprofile.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case difficultyprofile.FieldAvgScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgScore(v)
		return nil
	case difficultyprofile.FieldBestScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBestScore(v)
		return nil
	case difficultyprofile.FieldWorstScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorstScore(v)
		return nil
	case difficultyprofile.FieldHighScores:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHighScores(v)
		return nil
	case difficultyprofile.FieldExcellentScores:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExcellentScores(v)
		return nil
	case difficultyprofile.FieldStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreak(v)
		return nil
	case difficultyprofile.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case difficultyprofile.FieldRecent:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecent(v)
		return nil
	}
	return fmt.Errorf("unknown DifficultyProfile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DifficultyProfileMutation) AddedFields() []string {
	var fields []string
	if m.addplayer_id != nil {
		fields = append(fields, difficultyprofile.FieldPlayerID)
	}
	if m.addattempts != nil {
		fields = append(fields, difficultyprofile.FieldAttempts)
	}
	if m.addavg_score != nil {
		fields = append(fields, difficultyprofile.FieldAvgScore)
	}
	if m.addbest_score != nil {
		fields = append(fields, difficultyprofile.FieldBestScore)
	}
	if m.addworst_score != nil {
		fields = append(fields, difficultyprofile.FieldWorstScore)
	}
	if m.addhigh_scores != nil {
		fields = append(fields, difficultyprofile.FieldHighScores)
	}
	if m.addexcellent_scores != nil {
		fields = append(fields, difficultyprofile.FieldExcellentScores)
	}
	if m.addstreak != nil {
		fields = append(fields, difficultyprofile.FieldStreak)
	}
	if m.addconfidence != nil {
		fields = append(fields, difficultyprofile.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DifficultyProfileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case difficultyprofile.FieldPlayerID:
		return m.AddedPlayerID()
	case difficultyprofile.FieldAttempts:
		return m.AddedAttempts()
	case difficultyprofile.FieldAvgScore:
		return m.AddedAvgScore()
	case difficultyprofile.FieldBestScore:
		return m.AddedBestScore()
	case difficultyprofile.FieldWorstScore:
		return m.AddedWorstScore()
	case difficultyprofile.FieldHighScores:
		return m.AddedHighScores()
	case difficultyprofile.FieldExcellentScores:
		return m.AddedExcellentScores()
	case difficultyprofile.FieldStreak:
		return m.AddedStreak()
	case difficultyprofile.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DifficultyProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case difficultyprofile.FieldPlayerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPlayerID(v)
		return nil
	case difficultyprofile.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	case difficultyprofile.FieldAvgScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgScore(v)
		return nil
	case difficultyprofile.FieldBestScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBestScore(v)
		return nil
	case difficultyprofile.FieldWorstScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWorstScore(v)
		return nil
	case difficultyprofile.FieldHighScores:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHighScores(v)
		return nil
	case difficultyprofile.FieldExcellentScores:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExcellentScores(v)
		return nil
	case difficultyprofile.FieldStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStreak(v)
		return nil
	case difficultyprofile.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown DifficultyProfile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DifficultyProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(difficultyprofile.FieldRecent) {
		fields = append(fields, difficultyprofile.FieldRecent)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DifficultyProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DifficultyProfileMutation) ClearField(name string) error {
	switch name {
	case difficultyprofile.FieldRecent:
		m.ClearRecent()
		return nil
	}
	return fmt.Errorf("unknown DifficultyProfile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DifficultyProfileMutation) ResetField(name string) error {
	switch name {
	case difficultyprofile.FieldPlayerID:
		m.ResetPlayerID()
		return nil
	case difficultyprofile.FieldSkillCategory:
		m.ResetSkillCategory()
		return nil
	case difficultyprofile.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case difficultyprofile.FieldAttempts:
		m.ResetAttempts()
		return nil
	case difficultyprofile.FieldAvgScore:
		m.ResetAvgScore()
		return nil
	case difficultyprofile.FieldBestScore:
		m.ResetBestScore()
		return nil
	case difficultyprofile.FieldWorstScore:
		m.ResetWorstScore()
		return nil
	case difficultyprofile.FieldHighScores:
		m.ResetHighScores()
		return nil
	case difficultyprofile.FieldExcellentScores:
		m.ResetExcellentScores()
		return nil
	case difficultyprofile.FieldStreak:
		m.ResetStreak()
		return nil
	case difficultyprofile.FieldConfidence:
		m.ResetConfidence()
		return nil
	case difficultyprofile.FieldRecent:
		m.ResetRecent()
		return nil
	}
	return fmt.Errorf("unknown DifficultyProfile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DifficultyProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DifficultyProfileMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DifficultyProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DifficultyProfileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DifficultyProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DifficultyProfileMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DifficultyProfileMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DifficultyProfile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DifficultyProfileMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DifficultyProfile edge %s", name)
}

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	cost_usd         *float64
	addcost_usd      *float64
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	request_body     *string
	response_body    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestEvent, error)
	predicates       []predicate.LLMRequestEvent
}

var _ ent.Mutation = (*LLMRequestEventMutation)(nil)

// llmrequesteventOption allows management of the mutation configuration using functional options.
type llmrequesteventOption func(*LLMRequestEventMutation)

// newLLMRequestEventMutation creates new mutation for the LLMRequestEvent entity.
func newLLMRequestEventMutation(c config, op Op, opts ...llmrequesteventOption) *LLMRequestEventMutation {
	m := &LLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestEventID sets the ID field of the mutation.
func withLLMRequestEventID(id int) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestEvent sets the old LLMRequestEvent of the mutation.
func withLLMRequestEvent(node *LLMRequestEvent) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*LLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *LLMRequestEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *LLMRequestEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *LLMRequestEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *LLMRequestEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *LLMRequestEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *LLMRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LLMRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LLMRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *LLMRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetCostUsd sets the "cost_usd" field.
func (m *LLMRequestEventMutation) SetCostUsd(f float64) {
	m.cost_usd = &f
	m.addcost_usd = nil
}

// CostUsd returns the value of the "cost_usd" field in the mutation.
func (m *LLMRequestEventMutation) CostUsd() (r float64, exists bool) {
	v := m.cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldCostUsd returns the old "cost_usd" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldCostUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostUsd: %w", err)
	}
	return oldValue.CostUsd, nil
}

// AddCostUsd adds f to the "cost_usd" field.
func (m *LLMRequestEventMutation) AddCostUsd(f float64) {
	if m.addcost_usd != nil {
		*m.addcost_usd += f
	} else {
		m.addcost_usd = &f
	}
}

// AddedCostUsd returns the value that was added to the "cost_usd" field in this mutation.
func (m *LLMRequestEventMutation) AddedCostUsd() (r float64, exists bool) {
	v := m.addcost_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostUsd resets all changes to the "cost_usd" field.
func (m *LLMRequestEventMutation) ResetCostUsd() {
	m.cost_usd = nil
	m.addcost_usd = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// SetRequestBody sets the "request_body" field.
func (m *LLMRequestEventMutation) SetRequestBody(s string) {
	m.request_body = &s
}

// RequestBody returns the value of the "request_body" field in the mutation.
func (m *LLMRequestEventMutation) RequestBody() (r string, exists bool) {
	v := m.request_body
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestBody returns the old "request_body" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldRequestBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestBody: %w", err)
	}
	return oldValue.RequestBody, nil
}

// ResetRequestBody resets all changes to the "request_body" field.
func (m *LLMRequestEventMutation) ResetRequestBody() {
	m.request_body = nil
}

// SetResponseBody sets the "response_body" field.
func (m *LLMRequestEventMutation) SetResponseBody(s string) {
	m.response_body = &s
}

// ResponseBody returns the value of the "response_body" field in the mutation.
func (m *LLMRequestEventMutation) ResponseBody() (r string, exists bool) {
	v := m.response_body
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseBody returns the old "response_body" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldResponseBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseBody: %w", err)
	}
	return oldValue.ResponseBody, nil
}

// ResetResponseBody resets all changes to the "response_body" field.
func (m *LLMRequestEventMutation) ResetResponseBody() {
	m.response_body = nil
}

// Where appends a list predicates to the LLMRequestEventMutation builder.
func (m *LLMRequestEventMutation) Where(ps ...predicate.LLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestEvent).
func (m *LLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.sequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, llmrequestevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, llmrequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.cost_usd != nil {
		fields = append(fields, llmrequestevent.FieldCostUsd)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	if m.request_body != nil {
		fields = append(fields, llmrequestevent.FieldRequestBody)
	}
	if m.response_body != nil {
		fields = append(fields, llmrequestevent.FieldResponseBody)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.Sequence()
	case llmrequestevent.FieldTimestamp:
		return m.Timestamp()
	case llmrequestevent.FieldProvider:
		return m.Provider()
	case llmrequestevent.FieldModel:
		return m.Model()
	case llmrequestevent.FieldPurpose:
		return m.Purpose()
	case llmrequestevent.FieldInputTokens:
		return m.InputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestevent.FieldCostUsd:
		return m.CostUsd()
	case llmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestevent.FieldSuccess:
		return m.Success()
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	case llmrequestevent.FieldRequestBody:
		return m.RequestBody()
	case llmrequestevent.FieldResponseBody:
		return m.ResponseBody()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.OldSequence(ctx)
	case llmrequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case llmrequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case llmrequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestevent.FieldCostUsd:
		return m.OldCostUsd(ctx)
	case llmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case llmrequestevent.FieldRequestBody:
		return m.OldRequestBody(ctx)
	case llmrequestevent.FieldResponseBody:
		return m.OldResponseBody(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case llmrequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case llmrequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestevent.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostUsd(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case llmrequestevent.FieldRequestBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestBody(v)
		return nil
	case llmrequestevent.FieldResponseBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseBody(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.addcost_usd != nil {
		fields = append(fields, llmrequestevent.FieldCostUsd)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.AddedSequence()
	case llmrequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequestevent.FieldCostUsd:
		return m.AddedCostUsd()
	case llmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequestevent.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostUsd(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case llmrequestevent.FieldSequence:
		m.ResetSequence()
		return nil
	case llmrequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case llmrequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestevent.FieldCostUsd:
		m.ResetCostUsd()
		return nil
	case llmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case llmrequestevent.FieldRequestBody:
		m.ResetRequestBody()
		return nil
	case llmrequestevent.FieldResponseBody:
		m.ResetResponseBody()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent edge %s", name)
}

// PlayerMutation represents an operation that mutates the Player nodes in the graph.
type PlayerMutation struct {
	config
	op            Op
	typ           string
	id            *int
	name          *string
	xp            *int
	addxp         *int
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Player, error)
	predicates    []predicate.Player
}

var _ ent.Mutation = (*PlayerMutation)(nil)

// playerOption allows management of the mutation configuration using functional options.
type playerOption func(*PlayerMutation)

// newPlayerMutation creates new mutation for the Player entity.
func newPlayerMutation(c config, op Op, opts ...playerOption) *PlayerMutation {
	m := &PlayerMutation{
		config:        c,
		op:            op,
		typ:           TypePlayer,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPlayerID sets the ID field of the mutation.
func withPlayerID(id int) playerOption {
	return func(m *PlayerMutation) {
		var (
			err   error
			once  sync.Once
			value *Player
		)
		m.oldValue = func(ctx context.Context) (*Player, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Player.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPlayer sets the old Player of the mutation.
func withPlayer(node *Player) playerOption {
	return func(m *PlayerMutation) {
		m.oldValue = func(context.Context) (*Player, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PlayerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PlayerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PlayerMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PlayerMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Player.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *PlayerMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PlayerMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Player entity.
// If the Player object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *PlayerMutation) ResetName() {
	m.name = nil
}

// SetXp sets the "xp" field.
func (m *PlayerMutation) SetXp(i int) {
	m.xp = &i
	m.addxp = nil
}

// Xp returns the value of the "xp" field in the mutation.
func (m *PlayerMutation) Xp() (r int, exists bool) {
	v := m.xp
	if v == nil {
		return
	}
	return *v, true
}

// OldXp returns the old "xp" field's value of the Player entity.
// If the Player object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerMutation) OldXp(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldXp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldXp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldXp: %w", err)
	}
	return oldValue.Xp, nil
}

// AddXp adds i to the "xp" field.
func (m *PlayerMutation) AddXp(i int) {
	if m.addxp != nil {
		*m.addxp += i
	} else {
		m.addxp = &i
	}
}

// AddedXp returns the value that was added to the "xp" field in this mutation.
func (m *PlayerMutation) AddedXp() (r int, exists bool) {
	v := m.addxp
	if v == nil {
		return
	}
	return *v, true
}

// ResetXp resets all changes to the "xp" field.
func (m *PlayerMutation) ResetXp() {
	m.xp = nil
	m.addxp = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PlayerMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PlayerMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Player entity.
// If the Player object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PlayerMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the PlayerMutation builder.
func (m *PlayerMutation) Where(ps ...predicate.Player) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PlayerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PlayerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Player, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PlayerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PlayerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Player).
func (m *PlayerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PlayerMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.name != nil {
		fields = append(fields, player.FieldName)
	}
	if m.xp != nil {
		fields = append(fields, player.FieldXp)
	}
	if m.created_at != nil {
		fields = append(fields, player.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PlayerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case player.FieldName:
		return m.Name()
	case player.FieldXp:
		return m.Xp()
	case player.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PlayerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case player.FieldName:
		return m.OldName(ctx)
	case player.FieldXp:
		return m.OldXp(ctx)
	case player.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Player field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlayerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case player.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case player.FieldXp:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetXp(v)
		return nil
	case player.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Player field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PlayerMutation) AddedFields() []string {
	var fields []string
	if m.addxp != nil {
		fields = append(fields, player.FieldXp)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PlayerMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case player.FieldXp:
		return m.AddedXp()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlayerMutation) AddField(name string, value ent.Value) error {
	switch name {
	case player.FieldXp:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddXp(v)
		return nil
	}
	return fmt.Errorf("unknown Player numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PlayerMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PlayerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PlayerMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Player nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PlayerMutation) ResetField(name string) error {
	switch name {
	case player.FieldName:
		m.ResetName()
		return nil
	case player.FieldXp:
		m.ResetXp()
		return nil
	case player.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Player field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PlayerMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PlayerMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PlayerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PlayerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PlayerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PlayerMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PlayerMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Player unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PlayerMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Player edge %s", name)
}

// ReferenceAnswerMutation represents an operation that mutates the ReferenceAnswer nodes in the graph.
type ReferenceAnswerMutation struct {
	config
	op              Op
	typ             string
	id              *int
	uuid            *uuid.UUID
	challenge_id    *string
	text            *string
	embedding       *[]float64
	appendembedding []float64
	score           *int
	addscore        *int
	source          *string
	verified        *bool
	active          *bool
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*ReferenceAnswer, error)
	predicates      []predicate.ReferenceAnswer
}

var _ ent.Mutation = (*ReferenceAnswerMutation)(nil)

// referenceanswerOption allows management of the mutation configuration using functional options.
type referenceanswerOption func(*ReferenceAnswerMutation)

// newReferenceAnswerMutation creates new mutation for the ReferenceAnswer entity.
func newReferenceAnswerMutation(c config, op Op, opts ...referenceanswerOption) *ReferenceAnswerMutation {
	m := &ReferenceAnswerMutation{
		config:        c,
		op:            op,
		typ:           TypeReferenceAnswer,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReferenceAnswerID sets the ID field of the mutation.
func withReferenceAnswerID(id int) referenceanswerOption {
	return func(m *ReferenceAnswerMutation) {
		var (
			err   error
			once  sync.Once
			value *ReferenceAnswer
		)
		m.oldValue = func(ctx context.Context) (*ReferenceAnswer, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReferenceAnswer.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReferenceAnswer sets the old ReferenceAnswer of the mutation.
func withReferenceAnswer(node *ReferenceAnswer) referenceanswerOption {
	return func(m *ReferenceAnswerMutation) {
		m.oldValue = func(context.Context) (*ReferenceAnswer, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReferenceAnswerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReferenceAnswerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReferenceAnswerMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReferenceAnswerMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReferenceAnswer.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUUID sets the "uuid" field.
func (m *ReferenceAnswerMutation) SetUUID(u uuid.UUID) {
	m.uuid = &u
}

// UUID returns the value of the "uuid" field in the mutation.
func (m *ReferenceAnswerMutation) UUID() (r uuid.UUID, exists bool) {
	v := m.uuid
	if v == nil {
		return
	}
	return *v, true
}

// OldUUID returns the old "uuid" field's value of the ReferenceAnswer entity.
// If the ReferenceAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferenceAnswerMutation) OldUUID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUUID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUUID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUUID: %w", err)
	}
	return oldValue.UUID, nil
}

// ResetUUID resets all changes to the "uuid" field.
func (m *ReferenceAnswerMutation) ResetUUID() {
	m.uuid = nil
}

// SetChallengeID sets the "challenge_id" field.
func (m *ReferenceAnswerMutation) SetChallengeID(s string) {
	m.challenge_id = &s
}

// ChallengeID returns the value of the "challenge_id" field in the mutation.
func (m *ReferenceAnswerMutation) ChallengeID() (r string, exists bool) {
	v := m.challenge_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChallengeID returns the old "challenge_id" field's value of the ReferenceAnswer entity.
// If the ReferenceAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferenceAnswerMutation) OldChallengeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChallengeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChallengeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChallengeID: %w", err)
	}
	return oldValue.ChallengeID, nil
}

// ResetChallengeID resets all changes to the "challenge_id" field.
func (m *ReferenceAnswerMutation) ResetChallengeID() {
	m.challenge_id = nil
}

// SetText sets the "text" field.
func (m *ReferenceAnswerMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *ReferenceAnswerMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the ReferenceAnswer entity.
// If the ReferenceAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferenceAnswerMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *ReferenceAnswerMutation) ResetText() {
	m.text = nil
}

// SetEmbedding sets the "embedding" field.
func (m *ReferenceAnswerMutation) SetEmbedding(f []float64) {
	m.embedding = &f
	m.appendembedding = nil
}

// Embedding returns the value of the "embedding" field in the mutation.
func (m *ReferenceAnswerMutation) Embedding() (r []float64, exists bool) {
	v := m.embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbedding returns the old "embedding" field's value of the ReferenceAnswer entity.
// If the ReferenceAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferenceAnswerMutation) OldEmbedding(ctx context.Context) (v []float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbedding: %w", err)
	}
	return oldValue.Embedding, nil
}

// AppendEmbedding adds f to the "embedding" field.
func (m *ReferenceAnswerMutation) AppendEmbedding(f []float64) {
	m.appendembedding = append(m.appendembedding, f...)
}

// AppendedEmbedding returns the list of values that were appended to the "embedding" field in this mutation.
func (m *ReferenceAnswerMutation) AppendedEmbedding() ([]float64, bool) {
	if len(m.appendembedding) == 0 {
		return nil, false
	}
	return m.appendembedding, true
}

// ResetEmbedding resets all changes to the "embedding" field.
func (m *ReferenceAnswerMutation) ResetEmbedding() {
	m.embedding = nil
	m.appendembedding = nil
}

// SetScore sets the "score" field.
func (m *ReferenceAnswerMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *ReferenceAnswerMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the ReferenceAnswer entity.
// If the ReferenceAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferenceAnswerMutation) OldScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *ReferenceAnswerMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *ReferenceAnswerMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *ReferenceAnswerMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetSource sets the "source" field.
func (m *ReferenceAnswerMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *ReferenceAnswerMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the ReferenceAnswer entity.
// If the ReferenceAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferenceAnswerMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *ReferenceAnswerMutation) ResetSource() {
	m.source = nil
}

// SetVerified sets the "verified" field.
func (m *ReferenceAnswerMutation) SetVerified(b bool) {
	m.verified = &b
}

// Verified returns the value of the "verified" field in the mutation.
func (m *ReferenceAnswerMutation) Verified() (r bool, exists bool) {
	v := m.verified
	if v == nil {
		return
	}
	return *v, true
}

// OldVerified returns the old "verified" field's value of the ReferenceAnswer entity.
// If the ReferenceAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferenceAnswerMutation) OldVerified(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerified: %w", err)
	}
	return oldValue.Verified, nil
}

// ResetVerified resets all changes to the "verified" field.
func (m *ReferenceAnswerMutation) ResetVerified() {
	m.verified = nil
}

// SetActive sets the "active" field.
func (m *ReferenceAnswerMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *ReferenceAnswerMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the ReferenceAnswer entity.
// If the ReferenceAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferenceAnswerMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *ReferenceAnswerMutation) ResetActive() {
	m.active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ReferenceAnswerMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReferenceAnswerMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ReferenceAnswer entity.
// If the ReferenceAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferenceAnswerMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReferenceAnswerMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ReferenceAnswerMutation builder.
func (m *ReferenceAnswerMutation) Where(ps ...predicate.ReferenceAnswer) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReferenceAnswerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReferenceAnswerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReferenceAnswer, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReferenceAnswerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReferenceAnswerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReferenceAnswer).
func (m *ReferenceAnswerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReferenceAnswerMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.uuid != nil {
		fields = append(fields, referenceanswer.FieldUUID)
	}
	if m.challenge_id != nil {
		fields = append(fields, referenceanswer.FieldChallengeID)
	}
	if m.text != nil {
		fields = append(fields, referenceanswer.FieldText)
	}
	if m.embedding != nil {
		fields = append(fields, referenceanswer.FieldEmbedding)
	}
	if m.score != nil {
		fields = append(fields, referenceanswer.FieldScore)
	}
	if m.source != nil {
		fields = append(fields, referenceanswer.FieldSource)
	}
	if m.verified != nil {
		fields = append(fields, referenceanswer.FieldVerified)
	}
	if m.active != nil {
		fields = append(fields, referenceanswer.FieldActive)
	}
	if m.created_at != nil {
		fields = append(fields, referenceanswer.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReferenceAnswerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case referenceanswer.FieldUUID:
		return m.UUID()
	case referenceanswer.FieldChallengeID:
		return m.ChallengeID()
	case referenceanswer.FieldText:
		return m.Text()
	case referenceanswer.FieldEmbedding:
		return m.Embedding()
	case referenceanswer.FieldScore:
		return m.Score()
	case referenceanswer.FieldSource:
		return m.Source()
	case referenceanswer.FieldVerified:
		return m.Verified()
	case referenceanswer.FieldActive:
		return m.Active()
	case referenceanswer.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReferenceAnswerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case referenceanswer.FieldUUID:
		return m.OldUUID(ctx)
	case referenceanswer.FieldChallengeID:
		return m.OldChallengeID(ctx)
	case referenceanswer.FieldText:
		return m.OldText(ctx)
	case referenceanswer.FieldEmbedding:
		return m.OldEmbedding(ctx)
	case referenceanswer.FieldScore:
		return m.OldScore(ctx)
	case referenceanswer.FieldSource:
		return m.OldSource(ctx)
	case referenceanswer.FieldVerified:
		return m.OldVerified(ctx)
	case referenceanswer.FieldActive:
		return m.OldActive(ctx)
	case referenceanswer.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ReferenceAnswer field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReferenceAnswerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case referenceanswer.FieldUUID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUUID(v)
		return nil
	case referenceanswer.FieldChallengeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChallengeID(v)
		return nil
	case referenceanswer.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case referenceanswer.FieldEmbedding:
		v, ok := value.([]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbedding(v)
		return nil
	case referenceanswer.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case referenceanswer.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case referenceanswer.FieldVerified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerified(v)
		return nil
	case referenceanswer.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case referenceanswer.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ReferenceAnswer field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReferenceAnswerMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, referenceanswer.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReferenceAnswerMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case referenceanswer.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReferenceAnswerMutation) AddField(name string, value ent.Value) error {
	switch name {
	case referenceanswer.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown ReferenceAnswer numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReferenceAnswerMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReferenceAnswerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReferenceAnswerMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ReferenceAnswer nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReferenceAnswerMutation) ResetField(name string) error {
	switch name {
	case referenceanswer.FieldUUID:
		m.ResetUUID()
		return nil
	case referenceanswer.FieldChallengeID:
		m.ResetChallengeID()
		return nil
	case referenceanswer.FieldText:
		m.ResetText()
		return nil
	case referenceanswer.FieldEmbedding:
		m.ResetEmbedding()
		return nil
	case referenceanswer.FieldScore:
		m.ResetScore()
		return nil
	case referenceanswer.FieldSource:
		m.ResetSource()
		return nil
	case referenceanswer.FieldVerified:
		m.ResetVerified()
		return nil
	case referenceanswer.FieldActive:
		m.ResetActive()
		return nil
	case referenceanswer.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ReferenceAnswer field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReferenceAnswerMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReferenceAnswerMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReferenceAnswerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReferenceAnswerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReferenceAnswerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReferenceAnswerMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReferenceAnswerMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ReferenceAnswer unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReferenceAnswerMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ReferenceAnswer edge %s", name)
}

// SkillMemoryMutation represents an operation that mutates the SkillMemory nodes in the graph.
type SkillMemoryMutation struct {
	config
	op               Op
	typ              string
	id               *int
	player_id        *int
	addplayer_id     *int
	skill_id         *string
	ef               *float64
	addef            *float64
	interval_days    *int
	addinterval_days *int
	repetitions      *int
	addrepetitions   *int
	attempts         *int
	addattempts      *int
	last_score       *int
	addlast_score    *int
	last_quality     *int
	addlast_quality  *int
	avg_score        *float64
	addavg_score     *float64
	scores           *[]int
	appendscores     []int
	last_review      *time.Time
	next_review      *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*SkillMemory, error)
	predicates       []predicate.SkillMemory
}

var _ ent.Mutation = (*SkillMemoryMutation)(nil)

// skillmemoryOption allows management of the mutation configuration using functional options.
type skillmemoryOption func(*SkillMemoryMutation)

// newSkillMemoryMutation creates new mutation for the SkillMemory entity.
func newSkillMemoryMutation(c config, op Op, opts ...skillmemoryOption) *SkillMemoryMutation {
	m := &SkillMemoryMutation{
		config:        c,
		op:            op,
		typ:           TypeSkillMemory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSkillMemoryID sets the ID field of the mutation.
func withSkillMemoryID(id int) skillmemoryOption {
	return func(m *SkillMemoryMutation) {
		var (
			err   error
			once  sync.Once
			value *SkillMemory
		)
		m.oldValue = func(ctx context.Context) (*SkillMemory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SkillMemory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSkillMemory sets the old SkillMemory of the mutation.
func withSkillMemory(node *SkillMemory) skillmemoryOption {
	return func(m *SkillMemoryMutation) {
		m.oldValue = func(context.Context) (*SkillMemory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SkillMemoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SkillMemoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SkillMemoryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SkillMemoryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SkillMemory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPlayerID sets the "player_id" field.
func (m *SkillMemoryMutation) SetPlayerID(i int) {
	m.player_id = &i
	m.addplayer_id = nil
}

// PlayerID returns the value of the "player_id" field in the mutation.
func (m *SkillMemoryMutation) PlayerID() (r int, exists bool) {
	v := m.player_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPlayerID returns the old "player_id" field's value of the SkillMemory entity.
// If the SkillMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMemoryMutation) OldPlayerID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlayerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlayerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlayerID: %w", err)
	}
	return oldValue.PlayerID, nil
}

// AddPlayerID adds i to the "player_id" field.
func (m *SkillMemoryMutation) AddPlayerID(i int) {
	if m.addplayer_id != nil {
		*m.addplayer_id += i
	} else {
		m.addplayer_id = &i
	}
}

// AddedPlayerID returns the value that was added to the "player_id" field in this mutation.
func (m *SkillMemoryMutation) AddedPlayerID() (r int, exists bool) {
	v := m.addplayer_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetPlayerID resets all changes to the "player_id" field.
func (m *SkillMemoryMutation) ResetPlayerID() {
	m.player_id = nil
	m.addplayer_id = nil
}

// SetSkillID sets the "skill_id" field.
func (m *SkillMemoryMutation) SetSkillID(s string) {
	m.skill_id = &s
}

// SkillID returns the value of the "skill_id" field in the mutation.
func (m *SkillMemoryMutation) SkillID() (r string, exists bool) {
	v := m.skill_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillID returns the old "skill_id" field's value of the SkillMemory entity.
// If the SkillMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMemoryMutation) OldSkillID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillID: %w", err)
	}
	return oldValue.SkillID, nil
}

// ResetSkillID resets all changes to the "skill_id" field.
func (m *SkillMemoryMutation) ResetSkillID() {
	m.skill_id = nil
}

// SetEf sets the "ef" field.
func (m *SkillMemoryMutation) SetEf(f float64) {
	m.ef = &f
	m.addef = nil
}

// Ef returns the value of the "ef" field in the mutation.
func (m *SkillMemoryMutation) Ef() (r float64, exists bool) {
	v := m.ef
	if v == nil {
		return
	}
	return *v, true
}

// OldEf returns the old "ef" field's value of the SkillMemory entity.
// If the SkillMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMemoryMutation) OldEf(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEf is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEf requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEf: %w", err)
	}
	return oldValue.Ef, nil
}

// AddEf adds f to the "ef" field.
func (m *SkillMemoryMutation) AddEf(f float64) {
	if m.addef != nil {
		*m.addef += f
	} else {
		m.addef = &f
	}
}

// AddedEf returns the value that was added to the "ef" field in this mutation.
func (m *SkillMemoryMutation) AddedEf() (r float64, exists bool) {
	v := m.addef
	if v == nil {
		return
	}
	return *v, true
}

// ResetEf resets all changes to the "ef" field.
func (m *SkillMemoryMutation) ResetEf() {
	m.ef = nil
	m.addef = nil
}

// SetIntervalDays sets the "interval_days" field.
func (m *SkillMemoryMutation) SetIntervalDays(i int) {
	m.interval_days = &i
	m.addinterval_days = nil
}

// IntervalDays returns the value of the "interval_days" field in the mutation.
func (m *SkillMemoryMutation) IntervalDays() (r int, exists bool) {
	v := m.interval_days
	if v == nil {
		return
	}
	return *v, true
}

// OldIntervalDays returns the old "interval_days" field's value of the SkillMemory entity.
// If the SkillMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMemoryMutation) OldIntervalDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntervalDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntervalDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntervalDays: %w", err)
	}
	return oldValue.IntervalDays, nil
}

// AddIntervalDays adds i to the "interval_days" field.
func (m *SkillMemoryMutation) AddIntervalDays(i int) {
	if m.addinterval_days != nil {
		*m.addinterval_days += i
	} else {
		m.addinterval_days = &i
	}
}

// AddedIntervalDays returns the value that was added to the "interval_days" field in this mutation.
func (m *SkillMemoryMutation) AddedIntervalDays() (r int, exists bool) {
	v := m.addinterval_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetIntervalDays resets all changes to the "interval_days" field.
func (m *SkillMemoryMutation) ResetIntervalDays() {
	m.interval_days = nil
	m.addinterval_days = nil
}

// SetRepetitions sets the "repetitions" field.
func (m *SkillMemoryMutation) SetRepetitions(i int) {
	m.repetitions = &i
	m.addrepetitions = nil
}

// Repetitions returns the value of the "repetitions" field in the mutation.
func (m *SkillMemoryMutation) Repetitions() (r int, exists bool) {
	v := m.repetitions
	if v == nil {
		return
	}
	return *v, true
}

// OldRepetitions returns the old "repetitions" field's value of the SkillMemory entity.
// If the SkillMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMemoryMutation) OldRepetitions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepetitions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepetitions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepetitions: %w", err)
	}
	return oldValue.Repetitions, nil
}

// AddRepetitions adds i to the "repetitions" field.
func (m *SkillMemoryMutation) AddRepetitions(i int) {
	if m.addrepetitions != nil {
		*m.addrepetitions += i
	} else {
		m.addrepetitions = &i
	}
}

// AddedRepetitions returns the value that was added to the "repetitions" field in this mutation.
func (m *SkillMemoryMutation) AddedRepetitions() (r int, exists bool) {
	v := m.addrepetitions
	if v == nil {
		return
	}
	return *v, true
}

// ResetRepetitions resets all changes to the "repetitions" field.
func (m *SkillMemoryMutation) ResetRepetitions() {
	m.repetitions = nil
	m.addrepetitions = nil
}

// SetAttempts sets the "attempts" field.
func (m *SkillMemoryMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *SkillMemoryMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the SkillMemory entity.
// If the SkillMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMemoryMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *SkillMemoryMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *SkillMemoryMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *SkillMemoryMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetLastScore sets the "last_score" field.
func (m *SkillMemoryMutation) SetLastScore(i int) {
	m.last_score = &i
	m.addlast_score = nil
}

// LastScore returns the value of the "last_score" field in the mutation.
func (m *SkillMemoryMutation) LastScore() (r int, exists bool) {
	v := m.last_score
	if v == nil {
		return
	}
	return *v, true
}

// OldLastScore returns the old "last_score" field's value of the SkillMemory entity.
// If the SkillMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMemoryMutation) OldLastScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastScore: %w", err)
	}
	return oldValue.LastScore, nil
}

// AddLastScore adds i to the "last_score" field.
func (m *SkillMemoryMutation) AddLastScore(i int) {
	if m.addlast_score != nil {
		*m.addlast_score += i
	} else {
		m.addlast_score = &i
	}
}

// AddedLastScore returns the value that was added to the "last_score" field in this mutation.
func (m *SkillMemoryMutation) AddedLastScore() (r int, exists bool) {
	v := m.addlast_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetLastScore resets all changes to the "last_score" field.
func (m *SkillMemoryMutation) ResetLastScore() {
	m.last_score = nil
	m.addlast_score = nil
}

// SetLastQuality sets the "last_quality" field.
func (m *SkillMemoryMutation) SetLastQuality(i int) {
	m.last_quality = &i
	m.addlast_quality = nil
}

// LastQuality returns the value of the "last_quality" field in the mutation.
func (m *SkillMemoryMutation) LastQuality() (r int, exists bool) {
	v := m.last_quality
	if v == nil {
		return
	}
	return *v, true
}

// OldLastQuality returns the old "last_quality" field's value of the SkillMemory entity.
// If the SkillMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMemoryMutation) OldLastQuality(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastQuality is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastQuality requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastQuality: %w", err)
	}
	return oldValue.LastQuality, nil
}

// AddLastQuality adds i to the "last_quality" field.
func (m *SkillMemoryMutation) AddLastQuality(i int) {
	if m.addlast_quality != nil {
		*m.addlast_quality += i
	} else {
		m.addlast_quality = &i
	}
}

// AddedLastQuality returns the value that was added to the "last_quality" field in this mutation.
func (m *SkillMemoryMutation) AddedLastQuality() (r int, exists bool) {
	v := m.addlast_quality
	if v == nil {
		return
	}
	return *v, true
}

// ResetLastQuality resets all changes to the "last_quality" field.
func (m *SkillMemoryMutation) ResetLastQuality() {
	m.last_quality = nil
	m.addlast_quality = nil
}

// SetAvgScore sets the "avg_score" field.
func (m *SkillMemoryMutation) SetAvgScore(f float64) {
	m.avg_score = &f
	m.addavg_score = nil
}

// AvgScore returns the value of the "avg_score" field in the mutation.
func (m *SkillMemoryMutation) AvgScore() (r float64, exists bool) {
	v := m.avg_score
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgScore returns the old "avg_score" field's value of the SkillMemory entity.
// If the SkillMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMemoryMutation) OldAvgScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgScore: %w", err)
	}
	return oldValue.AvgScore, nil
}

// AddAvgScore adds f to the "avg_score" field.
func (m *SkillMemoryMutation) AddAvgScore(f float64) {
	if m.addavg_score != nil {
		*m.addavg_score += f
	} else {
		m.addavg_score = &f
	}
}

// AddedAvgScore returns the value that was added to the "avg_score" field in this mutation.
func (m *SkillMemoryMutation) AddedAvgScore() (r float64, exists bool) {
	v := m.addavg_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgScore resets all changes to the "avg_score" field.
func (m *SkillMemoryMutation) ResetAvgScore() {
	m.avg_score = nil
	m.addavg_score = nil
}

// SetScores sets the "scores" field.
func (m *SkillMemoryMutation) SetScores(i []int) {
	m.scores = &i
	m.appendscores = nil
}

// Scores returns the value of the "scores" field in the mutation.
func (m *SkillMemoryMutation) Scores() (r []int, exists bool) {
	v := m.scores
	if v == nil {
		return
	}
	return *v, true
}

// OldScores returns the old "scores" field's value of the SkillMemory entity.
// If the SkillMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMemoryMutation) OldScores(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScores: %w", err)
	}
	return oldValue.Scores, nil
}

// AppendScores adds i to the "scores" field.
func (m *SkillMemoryMutation) AppendScores(i []int) {
	m.appendscores = append(m.appendscores, i...)
}

// AppendedScores returns the list of values that were appended to the "scores" field in this mutation.
func (m *SkillMemoryMutation) AppendedScores() ([]int, bool) {
	if len(m.appendscores) == 0 {
		return nil, false
	}
	return m.appendscores, true
}

// ClearScores clears the value of the "scores" field.
func (m *SkillMemoryMutation) ClearScores() {
	m.scores = nil
	m.appendscores = nil
	m.clearedFields[skillmemory.FieldScores] = struct{}{}
}

// ScoresCleared returns if the "scores" field was cleared in this mutation.
func (m *SkillMemoryMutation) ScoresCleared() bool {
	_, ok := m.clearedFields[skillmemory.FieldScores]
	return ok
}

// ResetScores resets all changes to the "scores" field.
func (m *SkillMemoryMutation) ResetScores() {
	m.scores = nil
	m.appendscores = nil
	delete(m.clearedFields, skillmemory.FieldScores)
}

// SetLastReview sets the "last_review" field.
func (m *SkillMemoryMutation) SetLastReview(t time.Time) {
	m.last_review = &t
}

// LastReview returns the value of the "last_review" field in the mutation.
func (m *SkillMemoryMutation) LastReview() (r time.Time, exists bool) {
	v := m.last_review
	if v == nil {
		return
	}
	return *v, true
}

// OldLastReview returns the old "last_review" field's value of the SkillMemory entity.
// If the SkillMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMemoryMutation) OldLastReview(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastReview: %w", err)
	}
	return oldValue.LastReview, nil
}

// ClearLastReview clears the value of the "last_review" field.
func (m *SkillMemoryMutation) ClearLastReview() {
	m.last_review = nil
	m.clearedFields[skillmemory.FieldLastReview] = struct{}{}
}

// LastReviewCleared returns if the "last_review" field was cleared in this mutation.
func (m *SkillMemoryMutation) LastReviewCleared() bool {
	_, ok := m.clearedFields[skillmemory.FieldLastReview]
	return ok
}

// ResetLastReview resets all changes to the "last_review" field.
func (m *SkillMemoryMutation) ResetLastReview() {
	m.last_review = nil
	delete(m.clearedFields, skillmemory.FieldLastReview)
}

// SetNextReview sets the "next_review" field.
func (m *SkillMemoryMutation) SetNextReview(t time.Time) {
	m.next_review = &t
}

// NextReview returns the value of the "next_review" field in the mutation.
func (m *SkillMemoryMutation) NextReview() (r time.Time, exists bool) {
	v := m.next_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNextReview returns the old "next_review" field's value of the SkillMemory entity.
// If the SkillMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMemoryMutation) OldNextReview(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextReview: %w", err)
	}
	return oldValue.NextReview, nil
}

// ClearNextReview clears the value of the "next_review" field.
func (m *SkillMemoryMutation) ClearNextReview() {
	m.next_review = nil
	m.clearedFields[skillmemory.FieldNextReview] = struct{}{}
}

// NextReviewCleared returns if the "next_review" field was cleared in this mutation.
func (m *SkillMemoryMutation) NextReviewCleared() bool {
	_, ok := m.clearedFields[skillmemory.FieldNextReview]
	return ok
}

// ResetNextReview resets all changes to the "next_review" field.
func (m *SkillMemoryMutation) ResetNextReview() {
	m.next_review = nil
	delete(m.clearedFields, skillmemory.FieldNextReview)
}

// Where appends a list predicates to the SkillMemoryMutation builder.
func (m *SkillMemoryMutation) Where(ps ...predicate.SkillMemory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SkillMemoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SkillMemoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SkillMemory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SkillMemoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SkillMemoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SkillMemory).
func (m *SkillMemoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SkillMemoryMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.player_id != nil {
		fields = append(fields, skillmemory.FieldPlayerID)
	}
	if m.skill_id != nil {
		fields = append(fields, skillmemory.FieldSkillID)
	}
	if m.ef != nil {
		fields = append(fields, skillmemory.FieldEf)
	}
	if m.interval_days != nil {
		fields = append(fields, skillmemory.FieldIntervalDays)
	}
	if m.repetitions != nil {
		fields = append(fields, skillmemory.FieldRepetitions)
	}
	if m.attempts != nil {
		fields = append(fields, skillmemory.FieldAttempts)
	}
	if m.last_score != nil {
		fields = append(fields, skillmemory.FieldLastScore)
	}
	if m.last_quality != nil {
		fields = append(fields, skillmemory.FieldLastQuality)
	}
	if m.avg_score != nil {
		fields = append(fields, skillmemory.FieldAvgScore)
	}
	if m.scores != nil {
		fields = append(fields, skillmemory.FieldScores)
	}
	if m.last_review != nil {
		fields = append(fields, skillmemory.FieldLastReview)
	}
	if m.next_review != nil {
		fields = append(fields, skillmemory.FieldNextReview)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SkillMemoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case skillmemory.FieldPlayerID:
		return m.PlayerID()
	case skillmemory.FieldSkillID:
		return m.SkillID()
	case skillmemory.FieldEf:
		return m.Ef()
	case skillmemory.FieldIntervalDays:
		return m.IntervalDays()
	case skillmemory.FieldRepetitions:
		return m.Repetitions()
	case skillmemory.FieldAttempts:
		return m.Attempts()
	case skillmemory.FieldLastScore:
		return m.LastScore()
	case skillmemory.FieldLastQuality:
		return m.LastQuality()
	case skillmemory.FieldAvgScore:
		return m.AvgScore()
	case skillmemory.FieldScores:
		return m.Scores()
	case skillmemory.FieldLastReview:
		return m.LastReview()
	case skillmemory.FieldNextReview:
		return m.NextReview()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SkillMemoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case skillmemory.FieldPlayerID:
		return m.OldPlayerID(ctx)
	case skillmemory.FieldSkillID:
		return m.OldSkillID(ctx)
	case skillmemory.FieldEf:
		return m.OldEf(ctx)
	case skillmemory.FieldIntervalDays:
		return m.OldIntervalDays(ctx)
	case skillmemory.FieldRepetitions:
		return m.OldRepetitions(ctx)
	case skillmemory.FieldAttempts:
		return m.OldAttempts(ctx)
	case skillmemory.FieldLastScore:
		return m.OldLastScore(ctx)
	case skillmemory.FieldLastQuality:
		return m.OldLastQuality(ctx)
	case skillmemory.FieldAvgScore:
		return m.OldAvgScore(ctx)
	case skillmemory.FieldScores:
		return m.OldScores(ctx)
	case skillmemory.FieldLastReview:
		return m.OldLastReview(ctx)
	case skillmemory.FieldNextReview:
		return m.OldNextReview(ctx)
	}
	return nil, fmt.Errorf("unknown SkillMemory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SkillMemoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case skillmemory.FieldPlayerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlayerID(v)
		return nil
	case skillmemory.FieldSkillID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillID(v)
		return nil
	case skillmemory.FieldEf:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEf(v)
		return nil
	case skillmemory.FieldIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntervalDays(v)
		return nil
	case skillmemory.FieldRepetitions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepetitions(v)
		return nil
	case skillmemory.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case skillmemory.FieldLastScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastScore(v)
		return nil
	case skillmemory.FieldLastQuality:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastQuality(v)
		return nil
	case skillmemory.FieldAvgScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgScore(v)
		return nil
	case skillmemory.FieldScores:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScores(v)
		return nil
	case skillmemory.FieldLastReview:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastReview(v)
		return nil
	case skillmemory.FieldNextReview:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextReview(v)
		return nil
	}
	return fmt.Errorf("unknown SkillMemory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SkillMemoryMutation) AddedFields() []string {
	var fields []string
	if m.addplayer_id != nil {
		fields = append(fields, skillmemory.FieldPlayerID)
	}
	if m.addef != nil {
		fields = append(fields, skillmemory.FieldEf)
	}
	if m.addinterval_days != nil {
		fields = append(fields, skillmemory.FieldIntervalDays)
	}
	if m.addrepetitions != nil {
		fields = append(fields, skillmemory.FieldRepetitions)
	}
	if m.addattempts != nil {
		fields = append(fields, skillmemory.FieldAttempts)
	}
	if m.addlast_score != nil {
		fields = append(fields, skillmemory.FieldLastScore)
	}
	if m.addlast_quality != nil {
		fields = append(fields, skillmemory.FieldLastQuality)
	}
	if m.addavg_score != nil {
		fields = append(fields, skillmemory.FieldAvgScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SkillMemoryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case skillmemory.FieldPlayerID:
		return m.AddedPlayerID()
	case skillmemory.FieldEf:
		return m.AddedEf()
	case skillmemory.FieldIntervalDays:
		return m.AddedIntervalDays()
	case skillmemory.FieldRepetitions:
		return m.AddedRepetitions()
	case skillmemory.FieldAttempts:
		return m.AddedAttempts()
	case skillmemory.FieldLastScore:
		return m.AddedLastScore()
	case skillmemory.FieldLastQuality:
		return m.AddedLastQuality()
	case skillmemory.FieldAvgScore:
		return m.AddedAvgScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SkillMemoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case skillmemory.FieldPlayerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPlayerID(v)
		return nil
	case skillmemory.FieldEf:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEf(v)
		return nil
	case skillmemory.FieldIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIntervalDays(v)
		return nil
	case skillmemory.FieldRepetitions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRepetitions(v)
		return nil
	case skillmemory.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	case skillmemory.FieldLastScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastScore(v)
		return nil
	case skillmemory.FieldLastQuality:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastQuality(v)
		return nil
	case skillmemory.FieldAvgScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgScore(v)
		return nil
	}
	return fmt.Errorf("unknown SkillMemory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SkillMemoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(skillmemory.FieldScores) {
		fields = append(fields, skillmemory.FieldScores)
	}
	if m.FieldCleared(skillmemory.FieldLastReview) {
		fields = append(fields, skillmemory.FieldLastReview)
	}
	if m.FieldCleared(skillmemory.FieldNextReview) {
		fields = append(fields, skillmemory.FieldNextReview)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SkillMemoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SkillMemoryMutation) ClearField(name string) error {
	switch name {
	case skillmemory.FieldScores:
		m.ClearScores()
		return nil
	case skillmemory.FieldLastReview:
		m.ClearLastReview()
		return nil
	case skillmemory.FieldNextReview:
		m.ClearNextReview()
		return nil
	}
	return fmt.Errorf("unknown SkillMemory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SkillMemoryMutation) ResetField(name string) error {
	switch name {
	case skillmemory.FieldPlayerID:
		m.ResetPlayerID()
		return nil
	case skillmemory.FieldSkillID:
		m.ResetSkillID()
		return nil
	case skillmemory.FieldEf:
		m.ResetEf()
		return nil
	case skillmemory.FieldIntervalDays:
		m.ResetIntervalDays()
		return nil
	case skillmemory.FieldRepetitions:
		m.ResetRepetitions()
		return nil
	case skillmemory.FieldAttempts:
		m.ResetAttempts()
		return nil
	case skillmemory.FieldLastScore:
		m.ResetLastScore()
		return nil
	case skillmemory.FieldLastQuality:
		m.ResetLastQuality()
		return nil
	case skillmemory.FieldAvgScore:
		m.ResetAvgScore()
		return nil
	case skillmemory.FieldScores:
		m.ResetScores()
		return nil
	case skillmemory.FieldLastReview:
		m.ResetLastReview()
		return nil
	case skillmemory.FieldNextReview:
		m.ResetNextReview()
		return nil
	}
	return fmt.Errorf("unknown SkillMemory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SkillMemoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SkillMemoryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SkillMemoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SkillMemoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SkillMemoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SkillMemoryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SkillMemoryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SkillMemory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SkillMemoryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SkillMemory edge %s", name)
}
