package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ssanyal/recruitdojo/ent"
	"github.com/ssanyal/recruitdojo/ent/attempt"
)

// attemptRepo implements AttemptRepo using the ent client, with raw-SQL
// aggregate queries and an ent fallback for each.
type attemptRepo struct {
	client *ent.Client
	db     *sql.DB
}

func (r *attemptRepo) Insert(ctx context.Context, a *Attempt) error {
	row, err := r.client.Attempt.Create().
		SetPlayerID(a.PlayerID).
		SetChallengeID(a.ChallengeID).
		SetSkillCategory(a.SkillCategory).
		SetDifficulty(a.Difficulty).
		SetSubmission(a.Submission).
		SetValidatorScore(a.ValidatorScore).
		SetAiScore(a.AIScore).
		SetAiAvailable(a.AIAvailable).
		SetFinalScore(a.FinalScore).
		SetConfidence(a.Confidence).
		SetRiskLevel(a.RiskLevel).
		SetHintsUsed(a.HintsUsed).
		SetFeedbackHTML(a.FeedbackHTML).
		Save(ctx)
	if ent.IsConstraintError(err) {
		return ErrDuplicateAttempt
	}
	if err != nil {
		return fmt.Errorf("insert attempt: %w", err)
	}
	a.ID = row.ID
	a.CreatedAt = row.CreatedAt
	return nil
}

func (r *attemptRepo) ByPlayerChallenge(ctx context.Context, playerID int, challengeID string) (*Attempt, error) {
	row, err := r.client.Attempt.Query().
		Where(attempt.PlayerID(playerID), attempt.ChallengeID(challengeID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query attempt: %w", err)
	}
	return attemptFromRow(row), nil
}

func (r *attemptRepo) ByPlayer(ctx context.Context, playerID int) ([]*Attempt, error) {
	rows, err := r.client.Attempt.Query().
		Where(attempt.PlayerID(playerID)).
		Order(ent.Desc(attempt.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts for player %d: %w", playerID, err)
	}
	out := make([]*Attempt, len(rows))
	for i, row := range rows {
		out[i] = attemptFromRow(row)
	}
	return out, nil
}

func (r *attemptRepo) LatestByPlayer(ctx context.Context, playerID int) (*Attempt, error) {
	row, err := r.client.Attempt.Query().
		Where(attempt.PlayerID(playerID)).
		Order(ent.Desc(attempt.FieldCreatedAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query latest attempt: %w", err)
	}
	return attemptFromRow(row), nil
}

// ChallengeScores aggregates in SQL; on failure it falls back to loading
// the rows through ent and aggregating client-side.
func (r *attemptRepo) ChallengeScores(ctx context.Context, challengeID string) ([]int, error) {
	scores, err := r.scoresSQL(ctx,
		`SELECT final_score FROM attempts WHERE challenge_id = ?`, challengeID)
	if err == nil {
		return scores, nil
	}

	rows, entErr := r.client.Attempt.Query().
		Where(attempt.ChallengeID(challengeID)).
		All(ctx)
	if entErr != nil {
		return nil, fmt.Errorf("challenge scores: %w (fallback: %v)", err, entErr)
	}
	return finalScores(rows), nil
}

// CategoryScores aggregates in SQL with the same fallback path.
func (r *attemptRepo) CategoryScores(ctx context.Context, category string) ([]int, error) {
	scores, err := r.scoresSQL(ctx,
		`SELECT final_score FROM attempts WHERE skill_category = ?`, category)
	if err == nil {
		return scores, nil
	}

	rows, entErr := r.client.Attempt.Query().
		Where(attempt.SkillCategory(category)).
		All(ctx)
	if entErr != nil {
		return nil, fmt.Errorf("category scores: %w (fallback: %v)", err, entErr)
	}
	return finalScores(rows), nil
}

func (r *attemptRepo) scoresSQL(ctx context.Context, query string, arg any) ([]int, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scores []int
	for rows.Next() {
		var s int
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		scores = append(scores, s)
	}
	return scores, rows.Err()
}

func finalScores(rows []*ent.Attempt) []int {
	out := make([]int, len(rows))
	for i, row := range rows {
		out[i] = row.FinalScore
	}
	return out
}

// attemptFromRow is the single row→domain mapping for attempts.
func attemptFromRow(row *ent.Attempt) *Attempt {
	return &Attempt{
		ID:             row.ID,
		PlayerID:       row.PlayerID,
		ChallengeID:    row.ChallengeID,
		SkillCategory:  row.SkillCategory,
		Difficulty:     row.Difficulty,
		Submission:     row.Submission,
		ValidatorScore: row.ValidatorScore,
		AIScore:        row.AiScore,
		AIAvailable:    row.AiAvailable,
		FinalScore:     row.FinalScore,
		Confidence:     row.Confidence,
		RiskLevel:      row.RiskLevel,
		HintsUsed:      row.HintsUsed,
		FeedbackHTML:   row.FeedbackHTML,
		CreatedAt:      row.CreatedAt,
	}
}
