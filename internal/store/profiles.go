package store

import (
	"context"
	"fmt"

	"github.com/ssanyal/recruitdojo/ent"
	"github.com/ssanyal/recruitdojo/ent/difficultyprofile"
	"github.com/ssanyal/recruitdojo/internal/catalog"
	"github.com/ssanyal/recruitdojo/internal/difficulty"
)

// profileRepo implements ProfileRepo using the ent client.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Get(ctx context.Context, playerID int, cat catalog.SkillCategory, diff catalog.Difficulty) (*difficulty.Profile, error) {
	row, err := r.client.DifficultyProfile.Query().
		Where(
			difficultyprofile.PlayerID(playerID),
			difficultyprofile.SkillCategory(string(cat)),
			difficultyprofile.Difficulty(diff.String()),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query profile: %w", err)
	}
	return profileFromRow(row), nil
}

func (r *profileRepo) Save(ctx context.Context, playerID int, p *difficulty.Profile) error {
	row, err := r.client.DifficultyProfile.Query().
		Where(
			difficultyprofile.PlayerID(playerID),
			difficultyprofile.SkillCategory(string(p.SkillCategory)),
			difficultyprofile.Difficulty(p.Difficulty.String()),
		).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		_, err = r.client.DifficultyProfile.Create().
			SetPlayerID(playerID).
			SetSkillCategory(string(p.SkillCategory)).
			SetDifficulty(p.Difficulty.String()).
			SetAttempts(p.Attempts).
			SetAvgScore(p.AvgScore).
			SetBestScore(p.BestScore).
			SetWorstScore(p.WorstScore).
			SetHighScores(p.HighScores).
			SetExcellentScores(p.ExcellentScores).
			SetStreak(p.Streak).
			SetConfidence(p.Confidence()).
			SetRecent(p.Recent).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create profile: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("query profile: %w", err)
	}

	_, err = row.Update().
		SetAttempts(p.Attempts).
		SetAvgScore(p.AvgScore).
		SetBestScore(p.BestScore).
		SetWorstScore(p.WorstScore).
		SetHighScores(p.HighScores).
		SetExcellentScores(p.ExcellentScores).
		SetStreak(p.Streak).
		SetConfidence(p.Confidence()).
		SetRecent(p.Recent).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

// profileFromRow is the single row→domain mapping for profiles.
func profileFromRow(row *ent.DifficultyProfile) *difficulty.Profile {
	return &difficulty.Profile{
		SkillCategory:   catalog.SkillCategory(row.SkillCategory),
		Difficulty:      catalog.ParseDifficulty(row.Difficulty),
		Attempts:        row.Attempts,
		AvgScore:        row.AvgScore,
		BestScore:       row.BestScore,
		WorstScore:      row.WorstScore,
		HighScores:      row.HighScores,
		ExcellentScores: row.ExcellentScores,
		Streak:          row.Streak,
		Recent:          row.Recent,
	}
}
