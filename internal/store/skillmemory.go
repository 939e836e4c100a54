package store

import (
	"context"
	"fmt"

	"github.com/ssanyal/recruitdojo/ent"
	"github.com/ssanyal/recruitdojo/ent/skillmemory"
	"github.com/ssanyal/recruitdojo/internal/spacedrep"
)

// skillMemoryRepo implements SkillMemoryRepo using the ent client.
type skillMemoryRepo struct {
	client *ent.Client
}

func (r *skillMemoryRepo) Get(ctx context.Context, playerID int, skillID string) (*spacedrep.State, error) {
	row, err := r.client.SkillMemory.Query().
		Where(skillmemory.PlayerID(playerID), skillmemory.SkillID(skillID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query skill memory: %w", err)
	}
	return skillMemoryFromRow(row), nil
}

func (r *skillMemoryRepo) Save(ctx context.Context, playerID int, st *spacedrep.State) error {
	row, err := r.client.SkillMemory.Query().
		Where(skillmemory.PlayerID(playerID), skillmemory.SkillID(st.SkillID)).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		_, err = r.client.SkillMemory.Create().
			SetPlayerID(playerID).
			SetSkillID(st.SkillID).
			SetEf(st.EF).
			SetIntervalDays(st.IntervalDays).
			SetRepetitions(st.Repetitions).
			SetAttempts(st.Attempts).
			SetLastScore(st.LastScore).
			SetLastQuality(st.LastQuality).
			SetAvgScore(st.AvgScore).
			SetScores(st.Scores).
			SetLastReview(st.LastReview).
			SetNextReview(st.NextReview).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create skill memory: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("query skill memory: %w", err)
	}

	_, err = row.Update().
		SetEf(st.EF).
		SetIntervalDays(st.IntervalDays).
		SetRepetitions(st.Repetitions).
		SetAttempts(st.Attempts).
		SetLastScore(st.LastScore).
		SetLastQuality(st.LastQuality).
		SetAvgScore(st.AvgScore).
		SetScores(st.Scores).
		SetLastReview(st.LastReview).
		SetNextReview(st.NextReview).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update skill memory: %w", err)
	}
	return nil
}

func (r *skillMemoryRepo) ByPlayer(ctx context.Context, playerID int) ([]*spacedrep.State, error) {
	rows, err := r.client.SkillMemory.Query().
		Where(skillmemory.PlayerID(playerID)).
		Order(ent.Asc(skillmemory.FieldNextReview)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query skill memories for player %d: %w", playerID, err)
	}
	out := make([]*spacedrep.State, len(rows))
	for i, row := range rows {
		out[i] = skillMemoryFromRow(row)
	}
	return out, nil
}

// skillMemoryFromRow is the single row→domain mapping for skill memories.
func skillMemoryFromRow(row *ent.SkillMemory) *spacedrep.State {
	return &spacedrep.State{
		SkillID:      row.SkillID,
		EF:           row.Ef,
		IntervalDays: row.IntervalDays,
		Repetitions:  row.Repetitions,
		Attempts:     row.Attempts,
		LastScore:    row.LastScore,
		LastQuality:  row.LastQuality,
		AvgScore:     row.AvgScore,
		Scores:       row.Scores,
		LastReview:   row.LastReview,
		NextReview:   row.NextReview,
	}
}
