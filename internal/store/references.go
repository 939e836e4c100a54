package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ssanyal/recruitdojo/ent"
	"github.com/ssanyal/recruitdojo/ent/referenceanswer"
	"github.com/ssanyal/recruitdojo/internal/refstore"
)

// referenceRepo implements ReferenceRepo using the ent client.
type referenceRepo struct {
	client *ent.Client
}

func (r *referenceRepo) ActiveByChallenge(ctx context.Context, challengeID string) ([]*refstore.Reference, error) {
	rows, err := r.client.ReferenceAnswer.Query().
		Where(
			referenceanswer.ChallengeID(challengeID),
			referenceanswer.Active(true),
		).
		Order(ent.Desc(referenceanswer.FieldScore)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query references for %s: %w", challengeID, err)
	}
	out := make([]*refstore.Reference, len(rows))
	for i, row := range rows {
		out[i] = referenceFromRow(row)
	}
	return out, nil
}

func (r *referenceRepo) Insert(ctx context.Context, ref *refstore.Reference) error {
	row, err := r.client.ReferenceAnswer.Create().
		SetUUID(ref.ID).
		SetChallengeID(ref.ChallengeID).
		SetText(ref.Text).
		SetEmbedding(ref.Embedding).
		SetScore(ref.Score).
		SetSource(ref.Source).
		SetVerified(ref.Verified).
		SetCreatedAt(ref.CreatedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("insert reference: %w", err)
	}
	ref.CreatedAt = row.CreatedAt
	return nil
}

func (r *referenceRepo) Deactivate(ctx context.Context, challengeID, id string) error {
	u, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("parse reference id %q: %w", id, err)
	}
	n, err := r.client.ReferenceAnswer.Update().
		Where(
			referenceanswer.UUID(u),
			referenceanswer.ChallengeID(challengeID),
		).
		SetActive(false).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("deactivate reference %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("reference %s not found for challenge %s", id, challengeID)
	}
	return nil
}

// referenceFromRow is the single row→domain mapping for references.
func referenceFromRow(row *ent.ReferenceAnswer) *refstore.Reference {
	return &refstore.Reference{
		ID:          row.UUID,
		ChallengeID: row.ChallengeID,
		Text:        row.Text,
		Embedding:   row.Embedding,
		Score:       row.Score,
		Source:      row.Source,
		Verified:    row.Verified,
		CreatedAt:   row.CreatedAt,
	}
}
