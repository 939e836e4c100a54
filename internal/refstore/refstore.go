// Package refstore holds previously scored high-quality submissions with
// their embeddings and compares new submissions against them. It supplies
// two things to the pipeline: near-duplicate suppression when a reference
// is added, and a bounded similarity-based score adjustment.
package refstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AutoAddThreshold is the attempt score at or above which a submission is
// stored as a reference answer automatically.
const AutoAddThreshold = 85

// dedupThreshold is the cosine similarity above which a new reference is
// considered a duplicate of an existing active one and rejected.
const dedupThreshold = 0.95

// Reference source types.
const (
	SourceAuto    = "auto"
	SourceCurated = "curated"
)

// ErrDuplicate is returned when a new reference is too similar to an
// existing active reference for the same challenge.
var ErrDuplicate = errors.New("duplicate reference answer")

// Reference is one stored high-scoring submission.
type Reference struct {
	ID          uuid.UUID
	ChallengeID string
	Text        string
	Embedding   []float64
	Score       int
	Source      string
	Verified    bool
	CreatedAt   time.Time
}

// Repo is the persistence surface the reference store needs.
type Repo interface {
	// ActiveByChallenge returns the active references for a challenge.
	ActiveByChallenge(ctx context.Context, challengeID string) ([]*Reference, error)
	// Insert stores a new reference.
	Insert(ctx context.Context, ref *Reference) error
}

// Service adds references with duplicate suppression.
type Service struct {
	repo Repo
}

// NewService creates a reference service over the given repository.
func NewService(repo Repo) *Service {
	return &Service{repo: repo}
}

// Add stores a reference answer unless an active reference for the same
// challenge is nearly identical (cosine similarity above the dedup
// threshold), in which case it returns ErrDuplicate and stores nothing.
func (s *Service) Add(ctx context.Context, ref *Reference) error {
	if len(ref.Embedding) == 0 {
		return errors.New("reference has no embedding")
	}

	existing, err := s.repo.ActiveByChallenge(ctx, ref.ChallengeID)
	if err != nil {
		return fmt.Errorf("load references for %s: %w", ref.ChallengeID, err)
	}
	for _, e := range existing {
		if Cosine(ref.Embedding, e.Embedding) > dedupThreshold {
			return fmt.Errorf("%w: matches reference %s", ErrDuplicate, e.ID)
		}
	}

	if ref.ID == uuid.Nil {
		ref.ID = uuid.New()
	}
	if ref.Source == "" {
		ref.Source = SourceAuto
	}
	if ref.CreatedAt.IsZero() {
		ref.CreatedAt = time.Now().UTC()
	}

	if err := s.repo.Insert(ctx, ref); err != nil {
		return fmt.Errorf("insert reference: %w", err)
	}
	return nil
}
