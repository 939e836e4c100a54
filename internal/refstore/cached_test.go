package refstore

import (
	"context"
	"testing"
	"time"
)

// countingRepo counts loads that reach the inner repo.
type countingRepo struct {
	*memRepo
	loads int
}

func (c *countingRepo) ActiveByChallenge(ctx context.Context, challengeID string) ([]*Reference, error) {
	c.loads++
	return c.memRepo.ActiveByChallenge(ctx, challengeID)
}

func TestCachedRepoServesFromCache(t *testing.T) {
	inner := &countingRepo{memRepo: newMemRepo()}
	inner.refs["bool-001"] = []*Reference{{ChallengeID: "bool-001", Embedding: []float64{1, 0}, Score: 90}}

	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	repo := NewCachedRepo(inner, time.Minute, clock)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		refs, err := repo.ActiveByChallenge(ctx, "bool-001")
		if err != nil {
			t.Fatalf("load %d: %v", i, err)
		}
		if len(refs) != 1 {
			t.Fatalf("load %d: %d refs, want 1", i, len(refs))
		}
	}
	if inner.loads != 1 {
		t.Errorf("inner loads = %d, want 1", inner.loads)
	}

	// Expired entries reload.
	now = now.Add(2 * time.Minute)
	if _, err := repo.ActiveByChallenge(ctx, "bool-001"); err != nil {
		t.Fatalf("load after expiry: %v", err)
	}
	if inner.loads != 2 {
		t.Errorf("inner loads = %d, want 2", inner.loads)
	}
}

func TestCachedRepoInsertInvalidates(t *testing.T) {
	inner := &countingRepo{memRepo: newMemRepo()}
	repo := NewCachedRepo(inner, time.Minute, nil)
	ctx := context.Background()

	if _, err := repo.ActiveByChallenge(ctx, "bool-001"); err != nil {
		t.Fatalf("prime cache: %v", err)
	}

	ref := &Reference{ChallengeID: "bool-001", Embedding: []float64{0, 1}, Score: 88}
	if err := repo.Insert(ctx, ref); err != nil {
		t.Fatalf("insert: %v", err)
	}

	refs, err := repo.ActiveByChallenge(ctx, "bool-001")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(refs) != 1 {
		t.Errorf("refs after insert = %d, want 1 (stale cache not invalidated)", len(refs))
	}
}
