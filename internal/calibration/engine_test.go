package calibration

import (
	"context"
	"testing"
	"time"
)

type memSource struct {
	scores map[string][]int
}

func (m *memSource) ChallengeScores(_ context.Context, challengeID string) ([]int, error) {
	return m.scores[challengeID], nil
}

func newTestEngine(repo *memRepo, source *memSource) *Engine {
	now := func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }
	applier := NewApplier(repo, now)
	benchmark := func(id string) (int, bool) {
		if id == "unknown" {
			return 0, false
		}
		return 65, true
	}
	return NewEngine(source, applier, benchmark, now, nil)
}

func TestRecalibratePersistsAndOffsets(t *testing.T) {
	repo := newMemRepo()
	scores := make([]int, 40)
	for i := range scores {
		scores[i] = 51 // mean 51 vs benchmark 65: deviation 14
	}
	e := newTestEngine(repo, &memSource{scores: map[string][]int{"bool-001": scores}})

	rec, err := e.Recalibrate(context.Background(), "bool-001")
	if err != nil {
		t.Fatalf("recalibrate: %v", err)
	}
	if rec.Offset != 14 {
		t.Errorf("offset = %v, want 14", rec.Offset)
	}
	if got := repo.recs["bool-001"]; got == nil || got.Offset != 14 {
		t.Errorf("persisted = %+v, want offset 14", got)
	}
}

func TestRecalibrateRefreshesSharedApplier(t *testing.T) {
	repo := newMemRepo()
	now := func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }
	applier := NewApplier(repo, now)

	// Warm the applier's cache with a record that carries no offset.
	ctx := context.Background()
	if err := applier.Save(ctx, &Record{ChallengeID: "bool-001", SampleCount: 10, Confidence: 0.1}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got, _ := applier.Apply(ctx, "bool-001", 50); got != 50 {
		t.Fatalf("apply before recalibration = %d, want 50", got)
	}

	scores := make([]int, 60)
	for i := range scores {
		scores[i] = 51 // mean 51 vs benchmark 65: offset 14
	}
	benchmark := func(string) (int, bool) { return 65, true }
	e := NewEngine(&memSource{scores: map[string][]int{"bool-001": scores}}, applier, benchmark, now, nil)

	if _, err := e.Recalibrate(ctx, "bool-001"); err != nil {
		t.Fatalf("recalibrate: %v", err)
	}

	// The same applier must serve the new record immediately, not the
	// cached stale one: round(14 · 0.8) = 11 points.
	if got, _ := applier.Apply(ctx, "bool-001", 50); got != 61 {
		t.Errorf("apply after recalibration = %d, want 61", got)
	}
}

func TestRecalibrateUnknownBenchmark(t *testing.T) {
	e := newTestEngine(newMemRepo(), &memSource{})
	if _, err := e.Recalibrate(context.Background(), "unknown"); err == nil {
		t.Fatal("expected error for missing benchmark")
	}
}

func TestRecalibrateAllContinuesPastFailures(t *testing.T) {
	repo := newMemRepo()
	scores := make([]int, 35)
	for i := range scores {
		scores[i] = 80
	}
	e := newTestEngine(repo, &memSource{scores: map[string][]int{"ok": scores}})

	recs, err := e.RecalibrateAll(context.Background(), []string{"unknown", "ok"})
	if err == nil {
		t.Error("expected the first failure to be reported")
	}
	if len(recs) != 1 || recs[0].ChallengeID != "ok" {
		t.Fatalf("records = %+v, want the ok challenge only", recs)
	}
	// 80 vs 65 deviates by -15: offset capped at the max magnitude.
	if recs[0].Offset != -15 {
		t.Errorf("offset = %v, want -15", recs[0].Offset)
	}
}
