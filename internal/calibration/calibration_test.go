package calibration

import (
	"context"
	"math"
	"testing"
	"time"
)

func repeatScores(score, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = score
	}
	return out
}

func TestComputeBelowMinSamples(t *testing.T) {
	rec := Compute("bool-1", repeatScores(40, MinSamples-1), 64, time.Now())
	if rec.Offset != 0 {
		t.Errorf("offset = %v, want 0 below the sample minimum", rec.Offset)
	}
	if rec.SampleCount != MinSamples-1 {
		t.Errorf("sample count = %d", rec.SampleCount)
	}
}

func TestComputeDerivesOffset(t *testing.T) {
	// Mean 50 against a benchmark of 64: deviation 14, within the cap.
	rec := Compute("bool-1", repeatScores(50, 40), 64, time.Now())
	if math.Abs(rec.Offset-14) > 1e-9 {
		t.Errorf("offset = %v, want 14", rec.Offset)
	}
	if rec.NeedsReview {
		t.Error("a 14-point deviation should not need review")
	}
}

func TestComputeCapsAndFlagsLargeDeviation(t *testing.T) {
	// Mean 30 against 64: deviation 34, capped at 15 and flagged.
	rec := Compute("bool-1", repeatScores(30, 50), 64, time.Now())
	if math.Abs(rec.Offset-MaxOffset) > 1e-9 {
		t.Errorf("offset = %v, want capped at %v", rec.Offset, MaxOffset)
	}
	if !rec.NeedsReview {
		t.Error("a 34-point deviation should be flagged for review")
	}
}

func TestComputeSmallDeviationIgnored(t *testing.T) {
	rec := Compute("bool-1", repeatScores(62, 50), 64, time.Now())
	if rec.Offset != 0 {
		t.Errorf("offset = %v, want 0 within the deviation threshold", rec.Offset)
	}
}

func TestComputeStats(t *testing.T) {
	rec := Compute("bool-1", []int{10, 20, 30, 40, 50}, 64, time.Now())
	if rec.Mean != 30 || rec.Median != 30 {
		t.Errorf("mean/median = %v/%v, want 30/30", rec.Mean, rec.Median)
	}
	if rec.P25 != 20 || rec.P75 != 40 {
		t.Errorf("p25/p75 = %v/%v, want 20/40", rec.P25, rec.P75)
	}
	if math.Abs(rec.StdDev-math.Sqrt(200)) > 1e-9 {
		t.Errorf("stddev = %v", rec.StdDev)
	}
}

func TestComputeConfidenceGrowsWithSamples(t *testing.T) {
	few := Compute("c", repeatScores(50, 30), 64, time.Now())
	many := Compute("c", repeatScores(50, 200), 64, time.Now())
	if few.Confidence >= many.Confidence {
		t.Errorf("confidence should grow: %v >= %v", few.Confidence, many.Confidence)
	}
	if many.Confidence != 1 {
		t.Errorf("confidence = %v, want saturated at 1", many.Confidence)
	}
}

// memRepo is an in-memory calibration repo counting reads.
type memRepo struct {
	recs  map[string]*Record
	reads int
}

func newMemRepo() *memRepo {
	return &memRepo{recs: make(map[string]*Record)}
}

func (m *memRepo) Calibration(_ context.Context, challengeID string) (*Record, error) {
	m.reads++
	return m.recs[challengeID], nil
}

func (m *memRepo) SaveCalibration(_ context.Context, rec *Record) error {
	m.recs[rec.ChallengeID] = rec
	return nil
}

func TestApplyDampensCapsAndClamps(t *testing.T) {
	repo := newMemRepo()
	repo.recs["bool-1"] = &Record{ChallengeID: "bool-1", Offset: 15, Confidence: 0.8, SampleCount: 80}
	a := NewApplier(repo, nil)
	ctx := context.Background()

	// 15 × 0.8 = 12 points.
	got, note := a.Apply(ctx, "bool-1", 50)
	if got != 62 {
		t.Errorf("Apply(50) = %d, want 62", got)
	}
	if note == "" {
		t.Error("a nonzero adjustment must carry a note")
	}

	// 95 + 12 clamps to 100.
	if got, _ := a.Apply(ctx, "bool-1", 95); got != 100 {
		t.Errorf("Apply(95) = %d, want clamped 100", got)
	}
}

func TestApplyLowConfidenceIsZero(t *testing.T) {
	repo := newMemRepo()
	repo.recs["bool-1"] = &Record{ChallengeID: "bool-1", Offset: 15, Confidence: 0.3, SampleCount: 30}
	a := NewApplier(repo, nil)

	got, note := a.Apply(context.Background(), "bool-1", 50)
	if got != 50 || note != "" {
		t.Errorf("low confidence: got %d %q, want 50 and no note", got, note)
	}
}

func TestApplyMissingRecord(t *testing.T) {
	a := NewApplier(newMemRepo(), nil)
	if got, _ := a.Apply(context.Background(), "unknown", 77); got != 77 {
		t.Errorf("Apply without a record = %d, want 77", got)
	}
}

func TestApplyCachesAndInvalidatesOnSave(t *testing.T) {
	repo := newMemRepo()
	repo.recs["bool-1"] = &Record{ChallengeID: "bool-1", Offset: 10, Confidence: 0.9, SampleCount: 90}
	a := NewApplier(repo, nil)
	ctx := context.Background()

	a.Apply(ctx, "bool-1", 50)
	a.Apply(ctx, "bool-1", 50)
	if repo.reads != 1 {
		t.Errorf("repo reads = %d, want 1 (second hit served from cache)", repo.reads)
	}

	// Saving replaces the record and drops the cache entry.
	if err := a.Save(ctx, &Record{ChallengeID: "bool-1", Offset: -10, Confidence: 0.9, SampleCount: 95}); err != nil {
		t.Fatal(err)
	}
	got, note := a.Apply(ctx, "bool-1", 50)
	if got != 42 {
		t.Errorf("after save: Apply(50) = %d, want 42", got)
	}
	if note == "" || repo.reads != 2 {
		t.Errorf("expected a reload (reads=%d) and a lowering note %q", repo.reads, note)
	}
}
