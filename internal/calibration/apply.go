package calibration

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/ssanyal/recruitdojo/internal/cache"
)

// cacheTTL bounds how stale a live calibration lookup may be. Writers
// invalidate explicitly; the TTL only covers records changed elsewhere.
const cacheTTL = 5 * time.Minute

// Repo is the persistence surface the applier needs.
type Repo interface {
	// Calibration returns the record for a challenge, or nil if none.
	Calibration(ctx context.Context, challengeID string) (*Record, error)
	// SaveCalibration upserts a record.
	SaveCalibration(ctx context.Context, rec *Record) error
}

// Applier adjusts live scores from cached calibration records.
type Applier struct {
	repo  Repo
	cache *cache.TTL[*Record]
}

// NewApplier creates an Applier. A nil clock uses wall time.
func NewApplier(repo Repo, clock cache.Clock) *Applier {
	return &Applier{
		repo:  repo,
		cache: cache.NewTTL[*Record](cacheTTL, clock),
	}
}

// Apply adjusts score by the challenge's dampened, capped offset and
// clamps to [0,100]. Missing records, low confidence, or a repo error all
// yield the unadjusted score; calibration never fails a submission. The
// note explains a nonzero adjustment.
func (a *Applier) Apply(ctx context.Context, challengeID string, score int) (int, string) {
	rec, ok := a.cache.Get(challengeID)
	if !ok {
		loaded, err := a.repo.Calibration(ctx, challengeID)
		if err != nil || loaded == nil {
			return clampScore(score), ""
		}
		rec = loaded
		a.cache.Put(challengeID, rec)
	}

	if rec.Confidence < ConfidenceFloor || rec.Offset == 0 {
		return clampScore(score), ""
	}

	adjustment := int(math.Round(rec.Offset * Strength))
	if adjustment == 0 {
		return clampScore(score), ""
	}

	adjusted := clampScore(score + adjustment)
	direction := "raised"
	if adjustment < 0 {
		direction = "lowered"
	}
	note := fmt.Sprintf(
		"Score %s by %d points: this exercise has been scoring away from its difficulty benchmark (based on %d attempts).",
		direction, abs(adjustment), rec.SampleCount)
	return adjusted, note
}

// Save persists a record and invalidates its cache entry so the next
// Apply sees the new state immediately.
func (a *Applier) Save(ctx context.Context, rec *Record) error {
	if err := a.repo.SaveCalibration(ctx, rec); err != nil {
		return fmt.Errorf("save calibration for %s: %w", rec.ChallengeID, err)
	}
	a.cache.Invalidate(rec.ChallengeID)
	return nil
}

// Invalidate drops the cached record for a challenge.
func (a *Applier) Invalidate(challengeID string) {
	a.cache.Invalidate(challengeID)
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
