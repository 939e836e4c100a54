package calibration

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// ScoreSource supplies the historical final scores for a challenge.
// Defined here so the store can satisfy it without an import cycle.
type ScoreSource interface {
	ChallengeScores(ctx context.Context, challengeID string) ([]int, error)
}

// Engine is the batch recalibration process: it recomputes each
// challenge's record from its full score history and persists it through
// the Applier so the live cache is invalidated in the same step.
type Engine struct {
	source    ScoreSource
	applier   *Applier
	benchmark func(challengeID string) (int, bool)
	now       func() time.Time
	log       *zap.Logger
}

// NewEngine creates a calibration engine. benchmark resolves a
// challenge's difficulty benchmark target; unknown challenges are
// skipped.
func NewEngine(source ScoreSource, applier *Applier, benchmark func(string) (int, bool), now func() time.Time, log *zap.Logger) *Engine {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{source: source, applier: applier, benchmark: benchmark, now: now, log: log}
}

// Recalibrate recomputes and persists one challenge's calibration
// record.
func (e *Engine) Recalibrate(ctx context.Context, challengeID string) (*Record, error) {
	target, ok := e.benchmark(challengeID)
	if !ok {
		return nil, fmt.Errorf("no benchmark for challenge %q", challengeID)
	}

	scores, err := e.source.ChallengeScores(ctx, challengeID)
	if err != nil {
		return nil, fmt.Errorf("load scores for %s: %w", challengeID, err)
	}

	rec := Compute(challengeID, scores, target, e.now())
	if err := e.applier.Save(ctx, rec); err != nil {
		return nil, err
	}

	if rec.NeedsReview {
		e.log.Warn("calibration needs review",
			zap.String("challenge_id", challengeID),
			zap.Float64("mean", rec.Mean),
			zap.Int("benchmark", target))
	}
	return rec, nil
}

// RecalibrateAll recomputes every given challenge. One failing challenge
// does not stop the batch; the first error is returned after all
// challenges ran.
func (e *Engine) RecalibrateAll(ctx context.Context, challengeIDs []string) ([]*Record, error) {
	var out []*Record
	var firstErr error
	for _, id := range challengeIDs {
		rec, err := e.Recalibrate(ctx, id)
		if err != nil {
			e.log.Warn("recalibration failed", zap.String("challenge_id", id), zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		out = append(out, rec)
	}
	return out, firstErr
}
