// Package calibration keeps per-challenge scoring honest over time. A
// batch engine compares historical score distributions against
// per-difficulty benchmark targets and derives dampened, capped offsets;
// a live applier adjusts new scores from cached calibration records.
package calibration

import (
	"math"
	"sort"
	"time"
)

// Batch engine parameters.
const (
	// MinSamples is the attempt count below which no offset is derived.
	MinSamples = 30
	// DeviationThreshold is the minimum |benchmark − mean| that triggers
	// calibration.
	DeviationThreshold = 5.0
	// MaxOffset caps the stored offset magnitude in points.
	MaxOffset = 15.0
	// Strength dampens the offset when applied to a live score.
	Strength = 0.8
	// ConfidenceFloor is the minimum confidence for a nonzero adjustment.
	ConfidenceFloor = 0.5
	// reviewDeviation flags a challenge for manual review: the raw
	// deviation is so large that an offset alone cannot explain it.
	reviewDeviation = 25.0
)

// Record is one challenge's calibration state.
type Record struct {
	ChallengeID string

	// Offset is the signed correction in points, already capped at
	// MaxOffset but not yet dampened; Strength applies at use time.
	Offset float64

	// Distribution snapshot backing the offset.
	SampleCount int
	Mean        float64
	Median      float64
	StdDev      float64
	P25         float64
	P75         float64

	// Confidence grows with sample count, in [0,1].
	Confidence float64

	// NeedsReview marks a deviation too large for automatic correction.
	NeedsReview bool

	ComputedAt time.Time
}

// Compute derives a calibration record for a challenge from its
// historical final scores and the difficulty benchmark target. Below
// MinSamples, or within DeviationThreshold of the benchmark, the offset
// is zero.
func Compute(challengeID string, scores []int, benchmark int, now time.Time) *Record {
	rec := &Record{
		ChallengeID: challengeID,
		SampleCount: len(scores),
		ComputedAt:  now,
	}
	if len(scores) == 0 {
		return rec
	}

	fs := make([]float64, len(scores))
	for i, s := range scores {
		fs[i] = float64(s)
	}
	sort.Float64s(fs)

	var sum float64
	for _, v := range fs {
		sum += v
	}
	rec.Mean = sum / float64(len(fs))
	rec.Median = percentile(fs, 50)
	rec.P25 = percentile(fs, 25)
	rec.P75 = percentile(fs, 75)

	var variance float64
	for _, v := range fs {
		d := v - rec.Mean
		variance += d * d
	}
	rec.StdDev = math.Sqrt(variance / float64(len(fs)))

	// Confidence saturates at 100 samples.
	rec.Confidence = math.Min(float64(len(scores))/100, 1)

	if len(scores) < MinSamples {
		return rec
	}

	deviation := float64(benchmark) - rec.Mean
	if math.Abs(deviation) < DeviationThreshold {
		return rec
	}
	if math.Abs(deviation) > reviewDeviation {
		rec.NeedsReview = true
	}

	rec.Offset = math.Max(-MaxOffset, math.Min(MaxOffset, deviation))
	return rec
}

// percentile interpolates the p-th percentile of sorted values.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
