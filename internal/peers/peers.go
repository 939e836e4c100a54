// Package peers computes peer-relative statistics: where a score lands
// among the historical scores for a challenge or skill category, and an
// optional grading curve toward a target median.
package peers

import (
	"math"
	"sort"
)

// Minimum sample sizes before stats are surfaced at all.
const (
	MinChallengeSamples = 5
	MinCategorySamples  = 10
)

// Stats describes one score relative to a peer score set.
type Stats struct {
	// Percentile is the average-rank percentile of the score [0,100]:
	// (below + 0.5·ties) / n · 100.
	Percentile float64
	// TopPercent is 100 − round(Percentile), floored at 1.
	TopPercent int
	// Rank is the 1-based rank from the top (best peer score is rank 1).
	Rank int
	// SampleSize counts the peer scores.
	SampleSize int

	Mean   float64
	StdDev float64
	P10    float64
	P25    float64
	P75    float64
	P90    float64
}

// Compare ranks score against the historical peer scores. Returns nil
// when the peer sample is smaller than minSamples; the caller then omits
// the peer block entirely.
func Compare(score int, peerScores []int, minSamples int) *Stats {
	if len(peerScores) < minSamples {
		return nil
	}

	all := make([]float64, len(peerScores))
	for i, s := range peerScores {
		all[i] = float64(s)
	}
	sort.Float64s(all)

	st := &Stats{SampleSize: len(all)}

	// Average-rank percentile: exact ties contribute half their count.
	below, equal := 0, 0
	for _, v := range all {
		switch {
		case v < float64(score):
			below++
		case v == float64(score):
			equal++
		}
	}
	st.Percentile = (float64(below) + 0.5*float64(equal)) / float64(len(all)) * 100

	top := 100 - int(math.Round(st.Percentile))
	if top < 1 {
		top = 1
	}
	st.TopPercent = top

	// Rank from the top; the new score slots above its exact ties.
	above := len(all) - below - equal
	st.Rank = above + 1

	var sum float64
	for _, v := range all {
		sum += v
	}
	st.Mean = sum / float64(len(all))

	var variance float64
	for _, v := range all {
		d := v - st.Mean
		variance += d * d
	}
	st.StdDev = math.Sqrt(variance / float64(len(all)))

	st.P10 = percentileValue(all, 10)
	st.P25 = percentileValue(all, 25)
	st.P75 = percentileValue(all, 75)
	st.P90 = percentileValue(all, 90)
	return st
}

// percentileValue interpolates the p-th percentile of sorted values.
func percentileValue(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
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
