package spacedrep

import (
	"math"
	"time"
)

// Memory-strength blend: retention decay carries 30%, the last raw score
// 70%. A recent high score therefore reads as strong memory even right
// before a review comes due.
const (
	decayShare = 0.3
	scoreShare = 0.7
)

// MemoryStrength projects the player's retention of the skill at the
// given time, in [0,1]. Retention decays exponentially with days since
// the last review, with a stability horizon that grows with the current
// interval and easiness factor. Pure read-time projection; nothing is
// stored.
func (s *State) MemoryStrength(now time.Time) float64 {
	if s.Attempts == 0 {
		return 0
	}

	elapsed := now.Sub(s.LastReview).Hours() / 24
	if elapsed < 0 {
		elapsed = 0
	}

	stability := math.Max(1, float64(s.IntervalDays)) * s.EF
	decay := math.Exp(-elapsed / stability)

	strength := decayShare*decay + scoreShare*(float64(s.LastScore)/100)
	return math.Max(0, math.Min(1, strength))
}
