package spacedrep

import (
	"math"
	"time"
)

// Status is a pure projection of a skill's learning stage. It is derived
// from scores and repetitions on demand, never stored separately.
type Status string

const (
	StatusNew       Status = "new"
	StatusLearning  Status = "learning"
	StatusReviewing Status = "reviewing"
	StatusMastered  Status = "mastered"
	StatusWeak      Status = "weak"
)

// WeaknessLevel grades how much a skill needs attention, from critical
// down to none.
type WeaknessLevel string

const (
	WeaknessNone        WeaknessLevel = "none"
	WeaknessSlight      WeaknessLevel = "slight"
	WeaknessModerate    WeaknessLevel = "moderate"
	WeaknessSignificant WeaknessLevel = "significant"
	WeaknessCritical    WeaknessLevel = "critical"
)

// Status thresholds.
const (
	weakAvgThreshold    = 50
	masteredAvg         = 85
	masteredRepetitions = 4
	reviewingReps       = 2
)

// Status projects the learning stage from average score and repetitions.
func (s *State) Status() Status {
	switch {
	case s.Attempts == 0:
		return StatusNew
	case s.AvgScore < weakAvgThreshold && s.Attempts >= 2:
		return StatusWeak
	case s.AvgScore >= masteredAvg && s.Repetitions >= masteredRepetitions:
		return StatusMastered
	case s.Repetitions >= reviewingReps:
		return StatusReviewing
	default:
		return StatusLearning
	}
}

// Weakness grades the skill by average score.
func (s *State) Weakness() WeaknessLevel {
	switch {
	case s.Attempts == 0 || s.AvgScore >= 70:
		return WeaknessNone
	case s.AvgScore >= 60:
		return WeaknessSlight
	case s.AvgScore >= 50:
		return WeaknessModerate
	case s.AvgScore >= 40:
		return WeaknessSignificant
	default:
		return WeaknessCritical
	}
}

// basePriority per weakness level.
var basePriority = map[WeaknessLevel]float64{
	WeaknessNone:        5,
	WeaknessSlight:      15,
	WeaknessModerate:    30,
	WeaknessSignificant: 45,
	WeaknessCritical:    60,
}

// Overdue bonus and memory discount scales.
const (
	overduePerDay   = 2.0
	overdueBonusCap = 30.0
	memoryDiscount  = 20.0
)

// ReviewPriority scores how urgently the skill needs review: weakness
// base plus a capped overdue bonus, minus a discount for memory still
// projected strong.
func (s *State) ReviewPriority(now time.Time) float64 {
	p := basePriority[s.Weakness()]
	p += math.Min(s.OverdueDays(now)*overduePerDay, overdueBonusCap)
	p -= s.MemoryStrength(now) * memoryDiscount
	return math.Max(0, p)
}
