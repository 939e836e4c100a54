// Package spacedrep schedules skill reviews with an SM-2 variant: each
// (player, skill) pair carries an easiness factor, interval and
// repetition count updated on every scored attempt, plus a read-time
// memory-strength projection that decays between reviews.
package spacedrep

import (
	"math"
	"time"
)

// Easiness factor bounds and interval cap.
const (
	MinEF           = 1.3
	MaxEF           = 2.5
	DefaultEF       = 2.5
	MaxIntervalDays = 180
)

// ScoreHistoryLen bounds the per-skill score history.
const ScoreHistoryLen = 20

// QualityForScore maps a score [0,100] to an SM-2 quality grade 0–5.
func QualityForScore(score int) int {
	switch {
	case score >= 90:
		return 5
	case score >= 75:
		return 4
	case score >= 60:
		return 3
	case score >= 45:
		return 2
	case score >= 30:
		return 1
	default:
		return 0
	}
}

// State is the spaced-repetition state for one (player, skill) pair.
type State struct {
	SkillID string

	EF           float64
	IntervalDays int
	Repetitions  int

	// Attempt history feeding status and weakness projections.
	Attempts    int
	LastScore   int
	LastQuality int
	AvgScore    float64

	// Scores holds the latest final scores, newest last, capped at
	// ScoreHistoryLen.
	Scores []int

	LastReview time.Time
	NextReview time.Time
}

// NewState returns the initial state for a skill.
func NewState(skillID string) *State {
	return &State{SkillID: skillID, EF: DefaultEF}
}

// Record applies one scored attempt. Quality ≥ 3 advances the schedule
// (1 day, then 3, then interval·EF capped at MaxIntervalDays); lower
// quality resets repetitions and the interval.
func (s *State) Record(score int, now time.Time) {
	q := QualityForScore(score)

	s.EF = clampEF(s.EF + (0.1 - float64(5-q)*(0.08+float64(5-q)*0.02)))

	if q >= 3 {
		s.Repetitions++
		switch s.Repetitions {
		case 1:
			s.IntervalDays = 1
		case 2:
			s.IntervalDays = 3
		default:
			next := int(math.Round(float64(s.IntervalDays) * s.EF))
			if next > MaxIntervalDays {
				next = MaxIntervalDays
			}
			s.IntervalDays = next
		}
	} else {
		s.Repetitions = 0
		s.IntervalDays = 1
	}

	s.AvgScore = (s.AvgScore*float64(s.Attempts) + float64(score)) / float64(s.Attempts+1)
	s.Attempts++
	s.LastScore = score
	s.LastQuality = q
	s.Scores = append(s.Scores, score)
	if len(s.Scores) > ScoreHistoryLen {
		s.Scores = s.Scores[len(s.Scores)-ScoreHistoryLen:]
	}
	s.LastReview = now
	s.NextReview = now.AddDate(0, 0, s.IntervalDays)
}

// Due reports whether the skill is due for review.
func (s *State) Due(now time.Time) bool {
	return s.Attempts > 0 && !now.Before(s.NextReview)
}

// OverdueDays returns how many days past due the skill is, or 0.
func (s *State) OverdueDays(now time.Time) float64 {
	if s.Attempts == 0 || now.Before(s.NextReview) {
		return 0
	}
	return now.Sub(s.NextReview).Hours() / 24
}

func clampEF(ef float64) float64 {
	if ef < MinEF {
		return MinEF
	}
	if ef > MaxEF {
		return MaxEF
	}
	return ef
}
