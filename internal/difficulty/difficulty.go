// Package difficulty tracks per-skill, per-tier performance and decides
// when a player is ready to move up a tier (or should move down). The
// mastery score is informational; promotion is a conjunctive gate over
// raw requirements, never a weighted blend.
package difficulty

import (
	"math"

	"github.com/ssanyal/recruitdojo/internal/catalog"
)

const (
	// highScore is the threshold a score must reach to count as "high"
	// for streaks and promotion requirements; excellentScore marks the
	// top band tracked separately.
	highScore      = 80
	excellentScore = 90

	// rollingWindow bounds the recent-score list kept per profile.
	rollingWindow = 20

	// confidenceSaturation is the attempt count at which the profile's
	// aggregates are fully trusted.
	confidenceSaturation = 10
)

// Promotion gate requirements: ALL must hold.
const (
	PromoteMinAttempts   = 5
	PromoteMinAvg        = 75.0
	PromoteMinHighScores = 3
	PromoteMinStreak     = 2
)

// Demotion requirements.
const (
	DemoteMinAttempts = 4
	DemoteMaxAvg      = 40.0
)

// Mastery sub-component budgets; avgScore carries 40% of the weight and
// each bounded component adds up to 20 points.
const (
	avgWeight       = 0.4
	componentBudget = 20.0
)

// Profile is one (player, skill, difficulty) performance bucket.
type Profile struct {
	SkillCategory catalog.SkillCategory
	Difficulty    catalog.Difficulty

	Attempts   int
	AvgScore   float64
	BestScore  int
	WorstScore int

	// HighScores counts attempts at or above the high-score threshold,
	// ExcellentScores those at or above the excellent threshold; Streak
	// counts consecutive high scores ending at the latest attempt.
	HighScores      int
	ExcellentScores int
	Streak          int

	// Recent holds the latest scores, newest last, capped at the window.
	Recent []int
}

// NewProfile returns an empty profile for a skill and tier.
func NewProfile(cat catalog.SkillCategory, diff catalog.Difficulty) *Profile {
	return &Profile{SkillCategory: cat, Difficulty: diff, WorstScore: 100}
}

// Record folds one final score into the profile.
func (p *Profile) Record(score int) {
	p.AvgScore = (p.AvgScore*float64(p.Attempts) + float64(score)) / float64(p.Attempts+1)
	p.Attempts++

	if score > p.BestScore {
		p.BestScore = score
	}
	if score < p.WorstScore {
		p.WorstScore = score
	}

	if score >= highScore {
		p.HighScores++
		p.Streak++
	} else {
		p.Streak = 0
	}
	if score >= excellentScore {
		p.ExcellentScores++
	}

	p.Recent = append(p.Recent, score)
	if len(p.Recent) > rollingWindow {
		p.Recent = p.Recent[len(p.Recent)-rollingWindow:]
	}
}

// Mastery computes the informational mastery score [0,100]:
// 0.4·avg plus bounded consistency, high-score-ratio and streak
// components of up to 20 points each.
func (p *Profile) Mastery() float64 {
	if p.Attempts == 0 {
		return 0
	}
	score := avgWeight*p.AvgScore +
		p.consistencyComponent() +
		p.highRatioComponent() +
		p.streakComponent()
	return math.Min(score, 100)
}

// consistencyComponent rewards a tight recent-score spread: full budget
// at zero spread, none once the spread reaches 40 points.
func (p *Profile) consistencyComponent() float64 {
	if len(p.Recent) < 2 {
		return 0
	}
	lo, hi := p.Recent[0], p.Recent[0]
	for _, s := range p.Recent[1:] {
		if s < lo {
			lo = s
		}
		if s > hi {
			hi = s
		}
	}
	spread := float64(hi - lo)
	return componentBudget * math.Max(0, 1-spread/40)
}

func (p *Profile) highRatioComponent() float64 {
	ratio := float64(p.HighScores) / float64(p.Attempts)
	return componentBudget * math.Min(ratio, 1)
}

func (p *Profile) streakComponent() float64 {
	// Saturates at a streak of 5.
	return componentBudget * math.Min(float64(p.Streak)/5, 1)
}

// Confidence reports how much the profile's aggregates can be trusted,
// rising linearly with attempts and saturating at confidenceSaturation.
func (p *Profile) Confidence() float64 {
	return math.Min(float64(p.Attempts)/confidenceSaturation, 1)
}

// PromotionEligible reports whether every promotion requirement holds.
func (p *Profile) PromotionEligible() bool {
	if p.Difficulty >= catalog.DifficultyExpert {
		return false
	}
	return p.Attempts >= PromoteMinAttempts &&
		p.AvgScore >= PromoteMinAvg &&
		p.HighScores >= PromoteMinHighScores &&
		p.Streak >= PromoteMinStreak
}

// DemotionSuggested reports whether the player is struggling enough to
// suggest the tier below. Never suggested from the lowest tier.
func (p *Profile) DemotionSuggested() bool {
	if p.Difficulty <= catalog.DifficultyBeginner {
		return false
	}
	return p.Attempts >= DemoteMinAttempts && p.AvgScore < DemoteMaxAvg
}

// Transition describes a suggested tier change for the feedback report.
type Transition struct {
	From catalog.Difficulty
	To   catalog.Difficulty
	// Promotion is true for a step up, false for a suggested step down.
	Promotion bool
}

// Evaluate returns the suggested transition after the latest attempt, or
// nil when the player should stay at the current tier.
func (p *Profile) Evaluate() *Transition {
	if p.PromotionEligible() {
		return &Transition{From: p.Difficulty, To: p.Difficulty + 1, Promotion: true}
	}
	if p.DemotionSuggested() {
		return &Transition{From: p.Difficulty, To: p.Difficulty - 1}
	}
	return nil
}
