package difficulty

import (
	"math"
	"testing"

	"github.com/ssanyal/recruitdojo/internal/catalog"
)

func record(p *Profile, scores ...int) {
	for _, s := range scores {
		p.Record(s)
	}
}

func TestRecordAggregates(t *testing.T) {
	p := NewProfile(catalog.CategoryBooleanSearch, catalog.DifficultyBeginner)
	record(p, 60, 80, 90, 70)

	if p.Attempts != 4 {
		t.Errorf("attempts = %d", p.Attempts)
	}
	if math.Abs(p.AvgScore-75) > 1e-9 {
		t.Errorf("avg = %v, want 75", p.AvgScore)
	}
	if p.BestScore != 90 || p.WorstScore != 60 {
		t.Errorf("best/worst = %d/%d, want 90/60", p.BestScore, p.WorstScore)
	}
	if p.HighScores != 2 {
		t.Errorf("high scores = %d, want 2", p.HighScores)
	}
	// 70 broke the streak.
	if p.Streak != 0 {
		t.Errorf("streak = %d, want 0", p.Streak)
	}
}

func TestRecordCountsBothHighBands(t *testing.T) {
	p := NewProfile(catalog.CategoryBooleanSearch, catalog.DifficultyBeginner)
	record(p, 95, 90, 85, 70)

	if p.HighScores != 3 {
		t.Errorf("high scores = %d, want 3", p.HighScores)
	}
	if p.ExcellentScores != 2 {
		t.Errorf("excellent scores = %d, want 2", p.ExcellentScores)
	}
}

func TestConfidenceGrowsWithAttempts(t *testing.T) {
	p := NewProfile(catalog.CategoryScreening, catalog.DifficultyBeginner)
	if p.Confidence() != 0 {
		t.Errorf("confidence = %v, want 0 before any attempt", p.Confidence())
	}

	record(p, 70, 80, 75, 85)
	if got := p.Confidence(); math.Abs(got-0.4) > 1e-9 {
		t.Errorf("confidence = %v, want 0.4 after 4 attempts", got)
	}

	for i := 0; i < 20; i++ {
		p.Record(80)
	}
	if got := p.Confidence(); got != 1 {
		t.Errorf("confidence = %v, want saturation at 1", got)
	}
}

func TestStreakCountsConsecutiveHighs(t *testing.T) {
	p := NewProfile(catalog.CategoryOutreach, catalog.DifficultyIntermediate)
	record(p, 50, 85, 90, 82)
	if p.Streak != 3 {
		t.Errorf("streak = %d, want 3", p.Streak)
	}
}

func TestMasteryComponentsBounded(t *testing.T) {
	p := NewProfile(catalog.CategoryScreening, catalog.DifficultyBeginner)
	for i := 0; i < 30; i++ {
		p.Record(100)
	}

	// Perfect play: 0.4·100 + 20 + 20 + 20 = 100, never above.
	if got := p.Mastery(); math.Abs(got-100) > 1e-9 {
		t.Errorf("mastery = %v, want 100", got)
	}

	if c := p.consistencyComponent(); c > componentBudget {
		t.Errorf("consistency component %v exceeds budget", c)
	}
	if c := p.highRatioComponent(); c > componentBudget {
		t.Errorf("high-ratio component %v exceeds budget", c)
	}
	if c := p.streakComponent(); c > componentBudget {
		t.Errorf("streak component %v exceeds budget", c)
	}
}

func TestMasteryPenalizesInconsistency(t *testing.T) {
	steady := NewProfile(catalog.CategoryOutreach, catalog.DifficultyBeginner)
	record(steady, 75, 75, 75, 75)

	erratic := NewProfile(catalog.CategoryOutreach, catalog.DifficultyBeginner)
	record(erratic, 100, 50, 100, 50)

	if steady.Mastery() <= erratic.Mastery() {
		t.Errorf("steady %v should beat erratic %v at equal averages",
			steady.Mastery(), erratic.Mastery())
	}
}

func TestPromotionGateIsConjunctive(t *testing.T) {
	// Meets every requirement.
	ready := NewProfile(catalog.CategoryBooleanSearch, catalog.DifficultyBeginner)
	record(ready, 70, 85, 90, 82, 88)
	if !ready.PromotionEligible() {
		t.Errorf("profile %+v should be promotable", ready)
	}

	// High average but a broken streak fails the gate.
	broken := NewProfile(catalog.CategoryBooleanSearch, catalog.DifficultyBeginner)
	record(broken, 90, 90, 90, 90, 70)
	if broken.PromotionEligible() {
		t.Error("a broken streak must block promotion despite the average")
	}

	// Too few attempts.
	fresh := NewProfile(catalog.CategoryBooleanSearch, catalog.DifficultyBeginner)
	record(fresh, 95, 95, 95)
	if fresh.PromotionEligible() {
		t.Error("three attempts cannot satisfy the minimum")
	}

	// Average below the bar despite enough high scores.
	lowAvg := NewProfile(catalog.CategoryBooleanSearch, catalog.DifficultyBeginner)
	record(lowAvg, 10, 10, 85, 85, 85)
	if lowAvg.PromotionEligible() {
		t.Errorf("avg %.1f below the threshold must block promotion", lowAvg.AvgScore)
	}
}

func TestNoPromotionFromExpert(t *testing.T) {
	p := NewProfile(catalog.CategoryScreening, catalog.DifficultyExpert)
	record(p, 95, 95, 95, 95, 95)
	if p.PromotionEligible() {
		t.Error("there is no tier above expert")
	}
	if tr := p.Evaluate(); tr != nil {
		t.Errorf("transition = %+v, want nil", tr)
	}
}

func TestDemotionSuggested(t *testing.T) {
	p := NewProfile(catalog.CategoryOutreach, catalog.DifficultyAdvanced)
	record(p, 30, 25, 40, 35)
	if !p.DemotionSuggested() {
		t.Errorf("avg %.1f over %d attempts should suggest demotion", p.AvgScore, p.Attempts)
	}

	tr := p.Evaluate()
	if tr == nil || tr.Promotion || tr.To != catalog.DifficultyIntermediate {
		t.Errorf("transition = %+v, want demotion to intermediate", tr)
	}
}

func TestNoDemotionFromBeginner(t *testing.T) {
	p := NewProfile(catalog.CategoryOutreach, catalog.DifficultyBeginner)
	record(p, 10, 10, 10, 10, 10)
	if p.DemotionSuggested() {
		t.Error("beginner is the floor")
	}
}

func TestEvaluatePromotion(t *testing.T) {
	p := NewProfile(catalog.CategoryJobDescription, catalog.DifficultyIntermediate)
	record(p, 80, 85, 90, 82, 88)

	tr := p.Evaluate()
	if tr == nil || !tr.Promotion || tr.To != catalog.DifficultyAdvanced {
		t.Errorf("transition = %+v, want promotion to advanced", tr)
	}
}
