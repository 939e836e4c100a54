package spacedrep

import (
	"testing"
	"time"
)

func TestMemoryStrengthDecays(t *testing.T) {
	s := NewState("boolean-search")
	s.Record(80, t0)

	fresh := s.MemoryStrength(t0)
	later := s.MemoryStrength(t0.AddDate(0, 0, 7))
	much := s.MemoryStrength(t0.AddDate(0, 0, 60))

	if !(fresh > later && later > much) {
		t.Errorf("strength should decay monotonically: %v, %v, %v", fresh, later, much)
	}
	for _, v := range []float64{fresh, later, much} {
		if v < 0 || v > 1 {
			t.Errorf("strength %v out of [0,1]", v)
		}
	}

	// The score share keeps the floor at 70% of the last score fraction.
	if much < scoreShare*0.8-1e-9 {
		t.Errorf("strength %v fell below the score-backed floor", much)
	}
}

func TestMemoryStrengthNewSkill(t *testing.T) {
	s := NewState("outreach")
	if got := s.MemoryStrength(t0); got != 0 {
		t.Errorf("strength = %v, want 0 for an unattempted skill", got)
	}
}

func TestMemoryStrengthHigherScoreStronger(t *testing.T) {
	lo, hi := NewState("a"), NewState("b")
	lo.Record(40, t0)
	hi.Record(95, t0)

	at := t0.AddDate(0, 0, 3)
	if lo.MemoryStrength(at) >= hi.MemoryStrength(at) {
		t.Error("a higher last score should project stronger memory")
	}
}

func TestStatusProjection(t *testing.T) {
	s := NewState("screening")
	if s.Status() != StatusNew {
		t.Errorf("status = %s, want new", s.Status())
	}

	s.Record(70, t0)
	if s.Status() != StatusLearning {
		t.Errorf("status = %s, want learning", s.Status())
	}

	s.Record(75, t0.AddDate(0, 0, 1))
	if s.Status() != StatusReviewing {
		t.Errorf("status = %s, want reviewing after 2 repetitions", s.Status())
	}

	for i := 0; i < 4; i++ {
		s.Record(98, t0.AddDate(0, 0, 2+i))
	}
	if s.Status() != StatusMastered {
		t.Errorf("status = %s (avg %.1f reps %d), want mastered", s.Status(), s.AvgScore, s.Repetitions)
	}
}

func TestStatusWeak(t *testing.T) {
	s := NewState("outreach")
	s.Record(30, t0)
	s.Record(35, t0.AddDate(0, 0, 1))
	if s.Status() != StatusWeak {
		t.Errorf("status = %s, want weak", s.Status())
	}
	if s.Weakness() != WeaknessCritical {
		t.Errorf("weakness = %s, want critical", s.Weakness())
	}
}

func TestWeaknessLevels(t *testing.T) {
	cases := []struct {
		avg  float64
		want WeaknessLevel
	}{
		{80, WeaknessNone}, {70, WeaknessNone}, {65, WeaknessSlight},
		{55, WeaknessModerate}, {45, WeaknessSignificant}, {30, WeaknessCritical},
	}
	for _, c := range cases {
		s := &State{SkillID: "x", Attempts: 3, AvgScore: c.avg}
		if got := s.Weakness(); got != c.want {
			t.Errorf("avg %.0f: weakness = %s, want %s", c.avg, got, c.want)
		}
	}
}

func TestReviewPriorityOrdersWeakOverdueFirst(t *testing.T) {
	now := t0.AddDate(0, 0, 10)

	weak := NewState("weak-skill")
	weak.Record(35, t0)
	weak.Record(40, t0.AddDate(0, 0, 1))

	strong := NewState("strong-skill")
	strong.Record(95, t0)
	strong.Record(92, t0.AddDate(0, 0, 1))

	if weak.ReviewPriority(now) <= strong.ReviewPriority(now) {
		t.Errorf("weak overdue skill should outrank a strong one: %v <= %v",
			weak.ReviewPriority(now), strong.ReviewPriority(now))
	}
}

func TestReviewPriorityOverdueBonusCapped(t *testing.T) {
	s := NewState("x")
	s.Record(55, t0)

	monthLate := s.ReviewPriority(t0.AddDate(0, 1, 0))
	yearLate := s.ReviewPriority(t0.AddDate(1, 0, 0))
	if yearLate-monthLate > 1e-3 {
		t.Errorf("overdue bonus should cap: month %v vs year %v", monthLate, yearLate)
	}
}

func TestMemoryStrengthStabilityGrowsWithInterval(t *testing.T) {
	short := &State{SkillID: "a", Attempts: 1, LastScore: 80, EF: 2.0, IntervalDays: 1, LastReview: t0}
	long := &State{SkillID: "b", Attempts: 1, LastScore: 80, EF: 2.0, IntervalDays: 30, LastReview: t0}

	at := t0.Add(5 * 24 * time.Hour)
	if short.MemoryStrength(at) >= long.MemoryStrength(at) {
		t.Error("a longer interval should imply slower decay")
	}
}
