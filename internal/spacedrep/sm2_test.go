package spacedrep

import (
	"math"
	"testing"
	"time"
)

var t0 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func TestQualityForScore(t *testing.T) {
	cases := []struct {
		score, quality int
	}{
		{100, 5}, {90, 5}, {89, 4}, {75, 4}, {74, 3}, {60, 3},
		{59, 2}, {45, 2}, {44, 1}, {30, 1}, {29, 0}, {0, 0},
	}
	for _, c := range cases {
		if got := QualityForScore(c.score); got != c.quality {
			t.Errorf("QualityForScore(%d) = %d, want %d", c.score, got, c.quality)
		}
	}
}

func TestRecordIntervalProgression(t *testing.T) {
	s := NewState("boolean-search")

	s.Record(95, t0)
	if s.IntervalDays != 1 || s.Repetitions != 1 {
		t.Fatalf("after 1st success: interval %d reps %d, want 1/1", s.IntervalDays, s.Repetitions)
	}

	s.Record(95, t0.AddDate(0, 0, 1))
	if s.IntervalDays != 3 || s.Repetitions != 2 {
		t.Fatalf("after 2nd success: interval %d reps %d, want 3/2", s.IntervalDays, s.Repetitions)
	}

	// Third success scales by EF (still 2.5 after perfect scores): 3×2.5≈8.
	s.Record(95, t0.AddDate(0, 0, 4))
	if s.IntervalDays != 8 {
		t.Errorf("after 3rd success: interval %d, want 8", s.IntervalDays)
	}
	if got := s.NextReview; !got.Equal(t0.AddDate(0, 0, 4).AddDate(0, 0, 8)) {
		t.Errorf("next review = %v", got)
	}
}

func TestRecordFailureResets(t *testing.T) {
	s := NewState("outreach")
	for i := 0; i < 4; i++ {
		s.Record(90, t0.AddDate(0, 0, i))
	}
	if s.Repetitions != 4 {
		t.Fatalf("setup: reps = %d", s.Repetitions)
	}

	s.Record(20, t0.AddDate(0, 0, 10))
	if s.Repetitions != 0 || s.IntervalDays != 1 {
		t.Errorf("failure should reset: reps %d interval %d", s.Repetitions, s.IntervalDays)
	}
}

func TestEFUpdateFormula(t *testing.T) {
	s := NewState("screening")
	s.EF = 2.0

	// q=3: EF + (0.1 − 2·(0.08 + 2·0.02)) = 2.0 − 0.14 = 1.86.
	s.Record(60, t0)
	if math.Abs(s.EF-1.86) > 1e-9 {
		t.Errorf("EF = %v, want 1.86", s.EF)
	}
}

func TestEFClamped(t *testing.T) {
	s := NewState("screening")
	for i := 0; i < 20; i++ {
		s.Record(0, t0.AddDate(0, 0, i))
	}
	if s.EF != MinEF {
		t.Errorf("EF = %v, want floor %v", s.EF, MinEF)
	}

	s2 := NewState("screening")
	for i := 0; i < 20; i++ {
		s2.Record(100, t0.AddDate(0, 0, i))
	}
	if s2.EF != MaxEF {
		t.Errorf("EF = %v, want ceiling %v", s2.EF, MaxEF)
	}
}

func TestIntervalCap(t *testing.T) {
	s := NewState("boolean-search")
	now := t0
	for i := 0; i < 30; i++ {
		s.Record(100, now)
		now = s.NextReview
	}
	if s.IntervalDays != MaxIntervalDays {
		t.Errorf("interval = %d, want capped %d", s.IntervalDays, MaxIntervalDays)
	}
}

func TestDueAndOverdue(t *testing.T) {
	s := NewState("outreach")
	if s.Due(t0) {
		t.Error("a never-attempted skill is not due")
	}

	s.Record(90, t0)
	if s.Due(t0.Add(12 * time.Hour)) {
		t.Error("not due before the interval elapses")
	}
	if !s.Due(t0.AddDate(0, 0, 1)) {
		t.Error("due exactly at the next review date")
	}
	if got := s.OverdueDays(t0.AddDate(0, 0, 3)); math.Abs(got-2) > 1e-9 {
		t.Errorf("overdue = %v days, want 2", got)
	}
}

func TestRecordTracksQualityAndHistory(t *testing.T) {
	s := NewState("boolean-search")
	s.Record(92, t0)
	if s.LastQuality != 5 {
		t.Errorf("last quality = %d, want 5", s.LastQuality)
	}
	s.Record(48, t0.AddDate(0, 0, 1))
	if s.LastQuality != 2 {
		t.Errorf("last quality = %d, want 2", s.LastQuality)
	}
	if len(s.Scores) != 2 || s.Scores[0] != 92 || s.Scores[1] != 48 {
		t.Errorf("scores = %v, want [92 48]", s.Scores)
	}
}

func TestScoreHistoryBounded(t *testing.T) {
	s := NewState("outreach")
	for i := 0; i < ScoreHistoryLen+5; i++ {
		s.Record(50+i, t0.AddDate(0, 0, i))
	}
	if len(s.Scores) != ScoreHistoryLen {
		t.Fatalf("history = %d entries, want %d", len(s.Scores), ScoreHistoryLen)
	}
	// Oldest entries fall off; the newest is kept at the end.
	if s.Scores[0] != 55 || s.Scores[ScoreHistoryLen-1] != 50+ScoreHistoryLen+4 {
		t.Errorf("history window = [%d .. %d], want [55 .. %d]",
			s.Scores[0], s.Scores[ScoreHistoryLen-1], 50+ScoreHistoryLen+4)
	}
}

func TestAvgScoreRunningMean(t *testing.T) {
	s := NewState("jd")
	s.Record(40, t0)
	s.Record(80, t0.AddDate(0, 0, 1))
	if math.Abs(s.AvgScore-60) > 1e-9 {
		t.Errorf("avg = %v, want 60", s.AvgScore)
	}
	if s.LastScore != 80 || s.Attempts != 2 {
		t.Errorf("last/attempts = %d/%d", s.LastScore, s.Attempts)
	}
}
