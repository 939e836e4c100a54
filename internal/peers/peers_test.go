package peers

import (
	"math"
	"testing"
)

func TestCompareTieScenario(t *testing.T) {
	// One exact tie in [40,50,60,70,80]: (below 2 + 0.5·1)/5 = 50th
	// percentile, top 50%.
	st := Compare(60, []int{40, 50, 60, 70, 80}, MinChallengeSamples)
	if st == nil {
		t.Fatal("expected stats for 5 samples")
	}
	if math.Abs(st.Percentile-50) > 1e-9 {
		t.Errorf("percentile = %v, want 50", st.Percentile)
	}
	if st.TopPercent != 50 {
		t.Errorf("top percent = %d, want 50", st.TopPercent)
	}
	if st.Rank != 3 {
		t.Errorf("rank = %d, want 3", st.Rank)
	}
	if st.Mean != 60 {
		t.Errorf("mean = %v, want 60", st.Mean)
	}
}

func TestCompareTopScoreFloorsAtOne(t *testing.T) {
	st := Compare(100, []int{10, 20, 30, 40, 50}, MinChallengeSamples)
	if st.TopPercent != 1 {
		t.Errorf("top percent = %d, want floor of 1", st.TopPercent)
	}
	if st.Rank != 1 {
		t.Errorf("rank = %d, want 1", st.Rank)
	}
}

func TestCompareBottomScore(t *testing.T) {
	st := Compare(5, []int{10, 20, 30, 40, 50}, MinChallengeSamples)
	if st.Percentile != 0 {
		t.Errorf("percentile = %v, want 0", st.Percentile)
	}
	if st.Rank != 6 {
		t.Errorf("rank = %d, want 6 (below every peer)", st.Rank)
	}
}

func TestCompareMinimumSampleGate(t *testing.T) {
	if st := Compare(60, []int{50, 70}, MinChallengeSamples); st != nil {
		t.Errorf("stats = %+v, want nil below the sample minimum", st)
	}
	if st := Compare(60, []int{40, 50, 60, 70, 80}, MinCategorySamples); st != nil {
		t.Error("category-level gate should require more samples")
	}
}

func TestComparePercentileValues(t *testing.T) {
	peers := make([]int, 0, 11)
	for s := 0; s <= 100; s += 10 {
		peers = append(peers, s)
	}
	st := Compare(50, peers, MinChallengeSamples)
	if st.P10 != 10 || st.P25 != 25 || st.P75 != 75 || st.P90 != 90 {
		t.Errorf("percentile values = %v/%v/%v/%v", st.P10, st.P25, st.P75, st.P90)
	}
}

func TestCurveDisabledByDefault(t *testing.T) {
	st := Compare(40, []int{20, 30, 40, 50, 60}, MinChallengeSamples)
	if got := Curve("", 40, st, DefaultCurveTarget); got != 40 {
		t.Errorf("no mode: %d, want unchanged 40", got)
	}
	if got := Curve("parabola", 40, st, DefaultCurveTarget); got != 40 {
		t.Errorf("unknown mode: %d, want unchanged 40", got)
	}
}

func TestCurvePullsTowardTarget(t *testing.T) {
	// Low-scoring cohort (mean 40): curving toward 70 raises scores.
	st := Compare(40, []int{20, 30, 40, 50, 60}, MinChallengeSamples)
	for _, mode := range []string{CurveLinear, CurveSqrt, CurveBell} {
		got := Curve(mode, 40, st, DefaultCurveTarget)
		if got <= 40 {
			t.Errorf("%s curve of 40 = %d, want an increase", mode, got)
		}
		if got > 100 {
			t.Errorf("%s curve out of range: %d", mode, got)
		}
	}
}

func TestCurveDampsExtremes(t *testing.T) {
	scores := []int{20, 30, 40, 50, 60}
	st := Compare(40, scores, MinChallengeSamples)

	centralShift := Curve(CurveBell, 40, st, DefaultCurveTarget) - 40
	extremeShift := Curve(CurveBell, 95, st, DefaultCurveTarget) - 95
	if abs(extremeShift) >= abs(centralShift) {
		t.Errorf("extreme score shifted %d, central shifted %d; extremes should move less",
			extremeShift, centralShift)
	}
}

func TestCurveZeroStdDevNoop(t *testing.T) {
	st := Compare(50, []int{50, 50, 50, 50, 50}, MinChallengeSamples)
	if got := Curve(CurveLinear, 80, st, DefaultCurveTarget); got != 80 {
		t.Errorf("degenerate distribution: %d, want unchanged 80", got)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
