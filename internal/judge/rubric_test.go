package judge

import (
	"testing"

	"github.com/ssanyal/recruitdojo/internal/catalog"
)

func testRubric() catalog.Rubric {
	return catalog.Rubric{Criteria: []catalog.Criterion{
		{Name: "keyword coverage", MaxPoints: 40},
		{Name: "boolean operators", MaxPoints: 40},
		{Name: "precision", MaxPoints: 20},
	}}
}

func TestReconcileExactMatch(t *testing.T) {
	jm := &Judgment{
		Score: 75,
		RubricBreakdown: map[string]RubricItem{
			"keyword coverage":  {Points: 30, MaxPoints: 40},
			"boolean operators": {Points: 30, MaxPoints: 40},
			"precision":         {Points: 15, MaxPoints: 20},
		},
	}
	rep := NewAggregator(DefaultAggregatorConfig()).Reconcile(jm, testRubric())

	if rep.RubricScore != 75 {
		t.Errorf("rubric score = %d, want 75", rep.RubricScore)
	}
	if rep.Diverged {
		t.Error("matching scores should not diverge")
	}
	if rep.AdjustedScore != 75 {
		t.Errorf("adjusted score = %d, want unchanged 75", rep.AdjustedScore)
	}
	if len(rep.Unmatched) != 0 {
		t.Errorf("unexpected unmatched criteria: %v", rep.Unmatched)
	}
}

func TestReconcileFuzzyMatch(t *testing.T) {
	// Typo and casing differences should still claim the rubric entries.
	jm := &Judgment{
		Score: 50,
		RubricBreakdown: map[string]RubricItem{
			"Keyword Coverge":   {Points: 20, MaxPoints: 40},
			"boolean operators": {Points: 20, MaxPoints: 40},
			"Precision":         {Points: 10, MaxPoints: 20},
		},
	}
	rep := NewAggregator(DefaultAggregatorConfig()).Reconcile(jm, testRubric())

	if rep.RubricScore != 50 {
		t.Errorf("rubric score = %d, want 50", rep.RubricScore)
	}
	if len(rep.Unmatched) != 0 {
		t.Errorf("fuzzy matching failed, unmatched: %v", rep.Unmatched)
	}
}

func TestReconcileClampsOverMax(t *testing.T) {
	jm := &Judgment{
		Score: 100,
		RubricBreakdown: map[string]RubricItem{
			"keyword coverage":  {Points: 55, MaxPoints: 40},
			"boolean operators": {Points: 40, MaxPoints: 40},
			"precision":         {Points: 20, MaxPoints: 20},
		},
	}
	rep := NewAggregator(DefaultAggregatorConfig()).Reconcile(jm, testRubric())

	if rep.RubricScore != 100 {
		t.Errorf("rubric score = %d, want 100 after clamping 55→40", rep.RubricScore)
	}
	if len(rep.Corrections) == 0 {
		t.Error("clamping should be recorded as a correction")
	}
	if rep.Awards[0].Points != 40 {
		t.Errorf("award = %v, want clamped to 40", rep.Awards[0].Points)
	}
}

func TestReconcileDivergenceBlends(t *testing.T) {
	// Judge says 90, rubric sums to 50: 0.75*90 + 0.25*50 = 80.
	jm := &Judgment{
		Score: 90,
		RubricBreakdown: map[string]RubricItem{
			"keyword coverage":  {Points: 20, MaxPoints: 40},
			"boolean operators": {Points: 20, MaxPoints: 40},
			"precision":         {Points: 10, MaxPoints: 20},
		},
	}
	rep := NewAggregator(DefaultAggregatorConfig()).Reconcile(jm, testRubric())

	if !rep.Diverged {
		t.Fatal("gap of 40 should be flagged as divergence")
	}
	if rep.AdjustedScore != 80 {
		t.Errorf("adjusted score = %d, want blended 80", rep.AdjustedScore)
	}
}

func TestReconcileDivergenceReportOnly(t *testing.T) {
	cfg := DefaultAggregatorConfig()
	cfg.BlendOnDivergence = false

	jm := &Judgment{
		Score: 90,
		RubricBreakdown: map[string]RubricItem{
			"keyword coverage": {Points: 10, MaxPoints: 40},
		},
	}
	rep := NewAggregator(cfg).Reconcile(jm, testRubric())

	if !rep.Diverged {
		t.Fatal("should still report divergence")
	}
	if rep.AdjustedScore != 90 {
		t.Errorf("adjusted score = %d, want untouched 90", rep.AdjustedScore)
	}
}

func TestReconcileUnmatchedReported(t *testing.T) {
	jm := &Judgment{
		Score: 40,
		RubricBreakdown: map[string]RubricItem{
			"keyword coverage": {Points: 40, MaxPoints: 40},
			"overall vibes":    {Points: 60, MaxPoints: 60},
		},
	}
	rep := NewAggregator(DefaultAggregatorConfig()).Reconcile(jm, testRubric())

	if len(rep.Unmatched) != 1 || rep.Unmatched[0] != "overall vibes" {
		t.Errorf("unmatched = %v, want [overall vibes]", rep.Unmatched)
	}
	// Invented criteria contribute nothing: 40 of 100 points.
	if rep.RubricScore != 40 {
		t.Errorf("rubric score = %d, want 40", rep.RubricScore)
	}
}

func TestReconcileMissingCriteriaScoreZero(t *testing.T) {
	jm := &Judgment{Score: 10, RubricBreakdown: map[string]RubricItem{}}
	rep := NewAggregator(DefaultAggregatorConfig()).Reconcile(jm, testRubric())

	if rep.RubricScore != 0 {
		t.Errorf("rubric score = %d, want 0 with no awards", rep.RubricScore)
	}
	if len(rep.Awards) != 3 {
		t.Errorf("awards = %d entries, want one per criterion", len(rep.Awards))
	}
}
