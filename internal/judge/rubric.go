package judge

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/agext/levenshtein"

	"github.com/ssanyal/recruitdojo/internal/catalog"
)

// Rubric aggregation defaults. The judge's top-line score and its own
// per-criterion awards should roughly agree; when they diverge past the
// threshold, the rubric-derived score is blended in rather than either
// number being discarded.
const (
	// fuzzyMatchThreshold is the minimum normalized Levenshtein
	// similarity for a reported criterion name to match a rubric entry.
	fuzzyMatchThreshold = 0.8

	DefaultDivergenceThreshold = 15
	DefaultBlendWeight         = 0.25
)

// AggregatorConfig controls rubric reconciliation.
type AggregatorConfig struct {
	// ClampOverMax caps reported awards at the criterion maximum. When
	// false, over-max awards are only reported as corrections.
	ClampOverMax bool
	// BlendOnDivergence enables blending the rubric-derived score into
	// the top-line score when they diverge past DivergenceThreshold.
	BlendOnDivergence bool
	// DivergenceThreshold is the absolute point gap that triggers a
	// blend (and is always reported).
	DivergenceThreshold int
	// BlendWeight is the rubric-derived score's share in the blend.
	BlendWeight float64
}

// DefaultAggregatorConfig enables both corrective behaviors.
func DefaultAggregatorConfig() AggregatorConfig {
	return AggregatorConfig{
		ClampOverMax:        true,
		BlendOnDivergence:   true,
		DivergenceThreshold: DefaultDivergenceThreshold,
		BlendWeight:         DefaultBlendWeight,
	}
}

// CriterionAward is one reconciled rubric line.
type CriterionAward struct {
	// Name is the authoritative criterion name from the challenge rubric.
	Name      string
	Points    float64
	MaxPoints int
	Reasoning string
}

// RubricReport is the outcome of reconciling the judge's breakdown with
// the authoritative rubric.
type RubricReport struct {
	// Awards holds one entry per authoritative criterion, in rubric
	// order. Criteria the judge never reported have zero points.
	Awards []CriterionAward

	// Unmatched lists reported criterion names that matched nothing in
	// the authoritative rubric. Their points are ignored.
	Unmatched []string

	// Corrections lists human-readable notes about adjustments made
	// during reconciliation (clamped awards, blended score).
	Corrections []string

	// RubricScore is the rubric-derived score [0,100].
	RubricScore int

	// Divergence is |judge score − rubric score| in points.
	Divergence int

	// Diverged reports whether Divergence exceeded the threshold.
	Diverged bool

	// AdjustedScore is the top-line score after any blend; equal to the
	// judge score when no blend applied.
	AdjustedScore int
}

// Aggregator reconciles judge rubric breakdowns against challenge rubrics.
type Aggregator struct {
	cfg AggregatorConfig
}

// NewAggregator creates a rubric aggregator.
func NewAggregator(cfg AggregatorConfig) *Aggregator {
	return &Aggregator{cfg: cfg}
}

// Reconcile matches the judge's reported criteria to the authoritative
// rubric, clamps over-max awards, derives a rubric score and compares it
// to the judge's top-line score.
func (a *Aggregator) Reconcile(jm *Judgment, rubric catalog.Rubric) RubricReport {
	rep := RubricReport{AdjustedScore: jm.Score}

	matched, claimed := matchCriteria(jm.RubricBreakdown, rubric.Criteria)

	var awarded float64
	for _, c := range rubric.Criteria {
		award := CriterionAward{Name: c.Name, MaxPoints: c.MaxPoints}
		if item, ok := matched[c.Name]; ok {
			award.Points = item.Points
			award.Reasoning = item.Reasoning
			if award.Points > float64(c.MaxPoints) {
				rep.Corrections = append(rep.Corrections,
					fmt.Sprintf("%q awarded %.1f of %d points", c.Name, award.Points, c.MaxPoints))
				if a.cfg.ClampOverMax {
					award.Points = float64(c.MaxPoints)
				}
			}
			if award.Points < 0 {
				award.Points = 0
			}
		}
		awarded += award.Points
		rep.Awards = append(rep.Awards, award)
	}

	for name := range jm.RubricBreakdown {
		if !claimed[name] {
			rep.Unmatched = append(rep.Unmatched, name)
		}
	}
	sort.Strings(rep.Unmatched)

	total := rubric.TotalPoints()
	if total > 0 {
		rep.RubricScore = clampScore(int(math.Round(awarded * 100 / float64(total))))
	}

	rep.Divergence = abs(jm.Score - rep.RubricScore)
	rep.Diverged = total > 0 && rep.Divergence > a.cfg.DivergenceThreshold

	if rep.Diverged && a.cfg.BlendOnDivergence {
		blended := (1-a.cfg.BlendWeight)*float64(jm.Score) + a.cfg.BlendWeight*float64(rep.RubricScore)
		rep.AdjustedScore = clampScore(int(math.Round(blended)))
		rep.Corrections = append(rep.Corrections,
			fmt.Sprintf("score %d diverged from rubric-derived %d; blended to %d",
				jm.Score, rep.RubricScore, rep.AdjustedScore))
	}

	return rep
}

// matchCriteria maps authoritative criterion names to reported rubric
// items and returns the set of reported names claimed. Exact
// case-insensitive matches win; remaining criteria take the most similar
// unclaimed reported name above the fuzzy threshold.
func matchCriteria(reported map[string]RubricItem, criteria []catalog.Criterion) (map[string]RubricItem, map[string]bool) {
	out := make(map[string]RubricItem, len(criteria))
	claimed := make(map[string]bool, len(reported))

	// Deterministic iteration over reported names.
	names := make([]string, 0, len(reported))
	for name := range reported {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, c := range criteria {
		for _, name := range names {
			if !claimed[name] && normalize(name) == normalize(c.Name) {
				out[c.Name] = reported[name]
				claimed[name] = true
				break
			}
		}
	}

	params := levenshtein.NewParams()
	for _, c := range criteria {
		if _, ok := out[c.Name]; ok {
			continue
		}
		best, bestSim := "", 0.0
		for _, name := range names {
			if claimed[name] {
				continue
			}
			sim := levenshtein.Similarity(normalize(name), normalize(c.Name), params)
			if sim > bestSim {
				best, bestSim = name, sim
			}
		}
		if bestSim >= fuzzyMatchThreshold {
			out[c.Name] = reported[best]
			claimed[best] = true
		}
	}

	return out, claimed
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
