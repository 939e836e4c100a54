package refstore

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/ssanyal/recruitdojo/internal/catalog"
)

// ScorerConfig controls multi-reference comparison.
type ScorerConfig struct {
	// MaxReferences bounds how many references feed the comparison.
	MaxReferences int
	// MinReferenceScore filters out references below this score.
	MinReferenceScore int
	// SimilarityFloor drops references less similar than this.
	SimilarityFloor float64
	// MinSameChallenge is the reference count below which cross-game
	// fallback kicks in.
	MinSameChallenge int
	// CrossGameWeight discounts similarities borrowed from related
	// challenges. Tunable; the default reflects that a same-category,
	// same-difficulty reference is still a weaker comparison target.
	CrossGameWeight float64
	// BaseWeight and VerifiedBonus build the dynamic adjustment weight:
	// base plus a bonus per verified reference, capped at MaxWeight.
	BaseWeight    float64
	VerifiedBonus float64
	// MaxWeight caps the adjustment at this share of the total score.
	MaxWeight float64
}

// DefaultScorerConfig returns the standard comparison parameters.
func DefaultScorerConfig() ScorerConfig {
	return ScorerConfig{
		MaxReferences:     10,
		MinReferenceScore: 70,
		SimilarityFloor:   0.3,
		MinSameChallenge:  3,
		CrossGameWeight:   0.7,
		BaseWeight:        0.10,
		VerifiedBonus:     0.02,
		MaxWeight:         0.20,
	}
}

// Comparison is the outcome of comparing a submission against the
// reference store.
type Comparison struct {
	// AvgSimilarity is the mean (discounted) similarity over the
	// references used.
	AvgSimilarity float64
	// BestSimilarity and BestScore describe the closest reference.
	BestSimilarity float64
	BestScore      int
	// WeightedScore is the mean of similarity × reference score.
	WeightedScore float64
	// Adjustment is the bounded signed score adjustment in points.
	Adjustment float64
	// ReferencesUsed and VerifiedUsed count the references that passed
	// the filters.
	ReferencesUsed int
	VerifiedUsed   int
	// CrossGame reports whether related-challenge references were used.
	CrossGame bool
}

// Scorer compares submissions against stored references.
type Scorer struct {
	repo    Repo
	catalog *catalog.Catalog
	cfg     ScorerConfig
}

// NewScorer creates a multi-reference scorer.
func NewScorer(repo Repo, cat *catalog.Catalog, cfg ScorerConfig) *Scorer {
	return &Scorer{repo: repo, catalog: cat, cfg: cfg}
}

// scored is a reference with its (possibly discounted) similarity.
type scored struct {
	ref       *Reference
	sim       float64
	crossGame bool
}

// Compare ranks stored references against the submission embedding and
// derives the similarity summary and score adjustment. A nil Comparison
// with a nil error means no usable references exist; the pipeline treats
// that as "no similarity signal", not a failure.
func (s *Scorer) Compare(ctx context.Context, challengeID string, embedding []float64) (*Comparison, error) {
	if len(embedding) == 0 {
		return nil, nil
	}

	candidates, err := s.gather(ctx, challengeID, embedding)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].sim > candidates[j].sim
	})
	if len(candidates) > s.cfg.MaxReferences {
		candidates = candidates[:s.cfg.MaxReferences]
	}

	cmp := &Comparison{
		BestSimilarity: candidates[0].sim,
		BestScore:      candidates[0].ref.Score,
	}

	var simSum, weightedSum float64
	for _, c := range candidates {
		simSum += c.sim
		weightedSum += c.sim * float64(c.ref.Score)
		cmp.ReferencesUsed++
		if c.ref.Verified {
			cmp.VerifiedUsed++
		}
		if c.crossGame {
			cmp.CrossGame = true
		}
	}
	cmp.AvgSimilarity = simSum / float64(cmp.ReferencesUsed)
	cmp.WeightedScore = weightedSum / float64(cmp.ReferencesUsed)
	cmp.Adjustment = s.adjustment(cmp.AvgSimilarity, cmp.VerifiedUsed)

	return cmp, nil
}

// gather collects same-challenge references, falling back to related
// challenges (same category and difficulty) with discounted similarity
// when too few exist.
func (s *Scorer) gather(ctx context.Context, challengeID string, embedding []float64) ([]scored, error) {
	same, err := s.load(ctx, challengeID, embedding, 1, false)
	if err != nil {
		return nil, err
	}
	if len(same) >= s.cfg.MinSameChallenge || s.catalog == nil {
		return same, nil
	}

	for _, rel := range s.catalog.Related(challengeID) {
		extra, err := s.load(ctx, rel.ID, embedding, s.cfg.CrossGameWeight, true)
		if err != nil {
			return nil, err
		}
		same = append(same, extra...)
	}
	return same, nil
}

func (s *Scorer) load(ctx context.Context, challengeID string, embedding []float64, discount float64, crossGame bool) ([]scored, error) {
	refs, err := s.repo.ActiveByChallenge(ctx, challengeID)
	if err != nil {
		return nil, fmt.Errorf("load references for %s: %w", challengeID, err)
	}

	var out []scored
	for _, r := range refs {
		if r.Score < s.cfg.MinReferenceScore {
			continue
		}
		sim := Cosine(embedding, r.Embedding) * discount
		if sim < s.cfg.SimilarityFloor {
			continue
		}
		out = append(out, scored{ref: r, sim: sim, crossGame: crossGame})
	}
	return out, nil
}

// adjustment maps average similarity to a signed point adjustment:
// centered at 0.5, scaled by a weight that grows with verified-reference
// count and is capped so the adjustment never exceeds MaxWeight of the
// total score.
func (s *Scorer) adjustment(avgSim float64, verified int) float64 {
	weight := s.cfg.BaseWeight + s.cfg.VerifiedBonus*float64(verified)
	weight = math.Min(weight, s.cfg.MaxWeight)
	return (avgSim - 0.5) * 2 * weight * 100
}
