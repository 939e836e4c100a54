// Package ensemble combines the independent scoring signals (rule-based
// validation, the LLM judgment, embedding similarity and the
// multi-reference adjustment) into one final score with a reported
// confidence. Combination is deterministic: identical inputs and weights
// always produce identical output.
package ensemble

import "math"

// Default signal weights. The AI judgment dominates, rule validation is
// secondary and raw embedding similarity is a minor corroborating signal.
// Weights for absent signals are dropped and the rest renormalized.
const (
	DefaultAIWeight        = 0.60
	DefaultValidatorWeight = 0.25
	DefaultEmbeddingWeight = 0.15
)

// Input carries the signals available for one submission.
type Input struct {
	// ValidatorScore is the deterministic rule-based score [0,100].
	// Always present.
	ValidatorScore int

	// AIScore is the LLM judgment [0,100], valid only when AIAvailable.
	AIScore     int
	AIAvailable bool

	// Similarity is the embedding similarity to reference answers [0,1],
	// valid only when SimilarityAvailable.
	Similarity          float64
	SimilarityAvailable bool

	// RefAdjustment is the signed multi-reference score adjustment in
	// points, applied after the weighted sum.
	RefAdjustment float64

	// AIWeightOverride replaces DefaultAIWeight when HasAIWeightOverride
	// is set. The consistency checker lowers it on cross-model
	// disagreement. Must be in [0,1].
	AIWeightOverride    float64
	HasAIWeightOverride bool
}

// Weights are the renormalized weights actually used in the weighted sum.
// They sum to 1 over the active signals.
type Weights struct {
	AI        float64
	Validator float64
	Embedding float64
}

// Combined is the ensemble outcome.
type Combined struct {
	// Score is the final combined score [0,100].
	Score int
	// Confidence is a percentage [0,100] reflecting signal coverage and
	// cross-signal agreement. Later stages read it to decide whether
	// corrective action is warranted.
	Confidence int
	// Weights are the weights used, after override and renormalization.
	Weights Weights
}

// Combine merges the available signals into one score.
func Combine(in Input) Combined {
	w := activeWeights(in)

	sum := w.Validator * float64(in.ValidatorScore)
	if in.AIAvailable {
		sum += w.AI * float64(in.AIScore)
	}
	if in.SimilarityAvailable {
		sum += w.Embedding * clamp01(in.Similarity) * 100
	}

	sum += in.RefAdjustment

	return Combined{
		Score:      clampScore(int(math.Round(sum))),
		Confidence: confidence(in, w),
		Weights:    w,
	}
}

// activeWeights selects default weights for the signals present, applies
// any AI override, and renormalizes so the active weights sum to 1.
func activeWeights(in Input) Weights {
	w := Weights{Validator: DefaultValidatorWeight}

	if in.AIAvailable {
		w.AI = DefaultAIWeight
		if in.HasAIWeightOverride {
			w.AI = clamp01(in.AIWeightOverride)
		}
	}
	if in.SimilarityAvailable {
		w.Embedding = DefaultEmbeddingWeight
	}

	total := w.AI + w.Validator + w.Embedding
	if total <= 0 {
		// Nothing but an overridden-to-zero AI weight and no validator
		// weight cannot happen (validator weight is constant), but guard
		// against a degenerate zero total anyway.
		return Weights{Validator: 1}
	}

	w.AI /= total
	w.Validator /= total
	w.Embedding /= total
	return w
}

// confidence blends signal coverage (how much of the full ensemble was
// available) with agreement (how close the available signals landed).
func confidence(in Input, w Weights) int {
	coverage := DefaultValidatorWeight
	if in.AIAvailable {
		coverage += DefaultAIWeight
	}
	if in.SimilarityAvailable {
		coverage += DefaultEmbeddingWeight
	}

	scores := []float64{float64(in.ValidatorScore)}
	if in.AIAvailable {
		scores = append(scores, float64(in.AIScore))
	}
	if in.SimilarityAvailable {
		scores = append(scores, clamp01(in.Similarity)*100)
	}

	lo, hi := scores[0], scores[0]
	for _, s := range scores[1:] {
		if s < lo {
			lo = s
		}
		if s > hi {
			hi = s
		}
	}
	agreement := 1 - (hi-lo)/100

	// An override below the default signals reduced trust in the AI
	// judgment; reflect that in the reported confidence.
	trust := 1.0
	if in.AIAvailable && in.HasAIWeightOverride && in.AIWeightOverride < DefaultAIWeight {
		trust = 0.5 + 0.5*(in.AIWeightOverride/DefaultAIWeight)
	}

	pct := (0.6*coverage + 0.4*agreement) * trust * 100
	return clampScore(int(math.Round(pct)))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
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
