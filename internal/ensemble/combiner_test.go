package ensemble

import (
	"math"
	"testing"
)

func TestCombineAllSignals(t *testing.T) {
	out := Combine(Input{
		ValidatorScore:      80,
		AIScore:             90,
		AIAvailable:         true,
		Similarity:          0.7,
		SimilarityAvailable: true,
	})

	// 0.6*90 + 0.25*80 + 0.15*70 = 84.5 → 85 after rounding.
	if out.Score != 85 {
		t.Errorf("score = %d, want 85", out.Score)
	}
	if out.Confidence <= 0 || out.Confidence > 100 {
		t.Errorf("confidence %d out of range", out.Confidence)
	}
}

func TestCombineValidatorOnly(t *testing.T) {
	out := Combine(Input{ValidatorScore: 42})
	if out.Score != 42 {
		t.Errorf("score = %d, want 42 (validator passes through)", out.Score)
	}
	if out.Weights.Validator != 1 {
		t.Errorf("validator weight = %v, want 1", out.Weights.Validator)
	}
}

func TestCombineWeightsRenormalize(t *testing.T) {
	overrides := []float64{0, 0.1, 0.3, 0.6, 0.9, 1}
	for _, ov := range overrides {
		for _, simAvailable := range []bool{true, false} {
			in := Input{
				ValidatorScore:      70,
				AIScore:             70,
				AIAvailable:         true,
				Similarity:          0.5,
				SimilarityAvailable: simAvailable,
				AIWeightOverride:    ov,
				HasAIWeightOverride: true,
			}
			w := Combine(in).Weights
			sum := w.AI + w.Validator + w.Embedding
			if math.Abs(sum-1) > 1e-9 {
				t.Errorf("override %v sim=%v: weights sum to %v, want 1", ov, simAvailable, sum)
			}
		}
	}
}

func TestCombineOverrideShiftsScore(t *testing.T) {
	base := Input{
		ValidatorScore: 40,
		AIScore:        100,
		AIAvailable:    true,
	}
	full := Combine(base).Score

	lowered := base
	lowered.AIWeightOverride = 0.2
	lowered.HasAIWeightOverride = true
	reduced := Combine(lowered).Score

	if reduced >= full {
		t.Errorf("lower AI weight should pull toward the validator: %d >= %d", reduced, full)
	}
}

func TestCombineRefAdjustment(t *testing.T) {
	in := Input{ValidatorScore: 50, AIScore: 50, AIAvailable: true}
	plain := Combine(in).Score

	in.RefAdjustment = 7
	boosted := Combine(in).Score
	if boosted != plain+7 {
		t.Errorf("adjustment not applied: %d vs %d", boosted, plain)
	}

	in.RefAdjustment = 1000
	if got := Combine(in).Score; got != 100 {
		t.Errorf("score %d not clamped to 100", got)
	}

	in.RefAdjustment = -1000
	if got := Combine(in).Score; got != 0 {
		t.Errorf("score %d not clamped to 0", got)
	}
}

func TestCombineDeterministic(t *testing.T) {
	in := Input{
		ValidatorScore:      63,
		AIScore:             71,
		AIAvailable:         true,
		Similarity:          0.44,
		SimilarityAvailable: true,
		RefAdjustment:       -2.5,
	}
	first := Combine(in)
	for i := 0; i < 10; i++ {
		if got := Combine(in); got != first {
			t.Fatalf("run %d differs: %+v vs %+v", i, got, first)
		}
	}
}

func TestConfidenceDropsWithDisagreement(t *testing.T) {
	agree := Combine(Input{ValidatorScore: 80, AIScore: 82, AIAvailable: true})
	disagree := Combine(Input{ValidatorScore: 20, AIScore: 95, AIAvailable: true})
	if disagree.Confidence >= agree.Confidence {
		t.Errorf("disagreement should lower confidence: %d >= %d", disagree.Confidence, agree.Confidence)
	}
}
