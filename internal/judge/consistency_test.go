package judge

import (
	"math"
	"testing"

	"github.com/ssanyal/recruitdojo/internal/ensemble"
)

func TestShouldCrossValidate(t *testing.T) {
	c := NewChecker(DefaultCheckerConfig())

	tests := []struct {
		name       string
		validator  int
		ai         int
		want       bool
		wantReason string
	}{
		{"agreement mid-range", 50, 55, false, ""},
		{"large gap", 40, 75, true, ReasonLowAgreement},
		{"near promotion boundary", 74, 78, true, ReasonHighStakes},
		{"exactly on boundary", 88, 90, true, ReasonHighStakes},
		{"comfortably below boundary", 50, 60, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reason := c.ShouldCrossValidate(tt.validator, tt.ai)
			if got != tt.want || reason != tt.wantReason {
				t.Errorf("ShouldCrossValidate(%d, %d) = %v %q, want %v %q",
					tt.validator, tt.ai, got, reason, tt.want, tt.wantReason)
			}
		})
	}
}

func TestReconcileJudgesAgree(t *testing.T) {
	v := NewChecker(DefaultCheckerConfig()).Reconcile(80, 72)

	if v.Score != 80 {
		t.Errorf("score = %d, want primary 80", v.Score)
	}
	if v.Adjusted {
		t.Error("agreement should not adjust the AI weight")
	}
	if v.Reason != ReasonJudgesAgreed {
		t.Errorf("reason = %q", v.Reason)
	}
}

func TestReconcileJudgesDiverge(t *testing.T) {
	v := NewChecker(DefaultCheckerConfig()).Reconcile(90, 60)

	if v.Score != 75 {
		t.Errorf("score = %d, want averaged 75", v.Score)
	}
	if !v.Adjusted {
		t.Fatal("divergence should adjust the AI weight")
	}
	// Gap 30 → weight 0.6 * (1 - 0.3) = 0.42.
	if math.Abs(v.AIWeight-0.42) > 1e-9 {
		t.Errorf("AI weight = %v, want 0.42", v.AIWeight)
	}
	if v.Reason != ReasonJudgesDiverged {
		t.Errorf("reason = %q", v.Reason)
	}
}

func TestReconcileWeightReductionCaps(t *testing.T) {
	v := NewChecker(DefaultCheckerConfig()).Reconcile(100, 0)

	// Gap 100 caps at a 50% reduction.
	want := ensemble.DefaultAIWeight * 0.5
	if math.Abs(v.AIWeight-want) > 1e-9 {
		t.Errorf("AI weight = %v, want capped %v", v.AIWeight, want)
	}
	if v.Score != 50 {
		t.Errorf("score = %d, want 50", v.Score)
	}
}

func TestVerdictWeightFlowsIntoEnsemble(t *testing.T) {
	v := NewChecker(DefaultCheckerConfig()).Reconcile(90, 60)

	out := ensemble.Combine(ensemble.Input{
		ValidatorScore:      60,
		AIScore:             v.Score,
		AIAvailable:         true,
		AIWeightOverride:    v.AIWeight,
		HasAIWeightOverride: v.Adjusted,
	})
	sum := out.Weights.AI + out.Weights.Validator + out.Weights.Embedding
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("weights sum %v, want 1", sum)
	}
	if out.Weights.AI >= ensemble.DefaultAIWeight/(ensemble.DefaultAIWeight+ensemble.DefaultValidatorWeight) {
		t.Errorf("down-weighted AI share %v should be below the default share", out.Weights.AI)
	}
}
