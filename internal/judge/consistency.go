package judge

import (
	"fmt"
	"math"

	"github.com/ssanyal/recruitdojo/internal/ensemble"
)

// Machine-readable consistency reasons, surfaced in feedback and logs.
const (
	ReasonLowAgreement   = "low_signal_agreement"
	ReasonHighStakes     = "high_stakes_score"
	ReasonJudgesAgreed   = "cross_validation_agreed"
	ReasonJudgesDiverged = "cross_validation_diverged"
)

// CheckerConfig controls when a second judgment is requested and how
// divergent judgments are reconciled.
type CheckerConfig struct {
	// AgreementGap is the validator/AI point gap at or above which a
	// second judgment is requested.
	AgreementGap int
	// Boundaries are score thresholds with promotion consequences; a
	// judgment within BoundaryWindow of one is treated as high stakes.
	Boundaries     []int
	BoundaryWindow int
	// DisagreementThreshold is the point gap between two judgments above
	// which they are considered divergent.
	DisagreementThreshold int
}

// DefaultCheckerConfig matches the difficulty engine's promotion
// thresholds.
func DefaultCheckerConfig() CheckerConfig {
	return CheckerConfig{
		AgreementGap:          25,
		Boundaries:            []int{70, 80, 90},
		BoundaryWindow:        5,
		DisagreementThreshold: 15,
	}
}

// Verdict is the outcome of a consistency check.
type Verdict struct {
	// Score is the reconciled AI score.
	Score int
	// AIWeight is the ensemble AI weight to use; set only when Adjusted.
	AIWeight float64
	Adjusted bool
	// Reason is one of the machine-readable Reason constants.
	Reason string
	// Detail is a human-readable explanation for the feedback report.
	Detail string
}

// Checker decides when cross-model validation is warranted and
// reconciles divergent judgments.
type Checker struct {
	cfg CheckerConfig
}

// NewChecker creates a consistency checker.
func NewChecker(cfg CheckerConfig) *Checker {
	return &Checker{cfg: cfg}
}

// ShouldCrossValidate reports whether a second judgment is warranted for
// the given validator and AI scores, and why.
func (c *Checker) ShouldCrossValidate(validatorScore, aiScore int) (bool, string) {
	if abs(validatorScore-aiScore) >= c.cfg.AgreementGap {
		return true, ReasonLowAgreement
	}
	for _, b := range c.cfg.Boundaries {
		if abs(aiScore-b) <= c.cfg.BoundaryWindow {
			return true, ReasonHighStakes
		}
	}
	return false, ""
}

// Reconcile merges the primary and second judgments. Agreement keeps the
// primary score and the default AI weight. Divergence averages the two
// and lowers the ensemble AI weight in proportion to the gap, so a
// submission two models cannot agree on leans harder on the
// deterministic signals.
func (c *Checker) Reconcile(primary, second int) Verdict {
	gap := abs(primary - second)
	if gap <= c.cfg.DisagreementThreshold {
		return Verdict{
			Score:  primary,
			Reason: ReasonJudgesAgreed,
			Detail: fmt.Sprintf("A second model agreed with this score (gap %d points).", gap),
		}
	}

	score := int(math.Round(float64(primary+second) / 2))

	// Gap 15 keeps near-full weight; gap 50+ halves it.
	reduction := math.Min(float64(gap), 50) / 100
	weight := ensemble.DefaultAIWeight * (1 - reduction)

	return Verdict{
		Score:    clampScore(score),
		AIWeight: weight,
		Adjusted: true,
		Reason:   ReasonJudgesDiverged,
		Detail:   fmt.Sprintf("Two models scored this %d points apart; their average was used and the AI signal was down-weighted.", gap),
	}
}
