// Package judge sends submissions to an LLM for structured scoring and
// cross-checks the result: a model fallback chain with schema-validated
// responses, an independent rubric-sum audit, and a cross-model
// consistency check that reweights the AI signal on disagreement.
package judge

import (
	"github.com/ssanyal/recruitdojo/internal/catalog"
)

// DimensionNames are the five fixed scoring dimensions every judgment
// reports, independent of the challenge rubric.
var DimensionNames = []string{
	"accuracy",
	"completeness",
	"clarity",
	"creativity",
	"professionalism",
}

// RubricItem is the judge's point award for one rubric criterion.
type RubricItem struct {
	Points    float64 `json:"points"`
	MaxPoints float64 `json:"maxPoints"`
	Reasoning string  `json:"reasoning"`
}

// Judgment is one schema-validated LLM scoring response.
type Judgment struct {
	// Score is the judge's top-line score [0,100].
	Score int `json:"score"`

	// Dimensions holds the five fixed dimension scores [0,100].
	Dimensions map[string]int `json:"dimensions"`

	// SkillsRadar is an open-ended skill→score map the judge may use for
	// finer-grained skills it observed.
	SkillsRadar map[string]int `json:"skillsRadar"`

	// RubricBreakdown is the judge's per-criterion point award, keyed by
	// the criterion name as the judge reported it.
	RubricBreakdown map[string]RubricItem `json:"rubricBreakdown"`

	// Strengths and Improvements each carry 1–5 short observations.
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`

	// FeedbackHTML is the judge's prose feedback as an HTML fragment.
	FeedbackHTML string `json:"feedbackHtml"`

	// Model records which model produced this judgment.
	Model string `json:"-"`

	// FallbacksUsed counts how many models failed before this one answered.
	FallbacksUsed int `json:"-"`
}

// Request describes one submission to be judged.
type Request struct {
	Challenge  *catalog.Challenge
	Submission string
}
