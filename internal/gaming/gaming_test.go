package gaming

import (
	"strings"
	"testing"

	"github.com/ssanyal/recruitdojo/internal/catalog"
)

// uniformProse is four sentences of exactly eight words each, one of them
// carrying a stock phrase: enough to trip the AI-prose heuristic.
const uniformProse = "Furthermore, we should discuss the role requirements today. " +
	"Our team values clear writing and honest outreach. " +
	"Candidates appreciate context about the team and product. " +
	"Please review the role and share your thoughts."

func TestDetectCleanSubmission(t *testing.T) {
	res := NewDetector().Detect(Input{
		Submission: "Hi Maria, I saw your work on the payments platform. We are hiring a senior Go engineer and I think the scope would genuinely interest you. No pressure at all, happy to share details!",
		Rules:      catalog.ValidationRules{RequiredKeywords: []string{"go"}},
	})

	if res.Level != RiskNone || res.Penalty != 0 {
		t.Errorf("clean text: level %s penalty %d flags %v", res.Level, res.Penalty, res.Flags)
	}
}

func TestDetectKeywordStuffing(t *testing.T) {
	res := NewDetector().Detect(Input{
		Submission: strings.Repeat("golang berlin ", 10),
		Rules: catalog.ValidationRules{
			RequiredKeywords: []string{"golang", "berlin"},
		},
	})

	if res.Level != RiskHigh {
		t.Errorf("level = %s, want high for pure keyword repetition", res.Level)
	}
	if res.Penalty != 15 {
		t.Errorf("penalty = %d, want 15", res.Penalty)
	}
	if len(res.Flags) == 0 || !strings.HasPrefix(res.Flags[0], "keyword_stuffing") {
		t.Errorf("flags = %v, want a keyword_stuffing flag", res.Flags)
	}
}

func TestDetectTemplateCopy(t *testing.T) {
	example := "search for golang engineers in berlin using boolean operators and quoted phrases"
	res := NewDetector().Detect(Input{
		Submission:      example,
		ExampleSolution: example,
	})

	if res.Level != RiskHigh {
		t.Errorf("level = %s, want high for a verbatim example copy", res.Level)
	}
	found := false
	for _, f := range res.Flags {
		if strings.HasPrefix(f, "template_copy") {
			found = true
		}
	}
	if !found {
		t.Errorf("flags = %v, want template_copy", res.Flags)
	}
}

func TestDetectAIProse(t *testing.T) {
	res := NewDetector().Detect(Input{Submission: uniformProse})

	if res.Level != RiskLow {
		t.Errorf("level = %s (score %d), want low", res.Level, res.RiskScore)
	}
	if len(res.Flags) != 1 || !strings.HasPrefix(res.Flags[0], "ai_prose") {
		t.Errorf("flags = %v, want one ai_prose flag", res.Flags)
	}
}

func TestContextAdjustmentReducesPenalty(t *testing.T) {
	baseline := &StyleBaseline{}
	for i := 0; i < 5; i++ {
		baseline.Observe(uniformProse)
	}

	res := NewDetector().Detect(Input{Submission: uniformProse, Baseline: baseline})

	if res.Level != RiskNone {
		t.Errorf("level = %s (score %d), want none after context adjustment", res.Level, res.RiskScore)
	}
	if res.ContextReason == "" {
		t.Error("context adjustment must surface its reason")
	}
}

func TestContextAdjustmentNeedsSamples(t *testing.T) {
	baseline := &StyleBaseline{}
	baseline.Observe(uniformProse)

	res := NewDetector().Detect(Input{Submission: uniformProse, Baseline: baseline})

	if res.ContextReason != "" {
		t.Error("a one-sample baseline should not adjust anything")
	}
	if res.Level != RiskLow {
		t.Errorf("level = %s, want unadjusted low", res.Level)
	}
}

func TestContextAdjustmentRejectsStyleDrift(t *testing.T) {
	baseline := &StyleBaseline{}
	for i := 0; i < 5; i++ {
		baseline.Observe("Short. Very short. Tiny. Brief note here. Done now.")
	}

	res := NewDetector().Detect(Input{Submission: uniformProse, Baseline: baseline})
	if res.ContextReason != "" {
		t.Error("a drifting style should not earn a reduction")
	}
}

func TestPenaltyTable(t *testing.T) {
	want := map[RiskLevel]int{
		RiskNone:     0,
		RiskLow:      3,
		RiskMedium:   8,
		RiskHigh:     15,
		RiskCritical: 30,
	}
	for level, penalty := range want {
		if got := level.Penalty(); got != penalty {
			t.Errorf("%s penalty = %d, want %d", level, got, penalty)
		}
	}
}

func TestDetectDeterministic(t *testing.T) {
	in := Input{
		Submission:      uniformProse,
		ExampleSolution: "please review the role and share your thoughts",
		Rules:           catalog.ValidationRules{RequiredKeywords: []string{"role"}},
	}
	first := NewDetector().Detect(in)
	for i := 0; i < 10; i++ {
		got := NewDetector().Detect(in)
		if got.Level != first.Level || got.RiskScore != first.RiskScore || len(got.Flags) != len(first.Flags) {
			t.Fatalf("run %d differs: %+v vs %+v", i, got, first)
		}
	}
}
