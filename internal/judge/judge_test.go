package judge

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ssanyal/recruitdojo/internal/catalog"
	"github.com/ssanyal/recruitdojo/internal/llm"
)

func testChallenge() *catalog.Challenge {
	return &catalog.Challenge{
		ID:            "bool-test",
		Title:         "Boolean basics",
		Prompt:        "Write a boolean search for Go engineers in Berlin.",
		SkillCategory: catalog.CategoryBooleanSearch,
		Difficulty:    catalog.DifficultyBeginner,
		Rubric: catalog.Rubric{Criteria: []catalog.Criterion{
			{Name: "keyword coverage", MaxPoints: 40},
			{Name: "boolean operators", MaxPoints: 40},
			{Name: "precision", MaxPoints: 20},
		}},
	}
}

func scorecardJSON(score int) json.RawMessage {
	card := map[string]any{
		"score": score,
		"dimensions": map[string]int{
			"accuracy": score, "completeness": score, "clarity": score,
			"creativity": score, "professionalism": score,
		},
		"skillsRadar": map[string]int{"sourcing": score},
		"rubricBreakdown": map[string]any{
			"keyword coverage":  map[string]any{"points": 30, "maxPoints": 40, "reasoning": "solid terms"},
			"boolean operators": map[string]any{"points": 30, "maxPoints": 40, "reasoning": "correct OR groups"},
			"precision":         map[string]any{"points": 15, "maxPoints": 20, "reasoning": "some noise"},
		},
		"strengths":    []string{"good synonyms"},
		"improvements": []string{"add exclusions"},
		"feedbackHtml": "<p>Solid start.</p>",
	}
	raw, err := json.Marshal(card)
	if err != nil {
		panic(err)
	}
	return raw
}

func TestEvaluatePrimarySucceeds(t *testing.T) {
	primary := llm.NewMockProvider(llm.MockResponse{Content: scorecardJSON(82)})
	j := New([]llm.Provider{primary}, DefaultConfig())

	jm, err := j.Evaluate(context.Background(), &Request{Challenge: testChallenge(), Submission: "golang AND berlin"})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if jm.Score != 82 {
		t.Errorf("score = %d, want 82", jm.Score)
	}
	if jm.FallbacksUsed != 0 {
		t.Errorf("FallbacksUsed = %d, want 0", jm.FallbacksUsed)
	}
	if jm.Model != "mock" {
		t.Errorf("model = %q, want mock", jm.Model)
	}
}

// hangingProvider blocks until released, ignoring context cancellation.
type hangingProvider struct {
	release chan struct{}
}

func (p *hangingProvider) Generate(_ context.Context, _ llm.Request) (*llm.Response, error) {
	<-p.release
	return nil, errors.New("released")
}

func (p *hangingProvider) ModelID() string { return "hanging" }

func TestEvaluateAdvancesPastStuckProvider(t *testing.T) {
	stuck := &hangingProvider{release: make(chan struct{})}
	defer close(stuck.release)
	backup := llm.NewMockProvider(llm.MockResponse{Content: scorecardJSON(68)})
	j := New([]llm.Provider{
		llm.WithTimeout(stuck, 20*time.Millisecond),
		backup,
	}, DefaultConfig())

	start := time.Now()
	jm, err := j.Evaluate(context.Background(), &Request{Challenge: testChallenge(), Submission: "golang AND berlin"})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("Evaluate blocked for %s on a stuck primary", elapsed)
	}
	if jm.Score != 68 || jm.FallbacksUsed != 1 {
		t.Errorf("got score %d fallbacks %d, want 68/1", jm.Score, jm.FallbacksUsed)
	}
}

func TestEvaluateFallsBackOnProviderError(t *testing.T) {
	primary := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	backup := llm.NewMockProvider(llm.MockResponse{Content: scorecardJSON(71)})
	j := New([]llm.Provider{primary, backup}, DefaultConfig())

	jm, err := j.Evaluate(context.Background(), &Request{Challenge: testChallenge(), Submission: "golang"})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if jm.Score != 71 || jm.FallbacksUsed != 1 {
		t.Errorf("got score %d fallbacks %d, want 71/1", jm.Score, jm.FallbacksUsed)
	}

	// Fallback models get the simplified prompt.
	if got := backup.Calls[0].System; got != simplifiedSystemPrompt {
		t.Errorf("fallback used system prompt %q, want the simplified one", got)
	}
	if primary.Calls[0].System != scoringSystemPrompt {
		t.Error("primary should use the full system prompt")
	}
}

func TestEvaluateRejectsOutOfRangeScore(t *testing.T) {
	bad := scorecardJSON(80)
	bad = json.RawMessage(replaceField(t, bad, "score", 150))

	primary := llm.NewMockProvider(llm.MockResponse{Content: bad})
	backup := llm.NewMockProvider(llm.MockResponse{Content: scorecardJSON(64)})
	j := New([]llm.Provider{primary, backup}, DefaultConfig())

	jm, err := j.Evaluate(context.Background(), &Request{Challenge: testChallenge(), Submission: "x y z"})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if jm.Score != 64 || jm.FallbacksUsed != 1 {
		t.Errorf("invalid scorecard should fall through: score %d fallbacks %d", jm.Score, jm.FallbacksUsed)
	}
}

func TestEvaluateAllModelsFail(t *testing.T) {
	j := New([]llm.Provider{
		llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}}),
		llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{}}),
	}, DefaultConfig())

	_, err := j.Evaluate(context.Background(), &Request{Challenge: testChallenge(), Submission: "hello"})
	if !errors.Is(err, ErrAllModelsFailed) {
		t.Fatalf("err = %v, want ErrAllModelsFailed", err)
	}
}

func TestSecondOpinionPrefersSecondModel(t *testing.T) {
	primary := llm.NewMockProvider(llm.MockResponse{Content: scorecardJSON(90)})
	backup := llm.NewMockProvider(llm.MockResponse{Content: scorecardJSON(60)})
	j := New([]llm.Provider{primary, backup}, DefaultConfig())

	jm, err := j.SecondOpinion(context.Background(), &Request{Challenge: testChallenge(), Submission: "golang"})
	if err != nil {
		t.Fatalf("SecondOpinion: %v", err)
	}
	if jm.Score != 60 {
		t.Errorf("score = %d, want 60 from the second model", jm.Score)
	}
	if primary.CallCount() != 0 {
		t.Error("second opinion should not hit the primary model")
	}
}

func TestEvaluateMissingDimensionRejected(t *testing.T) {
	var card map[string]any
	if err := json.Unmarshal(scorecardJSON(75), &card); err != nil {
		t.Fatal(err)
	}
	dims := card["dimensions"].(map[string]any)
	delete(dims, "clarity")
	raw, _ := json.Marshal(card)

	j := New([]llm.Provider{llm.NewMockProvider(llm.MockResponse{Content: raw})}, DefaultConfig())
	_, err := j.Evaluate(context.Background(), &Request{Challenge: testChallenge(), Submission: "golang"})
	if !errors.Is(err, ErrAllModelsFailed) {
		t.Fatalf("err = %v, want ErrAllModelsFailed for a missing dimension", err)
	}
}

func replaceField(t *testing.T, raw json.RawMessage, field string, value any) []byte {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatal(err)
	}
	m[field] = value
	out, err := json.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func TestPromptIncludesRubricAndSubmission(t *testing.T) {
	req := &Request{Challenge: testChallenge(), Submission: "golang AND (berlin OR remote)"}
	for _, simplified := range []bool{false, true} {
		msg, err := buildScoringMessage(req, simplified)
		if err != nil {
			t.Fatalf("buildScoringMessage(simplified=%v): %v", simplified, err)
		}
		for _, want := range []string{"keyword coverage", "max 40", req.Submission} {
			if !strings.Contains(msg, want) {
				t.Errorf("simplified=%v: prompt missing %q:\n%s", simplified, want, msg)
			}
		}
	}
}
