package judge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ssanyal/recruitdojo/internal/llm"
)

// ErrAllModelsFailed is returned when every model in the fallback chain
// failed to produce a valid scorecard. The pipeline falls back to
// automated-only scoring when it sees this error.
var ErrAllModelsFailed = errors.New("all judge models failed")

// Config holds LLM judge configuration.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults. Scoring responses carry the
// full rubric breakdown and HTML feedback, so the token budget is
// generous compared to simpler structured calls.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.3,
	}
}

// Judge scores submissions with a chain of LLM providers. The first
// provider is the primary; the rest are fallbacks tried in order with a
// simplified prompt after the primary fails.
type Judge struct {
	chain []llm.Provider
	cfg   Config
}

// New creates a judge over the given provider chain. The chain must be
// non-empty; llm.NewProviderChain guarantees that.
func New(chain []llm.Provider, cfg Config) *Judge {
	return &Judge{chain: chain, cfg: cfg}
}

// Evaluate walks the provider chain until one returns a scorecard that
// passes schema validation and bounds checks. Each provider gets one
// attempt here; transient-error retries happen inside the provider's own
// retry middleware. When the chain is exhausted the caller receives
// ErrAllModelsFailed wrapped with the last provider error.
func (j *Judge) Evaluate(ctx context.Context, req *Request) (*Judgment, error) {
	ctx = llm.WithPurpose(ctx, "judge-scoring")

	var lastErr error
	for i, p := range j.chain {
		jm, err := j.evaluateWith(ctx, p, req, i > 0)
		if err != nil {
			lastErr = err
			continue
		}
		jm.FallbacksUsed = i
		return jm, nil
	}

	return nil, fmt.Errorf("%w: %v", ErrAllModelsFailed, lastErr)
}

// SecondOpinion produces an independent judgment for consistency
// checking, preferring a different model than the primary. It always uses
// the simplified prompt.
func (j *Judge) SecondOpinion(ctx context.Context, req *Request) (*Judgment, error) {
	ctx = llm.WithPurpose(ctx, "judge-cross-validation")

	p := j.chain[0]
	if len(j.chain) > 1 {
		p = j.chain[1]
	}

	jm, err := j.evaluateWith(ctx, p, req, true)
	if err != nil {
		return nil, fmt.Errorf("cross-validation judgment: %w", err)
	}
	return jm, nil
}

func (j *Judge) evaluateWith(ctx context.Context, p llm.Provider, req *Request, simplified bool) (*Judgment, error) {
	system := scoringSystemPrompt
	if simplified {
		system = simplifiedSystemPrompt
	}

	userMsg, err := buildScoringMessage(req, simplified)
	if err != nil {
		return nil, fmt.Errorf("build scoring prompt: %w", err)
	}

	resp, err := p.Generate(ctx, llm.Request{
		System: system,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      ScorecardSchema,
		MaxTokens:   j.cfg.MaxTokens,
		Temperature: j.cfg.Temperature,
	})
	if err != nil {
		return nil, err
	}

	var jm Judgment
	if err := json.Unmarshal(resp.Content, &jm); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: fmt.Errorf("scorecard does not parse: %w", err)}
	}
	if err := checkJudgment(&jm); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}

	jm.Model = resp.Model
	return &jm, nil
}

// checkJudgment enforces bounds the schema alone cannot fully express
// and normalizes out-of-range values a permissive provider let through.
func checkJudgment(jm *Judgment) error {
	if jm.Score < 0 || jm.Score > 100 {
		return fmt.Errorf("score %d out of range", jm.Score)
	}
	for _, name := range DimensionNames {
		v, ok := jm.Dimensions[name]
		if !ok {
			return fmt.Errorf("missing dimension %q", name)
		}
		if v < 0 || v > 100 {
			return fmt.Errorf("dimension %q score %d out of range", name, v)
		}
	}
	if len(jm.Strengths) == 0 || len(jm.Strengths) > 5 {
		return fmt.Errorf("strengths count %d outside 1-5", len(jm.Strengths))
	}
	if len(jm.Improvements) == 0 || len(jm.Improvements) > 5 {
		return fmt.Errorf("improvements count %d outside 1-5", len(jm.Improvements))
	}
	for skill, v := range jm.SkillsRadar {
		if v < 0 {
			jm.SkillsRadar[skill] = 0
		}
		if v > 100 {
			jm.SkillsRadar[skill] = 100
		}
	}
	return nil
}
