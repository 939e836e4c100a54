// Package hints generates progressive coaching hints for a challenge.
// A level 1 hint nudges, level 2 points at the weakest rubric area, and
// level 3 shows a concrete partial approach. Hints taken before scoring
// are reported on the attempt and cost points there.
package hints

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ssanyal/recruitdojo/internal/catalog"
	"github.com/ssanyal/recruitdojo/internal/llm"
)

// MaxLevel is the strongest hint available per challenge.
const MaxLevel = 3

// Config holds hint generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for hint generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   384,
		Temperature: 0.6,
	}
}

// Hint is one LLM-generated coaching hint.
type Hint struct {
	ChallengeID string
	Level       int
	// Text is the hint shown to the player.
	Text string
	// Focus names the rubric area the hint targets.
	Focus string
}

// Input carries the context for one hint request.
type Input struct {
	Challenge *catalog.Challenge
	// Level selects hint strength, 1 to MaxLevel.
	Level int
	// Draft is the player's work so far; may be empty.
	Draft string
}

// Service generates hints through an LLM provider.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a hint generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type hintOutput struct {
	Hint  string `json:"hint"`
	Focus string `json:"focus"`
}

// Generate produces one hint for the challenge at the given level.
func (s *Service) Generate(ctx context.Context, input Input) (*Hint, error) {
	if input.Challenge == nil {
		return nil, fmt.Errorf("hint input has no challenge")
	}
	if input.Level < 1 || input.Level > MaxLevel {
		return nil, fmt.Errorf("hint level %d out of range 1..%d", input.Level, MaxLevel)
	}

	ctx = llm.WithPurpose(ctx, "hint")

	req := llm.Request{
		System: hintSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildHintUserMessage(input)},
		},
		Schema:      HintSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("hint generation: %w", err)
	}

	var out hintOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse hint response: %w", err)
	}
	if out.Hint == "" {
		return nil, fmt.Errorf("hint response has no hint text")
	}

	return &Hint{
		ChallengeID: input.Challenge.ID,
		Level:       input.Level,
		Text:        out.Hint,
		Focus:       out.Focus,
	}, nil
}
