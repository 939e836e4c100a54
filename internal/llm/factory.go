package llm

import (
	"context"
	"fmt"

	"github.com/ssanyal/recruitdojo/internal/store"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and logging middleware.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	return newNamedProvider(ctx, cfg.Provider, cfg, eventRepo)
}

// NewProviderChain creates the judge model chain: the primary provider
// followed by each configured fallback. Fallbacks whose API keys are not
// configured are skipped rather than failing construction; a missing
// fallback just shortens the chain. The primary provider must construct.
func NewProviderChain(ctx context.Context, cfg Config, eventRepo store.EventRepo) ([]Provider, error) {
	primary, err := newNamedProvider(ctx, cfg.Provider, cfg, eventRepo)
	if err != nil {
		return nil, err
	}

	chain := []Provider{primary}
	for _, name := range cfg.Fallbacks {
		if name == cfg.Provider {
			continue
		}
		p, err := newNamedProvider(ctx, name, cfg, eventRepo)
		if err != nil {
			continue
		}
		chain = append(chain, p)
	}
	return chain, nil
}

// NewEmbedder creates an Embedder from configuration.
func NewEmbedder(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Embedder, error) {
	var base Embedder
	var err error

	switch cfg.Embedding.Provider {
	case "openai":
		base, err = NewOpenAIEmbedder(cfg.OpenAI, cfg.Embedding.Model)
	case "gemini":
		base, err = NewGeminiEmbedder(ctx, cfg.Gemini, cfg.Embedding.Model)
	case "mock":
		return NewMockEmbedder(8), nil
	default:
		return nil, fmt.Errorf("unknown embedding provider: %q", cfg.Embedding.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s embedder: %w", cfg.Embedding.Provider, err)
	}

	return WithEmbedTimeout(WithEmbedLogging(base, eventRepo), cfg.Timeout), nil
}

func newNamedProvider(ctx context.Context, name string, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch name {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", name)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", name, err)
	}

	// Wrap with middleware: caller → timeout → retry → logging → base.
	// The deadline covers the whole call, retries included.
	logged := WithLogging(base, eventRepo)
	retried := WithRetry(logged, cfg.Retry)

	return WithTimeout(retried, cfg.Timeout), nil
}
