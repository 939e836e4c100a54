// Package app is the composition root: it opens the store, builds the
// LLM provider chain and embedder from configuration, and wires every
// engine into the scoring pipeline.
package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ssanyal/recruitdojo/internal/calibration"
	"github.com/ssanyal/recruitdojo/internal/catalog"
	"github.com/ssanyal/recruitdojo/internal/gaming"
	"github.com/ssanyal/recruitdojo/internal/hints"
	"github.com/ssanyal/recruitdojo/internal/judge"
	"github.com/ssanyal/recruitdojo/internal/llm"
	"github.com/ssanyal/recruitdojo/internal/pipeline"
	"github.com/ssanyal/recruitdojo/internal/refstore"
	"github.com/ssanyal/recruitdojo/internal/store"
)

// Options configures construction. Zero values fall back to environment
// configuration and defaults.
type Options struct {
	// DBPath overrides the default database location.
	DBPath string
	// LLM overrides environment-derived LLM configuration when Provider
	// is set.
	LLM *llm.Config
	// Logger defaults to a production zap logger.
	Logger *zap.Logger
}

// App holds the wired scoring core.
type App struct {
	Store       *store.Store
	Catalog     *catalog.Catalog
	Pipeline    *pipeline.Service
	Calibration *calibration.Engine
	Judge       *judge.Judge
	Hints       *hints.Service
	Chain       []llm.Provider
	Embedder    llm.Embedder
	Logger      *zap.Logger
}

// New builds the application. The LLM configuration resolves in order:
// explicit Options.LLM, RECRUITDOJO_* environment variables, then
// standard provider API key discovery.
func New(ctx context.Context, opts Options) (*App, error) {
	log := opts.Logger
	if log == nil {
		var err error
		log, err = zap.NewProduction()
		if err != nil {
			log = zap.NewNop()
		}
	}

	dbPath := opts.DBPath
	if dbPath == "" {
		var err error
		dbPath, err = store.DefaultDBPath()
		if err != nil {
			return nil, err
		}
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store at %s: %w", dbPath, err)
	}

	cfg, err := resolveLLMConfig(opts.LLM)
	if err != nil {
		st.Close()
		return nil, err
	}

	events := st.Events()
	chain, err := llm.NewProviderChain(ctx, cfg, events)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("build provider chain: %w", err)
	}

	embedder, err := llm.NewEmbedder(ctx, cfg, events)
	if err != nil {
		log.Warn("embedder unavailable, similarity scoring disabled", zap.Error(err))
		embedder = unavailableEmbedder{err: err}
	} else {
		embedder = llm.NewCachedEmbedder(embedder, 5*time.Minute, nil)
	}

	cat := catalog.Default()
	refs := refstore.NewCachedRepo(st.References(), refstore.DefaultLookupTTL, nil)
	jdg := judge.New(chain, judge.DefaultConfig())

	// One applier serves both the live pipeline and the batch engine, so a
	// recalibration invalidates the cache the pipeline reads from.
	applier := calibration.NewApplier(st.Calibrations(), time.Now)

	pipe := pipeline.New(pipeline.DefaultConfig(), pipeline.Deps{
		Catalog:   cat,
		Players:   st.Players(),
		Attempts:  st.Attempts(),
		Profiles:  st.Profiles(),
		Memories:  st.SkillMemories(),
		Judge:     jdg,
		Checker:   judge.NewChecker(judge.DefaultCheckerConfig()),
		Rubric:    judge.NewAggregator(judge.DefaultAggregatorConfig()),
		Embedder:  embedder,
		RefStore:  refstore.NewService(refs),
		RefScorer: refstore.NewScorer(refs, cat, refstore.DefaultScorerConfig()),
		Detector:  gaming.NewDetector(),
		Applier:   applier,
		Logger:    log,
	})

	benchmark := func(id string) (int, bool) {
		ch := cat.ByID(id)
		if ch == nil {
			return 0, false
		}
		return int(catalog.BenchmarkTarget(ch.Difficulty)), true
	}
	engine := calibration.NewEngine(st.Attempts(), applier, benchmark, time.Now, log)

	return &App{
		Store:       st,
		Catalog:     cat,
		Pipeline:    pipe,
		Calibration: engine,
		Judge:       jdg,
		Hints:       hints.NewService(chain[0], hints.DefaultConfig()),
		Chain:       chain,
		Embedder:    embedder,
		Logger:      log,
	}, nil
}

// Close waits for detached enrichment and releases resources.
func (a *App) Close() error {
	a.Pipeline.Wait()
	_ = a.Logger.Sync()
	return a.Store.Close()
}

func resolveLLMConfig(override *llm.Config) (llm.Config, error) {
	if override != nil && override.Provider != "" {
		if err := override.Validate(); err != nil {
			return llm.Config{}, err
		}
		return *override, nil
	}

	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err == nil && configured(cfg) {
		return cfg, nil
	}

	if discovered, ok := llm.DiscoverConfig(); ok {
		return discovered, nil
	}
	return llm.Config{}, fmt.Errorf(
		"no LLM provider configured: set RECRUITDOJO_LLM_PROVIDER and its API key, or a standard *_API_KEY variable")
}

// configured reports whether any provider API key is present; a default
// config with no keys should fall through to discovery.
func configured(cfg llm.Config) bool {
	return cfg.Anthropic.APIKey != "" || cfg.OpenAI.APIKey != "" ||
		cfg.Gemini.APIKey != "" || cfg.OpenRouter.APIKey != "" || cfg.Provider == "mock"
}

// unavailableEmbedder stands in when no embedding backend is configured;
// the pipeline treats its error as "no similarity signal".
type unavailableEmbedder struct {
	err error
}

func (u unavailableEmbedder) Embed(context.Context, string) ([]float64, error) {
	return nil, fmt.Errorf("embedding backend not configured: %w", u.err)
}

func (u unavailableEmbedder) ModelID() string {
	return "unavailable"
}
