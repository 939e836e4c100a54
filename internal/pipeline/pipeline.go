// Package pipeline orchestrates the multi-stage scoring of one
// submission: deterministic validation, the LLM judge chain with
// consistency checking and rubric reconciliation, embedding similarity
// against the reference store, the weighted ensemble, anti-gaming
// penalties, calibration, hint penalties and the composed HTML feedback.
// Scoring-critical failures surface as typed errors with stable codes;
// everything else degrades to a documented fallback.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/ssanyal/recruitdojo/internal/calibration"
	"github.com/ssanyal/recruitdojo/internal/catalog"
	"github.com/ssanyal/recruitdojo/internal/ensemble"
	"github.com/ssanyal/recruitdojo/internal/feedback"
	"github.com/ssanyal/recruitdojo/internal/gaming"
	"github.com/ssanyal/recruitdojo/internal/judge"
	"github.com/ssanyal/recruitdojo/internal/llm"
	"github.com/ssanyal/recruitdojo/internal/peers"
	"github.com/ssanyal/recruitdojo/internal/refstore"
	"github.com/ssanyal/recruitdojo/internal/store"
	"github.com/ssanyal/recruitdojo/internal/validator"
)

// Config bounds input and the fixed late-stage penalties.
type Config struct {
	// MaxSubmissionLen is the maximum submission length in runes.
	MaxSubmissionLen int
	// Cooldown is the minimum gap between any two submissions by the
	// same player.
	Cooldown time.Duration
	// HintPenalty is the per-hint score deduction; HintPenaltyCap bounds
	// the total deduction.
	HintPenalty    int
	HintPenaltyCap int
	// EnrichTimeout bounds each detached enrichment run.
	EnrichTimeout time.Duration
}

// DefaultConfig returns the production configuration.
func DefaultConfig() Config {
	return Config{
		MaxSubmissionLen: 10000,
		Cooldown:         30 * time.Second,
		HintPenalty:      3,
		HintPenaltyCap:   15,
		EnrichTimeout:    10 * time.Second,
	}
}

// automatedOnlyConfidence is reported when only the validator scored the
// submission; it mirrors the validator's ensemble share.
const automatedOnlyConfidence = 25

// Deps are the engines and repositories the pipeline wires together.
type Deps struct {
	Catalog  *catalog.Catalog
	Players  store.PlayerRepo
	Attempts store.AttemptRepo
	Profiles store.ProfileRepo
	Memories store.SkillMemoryRepo

	Judge     *judge.Judge
	Checker   *judge.Checker
	Rubric    *judge.Aggregator
	Embedder  llm.Embedder
	RefStore  *refstore.Service
	RefScorer *refstore.Scorer
	Detector  *gaming.Detector
	Applier   *calibration.Applier

	Logger *zap.Logger
	Now    func() time.Time
}

// Request is one immutable submission to score.
type Request struct {
	PlayerID    int
	ChallengeID string
	Text        string
	Hints       int
}

// Result is the outcome returned to the transport layer.
type Result struct {
	AttemptID     int
	Score         int
	FeedbackHTML  string
	Confidence    int
	RiskLevel     string
	AIAvailable   bool
	FallbacksUsed int
}

// Service runs the scoring pipeline.
type Service struct {
	cfg  Config
	deps Deps

	// wg tracks detached enrichment runs so tests and shutdown can wait
	// for them.
	wg sync.WaitGroup

	mu        sync.Mutex
	baselines map[int]*gaming.StyleBaseline
}

// New creates a pipeline service. A nil Logger is replaced with a no-op
// logger; Now defaults to time.Now.
func New(cfg Config, deps Deps) *Service {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Service{
		cfg:       cfg,
		deps:      deps,
		baselines: make(map[int]*gaming.StyleBaseline),
	}
}

// Wait blocks until all detached enrichment runs have finished.
func (s *Service) Wait() {
	s.wg.Wait()
}

// ScoreSubmission runs the full pipeline for one submission. It returns
// a typed *Error for input rejections and store-write failures; every
// external dependency failure inside scoring degrades to its fallback.
func (s *Service) ScoreSubmission(ctx context.Context, req Request) (*Result, error) {
	ch, err := s.checkInput(ctx, req)
	if err != nil {
		return nil, err
	}

	log := s.deps.Logger.With(
		zap.Int("player_id", req.PlayerID),
		zap.String("challenge_id", req.ChallengeID),
	)

	vres := validator.Validate(req.Text, ch.Rules)

	jreq := &judge.Request{Challenge: ch, Submission: req.Text}
	jm, err := s.deps.Judge.Evaluate(ctx, jreq)
	if err != nil {
		log.Warn("all judge models failed, automated-only scoring", zap.Error(err))
		return s.automatedOnly(ctx, req, ch, vres)
	}

	report := &feedback.Report{CoachHTML: jm.FeedbackHTML}

	// Cross-model consistency before the rubric blend: disagreement
	// between models taints the rubric breakdown too, so its reweighting
	// comes first.
	var aiWeight float64
	var hasAIWeight bool
	if need, reason := s.deps.Checker.ShouldCrossValidate(vres.Score, jm.Score); need {
		if second, err := s.deps.Judge.SecondOpinion(ctx, jreq); err != nil {
			log.Warn("cross-validation unavailable", zap.String("trigger", reason), zap.Error(err))
		} else {
			verdict := s.deps.Checker.Reconcile(jm.Score, second.Score)
			log.Info("consistency check",
				zap.String("trigger", reason),
				zap.String("reason", verdict.Reason),
				zap.Int("primary", jm.Score),
				zap.Int("second", second.Score),
				zap.Int("reconciled", verdict.Score))
			jm.Score = verdict.Score
			if verdict.Adjusted {
				aiWeight, hasAIWeight = verdict.AIWeight, true
			}
			report.EnsembleNote = verdict.Detail
		}
	}

	rubricRep := s.deps.Rubric.Reconcile(jm, ch.Rubric)
	if rubricRep.Diverged {
		log.Info("rubric divergence",
			zap.Int("judge_score", jm.Score),
			zap.Int("rubric_score", rubricRep.RubricScore),
			zap.Int("adjusted", rubricRep.AdjustedScore),
			zap.Strings("corrections", rubricRep.Corrections))
	}
	aiScore := rubricRep.AdjustedScore
	for _, a := range rubricRep.Awards {
		report.RubricRows = append(report.RubricRows, feedback.RubricRow{
			Name: a.Name, Points: a.Points, MaxPoints: a.MaxPoints, Reasoning: a.Reasoning,
		})
	}

	embedding, cmp := s.compareReferences(ctx, ch.ID, req.Text, log)
	if cmp != nil {
		report.MultiReferenceNote = referenceNote(cmp)
	}

	in := ensemble.Input{
		ValidatorScore:      vres.Score,
		AIScore:             aiScore,
		AIAvailable:         true,
		AIWeightOverride:    aiWeight,
		HasAIWeightOverride: hasAIWeight,
	}
	if cmp != nil {
		in.Similarity = cmp.AvgSimilarity
		in.SimilarityAvailable = true
		in.RefAdjustment = cmp.Adjustment
	}
	comb := ensemble.Combine(in)
	score := comb.Score
	if report.EnsembleNote == "" {
		report.EnsembleNote = fmt.Sprintf(
			"This score blends the AI coach with automated checks (%d%% confidence).", comb.Confidence)
	}

	risk := s.detectGaming(ctx, req, ch)
	if risk.Penalty > 0 {
		log.Info("gaming risk",
			zap.String("level", string(risk.Level)),
			zap.Int("penalty", risk.Penalty),
			zap.Strings("flags", risk.Flags))
		report.RiskWarning = fmt.Sprintf(
			"Some patterns here look like score gaming (%s); %d points were deducted.",
			strings.Join(risk.Flags, "; "), risk.Penalty)
	}
	report.ContextAdjustment = risk.ContextReason
	score = clampScore(score - risk.Penalty)

	score, report.CalibrationNote = s.deps.Applier.Apply(ctx, ch.ID, score)

	if req.Hints > 0 {
		pen := req.Hints * s.cfg.HintPenalty
		if pen > s.cfg.HintPenaltyCap {
			pen = s.cfg.HintPenaltyCap
		}
		score = clampScore(score - pen)
		report.HintPenaltyNote = fmt.Sprintf("Using %d hint(s) cost %d points.", req.Hints, pen)
	}

	score = s.applyPeerStats(ctx, ch, score, report, log)
	report.Score = score

	enr := s.prepareEnrichment(ctx, req, ch, score, report, log)
	report.XPEarned = enr.xp
	if embedding != nil && score >= refstore.AutoAddThreshold {
		enr.reference = &refstore.Reference{
			ChallengeID: ch.ID,
			Text:        req.Text,
			Embedding:   embedding,
			Score:       score,
		}
	}

	html := feedback.Compose(report)

	attempt := &store.Attempt{
		PlayerID:       req.PlayerID,
		ChallengeID:    ch.ID,
		SkillCategory:  string(ch.SkillCategory),
		Difficulty:     ch.Difficulty.String(),
		Submission:     req.Text,
		ValidatorScore: vres.Score,
		AIScore:        aiScore,
		AIAvailable:    true,
		FinalScore:     score,
		Confidence:     comb.Confidence,
		RiskLevel:      string(risk.Level),
		HintsUsed:      req.Hints,
		FeedbackHTML:   html,
	}
	if err := s.saveAttempt(ctx, attempt); err != nil {
		return nil, err
	}

	s.enrich(ctx, enr)

	return &Result{
		AttemptID:     attempt.ID,
		Score:         score,
		FeedbackHTML:  html,
		Confidence:    comb.Confidence,
		RiskLevel:     string(risk.Level),
		AIAvailable:   true,
		FallbacksUsed: jm.FallbacksUsed,
	}, nil
}

// checkInput rejects malformed requests before any scoring work.
func (s *Service) checkInput(ctx context.Context, req Request) (*catalog.Challenge, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, inputError(CodeEmptySubmission, "submission text is empty")
	}
	if utf8.RuneCountInString(req.Text) > s.cfg.MaxSubmissionLen {
		return nil, inputError(CodeSubmissionTooLong,
			fmt.Sprintf("submission exceeds %d characters", s.cfg.MaxSubmissionLen))
	}

	ch := s.deps.Catalog.ByID(req.ChallengeID)
	if ch == nil {
		return nil, inputError(CodeUnknownChallenge,
			fmt.Sprintf("challenge %q does not exist", req.ChallengeID))
	}

	existing, err := s.deps.Attempts.ByPlayerChallenge(ctx, req.PlayerID, req.ChallengeID)
	if err != nil {
		return nil, &Error{Code: CodeSaveAttemptFailed, Message: "attempt lookup failed", Err: err}
	}
	if existing != nil {
		return nil, inputError(CodeDuplicateAttempt, "this challenge was already submitted")
	}

	latest, err := s.deps.Attempts.LatestByPlayer(ctx, req.PlayerID)
	if err != nil {
		return nil, &Error{Code: CodeSaveAttemptFailed, Message: "attempt lookup failed", Err: err}
	}
	if latest != nil && s.deps.Now().Sub(latest.CreatedAt) < s.cfg.Cooldown {
		return nil, inputError(CodeCooldownActive,
			fmt.Sprintf("wait %s between submissions", s.cfg.Cooldown))
	}

	return ch, nil
}

// automatedOnly is the terminal judge fallback: the validator score
// stands as-is, with no ensemble, gaming or calibration stages.
func (s *Service) automatedOnly(ctx context.Context, req Request, ch *catalog.Challenge, vres validator.Result) (*Result, error) {
	score := vres.Score
	if req.Hints > 0 {
		pen := req.Hints * s.cfg.HintPenalty
		if pen > s.cfg.HintPenaltyCap {
			pen = s.cfg.HintPenaltyCap
		}
		score = clampScore(score - pen)
	}

	var notes strings.Builder
	notes.WriteString("AI coach unavailable: this score comes from automated validation only.")
	for _, f := range vres.Feedback {
		notes.WriteString("\n\n")
		notes.WriteString(f)
	}
	for _, st := range vres.Strengths {
		notes.WriteString("\n\n")
		notes.WriteString(st)
	}

	report := &feedback.Report{Score: score, EnsembleNote: notes.String()}
	log := s.deps.Logger.With(zap.Int("player_id", req.PlayerID), zap.String("challenge_id", ch.ID))
	enr := s.prepareEnrichment(ctx, req, ch, score, report, log)
	report.XPEarned = enr.xp

	html := feedback.Compose(report)

	attempt := &store.Attempt{
		PlayerID:       req.PlayerID,
		ChallengeID:    ch.ID,
		SkillCategory:  string(ch.SkillCategory),
		Difficulty:     ch.Difficulty.String(),
		Submission:     req.Text,
		ValidatorScore: vres.Score,
		AIAvailable:    false,
		FinalScore:     score,
		Confidence:     automatedOnlyConfidence,
		RiskLevel:      string(gaming.RiskNone),
		HintsUsed:      req.Hints,
		FeedbackHTML:   html,
	}
	if err := s.saveAttempt(ctx, attempt); err != nil {
		return nil, err
	}

	s.enrich(ctx, enr)

	return &Result{
		AttemptID:    attempt.ID,
		Score:        score,
		FeedbackHTML: html,
		Confidence:   automatedOnlyConfidence,
		RiskLevel:    string(gaming.RiskNone),
	}, nil
}

// compareReferences embeds the submission and ranks it against the
// reference store. Any failure degrades to "no similarity signal".
func (s *Service) compareReferences(ctx context.Context, challengeID, text string, log *zap.Logger) ([]float64, *refstore.Comparison) {
	ctx = llm.WithPurpose(ctx, "embedding")
	embedding, err := s.deps.Embedder.Embed(ctx, text)
	if err != nil {
		log.Warn("embedding unavailable, skipping similarity", zap.Error(err))
		return nil, nil
	}

	cmp, err := s.deps.RefScorer.Compare(ctx, challengeID, embedding)
	if err != nil {
		log.Warn("reference comparison failed", zap.Error(err))
		return embedding, nil
	}
	return embedding, cmp
}

// detectGaming runs the anti-gaming heuristics with the player's style
// baseline, then folds this submission into the baseline.
func (s *Service) detectGaming(ctx context.Context, req Request, ch *catalog.Challenge) gaming.Result {
	bl := s.styleBaseline(ctx, req.PlayerID)

	res := s.deps.Detector.Detect(gaming.Input{
		Submission:      req.Text,
		ExampleSolution: ch.ExampleSolution,
		Rules:           ch.Rules,
		Baseline:        bl,
	})
	bl.Observe(req.Text)
	return res
}

// styleBaseline returns the player's baseline, building it from their
// persisted submissions on first use. Each process keeps one baseline per
// player; seeding from stored attempts means an established writer gets
// context-aware adjustment from their very first submission of a run.
func (s *Service) styleBaseline(ctx context.Context, playerID int) *gaming.StyleBaseline {
	s.mu.Lock()
	bl := s.baselines[playerID]
	s.mu.Unlock()
	if bl != nil {
		return bl
	}

	bl = &gaming.StyleBaseline{}
	if past, err := s.deps.Attempts.ByPlayer(ctx, playerID); err == nil {
		for _, a := range past {
			if a.Submission != "" {
				bl.Observe(a.Submission)
			}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if cur := s.baselines[playerID]; cur != nil {
		return cur
	}
	s.baselines[playerID] = bl
	return bl
}

// applyPeerStats attaches the challenge and category peer-comparison
// blocks and applies the optional per-challenge curve. Failures leave the
// score untouched.
func (s *Service) applyPeerStats(ctx context.Context, ch *catalog.Challenge, score int, report *feedback.Report, log *zap.Logger) int {
	scores, err := s.deps.Attempts.ChallengeScores(ctx, ch.ID)
	if err != nil {
		log.Warn("peer scores unavailable", zap.Error(err))
		return s.categoryPeerStats(ctx, ch, score, report, log)
	}

	st := peers.Compare(score, scores, peers.MinChallengeSamples)
	if st != nil {
		report.PeerStats = st
		if ch.CurveEnabled {
			curved := peers.Curve(ch.CurveMode, score, st, peers.DefaultCurveTarget)
			if curved != score {
				log.Info("peer curve applied",
					zap.String("mode", ch.CurveMode),
					zap.Int("raw", score),
					zap.Int("curved", curved))
				report.Score = curved
			}
			score = curved
		}
	}

	return s.categoryPeerStats(ctx, ch, score, report, log)
}

// categoryPeerStats ranks the final score across the whole skill
// category. The category sample is wider, so its minimum is higher; below
// it the block is omitted.
func (s *Service) categoryPeerStats(ctx context.Context, ch *catalog.Challenge, score int, report *feedback.Report, log *zap.Logger) int {
	scores, err := s.deps.Attempts.CategoryScores(ctx, string(ch.SkillCategory))
	if err != nil {
		log.Warn("category peer scores unavailable", zap.Error(err))
		return score
	}
	if st := peers.Compare(score, scores, peers.MinCategorySamples); st != nil {
		report.CategoryStats = st
		report.CategoryLabel = catalog.CategoryDisplayName(ch.SkillCategory)
	}
	return score
}

func (s *Service) saveAttempt(ctx context.Context, a *store.Attempt) error {
	err := s.deps.Attempts.Insert(ctx, a)
	if errors.Is(err, store.ErrDuplicateAttempt) {
		return inputError(CodeDuplicateAttempt, "this challenge was already submitted")
	}
	if err != nil {
		return &Error{Code: CodeSaveAttemptFailed, Message: "could not save attempt", Err: err}
	}
	return nil
}

func referenceNote(cmp *refstore.Comparison) string {
	note := fmt.Sprintf("Compared against %d reference answer(s); average similarity %.2f.",
		cmp.ReferencesUsed, cmp.AvgSimilarity)
	if cmp.CrossGame {
		note += " Some references come from related challenges and were weighted down."
	}
	if cmp.Adjustment != 0 {
		note += fmt.Sprintf(" Similarity adjusted the score by %+.0f point(s).", math.Round(cmp.Adjustment))
	}
	return note
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
