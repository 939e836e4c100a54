package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ssanyal/recruitdojo/internal/calibration"
	"github.com/ssanyal/recruitdojo/internal/catalog"
	"github.com/ssanyal/recruitdojo/internal/difficulty"
	"github.com/ssanyal/recruitdojo/internal/gaming"
	"github.com/ssanyal/recruitdojo/internal/judge"
	"github.com/ssanyal/recruitdojo/internal/llm"
	"github.com/ssanyal/recruitdojo/internal/refstore"
	"github.com/ssanyal/recruitdojo/internal/spacedrep"
	"github.com/ssanyal/recruitdojo/internal/store"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// --- in-memory fakes ---

type memPlayers struct {
	mu sync.Mutex
	xp map[int]int
}

func (m *memPlayers) GetOrCreate(_ context.Context, name string) (*store.Player, error) {
	return &store.Player{ID: 1, Name: name}, nil
}

func (m *memPlayers) Get(_ context.Context, id int) (*store.Player, error) {
	return &store.Player{ID: id}, nil
}

func (m *memPlayers) AddXP(_ context.Context, id, delta int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.xp == nil {
		m.xp = make(map[int]int)
	}
	m.xp[id] += delta
	return nil
}

type memAttempts struct {
	mu        sync.Mutex
	rows      []*store.Attempt
	peers     []int
	catPeers  []int
	insertErr error
}

func (m *memAttempts) Insert(_ context.Context, a *store.Attempt) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.insertErr != nil {
		return m.insertErr
	}
	a.ID = len(m.rows) + 1
	a.CreatedAt = t0
	m.rows = append(m.rows, a)
	return nil
}

func (m *memAttempts) ByPlayerChallenge(_ context.Context, playerID int, challengeID string) (*store.Attempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.rows {
		if a.PlayerID == playerID && a.ChallengeID == challengeID {
			return a, nil
		}
	}
	return nil, nil
}

func (m *memAttempts) ByPlayer(_ context.Context, playerID int) ([]*store.Attempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*store.Attempt
	for _, a := range m.rows {
		if a.PlayerID == playerID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memAttempts) LatestByPlayer(_ context.Context, playerID int) (*store.Attempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var latest *store.Attempt
	for _, a := range m.rows {
		if a.PlayerID == playerID && (latest == nil || a.CreatedAt.After(latest.CreatedAt)) {
			latest = a
		}
	}
	return latest, nil
}

func (m *memAttempts) ChallengeScores(_ context.Context, _ string) ([]int, error) {
	return m.peers, nil
}

func (m *memAttempts) CategoryScores(_ context.Context, _ string) ([]int, error) {
	return m.catPeers, nil
}

type memProfiles struct {
	mu    sync.Mutex
	saved map[int]*difficulty.Profile
}

func (m *memProfiles) Get(_ context.Context, playerID int, _ catalog.SkillCategory, _ catalog.Difficulty) (*difficulty.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saved[playerID], nil
}

func (m *memProfiles) Save(_ context.Context, playerID int, p *difficulty.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saved == nil {
		m.saved = make(map[int]*difficulty.Profile)
	}
	m.saved[playerID] = p
	return nil
}

type memMemories struct {
	mu    sync.Mutex
	saved map[int]*spacedrep.State
}

func (m *memMemories) Get(_ context.Context, playerID int, _ string) (*spacedrep.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saved[playerID], nil
}

func (m *memMemories) Save(_ context.Context, playerID int, st *spacedrep.State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saved == nil {
		m.saved = make(map[int]*spacedrep.State)
	}
	m.saved[playerID] = st
	return nil
}

func (m *memMemories) ByPlayer(_ context.Context, playerID int) ([]*spacedrep.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if st := m.saved[playerID]; st != nil {
		return []*spacedrep.State{st}, nil
	}
	return nil, nil
}

type memCalibrations struct{}

func (memCalibrations) Calibration(_ context.Context, _ string) (*calibration.Record, error) {
	return nil, nil
}

func (memCalibrations) SaveCalibration(_ context.Context, _ *calibration.Record) error {
	return nil
}

type memRefs struct {
	mu   sync.Mutex
	refs []*refstore.Reference
}

func (m *memRefs) ActiveByChallenge(_ context.Context, challengeID string) ([]*refstore.Reference, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*refstore.Reference
	for _, r := range m.refs {
		if r.ChallengeID == challengeID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memRefs) Insert(_ context.Context, ref *refstore.Reference) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refs = append(m.refs, ref)
	return nil
}

// --- fixtures ---

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]catalog.Challenge{
		{
			ID:            "test-bool",
			Title:         "Find Go engineers",
			Prompt:        "Write a search string.",
			SkillCategory: catalog.CategoryBooleanSearch,
			Difficulty:    catalog.DifficultyBeginner,
			Rubric: catalog.Rubric{Criteria: []catalog.Criterion{
				{Name: "Coverage", MaxPoints: 60},
				{Name: "Precision", MaxPoints: 40},
			}},
			Rules: catalog.ValidationRules{RequiredKeywords: []string{"golang"}},
		},
		{
			ID:            "test-outreach",
			Title:         "Outreach message",
			Prompt:        "Write an outreach message.",
			SkillCategory: catalog.CategoryOutreach,
			Difficulty:    catalog.DifficultyBeginner,
			Rubric: catalog.Rubric{Criteria: []catalog.Criterion{
				{Name: "Personalization", MaxPoints: 50},
				{Name: "Call to action", MaxPoints: 50},
			}},
			Rules: catalog.ValidationRules{RequiredKeywords: []string{"golang", "berlin"}},
		},
	})
	if err != nil {
		t.Fatalf("test catalog: %v", err)
	}
	return cat
}

func scorecard(t *testing.T, score int, breakdown map[string]judge.RubricItem) json.RawMessage {
	t.Helper()
	jm := judge.Judgment{
		Score:           score,
		Dimensions:      map[string]int{},
		RubricBreakdown: breakdown,
		Strengths:       []string{"Covers the core terms."},
		Improvements:    []string{"Add more synonyms."},
		FeedbackHTML:    "<p>Solid query with room for broader coverage.</p>",
	}
	for _, d := range judge.DimensionNames {
		jm.Dimensions[d] = score
	}
	b, err := json.Marshal(jm)
	if err != nil {
		t.Fatalf("marshal scorecard: %v", err)
	}
	return b
}

type fixture struct {
	svc      *Service
	players  *memPlayers
	attempts *memAttempts
	profiles *memProfiles
	memories *memMemories
	refs     *memRefs
}

func newFixture(t *testing.T, chain []llm.Provider) *fixture {
	t.Helper()
	cat := testCatalog(t)
	f := &fixture{
		players:  &memPlayers{},
		attempts: &memAttempts{},
		profiles: &memProfiles{},
		memories: &memMemories{},
		refs:     &memRefs{},
	}

	clock := func() time.Time { return t0 }
	f.svc = New(DefaultConfig(), Deps{
		Catalog:   cat,
		Players:   f.players,
		Attempts:  f.attempts,
		Profiles:  f.profiles,
		Memories:  f.memories,
		Judge:     judge.New(chain, judge.DefaultConfig()),
		Checker:   judge.NewChecker(judge.DefaultCheckerConfig()),
		Rubric:    judge.NewAggregator(judge.DefaultAggregatorConfig()),
		Embedder:  llm.NewMockEmbedder(8),
		RefStore:  refstore.NewService(f.refs),
		RefScorer: refstore.NewScorer(f.refs, cat, refstore.DefaultScorerConfig()),
		Detector:  gaming.NewDetector(),
		Applier:   calibration.NewApplier(memCalibrations{}, clock),
		Now:       clock,
	})
	return f
}

const goodSubmission = "golang engineers in berlin with kubernetes experience and strong distributed systems background"

// --- tests ---

func TestScoreSubmissionHappyPath(t *testing.T) {
	f := newFixture(t, []llm.Provider{
		llm.NewMockProvider(llm.MockResponse{Content: scorecard(t, 98, map[string]judge.RubricItem{
			"Coverage":  {Points: 59, MaxPoints: 60},
			"Precision": {Points: 39, MaxPoints: 40},
		})}),
	})

	res, err := f.svc.ScoreSubmission(context.Background(), Request{
		PlayerID: 1, ChallengeID: "test-bool", Text: goodSubmission,
	})
	if err != nil {
		t.Fatalf("score: %v", err)
	}

	// Validator 100, AI 98, no similarity signal: renormalized weights
	// give (0.6*98 + 0.25*100) / 0.85 = 98.6 -> 99.
	if res.Score != 99 {
		t.Errorf("score = %d, want 99", res.Score)
	}
	if !res.AIAvailable {
		t.Error("expected AIAvailable")
	}
	if res.RiskLevel != string(gaming.RiskNone) {
		t.Errorf("risk = %q, want none", res.RiskLevel)
	}
	if res.Confidence <= 0 || res.Confidence > 100 {
		t.Errorf("confidence = %d, want (0,100]", res.Confidence)
	}
	if !strings.Contains(res.FeedbackHTML, "Solid query") {
		t.Error("expected coach feedback in output")
	}
	if !strings.Contains(res.FeedbackHTML, "Coverage") {
		t.Error("expected rubric rows in output")
	}
	if !strings.Contains(res.FeedbackHTML, "celebration") {
		t.Error("expected celebration block for a 99")
	}

	if len(f.attempts.rows) != 1 || f.attempts.rows[0].FinalScore != 99 {
		t.Fatalf("persisted attempts = %+v, want one with score 99", f.attempts.rows)
	}

	f.svc.Wait()

	if p := f.profiles.saved[1]; p == nil || p.Attempts != 1 {
		t.Errorf("profile = %+v, want one recorded attempt", p)
	}
	if st := f.memories.saved[1]; st == nil || st.IntervalDays != 1 {
		t.Errorf("skill memory = %+v, want interval 1 after first review", st)
	}
	if got := f.players.xp[1]; got != xpForScore(99) {
		t.Errorf("xp = %d, want %d", got, xpForScore(99))
	}
	// 99 >= auto-add threshold: submission becomes a reference answer.
	if len(f.refs.refs) != 1 {
		t.Errorf("references = %d, want 1", len(f.refs.refs))
	}
}

func TestScoreSubmissionCrossValidationDivergence(t *testing.T) {
	primary := llm.NewMockProvider(llm.MockResponse{Content: scorecard(t, 90, map[string]judge.RubricItem{
		"Coverage":  {Points: 45, MaxPoints: 60},
		"Precision": {Points: 30, MaxPoints: 40},
	})})
	second := llm.NewMockProvider(llm.MockResponse{Content: scorecard(t, 60, map[string]judge.RubricItem{
		"Coverage":  {Points: 36, MaxPoints: 60},
		"Precision": {Points: 24, MaxPoints: 40},
	})})
	f := newFixture(t, []llm.Provider{primary, second})

	res, err := f.svc.ScoreSubmission(context.Background(), Request{
		PlayerID: 1, ChallengeID: "test-bool", Text: goodSubmission,
	})
	if err != nil {
		t.Fatalf("score: %v", err)
	}

	// 90 is on a promotion boundary, so a second opinion runs; 60 diverges
	// by 30, reconciling to 75 with AI weight 0.42. Ensemble:
	// (0.42*75 + 0.25*100) / 0.67 = 84.3 -> 84.
	if res.Score != 84 {
		t.Errorf("score = %d, want 84", res.Score)
	}
	if second.CallCount() != 1 {
		t.Errorf("second model calls = %d, want 1", second.CallCount())
	}
	if !strings.Contains(res.FeedbackHTML, "apart") {
		t.Error("expected divergence explanation in feedback")
	}
}

func TestScoreSubmissionAutomatedOnly(t *testing.T) {
	// Empty mock queue: every Generate fails, exhausting the chain.
	f := newFixture(t, []llm.Provider{llm.NewMockProvider()})

	res, err := f.svc.ScoreSubmission(context.Background(), Request{
		PlayerID: 1, ChallengeID: "test-outreach",
		Text: "golang engineers wanted for an exciting fintech role",
	})
	if err != nil {
		t.Fatalf("score: %v", err)
	}

	// Validator: one of two required keywords hit = 50. No ensemble,
	// gaming or calibration applies.
	if res.Score != 50 {
		t.Errorf("score = %d, want validator pass-through 50", res.Score)
	}
	if res.AIAvailable {
		t.Error("expected AIAvailable false")
	}
	if res.Confidence != automatedOnlyConfidence {
		t.Errorf("confidence = %d, want %d", res.Confidence, automatedOnlyConfidence)
	}
	if !strings.Contains(res.FeedbackHTML, "AI coach unavailable") {
		t.Error("expected the automated-only marker in feedback")
	}

	if len(f.attempts.rows) != 1 {
		t.Fatalf("attempts = %d, want 1", len(f.attempts.rows))
	}
	if a := f.attempts.rows[0]; a.AIAvailable || a.FinalScore != 50 {
		t.Errorf("attempt = %+v, want automated-only with score 50", a)
	}

	// Enrichment still runs: the score is real even without the AI coach.
	f.svc.Wait()
	if st := f.memories.saved[1]; st == nil {
		t.Error("expected skill memory update on automated-only path")
	}
}

func TestScoreSubmissionHintPenalty(t *testing.T) {
	f := newFixture(t, []llm.Provider{
		llm.NewMockProvider(llm.MockResponse{Content: scorecard(t, 98, map[string]judge.RubricItem{
			"Coverage":  {Points: 59, MaxPoints: 60},
			"Precision": {Points: 39, MaxPoints: 40},
		})}),
	})

	res, err := f.svc.ScoreSubmission(context.Background(), Request{
		PlayerID: 1, ChallengeID: "test-bool", Text: goodSubmission, Hints: 2,
	})
	if err != nil {
		t.Fatalf("score: %v", err)
	}

	if res.Score != 93 {
		t.Errorf("score = %d, want 99 - 6 = 93", res.Score)
	}
	if !strings.Contains(res.FeedbackHTML, "cost 6 points") {
		t.Error("expected hint penalty note")
	}
}

func TestScoreSubmissionPeerBlock(t *testing.T) {
	f := newFixture(t, []llm.Provider{
		llm.NewMockProvider(llm.MockResponse{Content: scorecard(t, 98, map[string]judge.RubricItem{
			"Coverage":  {Points: 59, MaxPoints: 60},
			"Precision": {Points: 39, MaxPoints: 40},
		})}),
	})
	f.attempts.peers = []int{40, 50, 60, 70, 80}

	res, err := f.svc.ScoreSubmission(context.Background(), Request{
		PlayerID: 1, ChallengeID: "test-bool", Text: goodSubmission,
	})
	if err != nil {
		t.Fatalf("score: %v", err)
	}

	if !strings.Contains(res.FeedbackHTML, "top 1%") {
		t.Errorf("expected peer block with top 1%%, got:\n%s", res.FeedbackHTML)
	}
}

func TestScoreSubmissionCategoryPeerBlock(t *testing.T) {
	f := newFixture(t, []llm.Provider{
		llm.NewMockProvider(llm.MockResponse{Content: scorecard(t, 98, map[string]judge.RubricItem{
			"Coverage":  {Points: 59, MaxPoints: 60},
			"Precision": {Points: 39, MaxPoints: 40},
		})}),
	})
	// Too few challenge peers for that block, but a full category sample.
	f.attempts.peers = []int{60, 70}
	f.attempts.catPeers = []int{40, 45, 50, 55, 60, 65, 70, 75, 80, 85}

	res, err := f.svc.ScoreSubmission(context.Background(), Request{
		PlayerID: 1, ChallengeID: "test-bool", Text: goodSubmission,
	})
	if err != nil {
		t.Fatalf("score: %v", err)
	}

	if strings.Contains(res.FeedbackHTML, "peer-comparison") {
		t.Error("challenge peer block should be omitted below the sample minimum")
	}
	if !strings.Contains(res.FeedbackHTML, "category-comparison") {
		t.Errorf("expected category peer block, got:\n%s", res.FeedbackHTML)
	}
	if !strings.Contains(res.FeedbackHTML, "10 Boolean Search attempts") {
		t.Errorf("expected category sample and label in the block, got:\n%s", res.FeedbackHTML)
	}
}

func TestStyleBaselineSeededFromStoredAttempts(t *testing.T) {
	f := newFixture(t, []llm.Provider{
		llm.NewMockProvider(llm.MockResponse{Content: scorecard(t, 90, map[string]judge.RubricItem{
			"Coverage":  {Points: 54, MaxPoints: 60},
			"Precision": {Points: 36, MaxPoints: 40},
		})}),
	})

	// Five persisted submissions establish the player's writing style.
	stuffed := "golang golang golang developer team"
	for i := 0; i < 5; i++ {
		f.attempts.rows = append(f.attempts.rows, &store.Attempt{
			PlayerID:    1,
			ChallengeID: fmt.Sprintf("past-%d", i),
			Submission:  stuffed,
			CreatedAt:   t0.Add(-time.Hour),
		})
	}

	res, err := f.svc.ScoreSubmission(context.Background(), Request{
		PlayerID: 1, ChallengeID: "test-bool", Text: stuffed,
	})
	if err != nil {
		t.Fatalf("score: %v", err)
	}

	// Keyword stuffing alone scores risk 50 (high). A matching baseline
	// built from the stored history reduces it to 30 (medium).
	if res.RiskLevel != string(gaming.RiskMedium) {
		t.Errorf("risk = %q, want medium after baseline adjustment", res.RiskLevel)
	}
	if !strings.Contains(res.FeedbackHTML, "writing style matches your previous 5 submissions") {
		t.Errorf("expected context-adjustment note, got:\n%s", res.FeedbackHTML)
	}

	f.svc.mu.Lock()
	bl := f.svc.baselines[1]
	f.svc.mu.Unlock()
	if bl == nil || bl.Samples != 6 {
		t.Fatalf("baseline = %+v, want 5 seeded samples plus this submission", bl)
	}
}

func TestScoreSubmissionInputErrors(t *testing.T) {
	f := newFixture(t, []llm.Provider{llm.NewMockProvider()})
	f.attempts.rows = append(f.attempts.rows, &store.Attempt{
		PlayerID: 1, ChallengeID: "test-bool", CreatedAt: t0.Add(-time.Hour),
	})

	tests := []struct {
		name string
		req  Request
		code string
	}{
		{"empty", Request{PlayerID: 1, ChallengeID: "test-outreach", Text: "   "}, CodeEmptySubmission},
		{"too long", Request{PlayerID: 1, ChallengeID: "test-outreach", Text: strings.Repeat("x", 10001)}, CodeSubmissionTooLong},
		{"unknown challenge", Request{PlayerID: 1, ChallengeID: "nope", Text: "golang"}, CodeUnknownChallenge},
		{"duplicate", Request{PlayerID: 1, ChallengeID: "test-bool", Text: "golang"}, CodeDuplicateAttempt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.ScoreSubmission(context.Background(), tt.req)
			var perr *Error
			if !errors.As(err, &perr) {
				t.Fatalf("error = %v, want *pipeline.Error", err)
			}
			if perr.Code != tt.code {
				t.Errorf("code = %q, want %q", perr.Code, tt.code)
			}
		})
	}
}

func TestScoreSubmissionCooldown(t *testing.T) {
	f := newFixture(t, []llm.Provider{llm.NewMockProvider()})
	f.attempts.rows = append(f.attempts.rows, &store.Attempt{
		PlayerID: 1, ChallengeID: "test-bool", CreatedAt: t0.Add(-5 * time.Second),
	})

	_, err := f.svc.ScoreSubmission(context.Background(), Request{
		PlayerID: 1, ChallengeID: "test-outreach", Text: "golang berlin outreach",
	})
	var perr *Error
	if !errors.As(err, &perr) || perr.Code != CodeCooldownActive {
		t.Fatalf("error = %v, want cooldown_active", err)
	}
}

func TestScoreSubmissionDuplicateRaceOnInsert(t *testing.T) {
	f := newFixture(t, []llm.Provider{
		llm.NewMockProvider(llm.MockResponse{Content: scorecard(t, 98, map[string]judge.RubricItem{
			"Coverage":  {Points: 59, MaxPoints: 60},
			"Precision": {Points: 39, MaxPoints: 40},
		})}),
	})
	f.attempts.insertErr = store.ErrDuplicateAttempt

	_, err := f.svc.ScoreSubmission(context.Background(), Request{
		PlayerID: 1, ChallengeID: "test-bool", Text: goodSubmission,
	})
	var perr *Error
	if !errors.As(err, &perr) || perr.Code != CodeDuplicateAttempt {
		t.Fatalf("error = %v, want duplicate_attempt from insert backstop", err)
	}
}
