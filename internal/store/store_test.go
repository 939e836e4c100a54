package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ssanyal/recruitdojo/internal/calibration"
	"github.com/ssanyal/recruitdojo/internal/catalog"
	"github.com/ssanyal/recruitdojo/internal/difficulty"
	"github.com/ssanyal/recruitdojo/internal/refstore"
	"github.com/ssanyal/recruitdojo/internal/spacedrep"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestPlayerGetOrCreate(t *testing.T) {
	s := openTestStore(t)
	repo := s.Players()
	ctx := context.Background()

	p1, err := repo.GetOrCreate(ctx, "sana")
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}
	if p1.Name != "sana" || p1.XP != 0 {
		t.Errorf("player = %+v, want name sana with 0 xp", p1)
	}

	// Same name returns the same record.
	p2, err := repo.GetOrCreate(ctx, "sana")
	if err != nil {
		t.Fatalf("get or create again: %v", err)
	}
	if p2.ID != p1.ID {
		t.Errorf("second GetOrCreate returned ID %d, want %d", p2.ID, p1.ID)
	}

	if err := repo.AddXP(ctx, p1.ID, 120); err != nil {
		t.Fatalf("add xp: %v", err)
	}
	got, err := repo.Get(ctx, p1.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.XP != 120 {
		t.Errorf("xp = %d, want 120", got.XP)
	}
}

func TestPlayerGetUnknown(t *testing.T) {
	s := openTestStore(t)

	p, err := s.Players().Get(context.Background(), 999)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p != nil {
		t.Errorf("expected nil for unknown player, got %+v", p)
	}
}

func testAttempt(playerID int, challengeID string, score int) *Attempt {
	return &Attempt{
		PlayerID:       playerID,
		ChallengeID:    challengeID,
		SkillCategory:  "boolean-search",
		Difficulty:     "beginner",
		Submission:     "site:linkedin.com/in (golang OR go) engineer",
		ValidatorScore: score - 5,
		AIScore:        score,
		AIAvailable:    true,
		FinalScore:     score,
		Confidence:     80,
		RiskLevel:      "none",
		FeedbackHTML:   "<div>ok</div>",
	}
}

func TestAttemptInsertAndDuplicate(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	p, err := s.Players().GetOrCreate(ctx, "sana")
	if err != nil {
		t.Fatalf("player: %v", err)
	}
	repo := s.Attempts()

	a := testAttempt(p.ID, "bool-001", 72)
	if err := repo.Insert(ctx, a); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if a.ID == 0 {
		t.Error("expected ID to be assigned on insert")
	}
	if a.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be assigned on insert")
	}

	// Second attempt at the same challenge hits the unique index.
	err = repo.Insert(ctx, testAttempt(p.ID, "bool-001", 80))
	if !errors.Is(err, ErrDuplicateAttempt) {
		t.Fatalf("duplicate insert error = %v, want ErrDuplicateAttempt", err)
	}

	got, err := repo.ByPlayerChallenge(ctx, p.ID, "bool-001")
	if err != nil {
		t.Fatalf("by player challenge: %v", err)
	}
	if got == nil || got.FinalScore != 72 {
		t.Errorf("stored attempt = %+v, want final score 72", got)
	}
}

func TestAttemptQueriesAndAggregates(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	p1, _ := s.Players().GetOrCreate(ctx, "sana")
	p2, _ := s.Players().GetOrCreate(ctx, "ravi")
	repo := s.Attempts()

	for _, tc := range []struct {
		playerID    int
		challengeID string
		score       int
	}{
		{p1.ID, "bool-001", 60},
		{p1.ID, "bool-002", 75},
		{p2.ID, "bool-001", 90},
	} {
		if err := repo.Insert(ctx, testAttempt(tc.playerID, tc.challengeID, tc.score)); err != nil {
			t.Fatalf("insert %s/%d: %v", tc.challengeID, tc.playerID, err)
		}
	}

	all, err := repo.ByPlayer(ctx, p1.ID)
	if err != nil {
		t.Fatalf("by player: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("attempts for p1 = %d, want 2", len(all))
	}

	latest, err := repo.LatestByPlayer(ctx, p1.ID)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest == nil {
		t.Fatal("expected a latest attempt")
	}

	scores, err := repo.ChallengeScores(ctx, "bool-001")
	if err != nil {
		t.Fatalf("challenge scores: %v", err)
	}
	if len(scores) != 2 {
		t.Errorf("challenge scores = %v, want 2 entries", scores)
	}

	scores, err = repo.CategoryScores(ctx, "boolean-search")
	if err != nil {
		t.Fatalf("category scores: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("category scores = %v, want 3 entries", scores)
	}
}

func TestProfileUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.Profiles()
	ctx := context.Background()

	got, err := repo.Get(ctx, 1, catalog.CategoryBooleanSearch, catalog.DifficultyBeginner)
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if got != nil {
		t.Fatal("expected nil profile before first save")
	}

	p := &difficulty.Profile{
		SkillCategory:   catalog.CategoryBooleanSearch,
		Difficulty:      catalog.DifficultyBeginner,
		Attempts:        3,
		AvgScore:        71.5,
		BestScore:       85,
		WorstScore:      60,
		HighScores:      1,
		ExcellentScores: 1,
		Streak:          1,
		Recent:          []int{60, 70, 85},
	}
	if err := repo.Save(ctx, 1, p); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Update in place through the same unique key.
	p.Attempts = 4
	p.Streak = 2
	p.Recent = append(p.Recent, 88)
	if err := repo.Save(ctx, 1, p); err != nil {
		t.Fatalf("save (update): %v", err)
	}

	got, err = repo.Get(ctx, 1, catalog.CategoryBooleanSearch, catalog.DifficultyBeginner)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Attempts != 4 || got.Streak != 2 {
		t.Errorf("profile = %+v, want attempts 4 streak 2", got)
	}
	if got.ExcellentScores != 1 {
		t.Errorf("excellent scores = %d, want 1", got.ExcellentScores)
	}
	if len(got.Recent) != 4 || got.Recent[3] != 88 {
		t.Errorf("recent = %v, want 4 entries ending in 88", got.Recent)
	}
	if got.Difficulty != catalog.DifficultyBeginner {
		t.Errorf("difficulty = %v, want beginner", got.Difficulty)
	}
}

func TestSkillMemoryRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.SkillMemories()
	ctx := context.Background()

	got, err := repo.Get(ctx, 1, "boolean-search")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if got != nil {
		t.Fatal("expected nil state before first save")
	}

	now := time.Now().UTC().Truncate(time.Second)
	st := &spacedrep.State{
		SkillID:      "boolean-search",
		EF:           2.36,
		IntervalDays: 3,
		Repetitions:  2,
		Attempts:     2,
		LastScore:    82,
		LastQuality:  4,
		AvgScore:     78.5,
		Scores:       []int{75, 82},
		LastReview:   now,
		NextReview:   now.AddDate(0, 0, 3),
	}
	if err := repo.Save(ctx, 1, st); err != nil {
		t.Fatalf("save: %v", err)
	}
	st.Repetitions = 3
	st.IntervalDays = 8
	if err := repo.Save(ctx, 1, st); err != nil {
		t.Fatalf("save (update): %v", err)
	}

	got, err = repo.Get(ctx, 1, "boolean-search")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.EF != 2.36 || got.Repetitions != 3 || got.IntervalDays != 8 {
		t.Errorf("state = %+v, want ef 2.36 reps 3 interval 8", got)
	}
	if got.LastQuality != 4 {
		t.Errorf("last quality = %d, want 4", got.LastQuality)
	}
	if len(got.Scores) != 2 || got.Scores[1] != 82 {
		t.Errorf("scores = %v, want [75 82]", got.Scores)
	}

	all, err := repo.ByPlayer(ctx, 1)
	if err != nil {
		t.Fatalf("by player: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("states = %d, want 1", len(all))
	}
}

func TestCalibrationRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Calibrations()
	ctx := context.Background()

	rec, err := repo.Calibration(ctx, "bool-001")
	if err != nil {
		t.Fatalf("calibration (empty): %v", err)
	}
	if rec != nil {
		t.Fatal("expected nil record before first save")
	}

	now := time.Now().UTC().Truncate(time.Second)
	in := &calibration.Record{
		ChallengeID: "bool-001",
		Offset:      8.5,
		SampleCount: 42,
		Mean:        61.5,
		Median:      62,
		StdDev:      11.2,
		P25:         54,
		P75:         70,
		Confidence:  0.42,
		ComputedAt:  now,
	}
	if err := repo.SaveCalibration(ctx, in); err != nil {
		t.Fatalf("save: %v", err)
	}
	in.Offset = -4
	in.NeedsReview = true
	if err := repo.SaveCalibration(ctx, in); err != nil {
		t.Fatalf("save (update): %v", err)
	}

	rec, err = repo.Calibration(ctx, "bool-001")
	if err != nil {
		t.Fatalf("calibration: %v", err)
	}
	if rec.Offset != -4 || !rec.NeedsReview {
		t.Errorf("record = %+v, want offset -4 needs review", rec)
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("records = %d, want 1", len(all))
	}
}

func TestReferenceActiveFilterAndDeactivate(t *testing.T) {
	s := openTestStore(t)
	repo := s.References()
	ctx := context.Background()

	ref := &refstore.Reference{
		ID:          uuid.New(),
		ChallengeID: "bool-001",
		Text:        "site:linkedin.com/in golang engineer -recruiter",
		Embedding:   []float64{0.1, 0.9, 0.2},
		Score:       91,
		Source:      refstore.SourceCurated,
		Verified:    true,
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}
	if err := repo.Insert(ctx, ref); err != nil {
		t.Fatalf("insert: %v", err)
	}

	refs, err := repo.ActiveByChallenge(ctx, "bool-001")
	if err != nil {
		t.Fatalf("active: %v", err)
	}
	if len(refs) != 1 {
		t.Fatalf("active refs = %d, want 1", len(refs))
	}
	if refs[0].ID != ref.ID || !refs[0].Verified {
		t.Errorf("ref = %+v, want verified with matching uuid", refs[0])
	}
	if len(refs[0].Embedding) != 3 {
		t.Errorf("embedding = %v, want 3 dims", refs[0].Embedding)
	}

	if err := repo.Deactivate(ctx, "bool-001", ref.ID.String()); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	refs, err = repo.ActiveByChallenge(ctx, "bool-001")
	if err != nil {
		t.Fatalf("active after deactivate: %v", err)
	}
	if len(refs) != 0 {
		t.Errorf("active refs after deactivate = %d, want 0", len(refs))
	}

	// Deactivating a missing reference reports it.
	if err := repo.Deactivate(ctx, "bool-001", uuid.NewString()); err == nil {
		t.Error("expected error deactivating unknown reference")
	}
}

func TestAppendLLMRequestEvent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.Events().AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-sonnet-4-5",
		Purpose:      "judge-scoring",
		InputTokens:  412,
		OutputTokens: 288,
		CostUSD:      0.0055,
		LatencyMs:    1800,
		Success:      true,
		RequestBody:  `{"messages":[]}`,
		ResponseBody: `{"score":72}`,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	count, err := s.Client().LLMRequestEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("events = %d, want 1", count)
	}
}

func TestLLMEventQueriesAndUsage(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	events := s.Events()

	seed := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "judge-scoring", InputTokens: 400, OutputTokens: 200, CostUSD: 0.004, LatencyMs: 1500, Success: true},
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "judge-scoring", InputTokens: 600, OutputTokens: 300, CostUSD: 0.006, LatencyMs: 2500, Success: true},
		{Provider: "openai", Model: "text-embedding-3-small", Purpose: "embedding", InputTokens: 50, OutputTokens: 0, CostUSD: 0.0001, LatencyMs: 120, Success: true},
	}
	for i, data := range seed {
		if err := events.AppendLLMRequest(ctx, data); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	// Newest first, limit respected.
	listed, err := events.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(listed) != 2 || listed[0].Purpose != "embedding" {
		t.Fatalf("listed = %d events, first purpose %q", len(listed), listed[0].Purpose)
	}

	filtered, err := events.QueryLLMEvents(ctx, QueryOpts{Purpose: "judge-scoring"})
	if err != nil {
		t.Fatalf("query filtered: %v", err)
	}
	if len(filtered) != 2 {
		t.Errorf("filtered = %d events, want 2", len(filtered))
	}

	got, err := events.GetLLMEvent(ctx, listed[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Model != "text-embedding-3-small" {
		t.Errorf("got = %+v", got)
	}
	if missing, err := events.GetLLMEvent(ctx, 99999); err != nil || missing != nil {
		t.Errorf("unknown event = %+v, %v, want nil, nil", missing, err)
	}

	byPurpose, err := events.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	usage := make(map[string]*LLMUsage, len(byPurpose))
	for _, u := range byPurpose {
		usage[u.Purpose] = u
	}
	js := usage["judge-scoring"]
	if js == nil || js.Calls != 2 || js.InputTokens != 1000 || js.OutputTokens != 500 {
		t.Errorf("judge-scoring usage = %+v", js)
	}
	if js != nil && js.AvgLatencyMs != 2000 {
		t.Errorf("avg latency = %d, want 2000", js.AvgLatencyMs)
	}

	byModel, err := events.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Errorf("models = %d, want 2", len(byModel))
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"players", "attempts", "difficulty_profiles", "skill_memories", "calibrations", "reference_answers"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}
