package refstore

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/ssanyal/recruitdojo/internal/catalog"
)

// memRepo is an in-memory Repo for tests.
type memRepo struct {
	refs    map[string][]*Reference
	loadErr error
}

func newMemRepo() *memRepo {
	return &memRepo{refs: make(map[string][]*Reference)}
}

func (m *memRepo) ActiveByChallenge(_ context.Context, challengeID string) ([]*Reference, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.refs[challengeID], nil
}

func (m *memRepo) Insert(_ context.Context, ref *Reference) error {
	m.refs[ref.ChallengeID] = append(m.refs[ref.ChallengeID], ref)
	return nil
}

func TestCosine(t *testing.T) {
	a := []float64{1, 0, 0}
	if got := Cosine(a, a); math.Abs(got-1) > 1e-12 {
		t.Errorf("Cosine(a, a) = %v, want 1", got)
	}
	if got := Cosine(a, []float64{0, 1, 0}); got != 0 {
		t.Errorf("orthogonal vectors: %v, want 0", got)
	}
	if got := Cosine(a, []float64{1, 0}); got != 0 {
		t.Errorf("mismatched lengths: %v, want 0", got)
	}
	if got := Cosine(a, []float64{0, 0, 0}); got != 0 {
		t.Errorf("zero vector: %v, want 0", got)
	}
}

func TestAddRejectsNearDuplicate(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)
	ctx := context.Background()

	first := &Reference{
		ChallengeID: "bool-1",
		Text:        "golang AND berlin",
		Embedding:   []float64{0.6, 0.8},
		Score:       90,
	}
	if err := svc.Add(ctx, first); err != nil {
		t.Fatalf("Add first: %v", err)
	}

	// Same direction, different magnitude: cosine 1.0.
	dup := &Reference{
		ChallengeID: "bool-1",
		Text:        "golang AND berlin!",
		Embedding:   []float64{0.3, 0.4},
		Score:       92,
	}
	err := svc.Add(ctx, dup)
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("Add duplicate: err = %v, want ErrDuplicate", err)
	}
	if len(repo.refs["bool-1"]) != 1 {
		t.Errorf("store holds %d references, want 1", len(repo.refs["bool-1"]))
	}
}

func TestAddDistinctAndDefaults(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)
	ctx := context.Background()

	if err := svc.Add(ctx, &Reference{ChallengeID: "bool-1", Embedding: []float64{1, 0}, Score: 90}); err != nil {
		t.Fatal(err)
	}
	ref := &Reference{ChallengeID: "bool-1", Embedding: []float64{0, 1}, Score: 88}
	if err := svc.Add(ctx, ref); err != nil {
		t.Fatalf("distinct reference rejected: %v", err)
	}

	if ref.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("ID not assigned")
	}
	if ref.Source != SourceAuto {
		t.Errorf("source = %q, want %q", ref.Source, SourceAuto)
	}
	if ref.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}

	// Same-challenge scope only: identical embedding on another challenge
	// is fine.
	other := &Reference{ChallengeID: "bool-2", Embedding: []float64{1, 0}, Score: 95}
	if err := svc.Add(ctx, other); err != nil {
		t.Errorf("cross-challenge duplicate should be allowed: %v", err)
	}
}

func TestAddRequiresEmbedding(t *testing.T) {
	svc := NewService(newMemRepo())
	if err := svc.Add(context.Background(), &Reference{ChallengeID: "x"}); err == nil {
		t.Fatal("expected error for a reference without an embedding")
	}
}

func TestCompareNoReferences(t *testing.T) {
	s := NewScorer(newMemRepo(), nil, DefaultScorerConfig())
	cmp, err := s.Compare(context.Background(), "bool-1", []float64{1, 0})
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if cmp != nil {
		t.Fatalf("cmp = %+v, want nil when no references exist", cmp)
	}
}

func TestCompareFiltersAndRanks(t *testing.T) {
	repo := newMemRepo()
	repo.refs["bool-1"] = []*Reference{
		// sim 1.0, sim 0.8, sim 0 (below floor), then one below min score.
		{ChallengeID: "bool-1", Embedding: []float64{1, 0}, Score: 90},
		{ChallengeID: "bool-1", Embedding: []float64{0.8, 0.6}, Score: 80},
		{ChallengeID: "bool-1", Embedding: []float64{0, 1}, Score: 95},
		{ChallengeID: "bool-1", Embedding: []float64{1, 0}, Score: 50},
	}

	s := NewScorer(repo, nil, DefaultScorerConfig())
	cmp, err := s.Compare(context.Background(), "bool-1", []float64{1, 0})
	if err != nil {
		t.Fatal(err)
	}
	if cmp.ReferencesUsed != 2 {
		t.Fatalf("used %d references, want 2", cmp.ReferencesUsed)
	}
	if math.Abs(cmp.BestSimilarity-1) > 1e-9 || cmp.BestScore != 90 {
		t.Errorf("best = %v/%d, want 1.0/90", cmp.BestSimilarity, cmp.BestScore)
	}
	if math.Abs(cmp.AvgSimilarity-0.9) > 1e-9 {
		t.Errorf("avg similarity = %v, want 0.9", cmp.AvgSimilarity)
	}
	// (1.0*90 + 0.8*80) / 2 = 77.
	if math.Abs(cmp.WeightedScore-77) > 1e-9 {
		t.Errorf("weighted score = %v, want 77", cmp.WeightedScore)
	}
	if cmp.CrossGame {
		t.Error("no cross-game references were involved")
	}
}

func TestAdjustmentBoundsAndVerifiedBonus(t *testing.T) {
	s := NewScorer(newMemRepo(), nil, DefaultScorerConfig())

	// avgSim 0.9, no verified refs: (0.9-0.5)*2*0.10*100 = 8.
	if got := s.adjustment(0.9, 0); math.Abs(got-8) > 1e-9 {
		t.Errorf("adjustment = %v, want 8", got)
	}
	// Five verified refs raise the weight to the 0.20 cap.
	if got := s.adjustment(0.9, 5); math.Abs(got-16) > 1e-9 {
		t.Errorf("adjustment = %v, want 16", got)
	}
	// More verified refs cannot exceed the cap.
	if got := s.adjustment(1.0, 50); math.Abs(got-20) > 1e-9 {
		t.Errorf("adjustment = %v, want capped 20", got)
	}
	// Low similarity pushes the score down.
	if got := s.adjustment(0.1, 0); math.Abs(got-(-8)) > 1e-9 {
		t.Errorf("adjustment = %v, want -8", got)
	}
}

func TestCompareCrossGameFallback(t *testing.T) {
	cat, err := catalog.New([]catalog.Challenge{
		{
			ID: "bool-1", Title: "A", Prompt: "p", SkillCategory: catalog.CategoryBooleanSearch,
			Difficulty: catalog.DifficultyBeginner,
			Rubric:     catalog.Rubric{Criteria: []catalog.Criterion{{Name: "c", MaxPoints: 100}}},
		},
		{
			ID: "bool-2", Title: "B", Prompt: "p", SkillCategory: catalog.CategoryBooleanSearch,
			Difficulty: catalog.DifficultyBeginner,
			Rubric:     catalog.Rubric{Criteria: []catalog.Criterion{{Name: "c", MaxPoints: 100}}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	repo := newMemRepo()
	repo.refs["bool-2"] = []*Reference{
		{ChallengeID: "bool-2", Embedding: []float64{1, 0}, Score: 90, Verified: true},
	}

	s := NewScorer(repo, cat, DefaultScorerConfig())
	cmp, err := s.Compare(context.Background(), "bool-1", []float64{1, 0})
	if err != nil {
		t.Fatal(err)
	}
	if cmp == nil {
		t.Fatal("expected a cross-game comparison")
	}
	if !cmp.CrossGame {
		t.Error("CrossGame flag not set")
	}
	// Borrowed similarity is discounted by the cross-game weight.
	if math.Abs(cmp.BestSimilarity-0.7) > 1e-9 {
		t.Errorf("best similarity = %v, want 0.7", cmp.BestSimilarity)
	}
	if cmp.VerifiedUsed != 1 {
		t.Errorf("verified used = %d, want 1", cmp.VerifiedUsed)
	}
}

func TestCompareEnoughSameChallengeSkipsFallback(t *testing.T) {
	repo := newMemRepo()
	for i := 0; i < 3; i++ {
		repo.refs["bool-1"] = append(repo.refs["bool-1"], &Reference{
			ChallengeID: "bool-1",
			Embedding:   []float64{1, float64(i) * 0.01},
			Score:       90,
		})
	}
	repo.refs["bool-2"] = []*Reference{
		{ChallengeID: "bool-2", Embedding: []float64{1, 0}, Score: 99},
	}

	s := NewScorer(repo, catalog.Default(), DefaultScorerConfig())
	cmp, err := s.Compare(context.Background(), "bool-1", []float64{1, 0})
	if err != nil {
		t.Fatal(err)
	}
	if cmp.CrossGame {
		t.Error("fallback should not trigger with enough same-challenge references")
	}
	if cmp.ReferencesUsed != 3 {
		t.Errorf("used %d, want 3", cmp.ReferencesUsed)
	}
}
