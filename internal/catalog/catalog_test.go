package catalog

import "testing"

func TestDefaultCatalogValid(t *testing.T) {
	c := Default()
	if len(c.All()) == 0 {
		t.Fatal("seed catalog is empty")
	}
	for _, ch := range c.All() {
		if got := c.ByID(ch.ID); got != ch {
			t.Errorf("ByID(%q) did not return the same challenge", ch.ID)
		}
	}
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	challenges := []Challenge{
		{ID: "x", Prompt: "p", SkillCategory: CategoryOutreach, Rubric: Rubric{Criteria: []Criterion{{Name: "a", MaxPoints: 10}}}},
		{ID: "x", Prompt: "p", SkillCategory: CategoryOutreach, Rubric: Rubric{Criteria: []Criterion{{Name: "a", MaxPoints: 10}}}},
	}
	if _, err := New(challenges); err == nil {
		t.Fatal("expected duplicate ID error")
	}
}

func TestNewRejectsEmptyRubric(t *testing.T) {
	challenges := []Challenge{
		{ID: "x", Prompt: "p", SkillCategory: CategoryScreening},
	}
	if _, err := New(challenges); err == nil {
		t.Fatal("expected empty rubric error")
	}
}

func TestNewRejectsBadPattern(t *testing.T) {
	challenges := []Challenge{
		{
			ID:            "x",
			Prompt:        "p",
			SkillCategory: CategoryScreening,
			Rubric:        Rubric{Criteria: []Criterion{{Name: "a", MaxPoints: 10}}},
			Rules: ValidationRules{
				StructurePatterns: []StructurePattern{{Name: "bad", Pattern: `([`}},
			},
		},
	}
	if _, err := New(challenges); err == nil {
		t.Fatal("expected invalid pattern error")
	}
}

func TestRelatedSharesCategoryAndDifficulty(t *testing.T) {
	challenges := []Challenge{
		mkChallenge("a", CategoryOutreach, DifficultyIntermediate),
		mkChallenge("b", CategoryOutreach, DifficultyIntermediate),
		mkChallenge("c", CategoryOutreach, DifficultyExpert),
		mkChallenge("d", CategoryScreening, DifficultyIntermediate),
	}
	c, err := New(challenges)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	related := c.Related("a")
	if len(related) != 1 || related[0].ID != "b" {
		t.Fatalf("expected only %q related, got %v", "b", related)
	}

	if got := c.Related("missing"); got != nil {
		t.Errorf("expected nil for unknown challenge, got %v", got)
	}
}

func TestBenchmarkTargetDescends(t *testing.T) {
	prev := 101.0
	for _, d := range AllDifficulties() {
		target := BenchmarkTarget(d)
		if target >= prev {
			t.Errorf("benchmark for %s (%v) not below previous tier (%v)", d, target, prev)
		}
		prev = target
	}
}

func mkChallenge(id string, cat SkillCategory, diff Difficulty) Challenge {
	return Challenge{
		ID:            id,
		Prompt:        "p",
		SkillCategory: cat,
		Difficulty:    diff,
		Rubric:        Rubric{Criteria: []Criterion{{Name: "a", MaxPoints: 10}}},
	}
}
