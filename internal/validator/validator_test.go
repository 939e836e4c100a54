package validator

import (
	"strings"
	"testing"

	"github.com/ssanyal/recruitdojo/internal/catalog"
)

func boolRules() catalog.ValidationRules {
	return catalog.ValidationRules{
		RequiredKeywords: []string{"golang", "berlin"},
		BonusKeywords:    []string{"fintech"},
		StructurePatterns: []catalog.StructurePattern{
			{Name: "has_or_group", Pattern: `(?i)\(.*\bOR\b.*\)`},
			{Name: "has_quoted_phrase", Pattern: `"[^"]+"`},
		},
		MinLength: 20,
		MaxLength: 200,
	}
}

func TestValidateEmptySubmission(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t"} {
		res := Validate(text, boolRules())
		if res.Score != 0 {
			t.Errorf("Validate(%q) score = %d, want 0", text, res.Score)
		}
		if len(res.Feedback) == 0 {
			t.Errorf("Validate(%q) missing explanatory feedback", text)
		}
	}
}

func TestValidateFullMarks(t *testing.T) {
	text := `("golang" OR "go engineer") AND berlin AND fintech`
	res := Validate(text, boolRules())

	if res.Score != 100 {
		t.Errorf("score = %d, want 100", res.Score)
	}
	for _, check := range []string{"keyword:golang", "keyword:berlin", "structure:has_or_group", "structure:has_quoted_phrase", "length_ok"} {
		if !res.Checks[check] {
			t.Errorf("check %q = false, want true", check)
		}
	}
	if len(res.Strengths) == 0 {
		t.Error("expected strengths for a full-marks submission")
	}
}

func TestValidateFullMarksWithUnevenKeywordSplit(t *testing.T) {
	// Three keywords do not divide the 40-point budget evenly; hitting
	// all of them must still earn the full budget, so a perfect
	// submission reaches 100.
	rules := catalog.ValidationRules{
		RequiredKeywords: []string{"golang", "berlin", "kubernetes"},
	}
	res := Validate("golang engineers in berlin with kubernetes experience", rules)
	if res.Score != 100 {
		t.Errorf("score = %d, want 100 with every keyword present", res.Score)
	}
}

func TestValidatePartialCredit(t *testing.T) {
	// Has keywords and length but no boolean structure.
	text := "golang engineers in berlin with some experience"
	res := Validate(text, boolRules())

	if res.Score <= 0 || res.Score >= 100 {
		t.Fatalf("score = %d, want partial credit in (0,100)", res.Score)
	}
	if res.Checks["structure:has_or_group"] {
		t.Error("has_or_group should fail")
	}
	if len(res.Feedback) == 0 {
		t.Error("expected feedback for failed structure checks")
	}
}

func TestValidateCaseInsensitiveKeywords(t *testing.T) {
	text := `("GOLANG" OR "Go dev") AND Berlin`
	res := Validate(text, boolRules())
	if !res.Checks["keyword:golang"] || !res.Checks["keyword:berlin"] {
		t.Errorf("keyword matching should be case-insensitive, checks = %v", res.Checks)
	}
}

func TestValidateLengthBounds(t *testing.T) {
	short := Validate("golang berlin", boolRules())
	if short.Checks["length_ok"] {
		t.Error("13-char submission should fail the 20-char minimum")
	}

	long := Validate(strings.Repeat("golang berlin ", 30), boolRules())
	if long.Checks["length_ok"] {
		t.Error("oversized submission should fail the 200-char maximum")
	}
}

func TestValidateForbiddenPhrases(t *testing.T) {
	rules := catalog.ValidationRules{
		RequiredKeywords: []string{"platform"},
		ForbiddenPhrases: []string{"rockstar", "ninja"},
		MinLength:        5,
	}

	clean := Validate("platform engineer wanted", rules)
	dirty := Validate("platform rockstar ninja wanted", rules)

	if !clean.Checks["no_forbidden_phrases"] {
		t.Error("clean text flagged as having forbidden phrases")
	}
	if dirty.Checks["no_forbidden_phrases"] {
		t.Error("dirty text not flagged")
	}
	if dirty.Score >= clean.Score {
		t.Errorf("forbidden phrases should cost points: dirty %d >= clean %d", dirty.Score, clean.Score)
	}
}

func TestValidateNoRulesNeutral(t *testing.T) {
	res := Validate("anything at all", catalog.ValidationRules{})
	if res.Score != 50 {
		t.Errorf("score with no rules = %d, want neutral 50", res.Score)
	}
}

func TestValidateScoreBounds(t *testing.T) {
	rules := catalog.ValidationRules{
		ForbiddenPhrases: []string{"a", "e", "i", "o", "u", "t", "s", "n", "r", "l", "d", "c", "m"},
	}
	res := Validate("a terrible submission full of vowels and consonants", rules)
	if res.Score < 0 || res.Score > 100 {
		t.Errorf("score %d out of [0,100]", res.Score)
	}
}
