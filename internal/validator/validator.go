// Package validator implements the deterministic, rule-based submission
// check. It is a pure function of the submission text and the challenge's
// validation rules, and it is the only scoring signal guaranteed available
// when every external dependency is down.
package validator

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/ssanyal/recruitdojo/internal/catalog"
)

// Point budget per rule group. Groups absent from a challenge's rules
// redistribute implicitly: the score is scaled by the points actually
// available.
const (
	requiredPoints  = 40
	structurePoints = 30
	bonusPoints     = 15
	lengthPoints    = 15
	forbiddenCost   = 8
)

// Result is the outcome of deterministic validation.
type Result struct {
	// Score is the rule-based score in [0,100].
	Score int
	// Checks maps named boolean checks to their outcome.
	Checks map[string]bool
	// Feedback lists human-readable notes for failed checks.
	Feedback []string
	// Strengths lists what the submission did well.
	Strengths []string
}

// patternCache caches compiled structure patterns by source.
// Catalog validation guarantees they compile.
var patternCache sync.Map // map[string]*regexp.Regexp

// Validate runs all rule checks for the challenge against the submission
// text. Malformed input (empty or whitespace-only text) scores 0 with
// explanatory feedback; there are no other failure modes.
func Validate(text string, rules catalog.ValidationRules) Result {
	res := Result{Checks: make(map[string]bool)}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		res.Feedback = append(res.Feedback, "Submission is empty.")
		return res
	}

	lower := strings.ToLower(text)
	earned, available := 0, 0

	// Required keywords. Points accrue as hits·budget/total so a full
	// sweep always earns the whole group budget.
	if len(rules.RequiredKeywords) > 0 {
		available += requiredPoints
		hits := 0
		for _, kw := range rules.RequiredKeywords {
			hit := strings.Contains(lower, strings.ToLower(kw))
			res.Checks["keyword:"+kw] = hit
			if hit {
				hits++
				res.Strengths = append(res.Strengths, fmt.Sprintf("Includes the key term %q.", kw))
			} else {
				res.Feedback = append(res.Feedback, fmt.Sprintf("Missing the key term %q.", kw))
			}
		}
		earned += hits * requiredPoints / len(rules.RequiredKeywords)
	}

	// Structure patterns.
	if len(rules.StructurePatterns) > 0 {
		available += structurePoints
		hits := 0
		for _, sp := range rules.StructurePatterns {
			hit := compiled(sp.Pattern).MatchString(text)
			res.Checks["structure:"+sp.Name] = hit
			if hit {
				hits++
				res.Strengths = append(res.Strengths, fmt.Sprintf("Structure check %q passed.", sp.Name))
			} else {
				res.Feedback = append(res.Feedback, fmt.Sprintf("Structure check %q failed.", sp.Name))
			}
		}
		earned += hits * structurePoints / len(rules.StructurePatterns)
	}

	// Bonus keywords: partial credit, no feedback when absent.
	if len(rules.BonusKeywords) > 0 {
		available += bonusPoints
		hits := 0
		for _, kw := range rules.BonusKeywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				res.Checks["bonus:"+kw] = true
				hits++
				res.Strengths = append(res.Strengths, fmt.Sprintf("Good use of %q.", kw))
			}
		}
		earned += hits * bonusPoints / len(rules.BonusKeywords)
	}

	// Length bounds.
	if rules.MinLength > 0 || rules.MaxLength > 0 {
		available += lengthPoints
		n := utf8.RuneCountInString(trimmed)
		ok := true
		if rules.MinLength > 0 && n < rules.MinLength {
			ok = false
			res.Feedback = append(res.Feedback, fmt.Sprintf("Too short: %d characters, expected at least %d.", n, rules.MinLength))
		}
		if rules.MaxLength > 0 && n > rules.MaxLength {
			ok = false
			res.Feedback = append(res.Feedback, fmt.Sprintf("Too long: %d characters, expected at most %d.", n, rules.MaxLength))
		}
		res.Checks["length_ok"] = ok
		if ok {
			earned += lengthPoints
		}
	}

	if available == 0 {
		// No scorable rules: neutral baseline so the ensemble is not
		// dragged down by an unconfigured challenge.
		earned, available = 50, 100
	}

	score := earned * 100 / available

	// Forbidden phrases penalize after scaling.
	clean := true
	for _, phrase := range rules.ForbiddenPhrases {
		if strings.Contains(lower, strings.ToLower(phrase)) {
			clean = false
			score -= forbiddenCost
			res.Feedback = append(res.Feedback, fmt.Sprintf("Avoid the phrase %q.", phrase))
		}
	}
	if len(rules.ForbiddenPhrases) > 0 {
		res.Checks["no_forbidden_phrases"] = clean
		if clean {
			res.Strengths = append(res.Strengths, "No clichés or forbidden phrasing.")
		}
	}

	res.Score = clampScore(score)
	return res
}

func compiled(pattern string) *regexp.Regexp {
	if cached, ok := patternCache.Load(pattern); ok {
		return cached.(*regexp.Regexp)
	}
	re := regexp.MustCompile(pattern)
	patternCache.Store(pattern, re)
	return re
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
