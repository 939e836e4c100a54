package catalog

import (
	"fmt"
	"regexp"
	"strings"
)

// validateChallenges performs all structural checks on the challenge set.
// Returns a combined error describing all problems found, or nil if valid.
func validateChallenges(challenges []Challenge) error {
	var errs []string

	known := make(map[SkillCategory]bool)
	for _, c := range AllCategories() {
		known[c] = true
	}

	idSet := make(map[string]bool, len(challenges))
	for _, ch := range challenges {
		if ch.ID == "" {
			errs = append(errs, "challenge with empty ID")
			continue
		}
		if idSet[ch.ID] {
			errs = append(errs, fmt.Sprintf("duplicate challenge ID: %q", ch.ID))
		}
		idSet[ch.ID] = true

		if !known[ch.SkillCategory] {
			errs = append(errs, fmt.Sprintf("challenge %q has unknown category %q", ch.ID, ch.SkillCategory))
		}
		if ch.Difficulty < DifficultyBeginner || ch.Difficulty > DifficultyExpert {
			errs = append(errs, fmt.Sprintf("challenge %q has out-of-range difficulty %d", ch.ID, ch.Difficulty))
		}
		if ch.Prompt == "" {
			errs = append(errs, fmt.Sprintf("challenge %q has no prompt", ch.ID))
		}
		if ch.Rubric.TotalPoints() <= 0 {
			errs = append(errs, fmt.Sprintf("challenge %q rubric totals %d points", ch.ID, ch.Rubric.TotalPoints()))
		}
		for _, crit := range ch.Rubric.Criteria {
			if crit.Name == "" || crit.MaxPoints <= 0 {
				errs = append(errs, fmt.Sprintf("challenge %q has invalid rubric criterion %+v", ch.ID, crit))
			}
		}
		for _, sp := range ch.Rules.StructurePatterns {
			if _, err := regexp.Compile(sp.Pattern); err != nil {
				errs = append(errs, fmt.Sprintf("challenge %q pattern %q: %v", ch.ID, sp.Name, err))
			}
		}
		if ch.Rules.MinLength > 0 && ch.Rules.MaxLength > 0 && ch.Rules.MinLength > ch.Rules.MaxLength {
			errs = append(errs, fmt.Sprintf("challenge %q has MinLength > MaxLength", ch.ID))
		}
		if ch.CurveEnabled {
			switch ch.CurveMode {
			case "bell", "linear", "sqrt":
			default:
				errs = append(errs, fmt.Sprintf("challenge %q has unknown curve mode %q", ch.ID, ch.CurveMode))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
