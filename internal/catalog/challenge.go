// Package catalog holds the read-only challenge catalog: sourcing
// challenges with their skill category, difficulty, scoring rubric,
// deterministic validation rules and example solution. The scoring
// pipeline treats the catalog as an opaque lookup; it never mutates it.
package catalog

// SkillCategory represents a recruiter skill being trained.
type SkillCategory string

const (
	CategoryBooleanSearch  SkillCategory = "boolean-search"
	CategoryOutreach       SkillCategory = "outreach"
	CategoryJobDescription SkillCategory = "job-description"
	CategoryScreening      SkillCategory = "screening"
)

// AllCategories returns all skill categories in display order.
func AllCategories() []SkillCategory {
	return []SkillCategory{
		CategoryBooleanSearch,
		CategoryOutreach,
		CategoryJobDescription,
		CategoryScreening,
	}
}

// CategoryDisplayName returns a human-readable name for a category.
func CategoryDisplayName(c SkillCategory) string {
	switch c {
	case CategoryBooleanSearch:
		return "Boolean Search"
	case CategoryOutreach:
		return "Candidate Outreach"
	case CategoryJobDescription:
		return "Job Descriptions"
	case CategoryScreening:
		return "Screening Questions"
	default:
		return string(c)
	}
}

// Difficulty represents a challenge difficulty tier.
type Difficulty int

const (
	DifficultyBeginner Difficulty = iota
	DifficultyIntermediate
	DifficultyAdvanced
	DifficultyExpert
)

// AllDifficulties returns the difficulty tiers in ascending order.
func AllDifficulties() []Difficulty {
	return []Difficulty{
		DifficultyBeginner,
		DifficultyIntermediate,
		DifficultyAdvanced,
		DifficultyExpert,
	}
}

// String returns the canonical lowercase name of the difficulty.
func (d Difficulty) String() string {
	switch d {
	case DifficultyBeginner:
		return "beginner"
	case DifficultyIntermediate:
		return "intermediate"
	case DifficultyAdvanced:
		return "advanced"
	case DifficultyExpert:
		return "expert"
	default:
		return "unknown"
	}
}

// ParseDifficulty maps a canonical name back to a Difficulty.
// Unknown names map to DifficultyBeginner.
func ParseDifficulty(s string) Difficulty {
	switch s {
	case "intermediate":
		return DifficultyIntermediate
	case "advanced":
		return DifficultyAdvanced
	case "expert":
		return DifficultyExpert
	default:
		return DifficultyBeginner
	}
}

// Criterion is one named rubric line with a maximum point award.
type Criterion struct {
	Name      string
	MaxPoints int
}

// Rubric is the authoritative scoring rubric for a challenge.
type Rubric struct {
	Criteria []Criterion
}

// TotalPoints returns the sum of maximum points across all criteria.
func (r Rubric) TotalPoints() int {
	total := 0
	for _, c := range r.Criteria {
		total += c.MaxPoints
	}
	return total
}

// ValidationRules drives the deterministic validator for a challenge.
// All checks are pure text checks; no external calls.
type ValidationRules struct {
	// RequiredKeywords must each appear (case-insensitive) in the
	// submission. Each hit earns keyword points.
	RequiredKeywords []string

	// BonusKeywords earn partial credit but are not required.
	BonusKeywords []string

	// ForbiddenPhrases each cost points when present (e.g. clichés in
	// outreach, discriminatory phrasing in job descriptions).
	ForbiddenPhrases []string

	// StructurePatterns are regular expressions the submission should
	// match (e.g. a quoted phrase and an OR group in a boolean string).
	// Each is paired with a human-readable check name.
	StructurePatterns []StructurePattern

	// MinLength and MaxLength bound the submission length in runes.
	// Zero means unbounded.
	MinLength int
	MaxLength int
}

// StructurePattern names a single regex structural check.
type StructurePattern struct {
	Name    string
	Pattern string
}

// Challenge is a single sourcing challenge.
type Challenge struct {
	ID              string
	Title           string
	Prompt          string
	SkillCategory   SkillCategory
	Difficulty      Difficulty
	Rubric          Rubric
	Rules           ValidationRules
	ExampleSolution string
	// CurveEnabled opts this challenge into peer score curving.
	// Disabled by default; enabled per challenge only.
	CurveEnabled bool
	CurveMode    string // "bell", "linear" or "sqrt" when CurveEnabled
}
