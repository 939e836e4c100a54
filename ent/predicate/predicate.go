// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Attempt is the predicate function for attempt builders.
type Attempt func(*sql.Selector)

// Calibration is the predicate function for calibration builders.
type Calibration func(*sql.Selector)

// DifficultyProfile is the predicate function for difficultyprofile builders.
type DifficultyProfile func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Player is the predicate function for player builders.
type Player func(*sql.Selector)

// ReferenceAnswer is the predicate function for referenceanswer builders.
type ReferenceAnswer func(*sql.Selector)

// SkillMemory is the predicate function for skillmemory builders.
type SkillMemory func(*sql.Selector)
