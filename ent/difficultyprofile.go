// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ssanyal/recruitdojo/ent/difficultyprofile"
)

// DifficultyProfile is the model entity for the DifficultyProfile schema.
type DifficultyProfile struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// PlayerID holds the value of the "player_id" field.
	PlayerID int `json:"player_id,omitempty"`
	// SkillCategory holds the value of the "skill_category" field.
	SkillCategory string `json:"skill_category,omitempty"`
	// Difficulty holds the value of the "difficulty" field.
	Difficulty string `json:"difficulty,omitempty"`
	// Attempts holds the value of the "attempts" field.
	Attempts int `json:"attempts,omitempty"`
	// AvgScore holds the value of the "avg_score" field.
	AvgScore float64 `json:"avg_score,omitempty"`
	// BestScore holds the value of the "best_score" field.
	BestScore int `json:"best_score,omitempty"`
	// WorstScore holds the value of the "worst_score" field.
	WorstScore int `json:"worst_score,omitempty"`
	// HighScores holds the value of the "high_scores" field.
	HighScores int `json:"high_scores,omitempty"`
	// Count of scores at or above 90
	ExcellentScores int `json:"excellent_scores,omitempty"`
	// Streak holds the value of the "streak" field.
	Streak int `json:"streak,omitempty"`
	// Attempts-based trust in the aggregates, [0,1]
	Confidence float64 `json:"confidence,omitempty"`
	// Rolling window of recent final scores, newest last
	Recent       []int `json:"recent,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DifficultyProfile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case difficultyprofile.FieldRecent:
			values[i] = new([]byte)
		case difficultyprofile.FieldAvgScore, difficultyprofile.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case difficultyprofile.FieldID, difficultyprofile.FieldPlayerID, difficultyprofile.FieldAttempts, difficultyprofile.FieldBestScore, difficultyprofile.FieldWorstScore, difficultyprofile.FieldHighScores, difficultyprofile.FieldExcellentScores, difficultyprofile.FieldStreak:
			values[i] = new(sql.NullInt64)
		case difficultyprofile.FieldSkillCategory, difficultyprofile.FieldDifficulty:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DifficultyProfile fields.
func (_m *DifficultyProfile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case difficultyprofile.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case difficultyprofile.FieldPlayerID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field player_id", values[i])
			} else if value.Valid {
				_m.PlayerID = int(value.Int64)
			}
		case difficultyprofile.FieldSkillCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_category", values[i])
			} else if value.Valid {
				_m.SkillCategory = value.String
			}
		case difficultyprofile.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.String
			}
		case difficultyprofile.FieldAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempts", values[i])
			} else if value.Valid {
				_m.Attempts = int(value.Int64)
			}
		case difficultyprofile.FieldAvgScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_score", values[i])
			} else if value.Valid {
				_m.AvgScore = value.Float64
			}
		case difficultyprofile.FieldBestScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field best_score", values[i])
			} else if value.Valid {
				_m.BestScore = int(value.Int64)
			}
		case difficultyprofile.FieldWorstScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field worst_score", values[i])
			} else if value.Valid {
				_m.WorstScore = int(value.Int64)
			}
		case difficultyprofile.FieldHighScores:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field high_scores", values[i])
			} else if value.Valid {
				_m.HighScores = int(value.Int64)
			}
		case difficultyprofile.FieldExcellentScores:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field excellent_scores", values[i])
			} else if value.Valid {
				_m.ExcellentScores = int(value.Int64)
			}
		case difficultyprofile.FieldStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field streak", values[i])
			} else if value.Valid {
				_m.Streak = int(value.Int64)
			}
		case difficultyprofile.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case difficultyprofile.FieldRecent:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field recent", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Recent); err != nil {
					return fmt.Errorf("unmarshal field recent: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DifficultyProfile.
// This includes values selected through modifiers, order, etc.
func (_m *DifficultyProfile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DifficultyProfile.
// Note that you need to call DifficultyProfile.Unwrap() before calling this method if this DifficultyProfile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DifficultyProfile) Update() *DifficultyProfileUpdateOne {
	return NewDifficultyProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DifficultyProfile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DifficultyProfile) Unwrap() *DifficultyProfile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DifficultyProfile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DifficultyProfile) String() string {
	var builder strings.Builder
	builder.WriteString("DifficultyProfile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("player_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PlayerID))
	builder.WriteString(", ")
	builder.WriteString("skill_category=")
	builder.WriteString(_m.SkillCategory)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(_m.Difficulty)
	builder.WriteString(", ")
	builder.WriteString("attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempts))
	builder.WriteString(", ")
	builder.WriteString("avg_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvgScore))
	builder.WriteString(", ")
	builder.WriteString("best_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.BestScore))
	builder.WriteString(", ")
	builder.WriteString("worst_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.WorstScore))
	builder.WriteString(", ")
	builder.WriteString("high_scores=")
	builder.WriteString(fmt.Sprintf("%v", _m.HighScores))
	builder.WriteString(", ")
	builder.WriteString("excellent_scores=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExcellentScores))
	builder.WriteString(", ")
	builder.WriteString("streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.Streak))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("recent=")
	builder.WriteString(fmt.Sprintf("%v", _m.Recent))
	builder.WriteByte(')')
	return builder.String()
}

// DifficultyProfiles is a parsable slice of DifficultyProfile.
type DifficultyProfiles []*DifficultyProfile
