// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ssanyal/recruitdojo/ent/skillmemory"
)

// SkillMemory is the model entity for the SkillMemory schema.
type SkillMemory struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// PlayerID holds the value of the "player_id" field.
	PlayerID int `json:"player_id,omitempty"`
	// SkillID holds the value of the "skill_id" field.
	SkillID string `json:"skill_id,omitempty"`
	// SM-2 easiness factor, clamped to [1.3, 2.5]
	Ef float64 `json:"ef,omitempty"`
	// IntervalDays holds the value of the "interval_days" field.
	IntervalDays int `json:"interval_days,omitempty"`
	// Repetitions holds the value of the "repetitions" field.
	Repetitions int `json:"repetitions,omitempty"`
	// Attempts holds the value of the "attempts" field.
	Attempts int `json:"attempts,omitempty"`
	// LastScore holds the value of the "last_score" field.
	LastScore int `json:"last_score,omitempty"`
	// SM-2 quality grade of the latest attempt, 0-5
	LastQuality int `json:"last_quality,omitempty"`
	// AvgScore holds the value of the "avg_score" field.
	AvgScore float64 `json:"avg_score,omitempty"`
	// Bounded history of final scores, newest last
	Scores []int `json:"scores,omitempty"`
	// LastReview holds the value of the "last_review" field.
	LastReview time.Time `json:"last_review,omitempty"`
	// NextReview holds the value of the "next_review" field.
	NextReview   time.Time `json:"next_review,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SkillMemory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case skillmemory.FieldScores:
			values[i] = new([]byte)
		case skillmemory.FieldEf, skillmemory.FieldAvgScore:
			values[i] = new(sql.NullFloat64)
		case skillmemory.FieldID, skillmemory.FieldPlayerID, skillmemory.FieldIntervalDays, skillmemory.FieldRepetitions, skillmemory.FieldAttempts, skillmemory.FieldLastScore, skillmemory.FieldLastQuality:
			values[i] = new(sql.NullInt64)
		case skillmemory.FieldSkillID:
			values[i] = new(sql.NullString)
		case skillmemory.FieldLastReview, skillmemory.FieldNextReview:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SkillMemory fields.
func (_m *SkillMemory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case skillmemory.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case skillmemory.FieldPlayerID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field player_id", values[i])
			} else if value.Valid {
				_m.PlayerID = int(value.Int64)
			}
		case skillmemory.FieldSkillID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_id", values[i])
			} else if value.Valid {
				_m.SkillID = value.String
			}
		case skillmemory.FieldEf:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ef", values[i])
			} else if value.Valid {
				_m.Ef = value.Float64
			}
		case skillmemory.FieldIntervalDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field interval_days", values[i])
			} else if value.Valid {
				_m.IntervalDays = int(value.Int64)
			}
		case skillmemory.FieldRepetitions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field repetitions", values[i])
			} else if value.Valid {
				_m.Repetitions = int(value.Int64)
			}
		case skillmemory.FieldAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempts", values[i])
			} else if value.Valid {
				_m.Attempts = int(value.Int64)
			}
		case skillmemory.FieldLastScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_score", values[i])
			} else if value.Valid {
				_m.LastScore = int(value.Int64)
			}
		case skillmemory.FieldLastQuality:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_quality", values[i])
			} else if value.Valid {
				_m.LastQuality = int(value.Int64)
			}
		case skillmemory.FieldAvgScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_score", values[i])
			} else if value.Valid {
				_m.AvgScore = value.Float64
			}
		case skillmemory.FieldScores:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field scores", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Scores); err != nil {
					return fmt.Errorf("unmarshal field scores: %w", err)
				}
			}
		case skillmemory.FieldLastReview:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_review", values[i])
			} else if value.Valid {
				_m.LastReview = value.Time
			}
		case skillmemory.FieldNextReview:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_review", values[i])
			} else if value.Valid {
				_m.NextReview = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SkillMemory.
// This includes values selected through modifiers, order, etc.
func (_m *SkillMemory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SkillMemory.
// Note that you need to call SkillMemory.Unwrap() before calling this method if this SkillMemory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SkillMemory) Update() *SkillMemoryUpdateOne {
	return NewSkillMemoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SkillMemory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SkillMemory) Unwrap() *SkillMemory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SkillMemory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SkillMemory) String() string {
	var builder strings.Builder
	builder.WriteString("SkillMemory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("player_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PlayerID))
	builder.WriteString(", ")
	builder.WriteString("skill_id=")
	builder.WriteString(_m.SkillID)
	builder.WriteString(", ")
	builder.WriteString("ef=")
	builder.WriteString(fmt.Sprintf("%v", _m.Ef))
	builder.WriteString(", ")
	builder.WriteString("interval_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntervalDays))
	builder.WriteString(", ")
	builder.WriteString("repetitions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Repetitions))
	builder.WriteString(", ")
	builder.WriteString("attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempts))
	builder.WriteString(", ")
	builder.WriteString("last_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.LastScore))
	builder.WriteString(", ")
	builder.WriteString("last_quality=")
	builder.WriteString(fmt.Sprintf("%v", _m.LastQuality))
	builder.WriteString(", ")
	builder.WriteString("avg_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvgScore))
	builder.WriteString(", ")
	builder.WriteString("scores=")
	builder.WriteString(fmt.Sprintf("%v", _m.Scores))
	builder.WriteString(", ")
	builder.WriteString("last_review=")
	builder.WriteString(_m.LastReview.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("next_review=")
	builder.WriteString(_m.NextReview.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SkillMemories is a parsable slice of SkillMemory.
type SkillMemories []*SkillMemory
