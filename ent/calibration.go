// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ssanyal/recruitdojo/ent/calibration"
)

// Calibration is the model entity for the Calibration schema.
type Calibration struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ChallengeID holds the value of the "challenge_id" field.
	ChallengeID string `json:"challenge_id,omitempty"`
	// Signed correction in points, capped; dampened at apply time
	Offset float64 `json:"offset,omitempty"`
	// SampleCount holds the value of the "sample_count" field.
	SampleCount int `json:"sample_count,omitempty"`
	// Mean holds the value of the "mean" field.
	Mean float64 `json:"mean,omitempty"`
	// Median holds the value of the "median" field.
	Median float64 `json:"median,omitempty"`
	// Stddev holds the value of the "stddev" field.
	Stddev float64 `json:"stddev,omitempty"`
	// P25 holds the value of the "p25" field.
	P25 float64 `json:"p25,omitempty"`
	// P75 holds the value of the "p75" field.
	P75 float64 `json:"p75,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// NeedsReview holds the value of the "needs_review" field.
	NeedsReview bool `json:"needs_review,omitempty"`
	// ComputedAt holds the value of the "computed_at" field.
	ComputedAt   time.Time `json:"computed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Calibration) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case calibration.FieldNeedsReview:
			values[i] = new(sql.NullBool)
		case calibration.FieldOffset, calibration.FieldMean, calibration.FieldMedian, calibration.FieldStddev, calibration.FieldP25, calibration.FieldP75, calibration.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case calibration.FieldID, calibration.FieldSampleCount:
			values[i] = new(sql.NullInt64)
		case calibration.FieldChallengeID:
			values[i] = new(sql.NullString)
		case calibration.FieldComputedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Calibration fields.
func (_m *Calibration) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case calibration.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case calibration.FieldChallengeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field challenge_id", values[i])
			} else if value.Valid {
				_m.ChallengeID = value.String
			}
		case calibration.FieldOffset:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field offset", values[i])
			} else if value.Valid {
				_m.Offset = value.Float64
			}
		case calibration.FieldSampleCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sample_count", values[i])
			} else if value.Valid {
				_m.SampleCount = int(value.Int64)
			}
		case calibration.FieldMean:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mean", values[i])
			} else if value.Valid {
				_m.Mean = value.Float64
			}
		case calibration.FieldMedian:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field median", values[i])
			} else if value.Valid {
				_m.Median = value.Float64
			}
		case calibration.FieldStddev:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field stddev", values[i])
			} else if value.Valid {
				_m.Stddev = value.Float64
			}
		case calibration.FieldP25:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field p25", values[i])
			} else if value.Valid {
				_m.P25 = value.Float64
			}
		case calibration.FieldP75:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field p75", values[i])
			} else if value.Valid {
				_m.P75 = value.Float64
			}
		case calibration.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case calibration.FieldNeedsReview:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field needs_review", values[i])
			} else if value.Valid {
				_m.NeedsReview = value.Bool
			}
		case calibration.FieldComputedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field computed_at", values[i])
			} else if value.Valid {
				_m.ComputedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Calibration.
// This includes values selected through modifiers, order, etc.
func (_m *Calibration) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Calibration.
// Note that you need to call Calibration.Unwrap() before calling this method if this Calibration
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Calibration) Update() *CalibrationUpdateOne {
	return NewCalibrationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Calibration entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Calibration) Unwrap() *Calibration {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Calibration is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Calibration) String() string {
	var builder strings.Builder
	builder.WriteString("Calibration(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("challenge_id=")
	builder.WriteString(_m.ChallengeID)
	builder.WriteString(", ")
	builder.WriteString("offset=")
	builder.WriteString(fmt.Sprintf("%v", _m.Offset))
	builder.WriteString(", ")
	builder.WriteString("sample_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SampleCount))
	builder.WriteString(", ")
	builder.WriteString("mean=")
	builder.WriteString(fmt.Sprintf("%v", _m.Mean))
	builder.WriteString(", ")
	builder.WriteString("median=")
	builder.WriteString(fmt.Sprintf("%v", _m.Median))
	builder.WriteString(", ")
	builder.WriteString("stddev=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stddev))
	builder.WriteString(", ")
	builder.WriteString("p25=")
	builder.WriteString(fmt.Sprintf("%v", _m.P25))
	builder.WriteString(", ")
	builder.WriteString("p75=")
	builder.WriteString(fmt.Sprintf("%v", _m.P75))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("needs_review=")
	builder.WriteString(fmt.Sprintf("%v", _m.NeedsReview))
	builder.WriteString(", ")
	builder.WriteString("computed_at=")
	builder.WriteString(_m.ComputedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Calibrations is a parsable slice of Calibration.
type Calibrations []*Calibration
