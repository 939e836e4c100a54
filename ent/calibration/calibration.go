// Code generated by ent, DO NOT EDIT.

package calibration

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the calibration type in the database.
	Label = "calibration"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldChallengeID holds the string denoting the challenge_id field in the database.
	FieldChallengeID = "challenge_id"
	// FieldOffset holds the string denoting the offset field in the database.
	FieldOffset = "offset"
	// FieldSampleCount holds the string denoting the sample_count field in the database.
	FieldSampleCount = "sample_count"
	// FieldMean holds the string denoting the mean field in the database.
	FieldMean = "mean"
	// FieldMedian holds the string denoting the median field in the database.
	FieldMedian = "median"
	// FieldStddev holds the string denoting the stddev field in the database.
	FieldStddev = "stddev"
	// FieldP25 holds the string denoting the p25 field in the database.
	FieldP25 = "p25"
	// FieldP75 holds the string denoting the p75 field in the database.
	FieldP75 = "p75"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldNeedsReview holds the string denoting the needs_review field in the database.
	FieldNeedsReview = "needs_review"
	// FieldComputedAt holds the string denoting the computed_at field in the database.
	FieldComputedAt = "computed_at"
	// Table holds the table name of the calibration in the database.
	Table = "calibrations"
)

// Columns holds all SQL columns for calibration fields.
var Columns = []string{
	FieldID,
	FieldChallengeID,
	FieldOffset,
	FieldSampleCount,
	FieldMean,
	FieldMedian,
	FieldStddev,
	FieldP25,
	FieldP75,
	FieldConfidence,
	FieldNeedsReview,
	FieldComputedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultOffset holds the default value on creation for the "offset" field.
	DefaultOffset float64
	// DefaultSampleCount holds the default value on creation for the "sample_count" field.
	DefaultSampleCount int
	// DefaultMean holds the default value on creation for the "mean" field.
	DefaultMean float64
	// DefaultMedian holds the default value on creation for the "median" field.
	DefaultMedian float64
	// DefaultStddev holds the default value on creation for the "stddev" field.
	DefaultStddev float64
	// DefaultP25 holds the default value on creation for the "p25" field.
	DefaultP25 float64
	// DefaultP75 holds the default value on creation for the "p75" field.
	DefaultP75 float64
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// DefaultNeedsReview holds the default value on creation for the "needs_review" field.
	DefaultNeedsReview bool
	// DefaultComputedAt holds the default value on creation for the "computed_at" field.
	DefaultComputedAt func() time.Time
)

// OrderOption defines the ordering options for the Calibration queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByChallengeID orders the results by the challenge_id field.
func ByChallengeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChallengeID, opts...).ToFunc()
}

// ByOffset orders the results by the offset field.
func ByOffset(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOffset, opts...).ToFunc()
}

// BySampleCount orders the results by the sample_count field.
func BySampleCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSampleCount, opts...).ToFunc()
}

// ByMean orders the results by the mean field.
func ByMean(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMean, opts...).ToFunc()
}

// ByMedian orders the results by the median field.
func ByMedian(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMedian, opts...).ToFunc()
}

// ByStddev orders the results by the stddev field.
func ByStddev(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStddev, opts...).ToFunc()
}

// ByP25 orders the results by the p25 field.
func ByP25(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldP25, opts...).ToFunc()
}

// ByP75 orders the results by the p75 field.
func ByP75(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldP75, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByNeedsReview orders the results by the needs_review field.
func ByNeedsReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeedsReview, opts...).ToFunc()
}

// ByComputedAt orders the results by the computed_at field.
func ByComputedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComputedAt, opts...).ToFunc()
}
