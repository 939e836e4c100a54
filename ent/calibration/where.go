// Code generated by ent, DO NOT EDIT.

package calibration

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ssanyal/recruitdojo/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Calibration {
	return predicate.Calibration(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Calibration {
	return predicate.Calibration(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Calibration {
	return predicate.Calibration(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Calibration {
	return predicate.Calibration(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Calibration {
	return predicate.Calibration(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Calibration {
	return predicate.Calibration(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Calibration {
	return predicate.Calibration(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Calibration {
	return predicate.Calibration(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Calibration {
	return predicate.Calibration(sql.FieldLTE(FieldID, id))
}

// ChallengeID applies equality check predicate on the "challenge_id" field. It's identical to ChallengeIDEQ.
func ChallengeID(v string) predicate.Calibration {
	return predicate.Calibration(sql.FieldEQ(FieldChallengeID, v))
}

// Offset applies equality check predicate on the "offset" field. It's identical to OffsetEQ.
func Offset(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldEQ(FieldOffset, v))
}

// SampleCount applies equality check predicate on the "sample_count" field. It's identical to SampleCountEQ.
func SampleCount(v int) predicate.Calibration {
	return predicate.Calibration(sql.FieldEQ(FieldSampleCount, v))
}

// Mean applies equality check predicate on the "mean" field. It's identical to MeanEQ.
func Mean(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldEQ(FieldMean, v))
}

// Median applies equality check predicate on the "median" field. It's identical to MedianEQ.
func Median(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldEQ(FieldMedian, v))
}

// Stddev applies equality check predicate on the "stddev" field. It's identical to StddevEQ.
func Stddev(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldEQ(FieldStddev, v))
}

// P25 applies equality check predicate on the "p25" field. It's identical to P25EQ.
func P25(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldEQ(FieldP25, v))
}

// P75 applies equality check predicate on the "p75" field. It's identical to P75EQ.
func P75(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldEQ(FieldP75, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldEQ(FieldConfidence, v))
}

// NeedsReview applies equality check predicate on the "needs_review" field. It's identical to NeedsReviewEQ.
func NeedsReview(v bool) predicate.Calibration {
	return predicate.Calibration(sql.FieldEQ(FieldNeedsReview, v))
}

// ComputedAt applies equality check predicate on the "computed_at" field. It's identical to ComputedAtEQ.
func ComputedAt(v time.Time) predicate.Calibration {
	return predicate.Calibration(sql.FieldEQ(FieldComputedAt, v))
}

// ChallengeIDEQ applies the EQ predicate on the "challenge_id" field.
func ChallengeIDEQ(v string) predicate.Calibration {
	return predicate.Calibration(sql.FieldEQ(FieldChallengeID, v))
}

// ChallengeIDNEQ applies the NEQ predicate on the "challenge_id" field.
func ChallengeIDNEQ(v string) predicate.Calibration {
	return predicate.Calibration(sql.FieldNEQ(FieldChallengeID, v))
}

// ChallengeIDIn applies the In predicate on the "challenge_id" field.
func ChallengeIDIn(vs ...string) predicate.Calibration {
	return predicate.Calibration(sql.FieldIn(FieldChallengeID, vs...))
}

// ChallengeIDNotIn applies the NotIn predicate on the "challenge_id" field.
func ChallengeIDNotIn(vs ...string) predicate.Calibration {
	return predicate.Calibration(sql.FieldNotIn(FieldChallengeID, vs...))
}

// ChallengeIDGT applies the GT predicate on the "challenge_id" field.
func ChallengeIDGT(v string) predicate.Calibration {
	return predicate.Calibration(sql.FieldGT(FieldChallengeID, v))
}

// ChallengeIDGTE applies the GTE predicate on the "challenge_id" field.
func ChallengeIDGTE(v string) predicate.Calibration {
	return predicate.Calibration(sql.FieldGTE(FieldChallengeID, v))
}

// ChallengeIDLT applies the LT predicate on the "challenge_id" field.
func ChallengeIDLT(v string) predicate.Calibration {
	return predicate.Calibration(sql.FieldLT(FieldChallengeID, v))
}

// ChallengeIDLTE applies the LTE predicate on the "challenge_id" field.
func ChallengeIDLTE(v string) predicate.Calibration {
	return predicate.Calibration(sql.FieldLTE(FieldChallengeID, v))
}

// ChallengeIDContains applies the Contains predicate on the "challenge_id" field.
func ChallengeIDContains(v string) predicate.Calibration {
	return predicate.Calibration(sql.FieldContains(FieldChallengeID, v))
}

// ChallengeIDHasPrefix applies the HasPrefix predicate on the "challenge_id" field.
func ChallengeIDHasPrefix(v string) predicate.Calibration {
	return predicate.Calibration(sql.FieldHasPrefix(FieldChallengeID, v))
}

// ChallengeIDHasSuffix applies the HasSuffix predicate on the "challenge_id" field.
func ChallengeIDHasSuffix(v string) predicate.Calibration {
	return predicate.Calibration(sql.FieldHasSuffix(FieldChallengeID, v))
}

// ChallengeIDEqualFold applies the EqualFold predicate on the "challenge_id" field.
func ChallengeIDEqualFold(v string) predicate.Calibration {
	return predicate.Calibration(sql.FieldEqualFold(FieldChallengeID, v))
}

// ChallengeIDContainsFold applies the ContainsFold predicate on the "challenge_id" field.
func ChallengeIDContainsFold(v string) predicate.Calibration {
	return predicate.Calibration(sql.FieldContainsFold(FieldChallengeID, v))
}

// OffsetEQ applies the EQ predicate on the "offset" field.
func OffsetEQ(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldEQ(FieldOffset, v))
}

// OffsetNEQ applies the NEQ predicate on the "offset" field.
func OffsetNEQ(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldNEQ(FieldOffset, v))
}

// OffsetIn applies the In predicate on the "offset" field.
func OffsetIn(vs ...float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldIn(FieldOffset, vs...))
}

// OffsetNotIn applies the NotIn predicate on the "offset" field.
func OffsetNotIn(vs ...float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldNotIn(FieldOffset, vs...))
}

// OffsetGT applies the GT predicate on the "offset" field.
func OffsetGT(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldGT(FieldOffset, v))
}

// OffsetGTE applies the GTE predicate on the "offset" field.
func OffsetGTE(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldGTE(FieldOffset, v))
}

// OffsetLT applies the LT predicate on the "offset" field.
func OffsetLT(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldLT(FieldOffset, v))
}

// OffsetLTE applies the LTE predicate on the "offset" field.
func OffsetLTE(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldLTE(FieldOffset, v))
}

// SampleCountEQ applies the EQ predicate on the "sample_count" field.
func SampleCountEQ(v int) predicate.Calibration {
	return predicate.Calibration(sql.FieldEQ(FieldSampleCount, v))
}

// SampleCountNEQ applies the NEQ predicate on the "sample_count" field.
func SampleCountNEQ(v int) predicate.Calibration {
	return predicate.Calibration(sql.FieldNEQ(FieldSampleCount, v))
}

// SampleCountIn applies the In predicate on the "sample_count" field.
func SampleCountIn(vs ...int) predicate.Calibration {
	return predicate.Calibration(sql.FieldIn(FieldSampleCount, vs...))
}

// SampleCountNotIn applies the NotIn predicate on the "sample_count" field.
func SampleCountNotIn(vs ...int) predicate.Calibration {
	return predicate.Calibration(sql.FieldNotIn(FieldSampleCount, vs...))
}

// SampleCountGT applies the GT predicate on the "sample_count" field.
func SampleCountGT(v int) predicate.Calibration {
	return predicate.Calibration(sql.FieldGT(FieldSampleCount, v))
}

// SampleCountGTE applies the GTE predicate on the "sample_count" field.
func SampleCountGTE(v int) predicate.Calibration {
	return predicate.Calibration(sql.FieldGTE(FieldSampleCount, v))
}

// SampleCountLT applies the LT predicate on the "sample_count" field.
func SampleCountLT(v int) predicate.Calibration {
	return predicate.Calibration(sql.FieldLT(FieldSampleCount, v))
}

// SampleCountLTE applies the LTE predicate on the "sample_count" field.
func SampleCountLTE(v int) predicate.Calibration {
	return predicate.Calibration(sql.FieldLTE(FieldSampleCount, v))
}

// MeanEQ applies the EQ predicate on the "mean" field.
func MeanEQ(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldEQ(FieldMean, v))
}

// MeanNEQ applies the NEQ predicate on the "mean" field.
func MeanNEQ(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldNEQ(FieldMean, v))
}

// MeanIn applies the In predicate on the "mean" field.
func MeanIn(vs ...float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldIn(FieldMean, vs...))
}

// MeanNotIn applies the NotIn predicate on the "mean" field.
func MeanNotIn(vs ...float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldNotIn(FieldMean, vs...))
}

// MeanGT applies the GT predicate on the "mean" field.
func MeanGT(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldGT(FieldMean, v))
}

// MeanGTE applies the GTE predicate on the "mean" field.
func MeanGTE(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldGTE(FieldMean, v))
}

// MeanLT applies the LT predicate on the "mean" field.
func MeanLT(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldLT(FieldMean, v))
}

// MeanLTE applies the LTE predicate on the "mean" field.
func MeanLTE(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldLTE(FieldMean, v))
}

// MedianEQ applies the EQ predicate on the "median" field.
func MedianEQ(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldEQ(FieldMedian, v))
}

// MedianNEQ applies the NEQ predicate on the "median" field.
func MedianNEQ(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldNEQ(FieldMedian, v))
}

// MedianIn applies the In predicate on the "median" field.
func MedianIn(vs ...float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldIn(FieldMedian, vs...))
}

// MedianNotIn applies the NotIn predicate on the "median" field.
func MedianNotIn(vs ...float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldNotIn(FieldMedian, vs...))
}

// MedianGT applies the GT predicate on the "median" field.
func MedianGT(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldGT(FieldMedian, v))
}

// MedianGTE applies the GTE predicate on the "median" field.
func MedianGTE(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldGTE(FieldMedian, v))
}

// MedianLT applies the LT predicate on the "median" field.
func MedianLT(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldLT(FieldMedian, v))
}

// MedianLTE applies the LTE predicate on the "median" field.
func MedianLTE(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldLTE(FieldMedian, v))
}

// StddevEQ applies the EQ predicate on the "stddev" field.
func StddevEQ(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldEQ(FieldStddev, v))
}

// StddevNEQ applies the NEQ predicate on the "stddev" field.
func StddevNEQ(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldNEQ(FieldStddev, v))
}

// StddevIn applies the In predicate on the "stddev" field.
func StddevIn(vs ...float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldIn(FieldStddev, vs...))
}

// StddevNotIn applies the NotIn predicate on the "stddev" field.
func StddevNotIn(vs ...float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldNotIn(FieldStddev, vs...))
}

// StddevGT applies the GT predicate on the "stddev" field.
func StddevGT(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldGT(FieldStddev, v))
}

// StddevGTE applies the GTE predicate on the "stddev" field.
func StddevGTE(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldGTE(FieldStddev, v))
}

// StddevLT applies the LT predicate on the "stddev" field.
func StddevLT(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldLT(FieldStddev, v))
}

// StddevLTE applies the LTE predicate on the "stddev" field.
func StddevLTE(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldLTE(FieldStddev, v))
}

// P25EQ applies the EQ predicate on the "p25" field.
func P25EQ(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldEQ(FieldP25, v))
}

// P25NEQ applies the NEQ predicate on the "p25" field.
func P25NEQ(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldNEQ(FieldP25, v))
}

// P25In applies the In predicate on the "p25" field.
func P25In(vs ...float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldIn(FieldP25, vs...))
}

// P25NotIn applies the NotIn predicate on the "p25" field.
func P25NotIn(vs ...float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldNotIn(FieldP25, vs...))
}

// P25GT applies the GT predicate on the "p25" field.
func P25GT(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldGT(FieldP25, v))
}

// P25GTE applies the GTE predicate on the "p25" field.
func P25GTE(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldGTE(FieldP25, v))
}

// P25LT applies the LT predicate on the "p25" field.
func P25LT(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldLT(FieldP25, v))
}

// P25LTE applies the LTE predicate on the "p25" field.
func P25LTE(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldLTE(FieldP25, v))
}

// P75EQ applies the EQ predicate on the "p75" field.
func P75EQ(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldEQ(FieldP75, v))
}

// P75NEQ applies the NEQ predicate on the "p75" field.
func P75NEQ(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldNEQ(FieldP75, v))
}

// P75In applies the In predicate on the "p75" field.
func P75In(vs ...float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldIn(FieldP75, vs...))
}

// P75NotIn applies the NotIn predicate on the "p75" field.
func P75NotIn(vs ...float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldNotIn(FieldP75, vs...))
}

// P75GT applies the GT predicate on the "p75" field.
func P75GT(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldGT(FieldP75, v))
}

// P75GTE applies the GTE predicate on the "p75" field.
func P75GTE(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldGTE(FieldP75, v))
}

// P75LT applies the LT predicate on the "p75" field.
func P75LT(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldLT(FieldP75, v))
}

// P75LTE applies the LTE predicate on the "p75" field.
func P75LTE(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldLTE(FieldP75, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.Calibration {
	return predicate.Calibration(sql.FieldLTE(FieldConfidence, v))
}

// NeedsReviewEQ applies the EQ predicate on the "needs_review" field.
func NeedsReviewEQ(v bool) predicate.Calibration {
	return predicate.Calibration(sql.FieldEQ(FieldNeedsReview, v))
}

// NeedsReviewNEQ applies the NEQ predicate on the "needs_review" field.
func NeedsReviewNEQ(v bool) predicate.Calibration {
	return predicate.Calibration(sql.FieldNEQ(FieldNeedsReview, v))
}

// ComputedAtEQ applies the EQ predicate on the "computed_at" field.
func ComputedAtEQ(v time.Time) predicate.Calibration {
	return predicate.Calibration(sql.FieldEQ(FieldComputedAt, v))
}

// ComputedAtNEQ applies the NEQ predicate on the "computed_at" field.
func ComputedAtNEQ(v time.Time) predicate.Calibration {
	return predicate.Calibration(sql.FieldNEQ(FieldComputedAt, v))
}

// ComputedAtIn applies the In predicate on the "computed_at" field.
func ComputedAtIn(vs ...time.Time) predicate.Calibration {
	return predicate.Calibration(sql.FieldIn(FieldComputedAt, vs...))
}

// ComputedAtNotIn applies the NotIn predicate on the "computed_at" field.
func ComputedAtNotIn(vs ...time.Time) predicate.Calibration {
	return predicate.Calibration(sql.FieldNotIn(FieldComputedAt, vs...))
}

// ComputedAtGT applies the GT predicate on the "computed_at" field.
func ComputedAtGT(v time.Time) predicate.Calibration {
	return predicate.Calibration(sql.FieldGT(FieldComputedAt, v))
}

// ComputedAtGTE applies the GTE predicate on the "computed_at" field.
func ComputedAtGTE(v time.Time) predicate.Calibration {
	return predicate.Calibration(sql.FieldGTE(FieldComputedAt, v))
}

// ComputedAtLT applies the LT predicate on the "computed_at" field.
func ComputedAtLT(v time.Time) predicate.Calibration {
	return predicate.Calibration(sql.FieldLT(FieldComputedAt, v))
}

// ComputedAtLTE applies the LTE predicate on the "computed_at" field.
func ComputedAtLTE(v time.Time) predicate.Calibration {
	return predicate.Calibration(sql.FieldLTE(FieldComputedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Calibration) predicate.Calibration {
	return predicate.Calibration(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Calibration) predicate.Calibration {
	return predicate.Calibration(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Calibration) predicate.Calibration {
	return predicate.Calibration(sql.NotPredicates(p))
}
