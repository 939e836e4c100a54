// Code generated by ent, DO NOT EDIT.

package skillmemory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ssanyal/recruitdojo/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldLTE(FieldID, id))
}

// PlayerID applies equality check predicate on the "player_id" field. It's identical to PlayerIDEQ.
func PlayerID(v int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldEQ(FieldPlayerID, v))
}

// SkillID applies equality check predicate on the "skill_id" field. It's identical to SkillIDEQ.
func SkillID(v string) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldEQ(FieldSkillID, v))
}

// Ef applies equality check predicate on the "ef" field. It's identical to EfEQ.
func Ef(v float64) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldEQ(FieldEf, v))
}

// IntervalDays applies equality check predicate on the "interval_days" field. It's identical to IntervalDaysEQ.
func IntervalDays(v int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldEQ(FieldIntervalDays, v))
}

// Repetitions applies equality check predicate on the "repetitions" field. It's identical to RepetitionsEQ.
func Repetitions(v int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldEQ(FieldRepetitions, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldEQ(FieldAttempts, v))
}

// LastScore applies equality check predicate on the "last_score" field. It's identical to LastScoreEQ.
func LastScore(v int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldEQ(FieldLastScore, v))
}

// LastQuality applies equality check predicate on the "last_quality" field. It's identical to LastQualityEQ.
func LastQuality(v int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldEQ(FieldLastQuality, v))
}

// AvgScore applies equality check predicate on the "avg_score" field. It's identical to AvgScoreEQ.
func AvgScore(v float64) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldEQ(FieldAvgScore, v))
}

// LastReview applies equality check predicate on the "last_review" field. It's identical to LastReviewEQ.
func LastReview(v time.Time) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldEQ(FieldLastReview, v))
}

// NextReview applies equality check predicate on the "next_review" field. It's identical to NextReviewEQ.
func NextReview(v time.Time) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldEQ(FieldNextReview, v))
}

// PlayerIDEQ applies the EQ predicate on the "player_id" field.
func PlayerIDEQ(v int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldEQ(FieldPlayerID, v))
}

// PlayerIDNEQ applies the NEQ predicate on the "player_id" field.
func PlayerIDNEQ(v int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldNEQ(FieldPlayerID, v))
}

// PlayerIDIn applies the In predicate on the "player_id" field.
func PlayerIDIn(vs ...int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldIn(FieldPlayerID, vs...))
}

// PlayerIDNotIn applies the NotIn predicate on the "player_id" field.
func PlayerIDNotIn(vs ...int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldNotIn(FieldPlayerID, vs...))
}

// PlayerIDGT applies the GT predicate on the "player_id" field.
func PlayerIDGT(v int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldGT(FieldPlayerID, v))
}

// PlayerIDGTE applies the GTE predicate on the "player_id" field.
func PlayerIDGTE(v int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldGTE(FieldPlayerID, v))
}

// PlayerIDLT applies the LT predicate on the "player_id" field.
func PlayerIDLT(v int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldLT(FieldPlayerID, v))
}

// PlayerIDLTE applies the LTE predicate on the "player_id" field.
func PlayerIDLTE(v int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldLTE(FieldPlayerID, v))
}

// SkillIDEQ applies the EQ predicate on the "skill_id" field.
func SkillIDEQ(v string) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldEQ(FieldSkillID, v))
}

// SkillIDNEQ applies the NEQ predicate on the "skill_id" field.
func SkillIDNEQ(v string) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldNEQ(FieldSkillID, v))
}

// SkillIDIn applies the In predicate on the "skill_id" field.
func SkillIDIn(vs ...string) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldIn(FieldSkillID, vs...))
}

// SkillIDNotIn applies the NotIn predicate on the "skill_id" field.
func SkillIDNotIn(vs ...string) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldNotIn(FieldSkillID, vs...))
}

// SkillIDGT applies the GT predicate on the "skill_id" field.
func SkillIDGT(v string) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldGT(FieldSkillID, v))
}

// SkillIDGTE applies the GTE predicate on the "skill_id" field.
func SkillIDGTE(v string) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldGTE(FieldSkillID, v))
}

// SkillIDLT applies the LT predicate on the "skill_id" field.
func SkillIDLT(v string) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldLT(FieldSkillID, v))
}

// SkillIDLTE applies the LTE predicate on the "skill_id" field.
func SkillIDLTE(v string) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldLTE(FieldSkillID, v))
}

// SkillIDContains applies the Contains predicate on the "skill_id" field.
func SkillIDContains(v string) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldContains(FieldSkillID, v))
}

// SkillIDHasPrefix applies the HasPrefix predicate on the "skill_id" field.
func SkillIDHasPrefix(v string) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldHasPrefix(FieldSkillID, v))
}

// SkillIDHasSuffix applies the HasSuffix predicate on the "skill_id" field.
func SkillIDHasSuffix(v string) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldHasSuffix(FieldSkillID, v))
}

// SkillIDEqualFold applies the EqualFold predicate on the "skill_id" field.
func SkillIDEqualFold(v string) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldEqualFold(FieldSkillID, v))
}

// SkillIDContainsFold applies the ContainsFold predicate on the "skill_id" field.
func SkillIDContainsFold(v string) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldContainsFold(FieldSkillID, v))
}

// EfEQ applies the EQ predicate on the "ef" field.
func EfEQ(v float64) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldEQ(FieldEf, v))
}

// EfNEQ applies the NEQ predicate on the "ef" field.
func EfNEQ(v float64) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldNEQ(FieldEf, v))
}

// EfIn applies the In predicate on the "ef" field.
func EfIn(vs ...float64) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldIn(FieldEf, vs...))
}

// EfNotIn applies the NotIn predicate on the "ef" field.
func EfNotIn(vs ...float64) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldNotIn(FieldEf, vs...))
}

// EfGT applies the GT predicate on the "ef" field.
func EfGT(v float64) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldGT(FieldEf, v))
}

// EfGTE applies the GTE predicate on the "ef" field.
func EfGTE(v float64) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldGTE(FieldEf, v))
}

// EfLT applies the LT predicate on the "ef" field.
func EfLT(v float64) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldLT(FieldEf, v))
}

// EfLTE applies the LTE predicate on the "ef" field.
func EfLTE(v float64) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldLTE(FieldEf, v))
}

// IntervalDaysEQ applies the EQ predicate on the "interval_days" field.
func IntervalDaysEQ(v int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldEQ(FieldIntervalDays, v))
}

// IntervalDaysNEQ applies the NEQ predicate on the "interval_days" field.
func IntervalDaysNEQ(v int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldNEQ(FieldIntervalDays, v))
}

// IntervalDaysIn applies the In predicate on the "interval_days" field.
func IntervalDaysIn(vs ...int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldIn(FieldIntervalDays, vs...))
}

// IntervalDaysNotIn applies the NotIn predicate on the "interval_days" field.
func IntervalDaysNotIn(vs ...int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldNotIn(FieldIntervalDays, vs...))
}

// IntervalDaysGT applies the GT predicate on the "interval_days" field.
func IntervalDaysGT(v int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldGT(FieldIntervalDays, v))
}

// IntervalDaysGTE applies the GTE predicate on the "interval_days" field.
func IntervalDaysGTE(v int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldGTE(FieldIntervalDays, v))
}

// IntervalDaysLT applies the LT predicate on the "interval_days" field.
func IntervalDaysLT(v int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldLT(FieldIntervalDays, v))
}

// IntervalDaysLTE applies the LTE predicate on the "interval_days" field.
func IntervalDaysLTE(v int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldLTE(FieldIntervalDays, v))
}

// RepetitionsEQ applies the EQ predicate on the "repetitions" field.
func RepetitionsEQ(v int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldEQ(FieldRepetitions, v))
}

// RepetitionsNEQ applies the NEQ predicate on the "repetitions" field.
func RepetitionsNEQ(v int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldNEQ(FieldRepetitions, v))
}

// RepetitionsIn applies the In predicate on the "repetitions" field.
func RepetitionsIn(vs ...int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldIn(FieldRepetitions, vs...))
}

// RepetitionsNotIn applies the NotIn predicate on the "repetitions" field.
func RepetitionsNotIn(vs ...int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldNotIn(FieldRepetitions, vs...))
}

// RepetitionsGT applies the GT predicate on the "repetitions" field.
func RepetitionsGT(v int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldGT(FieldRepetitions, v))
}

// RepetitionsGTE applies the GTE predicate on the "repetitions" field.
func RepetitionsGTE(v int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldGTE(FieldRepetitions, v))
}

// RepetitionsLT applies the LT predicate on the "repetitions" field.
func RepetitionsLT(v int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldLT(FieldRepetitions, v))
}

// RepetitionsLTE applies the LTE predicate on the "repetitions" field.
func RepetitionsLTE(v int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldLTE(FieldRepetitions, v))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldLTE(FieldAttempts, v))
}

// LastScoreEQ applies the EQ predicate on the "last_score" field.
func LastScoreEQ(v int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldEQ(FieldLastScore, v))
}

// LastScoreNEQ applies the NEQ predicate on the "last_score" field.
func LastScoreNEQ(v int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldNEQ(FieldLastScore, v))
}

// LastScoreIn applies the In predicate on the "last_score" field.
func LastScoreIn(vs ...int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldIn(FieldLastScore, vs...))
}

// LastScoreNotIn applies the NotIn predicate on the "last_score" field.
func LastScoreNotIn(vs ...int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldNotIn(FieldLastScore, vs...))
}

// LastScoreGT applies the GT predicate on the "last_score" field.
func LastScoreGT(v int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldGT(FieldLastScore, v))
}

// LastScoreGTE applies the GTE predicate on the "last_score" field.
func LastScoreGTE(v int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldGTE(FieldLastScore, v))
}

// LastScoreLT applies the LT predicate on the "last_score" field.
func LastScoreLT(v int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldLT(FieldLastScore, v))
}

// LastScoreLTE applies the LTE predicate on the "last_score" field.
func LastScoreLTE(v int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldLTE(FieldLastScore, v))
}

// LastQualityEQ applies the EQ predicate on the "last_quality" field.
func LastQualityEQ(v int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldEQ(FieldLastQuality, v))
}

// LastQualityNEQ applies the NEQ predicate on the "last_quality" field.
func LastQualityNEQ(v int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldNEQ(FieldLastQuality, v))
}

// LastQualityIn applies the In predicate on the "last_quality" field.
func LastQualityIn(vs ...int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldIn(FieldLastQuality, vs...))
}

// LastQualityNotIn applies the NotIn predicate on the "last_quality" field.
func LastQualityNotIn(vs ...int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldNotIn(FieldLastQuality, vs...))
}

// LastQualityGT applies the GT predicate on the "last_quality" field.
func LastQualityGT(v int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldGT(FieldLastQuality, v))
}

// LastQualityGTE applies the GTE predicate on the "last_quality" field.
func LastQualityGTE(v int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldGTE(FieldLastQuality, v))
}

// LastQualityLT applies the LT predicate on the "last_quality" field.
func LastQualityLT(v int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldLT(FieldLastQuality, v))
}

// LastQualityLTE applies the LTE predicate on the "last_quality" field.
func LastQualityLTE(v int) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldLTE(FieldLastQuality, v))
}

// AvgScoreEQ applies the EQ predicate on the "avg_score" field.
func AvgScoreEQ(v float64) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldEQ(FieldAvgScore, v))
}

// AvgScoreNEQ applies the NEQ predicate on the "avg_score" field.
func AvgScoreNEQ(v float64) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldNEQ(FieldAvgScore, v))
}

// AvgScoreIn applies the In predicate on the "avg_score" field.
func AvgScoreIn(vs ...float64) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldIn(FieldAvgScore, vs...))
}

// AvgScoreNotIn applies the NotIn predicate on the "avg_score" field.
func AvgScoreNotIn(vs ...float64) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldNotIn(FieldAvgScore, vs...))
}

// AvgScoreGT applies the GT predicate on the "avg_score" field.
func AvgScoreGT(v float64) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldGT(FieldAvgScore, v))
}

// AvgScoreGTE applies the GTE predicate on the "avg_score" field.
func AvgScoreGTE(v float64) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldGTE(FieldAvgScore, v))
}

// AvgScoreLT applies the LT predicate on the "avg_score" field.
func AvgScoreLT(v float64) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldLT(FieldAvgScore, v))
}

// AvgScoreLTE applies the LTE predicate on the "avg_score" field.
func AvgScoreLTE(v float64) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldLTE(FieldAvgScore, v))
}

// ScoresIsNil applies the IsNil predicate on the "scores" field.
func ScoresIsNil() predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldIsNull(FieldScores))
}

// ScoresNotNil applies the NotNil predicate on the "scores" field.
func ScoresNotNil() predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldNotNull(FieldScores))
}

// LastReviewEQ applies the EQ predicate on the "last_review" field.
func LastReviewEQ(v time.Time) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldEQ(FieldLastReview, v))
}

// LastReviewNEQ applies the NEQ predicate on the "last_review" field.
func LastReviewNEQ(v time.Time) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldNEQ(FieldLastReview, v))
}

// LastReviewIn applies the In predicate on the "last_review" field.
func LastReviewIn(vs ...time.Time) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldIn(FieldLastReview, vs...))
}

// LastReviewNotIn applies the NotIn predicate on the "last_review" field.
func LastReviewNotIn(vs ...time.Time) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldNotIn(FieldLastReview, vs...))
}

// LastReviewGT applies the GT predicate on the "last_review" field.
func LastReviewGT(v time.Time) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldGT(FieldLastReview, v))
}

// LastReviewGTE applies the GTE predicate on the "last_review" field.
func LastReviewGTE(v time.Time) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldGTE(FieldLastReview, v))
}

// LastReviewLT applies the LT predicate on the "last_review" field.
func LastReviewLT(v time.Time) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldLT(FieldLastReview, v))
}

// LastReviewLTE applies the LTE predicate on the "last_review" field.
func LastReviewLTE(v time.Time) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldLTE(FieldLastReview, v))
}

// LastReviewIsNil applies the IsNil predicate on the "last_review" field.
func LastReviewIsNil() predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldIsNull(FieldLastReview))
}

// LastReviewNotNil applies the NotNil predicate on the "last_review" field.
func LastReviewNotNil() predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldNotNull(FieldLastReview))
}

// NextReviewEQ applies the EQ predicate on the "next_review" field.
func NextReviewEQ(v time.Time) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldEQ(FieldNextReview, v))
}

// NextReviewNEQ applies the NEQ predicate on the "next_review" field.
func NextReviewNEQ(v time.Time) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldNEQ(FieldNextReview, v))
}

// NextReviewIn applies the In predicate on the "next_review" field.
func NextReviewIn(vs ...time.Time) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldIn(FieldNextReview, vs...))
}

// NextReviewNotIn applies the NotIn predicate on the "next_review" field.
func NextReviewNotIn(vs ...time.Time) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldNotIn(FieldNextReview, vs...))
}

// NextReviewGT applies the GT predicate on the "next_review" field.
func NextReviewGT(v time.Time) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldGT(FieldNextReview, v))
}

// NextReviewGTE applies the GTE predicate on the "next_review" field.
func NextReviewGTE(v time.Time) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldGTE(FieldNextReview, v))
}

// NextReviewLT applies the LT predicate on the "next_review" field.
func NextReviewLT(v time.Time) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldLT(FieldNextReview, v))
}

// NextReviewLTE applies the LTE predicate on the "next_review" field.
func NextReviewLTE(v time.Time) predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldLTE(FieldNextReview, v))
}

// NextReviewIsNil applies the IsNil predicate on the "next_review" field.
func NextReviewIsNil() predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldIsNull(FieldNextReview))
}

// NextReviewNotNil applies the NotNil predicate on the "next_review" field.
func NextReviewNotNil() predicate.SkillMemory {
	return predicate.SkillMemory(sql.FieldNotNull(FieldNextReview))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SkillMemory) predicate.SkillMemory {
	return predicate.SkillMemory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SkillMemory) predicate.SkillMemory {
	return predicate.SkillMemory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SkillMemory) predicate.SkillMemory {
	return predicate.SkillMemory(sql.NotPredicates(p))
}
