// Code generated by ent, DO NOT EDIT.

package difficultyprofile

import (
	"entgo.io/ent/dialect/sql"
	"github.com/ssanyal/recruitdojo/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldLTE(FieldID, id))
}

// PlayerID applies equality check predicate on the "player_id" field. It's identical to PlayerIDEQ.
func PlayerID(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldEQ(FieldPlayerID, v))
}

// SkillCategory applies equality check predicate on the "skill_category" field. It's identical to SkillCategoryEQ.
func SkillCategory(v string) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldEQ(FieldSkillCategory, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldEQ(FieldDifficulty, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldEQ(FieldAttempts, v))
}

// AvgScore applies equality check predicate on the "avg_score" field. It's identical to AvgScoreEQ.
func AvgScore(v float64) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldEQ(FieldAvgScore, v))
}

// BestScore applies equality check predicate on the "best_score" field. It's identical to BestScoreEQ.
func BestScore(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldEQ(FieldBestScore, v))
}

// WorstScore applies equality check predicate on the "worst_score" field. It's identical to WorstScoreEQ.
func WorstScore(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldEQ(FieldWorstScore, v))
}

// HighScores applies equality check predicate on the "high_scores" field. It's identical to HighScoresEQ.
func HighScores(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldEQ(FieldHighScores, v))
}

// ExcellentScores applies equality check predicate on the "excellent_scores" field. It's identical to ExcellentScoresEQ.
func ExcellentScores(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldEQ(FieldExcellentScores, v))
}

// Streak applies equality check predicate on the "streak" field. It's identical to StreakEQ.
func Streak(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldEQ(FieldStreak, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldEQ(FieldConfidence, v))
}

// PlayerIDEQ applies the EQ predicate on the "player_id" field.
func PlayerIDEQ(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldEQ(FieldPlayerID, v))
}

// PlayerIDNEQ applies the NEQ predicate on the "player_id" field.
func PlayerIDNEQ(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldNEQ(FieldPlayerID, v))
}

// PlayerIDIn applies the In predicate on the "player_id" field.
func PlayerIDIn(vs ...int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldIn(FieldPlayerID, vs...))
}

// PlayerIDNotIn applies the NotIn predicate on the "player_id" field.
func PlayerIDNotIn(vs ...int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldNotIn(FieldPlayerID, vs...))
}

// PlayerIDGT applies the GT predicate on the "player_id" field.
func PlayerIDGT(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldGT(FieldPlayerID, v))
}

// PlayerIDGTE applies the GTE predicate on the "player_id" field.
func PlayerIDGTE(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldGTE(FieldPlayerID, v))
}

// PlayerIDLT applies the LT predicate on the "player_id" field.
func PlayerIDLT(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldLT(FieldPlayerID, v))
}

// PlayerIDLTE applies the LTE predicate on the "player_id" field.
func PlayerIDLTE(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldLTE(FieldPlayerID, v))
}

// SkillCategoryEQ applies the EQ predicate on the "skill_category" field.
func SkillCategoryEQ(v string) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldEQ(FieldSkillCategory, v))
}

// SkillCategoryNEQ applies the NEQ predicate on the "skill_category" field.
func SkillCategoryNEQ(v string) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldNEQ(FieldSkillCategory, v))
}

// SkillCategoryIn applies the In predicate on the "skill_category" field.
func SkillCategoryIn(vs ...string) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldIn(FieldSkillCategory, vs...))
}

// SkillCategoryNotIn applies the NotIn predicate on the "skill_category" field.
func SkillCategoryNotIn(vs ...string) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldNotIn(FieldSkillCategory, vs...))
}

// SkillCategoryGT applies the GT predicate on the "skill_category" field.
func SkillCategoryGT(v string) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldGT(FieldSkillCategory, v))
}

// SkillCategoryGTE applies the GTE predicate on the "skill_category" field.
func SkillCategoryGTE(v string) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldGTE(FieldSkillCategory, v))
}

// SkillCategoryLT applies the LT predicate on the "skill_category" field.
func SkillCategoryLT(v string) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldLT(FieldSkillCategory, v))
}

// SkillCategoryLTE applies the LTE predicate on the "skill_category" field.
func SkillCategoryLTE(v string) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldLTE(FieldSkillCategory, v))
}

// SkillCategoryContains applies the Contains predicate on the "skill_category" field.
func SkillCategoryContains(v string) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldContains(FieldSkillCategory, v))
}

// SkillCategoryHasPrefix applies the HasPrefix predicate on the "skill_category" field.
func SkillCategoryHasPrefix(v string) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldHasPrefix(FieldSkillCategory, v))
}

// SkillCategoryHasSuffix applies the HasSuffix predicate on the "skill_category" field.
func SkillCategoryHasSuffix(v string) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldHasSuffix(FieldSkillCategory, v))
}

// SkillCategoryEqualFold applies the EqualFold predicate on the "skill_category" field.
func SkillCategoryEqualFold(v string) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldEqualFold(FieldSkillCategory, v))
}

// SkillCategoryContainsFold applies the ContainsFold predicate on the "skill_category" field.
func SkillCategoryContainsFold(v string) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldContainsFold(FieldSkillCategory, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldContainsFold(FieldDifficulty, v))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldLTE(FieldAttempts, v))
}

// AvgScoreEQ applies the EQ predicate on the "avg_score" field.
func AvgScoreEQ(v float64) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldEQ(FieldAvgScore, v))
}

// AvgScoreNEQ applies the NEQ predicate on the "avg_score" field.
func AvgScoreNEQ(v float64) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldNEQ(FieldAvgScore, v))
}

// AvgScoreIn applies the In predicate on the "avg_score" field.
func AvgScoreIn(vs ...float64) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldIn(FieldAvgScore, vs...))
}

// AvgScoreNotIn applies the NotIn predicate on the "avg_score" field.
func AvgScoreNotIn(vs ...float64) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldNotIn(FieldAvgScore, vs...))
}

// AvgScoreGT applies the GT predicate on the "avg_score" field.
func AvgScoreGT(v float64) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldGT(FieldAvgScore, v))
}

// AvgScoreGTE applies the GTE predicate on the "avg_score" field.
func AvgScoreGTE(v float64) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldGTE(FieldAvgScore, v))
}

// AvgScoreLT applies the LT predicate on the "avg_score" field.
func AvgScoreLT(v float64) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldLT(FieldAvgScore, v))
}

// AvgScoreLTE applies the LTE predicate on the "avg_score" field.
func AvgScoreLTE(v float64) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldLTE(FieldAvgScore, v))
}

// BestScoreEQ applies the EQ predicate on the "best_score" field.
func BestScoreEQ(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldEQ(FieldBestScore, v))
}

// BestScoreNEQ applies the NEQ predicate on the "best_score" field.
func BestScoreNEQ(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldNEQ(FieldBestScore, v))
}

// BestScoreIn applies the In predicate on the "best_score" field.
func BestScoreIn(vs ...int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldIn(FieldBestScore, vs...))
}

// BestScoreNotIn applies the NotIn predicate on the "best_score" field.
func BestScoreNotIn(vs ...int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldNotIn(FieldBestScore, vs...))
}

// BestScoreGT applies the GT predicate on the "best_score" field.
func BestScoreGT(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldGT(FieldBestScore, v))
}

// BestScoreGTE applies the GTE predicate on the "best_score" field.
func BestScoreGTE(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldGTE(FieldBestScore, v))
}

// BestScoreLT applies the LT predicate on the "best_score" field.
func BestScoreLT(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldLT(FieldBestScore, v))
}

// BestScoreLTE applies the LTE predicate on the "best_score" field.
func BestScoreLTE(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldLTE(FieldBestScore, v))
}

// WorstScoreEQ applies the EQ predicate on the "worst_score" field.
func WorstScoreEQ(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldEQ(FieldWorstScore, v))
}

// WorstScoreNEQ applies the NEQ predicate on the "worst_score" field.
func WorstScoreNEQ(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldNEQ(FieldWorstScore, v))
}

// WorstScoreIn applies the In predicate on the "worst_score" field.
func WorstScoreIn(vs ...int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldIn(FieldWorstScore, vs...))
}

// WorstScoreNotIn applies the NotIn predicate on the "worst_score" field.
func WorstScoreNotIn(vs ...int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldNotIn(FieldWorstScore, vs...))
}

// WorstScoreGT applies the GT predicate on the "worst_score" field.
func WorstScoreGT(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldGT(FieldWorstScore, v))
}

// WorstScoreGTE applies the GTE predicate on the "worst_score" field.
func WorstScoreGTE(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldGTE(FieldWorstScore, v))
}

// WorstScoreLT applies the LT predicate on the "worst_score" field.
func WorstScoreLT(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldLT(FieldWorstScore, v))
}

// WorstScoreLTE applies the LTE predicate on the "worst_score" field.
func WorstScoreLTE(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldLTE(FieldWorstScore, v))
}

// HighScoresEQ applies the EQ predicate on the "high_scores" field.
func HighScoresEQ(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldEQ(FieldHighScores, v))
}

// HighScoresNEQ applies the NEQ predicate on the "high_scores" field.
func HighScoresNEQ(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldNEQ(FieldHighScores, v))
}

// HighScoresIn applies the In predicate on the "high_scores" field.
func HighScoresIn(vs ...int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldIn(FieldHighScores, vs...))
}

// HighScoresNotIn applies the NotIn predicate on the "high_scores" field.
func HighScoresNotIn(vs ...int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldNotIn(FieldHighScores, vs...))
}

// HighScoresGT applies the GT predicate on the "high_scores" field.
func HighScoresGT(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldGT(FieldHighScores, v))
}

// HighScoresGTE applies the GTE predicate on the "high_scores" field.
func HighScoresGTE(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldGTE(FieldHighScores, v))
}

// HighScoresLT applies the LT predicate on the "high_scores" field.
func HighScoresLT(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldLT(FieldHighScores, v))
}

// HighScoresLTE applies the LTE predicate on the "high_scores" field.
func HighScoresLTE(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldLTE(FieldHighScores, v))
}

// ExcellentScoresEQ applies the EQ predicate on the "excellent_scores" field.
func ExcellentScoresEQ(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldEQ(FieldExcellentScores, v))
}

// ExcellentScoresNEQ applies the NEQ predicate on the "excellent_scores" field.
func ExcellentScoresNEQ(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldNEQ(FieldExcellentScores, v))
}

// ExcellentScoresIn applies the In predicate on the "excellent_scores" field.
func ExcellentScoresIn(vs ...int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldIn(FieldExcellentScores, vs...))
}

// ExcellentScoresNotIn applies the NotIn predicate on the "excellent_scores" field.
func ExcellentScoresNotIn(vs ...int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldNotIn(FieldExcellentScores, vs...))
}

// ExcellentScoresGT applies the GT predicate on the "excellent_scores" field.
func ExcellentScoresGT(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldGT(FieldExcellentScores, v))
}

// ExcellentScoresGTE applies the GTE predicate on the "excellent_scores" field.
func ExcellentScoresGTE(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldGTE(FieldExcellentScores, v))
}

// ExcellentScoresLT applies the LT predicate on the "excellent_scores" field.
func ExcellentScoresLT(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldLT(FieldExcellentScores, v))
}

// ExcellentScoresLTE applies the LTE predicate on the "excellent_scores" field.
func ExcellentScoresLTE(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldLTE(FieldExcellentScores, v))
}

// StreakEQ applies the EQ predicate on the "streak" field.
func StreakEQ(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldEQ(FieldStreak, v))
}

// StreakNEQ applies the NEQ predicate on the "streak" field.
func StreakNEQ(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldNEQ(FieldStreak, v))
}

// StreakIn applies the In predicate on the "streak" field.
func StreakIn(vs ...int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldIn(FieldStreak, vs...))
}

// StreakNotIn applies the NotIn predicate on the "streak" field.
func StreakNotIn(vs ...int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldNotIn(FieldStreak, vs...))
}

// StreakGT applies the GT predicate on the "streak" field.
func StreakGT(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldGT(FieldStreak, v))
}

// StreakGTE applies the GTE predicate on the "streak" field.
func StreakGTE(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldGTE(FieldStreak, v))
}

// StreakLT applies the LT predicate on the "streak" field.
func StreakLT(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldLT(FieldStreak, v))
}

// StreakLTE applies the LTE predicate on the "streak" field.
func StreakLTE(v int) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldLTE(FieldStreak, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldLTE(FieldConfidence, v))
}

// RecentIsNil applies the IsNil predicate on the "recent" field.
func RecentIsNil() predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldIsNull(FieldRecent))
}

// RecentNotNil applies the NotNil predicate on the "recent" field.
func RecentNotNil() predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.FieldNotNull(FieldRecent))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DifficultyProfile) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DifficultyProfile) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DifficultyProfile) predicate.DifficultyProfile {
	return predicate.DifficultyProfile(sql.NotPredicates(p))
}
