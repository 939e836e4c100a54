// Code generated by ent, DO NOT EDIT.

package attempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ssanyal/recruitdojo/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldID, id))
}

// PlayerID applies equality check predicate on the "player_id" field. It's identical to PlayerIDEQ.
func PlayerID(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldPlayerID, v))
}

// ChallengeID applies equality check predicate on the "challenge_id" field. It's identical to ChallengeIDEQ.
func ChallengeID(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldChallengeID, v))
}

// SkillCategory applies equality check predicate on the "skill_category" field. It's identical to SkillCategoryEQ.
func SkillCategory(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldSkillCategory, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldDifficulty, v))
}

// Submission applies equality check predicate on the "submission" field. It's identical to SubmissionEQ.
func Submission(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldSubmission, v))
}

// ValidatorScore applies equality check predicate on the "validator_score" field. It's identical to ValidatorScoreEQ.
func ValidatorScore(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldValidatorScore, v))
}

// AiScore applies equality check predicate on the "ai_score" field. It's identical to AiScoreEQ.
func AiScore(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldAiScore, v))
}

// AiAvailable applies equality check predicate on the "ai_available" field. It's identical to AiAvailableEQ.
func AiAvailable(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldAiAvailable, v))
}

// FinalScore applies equality check predicate on the "final_score" field. It's identical to FinalScoreEQ.
func FinalScore(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldFinalScore, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldConfidence, v))
}

// RiskLevel applies equality check predicate on the "risk_level" field. It's identical to RiskLevelEQ.
func RiskLevel(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldRiskLevel, v))
}

// HintsUsed applies equality check predicate on the "hints_used" field. It's identical to HintsUsedEQ.
func HintsUsed(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldHintsUsed, v))
}

// FeedbackHTML applies equality check predicate on the "feedback_html" field. It's identical to FeedbackHTMLEQ.
func FeedbackHTML(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldFeedbackHTML, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldCreatedAt, v))
}

// PlayerIDEQ applies the EQ predicate on the "player_id" field.
func PlayerIDEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldPlayerID, v))
}

// PlayerIDNEQ applies the NEQ predicate on the "player_id" field.
func PlayerIDNEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldPlayerID, v))
}

// PlayerIDIn applies the In predicate on the "player_id" field.
func PlayerIDIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldPlayerID, vs...))
}

// PlayerIDNotIn applies the NotIn predicate on the "player_id" field.
func PlayerIDNotIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldPlayerID, vs...))
}

// PlayerIDGT applies the GT predicate on the "player_id" field.
func PlayerIDGT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldPlayerID, v))
}

// PlayerIDGTE applies the GTE predicate on the "player_id" field.
func PlayerIDGTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldPlayerID, v))
}

// PlayerIDLT applies the LT predicate on the "player_id" field.
func PlayerIDLT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldPlayerID, v))
}

// PlayerIDLTE applies the LTE predicate on the "player_id" field.
func PlayerIDLTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldPlayerID, v))
}

// ChallengeIDEQ applies the EQ predicate on the "challenge_id" field.
func ChallengeIDEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldChallengeID, v))
}

// ChallengeIDNEQ applies the NEQ predicate on the "challenge_id" field.
func ChallengeIDNEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldChallengeID, v))
}

// ChallengeIDIn applies the In predicate on the "challenge_id" field.
func ChallengeIDIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldChallengeID, vs...))
}

// ChallengeIDNotIn applies the NotIn predicate on the "challenge_id" field.
func ChallengeIDNotIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldChallengeID, vs...))
}

// ChallengeIDGT applies the GT predicate on the "challenge_id" field.
func ChallengeIDGT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldChallengeID, v))
}

// ChallengeIDGTE applies the GTE predicate on the "challenge_id" field.
func ChallengeIDGTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldChallengeID, v))
}

// ChallengeIDLT applies the LT predicate on the "challenge_id" field.
func ChallengeIDLT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldChallengeID, v))
}

// ChallengeIDLTE applies the LTE predicate on the "challenge_id" field.
func ChallengeIDLTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldChallengeID, v))
}

// ChallengeIDContains applies the Contains predicate on the "challenge_id" field.
func ChallengeIDContains(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContains(FieldChallengeID, v))
}

// ChallengeIDHasPrefix applies the HasPrefix predicate on the "challenge_id" field.
func ChallengeIDHasPrefix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasPrefix(FieldChallengeID, v))
}

// ChallengeIDHasSuffix applies the HasSuffix predicate on the "challenge_id" field.
func ChallengeIDHasSuffix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasSuffix(FieldChallengeID, v))
}

// ChallengeIDEqualFold applies the EqualFold predicate on the "challenge_id" field.
func ChallengeIDEqualFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEqualFold(FieldChallengeID, v))
}

// ChallengeIDContainsFold applies the ContainsFold predicate on the "challenge_id" field.
func ChallengeIDContainsFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContainsFold(FieldChallengeID, v))
}

// SkillCategoryEQ applies the EQ predicate on the "skill_category" field.
func SkillCategoryEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldSkillCategory, v))
}

// SkillCategoryNEQ applies the NEQ predicate on the "skill_category" field.
func SkillCategoryNEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldSkillCategory, v))
}

// SkillCategoryIn applies the In predicate on the "skill_category" field.
func SkillCategoryIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldSkillCategory, vs...))
}

// SkillCategoryNotIn applies the NotIn predicate on the "skill_category" field.
func SkillCategoryNotIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldSkillCategory, vs...))
}

// SkillCategoryGT applies the GT predicate on the "skill_category" field.
func SkillCategoryGT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldSkillCategory, v))
}

// SkillCategoryGTE applies the GTE predicate on the "skill_category" field.
func SkillCategoryGTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldSkillCategory, v))
}

// SkillCategoryLT applies the LT predicate on the "skill_category" field.
func SkillCategoryLT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldSkillCategory, v))
}

// SkillCategoryLTE applies the LTE predicate on the "skill_category" field.
func SkillCategoryLTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldSkillCategory, v))
}

// SkillCategoryContains applies the Contains predicate on the "skill_category" field.
func SkillCategoryContains(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContains(FieldSkillCategory, v))
}

// SkillCategoryHasPrefix applies the HasPrefix predicate on the "skill_category" field.
func SkillCategoryHasPrefix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasPrefix(FieldSkillCategory, v))
}

// SkillCategoryHasSuffix applies the HasSuffix predicate on the "skill_category" field.
func SkillCategoryHasSuffix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasSuffix(FieldSkillCategory, v))
}

// SkillCategoryEqualFold applies the EqualFold predicate on the "skill_category" field.
func SkillCategoryEqualFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEqualFold(FieldSkillCategory, v))
}

// SkillCategoryContainsFold applies the ContainsFold predicate on the "skill_category" field.
func SkillCategoryContainsFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContainsFold(FieldSkillCategory, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContainsFold(FieldDifficulty, v))
}

// SubmissionEQ applies the EQ predicate on the "submission" field.
func SubmissionEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldSubmission, v))
}

// SubmissionNEQ applies the NEQ predicate on the "submission" field.
func SubmissionNEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldSubmission, v))
}

// SubmissionIn applies the In predicate on the "submission" field.
func SubmissionIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldSubmission, vs...))
}

// SubmissionNotIn applies the NotIn predicate on the "submission" field.
func SubmissionNotIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldSubmission, vs...))
}

// SubmissionGT applies the GT predicate on the "submission" field.
func SubmissionGT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldSubmission, v))
}

// SubmissionGTE applies the GTE predicate on the "submission" field.
func SubmissionGTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldSubmission, v))
}

// SubmissionLT applies the LT predicate on the "submission" field.
func SubmissionLT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldSubmission, v))
}

// SubmissionLTE applies the LTE predicate on the "submission" field.
func SubmissionLTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldSubmission, v))
}

// SubmissionContains applies the Contains predicate on the "submission" field.
func SubmissionContains(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContains(FieldSubmission, v))
}

// SubmissionHasPrefix applies the HasPrefix predicate on the "submission" field.
func SubmissionHasPrefix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasPrefix(FieldSubmission, v))
}

// SubmissionHasSuffix applies the HasSuffix predicate on the "submission" field.
func SubmissionHasSuffix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasSuffix(FieldSubmission, v))
}

// SubmissionEqualFold applies the EqualFold predicate on the "submission" field.
func SubmissionEqualFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEqualFold(FieldSubmission, v))
}

// SubmissionContainsFold applies the ContainsFold predicate on the "submission" field.
func SubmissionContainsFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContainsFold(FieldSubmission, v))
}

// ValidatorScoreEQ applies the EQ predicate on the "validator_score" field.
func ValidatorScoreEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldValidatorScore, v))
}

// ValidatorScoreNEQ applies the NEQ predicate on the "validator_score" field.
func ValidatorScoreNEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldValidatorScore, v))
}

// ValidatorScoreIn applies the In predicate on the "validator_score" field.
func ValidatorScoreIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldValidatorScore, vs...))
}

// ValidatorScoreNotIn applies the NotIn predicate on the "validator_score" field.
func ValidatorScoreNotIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldValidatorScore, vs...))
}

// ValidatorScoreGT applies the GT predicate on the "validator_score" field.
func ValidatorScoreGT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldValidatorScore, v))
}

// ValidatorScoreGTE applies the GTE predicate on the "validator_score" field.
func ValidatorScoreGTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldValidatorScore, v))
}

// ValidatorScoreLT applies the LT predicate on the "validator_score" field.
func ValidatorScoreLT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldValidatorScore, v))
}

// ValidatorScoreLTE applies the LTE predicate on the "validator_score" field.
func ValidatorScoreLTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldValidatorScore, v))
}

// AiScoreEQ applies the EQ predicate on the "ai_score" field.
func AiScoreEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldAiScore, v))
}

// AiScoreNEQ applies the NEQ predicate on the "ai_score" field.
func AiScoreNEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldAiScore, v))
}

// AiScoreIn applies the In predicate on the "ai_score" field.
func AiScoreIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldAiScore, vs...))
}

// AiScoreNotIn applies the NotIn predicate on the "ai_score" field.
func AiScoreNotIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldAiScore, vs...))
}

// AiScoreGT applies the GT predicate on the "ai_score" field.
func AiScoreGT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldAiScore, v))
}

// AiScoreGTE applies the GTE predicate on the "ai_score" field.
func AiScoreGTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldAiScore, v))
}

// AiScoreLT applies the LT predicate on the "ai_score" field.
func AiScoreLT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldAiScore, v))
}

// AiScoreLTE applies the LTE predicate on the "ai_score" field.
func AiScoreLTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldAiScore, v))
}

// AiAvailableEQ applies the EQ predicate on the "ai_available" field.
func AiAvailableEQ(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldAiAvailable, v))
}

// AiAvailableNEQ applies the NEQ predicate on the "ai_available" field.
func AiAvailableNEQ(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldAiAvailable, v))
}

// FinalScoreEQ applies the EQ predicate on the "final_score" field.
func FinalScoreEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldFinalScore, v))
}

// FinalScoreNEQ applies the NEQ predicate on the "final_score" field.
func FinalScoreNEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldFinalScore, v))
}

// FinalScoreIn applies the In predicate on the "final_score" field.
func FinalScoreIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldFinalScore, vs...))
}

// FinalScoreNotIn applies the NotIn predicate on the "final_score" field.
func FinalScoreNotIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldFinalScore, vs...))
}

// FinalScoreGT applies the GT predicate on the "final_score" field.
func FinalScoreGT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldFinalScore, v))
}

// FinalScoreGTE applies the GTE predicate on the "final_score" field.
func FinalScoreGTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldFinalScore, v))
}

// FinalScoreLT applies the LT predicate on the "final_score" field.
func FinalScoreLT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldFinalScore, v))
}

// FinalScoreLTE applies the LTE predicate on the "final_score" field.
func FinalScoreLTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldFinalScore, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldConfidence, v))
}

// RiskLevelEQ applies the EQ predicate on the "risk_level" field.
func RiskLevelEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldRiskLevel, v))
}

// RiskLevelNEQ applies the NEQ predicate on the "risk_level" field.
func RiskLevelNEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldRiskLevel, v))
}

// RiskLevelIn applies the In predicate on the "risk_level" field.
func RiskLevelIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldRiskLevel, vs...))
}

// RiskLevelNotIn applies the NotIn predicate on the "risk_level" field.
func RiskLevelNotIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldRiskLevel, vs...))
}

// RiskLevelGT applies the GT predicate on the "risk_level" field.
func RiskLevelGT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldRiskLevel, v))
}

// RiskLevelGTE applies the GTE predicate on the "risk_level" field.
func RiskLevelGTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldRiskLevel, v))
}

// RiskLevelLT applies the LT predicate on the "risk_level" field.
func RiskLevelLT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldRiskLevel, v))
}

// RiskLevelLTE applies the LTE predicate on the "risk_level" field.
func RiskLevelLTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldRiskLevel, v))
}

// RiskLevelContains applies the Contains predicate on the "risk_level" field.
func RiskLevelContains(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContains(FieldRiskLevel, v))
}

// RiskLevelHasPrefix applies the HasPrefix predicate on the "risk_level" field.
func RiskLevelHasPrefix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasPrefix(FieldRiskLevel, v))
}

// RiskLevelHasSuffix applies the HasSuffix predicate on the "risk_level" field.
func RiskLevelHasSuffix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasSuffix(FieldRiskLevel, v))
}

// RiskLevelEqualFold applies the EqualFold predicate on the "risk_level" field.
func RiskLevelEqualFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEqualFold(FieldRiskLevel, v))
}

// RiskLevelContainsFold applies the ContainsFold predicate on the "risk_level" field.
func RiskLevelContainsFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContainsFold(FieldRiskLevel, v))
}

// HintsUsedEQ applies the EQ predicate on the "hints_used" field.
func HintsUsedEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldHintsUsed, v))
}

// HintsUsedNEQ applies the NEQ predicate on the "hints_used" field.
func HintsUsedNEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldHintsUsed, v))
}

// HintsUsedIn applies the In predicate on the "hints_used" field.
func HintsUsedIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldHintsUsed, vs...))
}

// HintsUsedNotIn applies the NotIn predicate on the "hints_used" field.
func HintsUsedNotIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldHintsUsed, vs...))
}

// HintsUsedGT applies the GT predicate on the "hints_used" field.
func HintsUsedGT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldHintsUsed, v))
}

// HintsUsedGTE applies the GTE predicate on the "hints_used" field.
func HintsUsedGTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldHintsUsed, v))
}

// HintsUsedLT applies the LT predicate on the "hints_used" field.
func HintsUsedLT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldHintsUsed, v))
}

// HintsUsedLTE applies the LTE predicate on the "hints_used" field.
func HintsUsedLTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldHintsUsed, v))
}

// FeedbackHTMLEQ applies the EQ predicate on the "feedback_html" field.
func FeedbackHTMLEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldFeedbackHTML, v))
}

// FeedbackHTMLNEQ applies the NEQ predicate on the "feedback_html" field.
func FeedbackHTMLNEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldFeedbackHTML, v))
}

// FeedbackHTMLIn applies the In predicate on the "feedback_html" field.
func FeedbackHTMLIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldFeedbackHTML, vs...))
}

// FeedbackHTMLNotIn applies the NotIn predicate on the "feedback_html" field.
func FeedbackHTMLNotIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldFeedbackHTML, vs...))
}

// FeedbackHTMLGT applies the GT predicate on the "feedback_html" field.
func FeedbackHTMLGT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldFeedbackHTML, v))
}

// FeedbackHTMLGTE applies the GTE predicate on the "feedback_html" field.
func FeedbackHTMLGTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldFeedbackHTML, v))
}

// FeedbackHTMLLT applies the LT predicate on the "feedback_html" field.
func FeedbackHTMLLT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldFeedbackHTML, v))
}

// FeedbackHTMLLTE applies the LTE predicate on the "feedback_html" field.
func FeedbackHTMLLTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldFeedbackHTML, v))
}

// FeedbackHTMLContains applies the Contains predicate on the "feedback_html" field.
func FeedbackHTMLContains(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContains(FieldFeedbackHTML, v))
}

// FeedbackHTMLHasPrefix applies the HasPrefix predicate on the "feedback_html" field.
func FeedbackHTMLHasPrefix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasPrefix(FieldFeedbackHTML, v))
}

// FeedbackHTMLHasSuffix applies the HasSuffix predicate on the "feedback_html" field.
func FeedbackHTMLHasSuffix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasSuffix(FieldFeedbackHTML, v))
}

// FeedbackHTMLEqualFold applies the EqualFold predicate on the "feedback_html" field.
func FeedbackHTMLEqualFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEqualFold(FieldFeedbackHTML, v))
}

// FeedbackHTMLContainsFold applies the ContainsFold predicate on the "feedback_html" field.
func FeedbackHTMLContainsFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContainsFold(FieldFeedbackHTML, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Attempt) predicate.Attempt {
	return predicate.Attempt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Attempt) predicate.Attempt {
	return predicate.Attempt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Attempt) predicate.Attempt {
	return predicate.Attempt(sql.NotPredicates(p))
}
