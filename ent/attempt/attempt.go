// Code generated by ent, DO NOT EDIT.

package attempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the attempt type in the database.
	Label = "attempt"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPlayerID holds the string denoting the player_id field in the database.
	FieldPlayerID = "player_id"
	// FieldChallengeID holds the string denoting the challenge_id field in the database.
	FieldChallengeID = "challenge_id"
	// FieldSkillCategory holds the string denoting the skill_category field in the database.
	FieldSkillCategory = "skill_category"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldSubmission holds the string denoting the submission field in the database.
	FieldSubmission = "submission"
	// FieldValidatorScore holds the string denoting the validator_score field in the database.
	FieldValidatorScore = "validator_score"
	// FieldAiScore holds the string denoting the ai_score field in the database.
	FieldAiScore = "ai_score"
	// FieldAiAvailable holds the string denoting the ai_available field in the database.
	FieldAiAvailable = "ai_available"
	// FieldFinalScore holds the string denoting the final_score field in the database.
	FieldFinalScore = "final_score"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldRiskLevel holds the string denoting the risk_level field in the database.
	FieldRiskLevel = "risk_level"
	// FieldHintsUsed holds the string denoting the hints_used field in the database.
	FieldHintsUsed = "hints_used"
	// FieldFeedbackHTML holds the string denoting the feedback_html field in the database.
	FieldFeedbackHTML = "feedback_html"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the attempt in the database.
	Table = "attempts"
)

// Columns holds all SQL columns for attempt fields.
var Columns = []string{
	FieldID,
	FieldPlayerID,
	FieldChallengeID,
	FieldSkillCategory,
	FieldDifficulty,
	FieldSubmission,
	FieldValidatorScore,
	FieldAiScore,
	FieldAiAvailable,
	FieldFinalScore,
	FieldConfidence,
	FieldRiskLevel,
	FieldHintsUsed,
	FieldFeedbackHTML,
	FieldCreatedAt,
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
	// DefaultAiScore holds the default value on creation for the "ai_score" field.
	DefaultAiScore int
	// DefaultAiAvailable holds the default value on creation for the "ai_available" field.
	DefaultAiAvailable bool
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence int
	// DefaultRiskLevel holds the default value on creation for the "risk_level" field.
	DefaultRiskLevel string
	// DefaultHintsUsed holds the default value on creation for the "hints_used" field.
	DefaultHintsUsed int
	// DefaultFeedbackHTML holds the default value on creation for the "feedback_html" field.
	DefaultFeedbackHTML string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Attempt queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPlayerID orders the results by the player_id field.
func ByPlayerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlayerID, opts...).ToFunc()
}

// ByChallengeID orders the results by the challenge_id field.
func ByChallengeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChallengeID, opts...).ToFunc()
}

// BySkillCategory orders the results by the skill_category field.
func BySkillCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkillCategory, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// BySubmission orders the results by the submission field.
func BySubmission(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmission, opts...).ToFunc()
}

// ByValidatorScore orders the results by the validator_score field.
func ByValidatorScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidatorScore, opts...).ToFunc()
}

// ByAiScore orders the results by the ai_score field.
func ByAiScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAiScore, opts...).ToFunc()
}

// ByAiAvailable orders the results by the ai_available field.
func ByAiAvailable(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAiAvailable, opts...).ToFunc()
}

// ByFinalScore orders the results by the final_score field.
func ByFinalScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalScore, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByRiskLevel orders the results by the risk_level field.
func ByRiskLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskLevel, opts...).ToFunc()
}

// ByHintsUsed orders the results by the hints_used field.
func ByHintsUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHintsUsed, opts...).ToFunc()
}

// ByFeedbackHTML orders the results by the feedback_html field.
func ByFeedbackHTML(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeedbackHTML, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
