// Code generated by ent, DO NOT EDIT.

package difficultyprofile

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the difficultyprofile type in the database.
	Label = "difficulty_profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPlayerID holds the string denoting the player_id field in the database.
	FieldPlayerID = "player_id"
	// FieldSkillCategory holds the string denoting the skill_category field in the database.
	FieldSkillCategory = "skill_category"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldAttempts holds the string denoting the attempts field in the database.
	FieldAttempts = "attempts"
	// FieldAvgScore holds the string denoting the avg_score field in the database.
	FieldAvgScore = "avg_score"
	// FieldBestScore holds the string denoting the best_score field in the database.
	FieldBestScore = "best_score"
	// FieldWorstScore holds the string denoting the worst_score field in the database.
	FieldWorstScore = "worst_score"
	// FieldHighScores holds the string denoting the high_scores field in the database.
	FieldHighScores = "high_scores"
	// FieldExcellentScores holds the string denoting the excellent_scores field in the database.
	FieldExcellentScores = "excellent_scores"
	// FieldStreak holds the string denoting the streak field in the database.
	FieldStreak = "streak"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldRecent holds the string denoting the recent field in the database.
	FieldRecent = "recent"
	// Table holds the table name of the difficultyprofile in the database.
	Table = "difficulty_profiles"
)

// Columns holds all SQL columns for difficultyprofile fields.
var Columns = []string{
	FieldID,
	FieldPlayerID,
	FieldSkillCategory,
	FieldDifficulty,
	FieldAttempts,
	FieldAvgScore,
	FieldBestScore,
	FieldWorstScore,
	FieldHighScores,
	FieldExcellentScores,
	FieldStreak,
	FieldConfidence,
	FieldRecent,
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
	// DefaultAttempts holds the default value on creation for the "attempts" field.
	DefaultAttempts int
	// DefaultAvgScore holds the default value on creation for the "avg_score" field.
	DefaultAvgScore float64
	// DefaultBestScore holds the default value on creation for the "best_score" field.
	DefaultBestScore int
	// DefaultWorstScore holds the default value on creation for the "worst_score" field.
	DefaultWorstScore int
	// DefaultHighScores holds the default value on creation for the "high_scores" field.
	DefaultHighScores int
	// DefaultExcellentScores holds the default value on creation for the "excellent_scores" field.
	DefaultExcellentScores int
	// DefaultStreak holds the default value on creation for the "streak" field.
	DefaultStreak int
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
)

// OrderOption defines the ordering options for the DifficultyProfile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPlayerID orders the results by the player_id field.
func ByPlayerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlayerID, opts...).ToFunc()
}

// BySkillCategory orders the results by the skill_category field.
func BySkillCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkillCategory, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByAttempts orders the results by the attempts field.
func ByAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempts, opts...).ToFunc()
}

// ByAvgScore orders the results by the avg_score field.
func ByAvgScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgScore, opts...).ToFunc()
}

// ByBestScore orders the results by the best_score field.
func ByBestScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBestScore, opts...).ToFunc()
}

// ByWorstScore orders the results by the worst_score field.
func ByWorstScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorstScore, opts...).ToFunc()
}

// ByHighScores orders the results by the high_scores field.
func ByHighScores(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHighScores, opts...).ToFunc()
}

// ByExcellentScores orders the results by the excellent_scores field.
func ByExcellentScores(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExcellentScores, opts...).ToFunc()
}

// ByStreak orders the results by the streak field.
func ByStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreak, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}
