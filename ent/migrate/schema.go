// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptsColumns holds the columns for the "attempts" table.
	AttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "player_id", Type: field.TypeInt},
		{Name: "challenge_id", Type: field.TypeString},
		{Name: "skill_category", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "submission", Type: field.TypeString, Size: 2147483647},
		{Name: "validator_score", Type: field.TypeInt},
		{Name: "ai_score", Type: field.TypeInt, Default: 0},
		{Name: "ai_available", Type: field.TypeBool, Default: false},
		{Name: "final_score", Type: field.TypeInt},
		{Name: "confidence", Type: field.TypeInt, Default: 0},
		{Name: "risk_level", Type: field.TypeString, Default: "none"},
		{Name: "hints_used", Type: field.TypeInt, Default: 0},
		{Name: "feedback_html", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AttemptsTable holds the schema information for the "attempts" table.
	AttemptsTable = &schema.Table{
		Name:       "attempts",
		Columns:    AttemptsColumns,
		PrimaryKey: []*schema.Column{AttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attempt_player_id_challenge_id",
				Unique:  true,
				Columns: []*schema.Column{AttemptsColumns[1], AttemptsColumns[2]},
			},
			{
				Name:    "attempt_challenge_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[2]},
			},
			{
				Name:    "attempt_skill_category",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[3]},
			},
		},
	}
	// CalibrationsColumns holds the columns for the "calibrations" table.
	CalibrationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "challenge_id", Type: field.TypeString, Unique: true},
		{Name: "offset", Type: field.TypeFloat64, Default: 0},
		{Name: "sample_count", Type: field.TypeInt, Default: 0},
		{Name: "mean", Type: field.TypeFloat64, Default: 0},
		{Name: "median", Type: field.TypeFloat64, Default: 0},
		{Name: "stddev", Type: field.TypeFloat64, Default: 0},
		{Name: "p25", Type: field.TypeFloat64, Default: 0},
		{Name: "p75", Type: field.TypeFloat64, Default: 0},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "computed_at", Type: field.TypeTime},
	}
	// CalibrationsTable holds the schema information for the "calibrations" table.
	CalibrationsTable = &schema.Table{
		Name:       "calibrations",
		Columns:    CalibrationsColumns,
		PrimaryKey: []*schema.Column{CalibrationsColumns[0]},
	}
	// DifficultyProfilesColumns holds the columns for the "difficulty_profiles" table.
	DifficultyProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "player_id", Type: field.TypeInt},
		{Name: "skill_category", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "avg_score", Type: field.TypeFloat64, Default: 0},
		{Name: "best_score", Type: field.TypeInt, Default: 0},
		{Name: "worst_score", Type: field.TypeInt, Default: 100},
		{Name: "high_scores", Type: field.TypeInt, Default: 0},
		{Name: "excellent_scores", Type: field.TypeInt, Default: 0},
		{Name: "streak", Type: field.TypeInt, Default: 0},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "recent", Type: field.TypeJSON, Nullable: true},
	}
	// DifficultyProfilesTable holds the schema information for the "difficulty_profiles" table.
	DifficultyProfilesTable = &schema.Table{
		Name:       "difficulty_profiles",
		Columns:    DifficultyProfilesColumns,
		PrimaryKey: []*schema.Column{DifficultyProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "difficultyprofile_player_id_skill_category_difficulty",
				Unique:  true,
				Columns: []*schema.Column{DifficultyProfilesColumns[1], DifficultyProfilesColumns[2], DifficultyProfilesColumns[3]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "cost_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[10]},
			},
		},
	}
	// PlayersColumns holds the columns for the "players" table.
	PlayersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "xp", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PlayersTable holds the schema information for the "players" table.
	PlayersTable = &schema.Table{
		Name:       "players",
		Columns:    PlayersColumns,
		PrimaryKey: []*schema.Column{PlayersColumns[0]},
	}
	// ReferenceAnswersColumns holds the columns for the "reference_answers" table.
	ReferenceAnswersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "uuid", Type: field.TypeUUID, Unique: true},
		{Name: "challenge_id", Type: field.TypeString},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "embedding", Type: field.TypeJSON},
		{Name: "score", Type: field.TypeInt},
		{Name: "source", Type: field.TypeString, Default: "auto"},
		{Name: "verified", Type: field.TypeBool, Default: false},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ReferenceAnswersTable holds the schema information for the "reference_answers" table.
	ReferenceAnswersTable = &schema.Table{
		Name:       "reference_answers",
		Columns:    ReferenceAnswersColumns,
		PrimaryKey: []*schema.Column{ReferenceAnswersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "referenceanswer_challenge_id_active",
				Unique:  false,
				Columns: []*schema.Column{ReferenceAnswersColumns[2], ReferenceAnswersColumns[8]},
			},
		},
	}
	// SkillMemoriesColumns holds the columns for the "skill_memories" table.
	SkillMemoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "player_id", Type: field.TypeInt},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "ef", Type: field.TypeFloat64, Default: 2.5},
		{Name: "interval_days", Type: field.TypeInt, Default: 0},
		{Name: "repetitions", Type: field.TypeInt, Default: 0},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "last_score", Type: field.TypeInt, Default: 0},
		{Name: "last_quality", Type: field.TypeInt, Default: 0},
		{Name: "avg_score", Type: field.TypeFloat64, Default: 0},
		{Name: "scores", Type: field.TypeJSON, Nullable: true},
		{Name: "last_review", Type: field.TypeTime, Nullable: true},
		{Name: "next_review", Type: field.TypeTime, Nullable: true},
	}
	// SkillMemoriesTable holds the schema information for the "skill_memories" table.
	SkillMemoriesTable = &schema.Table{
		Name:       "skill_memories",
		Columns:    SkillMemoriesColumns,
		PrimaryKey: []*schema.Column{SkillMemoriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "skillmemory_player_id_skill_id",
				Unique:  true,
				Columns: []*schema.Column{SkillMemoriesColumns[1], SkillMemoriesColumns[2]},
			},
			{
				Name:    "skillmemory_next_review",
				Unique:  false,
				Columns: []*schema.Column{SkillMemoriesColumns[12]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptsTable,
		CalibrationsTable,
		DifficultyProfilesTable,
		LlmRequestEventsTable,
		PlayersTable,
		ReferenceAnswersTable,
		SkillMemoriesTable,
	}
)

func init() {
}
