package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DifficultyProfile is one (player, skill, difficulty) performance bucket.
type DifficultyProfile struct {
	ent.Schema
}

func (DifficultyProfile) Fields() []ent.Field {
	return []ent.Field{
		field.Int("player_id"),
		field.String("skill_category"),
		field.String("difficulty"),
		field.Int("attempts").Default(0),
		field.Float("avg_score").Default(0),
		field.Int("best_score").Default(0),
		field.Int("worst_score").Default(100),
		field.Int("high_scores").Default(0),
		field.Int("excellent_scores").
			Default(0).
			Comment("Count of scores at or above 90"),
		field.Int("streak").Default(0),
		field.Float("confidence").
			Default(0).
			Comment("Attempts-based trust in the aggregates, [0,1]"),
		field.JSON("recent", []int{}).
			Optional().
			Comment("Rolling window of recent final scores, newest last"),
	}
}

func (DifficultyProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("player_id", "skill_category", "difficulty").Unique(),
	}
}
