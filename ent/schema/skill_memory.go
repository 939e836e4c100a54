package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SkillMemory is the spaced-repetition state for one (player, skill).
type SkillMemory struct {
	ent.Schema
}

func (SkillMemory) Fields() []ent.Field {
	return []ent.Field{
		field.Int("player_id"),
		field.String("skill_id"),
		field.Float("ef").
			Default(2.5).
			Comment("SM-2 easiness factor, clamped to [1.3, 2.5]"),
		field.Int("interval_days").Default(0),
		field.Int("repetitions").Default(0),
		field.Int("attempts").Default(0),
		field.Int("last_score").Default(0),
		field.Int("last_quality").
			Default(0).
			Comment("SM-2 quality grade of the latest attempt, 0-5"),
		field.Float("avg_score").Default(0),
		field.JSON("scores", []int{}).
			Optional().
			Comment("Bounded history of final scores, newest last"),
		field.Time("last_review").Optional(),
		field.Time("next_review").Optional(),
	}
}

func (SkillMemory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("player_id", "skill_id").Unique(),
		index.Fields("next_review"),
	}
}
