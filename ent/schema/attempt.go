package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Attempt is one scored submission. A player gets one attempt per
// challenge; resubmission replaces nothing and is rejected upstream.
type Attempt struct {
	ent.Schema
}

func (Attempt) Fields() []ent.Field {
	return []ent.Field{
		field.Int("player_id"),
		field.String("challenge_id"),
		field.String("skill_category"),
		field.String("difficulty"),
		field.Text("submission"),
		field.Int("validator_score"),
		field.Int("ai_score").
			Default(0).
			Comment("LLM judge score; 0 with ai_available=false means automated-only"),
		field.Bool("ai_available").
			Default(false),
		field.Int("final_score"),
		field.Int("confidence").
			Default(0),
		field.String("risk_level").
			Default("none"),
		field.Int("hints_used").
			Default(0),
		field.Text("feedback_html").
			Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Attempt) Indexes() []ent.Index {
	return []ent.Index{
		// One attempt per (player, challenge): the duplicate check relies
		// on this being read-after-write consistent.
		index.Fields("player_id", "challenge_id").Unique(),
		index.Fields("challenge_id"),
		index.Fields("skill_category"),
	}
}
