package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ReferenceAnswer is a stored high-scoring submission with its embedding,
// used for similarity comparison against new submissions.
type ReferenceAnswer struct {
	ent.Schema
}

func (ReferenceAnswer) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("uuid", uuid.UUID{}).
			Unique().
			Immutable(),
		field.String("challenge_id"),
		field.Text("text"),
		field.JSON("embedding", []float64{}),
		field.Int("score"),
		field.String("source").
			Default("auto").
			Comment("auto (high-scoring attempt) or curated"),
		field.Bool("verified").Default(false),
		field.Bool("active").
			Default(true).
			Comment("Soft-delete flag; comparisons only see active references"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (ReferenceAnswer) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("challenge_id", "active"),
	}
}
