package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Calibration is one challenge's score-calibration record.
type Calibration struct {
	ent.Schema
}

func (Calibration) Fields() []ent.Field {
	return []ent.Field{
		field.String("challenge_id").
			Unique(),
		field.Float("offset").
			Default(0).
			Comment("Signed correction in points, capped; dampened at apply time"),
		field.Int("sample_count").Default(0),
		field.Float("mean").Default(0),
		field.Float("median").Default(0),
		field.Float("stddev").Default(0),
		field.Float("p25").Default(0),
		field.Float("p75").Default(0),
		field.Float("confidence").Default(0),
		field.Bool("needs_review").Default(false),
		field.Time("computed_at").
			Default(time.Now),
	}
}
