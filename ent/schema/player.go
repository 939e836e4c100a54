package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Player is one trainee account.
type Player struct {
	ent.Schema
}

func (Player) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique().
			Comment("Display name, unique per database"),
		field.Int("xp").
			Default(0).
			Comment("Accumulated experience points"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
