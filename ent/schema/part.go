package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Part holds the schema definition for an inventory part.
// Referenced by value (id + snapshot of name/price) from the parts_used
// lists on Appointment and ServiceRecord.
type Part struct {
	ent.Schema
}

// Mixin of the Part.
func (Part) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Part.
func (Part) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty().
			MaxLen(255),
		field.Enum("condition").
			Values("new", "used", "refurbished").
			Default("new"),
		field.Float("price").
			Min(0),
		field.Int("quantity").
			Default(1).
			Min(0),
		field.String("supplier").
			Optional(),
	}
}

// Indexes of the Part.
func (Part) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
	}
}
