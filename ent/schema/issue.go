package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Issue holds the schema definition for a reported vehicle problem.
type Issue struct {
	ent.Schema
}

// Mixin of the Issue.
func (Issue) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Issue.
func (Issue) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.Text("description").
			NotEmpty(),
		field.Enum("status").
			Values("pending", "diagnosed", "resolved").
			Default("pending"),
		field.Time("reported_at").
			Default(time.Now).
			Immutable(),
		field.Time("resolved_at").
			Optional().
			Nillable(), // Set when status transitions to resolved
	}
}

// Edges of the Issue.
func (Issue) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("vehicle", Vehicle.Type).
			Ref("issues").
			Unique().
			Required(),
		edge.To("appointments", Appointment.Type),
	}
}

// Indexes of the Issue.
func (Issue) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
	}
}
