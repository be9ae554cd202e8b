package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for a staff login account.
// Authentication records are separate from Employee: an employee is a
// scheduling resource, a user is who can sign in.
type User struct {
	ent.Schema
}

// Mixin of the User.
func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("email").
			NotEmpty().
			MaxLen(255), // Stored lowercase
		field.String("name").
			NotEmpty().
			MaxLen(255),
		field.String("password_hash").
			NotEmpty().
			Sensitive(),
		field.Bool("email_verified").
			Default(false),
		field.Bool("enabled").
			Default(true),
		field.String("reset_token_hash").
			Optional().
			Sensitive(), // Single-use password reset token (hashed)
		field.Time("reset_token_expires_at").
			Optional().
			Nillable(),
		field.Time("last_login_at").
			Optional().
			Nillable(),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("notifications", Notification.Type),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email").Unique(),
	}
}
