package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Vehicle holds the schema definition for the Vehicle entity.
// Every vehicle belongs to exactly one customer; creation without a valid
// customer id must fail at the service layer, never create an orphan.
type Vehicle struct {
	ent.Schema
}

// Mixin of the Vehicle.
func (Vehicle) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Vehicle.
func (Vehicle) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("make").
			NotEmpty().
			MaxLen(255),
		field.String("model").
			NotEmpty().
			MaxLen(255),
		field.Int("year").
			Min(1886), // First production automobile; upper bound is time-dependent, checked in domain validation
		field.String("license_plate").
			NotEmpty().
			MaxLen(32),
		field.String("vin").
			NotEmpty().
			MinLen(17).
			MaxLen(17), // Stored uppercase; pattern [A-HJ-NPR-Z0-9]{17} enforced in domain validation
		field.Int("mileage").
			Optional().
			Min(0),
	}
}

// Edges of the Vehicle.
func (Vehicle) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("customer", Customer.Type).
			Ref("vehicles").
			Unique().
			Required(),
		edge.To("appointments", Appointment.Type),
		edge.To("issues", Issue.Type),
		edge.To("service_records", ServiceRecord.Type),
	}
}

// Indexes of the Vehicle.
func (Vehicle) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("vin").Unique(),
		index.Fields("license_plate"),
	}
}
