package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/dediamond1/mechanic/internal/domain"
)

// Appointment holds the schema definition for the Appointment entity.
// Services are referenced by catalog id (M2M edge), never by free-text name,
// so price/display lookups are joins instead of string matches.
type Appointment struct {
	ent.Schema
}

// Mixin of the Appointment.
func (Appointment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Appointment.
func (Appointment) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.Time("appointment_date"),
		field.Enum("status").
			Values(
				"SCHEDULED",
				"IN_PROGRESS",
				"COMPLETED",
				"CANCELLED",
			).
			Default("SCHEDULED"),
		field.Text("notes").
			Optional(), // Append-only; each entry prefixed with a timestamp by the service layer
		field.Enum("appointment_type").
			Values("issue", "service").
			Optional(), // When set: issue ⇒ issue edge required, service ⇒ catalog services required
		field.JSON("parts_used", []domain.PartUsage{}).
			Optional(),
		field.Float("labor_cost").
			Optional().
			Min(0),
		field.Float("total_cost").
			Optional().
			Min(0), // Computed: labor_cost + Σ quantity×unit_price, never client-supplied
	}
}

// Edges of the Appointment.
func (Appointment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("vehicle", Vehicle.Type).
			Ref("appointments").
			Unique().
			Required(),
		edge.From("employee", Employee.Type).
			Ref("appointments").
			Unique().
			Required(),
		edge.To("services", ServiceCatalogItem.Type),
		edge.From("issue", Issue.Type).
			Ref("appointments").
			Unique(),
		edge.To("service_records", ServiceRecord.Type),
	}
}

// Indexes of the Appointment.
func (Appointment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("appointment_date"),
		index.Fields("status"),
	}
}
