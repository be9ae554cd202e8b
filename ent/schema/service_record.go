package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/dediamond1/mechanic/internal/domain"
)

// ServiceRecord holds the schema definition for work performed on a vehicle.
// Not to be confused with ServiceCatalogItem: a record documents an actual
// job (parts, labor, cost), a catalog item is a priced menu entry.
type ServiceRecord struct {
	ent.Schema
}

// Mixin of the ServiceRecord.
func (ServiceRecord) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the ServiceRecord.
func (ServiceRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.Text("description").
			Optional(),
		field.JSON("services_performed", []string{}).
			Optional(),
		field.JSON("parts_used", []domain.PartUsage{}).
			Optional(),
		field.Float("labor_cost").
			Min(0),
		field.Float("total_cost").
			Min(0), // Computed: labor_cost + Σ quantity×unit_price
		field.Text("notes").
			Optional(),
		field.Enum("status").
			Values("pending", "in_progress", "completed").
			Default("pending"),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the ServiceRecord.
func (ServiceRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("vehicle", Vehicle.Type).
			Ref("service_records").
			Unique().
			Required(),
		// Optional: a record can outlive its appointment (appointment deletes orphan it).
		edge.From("appointment", Appointment.Type).
			Ref("service_records").
			Unique(),
	}
}

// Indexes of the ServiceRecord.
func (ServiceRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
	}
}
