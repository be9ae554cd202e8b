package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ServiceCatalogItem holds the schema definition for a priced catalog entry
// (oil change, tire rotation, ...). It is deliberately a different entity from
// ServiceRecord, which documents work actually performed on a vehicle.
type ServiceCatalogItem struct {
	ent.Schema
}

// Mixin of the ServiceCatalogItem.
func (ServiceCatalogItem) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the ServiceCatalogItem.
func (ServiceCatalogItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty().
			MaxLen(255),
		field.String("description").
			Optional(),
		field.Float("price").
			Min(0),
		field.Enum("category").
			Values("Engine", "Tires", "Brakes", "Electrical", "General").
			Default("General"),
		field.Bool("is_active").
			Default(true),
	}
}

// Edges of the ServiceCatalogItem.
func (ServiceCatalogItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("appointments", Appointment.Type).
			Ref("services"),
	}
}

// Indexes of the ServiceCatalogItem.
func (ServiceCatalogItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name").Unique(),
		index.Fields("category"),
	}
}
