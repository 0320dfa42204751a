package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PlanFeature holds the schema definition for the PlanFeature entity.
type PlanFeature struct {
	ent.Schema
}

// Fields of the PlanFeature.
func (PlanFeature) Fields() []ent.Field {
	return []ent.Field{
		field.Int("plan_id").
			Positive().
			Comment("Plan foreign key"),
		field.String("feature").
			NotEmpty().
			Comment("Feature bullet text"),
		field.Int("feature_order").
			Default(0).
			Comment("Display order within the plan"),
	}
}

// Edges of the PlanFeature.
func (PlanFeature) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("plan", Plan.Type).
			Ref("features").
			Field("plan_id").
			Unique().
			Required(),
	}
}

// Indexes of the PlanFeature.
func (PlanFeature) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("plan_id", "feature_order"),
	}
}
