package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Plan holds the schema definition for the Plan entity. Plans are the
// catalog rows rendered on the pricing page; issuance quotas come from
// the static policy table, not from here.
type Plan struct {
	ent.Schema
}

// Fields of the Plan.
func (Plan) Fields() []ent.Field {
	return []ent.Field{
		field.String("code").
			Unique().
			NotEmpty().
			Comment("Plan tier code (free/pro/enterprise)"),
		field.String("name").
			NotEmpty().
			Comment("Display name"),
		field.Int("price").
			NonNegative().
			Comment("Monthly price in USD"),
		field.String("billing_period").
			Default("month").
			Comment("Billing period label"),
		field.String("stripe_price_id").
			Optional().
			Comment("Stripe price ID for checkout"),
		field.Int("api_key_limit").
			Positive().
			Comment("Active API keys allowed on this plan"),
		field.Int("request_limit").
			Positive().
			Comment("Monthly API requests allowed on this plan"),
		field.Bool("is_recommended").
			Default(false).
			Comment("Highlighted on the pricing page"),
		field.String("color_from").
			Optional().
			Comment("Gradient start color class"),
		field.String("color_to").
			Optional().
			Comment("Gradient end color class"),
	}
}

// Edges of the Plan.
func (Plan) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("features", PlanFeature.Type),
	}
}

// Indexes of the Plan.
func (Plan) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("code").Unique(),
	}
}
