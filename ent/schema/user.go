package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			Unique().
			NotEmpty().
			Comment("User email address"),
		field.String("password_hash").
			Sensitive().
			Optional().
			Comment("Bcrypt hashed password (empty for OAuth-only accounts)"),
		field.String("name").
			NotEmpty().
			Comment("User full name"),
		field.Enum("plan_tier").
			Values("free", "pro", "enterprise").
			Default("free").
			Comment("Current subscription plan tier"),
		field.String("oauth_provider").
			Optional().
			Nillable().
			Comment("OAuth provider (google)"),
		field.String("oauth_id").
			Optional().
			Nillable().
			Comment("OAuth provider user ID"),
		field.String("stripe_customer_id").
			Optional().
			Nillable().
			Comment("Stripe customer ID"),
		field.Time("last_login_at").
			Optional().
			Nillable().
			Comment("Last login timestamp"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("api_keys", APIKey.Type),
		edge.To("subscriptions", Subscription.Type),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email").Unique(),
		index.Fields("plan_tier"),
	}
}
