package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// APIKey holds the schema definition for the APIKey entity.
// The plaintext credential is never persisted; only its AES-256-GCM
// encrypted form (ciphertext, iv, auth tag) is stored.
type APIKey struct {
	ent.Schema
}

// Fields of the APIKey.
func (APIKey) Fields() []ent.Field {
	return []ent.Field{
		field.Int("owner_id").
			Positive().
			Comment("Owner user ID foreign key"),
		field.String("secret_ciphertext").
			Sensitive().
			NotEmpty().
			Comment("Hex-encoded AES-256-GCM ciphertext of the key"),
		field.String("iv").
			Sensitive().
			NotEmpty().
			Comment("Hex-encoded GCM nonce"),
		field.String("auth_tag").
			Sensitive().
			NotEmpty().
			Comment("Hex-encoded GCM authentication tag"),
		field.String("plan_tag").
			MaxLen(10).
			NotEmpty().
			Comment("Plan short code frozen at issuance (fr/pr/ent)"),
		field.Bool("is_active").
			Default(true).
			Comment("Whether the key is accepted by downstream consumers"),
		field.Bool("revealed").
			Default(false).
			Comment("Whether the plaintext was ever revealed (monotonic)"),
		field.Int("reveal_count").
			Default(0).
			NonNegative().
			Comment("Number of reveals; must never exceed 1"),
		field.Time("revealed_at").
			Optional().
			Nillable().
			Comment("Reveal timestamp"),
		field.Time("last_used_at").
			Optional().
			Nillable().
			Comment("Last usage timestamp reported by the upstream API"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
	}
}

// Edges of the APIKey.
func (APIKey) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("api_keys").
			Field("owner_id").
			Unique().
			Required().
			Comment("API key owner"),
	}
}

// Indexes of the APIKey.
func (APIKey) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id"),
		index.Fields("owner_id", "is_active"),
		index.Fields("created_at"),
	}
}
