package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HealthLog holds the schema definition for the HealthLog entity.
// One row per calendar day accumulating upstream API uptime.
type HealthLog struct {
	ent.Schema
}

// Fields of the HealthLog.
func (HealthLog) Fields() []ent.Field {
	return []ent.Field{
		field.Time("log_date").
			Unique().
			Comment("Day this row aggregates (midnight UTC)"),
		field.Int("total_seconds").
			Default(0).
			NonNegative().
			Comment("Seconds observed during the day"),
		field.Int("total_uptime_seconds").
			Default(0).
			NonNegative().
			Comment("Seconds the upstream API was healthy"),
		field.Enum("status").
			Values("healthy", "degraded", "error").
			Default("healthy").
			Comment("Latest observed status"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last poll timestamp"),
	}
}

// Indexes of the HealthLog.
func (HealthLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("log_date").Unique(),
	}
}
