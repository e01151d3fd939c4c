package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Consumer holds the schema definition for the Consumer entity: an API
// client registered for submission access, carrying its own rate-limit
// bucket state and per-tool call counters.
type Consumer struct {
	ent.Schema
}

// Fields of the Consumer.
func (Consumer) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("consumer_id").
			Unique().
			Immutable(),
		field.String("name").
			Unique(),
		field.String("api_key").
			Unique().
			Sensitive(),
		field.JSON("allowed_apis", []string{}).
			Comment("Subset of tool names this consumer may invoke"),

		field.Int("milliseconds_per_request").
			Comment("Token bucket refill rate"),
		field.Int("capacity").
			Comment("Token bucket capacity"),
		field.Int("milliseconds_for_updates").
			Comment("How often the bucket is ticked forward"),
		field.Float("tokens").
			Default(0).
			Comment("Current token bucket level; seeded to capacity on create"),
		field.JSON("call_counters", map[string]int64{}).
			Optional().
			Comment("Per-tool lifetime invocation counters"),

		field.Bool("is_active").
			Default(true),
		field.Time("last_refill_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Consumer.
func (Consumer) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name").Unique(),
		index.Fields("api_key").Unique(),
	}
}
