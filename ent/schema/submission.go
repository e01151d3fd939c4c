package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Submission holds the schema definition for the Submission entity: the
// durable audit record of one inbound request, independent of whatever
// Check it ultimately resolves to.
type Submission struct {
	ent.Schema
}

// Fields of the Submission.
func (Submission) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("request_id").
			Unique().
			Immutable(),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),

		field.Enum("source_type").
			Values("internal", "api").
			Immutable(),
		field.String("consumer_name").
			Immutable().
			Comment("'internal' for first-party bot submissions"),

		field.Enum("type").
			Values("text", "image").
			Immutable(),
		field.Text("text").
			Optional().
			Nillable().
			Immutable(),
		field.String("image_url").
			Optional().
			Nillable().
			Immutable(),
		field.Text("caption").
			Optional().
			Nillable().
			Immutable(),

		field.String("check_id").
			Optional().
			Nillable().
			Comment("Set once the submission resolves to a Check row"),
		field.Enum("check_status").
			Values("pending", "completed", "error").
			Default("pending"),
	}
}

// Indexes of the Submission.
func (Submission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("check_id"),
		index.Fields("consumer_name", "timestamp"),
	}
}
