package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/checkmate-dev/checkmate/pkg/checktypes"
)

// Check holds the schema definition for the Check entity: one fact-check
// artifact per distinct (text|image,caption) fingerprint.
type Check struct {
	ent.Schema
}

// Fields of the Check.
func (Check) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("check_id").
			Unique().
			Immutable(),

		field.Enum("type").
			Values("text", "image"),
		field.Text("text").
			Optional().
			Nillable().
			Comment("Original submitted text, for type=text"),
		field.String("image_url").
			Optional().
			Nillable(),
		field.Text("caption").
			Optional().
			Nillable().
			Comment("Caption accompanying the image, for type=image"),
		field.Time("timestamp").
			Default(time.Now),

		// Fingerprints used for exact-match and near-duplicate lookup.
		field.String("text_hash").
			Optional().
			Nillable().
			Comment("sha256 hex of normalised text"),
		field.String("caption_hash").
			Optional().
			Nillable().
			Comment("sha256 hex of normalised caption"),
		field.String("image_hash").
			Optional().
			Nillable().
			Comment("PDQ perceptual hash hex"),
		field.JSON("text_embedding", []float64{}).
			Optional().
			Comment("384-dim embedding of the submitted text"),
		field.JSON("caption_embedding", []float64{}).
			Optional().
			Comment("384-dim embedding of the image caption"),
		field.JSON("pdq_embedding", []int{}).
			Optional().
			Comment("256-dim PDQ hash bit vector, for Hamming-distance search"),

		// Artifacts produced by the pipeline.
		field.JSON("longform_response", &checktypes.LongformResponse{}).
			Optional(),
		field.JSON("shortform_response", &checktypes.ShortformResponse{}).
			Optional(),
		field.JSON("human_response", &checktypes.HumanResponse{}).
			Optional(),
		field.String("title").
			Optional().
			Nillable(),
		field.String("slug").
			Optional().
			Nillable(),

		field.Enum("generation_status").
			Values("pending", "completed", "unusable", "error",
				"error-preprocessing", "error-agentLoop", "error-summarization",
				"error-translation", "error-other").
			Default("pending"),

		field.Bool("is_controversial").Default(false),
		field.Bool("is_access_blocked").Default(false),
		field.Bool("is_video").Default(false),
		field.Bool("is_expired").Default(false),
		field.Bool("is_human_assessed").Default(false),
		field.Bool("is_vote_triggered").Default(false),
		field.Bool("is_approved_for_publishing").Default(false),

		field.String("machine_category").
			Optional().
			Nillable(),
		field.String("crowdsourced_category").
			Default("unsure"),

		field.String("poll_id").
			Optional().
			Nillable(),
		field.String("notification_id").
			Optional().
			Nillable(),
		field.String("community_note_notification_id").
			Optional().
			Nillable(),
		field.String("approved_by").
			Optional().
			Nillable(),

		field.Time("updated_at").
			Optional().
			Nillable(),

		// Single-writer claim fields for the pipeline orchestrator's
		// worker pool (C6): a pending check is claimed by exactly one
		// pod, which must keep a heartbeat for the duration of the run.
		field.String("owner_pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("claimed_at").
			Optional().
			Nillable(),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
	}
}

// Indexes of the Check.
func (Check) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("text_hash").
			Annotations(entsql.IndexWhere("text_hash IS NOT NULL")),
		index.Fields("image_hash").
			Annotations(entsql.IndexWhere("image_hash IS NOT NULL")),
		index.Fields("caption_hash").
			Annotations(entsql.IndexWhere("caption_hash IS NOT NULL")),
		index.Fields("generation_status"),
		index.Fields("generation_status", "timestamp"),
		index.Fields("generation_status", "last_heartbeat_at"),
	}
}
