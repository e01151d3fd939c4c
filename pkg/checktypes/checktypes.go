// Package checktypes holds the Go types stored as JSON columns on the Check
// entity. They live outside ent/schema so both the schema package and the
// generated ent client (and ordinary service code) can import them without
// a dependency cycle.
package checktypes

import "time"

// LongformResponse is the full-length report artifact produced by the
// agent loop, summarizer, and translators.
type LongformResponse struct {
	En        string    `json:"en,omitempty"`
	Cn        string    `json:"cn,omitempty"`
	Ms        string    `json:"ms,omitempty"`
	ID        string    `json:"id,omitempty"`
	Ta        string    `json:"ta,omitempty"`
	Links     []string  `json:"links,omitempty"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// ShortformResponse is the community-note artifact: a short summary
// translated into four additional languages.
type ShortformResponse struct {
	En         string    `json:"en,omitempty"`
	Cn         string    `json:"cn,omitempty"`
	Ms         string    `json:"ms,omitempty"`
	ID         string    `json:"id,omitempty"`
	Ta         string    `json:"ta,omitempty"`
	Downvoted  bool      `json:"downvoted,omitempty"`
	Links      []string  `json:"links,omitempty"`
	Timestamp  time.Time `json:"timestamp,omitempty"`
}

// HumanResponse mirrors ShortformResponse's language fields plus an
// attribution field; it records a moderator's manual override of the
// community note.
type HumanResponse struct {
	En        string    `json:"en,omitempty"`
	Cn        string    `json:"cn,omitempty"`
	Links     []string  `json:"links,omitempty"`
	UpdatedBy string    `json:"updatedBy,omitempty"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// IsComplete reports whether every community-note language has been filled
// in, the gate used to decide when generationStatus may become "completed".
func (s ShortformResponse) IsComplete() bool {
	return s.En != "" && s.Cn != "" && s.Ms != "" && s.ID != "" && s.Ta != ""
}
