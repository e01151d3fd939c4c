// Package models holds the request/response DTOs shared between the HTTP
// API, the pipeline orchestrator, and the store adapter — the checkmate
// analogue of the teacher's pkg/models request/filter/response structs.
package models

import "time"

// SubmissionRequest is the inbound shape accepted by /getAgentResult and
// /getCommunityNote: exactly one of Text or ImageURL must be set.
type SubmissionRequest struct {
	Text        string `json:"text,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Caption     string `json:"caption,omitempty"`
	Provider    string `json:"provider,omitempty"`
	FindSimilar bool   `json:"findSimilar,omitempty"`
}

// SourceType classifies where a submission originated, per spec.md §3.
type SourceType string

const (
	SourceInternal SourceType = "internal"
	SourceAPI      SourceType = "api"
)

// CheckStatus tracks a Submission's resolution.
type CheckStatus string

const (
	CheckStatusPending   CheckStatus = "pending"
	CheckStatusCompleted CheckStatus = "completed"
	CheckStatusError     CheckStatus = "error"
)

// SubmissionType mirrors Check.Type: the shape of the original input.
type SubmissionType string

const (
	SubmissionText  SubmissionType = "text"
	SubmissionImage SubmissionType = "image"
)

// InternalConsumerName is the consumerName that classifies a submission as
// SourceInternal rather than SourceAPI (C6 step 1).
const InternalConsumerName = "checkmate-whatsapp"

// Submission is the audit record C8 maintains for one inbound request.
type Submission struct {
	RequestID    string
	Timestamp    time.Time
	SourceType   SourceType
	ConsumerName string
	Type         SubmissionType
	Text         string
	ImageURL     string
	Caption      string
	CheckID      string
	CheckStatus  CheckStatus
}

// ClassifySourceType returns SourceInternal when consumerName identifies
// the first-party bot, else SourceAPI.
func ClassifySourceType(consumerName string) SourceType {
	if consumerName == InternalConsumerName {
		return SourceInternal
	}
	return SourceAPI
}
