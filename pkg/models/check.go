package models

import (
	"time"

	"github.com/checkmate-dev/checkmate/pkg/checktypes"
)

// GenerationStatus is Check.GenerationStatus, spec.md §3.
type GenerationStatus string

const (
	StatusPending            GenerationStatus = "pending"
	StatusCompleted          GenerationStatus = "completed"
	StatusUnusable           GenerationStatus = "unusable"
	StatusError              GenerationStatus = "error"
	StatusErrorPreprocessing GenerationStatus = "error-preprocessing"
	StatusErrorAgentLoop     GenerationStatus = "error-agentLoop"
	StatusErrorSummarization GenerationStatus = "error-summarization"
	StatusErrorTranslation   GenerationStatus = "error-translation"
	StatusErrorOther         GenerationStatus = "error-other"
)

// ErrorStatusForPhase maps a pipeline phase keyword to its terminal
// generationStatus, per spec.md §4.6's error policy.
func ErrorStatusForPhase(phase string) GenerationStatus {
	switch phase {
	case "preprocessing":
		return StatusErrorPreprocessing
	case "agent loop":
		return StatusErrorAgentLoop
	case "summarise", "summarization":
		return StatusErrorSummarization
	case "translate", "translation":
		return StatusErrorTranslation
	default:
		return StatusErrorOther
	}
}

// CheckResult is the shape returned by /getAgentResult, /getCommunityNote,
// and GET /check/:id (spec.md §6). Report is omitted by the community-note
// endpoint.
type CheckResult struct {
	Report               string    `json:"report,omitempty"`
	CommunityNote        string    `json:"communityNote"`
	HumanNote            string    `json:"humanNote,omitempty"`
	IsControversial      bool      `json:"isControversial"`
	Text                 string    `json:"text,omitempty"`
	ImageURL             string    `json:"imageUrl,omitempty"`
	Caption              string    `json:"caption,omitempty"`
	IsVideo              bool      `json:"isVideo"`
	IsAccessBlocked      bool      `json:"isAccessBlocked"`
	Title                string    `json:"title,omitempty"`
	Slug                 string    `json:"slug,omitempty"`
	Timestamp            time.Time `json:"timestamp"`
	IsHumanAssessed      bool      `json:"isHumanAssessed"`
	IsVoteTriggered      bool      `json:"isVoteTriggered"`
	CrowdsourcedCategory string    `json:"crowdsourcedCategory"`
}

// AssessmentUpdate is the PATCH /check/:id body consumed by the
// Assessment Reconciler (C10).
type AssessmentUpdate struct {
	IsHumanAssessed          *bool   `json:"isHumanAssessed,omitempty"`
	CrowdsourcedCategory     *string `json:"crowdsourcedCategory,omitempty"`
	IsCommunityNoteDownvoted *bool   `json:"isCommunityNoteDownvoted,omitempty"`
}

// HumanNoteUpdate is the PATCH /check/:id/humanNote body.
type HumanNoteUpdate struct {
	En        string   `json:"en"`
	Cn        string   `json:"cn,omitempty"`
	Links     []string `json:"links,omitempty"`
	UpdatedBy string   `json:"updatedBy"`
}

// ToHumanResponse converts a HumanNoteUpdate into the stored artifact shape.
func (u HumanNoteUpdate) ToHumanResponse(now time.Time) checktypes.HumanResponse {
	return checktypes.HumanResponse{
		En:        u.En,
		Cn:        u.Cn,
		Links:     u.Links,
		UpdatedBy: u.UpdatedBy,
		Timestamp: now,
	}
}
