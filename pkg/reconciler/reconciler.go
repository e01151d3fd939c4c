// Package reconciler is the Assessment Reconciler (C10): it consumes
// updates keyed by check id carrying isHumanAssessed/crowdsourcedCategory/
// isCommunityNoteDownvoted, applies them atomically via the checkstore
// before-image update, and emits the matching moderator notifications.
package reconciler

import (
	"context"

	"github.com/checkmate-dev/checkmate/pkg/checkstore"
	"github.com/checkmate-dev/checkmate/pkg/checktypes"
	"github.com/checkmate-dev/checkmate/pkg/models"
	"github.com/checkmate-dev/checkmate/pkg/slack"
)

// Reconciler applies assessment updates and notifies the moderator
// channel of the resulting transitions.
type Reconciler struct {
	store    *checkstore.Store
	notifier *slack.Service
}

// New builds a Reconciler. notifier may be a nil *slack.Service; every
// method on it is then a no-op.
func New(store *checkstore.Store, notifier *slack.Service) *Reconciler {
	return &Reconciler{store: store, notifier: notifier}
}

// mergeDownvote returns the shortform response with Downvoted set, leaving
// every other field from the existing response untouched.
func mergeDownvote(existing *checktypes.ShortformResponse) checktypes.ShortformResponse {
	var merged checktypes.ShortformResponse
	if existing != nil {
		merged = *existing
	}
	merged.Downvoted = true
	return merged
}

// Apply applies update atomically and emits newly-assessed/category-change/
// community-note-downvoted notifications for whichever transitions fired,
// per spec.md §4.9.
func (r *Reconciler) Apply(ctx context.Context, checkID string, update models.AssessmentUpdate) error {
	before, err := r.store.FindByID(ctx, checkID)
	if err != nil {
		return err
	}

	p := checkstore.Partial{}
	if update.IsHumanAssessed != nil {
		p.IsHumanAssessed = update.IsHumanAssessed
	}
	if update.CrowdsourcedCategory != nil {
		p.CrowdsourcedCategory = update.CrowdsourcedCategory
	}
	if update.IsCommunityNoteDownvoted != nil && *update.IsCommunityNoteDownvoted {
		merged := mergeDownvote(before.ShortformResponse)
		p.ShortformResponse = &merged
	}

	delta, err := r.store.UpdateFieldsWithBeforeImage(ctx, checkID, p)
	if err != nil {
		return err
	}

	threadTS := ""
	if before.NotificationID != nil {
		threadTS = *before.NotificationID
	}
	category := before.CrowdsourcedCategory
	if p.CrowdsourcedCategory != nil {
		category = *p.CrowdsourcedCategory
	}

	if delta.BecameHumanAssessed {
		r.notifier.NotifyNewlyAssessed(ctx, checkID, category, threadTS)
	}
	if delta.CategoryChanged {
		r.notifier.NotifyCategoryChange(ctx, checkID, delta.PreviousCategory, category, threadTS)
	}
	if delta.BecameDownvoted {
		r.notifier.NotifyCommunityNoteDownvoted(ctx, checkID, threadTS)
	}
	return nil
}
