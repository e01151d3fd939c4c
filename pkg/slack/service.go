package slack

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/checkmate-dev/checkmate/pkg/checkerr"
	"github.com/checkmate-dev/checkmate/pkg/checkstore"
	"github.com/checkmate-dev/checkmate/pkg/config"
)

const postTimeout = 10 * time.Second

// Service is the Moderator Channel (C9): a nil-safe, fail-open wrapper that
// posts notifications and threads replies under the notificationId
// persisted on the check. A nil *Service is valid and every method on it
// is a no-op, mirroring the teacher's pkg/slack.Service.
type Service struct {
	client      *Client
	store       *checkstore.Store
	langfuseURL string
	logger      *slog.Logger
}

// NewService builds a Service from resolved config, or returns nil when
// the moderator channel is disabled or misconfigured, so callers never
// need to check cfg.Enabled themselves.
func NewService(cfg *config.SlackConfig, store *checkstore.Store) *Service {
	if cfg == nil || !cfg.Enabled || cfg.Channel == "" {
		return nil
	}
	token := os.Getenv(cfg.TokenEnv)
	if token == "" {
		return nil
	}
	return &Service{
		client:      NewClient(token, cfg.Channel),
		store:       store,
		langfuseURL: cfg.LangfuseBaseURL,
		logger:      slog.Default().With("component", "slack-service"),
	}
}

func (s *Service) langfuseLinkFor(checkID string) string {
	if s == nil || s.langfuseURL == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s", s.langfuseURL, checkID)
}

// NotifyNewCheck posts the "new-check" notification and persists the
// returned message timestamp as the check's notificationId, so later
// replies (including the community-note message) thread under it.
func (s *Service) NotifyNewCheck(ctx context.Context, in NewCheckInput) {
	if s == nil {
		return
	}
	in.LangfuseURL = s.langfuseLinkFor(in.CheckID)
	ts, err := s.client.PostMessage(ctx, BuildNewCheckMessage(in), "", postTimeout)
	if err != nil {
		s.logger.Warn("new-check notification failed", "checkId", in.CheckID, "error", err)
		return
	}
	if err := s.store.UpdateFields(ctx, in.CheckID, checkstore.Partial{NotificationID: &ts}); err != nil {
		s.logger.Warn("failed to persist notificationId", "checkId", in.CheckID, "error", err)
	}
}

// NotifyCommunityNote posts the "community-note" notification (or the
// error variant) threaded under notificationId, and persists its own
// timestamp as communityNoteNotificationId for the button webhook to find.
func (s *Service) NotifyCommunityNote(ctx context.Context, in CommunityNoteInput, threadTS string) {
	if s == nil {
		return
	}
	in.LangfuseURL = s.langfuseLinkFor(in.CheckID)
	ts, err := s.client.PostMessage(ctx, BuildCommunityNoteMessage(in), threadTS, postTimeout)
	if err != nil {
		s.logger.Warn("community-note notification failed", "checkId", in.CheckID, "error", err)
		return
	}
	if err := s.store.UpdateFields(ctx, in.CheckID, checkstore.Partial{CommunityNoteNotificationID: &ts}); err != nil {
		s.logger.Warn("failed to persist communityNoteNotificationId", "checkId", in.CheckID, "error", err)
	}
}

// NotifyNewlyAssessed posts the "newly-assessed" notification.
func (s *Service) NotifyNewlyAssessed(ctx context.Context, checkID, category, threadTS string) {
	if s == nil {
		return
	}
	if _, err := s.client.PostMessage(ctx, BuildNewlyAssessedMessage(AssessmentInput{CheckID: checkID, Category: category}), threadTS, postTimeout); err != nil {
		s.logger.Warn("newly-assessed notification failed", "checkId", checkID, "error", err)
	}
}

// NotifyCategoryChange posts the "category-change" notification.
func (s *Service) NotifyCategoryChange(ctx context.Context, checkID, previousCategory, newCategory, threadTS string) {
	if s == nil {
		return
	}
	msg := BuildCategoryChangeMessage(AssessmentInput{CheckID: checkID, Category: newCategory}, previousCategory)
	if _, err := s.client.PostMessage(ctx, msg, threadTS, postTimeout); err != nil {
		s.logger.Warn("category-change notification failed", "checkId", checkID, "error", err)
	}
}

// NotifyCommunityNoteDownvoted posts the "community-note-downvoted" notification.
func (s *Service) NotifyCommunityNoteDownvoted(ctx context.Context, checkID, threadTS string) {
	if s == nil {
		return
	}
	if _, err := s.client.PostMessage(ctx, BuildCommunityNoteDownvotedMessage(checkID), threadTS, postTimeout); err != nil {
		s.logger.Warn("community-note-downvoted notification failed", "checkId", checkID, "error", err)
	}
}

// HandleWebhookAction applies a publish_X/unpublish_X button callback:
// sets or clears isApprovedForPublishing+approvedBy and rewrites the
// message's button markup. Unknown actions are acknowledged without error,
// per spec.md §4.8.
func (s *Service) HandleWebhookAction(ctx context.Context, action WebhookAction) error {
	if s == nil {
		return nil
	}

	var approved bool
	switch {
	case action.IsPublish():
		approved = true
	case action.IsUnpublish():
		approved = false
	default:
		s.logger.Info("unknown webhook action", "action", action.Raw)
		return nil
	}

	approvedBy := &action.SenderID
	if !approved {
		empty := ""
		approvedBy = &empty
	}
	if err := s.store.UpdateFields(ctx, action.CheckID, checkstore.Partial{
		IsApprovedForPublishing: &approved,
		ApprovedBy:              approvedBy,
	}); err != nil {
		return checkerr.Wrap(checkerr.InternalError, "apply webhook action", err)
	}

	row, err := s.store.FindByID(ctx, action.CheckID)
	if err != nil {
		return err
	}
	notifTS := ""
	if row.CommunityNoteNotificationID != nil {
		notifTS = *row.CommunityNoteNotificationID
	}
	if notifTS == "" {
		return nil
	}
	if err := s.client.UpdateMessage(ctx, notifTS, rewriteCommunityNoteButtons(action.CheckID, approved), postTimeout); err != nil {
		s.logger.Warn("failed to rewrite community-note buttons", "checkId", action.CheckID, "error", err)
	}
	return nil
}
