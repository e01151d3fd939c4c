// Package slack is the Moderator Channel (C9): it posts new-check,
// community-note, newly-assessed, category-change, and
// community-note-downvoted notifications, threading every reply under the
// notificationId returned by the first post, and handles the inline
// approve/unpublish button webhook. Grounded on the teacher's pkg/slack:
// a thin Client wrapper over slack-go, a nil-safe fail-open Service, and
// Block Kit builders in message.go — generalized from session-lifecycle
// notifications to check-lifecycle notifications, and extended with
// inline interactive buttons the teacher never needed.
package slack

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	goslack "github.com/slack-go/slack"
)

// Client is a thin wrapper around the slack-go SDK.
type Client struct {
	api       *goslack.Client
	channelID string
	logger    *slog.Logger
}

// NewClient creates a new Slack API client.
func NewClient(token, channelID string) *Client {
	return &Client{
		api:       goslack.New(token),
		channelID: channelID,
		logger:    slog.Default().With("component", "slack-client"),
	}
}

// NewClientWithAPIURL creates a Slack API client that targets a custom API
// URL, used for testing against a mock server.
func NewClientWithAPIURL(token, channelID, apiURL string) *Client {
	return &Client{
		api:       goslack.New(token, goslack.OptionAPIURL(apiURL)),
		channelID: channelID,
		logger:    slog.Default().With("component", "slack-client"),
	}
}

// PostMessage sends blocks to the configured channel, as a threaded reply
// when threadTS is non-empty, and returns the new message's timestamp
// (used as the notificationId for later threaded replies).
func (c *Client) PostMessage(ctx context.Context, blocks []goslack.Block, threadTS string, timeout time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := []goslack.MsgOption{goslack.MsgOptionBlocks(blocks...)}
	if threadTS != "" {
		opts = append(opts, goslack.MsgOptionTS(threadTS))
	}

	_, ts, err := c.api.PostMessageContext(ctx, c.channelID, opts...)
	if err != nil {
		return "", fmt.Errorf("chat.postMessage failed: %w", err)
	}
	return ts, nil
}

// UpdateMessage rewrites the blocks of an existing message, used to
// rewrite the approve/unpublish reply markup after a webhook callback.
func (c *Client) UpdateMessage(ctx context.Context, ts string, blocks []goslack.Block, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	_, _, _, err := c.api.UpdateMessageContext(ctx, c.channelID, ts, goslack.MsgOptionBlocks(blocks...))
	if err != nil {
		return fmt.Errorf("chat.update failed: %w", err)
	}
	return nil
}
