package slack

import (
	"encoding/json"
	"strings"

	goslack "github.com/slack-go/slack"

	"github.com/checkmate-dev/checkmate/pkg/checkerr"
)

// WebhookAction is the parsed form of a button callback, whose action id
// is shaped "action_checkId" per spec.md §4.8.
type WebhookAction struct {
	Raw      string
	CheckID  string
	SenderID string
}

// IsPublish reports whether this is a publish_X action.
func (a WebhookAction) IsPublish() bool {
	return strings.HasPrefix(a.Raw, "publish_")
}

// IsUnpublish reports whether this is an unpublish_X action.
func (a WebhookAction) IsUnpublish() bool {
	return strings.HasPrefix(a.Raw, "unpublish_")
}

// ParseWebhookPayload decodes a Slack interactivity callback (the
// application/x-www-form-urlencoded "payload" field's JSON body) into a
// WebhookAction. Only the first action block is considered, matching the
// single-action button layout this package renders.
func ParseWebhookPayload(payload []byte) (WebhookAction, error) {
	var cb goslack.InteractionCallback
	if err := json.Unmarshal(payload, &cb); err != nil {
		return WebhookAction{}, checkerr.Wrap(checkerr.InvalidInput, "decode slack interaction payload", err)
	}
	if len(cb.ActionCallback.BlockActions) == 0 {
		return WebhookAction{}, checkerr.New(checkerr.InvalidInput, "interaction payload has no block actions")
	}

	action := cb.ActionCallback.BlockActions[0]
	raw := action.ActionID
	checkID := action.Value
	if checkID == "" {
		// Fall back to splitting the action id itself when the button's
		// value wasn't populated, since both carry the check id.
		if idx := strings.IndexByte(raw, '_'); idx >= 0 {
			checkID = raw[idx+1:]
		}
	}

	return WebhookAction{
		Raw:      raw,
		CheckID:  checkID,
		SenderID: cb.User.ID,
	}, nil
}
