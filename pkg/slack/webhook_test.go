package slack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func interactionPayload(actionID, value, userID string) []byte {
	return []byte(`{
		"type": "block_actions",
		"user": {"id": "` + userID + `"},
		"actions": [{"block_id": "check_` + value + `", "action_id": "` + actionID + `", "value": "` + value + `"}]
	}`)
}

func TestParseWebhookPayload_Publish(t *testing.T) {
	action, err := ParseWebhookPayload(interactionPayload("publish_chk-1", "chk-1", "U123"))
	require.NoError(t, err)
	assert.Equal(t, "chk-1", action.CheckID)
	assert.Equal(t, "U123", action.SenderID)
	assert.True(t, action.IsPublish())
	assert.False(t, action.IsUnpublish())
}

func TestParseWebhookPayload_Unpublish(t *testing.T) {
	action, err := ParseWebhookPayload(interactionPayload("unpublish_chk-2", "chk-2", "U456"))
	require.NoError(t, err)
	assert.True(t, action.IsUnpublish())
	assert.False(t, action.IsPublish())
}

func TestParseWebhookPayload_FallsBackToActionIDWhenValueEmpty(t *testing.T) {
	action, err := ParseWebhookPayload(interactionPayload("publish_chk-3", "", "U789"))
	require.NoError(t, err)
	assert.Equal(t, "chk-3", action.CheckID)
}

func TestParseWebhookPayload_UnknownActionDoesNotError(t *testing.T) {
	action, err := ParseWebhookPayload(interactionPayload("some_other_action", "chk-4", "U1"))
	require.NoError(t, err)
	assert.False(t, action.IsPublish())
	assert.False(t, action.IsUnpublish())
}

func TestParseWebhookPayload_NoActionsIsInvalidInput(t *testing.T) {
	_, err := ParseWebhookPayload([]byte(`{"type":"block_actions","actions":[]}`))
	require.Error(t, err)
}

func TestParseWebhookPayload_MalformedJSON(t *testing.T) {
	_, err := ParseWebhookPayload([]byte(`not json`))
	require.Error(t, err)
}
