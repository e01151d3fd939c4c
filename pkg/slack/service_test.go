package slack

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/checkmate-dev/checkmate/pkg/config"
)

func TestNewService_NilWhenDisabled(t *testing.T) {
	assert.Nil(t, NewService(nil, nil))
	assert.Nil(t, NewService(&config.SlackConfig{Enabled: false, Channel: "C1"}, nil))
	assert.Nil(t, NewService(&config.SlackConfig{Enabled: true, Channel: ""}, nil))
}

func TestNewService_NilWhenTokenEnvUnset(t *testing.T) {
	const envVar = "CHECKMATE_TEST_SLACK_TOKEN_UNSET"
	os.Unsetenv(envVar)
	svc := NewService(&config.SlackConfig{Enabled: true, Channel: "C1", TokenEnv: envVar}, nil)
	assert.Nil(t, svc)
}

func TestNewService_ConstructsWhenConfigured(t *testing.T) {
	const envVar = "CHECKMATE_TEST_SLACK_TOKEN_SET"
	t.Setenv(envVar, "xoxb-fake")
	svc := NewService(&config.SlackConfig{Enabled: true, Channel: "C1", TokenEnv: envVar, LangfuseBaseURL: "https://lf.example.com"}, nil)
	assert.NotNil(t, svc)
	assert.Equal(t, "https://lf.example.com/chk-1", svc.langfuseLinkFor("chk-1"))
}

func TestService_LangfuseLinkFor_EmptyWhenUnconfigured(t *testing.T) {
	const envVar = "CHECKMATE_TEST_SLACK_TOKEN_NOLF"
	t.Setenv(envVar, "xoxb-fake")
	svc := NewService(&config.SlackConfig{Enabled: true, Channel: "C1", TokenEnv: envVar}, nil)
	assert.Equal(t, "", svc.langfuseLinkFor("chk-1"))
}

func TestNilService_MethodsAreNoOps(t *testing.T) {
	var svc *Service
	ctx := context.Background()

	assert.NotPanics(t, func() {
		svc.NotifyNewCheck(ctx, NewCheckInput{CheckID: "chk-1"})
		svc.NotifyCommunityNote(ctx, CommunityNoteInput{CheckID: "chk-1"}, "")
		svc.NotifyNewlyAssessed(ctx, "chk-1", "false", "")
		svc.NotifyCategoryChange(ctx, "chk-1", "unsure", "false", "")
		svc.NotifyCommunityNoteDownvoted(ctx, "chk-1", "")
	})

	err := svc.HandleWebhookAction(ctx, WebhookAction{Raw: "publish_chk-1", CheckID: "chk-1", SenderID: "U1"})
	assert.NoError(t, err)
}
