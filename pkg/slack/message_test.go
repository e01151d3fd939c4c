package slack

import (
	"testing"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildNewCheckMessage_Text(t *testing.T) {
	blocks := BuildNewCheckMessage(NewCheckInput{
		CheckID:     "chk-1",
		Text:        "the moon landing was faked",
		LangfuseURL: "https://langfuse.example.com/chk-1",
	})

	require.Len(t, blocks, 3)
	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, "chk-1")
	body := blocks[1].(*goslack.SectionBlock)
	assert.Contains(t, body.Text.Text, "the moon landing was faked")
	link := blocks[2].(*goslack.SectionBlock)
	assert.Contains(t, link.Text.Text, "View on LangFuse")
}

func TestBuildNewCheckMessage_ImageWithoutCaption(t *testing.T) {
	blocks := BuildNewCheckMessage(NewCheckInput{CheckID: "chk-2", ImageURL: "https://img.example.com/a.png"})
	require.Len(t, blocks, 2)
	body := blocks[1].(*goslack.SectionBlock)
	assert.Contains(t, body.Text.Text, "no caption")
}

func TestBuildCommunityNoteMessage_NotControversialHasButtons(t *testing.T) {
	blocks := BuildCommunityNoteMessage(CommunityNoteInput{
		CheckID:         "chk-3",
		Summary:         "Mostly false.",
		IsControversial: false,
	})

	var action *goslack.ActionBlock
	for _, b := range blocks {
		if a, ok := b.(*goslack.ActionBlock); ok {
			action = a
		}
	}
	require.NotNil(t, action)
	require.Len(t, action.Elements.ElementSet, 2)

	approve := action.Elements.ElementSet[0].(*goslack.ButtonBlockElement)
	assert.Equal(t, "publish_chk-3", approve.ActionID)
	unpublish := action.Elements.ElementSet[1].(*goslack.ButtonBlockElement)
	assert.Equal(t, "unpublish_chk-3", unpublish.ActionID)
}

func TestBuildCommunityNoteMessage_ControversialHasNoButtons(t *testing.T) {
	blocks := BuildCommunityNoteMessage(CommunityNoteInput{
		CheckID:         "chk-4",
		Summary:         "Disputed.",
		IsControversial: true,
	})
	for _, b := range blocks {
		_, isAction := b.(*goslack.ActionBlock)
		assert.False(t, isAction, "controversial notes must not render the publish/unpublish toggle")
	}
}

func TestBuildCommunityNoteMessage_Error(t *testing.T) {
	blocks := BuildCommunityNoteMessage(CommunityNoteInput{
		CheckID:      "chk-5",
		IsError:      true,
		ErrorMessage: "agent loop exhausted",
	})
	require.Len(t, blocks, 1)
	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, "failed")
	assert.Contains(t, header.Text.Text, "agent loop exhausted")
}

func TestBuildNewlyAssessedMessage(t *testing.T) {
	blocks := BuildNewlyAssessedMessage(AssessmentInput{CheckID: "chk-6", Category: "false"})
	require.Len(t, blocks, 1)
	assert.Contains(t, blocks[0].(*goslack.SectionBlock).Text.Text, "chk-6")
}

func TestBuildCategoryChangeMessage(t *testing.T) {
	blocks := BuildCategoryChangeMessage(AssessmentInput{CheckID: "chk-7", Category: "misleading"}, "false")
	text := blocks[0].(*goslack.SectionBlock).Text.Text
	assert.Contains(t, text, "false")
	assert.Contains(t, text, "misleading")
}

func TestBuildCommunityNoteDownvotedMessage(t *testing.T) {
	blocks := BuildCommunityNoteDownvotedMessage("chk-8")
	assert.Contains(t, blocks[0].(*goslack.SectionBlock).Text.Text, "chk-8")
}

func TestRewriteCommunityNoteButtons_Approved(t *testing.T) {
	blocks := rewriteCommunityNoteButtons("chk-9", true)
	require.Len(t, blocks, 2)
	action := blocks[1].(*goslack.ActionBlock)
	btn := action.Elements.ElementSet[0].(*goslack.ButtonBlockElement)
	assert.Equal(t, "unpublish_chk-9", btn.ActionID)
}

func TestRewriteCommunityNoteButtons_Unpublished(t *testing.T) {
	blocks := rewriteCommunityNoteButtons("chk-10", false)
	action := blocks[1].(*goslack.ActionBlock)
	btn := action.Elements.ElementSet[0].(*goslack.ButtonBlockElement)
	assert.Equal(t, "publish_chk-10", btn.ActionID)
}

func TestTruncate(t *testing.T) {
	short := "hello"
	assert.Equal(t, short, truncate(short))

	long := make([]byte, maxBlockTextLength+50)
	for i := range long {
		long[i] = 'a'
	}
	out := truncate(string(long))
	assert.Contains(t, out, "truncated")
	assert.Less(t, len(out)-len("\n\n_... (truncated)_"), len(long))
}
