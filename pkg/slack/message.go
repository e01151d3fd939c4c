package slack

import (
	"fmt"

	goslack "github.com/slack-go/slack"
)

const maxBlockTextLength = 2900

// Kind enumerates the four notification kinds of spec.md §4.8 (plus the
// downvote variant, five total).
type Kind string

const (
	KindNewCheck               Kind = "new-check"
	KindCommunityNote          Kind = "community-note"
	KindNewlyAssessed          Kind = "newly-assessed"
	KindCategoryChange         Kind = "category-change"
	KindCommunityNoteDownvoted Kind = "community-note-downvoted"
)

func truncate(text string) string {
	if len(text) <= maxBlockTextLength {
		return text
	}
	return text[:maxBlockTextLength] + "\n\n_... (truncated)_"
}

func section(markdown string) goslack.Block {
	return goslack.NewSectionBlock(goslack.NewTextBlockObject(goslack.MarkdownType, markdown, false, false), nil, nil)
}

func langfuseLink(langfuseURL string) string {
	if langfuseURL == "" {
		return ""
	}
	return fmt.Sprintf("<%s|View on LangFuse>", langfuseURL)
}

// NewCheckInput is the payload for a "new-check" notification.
type NewCheckInput struct {
	CheckID     string
	Text        string
	ImageURL    string
	Caption     string
	LangfuseURL string
}

// BuildNewCheckMessage renders the initial moderator notification for a
// just-reserved check.
func BuildNewCheckMessage(in NewCheckInput) []goslack.Block {
	header := fmt.Sprintf(":mag: *New check received* — `%s`", in.CheckID)
	blocks := []goslack.Block{section(header)}

	switch {
	case in.Text != "":
		blocks = append(blocks, section(truncate(in.Text)))
	case in.ImageURL != "" && in.Caption != "":
		blocks = append(blocks, section(fmt.Sprintf("Image with caption:\n%s", truncate(in.Caption))))
	case in.ImageURL != "":
		blocks = append(blocks, section("Image submission (no caption)"))
	}

	if link := langfuseLink(in.LangfuseURL); link != "" {
		blocks = append(blocks, section(link))
	}
	return blocks
}

// CommunityNoteInput is the payload for a "community-note" notification.
type CommunityNoteInput struct {
	CheckID         string
	Summary         string
	IsError         bool
	ErrorMessage    string
	IsControversial bool
	LangfuseURL     string
}

// BuildCommunityNoteMessage renders the completed-note notification, with
// the publish/unpublish toggle only when the note is not controversial,
// per spec.md §4.8.
func BuildCommunityNoteMessage(in CommunityNoteInput) []goslack.Block {
	var blocks []goslack.Block

	if in.IsError {
		header := fmt.Sprintf(":x: *Check `%s` failed*", in.CheckID)
		if in.ErrorMessage != "" {
			header += fmt.Sprintf("\n\n*Error:*\n%s", truncate(in.ErrorMessage))
		}
		blocks = append(blocks, section(header))
		return blocks
	}

	blocks = append(blocks, section(fmt.Sprintf(":white_check_mark: *Community note ready* — `%s`", in.CheckID)))
	blocks = append(blocks, section(truncate(in.Summary)))

	var elements []goslack.BlockElement
	if link := langfuseLink(in.LangfuseURL); link != "" {
		blocks = append(blocks, section(link))
	}
	if !in.IsControversial {
		approve := goslack.NewButtonBlockElement(fmt.Sprintf("publish_%s", in.CheckID), in.CheckID,
			goslack.NewTextBlockObject(goslack.PlainTextType, "Approve for publishing", false, false))
		approve.Style = goslack.StylePrimary
		unpublish := goslack.NewButtonBlockElement(fmt.Sprintf("unpublish_%s", in.CheckID), in.CheckID,
			goslack.NewTextBlockObject(goslack.PlainTextType, "Unpublish", false, false))
		elements = append(elements, approve, unpublish)
	}
	if len(elements) > 0 {
		blocks = append(blocks, goslack.NewActionBlock(fmt.Sprintf("check_%s", in.CheckID), elements...))
	}
	return blocks
}

// AssessmentInput is the payload shared by the three C10-driven
// notification kinds.
type AssessmentInput struct {
	CheckID  string
	Category string
}

// BuildNewlyAssessedMessage renders the "newly-assessed" notification.
func BuildNewlyAssessedMessage(in AssessmentInput) []goslack.Block {
	return []goslack.Block{section(fmt.Sprintf(":memo: Check `%s` has been marked human-assessed (category: *%s*)", in.CheckID, in.Category))}
}

// BuildCategoryChangeMessage renders the "category-change" notification.
func BuildCategoryChangeMessage(in AssessmentInput, previousCategory string) []goslack.Block {
	return []goslack.Block{section(fmt.Sprintf(":arrows_counterclockwise: Check `%s` category changed: *%s* -> *%s*", in.CheckID, previousCategory, in.Category))}
}

// BuildCommunityNoteDownvotedMessage renders the "community-note-downvoted"
// notification.
func BuildCommunityNoteDownvotedMessage(checkID string) []goslack.Block {
	return []goslack.Block{section(fmt.Sprintf(":thumbsdown: Community note for check `%s` was downvoted and may need review", checkID))}
}

// rewriteCommunityNoteButtons renders the post-webhook state of the
// publish/unpublish action block: the toggled action becomes disabled-ish
// text (Slack has no true disabled button, so the opposite action stays
// clickable and the message is prefixed with the current state).
func rewriteCommunityNoteButtons(checkID string, approved bool) []goslack.Block {
	state := "Unpublished"
	if approved {
		state = "Approved for publishing"
	}
	blocks := []goslack.Block{section(fmt.Sprintf(":white_check_mark: Community note `%s` — *%s*", checkID, state))}

	var label string
	var action string
	if approved {
		label, action = "Unpublish", "unpublish"
	} else {
		label, action = "Approve for publishing", "publish"
	}
	btn := goslack.NewButtonBlockElement(fmt.Sprintf("%s_%s", action, checkID), checkID,
		goslack.NewTextBlockObject(goslack.PlainTextType, label, false, false))
	blocks = append(blocks, goslack.NewActionBlock(fmt.Sprintf("check_%s", checkID), btn))
	return blocks
}
