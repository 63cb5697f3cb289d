package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/slack-go/slack"
)

// Placeholder glyphs substituted for mentions before text leaves the
// workspace, so raw mention syntax never reaches the translation provider
// and nobody gets re-notified by the reply.
const (
	personPlaceholder = "👤"
	groupPlaceholder  = "👥"
)

const (
	footerExcerptMax = 50
	footerExcerptCut = 49
)

// overflowActionID identifies the revocation control on posted replies.
const overflowActionID = "overflow"

var (
	userMentionPattern  = regexp.MustCompile(`<@\S+?>`)
	groupMentionPattern = regexp.MustCompile(`<!\S+?>`)
)

// RedactMentions replaces user and group mentions with placeholder glyphs.
func RedactMentions(text string) string {
	text = userMentionPattern.ReplaceAllString(text, personPlaceholder)
	return groupMentionPattern.ReplaceAllString(text, groupPlaceholder)
}

// ExcerptOriginal shortens the original text for the reply footer: texts
// longer than 50 characters become a 49-character excerpt plus an ellipsis.
func ExcerptOriginal(text string) string {
	runes := []rune(text)
	if len(runes) <= footerExcerptMax {
		return text
	}
	return string(runes[:footerExcerptCut]) + "…"
}

// BuildFooter assembles the attribution footer. Author name and permalink
// are optional decorations; an empty value omits the line.
func BuildFooter(excerpt, realName, permalink string) string {
	var lines []string
	lines = append(lines, excerpt)
	if realName != "" {
		lines = append(lines, fmt.Sprintf("Originally sent by: %s", realName))
	}
	if permalink != "" {
		lines = append(lines, fmt.Sprintf("*<%s|View original message>*", permalink))
	}
	return strings.Join(lines, "\n")
}

// BuildReplyBlocks renders the two-block translation reply: a section with
// the translated text carrying the overflow deletion control, and a context
// block with the attribution footer.
func BuildReplyBlocks(translatedText, footer string) []slack.Block {
	deleteOption := slack.NewOptionBlockObject(
		"delete",
		slack.NewTextBlockObject(slack.PlainTextType, "Delete this translation", false, false),
		nil,
	)

	overflow := slack.NewOverflowBlockElement(overflowActionID, deleteOption)
	overflow.Confirm = slack.NewConfirmationBlockObject(
		slack.NewTextBlockObject(slack.PlainTextType, "Are you sure?", false, false),
		slack.NewTextBlockObject(slack.MarkdownType, "Are you sure you want to delete this translation? 🗑️", false, false),
		slack.NewTextBlockObject(slack.PlainTextType, "Do it!", false, false),
		slack.NewTextBlockObject(slack.PlainTextType, "Stop, I've changed my mind!", false, false),
	)

	translationBlock := slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType, translatedText, false, false),
		nil,
		slack.NewAccessory(overflow),
	)

	footerBlock := slack.NewContextBlock("",
		slack.NewTextBlockObject(slack.MarkdownType, footer, false, false),
	)

	return []slack.Block{translationBlock, footerBlock}
}
