package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupKeyString(t *testing.T) {
	key := DedupKey{ChannelID: "C123", MessageTS: "1652345678.000100"}
	assert.Equal(t, "C123:1652345678.000100", key.String())
}

func TestReactionEventIsMessageReaction(t *testing.T) {
	base := ReactionEvent{Reaction: "flag-jp", ItemType: "message", ChannelID: "C1", MessageTS: "1.2"}
	assert.True(t, base.IsMessageReaction())

	onFile := base
	onFile.ItemType = "file"
	assert.False(t, onFile.IsMessageReaction())

	noChannel := base
	noChannel.ChannelID = ""
	assert.False(t, noChannel.IsMessageReaction())

	noTS := base
	noTS.MessageTS = ""
	assert.False(t, noTS.IsMessageReaction())
}

func TestThreadAnchorReplyTS(t *testing.T) {
	threaded := ThreadAnchor{Timestamp: "2.0", ThreadTS: "1.0"}
	assert.Equal(t, "1.0", threaded.ReplyTS())

	topLevel := ThreadAnchor{Timestamp: "2.0"}
	assert.Equal(t, "2.0", topLevel.ReplyTS())
}

func TestOverflowActionIsDeleteRequest(t *testing.T) {
	valid := OverflowAction{Value: "delete", ChannelID: "C1", MessageTS: "2.0", ThreadTS: "1.0", UserID: "U1"}
	assert.True(t, valid.IsDeleteRequest())

	for name, mutate := range map[string]func(*OverflowAction){
		"wrong value":     func(a *OverflowAction) { a.Value = "archive" },
		"missing channel": func(a *OverflowAction) { a.ChannelID = "" },
		"missing ts":      func(a *OverflowAction) { a.MessageTS = "" },
		"missing thread":  func(a *OverflowAction) { a.ThreadTS = "" },
		"missing user":    func(a *OverflowAction) { a.UserID = "" },
	} {
		action := valid
		mutate(&action)
		assert.False(t, action.IsDeleteRequest(), name)
	}
}
