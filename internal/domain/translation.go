package domain

import "fmt"

// LanguageCode identifies a translation target language (e.g. "JA", "FR").
type LanguageCode string

// ReactionEvent captures the fields of a reaction_added event the pipeline
// cares about. It is produced by the inbound transport and discarded after
// processing.
type ReactionEvent struct {
	Reaction  string
	ItemType  string
	ChannelID string
	MessageTS string
	UserID    string
}

// IsMessageReaction reports whether the reaction targets a message with
// enough addressing information to process.
func (e ReactionEvent) IsMessageReaction() bool {
	return e.ItemType == "message" && e.ChannelID != "" && e.MessageTS != ""
}

// DedupKey identifies a translatable unit for idempotency tracking.
type DedupKey struct {
	ChannelID string
	MessageTS string
}

// String renders the store key format "<channel>:<messageTs>".
func (k DedupKey) String() string {
	return fmt.Sprintf("%s:%s", k.ChannelID, k.MessageTS)
}

// ThreadAnchor is the first message of a thread, fetched fresh per event.
type ThreadAnchor struct {
	ChannelID string
	Text      string
	UserID    string
	Timestamp string
	ThreadTS  string
}

// ReplyTS returns the thread timestamp replies should attach to: the
// anchor's own thread when it already lives in one, otherwise the anchor
// itself becomes the thread root.
func (a ThreadAnchor) ReplyTS() string {
	if a.ThreadTS != "" {
		return a.ThreadTS
	}
	return a.Timestamp
}

// PostedReply references a translation reply after posting. The chat
// platform remains the system of record; this is only carried through
// logs and events.
type PostedReply struct {
	ChannelID string
	Timestamp string
}
