package events

import (
	"time"

	"github.com/spec-kit/translate-bot/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTranslationPosted  EventType = "translation_posted"
	EventTranslationSkipped EventType = "translation_skipped"
	EventTranslationFailed  EventType = "translation_failed"
	EventTranslationDeleted EventType = "translation_deleted"
)

// Skip and failure reasons carried in Event.Reason.
const (
	ReasonAlreadyTranslated      = "already_translated"
	ReasonDedupStoreUnavailable  = "dedup_store_unavailable"
	ReasonPlatformUnavailable    = "platform_unavailable"
	ReasonTranslationUnavailable = "translation_unavailable"
	ReasonPostFailed             = "post_failed"
	ReasonContentRejected        = "content_rejected"
)

// Event represents a pipeline outcome emitted by services.
type Event struct {
	ID        string              `json:"id"`
	Type      EventType           `json:"type"`
	ChannelID string              `json:"channel_id"`
	MessageTS string              `json:"message_ts"`
	Language  domain.LanguageCode `json:"language,omitempty"`
	Reason    string              `json:"reason,omitempty"`
	ActorID   string              `json:"actor_id,omitempty"`
	Timestamp time.Time           `json:"timestamp"`
}
