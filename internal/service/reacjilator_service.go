package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/slack-go/slack"
	"go.uber.org/zap"

	"github.com/spec-kit/translate-bot/internal/domain"
	"github.com/spec-kit/translate-bot/internal/events"
	"github.com/spec-kit/translate-bot/internal/language"
	"github.com/spec-kit/translate-bot/internal/repository"
	"github.com/spec-kit/translate-bot/pkg/util/errorutil"
)

const (
	oversizeApology = "Sorry, the translation was too long to post here."

	deleteConfirmation = "I deleted the translation. I hope that's what you really wanted!"
	deleteFailure      = "Sorry, I couldn't delete the translation. It may have been removed already."
)

// SlackGateway is the chat platform surface the pipeline needs.
type SlackGateway interface {
	FetchThreadAnchor(ctx context.Context, channelID, messageTS string) (domain.ThreadAnchor, error)
	RealName(ctx context.Context, userID string) (string, error)
	Permalink(ctx context.Context, channelID, messageTS string) (string, error)
	PostReply(ctx context.Context, channelID, threadTS, text string, blocks []slack.Block) (domain.PostedReply, error)
	PostEphemeral(ctx context.Context, channelID, userID, threadTS, text string) error
	DeleteMessage(ctx context.Context, channelID, messageTS string) error
}

// Translator produces translated text or fails; it never retries.
type Translator interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
}

// ReacjilatorService runs the reaction-triggered translation pipeline and
// its compensating revocation flow.
type ReacjilatorService struct {
	gateway    SlackGateway
	translator Translator
	dedup      repository.TranslationDedupRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// ReacjilatorDependencies bundles collaborators for the pipeline.
type ReacjilatorDependencies struct {
	Gateway    SlackGateway
	Translator Translator
	DedupRepo  repository.TranslationDedupRepository
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewReacjilatorService constructs the service.
func NewReacjilatorService(deps ReacjilatorDependencies) *ReacjilatorService {
	return &ReacjilatorService{
		gateway:    deps.Gateway,
		translator: deps.Translator,
		dedup:      deps.DedupRepo,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// HandleReactionAdded interprets a reaction event as a translation request.
// Reactions that do not name a language, reactions on non-message items and
// already-translated units are expected no-ops. A dedup store failure aborts
// the event: a dropped translation can be re-triggered by reacting again,
// a duplicate reply cannot be taken back.
func (s *ReacjilatorService) HandleReactionAdded(ctx context.Context, event domain.ReactionEvent) {
	if !event.IsMessageReaction() {
		return
	}

	langCode, ok := language.Resolve(event.Reaction)
	if !ok {
		return
	}
	lang := domain.LanguageCode(langCode)
	key := domain.DedupKey{ChannelID: event.ChannelID, MessageTS: event.MessageTS}

	marked, err := s.dedup.IsMarked(ctx, key, lang)
	if err != nil {
		s.logger.Error("dedup store check failed",
			zap.String("unit", key.String()),
			zap.String("language", langCode),
			zap.Error(err))
		s.publish(ctx, events.EventTranslationFailed, key, lang, events.ReasonDedupStoreUnavailable, event.UserID)
		return
	}
	if marked {
		s.publish(ctx, events.EventTranslationSkipped, key, lang, events.ReasonAlreadyTranslated, event.UserID)
		return
	}

	anchor, err := s.gateway.FetchThreadAnchor(ctx, event.ChannelID, event.MessageTS)
	if err != nil {
		s.logger.Error("thread fetch failed",
			zap.String("unit", key.String()),
			zap.Error(err))
		s.publish(ctx, events.EventTranslationFailed, key, lang, events.ReasonPlatformUnavailable, event.UserID)
		return
	}
	if anchor.Text == "" {
		return
	}

	sanitized := RedactMentions(anchor.Text)

	translated, err := s.translator.Translate(ctx, sanitized, langCode)
	if err != nil {
		s.logger.Warn("translation unavailable",
			zap.String("unit", key.String()),
			zap.String("language", langCode),
			zap.Error(err))
		s.publish(ctx, events.EventTranslationFailed, key, lang, events.ReasonTranslationUnavailable, event.UserID)
		return
	}

	footer := BuildFooter(ExcerptOriginal(sanitized), s.authorName(ctx, anchor), s.permalink(ctx, anchor))
	blocks := BuildReplyBlocks(translated, footer)

	posted, err := s.gateway.PostReply(ctx, event.ChannelID, anchor.ReplyTS(), translated, blocks)
	if err != nil {
		if errorutil.IsContentRejected(err) {
			s.logger.Warn("rich reply rejected, posting fallback",
				zap.String("unit", key.String()),
				zap.Error(err))
			if _, fbErr := s.gateway.PostReply(ctx, event.ChannelID, anchor.ReplyTS(), oversizeApology, nil); fbErr != nil {
				s.logger.Error("fallback post failed", zap.String("unit", key.String()), zap.Error(fbErr))
			}
			s.publish(ctx, events.EventTranslationFailed, key, lang, events.ReasonContentRejected, event.UserID)
			return
		}
		s.logger.Error("posting translation failed",
			zap.String("unit", key.String()),
			zap.Error(err))
		s.publish(ctx, events.EventTranslationFailed, key, lang, events.ReasonPostFailed, event.UserID)
		return
	}

	// The reply is already visible; a failed mark only risks a duplicate
	// on redelivery, so it is logged and not treated as a pipeline failure.
	if err := s.dedup.Mark(ctx, key, lang); err != nil {
		s.logger.Warn("dedup store mark failed",
			zap.String("unit", key.String()),
			zap.String("language", langCode),
			zap.Error(err))
	}

	s.logger.Info("translation posted",
		zap.String("unit", key.String()),
		zap.String("language", langCode),
		zap.String("reply_ts", posted.Timestamp))
	s.publish(ctx, events.EventTranslationPosted, key, lang, "", event.UserID)
}

// HandleOverflowAction processes a deletion request raised through the
// overflow control on a posted translation. Malformed actions are ignored.
func (s *ReacjilatorService) HandleOverflowAction(ctx context.Context, action domain.OverflowAction) {
	if !action.IsDeleteRequest() {
		return
	}

	key := domain.DedupKey{ChannelID: action.ChannelID, MessageTS: action.MessageTS}

	if err := s.gateway.DeleteMessage(ctx, action.ChannelID, action.MessageTS); err != nil {
		s.logger.Warn("deleting translation failed",
			zap.String("unit", key.String()),
			zap.Bool("message_gone", errorutil.IsMessageGone(err)),
			zap.Error(err))
		if ephErr := s.gateway.PostEphemeral(ctx, action.ChannelID, action.UserID, action.ThreadTS, deleteFailure); ephErr != nil {
			s.logger.Error("delete failure notice failed", zap.String("unit", key.String()), zap.Error(ephErr))
		}
		return
	}

	if err := s.gateway.PostEphemeral(ctx, action.ChannelID, action.UserID, action.ThreadTS, deleteConfirmation); err != nil {
		s.logger.Error("delete confirmation failed", zap.String("unit", key.String()), zap.Error(err))
	}

	s.publish(ctx, events.EventTranslationDeleted, key, "", "", action.UserID)
}

func (s *ReacjilatorService) authorName(ctx context.Context, anchor domain.ThreadAnchor) string {
	if anchor.UserID == "" {
		return ""
	}
	name, err := s.gateway.RealName(ctx, anchor.UserID)
	if err != nil {
		s.logger.Debug("profile lookup failed", zap.String("user", anchor.UserID), zap.Error(err))
		return ""
	}
	return name
}

func (s *ReacjilatorService) permalink(ctx context.Context, anchor domain.ThreadAnchor) string {
	if anchor.Timestamp == "" {
		return ""
	}
	link, err := s.gateway.Permalink(ctx, anchor.ChannelID, anchor.Timestamp)
	if err != nil {
		s.logger.Debug("permalink lookup failed", zap.String("ts", anchor.Timestamp), zap.Error(err))
		return ""
	}
	return link
}

func (s *ReacjilatorService) publish(ctx context.Context, eventType events.EventType, key domain.DedupKey, lang domain.LanguageCode, reason, actorID string) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		ChannelID: key.ChannelID,
		MessageTS: key.MessageTS,
		Language:  lang,
		Reason:    reason,
		ActorID:   actorID,
		Timestamp: time.Now().UTC(),
	})
}
