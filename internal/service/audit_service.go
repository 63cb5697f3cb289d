package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/translate-bot/internal/events"
	"github.com/spec-kit/translate-bot/internal/observability"
)

// AuditService records pipeline outcomes in the log stream and metrics.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	metrics    *observability.Metrics
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger, metrics *observability.Metrics) *AuditService {
	return &AuditService{
		dispatcher: dispatcher,
		logger:     logger,
		metrics:    metrics,
	}
}

// RegisterHandlers subscribes to events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventTranslationPosted, a.handleOutcome)
	a.dispatcher.Subscribe(events.EventTranslationSkipped, a.handleOutcome)
	a.dispatcher.Subscribe(events.EventTranslationFailed, a.handleOutcome)
	a.dispatcher.Subscribe(events.EventTranslationDeleted, a.handleOutcome)
}

func (a *AuditService) handleOutcome(ctx context.Context, event events.Event) error {
	a.metrics.RecordOutcome(string(event.Type), string(event.Language))
	a.logger.Info("pipeline outcome",
		zap.String("event_id", event.ID),
		zap.String("type", string(event.Type)),
		zap.String("channel", event.ChannelID),
		zap.String("message_ts", event.MessageTS),
		zap.String("language", string(event.Language)),
		zap.String("reason", event.Reason),
		zap.String("actor", event.ActorID))
	return nil
}
