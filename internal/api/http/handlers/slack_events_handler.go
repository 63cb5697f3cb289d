package handlers

import (
	"context"
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/slack-go/slack/slackevents"
	"go.uber.org/zap"

	"github.com/spec-kit/translate-bot/internal/domain"
	"github.com/spec-kit/translate-bot/internal/service"
	"github.com/spec-kit/translate-bot/pkg/util/errorutil"
)

// SlackEventsHandler consumes the Events API callback endpoint.
type SlackEventsHandler struct {
	reacjilator *service.ReacjilatorService
	logger      *zap.Logger
}

// NewSlackEventsHandler returns a new handler instance.
func NewSlackEventsHandler(reacjilator *service.ReacjilatorService, logger *zap.Logger) *SlackEventsHandler {
	return &SlackEventsHandler{reacjilator: reacjilator, logger: logger}
}

// Handle acks the event immediately and processes it in its own goroutine.
// Slack retries undelivered events; processing failures stay contained in
// the pipeline and never surface as HTTP errors.
func (h *SlackEventsHandler) Handle(c *fiber.Ctx) error {
	body := append([]byte(nil), c.Body()...)

	apiEvent, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		return errorutil.NewBadRequest("unparseable event payload")
	}

	switch apiEvent.Type {
	case slackevents.URLVerification:
		var challenge slackevents.ChallengeResponse
		if err := json.Unmarshal(body, &challenge); err != nil {
			return errorutil.NewBadRequest("unparseable challenge payload")
		}
		return c.SendString(challenge.Challenge)

	case slackevents.CallbackEvent:
		if reaction, ok := apiEvent.InnerEvent.Data.(*slackevents.ReactionAddedEvent); ok {
			event := domain.ReactionEvent{
				Reaction:  reaction.Reaction,
				ItemType:  reaction.Item.Type,
				ChannelID: reaction.Item.Channel,
				MessageTS: reaction.Item.Timestamp,
				UserID:    reaction.User,
			}
			go h.reacjilator.HandleReactionAdded(context.Background(), event)
		}
	}

	return c.SendStatus(fiber.StatusOK)
}
