package handlers

import (
	"context"
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/slack-go/slack"
	"go.uber.org/zap"

	"github.com/spec-kit/translate-bot/internal/domain"
	"github.com/spec-kit/translate-bot/internal/service"
	"github.com/spec-kit/translate-bot/pkg/util/errorutil"
)

// overflowActionID is the action id of the revocation control on posted
// translation replies.
const overflowActionID = "overflow"

// SlackInteractionsHandler consumes the interactivity endpoint: block
// actions, shortcuts and view submissions.
type SlackInteractionsHandler struct {
	reacjilator *service.ReacjilatorService
	runner      *service.RunnerService
	logger      *zap.Logger
}

// NewSlackInteractionsHandler returns a new handler instance.
func NewSlackInteractionsHandler(reacjilator *service.ReacjilatorService, runner *service.RunnerService, logger *zap.Logger) *SlackInteractionsHandler {
	return &SlackInteractionsHandler{reacjilator: reacjilator, runner: runner, logger: logger}
}

// Handle dispatches an interaction payload. Responses that must ride on the
// ack (view submission updates) are returned synchronously; everything else
// is acked empty and processed in its own goroutine.
func (h *SlackInteractionsHandler) Handle(c *fiber.Ctx) error {
	payload := c.FormValue("payload")
	if payload == "" {
		return errorutil.NewBadRequest("missing interaction payload")
	}

	var callback slack.InteractionCallback
	if err := json.Unmarshal([]byte(payload), &callback); err != nil {
		return errorutil.NewBadRequest("unparseable interaction payload")
	}

	switch callback.Type {
	case slack.InteractionTypeBlockActions:
		for _, action := range callback.ActionCallback.BlockActions {
			if action.ActionID != overflowActionID {
				continue
			}
			overflow := domain.OverflowAction{
				Value:     action.SelectedOption.Value,
				ChannelID: callback.Container.ChannelID,
				MessageTS: callback.Container.MessageTs,
				ThreadTS:  callback.Container.ThreadTs,
				UserID:    callback.User.ID,
			}
			go h.reacjilator.HandleOverflowAction(context.Background(), overflow)
		}

	case slack.InteractionTypeShortcut:
		if callback.CallbackID == service.ShortcutTranslation {
			triggerID := callback.TriggerID
			go h.runner.OpenTranslationModal(context.Background(), triggerID)
		}

	case slack.InteractionTypeViewSubmission:
		switch callback.View.CallbackID {
		case service.ViewRunTranslation:
			return c.JSON(h.runner.HandleRunSubmission(c.UserContext(), callback))
		case service.ViewNewRunner:
			return c.JSON(h.runner.HandleNewRunnerSubmission(callback))
		}
	}

	return c.SendStatus(fiber.StatusOK)
}
