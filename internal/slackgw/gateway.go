// Package slackgw wraps the Slack Web API surface the bot depends on.
package slackgw

import (
	"context"
	"errors"
	"time"

	"github.com/slack-go/slack"
	"go.uber.org/zap"

	"github.com/spec-kit/translate-bot/internal/config"
	"github.com/spec-kit/translate-bot/internal/domain"
)

// ErrPlatformUnavailable wraps Slack API failures on the thread fetch path.
var ErrPlatformUnavailable = errors.New("slack platform unavailable")

// API is the subset of slack.Client methods the gateway uses, extracted so
// tests can substitute a fake.
type API interface {
	AuthTestContext(ctx context.Context) (*slack.AuthTestResponse, error)
	GetConversationRepliesContext(ctx context.Context, params *slack.GetConversationRepliesParameters) ([]slack.Message, bool, string, error)
	GetUserProfileContext(ctx context.Context, params *slack.GetUserProfileParameters) (*slack.UserProfile, error)
	GetPermalinkContext(ctx context.Context, params *slack.PermalinkParameters) (string, error)
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
	PostEphemeralContext(ctx context.Context, channelID, userID string, options ...slack.MsgOption) (string, error)
	DeleteMessageContext(ctx context.Context, channel, messageTimestamp string) (string, string, error)
	OpenViewContext(ctx context.Context, triggerID string, view slack.ModalViewRequest) (*slack.ViewResponse, error)
	UpdateViewContext(ctx context.Context, view slack.ModalViewRequest, externalID, hash, viewID string) (*slack.ViewResponse, error)
}

// Gateway mediates all outbound Slack calls, bounding each with a timeout.
type Gateway struct {
	api     API
	timeout time.Duration
	logger  *zap.Logger
}

// New builds a gateway backed by a real slack.Client.
func New(cfg config.SlackConfig, logger *zap.Logger) *Gateway {
	return &Gateway{
		api:     slack.New(cfg.BotToken),
		timeout: cfg.CallTimeout(),
		logger:  logger,
	}
}

// NewWithAPI builds a gateway over an injected API implementation.
func NewWithAPI(api API, timeout time.Duration, logger *zap.Logger) *Gateway {
	return &Gateway{api: api, timeout: timeout, logger: logger}
}

func (g *Gateway) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, g.timeout)
}

// Ping verifies API connectivity and credentials.
func (g *Gateway) Ping(ctx context.Context) error {
	ctx, cancel := g.callCtx(ctx)
	defer cancel()
	_, err := g.api.AuthTestContext(ctx)
	return err
}

// FetchThreadAnchor retrieves the first message of the thread containing the
// given timestamp, inclusive of the parent.
func (g *Gateway) FetchThreadAnchor(ctx context.Context, channelID, messageTS string) (domain.ThreadAnchor, error) {
	ctx, cancel := g.callCtx(ctx)
	defer cancel()

	msgs, _, _, err := g.api.GetConversationRepliesContext(ctx, &slack.GetConversationRepliesParameters{
		ChannelID: channelID,
		Timestamp: messageTS,
		Inclusive: true,
	})
	if err != nil {
		return domain.ThreadAnchor{}, errors.Join(ErrPlatformUnavailable, err)
	}
	if len(msgs) == 0 {
		return domain.ThreadAnchor{}, errors.Join(ErrPlatformUnavailable, errors.New("empty thread"))
	}

	anchor := msgs[0]
	return domain.ThreadAnchor{
		ChannelID: channelID,
		Text:      anchor.Text,
		UserID:    anchor.User,
		Timestamp: anchor.Timestamp,
		ThreadTS:  anchor.ThreadTimestamp,
	}, nil
}

// RealName fetches the display name from a user's profile.
func (g *Gateway) RealName(ctx context.Context, userID string) (string, error) {
	ctx, cancel := g.callCtx(ctx)
	defer cancel()

	profile, err := g.api.GetUserProfileContext(ctx, &slack.GetUserProfileParameters{UserID: userID})
	if err != nil {
		return "", err
	}
	return profile.RealName, nil
}

// Permalink fetches a shareable URL for a message.
func (g *Gateway) Permalink(ctx context.Context, channelID, messageTS string) (string, error) {
	ctx, cancel := g.callCtx(ctx)
	defer cancel()

	return g.api.GetPermalinkContext(ctx, &slack.PermalinkParameters{
		Channel: channelID,
		Ts:      messageTS,
	})
}

// PostReply posts a message into the given thread. When blocks are supplied
// the text acts as the notification fallback; without blocks a plain text
// message is posted.
func (g *Gateway) PostReply(ctx context.Context, channelID, threadTS, text string, blocks []slack.Block) (domain.PostedReply, error) {
	ctx, cancel := g.callCtx(ctx)
	defer cancel()

	opts := []slack.MsgOption{
		slack.MsgOptionText(text, false),
		slack.MsgOptionTS(threadTS),
	}
	if len(blocks) > 0 {
		opts = append(opts, slack.MsgOptionBlocks(blocks...))
	}

	_, ts, err := g.api.PostMessageContext(ctx, channelID, opts...)
	if err != nil {
		return domain.PostedReply{}, err
	}
	return domain.PostedReply{ChannelID: channelID, Timestamp: ts}, nil
}

// PostEphemeral sends a message visible only to one user, threaded when a
// thread timestamp is given.
func (g *Gateway) PostEphemeral(ctx context.Context, channelID, userID, threadTS, text string) error {
	ctx, cancel := g.callCtx(ctx)
	defer cancel()

	opts := []slack.MsgOption{slack.MsgOptionText(text, false)}
	if threadTS != "" {
		opts = append(opts, slack.MsgOptionTS(threadTS))
	}
	_, err := g.api.PostEphemeralContext(ctx, channelID, userID, opts...)
	return err
}

// DeleteMessage removes a previously posted message.
func (g *Gateway) DeleteMessage(ctx context.Context, channelID, messageTS string) error {
	ctx, cancel := g.callCtx(ctx)
	defer cancel()

	_, _, err := g.api.DeleteMessageContext(ctx, channelID, messageTS)
	return err
}

// OpenView opens a modal for the given interaction trigger.
func (g *Gateway) OpenView(ctx context.Context, triggerID string, view slack.ModalViewRequest) error {
	ctx, cancel := g.callCtx(ctx)
	defer cancel()

	_, err := g.api.OpenViewContext(ctx, triggerID, view)
	return err
}

// UpdateView replaces the contents of an already opened modal.
func (g *Gateway) UpdateView(ctx context.Context, viewID string, view slack.ModalViewRequest) error {
	ctx, cancel := g.callCtx(ctx)
	defer cancel()

	_, err := g.api.UpdateViewContext(ctx, view, "", "", viewID)
	return err
}
