package http

import (
	"context"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/slack-go/slack"
	"go.uber.org/zap"

	"github.com/spec-kit/translate-bot/internal/observability"
	"github.com/spec-kit/translate-bot/pkg/util/errorutil"
)

// RegisterMiddlewares attaches global middlewares such as error handling and logging.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics, timeout time.Duration) {
	if timeout > 0 {
		app.Use(requestTimeoutMiddleware(timeout))
	}
	app.Use(errorHandlingMiddleware(logger, metrics))
	app.Use(observability.RequestLogger(logger, metrics))
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = errorutil.NewInternalError(nil)
			}
			if err != nil {
				domainErr := errorutil.ToDomainError(err)
				if metrics != nil {
					metrics.RecordError(c.Path(), c.Method(), domainErr.Code)
				}
				if domainErr.HTTPStatus >= 500 {
					logger.Error("request failed", zap.Error(domainErr))
				}
				c.Status(domainErr.HTTPStatus)
				_ = c.JSON(fiber.Map{"error": fiber.Map{
					"code":    domainErr.Code,
					"message": domainErr.Message,
				}})
				err = nil
			}
		}()
		return c.Next()
	}
}

// SlackSignatureMiddleware rejects requests whose signature does not match
// the app's signing secret. Slack signs the raw body together with the
// X-Slack-Request-Timestamp header.
func SlackSignatureMiddleware(signingSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := http.Header{}
		header.Set("X-Slack-Signature", c.Get("X-Slack-Signature"))
		header.Set("X-Slack-Request-Timestamp", c.Get("X-Slack-Request-Timestamp"))

		verifier, err := slack.NewSecretsVerifier(header, signingSecret)
		if err != nil {
			return errorutil.NewUnauthorized("invalid slack signature header")
		}
		if _, err := verifier.Write(c.Body()); err != nil {
			return errorutil.NewInternalError(err)
		}
		if err := verifier.Ensure(); err != nil {
			return errorutil.NewUnauthorized("slack signature mismatch")
		}
		return c.Next()
	}
}
