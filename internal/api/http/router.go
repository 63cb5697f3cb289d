package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/translate-bot/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health        *handlers.HealthHandler
	Events        *handlers.SlackEventsHandler
	Interactions  *handlers.SlackInteractionsHandler
	SigningSecret string
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Health.Metrics)

	slackGroup := app.Group("/slack", SlackSignatureMiddleware(cfg.SigningSecret))
	slackGroup.Post("/events", cfg.Events.Handle)
	slackGroup.Post("/interactivity", cfg.Interactions.Handle)
}
