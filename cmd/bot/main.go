package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/translate-bot/internal/api/http"
	"github.com/spec-kit/translate-bot/internal/api/http/handlers"
	"github.com/spec-kit/translate-bot/internal/config"
	"github.com/spec-kit/translate-bot/internal/events"
	"github.com/spec-kit/translate-bot/internal/observability"
	"github.com/spec-kit/translate-bot/internal/persistence"
	"github.com/spec-kit/translate-bot/internal/repository"
	"github.com/spec-kit/translate-bot/internal/service"
	"github.com/spec-kit/translate-bot/internal/slackgw"
	"github.com/spec-kit/translate-bot/internal/translate"
	"github.com/spec-kit/translate-bot/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	metrics := observability.NewMetrics()

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	gateway := slackgw.New(cfg.Slack, logger)
	deepl := translate.NewDeepLClient(cfg.DeepL, logger)
	dedupRepo := repository.NewTranslationDedupRepository(redis.Client, cfg.Dedup.Retention())

	dispatcher := events.NewInMemoryDispatcher()
	auditService := service.NewAuditService(dispatcher, logger, metrics)
	worker.StartAuditWorker(auditService)

	reacjilator := service.NewReacjilatorService(service.ReacjilatorDependencies{
		Gateway:    gateway,
		Translator: deepl,
		DedupRepo:  dedupRepo,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	runner := service.NewRunnerService(gateway, deepl, logger)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	healthHandler := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, redis, gateway, metrics)
	eventsHandler := handlers.NewSlackEventsHandler(reacjilator, logger)
	interactionsHandler := handlers.NewSlackInteractionsHandler(reacjilator, runner, logger)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:        healthHandler,
		Events:        eventsHandler,
		Interactions:  interactionsHandler,
		SigningSecret: cfg.Slack.SigningSecret,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
