package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/contentstudio/backend/internal/config"
	"github.com/contentstudio/backend/internal/db"
	"github.com/contentstudio/backend/internal/events"
	apphttp "github.com/contentstudio/backend/internal/http"
	"github.com/contentstudio/backend/internal/http/handlers"
	"github.com/contentstudio/backend/internal/repositories"
	"github.com/contentstudio/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	cfg.Validate(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	// Run migrations
	if err := db.RunMigrations(ctx, pool, "migrations", log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Redis
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	// Repositories
	userRepo := repositories.NewUserRepo(pool)
	draftRepo := repositories.NewDraftRepo(pool)
	paidContentRepo := repositories.NewPaidContentRepo(pool)
	auditRepo := repositories.NewAuditRepo(pool)

	// Events
	publisher := events.NewRedisPublisher(rdb, log)
	subscriber := events.NewRedisSubscriber(rdb, log)

	// Services
	generationClient := services.NewGenerationClient(cfg.GenerationWebhookURL, cfg.WebhookTimeout, log)
	publishClient := services.NewPublishClient(cfg.PostingWebhookURL, cfg.WebhookTimeout, log)
	relayService := services.NewRelayService(generationClient, draftRepo, auditRepo, publisher, log)
	draftService := services.NewDraftService(draftRepo, auditRepo, publishClient, publisher, log)
	paidContentService := services.NewPaidContentService(paidContentRepo, auditRepo, log)

	// Handlers
	authHandler := handlers.NewAuthHandler(userRepo, auditRepo, cfg, log)
	userHandler := handlers.NewUserHandler(userRepo, log)
	draftHandler := handlers.NewDraftHandler(draftService, log)
	paidContentHandler := handlers.NewPaidContentHandler(paidContentService, log)
	relayHandler := handlers.NewRelayHandler(relayService, log)
	wsHub := handlers.NewWSHub(cfg, subscriber, log)

	// Start WS hub
	wsHub.Start(ctx)

	// Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	apphttp.SetupRouter(app, cfg, log, rdb, authHandler, userHandler, draftHandler, paidContentHandler, relayHandler, wsHub)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		cancel()
		_ = app.Shutdown()
	}()

	addr := fmt.Sprintf(":%s", cfg.APIPort)
	log.Info("starting API server", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
