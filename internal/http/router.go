package http

import (
	"time"

	"github.com/contentstudio/backend/internal/config"
	"github.com/contentstudio/backend/internal/http/handlers"
	"github.com/contentstudio/backend/internal/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	rdb *redis.Client,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	draftHandler *handlers.DraftHandler,
	paidContentHandler *handlers.PaidContentHandler,
	relayHandler *handlers.RelayHandler,
	wsHub *handlers.WSHub,
) {
	// Automation hooks are registered before the global middleware chain:
	// the relay answers its own preflights and attaches its own CORS
	// headers to every response, per contract with the automation layer.
	app.Options("/hooks/process-content-draft", relayHandler.Preflight)
	app.Post("/hooks/process-content-draft", relayHandler.ProcessContentDraft)

	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	// Auth (public)
	api.Post("/auth/signup", authHandler.Signup)
	api.Post("/auth/login", authHandler.Login)

	// Rate-limited public endpoints
	api.Use(middleware.RateLimitMiddleware(rdb, cfg.RateLimitPerMinute, time.Minute))

	// Meta (public, no auth required)
	metaHandler := handlers.NewMetaHandler()
	api.Get("/meta/platforms", metaHandler.GetPlatforms)
	api.Get("/meta/formats", metaHandler.GetFormats)

	// Protected endpoints
	protected := api.Group("", middleware.AuthMiddleware(cfg, log))

	// User
	protected.Get("/me", userHandler.GetMe)
	protected.Post("/me/ping", userHandler.Ping)

	// Content drafts
	protected.Post("/drafts", draftHandler.CreateDraft)
	protected.Get("/drafts", draftHandler.ListDrafts)
	protected.Get("/drafts/:id", draftHandler.GetDraft)
	protected.Post("/drafts/:id/post", draftHandler.PostDraft)

	// Paid content
	protected.Post("/paid-content/generate", paidContentHandler.Generate)
	protected.Post("/paid-content/drafts", paidContentHandler.SaveDraft)
	protected.Get("/paid-content", paidContentHandler.List)

	// WebSocket
	app.Use("/ws", handlers.WSUpgradeMiddleware())
	app.Get("/ws", websocket.New(wsHub.HandleWS))
}
