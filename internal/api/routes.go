package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupRoutes sets up all API routes
func SetupRoutes(app *fiber.App, handler *Handler) {
	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	// External cron triggers come from anywhere; the session limiter is the
	// only gate
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	// Service status
	app.Get("/", handler.GetStatus)

	// Run one orchestration cycle
	app.Post("/request", handler.RequestFunds)

	// Liveness probe
	app.Get("/health", handler.Health)

	// Balance lookup
	app.Get("/balance", handler.GetBalance)

	// Statistics
	app.Get("/stats", handler.GetStats)
}
