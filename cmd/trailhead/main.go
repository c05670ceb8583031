package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"trailhead/internal/config"
	"trailhead/internal/http/handlers"
	applog "trailhead/internal/log"
	"trailhead/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			body := fiber.Map{"success": false, "message": "Internal Server Error"}
			if !cfg.Production() {
				body["error"] = err.Error()
			}
			return c.Status(fiber.StatusInternalServerError).JSON(body)
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 10 << 20 // 10 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	// Origin policy lives entirely here; nothing below ever looks at it.
	app.Use(cors.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.limit.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false, "message": "rate limit exceeded, retry soon",
			})
		},
	}))

	// ---------- Routes ----------
	deps := handlers.NewDeps(db, cfg)

	api := app.Group("/api")

	dest := api.Group("/destinations")
	dest.Get("/", deps.DestinationHandler.List)
	dest.Get("/search", deps.DestinationHandler.Search)
	dest.Post("/", deps.AdminHandler.CreateDestination)
	dest.Put("/:id", deps.AdminHandler.UpdateDestination)
	dest.Get("/:slug", deps.DestinationHandler.GetBySlug)

	bookings := api.Group("/bookings")
	bookings.Post("/", deps.BookingHandler.Create)
	bookings.Get("/user/:email", deps.BookingHandler.ByEmail)
	bookings.Get("/:id", deps.BookingHandler.Get)
	bookings.Put("/:id/cancel", deps.BookingHandler.Cancel)

	// Health & 404
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success":   true,
			"message":   "Server is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false, "message": "Route not found",
		})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
