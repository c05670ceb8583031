package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"trailhead/internal/config"
	"trailhead/internal/http/handlers"
	"trailhead/internal/repos"
)

// newAPIApp wires the same route table as cmd/trailhead against a seeded
// in-memory database.
func newAPIApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := config.Config{DBDSN: ":memory:", Env: "development"}
	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	app := fiber.New()
	app.Use(requestid.New())

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

	return app
}

type envelope struct {
	Success bool            `json:"success"`
	Count   *int            `json:"count"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("decode envelope: %v body=%s", err, body)
	}
	return env
}

func decodeData(t *testing.T, env envelope, into any) {
	t.Helper()
	if err := json.Unmarshal(env.Data, into); err != nil {
		t.Fatalf("decode data: %v data=%s", err, env.Data)
	}
}
