package handlers_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"trailhead/internal/config"
	"trailhead/internal/http/handlers"
	applog "trailhead/internal/log"
	"trailhead/internal/repos"
)

func newFaultApp(t *testing.T, env string) *fiber.App {
	t.Helper()
	cfg := config.Config{DBDSN: ":memory:", Env: env}
	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			body := fiber.Map{"success": false, "message": "Internal Server Error"}
			if env != "production" {
				body["error"] = err.Error()
			}
			return c.Status(fiber.StatusInternalServerError).JSON(body)
		},
	})
	app.Use(requestid.New())

	deps := handlers.NewDeps(db, cfg)
	app.Get("/api/destinations", deps.DestinationHandler.List)

	// Breaking the connection turns every query into a store failure.
	_ = db.Close()
	return app
}

// A store failure in production must not leak internal detail.
func TestStoreFailureMaskedInProduction(t *testing.T) {
	app := newFaultApp(t, "production")

	resp, err := app.Test(httptest.NewRequest("GET", "/api/destinations", nil))
	if err != nil {
		t.Fatalf("test request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	s := string(body)
	if !strings.Contains(s, "Server Error") {
		t.Fatalf("friendly message missing; body=%s", s)
	}
	if strings.Contains(s, "database is closed") {
		t.Fatalf("internal details leaked to user; body=%s", s)
	}
}

func TestStoreFailureDetailInDevelopment(t *testing.T) {
	app := newFaultApp(t, "development")

	resp, err := app.Test(httptest.NewRequest("GET", "/api/destinations", nil))
	if err != nil {
		t.Fatalf("test request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
	env := decodeEnvelope(t, resp)
	if env.Success {
		t.Fatal("expected failure envelope")
	}
	if env.Error == "" {
		t.Fatal("development mode should include the internal error detail")
	}
}
