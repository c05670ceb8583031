package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"trailhead/internal/domain"
	applog "trailhead/internal/log"
	"trailhead/internal/services"
	"trailhead/internal/validate"
)

// AdminHandler owns catalog management: creating listings and updating them
// in place (including toggling available to retire a listing).
type AdminHandler struct {
	Catalog *services.CatalogService
	Expose  bool
}

// CreateDestination handles POST /api/destinations.
func (h *AdminHandler) CreateDestination(c *fiber.Ctx) error {
	var d domain.Destination
	if err := json.Unmarshal(c.Body(), &d); err != nil {
		applog.Security(c, "validation.fail", map[string]any{"field": "body"})
		return respondError(c, fiber.StatusBadRequest, "Malformed destination payload")
	}
	if _, ok := validate.Slug(d.Slug); !ok {
		return respondError(c, fiber.StatusBadRequest, "slug must be lowercase letters, digits and hyphens")
	}
	created, err := h.Catalog.Create(d)
	if err != nil {
		return respondDomainError(c, "destinations.create", err, h.Expose)
	}
	applog.Audit(c, "destination.create", map[string]any{"id": created.ID, "slug": created.Slug})
	return respondCreated(c, created)
}

// UpdateDestination handles PUT /api/destinations/:id. The body is a partial
// patch; id, slug and createdAt never change.
func (h *AdminHandler) UpdateDestination(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return respondError(c, fiber.StatusNotFound, "Destination not found")
	}
	if !json.Valid(c.Body()) {
		applog.Security(c, "validation.fail", map[string]any{"field": "body"})
		return respondError(c, fiber.StatusBadRequest, "Malformed destination payload")
	}
	updated, err := h.Catalog.Update(id, c.Body())
	if err != nil {
		return respondDomainError(c, "destinations.update", err, h.Expose)
	}
	applog.Audit(c, "destination.update", map[string]any{"id": updated.ID})
	return respondOK(c, updated)
}
