package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"trailhead/internal/domain"
	applog "trailhead/internal/log"
	"trailhead/internal/services"
	"trailhead/internal/validate"
)

type DestinationHandler struct {
	Catalog *services.CatalogService
	Expose  bool
}

func (h *DestinationHandler) textQuery(c *fiber.Ctx, param string) (string, bool, error) {
	raw := strings.TrimSpace(c.Query(param))
	if raw == "" {
		return "", true, nil
	}
	q, ok := validate.Q(raw)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": param, "value": raw})
		return "", false, respondError(c, fiber.StatusBadRequest, "Enter a valid search keyword")
	}
	return q, true, nil
}

// List handles GET /api/destinations: a plain listing with optional
// category/difficulty/featured/search narrowing.
func (h *DestinationHandler) List(c *fiber.Ctx) error {
	f := domain.SearchFilter{
		Category:   strings.TrimSpace(c.Query("category")),
		Difficulty: strings.TrimSpace(c.Query("difficulty")),
	}
	q, ok, errResp := h.textQuery(c, "search")
	if !ok {
		return errResp
	}
	f.Query = q

	if raw := strings.TrimSpace(c.Query("featured")); raw != "" {
		featured := raw == "true"
		f.Featured = &featured
	}

	items, err := h.Catalog.Browse(f)
	if err != nil {
		return respondDomainError(c, "destinations.list", err, h.Expose)
	}
	return respondList(c, len(items), items)
}

// Search handles GET /api/destinations/search with the full criteria set.
func (h *DestinationHandler) Search(c *fiber.Ctx) error {
	f := domain.SearchFilter{
		Category:   strings.TrimSpace(c.Query("category")),
		Difficulty: strings.TrimSpace(c.Query("difficulty")),
	}
	q, ok, errResp := h.textQuery(c, "query")
	if !ok {
		return errResp
	}
	f.Query = q

	if raw := strings.TrimSpace(c.Query("minPrice")); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return respondError(c, fiber.StatusBadRequest, "minPrice must be a whole number")
		}
		f.MinPrice = &n
	}
	if raw := strings.TrimSpace(c.Query("maxPrice")); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return respondError(c, fiber.StatusBadRequest, "maxPrice must be a whole number")
		}
		f.MaxPrice = &n
	}
	if raw := strings.TrimSpace(c.Query("minRating")); raw != "" {
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return respondError(c, fiber.StatusBadRequest, "minRating must be a number")
		}
		f.MinRating = &n
	}

	items, err := h.Catalog.Browse(f)
	if err != nil {
		return respondDomainError(c, "destinations.search", err, h.Expose)
	}
	return respondList(c, len(items), items)
}

// GetBySlug handles GET /api/destinations/:slug and returns the full entity,
// including the fields list responses omit.
func (h *DestinationHandler) GetBySlug(c *fiber.Ctx) error {
	slug, ok := validate.Slug(c.Params("slug"))
	if !ok {
		return respondError(c, fiber.StatusNotFound, "Destination not found")
	}
	d, err := h.Catalog.GetBySlug(slug)
	if err != nil {
		return respondDomainError(c, "destinations.get", err, h.Expose)
	}
	return respondOK(c, d)
}
