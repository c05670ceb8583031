package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"trailhead/internal/domain"
	applog "trailhead/internal/log"
)

// Every response carries a success boolean; failures add a human-readable
// message and, outside production, the internal error detail.

func respondOK(c *fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{"success": true, "data": data})
}

func respondCreated(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": data})
}

func respondList(c *fiber.Ctx, count int, data any) error {
	return c.JSON(fiber.Map{"success": true, "count": count, "data": data})
}

func respondMessage(c *fiber.Ctx, msg string, data any) error {
	return c.JSON(fiber.Map{"success": true, "message": msg, "data": data})
}

func respondError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "message": msg})
}

func respondFault(c *fiber.Ctx, msg string, err error, expose bool) error {
	body := fiber.Map{"success": false, "message": msg}
	if expose && err != nil {
		body["error"] = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(body)
}

// respondDomainError maps the error taxonomy onto status codes: NotFound to
// 404, validation and policy rejections to 400, anything else to a 500
// store-failure envelope.
func respondDomainError(c *fiber.Ctx, action string, err error, expose bool) error {
	var ve *domain.ValidationError
	var pv *domain.PolicyViolation
	switch {
	case errors.Is(err, domain.ErrDestinationNotFound):
		return respondError(c, fiber.StatusNotFound, "Destination not found")
	case errors.Is(err, domain.ErrBookingNotFound):
		return respondError(c, fiber.StatusNotFound, "Booking not found")
	case errors.Is(err, domain.ErrSlugTaken):
		return respondError(c, fiber.StatusBadRequest, "A destination with this slug already exists")
	case errors.As(err, &ve):
		return respondError(c, fiber.StatusBadRequest, ve.Msg)
	case errors.As(err, &pv):
		return respondError(c, fiber.StatusBadRequest, pv.Msg)
	default:
		applog.Error(c, action, err, nil)
		return respondFault(c, "Server Error", err, expose)
	}
}
