package handlers

import (
	"github.com/gofiber/fiber/v2"

	"trailhead/internal/domain"
	applog "trailhead/internal/log"
	"trailhead/internal/services"
	"trailhead/internal/validate"
)

type BookingHandler struct {
	Bookings *services.BookingService
	Expose   bool
}

type createBookingRequest struct {
	DestinationID   string          `json:"destinationId"`
	Date            string          `json:"date"`
	Participants    int             `json:"participants"`
	User            domain.Customer `json:"user"`
	PaymentMethod   string          `json:"paymentMethod"`
	SpecialRequests string          `json:"specialRequests"`
}

// Create handles POST /api/bookings.
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	var req createBookingRequest
	if err := c.BodyParser(&req); err != nil {
		applog.Security(c, "validation.fail", map[string]any{"field": "body"})
		return respondError(c, fiber.StatusBadRequest, "Malformed booking payload")
	}

	in := services.CreateBookingInput{
		DestinationID:   req.DestinationID,
		Participants:    req.Participants,
		Customer:        req.User,
		PaymentMethod:   req.PaymentMethod,
		SpecialRequests: req.SpecialRequests,
	}
	if req.Date != "" {
		date, ok := validate.Date(req.Date)
		if !ok {
			return respondError(c, fiber.StatusBadRequest, "date must be an RFC 3339 timestamp or YYYY-MM-DD")
		}
		in.Date = date
	}

	b, err := h.Bookings.Create(in)
	if err != nil {
		return respondDomainError(c, "bookings.create", err, h.Expose)
	}
	applog.Audit(c, "booking.create", map[string]any{
		"booking_id":  b.ID,
		"destination": b.DestinationID,
		"total_price": b.TotalPrice,
	})
	return respondCreated(c, b)
}

// Get handles GET /api/bookings/:id.
func (h *BookingHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return respondError(c, fiber.StatusNotFound, "Booking not found")
	}
	b, err := h.Bookings.Get(id)
	if err != nil {
		return respondDomainError(c, "bookings.get", err, h.Expose)
	}
	return respondOK(c, b)
}

// ByEmail handles GET /api/bookings/user/:email. The match is exact and
// case-sensitive against the stored snapshot.
func (h *BookingHandler) ByEmail(c *fiber.Ctx) error {
	email, ok := validate.Email(c.Params("email"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "email"})
		return respondError(c, fiber.StatusBadRequest, "Enter a valid email address")
	}
	items, err := h.Bookings.ListByEmail(email)
	if err != nil {
		return respondDomainError(c, "bookings.by_email", err, h.Expose)
	}
	return respondList(c, len(items), items)
}

// Cancel handles PUT /api/bookings/:id/cancel under the 24-hour rule.
func (h *BookingHandler) Cancel(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return respondError(c, fiber.StatusNotFound, "Booking not found")
	}
	b, err := h.Bookings.Cancel(id)
	if err != nil {
		return respondDomainError(c, "bookings.cancel", err, h.Expose)
	}
	applog.Audit(c, "booking.cancel", map[string]any{"booking_id": b.ID})
	return respondMessage(c, "Booking cancelled successfully", b)
}
