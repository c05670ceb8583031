package services

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"trailhead/internal/domain"
	"trailhead/internal/repos"
	"trailhead/internal/validate"
)

// cancelWindow is the minimum lead time before the activity for a
// cancellation to be accepted.
const cancelWindow = 24 * time.Hour

const cancelWindowMsg = "Bookings can only be cancelled at least 24 hours before the activity"

type CreateBookingInput struct {
	DestinationID   string
	Date            time.Time
	Participants    int
	Customer        domain.Customer
	PaymentMethod   string
	SpecialRequests string
}

type BookingService struct {
	Bookings *repos.BookingRepo
	Dests    *repos.DestinationRepo
}

func NewBookingService(bookings *repos.BookingRepo, dests *repos.DestinationRepo) *BookingService {
	return &BookingService{Bookings: bookings, Dests: dests}
}

func (in CreateBookingInput) validate() error {
	switch {
	case strings.TrimSpace(in.DestinationID) == "":
		return domain.Invalid("destinationId is required")
	case in.Date.IsZero():
		return domain.Invalid("date is required")
	case in.Participants < 1:
		return domain.Invalid("participants must be at least 1")
	case !domain.PaymentMethod(in.PaymentMethod).Valid():
		return domain.Invalid("paymentMethod must be one of credit_card, debit_card, paypal, stripe")
	case strings.TrimSpace(in.Customer.Name) == "":
		return domain.Invalid("user.name is required")
	}
	if _, ok := validate.Email(in.Customer.Email); !ok {
		return domain.Invalid("user.email must be a valid email address")
	}
	return nil
}

// Create validates the request against the catalog, snapshots the price
// (destination.price at this moment times participants) and persists a
// pending booking. Later price changes never touch existing bookings.
func (s *BookingService) Create(in CreateBookingInput) (domain.BookingDetail, error) {
	if err := in.validate(); err != nil {
		return domain.BookingDetail{}, err
	}

	dest, err := s.Dests.GetByID(in.DestinationID)
	if err != nil {
		return domain.BookingDetail{}, err
	}

	now := time.Now().UTC()
	b := domain.Booking{
		ID:              uuid.NewString(),
		DestinationID:   dest.ID,
		Date:            in.Date.UTC(),
		Participants:    in.Participants,
		Customer:        in.Customer,
		PaymentMethod:   domain.PaymentMethod(in.PaymentMethod),
		SpecialRequests: in.SpecialRequests,
		TotalPrice:      dest.Price * int64(in.Participants),
		BookingStatus:   domain.BookingPending,
		PaymentStatus:   domain.PaymentPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.Bookings.Create(b); err != nil {
		return domain.BookingDetail{}, err
	}

	return domain.BookingDetail{
		Booking: b,
		Destination: domain.DestinationRef{
			Title:    dest.Title,
			Location: dest.Location,
			Images:   dest.Images,
			Price:    dest.Price,
		},
	}, nil
}

func (s *BookingService) Get(id string) (domain.BookingDetail, error) {
	return s.Bookings.GetByID(id)
}

func (s *BookingService) ListByEmail(email string) ([]domain.BookingDetail, error) {
	return s.Bookings.ListByEmail(email)
}

// Cancel applies the 24-hour rule against the stored activity date, then
// flips the booking to cancelled/refunded. A second cancel re-runs the same
// check and rewrites the same terminal values; there is no short-circuit for
// already-cancelled bookings.
func (s *BookingService) Cancel(id string) (domain.Booking, error) {
	d, err := s.Bookings.GetByID(id)
	if err != nil {
		return domain.Booking{}, err
	}

	if time.Until(d.Date) < cancelWindow {
		return domain.Booking{}, &domain.PolicyViolation{Msg: cancelWindowMsg}
	}

	now := time.Now().UTC()
	if err := s.Bookings.MarkCancelled(id, now); err != nil {
		return domain.Booking{}, err
	}

	b := d.Booking
	b.BookingStatus = domain.BookingCancelled
	b.PaymentStatus = domain.PaymentRefunded
	b.UpdatedAt = now
	return b, nil
}
