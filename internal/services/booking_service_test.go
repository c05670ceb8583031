package services_test

import (
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trailhead/internal/domain"
	"trailhead/internal/repos"
	"trailhead/internal/services"
)

type bookingFixture struct {
	db       *sqlx.DB
	catalog  *services.CatalogService
	bookings *services.BookingService
}

func newBookingFixture(t *testing.T) bookingFixture {
	t.Helper()
	db := memdb(t)
	dests := repos.NewDestinationRepo(db)
	f := bookingFixture{
		db:       db,
		catalog:  services.NewCatalogService(dests),
		bookings: services.NewBookingService(repos.NewBookingRepo(db), dests),
	}
	_, err := f.catalog.Create(domain.Destination{
		ID: "d-kayak", Slug: "kayaking", Title: "Kayaking Adventure", Location: "Udupi, Karnataka",
		Price: 999, Rating: 4.8, Category: "Water Sports", Difficulty: domain.DifficultyBeginner,
		Description: "Backwater paddling",
		Images:      []domain.Image{{URL: "https://img.example/kayak.jpg"}},
		Available:   true,
	})
	require.NoError(t, err)
	return f
}

func validInput(date time.Time) services.CreateBookingInput {
	return services.CreateBookingInput{
		DestinationID: "d-kayak",
		Date:          date,
		Participants:  2,
		Customer:      domain.Customer{Name: "Asha Rao", Email: "asha@example.com", Phone: "+91-9000000000"},
		PaymentMethod: "credit_card",
	}
}

func TestCreateBooking_SnapshotsPrice(t *testing.T) {
	f := newBookingFixture(t)

	detail, err := f.bookings.Create(validInput(time.Now().Add(72 * time.Hour)))
	require.NoError(t, err)

	assert.Equal(t, int64(1998), detail.TotalPrice)
	assert.Equal(t, domain.BookingPending, detail.BookingStatus)
	assert.Equal(t, domain.PaymentPending, detail.PaymentStatus)
	assert.Equal(t, "Kayaking Adventure", detail.Destination.Title)

	// Raising the catalog price later must not touch the stored total.
	_, err = f.catalog.Update("d-kayak", []byte(`{"price":5000}`))
	require.NoError(t, err)

	got, err := f.bookings.Get(detail.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1998), got.TotalPrice)
	assert.Equal(t, int64(5000), got.Destination.Price) // joined ref reflects the catalog
}

func TestCreateBooking_UnknownDestination(t *testing.T) {
	f := newBookingFixture(t)

	in := validInput(time.Now().Add(72 * time.Hour))
	in.DestinationID = "d-missing"
	_, err := f.bookings.Create(in)
	assert.ErrorIs(t, err, domain.ErrDestinationNotFound)
}

func TestCreateBooking_ValidationFailures(t *testing.T) {
	f := newBookingFixture(t)
	date := time.Now().Add(72 * time.Hour)

	cases := map[string]func(*services.CreateBookingInput){
		"no destination":  func(in *services.CreateBookingInput) { in.DestinationID = " " },
		"zero date":       func(in *services.CreateBookingInput) { in.Date = time.Time{} },
		"no participants": func(in *services.CreateBookingInput) { in.Participants = 0 },
		"bad payment":     func(in *services.CreateBookingInput) { in.PaymentMethod = "cash" },
		"no name":         func(in *services.CreateBookingInput) { in.Customer.Name = "" },
		"bad email":       func(in *services.CreateBookingInput) { in.Customer.Email = "not-an-email" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := validInput(date)
			mutate(&in)
			_, err := f.bookings.Create(in)
			var ve *domain.ValidationError
			assert.ErrorAs(t, err, &ve)
		})
	}
}

func TestCancel_OutsideWindow(t *testing.T) {
	f := newBookingFixture(t)

	detail, err := f.bookings.Create(validInput(time.Now().Add(30 * time.Hour)))
	require.NoError(t, err)

	b, err := f.bookings.Cancel(detail.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, b.BookingStatus)
	assert.Equal(t, domain.PaymentRefunded, b.PaymentStatus)

	got, err := f.bookings.Get(detail.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, got.BookingStatus)
	assert.Equal(t, domain.PaymentRefunded, got.PaymentStatus)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt) || got.UpdatedAt.Equal(got.CreatedAt))
}

func TestCancel_InsideWindowRejected(t *testing.T) {
	f := newBookingFixture(t)

	detail, err := f.bookings.Create(validInput(time.Now().Add(10 * time.Hour)))
	require.NoError(t, err)

	_, err = f.bookings.Cancel(detail.ID)
	var pv *domain.PolicyViolation
	require.ErrorAs(t, err, &pv)
	assert.Equal(t, "Bookings can only be cancelled at least 24 hours before the activity", pv.Msg)

	// Rejected cancellation leaves the booking untouched.
	got, err := f.bookings.Get(detail.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingPending, got.BookingStatus)
	assert.Equal(t, domain.PaymentPending, got.PaymentStatus)
}

func TestCancel_IsRepeatable(t *testing.T) {
	f := newBookingFixture(t)

	detail, err := f.bookings.Create(validInput(time.Now().Add(72 * time.Hour)))
	require.NoError(t, err)

	_, err = f.bookings.Cancel(detail.ID)
	require.NoError(t, err)

	// The date is still far enough out, so a second cancel succeeds with
	// the same terminal state.
	b, err := f.bookings.Cancel(detail.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, b.BookingStatus)
	assert.Equal(t, domain.PaymentRefunded, b.PaymentStatus)
}

func TestCancel_UnknownBooking(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.bookings.Cancel("b-missing")
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestListByEmail_NewestFirstExactMatch(t *testing.T) {
	f := newBookingFixture(t)

	first, err := f.bookings.Create(validInput(time.Now().Add(48 * time.Hour)))
	require.NoError(t, err)
	second, err := f.bookings.Create(validInput(time.Now().Add(96 * time.Hour)))
	require.NoError(t, err)

	other := validInput(time.Now().Add(48 * time.Hour))
	other.Customer.Email = "someone.else@example.com"
	_, err = f.bookings.Create(other)
	require.NoError(t, err)

	got, err := f.bookings.ListByEmail("asha@example.com")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, second.ID, got[0].ID)
	assert.Equal(t, first.ID, got[1].ID)
	assert.Equal(t, "Kayaking Adventure", got[0].Destination.Title)

	empty, err := f.bookings.ListByEmail("nobody@example.com")
	require.NoError(t, err)
	assert.Len(t, empty, 0)
}
