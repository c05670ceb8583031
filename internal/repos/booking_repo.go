package repos

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"trailhead/internal/domain"
)

type BookingRepo struct{ db *sqlx.DB }

func NewBookingRepo(db *sqlx.DB) *BookingRepo { return &BookingRepo{db: db} }

// bookingRow carries a booking plus the joined destination projection
// (title, location, images, price).
type bookingRow struct {
	ID              string `db:"id"`
	DestinationID   string `db:"destination_id"`
	ActivityDate    string `db:"activity_date"`
	Participants    int    `db:"participants"`
	CustomerName    string `db:"customer_name"`
	CustomerEmail   string `db:"customer_email"`
	CustomerPhone   string `db:"customer_phone"`
	PaymentMethod   string `db:"payment_method"`
	SpecialRequests string `db:"special_requests"`
	TotalPrice      int64  `db:"total_price"`
	BookingStatus   string `db:"booking_status"`
	PaymentStatus   string `db:"payment_status"`
	CreatedAt       string `db:"created_at"`
	UpdatedAt       string `db:"updated_at"`

	DestTitle      string `db:"dest_title"`
	DestLocation   string `db:"dest_location"`
	DestImagesJSON string `db:"dest_images_json"`
	DestPrice      int64  `db:"dest_price"`
}

const bookingCols = `
  b.id, b.destination_id, b.activity_date, b.participants,
  b.customer_name, b.customer_email, COALESCE(b.customer_phone,'') AS customer_phone,
  b.payment_method, COALESCE(b.special_requests,'') AS special_requests,
  b.total_price, b.booking_status, b.payment_status, b.created_at, b.updated_at,
  d.title AS dest_title, d.location AS dest_location,
  d.images_json AS dest_images_json, d.price AS dest_price`

func parseTS(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func (r bookingRow) detail() domain.BookingDetail {
	return domain.BookingDetail{
		Booking: domain.Booking{
			ID:            r.ID,
			DestinationID: r.DestinationID,
			Date:          parseTS(r.ActivityDate),
			Participants:  r.Participants,
			Customer: domain.Customer{
				Name:  r.CustomerName,
				Email: r.CustomerEmail,
				Phone: r.CustomerPhone,
			},
			PaymentMethod:   domain.PaymentMethod(r.PaymentMethod),
			SpecialRequests: r.SpecialRequests,
			TotalPrice:      r.TotalPrice,
			BookingStatus:   domain.BookingStatus(r.BookingStatus),
			PaymentStatus:   domain.PaymentStatus(r.PaymentStatus),
			CreatedAt:       parseTS(r.CreatedAt),
			UpdatedAt:       parseTS(r.UpdatedAt),
		},
		Destination: domain.DestinationRef{
			Title:    r.DestTitle,
			Location: r.DestLocation,
			Images:   fromJSON[domain.Image](r.DestImagesJSON),
			Price:    r.DestPrice,
		},
	}
}

func (r *BookingRepo) Create(b domain.Booking) error {
	_, err := r.db.Exec(`
	  INSERT INTO bookings(
	    id, destination_id, activity_date, participants,
	    customer_name, customer_email, customer_phone,
	    payment_method, special_requests, total_price,
	    booking_status, payment_status, created_at, updated_at
	  ) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)
	`, b.ID, b.DestinationID, b.Date.UTC().Format(time.RFC3339Nano), b.Participants,
		b.Customer.Name, b.Customer.Email, b.Customer.Phone,
		string(b.PaymentMethod), b.SpecialRequests, b.TotalPrice,
		string(b.BookingStatus), string(b.PaymentStatus),
		b.CreatedAt.UTC().Format(time.RFC3339Nano), b.UpdatedAt.UTC().Format(time.RFC3339Nano))
	return err
}

func (r *BookingRepo) GetByID(id string) (domain.BookingDetail, error) {
	var row bookingRow
	err := r.db.Get(&row, `
	  SELECT `+bookingCols+`
	  FROM bookings b
	  JOIN destinations d ON d.id = b.destination_id
	  WHERE b.id = ?
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.BookingDetail{}, domain.ErrBookingNotFound
	}
	if err != nil {
		return domain.BookingDetail{}, err
	}
	return row.detail(), nil
}

// ListByEmail matches the stored customer email exactly (case-sensitive).
func (r *BookingRepo) ListByEmail(email string) ([]domain.BookingDetail, error) {
	var rows []bookingRow
	err := r.db.Select(&rows, `
	  SELECT `+bookingCols+`
	  FROM bookings b
	  JOIN destinations d ON d.id = b.destination_id
	  WHERE b.customer_email = ?
	  ORDER BY datetime(b.created_at) DESC, b.rowid DESC
	`, email)
	if err != nil {
		return nil, err
	}
	out := make([]domain.BookingDetail, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.detail())
	}
	return out, nil
}

// MarkCancelled flips booking_status and payment_status together in a single
// statement; the pairing is atomic under SQLite's single-write guarantee.
func (r *BookingRepo) MarkCancelled(id string, now time.Time) error {
	res, err := r.db.Exec(`
	  UPDATE bookings
	  SET booking_status = 'cancelled', payment_status = 'refunded', updated_at = ?
	  WHERE id = ?
	`, now.UTC().Format(time.RFC3339Nano), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}
