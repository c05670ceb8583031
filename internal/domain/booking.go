package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

type PaymentMethod string

const (
	PayCreditCard PaymentMethod = "credit_card"
	PayDebitCard  PaymentMethod = "debit_card"
	PayPaypal     PaymentMethod = "paypal"
	PayStripe     PaymentMethod = "stripe"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PayCreditCard, PayDebitCard, PayPaypal, PayStripe:
		return true
	}
	return false
}

// Customer is embedded in a booking as a snapshot of who booked, not a
// reference to a user record. Later profile changes never rewrite it.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type Booking struct {
	ID              string        `json:"id"`
	DestinationID   string        `json:"destinationId"`
	Date            time.Time     `json:"date"`
	Participants    int           `json:"participants"`
	Customer        Customer      `json:"user"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	SpecialRequests string        `json:"specialRequests,omitempty"`
	TotalPrice      int64         `json:"totalPrice"`
	BookingStatus   BookingStatus `json:"bookingStatus"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

// BookingDetail joins a booking with the projection of its destination.
type BookingDetail struct {
	Booking
	Destination DestinationRef `json:"destination"`
}
