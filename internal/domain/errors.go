package domain

import "errors"

var (
	ErrDestinationNotFound = errors.New("destination not found")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrSlugTaken           = errors.New("slug already in use")
)

// ValidationError marks malformed or out-of-range input. Never retried.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Invalid(msg string) error { return &ValidationError{Msg: msg} }

// PolicyViolation marks a well-formed request rejected by a business rule,
// e.g. cancelling inside the 24-hour window.
type PolicyViolation struct {
	Msg string
}

func (e *PolicyViolation) Error() string { return e.Msg }
