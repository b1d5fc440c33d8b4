package booking

import (
	"errors"
	"fmt"

	"wavehouse/database"
)

var (
	// ErrNotFound is returned when a booking does not exist.
	ErrNotFound = database.ErrNotFound
	// ErrSlotConflict is returned when the requested hours overlap a confirmed booking.
	ErrSlotConflict = errors.New("this time slot conflicts with an existing booking")
	// ErrSlotUnavailable is returned when one of the requested hours is blocked.
	ErrSlotUnavailable = errors.New("this time slot is not available")
	// ErrInvalidStatus is returned for status updates outside pending, confirmed and cancelled.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrPaymentsDisabled is returned when no payment gateway is configured.
	ErrPaymentsDisabled = errors.New("online payments are not enabled")
	// ErrNoDeposit is returned when a booking has no priced preset to take a deposit on.
	ErrNoDeposit = errors.New("booking has no deposit to pay")
)

// ValidationError reports a rejected field of a request.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
