package bookingRepo

import "wavehouse/models"

// BookingFilter narrows List and Count. Zero fields match everything.
type BookingFilter struct {
	Date        string
	Statuses    []string
	ServiceType string
	Email       string
}

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(b *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// List returns bookings matching the filter, newest first.
	List(filter BookingFilter) ([]models.Booking, error)
	// Count returns how many bookings match the filter.
	Count(filter BookingFilter) (int64, error)
	// UpdateStatus sets the status of a booking.
	UpdateStatus(id, status string) error
	// UpdatePayment records payment progress for a booking.
	UpdatePayment(id, paymentStatus string, amount float64, intentID string) error
	// Delete removes a booking record by its ID.
	Delete(id string) error
}
