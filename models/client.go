package models

import "time"

// Client verification statuses.
const (
	VerificationPending      = "pending"
	VerificationVerified     = "verified"
	VerificationFailed       = "failed"
	VerificationManualReview = "manual_review"
)

// Client is a person who has booked the studio, keyed by email.
type Client struct {
	ID                 string     `bson:"id" json:"id"`
	Email              string     `bson:"email" json:"email"`
	Name               string     `bson:"name" json:"name"`
	Phone              string     `bson:"phone,omitempty" json:"phone,omitempty"`
	IsVerified         bool       `bson:"is_verified" json:"is_verified"`
	VerificationStatus string     `bson:"verification_status" json:"verification_status"`
	VerificationDate   *time.Time `bson:"verification_date,omitempty" json:"verification_date,omitempty"`
	FirstBookingDate   *time.Time `bson:"first_booking_date,omitempty" json:"first_booking_date,omitempty"`
	TotalBookings      int        `bson:"total_bookings" json:"total_bookings"`
	TotalSpent         float64    `bson:"total_spent" json:"total_spent"`
	AdminNotes         string     `bson:"admin_notes,omitempty" json:"admin_notes,omitempty"`
	IsFlagged          bool       `bson:"is_flagged" json:"is_flagged"`
	FlagReason         string     `bson:"flag_reason,omitempty" json:"flag_reason,omitempty"`
	CreatedAt          time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time  `bson:"updated_at" json:"updated_at"`
}

// NeedsVerification reports whether the client must verify their ID before booking.
func (c *Client) NeedsVerification() bool {
	if c.IsVerified {
		return false
	}
	return c.VerificationStatus == VerificationPending || c.VerificationStatus == VerificationFailed
}

// RecordBooking updates the booking counters.
func (c *Client) RecordBooking(amount float64, now time.Time) {
	c.TotalBookings++
	c.TotalSpent += amount
	if c.FirstBookingDate == nil {
		c.FirstBookingDate = &now
	}
	c.UpdatedAt = now
}

// ClientVerificationInput is the payload of POST /api/admin/clients/:id/verify.
type ClientVerificationInput struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}
