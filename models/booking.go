package models

import "time"

// Booking statuses.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusRequest   = "request" // engineer and mixing requests, never scheduled
)

// Service types accepted by the booking endpoints.
const (
	ServiceStudioAccess    = "studio-access"
	ServiceEngineerRequest = "engineer-request"
	ServiceMixingRequest   = "mixing-request"
)

// Payment statuses.
const (
	PaymentUnpaid         = "unpaid"
	PaymentDepositPending = "deposit_pending"
	PaymentPaid           = "paid"
	PaymentRefunded       = "refunded"
)

// Booking represents a studio booking request or a service request.
type Booking struct {
	ID          string `bson:"id" json:"id"`
	ServiceType string `bson:"service_type" json:"service_type"`
	Date        string `bson:"date,omitempty" json:"date,omitempty"` // "2025-02-25"
	Start       int    `bson:"start" json:"start"`                   // minutes from midnight
	Time        string `bson:"time,omitempty" json:"time,omitempty"` // "2:00 PM"
	Duration    int    `bson:"duration,omitempty" json:"duration,omitempty"`
	Name        string `bson:"name" json:"name"`
	Email       string `bson:"email" json:"email"`
	Phone       string `bson:"phone,omitempty" json:"phone,omitempty"`
	ProjectType string `bson:"project_type,omitempty" json:"project_type,omitempty"`
	Message     string `bson:"message,omitempty" json:"message,omitempty"`
	Status      string `bson:"status" json:"status"`

	ClientID              string `bson:"client_id,omitempty" json:"client_id,omitempty"`
	RequiresVerification  bool   `bson:"requires_verification" json:"requires_verification"`
	VerificationCompleted bool   `bson:"verification_completed" json:"verification_completed"`

	PaymentStatus   string  `bson:"payment_status" json:"payment_status"`
	PaymentAmount   float64 `bson:"payment_amount,omitempty" json:"payment_amount,omitempty"`
	PaymentIntentID string  `bson:"payment_intent_id,omitempty" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// BookingInput is the payload of POST /api/bookings.
type BookingInput struct {
	ServiceType string `json:"service_type" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Duration    int    `json:"duration"`
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone"`
	ProjectType string `json:"project_type"`
	Message     string `json:"message"`
}

// ServiceRequestInput is the payload of the engineer and mixing request endpoints.
type ServiceRequestInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required"`
}

// BookingStatusInput is the payload of PUT /api/admin/bookings/:id.
type BookingStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// BookingResult is returned when a booking request is accepted.
type BookingResult struct {
	Booking              *Booking `json:"booking"`
	RequiresVerification bool     `json:"requires_verification"`
	ClientID             string   `json:"client_id"`
}
