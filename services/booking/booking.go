package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"wavehouse/database"
	"wavehouse/database/repository"
	"wavehouse/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking validates a studio booking request, checks it against confirmed
// bookings and blocked hours, upserts the client and stores the booking as pending.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, in models.BookingInput) (*models.BookingResult, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if name == "" {
		return nil, invalid("name", "name is required")
	}
	if email == "" {
		return nil, invalid("email", "email is required")
	}
	if _, ok := ServiceByID(in.ServiceType); !ok {
		return nil, invalid("service_type", "unknown service %q", in.ServiceType)
	}
	if _, err := ParseDate(in.Date); err != nil {
		return nil, err
	}
	start, err := ParseClock(in.Time)
	if err != nil {
		return nil, err
	}
	if in.Duration < 0 {
		return nil, invalid("duration", "duration cannot be negative")
	}
	if in.ServiceType == models.ServiceStudioAccess && PriceFor(in.Duration) == 0 {
		return nil, invalid("duration", "studio access is booked in 4, 6, 8, 12 or 24 hour blocks")
	}
	date := strings.TrimSpace(in.Date)

	if err := s.checkConflicts(date, start, in.Duration); err != nil {
		return nil, err
	}

	client, requiresVerification, err := s.upsertClient(name, email, strings.TrimSpace(in.Phone))
	if err != nil {
		return nil, err
	}

	b := &models.Booking{
		ID:                    uuid.New().String(),
		ServiceType:           in.ServiceType,
		Date:                  date,
		Start:                 start,
		Time:                  FormatClock(start),
		Duration:              in.Duration,
		Name:                  name,
		Email:                 email,
		Phone:                 strings.TrimSpace(in.Phone),
		ProjectType:           strings.TrimSpace(in.ProjectType),
		Message:               strings.TrimSpace(in.Message),
		Status:                models.StatusPending,
		ClientID:              client.ID,
		RequiresVerification:  requiresVerification,
		VerificationCompleted: !requiresVerification,
		PaymentStatus:         models.PaymentUnpaid,
		CreatedAt:             s.now(),
	}
	if err := s.Bookings.Create(b); err != nil {
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}
	s.logger.Info("booking created",
		zap.String("id", b.ID), zap.String("date", b.Date), zap.String("time", b.Time),
		zap.Int("duration", b.Duration), zap.Bool("requires_verification", requiresVerification))

	if !requiresVerification {
		client.RecordBooking(PriceFor(b.Duration), s.now())
		if err := s.Clients.Update(client); err != nil {
			s.logger.Warn("failed to update client stats", zap.String("client_id", client.ID), zap.Error(err))
		}
	}

	s.notify(ctx, models.Notification{
		Kind:        models.NotifyStudioAccess,
		BookingID:   b.ID,
		Name:        b.Name,
		Email:       b.Email,
		Phone:       b.Phone,
		Date:        b.Date,
		Time:        b.Time,
		Duration:    b.Duration,
		ProjectType: b.ProjectType,
		Message:     b.Message,
	})

	return &models.BookingResult{Booking: b, RequiresVerification: requiresVerification, ClientID: client.ID}, nil
}

// checkConflicts rejects a session when any of its hours is blocked or overlaps a confirmed booking.
func (s *DefaultBookingService) checkConflicts(date string, start, duration int) error {
	end := sessionEnd(start, duration)

	confirmed, err := s.Bookings.List(repository.BookingFilter{Date: date, Statuses: []string{models.StatusConfirmed}})
	if err != nil {
		return fmt.Errorf("failed to load bookings for %s: %w", date, err)
	}
	for _, existing := range confirmed {
		if overlaps(start, end, existing.Start, sessionEnd(existing.Start, existing.Duration)) {
			return ErrSlotConflict
		}
	}

	blocked, err := s.BlockedSlots.ListByDate(date)
	if err != nil {
		return fmt.Errorf("failed to load blocked slots for %s: %w", date, err)
	}
	for _, slot := range blocked {
		if overlaps(start, end, slot.Start, sessionEnd(slot.Start, 1)) {
			return ErrSlotUnavailable
		}
	}
	return nil
}

// upsertClient returns the client for email, creating it when new. New clients always need verification.
func (s *DefaultBookingService) upsertClient(name, email, phone string) (*models.Client, bool, error) {
	client, err := s.Clients.GetByEmail(email)
	if errors.Is(err, database.ErrNotFound) {
		client = &models.Client{
			ID:                 uuid.New().String(),
			Email:              email,
			Name:               name,
			Phone:              phone,
			VerificationStatus: models.VerificationPending,
		}
		if err := s.Clients.Create(client); err != nil {
			return nil, false, fmt.Errorf("failed to create client: %w", err)
		}
		return client, true, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to look up client: %w", err)
	}

	changed := false
	if client.Name != name {
		client.Name = name
		changed = true
	}
	if phone != "" && client.Phone != phone {
		client.Phone = phone
		changed = true
	}
	if changed {
		if err := s.Clients.Update(client); err != nil {
			return nil, false, fmt.Errorf("failed to update client: %w", err)
		}
	}
	return client, client.NeedsVerification(), nil
}

// ListBookings returns every booking, newest first.
func (s *DefaultBookingService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return s.Bookings.List(repository.BookingFilter{})
}

// UpdateStatus moves a booking to pending, confirmed or cancelled.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error) {
	switch status {
	case models.StatusPending, models.StatusConfirmed, models.StatusCancelled:
	default:
		return nil, ErrInvalidStatus
	}
	if err := s.Bookings.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	b, err := s.Bookings.GetByID(id)
	if err != nil {
		return nil, err
	}
	s.Cache.Invalidate(ctx, b.Date)
	s.logger.Info("booking status updated", zap.String("id", id), zap.String("status", status))
	return b, nil
}

// DeleteBooking removes a booking.
func (s *DefaultBookingService) DeleteBooking(ctx context.Context, id string) error {
	b, err := s.Bookings.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.Bookings.Delete(id); err != nil {
		return err
	}
	s.Cache.Invalidate(ctx, b.Date)
	s.logger.Info("booking deleted", zap.String("id", id))
	return nil
}
