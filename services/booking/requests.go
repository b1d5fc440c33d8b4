package booking

import (
	"context"
	"fmt"
	"strings"

	"wavehouse/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var requestKinds = map[string]string{
	models.ServiceEngineerRequest: models.NotifyEngineerRequest,
	models.ServiceMixingRequest:   models.NotifyMixingRequest,
}

// CreateServiceRequest stores an engineer or mixing request. Requests are never scheduled.
func (s *DefaultBookingService) CreateServiceRequest(ctx context.Context, kind string, in models.ServiceRequestInput) (*models.Booking, error) {
	notifyKind, ok := requestKinds[kind]
	if !ok {
		return nil, invalid("service_type", "unknown request type %q", kind)
	}
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	message := strings.TrimSpace(in.Message)
	if name == "" {
		return nil, invalid("name", "name is required")
	}
	if email == "" {
		return nil, invalid("email", "email is required")
	}
	if message == "" {
		return nil, invalid("message", "tell us about the project")
	}

	b := &models.Booking{
		ID:            uuid.New().String(),
		ServiceType:   kind,
		Name:          name,
		Email:         email,
		Phone:         strings.TrimSpace(in.Phone),
		ProjectType:   kind,
		Message:       message,
		Status:        models.StatusRequest,
		PaymentStatus: models.PaymentUnpaid,
		CreatedAt:     s.now(),
	}
	if err := s.Bookings.Create(b); err != nil {
		return nil, fmt.Errorf("failed to save %s: %w", kind, err)
	}
	s.logger.Info("service request created", zap.String("id", b.ID), zap.String("kind", kind))

	s.notify(ctx, models.Notification{
		Kind:      notifyKind,
		BookingID: b.ID,
		Name:      b.Name,
		Email:     b.Email,
		Phone:     b.Phone,
		Message:   b.Message,
	})
	return b, nil
}
