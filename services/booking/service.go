package booking

import (
	"context"
	"time"

	"wavehouse/database/repository"
	"wavehouse/models"
	"wavehouse/services/notification"
	"wavehouse/services/payment"

	"go.uber.org/zap"
)

// BookingService covers the public booking flow and the admin booking views.
type BookingService interface {
	CreateBooking(ctx context.Context, in models.BookingInput) (*models.BookingResult, error)
	CreateServiceRequest(ctx context.Context, kind string, in models.ServiceRequestInput) (*models.Booking, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error)
	DeleteBooking(ctx context.Context, id string) error
	Availability(ctx context.Context, date string) (map[string][]string, error)
	CreateDeposit(ctx context.Context, id string) (*models.Deposit, error)
}

// DefaultBookingService implements BookingService on top of the repositories.
type DefaultBookingService struct {
	Bookings     repository.BookingRepository
	BlockedSlots repository.BlockedSlotRepository
	Clients      repository.ClientRepository
	Notifier     notification.Notifier
	Payments     payment.Gateway // nil disables deposits
	Cache        AvailabilityCache
	DepositRate  float64

	logger *zap.Logger
	now    func() time.Time
}

func NewBookingService(repos repository.Repositories, notifier notification.Notifier, payments payment.Gateway, cache AvailabilityCache, depositRate float64) *DefaultBookingService {
	if cache == nil {
		cache = NoopCache{}
	}
	return &DefaultBookingService{
		Bookings:     repos.Bookings,
		BlockedSlots: repos.BlockedSlots,
		Clients:      repos.Clients,
		Notifier:     notifier,
		Payments:     payments,
		Cache:        cache,
		DepositRate:  depositRate,
		logger:       zap.L().Named("booking"),
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// notify dispatches a notification; failures are logged and never surface to the caller.
func (s *DefaultBookingService) notify(ctx context.Context, n models.Notification) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.Notify(ctx, n); err != nil {
		s.logger.Warn("notification failed", zap.String("kind", n.Kind), zap.String("email", n.Email), zap.Error(err))
	}
}
