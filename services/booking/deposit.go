package booking

import (
	"context"
	"fmt"
	"math"

	"wavehouse/models"

	"go.uber.org/zap"
)

// CreateDeposit opens a payment intent for the deposit of a studio booking.
func (s *DefaultBookingService) CreateDeposit(ctx context.Context, id string) (*models.Deposit, error) {
	if s.Payments == nil {
		return nil, ErrPaymentsDisabled
	}
	b, err := s.Bookings.GetByID(id)
	if err != nil {
		return nil, err
	}
	price := PriceFor(b.Duration)
	if b.ServiceType != models.ServiceStudioAccess || price == 0 || b.Status == models.StatusCancelled || b.PaymentStatus == models.PaymentPaid {
		return nil, ErrNoDeposit
	}

	amount := DepositFor(price, s.DepositRate)
	intentID, secret, err := s.Payments.CreateIntent(ctx, models.PaymentRequest{
		BookingID:   b.ID,
		Email:       b.Email,
		AmountCents: int64(math.Round(amount * 100)),
		Currency:    "usd",
		Description: fmt.Sprintf("Wave House deposit: %s at %s (%dh)", b.Date, b.Time, b.Duration),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}
	if err := s.Bookings.UpdatePayment(b.ID, models.PaymentDepositPending, amount, intentID); err != nil {
		return nil, err
	}
	s.logger.Info("deposit requested", zap.String("booking_id", b.ID), zap.Float64("amount", amount))

	return &models.Deposit{
		BookingID:       b.ID,
		PaymentIntentID: intentID,
		ClientSecret:    secret,
		Amount:          amount,
		Currency:        "usd",
	}, nil
}
