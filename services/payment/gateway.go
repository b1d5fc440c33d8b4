package payment

import (
	"context"
	"errors"
	"fmt"

	"wavehouse/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// Gateway creates payment intents for booking deposits.
type Gateway interface {
	CreateIntent(ctx context.Context, req models.PaymentRequest) (intentID, clientSecret string, err error)
}

// StripeGateway implements Gateway with Stripe PaymentIntents. stripe.Key must be set.
type StripeGateway struct{}

func NewStripeGateway(key string) (*StripeGateway, error) {
	if key == "" {
		return nil, errors.New("stripe key not configured")
	}
	stripe.Key = key
	return &StripeGateway{}, nil
}

func (g *StripeGateway) CreateIntent(ctx context.Context, req models.PaymentRequest) (string, string, error) {
	if req.AmountCents <= 0 {
		return "", "", fmt.Errorf("invalid amount %d", req.AmountCents)
	}
	currency := req.Currency
	if currency == "" {
		currency = string(stripe.CurrencyUSD)
	}

	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(req.AmountCents),
		Currency:    stripe.String(currency),
		Description: stripe.String(req.Description),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	if req.Email != "" {
		params.ReceiptEmail = stripe.String(req.Email)
	}
	params.Context = ctx
	params.AddMetadata("booking_id", req.BookingID)

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", "", err
	}
	return pi.ID, pi.ClientSecret, nil
}
