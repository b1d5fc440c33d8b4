package models

// Deposit describes a payment intent created for a booking deposit.
type Deposit struct {
	BookingID       string  `json:"booking_id"`
	PaymentIntentID string  `json:"payment_intent_id"`
	ClientSecret    string  `json:"client_secret"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
}

// PaymentRequest is what the payment gateway is asked to charge.
type PaymentRequest struct {
	BookingID   string
	Email       string
	AmountCents int64
	Currency    string
	Description string
}
