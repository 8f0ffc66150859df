package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// PaymentIntent is the gateway-side view of a payment intent.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Status       string
}

// CreateIntentRequest describes a payment intent to open with the processor.
// Amount is in major currency units; the gateway converts to minor units.
type CreateIntentRequest struct {
	Amount      decimal.Decimal
	Currency    string
	CustomerID  string
	Description string
	UserID      string
	PaymentType string
	ShipmentID  string
}

// PaymentGateway abstracts the external payment processor.
type PaymentGateway interface {
	// CreateCustomer registers a customer with the processor and returns the
	// processor's customer identifier.
	CreateCustomer(ctx context.Context, email, name string) (string, error)

	// CreateIntent opens a payment intent with the processor.
	CreateIntent(ctx context.Context, req CreateIntentRequest) (*PaymentIntent, error)

	// GetIntent retrieves the current state of a payment intent.
	GetIntent(ctx context.Context, intentID string) (*PaymentIntent, error)
}
