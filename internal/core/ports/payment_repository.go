package ports

import (
	"context"

	"mescolis/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment records.
type PaymentRepository interface {
	// Add persists a new payment record and assigns the generated identifier
	// to the aggregate.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// Update persists changes to an existing payment record.
	Update(ctx context.Context, aggregate *payment.Payment) error

	// Get retrieves a payment record by its identifier.
	Get(ctx context.Context, id int64) (*payment.Payment, error)

	// GetByIntentID retrieves a payment record by the processor's intent
	// identifier.
	GetByIntentID(ctx context.Context, intentID string) (*payment.Payment, error)
}
