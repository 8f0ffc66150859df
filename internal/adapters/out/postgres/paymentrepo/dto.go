// Package paymentrepo provides data transfer objects and mapping functions
// for payment persistence.
package paymentrepo

import (
	"time"

	"mescolis/internal/core/domain/model/kernel"
	"mescolis/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentDTO represents the database structure for persisting payment
// records. IntentID is the processor's identifier and is unique per record.
type PaymentDTO struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	IntentID    string    `gorm:"uniqueIndex;not null"`
	Amount      decimal.Decimal `gorm:"type:numeric(10,2)"`
	Currency    string
	Status      int `gorm:"index"`
	Type        int
	Description string
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// TableName specifies the database table name for payments.
func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(aggregate *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:          aggregate.ID(),
		UserID:      aggregate.UserID().Bytes(),
		IntentID:    aggregate.IntentID(),
		Amount:      aggregate.Amount(),
		Currency:    aggregate.Currency(),
		Status:      int(aggregate.Status()),
		Type:        int(aggregate.PaymentType()),
		Description: aggregate.Description(),
		CreatedAt:   aggregate.CreatedAt(),
		CompletedAt: aggregate.CompletedAt(),
	}
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(
		dto.ID,
		userID,
		dto.IntentID,
		dto.Amount,
		dto.Currency,
		payment.Status(dto.Status),
		payment.Type(dto.Type),
		dto.Description,
		dto.CreatedAt,
		dto.CompletedAt,
	)
}
