package commands

import (
	"errors"

	"mescolis/internal/core/domain/model/kernel"
	"mescolis/internal/core/domain/model/payment"
	"mescolis/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreatePaymentIntentCommandIsNotConstructed = errors.New(
		"CreatePaymentIntentCommand must be created via NewCreatePaymentIntentCommand constructor",
	)
	ErrAmountIsInvalid   = errors.New("amount must be greater than 0")
	ErrCurrencyIsInvalid = errors.New("currency must be a 3-letter ISO code")
)

// CreatePaymentIntentCommand represents a request to open a payment intent
// with the payment processor. Amount is in major currency units.
type CreatePaymentIntentCommand struct { //nolint:recvcheck //using for validation
	userID      kernel.UUID
	amount      decimal.Decimal
	currency    string
	paymentType payment.Type
	description string
	shipmentID  *int64

	guard guard.ConstructorGuard
}

// NewCreatePaymentIntentCommand creates a command to open a payment intent.
func NewCreatePaymentIntentCommand(
	userID kernel.UUID,
	amount decimal.Decimal,
	currency string,
	paymentType payment.Type,
	description string,
	shipmentID *int64,
) (CreatePaymentIntentCommand, error) {
	cmd := CreatePaymentIntentCommand{
		description: description,
		shipmentID:  shipmentID,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setAmount(amount),
		cmd.setCurrency(currency),
		cmd.setPaymentType(paymentType),
	); err != nil {
		return CreatePaymentIntentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePaymentIntentCommand) Validate() error {
	return c.guard.Validate(ErrCreatePaymentIntentCommandIsNotConstructed)
}

// UserID returns the paying user.
func (c CreatePaymentIntentCommand) UserID() kernel.UUID { return c.userID }

// Amount returns the amount in major currency units.
func (c CreatePaymentIntentCommand) Amount() decimal.Decimal { return c.amount }

// Currency returns the lowercase ISO currency code.
func (c CreatePaymentIntentCommand) Currency() string { return c.currency }

// PaymentType returns what the payment is for.
func (c CreatePaymentIntentCommand) PaymentType() payment.Type { return c.paymentType }

// Description returns the free-text description.
func (c CreatePaymentIntentCommand) Description() string { return c.description }

// ShipmentID returns the shipment being paid for, if any.
func (c CreatePaymentIntentCommand) ShipmentID() *int64 { return c.shipmentID }

func (c *CreatePaymentIntentCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *CreatePaymentIntentCommand) setAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrAmountIsInvalid
	}

	c.amount = amount
	return nil
}

func (c *CreatePaymentIntentCommand) setCurrency(currency string) error {
	if len(currency) != 3 {
		return ErrCurrencyIsInvalid
	}

	c.currency = currency
	return nil
}

func (c *CreatePaymentIntentCommand) setPaymentType(paymentType payment.Type) error {
	if err := paymentType.Validate(); err != nil {
		return err
	}

	c.paymentType = paymentType
	return nil
}
