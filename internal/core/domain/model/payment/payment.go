// Package payment contains the local payment record reconciled against an
// external payment processor's intents.
package payment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"mescolis/internal/core/domain/model/kernel"
	"mescolis/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrPaymentIsNotConstructed is returned when a Payment was not created
	// through NewPayment or RestorePayment.
	ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment")

	// ErrPaymentIDAlreadyAssigned is returned when assigning a persistence
	// identifier twice.
	ErrPaymentIDAlreadyAssigned = errors.New("payment id is already assigned")
)

// Status represents the reconciliation state of a payment.
//
// State transitions:
//
//	Pending ──> Succeeded ──> Refunded
//	    └─────> Failed
type Status int

const (
	// UnknownStatus represents an invalid or undefined payment status.
	UnknownStatus Status = iota

	// Pending means the processor intent exists but is not settled.
	Pending

	// Succeeded means the processor confirmed the charge.
	Succeeded

	// Failed means the processor cancelled or declined the charge.
	Failed

	// Refunded means a succeeded charge was returned to the customer.
	Refunded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "Unknown",
		Pending:       "Pending",
		Succeeded:     "Succeeded",
		Failed:        "Failed",
		Refunded:      "Refunded",
	}
}

// Validate checks that the Status holds one of the defined values.
func (s Status) Validate() error {
	switch s {
	case Pending, Succeeded, Failed, Refunded:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status", fmt.Errorf("%d is not a valid payment status", s))
	}
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Type classifies what a payment is for.
type Type int

const (
	// UnknownType represents an invalid or undefined payment type.
	UnknownType Type = iota

	// Shipment pays for a shipping label.
	Shipment

	// LockerRental pays for a compartment hold.
	LockerRental

	// Subscription pays for a recurring plan.
	Subscription

	// POSWalkUp pays for a walk-up transaction at a locker terminal.
	POSWalkUp
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		UnknownType:  "Unknown",
		Shipment:     "Shipment",
		LockerRental: "LockerRental",
		Subscription: "Subscription",
		POSWalkUp:    "POSWalkUp",
	}
}

// TypeFromString parses a payment type from its string form.
func TypeFromString(s string) (Type, error) {
	for t, name := range getTypeStrings() {
		if t != UnknownType && name == s {
			return t, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause(
		"payment type", fmt.Errorf("%q is not a valid payment type", s))
}

// Validate checks that the Type holds one of the defined values.
func (t Type) Validate() error {
	switch t {
	case Shipment, LockerRental, Subscription, POSWalkUp:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"payment type", fmt.Errorf("%d is not a valid payment type", t))
	}
}

// String returns the human-readable name of the payment type.
func (t Type) String() string {
	if s, ok := getTypeStrings()[t]; ok {
		return s
	}
	return "Unknown"
}

// Payment is the local record of a processor payment intent, keyed by the
// processor's intent identifier.
type Payment struct {
	id          int64
	userID      kernel.UUID
	intentID    string
	amount      decimal.Decimal
	currency    string
	status      Status
	paymentType Type
	description string
	createdAt   time.Time
	completedAt *time.Time

	isConstructed bool
}

// NewPayment creates a Pending payment for an already-created processor
// intent. Amount is in major currency units.
func NewPayment(
	userID kernel.UUID,
	intentID string,
	amount decimal.Decimal,
	currency string,
	paymentType Type,
	description string,
	now time.Time,
) (*Payment, error) {
	if err := errors.Join(userID.Validate(), paymentType.Validate()); err != nil {
		return nil, err
	}
	if strings.TrimSpace(intentID) == "" {
		return nil, errs.NewValueIsRequiredError("payment intent id")
	}
	if !amount.IsPositive() {
		return nil, errs.NewValueIsInvalidError("amount")
	}
	if len(currency) != 3 {
		return nil, errs.NewValueIsInvalidError("currency")
	}

	return &Payment{
		userID:        userID,
		intentID:      intentID,
		amount:        amount,
		currency:      strings.ToUpper(currency),
		status:        Pending,
		paymentType:   paymentType,
		description:   description,
		createdAt:     now.UTC(),
		isConstructed: true,
	}, nil
}

// RestorePayment reconstructs a Payment from persistence.
func RestorePayment(
	id int64,
	userID kernel.UUID,
	intentID string,
	amount decimal.Decimal,
	currency string,
	status Status,
	paymentType Type,
	description string,
	createdAt time.Time,
	completedAt *time.Time,
) (*Payment, error) {
	if err := errors.Join(userID.Validate(), status.Validate(), paymentType.Validate()); err != nil {
		return nil, err
	}

	return &Payment{
		id:            id,
		userID:        userID,
		intentID:      intentID,
		amount:        amount,
		currency:      currency,
		status:        status,
		paymentType:   paymentType,
		description:   description,
		createdAt:     createdAt,
		completedAt:   completedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Payment was created through a constructor.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// AssignID records the persistence identifier after the initial insert.
func (p *Payment) AssignID(id int64) error {
	if p.id != 0 {
		return ErrPaymentIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("payment id")
	}
	p.id = id
	return nil
}

// ID returns the persistence identifier, or 0 before the first insert.
func (p *Payment) ID() int64 { return p.id }

// UserID returns the paying user.
func (p *Payment) UserID() kernel.UUID { return p.userID }

// IntentID returns the processor's intent identifier.
func (p *Payment) IntentID() string { return p.intentID }

// Amount returns the amount in major currency units.
func (p *Payment) Amount() decimal.Decimal { return p.amount }

// Currency returns the ISO currency code.
func (p *Payment) Currency() string { return p.currency }

// Status returns the reconciliation status.
func (p *Payment) Status() Status { return p.status }

// PaymentType returns what the payment is for.
func (p *Payment) PaymentType() Type { return p.paymentType }

// Description returns the free-text description.
func (p *Payment) Description() string { return p.description }

// CreatedAt returns the record creation time.
func (p *Payment) CreatedAt() time.Time { return p.createdAt }

// CompletedAt returns the settlement time, set only on success.
func (p *Payment) CompletedAt() *time.Time { return p.completedAt }

// ApplyIntentStatus maps a processor intent status onto the local record:
// "succeeded" settles the payment, "canceled" fails it, anything else leaves
// it pending. The completion timestamp is set only on success.
func (p *Payment) ApplyIntentStatus(intentStatus string, now time.Time) {
	switch intentStatus {
	case "succeeded":
		ts := now.UTC()
		p.status = Succeeded
		p.completedAt = &ts
	case "canceled":
		p.status = Failed
		p.completedAt = nil
	default:
		p.status = Pending
		p.completedAt = nil
	}
}

// Refund marks a succeeded payment as refunded.
func (p *Payment) Refund() error {
	if p.status != Succeeded {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status", fmt.Errorf("%s payment cannot be refunded", p.status))
	}
	p.status = Refunded
	return nil
}
