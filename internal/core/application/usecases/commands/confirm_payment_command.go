package commands

import (
	"errors"
	"strings"

	"mescolis/internal/pkg/guard"
)

var (
	ErrConfirmPaymentCommandIsNotConstructed = errors.New(
		"ConfirmPaymentCommand must be created via NewConfirmPaymentCommand constructor",
	)
	ErrIntentIDIsRequired = errors.New("payment intent id is required")
)

// ConfirmPaymentCommand represents a request to reconcile a local payment
// record against the processor's view of the intent.
type ConfirmPaymentCommand struct { //nolint:recvcheck //using for validation
	intentID string

	guard guard.ConstructorGuard
}

// NewConfirmPaymentCommand creates a command to reconcile a payment.
func NewConfirmPaymentCommand(intentID string) (ConfirmPaymentCommand, error) {
	cmd := ConfirmPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setIntentID(intentID); err != nil {
		return ConfirmPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPaymentCommandIsNotConstructed)
}

// IntentID returns the processor's intent identifier.
func (c ConfirmPaymentCommand) IntentID() string { return c.intentID }

func (c *ConfirmPaymentCommand) setIntentID(intentID string) error {
	if strings.TrimSpace(intentID) == "" {
		return ErrIntentIDIsRequired
	}

	c.intentID = intentID
	return nil
}
