package commands

import (
	"errors"
	"time"

	"mescolis/internal/pkg/guard"
)

var (
	ErrExpireReservationsCommandIsNotConstructed = errors.New(
		"ExpireReservationsCommand must be created via NewExpireReservationsCommand constructor",
	)
	ErrCutoffIsRequired = errors.New("cutoff time is required")
)

// ExpireReservationsCommand represents a sweep of reservations whose hold
// window ended before the cutoff.
type ExpireReservationsCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewExpireReservationsCommand creates a command to expire overdue
// reservations. The cutoff is usually the current time.
func NewExpireReservationsCommand(cutoff time.Time) (ExpireReservationsCommand, error) {
	cmd := ExpireReservationsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCutoff(cutoff); err != nil {
		return ExpireReservationsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireReservationsCommand) Validate() error {
	return c.guard.Validate(ErrExpireReservationsCommandIsNotConstructed)
}

// Cutoff returns the expiry cutoff time.
func (c ExpireReservationsCommand) Cutoff() time.Time { return c.cutoff }

func (c *ExpireReservationsCommand) setCutoff(cutoff time.Time) error {
	if cutoff.IsZero() {
		return ErrCutoffIsRequired
	}

	c.cutoff = cutoff.UTC()
	return nil
}
