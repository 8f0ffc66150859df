package commands

import (
	"errors"

	"mescolis/internal/core/domain/model/kernel"
	"mescolis/internal/pkg/guard"
)

var ErrToggleUserStatusCommandIsNotConstructed = errors.New(
	"ToggleUserStatusCommand must be created via NewToggleUserStatusCommand constructor",
)

// ToggleUserStatusCommand represents an administrator's request to activate
// or deactivate an account.
type ToggleUserStatusCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewToggleUserStatusCommand creates a command to flip an account's active
// flag.
func NewToggleUserStatusCommand(userID kernel.UUID) (ToggleUserStatusCommand, error) {
	cmd := ToggleUserStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setUserID(userID); err != nil {
		return ToggleUserStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ToggleUserStatusCommand) Validate() error {
	return c.guard.Validate(ErrToggleUserStatusCommandIsNotConstructed)
}

// UserID returns the account to toggle.
func (c ToggleUserStatusCommand) UserID() kernel.UUID { return c.userID }

func (c *ToggleUserStatusCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}
