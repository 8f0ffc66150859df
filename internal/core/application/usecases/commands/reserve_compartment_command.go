package commands

import (
	"errors"

	"mescolis/internal/core/domain/model/kernel"
	"mescolis/internal/core/domain/model/locker"
	"mescolis/internal/pkg/guard"
)

var (
	ErrReserveCompartmentCommandIsNotConstructed = errors.New(
		"ReserveCompartmentCommand must be created via NewReserveCompartmentCommand constructor",
	)
	ErrLockerIDIsInvalid   = errors.New("locker id must be greater than 0")
	ErrHoldHoursOutOfRange = errors.New("hold hours are out of range")
)

// ReserveCompartmentCommand represents a request to hold a compartment of a
// given size at a smart locker.
type ReserveCompartmentCommand struct { //nolint:recvcheck //using for validation
	userID     kernel.UUID
	lockerID   int64
	size       locker.CompartmentSize
	holdHours  int
	shipmentID *int64

	guard guard.ConstructorGuard
}

// NewReserveCompartmentCommand creates a command to reserve a compartment.
// Hold hours are bounded by the reservation policy; a zero value selects the
// default hold window.
func NewReserveCompartmentCommand(
	userID kernel.UUID,
	lockerID int64,
	size locker.CompartmentSize,
	holdHours int,
	shipmentID *int64,
) (ReserveCompartmentCommand, error) {
	cmd := ReserveCompartmentCommand{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}

	if holdHours == 0 {
		holdHours = locker.DefaultHoldHours
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setLockerID(lockerID),
		cmd.setSize(size),
		cmd.setHoldHours(holdHours),
	); err != nil {
		return ReserveCompartmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReserveCompartmentCommand) Validate() error {
	return c.guard.Validate(ErrReserveCompartmentCommandIsNotConstructed)
}

// UserID returns the reserving user.
func (c ReserveCompartmentCommand) UserID() kernel.UUID { return c.userID }

// LockerID returns the target smart locker.
func (c ReserveCompartmentCommand) LockerID() int64 { return c.lockerID }

// Size returns the requested compartment size.
func (c ReserveCompartmentCommand) Size() locker.CompartmentSize { return c.size }

// HoldHours returns the reservation hold window in hours.
func (c ReserveCompartmentCommand) HoldHours() int { return c.holdHours }

// ShipmentID returns the linked shipment, if any.
func (c ReserveCompartmentCommand) ShipmentID() *int64 { return c.shipmentID }

func (c *ReserveCompartmentCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *ReserveCompartmentCommand) setLockerID(lockerID int64) error {
	if lockerID <= 0 {
		return ErrLockerIDIsInvalid
	}

	c.lockerID = lockerID
	return nil
}

func (c *ReserveCompartmentCommand) setSize(size locker.CompartmentSize) error {
	if err := size.Validate(); err != nil {
		return err
	}

	c.size = size
	return nil
}

func (c *ReserveCompartmentCommand) setHoldHours(holdHours int) error {
	if holdHours < locker.MinHoldHours || holdHours > locker.MaxHoldHours {
		return ErrHoldHoursOutOfRange
	}

	c.holdHours = holdHours
	return nil
}
