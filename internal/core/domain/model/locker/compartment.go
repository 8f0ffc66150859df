package locker

import (
	"errors"
	"strings"

	"mescolis/internal/pkg/errs"
)

var (
	// ErrCompartmentIsNotConstructed is returned when a Compartment was not
	// created through NewCompartment or RestoreCompartment.
	ErrCompartmentIsNotConstructed = errors.New(
		"Compartment must be created via NewCompartment or RestoreCompartment")

	// ErrCompartmentNotAvailable is returned when reserving a compartment
	// that is already held or out of order.
	ErrCompartmentNotAvailable = errors.New("compartment is not available")
)

// Compartment is an individually lockable storage unit inside a smart
// locker. While a reservation referencing the compartment is in a
// non-terminal state, IsAvailable stays false.
type Compartment struct {
	id            int64
	lockerID      int64
	number        string
	size          CompartmentSize
	isAvailable   bool
	isOperational bool

	isConstructed bool
}

// NewCompartment creates an available, operational compartment.
func NewCompartment(lockerID int64, number string, size CompartmentSize) (*Compartment, error) {
	c := &Compartment{
		isAvailable:   true,
		isOperational: true,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setLockerID(lockerID),
		c.setNumber(number),
		c.setSize(size),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCompartment reconstructs a Compartment from persistence.
func RestoreCompartment(
	id int64,
	lockerID int64,
	number string,
	size CompartmentSize,
	isAvailable bool,
	isOperational bool,
) (*Compartment, error) {
	c := &Compartment{
		id:            id,
		isAvailable:   isAvailable,
		isOperational: isOperational,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setLockerID(lockerID),
		c.setNumber(number),
		c.setSize(size),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Compartment was created through a constructor.
func (c *Compartment) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCompartmentIsNotConstructed
	}
	return nil
}

// ID returns the persistence identifier.
func (c *Compartment) ID() int64 { return c.id }

// LockerID returns the owning smart locker.
func (c *Compartment) LockerID() int64 { return c.lockerID }

// Number returns the compartment's door label.
func (c *Compartment) Number() string { return c.number }

// Size returns the size class.
func (c *Compartment) Size() CompartmentSize { return c.size }

// IsAvailable reports whether the compartment can be reserved.
func (c *Compartment) IsAvailable() bool { return c.isAvailable }

// IsOperational reports whether the compartment door and lock work.
func (c *Compartment) IsOperational() bool { return c.isOperational }

// Hold marks the compartment unavailable for a new reservation. It fails
// when the compartment is already held or out of order.
func (c *Compartment) Hold() error {
	if !c.isAvailable || !c.isOperational {
		return ErrCompartmentNotAvailable
	}
	c.isAvailable = false
	return nil
}

// Release marks the compartment available again after the reservation
// referencing it reached a terminal state.
func (c *Compartment) Release() {
	c.isAvailable = true
}

func (c *Compartment) setLockerID(lockerID int64) error {
	if lockerID <= 0 {
		return errs.NewValueIsInvalidError("locker id")
	}
	c.lockerID = lockerID
	return nil
}

func (c *Compartment) setNumber(number string) error {
	if strings.TrimSpace(number) == "" {
		return errs.NewValueIsRequiredError("compartment number")
	}
	c.number = number
	return nil
}

func (c *Compartment) setSize(size CompartmentSize) error {
	if err := size.Validate(); err != nil {
		return err
	}
	c.size = size
	return nil
}
