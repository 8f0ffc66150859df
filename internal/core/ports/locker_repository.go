package ports

import (
	"context"
	"time"

	"mescolis/internal/core/domain/model/locker"
)

// LockerRepository defines the persistence contract for smart lockers, their
// compartments, and compartment reservations.
//
// Reservation flow contract: SelectAvailableCompartment,
// MarkCompartmentUnavailable and AdjustAvailableCompartments are designed to
// run inside one unit-of-work transaction so a compartment is never handed to
// two reservations.
type LockerRepository interface {
	// GetLocker retrieves a smart locker by its identifier.
	GetLocker(ctx context.Context, id int64) (*locker.SmartLocker, error)

	// GetCompartment retrieves a compartment by its identifier.
	GetCompartment(ctx context.Context, id int64) (*locker.Compartment, error)

	// SelectAvailableCompartment picks one available, operational compartment
	// of the requested size at the locker, locking the row for the duration
	// of the transaction. Returns errs.ObjectNotFoundError when none is free.
	SelectAvailableCompartment(ctx context.Context, lockerID int64, size locker.CompartmentSize) (*locker.Compartment, error)

	// MarkCompartmentUnavailable flips the compartment to unavailable only if
	// it is still available. Returns errs.ErrCompartmentTaken when another
	// transaction won the compartment first.
	MarkCompartmentUnavailable(ctx context.Context, compartmentID int64) error

	// MarkCompartmentAvailable flips the compartment back to available.
	MarkCompartmentAvailable(ctx context.Context, compartmentID int64) error

	// AdjustAvailableCompartments atomically adds delta to the locker's
	// available compartment counter.
	AdjustAvailableCompartments(ctx context.Context, lockerID int64, delta int) error

	// AddReservation persists a new reservation and assigns the generated
	// identifier to the aggregate.
	AddReservation(ctx context.Context, aggregate *locker.Reservation) error

	// UpdateReservation persists changes to an existing reservation.
	UpdateReservation(ctx context.Context, aggregate *locker.Reservation) error

	// GetReservation retrieves a reservation by its identifier.
	GetReservation(ctx context.Context, id int64) (*locker.Reservation, error)

	// FindExpiredReservations retrieves reservations whose hold window ended
	// before the given time and whose status is not yet terminal.
	FindExpiredReservations(ctx context.Context, before time.Time) ([]*locker.Reservation, error)
}
