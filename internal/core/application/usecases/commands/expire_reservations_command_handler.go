package commands

import (
	"context"
)

// ExpireReservationsCommandHandler releases compartments held by overdue
// reservations. Each reservation moves to Expired, its compartment becomes
// available again and the locker counter is restored.
type ExpireReservationsCommandHandler struct {
	uowFactory LockerUoWFactory
}

// NewExpireReservationsCommandHandler creates a handler for the expiry
// sweep.
func NewExpireReservationsCommandHandler(uowFactory LockerUoWFactory) ExpireReservationsCommandHandler {
	return ExpireReservationsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the expiry sweep and returns the number of reservations
// expired. The whole sweep is one transaction; a failed reservation aborts
// the sweep so the next run retries it.
func (h *ExpireReservationsCommandHandler) Handle(ctx context.Context, cmd ExpireReservationsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	lockerRepo := uow.LockerRepository()
	overdue, err := lockerRepo.FindExpiredReservations(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}

	for _, reservation := range overdue {
		if err = reservation.Expire(); err != nil {
			return 0, err
		}
		if err = lockerRepo.UpdateReservation(ctx, reservation); err != nil {
			return 0, err
		}

		compartment, err := lockerRepo.GetCompartment(ctx, reservation.CompartmentID())
		if err != nil {
			return 0, err
		}
		if err = lockerRepo.MarkCompartmentAvailable(ctx, compartment.ID()); err != nil {
			return 0, err
		}
		if err = lockerRepo.AdjustAvailableCompartments(ctx, compartment.LockerID(), 1); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(overdue), nil
}
