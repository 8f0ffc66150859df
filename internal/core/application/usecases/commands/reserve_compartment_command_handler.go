package commands

import (
	"context"
	"time"

	"mescolis/internal/core/domain/model/locker"
)

// ReserveCompartmentResponse is the outcome of a successful reservation,
// carrying the locker details a customer needs to find the compartment.
type ReserveCompartmentResponse struct {
	ReservationID     int64
	LockerCode        string
	LocationName      string
	CompartmentNumber string
	Size              string
	PickupPin         string
	Status            string
	ReservedAt        time.Time
	ExpiresAt         time.Time
}

// ReserveCompartmentCommandHandler holds compartments for customers. The
// compartment pick, the availability flip, the reservation insert and the
// locker counter update all happen in one transaction, so a compartment can
// never be handed to two reservations.
type ReserveCompartmentCommandHandler struct {
	uowFactory LockerUoWFactory
}

// NewReserveCompartmentCommandHandler creates a handler for compartment
// reservations.
func NewReserveCompartmentCommandHandler(uowFactory LockerUoWFactory) ReserveCompartmentCommandHandler {
	return ReserveCompartmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reservation command.
// The selected compartment row stays locked until commit; the availability
// flip is conditional so a concurrent winner surfaces as ErrCompartmentTaken
// instead of a double booking.
func (h *ReserveCompartmentCommandHandler) Handle(
	ctx context.Context, cmd ReserveCompartmentCommand,
) (*ReserveCompartmentResponse, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	lockerRepo := uow.LockerRepository()

	smartLocker, err := lockerRepo.GetLocker(ctx, cmd.LockerID())
	if err != nil {
		return nil, err
	}

	compartment, err := lockerRepo.SelectAvailableCompartment(ctx, cmd.LockerID(), cmd.Size())
	if err != nil {
		return nil, err
	}

	if err = lockerRepo.MarkCompartmentUnavailable(ctx, compartment.ID()); err != nil {
		return nil, err
	}

	reservation, err := locker.NewReservation(
		compartment.ID(), cmd.UserID(), cmd.ShipmentID(), cmd.HoldHours(), timeNow())
	if err != nil {
		return nil, err
	}

	if err = lockerRepo.AddReservation(ctx, reservation); err != nil {
		return nil, err
	}

	if err = lockerRepo.AdjustAvailableCompartments(ctx, cmd.LockerID(), -1); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return &ReserveCompartmentResponse{
		ReservationID:     reservation.ID(),
		LockerCode:        smartLocker.LockerCode(),
		LocationName:      smartLocker.LocationName(),
		CompartmentNumber: compartment.Number(),
		Size:              compartment.Size().String(),
		PickupPin:         reservation.PickupPin(),
		Status:            reservation.Status().String(),
		ReservedAt:        reservation.ReservedAt(),
		ExpiresAt:         reservation.ExpiresAt(),
	}, nil
}
