package commands

import (
	"context"
	"errors"

	"mescolis/internal/core/domain/model/shipment"
	"mescolis/internal/pkg/errs"
)

// trackingNumberAttempts bounds the retry loop on tracking number collisions.
// Collisions are rare (six random digits per calendar day), so a few retries
// are plenty.
const trackingNumberAttempts = 5

// ErrTrackingNumberExhausted is returned when every generated tracking
// number collided with an existing shipment.
var ErrTrackingNumberExhausted = errors.New("could not generate a unique tracking number")

// CreateShipmentCommandHandler purchases shipping labels. Each attempt
// builds a fresh aggregate so a tracking number collision retries with a new
// number, never reusing the one that collided.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewCreateShipmentCommandHandler creates a handler for label purchases.
func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the label purchase command.
// The shipment, both addresses and the initial tracking event are persisted
// in one transaction. Uniqueness of the tracking number is enforced by
// storage; on a collision the whole transaction is retried with a freshly
// generated number.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < trackingNumberAttempts; attempt++ {
		aggregate, err := shipment.NewShipment(
			cmd.OwnerID(),
			cmd.FromAddress(),
			cmd.ToAddress(),
			cmd.ShipmentType(),
			cmd.Dimensions(),
			cmd.CarrierName(),
			cmd.ServiceName(),
			cmd.QuotedPrice(),
			cmd.OriginLockerID(),
			cmd.DestinationLockerID(),
			timeNow(),
		)
		if err != nil {
			return nil, err
		}

		aggregate, err = h.persist(ctx, aggregate)
		if err != nil {
			if errors.Is(err, errs.ErrDuplicateTrackingNumber) {
				continue
			}
			return nil, err
		}

		return aggregate, nil
	}

	return nil, ErrTrackingNumberExhausted
}

func (h *CreateShipmentCommandHandler) persist(ctx context.Context, aggregate *shipment.Shipment) (*shipment.Shipment, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ShipmentRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
