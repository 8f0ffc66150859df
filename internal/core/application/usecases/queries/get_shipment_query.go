package queries

import (
	"errors"

	"mescolis/internal/core/domain/model/kernel"
	"mescolis/internal/pkg/guard"
)

var (
	ErrGetShipmentQueryIsNotConstructed = errors.New(
		"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
	)
	ErrShipmentIDIsInvalid = errors.New("shipment id must be greater than 0")
)

// GetShipmentQuery retrieves one shipment scoped to its owner. A shipment
// belonging to another user surfaces as not found, never as forbidden.
type GetShipmentQuery struct { //nolint:recvcheck //using for validation
	shipmentID int64
	ownerID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentQuery creates a query for a single owned shipment.
func NewGetShipmentQuery(shipmentID int64, ownerID kernel.UUID) (GetShipmentQuery, error) {
	q := GetShipmentQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setShipmentID(shipmentID),
		q.setOwnerID(ownerID),
	); err != nil {
		return GetShipmentQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// ShipmentID returns the shipment identifier.
func (q GetShipmentQuery) ShipmentID() int64 { return q.shipmentID }

// OwnerID returns the requesting owner.
func (q GetShipmentQuery) OwnerID() kernel.UUID { return q.ownerID }

func (q *GetShipmentQuery) setShipmentID(shipmentID int64) error {
	if shipmentID <= 0 {
		return ErrShipmentIDIsInvalid
	}

	q.shipmentID = shipmentID
	return nil
}

func (q *GetShipmentQuery) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	q.ownerID = ownerID
	return nil
}
