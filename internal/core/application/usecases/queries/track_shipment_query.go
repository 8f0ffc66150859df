package queries

import (
	"errors"

	"mescolis/internal/core/domain/model/shipment"
	"mescolis/internal/pkg/guard"
)

var ErrTrackShipmentQueryIsNotConstructed = errors.New(
	"TrackShipmentQuery must be created via NewTrackShipmentQuery constructor",
)

// TrackShipmentQuery retrieves a shipment by tracking number. Tracking is
// anonymous: anyone holding the number may follow the parcel.
type TrackShipmentQuery struct { //nolint:recvcheck //using for validation
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewTrackShipmentQuery creates a query for public tracking.
// The tracking number must match the platform's format.
func NewTrackShipmentQuery(trackingNumber string) (TrackShipmentQuery, error) {
	q := TrackShipmentQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setTrackingNumber(trackingNumber); err != nil {
		return TrackShipmentQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackShipmentQuery) Validate() error {
	return q.guard.Validate(ErrTrackShipmentQueryIsNotConstructed)
}

// TrackingNumber returns the tracking number.
func (q TrackShipmentQuery) TrackingNumber() string { return q.trackingNumber }

func (q *TrackShipmentQuery) setTrackingNumber(trackingNumber string) error {
	if err := shipment.ValidateTrackingNumber(trackingNumber); err != nil {
		return err
	}

	q.trackingNumber = trackingNumber
	return nil
}
