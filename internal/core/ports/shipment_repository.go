package ports

import (
	"context"

	"mescolis/internal/core/domain/model/kernel"
	"mescolis/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate with its addresses and initial
	// tracking event, and assigns the generated identifier to the aggregate.
	// Returns errs.ErrDuplicateTrackingNumber when the tracking number
	// collides with an existing shipment.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate, including
	// tracking events appended since it was loaded.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its identifier.
	Get(ctx context.Context, id int64) (*shipment.Shipment, error)

	// GetByTrackingNumber retrieves a shipment aggregate by tracking number.
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*shipment.Shipment, error)

	// GetForOwner retrieves a shipment aggregate only if it belongs to the
	// given owner. Shipments of other owners surface as not found.
	GetForOwner(ctx context.Context, id int64, ownerID kernel.UUID) (*shipment.Shipment, error)
}
