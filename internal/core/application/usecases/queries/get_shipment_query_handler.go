package queries

import (
	"context"
	"database/sql"
	"errors"

	"mescolis/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetShipmentQueryHandler retrieves a single shipment with its addresses and
// tracking timeline.
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQueryHandler creates a handler for single-shipment queries.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle executes the query. The owner filter is part of the SQL, so other
// users' shipments are indistinguishable from missing ones.
func (h GetShipmentQueryHandler) Handle(ctx context.Context, query GetShipmentQuery) (*ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	row := h.db.WithContext(ctx).Raw(
		shipmentSelect+`WHERE s.id = ? AND s.owner_id = ?`,
		query.ShipmentID(), query.OwnerID().Bytes(),
	).Row()

	resp, err := scanShipmentRow(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("shipment", query.ShipmentID())
		}
		return nil, err
	}

	resp.TrackingEvents, err = loadTrackingEvents(ctx, h.db, resp.ID)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}
