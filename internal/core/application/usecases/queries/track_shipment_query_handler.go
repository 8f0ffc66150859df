package queries

import (
	"context"
	"database/sql"
	"errors"

	"mescolis/internal/pkg/errs"

	"gorm.io/gorm"
)

// TrackShipmentQueryHandler serves public parcel tracking by tracking
// number.
type TrackShipmentQueryHandler struct {
	db *gorm.DB
}

// NewTrackShipmentQueryHandler creates a handler for public tracking.
func NewTrackShipmentQueryHandler(db *gorm.DB) TrackShipmentQueryHandler {
	return TrackShipmentQueryHandler{db: db}
}

// Handle executes the query.
func (h TrackShipmentQueryHandler) Handle(ctx context.Context, query TrackShipmentQuery) (*ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	row := h.db.WithContext(ctx).Raw(
		shipmentSelect+`WHERE s.tracking_number = ?`,
		query.TrackingNumber(),
	).Row()

	resp, err := scanShipmentRow(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("tracking number", query.TrackingNumber())
		}
		return nil, err
	}

	resp.TrackingEvents, err = loadTrackingEvents(ctx, h.db, resp.ID)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}
