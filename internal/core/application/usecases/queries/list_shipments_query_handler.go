package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListShipmentsQueryHandler retrieves a page of an owner's shipments.
type ListShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewListShipmentsQueryHandler creates a handler for shipment listing.
func NewListShipmentsQueryHandler(db *gorm.DB) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{db: db}
}

// Handle executes the query. Shipments are ordered newest first; the total
// count covers all of the owner's shipments, not just this page.
func (h ListShipmentsQueryHandler) Handle(ctx context.Context, query ListShipmentsQuery) (*PaginatedShipmentsResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var total int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM shipments WHERE owner_id = ?
	`, query.OwnerID().Bytes()).Scan(&total).Error
	if err != nil {
		return nil, err
	}

	offset := (query.Page() - 1) * query.PageSize()
	rows, err := h.db.WithContext(ctx).Raw(
		shipmentSelect+`
		WHERE s.owner_id = ?
		ORDER BY s.created_at DESC
		LIMIT ? OFFSET ?
	`, query.OwnerID().Bytes(), query.PageSize(), offset).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]ShipmentResponse, 0)
	for rows.Next() {
		resp, err := scanShipmentRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		items = append(items, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range items {
		items[i].TrackingEvents, err = loadTrackingEvents(ctx, h.db, items[i].ID)
		if err != nil {
			return nil, err
		}
	}

	return &PaginatedShipmentsResponse{
		Items:      items,
		TotalCount: total,
		Page:       query.Page(),
		PageSize:   query.PageSize(),
	}, nil
}
