package queries

import (
	"context"

	"mescolis/internal/core/domain/model/locker"

	"gorm.io/gorm"
)

// ListReservationsQueryHandler retrieves a user's reservations joined with
// compartment and locker details.
type ListReservationsQueryHandler struct {
	db *gorm.DB
}

// NewListReservationsQueryHandler creates a handler for reservation listing.
func NewListReservationsQueryHandler(db *gorm.DB) ListReservationsQueryHandler {
	return ListReservationsQueryHandler{db: db}
}

// Handle executes the query, newest reservation first.
func (h ListReservationsQueryHandler) Handle(ctx context.Context, query ListReservationsQuery) ([]ReservationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			l.locker_code,
			l.location_name,
			c.compartment_number,
			c.size,
			r.pickup_pin,
			r.status,
			r.reserved_at,
			r.expires_at
		FROM locker_reservations r
		JOIN locker_compartments c ON c.id = r.compartment_id
		JOIN smart_lockers l ON l.id = c.locker_id
		WHERE r.user_id = ?
		ORDER BY r.reserved_at DESC
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := make([]ReservationResponse, 0)
	for rows.Next() {
		var (
			resp   ReservationResponse
			size   int
			status int
		)
		err = rows.Scan(
			&resp.ID,
			&resp.LockerCode,
			&resp.LocationName,
			&resp.CompartmentNumber,
			&size,
			&resp.PickupPin,
			&status,
			&resp.ReservedAt,
			&resp.ExpiresAt,
		)
		if err != nil {
			return nil, err
		}
		resp.Size = locker.CompartmentSize(size).String()
		resp.Status = locker.ReservationStatus(status).String()
		reservations = append(reservations, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reservations, nil
}
