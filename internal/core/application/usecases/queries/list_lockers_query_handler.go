package queries

import (
	"context"

	"mescolis/internal/core/domain/model/locker"

	"gorm.io/gorm"
)

// ListLockersQueryHandler retrieves the active locker network from the
// database.
type ListLockersQueryHandler struct {
	db *gorm.DB
}

// NewListLockersQueryHandler creates a handler for locker listing.
func NewListLockersQueryHandler(db *gorm.DB) ListLockersQueryHandler {
	return ListLockersQueryHandler{db: db}
}

// Handle executes the query. Only Active lockers are listed; lockers under
// maintenance or deployment stay hidden from customers.
func (h ListLockersQueryHandler) Handle(ctx context.Context, query ListLockersQuery) ([]LockerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return listActiveLockers(ctx, h.db)
}

func listActiveLockers(ctx context.Context, db *gorm.DB) ([]LockerResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			locker_code,
			location_name,
			address,
			city,
			latitude,
			longitude,
			status,
			total_compartments,
			available_compartments,
			has_pos
		FROM smart_lockers
		WHERE status = ?
		ORDER BY id
	`, int(locker.Active)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lockers := make([]LockerResponse, 0)
	for rows.Next() {
		var (
			resp   LockerResponse
			status int
		)
		err = rows.Scan(
			&resp.ID,
			&resp.LockerCode,
			&resp.LocationName,
			&resp.Address,
			&resp.City,
			&resp.Latitude,
			&resp.Longitude,
			&status,
			&resp.TotalCompartments,
			&resp.AvailableCompartments,
			&resp.HasPOS,
		)
		if err != nil {
			return nil, err
		}
		resp.Status = locker.LockerStatus(status).String()
		lockers = append(lockers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lockers, nil
}
