package queries

import (
	"context"
	"sort"

	"mescolis/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// FindNearbyLockersQueryHandler finds active lockers around a point. The
// network is small enough to filter in memory with great-circle distances.
type FindNearbyLockersQueryHandler struct {
	db *gorm.DB
}

// NewFindNearbyLockersQueryHandler creates a handler for proximity search.
func NewFindNearbyLockersQueryHandler(db *gorm.DB) FindNearbyLockersQueryHandler {
	return FindNearbyLockersQueryHandler{db: db}
}

// Handle executes the query. Lockers beyond the radius are dropped and the
// rest are ordered closest first, each carrying its distance.
func (h FindNearbyLockersQueryHandler) Handle(ctx context.Context, query FindNearbyLockersQuery) ([]LockerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	lockers, err := listActiveLockers(ctx, h.db)
	if err != nil {
		return nil, err
	}

	nearby := make([]LockerResponse, 0)
	for _, l := range lockers {
		position, err := kernel.NewGeoPoint(l.Latitude, l.Longitude)
		if err != nil {
			return nil, err
		}

		distance, err := query.Origin().DistanceKmTo(position)
		if err != nil {
			return nil, err
		}

		if distance <= query.RadiusKm() {
			l.DistanceKm = distance
			nearby = append(nearby, l)
		}
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})

	return nearby, nil
}
