package queries

import (
	"errors"

	"mescolis/internal/core/domain/model/kernel"
	"mescolis/internal/pkg/guard"
)

var (
	ErrFindNearbyLockersQueryIsNotConstructed = errors.New(
		"FindNearbyLockersQuery must be created via NewFindNearbyLockersQuery constructor",
	)
	ErrRadiusIsInvalid = errors.New("radius must be greater than 0")
)

// FindNearbyLockersQuery retrieves active lockers within a radius of a
// point, closest first.
type FindNearbyLockersQuery struct { //nolint:recvcheck //using for validation
	origin   kernel.GeoPoint
	radiusKm float64

	guard guard.ConstructorGuard
}

// NewFindNearbyLockersQuery creates a proximity query around a coordinate.
func NewFindNearbyLockersQuery(latitude float64, longitude float64, radiusKm float64) (FindNearbyLockersQuery, error) {
	q := FindNearbyLockersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setOrigin(latitude, longitude),
		q.setRadius(radiusKm),
	); err != nil {
		return FindNearbyLockersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q FindNearbyLockersQuery) Validate() error {
	return q.guard.Validate(ErrFindNearbyLockersQueryIsNotConstructed)
}

// Origin returns the search center.
func (q FindNearbyLockersQuery) Origin() kernel.GeoPoint { return q.origin }

// RadiusKm returns the search radius in kilometres.
func (q FindNearbyLockersQuery) RadiusKm() float64 { return q.radiusKm }

func (q *FindNearbyLockersQuery) setOrigin(latitude float64, longitude float64) error {
	origin, err := kernel.NewGeoPoint(latitude, longitude)
	if err != nil {
		return err
	}

	q.origin = origin
	return nil
}

func (q *FindNearbyLockersQuery) setRadius(radiusKm float64) error {
	if radiusKm <= 0 {
		return ErrRadiusIsInvalid
	}

	q.radiusKm = radiusKm
	return nil
}
