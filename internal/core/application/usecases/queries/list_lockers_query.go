package queries

import (
	"errors"

	"mescolis/internal/pkg/guard"
)

var ErrListLockersQueryIsNotConstructed = errors.New(
	"ListLockersQuery must be created via NewListLockersQuery constructor",
)

// ListLockersQuery retrieves every active smart locker.
type ListLockersQuery struct {
	guard guard.ConstructorGuard
}

// NewListLockersQuery creates a query for the active locker network.
func NewListLockersQuery() ListLockersQuery {
	return ListLockersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListLockersQuery) Validate() error {
	return q.guard.Validate(ErrListLockersQueryIsNotConstructed)
}

// LockerResponse is the public view of a smart locker.
type LockerResponse struct {
	ID                    int64
	LockerCode            string
	LocationName          string
	Address               string
	City                  string
	Latitude              float64
	Longitude             float64
	Status                string
	TotalCompartments     int
	AvailableCompartments int
	HasPOS                bool

	// DistanceKm is filled only by proximity searches.
	DistanceKm float64
}
