package queries

import (
	"errors"
	"time"

	"mescolis/internal/core/domain/model/kernel"
	"mescolis/internal/pkg/guard"
)

var ErrListReservationsQueryIsNotConstructed = errors.New(
	"ListReservationsQuery must be created via NewListReservationsQuery constructor",
)

// ListReservationsQuery retrieves a user's compartment reservations, newest
// first.
type ListReservationsQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListReservationsQuery creates a query for a user's reservations.
func NewListReservationsQuery(userID kernel.UUID) (ListReservationsQuery, error) {
	q := ListReservationsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setUserID(userID); err != nil {
		return ListReservationsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListReservationsQuery) Validate() error {
	return q.guard.Validate(ErrListReservationsQueryIsNotConstructed)
}

// UserID returns the requesting user.
func (q ListReservationsQuery) UserID() kernel.UUID { return q.userID }

// ReservationResponse is a reservation joined with its compartment and
// locker for display.
type ReservationResponse struct {
	ID                int64
	LockerCode        string
	LocationName      string
	CompartmentNumber string
	Size              string
	PickupPin         string
	Status            string
	ReservedAt        time.Time
	ExpiresAt         time.Time
}

func (q *ListReservationsQuery) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	q.userID = userID
	return nil
}
