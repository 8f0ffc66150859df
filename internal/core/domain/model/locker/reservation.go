package locker

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"regexp"
	"time"

	"mescolis/internal/core/domain/model/kernel"
	"mescolis/internal/pkg/errs"
)

var (
	// ErrReservationIsNotConstructed is returned when a Reservation was not
	// created through NewReservation or RestoreReservation.
	ErrReservationIsNotConstructed = errors.New(
		"Reservation must be created via NewReservation or RestoreReservation")

	// ErrReservationIDAlreadyAssigned is returned when assigning a
	// persistence identifier twice.
	ErrReservationIDAlreadyAssigned = errors.New("reservation id is already assigned")

	pickupPinPattern = regexp.MustCompile(`^\d{6}$`)
)

const (
	// MinHoldHours is the shortest allowed compartment hold.
	MinHoldHours = 1
	// MaxHoldHours is the longest allowed compartment hold (one week).
	MaxHoldHours = 168
	// DefaultHoldHours is applied when the caller does not specify a hold.
	DefaultHoldHours = 48
)

// GeneratePickupPin produces a random six-digit numeric PIN.
func GeneratePickupPin() string {
	return fmt.Sprintf("%06d", rand.IntN(900000)+100000) //nolint:gosec // PIN entropy matches the product requirement
}

// Reservation holds one compartment for one user, optionally tied to a
// shipment awaiting locker deposit. The compartment stays unavailable while
// the reservation is in a non-terminal state.
type Reservation struct {
	id            int64
	compartmentID int64
	userID        kernel.UUID
	shipmentID    *int64
	pickupPin     string
	status        ReservationStatus
	holdHours     int
	reservedAt    time.Time
	expiresAt     time.Time
	depositedAt   *time.Time
	pickedUpAt    *time.Time
	paymentID     *int64

	isConstructed bool
}

// NewReservation creates a Reserved-state reservation with a fresh pickup
// PIN expiring holdHours from now.
func NewReservation(
	compartmentID int64,
	userID kernel.UUID,
	shipmentID *int64,
	holdHours int,
	now time.Time,
) (*Reservation, error) {
	if compartmentID <= 0 {
		return nil, errs.NewValueIsInvalidError("compartment id")
	}
	if err := userID.Validate(); err != nil {
		return nil, err
	}
	if holdHours < MinHoldHours || holdHours > MaxHoldHours {
		return nil, errs.NewValueIsOutOfRangeError("hold hours", holdHours, MinHoldHours, MaxHoldHours)
	}

	now = now.UTC()
	return &Reservation{
		compartmentID: compartmentID,
		userID:        userID,
		shipmentID:    shipmentID,
		pickupPin:     GeneratePickupPin(),
		status:        Reserved,
		holdHours:     holdHours,
		reservedAt:    now,
		expiresAt:     now.Add(time.Duration(holdHours) * time.Hour),
		isConstructed: true,
	}, nil
}

// RestoreReservation reconstructs a Reservation from persistence.
func RestoreReservation(
	id int64,
	compartmentID int64,
	userID kernel.UUID,
	shipmentID *int64,
	pickupPin string,
	status ReservationStatus,
	holdHours int,
	reservedAt time.Time,
	expiresAt time.Time,
	depositedAt *time.Time,
	pickedUpAt *time.Time,
	paymentID *int64,
) (*Reservation, error) {
	if err := errors.Join(userID.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if !pickupPinPattern.MatchString(pickupPin) {
		return nil, errs.NewValueIsInvalidError("pickup pin")
	}

	return &Reservation{
		id:            id,
		compartmentID: compartmentID,
		userID:        userID,
		shipmentID:    shipmentID,
		pickupPin:     pickupPin,
		status:        status,
		holdHours:     holdHours,
		reservedAt:    reservedAt,
		expiresAt:     expiresAt,
		depositedAt:   depositedAt,
		pickedUpAt:    pickedUpAt,
		paymentID:     paymentID,
		isConstructed: true,
	}, nil
}

// Validate ensures the Reservation was created through a constructor.
func (r *Reservation) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReservationIsNotConstructed
	}
	return nil
}

// AssignID records the persistence identifier after the initial insert.
func (r *Reservation) AssignID(id int64) error {
	if r.id != 0 {
		return ErrReservationIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("reservation id")
	}
	r.id = id
	return nil
}

// ID returns the persistence identifier, or 0 before the first insert.
func (r *Reservation) ID() int64 { return r.id }

// CompartmentID returns the held compartment.
func (r *Reservation) CompartmentID() int64 { return r.compartmentID }

// UserID returns the reserving user.
func (r *Reservation) UserID() kernel.UUID { return r.userID }

// ShipmentID returns the linked shipment, or nil.
func (r *Reservation) ShipmentID() *int64 { return r.shipmentID }

// PickupPin returns the six-digit pickup PIN.
func (r *Reservation) PickupPin() string { return r.pickupPin }

// Status returns the current reservation status.
func (r *Reservation) Status() ReservationStatus { return r.status }

// HoldHours returns the requested hold duration in hours.
func (r *Reservation) HoldHours() int { return r.holdHours }

// ReservedAt returns when the hold was placed.
func (r *Reservation) ReservedAt() time.Time { return r.reservedAt }

// ExpiresAt returns when the hold lapses.
func (r *Reservation) ExpiresAt() time.Time { return r.expiresAt }

// DepositedAt returns when a parcel was deposited, or nil.
func (r *Reservation) DepositedAt() *time.Time { return r.depositedAt }

// PickedUpAt returns when the parcel was collected, or nil.
func (r *Reservation) PickedUpAt() *time.Time { return r.pickedUpAt }

// PaymentID returns the attached payment record, or nil.
func (r *Reservation) PaymentID() *int64 { return r.paymentID }

// IsExpired reports whether the hold lapsed while still in a non-terminal
// state. Expiry is detected by the sweep job or a lazy check, never by a
// background timer on the aggregate.
func (r *Reservation) IsExpired(now time.Time) bool {
	return !r.status.IsTerminal() && now.UTC().After(r.expiresAt)
}

// Deposit records a parcel being placed into the compartment.
func (r *Reservation) Deposit(now time.Time) error {
	next, err := r.status.TransitionTo(PackageDeposited)
	if err != nil {
		return err
	}
	ts := now.UTC()
	r.status = next
	r.depositedAt = &ts
	return nil
}

// MarkReadyForPickup records that the recipient was notified.
func (r *Reservation) MarkReadyForPickup() error {
	next, err := r.status.TransitionTo(ReadyForPickup)
	if err != nil {
		return err
	}
	r.status = next
	return nil
}

// PickUp records the parcel collection and closes the reservation.
func (r *Reservation) PickUp(now time.Time) error {
	next, err := r.status.TransitionTo(PickedUp)
	if err != nil {
		return err
	}
	ts := now.UTC()
	r.status = next
	r.pickedUpAt = &ts
	return nil
}

// Expire closes a lapsed reservation.
func (r *Reservation) Expire() error {
	next, err := r.status.TransitionTo(Expired)
	if err != nil {
		return err
	}
	r.status = next
	return nil
}

// Cancel abandons the reservation.
func (r *Reservation) Cancel() error {
	next, err := r.status.TransitionTo(Cancelled)
	if err != nil {
		return err
	}
	r.status = next
	return nil
}
