package locker

import (
	"fmt"

	"mescolis/internal/pkg/errs"
)

// ReservationStatus represents the lifecycle state of a compartment
// reservation. It implements a state machine with an explicit transition
// table.
//
// State transitions:
//
//	Reserved ──> PackageDeposited ──> ReadyForPickup ──> PickedUp
//	    │               │                    │
//	    └───────────────┴────────────────────┴──> Expired | Cancelled
type ReservationStatus int

const (
	// UnknownReservationStatus represents an invalid or undefined status.
	UnknownReservationStatus ReservationStatus = iota

	// Reserved is the initial state: the compartment is held for the user.
	Reserved

	// PackageDeposited means a parcel was placed into the compartment.
	PackageDeposited

	// ReadyForPickup means the recipient was notified to collect the parcel.
	ReadyForPickup

	// PickedUp is a final state: the parcel was collected.
	PickedUp

	// Expired is a final state: the hold lapsed without completion.
	Expired

	// Cancelled is a final state: the reservation was abandoned.
	Cancelled
)

func getReservationStatusStrings() map[ReservationStatus]string {
	return map[ReservationStatus]string{
		UnknownReservationStatus: "Unknown",
		Reserved:                 "Reserved",
		PackageDeposited:         "PackageDeposited",
		ReadyForPickup:           "ReadyForPickup",
		PickedUp:                 "PickedUp",
		Expired:                  "Expired",
		Cancelled:                "Cancelled",
	}
}

func reservationTransitions() map[ReservationStatus][]ReservationStatus {
	return map[ReservationStatus][]ReservationStatus{
		Reserved:         {PackageDeposited, Expired, Cancelled},
		PackageDeposited: {ReadyForPickup, Expired, Cancelled},
		ReadyForPickup:   {PickedUp, Expired, Cancelled},
	}
}

// Validate checks that the ReservationStatus holds one of the defined values.
func (s ReservationStatus) Validate() error {
	if _, ok := getReservationStatusStrings()[s]; !ok || s == UnknownReservationStatus {
		return errs.NewValueIsInvalidErrorWithCause(
			"reservation status", fmt.Errorf("%d is not a valid reservation status", s))
	}
	return nil
}

// String returns the human-readable name of the reservation status.
func (s ReservationStatus) String() string {
	if str, ok := getReservationStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are allowed. A
// compartment referenced by a reservation in a non-terminal state must stay
// unavailable.
func (s ReservationStatus) IsTerminal() bool {
	return s == PickedUp || s == Expired || s == Cancelled
}

// TransitionTo returns next when the transition is allowed by the table,
// otherwise a validation error describing the rejected move.
func (s ReservationStatus) TransitionTo(next ReservationStatus) (ReservationStatus, error) {
	if err := next.Validate(); err != nil {
		return UnknownReservationStatus, err
	}
	for _, allowed := range reservationTransitions()[s] {
		if allowed == next {
			return next, nil
		}
	}
	return UnknownReservationStatus, errs.NewValueIsInvalidErrorWithCause(
		"reservation status",
		fmt.Errorf("transition from %s to %s is not allowed", s, next),
	)
}
