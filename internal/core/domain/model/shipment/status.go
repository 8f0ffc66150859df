package shipment

import (
	"fmt"

	"mescolis/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
// It implements a state machine with an explicit transition table so that a
// shipment can never move backwards or skip into an inconsistent state.
//
// State transitions:
//
//	Draft ──> Quoted ──> LabelCreated ──> PickedUp ──> InTransit ──┬──> Delivered
//	                                                      │        ├──> AtLocker ──> Delivered
//	                                                      │        │        │
//	                                                      └────────┴────────┴──> Returned
//	(Cancelled is reachable from every state before PickedUp)
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	UnknownStatus Status = iota

	// Draft is a shipment being composed, before any quote is attached.
	Draft

	// Quoted is a shipment with a selected carrier rate but no label yet.
	Quoted

	// LabelCreated is the initial status of shipments created through the
	// public API: the label exists and the parcel awaits carrier pickup.
	LabelCreated

	// PickedUp means the carrier has collected the parcel.
	PickedUp

	// InTransit means the parcel is moving through the carrier network.
	InTransit

	// AtLocker means the parcel was deposited in a destination smart locker.
	AtLocker

	// Delivered is a final state: the parcel reached its recipient.
	Delivered

	// Returned is a final state: the parcel went back to the sender.
	Returned

	// Cancelled is a final state: the shipment was abandoned before pickup.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "Unknown",
		Draft:         "Draft",
		Quoted:        "Quoted",
		LabelCreated:  "LabelCreated",
		PickedUp:      "PickedUp",
		InTransit:     "InTransit",
		AtLocker:      "AtLocker",
		Delivered:     "Delivered",
		Returned:      "Returned",
		Cancelled:     "Cancelled",
	}
}

// transitions is the explicit table of allowed status successions.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		Draft:        {Quoted, Cancelled},
		Quoted:       {LabelCreated, Cancelled},
		LabelCreated: {PickedUp, Cancelled},
		PickedUp:     {InTransit, Returned},
		InTransit:    {AtLocker, Delivered, Returned},
		AtLocker:     {Delivered, Returned},
	}
}

// Validate checks that the Status holds one of the defined values.
func (s Status) Validate() error {
	if s == UnknownStatus {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether the status permits no further transitions.
func (s Status) IsFinal() bool {
	return s == Delivered || s == Returned || s == Cancelled
}

// CanTransitionTo reports whether next is an allowed successor of s.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo returns next when the transition is allowed by the table,
// otherwise a validation error describing the rejected move.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return UnknownStatus, err
	}
	if !s.CanTransitionTo(next) {
		return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("transition from %s to %s is not allowed", s, next),
		)
	}
	return next, nil
}
