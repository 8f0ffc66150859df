package shipment

import (
	"fmt"

	"mescolis/internal/pkg/errs"
)

// Type classifies what is being shipped. LTL freight uses a separate
// carrier rate table from the parcel types.
type Type int

const (
	// UnknownType represents an invalid or undefined shipment type.
	UnknownType Type = iota

	// Package is a standard parcel.
	Package

	// Envelope is a document-sized shipment.
	Envelope

	// LTLFreight is less-than-truckload palletized freight.
	LTLFreight

	// LockerToLocker is a parcel moved between two smart lockers.
	LockerToLocker
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		UnknownType:    "Unknown",
		Package:        "Package",
		Envelope:       "Envelope",
		LTLFreight:     "LTLFreight",
		LockerToLocker: "LockerToLocker",
	}
}

// TypeFromString parses a shipment type from its string form.
func TypeFromString(s string) (Type, error) {
	for t, name := range getTypeStrings() {
		if t != UnknownType && name == s {
			return t, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause(
		"shipment type", fmt.Errorf("%q is not a valid shipment type", s))
}

// Validate checks that the Type holds one of the defined values.
func (t Type) Validate() error {
	switch t {
	case Package, Envelope, LTLFreight, LockerToLocker:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"shipment type", fmt.Errorf("%d is not a valid shipment type", t))
	}
}

// String returns the human-readable name of the shipment type.
func (t Type) String() string {
	if s, ok := getTypeStrings()[t]; ok {
		return s
	}
	return "Unknown"
}
