// Package locker contains the smart-locker aggregate: physical locker
// sites, their individually lockable compartments and the reservations that
// hold compartments for pickups and deposits.
package locker

import (
	"fmt"

	"mescolis/internal/pkg/errs"
)

// CompartmentSize is the size class of a locker compartment.
type CompartmentSize int

const (
	// UnknownSize represents an invalid or undefined compartment size.
	UnknownSize CompartmentSize = iota

	// Small fits envelopes and small parcels.
	Small

	// Medium fits standard parcels.
	Medium

	// Large fits bulky parcels.
	Large

	// XL fits oversized parcels.
	XL
)

func getSizeStrings() map[CompartmentSize]string {
	return map[CompartmentSize]string{
		UnknownSize: "Unknown",
		Small:       "Small",
		Medium:      "Medium",
		Large:       "Large",
		XL:          "XL",
	}
}

// SizeFromString parses a compartment size from its string form.
func SizeFromString(s string) (CompartmentSize, error) {
	for size, name := range getSizeStrings() {
		if size != UnknownSize && name == s {
			return size, nil
		}
	}
	return UnknownSize, errs.NewValueIsInvalidErrorWithCause(
		"compartment size", fmt.Errorf("%q is not a valid compartment size", s))
}

// Validate checks that the CompartmentSize holds one of the defined values.
func (s CompartmentSize) Validate() error {
	switch s {
	case Small, Medium, Large, XL:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"compartment size", fmt.Errorf("%d is not a valid compartment size", s))
	}
}

// String returns the human-readable name of the size class.
func (s CompartmentSize) String() string {
	if str, ok := getSizeStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
