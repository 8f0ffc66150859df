package locker

import (
	"fmt"

	"mescolis/internal/pkg/errs"
)

// LockerStatus is the operational state of a smart locker site.
// Only Active lockers are offered to customers.
type LockerStatus int

const (
	// UnknownLockerStatus represents an invalid or undefined locker status.
	UnknownLockerStatus LockerStatus = iota

	// Active lockers accept reservations and deposits.
	Active

	// Maintenance lockers are temporarily out of service for upkeep.
	Maintenance

	// Offline lockers are unreachable.
	Offline

	// Deploying lockers are installed but not yet opened.
	Deploying
)

func getLockerStatusStrings() map[LockerStatus]string {
	return map[LockerStatus]string{
		UnknownLockerStatus: "Unknown",
		Active:              "Active",
		Maintenance:         "Maintenance",
		Offline:             "Offline",
		Deploying:           "Deploying",
	}
}

// Validate checks that the LockerStatus holds one of the defined values.
func (s LockerStatus) Validate() error {
	switch s {
	case Active, Maintenance, Offline, Deploying:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"locker status", fmt.Errorf("%d is not a valid locker status", s))
	}
}

// String returns the human-readable name of the locker status.
func (s LockerStatus) String() string {
	if str, ok := getLockerStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
