package locker

import (
	"errors"
	"strings"
	"time"

	"mescolis/internal/core/domain/model/kernel"
	"mescolis/internal/pkg/errs"
)

var (
	// ErrLockerIsNotConstructed is returned when a SmartLocker was not
	// created through NewSmartLocker or RestoreSmartLocker.
	ErrLockerIsNotConstructed = errors.New(
		"SmartLocker must be created via NewSmartLocker or RestoreSmartLocker")

	// ErrNoCapacity is returned when decrementing the available-compartment
	// counter below zero.
	ErrNoCapacity = errors.New("locker has no available compartments")
)

// SmartLocker is a physical locker site with geocoordinates and a
// denormalized available-compartment counter.
//
// Invariant: AvailableCompartments must stay consistent with the
// availability flags of the locker's compartments. The counter is only
// adjusted inside the same atomic unit that flips a compartment flag.
type SmartLocker struct {
	id                    int64
	lockerCode            string
	locationName          string
	address               string
	city                  string
	province              string
	postalCode            string
	position              kernel.GeoPoint
	status                LockerStatus
	totalCompartments     int
	availableCompartments int
	hasPOS                bool
	isIndoor              bool
	sitePartner           string
	installedAt           time.Time
	lastMaintenanceAt     *time.Time

	isConstructed bool
}

// NewSmartLocker creates an Active locker site with all compartments
// available.
func NewSmartLocker(
	lockerCode string,
	locationName string,
	address string,
	city string,
	province string,
	postalCode string,
	position kernel.GeoPoint,
	totalCompartments int,
	hasPOS bool,
	isIndoor bool,
	sitePartner string,
	installedAt time.Time,
) (*SmartLocker, error) {
	l := &SmartLocker{
		address:               address,
		city:                  city,
		province:              province,
		postalCode:            postalCode,
		status:                Active,
		totalCompartments:     totalCompartments,
		availableCompartments: totalCompartments,
		hasPOS:                hasPOS,
		isIndoor:              isIndoor,
		sitePartner:           sitePartner,
		installedAt:           installedAt.UTC(),
		isConstructed:         true,
	}

	if err := errors.Join(
		l.setLockerCode(lockerCode),
		l.setLocationName(locationName),
		l.setPosition(position),
		l.setTotalCompartments(totalCompartments),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreSmartLocker reconstructs a SmartLocker from persistence.
func RestoreSmartLocker(
	id int64,
	lockerCode string,
	locationName string,
	address string,
	city string,
	province string,
	postalCode string,
	position kernel.GeoPoint,
	status LockerStatus,
	totalCompartments int,
	availableCompartments int,
	hasPOS bool,
	isIndoor bool,
	sitePartner string,
	installedAt time.Time,
	lastMaintenanceAt *time.Time,
) (*SmartLocker, error) {
	l := &SmartLocker{
		id:                    id,
		address:               address,
		city:                  city,
		province:              province,
		postalCode:            postalCode,
		availableCompartments: availableCompartments,
		hasPOS:                hasPOS,
		isIndoor:              isIndoor,
		sitePartner:           sitePartner,
		installedAt:           installedAt,
		lastMaintenanceAt:     lastMaintenanceAt,
		isConstructed:         true,
	}

	if err := errors.Join(
		l.setLockerCode(lockerCode),
		l.setLocationName(locationName),
		l.setPosition(position),
		l.setTotalCompartments(totalCompartments),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	l.status = status

	if availableCompartments < 0 || availableCompartments > totalCompartments {
		return nil, errs.NewValueIsOutOfRangeError(
			"available compartments", availableCompartments, 0, totalCompartments)
	}

	return l, nil
}

// Validate ensures the SmartLocker was created through a constructor.
func (l *SmartLocker) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLockerIsNotConstructed
	}
	return nil
}

// ID returns the persistence identifier.
func (l *SmartLocker) ID() int64 { return l.id }

// LockerCode returns the externally meaningful locker code.
func (l *SmartLocker) LockerCode() string { return l.lockerCode }

// LocationName returns the human-readable site name.
func (l *SmartLocker) LocationName() string { return l.locationName }

// Address returns the street address of the site.
func (l *SmartLocker) Address() string { return l.address }

// City returns the site city.
func (l *SmartLocker) City() string { return l.city }

// Province returns the site province.
func (l *SmartLocker) Province() string { return l.province }

// PostalCode returns the site postal code.
func (l *SmartLocker) PostalCode() string { return l.postalCode }

// Position returns the geographic coordinates of the site.
func (l *SmartLocker) Position() kernel.GeoPoint { return l.position }

// Status returns the operational status.
func (l *SmartLocker) Status() LockerStatus { return l.status }

// TotalCompartments returns the number of compartments installed.
func (l *SmartLocker) TotalCompartments() int { return l.totalCompartments }

// AvailableCompartments returns the denormalized free-compartment counter.
func (l *SmartLocker) AvailableCompartments() int { return l.availableCompartments }

// HasPOS reports whether the site has a point-of-sale terminal.
func (l *SmartLocker) HasPOS() bool { return l.hasPOS }

// IsIndoor reports whether the locker is installed indoors.
func (l *SmartLocker) IsIndoor() bool { return l.isIndoor }

// SitePartner returns the optional hosting partner name.
func (l *SmartLocker) SitePartner() string { return l.sitePartner }

// InstalledAt returns the installation time.
func (l *SmartLocker) InstalledAt() time.Time { return l.installedAt }

// LastMaintenanceAt returns the last maintenance time, or nil.
func (l *SmartLocker) LastMaintenanceAt() *time.Time { return l.lastMaintenanceAt }

// DecrementAvailable reduces the free-compartment counter when a
// compartment is held. It must be called in the same atomic unit as the
// compartment flip.
func (l *SmartLocker) DecrementAvailable() error {
	if l.availableCompartments <= 0 {
		return ErrNoCapacity
	}
	l.availableCompartments--
	return nil
}

// IncrementAvailable raises the free-compartment counter when a held
// compartment is released.
func (l *SmartLocker) IncrementAvailable() error {
	if l.availableCompartments >= l.totalCompartments {
		return errs.NewValueIsOutOfRangeError(
			"available compartments", l.availableCompartments+1, 0, l.totalCompartments)
	}
	l.availableCompartments++
	return nil
}

// ChangeStatus moves the locker to a new operational status.
func (l *SmartLocker) ChangeStatus(status LockerStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	l.status = status
	return nil
}

func (l *SmartLocker) setLockerCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return errs.NewValueIsRequiredError("locker code")
	}
	l.lockerCode = code
	return nil
}

func (l *SmartLocker) setLocationName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("location name")
	}
	l.locationName = name
	return nil
}

func (l *SmartLocker) setPosition(position kernel.GeoPoint) error {
	if err := position.Validate(); err != nil {
		return err
	}
	l.position = position
	return nil
}

func (l *SmartLocker) setTotalCompartments(total int) error {
	if total <= 0 {
		return errs.NewValueIsInvalidError("total compartments")
	}
	l.totalCompartments = total
	return nil
}
