// Package lockerrepo provides data transfer objects and mapping functions
// for smart locker, compartment and reservation persistence. Compartment
// handout runs inside a transaction with row locking; see the repository.
package lockerrepo

import (
	"time"

	"mescolis/internal/core/domain/model/kernel"
	"mescolis/internal/core/domain/model/locker"

	"github.com/google/uuid"
)

// SmartLockerDTO represents the database structure for persisting smart
// lockers. AvailableCompartments is a denormalized counter kept in step with
// compartment rows through atomic SQL arithmetic.
type SmartLockerDTO struct {
	ID                    int64  `gorm:"primaryKey;autoIncrement"`
	LockerCode            string `gorm:"uniqueIndex;not null"`
	LocationName          string
	Address               string
	City                  string
	Province              string
	PostalCode            string
	Latitude              float64
	Longitude             float64
	Status                int `gorm:"index"`
	TotalCompartments     int
	AvailableCompartments int
	HasPOS                bool `gorm:"column:has_pos"`
	IsIndoor              bool
	SitePartner           string
	InstalledAt           time.Time
	LastMaintenanceAt     *time.Time
}

// TableName specifies the database table name for smart lockers.
func (SmartLockerDTO) TableName() string {
	return "smart_lockers"
}

// CompartmentDTO represents a single physical compartment of a locker.
type CompartmentDTO struct {
	ID                int64 `gorm:"primaryKey;autoIncrement"`
	LockerID          int64 `gorm:"index"`
	CompartmentNumber string
	Size              int `gorm:"index"`
	IsAvailable       bool
	IsOperational     bool
}

// TableName specifies the database table name for compartments.
func (CompartmentDTO) TableName() string {
	return "locker_compartments"
}

// ReservationDTO represents the database structure for persisting
// compartment reservations.
type ReservationDTO struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	CompartmentID int64     `gorm:"index"`
	UserID        uuid.UUID `gorm:"type:uuid;index"`
	ShipmentID    *int64
	PickupPin     string
	Status        int `gorm:"index"`
	HoldHours     int
	ReservedAt    time.Time
	ExpiresAt     time.Time `gorm:"index"`
	DepositedAt   *time.Time
	PickedUpAt    *time.Time
	PaymentID     *int64
}

// TableName specifies the database table name for reservations.
func (ReservationDTO) TableName() string {
	return "locker_reservations"
}

func lockerToDomain(dto SmartLockerDTO) (*locker.SmartLocker, error) {
	position, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	return locker.RestoreSmartLocker(
		dto.ID,
		dto.LockerCode,
		dto.LocationName,
		dto.Address,
		dto.City,
		dto.Province,
		dto.PostalCode,
		position,
		locker.LockerStatus(dto.Status),
		dto.TotalCompartments,
		dto.AvailableCompartments,
		dto.HasPOS,
		dto.IsIndoor,
		dto.SitePartner,
		dto.InstalledAt,
		dto.LastMaintenanceAt,
	)
}

func compartmentToDomain(dto CompartmentDTO) (*locker.Compartment, error) {
	return locker.RestoreCompartment(
		dto.ID,
		dto.LockerID,
		dto.CompartmentNumber,
		locker.CompartmentSize(dto.Size),
		dto.IsAvailable,
		dto.IsOperational,
	)
}

func reservationFromDomain(aggregate *locker.Reservation) ReservationDTO {
	return ReservationDTO{
		ID:            aggregate.ID(),
		CompartmentID: aggregate.CompartmentID(),
		UserID:        aggregate.UserID().Bytes(),
		ShipmentID:    aggregate.ShipmentID(),
		PickupPin:     aggregate.PickupPin(),
		Status:        int(aggregate.Status()),
		HoldHours:     aggregate.HoldHours(),
		ReservedAt:    aggregate.ReservedAt(),
		ExpiresAt:     aggregate.ExpiresAt(),
		DepositedAt:   aggregate.DepositedAt(),
		PickedUpAt:    aggregate.PickedUpAt(),
		PaymentID:     aggregate.PaymentID(),
	}
}

func reservationToDomain(dto ReservationDTO) (*locker.Reservation, error) {
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return locker.RestoreReservation(
		dto.ID,
		dto.CompartmentID,
		userID,
		dto.ShipmentID,
		dto.PickupPin,
		locker.ReservationStatus(dto.Status),
		dto.HoldHours,
		dto.ReservedAt,
		dto.ExpiresAt,
		dto.DepositedAt,
		dto.PickedUpAt,
		dto.PaymentID,
	)
}
