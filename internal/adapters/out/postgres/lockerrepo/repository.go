package lockerrepo

import (
	"context"
	"errors"
	"time"

	"mescolis/internal/core/domain/model/locker"
	"mescolis/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormLockerRepository implements LockerRepository using GORM.
//
// The reservation path is written for correctness under concurrency:
// SelectAvailableCompartment takes a row lock, MarkCompartmentUnavailable is
// a compare-and-set, and AdjustAvailableCompartments updates the counter
// with SQL arithmetic instead of read-modify-write.
type GormLockerRepository struct {
	db *gorm.DB
}

// NewGormLockerRepository creates a new GORM locker repository.
func NewGormLockerRepository(db *gorm.DB) *GormLockerRepository {
	return &GormLockerRepository{db: db}
}

// GetLocker retrieves a smart locker by ID.
func (r *GormLockerRepository) GetLocker(ctx context.Context, id int64) (*locker.SmartLocker, error) {
	var dto SmartLockerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("locker", id)
		}
		return nil, err
	}

	return lockerToDomain(dto)
}

// GetCompartment retrieves a compartment by ID.
func (r *GormLockerRepository) GetCompartment(ctx context.Context, id int64) (*locker.Compartment, error) {
	var dto CompartmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("compartment", id)
		}
		return nil, err
	}

	return compartmentToDomain(dto)
}

// SelectAvailableCompartment picks one free, operational compartment of the
// requested size at the locker and locks its row until the surrounding
// transaction ends. Two concurrent reservations therefore never see the
// same compartment.
func (r *GormLockerRepository) SelectAvailableCompartment(
	ctx context.Context, lockerID int64, size locker.CompartmentSize,
) (*locker.Compartment, error) {
	if err := size.Validate(); err != nil {
		return nil, err
	}

	var dto CompartmentDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("locker_id = ? AND size = ? AND is_available AND is_operational", lockerID, int(size)).
		Order("id").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("available compartment", lockerID)
		}
		return nil, err
	}

	return compartmentToDomain(dto)
}

// MarkCompartmentUnavailable flips a compartment to unavailable only if it
// is still available. Losing the race surfaces as errs.ErrCompartmentTaken.
func (r *GormLockerRepository) MarkCompartmentUnavailable(ctx context.Context, compartmentID int64) error {
	result := r.db.WithContext(ctx).Model(&CompartmentDTO{}).
		Where("id = ? AND is_available", compartmentID).
		Update("is_available", false)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.ErrCompartmentTaken
	}

	return nil
}

// MarkCompartmentAvailable flips a compartment back to available.
func (r *GormLockerRepository) MarkCompartmentAvailable(ctx context.Context, compartmentID int64) error {
	result := r.db.WithContext(ctx).Model(&CompartmentDTO{}).
		Where("id = ?", compartmentID).
		Update("is_available", true)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("compartment", compartmentID)
	}

	return nil
}

// AdjustAvailableCompartments atomically adds delta to the locker's counter.
// The arithmetic runs in SQL so concurrent adjustments never lose updates;
// the WHERE clause keeps the counter within [0, total_compartments].
func (r *GormLockerRepository) AdjustAvailableCompartments(ctx context.Context, lockerID int64, delta int) error {
	result := r.db.WithContext(ctx).Model(&SmartLockerDTO{}).
		Where("id = ? AND available_compartments + ? BETWEEN 0 AND total_compartments", lockerID, delta).
		Update("available_compartments", gorm.Expr("available_compartments + ?", delta))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return locker.ErrNoCapacity
	}

	return nil
}

// AddReservation saves a new reservation and assigns the generated ID.
func (r *GormLockerRepository) AddReservation(ctx context.Context, aggregate *locker.Reservation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := reservationFromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return aggregate.AssignID(dto.ID)
}

// UpdateReservation saves an existing reservation.
func (r *GormLockerRepository) UpdateReservation(ctx context.Context, aggregate *locker.Reservation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := reservationFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ReservationDTO{}).Where("id = ?", dto.ID).
		Select("*").Omit("id", "reserved_at").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// GetReservation retrieves a reservation by ID.
func (r *GormLockerRepository) GetReservation(ctx context.Context, id int64) (*locker.Reservation, error) {
	var dto ReservationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("reservation", id)
		}
		return nil, err
	}

	return reservationToDomain(dto)
}

// FindExpiredReservations retrieves reservations whose hold window ended
// before the cutoff and that still hold a compartment.
func (r *GormLockerRepository) FindExpiredReservations(ctx context.Context, before time.Time) ([]*locker.Reservation, error) {
	var dtos []ReservationDTO
	err := r.db.WithContext(ctx).
		Where("expires_at < ? AND status IN ?", before.UTC(), []int{
			int(locker.Reserved),
			int(locker.PackageDeposited),
			int(locker.ReadyForPickup),
		}).
		Order("expires_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	reservations := make([]*locker.Reservation, 0, len(dtos))
	for _, dto := range dtos {
		reservation, convErr := reservationToDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		reservations = append(reservations, reservation)
	}

	return reservations, nil
}
