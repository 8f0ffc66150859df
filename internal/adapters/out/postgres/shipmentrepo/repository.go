package shipmentrepo

import (
	"context"
	"errors"

	"mescolis/internal/core/domain/model/kernel"
	"mescolis/internal/core/domain/model/shipment"
	"mescolis/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db *gorm.DB
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB) *GormShipmentRepository {
	return &GormShipmentRepository{db: db}
}

// Add saves a new shipment with its addresses and tracking events. The
// database's unique index on the tracking number is the collision authority;
// a violation surfaces as errs.ErrDuplicateTrackingNumber so callers can
// retry with a fresh number.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)

	fromDTO := addressFromDomain(aggregate.FromAddress())
	if err := db.Create(&fromDTO).Error; err != nil {
		return err
	}

	toDTO := addressFromDomain(aggregate.ToAddress())
	if err := db.Create(&toDTO).Error; err != nil {
		return err
	}

	dto := fromDomain(aggregate, fromDTO.ID, toDTO.ID)
	dto.ID = 0
	if err := db.Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.ErrDuplicateTrackingNumber
		}
		return err
	}

	if err := aggregate.AssignID(dto.ID); err != nil {
		return err
	}

	for _, event := range aggregate.Events() {
		eventDTO := eventFromDomain(dto.ID, event)
		if err := db.Create(&eventDTO).Error; err != nil {
			return err
		}
	}

	return nil
}

// Update saves an existing shipment and appends tracking events not yet
// persisted. Events already in the database are matched by timestamp and
// status; the timeline is append-only.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if aggregate.ID() == 0 {
		return gorm.ErrRecordNotFound
	}

	db := r.db.WithContext(ctx)

	var current ShipmentDTO
	if err := db.First(&current, "id = ?", aggregate.ID()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("shipment", aggregate.ID())
		}
		return err
	}

	dto := fromDomain(aggregate, current.FromAddressID, current.ToAddressID)
	result := db.Model(&ShipmentDTO{}).Where("id = ?", dto.ID).
		Select("*").Omit("id", "created_at").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	var persisted int64
	if err := db.Model(&TrackingEventDTO{}).Where("shipment_id = ?", dto.ID).Count(&persisted).Error; err != nil {
		return err
	}

	events := aggregate.Events()
	for i := int(persisted); i < len(events); i++ {
		eventDTO := eventFromDomain(dto.ID, events[i])
		if err := db.Create(&eventDTO).Error; err != nil {
			return err
		}
	}

	return nil
}

// Get retrieves a shipment by ID with its addresses and tracking events.
func (r *GormShipmentRepository) Get(ctx context.Context, id int64) (*shipment.Shipment, error) {
	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id)
		}
		return nil, err
	}

	return r.load(ctx, dto)
}

// GetByTrackingNumber retrieves a shipment by its tracking number.
func (r *GormShipmentRepository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*shipment.Shipment, error) {
	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "tracking_number = ?", trackingNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", trackingNumber)
		}
		return nil, err
	}

	return r.load(ctx, dto)
}

// GetForOwner retrieves a shipment only if it belongs to the given owner.
// Another owner's shipment is indistinguishable from a missing one.
func (r *GormShipmentRepository) GetForOwner(ctx context.Context, id int64, ownerID kernel.UUID) (*shipment.Shipment, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ? AND owner_id = ?", id, ownerID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id)
		}
		return nil, err
	}

	return r.load(ctx, dto)
}

func (r *GormShipmentRepository) load(ctx context.Context, dto ShipmentDTO) (*shipment.Shipment, error) {
	db := r.db.WithContext(ctx)

	var from, to AddressDTO
	if err := db.First(&from, "id = ?", dto.FromAddressID).Error; err != nil {
		return nil, err
	}
	if err := db.First(&to, "id = ?", dto.ToAddressID).Error; err != nil {
		return nil, err
	}

	var events []TrackingEventDTO
	if err := db.Order("occurred_at").Find(&events, "shipment_id = ?", dto.ID).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, from, to, events)
}
