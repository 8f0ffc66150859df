// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. A shipment row references two address rows and
// owns its tracking event rows.
package shipmentrepo

import (
	"time"

	"mescolis/internal/core/domain/model/kernel"
	"mescolis/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddressDTO represents a persisted postal address. Addresses are immutable
// once written; a corrected address becomes a new row.
type AddressDTO struct {
	ID            int64 `gorm:"primaryKey;autoIncrement"`
	Street        string
	Street2       string
	City          string
	Province      string
	PostalCode    string
	Country       string
	CompanyName   string
	ContactName   string
	ContactPhone  string
	IsResidential bool
}

// TableName specifies the database table name for addresses.
func (AddressDTO) TableName() string {
	return "addresses"
}

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. The tracking number carries a unique index; inserts racing on
// the same number fail there.
type ShipmentDTO struct {
	ID                  int64     `gorm:"primaryKey;autoIncrement"`
	TrackingNumber      string    `gorm:"uniqueIndex;not null"`
	OwnerID             uuid.UUID `gorm:"type:uuid;index;column:owner_id"`
	FromAddressID       int64
	ToAddressID         int64
	Type                int
	WeightKg            decimal.Decimal `gorm:"type:numeric(10,3)"`
	LengthCm            decimal.Decimal `gorm:"type:numeric(10,2)"`
	WidthCm             decimal.Decimal `gorm:"type:numeric(10,2)"`
	HeightCm            decimal.Decimal `gorm:"type:numeric(10,2)"`
	CarrierName         string
	ServiceName         string
	QuotedPrice         decimal.Decimal  `gorm:"type:numeric(10,2)"`
	FinalPrice          *decimal.Decimal `gorm:"type:numeric(10,2)"`
	Currency            string
	Status              int `gorm:"index"`
	LabelURL            string
	OriginLockerID      *int64
	DestinationLockerID *int64
	PaymentID           *int64
	CreatedAt           time.Time
	ShippedAt           *time.Time
	DeliveredAt         *time.Time
	EstimatedDelivery   *time.Time
}

// TableName specifies the database table name for shipments.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// TrackingEventDTO represents one scan event on a shipment's timeline.
type TrackingEventDTO struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	ShipmentID  int64 `gorm:"index"`
	Status      string
	Description string
	Location    string
	OccurredAt  time.Time `gorm:"column:occurred_at"`
}

// TableName specifies the database table name for tracking events.
func (TrackingEventDTO) TableName() string {
	return "tracking_events"
}

func addressFromDomain(address shipment.Address) AddressDTO {
	return AddressDTO{
		Street:        address.Street(),
		Street2:       address.Street2(),
		City:          address.City(),
		Province:      address.Province(),
		PostalCode:    address.PostalCode(),
		Country:       address.Country(),
		CompanyName:   address.CompanyName(),
		ContactName:   address.ContactName(),
		ContactPhone:  address.ContactPhone(),
		IsResidential: address.IsResidential(),
	}
}

func addressToDomain(dto AddressDTO) (shipment.Address, error) {
	return shipment.NewAddress(
		dto.Street,
		dto.Street2,
		dto.City,
		dto.Province,
		dto.PostalCode,
		dto.Country,
		dto.CompanyName,
		dto.ContactName,
		dto.ContactPhone,
		dto.IsResidential,
	)
}

func fromDomain(aggregate *shipment.Shipment, fromAddressID int64, toAddressID int64) ShipmentDTO {
	dims := aggregate.PackageDimensions()
	return ShipmentDTO{
		ID:                  aggregate.ID(),
		TrackingNumber:      aggregate.TrackingNumber(),
		OwnerID:             aggregate.OwnerID().Bytes(),
		FromAddressID:       fromAddressID,
		ToAddressID:         toAddressID,
		Type:                int(aggregate.ShipmentType()),
		WeightKg:            dims.WeightKg,
		LengthCm:            dims.LengthCm,
		WidthCm:             dims.WidthCm,
		HeightCm:            dims.HeightCm,
		CarrierName:         aggregate.CarrierName(),
		ServiceName:         aggregate.ServiceName(),
		QuotedPrice:         aggregate.QuotedPrice(),
		FinalPrice:          aggregate.FinalPrice(),
		Currency:            aggregate.Currency(),
		Status:              int(aggregate.Status()),
		LabelURL:            aggregate.LabelURL(),
		OriginLockerID:      aggregate.OriginLockerID(),
		DestinationLockerID: aggregate.DestinationLockerID(),
		PaymentID:           aggregate.PaymentID(),
		CreatedAt:           aggregate.CreatedAt(),
		ShippedAt:           aggregate.ShippedAt(),
		DeliveredAt:         aggregate.DeliveredAt(),
		EstimatedDelivery:   aggregate.EstimatedDelivery(),
	}
}

func eventFromDomain(shipmentID int64, event shipment.TrackingEvent) TrackingEventDTO {
	return TrackingEventDTO{
		ShipmentID:  shipmentID,
		Status:      event.Status(),
		Description: event.Description(),
		Location:    event.Location(),
		OccurredAt:  event.Timestamp(),
	}
}

func toDomain(dto ShipmentDTO, from AddressDTO, to AddressDTO, eventDTOs []TrackingEventDTO) (*shipment.Shipment, error) {
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	fromAddress, err := addressToDomain(from)
	if err != nil {
		return nil, err
	}

	toAddress, err := addressToDomain(to)
	if err != nil {
		return nil, err
	}

	events := make([]shipment.TrackingEvent, 0, len(eventDTOs))
	for _, e := range eventDTOs {
		event, eventErr := shipment.NewTrackingEvent(e.Status, e.Description, e.Location, e.OccurredAt)
		if eventErr != nil {
			return nil, eventErr
		}
		events = append(events, event)
	}

	return shipment.RestoreShipment(
		dto.ID,
		dto.TrackingNumber,
		ownerID,
		fromAddress,
		toAddress,
		shipment.Type(dto.Type),
		shipment.Dimensions{
			WeightKg: dto.WeightKg,
			LengthCm: dto.LengthCm,
			WidthCm:  dto.WidthCm,
			HeightCm: dto.HeightCm,
		},
		dto.CarrierName,
		dto.ServiceName,
		dto.QuotedPrice,
		dto.FinalPrice,
		dto.Currency,
		shipment.Status(dto.Status),
		dto.LabelURL,
		dto.OriginLockerID,
		dto.DestinationLockerID,
		dto.CreatedAt,
		dto.ShippedAt,
		dto.DeliveredAt,
		dto.EstimatedDelivery,
		dto.PaymentID,
		events,
	)
}
