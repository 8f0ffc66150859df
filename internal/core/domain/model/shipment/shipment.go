// Package shipment contains the shipment aggregate: the parcel being moved,
// its origin and destination addresses, its validated status lifecycle and
// the append-only trail of tracking events.
package shipment

import (
	"errors"
	"fmt"
	"time"

	"mescolis/internal/core/domain/model/kernel"
	"mescolis/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment was not created
	// through NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")

	// ErrIDAlreadyAssigned is returned when assigning a persistence identifier
	// to a shipment that already has one.
	ErrIDAlreadyAssigned = errors.New("shipment id is already assigned")
)

// estimatedDeliveryLeadDays is the placeholder delivery estimate attached to
// freshly labelled shipments.
const estimatedDeliveryLeadDays = 5

// Dimensions holds the physical measurements of a shipment.
type Dimensions struct {
	WeightKg decimal.Decimal
	LengthCm decimal.Decimal
	WidthCm  decimal.Decimal
	HeightCm decimal.Decimal
}

// Validate checks that all measurements are positive.
func (d Dimensions) Validate() error {
	if !d.WeightKg.IsPositive() {
		return errs.NewValueIsInvalidError("weight")
	}
	if !d.LengthCm.IsPositive() || !d.WidthCm.IsPositive() || !d.HeightCm.IsPositive() {
		return errs.NewValueIsInvalidError("dimensions")
	}
	return nil
}

// Shipment is the aggregate root for the shipment lifecycle. It owns the
// origin/destination addresses, the chosen carrier rate and the append-only
// list of tracking events.
//
// Invariants:
//   - The tracking number is assigned exactly once at creation and never
//     changes afterwards
//   - Status transitions follow the explicit table in Status
//   - Tracking events are append-only
type Shipment struct {
	id             int64
	trackingNumber string
	ownerID        kernel.UUID
	fromAddress    Address
	toAddress      Address
	shipmentType   Type
	dimensions     Dimensions
	carrierName    string
	serviceName    string
	quotedPrice    decimal.Decimal
	finalPrice     *decimal.Decimal
	currency       string
	status         Status
	labelURL       string

	originLockerID      *int64
	destinationLockerID *int64

	createdAt         time.Time
	shippedAt         *time.Time
	deliveredAt       *time.Time
	estimatedDelivery *time.Time

	paymentID *int64
	events    []TrackingEvent

	isConstructed bool
}

// NewShipment creates a shipment in LabelCreated status. A tracking number
// is generated, the delivery estimate is set, and a synthetic
// "Label Created" tracking event is appended. The persistence identifier is
// assigned later by the repository via AssignID.
func NewShipment(
	ownerID kernel.UUID,
	fromAddress Address,
	toAddress Address,
	shipmentType Type,
	dimensions Dimensions,
	carrierName string,
	serviceName string,
	quotedPrice decimal.Decimal,
	originLockerID *int64,
	destinationLockerID *int64,
	now time.Time,
) (*Shipment, error) {
	if err := errors.Join(
		ownerID.Validate(),
		fromAddress.Validate(),
		toAddress.Validate(),
		shipmentType.Validate(),
		dimensions.Validate(),
	); err != nil {
		return nil, err
	}
	if quotedPrice.IsNegative() {
		return nil, errs.NewValueIsInvalidError("quoted price")
	}

	now = now.UTC()
	trackingNumber := GenerateTrackingNumber(now)
	estimated := now.AddDate(0, 0, estimatedDeliveryLeadDays)

	s := &Shipment{
		trackingNumber:      trackingNumber,
		ownerID:             ownerID,
		fromAddress:         fromAddress,
		toAddress:           toAddress,
		shipmentType:        shipmentType,
		dimensions:          dimensions,
		carrierName:         carrierName,
		serviceName:         serviceName,
		quotedPrice:         quotedPrice,
		currency:            "CAD",
		status:              LabelCreated,
		labelURL:            fmt.Sprintf("/labels/%s.pdf", trackingNumber),
		originLockerID:      originLockerID,
		destinationLockerID: destinationLockerID,
		createdAt:           now,
		estimatedDelivery:   &estimated,
		isConstructed:       true,
	}

	event, err := NewTrackingEvent(
		"Label Created",
		fmt.Sprintf("Shipping label created via MesColis with %s %s", carrierName, serviceName),
		fmt.Sprintf("%s, %s", fromAddress.City(), fromAddress.Province()),
		now,
	)
	if err != nil {
		return nil, err
	}
	s.events = append(s.events, event)

	return s, nil
}

// RestoreShipment reconstructs a Shipment from persistence.
func RestoreShipment(
	id int64,
	trackingNumber string,
	ownerID kernel.UUID,
	fromAddress Address,
	toAddress Address,
	shipmentType Type,
	dimensions Dimensions,
	carrierName string,
	serviceName string,
	quotedPrice decimal.Decimal,
	finalPrice *decimal.Decimal,
	currency string,
	status Status,
	labelURL string,
	originLockerID *int64,
	destinationLockerID *int64,
	createdAt time.Time,
	shippedAt *time.Time,
	deliveredAt *time.Time,
	estimatedDelivery *time.Time,
	paymentID *int64,
	events []TrackingEvent,
) (*Shipment, error) {
	if err := errors.Join(
		ValidateTrackingNumber(trackingNumber),
		ownerID.Validate(),
		fromAddress.Validate(),
		toAddress.Validate(),
		shipmentType.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Shipment{
		id:                  id,
		trackingNumber:      trackingNumber,
		ownerID:             ownerID,
		fromAddress:         fromAddress,
		toAddress:           toAddress,
		shipmentType:        shipmentType,
		dimensions:          dimensions,
		carrierName:         carrierName,
		serviceName:         serviceName,
		quotedPrice:         quotedPrice,
		finalPrice:          finalPrice,
		currency:            currency,
		status:              status,
		labelURL:            labelURL,
		originLockerID:      originLockerID,
		destinationLockerID: destinationLockerID,
		createdAt:           createdAt,
		shippedAt:           shippedAt,
		deliveredAt:         deliveredAt,
		estimatedDelivery:   estimatedDelivery,
		paymentID:           paymentID,
		events:              events,
		isConstructed:       true,
	}, nil
}

// Validate ensures the Shipment was created through a constructor.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// AssignID records the persistence identifier after the initial insert.
// It can be called exactly once.
func (s *Shipment) AssignID(id int64) error {
	if s.id != 0 {
		return ErrIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("shipment id")
	}
	s.id = id
	return nil
}

// ID returns the persistence identifier, or 0 before the first insert.
func (s *Shipment) ID() int64 { return s.id }

// TrackingNumber returns the immutable tracking number.
func (s *Shipment) TrackingNumber() string { return s.trackingNumber }

// OwnerID returns the identifier of the user who created the shipment.
func (s *Shipment) OwnerID() kernel.UUID { return s.ownerID }

// FromAddress returns the origin address.
func (s *Shipment) FromAddress() Address { return s.fromAddress }

// ToAddress returns the destination address.
func (s *Shipment) ToAddress() Address { return s.toAddress }

// ShipmentType returns the shipment classification.
func (s *Shipment) ShipmentType() Type { return s.shipmentType }

// PackageDimensions returns the physical measurements.
func (s *Shipment) PackageDimensions() Dimensions { return s.dimensions }

// CarrierName returns the chosen carrier.
func (s *Shipment) CarrierName() string { return s.carrierName }

// ServiceName returns the chosen carrier service level.
func (s *Shipment) ServiceName() string { return s.serviceName }

// QuotedPrice returns the price quoted at creation.
func (s *Shipment) QuotedPrice() decimal.Decimal { return s.quotedPrice }

// FinalPrice returns the settled price, or nil before settlement.
func (s *Shipment) FinalPrice() *decimal.Decimal { return s.finalPrice }

// Currency returns the ISO currency code of the prices.
func (s *Shipment) Currency() string { return s.currency }

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status { return s.status }

// LabelURL returns the path of the generated shipping label.
func (s *Shipment) LabelURL() string { return s.labelURL }

// OriginLockerID returns the origin smart locker, or nil.
func (s *Shipment) OriginLockerID() *int64 { return s.originLockerID }

// DestinationLockerID returns the destination smart locker, or nil.
func (s *Shipment) DestinationLockerID() *int64 { return s.destinationLockerID }

// CreatedAt returns the creation time.
func (s *Shipment) CreatedAt() time.Time { return s.createdAt }

// ShippedAt returns the pickup time, or nil.
func (s *Shipment) ShippedAt() *time.Time { return s.shippedAt }

// DeliveredAt returns the delivery time, or nil.
func (s *Shipment) DeliveredAt() *time.Time { return s.deliveredAt }

// EstimatedDelivery returns the delivery estimate, or nil.
func (s *Shipment) EstimatedDelivery() *time.Time { return s.estimatedDelivery }

// PaymentID returns the attached payment record, or nil.
func (s *Shipment) PaymentID() *int64 { return s.paymentID }

// Events returns the tracking events in the order they were appended.
func (s *Shipment) Events() []TrackingEvent { return s.events }

// ChangeStatus moves the shipment to next, validating the transition
// against the status table, and appends a tracking event recording the
// move. Pickup and delivery timestamps are captured on the corresponding
// transitions.
func (s *Shipment) ChangeStatus(next Status, description string, location string, now time.Time) error {
	newStatus, err := s.status.TransitionTo(next)
	if err != nil {
		return err
	}

	event, err := NewTrackingEvent(newStatus.String(), description, location, now)
	if err != nil {
		return err
	}

	s.status = newStatus
	s.events = append(s.events, event)

	ts := now.UTC()
	switch newStatus {
	case PickedUp:
		s.shippedAt = &ts
	case Delivered:
		s.deliveredAt = &ts
	}
	return nil
}

// AttachPayment links a payment record to the shipment.
func (s *Shipment) AttachPayment(paymentID int64) error {
	if paymentID <= 0 {
		return errs.NewValueIsInvalidError("payment id")
	}
	s.paymentID = &paymentID
	return nil
}

// SettleFinalPrice records the final charged price.
func (s *Shipment) SettleFinalPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidError("final price")
	}
	s.finalPrice = &price
	return nil
}
