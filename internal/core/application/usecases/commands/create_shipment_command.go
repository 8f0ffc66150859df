package commands

import (
	"errors"

	"mescolis/internal/core/domain/model/kernel"
	"mescolis/internal/core/domain/model/shipment"
	"mescolis/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
	ErrQuotedPriceIsInvalid = errors.New("quoted price must not be negative")
)

// CreateShipmentCommand represents a request to purchase a shipping label
// for a previously quoted carrier service.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	ownerID             kernel.UUID
	fromAddress         shipment.Address
	toAddress           shipment.Address
	shipmentType        shipment.Type
	dimensions          shipment.Dimensions
	carrierName         string
	serviceName         string
	quotedPrice         decimal.Decimal
	originLockerID      *int64
	destinationLockerID *int64

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to purchase a shipping label.
// Addresses and dimensions are validated value objects; the command only
// checks the pieces it assembles itself.
func NewCreateShipmentCommand(
	ownerID kernel.UUID,
	fromAddress shipment.Address,
	toAddress shipment.Address,
	shipmentType shipment.Type,
	dimensions shipment.Dimensions,
	carrierName string,
	serviceName string,
	quotedPrice decimal.Decimal,
	originLockerID *int64,
	destinationLockerID *int64,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		carrierName:         carrierName,
		serviceName:         serviceName,
		originLockerID:      originLockerID,
		destinationLockerID: destinationLockerID,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOwnerID(ownerID),
		cmd.setAddresses(fromAddress, toAddress),
		cmd.setShipmentType(shipmentType),
		cmd.setDimensions(dimensions),
		cmd.setQuotedPrice(quotedPrice),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// OwnerID returns the identifier of the user purchasing the label.
func (c CreateShipmentCommand) OwnerID() kernel.UUID { return c.ownerID }

// FromAddress returns the origin address.
func (c CreateShipmentCommand) FromAddress() shipment.Address { return c.fromAddress }

// ToAddress returns the destination address.
func (c CreateShipmentCommand) ToAddress() shipment.Address { return c.toAddress }

// ShipmentType returns the shipment classification.
func (c CreateShipmentCommand) ShipmentType() shipment.Type { return c.shipmentType }

// Dimensions returns the parcel weight and dimensions.
func (c CreateShipmentCommand) Dimensions() shipment.Dimensions { return c.dimensions }

// CarrierName returns the selected carrier.
func (c CreateShipmentCommand) CarrierName() string { return c.carrierName }

// ServiceName returns the selected carrier service level.
func (c CreateShipmentCommand) ServiceName() string { return c.serviceName }

// QuotedPrice returns the price quoted for the selected service.
func (c CreateShipmentCommand) QuotedPrice() decimal.Decimal { return c.quotedPrice }

// OriginLockerID returns the origin smart locker, if locker drop-off was chosen.
func (c CreateShipmentCommand) OriginLockerID() *int64 { return c.originLockerID }

// DestinationLockerID returns the destination smart locker, if locker delivery was chosen.
func (c CreateShipmentCommand) DestinationLockerID() *int64 { return c.destinationLockerID }

func (c *CreateShipmentCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateShipmentCommand) setAddresses(from shipment.Address, to shipment.Address) error {
	if err := errors.Join(from.Validate(), to.Validate()); err != nil {
		return err
	}

	c.fromAddress = from
	c.toAddress = to
	return nil
}

func (c *CreateShipmentCommand) setShipmentType(shipmentType shipment.Type) error {
	if err := shipmentType.Validate(); err != nil {
		return err
	}

	c.shipmentType = shipmentType
	return nil
}

func (c *CreateShipmentCommand) setDimensions(dimensions shipment.Dimensions) error {
	if err := dimensions.Validate(); err != nil {
		return err
	}

	c.dimensions = dimensions
	return nil
}

func (c *CreateShipmentCommand) setQuotedPrice(quotedPrice decimal.Decimal) error {
	if quotedPrice.IsNegative() {
		return ErrQuotedPriceIsInvalid
	}

	c.quotedPrice = quotedPrice
	return nil
}
