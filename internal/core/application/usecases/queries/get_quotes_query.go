// Package queries contains read-side operations of the CQRS architecture.
// Query handlers read the database directly and return plain response
// structs; they never load aggregates or modify state.
package queries

import (
	"errors"
	"strings"

	"mescolis/internal/core/domain/model/shipment"
	"mescolis/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetQuotesQueryIsNotConstructed = errors.New(
		"GetQuotesQuery must be created via NewGetQuotesQuery constructor",
	)
	ErrPostalCodeIsRequired = errors.New("postal code is required")
	ErrCountryIsRequired    = errors.New("country is required")
	ErrWeightIsInvalid      = errors.New("weight must be greater than 0")
)

// GetQuotesQuery requests carrier rates for a lane and parcel profile.
type GetQuotesQuery struct { //nolint:recvcheck //using for validation
	fromPostalCode string
	toPostalCode   string
	fromCountry    string
	toCountry      string
	weightKg       decimal.Decimal
	lengthCm       decimal.Decimal
	widthCm        decimal.Decimal
	heightCm       decimal.Decimal
	shipmentType   shipment.Type

	guard guard.ConstructorGuard
}

// NewGetQuotesQuery creates a query for carrier rates.
func NewGetQuotesQuery(
	fromPostalCode string,
	toPostalCode string,
	fromCountry string,
	toCountry string,
	weightKg decimal.Decimal,
	lengthCm decimal.Decimal,
	widthCm decimal.Decimal,
	heightCm decimal.Decimal,
	shipmentType shipment.Type,
) (GetQuotesQuery, error) {
	q := GetQuotesQuery{
		lengthCm: lengthCm,
		widthCm:  widthCm,
		heightCm: heightCm,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setPostalCodes(fromPostalCode, toPostalCode),
		q.setCountries(fromCountry, toCountry),
		q.setWeight(weightKg),
		q.setShipmentType(shipmentType),
	); err != nil {
		return GetQuotesQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetQuotesQuery) Validate() error {
	return q.guard.Validate(ErrGetQuotesQueryIsNotConstructed)
}

// FromPostalCode returns the origin postal code.
func (q GetQuotesQuery) FromPostalCode() string { return q.fromPostalCode }

// ToPostalCode returns the destination postal code.
func (q GetQuotesQuery) ToPostalCode() string { return q.toPostalCode }

// FromCountry returns the origin country code.
func (q GetQuotesQuery) FromCountry() string { return q.fromCountry }

// ToCountry returns the destination country code.
func (q GetQuotesQuery) ToCountry() string { return q.toCountry }

// WeightKg returns the parcel weight.
func (q GetQuotesQuery) WeightKg() decimal.Decimal { return q.weightKg }

// LengthCm returns the parcel length.
func (q GetQuotesQuery) LengthCm() decimal.Decimal { return q.lengthCm }

// WidthCm returns the parcel width.
func (q GetQuotesQuery) WidthCm() decimal.Decimal { return q.widthCm }

// HeightCm returns the parcel height.
func (q GetQuotesQuery) HeightCm() decimal.Decimal { return q.heightCm }

// ShipmentType returns the shipment classification.
func (q GetQuotesQuery) ShipmentType() shipment.Type { return q.shipmentType }

// QuoteResponse is a single carrier offer.
type QuoteResponse struct {
	CarrierName    string
	ServiceName    string
	Price          decimal.Decimal
	ListPrice      decimal.Decimal
	Savings        decimal.Decimal
	EstimatedDays  int
	CarrierLogoURL string
}

func (q *GetQuotesQuery) setPostalCodes(from string, to string) error {
	if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
		return ErrPostalCodeIsRequired
	}

	q.fromPostalCode = from
	q.toPostalCode = to
	return nil
}

func (q *GetQuotesQuery) setCountries(from string, to string) error {
	if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
		return ErrCountryIsRequired
	}

	q.fromCountry = strings.ToUpper(from)
	q.toCountry = strings.ToUpper(to)
	return nil
}

func (q *GetQuotesQuery) setWeight(weightKg decimal.Decimal) error {
	if !weightKg.IsPositive() {
		return ErrWeightIsInvalid
	}

	q.weightKg = weightKg
	return nil
}

func (q *GetQuotesQuery) setShipmentType(shipmentType shipment.Type) error {
	if err := shipmentType.Validate(); err != nil {
		return err
	}

	q.shipmentType = shipmentType
	return nil
}
