package services

import (
	"sort"
	"strings"

	"mescolis/internal/core/domain/model/shipment"

	"github.com/shopspring/decimal"
)

// Rate is a single carrier offer produced by the RateCalculator.
type Rate struct {
	CarrierName    string
	ServiceName    string
	Price          decimal.Decimal
	ListPrice      decimal.Decimal
	Savings        decimal.Decimal
	EstimatedDays  int
	CarrierLogoURL string
}

// carrierTariff is one row of the static rate card.
type carrierTariff struct {
	carrier string
	service string
	factor  decimal.Decimal
	days    int
	logoURL string
}

var (
	weightRateMultiplier    = decimal.NewFromFloat(2.5)
	internationalMultiplier = decimal.NewFromFloat(2.5)
	handlingSurcharge       = decimal.NewFromInt(8)
	platformDiscountRate    = decimal.NewFromFloat(0.6)
)

const internationalExtraDays = 3

// RateCalculator is a domain service producing negotiated carrier rates for a
// shipment profile. Rates are computed from a static tariff card rather than
// live carrier APIs.
//
// Pricing rules:
//   - Base rate grows linearly with weight
//   - A flat handling surcharge applies to every offer
//   - International lanes (differing origin and destination countries) carry a
//     rate multiplier and extra transit days
//   - The platform price is the carrier list price less a 40% discount
//
// Offers are returned cheapest first.
type RateCalculator struct{}

// NewRateCalculator creates a new RateCalculator instance.
func NewRateCalculator() RateCalculator {
	return RateCalculator{}
}

func parcelTariffs() []carrierTariff {
	return []carrierTariff{
		{"Purolator", "Express", decimal.NewFromFloat(1.8), 1, "/carriers/purolator.svg"},
		{"Purolator", "Ground", decimal.NewFromFloat(1.2), 4, "/carriers/purolator.svg"},
		{"Canada Post", "Xpresspost", decimal.NewFromFloat(1.5), 2, "/carriers/canadapost.svg"},
		{"Canada Post", "Regular Parcel", decimal.NewFromFloat(1.0), 5, "/carriers/canadapost.svg"},
		{"DHL", "Express Worldwide", decimal.NewFromFloat(2.2), 2, "/carriers/dhl.svg"},
		{"UPS", "Express Saver", decimal.NewFromFloat(1.9), 2, "/carriers/ups.svg"},
		{"UPS", "Standard", decimal.NewFromFloat(1.3), 5, "/carriers/ups.svg"},
		{"FedEx", "Priority", decimal.NewFromFloat(2.0), 1, "/carriers/fedex.svg"},
		{"FedEx", "Economy", decimal.NewFromFloat(1.4), 4, "/carriers/fedex.svg"},
	}
}

func freightTariffs() []carrierTariff {
	return []carrierTariff{
		{"Day & Ross", "LTL Standard", decimal.NewFromFloat(8.0), 5, "/carriers/dayross.svg"},
		{"Manitoulin", "LTL Economy", decimal.NewFromFloat(7.0), 7, "/carriers/manitoulin.svg"},
		{"Purolator Freight", "LTL Express", decimal.NewFromFloat(10.0), 3, "/carriers/purolator.svg"},
	}
}

// Calculate produces carrier rates for a shipment lane and weight.
//
// Parameters:
//   - shipmentType: selects the parcel or LTL freight tariff card
//   - weightKg: total shipment weight in kilograms
//   - fromCountry, toCountry: ISO country codes of origin and destination
//
// Returns:
//   - []Rate: offers sorted by platform price ascending
func (c RateCalculator) Calculate(
	shipmentType shipment.Type,
	weightKg decimal.Decimal,
	fromCountry string,
	toCountry string,
) []Rate {
	baseRate := weightKg.Mul(weightRateMultiplier)
	international := !strings.EqualFold(strings.TrimSpace(fromCountry), strings.TrimSpace(toCountry))

	multiplier := decimal.NewFromInt(1)
	extraDays := 0
	if international {
		multiplier = internationalMultiplier
		extraDays = internationalExtraDays
	}

	tariffs := parcelTariffs()
	if shipmentType == shipment.LTLFreight {
		tariffs = freightTariffs()
	}

	rates := make([]Rate, 0, len(tariffs))
	for _, t := range tariffs {
		listPrice := baseRate.Add(handlingSurcharge).Mul(t.factor).Mul(multiplier).Round(2)
		price := listPrice.Mul(platformDiscountRate).Round(2)

		rates = append(rates, Rate{
			CarrierName:    t.carrier,
			ServiceName:    t.service,
			Price:          price,
			ListPrice:      listPrice,
			Savings:        listPrice.Sub(price),
			EstimatedDays:  t.days + extraDays,
			CarrierLogoURL: t.logoURL,
		})
	}

	sort.SliceStable(rates, func(i, j int) bool {
		return rates[i].Price.LessThan(rates[j].Price)
	})

	return rates
}
