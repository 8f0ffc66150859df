// Package services provides domain services that implement business logic
// spanning more than one aggregate.
//
// The package includes:
//   - RateCalculator: A domain service computing negotiated carrier rates for
//     a shipment profile from a static tariff card
package services
