package queries

import (
	"context"
	"time"

	"mescolis/internal/core/domain/model/shipment"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AddressResponse is the public view of a shipment address.
type AddressResponse struct {
	Street     string
	City       string
	Province   string
	PostalCode string
	Country    string
}

// TrackingEventResponse is one scan event on a shipment's timeline.
type TrackingEventResponse struct {
	Status      string
	Description string
	Location    string
	Timestamp   time.Time
}

// ShipmentResponse is the read-side view of a shipment with its addresses
// and tracking timeline, newest event first.
type ShipmentResponse struct {
	ID                int64
	TrackingNumber    string
	ShipmentType      string
	Status            string
	CarrierName       string
	ServiceName       string
	QuotedPrice       decimal.Decimal
	Currency          string
	WeightKg          decimal.Decimal
	LabelURL          string
	CreatedAt         time.Time
	EstimatedDelivery *time.Time
	FromAddress       AddressResponse
	ToAddress         AddressResponse
	TrackingEvents    []TrackingEventResponse
}

// shipmentSelect joins a shipment with both of its addresses. Callers append
// their own WHERE clause.
const shipmentSelect = `
	SELECT
		s.id,
		s.tracking_number,
		s.type,
		s.status,
		s.carrier_name,
		s.service_name,
		s.quoted_price,
		s.currency,
		s.weight_kg,
		s.label_url,
		s.created_at,
		s.estimated_delivery,
		f.street, f.city, f.province, f.postal_code, f.country,
		t.street, t.city, t.province, t.postal_code, t.country
	FROM shipments s
	JOIN addresses f ON f.id = s.from_address_id
	JOIN addresses t ON t.id = s.to_address_id
`

// scanShipmentRow maps one row of shipmentSelect. Enum columns are stored as
// integers and rendered to their string names here.
func scanShipmentRow(scan func(dest ...any) error) (ShipmentResponse, error) {
	var (
		resp         ShipmentResponse
		shipmentType int
		status       int
	)

	err := scan(
		&resp.ID,
		&resp.TrackingNumber,
		&shipmentType,
		&status,
		&resp.CarrierName,
		&resp.ServiceName,
		&resp.QuotedPrice,
		&resp.Currency,
		&resp.WeightKg,
		&resp.LabelURL,
		&resp.CreatedAt,
		&resp.EstimatedDelivery,
		&resp.FromAddress.Street, &resp.FromAddress.City, &resp.FromAddress.Province,
		&resp.FromAddress.PostalCode, &resp.FromAddress.Country,
		&resp.ToAddress.Street, &resp.ToAddress.City, &resp.ToAddress.Province,
		&resp.ToAddress.PostalCode, &resp.ToAddress.Country,
	)
	if err != nil {
		return ShipmentResponse{}, err
	}

	resp.ShipmentType = shipment.Type(shipmentType).String()
	resp.Status = shipment.Status(status).String()
	return resp, nil
}

// loadTrackingEvents fetches the timeline for a shipment, newest first.
func loadTrackingEvents(ctx context.Context, db *gorm.DB, shipmentID int64) ([]TrackingEventResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			status,
			description,
			location,
			occurred_at
		FROM tracking_events
		WHERE shipment_id = ?
		ORDER BY occurred_at DESC
	`, shipmentID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]TrackingEventResponse, 0)
	for rows.Next() {
		var event TrackingEventResponse
		if err = rows.Scan(&event.Status, &event.Description, &event.Location, &event.Timestamp); err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
