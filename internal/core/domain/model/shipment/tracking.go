package shipment

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"
	"time"

	"mescolis/internal/pkg/errs"
)

// trackingNumberPattern matches MC followed by a date stamp and a six-digit
// random suffix, e.g. MC20260830123456.
var trackingNumberPattern = regexp.MustCompile(`^MC\d{8}\d{6}$`)

// GenerateTrackingNumber produces a tracking number of the form
// MC<YYYYMMDD><6-digit-random>. The random suffix makes collisions unlikely
// but not impossible; the storage layer enforces uniqueness and creation
// retries with a fresh number on conflict.
func GenerateTrackingNumber(now time.Time) string {
	suffix := rand.IntN(900000) + 100000 //nolint:gosec // not a secret, uniqueness is enforced by the store
	return fmt.Sprintf("MC%s%d", now.UTC().Format("20060102"), suffix)
}

// ValidateTrackingNumber checks the syntactic shape of a tracking number.
func ValidateTrackingNumber(trackingNumber string) error {
	if !trackingNumberPattern.MatchString(trackingNumber) {
		return errs.NewValueIsInvalidError("tracking number")
	}
	return nil
}

// TrackingEvent is an append-only record of something that happened to a
// shipment: a status label, a free-text description and where it occurred.
// Events are never updated or removed once recorded.
type TrackingEvent struct {
	status      string
	description string
	location    string
	timestamp   time.Time
}

// NewTrackingEvent creates a tracking event. The status label is required;
// description and location are free text.
func NewTrackingEvent(status string, description string, location string, timestamp time.Time) (TrackingEvent, error) {
	if strings.TrimSpace(status) == "" {
		return TrackingEvent{}, errs.NewValueIsRequiredError("event status")
	}
	return TrackingEvent{
		status:      status,
		description: description,
		location:    location,
		timestamp:   timestamp.UTC(),
	}, nil
}

// Status returns the event's status label.
func (e TrackingEvent) Status() string { return e.status }

// Description returns the free-text description.
func (e TrackingEvent) Description() string { return e.description }

// Location returns where the event occurred.
func (e TrackingEvent) Location() string { return e.location }

// Timestamp returns when the event occurred.
func (e TrackingEvent) Timestamp() time.Time { return e.timestamp }
