package shipment_test

import (
	"testing"
	"time"

	"mescolis/internal/core/domain/model/kernel"
	"mescolis/internal/core/domain/model/shipment"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddress(t *testing.T, city string, country string) shipment.Address {
	t.Helper()
	a, err := shipment.NewAddress(
		"100 King St W", "", city, "ON", "M5X 1A9", country, "", "", "", false)
	require.NoError(t, err)
	return a
}

func validDimensions() shipment.Dimensions {
	return shipment.Dimensions{
		WeightKg: decimal.NewFromInt(2),
		LengthCm: decimal.NewFromInt(30),
		WidthCm:  decimal.NewFromInt(20),
		HeightCm: decimal.NewFromInt(10),
	}
}

func TestNewShipment(t *testing.T) {
	ownerID := kernel.NewUUID()
	from := validAddress(t, "Toronto", "CA")
	to := validAddress(t, "Montreal", "CA")
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	t.Run("should create shipment with all valid parameters", func(t *testing.T) {
		s, err := shipment.NewShipment(
			ownerID, from, to, shipment.Package, validDimensions(),
			"Purolator", "Express", decimal.NewFromFloat(15.56), nil, nil, now)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Zero(t, s.ID())
		assert.True(t, s.OwnerID().IsEqual(ownerID))
		assert.Equal(t, shipment.LabelCreated, s.Status())
		assert.Equal(t, "CAD", s.Currency())
		assert.Equal(t, "Purolator", s.CarrierName())
		assert.Equal(t, "Express", s.ServiceName())
		assert.Nil(t, s.FinalPrice())
		assert.Nil(t, s.PaymentID())
	})

	t.Run("should generate a well-formed tracking number", func(t *testing.T) {
		s, err := shipment.NewShipment(
			ownerID, from, to, shipment.Package, validDimensions(),
			"Purolator", "Express", decimal.NewFromFloat(15.56), nil, nil, now)

		require.NoError(t, err)
		require.NoError(t, shipment.ValidateTrackingNumber(s.TrackingNumber()))
		assert.Len(t, s.TrackingNumber(), 16)
		assert.Equal(t, "MC20260830", s.TrackingNumber()[:10])
	})

	t.Run("should derive the label URL from the tracking number", func(t *testing.T) {
		s, err := shipment.NewShipment(
			ownerID, from, to, shipment.Package, validDimensions(),
			"Purolator", "Express", decimal.NewFromFloat(15.56), nil, nil, now)

		require.NoError(t, err)
		assert.Equal(t, "/labels/"+s.TrackingNumber()+".pdf", s.LabelURL())
	})

	t.Run("should set the delivery estimate", func(t *testing.T) {
		s, err := shipment.NewShipment(
			ownerID, from, to, shipment.Package, validDimensions(),
			"Purolator", "Express", decimal.NewFromFloat(15.56), nil, nil, now)

		require.NoError(t, err)
		require.NotNil(t, s.EstimatedDelivery())
		assert.Equal(t, now.AddDate(0, 0, 5), *s.EstimatedDelivery())
	})

	t.Run("should append a label creation tracking event", func(t *testing.T) {
		s, err := shipment.NewShipment(
			ownerID, from, to, shipment.Package, validDimensions(),
			"Purolator", "Express", decimal.NewFromFloat(15.56), nil, nil, now)

		require.NoError(t, err)
		require.Len(t, s.Events(), 1)
		event := s.Events()[0]
		assert.Equal(t, "Label Created", event.Status())
		assert.Contains(t, event.Description(), "Purolator Express")
		assert.Equal(t, "Toronto, ON", event.Location())
	})

	t.Run("should keep locker references", func(t *testing.T) {
		origin := int64(3)
		destination := int64(7)

		s, err := shipment.NewShipment(
			ownerID, from, to, shipment.LockerToLocker, validDimensions(),
			"Purolator", "Express", decimal.NewFromFloat(15.56), &origin, &destination, now)

		require.NoError(t, err)
		require.NotNil(t, s.OriginLockerID())
		require.NotNil(t, s.DestinationLockerID())
		assert.Equal(t, int64(3), *s.OriginLockerID())
		assert.Equal(t, int64(7), *s.DestinationLockerID())
	})

	t.Run("should fail with invalid owner", func(t *testing.T) {
		var invalidOwner kernel.UUID

		s, err := shipment.NewShipment(
			invalidOwner, from, to, shipment.Package, validDimensions(),
			"Purolator", "Express", decimal.NewFromFloat(15.56), nil, nil, now)

		require.Error(t, err)
		assert.Nil(t, s)
	})

	t.Run("should fail with unconstructed address", func(t *testing.T) {
		var emptyAddress shipment.Address

		s, err := shipment.NewShipment(
			ownerID, emptyAddress, to, shipment.Package, validDimensions(),
			"Purolator", "Express", decimal.NewFromFloat(15.56), nil, nil, now)

		require.Error(t, err)
		assert.Nil(t, s)
	})

	t.Run("should fail with invalid shipment type", func(t *testing.T) {
		s, err := shipment.NewShipment(
			ownerID, from, to, shipment.UnknownType, validDimensions(),
			"Purolator", "Express", decimal.NewFromFloat(15.56), nil, nil, now)

		require.Error(t, err)
		assert.Nil(t, s)
	})

	t.Run("should fail with non-positive weight", func(t *testing.T) {
		dims := validDimensions()
		dims.WeightKg = decimal.Zero

		s, err := shipment.NewShipment(
			ownerID, from, to, shipment.Package, dims,
			"Purolator", "Express", decimal.NewFromFloat(15.56), nil, nil, now)

		require.Error(t, err)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), "weight")
	})

	t.Run("should fail with negative quoted price", func(t *testing.T) {
		s, err := shipment.NewShipment(
			ownerID, from, to, shipment.Package, validDimensions(),
			"Purolator", "Express", decimal.NewFromFloat(-1), nil, nil, now)

		require.Error(t, err)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), "quoted price")
	})
}

func TestShipment_AssignID(t *testing.T) {
	ownerID := kernel.NewUUID()
	from := validAddress(t, "Toronto", "CA")
	to := validAddress(t, "Montreal", "CA")

	newShipment := func(t *testing.T) *shipment.Shipment {
		t.Helper()
		s, err := shipment.NewShipment(
			ownerID, from, to, shipment.Package, validDimensions(),
			"Purolator", "Express", decimal.NewFromFloat(15.56), nil, nil, time.Now())
		require.NoError(t, err)
		return s
	}

	t.Run("should assign the identifier once", func(t *testing.T) {
		s := newShipment(t)

		require.NoError(t, s.AssignID(42))
		assert.Equal(t, int64(42), s.ID())
	})

	t.Run("should reject a second assignment", func(t *testing.T) {
		s := newShipment(t)
		require.NoError(t, s.AssignID(42))

		err := s.AssignID(43)

		require.ErrorIs(t, err, shipment.ErrIDAlreadyAssigned)
		assert.Equal(t, int64(42), s.ID())
	})

	t.Run("should reject non-positive identifiers", func(t *testing.T) {
		s := newShipment(t)

		require.Error(t, s.AssignID(0))
		require.Error(t, s.AssignID(-1))
		assert.Zero(t, s.ID())
	})
}

func TestShipment_ChangeStatus(t *testing.T) {
	ownerID := kernel.NewUUID()
	from := validAddress(t, "Toronto", "CA")
	to := validAddress(t, "Montreal", "CA")
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	newShipment := func(t *testing.T) *shipment.Shipment {
		t.Helper()
		s, err := shipment.NewShipment(
			ownerID, from, to, shipment.Package, validDimensions(),
			"Purolator", "Express", decimal.NewFromFloat(15.56), nil, nil, now)
		require.NoError(t, err)
		return s
	}

	t.Run("should record pickup timestamp and event", func(t *testing.T) {
		s := newShipment(t)
		pickupTime := now.Add(4 * time.Hour)

		err := s.ChangeStatus(shipment.PickedUp, "Picked up by carrier", "Toronto, ON", pickupTime)

		require.NoError(t, err)
		assert.Equal(t, shipment.PickedUp, s.Status())
		require.NotNil(t, s.ShippedAt())
		assert.Equal(t, pickupTime, *s.ShippedAt())
		require.Len(t, s.Events(), 2)
		assert.Equal(t, "PickedUp", s.Events()[1].Status())
		assert.Equal(t, "Picked up by carrier", s.Events()[1].Description())
	})

	t.Run("should record delivery timestamp on the full lifecycle", func(t *testing.T) {
		s := newShipment(t)

		require.NoError(t, s.ChangeStatus(shipment.PickedUp, "", "Toronto, ON", now.Add(time.Hour)))
		require.NoError(t, s.ChangeStatus(shipment.InTransit, "", "Kingston, ON", now.Add(2*time.Hour)))
		require.NoError(t, s.ChangeStatus(shipment.Delivered, "", "Montreal, QC", now.Add(24*time.Hour)))

		assert.Equal(t, shipment.Delivered, s.Status())
		require.NotNil(t, s.DeliveredAt())
		assert.Equal(t, now.Add(24*time.Hour), *s.DeliveredAt())
		assert.Len(t, s.Events(), 4)
	})

	t.Run("should reject invalid transitions without side effects", func(t *testing.T) {
		s := newShipment(t)

		err := s.ChangeStatus(shipment.Delivered, "", "Montreal, QC", now)

		require.Error(t, err)
		assert.Equal(t, shipment.LabelCreated, s.Status())
		assert.Len(t, s.Events(), 1)
		assert.Nil(t, s.DeliveredAt())
	})

	t.Run("should leave pickup timestamp unset on non-pickup transitions", func(t *testing.T) {
		s := newShipment(t)

		require.NoError(t, s.ChangeStatus(shipment.Cancelled, "Abandoned", "", now))

		assert.Equal(t, shipment.Cancelled, s.Status())
		assert.Nil(t, s.ShippedAt())
		assert.Nil(t, s.DeliveredAt())
	})
}

func TestShipment_AttachPayment(t *testing.T) {
	ownerID := kernel.NewUUID()
	from := validAddress(t, "Toronto", "CA")
	to := validAddress(t, "Montreal", "CA")

	s, err := shipment.NewShipment(
		ownerID, from, to, shipment.Package, validDimensions(),
		"Purolator", "Express", decimal.NewFromFloat(15.56), nil, nil, time.Now())
	require.NoError(t, err)

	t.Run("should reject non-positive payment id", func(t *testing.T) {
		require.Error(t, s.AttachPayment(0))
		assert.Nil(t, s.PaymentID())
	})

	t.Run("should attach payment id", func(t *testing.T) {
		require.NoError(t, s.AttachPayment(11))
		require.NotNil(t, s.PaymentID())
		assert.Equal(t, int64(11), *s.PaymentID())
	})
}

func TestShipment_SettleFinalPrice(t *testing.T) {
	ownerID := kernel.NewUUID()
	from := validAddress(t, "Toronto", "CA")
	to := validAddress(t, "Montreal", "CA")

	s, err := shipment.NewShipment(
		ownerID, from, to, shipment.Package, validDimensions(),
		"Purolator", "Express", decimal.NewFromFloat(15.56), nil, nil, time.Now())
	require.NoError(t, err)

	t.Run("should reject negative final price", func(t *testing.T) {
		require.Error(t, s.SettleFinalPrice(decimal.NewFromInt(-1)))
		assert.Nil(t, s.FinalPrice())
	})

	t.Run("should settle final price", func(t *testing.T) {
		require.NoError(t, s.SettleFinalPrice(decimal.NewFromFloat(14.20)))
		require.NotNil(t, s.FinalPrice())
		assert.True(t, s.FinalPrice().Equal(decimal.NewFromFloat(14.20)))
	})
}

func TestShipment_Validate(t *testing.T) {
	t.Run("should fail for nil shipment", func(t *testing.T) {
		var s *shipment.Shipment

		require.ErrorIs(t, s.Validate(), shipment.ErrShipmentIsNotConstructed)
	})

	t.Run("should fail for zero value shipment", func(t *testing.T) {
		var s shipment.Shipment

		require.ErrorIs(t, s.Validate(), shipment.ErrShipmentIsNotConstructed)
	})
}

func TestGenerateTrackingNumber(t *testing.T) {
	t.Run("should embed the UTC date stamp", func(t *testing.T) {
		now := time.Date(2026, 1, 2, 23, 30, 0, 0, time.FixedZone("EST", -5*3600))

		tn := shipment.GenerateTrackingNumber(now)

		require.NoError(t, shipment.ValidateTrackingNumber(tn))
		assert.Equal(t, "MC20260103", tn[:10])
	})

	t.Run("should produce six digit suffixes", func(t *testing.T) {
		now := time.Now()
		for range 50 {
			tn := shipment.GenerateTrackingNumber(now)
			assert.Len(t, tn, 16)
			require.NoError(t, shipment.ValidateTrackingNumber(tn))
		}
	})
}

func TestValidateTrackingNumber(t *testing.T) {
	t.Run("should accept well-formed numbers", func(t *testing.T) {
		require.NoError(t, shipment.ValidateTrackingNumber("MC20260830123456"))
	})

	t.Run("should reject malformed numbers", func(t *testing.T) {
		malformed := []string{
			"",
			"MC2026083012345",    // short suffix
			"MC202608301234567",  // long suffix
			"XX20260830123456",   // wrong prefix
			"MC20260830abcdef",   // letters in suffix
			" MC20260830123456",  // leading space
			"MC20260830123456 ",  // trailing space
			"mc20260830123456",   // lowercase prefix
		}

		for _, tn := range malformed {
			require.Error(t, shipment.ValidateTrackingNumber(tn), "%q should be rejected", tn)
		}
	})
}

func TestNewTrackingEvent(t *testing.T) {
	t.Run("should create event and normalize timestamp to UTC", func(t *testing.T) {
		ts := time.Date(2026, 8, 30, 9, 0, 0, 0, time.FixedZone("EDT", -4*3600))

		event, err := shipment.NewTrackingEvent("InTransit", "Departed facility", "Kingston, ON", ts)

		require.NoError(t, err)
		assert.Equal(t, "InTransit", event.Status())
		assert.Equal(t, "Departed facility", event.Description())
		assert.Equal(t, "Kingston, ON", event.Location())
		assert.Equal(t, time.UTC, event.Timestamp().Location())
		assert.True(t, event.Timestamp().Equal(ts))
	})

	t.Run("should require a status label", func(t *testing.T) {
		_, err := shipment.NewTrackingEvent("", "desc", "loc", time.Now())
		require.Error(t, err)

		_, err = shipment.NewTrackingEvent("   ", "desc", "loc", time.Now())
		require.Error(t, err)
	})
}

func TestNewAddress(t *testing.T) {
	t.Run("should create address with required fields", func(t *testing.T) {
		a, err := shipment.NewAddress(
			"100 King St W", "Suite 2", "Toronto", "ON", "M5X 1A9", "ca",
			"Acme Inc", "Jo Smith", "416-555-0100", true)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, "100 King St W", a.Street())
		assert.Equal(t, "Suite 2", a.Street2())
		assert.Equal(t, "CA", a.Country(), "country code should be upper-cased")
		assert.Equal(t, "Acme Inc", a.CompanyName())
		assert.True(t, a.IsResidential())
	})

	t.Run("should reject missing required fields", func(t *testing.T) {
		testCases := []struct {
			name   string
			street string
			city   string
		}{
			{"missing street", "", "Toronto"},
			{"missing city", "100 King St W", ""},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := shipment.NewAddress(
					tc.street, "", tc.city, "ON", "M5X 1A9", "CA", "", "", "", false)
				require.Error(t, err)
			})
		}
	})

	t.Run("should reject non two-letter country codes", func(t *testing.T) {
		for _, country := range []string{"", "C", "CAN"} {
			_, err := shipment.NewAddress(
				"100 King St W", "", "Toronto", "ON", "M5X 1A9", country, "", "", "", false)
			require.Error(t, err, "country %q should be rejected", country)
		}
	})

	t.Run("should fail validation for zero value address", func(t *testing.T) {
		var a shipment.Address

		require.Error(t, a.Validate())
	})
}

func TestDimensions_Validate(t *testing.T) {
	t.Run("should accept positive measurements", func(t *testing.T) {
		require.NoError(t, validDimensions().Validate())
	})

	t.Run("should reject non-positive measurements", func(t *testing.T) {
		testCases := []struct {
			name   string
			mutate func(*shipment.Dimensions)
		}{
			{"zero weight", func(d *shipment.Dimensions) { d.WeightKg = decimal.Zero }},
			{"negative weight", func(d *shipment.Dimensions) { d.WeightKg = decimal.NewFromInt(-1) }},
			{"zero length", func(d *shipment.Dimensions) { d.LengthCm = decimal.Zero }},
			{"zero width", func(d *shipment.Dimensions) { d.WidthCm = decimal.Zero }},
			{"zero height", func(d *shipment.Dimensions) { d.HeightCm = decimal.Zero }},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				dims := validDimensions()
				tc.mutate(&dims)
				require.Error(t, dims.Validate())
			})
		}
	})
}
