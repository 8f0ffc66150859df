package queries_test

import (
	"testing"

	"mescolis/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackShipmentQuery(t *testing.T) {
	t.Run("should accept a well-formed tracking number", func(t *testing.T) {
		query, err := queries.NewTrackShipmentQuery("MC20260830123456")

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, "MC20260830123456", query.TrackingNumber())
	})

	t.Run("should reject malformed tracking numbers", func(t *testing.T) {
		for _, tn := range []string{"", "MC2026", "XX20260830123456", "MC20260830ABCDEF"} {
			_, err := queries.NewTrackShipmentQuery(tn)
			require.Error(t, err, tn)
		}
	})

	t.Run("should fail validation for zero value", func(t *testing.T) {
		query := queries.TrackShipmentQuery{}
		require.ErrorIs(t, query.Validate(), queries.ErrTrackShipmentQueryIsNotConstructed)
	})
}
