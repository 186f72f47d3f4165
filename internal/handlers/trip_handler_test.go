package handlers

import (
	"net/http/httptest"
	"testing"

	"freight-backend/internal/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTripFilter(t *testing.T) {
	t.Run("empty query means no filters", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/trips", nil)
		filter, err := parseTripFilter(req)
		require.NoError(t, err)
		assert.Empty(t, filter.VehicleNumber)
		assert.Empty(t, filter.TripCode)
		assert.Nil(t, filter.LoadedAfter)
		assert.Nil(t, filter.Settled)
	})

	t.Run("all filters", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/trips?vehicle_number=rj14&trip_code=2026&loaded_after=2026-01-01&settled=true", nil)
		filter, err := parseTripFilter(req)
		require.NoError(t, err)
		assert.Equal(t, "rj14", filter.VehicleNumber)
		assert.Equal(t, "2026", filter.TripCode)
		require.NotNil(t, filter.LoadedAfter)
		assert.Equal(t, 2026, filter.LoadedAfter.Year())
		require.NotNil(t, filter.Settled)
		assert.True(t, *filter.Settled)
	})

	t.Run("settled false is a filter, not absence", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/trips?settled=false", nil)
		filter, err := parseTripFilter(req)
		require.NoError(t, err)
		require.NotNil(t, filter.Settled)
		assert.False(t, *filter.Settled)
	})

	t.Run("bad date rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/trips?loaded_after=01-01-2026", nil)
		_, err := parseTripFilter(req)
		var ve *apperrors.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "loaded_after", ve.Field)
	})

	t.Run("bad settled rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/trips?settled=maybe", nil)
		_, err := parseTripFilter(req)
		var ve *apperrors.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "settled", ve.Field)
	})
}
