package services

import (
	"testing"

	"freight-backend/internal/apperrors"
	"freight-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTripCode(t *testing.T) {
	assert.Equal(t, "2026_1", TripCode(2026, 1))
	assert.Equal(t, "2026_142", TripCode(2026, 142))
	assert.Equal(t, "2027_1", TripCode(2027, 1))
}

func TestMergeTrip(t *testing.T) {
	base := func() *models.Trip {
		return &models.Trip{
			TripCode:      "2026_7",
			VehicleNumber: "RJ14 GA 1234",
			VehicleType:   models.VehicleOwned,
			Status:        models.StatusPending,
			PartyName:     "Agarwal Traders",
			PartyFreight:  dec("1000"),
			PartyAdvance:  dec("200"),
		}
	}

	t.Run("only supplied fields change", func(t *testing.T) {
		trip := base()
		err := mergeTrip(trip, &models.UpdateTripRequest{
			Status:       strPtr(models.StatusInTransit),
			PartyFreight: decPtr("1500"),
		})
		require.NoError(t, err)
		assert.Equal(t, models.StatusInTransit, trip.Status)
		assert.True(t, trip.PartyFreight.Equal(dec("1500")))
		assert.Equal(t, "RJ14 GA 1234", trip.VehicleNumber)
		assert.Equal(t, "Agarwal Traders", trip.PartyName)
		assert.True(t, trip.PartyAdvance.Equal(dec("200")))
	})

	t.Run("trip code is never touched", func(t *testing.T) {
		trip := base()
		err := mergeTrip(trip, &models.UpdateTripRequest{VehicleNumber: strPtr("MH12 AB 9999")})
		require.NoError(t, err)
		assert.Equal(t, "2026_7", trip.TripCode)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		trip := base()
		err := mergeTrip(trip, &models.UpdateTripRequest{Status: strPtr("ARCHIVED")})
		var ve *apperrors.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "status", ve.Field)
	})

	t.Run("unknown vehicle type rejected", func(t *testing.T) {
		trip := base()
		err := mergeTrip(trip, &models.UpdateTripRequest{VehicleType: strPtr("RENTED")})
		var ve *apperrors.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "vehicle_type", ve.Field)
	})

	t.Run("empty vehicle number rejected", func(t *testing.T) {
		trip := base()
		err := mergeTrip(trip, &models.UpdateTripRequest{VehicleNumber: strPtr("")})
		var ve *apperrors.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "vehicle_number", ve.Field)
	})

	t.Run("malformed loading date rejected", func(t *testing.T) {
		trip := base()
		err := mergeTrip(trip, &models.UpdateTripRequest{LoadingDate: strPtr("31-01-2026")})
		var ve *apperrors.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "loading_date", ve.Field)
	})
}

func TestParseLoadingDate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		d, err := parseLoadingDate("2026-08-15")
		require.NoError(t, err)
		assert.Equal(t, 2026, d.Year())
		assert.Equal(t, 15, d.Day())
	})

	t.Run("empty", func(t *testing.T) {
		_, err := parseLoadingDate("")
		var ve *apperrors.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "loading_date", ve.Field)
	})

	t.Run("wrong layout", func(t *testing.T) {
		_, err := parseLoadingDate("15/08/2026")
		var ve *apperrors.ValidationError
		require.ErrorAs(t, err, &ve)
	})
}
