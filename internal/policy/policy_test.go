package policy

import (
	"testing"

	"freight-backend/internal/apperrors"
	"freight-backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	admin   = Identity{UserID: 1, Username: "admin", Role: models.RoleAdmin}
	manager = Identity{UserID: 2, Username: "ops", Role: models.RoleManager}
)

func bhada(s string) *decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return &d
}

func TestCanUpdateTrip_ManagerBlockedOnClosedTrips(t *testing.T) {
	for _, status := range []string{models.StatusCompleted, models.StatusSettled} {
		t.Run(status, func(t *testing.T) {
			trip := &models.Trip{Status: status}
			req := &models.UpdateTripRequest{}

			err := CanUpdateTrip(manager, trip, req)
			var fe *apperrors.ForbiddenError
			require.ErrorAs(t, err, &fe)
		})
	}
}

func TestCanUpdateTrip_ManagerCannotChangeBhada(t *testing.T) {
	// The bhada restriction holds regardless of trip status.
	for _, status := range []string{models.StatusPending, models.StatusInTransit} {
		t.Run(status, func(t *testing.T) {
			trip := &models.Trip{Status: status}
			req := &models.UpdateTripRequest{MotorOwnerBhada: bhada("1200")}

			err := CanUpdateTrip(manager, trip, req)
			var fe *apperrors.ForbiddenError
			require.ErrorAs(t, err, &fe)
		})
	}
}

func TestCanUpdateTrip_ManagerAllowedOnOpenTrips(t *testing.T) {
	trip := &models.Trip{Status: models.StatusInTransit}
	req := &models.UpdateTripRequest{MotorOwnerAdvance: bhada("300")}

	assert.NoError(t, CanUpdateTrip(manager, trip, req))
}

func TestCanUpdateTrip_AdminUnrestricted(t *testing.T) {
	trip := &models.Trip{Status: models.StatusSettled}
	req := &models.UpdateTripRequest{MotorOwnerBhada: bhada("9999")}

	assert.NoError(t, CanUpdateTrip(admin, trip, req))
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, admin.IsAdmin())
	assert.False(t, manager.IsAdmin())
	assert.False(t, Identity{}.IsAdmin())
}
