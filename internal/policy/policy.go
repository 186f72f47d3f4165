// Package policy holds the role/state gate evaluated before any trip
// mutation. It operates on an explicit Identity value rather than anything
// pulled out of the request, and runs before balances are computed or the
// ledger is touched: the whole update is accepted or rejected atomically.
package policy

import (
	"freight-backend/internal/apperrors"
	"freight-backend/internal/models"
)

// Identity is the authenticated caller as established by the session
// gateway.
type Identity struct {
	UserID   int
	Username string
	Role     string
}

// IsAdmin reports whether the caller holds the ADMIN role.
func (i Identity) IsAdmin() bool {
	return i.Role == models.RoleAdmin
}

// CanUpdateTrip decides whether caller may apply req to the stored trip.
// Two rules, both admin-exempt:
//  1. a trip already COMPLETED or SETTLED is closed to managers, no matter
//     which fields the update touches;
//  2. the motor owner hire amount (bhada) is admin-only, no matter the
//     trip's status.
func CanUpdateTrip(caller Identity, trip *models.Trip, req *models.UpdateTripRequest) error {
	if caller.IsAdmin() {
		return nil
	}

	if trip.Status == models.StatusCompleted || trip.Status == models.StatusSettled {
		return apperrors.Forbidden("only an admin can modify a completed or settled trip")
	}

	if req.MotorOwnerBhada != nil {
		return apperrors.Forbidden("only an admin can change the motor owner hire amount")
	}

	return nil
}
