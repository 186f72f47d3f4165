package services

import (
	"freight-backend/internal/models"

	"github.com/shopspring/decimal"
)

// Balance recomputation. These are pure functions invoked before every
// create/update that touches financial fields; stored balances are always
// derived here and never trusted from caller input.

// orZero treats an absent amount as zero.
func orZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

// pick prefers a supplied value over the stored one.
func pick(supplied *decimal.Decimal, stored decimal.Decimal) decimal.Decimal {
	if supplied != nil {
		return *supplied
	}
	return stored
}

// CreateBalances derives both balances for a new trip.
func CreateBalances(req *models.CreateTripRequest) (party, owner decimal.Decimal) {
	party = orZero(req.PartyFreight).Sub(orZero(req.PartyAdvance))
	owner = orZero(req.MotorOwnerBhada).Sub(orZero(req.MotorOwnerAdvance))
	return party, owner
}

// PartyBalanceAfterUpdate recomputes the party balance only when the update
// touches one of its operands; otherwise the stored balance carries forward
// unchanged. Each operand independently falls back to the stored value.
func PartyBalanceAfterUpdate(stored *models.Trip, req *models.UpdateTripRequest) decimal.Decimal {
	if req.PartyFreight == nil && req.PartyAdvance == nil {
		return stored.PartyBalance
	}
	return pick(req.PartyFreight, stored.PartyFreight).Sub(pick(req.PartyAdvance, stored.PartyAdvance))
}

// OwnerBalanceAfterUpdate is the motor-owner counterpart of
// PartyBalanceAfterUpdate.
func OwnerBalanceAfterUpdate(stored *models.Trip, req *models.UpdateTripRequest) decimal.Decimal {
	if req.MotorOwnerBhada == nil && req.MotorOwnerAdvance == nil {
		return stored.MotorOwnerBalance
	}
	return pick(req.MotorOwnerBhada, stored.MotorOwnerBhada).Sub(pick(req.MotorOwnerAdvance, stored.MotorOwnerAdvance))
}
