package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trip statuses. The lifecycle runs PENDING → IN_TRANSIT → COMPLETED → SETTLED;
// SETTLED is terminal.
const (
	StatusPending   = "PENDING"
	StatusInTransit = "IN_TRANSIT"
	StatusCompleted = "COMPLETED"
	StatusSettled   = "SETTLED"
)

// Vehicle types. MARKET marks a hired vehicle whose owner is paid bhada.
const (
	VehicleOwned    = "OWNED"
	VehicleAttached = "ATTACHED"
	VehicleMarket   = "MARKET"
)

type Trip struct {
	ID                int             `json:"id"`
	TripCode          string          `json:"trip_code"` // {year}_{seq}, assigned once at creation
	VehicleNumber     string          `json:"vehicle_number"`
	VehicleType       string          `json:"vehicle_type"`
	LoadingDate       time.Time       `json:"loading_date"`
	Status            string          `json:"status"`
	PartyName         string          `json:"party_name"`
	PartyFreight      decimal.Decimal `json:"party_freight"`
	PartyAdvance      decimal.Decimal `json:"party_advance"`
	PartyBalance      decimal.Decimal `json:"party_balance"` // freight - advance, always recomputed
	MotorOwnerName    string          `json:"motor_owner_name"`
	MotorOwnerBhada   decimal.Decimal `json:"motor_owner_bhada"`
	MotorOwnerAdvance decimal.Decimal `json:"motor_owner_advance"`
	MotorOwnerBalance decimal.Decimal `json:"motor_owner_balance"` // bhada - advance, always recomputed
	CreatedByUserID   int             `json:"created_by_user_id"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// CreateTripRequest represents the request body for creating a trip.
// Absent financial fields are treated as zero.
type CreateTripRequest struct {
	VehicleNumber     string           `json:"vehicle_number"`
	VehicleType       string           `json:"vehicle_type"`
	LoadingDate       string           `json:"loading_date"` // YYYY-MM-DD
	Status            string           `json:"status"`
	PartyName         string           `json:"party_name"`
	PartyFreight      *decimal.Decimal `json:"party_freight"`
	PartyAdvance      *decimal.Decimal `json:"party_advance"`
	MotorOwnerName    string           `json:"motor_owner_name"`
	MotorOwnerBhada   *decimal.Decimal `json:"motor_owner_bhada"`
	MotorOwnerAdvance *decimal.Decimal `json:"motor_owner_advance"`
}

// UpdateTripRequest represents a partial update; only non-nil fields are
// merged into the stored trip.
type UpdateTripRequest struct {
	VehicleNumber     *string          `json:"vehicle_number"`
	VehicleType       *string          `json:"vehicle_type"`
	LoadingDate       *string          `json:"loading_date"` // YYYY-MM-DD
	Status            *string          `json:"status"`
	PartyName         *string          `json:"party_name"`
	PartyFreight      *decimal.Decimal `json:"party_freight"`
	PartyAdvance      *decimal.Decimal `json:"party_advance"`
	MotorOwnerName    *string          `json:"motor_owner_name"`
	MotorOwnerBhada   *decimal.Decimal `json:"motor_owner_bhada"`
	MotorOwnerAdvance *decimal.Decimal `json:"motor_owner_advance"`
}

// TripFilter holds the optional list filters; all set filters are ANDed.
type TripFilter struct {
	VehicleNumber string     // case-insensitive substring
	TripCode      string     // substring
	LoadedAfter   *time.Time // loading date on or after
	Settled       *bool      // true = only SETTLED, false = only non-SETTLED
}

// ValidStatus reports whether status is one of the known trip statuses.
func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusInTransit, StatusCompleted, StatusSettled:
		return true
	}
	return false
}

// ValidVehicleType reports whether vt is one of the known vehicle types.
func ValidVehicleType(vt string) bool {
	switch vt {
	case VehicleOwned, VehicleAttached, VehicleMarket:
		return true
	}
	return false
}
