package models

import "github.com/shopspring/decimal"

// MonthlyPoint is one month of a trailing time series.
type MonthlyPoint struct {
	Month   string          `json:"month"` // YYYY-MM
	Trips   int             `json:"trips"`
	Revenue decimal.Decimal `json:"revenue"`
}

// DashboardStats are the admin dashboard totals, recomputed on every read.
type DashboardStats struct {
	TotalTrips         int             `json:"total_trips"`
	ActiveTrips        int             `json:"active_trips"` // not COMPLETED or SETTLED
	TotalFreight       decimal.Decimal `json:"total_freight"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
	MonthlyTrips       []MonthlyPoint  `json:"monthly_trips"`
	MonthlyRevenue     []MonthlyPoint  `json:"monthly_revenue"`
}

// PartyStats is one rollup row per distinct party name.
type PartyStats struct {
	PartyName          string          `json:"party_name"`
	TotalTrips         int             `json:"total_trips"`
	TotalFreight       decimal.Decimal `json:"total_freight"`
	TotalAdvance       decimal.Decimal `json:"total_advance"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
}

// OwnerStats is one rollup row per distinct motor owner, over MARKET trips only.
type OwnerStats struct {
	OwnerName          string          `json:"owner_name"` // "Unknown" when blank
	TotalTrips         int             `json:"total_trips"`
	TotalBhada         decimal.Decimal `json:"total_bhada"`
	TotalAdvance       decimal.Decimal `json:"total_advance"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
}
