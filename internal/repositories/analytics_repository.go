package repositories

import (
	"context"
	"time"

	"freight-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// AnalyticsRepository computes the read-only rollups. Everything is
// recomputed per call; nothing is cached or maintained incrementally.
type AnalyticsRepository struct {
	DB *pgxpool.Pool
}

func NewAnalyticsRepository(db *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{DB: db}
}

// DashboardTotals returns the headline counts and sums. The monthly series
// are filled in separately by MonthlySeries.
func (r *AnalyticsRepository) DashboardTotals(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	err := r.DB.QueryRow(ctx,
		`SELECT COUNT(*),
                COUNT(*) FILTER (WHERE status NOT IN ($1, $2)),
                COALESCE(SUM(party_freight), 0)::text,
                COALESCE(SUM(party_balance), 0)::text
         FROM trips`,
		models.StatusCompleted, models.StatusSettled,
	).Scan(&stats.TotalTrips, &stats.ActiveTrips, &stats.TotalFreight, &stats.OutstandingBalance)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// MonthlySeries returns per-month trip counts and freight revenue for trips
// loaded on or after `since`, oldest month first.
func (r *AnalyticsRepository) MonthlySeries(ctx context.Context, since time.Time) ([]models.MonthlyPoint, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT to_char(date_trunc('month', loading_date), 'YYYY-MM') AS month,
                COUNT(*),
                COALESCE(SUM(party_freight), 0)::text
         FROM trips
         WHERE loading_date >= $1
         GROUP BY month
         ORDER BY month`, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []models.MonthlyPoint
	for rows.Next() {
		var p models.MonthlyPoint
		if err := rows.Scan(&p.Month, &p.Trips, &p.Revenue); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

// PartyTotals returns one row per distinct party name.
func (r *AnalyticsRepository) PartyTotals(ctx context.Context) ([]*models.PartyStats, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT party_name, COUNT(*),
                COALESCE(SUM(party_freight), 0)::text,
                COALESCE(SUM(party_advance), 0)::text,
                COALESCE(SUM(party_balance), 0)::text
         FROM trips
         GROUP BY party_name
         ORDER BY SUM(party_freight) DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []*models.PartyStats
	for rows.Next() {
		var s models.PartyStats
		if err := rows.Scan(&s.PartyName, &s.TotalTrips, &s.TotalFreight, &s.TotalAdvance, &s.OutstandingBalance); err != nil {
			return nil, err
		}
		stats = append(stats, &s)
	}
	return stats, rows.Err()
}

// OwnerTotals returns one row per distinct motor owner over market-hired
// trips only; blank owner names are reported as "Unknown".
func (r *AnalyticsRepository) OwnerTotals(ctx context.Context) ([]*models.OwnerStats, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT COALESCE(NULLIF(motor_owner_name, ''), 'Unknown') AS owner, COUNT(*),
                COALESCE(SUM(motor_owner_bhada), 0)::text,
                COALESCE(SUM(motor_owner_advance), 0)::text,
                COALESCE(SUM(motor_owner_balance), 0)::text
         FROM trips
         WHERE vehicle_type = $1
         GROUP BY owner
         ORDER BY SUM(motor_owner_bhada) DESC`, models.VehicleMarket)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []*models.OwnerStats
	for rows.Next() {
		var s models.OwnerStats
		if err := rows.Scan(&s.OwnerName, &s.TotalTrips, &s.TotalBhada, &s.TotalAdvance, &s.OutstandingBalance); err != nil {
			return nil, err
		}
		stats = append(stats, &s)
	}
	return stats, rows.Err()
}
