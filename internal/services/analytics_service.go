package services

import (
	"context"

	"freight-backend/internal/models"
	"freight-backend/internal/repositories"
	"freight-backend/internal/timeutil"
)

// monthsOfHistory is how far back the dashboard time series reach.
const monthsOfHistory = 12

type AnalyticsService struct {
	Repo *repositories.AnalyticsRepository
}

func NewAnalyticsService(repo *repositories.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{Repo: repo}
}

// Dashboard assembles the admin dashboard: headline totals plus the
// trailing monthly trip-count and revenue series, all computed from the
// ledger on every call.
func (s *AnalyticsService) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	stats, err := s.Repo.DashboardTotals(ctx)
	if err != nil {
		return nil, err
	}

	now := timeutil.Now()
	since := now.AddDate(0, -(monthsOfHistory - 1), 0)
	since = since.AddDate(0, 0, -(since.Day() - 1)) // start of that month

	series, err := s.Repo.MonthlySeries(ctx, since)
	if err != nil {
		return nil, err
	}

	// The same query feeds both series; split so each endpoint field stays
	// independently consumable.
	stats.MonthlyTrips = make([]models.MonthlyPoint, len(series))
	stats.MonthlyRevenue = make([]models.MonthlyPoint, len(series))
	for i, p := range series {
		stats.MonthlyTrips[i] = models.MonthlyPoint{Month: p.Month, Trips: p.Trips}
		stats.MonthlyRevenue[i] = models.MonthlyPoint{Month: p.Month, Revenue: p.Revenue}
	}

	return stats, nil
}

func (s *AnalyticsService) PartyAnalytics(ctx context.Context) ([]*models.PartyStats, error) {
	return s.Repo.PartyTotals(ctx)
}

func (s *AnalyticsService) OwnerAnalytics(ctx context.Context) ([]*models.OwnerStats, error) {
	return s.Repo.OwnerTotals(ctx)
}
