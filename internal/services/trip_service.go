package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"freight-backend/internal/apperrors"
	"freight-backend/internal/models"
	"freight-backend/internal/policy"
	"freight-backend/internal/repositories"
	"freight-backend/internal/timeutil"

	"github.com/jackc/pgx/v5"
)

type TripService struct {
	Repo *repositories.TripRepository
}

func NewTripService(repo *repositories.TripRepository) *TripService {
	return &TripService{Repo: repo}
}

// TripCode formats a trip code from its year and sequence number.
func TripCode(year, seq int) string {
	return fmt.Sprintf("%d_%d", year, seq)
}

func (s *TripService) ListTrips(ctx context.Context, f models.TripFilter) ([]*models.Trip, error) {
	return s.Repo.List(ctx, f)
}

func (s *TripService) GetTrip(ctx context.Context, id int) (*models.Trip, error) {
	trip, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, apperrors.ErrNotFound
	}
	return trip, nil
}

// CreateTrip validates the input, allocates the trip code, derives both
// balances, and inserts. Any authenticated role may create trips.
func (s *TripService) CreateTrip(ctx context.Context, req *models.CreateTripRequest, caller policy.Identity) (*models.Trip, error) {
	if req.VehicleNumber == "" {
		return nil, apperrors.Validation("vehicle_number", "vehicle number is required")
	}
	if req.PartyName == "" {
		return nil, apperrors.Validation("party_name", "party name is required")
	}
	loadingDate, err := parseLoadingDate(req.LoadingDate)
	if err != nil {
		return nil, err
	}

	vehicleType := req.VehicleType
	if vehicleType == "" {
		vehicleType = models.VehicleOwned
	}
	if !models.ValidVehicleType(vehicleType) {
		return nil, apperrors.Validation("vehicle_type", "unknown vehicle type")
	}

	status := req.Status
	if status == "" {
		status = models.StatusPending
	}
	if !models.ValidStatus(status) {
		return nil, apperrors.Validation("status", "unknown trip status")
	}

	year := timeutil.Now().Year()
	seq, err := s.Repo.NextTripCode(ctx, year)
	if err != nil {
		return nil, err
	}

	partyBalance, ownerBalance := CreateBalances(req)

	trip := &models.Trip{
		TripCode:          TripCode(year, seq),
		VehicleNumber:     req.VehicleNumber,
		VehicleType:       vehicleType,
		LoadingDate:       loadingDate,
		Status:            status,
		PartyName:         req.PartyName,
		PartyFreight:      orZero(req.PartyFreight),
		PartyAdvance:      orZero(req.PartyAdvance),
		PartyBalance:      partyBalance,
		MotorOwnerName:    req.MotorOwnerName,
		MotorOwnerBhada:   orZero(req.MotorOwnerBhada),
		MotorOwnerAdvance: orZero(req.MotorOwnerAdvance),
		MotorOwnerBalance: ownerBalance,
		CreatedByUserID:   caller.UserID,
	}
	if err := s.Repo.Create(ctx, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

// UpdateTrip applies a partial update. The authorization policy runs against
// the stored trip before anything is merged or recomputed; the update either
// fully applies or is rejected.
func (s *TripService) UpdateTrip(ctx context.Context, id int, req *models.UpdateTripRequest, caller policy.Identity) (*models.Trip, error) {
	trip, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, apperrors.ErrNotFound
	}

	if err := policy.CanUpdateTrip(caller, trip, req); err != nil {
		return nil, err
	}

	if err := mergeTrip(trip, req); err != nil {
		return nil, err
	}
	trip.PartyBalance = PartyBalanceAfterUpdate(trip, req)
	trip.MotorOwnerBalance = OwnerBalanceAfterUpdate(trip, req)

	if err := s.Repo.Update(ctx, trip); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return s.GetTrip(ctx, id)
}

// mergeTrip folds the supplied fields into the stored record. Balances are
// not merged here; they are recomputed afterwards.
func mergeTrip(trip *models.Trip, req *models.UpdateTripRequest) error {
	if req.VehicleNumber != nil {
		if *req.VehicleNumber == "" {
			return apperrors.Validation("vehicle_number", "vehicle number cannot be empty")
		}
		trip.VehicleNumber = *req.VehicleNumber
	}
	if req.VehicleType != nil {
		if !models.ValidVehicleType(*req.VehicleType) {
			return apperrors.Validation("vehicle_type", "unknown vehicle type")
		}
		trip.VehicleType = *req.VehicleType
	}
	if req.LoadingDate != nil {
		loadingDate, err := parseLoadingDate(*req.LoadingDate)
		if err != nil {
			return err
		}
		trip.LoadingDate = loadingDate
	}
	if req.Status != nil {
		if !models.ValidStatus(*req.Status) {
			return apperrors.Validation("status", "unknown trip status")
		}
		trip.Status = *req.Status
	}
	if req.PartyName != nil {
		if *req.PartyName == "" {
			return apperrors.Validation("party_name", "party name cannot be empty")
		}
		trip.PartyName = *req.PartyName
	}
	if req.PartyFreight != nil {
		trip.PartyFreight = *req.PartyFreight
	}
	if req.PartyAdvance != nil {
		trip.PartyAdvance = *req.PartyAdvance
	}
	if req.MotorOwnerName != nil {
		trip.MotorOwnerName = *req.MotorOwnerName
	}
	if req.MotorOwnerBhada != nil {
		trip.MotorOwnerBhada = *req.MotorOwnerBhada
	}
	if req.MotorOwnerAdvance != nil {
		trip.MotorOwnerAdvance = *req.MotorOwnerAdvance
	}
	return nil
}

func parseLoadingDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, apperrors.Validation("loading_date", "loading date is required")
	}
	loadingDate, err := timeutil.ParseDate(value)
	if err != nil {
		return time.Time{}, apperrors.Validation("loading_date", "loading date must be YYYY-MM-DD")
	}
	return loadingDate, nil
}
