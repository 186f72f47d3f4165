package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"freight-backend/internal/apperrors"
	"freight-backend/internal/middleware"
	"freight-backend/internal/models"
	"freight-backend/internal/services"
	"freight-backend/internal/timeutil"
	"freight-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type TripHandler struct {
	Service *services.TripService
}

func NewTripHandler(s *services.TripService) *TripHandler {
	return &TripHandler{Service: s}
}

// ListTrips returns trips matching the optional query filters:
// vehicle_number, trip_code, loaded_after (YYYY-MM-DD), settled (true/false).
func (h *TripHandler) ListTrips(w http.ResponseWriter, r *http.Request) {
	filter, err := parseTripFilter(r)
	if err != nil {
		utils.Error(w, err)
		return
	}

	trips, err := h.Service.ListTrips(r.Context(), filter)
	if err != nil {
		utils.Error(w, err)
		return
	}
	if trips == nil {
		trips = []*models.Trip{}
	}
	utils.JSON(w, http.StatusOK, trips)
}

func (h *TripHandler) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, apperrors.Validation("id", "id must be an integer"))
		return
	}

	trip, err := h.Service.GetTrip(r.Context(), id)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, trip)
}

func (h *TripHandler) CreateTrip(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		utils.Error(w, apperrors.ErrUnauthenticated)
		return
	}

	var req models.CreateTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, apperrors.Validation("body", "invalid request body"))
		return
	}

	trip, err := h.Service.CreateTrip(r.Context(), &req, ident)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, trip)
}

func (h *TripHandler) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		utils.Error(w, apperrors.ErrUnauthenticated)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, apperrors.Validation("id", "id must be an integer"))
		return
	}

	var req models.UpdateTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, apperrors.Validation("body", "invalid request body"))
		return
	}

	trip, err := h.Service.UpdateTrip(r.Context(), id, &req, ident)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, trip)
}

// parseTripFilter builds a TripFilter from the request query string.
func parseTripFilter(r *http.Request) (models.TripFilter, error) {
	q := r.URL.Query()
	filter := models.TripFilter{
		VehicleNumber: q.Get("vehicle_number"),
		TripCode:      q.Get("trip_code"),
	}

	if v := q.Get("loaded_after"); v != "" {
		loadedAfter, err := timeutil.ParseDate(v)
		if err != nil {
			return filter, apperrors.Validation("loaded_after", "loaded_after must be YYYY-MM-DD")
		}
		filter.LoadedAfter = &loadedAfter
	}

	if v := q.Get("settled"); v != "" {
		settled, err := strconv.ParseBool(v)
		if err != nil {
			return filter, apperrors.Validation("settled", "settled must be true or false")
		}
		filter.Settled = &settled
	}

	return filter, nil
}
