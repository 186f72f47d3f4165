package handlers

import (
	"net/http"

	"freight-backend/internal/models"
	"freight-backend/internal/services"
	"freight-backend/pkg/utils"
)

type AnalyticsHandler struct {
	Service *services.AnalyticsService
}

func NewAnalyticsHandler(s *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{Service: s}
}

func (h *AnalyticsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.Dashboard(r.Context())
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, stats)
}

func (h *AnalyticsHandler) Parties(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.PartyAnalytics(r.Context())
	if err != nil {
		utils.Error(w, err)
		return
	}
	if stats == nil {
		stats = []*models.PartyStats{}
	}
	utils.JSON(w, http.StatusOK, stats)
}

func (h *AnalyticsHandler) Owners(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.OwnerAnalytics(r.Context())
	if err != nil {
		utils.Error(w, err)
		return
	}
	if stats == nil {
		stats = []*models.OwnerStats{}
	}
	utils.JSON(w, http.StatusOK, stats)
}
