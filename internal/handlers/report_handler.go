package handlers

import (
	"fmt"
	"net/http"

	"freight-backend/internal/services"
	"freight-backend/internal/timeutil"
	"freight-backend/pkg/utils"
)

type ReportHandler struct {
	Service *services.ReportService
}

func NewReportHandler(s *services.ReportService) *ReportHandler {
	return &ReportHandler{Service: s}
}

// TripsCSV exports the filtered trip register as a CSV download.
func (h *ReportHandler) TripsCSV(w http.ResponseWriter, r *http.Request) {
	filter, err := parseTripFilter(r)
	if err != nil {
		utils.Error(w, err)
		return
	}

	data, err := h.Service.GenerateTripsCSV(r.Context(), filter)
	if err != nil {
		utils.Error(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="trips_%s.csv"`, timeutil.Now().Format(timeutil.DateLayout)))
	w.Write(data)
}

// TripsPDF exports the filtered trip register as a PDF download.
func (h *ReportHandler) TripsPDF(w http.ResponseWriter, r *http.Request) {
	filter, err := parseTripFilter(r)
	if err != nil {
		utils.Error(w, err)
		return
	}

	data, err := h.Service.GenerateTripsPDF(r.Context(), filter)
	if err != nil {
		utils.Error(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="trips_%s.pdf"`, timeutil.Now().Format(timeutil.DateLayout)))
	w.Write(data)
}
