package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"freight-backend/internal/models"
	"freight-backend/internal/repositories"
	"freight-backend/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
)

// ReportService exports the trip register as CSV or PDF, honoring the same
// filters as the trip listing.
type ReportService struct {
	TripRepo *repositories.TripRepository
}

func NewReportService(tripRepo *repositories.TripRepository) *ReportService {
	return &ReportService{TripRepo: tripRepo}
}

// GenerateTripsCSV renders the filtered trip register as CSV.
func (s *ReportService) GenerateTripsCSV(ctx context.Context, f models.TripFilter) ([]byte, error) {
	trips, err := s.TripRepo.List(ctx, f)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	// Header
	w.Write([]string{
		"#", "Trip Code", "Loading Date", "Vehicle No", "Type", "Status",
		"Party", "Freight", "Party Adv", "Party Bal",
		"Motor Owner", "Bhada", "Owner Adv", "Owner Bal",
	})

	// Data rows
	for i, t := range trips {
		w.Write([]string{
			fmt.Sprintf("%d", i+1),
			t.TripCode,
			t.LoadingDate.Format(timeutil.DateLayout),
			t.VehicleNumber,
			t.VehicleType,
			t.Status,
			t.PartyName,
			t.PartyFreight.StringFixed(2),
			t.PartyAdvance.StringFixed(2),
			t.PartyBalance.StringFixed(2),
			t.MotorOwnerName,
			t.MotorOwnerBhada.StringFixed(2),
			t.MotorOwnerAdvance.StringFixed(2),
			t.MotorOwnerBalance.StringFixed(2),
		})
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateTripsPDF renders the filtered trip register as a landscape PDF.
func (s *ReportService) GenerateTripsPDF(ctx context.Context, f models.TripFilter) ([]byte, error) {
	trips, err := s.TripRepo.List(ctx, f)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("L", "mm", "A4", "") // Landscape for more columns
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(277, 10, "Trip Register", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(277, 6, fmt.Sprintf("Generated: %s", timeutil.Now().Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	// Table header
	pdf.SetFont("Arial", "B", 8)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(10, 7, "#", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 7, "Code", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 7, "Date", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, "Vehicle", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 7, "Type", "1", 0, "C", true, 0, "")
	pdf.CellFormat(22, 7, "Status", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 7, "Party", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 7, "Freight", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 7, "Party Bal", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 7, "Motor Owner", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 7, "Bhada", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 7, "Owner Bal", "1", 1, "C", true, 0, "")

	// Table rows
	pdf.SetFont("Arial", "", 8)
	for i, t := range trips {
		// Alternate row colors
		if i%2 == 0 {
			pdf.SetFillColor(255, 255, 255)
		} else {
			pdf.SetFillColor(245, 245, 245)
		}

		party := t.PartyName
		if len(party) > 24 {
			party = party[:21] + "..."
		}
		owner := t.MotorOwnerName
		if len(owner) > 24 {
			owner = owner[:21] + "..."
		}

		pdf.CellFormat(10, 6, fmt.Sprintf("%d", i+1), "1", 0, "C", true, 0, "")
		pdf.CellFormat(20, 6, t.TripCode, "1", 0, "C", true, 0, "")
		pdf.CellFormat(20, 6, t.LoadingDate.Format("02-01-2006"), "1", 0, "C", true, 0, "")
		pdf.CellFormat(25, 6, t.VehicleNumber, "1", 0, "C", true, 0, "")
		pdf.CellFormat(20, 6, t.VehicleType, "1", 0, "C", true, 0, "")
		pdf.CellFormat(22, 6, t.Status, "1", 0, "C", true, 0, "")
		pdf.CellFormat(40, 6, party, "1", 0, "L", true, 0, "")
		pdf.CellFormat(20, 6, t.PartyFreight.StringFixed(2), "1", 0, "R", true, 0, "")
		pdf.CellFormat(20, 6, t.PartyBalance.StringFixed(2), "1", 0, "R", true, 0, "")
		pdf.CellFormat(40, 6, owner, "1", 0, "L", true, 0, "")
		pdf.CellFormat(20, 6, t.MotorOwnerBhada.StringFixed(2), "1", 0, "R", true, 0, "")
		pdf.CellFormat(20, 6, t.MotorOwnerBalance.StringFixed(2), "1", 1, "R", true, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
