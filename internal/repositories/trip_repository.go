package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"freight-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Financial columns are NUMERIC in Postgres and cast to text on the way out,
// so they land in decimal.Decimal without ever passing through a float.
const tripColumns = `id, trip_code, vehicle_number, vehicle_type, loading_date, status,
        party_name, party_freight::text, party_advance::text, party_balance::text,
        motor_owner_name, motor_owner_bhada::text, motor_owner_advance::text, motor_owner_balance::text,
        COALESCE(created_by_user_id, 0), created_at, updated_at`

type TripRepository struct {
	DB *pgxpool.Pool
}

func NewTripRepository(db *pgxpool.Pool) *TripRepository {
	return &TripRepository{DB: db}
}

// List returns trips matching the filter, most recent loading date first.
// All set filters are ANDed.
func (r *TripRepository) List(ctx context.Context, f models.TripFilter) ([]*models.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips`

	var clauses []string
	var args []interface{}

	if f.VehicleNumber != "" {
		args = append(args, "%"+f.VehicleNumber+"%")
		clauses = append(clauses, fmt.Sprintf("vehicle_number ILIKE $%d", len(args)))
	}
	if f.TripCode != "" {
		args = append(args, "%"+f.TripCode+"%")
		clauses = append(clauses, fmt.Sprintf("trip_code ILIKE $%d", len(args)))
	}
	if f.LoadedAfter != nil {
		args = append(args, *f.LoadedAfter)
		clauses = append(clauses, fmt.Sprintf("loading_date >= $%d", len(args)))
	}
	if f.Settled != nil {
		args = append(args, models.StatusSettled)
		if *f.Settled {
			clauses = append(clauses, fmt.Sprintf("status = $%d", len(args)))
		} else {
			clauses = append(clauses, fmt.Sprintf("status <> $%d", len(args)))
		}
	}

	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY loading_date DESC, id DESC"

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []*models.Trip
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, trip)
	}
	return trips, rows.Err()
}

// Get returns the trip or nil when no such id exists.
func (r *TripRepository) Get(ctx context.Context, id int) (*models.Trip, error) {
	row := r.DB.QueryRow(ctx, `SELECT `+tripColumns+` FROM trips WHERE id=$1`, id)
	trip, err := scanTrip(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return trip, nil
}

func (r *TripRepository) Create(ctx context.Context, t *models.Trip) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO trips(trip_code, vehicle_number, vehicle_type, loading_date, status,
            party_name, party_freight, party_advance, party_balance,
            motor_owner_name, motor_owner_bhada, motor_owner_advance, motor_owner_balance,
            created_by_user_id)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
         RETURNING id, created_at, updated_at`,
		t.TripCode, t.VehicleNumber, t.VehicleType, t.LoadingDate, t.Status,
		t.PartyName, t.PartyFreight.StringFixed(2), t.PartyAdvance.StringFixed(2), t.PartyBalance.StringFixed(2),
		t.MotorOwnerName, t.MotorOwnerBhada.StringFixed(2), t.MotorOwnerAdvance.StringFixed(2), t.MotorOwnerBalance.StringFixed(2),
		t.CreatedByUserID,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

// Update persists a fully merged trip record. The trip code is deliberately
// not in the SET list; it is assigned exactly once at creation.
func (r *TripRepository) Update(ctx context.Context, t *models.Trip) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE trips SET vehicle_number=$1, vehicle_type=$2, loading_date=$3, status=$4,
            party_name=$5, party_freight=$6, party_advance=$7, party_balance=$8,
            motor_owner_name=$9, motor_owner_bhada=$10, motor_owner_advance=$11, motor_owner_balance=$12,
            updated_at=CURRENT_TIMESTAMP
         WHERE id=$13`,
		t.VehicleNumber, t.VehicleType, t.LoadingDate, t.Status,
		t.PartyName, t.PartyFreight.StringFixed(2), t.PartyAdvance.StringFixed(2), t.PartyBalance.StringFixed(2),
		t.MotorOwnerName, t.MotorOwnerBhada.StringFixed(2), t.MotorOwnerAdvance.StringFixed(2), t.MotorOwnerBalance.StringFixed(2),
		t.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// NextTripCode bumps the per-year counter and returns the new sequence
// number. The upsert-returning form is atomic, so concurrent creations
// always get distinct values.
func (r *TripRepository) NextTripCode(ctx context.Context, year int) (int, error) {
	var seq int
	err := r.DB.QueryRow(ctx,
		`INSERT INTO trip_code_counters(year, value) VALUES($1, 1)
         ON CONFLICT (year) DO UPDATE SET value = trip_code_counters.value + 1
         RETURNING value`, year,
	).Scan(&seq)
	return seq, err
}

func scanTrip(row pgx.Row) (*models.Trip, error) {
	var trip models.Trip
	err := row.Scan(&trip.ID, &trip.TripCode, &trip.VehicleNumber, &trip.VehicleType,
		&trip.LoadingDate, &trip.Status, &trip.PartyName,
		&trip.PartyFreight, &trip.PartyAdvance, &trip.PartyBalance,
		&trip.MotorOwnerName, &trip.MotorOwnerBhada, &trip.MotorOwnerAdvance, &trip.MotorOwnerBalance,
		&trip.CreatedByUserID, &trip.CreatedAt, &trip.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &trip, nil
}
