package repositories

import (
	"context"
	"errors"

	"freight-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	DB *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	if u.Role == "" {
		u.Role = models.RoleManager // Default role
	}
	return r.DB.QueryRow(ctx,
		`INSERT INTO users(username, password_hash, display_name, role)
         VALUES($1, $2, $3, $4)
         RETURNING id, created_at, updated_at`,
		u.Username, u.PasswordHash, u.DisplayName, u.Role,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
}

// Get returns the user or nil when no such id exists.
func (r *UserRepository) Get(ctx context.Context, id int) (*models.User, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, username, password_hash, display_name, role, created_at, updated_at
         FROM users WHERE id=$1`, id)
	return scanUser(row)
}

// GetByUsername returns the user or nil when the username is unknown.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, username, password_hash, display_name, role, created_at, updated_at
         FROM users WHERE username=$1`, username)
	return scanUser(row)
}

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash,
		&user.DisplayName, &user.Role, &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
