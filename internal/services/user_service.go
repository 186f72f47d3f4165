package services

import (
	"context"
	"errors"
	"log"

	"freight-backend/internal/apperrors"
	"freight-backend/internal/auth"
	"freight-backend/internal/models"
	"freight-backend/internal/repositories"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

type UserService struct {
	Repo *repositories.UserRepository
}

func NewUserService(repo *repositories.UserRepository) *UserService {
	return &UserService{Repo: repo}
}

// Authenticate verifies a username/password pair. The error is identical
// for an unknown username and a wrong password.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil || !auth.VerifyPassword(user.PasswordHash, password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

// CreateUser validates, hashes the credential, and inserts. The duplicate
// check here is advisory; the UNIQUE constraint is the real guarantee, and
// its violation maps to the same conflict error.
func (s *UserService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	if req.Username == "" {
		return nil, apperrors.Validation("username", "username is required")
	}
	if req.Password == "" {
		return nil, apperrors.Validation("password", "password is required")
	}
	if req.Role != "" && !models.ValidRole(req.Role) {
		return nil, apperrors.Validation("role", "role must be ADMIN or MANAGER")
	}

	existing, err := s.Repo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Conflict("username already exists")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: hash,
		DisplayName:  req.DisplayName,
		Role:         req.Role,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, apperrors.Conflict("username already exists")
		}
		return nil, err
	}
	return user, nil
}

// GetUser returns the user or NotFound.
func (s *UserService) GetUser(ctx context.Context, id int) (*models.User, error) {
	user, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}

// BootstrapAdmin creates the default admin account on first startup. The
// default credential is deliberately weak and must be rotated via
// ADMIN_PASSWORD in any real deployment.
func (s *UserService) BootstrapAdmin(ctx context.Context, password string) error {
	existing, err := s.Repo.GetByUsername(ctx, "admin")
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	admin := &models.User{
		Username:     "admin",
		PasswordHash: hash,
		DisplayName:  "Administrator",
		Role:         models.RoleAdmin,
	}
	if err := s.Repo.Create(ctx, admin); err != nil {
		return err
	}
	log.Println("[Bootstrap] Default admin user created - rotate its password before going live")
	return nil
}
