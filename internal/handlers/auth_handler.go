package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"freight-backend/internal/apperrors"
	"freight-backend/internal/middleware"
	"freight-backend/internal/models"
	"freight-backend/internal/services"
	"freight-backend/internal/session"
	"freight-backend/pkg/utils"
)

type AuthHandler struct {
	Service *services.UserService
	Store   session.Store
	TTL     time.Duration
}

func NewAuthHandler(s *services.UserService, store session.Store, ttl time.Duration) *AuthHandler {
	return &AuthHandler{
		Service: s,
		Store:   store,
		TTL:     ttl,
	}
}

// Login authenticates the credentials, creates a session, and sets the
// session cookie.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, apperrors.Validation("body", "invalid request body"))
		return
	}

	user, err := h.Service.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		utils.Error(w, err)
		return
	}

	id, err := h.Store.Create(r.Context(), session.Session{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
	if err != nil {
		utils.Error(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.TTL.Seconds()),
	})
	utils.JSON(w, http.StatusOK, user)
}

// Logout destroys the session and clears the cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookie); err == nil {
		h.Store.Destroy(r.Context(), cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	utils.JSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// Me returns the authenticated caller's user record.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		utils.Error(w, apperrors.ErrUnauthenticated)
		return
	}

	user, err := h.Service.GetUser(r.Context(), ident.UserID)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, user)
}
