package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"freight-backend/internal/models"
	"freight-backend/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthedRequest(t *testing.T, store session.Store, sess session.Session) *http.Request {
	t.Helper()
	id, err := store.Create(context.Background(), sess)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/trips", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: id})
	return req
}

func TestAuthenticate_NoCookie(t *testing.T) {
	m := NewAuthMiddleware(session.NewMemoryStore(time.Hour))

	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a session")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/api/trips", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthenticate_StaleSession(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	m := NewAuthMiddleware(store)

	req := httptest.NewRequest("GET", "/api/trips", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "destroyed-or-expired"})

	rr := httptest.NewRecorder()
	m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with a stale session")
	})).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthenticate_AttachesIdentity(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	m := NewAuthMiddleware(store)

	req := newAuthedRequest(t, store, session.Session{UserID: 9, Username: "ops", Role: models.RoleManager})

	rr := httptest.NewRecorder()
	m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident, ok := IdentityFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, 9, ident.UserID)
		assert.Equal(t, "ops", ident.Username)
		assert.Equal(t, models.RoleManager, ident.Role)
		w.WriteHeader(http.StatusOK)
	})).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRequireAdmin(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	m := NewAuthMiddleware(store)

	chain := m.Authenticate(m.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	t.Run("manager is forbidden", func(t *testing.T) {
		req := newAuthedRequest(t, store, session.Session{UserID: 2, Role: models.RoleManager})
		rr := httptest.NewRecorder()
		chain.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("admin passes", func(t *testing.T) {
		req := newAuthedRequest(t, store, session.Session{UserID: 1, Role: models.RoleAdmin})
		rr := httptest.NewRecorder()
		chain.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
