package middleware

import (
	"context"
	"net/http"

	"freight-backend/internal/apperrors"
	"freight-backend/internal/policy"
	"freight-backend/internal/session"
	"freight-backend/pkg/utils"
)

type contextKey string

const identityKey contextKey = "identity"

// SessionCookie is the name of the session cookie set at login.
const SessionCookie = "freight_session"

// AuthMiddleware resolves the session cookie against the session store and
// attaches the caller's Identity to the request context. Handlers never
// look at the cookie themselves.
type AuthMiddleware struct {
	store session.Store
}

func NewAuthMiddleware(store session.Store) *AuthMiddleware {
	return &AuthMiddleware{store: store}
}

// Authenticate rejects requests without a live session.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookie)
		if err != nil {
			utils.Error(w, apperrors.ErrUnauthenticated)
			return
		}

		sess, err := m.store.Get(r.Context(), cookie.Value)
		if err != nil {
			utils.Error(w, err)
			return
		}
		if sess == nil {
			utils.Error(w, apperrors.ErrUnauthenticated)
			return
		}

		ident := policy.Identity{
			UserID:   sess.UserID,
			Username: sess.Username,
			Role:     sess.Role,
		}
		ctx := context.WithValue(r.Context(), identityKey, ident)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin gates a route to ADMIN callers. Must run after Authenticate.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident, ok := IdentityFromContext(r.Context())
		if !ok {
			utils.Error(w, apperrors.ErrUnauthenticated)
			return
		}
		if !ident.IsAdmin() {
			utils.Error(w, apperrors.Forbidden("admin access required"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// IdentityFromContext extracts the authenticated caller from the context.
func IdentityFromContext(ctx context.Context) (policy.Identity, bool) {
	ident, ok := ctx.Value(identityKey).(policy.Identity)
	return ident, ok
}
