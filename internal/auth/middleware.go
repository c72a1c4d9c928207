package auth

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const identityKey contextKey = "draftzi_identity"

// Identity is the decoded caller attached to the request context by Middleware.
type Identity struct {
	UserID int
	Email  string
}

// Middleware gates protected routes. A missing or non-Bearer Authorization
// header is rejected with 401; a present but malformed, tampered or expired
// token with 403. On success the identity is attached to the context and the
// chain continues.
func Middleware(tokens *TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				respondError(w, http.StatusUnauthorized, "authorization token required")
				return
			}

			raw := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
			if raw == "" {
				respondError(w, http.StatusUnauthorized, "authorization token required")
				return
			}

			claims, err := tokens.Parse(raw)
			if err != nil || claims.UserID == 0 {
				respondError(w, http.StatusForbidden, "invalid or expired token")
				return
			}

			identity := Identity{UserID: claims.UserID, Email: claims.Email}
			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	return identity, ok
}
