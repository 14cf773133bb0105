// internal/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/questdeckhq/questdeck/internal/auth"
)

type identityContextKey string

// IdentityKey is the context key holding the caller's *auth.Identity. Absent
// on anonymous requests.
const IdentityKey = identityContextKey("questdeck_identity")

// RequireAuth validates the bearer token and rejects requests without one.
func RequireAuth(tokenManager *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := identityFromRequest(tokenManager, r)
			if !ok {
				respondWithError(w, http.StatusUnauthorized, "Invalid or missing token")
				return
			}

			ctx := context.WithValue(r.Context(), IdentityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth resolves an identity when a bearer token is present and lets
// anonymous requests through untouched. A token that is present but invalid
// is still rejected rather than silently downgraded to anonymous.
func OptionalAuth(tokenManager *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") == "" {
				next.ServeHTTP(w, r)
				return
			}

			identity, ok := identityFromRequest(tokenManager, r)
			if !ok {
				respondWithError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), IdentityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Identity returns the caller identity from the request context, or nil for
// anonymous callers.
func Identity(ctx context.Context) *auth.Identity {
	identity, _ := ctx.Value(IdentityKey).(*auth.Identity)
	return identity
}

func identityFromRequest(tokenManager *auth.TokenManager, r *http.Request) (*auth.Identity, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	claims, err := tokenManager.Validate(parts[1])
	if err != nil {
		return nil, false
	}

	identity, err := claims.Identity()
	if err != nil {
		return nil, false
	}

	return identity, true
}

// respondWithError sends a JSON error response
func respondWithError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
