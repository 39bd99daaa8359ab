package middleware

import (
	"context"
	"net/http"

	"github.com/dgeemedia/chrenis/services"
	"github.com/dgeemedia/chrenis/utils"

	redis "github.com/redis/go-redis/v9"
)

type contextKey string

const identityKey = contextKey("identity")

// Authenticator validates bearer JWTs and injects the caller identity into
// the request context. The Redis client is the optional jti revocation
// store; nil disables revocation checks.
type Authenticator struct {
	Redis *redis.Client
}

func NewAuthenticator(rdb *redis.Client) *Authenticator {
	return &Authenticator{Redis: rdb}
}

// Middleware rejects requests without a valid token.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := utils.ExtractBearerToken(r.Header.Get("Authorization"))
		if token == "" {
			utils.WriteError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		claims, err := utils.ValidateAccessToken(token, a.Redis)
		if err != nil {
			utils.WriteError(w, http.StatusUnauthorized, "Invalid token")
			return
		}
		ident := services.Identity{UserID: claims.UserID, Role: claims.Role}
		next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), ident)))
	})
}

// RequireRole wraps a handler so only callers with the given role pass.
// Runs after Middleware.
func (a *Authenticator) RequireRole(role string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident, ok := IdentityFromRequest(r)
		if !ok || ident.IsZero() {
			utils.WriteError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if ident.Role != role {
			utils.WriteError(w, http.StatusForbidden, "Forbidden")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func withIdentity(ctx context.Context, ident services.Identity) context.Context {
	return context.WithValue(ctx, identityKey, ident)
}

// IdentityFromRequest returns the authenticated caller, if any.
func IdentityFromRequest(r *http.Request) (services.Identity, bool) {
	ident, ok := r.Context().Value(identityKey).(services.Identity)
	return ident, ok
}
