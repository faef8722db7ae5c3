package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/svolkov/ainotes/internal/jwt"
	"github.com/svolkov/ainotes/internal/logger"
	"github.com/svolkov/ainotes/internal/models"
)

// Tokener defines the token operations needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// UserReader resolves the token subject to a stored user.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// userKey is an unexported context key for the authenticated user.
type userKey struct{}

// WithUser stores the authenticated user in the context.
func WithUser(ctx context.Context, user *models.UserDB) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// GetUserFromContext returns the authenticated user attached by
// AuthMiddleware, or nil outside an authenticated request.
func GetUserFromContext(ctx context.Context) *models.UserDB {
	user, _ := ctx.Value(userKey{}).(*models.UserDB)
	return user
}

// AuthMiddleware verifies the bearer token and resolves its subject to a
// user, attaching the user to the request context. Every failure mode
// produces the same 401 response, so a client cannot tell an invalid token
// from a token whose subject no longer exists.
func AuthMiddleware(tokener Tokener, users UserReader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			unauthorized := func(reason string, err error) {
				logger.Log.Errorw("authorization failed", "reason", reason, "err", err)
				w.Header().Set("WWW-Authenticate", "Bearer")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "Invalid token"})
			}

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				unauthorized("missing token", err)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				unauthorized("invalid token", err)
				return
			}

			user, err := users.GetByEmail(ctx, claims.Email)
			if err != nil {
				logger.Log.Errorw("user lookup failed", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if user == nil {
				unauthorized("unknown subject", nil)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(ctx, user)))
		})
	}
}
