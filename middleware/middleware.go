package middleware

import (
	"context"
	"net/http"
	"strings"

	"ticket-tracker/logging"
	"ticket-tracker/models"
	"ticket-tracker/utils"
)

type contextKey string

const userContextKey contextKey = "user"

// UserFromContext returns the authenticated identity attached by
// JWTAuthMiddleware.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userContextKey).(*models.User)
	return user, ok
}

// JWTAuthMiddleware validates the bearer token and attaches the
// resulting identity to the request context.
func JWTAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			logging.Logger.Warnf("Event ID: JWT_AUTH_MISSING_HEADER, Description: Authorization header missing for request to %s %s", r.Method, r.URL.Path)
			http.Error(w, "Authorization header missing", http.StatusUnauthorized)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			logging.Logger.Warnf("Event ID: JWT_AUTH_BEARER_PREFIX_MISSING, Description: Bearer prefix missing in Authorization header for request to %s %s", r.Method, r.URL.Path)
		}

		claims, err := utils.ValidateToken(tokenStr)
		if err != nil {
			logging.Logger.Warnf("Event ID: JWT_AUTH_INVALID_TOKEN, Description: Invalid token provided for request to %s %s: %v", r.Method, r.URL.Path, err)
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		user := &models.User{
			UID:           claims.UID,
			Email:         claims.Email,
			Name:          claims.Name,
			EmailVerified: claims.EmailVerified,
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
