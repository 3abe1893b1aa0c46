package middleware

import (
	"net/http"
	"strings"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

// Authenticate validates the bearer JWT and puts the caller's identity into
// the request context.
func Authenticate(jwtConfig utils.JWTConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			claims, err := utils.ParseAccessToken(jwtConfig.Secret, parts[1])
			if err != nil {
				logger.Warn("Invalid or expired token",
					zap.Error(err),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := utils.SetUserContext(r.Context(), claims.UserID, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects non-admin callers. Must run after Authenticate.
func RequireAdmin(logger *zap.Logger) func(http.Handler) http.Handler {
	return requireRole(entity.RoleAdmin, logger)
}

// RequireClient rejects non-client callers. Booking creation and
// cancellation are client operations.
func RequireClient(logger *zap.Logger) func(http.Handler) http.Handler {
	return requireRole(entity.RoleClient, logger)
}

func requireRole(required entity.UserRole, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if role != required {
				userID, _ := utils.GetUserIDFromContext(r.Context())
				logger.Warn("Role check failed",
					zap.String("user_id", userID),
					zap.String("role", string(role)),
					zap.String("required", string(required)),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseForbidden(w, "Not enough permissions. "+roleLabel(required)+" access required.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func roleLabel(role entity.UserRole) string {
	if role == entity.RoleAdmin {
		return "Admin"
	}
	return "Client"
}
