package middleware

import (
	"net/http"
	"strings"

	"github.com/Saleh-enab/Cinema-API/internal/data/entity"
	"github.com/Saleh-enab/Cinema-API/pkg/utils"

	"go.uber.org/zap"
)

// Auth validates the bearer access token and puts the customer id and role
// into the request context.
func Auth(jwtConfig utils.JWTConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			claims, err := utils.VerifyAccessToken(jwtConfig.Secret, parts[1])
			if err != nil {
				logger.Warn("Invalid or expired access token", zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired access token")
				return
			}

			role, err := entity.ParseRole(claims.Role)
			if err != nil {
				logger.Warn("Token carries unknown role",
					zap.String("customer_id", claims.CustomerID.String()),
					zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid token claims")
				return
			}

			ctx := utils.SetCustomerContext(r.Context(), claims.CustomerID, string(role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin gates admin-only routes on the role claim set by Auth.
func Admin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rawRole, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			role, err := entity.ParseRole(rawRole)
			if err != nil {
				utils.ResponseUnauthorized(w, "Invalid role")
				return
			}

			switch role {
			case entity.RoleAdmin:
				next.ServeHTTP(w, r)
			case entity.RoleCustomer:
				customerID, _ := utils.GetCustomerIDFromContext(r.Context())
				logger.Warn("Admin check: non-admin access attempt",
					zap.String("customer_id", customerID.String()),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
			}
		})
	}
}
