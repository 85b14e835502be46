package middleware

import (
	"net/http"

	"lumenstudio/darkroom/internal/auth"
	"lumenstudio/darkroom/internal/constants"
)

// IsStaffMiddleware restricts a route group to managers and admins.
func IsStaffMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			claims := auth.GetUserClaims(r.Context())
			if claims == nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			role := claims.Role()
			if role != constants.RoleManager.String() && role != constants.RoleAdmin.String() {
				http.Error(w, "Unauthorized. Need manager perms", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
