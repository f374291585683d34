package middleware

import (
	"context"
	"net/http"

	"github.com/kingofgreatnezzz/greenwood-invest/utils"
)

// AuthMiddleware authenticates any signed-in account and stores id/role in
// the request context. Role-specific checks happen downstream.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := utils.ClaimsFromRequest(r)
		if err != nil {
			msg := "Unauthorized"
			if err.Error() == "token expired" {
				msg = "Your session has expired, please sign in again"
			}
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: msg})
			return
		}

		userID := utils.UserIDFromClaims(claims)
		if userID == 0 {
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Invalid token"})
			return
		}

		role, _ := claims["role"].(string)

		ctx := context.WithValue(r.Context(), utils.UserIDKey, userID)
		ctx = context.WithValue(ctx, utils.UserRoleKey, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminAuthMiddleware additionally requires the admin role capability.
func AdminAuthMiddleware(next http.Handler) http.Handler {
	return AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if utils.GetUserRole(r) != "admin" {
			utils.WriteJSON(w, http.StatusForbidden, utils.APIResponse{
				Success: false,
				Message: "Forbidden: admin access required",
			})
			return
		}
		next.ServeHTTP(w, r)
	}))
}
