package middleware

import (
	"context"
	"net/http"
	"strings"

	"shop-api/models"
	"shop-api/utils"

	"github.com/gorilla/mux"
)

// Key type for context
type contextKey string

const UserContextKey = contextKey("user")

// ClaimsFrom returns the verified claims Authenticate attached to the
// request, or nil when the request never passed Authenticate.
func ClaimsFrom(r *http.Request) *utils.Claims {
	claims, _ := r.Context().Value(UserContextKey).(*utils.Claims)
	return claims
}

// Authorize is the stateless access predicate evaluated before handlers:
// allow when the caller owns the resource (its id equals ownerID) or when
// the caller's role is in the allow-list.
func Authorize(claims *utils.Claims, ownerID string, roles ...string) bool {
	if claims == nil {
		return false
	}
	if ownerID != "" && claims.ID == ownerID {
		return true
	}
	for _, role := range roles {
		if claims.Role == role {
			return true
		}
	}
	return false
}

// Authenticate verifies the bearer token and attaches its claims to the
// request context.
func Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			utils.Error(w, http.StatusUnauthorized, "Access denied. No token provided.")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.Error(w, http.StatusUnauthorized, "Access denied. Invalid token.")
			return
		}

		claims, err := utils.ParseToken(parts[1])
		if err != nil {
			utils.Error(w, http.StatusUnauthorized, "Access denied. Invalid token.")
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRoles gates a handler on role membership. Runs after Authenticate.
func RequireRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !Authorize(ClaimsFrom(r), "", roles...) {
				utils.Error(w, http.StatusForbidden, "Access denied. Allowed roles: "+strings.Join(roles, ", ")+".")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireSelf gates a handler to the user named by the {id} path parameter.
func RequireSelf(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claims := ClaimsFrom(r); claims == nil || claims.ID != mux.Vars(r)["id"] {
			utils.Error(w, http.StatusForbidden, "Access denied. Only User himself.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// AdminOrEmployee is the common privileged gate.
var AdminOrEmployee = RequireRoles(models.RoleAdmin, models.RoleEmployee)

// AdminOnly gates a handler to admins.
var AdminOnly = RequireRoles(models.RoleAdmin)
