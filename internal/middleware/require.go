package middleware

import (
	"net/http"

	"pet-haven/internal/domain/users"
)

// RequireOwner corta con 401/403 si no hay sesión de dueño; devuelve los
// claims para scopear la operación.
func RequireOwner(w http.ResponseWriter, r *http.Request) (Claims, bool) {
	return requireRole(w, r, users.RoleOwner)
}

// RequireVet corta con 401/403 si no hay sesión de veterinaria.
func RequireVet(w http.ResponseWriter, r *http.Request) (Claims, bool) {
	return requireRole(w, r, users.RoleVet)
}

func requireRole(w http.ResponseWriter, r *http.Request, role users.Role) (Claims, bool) {
	claims, ok := GetClaims(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return Claims{}, false
	}
	if claims.Role != role {
		http.Error(w, "forbidden", http.StatusForbidden)
		return Claims{}, false
	}
	return claims, true
}
