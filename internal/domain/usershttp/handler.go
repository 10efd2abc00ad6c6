// Package usershttp contiene los handlers HTTP de cuentas. Vive separado
// de users solo para cortar el ciclo de imports users -> sessions/middleware
// -> users; la lógica es idéntica a la del handler original.
package usershttp

import (
	"encoding/json"
	"errors"
	"net/http"

	"pet-haven/internal/domain/sessions"
	"pet-haven/internal/domain/users"
	"pet-haven/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *users.Service, sessionsSvc *sessions.Service) {
	r.Route("/auth", func(ar chi.Router) {
		ar.Post("/register", registerHandler(svc))
		ar.Post("/login", loginHandler(svc, sessionsSvc))
		ar.Post("/logout", logoutHandler(sessionsSvc))
		ar.Get("/session", sessionHandler())
	})
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// userResponse nunca incluye la contraseña.
type userResponse struct {
	ID    int64      `json:"id"`
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Role  users.Role `json:"role"`
}

func registerHandler(svc *users.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		u, err := svc.Register(r.Context(), users.RegisterInput{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
			Role:     users.Role(req.Role),
		})
		if err != nil {
			switch {
			case errors.Is(err, users.ErrEmailTaken):
				http.Error(w, err.Error(), http.StatusConflict)
			case errors.Is(err, users.ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toUserResponse(u))
	}
}

func loginHandler(svc *users.Service, sessionsSvc *sessions.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		u, err := svc.Authenticate(r.Context(), req.Email, req.Password, users.Role(req.Role))
		if err != nil {
			if errors.Is(err, users.ErrInvalidCredentials) {
				// mensaje genérico a propósito: no filtra qué campo falló
				http.Error(w, err.Error(), http.StatusUnauthorized)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		sess, err := sessionsSvc.Login(r.Context(), u)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, sess)
	}
}

func logoutHandler(sessionsSvc *sessions.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := sessionsSvc.Logout(r.Context()); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func sessionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "no active session", http.StatusUnauthorized)
			return
		}
		writeJSON(w, http.StatusOK, claims)
	}
}

func toUserResponse(u users.User) userResponse {
	return userResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
