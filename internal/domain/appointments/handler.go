package appointments

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"pet-haven/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	// Turnos del dueño
	r.Route("/appointments", func(ar chi.Router) {
		ar.Post("/", bookHandler(svc))
		ar.Get("/", listOwnerHandler(svc))
		ar.Put("/{id}", updateHandler(svc))
		ar.Post("/{id}/cancel", cancelHandler(svc))
	})

	// Gestión de la veterinaria
	r.Route("/vet/appointments", func(vr chi.Router) {
		vr.Get("/", listAllHandler(svc))
		vr.Post("/{id}/confirm", setStatusHandler(svc, StatusConfirmed))
		vr.Post("/{id}/reject", setStatusHandler(svc, StatusRejected))
	})
}

type bookRequest struct {
	PetName string `json:"petName"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Reason  string `json:"reason"`
}

func bookHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireOwner(w, r)
		if !ok {
			return
		}

		var req bookRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.Book(r.Context(), claims.Email, claims.Name, BookInput(req))
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, a)
	}
}

func listOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireOwner(w, r)
		if !ok {
			return
		}

		items, err := svc.ListByOwner(r.Context(), claims.Email)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireOwner(w, r)
		if !ok {
			return
		}

		id, ok := pathID(w, r)
		if !ok {
			return
		}

		var req bookRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.Update(r.Context(), claims.Email, id, BookInput(req))
		if err != nil {
			writeUpdateError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, a)
	}
}

func cancelHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireOwner(w, r)
		if !ok {
			return
		}

		id, ok := pathID(w, r)
		if !ok {
			return
		}

		a, err := svc.Cancel(r.Context(), claims.Email, id)
		if err != nil {
			writeUpdateError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, a)
	}
}

func listAllHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.RequireVet(w, r); !ok {
			return
		}

		items, err := svc.ListAll(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func setStatusHandler(svc *Service, target Status) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.RequireVet(w, r); !ok {
			return
		}

		id, ok := pathID(w, r)
		if !ok {
			return
		}

		a, err := svc.SetStatus(r.Context(), id, target)
		if err != nil {
			writeUpdateError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, a)
	}
}

func writeUpdateError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, "appointment not found", http.StatusNotFound)
	case errors.Is(err, ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrNotPending), errors.Is(err, ErrInvalidStatus):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "id must be numeric", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
