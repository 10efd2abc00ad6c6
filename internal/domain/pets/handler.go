package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pet-haven/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	// Mascotas del dueño logueado
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc))
		pr.Get("/", listPetsHandler(svc))
		pr.Put("/{petName}", updatePetHandler(svc))
		pr.Delete("/{petName}", deletePetHandler(svc))
	})

	// Vista cruzada de la veterinaria
	r.Get("/vet/pets", listAllPetsHandler(svc))
}

type petRequest struct {
	Name         string  `json:"name"`
	Species      string  `json:"species"`
	BirthDate    string  `json:"bday"` // YYYY-MM-DD opcional
	Weight       float64 `json:"weight"`
	Vaccinations string  `json:"vax"`
	Photo        string  `json:"photo"`
}

type petResponse struct {
	OwnerEmail   string     `json:"ownerEmail"`
	OwnerName    string     `json:"owner"`
	Name         string     `json:"name"`
	Species      string     `json:"species"`
	BirthDate    *time.Time `json:"bday,omitempty"`
	Weight       float64    `json:"weight,omitempty"`
	Vaccinations string     `json:"vax,omitempty"`
	Photo        string     `json:"photo,omitempty"`
}

func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireOwner(w, r)
		if !ok {
			return
		}

		in, ok := decodePetInput(w, r)
		if !ok {
			return
		}

		p, err := svc.Create(r.Context(), claims.Email, claims.Name, in)
		if err != nil {
			switch {
			case errors.Is(err, ErrDuplicateName):
				http.Error(w, err.Error(), http.StatusConflict)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

func listPetsHandler(svc *Service) http.HandlerFunc {
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

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireOwner(w, r)
		if !ok {
			return
		}

		name := pathName(r)
		in, ok := decodePetInput(w, r)
		if !ok {
			return
		}

		p, err := svc.Update(r.Context(), claims.Email, name, in)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "pet not found", http.StatusNotFound)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireOwner(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), claims.Email, pathName(r)); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func listAllPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.RequireVet(w, r); !ok {
			return
		}

		items, err := svc.ListAll(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func decodePetInput(w http.ResponseWriter, r *http.Request) (Input, bool) {
	var req petRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return Input{}, false
	}

	var bd *time.Time
	if strings.TrimSpace(req.BirthDate) != "" {
		t, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			http.Error(w, "bday must be YYYY-MM-DD", http.StatusBadRequest)
			return Input{}, false
		}
		bd = &t
	}

	return Input{
		Name:         req.Name,
		Species:      req.Species,
		BirthDate:    bd,
		Weight:       req.Weight,
		Vaccinations: req.Vaccinations,
		Photo:        req.Photo,
	}, true
}

// pathName decodifica el nombre de la mascota de la URL (puede traer
// espacios escapados).
func pathName(r *http.Request) string {
	raw := chi.URLParam(r, "petName")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		OwnerEmail:   p.OwnerEmail,
		OwnerName:    p.OwnerName,
		Name:         p.Name,
		Species:      p.Species,
		BirthDate:    p.BirthDate,
		Weight:       p.Weight,
		Vaccinations: p.Vaccinations,
		Photo:        p.Photo,
	}
}

// writeJSON está duplicado a propósito en los handlers de cada módulo,
// igual que veníamos haciendo: todavía no amerita un helper compartido.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
