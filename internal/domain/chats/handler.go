package chats

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"pet-haven/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	// Conversación del dueño con la veterinaria
	r.Route("/chat", func(cr chi.Router) {
		cr.Get("/", ownerThreadHandler(svc))
		cr.Post("/", ownerSendHandler(svc))
	})

	// Lado veterinaria: elegir conversación y responder
	r.Route("/vet/chat", func(vr chi.Router) {
		vr.Get("/users", threadUsersHandler(svc))
		vr.Get("/{userEmail}", vetThreadHandler(svc))
		vr.Post("/{userEmail}", vetSendHandler(svc))
	})
}

type sendRequest struct {
	Text string `json:"text"`
}

func ownerThreadHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireOwner(w, r)
		if !ok {
			return
		}

		t, err := svc.Thread(r.Context(), claims.Email)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, t)
	}
}

func ownerSendHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireOwner(w, r)
		if !ok {
			return
		}

		text, ok := decodeSend(w, r)
		if !ok {
			return
		}

		m, err := svc.Append(r.Context(), claims.Email, SenderUser, text)
		if err != nil {
			writeSendError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, m)
	}
}

func threadUsersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.RequireVet(w, r); !ok {
			return
		}

		emails, err := svc.ThreadUsers(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, emails)
	}
}

func vetThreadHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.RequireVet(w, r); !ok {
			return
		}

		t, err := svc.Thread(r.Context(), pathEmail(r))
		if err != nil {
			writeSendError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, t)
	}
}

func vetSendHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.RequireVet(w, r); !ok {
			return
		}

		text, ok := decodeSend(w, r)
		if !ok {
			return
		}

		m, err := svc.Append(r.Context(), pathEmail(r), SenderVet, text)
		if err != nil {
			writeSendError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, m)
	}
}

func decodeSend(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req sendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return "", false
	}
	return req.Text, true
}

func writeSendError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrInvalidInput) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, "internal error", http.StatusInternalServerError)
}

// pathEmail decodifica el email del dueño de la URL (la arroba suele venir
// escapada).
func pathEmail(r *http.Request) string {
	raw := chi.URLParam(r, "userEmail")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
