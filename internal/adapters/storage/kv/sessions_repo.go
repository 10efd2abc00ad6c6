package kv

import (
	"context"
	"encoding/json"
	"fmt"

	"pet-haven/internal/domain/sessions"
	"pet-haven/internal/kvstore"
)

// SessionsRepo maneja el slot único de sesión. No hay RMW acá: Set y Clear
// reemplazan o borran la clave entera.
type SessionsRepo struct {
	store kvstore.KV
}

func NewSessionsRepo(store kvstore.KV) *SessionsRepo {
	return &SessionsRepo{store: store}
}

func (r *SessionsRepo) Get(ctx context.Context) (sessions.Session, bool, error) {
	raw, ok, err := r.store.Get(ctx, KeySession)
	if err != nil {
		return sessions.Session{}, false, fmt.Errorf("read session: %w", err)
	}
	if !ok || raw == "" {
		return sessions.Session{}, false, nil
	}

	var s sessions.Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		// sesión corrupta = sin sesión
		return sessions.Session{}, false, nil
	}
	return s, true, nil
}

func (r *SessionsRepo) Set(ctx context.Context, s sessions.Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := r.store.Put(ctx, KeySession, string(raw)); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

func (r *SessionsRepo) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, KeySession); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
