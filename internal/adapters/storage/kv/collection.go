// Package kv implementa los repositorios de dominio sobre el almacén
// clave-valor: cada colección vive completa bajo una clave como texto JSON
// y toda mutación es leer-modificar-escribir de la colección entera.
// Cada repositorio serializa sus mutaciones con un mutex propio, así el
// clásico lost-update entre dos escritores de la misma colección no puede
// pasar dentro del proceso.
package kv

import (
	"context"
	"encoding/json"
	"fmt"

	"pet-haven/internal/kvstore"
)

// Claves de las colecciones. El prefijo ph_ viene del esquema de datos
// original y se mantiene para poder importar dumps existentes.
const (
	KeyUsers        = "ph_users"
	KeySession      = "ph_session"
	KeyPets         = "ph_pets"
	KeyAppointments = "ph_appointments"
	KeyReminders    = "ph_reminders"
	KeyChats        = "ph_chats"
)

// readCollection trae la colección completa. Un valor ausente o que no
// parsea se trata como colección vacía (fail-open); un error del backend
// sí se propaga, eso es un problema real de almacenamiento.
func readCollection[T any](ctx context.Context, store kvstore.KV, key string) ([]T, error) {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("read collection %s: %w", key, err)
	}
	if !ok || raw == "" {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// writeCollection reemplaza la colección completa bajo su clave.
func writeCollection[T any](ctx context.Context, store kvstore.KV, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", key, err)
	}
	if err := store.Put(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("write collection %s: %w", key, err)
	}
	return nil
}
