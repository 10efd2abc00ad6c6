// Package kvstore define el almacén clave-valor sobre el que viven las
// colecciones del servicio: cada clave lógica guarda una colección completa
// serializada como texto JSON. Los backends (memory, sqlite, postgres)
// implementan KV; las notificaciones de cambio salen por Hub después de que
// la escritura quedó durable.
package kvstore

import "context"

// KV es el contrato mínimo del backend: texto por clave.
type KV interface {
	// Get devuelve el valor y si la clave existe.
	Get(ctx context.Context, key string) (string, bool, error)

	// Put escribe el valor completo de la clave (reemplazo total).
	Put(ctx context.Context, key, value string) error

	// Delete elimina la clave; borrar una clave ausente no es error.
	Delete(ctx context.Context, key string) error

	// Watch permite suscribirse a cambios de claves. El evento se publica
	// recién cuando la escritura que lo causó es durable.
	Watch() (<-chan Event, func())

	Close() error
}

// Event señala que una clave cambió (Put o Delete).
type Event struct {
	Key string
}
