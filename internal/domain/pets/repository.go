package pets

import "context"

type Repository interface {
	ListByOwner(ctx context.Context, ownerEmail string) ([]Pet, error)
	ListAll(ctx context.Context) ([]Pet, error)
	Get(ctx context.Context, ownerEmail, name string) (Pet, bool, error)

	// Put inserta o reemplaza por la clave (ownerEmail, name).
	Put(ctx context.Context, p Pet) error

	// Delete devuelve si había algo que borrar.
	Delete(ctx context.Context, ownerEmail, name string) (bool, error)
}
