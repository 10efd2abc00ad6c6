package appointments

import "context"

type Repository interface {
	ListByOwner(ctx context.Context, ownerEmail string) ([]Appointment, error)
	ListAll(ctx context.Context) ([]Appointment, error)
	GetByID(ctx context.Context, id int64) (Appointment, bool, error)
	Create(ctx context.Context, a Appointment) error

	// Update reemplaza el registro con el mismo id; si el id no existe es
	// un no-op (devuelve false).
	Update(ctx context.Context, a Appointment) (bool, error)
}
