package sessions

import "context"

type Repository interface {
	// Get devuelve la sesión activa y si existe.
	Get(ctx context.Context) (Session, bool, error)
	Set(ctx context.Context, s Session) error
	Clear(ctx context.Context) error
}
