package sessions

import (
	"context"

	"pet-haven/internal/domain/users"
)

// Service administra el slot único de sesión. El scoping por dueño NO se
// lee de acá de forma ambiente: los handlers toman la sesión una vez y le
// pasan el email explícitamente a cada operación.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Active(ctx context.Context) (Session, bool, error) {
	return s.repo.Get(ctx)
}

// Login guarda la sesión del usuario autenticado, pisando la anterior.
func (s *Service) Login(ctx context.Context, u users.User) (Session, error) {
	sess := Session{
		UserID: u.ID,
		Email:  u.Email,
		Role:   u.Role,
		Name:   u.Name,
	}
	if err := s.repo.Set(ctx, sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

func (s *Service) Logout(ctx context.Context) error {
	return s.repo.Clear(ctx)
}
