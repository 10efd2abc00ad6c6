package users

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmailTaken: ya existe una cuenta con ese email (comparación
	// case-insensitive).
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials es deliberadamente genérico: no revela si el
	// email existe, si la contraseña falló o si el rol no coincide.
	ErrInvalidCredentials = errors.New("invalid credentials or role")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     Role
}

// Register crea la cuenta. El email se normaliza a minúsculas antes de
// chequear duplicados y de guardar.
func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if name == "" || email == "" || in.Password == "" {
		return User{}, ErrInvalidInput
	}
	if in.Role != RoleOwner && in.Role != RoleVet {
		return User{}, ErrInvalidInput
	}

	existing, err := s.repo.List(ctx)
	if err != nil {
		return User{}, err
	}
	for _, u := range existing {
		if strings.EqualFold(u.Email, email) {
			return User{}, ErrEmailTaken
		}
	}

	u := User{
		ID:       s.now().UnixMilli(),
		Name:     name,
		Email:    email,
		Password: in.Password,
		Role:     in.Role,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

// Authenticate exige que coincidan los tres campos a la vez.
func (s *Service) Authenticate(ctx context.Context, email, password string, role Role) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	all, err := s.repo.List(ctx)
	if err != nil {
		return User{}, err
	}
	for _, u := range all {
		if u.Email == email && u.Password == password && u.Role == role {
			return u, nil
		}
	}
	return User{}, ErrInvalidCredentials
}

// List devuelve todas las cuentas (lo usa la vista vet para mostrar el
// nombre del dueño junto a cada mascota).
func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

// Seed crea las dos cuentas demo si todavía no hay ninguna registrada.
func (s *Service) Seed(ctx context.Context) error {
	existing, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	demo := []User{
		{ID: 1, Name: "Demo Owner", Email: "user@example.com", Password: "password", Role: RoleOwner},
		{ID: 2, Name: "Demo Vet", Email: "vet@example.com", Password: "vetpass", Role: RoleVet},
	}
	for _, u := range demo {
		if err := s.repo.Create(ctx, u); err != nil {
			return err
		}
	}
	return nil
}
