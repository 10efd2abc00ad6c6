package pets

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")

	// ErrDuplicateName: el dueño ya tiene una mascota con ese nombre.
	ErrDuplicateName = errors.New("pet name already in use")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type Input struct {
	Name         string
	Species      string
	BirthDate    *time.Time
	Weight       float64
	Vaccinations string
	Photo        string
}

// Create agrega una mascota nueva. El nombre es clave única dentro de la
// lista del dueño, así que un nombre repetido se rechaza en vez de pisar
// el registro existente en silencio.
func (s *Service) Create(ctx context.Context, ownerEmail, ownerName string, in Input) (Pet, error) {
	ownerEmail = strings.ToLower(strings.TrimSpace(ownerEmail))
	name := strings.TrimSpace(in.Name)

	if ownerEmail == "" || name == "" {
		return Pet{}, ErrInvalidInput
	}

	if _, exists, err := s.repo.Get(ctx, ownerEmail, name); err != nil {
		return Pet{}, err
	} else if exists {
		return Pet{}, ErrDuplicateName
	}

	p := Pet{
		OwnerEmail:   ownerEmail,
		OwnerName:    strings.TrimSpace(ownerName),
		Name:         name,
		Species:      strings.TrimSpace(in.Species),
		BirthDate:    in.BirthDate,
		Weight:       in.Weight,
		Vaccinations: strings.TrimSpace(in.Vaccinations),
		Photo:        in.Photo,
	}

	if err := s.repo.Put(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// Update reemplaza la mascota (ownerEmail, name) completa. La foto guardada
// se conserva cuando no viene una nueva; el nombre no se puede cambiar.
func (s *Service) Update(ctx context.Context, ownerEmail, name string, in Input) (Pet, error) {
	ownerEmail = strings.ToLower(strings.TrimSpace(ownerEmail))
	name = strings.TrimSpace(name)

	current, exists, err := s.repo.Get(ctx, ownerEmail, name)
	if err != nil {
		return Pet{}, err
	}
	if !exists {
		return Pet{}, ErrNotFound
	}

	photo := in.Photo
	if photo == "" {
		photo = current.Photo
	}

	p := Pet{
		OwnerEmail:   ownerEmail,
		OwnerName:    current.OwnerName,
		Name:         name,
		Species:      strings.TrimSpace(in.Species),
		BirthDate:    in.BirthDate,
		Weight:       in.Weight,
		Vaccinations: strings.TrimSpace(in.Vaccinations),
		Photo:        photo,
	}

	if err := s.repo.Put(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// Delete borra la mascota si existe; si no existe es un no-op. Turnos y
// recordatorios que la nombran quedan colgando a propósito: se muestran
// tal cual, no hay borrado en cascada.
func (s *Service) Delete(ctx context.Context, ownerEmail, name string) error {
	ownerEmail = strings.ToLower(strings.TrimSpace(ownerEmail))
	_, err := s.repo.Delete(ctx, ownerEmail, strings.TrimSpace(name))
	return err
}

func (s *Service) ListByOwner(ctx context.Context, ownerEmail string) ([]Pet, error) {
	return s.repo.ListByOwner(ctx, strings.ToLower(strings.TrimSpace(ownerEmail)))
}

// ListAll es la vista cruzada de la veterinaria: todas las mascotas de
// todos los dueños.
func (s *Service) ListAll(ctx context.Context) ([]Pet, error) {
	return s.repo.ListAll(ctx)
}
