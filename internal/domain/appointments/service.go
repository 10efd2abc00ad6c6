package appointments

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("appointment not found")

	// ErrInvalidStatus: el destino de la transición no es uno permitido.
	ErrInvalidStatus = errors.New("invalid status transition")

	// ErrNotPending: solo un turno Pending puede editarse o transicionar.
	ErrNotPending = errors.New("appointment is no longer pending")

	// ErrForbidden: el turno pertenece a otro dueño.
	ErrForbidden = errors.New("appointment belongs to another owner")
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

type BookInput struct {
	PetName string
	Date    string
	Time    string
	Reason  string
}

// Book crea el turno en Pending con id basado en el reloj.
func (s *Service) Book(ctx context.Context, ownerEmail, ownerName string, in BookInput) (Appointment, error) {
	ownerEmail = strings.ToLower(strings.TrimSpace(ownerEmail))

	if ownerEmail == "" || strings.TrimSpace(in.PetName) == "" || strings.TrimSpace(in.Date) == "" {
		return Appointment{}, ErrInvalidInput
	}

	a := Appointment{
		ID:         s.now().UnixMilli(),
		OwnerEmail: ownerEmail,
		OwnerName:  strings.TrimSpace(ownerName),
		PetName:    strings.TrimSpace(in.PetName),
		Date:       strings.TrimSpace(in.Date),
		Time:       strings.TrimSpace(in.Time),
		Reason:     strings.TrimSpace(in.Reason),
		Status:     StatusPending,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

// Update deja al dueño corregir un turno que todavía está Pending. El id,
// el dueño y el estado no cambian.
func (s *Service) Update(ctx context.Context, ownerEmail string, id int64, in BookInput) (Appointment, error) {
	ownerEmail = strings.ToLower(strings.TrimSpace(ownerEmail))

	current, exists, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Appointment{}, err
	}
	if !exists {
		return Appointment{}, ErrNotFound
	}
	if current.OwnerEmail != ownerEmail {
		return Appointment{}, ErrForbidden
	}
	if current.Status != StatusPending {
		return Appointment{}, ErrNotPending
	}

	current.PetName = strings.TrimSpace(in.PetName)
	current.Date = strings.TrimSpace(in.Date)
	current.Time = strings.TrimSpace(in.Time)
	current.Reason = strings.TrimSpace(in.Reason)

	if _, err := s.repo.Update(ctx, current); err != nil {
		return Appointment{}, err
	}
	return current, nil
}

// SetStatus transiciona el turno id hacia Confirmed, Rejected o Cancelled.
// Solo Pending transiciona: sobre un estado terminal la llamada deja el
// registro como está y devuelve ErrNotPending (idempotencia de terminales).
func (s *Service) SetStatus(ctx context.Context, id int64, target Status) (Appointment, error) {
	switch target {
	case StatusConfirmed, StatusRejected, StatusCancelled:
	default:
		return Appointment{}, ErrInvalidStatus
	}

	current, exists, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Appointment{}, err
	}
	if !exists {
		return Appointment{}, ErrNotFound
	}
	if current.Status.IsTerminal() {
		return current, ErrNotPending
	}

	current.Status = target
	if _, err := s.repo.Update(ctx, current); err != nil {
		return Appointment{}, err
	}
	return current, nil
}

// Cancel es la transición del dueño; verifica pertenencia antes de tocar.
func (s *Service) Cancel(ctx context.Context, ownerEmail string, id int64) (Appointment, error) {
	ownerEmail = strings.ToLower(strings.TrimSpace(ownerEmail))

	current, exists, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Appointment{}, err
	}
	if !exists {
		return Appointment{}, ErrNotFound
	}
	if current.OwnerEmail != ownerEmail {
		return Appointment{}, ErrForbidden
	}

	return s.SetStatus(ctx, id, StatusCancelled)
}

func (s *Service) ListByOwner(ctx context.Context, ownerEmail string) ([]Appointment, error) {
	return s.repo.ListByOwner(ctx, strings.ToLower(strings.TrimSpace(ownerEmail)))
}

// ListAll es la vista de la veterinaria: todos los turnos, sin filtrar.
func (s *Service) ListAll(ctx context.Context) ([]Appointment, error) {
	return s.repo.ListAll(ctx)
}
