package reminders

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("reminder not found")
	ErrForbidden    = errors.New("reminder belongs to another owner")
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

type Input struct {
	PetName string
	Date    string
	Time    string
	Text    string
}

func (s *Service) Create(ctx context.Context, ownerEmail string, in Input) (Reminder, error) {
	ownerEmail = strings.ToLower(strings.TrimSpace(ownerEmail))

	if ownerEmail == "" || strings.TrimSpace(in.Text) == "" || strings.TrimSpace(in.Date) == "" {
		return Reminder{}, ErrInvalidInput
	}

	r := Reminder{
		ID:         s.now().UnixMilli(),
		OwnerEmail: ownerEmail,
		PetName:    strings.TrimSpace(in.PetName),
		Date:       strings.TrimSpace(in.Date),
		Time:       strings.TrimSpace(in.Time),
		Text:       strings.TrimSpace(in.Text),
	}

	if err := s.repo.Create(ctx, r); err != nil {
		return Reminder{}, err
	}
	return r, nil
}

// Update reemplaza el recordatorio id del dueño; id y dueño no cambian.
func (s *Service) Update(ctx context.Context, ownerEmail string, id int64, in Input) (Reminder, error) {
	ownerEmail = strings.ToLower(strings.TrimSpace(ownerEmail))

	current, exists, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Reminder{}, err
	}
	if !exists {
		return Reminder{}, ErrNotFound
	}
	if current.OwnerEmail != ownerEmail {
		return Reminder{}, ErrForbidden
	}

	current.PetName = strings.TrimSpace(in.PetName)
	current.Date = strings.TrimSpace(in.Date)
	current.Time = strings.TrimSpace(in.Time)
	current.Text = strings.TrimSpace(in.Text)

	if _, err := s.repo.Update(ctx, current); err != nil {
		return Reminder{}, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, ownerEmail string, id int64) error {
	ownerEmail = strings.ToLower(strings.TrimSpace(ownerEmail))

	current, exists, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		// borrar algo que no está es un no-op
		return nil
	}
	if current.OwnerEmail != ownerEmail {
		return ErrForbidden
	}

	_, err = s.repo.Delete(ctx, id)
	return err
}

func (s *Service) ListByOwner(ctx context.Context, ownerEmail string) ([]Reminder, error) {
	return s.repo.ListByOwner(ctx, strings.ToLower(strings.TrimSpace(ownerEmail)))
}
