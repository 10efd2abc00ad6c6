package chats

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidInput = errors.New("invalid input")

// Service maneja los hilos dueño↔veterinaria. El email de la veterinaria
// es uno solo para todo el sistema y viene por configuración.
type Service struct {
	repo     Repository
	vetEmail string
	now      func() time.Time
}

func NewService(repo Repository, vetEmail string) *Service {
	return &Service{
		repo:     repo,
		vetEmail: strings.ToLower(strings.TrimSpace(vetEmail)),
		now:      time.Now,
	}
}

// Thread devuelve la conversación del dueño. Si todavía no existe devuelve
// un hilo vacío sin crearlo: recién se persiste con el primer mensaje.
func (s *Service) Thread(ctx context.Context, userEmail string) (Thread, error) {
	userEmail = strings.ToLower(strings.TrimSpace(userEmail))
	if userEmail == "" {
		return Thread{}, ErrInvalidInput
	}

	t, exists, err := s.repo.Get(ctx, userEmail, s.vetEmail)
	if err != nil {
		return Thread{}, err
	}
	if !exists {
		return Thread{UserEmail: userEmail, VetEmail: s.vetEmail, Messages: []Message{}}, nil
	}
	return t, nil
}

// Append agrega un mensaje al final del hilo, creándolo si es el primero.
func (s *Service) Append(ctx context.Context, userEmail string, sender Sender, text string) (Message, error) {
	userEmail = strings.ToLower(strings.TrimSpace(userEmail))
	text = strings.TrimSpace(text)

	if userEmail == "" || text == "" {
		return Message{}, ErrInvalidInput
	}
	if sender != SenderUser && sender != SenderVet {
		return Message{}, ErrInvalidInput
	}

	t, exists, err := s.repo.Get(ctx, userEmail, s.vetEmail)
	if err != nil {
		return Message{}, err
	}
	if !exists {
		t = Thread{UserEmail: userEmail, VetEmail: s.vetEmail}
	}

	m := Message{
		ID:     uuid.NewString(),
		Sender: sender,
		Text:   text,
		SentAt: s.now(),
	}
	t.Messages = append(t.Messages, m)

	if err := s.repo.Put(ctx, t); err != nil {
		return Message{}, err
	}
	return m, nil
}

// ThreadUsers lista los dueños con conversación abierta.
func (s *Service) ThreadUsers(ctx context.Context) ([]string, error) {
	return s.repo.ListUsers(ctx, s.vetEmail)
}
