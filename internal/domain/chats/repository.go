package chats

import "context"

type Repository interface {
	// Get devuelve el hilo (userEmail, vetEmail) y si existe.
	Get(ctx context.Context, userEmail, vetEmail string) (Thread, bool, error)

	// Put inserta o reemplaza el hilo por su par de emails.
	Put(ctx context.Context, t Thread) error

	// ListUsers devuelve los emails de dueños con hilo abierto contra
	// vetEmail (el selector de conversaciones de la vista vet).
	ListUsers(ctx context.Context, vetEmail string) ([]string, error)
}
