package reminders

import "context"

type Repository interface {
	ListByOwner(ctx context.Context, ownerEmail string) ([]Reminder, error)
	GetByID(ctx context.Context, id int64) (Reminder, bool, error)
	Create(ctx context.Context, r Reminder) error
	Update(ctx context.Context, r Reminder) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
