package kv

import (
	"context"
	"sync"

	"pet-haven/internal/domain/reminders"
	"pet-haven/internal/kvstore"
)

type RemindersRepo struct {
	store kvstore.KV
	mu    sync.Mutex
}

func NewRemindersRepo(store kvstore.KV) *RemindersRepo {
	return &RemindersRepo{store: store}
}

func (r *RemindersRepo) ListByOwner(ctx context.Context, ownerEmail string) ([]reminders.Reminder, error) {
	all, err := readCollection[reminders.Reminder](ctx, r.store, KeyReminders)
	if err != nil {
		return nil, err
	}

	out := make([]reminders.Reminder, 0)
	for _, rem := range all {
		if rem.OwnerEmail == ownerEmail {
			out = append(out, rem)
		}
	}
	return out, nil
}

func (r *RemindersRepo) GetByID(ctx context.Context, id int64) (reminders.Reminder, bool, error) {
	all, err := readCollection[reminders.Reminder](ctx, r.store, KeyReminders)
	if err != nil {
		return reminders.Reminder{}, false, err
	}

	for _, rem := range all {
		if rem.ID == id {
			return rem, true, nil
		}
	}
	return reminders.Reminder{}, false, nil
}

func (r *RemindersRepo) Create(ctx context.Context, rem reminders.Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := readCollection[reminders.Reminder](ctx, r.store, KeyReminders)
	if err != nil {
		return err
	}
	all = append(all, rem)
	return writeCollection(ctx, r.store, KeyReminders, all)
}

func (r *RemindersRepo) Update(ctx context.Context, rem reminders.Reminder) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := readCollection[reminders.Reminder](ctx, r.store, KeyReminders)
	if err != nil {
		return false, err
	}

	for i := range all {
		if all[i].ID == rem.ID {
			all[i] = rem
			if err := writeCollection(ctx, r.store, KeyReminders, all); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

func (r *RemindersRepo) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := readCollection[reminders.Reminder](ctx, r.store, KeyReminders)
	if err != nil {
		return false, err
	}

	for i, rem := range all {
		if rem.ID == id {
			all = append(all[:i], all[i+1:]...)
			if err := writeCollection(ctx, r.store, KeyReminders, all); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}
