package kv

import (
	"context"
	"sync"

	"pet-haven/internal/domain/users"
	"pet-haven/internal/kvstore"
)

type UsersRepo struct {
	store kvstore.KV
	mu    sync.Mutex
}

func NewUsersRepo(store kvstore.KV) *UsersRepo {
	return &UsersRepo{store: store}
}

func (r *UsersRepo) List(ctx context.Context) ([]users.User, error) {
	return readCollection[users.User](ctx, r.store, KeyUsers)
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := readCollection[users.User](ctx, r.store, KeyUsers)
	if err != nil {
		return err
	}
	all = append(all, u)
	return writeCollection(ctx, r.store, KeyUsers, all)
}
