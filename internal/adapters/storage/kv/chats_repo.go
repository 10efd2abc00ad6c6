package kv

import (
	"context"
	"strings"
	"sync"

	"pet-haven/internal/domain/chats"
	"pet-haven/internal/kvstore"
)

type ChatsRepo struct {
	store kvstore.KV
	mu    sync.Mutex
}

func NewChatsRepo(store kvstore.KV) *ChatsRepo {
	return &ChatsRepo{store: store}
}

func (r *ChatsRepo) Get(ctx context.Context, userEmail, vetEmail string) (chats.Thread, bool, error) {
	all, err := readCollection[chats.Thread](ctx, r.store, KeyChats)
	if err != nil {
		return chats.Thread{}, false, err
	}

	for _, t := range all {
		if strings.EqualFold(t.UserEmail, userEmail) && strings.EqualFold(t.VetEmail, vetEmail) {
			return t, true, nil
		}
	}
	return chats.Thread{}, false, nil
}

func (r *ChatsRepo) Put(ctx context.Context, t chats.Thread) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := readCollection[chats.Thread](ctx, r.store, KeyChats)
	if err != nil {
		return err
	}

	replaced := false
	for i := range all {
		if strings.EqualFold(all[i].UserEmail, t.UserEmail) && strings.EqualFold(all[i].VetEmail, t.VetEmail) {
			all[i] = t
			replaced = true
			break
		}
	}
	if !replaced {
		all = append(all, t)
	}

	return writeCollection(ctx, r.store, KeyChats, all)
}

func (r *ChatsRepo) ListUsers(ctx context.Context, vetEmail string) ([]string, error) {
	all, err := readCollection[chats.Thread](ctx, r.store, KeyChats)
	if err != nil {
		return nil, err
	}

	seen := map[string]struct{}{}
	out := make([]string, 0)
	for _, t := range all {
		if !strings.EqualFold(t.VetEmail, vetEmail) {
			continue
		}
		email := strings.ToLower(t.UserEmail)
		if _, ok := seen[email]; ok {
			continue
		}
		seen[email] = struct{}{}
		out = append(out, email)
	}
	return out, nil
}
