// Package memory implementa kvstore.KV en un map (dev y tests).
package memory

import (
	"context"
	"sync"

	"pet-haven/internal/kvstore"
)

type Store struct {
	mu   sync.RWMutex
	data map[string]string
	hub  *kvstore.Hub
}

func New() *Store {
	return &Store{
		data: make(map[string]string),
		hub:  kvstore.NewHub(),
	}
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	return v, ok, nil
}

func (s *Store) Put(ctx context.Context, key, value string) error {
	s.mu.Lock()
	s.data[key] = value
	s.mu.Unlock()

	s.hub.Publish(key)
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	_, existed := s.data[key]
	delete(s.data, key)
	s.mu.Unlock()

	if existed {
		s.hub.Publish(key)
	}
	return nil
}

func (s *Store) Watch() (<-chan kvstore.Event, func()) {
	return s.hub.Subscribe()
}

func (s *Store) Close() error { return nil }
