// Package memory keeps device items in process memory. Nothing survives a restart.
package memory

import (
	"context"
	"strings"
	"sync"

	"eventSignup/internal/storage"
)

type Storage struct {
	mu    sync.RWMutex
	items map[string]map[string]string
}

func New() *Storage {
	return &Storage{items: make(map[string]map[string]string)}
}

func (s *Storage) GetItem(_ context.Context, scope, key string) (string, bool, error) {
	if strings.TrimSpace(scope) == "" || strings.TrimSpace(key) == "" {
		return "", false, storage.ErrInvalidItem
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.items[scope][key]
	return v, ok, nil
}

func (s *Storage) SetItem(_ context.Context, scope, key, value string) error {
	if strings.TrimSpace(scope) == "" || strings.TrimSpace(key) == "" {
		return storage.ErrInvalidItem
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.items[scope] == nil {
		s.items[scope] = make(map[string]string)
	}
	s.items[scope][key] = value

	return nil
}

func (s *Storage) Close() error {
	return nil
}
