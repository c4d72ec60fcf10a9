package memory

import (
	"context"
	"sync"

	storedomain "github.com/smallbiznis/feefeefee/internal/store/domain"
)

type store struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// New returns a process-local store.
func New() storedomain.Store {
	return &store{values: make(map[string][]byte)}
}

func (s *store) Get(ctx context.Context, key string) ([]byte, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, storedomain.ErrNotFound
	}
	return append([]byte(nil), value...), nil
}

func (s *store) Set(ctx context.Context, key string, value []byte) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = append([]byte(nil), value...)
	return nil
}
