package persist

import (
	"context"
	"sync"
)

// MemorySubstrate is a map-backed substrate for tests and for running
// without any durable backend configured. State survives store reloads
// within one process, nothing more.
type MemorySubstrate struct {
	mu     sync.Mutex
	values map[string][]byte
}

func NewMemorySubstrate() *MemorySubstrate {
	return &MemorySubstrate{values: make(map[string][]byte)}
}

func (s *MemorySubstrate) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), value...), nil
}

func (s *MemorySubstrate) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = append([]byte(nil), value...)
	return nil
}

func (s *MemorySubstrate) Ping(ctx context.Context) error { return nil }

func (s *MemorySubstrate) Close() error { return nil }
