package storage

import (
	"context"
	"sync"

	"github.com/yousefroshhdy/dental-pos-harmony/internal/domain/repository"
)

var _ repository.Store = (*MemoryStore)(nil)

// MemoryStore implementación en memoria del Store; para tests y modo efímero.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore construye el store vacío.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Load devuelve una copia del valor; repository.ErrKeyNotFound si no existe.
func (s *MemoryStore) Load(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.data[key]
	if !ok {
		return nil, repository.ErrKeyNotFound
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

// Save guarda una copia del valor.
func (s *MemoryStore) Save(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	b := make([]byte, len(value))
	copy(b, value)
	s.data[key] = b
	return nil
}
