// Package memory is a process-local state backend, used for STORE_DRIVER=memory and in tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"agtechsummit/internal/domain"
)

// Backend keeps payloads in a map. The zero value is not usable; call New.
type Backend struct {
	mu    sync.RWMutex
	data  map[string][]byte
	saves int
}

var _ domain.StateBackend = (*Backend)(nil)

func New() *Backend {
	return &Backend{data: make(map[string][]byte)}
}

func (b *Backend) Load(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	v, ok := b.data[key]
	if !ok {
		return nil, fmt.Errorf("key %s: %w", key, domain.ErrNotFound)
	}
	return append([]byte(nil), v...), nil
}

func (b *Backend) Save(ctx context.Context, key string, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data[key] = append([]byte(nil), payload...)
	b.saves++
	return nil
}

// Saves returns how many successful saves the backend has seen.
func (b *Backend) Saves() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.saves
}
