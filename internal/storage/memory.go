package storage

import (
	"context"
	"sort"
	"sync"
)

type MemoryBackend struct {
	mu     sync.Mutex
	data   map[string]map[string]string
	closed bool
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string]map[string]string)}
}

func (b *MemoryBackend) Namespace(name string) Store {
	return &memoryStore{backend: b, namespace: name}
}

func (b *MemoryBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	return nil
}

type memoryStore struct {
	backend   *MemoryBackend
	namespace string
}

func (s *memoryStore) lock() (map[string]string, func(), error) {
	b := s.backend
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, nil, ErrClosed
	}
	if s.namespace == "" {
		b.mu.Unlock()
		return nil, nil, ErrEmptyNamespace
	}
	space, ok := b.data[s.namespace]
	if !ok {
		space = make(map[string]string)
		b.data[s.namespace] = space
	}
	return space, b.mu.Unlock, nil
}

func (s *memoryStore) Get(_ context.Context, key string) (string, bool, error) {
	space, unlock, err := s.lock()
	if err != nil {
		return "", false, err
	}
	defer unlock()
	v, ok := space[key]
	return v, ok, nil
}

func (s *memoryStore) Set(ctx context.Context, key, value string) error {
	return s.SetMany(ctx, []Entry{{Key: key, Value: value}})
}

func (s *memoryStore) Delete(_ context.Context, key string) error {
	space, unlock, err := s.lock()
	if err != nil {
		return err
	}
	defer unlock()
	delete(space, key)
	return nil
}

func (s *memoryStore) SetMany(_ context.Context, entries []Entry) error {
	if err := validateEntries(entries); err != nil {
		return err
	}
	space, unlock, err := s.lock()
	if err != nil {
		return err
	}
	defer unlock()
	for _, e := range entries {
		space[e.Key] = e.Value
	}
	return nil
}

func (s *memoryStore) Keys(_ context.Context) ([]string, error) {
	space, unlock, err := s.lock()
	if err != nil {
		return nil, err
	}
	defer unlock()
	out := make([]string, 0, len(space))
	for k := range space {
		out = append(out, k)
	}
	sort.Strings(out)
	return out, nil
}
