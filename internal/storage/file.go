package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// FileBackend keeps each namespace in its own JSON document under dir.
// Every write replaces the whole document through a temp file and rename.
type FileBackend struct {
	mu     sync.Mutex
	dir    string
	cache  map[string]map[string]string
	closed bool
	log    zerolog.Logger
	now    func() time.Time
}

func OpenFileBackend(dir string, log zerolog.Logger) (*FileBackend, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, fmt.Errorf("storage: empty state dir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	return &FileBackend{
		dir:   dir,
		cache: make(map[string]map[string]string),
		log:   log,
		now:   time.Now,
	}, nil
}

func (b *FileBackend) Namespace(name string) Store {
	return &fileStore{backend: b, namespace: name}
}

func (b *FileBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.cache = nil
	return nil
}

func (b *FileBackend) path(namespace string) string {
	return filepath.Join(b.dir, namespace+".json")
}

// load must be called with b.mu held.
func (b *FileBackend) load(namespace string) (map[string]string, error) {
	if b.closed {
		return nil, ErrClosed
	}
	if namespace == "" {
		return nil, ErrEmptyNamespace
	}
	if space, ok := b.cache[namespace]; ok {
		return space, nil
	}
	space := make(map[string]string)
	raw, err := os.ReadFile(b.path(namespace))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read %s: %w", namespace, err)
	}
	if len(strings.TrimSpace(string(raw))) > 0 {
		if err := json.Unmarshal(raw, &space); err != nil {
			aside, moveErr := b.setAside(namespace)
			if moveErr != nil {
				return nil, fmt.Errorf("decode %s: %w", namespace, err)
			}
			b.log.Warn().Err(err).Str("namespace", namespace).Str("moved_to", aside).
				Msg("unreadable state document set aside, starting empty")
			space = make(map[string]string)
		}
	}
	b.cache[namespace] = space
	return space, nil
}

// setAside renames a document that cannot be decoded so the namespace can be
// rewritten without losing the original bytes.
func (b *FileBackend) setAside(namespace string) (string, error) {
	target := b.path(namespace)
	aside := fmt.Sprintf("%s.corrupt-%d", target, b.now().UTC().UnixNano())
	if err := os.Rename(target, aside); err != nil {
		return "", err
	}
	return aside, nil
}

// flush must be called with b.mu held.
func (b *FileBackend) flush(namespace string, space map[string]string) error {
	payload, err := json.MarshalIndent(space, "", "  ")
	if err != nil {
		return err
	}
	target := b.path(namespace)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, append(payload, '\n'), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}

type fileStore struct {
	backend   *FileBackend
	namespace string
}

func (s *fileStore) Get(_ context.Context, key string) (string, bool, error) {
	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()
	space, err := s.backend.load(s.namespace)
	if err != nil {
		return "", false, err
	}
	v, ok := space[key]
	return v, ok, nil
}

func (s *fileStore) Set(ctx context.Context, key, value string) error {
	return s.SetMany(ctx, []Entry{{Key: key, Value: value}})
}

func (s *fileStore) Delete(_ context.Context, key string) error {
	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()
	space, err := s.backend.load(s.namespace)
	if err != nil {
		return err
	}
	if _, ok := space[key]; !ok {
		return nil
	}
	next := cloneSpace(space)
	delete(next, key)
	return s.commit(next)
}

func (s *fileStore) SetMany(_ context.Context, entries []Entry) error {
	if err := validateEntries(entries); err != nil {
		return err
	}
	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()
	space, err := s.backend.load(s.namespace)
	if err != nil {
		return err
	}
	next := cloneSpace(space)
	for _, e := range entries {
		next[e.Key] = e.Value
	}
	return s.commit(next)
}

// commit swaps the cache only after the document reached disk.
func (s *fileStore) commit(next map[string]string) error {
	if err := s.backend.flush(s.namespace, next); err != nil {
		return fmt.Errorf("write %s: %w", s.namespace, err)
	}
	s.backend.cache[s.namespace] = next
	return nil
}

func (s *fileStore) Keys(_ context.Context) ([]string, error) {
	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()
	space, err := s.backend.load(s.namespace)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(space))
	for k := range space {
		out = append(out, k)
	}
	sort.Strings(out)
	return out, nil
}

func cloneSpace(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
