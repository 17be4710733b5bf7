package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

type backendFactory struct {
	name string
	open func(t *testing.T) Backend
}

func backends() []backendFactory {
	return []backendFactory{
		{name: "memory", open: func(t *testing.T) Backend { return NewMemoryBackend() }},
		{name: "file", open: func(t *testing.T) Backend {
			b, err := OpenFileBackend(t.TempDir(), zerolog.Nop())
			if err != nil {
				t.Fatalf("open file backend: %v", err)
			}
			return b
		}},
		{name: "sqlite", open: func(t *testing.T) Backend {
			b, err := OpenSQLite(filepath.Join(t.TempDir(), "levelup-test.db"))
			if err != nil {
				t.Fatalf("open sqlite backend: %v", err)
			}
			return b
		}},
	}
}

func TestStoreGetSetDelete(t *testing.T) {
	for _, bf := range backends() {
		t.Run(bf.name, func(t *testing.T) {
			backend := bf.open(t)
			defer backend.Close()
			ctx := context.Background()
			store := backend.Namespace(NamespaceMain)

			if _, ok, err := store.Get(ctx, "quests"); err != nil || ok {
				t.Fatalf("expected absent key, got ok=%v err=%v", ok, err)
			}
			if err := store.Set(ctx, "quests", `[]`); err != nil {
				t.Fatalf("set: %v", err)
			}
			if err := store.Set(ctx, "quests", `[{"id":"q1"}]`); err != nil {
				t.Fatalf("overwrite: %v", err)
			}
			got, ok, err := store.Get(ctx, "quests")
			if err != nil || !ok || got != `[{"id":"q1"}]` {
				t.Fatalf("unexpected get: %q ok=%v err=%v", got, ok, err)
			}
			if err := store.Delete(ctx, "quests"); err != nil {
				t.Fatalf("delete: %v", err)
			}
			if _, ok, _ := store.Get(ctx, "quests"); ok {
				t.Fatal("expected key to be gone after delete")
			}
			if err := store.Delete(ctx, "missing"); err != nil {
				t.Fatalf("delete of missing key should be a no-op, got %v", err)
			}
		})
	}
}

func TestNamespacesAreIsolated(t *testing.T) {
	for _, bf := range backends() {
		t.Run(bf.name, func(t *testing.T) {
			backend := bf.open(t)
			defer backend.Close()
			ctx := context.Background()
			main := backend.Namespace(NamespaceMain)
			timer := backend.Namespace(NamespaceTimer)

			if err := main.Set(ctx, "count", "1"); err != nil {
				t.Fatalf("set main: %v", err)
			}
			if err := timer.Set(ctx, "count", "2"); err != nil {
				t.Fatalf("set timer: %v", err)
			}
			a, _, _ := main.Get(ctx, "count")
			b, _, _ := timer.Get(ctx, "count")
			if a != "1" || b != "2" {
				t.Fatalf("namespaces leaked: main=%q timer=%q", a, b)
			}
			keys, err := timer.Keys(ctx)
			if err != nil || len(keys) != 1 || keys[0] != "count" {
				t.Fatalf("unexpected timer keys: %v err=%v", keys, err)
			}
		})
	}
}

func TestSetManyRejectsWholeBatch(t *testing.T) {
	for _, bf := range backends() {
		t.Run(bf.name, func(t *testing.T) {
			backend := bf.open(t)
			defer backend.Close()
			ctx := context.Background()
			store := backend.Namespace(NamespaceMain)

			err := store.SetMany(ctx, []Entry{{Key: "user_level", Value: "2"}, {Key: "", Value: "x"}})
			if !errors.Is(err, ErrEmptyKey) {
				t.Fatalf("expected ErrEmptyKey, got %v", err)
			}
			if _, ok, _ := store.Get(ctx, "user_level"); ok {
				t.Fatal("partial batch must not be applied")
			}

			if err := store.SetMany(ctx, []Entry{{Key: "user_level", Value: "2"}, {Key: "user_xp", Value: "40"}}); err != nil {
				t.Fatalf("set many: %v", err)
			}
			keys, _ := store.Keys(ctx)
			if len(keys) != 2 || keys[0] != "user_level" || keys[1] != "user_xp" {
				t.Fatalf("unexpected keys: %v", keys)
			}
		})
	}
}

func TestFileBackendSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	first, err := OpenFileBackend(dir, zerolog.Nop())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := first.Namespace(NamespaceMain).Set(ctx, "streak_count", "4"); err != nil {
		t.Fatalf("set: %v", err)
	}
	_ = first.Close()

	second, err := OpenFileBackend(dir, zerolog.Nop())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got, ok, err := second.Namespace(NamespaceMain).Get(ctx, "streak_count")
	if err != nil || !ok || got != "4" {
		t.Fatalf("value lost across reopen: %q ok=%v err=%v", got, ok, err)
	}
}

func TestClosedBackendRejectsEveryOperation(t *testing.T) {
	for _, bf := range backends() {
		t.Run(bf.name, func(t *testing.T) {
			backend := bf.open(t)
			store := backend.Namespace(NamespaceMain)
			ctx := context.Background()
			if err := store.Set(ctx, "k", "v"); err != nil {
				t.Fatalf("set before close: %v", err)
			}
			if err := backend.Close(); err != nil {
				t.Fatalf("close: %v", err)
			}

			if _, _, err := store.Get(ctx, "k"); !errors.Is(err, ErrClosed) {
				t.Fatalf("get: expected ErrClosed, got %v", err)
			}
			if err := store.Set(ctx, "k", "v2"); !errors.Is(err, ErrClosed) {
				t.Fatalf("set: expected ErrClosed, got %v", err)
			}
			if err := store.Delete(ctx, "k"); !errors.Is(err, ErrClosed) {
				t.Fatalf("delete: expected ErrClosed, got %v", err)
			}
			if err := store.SetMany(ctx, []Entry{{Key: "a", Value: "1"}}); !errors.Is(err, ErrClosed) {
				t.Fatalf("set many: expected ErrClosed, got %v", err)
			}
			if _, err := store.Keys(ctx); !errors.Is(err, ErrClosed) {
				t.Fatalf("keys: expected ErrClosed, got %v", err)
			}
		})
	}
}

func TestFileBackendSetsAsideUnreadableDocument(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	doc := filepath.Join(dir, NamespaceMain+".json")
	if err := os.WriteFile(doc, []byte("{garbage"), 0o644); err != nil {
		t.Fatalf("write corrupt doc: %v", err)
	}

	backend, err := OpenFileBackend(dir, zerolog.Nop())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer backend.Close()
	store := backend.Namespace(NamespaceMain)

	if _, ok, err := store.Get(ctx, "quests"); err != nil || ok {
		t.Fatalf("expected empty namespace after corrupt doc, got ok=%v err=%v", ok, err)
	}
	if err := store.Set(ctx, "quests", `[]`); err != nil {
		t.Fatalf("set after corrupt doc: %v", err)
	}
	got, ok, err := store.Get(ctx, "quests")
	if err != nil || !ok || got != `[]` {
		t.Fatalf("unexpected get: %q ok=%v err=%v", got, ok, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	var aside string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), NamespaceMain+".json.corrupt-") {
			aside = filepath.Join(dir, e.Name())
		}
	}
	if aside == "" {
		t.Fatalf("expected corrupt document to be kept aside, dir has %v", entries)
	}
	raw, err := os.ReadFile(aside)
	if err != nil || string(raw) != "{garbage" {
		t.Fatalf("set-aside copy changed: %q err=%v", raw, err)
	}
}

func TestOpenUnknownKind(t *testing.T) {
	if _, err := Open("postgres", t.TempDir(), zerolog.Nop()); err == nil {
		t.Fatal("expected error for unknown backend kind")
	}
}
