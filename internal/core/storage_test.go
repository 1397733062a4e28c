package core

import (
	"io"
	"path/filepath"
	"testing"

	"backcore/internal/infra/persistence/memory"
	"backcore/internal/infra/persistence/sqlite"
)

func TestOpenPersistentStoreMemory(t *testing.T) {
	store, err := OpenPersistentStore(StorageOptions{Driver: StorageMemory}, NewDefaultRulesEngine())
	if err != nil {
		t.Fatalf("open memory store: %v", err)
	}
	if _, ok := store.(*memory.Store); !ok {
		t.Fatalf("driver memory returned %T", store)
	}
}

func TestOpenPersistentStoreSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "core.db")
	store, err := OpenPersistentStore(StorageOptions{Driver: StorageSQLite, SQLitePath: path}, nil)
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	s, ok := store.(*sqlite.Store)
	if !ok {
		t.Fatalf("driver sqlite returned %T", store)
	}
	if s.Path() != path {
		t.Fatalf("path = %q, want %q", s.Path(), path)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestOpenPersistentStoreDefaultsToSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "default.db")
	store, err := OpenPersistentStore(StorageOptions{SQLitePath: path}, nil)
	if err != nil {
		t.Fatalf("open default store: %v", err)
	}
	if _, ok := store.(*sqlite.Store); !ok {
		t.Fatalf("empty driver returned %T", store)
	}
	if closer, ok := store.(io.Closer); ok {
		_ = closer.Close()
	}
}

func TestOpenPersistentStoreUnknownDriver(t *testing.T) {
	if _, err := OpenPersistentStore(StorageOptions{Driver: StorageDriver("etched-stone")}, nil); err == nil {
		t.Fatalf("unknown driver accepted")
	}
}
