package blob

import (
	"context"
	"testing"

	fsblob "backcore/internal/infra/blob/fs"
	memblob "backcore/internal/infra/blob/memory"
)

func TestOpenMemoryDriver(t *testing.T) {
	store, err := Open(context.Background(), Options{Driver: DriverMemory})
	if err != nil {
		t.Fatalf("open memory: %v", err)
	}
	if _, ok := store.(*memblob.Store); !ok {
		t.Fatalf("driver memory returned %T", store)
	}
}

func TestOpenFilesystemDriver(t *testing.T) {
	store, err := Open(context.Background(), Options{Driver: DriverFilesystem, FSRoot: t.TempDir()})
	if err != nil {
		t.Fatalf("open fs: %v", err)
	}
	if _, ok := store.(*fsblob.Store); !ok {
		t.Fatalf("driver fs returned %T", store)
	}
}

func TestOpenEmptyDriverDefaultsToFilesystem(t *testing.T) {
	store, err := Open(context.Background(), Options{FSRoot: t.TempDir()})
	if err != nil {
		t.Fatalf("open default: %v", err)
	}
	if _, ok := store.(*fsblob.Store); !ok {
		t.Fatalf("empty driver returned %T", store)
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	if _, err := Open(context.Background(), Options{Driver: Driver("carrier-pigeon")}); err == nil {
		t.Fatalf("unknown driver accepted")
	}
}
