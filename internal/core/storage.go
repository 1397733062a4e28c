package core

import (
	"fmt"

	"go.uber.org/zap"

	"backcore/internal/infra/persistence/memory"
	"backcore/internal/infra/persistence/postgres"
	"backcore/internal/infra/persistence/sqlite"
	"backcore/pkg/domain"
)

// StorageDriver identifies a concrete persistent storage implementation.
type StorageDriver string

const (
	StorageMemory   StorageDriver = "memory"   // in-memory only (tests / ephemeral)
	StorageSQLite   StorageDriver = "sqlite"   // embedded sqlite file
	StoragePostgres StorageDriver = "postgres" // PostgreSQL server
)

// StorageOptions selects and parameterizes the persistent backend.
type StorageOptions struct {
	Driver      StorageDriver
	SQLitePath  string
	PostgresDSN string
	Logger      *zap.Logger
}

// OpenPersistentStore opens the backend named by the options. An empty driver
// defaults to sqlite.
func OpenPersistentStore(opts StorageOptions, engine *RulesEngine) (domain.PersistentStore, error) {
	driver := opts.Driver
	if driver == "" {
		driver = StorageSQLite
	}
	switch driver {
	case StorageMemory:
		return memory.NewStore(engine), nil
	case StorageSQLite:
		return sqlite.NewStore(opts.SQLitePath, engine, opts.Logger)
	case StoragePostgres:
		return postgres.NewStore(opts.PostgresDSN, engine, opts.Logger)
	default:
		return nil, fmt.Errorf("unknown storage driver %s", driver)
	}
}
