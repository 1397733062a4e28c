// Package postgres provides a Postgres-backed persistent store that mirrors
// the in-memory semantics. State is written back as one JSONB bucket per
// collection after every successful transaction.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver

	"backcore/internal/infra/persistence/memory"
	"backcore/pkg/domain"
)

// Compile-time contract assertion ensuring the store satisfies the domain interface.
var _ domain.PersistentStore = (*Store)(nil)

const (
	defaultDriver = "pgx"
	defaultDSN    = "postgres://localhost/backcore?sslmode=disable"
)

var (
	sqlOpen = sql.Open
	openMu  sync.Mutex
)

// Store persists state to Postgres while reusing the in-memory implementation
// for transactions.
type Store struct {
	*memory.Store
	db     *sql.DB
	mu     sync.Mutex
	logger *zap.Logger
	report memory.LoadReport
}

// NewStore opens a Postgres-backed store using the provided DSN (falls back
// to defaultDSN). It ensures the snapshot table exists and hydrates the
// in-memory store from any existing snapshot.
func NewStore(dsn string, engine *domain.RulesEngine, logger *zap.Logger) (*Store, error) {
	if dsn == "" {
		dsn = defaultDSN
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	openMu.Lock()
	db, err := sqlOpen(defaultDriver, dsn)
	openMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if err := ensureStateTable(ctx, db); err != nil {
		return nil, err
	}
	s := &Store{Store: memory.NewStore(engine), db: db, logger: logger}
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	if s.report.FirstRun {
		if err := s.persist(ctx); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func ensureStateTable(ctx context.Context, db *sql.DB) error {
	ddl := `CREATE TABLE IF NOT EXISTS state (
		bucket TEXT PRIMARY KEY,
		payload JSONB NOT NULL
	)`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("ensure state table: %w", err)
	}
	return nil
}

func (s *Store) load(ctx context.Context) error {
	rows, err := s.db.QueryContext(ctx, `SELECT bucket, payload FROM state`)
	if err != nil {
		return fmt.Errorf("select state: %w", err)
	}
	defer func() { _ = rows.Close() }()
	payloads := make(map[string][]byte)
	for rows.Next() {
		var bucket string
		var payload []byte
		if err := rows.Scan(&bucket, &payload); err != nil {
			return fmt.Errorf("scan state: %w", err)
		}
		payloads[bucket] = payload
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate state: %w", err)
	}
	if len(payloads) == 0 {
		s.report = memory.LoadReport{FirstRun: true}
		return nil
	}
	snapshot := memory.Snapshot{Meta: domain.StoreMeta{Initialized: true}}
	var degraded []string
	for bucket, payload := range payloads {
		if len(payload) == 0 {
			continue
		}
		if err := memory.DecodeBucket(&snapshot, bucket, payload); err != nil {
			degraded = append(degraded, bucket)
			s.logger.Warn("snapshot bucket failed to decode, starting empty",
				zap.String("bucket", bucket),
				zap.Error(err))
		}
	}
	s.report = memory.LoadReport{DegradedBuckets: degraded}
	s.ImportState(snapshot)
	return nil
}

func (s *Store) persist(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.MarkSaved(time.Now())
	snapshot := s.ExportState()
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	for _, bucket := range memory.BucketNames() {
		data, err := memory.EncodeBucket(snapshot, bucket)
		if err != nil {
			return fmt.Errorf("encode %s: %w", bucket, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO state(bucket,payload) VALUES($1,$2) ON CONFLICT(bucket) DO UPDATE SET payload=EXCLUDED.payload`, bucket, data); err != nil {
			return fmt.Errorf("upsert %s: %w", bucket, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	committed = true
	return nil
}

// RunInTransaction applies fn within a transaction, then snapshots to
// Postgres. A persist failure surfaces as the error of the mutating call.
func (s *Store) RunInTransaction(ctx context.Context, fn func(domain.Tx) error) (domain.Result, error) {
	res, err := s.Store.RunInTransaction(ctx, fn)
	if err != nil {
		return res, err
	}
	if err := s.persist(ctx); err != nil {
		return res, err
	}
	return res, nil
}

// MarkSeeded records the seed markers and persists them.
func (s *Store) MarkSeeded(at time.Time) error {
	if err := s.Store.MarkSeeded(at); err != nil {
		return err
	}
	return s.persist(context.Background())
}

// ResetAll clears memory and durable state.
func (s *Store) ResetAll(ctx context.Context) error {
	if err := s.Store.ResetAll(ctx); err != nil {
		return err
	}
	return s.persist(ctx)
}

// Report returns what the driver found at open time.
func (s *Store) Report() memory.LoadReport { return s.report }

// DB exposes the underlying sql.DB for integration testing hooks.
func (s *Store) DB() *sql.DB { return s.db }

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// OverrideSQLOpen swaps the sqlOpen function for tests and returns a restore function.
func OverrideSQLOpen(fn func(driverName, dataSourceName string) (*sql.DB, error)) func() {
	openMu.Lock()
	defer openMu.Unlock()
	prev := sqlOpen
	sqlOpen = fn
	return func() {
		openMu.Lock()
		defer openMu.Unlock()
		sqlOpen = prev
	}
}
