// Package sqlite persists the in-memory state to a single SQLite table as
// JSON blobs, one bucket per collection. The full state is written after
// every successful transaction.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite" // pure go sqlite driver

	"backcore/internal/infra/persistence/memory"
	"backcore/pkg/domain"
)

var _ domain.PersistentStore = (*Store)(nil)

// Store layers SQLite snapshot persistence over the in-memory store.
type Store struct {
	*memory.Store
	db     *sql.DB
	mu     sync.Mutex
	path   string
	logger *zap.Logger
	report memory.LoadReport
}

// NewStore constructs a snapshotting SQLite-backed persistent store. A
// missing database file means first run; the store starts empty and marks
// itself initialized.
func NewStore(path string, engine *domain.RulesEngine, logger *zap.Logger) (*Store, error) {
	if path == "" {
		path = "backcore.db"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS state (
		bucket TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		return nil, fmt.Errorf("create state table: %w", err)
	}
	s := &Store{Store: memory.NewStore(engine), db: db, path: path, logger: logger}
	if err := s.load(); err != nil {
		return nil, err
	}
	if s.report.FirstRun {
		if err := s.persist(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Store) load() error {
	rows, err := s.db.Query(`SELECT bucket, payload FROM state`)
	if err != nil {
		return fmt.Errorf("select state: %w", err)
	}
	defer func() { _ = rows.Close() }()
	payloads := make(map[string][]byte)
	for rows.Next() {
		var bucket string
		var payload []byte
		if err := rows.Scan(&bucket, &payload); err != nil {
			return fmt.Errorf("scan: %w", err)
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

func (s *Store) persist() (retErr error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.MarkSaved(time.Now())
	snapshot := s.ExportState()
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()
	for _, bucket := range memory.BucketNames() {
		data, err := memory.EncodeBucket(snapshot, bucket)
		if err != nil {
			retErr = fmt.Errorf("encode %s: %w", bucket, err)
			return retErr
		}
		if _, err := tx.Exec(`INSERT INTO state(bucket,payload) VALUES(?,?) ON CONFLICT(bucket) DO UPDATE SET payload=excluded.payload`, bucket, data); err != nil {
			retErr = fmt.Errorf("upsert %s: %w", bucket, err)
			return retErr
		}
	}
	return tx.Commit()
}

// RunInTransaction applies fn within a transaction, then snapshots state to
// SQLite. A persist failure surfaces as the error of the mutating call.
func (s *Store) RunInTransaction(ctx context.Context, fn func(tx domain.Tx) error) (domain.Result, error) {
	res, err := s.Store.RunInTransaction(ctx, fn)
	if err != nil {
		return res, err
	}
	if pErr := s.persist(); pErr != nil {
		return res, pErr
	}
	return res, nil
}

// MarkSeeded records the seed markers and persists them.
func (s *Store) MarkSeeded(at time.Time) error {
	if err := s.Store.MarkSeeded(at); err != nil {
		return err
	}
	return s.persist()
}

// ResetAll clears memory and durable state. After reset the database holds
// the same buckets a freshly opened store would write.
func (s *Store) ResetAll(ctx context.Context) error {
	if err := s.Store.ResetAll(ctx); err != nil {
		return err
	}
	return s.persist()
}

// Report returns what the driver found at open time.
func (s *Store) Report() memory.LoadReport { return s.report }

// DB exposes the underlying sql.DB for integration testing hooks.
func (s *Store) DB() *sql.DB { return s.db }

// Path returns the configured database path.
func (s *Store) Path() string { return s.path }

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }
