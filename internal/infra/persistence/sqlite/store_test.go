package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"backcore/pkg/domain"
)

func openTempStore(t *testing.T, path string) *Store {
	t.Helper()
	s, err := NewStore(path, nil, nil)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestFirstRunCreatesSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backcore.db")
	s := openTempStore(t, path)

	report := s.Report()
	if !report.FirstRun {
		t.Fatalf("fresh database not reported as first run: %+v", report)
	}
	if len(report.DegradedBuckets) != 0 {
		t.Fatalf("fresh database reported degraded buckets: %v", report.DegradedBuckets)
	}
	if !s.Meta().Initialized {
		t.Fatalf("fresh store not initialized")
	}
}

func TestStateSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backcore.db")
	s := openTempStore(t, path)

	var teamID string
	_, err := s.RunInTransaction(context.Background(), func(tx domain.Tx) error {
		team, err := tx.CreateTeam(domain.Team{
			Name:   "Sales",
			Budget: decimal.NewFromInt(1000),
			Color:  domain.TeamColorGreen,
		})
		if err != nil {
			return err
		}
		teamID = team.ID
		return nil
	})
	if err != nil {
		t.Fatalf("tx: %v", err)
	}
	if err := s.MarkSeeded(time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("mark seeded: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened := openTempStore(t, path)
	if reopened.Report().FirstRun {
		t.Fatalf("reopen of existing database reported first run")
	}
	got, ok := reopened.GetTeam(teamID)
	if !ok {
		t.Fatalf("team lost across reopen")
	}
	if got.Name != "Sales" || !got.Budget.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("reloaded team = %+v", got)
	}
	if reopened.Meta().SeededAt == nil {
		t.Fatalf("seed marker lost across reopen")
	}
}

func TestCorruptBucketDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backcore.db")
	s := openTempStore(t, path)

	_, err := s.RunInTransaction(context.Background(), func(tx domain.Tx) error {
		if _, err := tx.CreateCategory(domain.Category{Name: "Rent", Type: domain.FlowExpense}); err != nil {
			return err
		}
		_, err := tx.CreateUser(domain.User{Name: "Admin", Email: "admin@example.com", Role: domain.RoleAdmin})
		return err
	})
	if err != nil {
		t.Fatalf("tx: %v", err)
	}

	if _, err := s.DB().Exec(`UPDATE state SET payload=? WHERE bucket=?`, []byte("{corrupt"), "categories"); err != nil {
		t.Fatalf("corrupt bucket: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened := openTempStore(t, path)
	report := reopened.Report()
	if report.FirstRun {
		t.Fatalf("corrupted database reported first run")
	}
	if len(report.DegradedBuckets) != 1 || report.DegradedBuckets[0] != "categories" {
		t.Fatalf("degraded buckets = %v", report.DegradedBuckets)
	}
	if n := len(reopened.ListCategories()); n != 0 {
		t.Fatalf("corrupt bucket loaded %d categories", n)
	}
	if n := len(reopened.ListUsers()); n != 1 {
		t.Fatalf("healthy bucket lost, users = %d", n)
	}
}

func TestResetAllPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backcore.db")
	s := openTempStore(t, path)

	_, err := s.RunInTransaction(context.Background(), func(tx domain.Tx) error {
		_, err := tx.CreateTeam(domain.Team{Name: "Sales", Color: domain.TeamColorBlue})
		return err
	})
	if err != nil {
		t.Fatalf("tx: %v", err)
	}
	if err := s.ResetAll(context.Background()); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened := openTempStore(t, path)
	if n := len(reopened.ListTeams()); n != 0 {
		t.Fatalf("reset did not persist, teams = %d", n)
	}
}

func TestPersistUpdatesLastSaved(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backcore.db")
	s := openTempStore(t, path)

	before := s.Meta().LastSavedAt
	_, err := s.RunInTransaction(context.Background(), func(tx domain.Tx) error {
		_, err := tx.CreateUser(domain.User{Name: "Admin", Email: "a@example.com", Role: domain.RoleAdmin})
		return err
	})
	if err != nil {
		t.Fatalf("tx: %v", err)
	}
	after := s.Meta().LastSavedAt
	if after == nil {
		t.Fatalf("LastSavedAt not stamped")
	}
	if before != nil && !after.After(*before) && !after.Equal(*before) {
		t.Fatalf("LastSavedAt went backwards: %s -> %s", before, after)
	}
}

func TestDefaultPathApplied(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "data", "core.db")
	s := openTempStore(t, path)
	if s.Path() != path {
		t.Fatalf("Path() = %q, want %q", s.Path(), path)
	}
}
