package core

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"backcore/internal/infra/persistence/memory"
	"backcore/pkg/domain"
)

type captureAuditRecorder struct {
	mu      sync.Mutex
	entries []AuditEntry
}

func (r *captureAuditRecorder) Record(_ context.Context, entry AuditEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
}

func (r *captureAuditRecorder) Entries() []AuditEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]AuditEntry(nil), r.entries...)
}

type captureMetricsRecorder struct {
	mu           sync.Mutex
	observations []metricObservation
}

type metricObservation struct {
	operation string
	success   bool
	duration  time.Duration
}

func (r *captureMetricsRecorder) Observe(_ context.Context, operation string, success bool, duration time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observations = append(r.observations, metricObservation{operation, success, duration})
}

func (r *captureMetricsRecorder) Observations() []metricObservation {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]metricObservation(nil), r.observations...)
}

func TestSuccessfulOperationRecordsAudit(t *testing.T) {
	recorder := &captureAuditRecorder{}
	when := time.Date(2026, 7, 1, 8, 0, 0, 0, time.UTC)
	svc := newTestService(
		WithAuditRecorder(recorder),
		WithClock(ClockFunc(func() time.Time { return when })),
	)

	team := mustCreateTeam(t, svc, "Sales")

	entries := recorder.Entries()
	if len(entries) != 1 {
		t.Fatalf("audit entries = %d, want 1", len(entries))
	}
	e := entries[0]
	if e.Operation != "create_team" || e.Entity != EntityTeam || e.Action != ActionCreate {
		t.Fatalf("entry = %+v", e)
	}
	if e.EntityID != team.ID {
		t.Fatalf("entity id = %q, want %q", e.EntityID, team.ID)
	}
	if e.Status != AuditStatusSuccess || e.Error != "" {
		t.Fatalf("status/error = %q / %q", e.Status, e.Error)
	}
}

func TestFailedOperationRecordsAuditError(t *testing.T) {
	recorder := &captureAuditRecorder{}
	svc := newTestService(WithAuditRecorder(recorder))

	_, _, err := svc.CreateTeam(context.Background(), Team{Name: "", Color: domain.TeamColorRed})
	if err == nil {
		t.Fatalf("invalid create succeeded")
	}

	entries := recorder.Entries()
	if len(entries) != 1 {
		t.Fatalf("audit entries = %d, want 1", len(entries))
	}
	e := entries[0]
	if e.Status != AuditStatusError {
		t.Fatalf("status = %q", e.Status)
	}
	if e.Error == "" {
		t.Fatalf("error text missing")
	}
}

func TestDefaultAuditRecorderWritesToStore(t *testing.T) {
	svc := newTestService()
	mustCreateTeam(t, svc, "Sales")

	logs := svc.ListAuditLogs()
	if len(logs) != 1 {
		t.Fatalf("audit logs = %d, want 1", len(logs))
	}
	log := logs[0]
	if log.Operation != "create_team" || log.Status != domain.AuditStatusSuccess {
		t.Fatalf("log = %+v", log)
	}
	if log.ID == "" {
		t.Fatalf("audit log id not assigned")
	}
}

func TestAuditWritesDoNotAuditThemselves(t *testing.T) {
	svc := newTestService()
	mustCreateTeam(t, svc, "A")
	mustCreateTeam(t, svc, "B")

	if n := len(svc.ListAuditLogs()); n != 2 {
		t.Fatalf("audit logs = %d, want exactly one per operation", n)
	}
}

func TestAllMetricsRecordersObserve(t *testing.T) {
	first := &captureMetricsRecorder{}
	second := &captureMetricsRecorder{}
	svc := newTestService(WithMetricsRecorder(first), WithMetricsRecorder(second))

	mustCreateTeam(t, svc, "Sales")
	_, _, _ = svc.CreateTeam(context.Background(), Team{Name: "", Color: domain.TeamColorRed})

	for i, rec := range []*captureMetricsRecorder{first, second} {
		obs := rec.Observations()
		if len(obs) != 2 {
			t.Fatalf("recorder %d observations = %d, want 2", i, len(obs))
		}
		if obs[0].operation != "create_team" || !obs[0].success {
			t.Fatalf("recorder %d first observation = %+v", i, obs[0])
		}
		if obs[1].success {
			t.Fatalf("recorder %d observed failure as success", i)
		}
	}
}

func TestTracerWrapsOperations(t *testing.T) {
	var buf bytes.Buffer
	tracer := NewJSONTracer(&buf)
	svc := newTestService(WithTracer(tracer))

	mustCreateTeam(t, svc, "Sales")
	_, _, _ = svc.CreateTeam(context.Background(), Team{Name: "", Color: domain.TeamColorRed})

	entries := tracer.Entries()
	if len(entries) != 2 {
		t.Fatalf("trace entries = %d, want 2", len(entries))
	}
	if entries[0].Operation != "create_team" || entries[0].Error != "" {
		t.Fatalf("first span = %+v", entries[0])
	}
	if entries[1].Error == "" {
		t.Fatalf("failed span carries no error")
	}
	if buf.Len() == 0 {
		t.Fatalf("tracer wrote nothing to sink")
	}
}

func TestClockFuncNilFallsBackToUTCNow(t *testing.T) {
	var clock ClockFunc
	before := time.Now().UTC().Add(-time.Second)
	got := clock.Now()
	after := time.Now().UTC().Add(time.Second)
	if got.Before(before) || got.After(after) {
		t.Fatalf("ClockFunc(nil).Now() = %s", got)
	}
	if got.Location() != time.UTC {
		t.Fatalf("ClockFunc(nil).Now() not UTC")
	}
}

func TestClockFuncNormalizesToUTC(t *testing.T) {
	local := time.Date(2026, 7, 1, 10, 0, 0, 0, time.FixedZone("X", 3600))
	clock := ClockFunc(func() time.Time { return local })
	got := clock.Now()
	if got.Location() != time.UTC {
		t.Fatalf("Now() location = %v", got.Location())
	}
	if !got.Equal(local) {
		t.Fatalf("Now() = %s, want same instant as %s", got, local)
	}
}

func TestSelectNowFuncPrefersStoreClock(t *testing.T) {
	storeNow := time.Date(2026, 3, 3, 3, 0, 0, 0, time.UTC)
	store := memory.NewStore(nil)
	store.SetNowFunc(func() time.Time { return storeNow })

	clockNow := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	fn := selectNowFunc(store, ClockFunc(func() time.Time { return clockNow }))
	if got := fn(); !got.Equal(storeNow) {
		t.Fatalf("selectNowFunc preferred clock: %s", got)
	}
}

func TestSelectNowFuncFallsBackToClock(t *testing.T) {
	clockNow := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	fn := selectNowFunc(plainStore{}, ClockFunc(func() time.Time { return clockNow }))
	if got := fn(); !got.Equal(clockNow) {
		t.Fatalf("selectNowFunc ignored clock: %s", got)
	}
}

// plainStore hides the memory store's NowFunc provider so the fallback path
// is reachable.
type plainStore struct {
	domain.PersistentStore
}

func TestExtractRulesEngine(t *testing.T) {
	engine := NewRulesEngine()
	store := memory.NewStore(engine)
	if got := extractRulesEngine(store); got != engine {
		t.Fatalf("extractRulesEngine returned %p, want %p", got, engine)
	}
	if got := extractRulesEngine(plainStore{store}); got != nil {
		t.Fatalf("extractRulesEngine on opaque store = %p", got)
	}
}

func TestUnknownOperationSkipsAudit(t *testing.T) {
	recorder := &captureAuditRecorder{}
	svc := newTestService(WithAuditRecorder(recorder))

	id := "x"
	_, err := svc.runMutation(context.Background(), "defrag_disk", &id, func(domain.Tx) error { return nil })
	if err != nil {
		t.Fatalf("runMutation: %v", err)
	}
	if n := len(recorder.Entries()); n != 0 {
		t.Fatalf("unknown operation audited %d times", n)
	}
}

func TestAuditDurationCarriedIntoStoreLog(t *testing.T) {
	store := memory.NewStore(nil)
	recorder := NewStoreAuditRecorder(store, nil)

	recorder.Record(context.Background(), AuditEntry{
		Operation: "create_team",
		Entity:    EntityTeam,
		Action:    ActionCreate,
		EntityID:  "team_1",
		Status:    AuditStatusSuccess,
		Duration:  1500 * time.Microsecond,
		Timestamp: time.Date(2026, 7, 1, 8, 0, 0, 0, time.UTC),
	})

	logs := store.ListAuditLogs()
	if len(logs) != 1 {
		t.Fatalf("audit logs = %d", len(logs))
	}
	if logs[0].DurationMS != 1.5 {
		t.Fatalf("duration ms = %v, want 1.5", logs[0].DurationMS)
	}
}

func TestNoopImplementationsAreSafe(t *testing.T) {
	svc := NewService(memory.NewStore(nil))
	team, _, err := svc.CreateTeam(context.Background(), Team{
		Name:   "Sales",
		Budget: decimal.NewFromInt(1),
		Color:  domain.TeamColorTeal,
	})
	if err != nil {
		t.Fatalf("create with defaults: %v", err)
	}
	if team.ID == "" {
		t.Fatalf("id not assigned")
	}
}
