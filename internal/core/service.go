package core

import (
	"context"
	"time"

	"backcore/internal/infra/persistence/memory"
	"backcore/pkg/domain"
)

// Service exposes the transactional operations of the dashboard data core.
// Every mutating call runs inside a store transaction, is observed by the
// configured metrics recorders and tracer, and leaves an audit entry.
type Service struct {
	store   domain.PersistentStore
	logger  Logger
	clock   Clock
	nowFn   func() time.Time
	audit   AuditRecorder
	metrics []MetricsRecorder
	tracer  Tracer
}

// ServiceOption customizes service construction.
type ServiceOption func(*Service)

// WithLogger sets the structured logger used by the service.
func WithLogger(logger Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the timestamp source used for audit entries.
func WithClock(clock Clock) ServiceOption {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithAuditRecorder sets the audit sink. By default entries are written back
// into the store's audit log collection.
func WithAuditRecorder(recorder AuditRecorder) ServiceOption {
	return func(s *Service) {
		if recorder != nil {
			s.audit = recorder
		}
	}
}

// WithMetricsRecorder appends a metrics sink. Multiple recorders all observe
// every operation.
func WithMetricsRecorder(recorder MetricsRecorder) ServiceOption {
	return func(s *Service) {
		if recorder != nil {
			s.metrics = append(s.metrics, recorder)
		}
	}
}

// WithTracer sets the tracer wrapping each operation.
func WithTracer(tracer Tracer) ServiceOption {
	return func(s *Service) {
		if tracer != nil {
			s.tracer = tracer
		}
	}
}

// NewService constructs a service backed by the supplied store.
func NewService(store domain.PersistentStore, opts ...ServiceOption) *Service {
	s := &Service{
		store:  store,
		logger: noopLogger{},
		tracer: noopTracer{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.nowFn = selectNowFunc(store, s.clock)
	if s.audit == nil {
		s.audit = NewStoreAuditRecorder(store, s.logger)
	}
	return s
}

// NewInMemoryService creates a service over a fresh in-memory store using the
// given rules engine.
func NewInMemoryService(engine *RulesEngine, opts ...ServiceOption) *Service {
	return NewService(memory.NewStore(engine), opts...)
}

// Store returns the underlying storage implementation.
func (s *Service) Store() domain.PersistentStore {
	return s.store
}

// extractRulesEngine recovers the engine from stores that expose it.
func extractRulesEngine(store domain.PersistentStore) *domain.RulesEngine {
	if provider, ok := store.(interface{ RulesEngine() *domain.RulesEngine }); ok {
		return provider.RulesEngine()
	}
	return nil
}

// selectNowFunc prefers the store's clock so service timestamps line up with
// the timestamps the store stamps on records.
func selectNowFunc(store domain.PersistentStore, clock Clock) func() time.Time {
	if provider, ok := store.(interface{ NowFunc() func() time.Time }); ok {
		if fn := provider.NowFunc(); fn != nil {
			return func() time.Time { return fn().UTC() }
		}
	}
	if clock != nil {
		return clock.Now
	}
	return func() time.Time { return time.Now().UTC() }
}

// runMutation wraps a store transaction with tracing, metrics, and auditing.
// entityID is read after fn ran so closures can record the id they touched.
func (s *Service) runMutation(ctx context.Context, operation string, entityID *string, fn func(domain.Tx) error) (domain.Result, error) {
	ctx, span := s.tracer.Start(ctx, operation)
	start := time.Now()
	res, err := s.store.RunInTransaction(ctx, fn)
	duration := time.Since(start)
	span.End(err)

	for _, recorder := range s.metrics {
		recorder.Observe(ctx, operation, err == nil, duration)
	}

	var id string
	if entityID != nil {
		id = *entityID
	}
	if err != nil {
		s.logger.Warn("operation failed", "operation", operation, "entity_id", id, "error", err)
		s.recordAuditError(ctx, operation, id, duration, err)
		return res, err
	}
	s.logger.Debug("operation completed", "operation", operation, "entity_id", id, "duration_ms", float64(duration)/float64(time.Millisecond))
	for _, warning := range res.Warnings() {
		s.logger.Warn("rule warning", "rule", warning.Rule, "entity", string(warning.Entity), "entity_id", warning.EntityID, "message", warning.Message)
	}
	s.recordAuditSuccess(ctx, operation, id, duration)
	return res, nil
}

func (s *Service) recordAuditSuccess(ctx context.Context, operation, entityID string, duration time.Duration) {
	meta, ok := auditOperations[operation]
	if !ok {
		return
	}
	s.audit.Record(ctx, AuditEntry{
		Operation: operation,
		Entity:    meta.Entity,
		Action:    meta.Action,
		EntityID:  entityID,
		Status:    AuditStatusSuccess,
		Duration:  duration,
		Timestamp: s.nowFn(),
	})
}

func (s *Service) recordAuditError(ctx context.Context, operation, entityID string, duration time.Duration, err error) {
	meta, ok := auditOperations[operation]
	if !ok {
		return
	}
	entry := AuditEntry{
		Operation: operation,
		Entity:    meta.Entity,
		Action:    meta.Action,
		EntityID:  entityID,
		Status:    AuditStatusError,
		Duration:  duration,
		Timestamp: s.nowFn(),
	}
	if err != nil {
		entry.Error = err.Error()
	}
	s.audit.Record(ctx, entry)
}

// Meta reports the store lifecycle markers.
func (s *Service) Meta() domain.StoreMeta {
	return s.store.Meta()
}

// ResetAllData clears every collection, including audit logs.
func (s *Service) ResetAllData(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "reset_all_data")
	start := time.Now()
	err := s.store.ResetAll(ctx)
	duration := time.Since(start)
	span.End(err)
	for _, recorder := range s.metrics {
		recorder.Observe(ctx, "reset_all_data", err == nil, duration)
	}
	if err != nil {
		s.logger.Error("reset failed", "error", err)
		return err
	}
	s.logger.Info("all data reset")
	return nil
}
