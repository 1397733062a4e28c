package core

import (
	"context"
	"time"

	"go.uber.org/zap"

	"backcore/pkg/domain"
)

// AuditStatus mirrors the persisted audit outcome values.
type AuditStatus = domain.AuditStatus

const (
	AuditStatusSuccess = domain.AuditStatusSuccess
	AuditStatusError   = domain.AuditStatusError
)

// Logger receives structured key/value pairs from the service.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// zapLogger adapts a zap logger to the service Logger interface.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger wraps a zap logger for use as the service logger. Nil yields a
// no-op logger.
func NewZapLogger(l *zap.Logger) Logger {
	if l == nil {
		return noopLogger{}
	}
	return zapLogger{sugar: l.Sugar()}
}

func (z zapLogger) Debug(msg string, args ...any) { z.sugar.Debugw(msg, args...) }
func (z zapLogger) Info(msg string, args ...any)  { z.sugar.Infow(msg, args...) }
func (z zapLogger) Warn(msg string, args ...any)  { z.sugar.Warnw(msg, args...) }
func (z zapLogger) Error(msg string, args ...any) { z.sugar.Errorw(msg, args...) }

// AuditEntry describes one completed service operation.
type AuditEntry struct {
	Operation string
	Entity    EntityType
	Action    Action
	EntityID  string
	Status    AuditStatus
	Error     string
	Duration  time.Duration
	Timestamp time.Time
}

// AuditRecorder receives audit entries after each mutating operation.
type AuditRecorder interface {
	Record(ctx context.Context, entry AuditEntry)
}

// storeAuditRecorder appends audit entries to the store's audit log
// collection in their own transaction, after the audited operation committed.
type storeAuditRecorder struct {
	store  domain.PersistentStore
	logger Logger
}

// NewStoreAuditRecorder persists audit entries as audit log records.
func NewStoreAuditRecorder(store domain.PersistentStore, logger Logger) AuditRecorder {
	if logger == nil {
		logger = noopLogger{}
	}
	return &storeAuditRecorder{store: store, logger: logger}
}

func (r *storeAuditRecorder) Record(ctx context.Context, entry AuditEntry) {
	record := domain.AuditLog{
		Operation:  entry.Operation,
		Entity:     entry.Entity,
		EntityID:   entry.EntityID,
		Action:     entry.Action,
		Status:     entry.Status,
		DurationMS: float64(entry.Duration) / float64(time.Millisecond),
		RecordedAt: entry.Timestamp,
	}
	if _, err := r.store.RunInTransaction(ctx, func(tx domain.Tx) error {
		_, err := tx.CreateAuditLog(record)
		return err
	}); err != nil {
		r.logger.Warn("audit entry dropped", "operation", entry.Operation, "error", err)
	}
}

// MetricsRecorder observes operation outcomes.
type MetricsRecorder interface {
	Observe(ctx context.Context, operation string, success bool, duration time.Duration)
}

// TraceSpan finalizes a single traced operation.
type TraceSpan interface {
	End(err error)
}

// Tracer opens spans around service operations.
type Tracer interface {
	Start(ctx context.Context, operation string) (context.Context, TraceSpan)
}

type noopTracer struct{}

func (noopTracer) Start(ctx context.Context, _ string) (context.Context, TraceSpan) {
	return ctx, noopSpan{}
}

type noopSpan struct{}

func (noopSpan) End(error) {}

// Clock supplies the service with timestamps.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface. A nil function falls
// back to the system clock in UTC.
type ClockFunc func() time.Time

// Now returns the function's time normalized to UTC.
func (f ClockFunc) Now() time.Time {
	if f == nil {
		return time.Now().UTC()
	}
	return f().UTC()
}

type operationMetadata struct {
	Entity EntityType
	Action Action
}

var auditOperations = map[string]operationMetadata{
	"create_team":                 {Entity: EntityTeam, Action: ActionCreate},
	"update_team":                 {Entity: EntityTeam, Action: ActionUpdate},
	"delete_team":                 {Entity: EntityTeam, Action: ActionDelete},
	"create_member":               {Entity: EntityMember, Action: ActionCreate},
	"update_member":               {Entity: EntityMember, Action: ActionUpdate},
	"delete_member":               {Entity: EntityMember, Action: ActionDelete},
	"create_customer":             {Entity: EntityCustomer, Action: ActionCreate},
	"update_customer":             {Entity: EntityCustomer, Action: ActionUpdate},
	"delete_customer":             {Entity: EntityCustomer, Action: ActionDelete},
	"create_category":             {Entity: EntityCategory, Action: ActionCreate},
	"update_category":             {Entity: EntityCategory, Action: ActionUpdate},
	"delete_category":             {Entity: EntityCategory, Action: ActionDelete},
	"create_transaction":          {Entity: EntityTransaction, Action: ActionCreate},
	"update_transaction":          {Entity: EntityTransaction, Action: ActionUpdate},
	"delete_transaction":          {Entity: EntityTransaction, Action: ActionDelete},
	"create_salary":               {Entity: EntitySalary, Action: ActionCreate},
	"update_salary":               {Entity: EntitySalary, Action: ActionUpdate},
	"delete_salary":               {Entity: EntitySalary, Action: ActionDelete},
	"create_bonus":                {Entity: EntityBonus, Action: ActionCreate},
	"update_bonus":                {Entity: EntityBonus, Action: ActionUpdate},
	"delete_bonus":                {Entity: EntityBonus, Action: ActionDelete},
	"create_commission":           {Entity: EntityCommission, Action: ActionCreate},
	"update_commission":           {Entity: EntityCommission, Action: ActionUpdate},
	"delete_commission":           {Entity: EntityCommission, Action: ActionDelete},
	"create_customer_transaction": {Entity: EntityCustomerTransaction, Action: ActionCreate},
	"update_customer_transaction": {Entity: EntityCustomerTransaction, Action: ActionUpdate},
	"delete_customer_transaction": {Entity: EntityCustomerTransaction, Action: ActionDelete},
	"create_customer_count":       {Entity: EntityCustomerCount, Action: ActionCreate},
	"update_customer_count":       {Entity: EntityCustomerCount, Action: ActionUpdate},
	"delete_customer_count":       {Entity: EntityCustomerCount, Action: ActionDelete},
	"create_user":                 {Entity: EntityUser, Action: ActionCreate},
	"update_user":                 {Entity: EntityUser, Action: ActionUpdate},
	"delete_user":                 {Entity: EntityUser, Action: ActionDelete},
}
