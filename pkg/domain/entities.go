// Package domain defines the persistent entities, value types, and rule
// evaluation primitives used by backcore.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntityType identifies the type of record stored in the core domain.
type EntityType string

// Supported entity type identifiers used in Change records and persistence buckets.
const (
	// EntityTeam identifies a sales team record.
	EntityTeam EntityType = "team"
	// EntityMember identifies a staff member record.
	EntityMember EntityType = "member"
	// EntityCustomer identifies a customer record.
	EntityCustomer EntityType = "customer"
	// EntityCategory identifies an income or expense category record.
	EntityCategory EntityType = "category"
	// EntityTransaction identifies a bookkeeping transaction record.
	EntityTransaction EntityType = "transaction"
	// EntitySalary identifies a salary payout record.
	EntitySalary EntityType = "salary"
	// EntityBonus identifies a bonus payout record.
	EntityBonus EntityType = "bonus"
	// EntityCommission identifies a commission payout record.
	EntityCommission EntityType = "commission"
	// EntityCustomerTransaction identifies a per-customer money movement record.
	EntityCustomerTransaction EntityType = "customer_transaction"
	// EntityCustomerCount identifies a periodic customer count snapshot record.
	EntityCustomerCount EntityType = "customer_count"
	// EntityUser identifies a dashboard user record.
	EntityUser EntityType = "user"
	// EntityAuditLog identifies an admin audit trail record.
	EntityAuditLog EntityType = "audit_log"
)

// TeamColor enumerates the accent colors assignable to a team.
type TeamColor string

// Canonical team colors accepted by the dashboard palette.
const (
	TeamColorBlue   TeamColor = "blue"
	TeamColorGreen  TeamColor = "green"
	TeamColorOrange TeamColor = "orange"
	TeamColorPurple TeamColor = "purple"
	TeamColorRed    TeamColor = "red"
	TeamColorTeal   TeamColor = "teal"
)

// CustomerType classifies how a customer entered the book.
type CustomerType string

// Canonical customer acquisition types.
const (
	CustomerTypeNew       CustomerType = "new"
	CustomerTypeDeposit   CustomerType = "deposit"
	CustomerTypeExtension CustomerType = "extension"
)

// CustomerStatus enumerates customer account states.
type CustomerStatus string

// Canonical customer statuses.
const (
	CustomerStatusActive    CustomerStatus = "active"
	CustomerStatusInactive  CustomerStatus = "inactive"
	CustomerStatusBlacklist CustomerStatus = "blacklist"
)

// FlowType distinguishes money flowing in from money flowing out. It applies
// to both categories and the transactions filed under them.
type FlowType string

// Canonical flow directions.
const (
	FlowIncome  FlowType = "income"
	FlowExpense FlowType = "expense"
)

// PayoutStatus enumerates payroll record states shared by salaries, bonuses,
// and commissions.
type PayoutStatus string

// Canonical payout statuses.
const (
	PayoutStatusPending   PayoutStatus = "pending"
	PayoutStatusPaid      PayoutStatus = "paid"
	PayoutStatusCancelled PayoutStatus = "cancelled"
)

// CustomerMovementKind classifies a customer transaction.
type CustomerMovementKind string

// Canonical customer movement kinds.
const (
	MovementDeposit    CustomerMovementKind = "deposit"
	MovementWithdrawal CustomerMovementKind = "withdrawal"
	MovementExtension  CustomerMovementKind = "extension"
)

// UserRole enumerates dashboard user roles. Roles are stored, never enforced;
// authentication lives outside this module.
type UserRole string

// Canonical user roles.
const (
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "manager"
	RoleStaff   UserRole = "staff"
)

// AuditStatus reports how an audited operation ended.
type AuditStatus string

// Canonical audit outcomes.
const (
	AuditStatusSuccess AuditStatus = "success"
	AuditStatusError   AuditStatus = "error"
)

// Severity captures rule outcomes.
type Severity string

// Rule evaluation severities determine commit behavior and logging.
const (
	// SeverityBlock blocks transaction commit.
	SeverityBlock Severity = "block"
	// SeverityWarn logs a warning but allows commit.
	SeverityWarn Severity = "warn"
	SeverityLog  Severity = "log"
)

// Base contains common fields for all domain records.
type Base struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Team represents a sales team. Leader is a display name, not a member
// reference.
type Team struct {
	Base
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Leader      string          `json:"leader"`
	Budget      decimal.Decimal `json:"budget"`
	Color       TeamColor       `json:"color"`
}

// Member represents a staff member. TeamID is an unchecked reference and may
// dangle after the team is deleted.
type Member struct {
	Base
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	Address     string          `json:"address"`
	BankName    string          `json:"bank_name"`
	BankAccount string          `json:"bank_account"`
	BaseSalary  decimal.Decimal `json:"base_salary"`
	TeamID      *string         `json:"team_id"`
}

// Customer represents a managed customer account.
type Customer struct {
	Base
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	Phone           string           `json:"phone"`
	Type            CustomerType     `json:"type"`
	Status          CustomerStatus   `json:"status"`
	InitialAmount   decimal.Decimal  `json:"initial_amount"`
	ExtensionAmount *decimal.Decimal `json:"extension_amount,omitempty"`
	TotalAmount     *decimal.Decimal `json:"total_amount,omitempty"`
	TeamID          *string          `json:"team_id"`
	MemberID        *string          `json:"member_id"`
	Notes           *string          `json:"notes,omitempty"`
}

// Category groups transactions by purpose and flow direction.
type Category struct {
	Base
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Type        FlowType        `json:"type"`
	Budget      decimal.Decimal `json:"budget"`
	Icon        string          `json:"icon"`
	Color       string          `json:"color"`
}

// Transaction records a single bookkeeping entry filed under a category.
type Transaction struct {
	Base
	Title       string          `json:"title"`
	Description *string         `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Type        FlowType        `json:"type"`
	CategoryID  string          `json:"category_id"`
	TeamID      *string         `json:"team_id"`
	MemberID    *string         `json:"member_id"`
	OccurredAt  time.Time       `json:"occurred_at"`
	BankName    *string         `json:"bank_name,omitempty"`
	CardLast4   *string         `json:"card_last4,omitempty"`
}

// Salary records a monthly base salary payout for a member.
type Salary struct {
	Base
	MemberID string          `json:"member_id"`
	Amount   decimal.Decimal `json:"amount"`
	Month    string          `json:"month"`
	Status   PayoutStatus    `json:"status"`
	PaidAt   *time.Time      `json:"paid_at"`
}

// Bonus records a one-off bonus payout for a member.
type Bonus struct {
	Base
	MemberID  string          `json:"member_id"`
	Amount    decimal.Decimal `json:"amount"`
	Reason    string          `json:"reason"`
	AwardedAt time.Time       `json:"awarded_at"`
	Status    PayoutStatus    `json:"status"`
}

// Commission records a sales commission payout for a member.
type Commission struct {
	Base
	MemberID    string          `json:"member_id"`
	Amount      decimal.Decimal `json:"amount"`
	Percentage  float64         `json:"percentage"`
	SalesAmount decimal.Decimal `json:"sales_amount"`
	EarnedAt    time.Time       `json:"earned_at"`
	Status      PayoutStatus    `json:"status"`
}

// CustomerTransaction records a money movement on a customer account.
type CustomerTransaction struct {
	Base
	CustomerID string               `json:"customer_id"`
	Kind       CustomerMovementKind `json:"kind"`
	Amount     decimal.Decimal      `json:"amount"`
	OccurredAt time.Time            `json:"occurred_at"`
	Notes      *string              `json:"notes,omitempty"`
}

// CustomerCount is an independently recorded periodic snapshot of customer
// totals. It is never derived from the customers collection.
type CustomerCount struct {
	Base
	TeamID           *string         `json:"team_id"`
	NewCustomers     int             `json:"new_customers"`
	DepositCustomers int             `json:"deposit_customers"`
	Expenses         decimal.Decimal `json:"expenses"`
	TotalCustomers   int             `json:"total_customers"`
	RecordedAt       time.Time       `json:"recorded_at"`
}

// User is a dashboard identity record. No credentials or sessions are held
// here.
type User struct {
	Base
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Role   UserRole `json:"role"`
	Active bool     `json:"active"`
}

// AuditLog records one audited service operation.
type AuditLog struct {
	Base
	Operation  string      `json:"operation"`
	Entity     EntityType  `json:"entity"`
	EntityID   string      `json:"entity_id"`
	Action     Action      `json:"action"`
	Status     AuditStatus `json:"status"`
	Actor      string      `json:"actor"`
	DurationMS float64     `json:"duration_ms"`
	RecordedAt time.Time   `json:"recorded_at"`
}

// Change describes a mutation applied to an entity during a transaction.
type Change struct {
	Entity EntityType
	Action Action
	Before any
	After  any
}

// Action indicates the type of modification performed.
type Action string

// Change actions enumerate supported CRUD operations captured in the audit trail.
const (
	// ActionCreate indicates an entity was created.
	ActionCreate Action = "create"
	// ActionUpdate indicates an entity was updated.
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Violation reports a failed rule evaluation.
type Violation struct {
	Rule     string
	Severity Severity
	Message  string
	Entity   EntityType
	EntityID string
}

// Result aggregates violations from the rules engine.
type Result struct {
	Violations []Violation
}

// Merge appends violations from another result.
func (r *Result) Merge(other Result) {
	if len(other.Violations) == 0 {
		return
	}
	r.Violations = append(r.Violations, other.Violations...)
}

// HasBlocking returns true if the result contains blocking violations.
func (r Result) HasBlocking() bool {
	for _, v := range r.Violations {
		if v.Severity == SeverityBlock {
			return true
		}
	}
	return false
}

// Warnings returns only the warn-severity violations.
func (r Result) Warnings() []Violation {
	var out []Violation
	for _, v := range r.Violations {
		if v.Severity == SeverityWarn {
			out = append(out, v)
		}
	}
	return out
}

// RuleViolationError is returned when blocking violations are present.
type RuleViolationError struct {
	Result Result
}

func (e RuleViolationError) Error() string {
	return "transaction blocked by rules"
}
