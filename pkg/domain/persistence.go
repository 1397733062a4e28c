package domain

import (
	"context"
	"time"
)

// Tx exposes the domain operations that a persistence implementation must
// support within an atomic scope. Update and Delete return a NotFoundError
// when the id is absent; the collection is left untouched. Delete returns the
// removed record.
type Tx interface {
	Snapshot() RuleView
	CreateTeam(Team) (Team, error)
	UpdateTeam(id string, mutator func(*Team) error) (Team, error)
	DeleteTeam(id string) (Team, error)
	CreateMember(Member) (Member, error)
	UpdateMember(id string, mutator func(*Member) error) (Member, error)
	DeleteMember(id string) (Member, error)
	CreateCustomer(Customer) (Customer, error)
	UpdateCustomer(id string, mutator func(*Customer) error) (Customer, error)
	DeleteCustomer(id string) (Customer, error)
	CreateCategory(Category) (Category, error)
	UpdateCategory(id string, mutator func(*Category) error) (Category, error)
	DeleteCategory(id string) (Category, error)
	CreateTransaction(Transaction) (Transaction, error)
	UpdateTransaction(id string, mutator func(*Transaction) error) (Transaction, error)
	DeleteTransaction(id string) (Transaction, error)
	CreateSalary(Salary) (Salary, error)
	UpdateSalary(id string, mutator func(*Salary) error) (Salary, error)
	DeleteSalary(id string) (Salary, error)
	CreateBonus(Bonus) (Bonus, error)
	UpdateBonus(id string, mutator func(*Bonus) error) (Bonus, error)
	DeleteBonus(id string) (Bonus, error)
	CreateCommission(Commission) (Commission, error)
	UpdateCommission(id string, mutator func(*Commission) error) (Commission, error)
	DeleteCommission(id string) (Commission, error)
	CreateCustomerTransaction(CustomerTransaction) (CustomerTransaction, error)
	UpdateCustomerTransaction(id string, mutator func(*CustomerTransaction) error) (CustomerTransaction, error)
	DeleteCustomerTransaction(id string) (CustomerTransaction, error)
	CreateCustomerCount(CustomerCount) (CustomerCount, error)
	UpdateCustomerCount(id string, mutator func(*CustomerCount) error) (CustomerCount, error)
	DeleteCustomerCount(id string) (CustomerCount, error)
	CreateUser(User) (User, error)
	UpdateUser(id string, mutator func(*User) error) (User, error)
	DeleteUser(id string) (User, error)
	CreateAuditLog(AuditLog) (AuditLog, error)
	UpdateAuditLog(id string, mutator func(*AuditLog) error) (AuditLog, error)
	DeleteAuditLog(id string) (AuditLog, error)
	FindTeam(id string) (Team, bool)
	FindMember(id string) (Member, bool)
	FindCustomer(id string) (Customer, bool)
	FindCategory(id string) (Category, bool)
}

// StoreMeta carries the lifecycle markers persisted next to the collections.
// Initialized distinguishes an intentionally empty store from one that has
// never been opened.
type StoreMeta struct {
	Initialized bool       `json:"initialized"`
	SeededAt    *time.Time `json:"seeded_at,omitempty"`
	LastSavedAt *time.Time `json:"last_saved_at,omitempty"`
}

// PersistentStore is the abstraction over storage backends. Reads return deep
// copies in insertion order.
type PersistentStore interface {
	RunInTransaction(ctx context.Context, fn func(Tx) error) (Result, error)
	View(ctx context.Context, fn func(RuleView) error) error
	GetTeam(id string) (Team, bool)
	ListTeams() []Team
	GetMember(id string) (Member, bool)
	ListMembers() []Member
	GetCustomer(id string) (Customer, bool)
	ListCustomers() []Customer
	GetCategory(id string) (Category, bool)
	ListCategories() []Category
	GetTransaction(id string) (Transaction, bool)
	ListTransactions() []Transaction
	GetSalary(id string) (Salary, bool)
	ListSalaries() []Salary
	GetBonus(id string) (Bonus, bool)
	ListBonuses() []Bonus
	GetCommission(id string) (Commission, bool)
	ListCommissions() []Commission
	GetCustomerTransaction(id string) (CustomerTransaction, bool)
	ListCustomerTransactions() []CustomerTransaction
	GetCustomerCount(id string) (CustomerCount, bool)
	ListCustomerCounts() []CustomerCount
	GetUser(id string) (User, bool)
	ListUsers() []User
	ListAuditLogs() []AuditLog
	Meta() StoreMeta
	MarkSeeded(at time.Time) error
	ResetAll(ctx context.Context) error
}
