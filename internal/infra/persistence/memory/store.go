// Package memory provides the in-memory fallback store holding the dashboard
// collections in insertion order. It is the backing state for the durable
// snapshot drivers and the whole store for ephemeral environments.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"backcore/pkg/domain"
)

// Compile-time contract assertion ensuring memory.Store adheres to the domain
// persistence interface.
var _ domain.PersistentStore = (*Store)(nil)

type (
	// Team aliases domain.Team for in-memory persistence operations.
	Team = domain.Team
	// Member aliases domain.Member.
	Member = domain.Member
	// Customer aliases domain.Customer.
	Customer = domain.Customer
	// Category aliases domain.Category.
	Category = domain.Category
	// Transaction aliases domain.Transaction.
	Transaction = domain.Transaction
	// Salary aliases domain.Salary.
	Salary = domain.Salary
	// Bonus aliases domain.Bonus.
	Bonus = domain.Bonus
	// Commission aliases domain.Commission.
	Commission = domain.Commission
	// CustomerTransaction aliases domain.CustomerTransaction.
	CustomerTransaction = domain.CustomerTransaction
	// CustomerCount aliases domain.CustomerCount.
	CustomerCount = domain.CustomerCount
	// User aliases domain.User.
	User = domain.User
	// AuditLog aliases domain.AuditLog.
	AuditLog = domain.AuditLog
	// Change aliases domain.Change captured in transactions.
	Change = domain.Change
	// Result aliases domain.Result summarizing rule evaluation.
	Result = domain.Result
	// RulesEngine aliases domain.RulesEngine used to evaluate rules.
	RulesEngine = domain.RulesEngine
	// Tx aliases domain.Tx representing a mutable unit of work.
	Tx = domain.Tx
	// RuleView aliases domain.RuleView providing read-only state.
	RuleView = domain.RuleView
	// PersistentStore aliases the domain.PersistentStore abstraction.
	PersistentStore = domain.PersistentStore
	// StoreMeta aliases domain.StoreMeta lifecycle markers.
	StoreMeta = domain.StoreMeta
)

// Collections are slices, not maps: the durable form is one JSON array per
// collection and deletion must preserve the order of survivors.
type memoryState struct {
	teams                []Team
	members              []Member
	customers            []Customer
	categories           []Category
	transactions         []Transaction
	salaries             []Salary
	bonuses              []Bonus
	commissions          []Commission
	customerTransactions []CustomerTransaction
	customerCounts       []CustomerCount
	users                []User
	auditLogs            []AuditLog
	meta                 StoreMeta
}

// Snapshot captures a point-in-time clone of the store state, one JSON array
// per collection plus the lifecycle meta block.
type Snapshot struct {
	Teams                []Team                `json:"teams"`
	Members              []Member              `json:"members"`
	Customers            []Customer            `json:"customers"`
	Categories           []Category            `json:"categories"`
	Transactions         []Transaction         `json:"transactions"`
	Salaries             []Salary              `json:"salaries"`
	Bonuses              []Bonus               `json:"bonuses"`
	Commissions          []Commission          `json:"commissions"`
	CustomerTransactions []CustomerTransaction `json:"customer_transactions"`
	CustomerCounts       []CustomerCount       `json:"customer_counts"`
	Users                []User                `json:"users"`
	AuditLogs            []AuditLog            `json:"audit_logs"`
	Meta                 StoreMeta             `json:"meta"`
}

func newMemoryState() memoryState {
	return memoryState{}
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneTeam(t Team) Team         { return t }
func cloneCategory(c Category) Category { return c }
func cloneBonus(b Bonus) Bonus      { return b }
func cloneCommission(c Commission) Commission { return c }
func cloneUser(u User) User         { return u }
func cloneAuditLog(a AuditLog) AuditLog { return a }

func cloneMember(m Member) Member {
	cp := m
	cp.TeamID = clonePtr(m.TeamID)
	return cp
}

func cloneCustomer(c Customer) Customer {
	cp := c
	cp.ExtensionAmount = clonePtr(c.ExtensionAmount)
	cp.TotalAmount = clonePtr(c.TotalAmount)
	cp.TeamID = clonePtr(c.TeamID)
	cp.MemberID = clonePtr(c.MemberID)
	cp.Notes = clonePtr(c.Notes)
	return cp
}

func cloneTransaction(t Transaction) Transaction {
	cp := t
	cp.Description = clonePtr(t.Description)
	cp.TeamID = clonePtr(t.TeamID)
	cp.MemberID = clonePtr(t.MemberID)
	cp.BankName = clonePtr(t.BankName)
	cp.CardLast4 = clonePtr(t.CardLast4)
	return cp
}

func cloneSalary(s Salary) Salary {
	cp := s
	cp.PaidAt = clonePtr(s.PaidAt)
	return cp
}

func cloneCustomerTransaction(t CustomerTransaction) CustomerTransaction {
	cp := t
	cp.Notes = clonePtr(t.Notes)
	return cp
}

func cloneCustomerCount(c CustomerCount) CustomerCount {
	cp := c
	cp.TeamID = clonePtr(c.TeamID)
	return cp
}

func cloneSlice[T any](in []T, clone func(T) T) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = clone(v)
	}
	return out
}

func (s memoryState) clone() memoryState {
	return memoryState{
		teams:                cloneSlice(s.teams, cloneTeam),
		members:              cloneSlice(s.members, cloneMember),
		customers:            cloneSlice(s.customers, cloneCustomer),
		categories:           cloneSlice(s.categories, cloneCategory),
		transactions:         cloneSlice(s.transactions, cloneTransaction),
		salaries:             cloneSlice(s.salaries, cloneSalary),
		bonuses:              cloneSlice(s.bonuses, cloneBonus),
		commissions:          cloneSlice(s.commissions, cloneCommission),
		customerTransactions: cloneSlice(s.customerTransactions, cloneCustomerTransaction),
		customerCounts:       cloneSlice(s.customerCounts, cloneCustomerCount),
		users:                cloneSlice(s.users, cloneUser),
		auditLogs:            cloneSlice(s.auditLogs, cloneAuditLog),
		meta:                 cloneMeta(s.meta),
	}
}

func cloneMeta(m StoreMeta) StoreMeta {
	cp := m
	cp.SeededAt = clonePtr(m.SeededAt)
	cp.LastSavedAt = clonePtr(m.LastSavedAt)
	return cp
}

func snapshotFromMemoryState(state memoryState) Snapshot {
	return Snapshot{
		Teams:                cloneSlice(state.teams, cloneTeam),
		Members:              cloneSlice(state.members, cloneMember),
		Customers:            cloneSlice(state.customers, cloneCustomer),
		Categories:           cloneSlice(state.categories, cloneCategory),
		Transactions:         cloneSlice(state.transactions, cloneTransaction),
		Salaries:             cloneSlice(state.salaries, cloneSalary),
		Bonuses:              cloneSlice(state.bonuses, cloneBonus),
		Commissions:          cloneSlice(state.commissions, cloneCommission),
		CustomerTransactions: cloneSlice(state.customerTransactions, cloneCustomerTransaction),
		CustomerCounts:       cloneSlice(state.customerCounts, cloneCustomerCount),
		Users:                cloneSlice(state.users, cloneUser),
		AuditLogs:            cloneSlice(state.auditLogs, cloneAuditLog),
		Meta:                 cloneMeta(state.meta),
	}
}

func memoryStateFromSnapshot(s Snapshot) memoryState {
	s = migrateSnapshot(s)
	return memoryState{
		teams:                cloneSlice(s.Teams, cloneTeam),
		members:              cloneSlice(s.Members, cloneMember),
		customers:            cloneSlice(s.Customers, cloneCustomer),
		categories:           cloneSlice(s.Categories, cloneCategory),
		transactions:         cloneSlice(s.Transactions, cloneTransaction),
		salaries:             cloneSlice(s.Salaries, cloneSalary),
		bonuses:              cloneSlice(s.Bonuses, cloneBonus),
		commissions:          cloneSlice(s.Commissions, cloneCommission),
		customerTransactions: cloneSlice(s.CustomerTransactions, cloneCustomerTransaction),
		customerCounts:       cloneSlice(s.CustomerCounts, cloneCustomerCount),
		users:                cloneSlice(s.Users, cloneUser),
		auditLogs:            cloneSlice(s.AuditLogs, cloneAuditLog),
		meta:                 cloneMeta(s.Meta),
	}
}

func dropEmptyIDs[T any](in []T, id func(T) string) []T {
	out := in[:0:0]
	for _, v := range in {
		if id(v) == "" {
			continue
		}
		out = append(out, v)
	}
	if out == nil {
		return []T{}
	}
	return out
}

// migrateSnapshot normalizes a decoded snapshot: nil collections become empty
// slices and records with empty ids are dropped. Dangling references are kept
// as stored; the store never repairs them.
func migrateSnapshot(snapshot Snapshot) Snapshot {
	snapshot.Teams = dropEmptyIDs(snapshot.Teams, func(t Team) string { return t.ID })
	snapshot.Members = dropEmptyIDs(snapshot.Members, func(m Member) string { return m.ID })
	snapshot.Customers = dropEmptyIDs(snapshot.Customers, func(c Customer) string { return c.ID })
	snapshot.Categories = dropEmptyIDs(snapshot.Categories, func(c Category) string { return c.ID })
	snapshot.Transactions = dropEmptyIDs(snapshot.Transactions, func(t Transaction) string { return t.ID })
	snapshot.Salaries = dropEmptyIDs(snapshot.Salaries, func(s Salary) string { return s.ID })
	snapshot.Bonuses = dropEmptyIDs(snapshot.Bonuses, func(b Bonus) string { return b.ID })
	snapshot.Commissions = dropEmptyIDs(snapshot.Commissions, func(c Commission) string { return c.ID })
	snapshot.CustomerTransactions = dropEmptyIDs(snapshot.CustomerTransactions, func(t CustomerTransaction) string { return t.ID })
	snapshot.CustomerCounts = dropEmptyIDs(snapshot.CustomerCounts, func(c CustomerCount) string { return c.ID })
	snapshot.Users = dropEmptyIDs(snapshot.Users, func(u User) string { return u.ID })
	snapshot.AuditLogs = dropEmptyIDs(snapshot.AuditLogs, func(a AuditLog) string { return a.ID })
	return snapshot
}

func indexOf[T any](items []T, id func(T) string, target string) int {
	for i := range items {
		if id(items[i]) == target {
			return i
		}
	}
	return -1
}

func idxTeam(items []Team, id string) int     { return indexOf(items, func(t Team) string { return t.ID }, id) }
func idxMember(items []Member, id string) int { return indexOf(items, func(m Member) string { return m.ID }, id) }
func idxCustomer(items []Customer, id string) int {
	return indexOf(items, func(c Customer) string { return c.ID }, id)
}
func idxCategory(items []Category, id string) int {
	return indexOf(items, func(c Category) string { return c.ID }, id)
}
func idxTransaction(items []Transaction, id string) int {
	return indexOf(items, func(t Transaction) string { return t.ID }, id)
}
func idxSalary(items []Salary, id string) int { return indexOf(items, func(s Salary) string { return s.ID }, id) }
func idxBonus(items []Bonus, id string) int   { return indexOf(items, func(b Bonus) string { return b.ID }, id) }
func idxCommission(items []Commission, id string) int {
	return indexOf(items, func(c Commission) string { return c.ID }, id)
}
func idxCustomerTransaction(items []CustomerTransaction, id string) int {
	return indexOf(items, func(t CustomerTransaction) string { return t.ID }, id)
}
func idxCustomerCount(items []CustomerCount, id string) int {
	return indexOf(items, func(c CustomerCount) string { return c.ID }, id)
}
func idxUser(items []User, id string) int { return indexOf(items, func(u User) string { return u.ID }, id) }
func idxAuditLog(items []AuditLog, id string) int {
	return indexOf(items, func(a AuditLog) string { return a.ID }, id)
}

// Store provides the in-memory transactional store for the dashboard domain.
type Store struct {
	mu     sync.RWMutex
	state  memoryState
	engine *RulesEngine
	nowFn  func() time.Time
}

// NewStore constructs an in-memory store backed by the provided rules engine.
// A fresh store is immediately marked initialized so an intentionally empty
// state is distinguishable from one that has never been opened.
func NewStore(engine *RulesEngine) *Store {
	if engine == nil {
		engine = domain.NewRulesEngine()
	}
	s := &Store{
		state:  newMemoryState(),
		engine: engine,
		nowFn:  func() time.Time { return time.Now().UTC() },
	}
	s.state.meta.Initialized = true
	return s
}

// SetNowFunc overrides the time provider. Intended for tests.
func (s *Store) SetNowFunc(fn func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if fn != nil {
		s.nowFn = fn
	}
}

// NowFunc returns the time provider used by the store.
func (s *Store) NowFunc() func() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nowFn
}

// RulesEngine exposes the currently configured engine.
func (s *Store) RulesEngine() *RulesEngine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine
}

// ExportState clones the current store state for external persistence.
func (s *Store) ExportState() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshotFromMemoryState(s.state)
}

// ImportState replaces the store state with the provided snapshot.
func (s *Store) ImportState(snapshot Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = memoryStateFromSnapshot(snapshot)
}

// Meta returns the lifecycle markers of the store.
func (s *Store) Meta() StoreMeta {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneMeta(s.state.meta)
}

// MarkSeeded records that sample data was loaded at the given instant.
func (s *Store) MarkSeeded(at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	at = at.UTC()
	s.state.meta.Initialized = true
	s.state.meta.SeededAt = &at
	return nil
}

// MarkSaved records the instant the state was last written to a durable
// backend. Called by the snapshot drivers after a successful persist.
func (s *Store) MarkSaved(at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	at = at.UTC()
	s.state.meta.LastSavedAt = &at
}

// ResetAll clears every collection and the seed markers. After reset the
// store is indistinguishable from a freshly opened one.
func (s *Store) ResetAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = newMemoryState()
	s.state.meta.Initialized = true
	return nil
}

// transaction represents a mutation set applied to a copy of the store state.
type transaction struct {
	store   *Store
	state   memoryState
	changes []Change
	now     time.Time
}

// ruleView exposes a read-only snapshot of the transactional state.
type ruleView struct {
	state *memoryState
}

func newRuleView(state *memoryState) RuleView {
	return ruleView{state: state}
}

func (v ruleView) ListTeams() []Team         { return cloneSlice(v.state.teams, cloneTeam) }
func (v ruleView) ListMembers() []Member     { return cloneSlice(v.state.members, cloneMember) }
func (v ruleView) ListCustomers() []Customer { return cloneSlice(v.state.customers, cloneCustomer) }
func (v ruleView) ListCategories() []Category {
	return cloneSlice(v.state.categories, cloneCategory)
}
func (v ruleView) ListTransactions() []Transaction {
	return cloneSlice(v.state.transactions, cloneTransaction)
}
func (v ruleView) ListSalaries() []Salary { return cloneSlice(v.state.salaries, cloneSalary) }
func (v ruleView) ListBonuses() []Bonus   { return cloneSlice(v.state.bonuses, cloneBonus) }
func (v ruleView) ListCommissions() []Commission {
	return cloneSlice(v.state.commissions, cloneCommission)
}
func (v ruleView) ListCustomerTransactions() []CustomerTransaction {
	return cloneSlice(v.state.customerTransactions, cloneCustomerTransaction)
}
func (v ruleView) ListCustomerCounts() []CustomerCount {
	return cloneSlice(v.state.customerCounts, cloneCustomerCount)
}
func (v ruleView) ListUsers() []User         { return cloneSlice(v.state.users, cloneUser) }
func (v ruleView) ListAuditLogs() []AuditLog { return cloneSlice(v.state.auditLogs, cloneAuditLog) }

func (v ruleView) FindTeam(id string) (Team, bool) {
	if i := idxTeam(v.state.teams, id); i >= 0 {
		return cloneTeam(v.state.teams[i]), true
	}
	return Team{}, false
}

func (v ruleView) FindMember(id string) (Member, bool) {
	if i := idxMember(v.state.members, id); i >= 0 {
		return cloneMember(v.state.members[i]), true
	}
	return Member{}, false
}

func (v ruleView) FindCustomer(id string) (Customer, bool) {
	if i := idxCustomer(v.state.customers, id); i >= 0 {
		return cloneCustomer(v.state.customers[i]), true
	}
	return Customer{}, false
}

func (v ruleView) FindCategory(id string) (Category, bool) {
	if i := idxCategory(v.state.categories, id); i >= 0 {
		return cloneCategory(v.state.categories[i]), true
	}
	return Category{}, false
}

// RunInTransaction executes fn within a transactional copy of the store
// state. Rules are evaluated against the candidate state before commit;
// blocking violations abort the commit and surface as RuleViolationError.
func (s *Store) RunInTransaction(ctx context.Context, fn func(tx Tx) error) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &transaction{
		store: s,
		state: s.state.clone(),
		now:   s.nowFn(),
	}

	if err := fn(tx); err != nil {
		return Result{}, err
	}

	var result Result
	if s.engine != nil {
		view := newRuleView(&tx.state)
		res, err := s.engine.Evaluate(ctx, view, tx.changes)
		if err != nil {
			return Result{}, err
		}
		result = res
		if res.HasBlocking() {
			return res, domain.RuleViolationError{Result: res}
		}
	}

	s.state = tx.state
	return result, nil
}

// View executes fn against a read-only snapshot of the store state.
func (s *Store) View(_ context.Context, fn func(RuleView) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := s.state.clone()
	return fn(newRuleView(&snapshot))
}

func (tx *transaction) recordChange(change Change) {
	tx.changes = append(tx.changes, change)
}

// Snapshot returns a read-only view over the transactional state.
func (tx *transaction) Snapshot() RuleView {
	return newRuleView(&tx.state)
}

func (tx *transaction) FindTeam(id string) (Team, bool) {
	if i := idxTeam(tx.state.teams, id); i >= 0 {
		return cloneTeam(tx.state.teams[i]), true
	}
	return Team{}, false
}

func (tx *transaction) FindMember(id string) (Member, bool) {
	if i := idxMember(tx.state.members, id); i >= 0 {
		return cloneMember(tx.state.members[i]), true
	}
	return Member{}, false
}

func (tx *transaction) FindCustomer(id string) (Customer, bool) {
	if i := idxCustomer(tx.state.customers, id); i >= 0 {
		return cloneCustomer(tx.state.customers[i]), true
	}
	return Customer{}, false
}

func (tx *transaction) FindCategory(id string) (Category, bool) {
	if i := idxCategory(tx.state.categories, id); i >= 0 {
		return cloneCategory(tx.state.categories[i]), true
	}
	return Category{}, false
}

// CreateTeam stores a new team within the transaction.
func (tx *transaction) CreateTeam(t Team) (Team, error) {
	if err := t.Validate(); err != nil {
		return Team{}, err
	}
	if t.ID == "" {
		t.ID = domain.NewID(domain.EntityTeam, tx.now)
	}
	if idxTeam(tx.state.teams, t.ID) >= 0 {
		return Team{}, fmt.Errorf("team %q already exists", t.ID)
	}
	t.CreatedAt = tx.now
	t.UpdatedAt = tx.now
	tx.state.teams = append(tx.state.teams, cloneTeam(t))
	tx.recordChange(Change{Entity: domain.EntityTeam, Action: domain.ActionCreate, After: cloneTeam(t)})
	return cloneTeam(t), nil
}

// UpdateTeam mutates a team using the provided mutator function.
func (tx *transaction) UpdateTeam(id string, mutator func(*Team) error) (Team, error) {
	i := idxTeam(tx.state.teams, id)
	if i < 0 {
		return Team{}, domain.NotFoundError{Entity: domain.EntityTeam, ID: id}
	}
	before := cloneTeam(tx.state.teams[i])
	current := cloneTeam(tx.state.teams[i])
	if err := mutator(&current); err != nil {
		return Team{}, err
	}
	current.ID = id
	current.CreatedAt = before.CreatedAt
	if err := current.Validate(); err != nil {
		return Team{}, err
	}
	current.UpdatedAt = tx.now
	tx.state.teams[i] = cloneTeam(current)
	tx.recordChange(Change{Entity: domain.EntityTeam, Action: domain.ActionUpdate, Before: before, After: cloneTeam(current)})
	return cloneTeam(current), nil
}

// DeleteTeam splices a team out of state, preserving the order of survivors.
// Members referencing the team keep their reference.
func (tx *transaction) DeleteTeam(id string) (Team, error) {
	i := idxTeam(tx.state.teams, id)
	if i < 0 {
		return Team{}, domain.NotFoundError{Entity: domain.EntityTeam, ID: id}
	}
	removed := cloneTeam(tx.state.teams[i])
	tx.state.teams = append(tx.state.teams[:i], tx.state.teams[i+1:]...)
	tx.recordChange(Change{Entity: domain.EntityTeam, Action: domain.ActionDelete, Before: cloneTeam(removed)})
	return removed, nil
}

// CreateMember stores a new member.
func (tx *transaction) CreateMember(m Member) (Member, error) {
	if err := m.Validate(); err != nil {
		return Member{}, err
	}
	if m.ID == "" {
		m.ID = domain.NewID(domain.EntityMember, tx.now)
	}
	if idxMember(tx.state.members, m.ID) >= 0 {
		return Member{}, fmt.Errorf("member %q already exists", m.ID)
	}
	m.CreatedAt = tx.now
	m.UpdatedAt = tx.now
	tx.state.members = append(tx.state.members, cloneMember(m))
	tx.recordChange(Change{Entity: domain.EntityMember, Action: domain.ActionCreate, After: cloneMember(m)})
	return cloneMember(m), nil
}

// UpdateMember mutates an existing member.
func (tx *transaction) UpdateMember(id string, mutator func(*Member) error) (Member, error) {
	i := idxMember(tx.state.members, id)
	if i < 0 {
		return Member{}, domain.NotFoundError{Entity: domain.EntityMember, ID: id}
	}
	before := cloneMember(tx.state.members[i])
	current := cloneMember(tx.state.members[i])
	if err := mutator(&current); err != nil {
		return Member{}, err
	}
	current.ID = id
	current.CreatedAt = before.CreatedAt
	if err := current.Validate(); err != nil {
		return Member{}, err
	}
	current.UpdatedAt = tx.now
	tx.state.members[i] = cloneMember(current)
	tx.recordChange(Change{Entity: domain.EntityMember, Action: domain.ActionUpdate, Before: before, After: cloneMember(current)})
	return cloneMember(current), nil
}

// DeleteMember splices a member out of state. Payroll records referencing the
// member keep their reference.
func (tx *transaction) DeleteMember(id string) (Member, error) {
	i := idxMember(tx.state.members, id)
	if i < 0 {
		return Member{}, domain.NotFoundError{Entity: domain.EntityMember, ID: id}
	}
	removed := cloneMember(tx.state.members[i])
	tx.state.members = append(tx.state.members[:i], tx.state.members[i+1:]...)
	tx.recordChange(Change{Entity: domain.EntityMember, Action: domain.ActionDelete, Before: cloneMember(removed)})
	return removed, nil
}

// CreateCustomer stores a new customer.
func (tx *transaction) CreateCustomer(c Customer) (Customer, error) {
	if err := c.Validate(); err != nil {
		return Customer{}, err
	}
	if c.ID == "" {
		c.ID = domain.NewID(domain.EntityCustomer, tx.now)
	}
	if idxCustomer(tx.state.customers, c.ID) >= 0 {
		return Customer{}, fmt.Errorf("customer %q already exists", c.ID)
	}
	c.CreatedAt = tx.now
	c.UpdatedAt = tx.now
	tx.state.customers = append(tx.state.customers, cloneCustomer(c))
	tx.recordChange(Change{Entity: domain.EntityCustomer, Action: domain.ActionCreate, After: cloneCustomer(c)})
	return cloneCustomer(c), nil
}

// UpdateCustomer mutates an existing customer.
func (tx *transaction) UpdateCustomer(id string, mutator func(*Customer) error) (Customer, error) {
	i := idxCustomer(tx.state.customers, id)
	if i < 0 {
		return Customer{}, domain.NotFoundError{Entity: domain.EntityCustomer, ID: id}
	}
	before := cloneCustomer(tx.state.customers[i])
	current := cloneCustomer(tx.state.customers[i])
	if err := mutator(&current); err != nil {
		return Customer{}, err
	}
	current.ID = id
	current.CreatedAt = before.CreatedAt
	if err := current.Validate(); err != nil {
		return Customer{}, err
	}
	current.UpdatedAt = tx.now
	tx.state.customers[i] = cloneCustomer(current)
	tx.recordChange(Change{Entity: domain.EntityCustomer, Action: domain.ActionUpdate, Before: before, After: cloneCustomer(current)})
	return cloneCustomer(current), nil
}

// DeleteCustomer splices a customer out of state. Customer transactions
// referencing the customer keep their reference.
func (tx *transaction) DeleteCustomer(id string) (Customer, error) {
	i := idxCustomer(tx.state.customers, id)
	if i < 0 {
		return Customer{}, domain.NotFoundError{Entity: domain.EntityCustomer, ID: id}
	}
	removed := cloneCustomer(tx.state.customers[i])
	tx.state.customers = append(tx.state.customers[:i], tx.state.customers[i+1:]...)
	tx.recordChange(Change{Entity: domain.EntityCustomer, Action: domain.ActionDelete, Before: cloneCustomer(removed)})
	return removed, nil
}

// CreateCategory stores a new category.
func (tx *transaction) CreateCategory(c Category) (Category, error) {
	if err := c.Validate(); err != nil {
		return Category{}, err
	}
	if c.ID == "" {
		c.ID = domain.NewID(domain.EntityCategory, tx.now)
	}
	if idxCategory(tx.state.categories, c.ID) >= 0 {
		return Category{}, fmt.Errorf("category %q already exists", c.ID)
	}
	c.CreatedAt = tx.now
	c.UpdatedAt = tx.now
	tx.state.categories = append(tx.state.categories, cloneCategory(c))
	tx.recordChange(Change{Entity: domain.EntityCategory, Action: domain.ActionCreate, After: cloneCategory(c)})
	return cloneCategory(c), nil
}

// UpdateCategory mutates an existing category.
func (tx *transaction) UpdateCategory(id string, mutator func(*Category) error) (Category, error) {
	i := idxCategory(tx.state.categories, id)
	if i < 0 {
		return Category{}, domain.NotFoundError{Entity: domain.EntityCategory, ID: id}
	}
	before := cloneCategory(tx.state.categories[i])
	current := cloneCategory(tx.state.categories[i])
	if err := mutator(&current); err != nil {
		return Category{}, err
	}
	current.ID = id
	current.CreatedAt = before.CreatedAt
	if err := current.Validate(); err != nil {
		return Category{}, err
	}
	current.UpdatedAt = tx.now
	tx.state.categories[i] = cloneCategory(current)
	tx.recordChange(Change{Entity: domain.EntityCategory, Action: domain.ActionUpdate, Before: before, After: cloneCategory(current)})
	return cloneCategory(current), nil
}

// DeleteCategory splices a category out of state. Transactions filed under
// the category keep their reference.
func (tx *transaction) DeleteCategory(id string) (Category, error) {
	i := idxCategory(tx.state.categories, id)
	if i < 0 {
		return Category{}, domain.NotFoundError{Entity: domain.EntityCategory, ID: id}
	}
	removed := cloneCategory(tx.state.categories[i])
	tx.state.categories = append(tx.state.categories[:i], tx.state.categories[i+1:]...)
	tx.recordChange(Change{Entity: domain.EntityCategory, Action: domain.ActionDelete, Before: cloneCategory(removed)})
	return removed, nil
}

// CreateTransaction stores a new bookkeeping transaction.
func (tx *transaction) CreateTransaction(t Transaction) (Transaction, error) {
	if err := t.Validate(); err != nil {
		return Transaction{}, err
	}
	if t.ID == "" {
		t.ID = domain.NewID(domain.EntityTransaction, tx.now)
	}
	if idxTransaction(tx.state.transactions, t.ID) >= 0 {
		return Transaction{}, fmt.Errorf("transaction %q already exists", t.ID)
	}
	t.CreatedAt = tx.now
	t.UpdatedAt = tx.now
	tx.state.transactions = append(tx.state.transactions, cloneTransaction(t))
	tx.recordChange(Change{Entity: domain.EntityTransaction, Action: domain.ActionCreate, After: cloneTransaction(t)})
	return cloneTransaction(t), nil
}

// UpdateTransaction mutates an existing bookkeeping transaction.
func (tx *transaction) UpdateTransaction(id string, mutator func(*Transaction) error) (Transaction, error) {
	i := idxTransaction(tx.state.transactions, id)
	if i < 0 {
		return Transaction{}, domain.NotFoundError{Entity: domain.EntityTransaction, ID: id}
	}
	before := cloneTransaction(tx.state.transactions[i])
	current := cloneTransaction(tx.state.transactions[i])
	if err := mutator(&current); err != nil {
		return Transaction{}, err
	}
	current.ID = id
	current.CreatedAt = before.CreatedAt
	if err := current.Validate(); err != nil {
		return Transaction{}, err
	}
	current.UpdatedAt = tx.now
	tx.state.transactions[i] = cloneTransaction(current)
	tx.recordChange(Change{Entity: domain.EntityTransaction, Action: domain.ActionUpdate, Before: before, After: cloneTransaction(current)})
	return cloneTransaction(current), nil
}

// DeleteTransaction splices a bookkeeping transaction out of state.
func (tx *transaction) DeleteTransaction(id string) (Transaction, error) {
	i := idxTransaction(tx.state.transactions, id)
	if i < 0 {
		return Transaction{}, domain.NotFoundError{Entity: domain.EntityTransaction, ID: id}
	}
	removed := cloneTransaction(tx.state.transactions[i])
	tx.state.transactions = append(tx.state.transactions[:i], tx.state.transactions[i+1:]...)
	tx.recordChange(Change{Entity: domain.EntityTransaction, Action: domain.ActionDelete, Before: cloneTransaction(removed)})
	return removed, nil
}

// CreateSalary stores a new salary record.
func (tx *transaction) CreateSalary(s Salary) (Salary, error) {
	if err := s.Validate(); err != nil {
		return Salary{}, err
	}
	if s.ID == "" {
		s.ID = domain.NewID(domain.EntitySalary, tx.now)
	}
	if idxSalary(tx.state.salaries, s.ID) >= 0 {
		return Salary{}, fmt.Errorf("salary %q already exists", s.ID)
	}
	s.CreatedAt = tx.now
	s.UpdatedAt = tx.now
	tx.state.salaries = append(tx.state.salaries, cloneSalary(s))
	tx.recordChange(Change{Entity: domain.EntitySalary, Action: domain.ActionCreate, After: cloneSalary(s)})
	return cloneSalary(s), nil
}

// UpdateSalary mutates an existing salary record.
func (tx *transaction) UpdateSalary(id string, mutator func(*Salary) error) (Salary, error) {
	i := idxSalary(tx.state.salaries, id)
	if i < 0 {
		return Salary{}, domain.NotFoundError{Entity: domain.EntitySalary, ID: id}
	}
	before := cloneSalary(tx.state.salaries[i])
	current := cloneSalary(tx.state.salaries[i])
	if err := mutator(&current); err != nil {
		return Salary{}, err
	}
	current.ID = id
	current.CreatedAt = before.CreatedAt
	if err := current.Validate(); err != nil {
		return Salary{}, err
	}
	current.UpdatedAt = tx.now
	tx.state.salaries[i] = cloneSalary(current)
	tx.recordChange(Change{Entity: domain.EntitySalary, Action: domain.ActionUpdate, Before: before, After: cloneSalary(current)})
	return cloneSalary(current), nil
}

// DeleteSalary splices a salary record out of state.
func (tx *transaction) DeleteSalary(id string) (Salary, error) {
	i := idxSalary(tx.state.salaries, id)
	if i < 0 {
		return Salary{}, domain.NotFoundError{Entity: domain.EntitySalary, ID: id}
	}
	removed := cloneSalary(tx.state.salaries[i])
	tx.state.salaries = append(tx.state.salaries[:i], tx.state.salaries[i+1:]...)
	tx.recordChange(Change{Entity: domain.EntitySalary, Action: domain.ActionDelete, Before: cloneSalary(removed)})
	return removed, nil
}

// CreateBonus stores a new bonus record.
func (tx *transaction) CreateBonus(b Bonus) (Bonus, error) {
	if err := b.Validate(); err != nil {
		return Bonus{}, err
	}
	if b.ID == "" {
		b.ID = domain.NewID(domain.EntityBonus, tx.now)
	}
	if idxBonus(tx.state.bonuses, b.ID) >= 0 {
		return Bonus{}, fmt.Errorf("bonus %q already exists", b.ID)
	}
	b.CreatedAt = tx.now
	b.UpdatedAt = tx.now
	tx.state.bonuses = append(tx.state.bonuses, cloneBonus(b))
	tx.recordChange(Change{Entity: domain.EntityBonus, Action: domain.ActionCreate, After: cloneBonus(b)})
	return cloneBonus(b), nil
}

// UpdateBonus mutates an existing bonus record.
func (tx *transaction) UpdateBonus(id string, mutator func(*Bonus) error) (Bonus, error) {
	i := idxBonus(tx.state.bonuses, id)
	if i < 0 {
		return Bonus{}, domain.NotFoundError{Entity: domain.EntityBonus, ID: id}
	}
	before := cloneBonus(tx.state.bonuses[i])
	current := cloneBonus(tx.state.bonuses[i])
	if err := mutator(&current); err != nil {
		return Bonus{}, err
	}
	current.ID = id
	current.CreatedAt = before.CreatedAt
	if err := current.Validate(); err != nil {
		return Bonus{}, err
	}
	current.UpdatedAt = tx.now
	tx.state.bonuses[i] = cloneBonus(current)
	tx.recordChange(Change{Entity: domain.EntityBonus, Action: domain.ActionUpdate, Before: before, After: cloneBonus(current)})
	return cloneBonus(current), nil
}

// DeleteBonus splices a bonus record out of state.
func (tx *transaction) DeleteBonus(id string) (Bonus, error) {
	i := idxBonus(tx.state.bonuses, id)
	if i < 0 {
		return Bonus{}, domain.NotFoundError{Entity: domain.EntityBonus, ID: id}
	}
	removed := cloneBonus(tx.state.bonuses[i])
	tx.state.bonuses = append(tx.state.bonuses[:i], tx.state.bonuses[i+1:]...)
	tx.recordChange(Change{Entity: domain.EntityBonus, Action: domain.ActionDelete, Before: cloneBonus(removed)})
	return removed, nil
}

// CreateCommission stores a new commission record.
func (tx *transaction) CreateCommission(c Commission) (Commission, error) {
	if err := c.Validate(); err != nil {
		return Commission{}, err
	}
	if c.ID == "" {
		c.ID = domain.NewID(domain.EntityCommission, tx.now)
	}
	if idxCommission(tx.state.commissions, c.ID) >= 0 {
		return Commission{}, fmt.Errorf("commission %q already exists", c.ID)
	}
	c.CreatedAt = tx.now
	c.UpdatedAt = tx.now
	tx.state.commissions = append(tx.state.commissions, cloneCommission(c))
	tx.recordChange(Change{Entity: domain.EntityCommission, Action: domain.ActionCreate, After: cloneCommission(c)})
	return cloneCommission(c), nil
}

// UpdateCommission mutates an existing commission record.
func (tx *transaction) UpdateCommission(id string, mutator func(*Commission) error) (Commission, error) {
	i := idxCommission(tx.state.commissions, id)
	if i < 0 {
		return Commission{}, domain.NotFoundError{Entity: domain.EntityCommission, ID: id}
	}
	before := cloneCommission(tx.state.commissions[i])
	current := cloneCommission(tx.state.commissions[i])
	if err := mutator(&current); err != nil {
		return Commission{}, err
	}
	current.ID = id
	current.CreatedAt = before.CreatedAt
	if err := current.Validate(); err != nil {
		return Commission{}, err
	}
	current.UpdatedAt = tx.now
	tx.state.commissions[i] = cloneCommission(current)
	tx.recordChange(Change{Entity: domain.EntityCommission, Action: domain.ActionUpdate, Before: before, After: cloneCommission(current)})
	return cloneCommission(current), nil
}

// DeleteCommission splices a commission record out of state.
func (tx *transaction) DeleteCommission(id string) (Commission, error) {
	i := idxCommission(tx.state.commissions, id)
	if i < 0 {
		return Commission{}, domain.NotFoundError{Entity: domain.EntityCommission, ID: id}
	}
	removed := cloneCommission(tx.state.commissions[i])
	tx.state.commissions = append(tx.state.commissions[:i], tx.state.commissions[i+1:]...)
	tx.recordChange(Change{Entity: domain.EntityCommission, Action: domain.ActionDelete, Before: cloneCommission(removed)})
	return removed, nil
}

// CreateCustomerTransaction stores a new customer transaction.
func (tx *transaction) CreateCustomerTransaction(t CustomerTransaction) (CustomerTransaction, error) {
	if err := t.Validate(); err != nil {
		return CustomerTransaction{}, err
	}
	if t.ID == "" {
		t.ID = domain.NewID(domain.EntityCustomerTransaction, tx.now)
	}
	if idxCustomerTransaction(tx.state.customerTransactions, t.ID) >= 0 {
		return CustomerTransaction{}, fmt.Errorf("customer transaction %q already exists", t.ID)
	}
	t.CreatedAt = tx.now
	t.UpdatedAt = tx.now
	tx.state.customerTransactions = append(tx.state.customerTransactions, cloneCustomerTransaction(t))
	tx.recordChange(Change{Entity: domain.EntityCustomerTransaction, Action: domain.ActionCreate, After: cloneCustomerTransaction(t)})
	return cloneCustomerTransaction(t), nil
}

// UpdateCustomerTransaction mutates an existing customer transaction.
func (tx *transaction) UpdateCustomerTransaction(id string, mutator func(*CustomerTransaction) error) (CustomerTransaction, error) {
	i := idxCustomerTransaction(tx.state.customerTransactions, id)
	if i < 0 {
		return CustomerTransaction{}, domain.NotFoundError{Entity: domain.EntityCustomerTransaction, ID: id}
	}
	before := cloneCustomerTransaction(tx.state.customerTransactions[i])
	current := cloneCustomerTransaction(tx.state.customerTransactions[i])
	if err := mutator(&current); err != nil {
		return CustomerTransaction{}, err
	}
	current.ID = id
	current.CreatedAt = before.CreatedAt
	if err := current.Validate(); err != nil {
		return CustomerTransaction{}, err
	}
	current.UpdatedAt = tx.now
	tx.state.customerTransactions[i] = cloneCustomerTransaction(current)
	tx.recordChange(Change{Entity: domain.EntityCustomerTransaction, Action: domain.ActionUpdate, Before: before, After: cloneCustomerTransaction(current)})
	return cloneCustomerTransaction(current), nil
}

// DeleteCustomerTransaction splices a customer transaction out of state.
func (tx *transaction) DeleteCustomerTransaction(id string) (CustomerTransaction, error) {
	i := idxCustomerTransaction(tx.state.customerTransactions, id)
	if i < 0 {
		return CustomerTransaction{}, domain.NotFoundError{Entity: domain.EntityCustomerTransaction, ID: id}
	}
	removed := cloneCustomerTransaction(tx.state.customerTransactions[i])
	tx.state.customerTransactions = append(tx.state.customerTransactions[:i], tx.state.customerTransactions[i+1:]...)
	tx.recordChange(Change{Entity: domain.EntityCustomerTransaction, Action: domain.ActionDelete, Before: cloneCustomerTransaction(removed)})
	return removed, nil
}

// CreateCustomerCount stores a new customer count snapshot.
func (tx *transaction) CreateCustomerCount(c CustomerCount) (CustomerCount, error) {
	if err := c.Validate(); err != nil {
		return CustomerCount{}, err
	}
	if c.ID == "" {
		c.ID = domain.NewID(domain.EntityCustomerCount, tx.now)
	}
	if idxCustomerCount(tx.state.customerCounts, c.ID) >= 0 {
		return CustomerCount{}, fmt.Errorf("customer count %q already exists", c.ID)
	}
	c.CreatedAt = tx.now
	c.UpdatedAt = tx.now
	tx.state.customerCounts = append(tx.state.customerCounts, cloneCustomerCount(c))
	tx.recordChange(Change{Entity: domain.EntityCustomerCount, Action: domain.ActionCreate, After: cloneCustomerCount(c)})
	return cloneCustomerCount(c), nil
}

// UpdateCustomerCount mutates an existing customer count snapshot.
func (tx *transaction) UpdateCustomerCount(id string, mutator func(*CustomerCount) error) (CustomerCount, error) {
	i := idxCustomerCount(tx.state.customerCounts, id)
	if i < 0 {
		return CustomerCount{}, domain.NotFoundError{Entity: domain.EntityCustomerCount, ID: id}
	}
	before := cloneCustomerCount(tx.state.customerCounts[i])
	current := cloneCustomerCount(tx.state.customerCounts[i])
	if err := mutator(&current); err != nil {
		return CustomerCount{}, err
	}
	current.ID = id
	current.CreatedAt = before.CreatedAt
	if err := current.Validate(); err != nil {
		return CustomerCount{}, err
	}
	current.UpdatedAt = tx.now
	tx.state.customerCounts[i] = cloneCustomerCount(current)
	tx.recordChange(Change{Entity: domain.EntityCustomerCount, Action: domain.ActionUpdate, Before: before, After: cloneCustomerCount(current)})
	return cloneCustomerCount(current), nil
}

// DeleteCustomerCount splices a customer count snapshot out of state.
func (tx *transaction) DeleteCustomerCount(id string) (CustomerCount, error) {
	i := idxCustomerCount(tx.state.customerCounts, id)
	if i < 0 {
		return CustomerCount{}, domain.NotFoundError{Entity: domain.EntityCustomerCount, ID: id}
	}
	removed := cloneCustomerCount(tx.state.customerCounts[i])
	tx.state.customerCounts = append(tx.state.customerCounts[:i], tx.state.customerCounts[i+1:]...)
	tx.recordChange(Change{Entity: domain.EntityCustomerCount, Action: domain.ActionDelete, Before: cloneCustomerCount(removed)})
	return removed, nil
}

// CreateUser stores a new user record.
func (tx *transaction) CreateUser(u User) (User, error) {
	if err := u.Validate(); err != nil {
		return User{}, err
	}
	if u.ID == "" {
		u.ID = domain.NewID(domain.EntityUser, tx.now)
	}
	if idxUser(tx.state.users, u.ID) >= 0 {
		return User{}, fmt.Errorf("user %q already exists", u.ID)
	}
	u.CreatedAt = tx.now
	u.UpdatedAt = tx.now
	tx.state.users = append(tx.state.users, cloneUser(u))
	tx.recordChange(Change{Entity: domain.EntityUser, Action: domain.ActionCreate, After: cloneUser(u)})
	return cloneUser(u), nil
}

// UpdateUser mutates an existing user record.
func (tx *transaction) UpdateUser(id string, mutator func(*User) error) (User, error) {
	i := idxUser(tx.state.users, id)
	if i < 0 {
		return User{}, domain.NotFoundError{Entity: domain.EntityUser, ID: id}
	}
	before := cloneUser(tx.state.users[i])
	current := cloneUser(tx.state.users[i])
	if err := mutator(&current); err != nil {
		return User{}, err
	}
	current.ID = id
	current.CreatedAt = before.CreatedAt
	if err := current.Validate(); err != nil {
		return User{}, err
	}
	current.UpdatedAt = tx.now
	tx.state.users[i] = cloneUser(current)
	tx.recordChange(Change{Entity: domain.EntityUser, Action: domain.ActionUpdate, Before: before, After: cloneUser(current)})
	return cloneUser(current), nil
}

// DeleteUser splices a user record out of state.
func (tx *transaction) DeleteUser(id string) (User, error) {
	i := idxUser(tx.state.users, id)
	if i < 0 {
		return User{}, domain.NotFoundError{Entity: domain.EntityUser, ID: id}
	}
	removed := cloneUser(tx.state.users[i])
	tx.state.users = append(tx.state.users[:i], tx.state.users[i+1:]...)
	tx.recordChange(Change{Entity: domain.EntityUser, Action: domain.ActionDelete, Before: cloneUser(removed)})
	return removed, nil
}

// CreateAuditLog appends an audit record. Audit entries are created by the
// service layer after each audited operation.
func (tx *transaction) CreateAuditLog(a AuditLog) (AuditLog, error) {
	if err := a.Validate(); err != nil {
		return AuditLog{}, err
	}
	if a.ID == "" {
		a.ID = domain.NewID(domain.EntityAuditLog, tx.now)
	}
	if idxAuditLog(tx.state.auditLogs, a.ID) >= 0 {
		return AuditLog{}, fmt.Errorf("audit log %q already exists", a.ID)
	}
	a.CreatedAt = tx.now
	a.UpdatedAt = tx.now
	tx.state.auditLogs = append(tx.state.auditLogs, cloneAuditLog(a))
	tx.recordChange(Change{Entity: domain.EntityAuditLog, Action: domain.ActionCreate, After: cloneAuditLog(a)})
	return cloneAuditLog(a), nil
}

// UpdateAuditLog mutates an existing audit record.
func (tx *transaction) UpdateAuditLog(id string, mutator func(*AuditLog) error) (AuditLog, error) {
	i := idxAuditLog(tx.state.auditLogs, id)
	if i < 0 {
		return AuditLog{}, domain.NotFoundError{Entity: domain.EntityAuditLog, ID: id}
	}
	before := cloneAuditLog(tx.state.auditLogs[i])
	current := cloneAuditLog(tx.state.auditLogs[i])
	if err := mutator(&current); err != nil {
		return AuditLog{}, err
	}
	current.ID = id
	current.CreatedAt = before.CreatedAt
	if err := current.Validate(); err != nil {
		return AuditLog{}, err
	}
	current.UpdatedAt = tx.now
	tx.state.auditLogs[i] = cloneAuditLog(current)
	tx.recordChange(Change{Entity: domain.EntityAuditLog, Action: domain.ActionUpdate, Before: before, After: cloneAuditLog(current)})
	return cloneAuditLog(current), nil
}

// DeleteAuditLog splices an audit record out of state.
func (tx *transaction) DeleteAuditLog(id string) (AuditLog, error) {
	i := idxAuditLog(tx.state.auditLogs, id)
	if i < 0 {
		return AuditLog{}, domain.NotFoundError{Entity: domain.EntityAuditLog, ID: id}
	}
	removed := cloneAuditLog(tx.state.auditLogs[i])
	tx.state.auditLogs = append(tx.state.auditLogs[:i], tx.state.auditLogs[i+1:]...)
	tx.recordChange(Change{Entity: domain.EntityAuditLog, Action: domain.ActionDelete, Before: cloneAuditLog(removed)})
	return removed, nil
}

// Committed-state read helpers. All return deep copies in insertion order.

func (s *Store) GetTeam(id string) (Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := idxTeam(s.state.teams, id); i >= 0 {
		return cloneTeam(s.state.teams[i]), true
	}
	return Team{}, false
}

func (s *Store) ListTeams() []Team {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.state.teams, cloneTeam)
}

func (s *Store) GetMember(id string) (Member, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := idxMember(s.state.members, id); i >= 0 {
		return cloneMember(s.state.members[i]), true
	}
	return Member{}, false
}

func (s *Store) ListMembers() []Member {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.state.members, cloneMember)
}

func (s *Store) GetCustomer(id string) (Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := idxCustomer(s.state.customers, id); i >= 0 {
		return cloneCustomer(s.state.customers[i]), true
	}
	return Customer{}, false
}

func (s *Store) ListCustomers() []Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.state.customers, cloneCustomer)
}

func (s *Store) GetCategory(id string) (Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := idxCategory(s.state.categories, id); i >= 0 {
		return cloneCategory(s.state.categories[i]), true
	}
	return Category{}, false
}

func (s *Store) ListCategories() []Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.state.categories, cloneCategory)
}

func (s *Store) GetTransaction(id string) (Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := idxTransaction(s.state.transactions, id); i >= 0 {
		return cloneTransaction(s.state.transactions[i]), true
	}
	return Transaction{}, false
}

func (s *Store) ListTransactions() []Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.state.transactions, cloneTransaction)
}

func (s *Store) GetSalary(id string) (Salary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := idxSalary(s.state.salaries, id); i >= 0 {
		return cloneSalary(s.state.salaries[i]), true
	}
	return Salary{}, false
}

func (s *Store) ListSalaries() []Salary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.state.salaries, cloneSalary)
}

func (s *Store) GetBonus(id string) (Bonus, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := idxBonus(s.state.bonuses, id); i >= 0 {
		return cloneBonus(s.state.bonuses[i]), true
	}
	return Bonus{}, false
}

func (s *Store) ListBonuses() []Bonus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.state.bonuses, cloneBonus)
}

func (s *Store) GetCommission(id string) (Commission, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := idxCommission(s.state.commissions, id); i >= 0 {
		return cloneCommission(s.state.commissions[i]), true
	}
	return Commission{}, false
}

func (s *Store) ListCommissions() []Commission {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.state.commissions, cloneCommission)
}

func (s *Store) GetCustomerTransaction(id string) (CustomerTransaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := idxCustomerTransaction(s.state.customerTransactions, id); i >= 0 {
		return cloneCustomerTransaction(s.state.customerTransactions[i]), true
	}
	return CustomerTransaction{}, false
}

func (s *Store) ListCustomerTransactions() []CustomerTransaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.state.customerTransactions, cloneCustomerTransaction)
}

func (s *Store) GetCustomerCount(id string) (CustomerCount, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := idxCustomerCount(s.state.customerCounts, id); i >= 0 {
		return cloneCustomerCount(s.state.customerCounts[i]), true
	}
	return CustomerCount{}, false
}

func (s *Store) ListCustomerCounts() []CustomerCount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.state.customerCounts, cloneCustomerCount)
}

func (s *Store) GetUser(id string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := idxUser(s.state.users, id); i >= 0 {
		return cloneUser(s.state.users[i]), true
	}
	return User{}, false
}

func (s *Store) ListUsers() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.state.users, cloneUser)
}

func (s *Store) ListAuditLogs() []AuditLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.state.auditLogs, cloneAuditLog)
}
