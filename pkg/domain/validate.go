package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Validate checks the fields a team record must carry.
func (t Team) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return required("team name")
	}
	if t.Budget.IsNegative() {
		return negativeAmount("team budget")
	}
	switch t.Color {
	case TeamColorBlue, TeamColorGreen, TeamColorOrange, TeamColorPurple, TeamColorRed, TeamColorTeal:
	default:
		return invalidEnum("team color", t.Color)
	}
	return nil
}

// NewTeam builds a validated team record. The id and timestamps are assigned
// by the store on create.
func NewTeam(name, description, leader string, budget decimal.Decimal, color TeamColor) (Team, error) {
	t := Team{Name: name, Description: description, Leader: leader, Budget: budget, Color: color}
	if err := t.Validate(); err != nil {
		return Team{}, err
	}
	return t, nil
}

// Validate checks the fields a member record must carry. TeamID is accepted
// without an existence check.
func (m Member) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return required("member name")
	}
	if m.BaseSalary.IsNegative() {
		return negativeAmount("member base salary")
	}
	return nil
}

// NewMember builds a validated member record.
func NewMember(name, email string, baseSalary decimal.Decimal, teamID *string) (Member, error) {
	m := Member{Name: name, Email: email, BaseSalary: baseSalary, TeamID: teamID}
	if err := m.Validate(); err != nil {
		return Member{}, err
	}
	return m, nil
}

// Validate checks the fields a customer record must carry. Team and member
// references are accepted without existence checks.
func (c Customer) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return required("customer name")
	}
	switch c.Type {
	case CustomerTypeNew, CustomerTypeDeposit, CustomerTypeExtension:
	default:
		return invalidEnum("customer type", c.Type)
	}
	switch c.Status {
	case CustomerStatusActive, CustomerStatusInactive, CustomerStatusBlacklist:
	default:
		return invalidEnum("customer status", c.Status)
	}
	if c.InitialAmount.IsNegative() {
		return negativeAmount("customer initial amount")
	}
	if c.ExtensionAmount != nil && c.ExtensionAmount.IsNegative() {
		return negativeAmount("customer extension amount")
	}
	return nil
}

// NewCustomer builds a validated customer record with status active.
func NewCustomer(name string, ctype CustomerType, initial decimal.Decimal) (Customer, error) {
	c := Customer{Name: name, Type: ctype, Status: CustomerStatusActive, InitialAmount: initial}
	if err := c.Validate(); err != nil {
		return Customer{}, err
	}
	return c, nil
}

// Validate checks the fields a category record must carry.
func (c Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return required("category name")
	}
	switch c.Type {
	case FlowIncome, FlowExpense:
	default:
		return invalidEnum("category type", c.Type)
	}
	if c.Budget.IsNegative() {
		return negativeAmount("category budget")
	}
	return nil
}

// NewCategory builds a validated category record.
func NewCategory(name string, flow FlowType, budget decimal.Decimal) (Category, error) {
	c := Category{Name: name, Type: flow, Budget: budget}
	if err := c.Validate(); err != nil {
		return Category{}, err
	}
	return c, nil
}

// Validate checks the fields a transaction record must carry. The category
// reference is accepted without an existence check; a mismatch between the
// transaction flow and its category flow is surfaced by rules, not here.
func (t Transaction) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return required("transaction title")
	}
	switch t.Type {
	case FlowIncome, FlowExpense:
	default:
		return invalidEnum("transaction type", t.Type)
	}
	if t.Amount.IsNegative() {
		return negativeAmount("transaction amount")
	}
	if strings.TrimSpace(t.CategoryID) == "" {
		return required("transaction category id")
	}
	return nil
}

// NewTransaction builds a validated transaction record.
func NewTransaction(title string, flow FlowType, amount decimal.Decimal, categoryID string, occurredAt time.Time) (Transaction, error) {
	t := Transaction{Title: title, Type: flow, Amount: amount, CategoryID: categoryID, OccurredAt: occurredAt}
	if err := t.Validate(); err != nil {
		return Transaction{}, err
	}
	return t, nil
}

func validPayoutStatus(s PayoutStatus) bool {
	switch s {
	case PayoutStatusPending, PayoutStatusPaid, PayoutStatusCancelled:
		return true
	}
	return false
}

// Validate checks the fields a salary record must carry.
func (s Salary) Validate() error {
	if strings.TrimSpace(s.MemberID) == "" {
		return required("salary member id")
	}
	if s.Amount.IsNegative() {
		return negativeAmount("salary amount")
	}
	if strings.TrimSpace(s.Month) == "" {
		return required("salary month")
	}
	if !validPayoutStatus(s.Status) {
		return invalidEnum("salary status", s.Status)
	}
	return nil
}

// NewSalary builds a validated pending salary record for a month in YYYY-MM
// form.
func NewSalary(memberID, month string, amount decimal.Decimal) (Salary, error) {
	s := Salary{MemberID: memberID, Month: month, Amount: amount, Status: PayoutStatusPending}
	if err := s.Validate(); err != nil {
		return Salary{}, err
	}
	return s, nil
}

// Validate checks the fields a bonus record must carry.
func (b Bonus) Validate() error {
	if strings.TrimSpace(b.MemberID) == "" {
		return required("bonus member id")
	}
	if b.Amount.IsNegative() {
		return negativeAmount("bonus amount")
	}
	if !validPayoutStatus(b.Status) {
		return invalidEnum("bonus status", b.Status)
	}
	return nil
}

// NewBonus builds a validated pending bonus record.
func NewBonus(memberID, reason string, amount decimal.Decimal, awardedAt time.Time) (Bonus, error) {
	b := Bonus{MemberID: memberID, Reason: reason, Amount: amount, AwardedAt: awardedAt, Status: PayoutStatusPending}
	if err := b.Validate(); err != nil {
		return Bonus{}, err
	}
	return b, nil
}

// Validate checks the fields a commission record must carry.
func (c Commission) Validate() error {
	if strings.TrimSpace(c.MemberID) == "" {
		return required("commission member id")
	}
	if c.Amount.IsNegative() {
		return negativeAmount("commission amount")
	}
	if c.SalesAmount.IsNegative() {
		return negativeAmount("commission sales amount")
	}
	if c.Percentage < 0 || c.Percentage > 100 {
		return &DomainError{Code: ErrCodeInvalidRange, Message: "commission percentage must be between 0 and 100"}
	}
	if !validPayoutStatus(c.Status) {
		return invalidEnum("commission status", c.Status)
	}
	return nil
}

// NewCommission builds a validated pending commission record. The amount is
// derived from the sales amount and percentage.
func NewCommission(memberID string, salesAmount decimal.Decimal, percentage float64, earnedAt time.Time) (Commission, error) {
	amount := salesAmount.Mul(decimal.NewFromFloat(percentage)).Div(decimal.NewFromInt(100))
	c := Commission{MemberID: memberID, Amount: amount, Percentage: percentage, SalesAmount: salesAmount, EarnedAt: earnedAt, Status: PayoutStatusPending}
	if err := c.Validate(); err != nil {
		return Commission{}, err
	}
	return c, nil
}

// Validate checks the fields a customer transaction record must carry. The
// customer reference is accepted without an existence check.
func (t CustomerTransaction) Validate() error {
	if strings.TrimSpace(t.CustomerID) == "" {
		return required("customer transaction customer id")
	}
	switch t.Kind {
	case MovementDeposit, MovementWithdrawal, MovementExtension:
	default:
		return invalidEnum("customer transaction kind", t.Kind)
	}
	if t.Amount.IsNegative() {
		return negativeAmount("customer transaction amount")
	}
	return nil
}

// NewCustomerTransaction builds a validated customer transaction record.
func NewCustomerTransaction(customerID string, kind CustomerMovementKind, amount decimal.Decimal, occurredAt time.Time) (CustomerTransaction, error) {
	t := CustomerTransaction{CustomerID: customerID, Kind: kind, Amount: amount, OccurredAt: occurredAt}
	if err := t.Validate(); err != nil {
		return CustomerTransaction{}, err
	}
	return t, nil
}

// Validate checks the fields a customer count record must carry.
func (c CustomerCount) Validate() error {
	if c.NewCustomers < 0 || c.DepositCustomers < 0 || c.TotalCustomers < 0 {
		return &DomainError{Code: ErrCodeInvalidRange, Message: "customer counts must not be negative"}
	}
	if c.Expenses.IsNegative() {
		return negativeAmount("customer count expenses")
	}
	if c.RecordedAt.IsZero() {
		return required("customer count recorded at")
	}
	return nil
}

// NewCustomerCount builds a validated customer count snapshot.
func NewCustomerCount(teamID *string, newCustomers, depositCustomers, total int, expenses decimal.Decimal, recordedAt time.Time) (CustomerCount, error) {
	c := CustomerCount{
		TeamID:           teamID,
		NewCustomers:     newCustomers,
		DepositCustomers: depositCustomers,
		TotalCustomers:   total,
		Expenses:         expenses,
		RecordedAt:       recordedAt,
	}
	if err := c.Validate(); err != nil {
		return CustomerCount{}, err
	}
	return c, nil
}

// Validate checks the fields a user record must carry.
func (u User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return required("user name")
	}
	if strings.TrimSpace(u.Email) == "" {
		return required("user email")
	}
	switch u.Role {
	case RoleAdmin, RoleManager, RoleStaff:
	default:
		return invalidEnum("user role", u.Role)
	}
	return nil
}

// NewUser builds a validated active user record.
func NewUser(name, email string, role UserRole) (User, error) {
	u := User{Name: name, Email: email, Role: role, Active: true}
	if err := u.Validate(); err != nil {
		return User{}, err
	}
	return u, nil
}

// Validate checks the fields an audit log record must carry.
func (a AuditLog) Validate() error {
	if strings.TrimSpace(a.Operation) == "" {
		return required("audit operation")
	}
	switch a.Status {
	case AuditStatusSuccess, AuditStatusError:
	default:
		return invalidEnum("audit status", a.Status)
	}
	return nil
}
