package core

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"backcore/pkg/domain"
)

// CategoryBreakdown aggregates the transactions filed under one category.
type CategoryBreakdown struct {
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Flow         domain.FlowType `json:"flow"`
	Total        decimal.Decimal `json:"total"`
	Count        int             `json:"count"`
}

// FinanceSummary totals transactions over a period.
type FinanceSummary struct {
	From       time.Time           `json:"from"`
	To         time.Time           `json:"to"`
	Income     decimal.Decimal     `json:"income"`
	Expense    decimal.Decimal     `json:"expense"`
	Net        decimal.Decimal     `json:"net"`
	Categories []CategoryBreakdown `json:"categories"`
}

// FinanceSummaryReport aggregates committed transactions with an occurrence
// time inside [from, to). A zero `to` means no upper bound.
func (s *Service) FinanceSummaryReport(from, to time.Time) FinanceSummary {
	summary := FinanceSummary{From: from, To: to}

	names := make(map[string]domain.Category)
	for _, c := range s.store.ListCategories() {
		names[c.ID] = c
	}

	byCategory := make(map[string]*CategoryBreakdown)
	var order []string
	for _, txn := range s.store.ListTransactions() {
		if txn.OccurredAt.Before(from) {
			continue
		}
		if !to.IsZero() && !txn.OccurredAt.Before(to) {
			continue
		}
		switch txn.Type {
		case domain.FlowIncome:
			summary.Income = summary.Income.Add(txn.Amount)
		case domain.FlowExpense:
			summary.Expense = summary.Expense.Add(txn.Amount)
		}
		entry, ok := byCategory[txn.CategoryID]
		if !ok {
			entry = &CategoryBreakdown{CategoryID: txn.CategoryID, Flow: txn.Type}
			if cat, found := names[txn.CategoryID]; found {
				entry.CategoryName = cat.Name
				entry.Flow = cat.Type
			}
			byCategory[txn.CategoryID] = entry
			order = append(order, txn.CategoryID)
		}
		entry.Total = entry.Total.Add(txn.Amount)
		entry.Count++
	}

	summary.Net = summary.Income.Sub(summary.Expense)
	summary.Categories = make([]CategoryBreakdown, 0, len(order))
	for _, id := range order {
		summary.Categories = append(summary.Categories, *byCategory[id])
	}
	return summary
}

// MemberPayroll aggregates payroll records for one member.
type MemberPayroll struct {
	MemberID      string          `json:"member_id"`
	MemberName    string          `json:"member_name"`
	BaseSalary    decimal.Decimal `json:"base_salary"`
	PaidTotal     decimal.Decimal `json:"paid_total"`
	PendingTotal  decimal.Decimal `json:"pending_total"`
	SalaryCount   int             `json:"salary_count"`
	BonusTotal    decimal.Decimal `json:"bonus_total"`
	CommissionSum decimal.Decimal `json:"commission_total"`
}

// PayrollSummary collects per-member payroll aggregates.
type PayrollSummary struct {
	Members      []MemberPayroll `json:"members"`
	PaidTotal    decimal.Decimal `json:"paid_total"`
	PendingTotal decimal.Decimal `json:"pending_total"`
}

// PayrollSummaryReport sums salaries, bonuses, and commissions per member.
// Cancelled records are excluded from both totals. Records referencing unknown
// members are aggregated under their stored member id with an empty name.
func (s *Service) PayrollSummaryReport() PayrollSummary {
	byMember := make(map[string]*MemberPayroll)
	var order []string
	entry := func(memberID string) *MemberPayroll {
		if e, ok := byMember[memberID]; ok {
			return e
		}
		e := &MemberPayroll{MemberID: memberID}
		byMember[memberID] = e
		order = append(order, memberID)
		return e
	}

	for _, m := range s.store.ListMembers() {
		e := entry(m.ID)
		e.MemberName = m.Name
		e.BaseSalary = m.BaseSalary
	}

	var summary PayrollSummary
	add := func(e *MemberPayroll, status domain.PayoutStatus, amount decimal.Decimal) {
		switch status {
		case domain.PayoutStatusPaid:
			e.PaidTotal = e.PaidTotal.Add(amount)
			summary.PaidTotal = summary.PaidTotal.Add(amount)
		case domain.PayoutStatusPending:
			e.PendingTotal = e.PendingTotal.Add(amount)
			summary.PendingTotal = summary.PendingTotal.Add(amount)
		}
	}

	for _, sal := range s.store.ListSalaries() {
		e := entry(sal.MemberID)
		e.SalaryCount++
		add(e, sal.Status, sal.Amount)
	}
	for _, b := range s.store.ListBonuses() {
		e := entry(b.MemberID)
		if b.Status != domain.PayoutStatusCancelled {
			e.BonusTotal = e.BonusTotal.Add(b.Amount)
		}
		add(e, b.Status, b.Amount)
	}
	for _, c := range s.store.ListCommissions() {
		e := entry(c.MemberID)
		if c.Status != domain.PayoutStatusCancelled {
			e.CommissionSum = e.CommissionSum.Add(c.Amount)
		}
		add(e, c.Status, c.Amount)
	}

	summary.Members = make([]MemberPayroll, 0, len(order))
	for _, id := range order {
		summary.Members = append(summary.Members, *byMember[id])
	}
	return summary
}

// GrowthPoint is one customer count snapshot in a growth series.
type GrowthPoint struct {
	RecordedAt       time.Time       `json:"recorded_at"`
	TeamID           *string         `json:"team_id,omitempty"`
	NewCustomers     int             `json:"new_customers"`
	DepositCustomers int             `json:"deposit_customers"`
	TotalCustomers   int             `json:"total_customers"`
	Expenses         decimal.Decimal `json:"expenses"`
}

// CustomerGrowthReport returns the recorded count snapshots ordered by
// recording time. The series reflects what was entered, not a recomputation
// from the customer collection.
func (s *Service) CustomerGrowthReport() []GrowthPoint {
	counts := s.store.ListCustomerCounts()
	points := make([]GrowthPoint, 0, len(counts))
	for _, c := range counts {
		points = append(points, GrowthPoint{
			RecordedAt:       c.RecordedAt,
			TeamID:           c.TeamID,
			NewCustomers:     c.NewCustomers,
			DepositCustomers: c.DepositCustomers,
			TotalCustomers:   c.TotalCustomers,
			Expenses:         c.Expenses,
		})
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].RecordedAt.Before(points[j].RecordedAt)
	})
	return points
}
