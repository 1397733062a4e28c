package core

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"backcore/pkg/domain"
)

// SampleDataSummary reports what a seeding run produced.
type SampleDataSummary struct {
	AlreadySeeded        bool
	Teams                int
	Members              int
	Customers            int
	Categories           int
	Transactions         int
	Salaries             int
	Bonuses              int
	Commissions          int
	CustomerTransactions int
	CustomerCounts       int
	Users                int
}

func money(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(fmt.Sprintf("bad fixture amount %q: %v", s, err))
	}
	return d
}

// LoadSampleData fills an unseeded store with a small coherent dataset in one
// transaction. Re-running against a seeded store is a no-op.
func (s *Service) LoadSampleData(ctx context.Context) (SampleDataSummary, error) {
	if meta := s.store.Meta(); meta.SeededAt != nil {
		s.logger.Info("sample data already loaded", "seeded_at", meta.SeededAt.Format(time.RFC3339))
		return SampleDataSummary{AlreadySeeded: true}, nil
	}

	now := s.nowFn()
	var summary SampleDataSummary

	_, err := s.store.RunInTransaction(ctx, func(tx domain.Tx) error {
		sales, err := tx.CreateTeam(domain.Team{Name: "Sales", Description: "Customer acquisition and renewals", Leader: "Mira Chen", Budget: money("50000"), Color: domain.TeamColorBlue})
		if err != nil {
			return err
		}
		ops, err := tx.CreateTeam(domain.Team{Name: "Operations", Description: "Back office and fulfilment", Leader: "Jonas Weber", Budget: money("30000"), Color: domain.TeamColorGreen})
		if err != nil {
			return err
		}
		support, err := tx.CreateTeam(domain.Team{Name: "Support", Description: "Customer care", Leader: "Elif Demir", Budget: money("20000"), Color: domain.TeamColorPurple})
		if err != nil {
			return err
		}
		summary.Teams = 3

		mira, err := tx.CreateMember(domain.Member{Name: "Mira Chen", Email: "mira@backcore.example", Phone: "555-0101", BaseSalary: money("5200"), TeamID: &sales.ID, BankName: "First National", BankAccount: "DE44100100100532013000"})
		if err != nil {
			return err
		}
		jonas, err := tx.CreateMember(domain.Member{Name: "Jonas Weber", Email: "jonas@backcore.example", Phone: "555-0102", BaseSalary: money("4800"), TeamID: &ops.ID})
		if err != nil {
			return err
		}
		summary.Members = 2

		custNames := []struct {
			name    string
			ctype   domain.CustomerType
			initial string
			team    *string
			member  *string
		}{
			{"Acme Trading", domain.CustomerTypeNew, "12000", &sales.ID, &mira.ID},
			{"Delta Logistics", domain.CustomerTypeDeposit, "8000", &ops.ID, &jonas.ID},
		}
		customers := make([]domain.Customer, 0, len(custNames))
		for _, c := range custNames {
			created, err := tx.CreateCustomer(domain.Customer{Name: c.name, Type: c.ctype, Status: domain.CustomerStatusActive, InitialAmount: money(c.initial), TeamID: c.team, MemberID: c.member})
			if err != nil {
				return err
			}
			customers = append(customers, created)
		}
		summary.Customers = len(customers)

		categorySeed := []struct {
			name string
			flow domain.FlowType
		}{
			{"Product Sales", domain.FlowIncome},
			{"Service Fees", domain.FlowIncome},
			{"Renewals", domain.FlowIncome},
			{"Interest", domain.FlowIncome},
			{"Other Income", domain.FlowIncome},
			{"Payroll", domain.FlowExpense},
			{"Rent", domain.FlowExpense},
			{"Marketing", domain.FlowExpense},
			{"Software", domain.FlowExpense},
			{"Travel", domain.FlowExpense},
		}
		categories := make([]domain.Category, 0, len(categorySeed))
		for _, c := range categorySeed {
			created, err := tx.CreateCategory(domain.Category{Name: c.name, Type: c.flow, Budget: money("10000")})
			if err != nil {
				return err
			}
			categories = append(categories, created)
		}
		summary.Categories = len(categories)

		txnSeed := []struct {
			title    string
			flow     domain.FlowType
			amount   string
			category int
			team     *string
			member   *string
			daysAgo  int
		}{
			{"Q3 product order", domain.FlowIncome, "9400", 0, &sales.ID, &mira.ID, 21},
			{"Consulting retainer", domain.FlowIncome, "3200", 1, &sales.ID, &mira.ID, 18},
			{"Contract renewal", domain.FlowIncome, "5100", 2, &sales.ID, &mira.ID, 14},
			{"Deposit interest", domain.FlowIncome, "240", 3, nil, nil, 10},
			{"September payroll", domain.FlowExpense, "18600", 5, nil, nil, 7},
			{"Office rent", domain.FlowExpense, "4200", 6, &ops.ID, &jonas.ID, 6},
			{"Ad campaign", domain.FlowExpense, "1500", 7, &sales.ID, &mira.ID, 4},
			{"CRM subscription", domain.FlowExpense, "380", 8, &support.ID, nil, 2},
		}
		for _, t := range txnSeed {
			if _, err := tx.CreateTransaction(domain.Transaction{
				Title:      t.title,
				Amount:     money(t.amount),
				Type:       t.flow,
				CategoryID: categories[t.category].ID,
				TeamID:     t.team,
				MemberID:   t.member,
				OccurredAt: now.AddDate(0, 0, -t.daysAgo),
			}); err != nil {
				return err
			}
		}
		summary.Transactions = len(txnSeed)

		month := now.AddDate(0, -1, 0).Format("2006-01")
		salarySeed := []struct {
			member string
			amount string
			status domain.PayoutStatus
		}{
			{mira.ID, "5200", domain.PayoutStatusPaid},
			{jonas.ID, "4800", domain.PayoutStatusPaid},
			{mira.ID, "5200", domain.PayoutStatusCancelled},
			{jonas.ID, "4800", domain.PayoutStatusPending},
			{mira.ID, "5200", domain.PayoutStatusPending},
		}
		for i, sal := range salarySeed {
			record := domain.Salary{MemberID: sal.member, Amount: money(sal.amount), Month: month, Status: sal.status}
			if i == len(salarySeed)-1 {
				record.Month = now.Format("2006-01")
			}
			if sal.status == domain.PayoutStatusPaid {
				paidAt := now.AddDate(0, 0, -7)
				record.PaidAt = &paidAt
			}
			if _, err := tx.CreateSalary(record); err != nil {
				return err
			}
		}
		summary.Salaries = len(salarySeed)

		bonusSeed := []struct {
			member string
			amount string
			reason string
			status domain.PayoutStatus
		}{
			{mira.ID, "800", "Top quarterly revenue", domain.PayoutStatusPaid},
			{jonas.ID, "500", "New customer record", domain.PayoutStatusPaid},
			{jonas.ID, "400", "Process automation", domain.PayoutStatusPending},
			{mira.ID, "350", "Customer satisfaction score", domain.PayoutStatusPending},
			{mira.ID, "600", "Renewal streak", domain.PayoutStatusPending},
		}
		for _, b := range bonusSeed {
			if _, err := tx.CreateBonus(domain.Bonus{MemberID: b.member, Amount: money(b.amount), Reason: b.reason, AwardedAt: now.AddDate(0, 0, -12), Status: b.status}); err != nil {
				return err
			}
		}
		summary.Bonuses = len(bonusSeed)

		commissionSeed := []struct {
			member     string
			sales      string
			percentage float64
			status     domain.PayoutStatus
		}{
			{mira.ID, "9400", 5, domain.PayoutStatusPaid},
			{jonas.ID, "3200", 4, domain.PayoutStatusPaid},
			{mira.ID, "5100", 5, domain.PayoutStatusPending},
			{jonas.ID, "2600", 4, domain.PayoutStatusPending},
			{mira.ID, "1200", 3, domain.PayoutStatusPending},
		}
		for _, c := range commissionSeed {
			salesAmount := money(c.sales)
			amount := salesAmount.Mul(decimal.NewFromFloat(c.percentage)).Div(decimal.NewFromInt(100))
			if _, err := tx.CreateCommission(domain.Commission{MemberID: c.member, Amount: amount, Percentage: c.percentage, SalesAmount: salesAmount, EarnedAt: now.AddDate(0, 0, -9), Status: c.status}); err != nil {
				return err
			}
		}
		summary.Commissions = len(commissionSeed)

		movementSeed := []struct {
			customer int
			kind     domain.CustomerMovementKind
			amount   string
			daysAgo  int
		}{
			{0, domain.MovementDeposit, "12000", 20},
			{1, domain.MovementDeposit, "8000", 16},
			{1, domain.MovementExtension, "5000", 11},
			{0, domain.MovementWithdrawal, "1500", 3},
		}
		for _, m := range movementSeed {
			if _, err := tx.CreateCustomerTransaction(domain.CustomerTransaction{
				CustomerID: customers[m.customer].ID,
				Kind:       m.kind,
				Amount:     money(m.amount),
				OccurredAt: now.AddDate(0, 0, -m.daysAgo),
			}); err != nil {
				return err
			}
		}
		summary.CustomerTransactions = len(movementSeed)

		countSeed := []struct {
			team     *string
			newCust  int
			deposits int
			total    int
			expenses string
			daysAgo  int
		}{
			{&sales.ID, 2, 1, 3, "900", 30},
			{&sales.ID, 1, 1, 4, "1100", 14},
			{&support.ID, 0, 1, 1, "300", 7},
		}
		for _, c := range countSeed {
			if _, err := tx.CreateCustomerCount(domain.CustomerCount{
				TeamID:           c.team,
				NewCustomers:     c.newCust,
				DepositCustomers: c.deposits,
				TotalCustomers:   c.total,
				Expenses:         money(c.expenses),
				RecordedAt:       now.AddDate(0, 0, -c.daysAgo),
			}); err != nil {
				return err
			}
		}
		summary.CustomerCounts = len(countSeed)

		if _, err := tx.CreateUser(domain.User{Name: "Admin", Email: "admin@backcore.example", Role: domain.RoleAdmin, Active: true}); err != nil {
			return err
		}
		if _, err := tx.CreateUser(domain.User{Name: "Viewer", Email: "viewer@backcore.example", Role: domain.RoleStaff, Active: true}); err != nil {
			return err
		}
		summary.Users = 2

		return nil
	})
	if err != nil {
		return SampleDataSummary{}, fmt.Errorf("load sample data: %w", err)
	}

	if err := s.store.MarkSeeded(now); err != nil {
		return SampleDataSummary{}, fmt.Errorf("mark seeded: %w", err)
	}
	s.logger.Info("sample data loaded",
		"teams", summary.Teams,
		"members", summary.Members,
		"customers", summary.Customers,
		"transactions", summary.Transactions)
	return summary, nil
}
