package core

import (
	"context"
	"testing"

	"backcore/pkg/domain"
)

func TestLoadSampleDataCounts(t *testing.T) {
	svc := NewInMemoryService(NewDefaultRulesEngine())

	summary, err := svc.LoadSampleData(context.Background())
	if err != nil {
		t.Fatalf("load sample data: %v", err)
	}
	if summary.AlreadySeeded {
		t.Fatalf("fresh store reported as seeded")
	}

	checks := []struct {
		name string
		got  int
		want int
	}{
		{"teams", len(svc.ListTeams()), summary.Teams},
		{"members", len(svc.ListMembers()), summary.Members},
		{"customers", len(svc.ListCustomers()), summary.Customers},
		{"categories", len(svc.ListCategories()), summary.Categories},
		{"transactions", len(svc.ListTransactions()), summary.Transactions},
		{"salaries", len(svc.ListSalaries()), summary.Salaries},
		{"bonuses", len(svc.ListBonuses()), summary.Bonuses},
		{"commissions", len(svc.ListCommissions()), summary.Commissions},
		{"customer transactions", len(svc.ListCustomerTransactions()), summary.CustomerTransactions},
		{"customer counts", len(svc.ListCustomerCounts()), summary.CustomerCounts},
		{"users", len(svc.ListUsers()), summary.Users},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Fatalf("%s: stored %d, summary says %d", c.name, c.got, c.want)
		}
		if c.got == 0 {
			t.Fatalf("%s: sample data left collection empty", c.name)
		}
	}

	if svc.Meta().SeededAt == nil {
		t.Fatalf("seed marker not set")
	}
}

func TestLoadSampleDataFixtureCounts(t *testing.T) {
	svc := NewInMemoryService(NewDefaultRulesEngine())
	summary, err := svc.LoadSampleData(context.Background())
	if err != nil {
		t.Fatalf("load sample data: %v", err)
	}

	want := SampleDataSummary{
		Teams:                3,
		Members:              2,
		Customers:            2,
		Categories:           10,
		Transactions:         8,
		Salaries:             5,
		Bonuses:              5,
		Commissions:          5,
		CustomerTransactions: 4,
		CustomerCounts:       3,
		Users:                2,
	}
	if summary != want {
		t.Fatalf("fixture counts = %+v, want %+v", summary, want)
	}

	incomes, expenses := 0, 0
	for _, c := range svc.ListCategories() {
		switch c.Type {
		case domain.FlowIncome:
			incomes++
		case domain.FlowExpense:
			expenses++
		}
	}
	if incomes != 5 || expenses != 5 {
		t.Fatalf("category split = %d income / %d expense, want 5/5", incomes, expenses)
	}
}

func TestReseedAfterResetProducesSameCountsNewIDs(t *testing.T) {
	svc := NewInMemoryService(NewDefaultRulesEngine())
	ctx := context.Background()

	first, err := svc.LoadSampleData(ctx)
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	firstIDs := make(map[string]bool)
	for _, team := range svc.ListTeams() {
		firstIDs[team.ID] = true
	}
	for _, m := range svc.ListMembers() {
		firstIDs[m.ID] = true
	}

	if err := svc.ResetAllData(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	second, err := svc.LoadSampleData(ctx)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if second.AlreadySeeded {
		t.Fatalf("reset store still reported as seeded")
	}
	if second != first {
		t.Fatalf("reseed counts drifted: %+v vs %+v", second, first)
	}
	for _, team := range svc.ListTeams() {
		if firstIDs[team.ID] {
			t.Fatalf("reseed reused team id %s", team.ID)
		}
	}
	for _, m := range svc.ListMembers() {
		if firstIDs[m.ID] {
			t.Fatalf("reseed reused member id %s", m.ID)
		}
	}
}

func TestLoadSampleDataReferencesResolve(t *testing.T) {
	svc := NewInMemoryService(NewDefaultRulesEngine())
	if _, err := svc.LoadSampleData(context.Background()); err != nil {
		t.Fatalf("load sample data: %v", err)
	}

	teams := make(map[string]bool)
	for _, team := range svc.ListTeams() {
		teams[team.ID] = true
	}
	members := make(map[string]bool)
	for _, m := range svc.ListMembers() {
		members[m.ID] = true
		if m.TeamID != nil && !teams[*m.TeamID] {
			t.Fatalf("member %s references unknown team %s", m.ID, *m.TeamID)
		}
	}
	categories := make(map[string]bool)
	for _, c := range svc.ListCategories() {
		categories[c.ID] = true
	}
	for _, txn := range svc.ListTransactions() {
		if !categories[txn.CategoryID] {
			t.Fatalf("transaction %s references unknown category %s", txn.ID, txn.CategoryID)
		}
	}
	for _, sal := range svc.ListSalaries() {
		if !members[sal.MemberID] {
			t.Fatalf("salary %s references unknown member %s", sal.ID, sal.MemberID)
		}
	}
	customers := make(map[string]bool)
	for _, c := range svc.ListCustomers() {
		customers[c.ID] = true
	}
	for _, ct := range svc.ListCustomerTransactions() {
		if !customers[ct.CustomerID] {
			t.Fatalf("movement %s references unknown customer %s", ct.ID, ct.CustomerID)
		}
	}
}

func TestLoadSampleDataIsIdempotent(t *testing.T) {
	svc := NewInMemoryService(NewDefaultRulesEngine())
	if _, err := svc.LoadSampleData(context.Background()); err != nil {
		t.Fatalf("first load: %v", err)
	}
	teams := len(svc.ListTeams())

	summary, err := svc.LoadSampleData(context.Background())
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if !summary.AlreadySeeded {
		t.Fatalf("second load did not report AlreadySeeded")
	}
	if got := len(svc.ListTeams()); got != teams {
		t.Fatalf("second load changed team count: %d -> %d", teams, got)
	}
}
