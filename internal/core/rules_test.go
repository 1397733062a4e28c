package core

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"backcore/pkg/domain"
)

func defaultService() *Service {
	return NewInMemoryService(NewDefaultRulesEngine())
}

func warningsForRule(res Result, rule string) []Violation {
	var out []Violation
	for _, v := range res.Warnings() {
		if v.Rule == rule {
			out = append(out, v)
		}
	}
	return out
}

func TestDanglingReferenceWarnsButCommits(t *testing.T) {
	svc := defaultService()

	missingTeam := "team_gone"
	member, res, err := svc.CreateMember(context.Background(), Member{
		Name:   "Mira",
		TeamID: &missingTeam,
	})
	if err != nil {
		t.Fatalf("create member: %v", err)
	}

	warnings := warningsForRule(res, "dangling_reference")
	if len(warnings) != 1 {
		t.Fatalf("dangling warnings = %+v", res.Warnings())
	}
	if warnings[0].Entity != EntityMember || warnings[0].EntityID != member.ID {
		t.Fatalf("warning target = %+v", warnings[0])
	}
	if _, ok := svc.GetMember(member.ID); !ok {
		t.Fatalf("warned write was not committed")
	}
}

func TestDeleteTeamLeavesDanglingWarningsBehind(t *testing.T) {
	svc := defaultService()
	team := mustCreateTeam(t, svc, "Sales")

	if _, _, err := svc.CreateMember(context.Background(), Member{Name: "Mira", TeamID: &team.ID}); err != nil {
		t.Fatalf("create member: %v", err)
	}

	res, err := svc.DeleteTeam(context.Background(), team.ID)
	if err != nil {
		t.Fatalf("delete team: %v", err)
	}
	if len(warningsForRule(res, "dangling_reference")) != 1 {
		t.Fatalf("delete result warnings = %+v", res.Warnings())
	}
	if n := len(svc.ListMembers()); n != 1 {
		t.Fatalf("delete cascaded, members = %d", n)
	}
}

func TestCategoryFlowMismatchWarns(t *testing.T) {
	svc := defaultService()

	category, _, err := svc.CreateCategory(context.Background(), Category{
		Name: "Product Sales",
		Type: domain.FlowIncome,
	})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}

	txn, res, err := svc.CreateTransaction(context.Background(), Transaction{
		Title:      "Refund",
		Type:       domain.FlowExpense,
		Amount:     decimal.NewFromInt(120),
		CategoryID: category.ID,
		OccurredAt: time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create transaction: %v", err)
	}

	warnings := warningsForRule(res, "category_flow")
	if len(warnings) != 1 {
		t.Fatalf("flow warnings = %+v", res.Warnings())
	}
	if warnings[0].EntityID != txn.ID {
		t.Fatalf("warning id = %q, want %q", warnings[0].EntityID, txn.ID)
	}
}

func TestMatchingFlowProducesNoWarnings(t *testing.T) {
	svc := defaultService()

	category, _, err := svc.CreateCategory(context.Background(), Category{
		Name: "Rent",
		Type: domain.FlowExpense,
	})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}

	_, res, err := svc.CreateTransaction(context.Background(), Transaction{
		Title:      "September rent",
		Type:       domain.FlowExpense,
		Amount:     decimal.NewFromInt(900),
		CategoryID: category.ID,
		OccurredAt: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create transaction: %v", err)
	}
	if len(res.Warnings()) != 0 {
		t.Fatalf("unexpected warnings: %+v", res.Warnings())
	}
}

func TestRuleEvaluationErrorAbortsTransaction(t *testing.T) {
	engine := NewRulesEngine()
	engine.Register(failingRule{})
	svc := NewInMemoryService(engine)

	_, _, err := svc.CreateUser(context.Background(), User{Name: "U", Email: "u@example.com", Role: domain.RoleStaff})
	if err == nil {
		t.Fatalf("rule error swallowed")
	}
	if n := len(svc.ListUsers()); n != 0 {
		t.Fatalf("rule error committed %d users", n)
	}
}

type failingRule struct{}

func (failingRule) Name() string { return "failing" }

func (failingRule) Evaluate(context.Context, RuleView, []Change) (Result, error) {
	return Result{}, context.DeadlineExceeded
}
