package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNewTeamValidation(t *testing.T) {
	cases := []struct {
		name     string
		teamName string
		budget   decimal.Decimal
		color    TeamColor
		wantCode string
	}{
		{"valid", "Sales", decimal.NewFromInt(1000), TeamColorBlue, ""},
		{"blank name", "   ", decimal.NewFromInt(1000), TeamColorBlue, ErrCodeRequired},
		{"negative budget", "Sales", decimal.NewFromInt(-1), TeamColorBlue, ErrCodeNegativeAmount},
		{"unknown color", "Sales", decimal.NewFromInt(1000), TeamColor("magenta"), ErrCodeInvalidEnum},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewTeam(c.teamName, "", "lead", c.budget, c.color)
			assertDomainErrCode(t, err, c.wantCode)
		})
	}
}

func TestNewCustomerDefaultsToActive(t *testing.T) {
	c, err := NewCustomer("Acme GmbH", CustomerTypeNew, decimal.NewFromInt(500))
	if err != nil {
		t.Fatalf("NewCustomer: %v", err)
	}
	if c.Status != CustomerStatusActive {
		t.Fatalf("status = %q, want active", c.Status)
	}
}

func TestCustomerValidationRejectsBadEnums(t *testing.T) {
	c := Customer{Name: "Acme", Type: CustomerType("walkin"), Status: CustomerStatusActive}
	assertDomainErrCode(t, c.Validate(), ErrCodeInvalidEnum)

	c = Customer{Name: "Acme", Type: CustomerTypeNew, Status: CustomerStatus("gone")}
	assertDomainErrCode(t, c.Validate(), ErrCodeInvalidEnum)

	neg := decimal.NewFromInt(-5)
	c = Customer{Name: "Acme", Type: CustomerTypeNew, Status: CustomerStatusActive, ExtensionAmount: &neg}
	assertDomainErrCode(t, c.Validate(), ErrCodeNegativeAmount)
}

func TestNewTransactionRequiresCategory(t *testing.T) {
	_, err := NewTransaction("Office rent", FlowExpense, decimal.NewFromInt(900), "", time.Now())
	assertDomainErrCode(t, err, ErrCodeRequired)

	_, err = NewTransaction("Office rent", FlowType("sideways"), decimal.NewFromInt(900), "cat_1", time.Now())
	assertDomainErrCode(t, err, ErrCodeInvalidEnum)
}

func TestNewSalaryStartsPending(t *testing.T) {
	s, err := NewSalary("mem_1", "2026-08", decimal.NewFromInt(3200))
	if err != nil {
		t.Fatalf("NewSalary: %v", err)
	}
	if s.Status != PayoutStatusPending {
		t.Fatalf("status = %q, want pending", s.Status)
	}
	if s.PaidAt != nil {
		t.Fatalf("PaidAt set on new salary")
	}
}

func TestNewCommissionDerivesAmount(t *testing.T) {
	c, err := NewCommission("mem_1", decimal.NewFromInt(20000), 2.5, time.Now())
	if err != nil {
		t.Fatalf("NewCommission: %v", err)
	}
	want := decimal.NewFromInt(500)
	if !c.Amount.Equal(want) {
		t.Fatalf("amount = %s, want %s", c.Amount, want)
	}
}

func TestCommissionPercentageRange(t *testing.T) {
	_, err := NewCommission("mem_1", decimal.NewFromInt(100), 101, time.Now())
	assertDomainErrCode(t, err, ErrCodeInvalidRange)
	_, err = NewCommission("mem_1", decimal.NewFromInt(100), -0.1, time.Now())
	assertDomainErrCode(t, err, ErrCodeInvalidRange)
}

func TestCustomerCountValidation(t *testing.T) {
	_, err := NewCustomerCount(nil, -1, 0, 0, decimal.Zero, time.Now())
	assertDomainErrCode(t, err, ErrCodeInvalidRange)

	_, err = NewCustomerCount(nil, 1, 1, 2, decimal.Zero, time.Time{})
	assertDomainErrCode(t, err, ErrCodeRequired)
}

func TestNewUserStartsActive(t *testing.T) {
	u, err := NewUser("Admin", "admin@example.com", RoleAdmin)
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}
	if !u.Active {
		t.Fatalf("new user inactive")
	}
	_, err = NewUser("Admin", "admin@example.com", UserRole("root"))
	assertDomainErrCode(t, err, ErrCodeInvalidEnum)
}

func TestAuditLogValidation(t *testing.T) {
	a := AuditLog{Operation: "create_team", Status: AuditStatusSuccess}
	if err := a.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	a.Status = AuditStatus("maybe")
	assertDomainErrCode(t, a.Validate(), ErrCodeInvalidEnum)
}

func assertDomainErrCode(t *testing.T, err error, wantCode string) {
	t.Helper()
	if wantCode == "" {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return
	}
	var de *DomainError
	if !errors.As(err, &de) {
		t.Fatalf("error %v is not a DomainError", err)
	}
	if de.Code != wantCode {
		t.Fatalf("code = %q, want %q", de.Code, wantCode)
	}
}
