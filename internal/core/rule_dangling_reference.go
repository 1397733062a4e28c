package core

import (
	"context"
	"fmt"

	"backcore/pkg/domain"
)

// NewDanglingReferenceRule reports records whose foreign keys point at ids
// that no longer exist. Deletes never cascade, so a dangling reference is a
// legal state; the rule surfaces it as a warning without blocking the write.
func NewDanglingReferenceRule() domain.Rule {
	return danglingReferenceRule{}
}

type danglingReferenceRule struct{}

func (danglingReferenceRule) Name() string { return "dangling_reference" }

func (danglingReferenceRule) Evaluate(_ context.Context, view domain.RuleView, _ []domain.Change) (domain.Result, error) {
	res := domain.Result{}

	teams := make(map[string]struct{})
	for _, t := range view.ListTeams() {
		teams[t.ID] = struct{}{}
	}
	members := make(map[string]struct{})
	for _, m := range view.ListMembers() {
		members[m.ID] = struct{}{}
	}
	customers := make(map[string]struct{})
	for _, c := range view.ListCustomers() {
		customers[c.ID] = struct{}{}
	}
	categories := make(map[string]struct{})
	for _, c := range view.ListCategories() {
		categories[c.ID] = struct{}{}
	}

	missing := func(index map[string]struct{}, id *string) bool {
		if id == nil || *id == "" {
			return false
		}
		_, ok := index[*id]
		return !ok
	}

	for _, m := range view.ListMembers() {
		if missing(teams, m.TeamID) {
			res.Violations = append(res.Violations, danglingViolation(domain.EntityMember, m.ID,
				fmt.Sprintf("member %s references missing team %s", m.ID, *m.TeamID)))
		}
	}
	for _, c := range view.ListCustomers() {
		if missing(teams, c.TeamID) {
			res.Violations = append(res.Violations, danglingViolation(domain.EntityCustomer, c.ID,
				fmt.Sprintf("customer %s references missing team %s", c.ID, *c.TeamID)))
		}
		if missing(members, c.MemberID) {
			res.Violations = append(res.Violations, danglingViolation(domain.EntityCustomer, c.ID,
				fmt.Sprintf("customer %s references missing member %s", c.ID, *c.MemberID)))
		}
	}
	for _, t := range view.ListTransactions() {
		if t.CategoryID != "" {
			if _, ok := categories[t.CategoryID]; !ok {
				res.Violations = append(res.Violations, danglingViolation(domain.EntityTransaction, t.ID,
					fmt.Sprintf("transaction %s references missing category %s", t.ID, t.CategoryID)))
			}
		}
		if missing(teams, t.TeamID) {
			res.Violations = append(res.Violations, danglingViolation(domain.EntityTransaction, t.ID,
				fmt.Sprintf("transaction %s references missing team %s", t.ID, *t.TeamID)))
		}
		if missing(members, t.MemberID) {
			res.Violations = append(res.Violations, danglingViolation(domain.EntityTransaction, t.ID,
				fmt.Sprintf("transaction %s references missing member %s", t.ID, *t.MemberID)))
		}
	}
	for _, s := range view.ListSalaries() {
		if _, ok := members[s.MemberID]; s.MemberID != "" && !ok {
			res.Violations = append(res.Violations, danglingViolation(domain.EntitySalary, s.ID,
				fmt.Sprintf("salary %s references missing member %s", s.ID, s.MemberID)))
		}
	}
	for _, b := range view.ListBonuses() {
		if _, ok := members[b.MemberID]; b.MemberID != "" && !ok {
			res.Violations = append(res.Violations, danglingViolation(domain.EntityBonus, b.ID,
				fmt.Sprintf("bonus %s references missing member %s", b.ID, b.MemberID)))
		}
	}
	for _, c := range view.ListCommissions() {
		if _, ok := members[c.MemberID]; c.MemberID != "" && !ok {
			res.Violations = append(res.Violations, danglingViolation(domain.EntityCommission, c.ID,
				fmt.Sprintf("commission %s references missing member %s", c.ID, c.MemberID)))
		}
	}
	for _, ct := range view.ListCustomerTransactions() {
		if _, ok := customers[ct.CustomerID]; ct.CustomerID != "" && !ok {
			res.Violations = append(res.Violations, danglingViolation(domain.EntityCustomerTransaction, ct.ID,
				fmt.Sprintf("customer transaction %s references missing customer %s", ct.ID, ct.CustomerID)))
		}
	}
	for _, cc := range view.ListCustomerCounts() {
		if missing(teams, cc.TeamID) {
			res.Violations = append(res.Violations, danglingViolation(domain.EntityCustomerCount, cc.ID,
				fmt.Sprintf("customer count %s references missing team %s", cc.ID, *cc.TeamID)))
		}
	}

	return res, nil
}

func danglingViolation(entity domain.EntityType, entityID, message string) domain.Violation {
	return domain.Violation{
		Rule:     "dangling_reference",
		Severity: domain.SeverityWarn,
		Message:  message,
		Entity:   entity,
		EntityID: entityID,
	}
}
