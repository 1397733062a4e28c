package core

import (
	"context"
	"fmt"

	"backcore/pkg/domain"
)

// NewCategoryFlowRule flags transactions whose flow direction disagrees with
// the flow of the category they are filed under. The mismatch is a warning;
// misclassified rows stay editable.
func NewCategoryFlowRule() domain.Rule {
	return categoryFlowRule{}
}

type categoryFlowRule struct{}

func (categoryFlowRule) Name() string { return "category_flow" }

func (categoryFlowRule) Evaluate(_ context.Context, view domain.RuleView, _ []domain.Change) (domain.Result, error) {
	res := domain.Result{}

	for _, txn := range view.ListTransactions() {
		if txn.CategoryID == "" {
			continue
		}
		category, ok := view.FindCategory(txn.CategoryID)
		if !ok {
			continue
		}
		if txn.Type != category.Type {
			res.Violations = append(res.Violations, domain.Violation{
				Rule:     "category_flow",
				Severity: domain.SeverityWarn,
				Message:  fmt.Sprintf("transaction %s is %s but category %s is %s", txn.ID, txn.Type, category.Name, category.Type),
				Entity:   domain.EntityTransaction,
				EntityID: txn.ID,
			})
		}
	}

	return res, nil
}
