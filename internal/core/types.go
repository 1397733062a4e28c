package core

import "backcore/pkg/domain"

type (
	EntityType          = domain.EntityType
	Severity            = domain.Severity
	Base                = domain.Base
	Team                = domain.Team
	Member              = domain.Member
	Customer            = domain.Customer
	Category            = domain.Category
	Transaction         = domain.Transaction
	Salary              = domain.Salary
	Bonus               = domain.Bonus
	Commission          = domain.Commission
	CustomerTransaction = domain.CustomerTransaction
	CustomerCount       = domain.CustomerCount
	User                = domain.User
	AuditLog            = domain.AuditLog
	Change              = domain.Change
	Action              = domain.Action
	Violation           = domain.Violation
	Result              = domain.Result
	RuleViolationError  = domain.RuleViolationError
	Rule                = domain.Rule
	RulesEngine         = domain.RulesEngine
	RuleView            = domain.RuleView
	Tx                  = domain.Tx
	PersistentStore     = domain.PersistentStore
	StoreMeta           = domain.StoreMeta
)

const (
	EntityTeam                = domain.EntityTeam
	EntityMember              = domain.EntityMember
	EntityCustomer            = domain.EntityCustomer
	EntityCategory            = domain.EntityCategory
	EntityTransaction         = domain.EntityTransaction
	EntitySalary              = domain.EntitySalary
	EntityBonus               = domain.EntityBonus
	EntityCommission          = domain.EntityCommission
	EntityCustomerTransaction = domain.EntityCustomerTransaction
	EntityCustomerCount       = domain.EntityCustomerCount
	EntityUser                = domain.EntityUser
	EntityAuditLog            = domain.EntityAuditLog
)

const (
	SeverityBlock = domain.SeverityBlock
	SeverityWarn  = domain.SeverityWarn
	SeverityLog   = domain.SeverityLog
)

const (
	ActionCreate = domain.ActionCreate
	ActionUpdate = domain.ActionUpdate
	ActionDelete = domain.ActionDelete
)
