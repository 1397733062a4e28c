package core

import (
	"context"

	"backcore/pkg/domain"
)

// CreateTeam persists a new team.
func (s *Service) CreateTeam(ctx context.Context, team Team) (Team, Result, error) {
	var created Team
	res, err := s.runMutation(ctx, "create_team", &created.ID, func(tx domain.Tx) error {
		var err error
		created, err = tx.CreateTeam(team)
		return err
	})
	return created, res, err
}

// UpdateTeam mutates a team using the provided mutator.
func (s *Service) UpdateTeam(ctx context.Context, id string, mutator func(*Team) error) (Team, Result, error) {
	var updated Team
	res, err := s.runMutation(ctx, "update_team", &id, func(tx domain.Tx) error {
		var err error
		updated, err = tx.UpdateTeam(id, mutator)
		return err
	})
	return updated, res, err
}

// DeleteTeam removes a team record. Members referencing it keep their team id.
func (s *Service) DeleteTeam(ctx context.Context, id string) (Result, error) {
	return s.runMutation(ctx, "delete_team", &id, func(tx domain.Tx) error {
		_, err := tx.DeleteTeam(id)
		return err
	})
}

// CreateMember persists a new member.
func (s *Service) CreateMember(ctx context.Context, member Member) (Member, Result, error) {
	var created Member
	res, err := s.runMutation(ctx, "create_member", &created.ID, func(tx domain.Tx) error {
		var err error
		created, err = tx.CreateMember(member)
		return err
	})
	return created, res, err
}

// UpdateMember mutates a member.
func (s *Service) UpdateMember(ctx context.Context, id string, mutator func(*Member) error) (Member, Result, error) {
	var updated Member
	res, err := s.runMutation(ctx, "update_member", &id, func(tx domain.Tx) error {
		var err error
		updated, err = tx.UpdateMember(id, mutator)
		return err
	})
	return updated, res, err
}

// DeleteMember removes a member record.
func (s *Service) DeleteMember(ctx context.Context, id string) (Result, error) {
	return s.runMutation(ctx, "delete_member", &id, func(tx domain.Tx) error {
		_, err := tx.DeleteMember(id)
		return err
	})
}

// CreateCustomer persists a new customer.
func (s *Service) CreateCustomer(ctx context.Context, customer Customer) (Customer, Result, error) {
	var created Customer
	res, err := s.runMutation(ctx, "create_customer", &created.ID, func(tx domain.Tx) error {
		var err error
		created, err = tx.CreateCustomer(customer)
		return err
	})
	return created, res, err
}

// UpdateCustomer mutates a customer.
func (s *Service) UpdateCustomer(ctx context.Context, id string, mutator func(*Customer) error) (Customer, Result, error) {
	var updated Customer
	res, err := s.runMutation(ctx, "update_customer", &id, func(tx domain.Tx) error {
		var err error
		updated, err = tx.UpdateCustomer(id, mutator)
		return err
	})
	return updated, res, err
}

// DeleteCustomer removes a customer record.
func (s *Service) DeleteCustomer(ctx context.Context, id string) (Result, error) {
	return s.runMutation(ctx, "delete_customer", &id, func(tx domain.Tx) error {
		_, err := tx.DeleteCustomer(id)
		return err
	})
}

// CreateCategory persists a new category.
func (s *Service) CreateCategory(ctx context.Context, category Category) (Category, Result, error) {
	var created Category
	res, err := s.runMutation(ctx, "create_category", &created.ID, func(tx domain.Tx) error {
		var err error
		created, err = tx.CreateCategory(category)
		return err
	})
	return created, res, err
}

// UpdateCategory mutates a category.
func (s *Service) UpdateCategory(ctx context.Context, id string, mutator func(*Category) error) (Category, Result, error) {
	var updated Category
	res, err := s.runMutation(ctx, "update_category", &id, func(tx domain.Tx) error {
		var err error
		updated, err = tx.UpdateCategory(id, mutator)
		return err
	})
	return updated, res, err
}

// DeleteCategory removes a category record. Transactions filed under it keep
// their category id and surface through the dangling reference rule.
func (s *Service) DeleteCategory(ctx context.Context, id string) (Result, error) {
	return s.runMutation(ctx, "delete_category", &id, func(tx domain.Tx) error {
		_, err := tx.DeleteCategory(id)
		return err
	})
}

// CreateTransaction persists a new transaction.
func (s *Service) CreateTransaction(ctx context.Context, txn Transaction) (Transaction, Result, error) {
	var created Transaction
	res, err := s.runMutation(ctx, "create_transaction", &created.ID, func(tx domain.Tx) error {
		var err error
		created, err = tx.CreateTransaction(txn)
		return err
	})
	return created, res, err
}

// UpdateTransaction mutates a transaction.
func (s *Service) UpdateTransaction(ctx context.Context, id string, mutator func(*Transaction) error) (Transaction, Result, error) {
	var updated Transaction
	res, err := s.runMutation(ctx, "update_transaction", &id, func(tx domain.Tx) error {
		var err error
		updated, err = tx.UpdateTransaction(id, mutator)
		return err
	})
	return updated, res, err
}

// DeleteTransaction removes a transaction record.
func (s *Service) DeleteTransaction(ctx context.Context, id string) (Result, error) {
	return s.runMutation(ctx, "delete_transaction", &id, func(tx domain.Tx) error {
		_, err := tx.DeleteTransaction(id)
		return err
	})
}

// CreateSalary persists a new salary record.
func (s *Service) CreateSalary(ctx context.Context, salary Salary) (Salary, Result, error) {
	var created Salary
	res, err := s.runMutation(ctx, "create_salary", &created.ID, func(tx domain.Tx) error {
		var err error
		created, err = tx.CreateSalary(salary)
		return err
	})
	return created, res, err
}

// UpdateSalary mutates a salary record.
func (s *Service) UpdateSalary(ctx context.Context, id string, mutator func(*Salary) error) (Salary, Result, error) {
	var updated Salary
	res, err := s.runMutation(ctx, "update_salary", &id, func(tx domain.Tx) error {
		var err error
		updated, err = tx.UpdateSalary(id, mutator)
		return err
	})
	return updated, res, err
}

// DeleteSalary removes a salary record.
func (s *Service) DeleteSalary(ctx context.Context, id string) (Result, error) {
	return s.runMutation(ctx, "delete_salary", &id, func(tx domain.Tx) error {
		_, err := tx.DeleteSalary(id)
		return err
	})
}

// MarkSalaryPaid transitions a pending salary to paid, stamping the payout time.
func (s *Service) MarkSalaryPaid(ctx context.Context, id string) (Salary, Result, error) {
	paidAt := s.nowFn()
	return s.UpdateSalary(ctx, id, func(sal *Salary) error {
		sal.Status = domain.PayoutStatusPaid
		sal.PaidAt = &paidAt
		return nil
	})
}

// CreateBonus persists a new bonus record.
func (s *Service) CreateBonus(ctx context.Context, bonus Bonus) (Bonus, Result, error) {
	var created Bonus
	res, err := s.runMutation(ctx, "create_bonus", &created.ID, func(tx domain.Tx) error {
		var err error
		created, err = tx.CreateBonus(bonus)
		return err
	})
	return created, res, err
}

// UpdateBonus mutates a bonus record.
func (s *Service) UpdateBonus(ctx context.Context, id string, mutator func(*Bonus) error) (Bonus, Result, error) {
	var updated Bonus
	res, err := s.runMutation(ctx, "update_bonus", &id, func(tx domain.Tx) error {
		var err error
		updated, err = tx.UpdateBonus(id, mutator)
		return err
	})
	return updated, res, err
}

// DeleteBonus removes a bonus record.
func (s *Service) DeleteBonus(ctx context.Context, id string) (Result, error) {
	return s.runMutation(ctx, "delete_bonus", &id, func(tx domain.Tx) error {
		_, err := tx.DeleteBonus(id)
		return err
	})
}

// CreateCommission persists a new commission record.
func (s *Service) CreateCommission(ctx context.Context, commission Commission) (Commission, Result, error) {
	var created Commission
	res, err := s.runMutation(ctx, "create_commission", &created.ID, func(tx domain.Tx) error {
		var err error
		created, err = tx.CreateCommission(commission)
		return err
	})
	return created, res, err
}

// UpdateCommission mutates a commission record.
func (s *Service) UpdateCommission(ctx context.Context, id string, mutator func(*Commission) error) (Commission, Result, error) {
	var updated Commission
	res, err := s.runMutation(ctx, "update_commission", &id, func(tx domain.Tx) error {
		var err error
		updated, err = tx.UpdateCommission(id, mutator)
		return err
	})
	return updated, res, err
}

// DeleteCommission removes a commission record.
func (s *Service) DeleteCommission(ctx context.Context, id string) (Result, error) {
	return s.runMutation(ctx, "delete_commission", &id, func(tx domain.Tx) error {
		_, err := tx.DeleteCommission(id)
		return err
	})
}

// CreateCustomerTransaction persists a customer money movement.
func (s *Service) CreateCustomerTransaction(ctx context.Context, movement CustomerTransaction) (CustomerTransaction, Result, error) {
	var created CustomerTransaction
	res, err := s.runMutation(ctx, "create_customer_transaction", &created.ID, func(tx domain.Tx) error {
		var err error
		created, err = tx.CreateCustomerTransaction(movement)
		return err
	})
	return created, res, err
}

// UpdateCustomerTransaction mutates a customer money movement.
func (s *Service) UpdateCustomerTransaction(ctx context.Context, id string, mutator func(*CustomerTransaction) error) (CustomerTransaction, Result, error) {
	var updated CustomerTransaction
	res, err := s.runMutation(ctx, "update_customer_transaction", &id, func(tx domain.Tx) error {
		var err error
		updated, err = tx.UpdateCustomerTransaction(id, mutator)
		return err
	})
	return updated, res, err
}

// DeleteCustomerTransaction removes a customer money movement.
func (s *Service) DeleteCustomerTransaction(ctx context.Context, id string) (Result, error) {
	return s.runMutation(ctx, "delete_customer_transaction", &id, func(tx domain.Tx) error {
		_, err := tx.DeleteCustomerTransaction(id)
		return err
	})
}

// CreateCustomerCount persists a customer count sample.
func (s *Service) CreateCustomerCount(ctx context.Context, count CustomerCount) (CustomerCount, Result, error) {
	var created CustomerCount
	res, err := s.runMutation(ctx, "create_customer_count", &created.ID, func(tx domain.Tx) error {
		var err error
		created, err = tx.CreateCustomerCount(count)
		return err
	})
	return created, res, err
}

// UpdateCustomerCount mutates a customer count sample.
func (s *Service) UpdateCustomerCount(ctx context.Context, id string, mutator func(*CustomerCount) error) (CustomerCount, Result, error) {
	var updated CustomerCount
	res, err := s.runMutation(ctx, "update_customer_count", &id, func(tx domain.Tx) error {
		var err error
		updated, err = tx.UpdateCustomerCount(id, mutator)
		return err
	})
	return updated, res, err
}

// DeleteCustomerCount removes a customer count sample.
func (s *Service) DeleteCustomerCount(ctx context.Context, id string) (Result, error) {
	return s.runMutation(ctx, "delete_customer_count", &id, func(tx domain.Tx) error {
		_, err := tx.DeleteCustomerCount(id)
		return err
	})
}

// CreateUser persists a new user account.
func (s *Service) CreateUser(ctx context.Context, user User) (User, Result, error) {
	var created User
	res, err := s.runMutation(ctx, "create_user", &created.ID, func(tx domain.Tx) error {
		var err error
		created, err = tx.CreateUser(user)
		return err
	})
	return created, res, err
}

// UpdateUser mutates a user account.
func (s *Service) UpdateUser(ctx context.Context, id string, mutator func(*User) error) (User, Result, error) {
	var updated User
	res, err := s.runMutation(ctx, "update_user", &id, func(tx domain.Tx) error {
		var err error
		updated, err = tx.UpdateUser(id, mutator)
		return err
	})
	return updated, res, err
}

// DeleteUser removes a user account.
func (s *Service) DeleteUser(ctx context.Context, id string) (Result, error) {
	return s.runMutation(ctx, "delete_user", &id, func(tx domain.Tx) error {
		_, err := tx.DeleteUser(id)
		return err
	})
}

// GetTeam reads a committed team by id.
func (s *Service) GetTeam(id string) (Team, bool) { return s.store.GetTeam(id) }

// ListTeams reads all committed teams in insertion order.
func (s *Service) ListTeams() []Team { return s.store.ListTeams() }

// GetMember reads a committed member by id.
func (s *Service) GetMember(id string) (Member, bool) { return s.store.GetMember(id) }

// ListMembers reads all committed members in insertion order.
func (s *Service) ListMembers() []Member { return s.store.ListMembers() }

// GetCustomer reads a committed customer by id.
func (s *Service) GetCustomer(id string) (Customer, bool) { return s.store.GetCustomer(id) }

// ListCustomers reads all committed customers in insertion order.
func (s *Service) ListCustomers() []Customer { return s.store.ListCustomers() }

// GetCategory reads a committed category by id.
func (s *Service) GetCategory(id string) (Category, bool) { return s.store.GetCategory(id) }

// ListCategories reads all committed categories in insertion order.
func (s *Service) ListCategories() []Category { return s.store.ListCategories() }

// GetTransaction reads a committed transaction by id.
func (s *Service) GetTransaction(id string) (Transaction, bool) { return s.store.GetTransaction(id) }

// ListTransactions reads all committed transactions in insertion order.
func (s *Service) ListTransactions() []Transaction { return s.store.ListTransactions() }

// GetSalary reads a committed salary by id.
func (s *Service) GetSalary(id string) (Salary, bool) { return s.store.GetSalary(id) }

// ListSalaries reads all committed salaries in insertion order.
func (s *Service) ListSalaries() []Salary { return s.store.ListSalaries() }

// GetBonus reads a committed bonus by id.
func (s *Service) GetBonus(id string) (Bonus, bool) { return s.store.GetBonus(id) }

// ListBonuses reads all committed bonuses in insertion order.
func (s *Service) ListBonuses() []Bonus { return s.store.ListBonuses() }

// GetCommission reads a committed commission by id.
func (s *Service) GetCommission(id string) (Commission, bool) { return s.store.GetCommission(id) }

// ListCommissions reads all committed commissions in insertion order.
func (s *Service) ListCommissions() []Commission { return s.store.ListCommissions() }

// GetCustomerTransaction reads a committed customer movement by id.
func (s *Service) GetCustomerTransaction(id string) (CustomerTransaction, bool) {
	return s.store.GetCustomerTransaction(id)
}

// ListCustomerTransactions reads all committed customer movements in insertion order.
func (s *Service) ListCustomerTransactions() []CustomerTransaction {
	return s.store.ListCustomerTransactions()
}

// GetCustomerCount reads a committed customer count sample by id.
func (s *Service) GetCustomerCount(id string) (CustomerCount, bool) {
	return s.store.GetCustomerCount(id)
}

// ListCustomerCounts reads all committed customer count samples in insertion order.
func (s *Service) ListCustomerCounts() []CustomerCount { return s.store.ListCustomerCounts() }

// GetUser reads a committed user by id.
func (s *Service) GetUser(id string) (User, bool) { return s.store.GetUser(id) }

// ListUsers reads all committed users in insertion order.
func (s *Service) ListUsers() []User { return s.store.ListUsers() }

// ListAuditLogs reads the committed audit trail in insertion order.
func (s *Service) ListAuditLogs() []AuditLog { return s.store.ListAuditLogs() }
