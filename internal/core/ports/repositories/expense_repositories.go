package repositories

import (
	"context"

	"github.com/openbookshq/openbooks/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExpenseRepositoryFacade defines operations for expense data.
type ExpenseRepositoryFacade interface {
	// SaveExpense persists a new expense and returns it with the assigned identifier.
	SaveExpense(ctx context.Context, expense domain.Expense) (*domain.Expense, error)

	// ListExpensesByCompany retrieves up to limit expenses for a company, newest first.
	ListExpensesByCompany(ctx context.Context, companyID int64, limit int) ([]domain.Expense, error)

	// SumExpensesByCompany returns the decimal total of a company's expenses.
	SumExpensesByCompany(ctx context.Context, companyID int64) (decimal.Decimal, error)
}
