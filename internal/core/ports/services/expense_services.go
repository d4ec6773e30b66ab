package services

import (
	"context"

	"github.com/openbookshq/openbooks/internal/core/domain"
	"github.com/openbookshq/openbooks/internal/dto"
)

// ExpenseSvcFacade defines expense operations, all company-scoped.
type ExpenseSvcFacade interface {
	// CreateExpense records a new expense for the company.
	CreateExpense(ctx context.Context, companyID int64, req dto.CreateExpenseRequest, creatorUserID int64) (*domain.Expense, error)

	// ListExpenses retrieves up to limit expenses for the company.
	ListExpenses(ctx context.Context, companyID int64, limit int, requestingUserID int64) ([]domain.Expense, error)
}
