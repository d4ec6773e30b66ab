package dto

import (
	"time"

	"github.com/openbookshq/openbooks/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines data for recording an expense.
type CreateExpenseRequest struct {
	VendorID    *int64          `json:"vendorID" binding:"omitempty,gt=0"`
	Category    string          `json:"category" binding:"required,max=100"`
	Date        time.Time       `json:"date" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"dpositive"`
	Description string          `json:"description" binding:"max=500"`
}

// ExpenseResponse defines data returned for an expense.
type ExpenseResponse struct {
	ExpenseID   int64           `json:"expenseID"`
	CompanyID   int64           `json:"companyID"`
	VendorID    *int64          `json:"vendorID,omitempty"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	CreatedBy   int64           `json:"createdBy"`
}

// ToExpenseResponse converts domain.Expense to DTO.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:   e.ExpenseID,
		CompanyID:   e.CompanyID,
		VendorID:    e.VendorID,
		Category:    e.Category,
		Date:        e.ExpenseDate,
		Amount:      e.Amount,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		CreatedBy:   e.CreatedBy,
	}
}

// ListExpensesResponse wraps a list of expenses.
type ListExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToListExpensesResponse converts a slice of domain.Expense to DTO.
func ToListExpensesResponse(es []domain.Expense) ListExpensesResponse {
	list := make([]ExpenseResponse, len(es))
	for i := range es {
		list[i] = ToExpenseResponse(&es[i])
	}
	return ListExpensesResponse{Expenses: list}
}
