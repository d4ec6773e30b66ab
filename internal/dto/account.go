package dto

import (
	"time"

	"github.com/openbookshq/openbooks/internal/core/domain"
)

// CreateAccountRequest defines data for creating a new ledger account.
type CreateAccountRequest struct {
	Name        string             `json:"name" binding:"required,max=150"`
	AccountType domain.AccountType `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	Code        string             `json:"code" binding:"required,max=20"`
}

// AccountResponse defines data returned for an account.
type AccountResponse struct {
	AccountID   int64              `json:"accountID"`
	CompanyID   int64              `json:"companyID"`
	Name        string             `json:"name"`
	AccountType domain.AccountType `json:"accountType"`
	Code        string             `json:"code"`
	IsActive    bool               `json:"isActive"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// ToAccountResponse converts domain.Account to DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:   a.AccountID,
		CompanyID:   a.CompanyID,
		Name:        a.Name,
		AccountType: a.AccountType,
		Code:        a.Code,
		IsActive:    a.IsActive,
		CreatedAt:   a.CreatedAt,
	}
}

// ListAccountsResponse wraps a list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToListAccountsResponse converts a slice of domain.Account to DTO.
func ToListAccountsResponse(as []domain.Account) ListAccountsResponse {
	list := make([]AccountResponse, len(as))
	for i, a := range as {
		list[i] = ToAccountResponse(&a)
	}
	return ListAccountsResponse{Accounts: list}
}
