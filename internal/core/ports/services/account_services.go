package services

import (
	"context"

	"github.com/openbookshq/openbooks/internal/core/domain"
	"github.com/openbookshq/openbooks/internal/dto"
)

// AccountSvcFacade defines ledger account operations, all company-scoped.
type AccountSvcFacade interface {
	// CreateAccount creates a new ledger account in the company.
	CreateAccount(ctx context.Context, companyID int64, req dto.CreateAccountRequest, creatorUserID int64) (*domain.Account, error)

	// GetAccountByID retrieves one account, scoped by company.
	GetAccountByID(ctx context.Context, companyID, accountID int64, requestingUserID int64) (*domain.Account, error)

	// GetAccountsByIDs retrieves multiple accounts, scoped by company.
	GetAccountsByIDs(ctx context.Context, companyID int64, accountIDs []int64, requestingUserID int64) (map[int64]domain.Account, error)

	// ListAccounts retrieves up to limit accounts for the company.
	ListAccounts(ctx context.Context, companyID int64, limit int, requestingUserID int64) ([]domain.Account, error)
}
