package repositories

import (
	"context"

	"github.com/openbookshq/openbooks/internal/core/domain"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAccountByID retrieves an account by its identifier, scoped by company.
	FindAccountByID(ctx context.Context, companyID, accountID int64) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts by identifier, scoped by
	// company. Accounts outside the company are simply absent from the result.
	FindAccountsByIDs(ctx context.Context, companyID int64, accountIDs []int64) (map[int64]domain.Account, error)

	// ListAccountsByCompany retrieves up to limit accounts for a company.
	ListAccountsByCompany(ctx context.Context, companyID int64, limit int) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// SaveAccount persists a new account and returns it with the assigned identifier.
	SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
