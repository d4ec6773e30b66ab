package repositories

import (
	"context"

	"github.com/openbookshq/openbooks/internal/core/domain"
)

// CompanyReader defines read operations for company and membership data.
type CompanyReader interface {
	// FindCompanyByID retrieves a company by its unique identifier.
	FindCompanyByID(ctx context.Context, companyID int64) (*domain.Company, error)

	// ListCompaniesByUserID retrieves the companies a user is a member of.
	ListCompaniesByUserID(ctx context.Context, userID int64) ([]domain.Company, error)

	// FindMembership retrieves the membership of a user in a company.
	// Returns apperrors.ErrNotFound when the user is not a member.
	FindMembership(ctx context.Context, userID, companyID int64) (*domain.CompanyMembership, error)
}

// CompanyWriter defines write operations for company and membership data.
type CompanyWriter interface {
	// SaveCompany persists a new company together with the creator's ADMIN
	// membership in a single transaction, and returns the company with its
	// assigned identifier.
	SaveCompany(ctx context.Context, company domain.Company, creatorMembership domain.CompanyMembership) (*domain.Company, error)

	// AddMembership persists a new (user, company, role) membership.
	AddMembership(ctx context.Context, membership domain.CompanyMembership) error
}

// CompanyRepositoryFacade combines all company-related repository interfaces.
type CompanyRepositoryFacade interface {
	CompanyReader
	CompanyWriter
}
