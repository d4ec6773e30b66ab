package services

import (
	"context"

	"github.com/openbookshq/openbooks/internal/core/domain"
)

// CompanySvcFacade defines company (tenant) and membership operations.
type CompanySvcFacade interface {
	// CreateCompany creates a new company and makes the creator its ADMIN member.
	CreateCompany(ctx context.Context, name string, creatorUserID int64) (*domain.Company, error)

	// ListUserCompanies retrieves the companies the user belongs to.
	ListUserCompanies(ctx context.Context, userID int64) ([]domain.Company, error)

	// AddMember adds a user to a company with a role. The acting user must be
	// an ADMIN of the company.
	AddMember(ctx context.Context, actingUserID, targetUserID, companyID int64, role domain.CompanyRole) error

	// SelectCompany marks companyID as the user's active company after
	// verifying membership.
	SelectCompany(ctx context.Context, userID, companyID int64) error

	// AuthorizeUserAction checks that the user holds requiredRole (or higher)
	// in the company. Returns apperrors.ErrForbidden both when the user is not
	// a member and when the role is insufficient.
	AuthorizeUserAction(ctx context.Context, userID, companyID int64, requiredRole domain.CompanyRole) error
}
