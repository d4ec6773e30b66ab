package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/openbookshq/openbooks/internal/apperrors"
	"github.com/openbookshq/openbooks/internal/core/domain"
	portsrepo "github.com/openbookshq/openbooks/internal/core/ports/repositories"
	portssvc "github.com/openbookshq/openbooks/internal/core/ports/services"
	"github.com/openbookshq/openbooks/internal/middleware"
)

// roleRank orders company roles for authorization checks.
var roleRank = map[domain.CompanyRole]int{
	domain.RoleViewer: 1,
	domain.RoleMember: 2,
	domain.RoleAdmin:  3,
}

// companyService handles business logic for companies and memberships.
type companyService struct {
	companyRepo portsrepo.CompanyRepositoryFacade
	userRepo    portsrepo.UserRepositoryFacade
}

// NewCompanyService creates a new CompanyService.
func NewCompanyService(companyRepo portsrepo.CompanyRepositoryFacade, userRepo portsrepo.UserRepositoryFacade) portssvc.CompanySvcFacade {
	return &companyService{companyRepo: companyRepo, userRepo: userRepo}
}

var _ portssvc.CompanySvcFacade = (*companyService)(nil)

// CreateCompany creates a new company and makes the creator its ADMIN member.
// The company row and the creator's membership commit in one transaction.
func (s *companyService) CreateCompany(ctx context.Context, name string, creatorUserID int64) (*domain.Company, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	company := domain.Company{
		Name: name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	membership := domain.CompanyMembership{
		UserID:   creatorUserID,
		Role:     domain.RoleAdmin,
		JoinedAt: now,
	}

	saved, err := s.companyRepo.SaveCompany(ctx, company, membership)
	if err != nil {
		logger.Error("Failed to create company", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	// Make the new company the creator's active one so tenant resolution has
	// a fallback right away. Best effort; the company itself is committed.
	if err := s.userRepo.UpdateLastCompany(ctx, creatorUserID, saved.CompanyID); err != nil {
		logger.Warn("Failed to set new company as selected", slog.String("error", err.Error()), slog.Int64("company_id", saved.CompanyID))
	}

	logger.Info("Company created", slog.Int64("company_id", saved.CompanyID), slog.Int64("creator_user_id", creatorUserID))
	return saved, nil
}

// ListUserCompanies retrieves the companies the user belongs to.
func (s *companyService) ListUserCompanies(ctx context.Context, userID int64) ([]domain.Company, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	companies, err := s.companyRepo.ListCompaniesByUserID(ctx, userID)
	if err != nil {
		logger.Error("Failed to list companies for user", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list companies for user %d: %w", userID, err)
	}
	if companies == nil {
		companies = []domain.Company{}
	}
	return companies, nil
}

// AddMember adds a user to a company with a role. Requires the acting user to
// be an ADMIN of the company.
func (s *companyService) AddMember(ctx context.Context, actingUserID, targetUserID, companyID int64, role domain.CompanyRole) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.AuthorizeUserAction(ctx, actingUserID, companyID, domain.RoleAdmin); err != nil {
		return err
	}

	if _, err := s.userRepo.FindUserByID(ctx, targetUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: user %d", apperrors.ErrNotFound, targetUserID)
		}
		return fmt.Errorf("failed to verify target user: %w", err)
	}

	membership := domain.CompanyMembership{
		UserID:    targetUserID,
		CompanyID: companyID,
		Role:      role,
		JoinedAt:  time.Now().UTC(),
	}
	if err := s.companyRepo.AddMembership(ctx, membership); err != nil {
		logger.Error("Failed to add membership", slog.String("error", err.Error()), slog.Int64("target_user_id", targetUserID), slog.Int64("company_id", companyID))
		return fmt.Errorf("failed to add user %d to company %d: %w", targetUserID, companyID, err)
	}

	logger.Info("User added to company", slog.Int64("target_user_id", targetUserID), slog.Int64("company_id", companyID), slog.String("role", string(role)))
	return nil
}

// SelectCompany marks companyID as the user's active company after verifying
// membership. Per-session tenant selection lives on the user row, never in a
// process-wide variable.
func (s *companyService) SelectCompany(ctx context.Context, userID, companyID int64) error {
	if err := s.AuthorizeUserAction(ctx, userID, companyID, domain.RoleViewer); err != nil {
		return err
	}
	return s.userRepo.UpdateLastCompany(ctx, userID, companyID)
}

// AuthorizeUserAction checks that the user holds requiredRole (or higher) in
// the company. Non-members receive ErrForbidden regardless of whether the
// company exists.
func (s *companyService) AuthorizeUserAction(ctx context.Context, userID, companyID int64, requiredRole domain.CompanyRole) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	membership, err := s.companyRepo.FindMembership(ctx, userID, companyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Authorization failed: user is not a member", slog.Int64("company_id", companyID))
			return apperrors.ErrForbidden
		}
		logger.Error("Failed to check membership", slog.String("error", err.Error()), slog.Int64("company_id", companyID))
		return fmt.Errorf("failed to check authorization: %w", err)
	}

	if roleRank[membership.Role] < roleRank[requiredRole] {
		logger.Warn("Authorization failed: insufficient role",
			slog.String("user_role", string(membership.Role)),
			slog.String("required_role", string(requiredRole)))
		return apperrors.ErrForbidden
	}
	return nil
}
