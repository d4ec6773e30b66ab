package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/openbookshq/openbooks/internal/apperrors"
	"github.com/openbookshq/openbooks/internal/core/domain"
	portsrepo "github.com/openbookshq/openbooks/internal/core/ports/repositories"
	portssvc "github.com/openbookshq/openbooks/internal/core/ports/services"
	"github.com/openbookshq/openbooks/internal/dto"
	"github.com/openbookshq/openbooks/internal/middleware"
)

const defaultListLimit = 50
const maxListLimit = 100

// clampLimit applies the default and cap for list queries.
func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}

// accountService handles chart-of-accounts operations.
type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
	companySvc  portssvc.CompanySvcFacade
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, companySvc portssvc.CompanySvcFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo, companySvc: companySvc}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount creates a new ledger account in the company.
func (s *accountService) CreateAccount(ctx context.Context, companyID int64, req dto.CreateAccountRequest, creatorUserID int64) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.companySvc.AuthorizeUserAction(ctx, creatorUserID, companyID, domain.RoleMember); err != nil {
		return nil, err
	}

	if !domain.ValidAccountType(req.AccountType) {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, req.AccountType)
	}

	now := time.Now().UTC()
	account := domain.Account{
		CompanyID:   companyID,
		Name:        req.Name,
		AccountType: req.AccountType,
		Code:        req.Code,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	saved, err := s.accountRepo.SaveAccount(ctx, account)
	if err != nil {
		logger.Error("Failed to save account", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	logger.Info("Account created", slog.Int64("account_id", saved.AccountID), slog.String("code", saved.Code))
	return saved, nil
}

// GetAccountByID retrieves one account, scoped by company.
func (s *accountService) GetAccountByID(ctx context.Context, companyID, accountID int64, requestingUserID int64) (*domain.Account, error) {
	if err := s.companySvc.AuthorizeUserAction(ctx, requestingUserID, companyID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return s.accountRepo.FindAccountByID(ctx, companyID, accountID)
}

// GetAccountsByIDs retrieves multiple accounts, scoped by company. Accounts
// belonging to other companies are absent from the result, which is what lets
// the journal validator detect cross-tenant references.
func (s *accountService) GetAccountsByIDs(ctx context.Context, companyID int64, accountIDs []int64, requestingUserID int64) (map[int64]domain.Account, error) {
	if err := s.companySvc.AuthorizeUserAction(ctx, requestingUserID, companyID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return s.accountRepo.FindAccountsByIDs(ctx, companyID, accountIDs)
}

// ListAccounts retrieves up to limit accounts for the company.
func (s *accountService) ListAccounts(ctx context.Context, companyID int64, limit int, requestingUserID int64) ([]domain.Account, error) {
	if err := s.companySvc.AuthorizeUserAction(ctx, requestingUserID, companyID, domain.RoleViewer); err != nil {
		return nil, err
	}
	accounts, err := s.accountRepo.ListAccountsByCompany(ctx, companyID, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}
	return accounts, nil
}
