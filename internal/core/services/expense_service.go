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
	"github.com/openbookshq/openbooks/internal/dto"
	"github.com/openbookshq/openbooks/internal/middleware"
)

// expenseService handles company expense records.
type expenseService struct {
	expenseRepo portsrepo.ExpenseRepositoryFacade
	vendorRepo  portsrepo.VendorRepositoryFacade
	companySvc  portssvc.CompanySvcFacade
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade, vendorRepo portsrepo.VendorRepositoryFacade, companySvc portssvc.CompanySvcFacade) portssvc.ExpenseSvcFacade {
	return &expenseService{expenseRepo: expenseRepo, vendorRepo: vendorRepo, companySvc: companySvc}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// CreateExpense records a new expense for the company.
func (s *expenseService) CreateExpense(ctx context.Context, companyID int64, req dto.CreateExpenseRequest, creatorUserID int64) (*domain.Expense, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.companySvc.AuthorizeUserAction(ctx, creatorUserID, companyID, domain.RoleMember); err != nil {
		return nil, err
	}

	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return nil, fmt.Errorf("%w: expense amount must be positive", apperrors.ErrValidation)
	}

	// An expense may reference a vendor; when it does, the vendor must belong
	// to this company.
	if req.VendorID != nil {
		if _, err := s.vendorRepo.FindVendorByID(ctx, companyID, *req.VendorID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: vendor %d", apperrors.ErrNotFound, *req.VendorID)
			}
			return nil, fmt.Errorf("failed to verify vendor: %w", err)
		}
	}

	now := time.Now().UTC()
	expense := domain.Expense{
		CompanyID:   companyID,
		VendorID:    req.VendorID,
		Category:    req.Category,
		ExpenseDate: req.Date,
		Amount:      req.Amount,
		Description: req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	saved, err := s.expenseRepo.SaveExpense(ctx, expense)
	if err != nil {
		logger.Error("Failed to save expense", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to record expense: %w", err)
	}

	logger.Info("Expense recorded", slog.Int64("expense_id", saved.ExpenseID), slog.String("amount", saved.Amount.String()))
	return saved, nil
}

// ListExpenses retrieves up to limit expenses for the company, newest first.
func (s *expenseService) ListExpenses(ctx context.Context, companyID int64, limit int, requestingUserID int64) ([]domain.Expense, error) {
	if err := s.companySvc.AuthorizeUserAction(ctx, requestingUserID, companyID, domain.RoleViewer); err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.ListExpensesByCompany(ctx, companyID, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	if expenses == nil {
		expenses = []domain.Expense{}
	}
	return expenses, nil
}
