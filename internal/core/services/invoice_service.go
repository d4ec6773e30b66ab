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
	"github.com/shopspring/decimal"
)

// invoiceService handles invoices. Line amounts and the invoice total are
// always computed server-side; client-supplied totals are never trusted.
type invoiceService struct {
	invoiceRepo  portsrepo.InvoiceRepositoryFacade
	customerRepo portsrepo.CustomerRepositoryFacade
	companySvc   portssvc.CompanySvcFacade
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade, customerRepo portsrepo.CustomerRepositoryFacade, companySvc portssvc.CompanySvcFacade) portssvc.InvoiceSvcFacade {
	return &invoiceService{invoiceRepo: invoiceRepo, customerRepo: customerRepo, companySvc: companySvc}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

// CreateInvoice validates the payload and persists header plus lines
// atomically, the same commit discipline as journal entries.
func (s *invoiceService) CreateInvoice(ctx context.Context, companyID int64, req dto.CreateInvoiceRequest, creatorUserID int64) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.companySvc.AuthorizeUserAction(ctx, creatorUserID, companyID, domain.RoleMember); err != nil {
		return nil, err
	}

	if len(req.Lines) == 0 {
		return nil, fmt.Errorf("%w: invoice has no lines", apperrors.ErrValidation)
	}
	if req.DueDate.Before(req.IssueDate) {
		return nil, fmt.Errorf("%w: due date precedes issue date", apperrors.ErrValidation)
	}

	// The customer must belong to this company. The scoped lookup returns
	// not-found for foreign customers, which is what we report.
	if _, err := s.customerRepo.FindCustomerByID(ctx, companyID, req.CustomerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: customer %d", apperrors.ErrNotFound, req.CustomerID)
		}
		return nil, fmt.Errorf("failed to verify customer: %w", err)
	}

	total := decimal.Zero
	lines := make([]domain.InvoiceLine, len(req.Lines))
	for i, l := range req.Lines {
		if l.Quantity.IsNegative() || l.Quantity.IsZero() {
			return nil, fmt.Errorf("%w: line %d quantity must be positive", apperrors.ErrValidation, i)
		}
		if l.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: line %d unit price is negative", apperrors.ErrValidation, i)
		}
		amount := l.Quantity.Mul(l.UnitPrice)
		lines[i] = domain.InvoiceLine{
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Amount:      amount,
			Position:    i,
		}
		total = total.Add(amount)
	}

	now := time.Now().UTC()
	invoice := domain.Invoice{
		CompanyID:  companyID,
		CustomerID: req.CustomerID,
		Number:     req.Number,
		IssueDate:  req.IssueDate,
		DueDate:    req.DueDate,
		Status:     domain.InvoiceDraft,
		Total:      total,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	saved, err := s.invoiceRepo.SaveInvoice(ctx, invoice, lines)
	if err != nil {
		logger.Error("Failed to commit invoice", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	logger.Info("Invoice created",
		slog.Int64("invoice_id", saved.InvoiceID),
		slog.String("number", saved.Number),
		slog.String("total", saved.Total.String()))
	return saved, nil
}

// GetInvoiceByID retrieves one invoice with its lines, scoped by company.
func (s *invoiceService) GetInvoiceByID(ctx context.Context, companyID, invoiceID int64, requestingUserID int64) (*domain.Invoice, error) {
	if err := s.companySvc.AuthorizeUserAction(ctx, requestingUserID, companyID, domain.RoleViewer); err != nil {
		return nil, err
	}

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.CompanyID != companyID {
		return nil, fmt.Errorf("%w: invoice %d", apperrors.ErrNotFound, invoiceID)
	}

	lines, err := s.invoiceRepo.FindLinesByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load lines for invoice %d: %w", invoiceID, err)
	}
	invoice.Lines = lines
	return invoice, nil
}

// ListInvoices retrieves invoice headers for the company, newest first.
func (s *invoiceService) ListInvoices(ctx context.Context, companyID int64, params dto.ListInvoicesParams, requestingUserID int64) ([]domain.Invoice, error) {
	if err := s.companySvc.AuthorizeUserAction(ctx, requestingUserID, companyID, domain.RoleViewer); err != nil {
		return nil, err
	}

	invoices, err := s.invoiceRepo.ListInvoicesByCompany(ctx, companyID, clampLimit(params.Limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	if invoices == nil {
		invoices = []domain.Invoice{}
	}

	if params.IncludeLines {
		for i := range invoices {
			lines, err := s.invoiceRepo.FindLinesByInvoiceID(ctx, invoices[i].InvoiceID)
			if err != nil {
				return nil, fmt.Errorf("failed to load lines for invoice %d: %w", invoices[i].InvoiceID, err)
			}
			invoices[i].Lines = lines
		}
	}
	return invoices, nil
}
