package services

import (
	"context"

	"github.com/openbookshq/openbooks/internal/core/domain"
	"github.com/openbookshq/openbooks/internal/dto"
)

// InvoiceSvcFacade defines invoice operations, all company-scoped.
type InvoiceSvcFacade interface {
	// CreateInvoice validates the payload, computes line amounts and the total
	// server-side, and persists header plus lines atomically.
	CreateInvoice(ctx context.Context, companyID int64, req dto.CreateInvoiceRequest, creatorUserID int64) (*domain.Invoice, error)

	// GetInvoiceByID retrieves one invoice with its lines, scoped by company.
	GetInvoiceByID(ctx context.Context, companyID, invoiceID int64, requestingUserID int64) (*domain.Invoice, error)

	// ListInvoices retrieves invoice headers for the company, optionally with lines.
	ListInvoices(ctx context.Context, companyID int64, params dto.ListInvoicesParams, requestingUserID int64) ([]domain.Invoice, error)
}
