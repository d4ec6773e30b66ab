package repositories

import (
	"context"

	"github.com/openbookshq/openbooks/internal/core/domain"
)

// InvoiceReader defines read operations for invoice data.
type InvoiceReader interface {
	// FindInvoiceByID retrieves an invoice header by its identifier.
	FindInvoiceByID(ctx context.Context, invoiceID int64) (*domain.Invoice, error)

	// FindLinesByInvoiceID retrieves the ordered lines of one invoice.
	FindLinesByInvoiceID(ctx context.Context, invoiceID int64) ([]domain.InvoiceLine, error)

	// ListInvoicesByCompany retrieves up to limit invoice headers for a company,
	// newest first.
	ListInvoicesByCompany(ctx context.Context, companyID int64, limit int) ([]domain.Invoice, error)

	// CountInvoicesByCompany returns the number of invoices a company has.
	CountInvoicesByCompany(ctx context.Context, companyID int64) (int64, error)
}

// InvoiceWriter defines write operations for invoice data.
type InvoiceWriter interface {
	// SaveInvoice persists an invoice header together with all of its lines
	// inside a single database transaction, mirroring the journal entry commit
	// pattern. Returns the persisted invoice with assigned identifiers and
	// lines attached.
	SaveInvoice(ctx context.Context, invoice domain.Invoice, lines []domain.InvoiceLine) (*domain.Invoice, error)
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces.
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
