package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openbookshq/openbooks/internal/core/domain"
	portsrepo "github.com/openbookshq/openbooks/internal/core/ports/repositories"
)

type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `invoice_id, company_id, customer_id, number, issue_date, due_date, status, total,
	created_at, created_by, last_updated_at, last_updated_by`

func scanInvoice(row pgx.Row) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := row.Scan(
		&inv.InvoiceID, &inv.CompanyID, &inv.CustomerID, &inv.Number,
		&inv.IssueDate, &inv.DueDate, &inv.Status, &inv.Total,
		&inv.CreatedAt, &inv.CreatedBy, &inv.LastUpdatedAt, &inv.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// SaveInvoice persists the invoice header and its lines in one transaction,
// the same commit discipline as journal entries.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice, lines []domain.InvoiceLine) (*domain.Invoice, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	headerQuery := `
		INSERT INTO invoices (company_id, customer_id, number, issue_date, due_date, status, total,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING invoice_id;
	`
	err = tx.QueryRow(ctx, headerQuery,
		invoice.CompanyID, invoice.CustomerID, invoice.Number, invoice.IssueDate, invoice.DueDate,
		invoice.Status, invoice.Total,
		invoice.CreatedAt, invoice.CreatedBy, invoice.LastUpdatedAt, invoice.LastUpdatedBy,
	).Scan(&invoice.InvoiceID)
	if err != nil {
		return nil, mapWriteError(err, "insert invoice")
	}

	lineQuery := `
		INSERT INTO invoice_lines (invoice_id, description, quantity, unit_price, amount, position)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING line_id;
	`
	batch := &pgx.Batch{}
	for i := range lines {
		lines[i].InvoiceID = invoice.InvoiceID
		batch.Queue(lineQuery, invoice.InvoiceID, lines[i].Description, lines[i].Quantity, lines[i].UnitPrice, lines[i].Amount, lines[i].Position)
	}

	results := tx.SendBatch(ctx, batch)
	for i := range lines {
		if err := results.QueryRow().Scan(&lines[i].LineID); err != nil {
			results.Close()
			return nil, mapWriteError(err, "insert invoice line")
		}
	}
	if err := results.Close(); err != nil {
		return nil, mapWriteError(err, "flush invoice line batch")
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	invoice.Lines = lines
	return &invoice, nil
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID int64) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1;`
	invoice, err := scanInvoice(r.Pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		return nil, mapReadError(err, "find invoice by id")
	}
	return invoice, nil
}

func (r *PgxInvoiceRepository) FindLinesByInvoiceID(ctx context.Context, invoiceID int64) ([]domain.InvoiceLine, error) {
	query := `
		SELECT line_id, invoice_id, description, quantity, unit_price, amount, position
		FROM invoice_lines
		WHERE invoice_id = $1
		ORDER BY position;
	`
	rows, err := r.Pool.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, mapReadError(err, "find lines by invoice id")
	}
	defer rows.Close()

	var lines []domain.InvoiceLine
	for rows.Next() {
		var l domain.InvoiceLine
		if err := rows.Scan(&l.LineID, &l.InvoiceID, &l.Description, &l.Quantity, &l.UnitPrice, &l.Amount, &l.Position); err != nil {
			return nil, mapReadError(err, "scan invoice line row")
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, mapReadError(err, "iterate invoice line rows")
	}
	return lines, nil
}

func (r *PgxInvoiceRepository) ListInvoicesByCompany(ctx context.Context, companyID int64, limit int) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices
		WHERE company_id = $1
		ORDER BY issue_date DESC, invoice_id DESC
		LIMIT $2;`
	rows, err := r.Pool.Query(ctx, query, companyID, limit)
	if err != nil {
		return nil, mapReadError(err, "list invoices by company")
	}
	defer rows.Close()

	var invoices []domain.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, mapReadError(err, "scan invoice row")
		}
		invoices = append(invoices, *inv)
	}
	if err := rows.Err(); err != nil {
		return nil, mapReadError(err, "iterate invoice rows")
	}
	return invoices, nil
}

func (r *PgxInvoiceRepository) CountInvoicesByCompany(ctx context.Context, companyID int64) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM invoices WHERE company_id = $1;`, companyID).Scan(&count)
	if err != nil {
		return 0, mapReadError(err, "count invoices by company")
	}
	return count, nil
}
