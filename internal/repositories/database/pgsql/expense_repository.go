package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openbookshq/openbooks/internal/core/domain"
	portsrepo "github.com/openbookshq/openbooks/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

const expenseColumns = `expense_id, company_id, vendor_id, category, expense_date, amount, description,
	created_at, created_by, last_updated_at, last_updated_by`

func scanExpense(row pgx.Row) (*domain.Expense, error) {
	var e domain.Expense
	err := row.Scan(
		&e.ExpenseID, &e.CompanyID, &e.VendorID, &e.Category, &e.ExpenseDate, &e.Amount, &e.Description,
		&e.CreatedAt, &e.CreatedBy, &e.LastUpdatedAt, &e.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) (*domain.Expense, error) {
	query := `
		INSERT INTO expenses (company_id, vendor_id, category, expense_date, amount, description,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING expense_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		expense.CompanyID, expense.VendorID, expense.Category, expense.ExpenseDate,
		expense.Amount, expense.Description,
		expense.CreatedAt, expense.CreatedBy, expense.LastUpdatedAt, expense.LastUpdatedBy,
	).Scan(&expense.ExpenseID)
	if err != nil {
		return nil, mapWriteError(err, "insert expense")
	}
	return &expense, nil
}

func (r *PgxExpenseRepository) ListExpensesByCompany(ctx context.Context, companyID int64, limit int) ([]domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses
		WHERE company_id = $1
		ORDER BY expense_date DESC, expense_id DESC
		LIMIT $2;`
	rows, err := r.Pool.Query(ctx, query, companyID, limit)
	if err != nil {
		return nil, mapReadError(err, "list expenses by company")
	}
	defer rows.Close()

	var expenses []domain.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, mapReadError(err, "scan expense row")
		}
		expenses = append(expenses, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, mapReadError(err, "iterate expense rows")
	}
	return expenses, nil
}

func (r *PgxExpenseRepository) SumExpensesByCompany(ctx context.Context, companyID int64) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.Pool.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE company_id = $1;`, companyID).Scan(&total)
	if err != nil {
		return decimal.Zero, mapReadError(err, "sum expenses by company")
	}
	return total, nil
}
