package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openbookshq/openbooks/internal/core/domain"
	portsrepo "github.com/openbookshq/openbooks/internal/core/ports/repositories"
)

type PgxAccountRepository struct {
	BaseRepository
}

func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = `account_id, company_id, name, account_type, code, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(
		&a.AccountID, &a.CompanyID, &a.Name, &a.AccountType, &a.Code, &a.IsActive,
		&a.CreatedAt, &a.CreatedBy, &a.LastUpdatedAt, &a.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// FindAccountByID is company-scoped: an account belonging to another company
// is reported as not found.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, companyID, accountID int64) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE company_id = $1 AND account_id = $2;`
	account, err := scanAccount(r.Pool.QueryRow(ctx, query, companyID, accountID))
	if err != nil {
		return nil, mapReadError(err, "find account by id")
	}
	return account, nil
}

// FindAccountsByIDs returns only the requested accounts that belong to the
// company; foreign or missing IDs are simply absent from the map.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, companyID int64, accountIDs []int64) (map[int64]domain.Account, error) {
	accounts := make(map[int64]domain.Account, len(accountIDs))
	if len(accountIDs) == 0 {
		return accounts, nil
	}

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE company_id = $1 AND account_id = ANY($2);`
	rows, err := r.Pool.Query(ctx, query, companyID, accountIDs)
	if err != nil {
		return nil, mapReadError(err, "find accounts by ids")
	}
	defer rows.Close()

	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, mapReadError(err, "scan account row")
		}
		accounts[a.AccountID] = *a
	}
	if err := rows.Err(); err != nil {
		return nil, mapReadError(err, "iterate account rows")
	}
	return accounts, nil
}

func (r *PgxAccountRepository) ListAccountsByCompany(ctx context.Context, companyID int64, limit int) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE company_id = $1 ORDER BY code LIMIT $2;`
	rows, err := r.Pool.Query(ctx, query, companyID, limit)
	if err != nil {
		return nil, mapReadError(err, "list accounts by company")
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, mapReadError(err, "scan account row")
		}
		accounts = append(accounts, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, mapReadError(err, "iterate account rows")
	}
	return accounts, nil
}

func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	query := `
		INSERT INTO accounts (company_id, name, account_type, code, is_active,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING account_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		account.CompanyID, account.Name, account.AccountType, account.Code, account.IsActive,
		account.CreatedAt, account.CreatedBy, account.LastUpdatedAt, account.LastUpdatedBy,
	).Scan(&account.AccountID)
	if err != nil {
		return nil, mapWriteError(err, "insert account")
	}
	return &account, nil
}
