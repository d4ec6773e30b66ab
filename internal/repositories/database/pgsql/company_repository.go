package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openbookshq/openbooks/internal/core/domain"
	portsrepo "github.com/openbookshq/openbooks/internal/core/ports/repositories"
)

type PgxCompanyRepository struct {
	BaseRepository
}

func newPgxCompanyRepository(pool *pgxpool.Pool) portsrepo.CompanyRepositoryFacade {
	return &PgxCompanyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CompanyRepositoryFacade = (*PgxCompanyRepository)(nil)

const companyColumns = `company_id, name, created_at, created_by, last_updated_at, last_updated_by`

func scanCompany(row pgx.Row) (*domain.Company, error) {
	var c domain.Company
	err := row.Scan(&c.CompanyID, &c.Name, &c.CreatedAt, &c.CreatedBy, &c.LastUpdatedAt, &c.LastUpdatedBy)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID int64) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE company_id = $1;`
	company, err := scanCompany(r.Pool.QueryRow(ctx, query, companyID))
	if err != nil {
		return nil, mapReadError(err, "find company by id")
	}
	return company, nil
}

func (r *PgxCompanyRepository) ListCompaniesByUserID(ctx context.Context, userID int64) ([]domain.Company, error) {
	query := `
		SELECT c.company_id, c.name, c.created_at, c.created_by, c.last_updated_at, c.last_updated_by
		FROM companies c
		JOIN company_members m ON m.company_id = c.company_id
		WHERE m.user_id = $1
		ORDER BY c.company_id;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, mapReadError(err, "list companies by user")
	}
	defer rows.Close()

	var companies []domain.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, mapReadError(err, "scan company row")
		}
		companies = append(companies, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, mapReadError(err, "iterate company rows")
	}
	return companies, nil
}

func (r *PgxCompanyRepository) FindMembership(ctx context.Context, userID, companyID int64) (*domain.CompanyMembership, error) {
	query := `
		SELECT user_id, company_id, role, joined_at
		FROM company_members
		WHERE user_id = $1 AND company_id = $2;
	`
	var m domain.CompanyMembership
	err := r.Pool.QueryRow(ctx, query, userID, companyID).Scan(&m.UserID, &m.CompanyID, &m.Role, &m.JoinedAt)
	if err != nil {
		return nil, mapReadError(err, "find membership")
	}
	return &m, nil
}

// SaveCompany inserts the company row and the creator's ADMIN membership in a
// single transaction so a company can never exist without an administrator.
func (r *PgxCompanyRepository) SaveCompany(ctx context.Context, company domain.Company, creatorMembership domain.CompanyMembership) (*domain.Company, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	companyQuery := `
		INSERT INTO companies (name, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING company_id;
	`
	err = tx.QueryRow(ctx, companyQuery,
		company.Name, company.CreatedAt, company.CreatedBy, company.LastUpdatedAt, company.LastUpdatedBy,
	).Scan(&company.CompanyID)
	if err != nil {
		return nil, mapWriteError(err, "insert company")
	}

	memberQuery := `
		INSERT INTO company_members (user_id, company_id, role, joined_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err = tx.Exec(ctx, memberQuery,
		creatorMembership.UserID, company.CompanyID, creatorMembership.Role, creatorMembership.JoinedAt,
	)
	if err != nil {
		return nil, mapWriteError(err, "insert creator membership")
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *PgxCompanyRepository) AddMembership(ctx context.Context, membership domain.CompanyMembership) error {
	query := `
		INSERT INTO company_members (user_id, company_id, role, joined_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.Pool.Exec(ctx, query, membership.UserID, membership.CompanyID, membership.Role, membership.JoinedAt)
	if err != nil {
		return mapWriteError(err, "insert membership")
	}
	return nil
}
