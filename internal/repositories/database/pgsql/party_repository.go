package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openbookshq/openbooks/internal/core/domain"
	portsrepo "github.com/openbookshq/openbooks/internal/core/ports/repositories"
)

type PgxCustomerRepository struct {
	BaseRepository
}

func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

const customerColumns = `customer_id, company_id, name, email, phone, tax_id,
	created_at, created_by, last_updated_at, last_updated_by`

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(
		&c.CustomerID, &c.CompanyID, &c.Name, &c.Email, &c.Phone, &c.TaxID,
		&c.CreatedAt, &c.CreatedBy, &c.LastUpdatedAt, &c.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error) {
	query := `
		INSERT INTO customers (company_id, name, email, phone, tax_id,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING customer_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		customer.CompanyID, customer.Name, customer.Email, customer.Phone, customer.TaxID,
		customer.CreatedAt, customer.CreatedBy, customer.LastUpdatedAt, customer.LastUpdatedBy,
	).Scan(&customer.CustomerID)
	if err != nil {
		return nil, mapWriteError(err, "insert customer")
	}
	return &customer, nil
}

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, companyID, customerID int64) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE company_id = $1 AND customer_id = $2;`
	customer, err := scanCustomer(r.Pool.QueryRow(ctx, query, companyID, customerID))
	if err != nil {
		return nil, mapReadError(err, "find customer by id")
	}
	return customer, nil
}

func (r *PgxCustomerRepository) ListCustomersByCompany(ctx context.Context, companyID int64, limit int) ([]domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE company_id = $1 ORDER BY name LIMIT $2;`
	rows, err := r.Pool.Query(ctx, query, companyID, limit)
	if err != nil {
		return nil, mapReadError(err, "list customers by company")
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, mapReadError(err, "scan customer row")
		}
		customers = append(customers, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, mapReadError(err, "iterate customer rows")
	}
	return customers, nil
}

type PgxVendorRepository struct {
	BaseRepository
}

func newPgxVendorRepository(pool *pgxpool.Pool) portsrepo.VendorRepositoryFacade {
	return &PgxVendorRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.VendorRepositoryFacade = (*PgxVendorRepository)(nil)

const vendorColumns = `vendor_id, company_id, name, email, phone, tax_id,
	created_at, created_by, last_updated_at, last_updated_by`

func scanVendor(row pgx.Row) (*domain.Vendor, error) {
	var v domain.Vendor
	err := row.Scan(
		&v.VendorID, &v.CompanyID, &v.Name, &v.Email, &v.Phone, &v.TaxID,
		&v.CreatedAt, &v.CreatedBy, &v.LastUpdatedAt, &v.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *PgxVendorRepository) SaveVendor(ctx context.Context, vendor domain.Vendor) (*domain.Vendor, error) {
	query := `
		INSERT INTO vendors (company_id, name, email, phone, tax_id,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING vendor_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		vendor.CompanyID, vendor.Name, vendor.Email, vendor.Phone, vendor.TaxID,
		vendor.CreatedAt, vendor.CreatedBy, vendor.LastUpdatedAt, vendor.LastUpdatedBy,
	).Scan(&vendor.VendorID)
	if err != nil {
		return nil, mapWriteError(err, "insert vendor")
	}
	return &vendor, nil
}

func (r *PgxVendorRepository) FindVendorByID(ctx context.Context, companyID, vendorID int64) (*domain.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE company_id = $1 AND vendor_id = $2;`
	vendor, err := scanVendor(r.Pool.QueryRow(ctx, query, companyID, vendorID))
	if err != nil {
		return nil, mapReadError(err, "find vendor by id")
	}
	return vendor, nil
}

func (r *PgxVendorRepository) ListVendorsByCompany(ctx context.Context, companyID int64, limit int) ([]domain.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE company_id = $1 ORDER BY name LIMIT $2;`
	rows, err := r.Pool.Query(ctx, query, companyID, limit)
	if err != nil {
		return nil, mapReadError(err, "list vendors by company")
	}
	defer rows.Close()

	var vendors []domain.Vendor
	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			return nil, mapReadError(err, "scan vendor row")
		}
		vendors = append(vendors, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, mapReadError(err, "iterate vendor rows")
	}
	return vendors, nil
}
