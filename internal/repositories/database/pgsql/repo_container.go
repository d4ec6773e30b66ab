package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/openbookshq/openbooks/internal/core/ports/repositories"
)

// NewRepositoryContainer wires all pgx-backed repositories over one pool.
func NewRepositoryContainer(dbPool *pgxpool.Pool) *portsrepo.RepositoryContainer {
	return &portsrepo.RepositoryContainer{
		User:     newPgxUserRepository(dbPool),
		Company:  newPgxCompanyRepository(dbPool),
		Account:  newPgxAccountRepository(dbPool),
		Journal:  newPgxJournalRepository(dbPool),
		Customer: newPgxCustomerRepository(dbPool),
		Vendor:   newPgxVendorRepository(dbPool),
		Invoice:  newPgxInvoiceRepository(dbPool),
		Expense:  newPgxExpenseRepository(dbPool),
	}
}
