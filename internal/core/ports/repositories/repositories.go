package repositories

// RepositoryContainer holds instances of all repositories, wired once at
// startup and handed to the service layer.
type RepositoryContainer struct {
	User     UserRepositoryFacade
	Company  CompanyRepositoryFacade
	Account  AccountRepositoryFacade
	Journal  JournalRepositoryFacade
	Customer CustomerRepositoryFacade
	Vendor   VendorRepositoryFacade
	Invoice  InvoiceRepositoryFacade
	Expense  ExpenseRepositoryFacade
}
