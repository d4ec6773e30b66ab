package repositories

import (
	"context"

	"github.com/openbookshq/openbooks/internal/core/domain"
)

// CustomerRepositoryFacade defines operations for customer data.
type CustomerRepositoryFacade interface {
	// SaveCustomer persists a new customer and returns it with the assigned identifier.
	SaveCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error)

	// FindCustomerByID retrieves a customer by identifier, scoped by company.
	FindCustomerByID(ctx context.Context, companyID, customerID int64) (*domain.Customer, error)

	// ListCustomersByCompany retrieves up to limit customers for a company.
	ListCustomersByCompany(ctx context.Context, companyID int64, limit int) ([]domain.Customer, error)
}

// VendorRepositoryFacade defines operations for vendor data.
type VendorRepositoryFacade interface {
	// SaveVendor persists a new vendor and returns it with the assigned identifier.
	SaveVendor(ctx context.Context, vendor domain.Vendor) (*domain.Vendor, error)

	// FindVendorByID retrieves a vendor by identifier, scoped by company.
	FindVendorByID(ctx context.Context, companyID, vendorID int64) (*domain.Vendor, error)

	// ListVendorsByCompany retrieves up to limit vendors for a company.
	ListVendorsByCompany(ctx context.Context, companyID int64, limit int) ([]domain.Vendor, error)
}
