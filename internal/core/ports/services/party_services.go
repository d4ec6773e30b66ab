package services

import (
	"context"

	"github.com/openbookshq/openbooks/internal/core/domain"
	"github.com/openbookshq/openbooks/internal/dto"
)

// CustomerSvcFacade defines customer operations, all company-scoped.
type CustomerSvcFacade interface {
	// CreateCustomer creates a new customer in the company.
	CreateCustomer(ctx context.Context, companyID int64, req dto.CreatePartyRequest, creatorUserID int64) (*domain.Customer, error)

	// ListCustomers retrieves up to limit customers for the company.
	ListCustomers(ctx context.Context, companyID int64, limit int, requestingUserID int64) ([]domain.Customer, error)
}

// VendorSvcFacade defines vendor operations, all company-scoped.
type VendorSvcFacade interface {
	// CreateVendor creates a new vendor in the company.
	CreateVendor(ctx context.Context, companyID int64, req dto.CreatePartyRequest, creatorUserID int64) (*domain.Vendor, error)

	// ListVendors retrieves up to limit vendors for the company.
	ListVendors(ctx context.Context, companyID int64, limit int, requestingUserID int64) ([]domain.Vendor, error)
}
