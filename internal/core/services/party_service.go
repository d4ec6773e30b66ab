package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/openbookshq/openbooks/internal/core/domain"
	portsrepo "github.com/openbookshq/openbooks/internal/core/ports/repositories"
	portssvc "github.com/openbookshq/openbooks/internal/core/ports/services"
	"github.com/openbookshq/openbooks/internal/dto"
	"github.com/openbookshq/openbooks/internal/middleware"
)

// customerService handles customer master data for a company.
type customerService struct {
	customerRepo portsrepo.CustomerRepositoryFacade
	companySvc   portssvc.CompanySvcFacade
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade, companySvc portssvc.CompanySvcFacade) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: customerRepo, companySvc: companySvc}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

func (s *customerService) CreateCustomer(ctx context.Context, companyID int64, req dto.CreatePartyRequest, creatorUserID int64) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.companySvc.AuthorizeUserAction(ctx, creatorUserID, companyID, domain.RoleMember); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	customer := domain.Customer{
		CompanyID: companyID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		TaxID:     req.TaxID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	saved, err := s.customerRepo.SaveCustomer(ctx, customer)
	if err != nil {
		logger.Error("Failed to save customer", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	logger.Info("Customer created", slog.Int64("customer_id", saved.CustomerID))
	return saved, nil
}

func (s *customerService) ListCustomers(ctx context.Context, companyID int64, limit int, requestingUserID int64) ([]domain.Customer, error) {
	if err := s.companySvc.AuthorizeUserAction(ctx, requestingUserID, companyID, domain.RoleViewer); err != nil {
		return nil, err
	}
	customers, err := s.customerRepo.ListCustomersByCompany(ctx, companyID, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	if customers == nil {
		customers = []domain.Customer{}
	}
	return customers, nil
}

// vendorService handles vendor master data for a company.
type vendorService struct {
	vendorRepo portsrepo.VendorRepositoryFacade
	companySvc portssvc.CompanySvcFacade
}

// NewVendorService creates a new VendorService.
func NewVendorService(vendorRepo portsrepo.VendorRepositoryFacade, companySvc portssvc.CompanySvcFacade) portssvc.VendorSvcFacade {
	return &vendorService{vendorRepo: vendorRepo, companySvc: companySvc}
}

var _ portssvc.VendorSvcFacade = (*vendorService)(nil)

func (s *vendorService) CreateVendor(ctx context.Context, companyID int64, req dto.CreatePartyRequest, creatorUserID int64) (*domain.Vendor, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.companySvc.AuthorizeUserAction(ctx, creatorUserID, companyID, domain.RoleMember); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	vendor := domain.Vendor{
		CompanyID: companyID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		TaxID:     req.TaxID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	saved, err := s.vendorRepo.SaveVendor(ctx, vendor)
	if err != nil {
		logger.Error("Failed to save vendor", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create vendor: %w", err)
	}

	logger.Info("Vendor created", slog.Int64("vendor_id", saved.VendorID))
	return saved, nil
}

func (s *vendorService) ListVendors(ctx context.Context, companyID int64, limit int, requestingUserID int64) ([]domain.Vendor, error) {
	if err := s.companySvc.AuthorizeUserAction(ctx, requestingUserID, companyID, domain.RoleViewer); err != nil {
		return nil, err
	}
	vendors, err := s.vendorRepo.ListVendorsByCompany(ctx, companyID, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	if vendors == nil {
		vendors = []domain.Vendor{}
	}
	return vendors, nil
}
