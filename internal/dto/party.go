package dto

import (
	"time"

	"github.com/openbookshq/openbooks/internal/core/domain"
)

// CreatePartyRequest defines data for creating a customer or vendor.
type CreatePartyRequest struct {
	Name  string `json:"name" binding:"required,max=150"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone" binding:"omitempty,max=30"`
	TaxID string `json:"taxID" binding:"omitempty,max=50"`
}

// CustomerResponse defines data returned for a customer.
type CustomerResponse struct {
	CustomerID int64     `json:"customerID"`
	CompanyID  int64     `json:"companyID"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	TaxID      string    `json:"taxID,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// VendorResponse defines data returned for a vendor.
type VendorResponse struct {
	VendorID  int64     `json:"vendorID"`
	CompanyID int64     `json:"companyID"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	TaxID     string    `json:"taxID,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToCustomerResponse converts domain.Customer to DTO.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID: c.CustomerID,
		CompanyID:  c.CompanyID,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		TaxID:      c.TaxID,
		CreatedAt:  c.CreatedAt,
	}
}

// ToVendorResponse converts domain.Vendor to DTO.
func ToVendorResponse(v *domain.Vendor) VendorResponse {
	return VendorResponse{
		VendorID:  v.VendorID,
		CompanyID: v.CompanyID,
		Name:      v.Name,
		Email:     v.Email,
		Phone:     v.Phone,
		TaxID:     v.TaxID,
		CreatedAt: v.CreatedAt,
	}
}

// ListCustomersResponse wraps a list of customers.
type ListCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
}

// ToListCustomersResponse converts a slice of domain.Customer to DTO.
func ToListCustomersResponse(cs []domain.Customer) ListCustomersResponse {
	list := make([]CustomerResponse, len(cs))
	for i := range cs {
		list[i] = ToCustomerResponse(&cs[i])
	}
	return ListCustomersResponse{Customers: list}
}

// ListVendorsResponse wraps a list of vendors.
type ListVendorsResponse struct {
	Vendors []VendorResponse `json:"vendors"`
}

// ToListVendorsResponse converts a slice of domain.Vendor to DTO.
func ToListVendorsResponse(vs []domain.Vendor) ListVendorsResponse {
	list := make([]VendorResponse, len(vs))
	for i := range vs {
		list[i] = ToVendorResponse(&vs[i])
	}
	return ListVendorsResponse{Vendors: list}
}
