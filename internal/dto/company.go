package dto

import (
	"time"

	"github.com/openbookshq/openbooks/internal/core/domain"
)

// CreateCompanyRequest defines data for creating a new company.
type CreateCompanyRequest struct {
	Name string `json:"name" binding:"required,max=150"`
}

// CompanyResponse defines data returned for a company.
type CompanyResponse struct {
	CompanyID int64     `json:"companyID"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy int64     `json:"createdBy"`
}

// ToCompanyResponse converts domain.Company to DTO.
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID: c.CompanyID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		CreatedBy: c.CreatedBy,
	}
}

// ListCompaniesResponse wraps a list of companies.
type ListCompaniesResponse struct {
	Companies []CompanyResponse `json:"companies"`
}

// ToListCompaniesResponse converts a slice of domain.Company to DTO.
func ToListCompaniesResponse(cs []domain.Company) ListCompaniesResponse {
	list := make([]CompanyResponse, len(cs))
	for i, c := range cs {
		list[i] = ToCompanyResponse(&c)
	}
	return ListCompaniesResponse{Companies: list}
}

// AddMemberRequest defines data for adding a user to a company.
type AddMemberRequest struct {
	UserID int64              `json:"userID" binding:"required,gt=0"`
	Role   domain.CompanyRole `json:"role" binding:"required,oneof=ADMIN MEMBER VIEWER"`
}

// MembershipResponse defines data returned about a user's membership.
type MembershipResponse struct {
	UserID    int64              `json:"userID"`
	CompanyID int64              `json:"companyID"`
	Role      domain.CompanyRole `json:"role"`
	JoinedAt  time.Time          `json:"joinedAt"`
}

// ToMembershipResponse converts domain.CompanyMembership to DTO.
func ToMembershipResponse(m *domain.CompanyMembership) MembershipResponse {
	return MembershipResponse{
		UserID:    m.UserID,
		CompanyID: m.CompanyID,
		Role:      m.Role,
		JoinedAt:  m.JoinedAt,
	}
}
