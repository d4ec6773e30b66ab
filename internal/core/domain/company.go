package domain

import "time"

// Company is the tenant root. Every account, journal entry, customer, vendor,
// invoice and expense belongs to exactly one company.
type Company struct {
	CompanyID int64  `json:"companyID"` // Primary key (bigserial)
	Name      string `json:"name"`
	AuditFields
}

// CompanyRole defines the possible roles a user can have within a company.
type CompanyRole string

const (
	RoleAdmin  CompanyRole = "ADMIN"
	RoleMember CompanyRole = "MEMBER"
	RoleViewer CompanyRole = "VIEWER" // Read-only access to company data
)

// CompanyMembership represents the membership of a User in a Company.
// The (user, company) pair carries the role.
type CompanyMembership struct {
	UserID    int64       `json:"userID"`
	CompanyID int64       `json:"companyID"`
	Role      CompanyRole `json:"role"`
	JoinedAt  time.Time   `json:"joinedAt"`
}
