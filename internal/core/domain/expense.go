package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single tenant-scoped expense record, optionally tied to a vendor.
type Expense struct {
	ExpenseID   int64           `json:"expenseID"` // Primary key (bigserial)
	CompanyID   int64           `json:"companyID"` // FK -> companies.company_id (NOT NULL)
	VendorID    *int64          `json:"vendorID,omitempty"`
	Category    string          `json:"category"`
	ExpenseDate time.Time       `json:"expenseDate"`
	Amount      decimal.Decimal `json:"amount"` // Positive
	Description string          `json:"description"`
	AuditFields
}
