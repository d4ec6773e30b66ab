package domain

// AccountType defines the fundamental accounting type of a ledger account.
type AccountType string

const (
	Asset              AccountType = "ASSET"
	Liability          AccountType = "LIABILITY"
	Equity             AccountType = "EQUITY"
	Revenue            AccountType = "REVENUE"
	AccountTypeExpense AccountType = "EXPENSE"
)

// ValidAccountType reports whether t is one of the five ledger account types.
func ValidAccountType(t AccountType) bool {
	switch t {
	case Asset, Liability, Equity, Revenue, AccountTypeExpense:
		return true
	}
	return false
}

// Account represents a ledger account within a company's chart of accounts.
type Account struct {
	AccountID   int64       `json:"accountID"` // Primary key (bigserial)
	CompanyID   int64       `json:"companyID"` // FK -> companies.company_id (NOT NULL)
	Name        string      `json:"name"`
	AccountType AccountType `json:"accountType"`
	Code        string      `json:"code"` // Chart-of-accounts code, unique per company
	IsActive    bool        `json:"isActive"`
	AuditFields
}
