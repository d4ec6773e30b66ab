package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is the header of a balanced, dated bookkeeping transaction.
// An entry and its lines are created together as one atomic unit and are
// append-only once committed.
type JournalEntry struct {
	EntryID     int64         `json:"entryID"`   // Primary key (bigserial)
	CompanyID   int64         `json:"companyID"` // FK -> companies.company_id (NOT NULL)
	EntryDate   time.Time     `json:"entryDate"`
	Description string        `json:"description"`
	Lines       []JournalLine `json:"lines,omitempty"`
	AuditFields
}

// JournalLine is a single debit/credit line within a JournalEntry. A line is
// meaningless without its header and never outlives it. Debit and credit are
// non-negative; only the aggregate balance across lines is enforced, not
// per-line exclusivity.
type JournalLine struct {
	LineID    int64           `json:"lineID"`    // Primary key (bigserial)
	EntryID   int64           `json:"entryID"`   // FK -> journal_entries.entry_id (NOT NULL)
	AccountID int64           `json:"accountID"` // FK -> accounts.account_id, same company as the header
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	Position  int             `json:"position"` // Order of the line within the entry
}
