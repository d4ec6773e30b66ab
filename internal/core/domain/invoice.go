package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus indicates the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft InvoiceStatus = "DRAFT"
	InvoiceSent  InvoiceStatus = "SENT"
	InvoicePaid  InvoiceStatus = "PAID"
)

// Invoice follows the same header+lines ownership pattern as JournalEntry:
// header and lines are committed atomically and share lifetime.
type Invoice struct {
	InvoiceID  int64           `json:"invoiceID"`  // Primary key (bigserial)
	CompanyID  int64           `json:"companyID"`  // FK -> companies.company_id (NOT NULL)
	CustomerID int64           `json:"customerID"` // FK -> customers.customer_id, same company
	Number     string          `json:"number"`     // Unique per company
	IssueDate  time.Time       `json:"issueDate"`
	DueDate    time.Time       `json:"dueDate"`
	Status     InvoiceStatus   `json:"status"`
	Total      decimal.Decimal `json:"total"` // Sum of line amounts, computed server-side
	Lines      []InvoiceLine   `json:"lines,omitempty"`
	AuditFields
}

// InvoiceLine is a billable line item within an Invoice.
type InvoiceLine struct {
	LineID      int64           `json:"lineID"`    // Primary key (bigserial)
	InvoiceID   int64           `json:"invoiceID"` // FK -> invoices.invoice_id (NOT NULL)
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Amount      decimal.Decimal `json:"amount"` // quantity * unitPrice
	Position    int             `json:"position"`
}
