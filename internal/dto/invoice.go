package dto

import (
	"time"

	"github.com/openbookshq/openbooks/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvoiceLineRequest defines a single proposed invoice line.
type CreateInvoiceLineRequest struct {
	Description string          `json:"description" binding:"required,max=300"`
	Quantity    decimal.Decimal `json:"quantity" binding:"dpositive"`
	UnitPrice   decimal.Decimal `json:"unitPrice" binding:"dnonneg"`
}

// CreateInvoiceRequest defines data for creating an invoice with its lines.
type CreateInvoiceRequest struct {
	CustomerID int64                      `json:"customerID" binding:"required,gt=0"`
	Number     string                     `json:"number" binding:"required,max=50"`
	IssueDate  time.Time                  `json:"issueDate" binding:"required"`
	DueDate    time.Time                  `json:"dueDate" binding:"required"`
	Lines      []CreateInvoiceLineRequest `json:"lines"`
}

// ListInvoicesParams holds query parameters for listing invoices.
type ListInvoicesParams struct {
	Limit        int  `form:"limit,default=50" binding:"omitempty,gt=0,lte=100"`
	IncludeLines bool `form:"includeLines"`
}

// InvoiceLineResponse defines the data returned for an invoice line.
type InvoiceLineResponse struct {
	LineID      int64           `json:"lineID"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Amount      decimal.Decimal `json:"amount"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID  int64                 `json:"invoiceID"`
	CompanyID  int64                 `json:"companyID"`
	CustomerID int64                 `json:"customerID"`
	Number     string                `json:"number"`
	IssueDate  time.Time             `json:"issueDate"`
	DueDate    time.Time             `json:"dueDate"`
	Status     domain.InvoiceStatus  `json:"status"`
	Total      decimal.Decimal       `json:"total"`
	Lines      []InvoiceLineResponse `json:"lines,omitempty"`
	CreatedAt  time.Time             `json:"createdAt"`
	CreatedBy  int64                 `json:"createdBy"`
}

// ToInvoiceResponse converts domain.Invoice to DTO.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		InvoiceID:  inv.InvoiceID,
		CompanyID:  inv.CompanyID,
		CustomerID: inv.CustomerID,
		Number:     inv.Number,
		IssueDate:  inv.IssueDate,
		DueDate:    inv.DueDate,
		Status:     inv.Status,
		Total:      inv.Total,
		CreatedAt:  inv.CreatedAt,
		CreatedBy:  inv.CreatedBy,
	}
	if len(inv.Lines) > 0 {
		resp.Lines = make([]InvoiceLineResponse, len(inv.Lines))
		for i, l := range inv.Lines {
			resp.Lines[i] = InvoiceLineResponse{
				LineID:      l.LineID,
				Description: l.Description,
				Quantity:    l.Quantity,
				UnitPrice:   l.UnitPrice,
				Amount:      l.Amount,
			}
		}
	}
	return resp
}

// ListInvoicesResponse wraps a list of invoices.
type ListInvoicesResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
}

// ToListInvoicesResponse converts a slice of domain.Invoice to DTO.
func ToListInvoicesResponse(is []domain.Invoice) ListInvoicesResponse {
	list := make([]InvoiceResponse, len(is))
	for i := range is {
		list[i] = ToInvoiceResponse(&is[i])
	}
	return ListInvoicesResponse{Invoices: list}
}
