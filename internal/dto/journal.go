package dto

import (
	"time"

	"github.com/openbookshq/openbooks/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateJournalLineRequest defines a single proposed debit/credit line.
// Amounts bind through shopspring/decimal, so non-numeric input is rejected
// at the boundary before the validator runs.
type CreateJournalLineRequest struct {
	AccountID int64           `json:"accountID" binding:"required,gt=0"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// CreateJournalEntryRequest defines data for creating a journal entry with its lines.
type CreateJournalEntryRequest struct {
	Date        time.Time                  `json:"date" binding:"required"`
	Description string                     `json:"description" binding:"required,max=500"`
	Lines       []CreateJournalLineRequest `json:"lines"`
}

// ListJournalEntriesParams holds query parameters for listing entries.
type ListJournalEntriesParams struct {
	Limit        int  `form:"limit,default=50" binding:"omitempty,gt=0,lte=100"`
	IncludeLines bool `form:"includeLines"`
}

// JournalLineResponse defines the data returned for a journal line.
type JournalLineResponse struct {
	LineID    int64           `json:"lineID"`
	AccountID int64           `json:"accountID"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID     int64                 `json:"entryID"`
	CompanyID   int64                 `json:"companyID"`
	Date        time.Time             `json:"date"`
	Description string                `json:"description"`
	Lines       []JournalLineResponse `json:"lines,omitempty"`
	CreatedAt   time.Time             `json:"createdAt"`
	CreatedBy   int64                 `json:"createdBy"`
}

// ToJournalLineResponse converts a domain.JournalLine to DTO.
func ToJournalLineResponse(l *domain.JournalLine) JournalLineResponse {
	return JournalLineResponse{
		LineID:    l.LineID,
		AccountID: l.AccountID,
		Debit:     l.Debit,
		Credit:    l.Credit,
	}
}

// ToJournalEntryResponse converts a domain.JournalEntry to DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	resp := JournalEntryResponse{
		EntryID:     e.EntryID,
		CompanyID:   e.CompanyID,
		Date:        e.EntryDate,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		CreatedBy:   e.CreatedBy,
	}
	if len(e.Lines) > 0 {
		resp.Lines = make([]JournalLineResponse, len(e.Lines))
		for i := range e.Lines {
			resp.Lines[i] = ToJournalLineResponse(&e.Lines[i])
		}
	}
	return resp
}

// ListJournalEntriesResponse wraps a list of journal entries.
type ListJournalEntriesResponse struct {
	Entries []JournalEntryResponse `json:"entries"`
}

// ToListJournalEntriesResponse converts a slice of domain.JournalEntry to DTO.
func ToListJournalEntriesResponse(es []domain.JournalEntry) ListJournalEntriesResponse {
	list := make([]JournalEntryResponse, len(es))
	for i := range es {
		list[i] = ToJournalEntryResponse(&es[i])
	}
	return ListJournalEntriesResponse{Entries: list}
}
