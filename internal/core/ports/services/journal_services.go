package services

import (
	"context"

	"github.com/openbookshq/openbooks/internal/core/domain"
	"github.com/openbookshq/openbooks/internal/dto"
)

// JournalSvcFacade defines journal entry operations, all company-scoped.
// Entries are append-only: there is no update or delete path.
type JournalSvcFacade interface {
	// CreateEntry validates a proposed entry (structure, double-entry balance,
	// account ownership) and persists it atomically with its lines.
	CreateEntry(ctx context.Context, companyID int64, req dto.CreateJournalEntryRequest, creatorUserID int64) (*domain.JournalEntry, error)

	// GetEntryByID retrieves one entry with its lines, scoped by company.
	GetEntryByID(ctx context.Context, companyID, entryID int64, requestingUserID int64) (*domain.JournalEntry, error)

	// ListEntries retrieves entry headers for the company, optionally with lines.
	ListEntries(ctx context.Context, companyID int64, params dto.ListJournalEntriesParams, requestingUserID int64) ([]domain.JournalEntry, error)
}
