package repositories

import (
	"context"

	"github.com/openbookshq/openbooks/internal/core/domain"
)

// JournalEntryReader defines read operations for journal entries and lines.
type JournalEntryReader interface {
	// FindEntryByID retrieves a journal entry header by its identifier.
	FindEntryByID(ctx context.Context, entryID int64) (*domain.JournalEntry, error)

	// FindLinesByEntryID retrieves the ordered lines of one journal entry.
	FindLinesByEntryID(ctx context.Context, entryID int64) ([]domain.JournalLine, error)

	// FindLinesByEntryIDs retrieves lines for multiple entries, grouped by entry ID.
	FindLinesByEntryIDs(ctx context.Context, entryIDs []int64) (map[int64][]domain.JournalLine, error)

	// ListEntriesByCompany retrieves up to limit entry headers for a company,
	// newest first.
	ListEntriesByCompany(ctx context.Context, companyID int64, limit int) ([]domain.JournalEntry, error)

	// SumByAccountType aggregates debit and credit totals per account type for
	// a company, from persisted lines.
	SumByAccountType(ctx context.Context, companyID int64) ([]domain.AccountTypeTotals, error)
}

// JournalEntryWriter defines write operations for journal entries.
type JournalEntryWriter interface {
	// SaveEntry persists a validated entry header together with all of its
	// lines inside a single database transaction: either everything commits or
	// nothing does, so no partial entry is ever observable. Returns the
	// persisted entry with assigned identifiers and lines attached.
	SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) (*domain.JournalEntry, error)
}

// JournalRepositoryFacade combines all journal-related repository interfaces.
type JournalRepositoryFacade interface {
	JournalEntryReader
	JournalEntryWriter
}
