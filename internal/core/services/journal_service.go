package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/openbookshq/openbooks/internal/apperrors"
	"github.com/openbookshq/openbooks/internal/core/domain"
	portsrepo "github.com/openbookshq/openbooks/internal/core/ports/repositories"
	portssvc "github.com/openbookshq/openbooks/internal/core/ports/services"
	"github.com/openbookshq/openbooks/internal/dto"
	"github.com/openbookshq/openbooks/internal/middleware"
	"github.com/openbookshq/openbooks/internal/utils/accounting"
)

// journalService orchestrates journal entry validation and atomic persistence.
// Validation is done entirely in memory before the repository is touched; a
// request that fails any check never reaches the database.
type journalService struct {
	journalRepo portsrepo.JournalRepositoryFacade
	accountSvc  portssvc.AccountSvcFacade
	companySvc  portssvc.CompanySvcFacade
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountSvc portssvc.AccountSvcFacade, companySvc portssvc.CompanySvcFacade) portssvc.JournalSvcFacade {
	return &journalService{journalRepo: journalRepo, accountSvc: accountSvc, companySvc: companySvc}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// CreateEntry validates a proposed journal entry and persists it atomically.
//
// Checks run in order: membership, structural/balance rules, account
// ownership, account activity. Writes are not retried; on a persistence
// failure the caller sees the error and nothing is committed.
func (s *journalService) CreateEntry(ctx context.Context, companyID int64, req dto.CreateJournalEntryRequest, creatorUserID int64) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.companySvc.AuthorizeUserAction(ctx, creatorUserID, companyID, domain.RoleMember); err != nil {
		return nil, err
	}

	lines := make([]domain.JournalLine, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = domain.JournalLine{
			AccountID: l.AccountID,
			Debit:     l.Debit,
			Credit:    l.Credit,
			Position:  i,
		}
	}

	totals, err := accounting.ValidateLines(lines)
	if err != nil {
		logger.Warn("Journal entry rejected by validator", slog.String("reason", err.Error()))
		return nil, err
	}

	accountIDs := make([]int64, len(lines))
	for i, l := range lines {
		accountIDs[i] = l.AccountID
	}
	accounts, err := s.accountSvc.GetAccountsByIDs(ctx, companyID, accountIDs, creatorUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load referenced accounts: %w", err)
	}

	if err := accounting.ValidateAccountOwnership(companyID, lines, accounts); err != nil {
		logger.Warn("Journal entry rejected: foreign account reference", slog.String("reason", err.Error()))
		return nil, err
	}
	for _, acc := range accounts {
		if !acc.IsActive {
			return nil, fmt.Errorf("%w: account %d is inactive", apperrors.ErrValidation, acc.AccountID)
		}
	}

	now := time.Now().UTC()
	entry := domain.JournalEntry{
		CompanyID:   companyID,
		EntryDate:   req.Date,
		Description: req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	saved, err := s.journalRepo.SaveEntry(ctx, entry, lines)
	if err != nil {
		logger.Error("Failed to commit journal entry", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to commit journal entry: %w", err)
	}

	logger.Info("Journal entry committed",
		slog.Int64("entry_id", saved.EntryID),
		slog.Int("line_count", len(saved.Lines)),
		slog.String("total_debits", totals.Debits.String()))
	return saved, nil
}

// GetEntryByID retrieves one entry with its lines, scoped by company. An entry
// belonging to another company is reported as not found rather than forbidden
// so its existence is not revealed.
func (s *journalService) GetEntryByID(ctx context.Context, companyID, entryID int64, requestingUserID int64) (*domain.JournalEntry, error) {
	if err := s.companySvc.AuthorizeUserAction(ctx, requestingUserID, companyID, domain.RoleViewer); err != nil {
		return nil, err
	}

	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.CompanyID != companyID {
		return nil, fmt.Errorf("%w: journal entry %d", apperrors.ErrNotFound, entryID)
	}

	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load lines for entry %d: %w", entryID, err)
	}
	entry.Lines = lines
	return entry, nil
}

// ListEntries retrieves entry headers for the company, newest first,
// optionally populating lines in a single batched query.
func (s *journalService) ListEntries(ctx context.Context, companyID int64, params dto.ListJournalEntriesParams, requestingUserID int64) ([]domain.JournalEntry, error) {
	if err := s.companySvc.AuthorizeUserAction(ctx, requestingUserID, companyID, domain.RoleViewer); err != nil {
		return nil, err
	}

	entries, err := s.journalRepo.ListEntriesByCompany(ctx, companyID, clampLimit(params.Limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	if entries == nil {
		entries = []domain.JournalEntry{}
	}

	if params.IncludeLines && len(entries) > 0 {
		entryIDs := make([]int64, len(entries))
		for i := range entries {
			entryIDs[i] = entries[i].EntryID
		}
		linesByEntry, err := s.journalRepo.FindLinesByEntryIDs(ctx, entryIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load lines for entries: %w", err)
		}
		for i := range entries {
			entries[i].Lines = linesByEntry[entries[i].EntryID]
		}
	}
	return entries, nil
}
