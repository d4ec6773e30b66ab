package services

import (
	"context"
	"fmt"

	"github.com/openbookshq/openbooks/internal/core/domain"
	portsrepo "github.com/openbookshq/openbooks/internal/core/ports/repositories"
	portssvc "github.com/openbookshq/openbooks/internal/core/ports/services"
	"github.com/openbookshq/openbooks/internal/dto"
)

// recentEntryCount is how many of the latest journal entries the dashboard shows.
const recentEntryCount = 5

// dashboardService aggregates read-only figures across the bookkeeping data.
// All aggregation happens in SQL; this service only assembles the response.
type dashboardService struct {
	journalRepo portsrepo.JournalRepositoryFacade
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	expenseRepo portsrepo.ExpenseRepositoryFacade
	companySvc  portssvc.CompanySvcFacade
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(journalRepo portsrepo.JournalRepositoryFacade, invoiceRepo portsrepo.InvoiceRepositoryFacade, expenseRepo portsrepo.ExpenseRepositoryFacade, companySvc portssvc.CompanySvcFacade) portssvc.DashboardSvcFacade {
	return &dashboardService{
		journalRepo: journalRepo,
		invoiceRepo: invoiceRepo,
		expenseRepo: expenseRepo,
		companySvc:  companySvc,
	}
}

var _ portssvc.DashboardSvcFacade = (*dashboardService)(nil)

// GetSummary computes totals by account type, invoice count, expense total and
// the most recent journal entries for the company.
func (s *dashboardService) GetSummary(ctx context.Context, companyID int64, requestingUserID int64) (*dto.DashboardResponse, error) {
	if err := s.companySvc.AuthorizeUserAction(ctx, requestingUserID, companyID, domain.RoleViewer); err != nil {
		return nil, err
	}

	totals, err := s.journalRepo.SumByAccountType(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate account type totals: %w", err)
	}

	invoiceCount, err := s.invoiceRepo.CountInvoicesByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to count invoices: %w", err)
	}

	expenseTotal, err := s.expenseRepo.SumExpensesByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}

	recent, err := s.journalRepo.ListEntriesByCompany(ctx, companyID, recentEntryCount)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent entries: %w", err)
	}

	resp := &dto.DashboardResponse{
		CompanyID:    companyID,
		TotalsByType: make([]dto.AccountTypeTotalsResponse, len(totals)),
		InvoiceCount: invoiceCount,
		ExpenseTotal: expenseTotal,
	}
	for i, t := range totals {
		resp.TotalsByType[i] = dto.AccountTypeTotalsResponse{
			AccountType: string(t.AccountType),
			Debits:      t.Debits,
			Credits:     t.Credits,
		}
	}
	resp.RecentEntries = make([]dto.JournalEntryResponse, len(recent))
	for i := range recent {
		resp.RecentEntries[i] = dto.ToJournalEntryResponse(&recent[i])
	}
	return resp, nil
}
