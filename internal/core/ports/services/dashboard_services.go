package services

import (
	"context"

	"github.com/openbookshq/openbooks/internal/dto"
)

// DashboardSvcFacade aggregates read-only figures for the company dashboard.
type DashboardSvcFacade interface {
	// GetSummary computes totals by account type, invoice count, expense total
	// and the most recent journal entries for the company.
	GetSummary(ctx context.Context, companyID int64, requestingUserID int64) (*dto.DashboardResponse, error)
}
