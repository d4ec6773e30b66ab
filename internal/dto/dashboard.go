package dto

import (
	"github.com/shopspring/decimal"
)

// AccountTypeTotalsResponse holds the debit/credit totals for one account type.
type AccountTypeTotalsResponse struct {
	AccountType string          `json:"accountType"`
	Debits      decimal.Decimal `json:"debits"`
	Credits     decimal.Decimal `json:"credits"`
}

// DashboardResponse aggregates the figures shown on the company dashboard.
type DashboardResponse struct {
	CompanyID     int64                       `json:"companyID"`
	TotalsByType  []AccountTypeTotalsResponse `json:"totalsByType"`
	InvoiceCount  int64                       `json:"invoiceCount"`
	ExpenseTotal  decimal.Decimal             `json:"expenseTotal"`
	RecentEntries []JournalEntryResponse      `json:"recentEntries"`
}
