package domain

import "github.com/shopspring/decimal"

// AccountTypeTotals holds the aggregate debit and credit totals posted against
// accounts of one type within a company. Computed in SQL from persisted lines.
type AccountTypeTotals struct {
	AccountType AccountType     `json:"accountType"`
	Debits      decimal.Decimal `json:"debits"`
	Credits     decimal.Decimal `json:"credits"`
}
