package accounting

import (
	"errors"
	"fmt"

	"github.com/openbookshq/openbooks/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceTolerance is the maximum absolute difference allowed between the
// debit and credit totals of a journal entry, in currency units.
var BalanceTolerance = decimal.NewFromFloat(0.01)

// ErrEmptyEntry indicates a journal entry was submitted with no lines. An
// entry with zero lines cannot balance and carries no accounting meaning.
var ErrEmptyEntry = errors.New("journal entry has no lines")

// InvalidAmountError indicates a line carries a negative debit or credit amount.
type InvalidAmountError struct {
	Position int    // Zero-based index of the offending line
	Field    string // "debit" or "credit"
	Amount   decimal.Decimal
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("line %d: %s amount %s is negative", e.Position, e.Field, e.Amount.String())
}

// UnbalancedEntryError indicates the debit and credit totals differ by more
// than BalanceTolerance. Both totals are carried so the caller can display
// the discrepancy.
type UnbalancedEntryError struct {
	TotalDebits  decimal.Decimal
	TotalCredits decimal.Decimal
}

func (e *UnbalancedEntryError) Error() string {
	return fmt.Sprintf("journal entry does not balance: debits total %s, credits total %s",
		e.TotalDebits.String(), e.TotalCredits.String())
}

// CrossTenantReferenceError indicates a line references an account that does
// not belong to the entry's company (or does not exist at all; existence is
// not revealed).
type CrossTenantReferenceError struct {
	AccountID int64
	CompanyID int64
}

func (e *CrossTenantReferenceError) Error() string {
	return fmt.Sprintf("account %d does not belong to company %d", e.AccountID, e.CompanyID)
}

// EntryTotals holds the decimal debit and credit sums of an entry's lines.
type EntryTotals struct {
	Debits  decimal.Decimal
	Credits decimal.Decimal
}

// SumLines computes the debit and credit totals over all lines using decimal
// arithmetic, so no rounding error accumulates across many lines.
func SumLines(lines []domain.JournalLine) EntryTotals {
	totals := EntryTotals{Debits: decimal.Zero, Credits: decimal.Zero}
	for _, line := range lines {
		totals.Debits = totals.Debits.Add(line.Debit)
		totals.Credits = totals.Credits.Add(line.Credit)
	}
	return totals
}

// Balanced reports whether the totals agree within BalanceTolerance.
func (t EntryTotals) Balanced() bool {
	return t.Debits.Sub(t.Credits).Abs().LessThanOrEqual(BalanceTolerance)
}

// ValidateLines checks the structural and double-entry rules for a proposed
// set of journal lines:
//  1. the line set must be non-empty (ErrEmptyEntry),
//  2. every debit and credit amount must be non-negative (InvalidAmountError),
//  3. |Σdebit − Σcredit| ≤ BalanceTolerance (UnbalancedEntryError).
//
// A single line may carry both a debit and a credit; only the aggregate
// balance is enforced. The function is pure and performs no I/O.
func ValidateLines(lines []domain.JournalLine) (EntryTotals, error) {
	if len(lines) == 0 {
		return EntryTotals{}, ErrEmptyEntry
	}

	for i, line := range lines {
		if line.Debit.IsNegative() {
			return EntryTotals{}, &InvalidAmountError{Position: i, Field: "debit", Amount: line.Debit}
		}
		if line.Credit.IsNegative() {
			return EntryTotals{}, &InvalidAmountError{Position: i, Field: "credit", Amount: line.Credit}
		}
	}

	totals := SumLines(lines)
	if !totals.Balanced() {
		return totals, &UnbalancedEntryError{TotalDebits: totals.Debits, TotalCredits: totals.Credits}
	}
	return totals, nil
}

// ValidateAccountOwnership checks that every line references an account that
// exists in the given map and belongs to companyID. Storage alone cannot tell
// a foreign account reference from a valid one, so this check must not be
// skipped before commit.
func ValidateAccountOwnership(companyID int64, lines []domain.JournalLine, accounts map[int64]domain.Account) error {
	for _, line := range lines {
		acc, found := accounts[line.AccountID]
		if !found || acc.CompanyID != companyID {
			return &CrossTenantReferenceError{AccountID: line.AccountID, CompanyID: companyID}
		}
	}
	return nil
}
