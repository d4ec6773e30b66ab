package accounting_test

import (
	"errors"
	"testing"

	"github.com/openbookshq/openbooks/internal/core/domain"
	"github.com/openbookshq/openbooks/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func line(accountID int64, debit, credit string) domain.JournalLine {
	return domain.JournalLine{AccountID: accountID, Debit: dec(debit), Credit: dec(credit)}
}

func TestValidateLines(t *testing.T) {
	tests := []struct {
		name    string
		lines   []domain.JournalLine
		wantErr error
	}{
		{
			name: "balanced two line entry",
			lines: []domain.JournalLine{
				line(1, "500.00", "0"),
				line(2, "0", "500.00"),
			},
		},
		{
			name: "balanced multi line entry",
			lines: []domain.JournalLine{
				line(1, "100.00", "0"),
				line(2, "250.50", "0"),
				line(3, "0", "200.25"),
				line(4, "0", "150.25"),
			},
		},
		{
			name: "within tolerance",
			lines: []domain.JournalLine{
				line(1, "100.005", "0"),
				line(2, "0", "100.00"),
			},
		},
		{
			name: "exactly at tolerance boundary",
			lines: []domain.JournalLine{
				line(1, "100.01", "0"),
				line(2, "0", "100.00"),
			},
		},
		{
			name: "single line with both debit and credit is permitted",
			lines: []domain.JournalLine{
				line(1, "500.00", "500.00"),
			},
		},
		{
			name:    "empty line set",
			lines:   nil,
			wantErr: accounting.ErrEmptyEntry,
		},
		{
			name: "unbalanced entry",
			lines: []domain.JournalLine{
				line(1, "500.00", "0"),
				line(2, "0", "499.50"),
			},
			wantErr: &accounting.UnbalancedEntryError{},
		},
		{
			name: "negative debit",
			lines: []domain.JournalLine{
				line(1, "-10.00", "0"),
				line(2, "0", "-10.00"),
			},
			wantErr: &accounting.InvalidAmountError{},
		},
		{
			name: "negative credit",
			lines: []domain.JournalLine{
				line(1, "10.00", "0"),
				line(2, "0", "-10.00"),
			},
			wantErr: &accounting.InvalidAmountError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals, err := accounting.ValidateLines(tt.lines)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.True(t, totals.Balanced())
				return
			}
			require.Error(t, err)
			switch want := tt.wantErr.(type) {
			case *accounting.UnbalancedEntryError:
				var ue *accounting.UnbalancedEntryError
				require.ErrorAs(t, err, &ue)
				_ = want
			case *accounting.InvalidAmountError:
				var ie *accounting.InvalidAmountError
				require.ErrorAs(t, err, &ie)
			default:
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateLinesReportsBothTotals(t *testing.T) {
	lines := []domain.JournalLine{
		line(1, "500.00", "0"),
		line(2, "0", "499.50"),
	}

	_, err := accounting.ValidateLines(lines)
	var ue *accounting.UnbalancedEntryError
	require.True(t, errors.As(err, &ue))
	assert.True(t, ue.TotalDebits.Equal(dec("500.00")), "debits total: %s", ue.TotalDebits)
	assert.True(t, ue.TotalCredits.Equal(dec("499.50")), "credits total: %s", ue.TotalCredits)
	assert.Contains(t, ue.Error(), "500")
	assert.Contains(t, ue.Error(), "499.5")
}

func TestSumLinesAccumulatesDecimals(t *testing.T) {
	// 0.1 + 0.2 style sums that would drift in binary floating point.
	lines := make([]domain.JournalLine, 0, 20)
	for i := 0; i < 10; i++ {
		lines = append(lines, line(1, "0.10", "0"))
	}
	lines = append(lines, line(2, "0", "1.00"))

	totals, err := accounting.ValidateLines(lines)
	require.NoError(t, err)
	assert.True(t, totals.Debits.Equal(dec("1.00")))
	assert.True(t, totals.Credits.Equal(dec("1.00")))
}

func TestValidateAccountOwnership(t *testing.T) {
	accounts := map[int64]domain.Account{
		1: {AccountID: 1, CompanyID: 7},
		2: {AccountID: 2, CompanyID: 7},
		3: {AccountID: 3, CompanyID: 9}, // Different company
	}

	t.Run("all accounts in company", func(t *testing.T) {
		err := accounting.ValidateAccountOwnership(7, []domain.JournalLine{
			line(1, "10", "0"), line(2, "0", "10"),
		}, accounts)
		assert.NoError(t, err)
	})

	t.Run("account from another company", func(t *testing.T) {
		err := accounting.ValidateAccountOwnership(7, []domain.JournalLine{
			line(1, "10", "0"), line(3, "0", "10"),
		}, accounts)
		var cte *accounting.CrossTenantReferenceError
		require.True(t, errors.As(err, &cte))
		assert.Equal(t, int64(3), cte.AccountID)
	})

	t.Run("unknown account", func(t *testing.T) {
		err := accounting.ValidateAccountOwnership(7, []domain.JournalLine{
			line(99, "10", "0"), line(2, "0", "10"),
		}, accounts)
		var cte *accounting.CrossTenantReferenceError
		require.True(t, errors.As(err, &cte))
		assert.Equal(t, int64(99), cte.AccountID)
	})
}
