package ledger

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"universalis/internal/tax"
	"universalis/internal/teller"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "teller.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRecordFilingRoundTrip(t *testing.T) {
	s := openTestStore(t)

	err := s.RecordFiling(teller.Filing{
		Company:   "Acme Trading Co",
		Player:    "Bob",
		Period:    "Q1 1425",
		Modifiers: "none",
		Report: tax.BusinessReport{
			GrossRevenue:  dec("100000"),
			Expenses:      dec("20000"),
			NetProfit:     dec("80000"),
			BusinessTax:   dec("9500"),
			FinalRetained: dec("70500"),
		},
	})
	require.NoError(t, err)

	entries, err := s.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, "filing", e.Kind)
	assert.Equal(t, "Acme Trading Co (Bob)", e.Summary)
	assert.True(t, e.Amount.Equal(dec("80000")), "amount = %s", e.Amount)
	assert.False(t, e.CreatedAt.IsZero())
}

func TestRecordTransferRoundTrip(t *testing.T) {
	s := openTestStore(t)

	err := s.RecordTransfer(teller.TransferRecord{
		Source:      "Acme",
		Destination: "Mill",
		Amount:      dec("3200.50"),
		Reason:      "settlement",
	})
	require.NoError(t, err)

	entries, err := s.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "transfer", entries[0].Kind)
	assert.Equal(t, "Acme -> Mill", entries[0].Summary)
	assert.True(t, entries[0].Amount.Equal(dec("3200.50")))
}

func TestRecordLoanRoundTrip(t *testing.T) {
	s := openTestStore(t)

	err := s.RecordLoan(teller.LoanNotice{
		Player:      "Eve",
		Amount:      dec("50000"),
		Purpose:     "trade ship",
		Collateral:  "none",
		RequestedBy: "eve#1234",
	})
	require.NoError(t, err)

	entries, err := s.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "loan", entries[0].Kind)
	assert.Equal(t, "Eve", entries[0].Summary)
}

func TestRecentLimitsAndOrders(t *testing.T) {
	s := openTestStore(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, s.RecordTransfer(teller.TransferRecord{
			Source:      "A",
			Destination: "B",
			Amount:      decimal.NewFromInt(int64(i + 1)),
		}))
	}

	entries, err := s.Recent(3)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	// Same-timestamp rows fall back to id order, newest insert first.
	assert.True(t, entries[0].Amount.Equal(dec("5")), "newest first, got %s", entries[0].Amount)
}

func TestRecentEmptyLedger(t *testing.T) {
	s := openTestStore(t)
	entries, err := s.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestOpenCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "teller.db")
	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, s.RecordTransfer(teller.TransferRecord{
		Source: "A", Destination: "B", Amount: decimal.NewFromInt(1),
	}))
}
