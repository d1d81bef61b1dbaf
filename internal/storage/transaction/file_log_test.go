package transaction

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger-store/internal/storage/fixedwidth"
)

func newTestLog(t *testing.T) (*FileLog, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "transactions.txt")
	return NewFileLog(path), path
}

func makeEntry(number int64, entryType Type, amount, balanceAfter string) *Transaction {
	return &Transaction{
		AccountNumber: number,
		Type:          entryType,
		Amount:        decimal.RequireFromString(amount),
		BalanceAfter:  decimal.RequireFromString(balanceAfter),
		Timestamp:     time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestReadAll_MissingFile(t *testing.T) {
	log, _ := newTestLog(t)

	entries, err := log.ReadAll(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAppend_CreatesFileAndKeepsOrder(t *testing.T) {
	log, path := newTestLog(t)
	ctx := context.Background()

	require.NoError(t, log.Append(ctx, makeEntry(1001, TypeCreate, "100", "100")))
	require.NoError(t, log.Append(ctx, makeEntry(1001, TypeDeposit, "50.5", "150.5")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"1001           Create         100.00         100.00         2025-07-01T12:00:00.000Z\n"+
			"1001           Deposit        50.50          150.50         2025-07-01T12:00:00.000Z\n",
		string(data))

	entries, err := log.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, TypeCreate, entries[0].Type)
	assert.Equal(t, TypeDeposit, entries[1].Type)
	assert.True(t, entries[1].BalanceAfter.Equal(decimal.RequireFromString("150.50")))
}

func TestAppend_NeverRewritesPriorEntries(t *testing.T) {
	log, path := newTestLog(t)
	ctx := context.Background()
	prior := "1001           Create         1.00           1.00           2025-01-01T00:00:00.000Z\n"
	require.NoError(t, os.WriteFile(path, []byte(prior), 0o644))

	require.NoError(t, log.Append(ctx, makeEntry(1001, TypeRemove, "1", "0")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, prior, string(data)[:len(prior)])
}

func TestAppend_RejectsOverflowingEntry(t *testing.T) {
	log, path := newTestLog(t)
	ctx := context.Background()
	require.NoError(t, log.Append(ctx, makeEntry(1001, TypeCreate, "1", "1")))

	err := log.Append(ctx, makeEntry(1001, TypeDeposit, "10000000000000", "10000000000001"))
	assert.True(t, errors.Is(err, fixedwidth.ErrFieldOverflow), "got %v", err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1001           Create         1.00           1.00           2025-07-01T12:00:00.000Z\n", string(data))
}

func TestReadAll_SkipsMalformedLines(t *testing.T) {
	log, path := newTestLog(t)
	contents := "1001           Create         1.00           1.00           2025-01-01T00:00:00.000Z\n" +
		"not a ledger line\n" +
		"1001           Refund         1.00           1.00           2025-01-01T00:00:00.000Z\n" +
		"1002           Withdraw       0.50           0.50           2025-01-02T00:00:00.000Z\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	entries, err := log.ReadAll(context.Background())

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(1002), entries[1].AccountNumber)
	assert.Equal(t, TypeWithdraw, entries[1].Type)
}
