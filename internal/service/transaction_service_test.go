package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger-store/internal/storage"
	"github.com/carson-networks/ledger-store/internal/storage/transaction"
)

func newTransactionTestService(t *testing.T) (*TransactionService, *transaction.MockITransactionLog) {
	t.Helper()
	log := transaction.NewMockITransactionLog(t)
	return NewTransactionService(&storage.Storage{Transactions: log}), log
}

func makeEntries() []*transaction.Transaction {
	ts := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	return []*transaction.Transaction{
		{AccountNumber: 1001, Type: transaction.TypeCreate, Amount: dec("10"), BalanceAfter: dec("10"), Timestamp: ts},
		{AccountNumber: 1002, Type: transaction.TypeCreate, Amount: dec("5"), BalanceAfter: dec("5"), Timestamp: ts},
		{AccountNumber: 1001, Type: transaction.TypeDeposit, Amount: dec("1"), BalanceAfter: dec("11"), Timestamp: ts},
	}
}

func TestListTransactions_All(t *testing.T) {
	svc, log := newTransactionTestService(t)
	log.EXPECT().ReadAll(mock.Anything).Return(makeEntries(), nil)

	entries, err := svc.ListTransactions(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "Create", entries[0].Type)
	assert.Equal(t, "Deposit", entries[2].Type)
	assert.True(t, entries[2].BalanceAfter.Equal(dec("11")))
}

func TestListTransactions_FilterByAccount(t *testing.T) {
	svc, log := newTransactionTestService(t)
	log.EXPECT().ReadAll(mock.Anything).Return(makeEntries(), nil)

	number := int64(1001)
	entries, err := svc.ListTransactions(context.Background(), &TransactionFilter{AccountNumber: &number})

	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, entry := range entries {
		assert.Equal(t, number, entry.AccountNumber)
	}
}

func TestListTransactions_EmptyFilterMatchesAll(t *testing.T) {
	svc, log := newTransactionTestService(t)
	log.EXPECT().ReadAll(mock.Anything).Return(makeEntries(), nil)

	entries, err := svc.ListTransactions(context.Background(), &TransactionFilter{})

	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestListTransactions_ReadErrorDegradesToEmpty(t *testing.T) {
	svc, log := newTransactionTestService(t)
	log.EXPECT().ReadAll(mock.Anything).Return(nil, errors.New("io error"))

	entries, err := svc.ListTransactions(context.Background(), nil)

	assert.EqualError(t, err, "io error")
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}
