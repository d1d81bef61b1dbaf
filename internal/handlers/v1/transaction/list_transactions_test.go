package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger-store/internal/service"
)

type mockTransactionLister struct {
	mock.Mock
}

func (m *mockTransactionLister) ListTransactions(ctx context.Context, filter *service.TransactionFilter) ([]service.Transaction, error) {
	args := m.Called(ctx, filter)
	txs, _ := args.Get(0).([]service.Transaction)
	return txs, args.Error(1)
}

func newListTestAPI(t *testing.T, svc transactionLister) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListTransactionsHandler(svc).Register(api)
	return api
}

func makeTransactions() []service.Transaction {
	ts := time.Date(2025, 3, 4, 5, 6, 7, 890_000_000, time.UTC)
	return []service.Transaction{
		{AccountNumber: 1001, Type: "Create", Amount: decimal.RequireFromString("100"), BalanceAfter: decimal.RequireFromString("100"), Timestamp: ts},
		{AccountNumber: 1001, Type: "Deposit", Amount: decimal.RequireFromString("50.5"), BalanceAfter: decimal.RequireFromString("150.5"), Timestamp: ts},
	}
}

// -- parseListTransactionsInput unit tests --

func TestParseListTransactionsInput_NoAccount(t *testing.T) {
	assert.Nil(t, parseListTransactionsInput(&ListTransactionsInput{}))
}

func TestParseListTransactionsInput_WithAccount(t *testing.T) {
	filter := parseListTransactionsInput(&ListTransactionsInput{AccountNumber: 1001})

	require.NotNil(t, filter)
	require.NotNil(t, filter.AccountNumber)
	assert.Equal(t, int64(1001), *filter.AccountNumber)
}

// -- HTTP tests --

func TestHTTP_ListTransactions_Success(t *testing.T) {
	svc := new(mockTransactionLister)
	svc.On("ListTransactions", mock.Anything, (*service.TransactionFilter)(nil)).Return(makeTransactions(), nil)

	resp := newListTestAPI(t, svc).Get("/v1/transaction")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Transactions, 2)
	assert.Equal(t, Transaction{
		AccountNumber: 1001,
		Type:          "Deposit",
		Amount:        "50.50",
		BalanceAfter:  "150.50",
		Timestamp:     "2025-03-04T05:06:07.890Z",
	}, body.Transactions[1])
	svc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_FilterByAccount(t *testing.T) {
	svc := new(mockTransactionLister)
	svc.On("ListTransactions", mock.Anything, mock.MatchedBy(func(f *service.TransactionFilter) bool {
		return f != nil && f.AccountNumber != nil && *f.AccountNumber == 1001
	})).Return(makeTransactions(), nil)

	resp := newListTestAPI(t, svc).Get("/v1/transaction?accountNumber=1001")

	assert.Equal(t, http.StatusOK, resp.Code)
	svc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_InvalidAccountNumber(t *testing.T) {
	svc := new(mockTransactionLister)

	resp := newListTestAPI(t, svc).Get("/v1/transaction?accountNumber=abc")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	svc.AssertNotCalled(t, "ListTransactions", mock.Anything, mock.Anything)
}

func TestHTTP_ListTransactions_ReadErrorDegrades(t *testing.T) {
	svc := new(mockTransactionLister)
	svc.On("ListTransactions", mock.Anything, mock.Anything).Return([]service.Transaction{}, errors.New("io error"))

	resp := newListTestAPI(t, svc).Get("/v1/transaction")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Transactions)
	assert.Equal(t, "Error reading transactions: io error", body.Message)
}
