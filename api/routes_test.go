package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger-store/internal/config"
	"github.com/carson-networks/ledger-store/internal/logging"
	"github.com/carson-networks/ledger-store/internal/operator"
	"github.com/carson-networks/ledger-store/internal/service"
	"github.com/carson-networks/ledger-store/internal/storage"
)

func newTestServer(t *testing.T) (*httptest.Server, *operator.OperatorDelegator) {
	t.Helper()
	store := storage.NewStorage(&config.Config{
		DataDir:          t.TempDir(),
		AccountsFile:     "bank_accounts.txt",
		MetaFile:         "account_meta.txt",
		TransactionsFile: "transactions.txt",
	})
	delegator := operator.NewOperatorDelegator(store, 8)
	delegator.Start()
	t.Cleanup(delegator.Stop)

	rest := &Rest{
		Logger:   logging.SetupLogging(),
		Service:  service.NewService(store, delegator),
		Operator: delegator,
	}
	server := httptest.NewServer(rest.Handler())
	t.Cleanup(server.Close)
	return server, delegator
}

func TestRoutes_Status(t *testing.T) {
	server, delegator := newTestServer(t)

	resp, err := http.Get(server.URL + "/status")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(logging.RequestIDHeader))

	delegator.Stop()
	resp, err = http.Get(server.URL + "/status")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestRoutes_AccountFlow(t *testing.T) {
	server, _ := newTestServer(t)

	resp, err := http.Post(server.URL+"/v1/account", "application/json",
		strings.NewReader(`{"name":"Alice","amount":"100.00"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created struct {
		AccountNumber int64 `json:"accountNumber"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, int64(1001), created.AccountNumber)

	bank, err := http.Get(server.URL + "/bank?action=deposit&accNum=1001&amount=50.5")
	require.NoError(t, err)
	defer bank.Body.Close()
	assert.Equal(t, http.StatusOK, bank.StatusCode)

	got, err := http.Get(server.URL + "/v1/account/1001")
	require.NoError(t, err)
	defer got.Body.Close()
	var acc struct {
		Balance string `json:"balance"`
	}
	require.NoError(t, json.NewDecoder(got.Body).Decode(&acc))
	assert.Equal(t, "150.50", acc.Balance)

	list, err := http.Get(server.URL + "/v1/transaction?accountNumber=1001")
	require.NoError(t, err)
	defer list.Body.Close()
	var entries struct {
		Transactions []struct {
			Type string `json:"type"`
		} `json:"transactions"`
	}
	require.NoError(t, json.NewDecoder(list.Body).Decode(&entries))
	require.Len(t, entries.Transactions, 2)
	assert.Equal(t, "Deposit", entries.Transactions[1].Type)
}

func TestRoutes_Metrics(t *testing.T) {
	server, _ := newTestServer(t)

	resp, err := http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
