package account

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger-store/internal/service"
)

type mockAccountService struct {
	mock.Mock
}

func (m *mockAccountService) Create(ctx context.Context, name string, amount decimal.Decimal) (int64, error) {
	args := m.Called(ctx, name, amount)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAccountService) GetAccount(ctx context.Context, accountNumber int64) (*service.Account, error) {
	args := m.Called(ctx, accountNumber)
	acc, _ := args.Get(0).(*service.Account)
	return acc, args.Error(1)
}

func (m *mockAccountService) ListAccounts(ctx context.Context) ([]service.Account, error) {
	args := m.Called(ctx)
	accounts, _ := args.Get(0).([]service.Account)
	return accounts, args.Error(1)
}

func (m *mockAccountService) Deposit(ctx context.Context, accountNumber int64, amount decimal.Decimal) (decimal.Decimal, error) {
	args := m.Called(ctx, accountNumber, amount)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *mockAccountService) Withdraw(ctx context.Context, accountNumber int64, amount decimal.Decimal) (decimal.Decimal, error) {
	args := m.Called(ctx, accountNumber, amount)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *mockAccountService) Remove(ctx context.Context, accountNumber int64) error {
	args := m.Called(ctx, accountNumber)
	return args.Error(0)
}

// newTestAPI registers every account handler against a humatest API.
func newTestAPI(t *testing.T, svc *mockAccountService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateAccountHandler(svc).Register(api)
	NewGetAccountHandler(svc).Register(api)
	NewListAccountsHandler(svc).Register(api)
	NewDepositHandler(svc).Register(api)
	NewWithdrawHandler(svc).Register(api)
	NewRemoveAccountHandler(svc).Register(api)
	return api
}

func decEq(s string) interface{} {
	want := decimal.RequireFromString(s)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}

// -- Create tests --

func TestHTTP_CreateAccount_Success(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("Create", mock.Anything, "Alice", decEq("100.00")).Return(int64(1001), nil)

	resp := newTestAPI(t, svc).Post("/v1/account", CreateAccountBody{Name: "Alice", Amount: "100.00"})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body CreateAccountResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(1001), body.AccountNumber)
	svc.AssertExpectations(t)
}

func TestHTTP_CreateAccount_DefaultsAmountToZero(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("Create", mock.Anything, "Bob", decEq("0")).Return(int64(1002), nil)

	resp := newTestAPI(t, svc).Post("/v1/account", map[string]any{"name": "Bob"})

	assert.Equal(t, http.StatusCreated, resp.Code)
	svc.AssertExpectations(t)
}

func TestHTTP_CreateAccount_InvalidAmount(t *testing.T) {
	svc := new(mockAccountService)

	resp := newTestAPI(t, svc).Post("/v1/account", CreateAccountBody{Name: "Alice", Amount: "lots"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestHTTP_CreateAccount_NegativeAmount(t *testing.T) {
	svc := new(mockAccountService)

	resp := newTestAPI(t, svc).Post("/v1/account", CreateAccountBody{Name: "Alice", Amount: "-1"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_CreateAccount_ExponentAmount(t *testing.T) {
	svc := new(mockAccountService)

	resp := newTestAPI(t, svc).Post("/v1/account", CreateAccountBody{Name: "Alice", Amount: "1e30"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestHTTP_CreateAccount_MissingName(t *testing.T) {
	svc := new(mockAccountService)

	resp := newTestAPI(t, svc).Post("/v1/account", map[string]any{"amount": "1"})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestHTTP_CreateAccount_InvalidName(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("Create", mock.Anything, "   ", mock.Anything).Return(int64(0), service.ErrInvalidName)

	resp := newTestAPI(t, svc).Post("/v1/account", CreateAccountBody{Name: "   ", Amount: "1"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_CreateAccount_StorageError(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), errors.New("disk full"))

	resp := newTestAPI(t, svc).Post("/v1/account", CreateAccountBody{Name: "Alice", Amount: "1"})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

// -- Get / List tests --

func TestHTTP_GetAccount_Success(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("GetAccount", mock.Anything, int64(1001)).
		Return(&service.Account{Name: "Alice", AccountNumber: 1001, Balance: decimal.RequireFromString("150.5")}, nil)

	resp := newTestAPI(t, svc).Get("/v1/account/1001")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Account
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, Account{Name: "Alice", AccountNumber: 1001, Balance: "150.50"}, body)
}

func TestHTTP_GetAccount_NotFound(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("GetAccount", mock.Anything, int64(4242)).Return(nil, service.ErrNotFound)

	resp := newTestAPI(t, svc).Get("/v1/account/4242")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_ListAccounts_Success(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("ListAccounts", mock.Anything).Return([]service.Account{
		{Name: "Alice", AccountNumber: 1001, Balance: decimal.RequireFromString("1")},
		{Name: "Bob", AccountNumber: 1002, Balance: decimal.RequireFromString("2.5")},
	}, nil)

	resp := newTestAPI(t, svc).Get("/v1/account")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListAccountsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Accounts, 2)
	assert.Equal(t, "2.50", body.Accounts[1].Balance)
	assert.Empty(t, body.Message)
}

func TestHTTP_ListAccounts_ReadErrorDegrades(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("ListAccounts", mock.Anything).Return([]service.Account{}, errors.New("permission denied"))

	resp := newTestAPI(t, svc).Get("/v1/account")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListAccountsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Accounts)
	assert.Equal(t, "Error reading accounts: permission denied", body.Message)
}

// -- Deposit / Withdraw tests --

func TestHTTP_Deposit_Success(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("Deposit", mock.Anything, int64(1001), decEq("50.5")).Return(decimal.RequireFromString("150.5"), nil)

	resp := newTestAPI(t, svc).Post("/v1/account/1001/deposit", AmountBody{Amount: "50.5"})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body BalanceResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, BalanceResponse{AccountNumber: 1001, Balance: "150.50"}, body)
}

func TestHTTP_Deposit_NotFound(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("Deposit", mock.Anything, int64(4242), mock.Anything).Return(decimal.Zero, service.ErrNotFound)

	resp := newTestAPI(t, svc).Post("/v1/account/4242/deposit", AmountBody{Amount: "1"})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_Deposit_AmountOutOfRange(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("Deposit", mock.Anything, int64(1001), decEq("100000000000")).Return(decimal.Zero, service.ErrInvalidAmount)

	resp := newTestAPI(t, svc).Post("/v1/account/1001/deposit", AmountBody{Amount: "100000000000"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "99999999999.99")
}

func TestHTTP_Withdraw_InsufficientFunds(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("Withdraw", mock.Anything, int64(1001), decEq("200")).Return(decimal.Zero, service.ErrInsufficientFunds)

	resp := newTestAPI(t, svc).Post("/v1/account/1001/withdraw", AmountBody{Amount: "200"})

	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestHTTP_Withdraw_Success(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("Withdraw", mock.Anything, int64(1001), decEq("150.50")).Return(decimal.Zero, nil)

	resp := newTestAPI(t, svc).Post("/v1/account/1001/withdraw", AmountBody{Amount: "150.50"})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body BalanceResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "0.00", body.Balance)
}

// -- Remove tests --

func TestHTTP_RemoveAccount_Success(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("Remove", mock.Anything, int64(1001)).Return(nil)

	resp := newTestAPI(t, svc).Delete("/v1/account/1001")

	assert.Equal(t, http.StatusNoContent, resp.Code)
	svc.AssertExpectations(t)
}

func TestHTTP_RemoveAccount_NotFound(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("Remove", mock.Anything, int64(1001)).Return(service.ErrNotFound)

	resp := newTestAPI(t, svc).Delete("/v1/account/1001")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
