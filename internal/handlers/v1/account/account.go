package account

import (
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-store/internal/service"
)

// Account is the API response model for an account.
type Account struct {
	Name          string `json:"name" doc:"Account holder name"`
	AccountNumber int64  `json:"accountNumber" doc:"Account number"`
	Balance       string `json:"balance" doc:"Balance with two decimals"`
}

// BalanceResponse is returned by deposit and withdraw.
type BalanceResponse struct {
	AccountNumber int64  `json:"accountNumber" doc:"Account number"`
	Balance       string `json:"balance" doc:"Balance after the operation, two decimals"`
}

// AmountBody is the request body for deposit and withdraw.
type AmountBody struct {
	Amount string `json:"amount" minLength:"1" doc:"Non-negative decimal amount up to 99999999999.99 (e.g. '50.50')"`
}

func accountFromService(a service.Account) Account {
	return Account{
		Name:          a.Name,
		AccountNumber: a.AccountNumber,
		Balance:       a.Balance.StringFixed(2),
	}
}

// parseAmount accepts plain decimals only; the service enforces the range.
func parseAmount(raw string) (decimal.Decimal, error) {
	if strings.ContainsAny(raw, "eE") {
		return decimal.Zero, huma.NewError(http.StatusBadRequest, "amount must be a plain decimal")
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	if amount.IsNegative() {
		return decimal.Zero, huma.NewError(http.StatusBadRequest, "amount must not be negative")
	}
	return amount, nil
}

// toHTTPError maps service errors onto status codes; anything unknown is a 500
// carrying fallback as its message.
func toHTTPError(err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return huma.NewError(http.StatusNotFound, "account not found", err)
	case errors.Is(err, service.ErrInsufficientFunds):
		return huma.NewError(http.StatusConflict, "insufficient funds", err)
	case errors.Is(err, service.ErrInvalidName):
		return huma.NewError(http.StatusBadRequest, "name must be 1-20 characters on a single line", err)
	case errors.Is(err, service.ErrInvalidAmount):
		return huma.NewError(http.StatusBadRequest, "amount must be between 0 and 99999999999.99", err)
	default:
		return huma.NewError(http.StatusInternalServerError, fallback, err)
	}
}
