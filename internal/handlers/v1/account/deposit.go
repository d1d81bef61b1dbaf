package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-store/internal/logging"
)

type DepositInput struct {
	AccountNumber int64 `path:"accountNumber" doc:"Account number"`
	Body          AmountBody
}

type DepositOutput struct {
	Body BalanceResponse
}

type depositor interface {
	Deposit(ctx context.Context, accountNumber int64, amount decimal.Decimal) (decimal.Decimal, error)
}

// DepositHandler handles POST /v1/account/{accountNumber}/deposit.
type DepositHandler struct {
	AccountService depositor
}

func NewDepositHandler(svc depositor) *DepositHandler {
	return &DepositHandler{AccountService: svc}
}

func (h *DepositHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "deposit",
		Method:      http.MethodPost,
		Path:        "/v1/account/{accountNumber}/deposit",
		Summary:     "Deposit into an account",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *DepositHandler) handle(ctx context.Context, input *DepositInput) (*DepositOutput, error) {
	logData := logging.GetLogData(ctx)

	amount, err := parseAmount(input.Body.Amount)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		logData.AddData("accountNumber", input.AccountNumber)
		stopTimer = logData.AddTiming("depositMs")
	}
	balance, err := h.AccountService.Deposit(ctx, input.AccountNumber, amount)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, toHTTPError(err, "failed to deposit")
	}

	return &DepositOutput{Body: BalanceResponse{
		AccountNumber: input.AccountNumber,
		Balance:       balance.StringFixed(2),
	}}, nil
}
