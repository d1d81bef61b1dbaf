package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-store/internal/logging"
)

type WithdrawInput struct {
	AccountNumber int64 `path:"accountNumber" doc:"Account number"`
	Body          AmountBody
}

type WithdrawOutput struct {
	Body BalanceResponse
}

type withdrawer interface {
	Withdraw(ctx context.Context, accountNumber int64, amount decimal.Decimal) (decimal.Decimal, error)
}

// WithdrawHandler handles POST /v1/account/{accountNumber}/withdraw.
type WithdrawHandler struct {
	AccountService withdrawer
}

func NewWithdrawHandler(svc withdrawer) *WithdrawHandler {
	return &WithdrawHandler{AccountService: svc}
}

func (h *WithdrawHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "withdraw",
		Method:      http.MethodPost,
		Path:        "/v1/account/{accountNumber}/withdraw",
		Summary:     "Withdraw from an account",
		Description: "Fails with 409 when the balance would become negative; nothing is changed in that case.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *WithdrawHandler) handle(ctx context.Context, input *WithdrawInput) (*WithdrawOutput, error) {
	logData := logging.GetLogData(ctx)

	amount, err := parseAmount(input.Body.Amount)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		logData.AddData("accountNumber", input.AccountNumber)
		stopTimer = logData.AddTiming("withdrawMs")
	}
	balance, err := h.AccountService.Withdraw(ctx, input.AccountNumber, amount)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, toHTTPError(err, "failed to withdraw")
	}

	return &WithdrawOutput{Body: BalanceResponse{
		AccountNumber: input.AccountNumber,
		Balance:       balance.StringFixed(2),
	}}, nil
}
