package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-store/internal/service"
)

type GetAccountInput struct {
	AccountNumber int64 `path:"accountNumber" doc:"Account number"`
}

type GetAccountOutput struct {
	Body Account
}

type accountGetter interface {
	GetAccount(ctx context.Context, accountNumber int64) (*service.Account, error)
}

// GetAccountHandler handles GET /v1/account/{accountNumber}.
type GetAccountHandler struct {
	AccountService accountGetter
}

func NewGetAccountHandler(svc accountGetter) *GetAccountHandler {
	return &GetAccountHandler{AccountService: svc}
}

func (h *GetAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-account",
		Method:      http.MethodGet,
		Path:        "/v1/account/{accountNumber}",
		Summary:     "Get an account",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *GetAccountHandler) handle(ctx context.Context, input *GetAccountInput) (*GetAccountOutput, error) {
	acc, err := h.AccountService.GetAccount(ctx, input.AccountNumber)
	if err != nil {
		return nil, toHTTPError(err, "failed to read account")
	}
	return &GetAccountOutput{Body: accountFromService(*acc)}, nil
}
