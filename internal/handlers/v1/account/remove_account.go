package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

type RemoveAccountInput struct {
	AccountNumber int64 `path:"accountNumber" doc:"Account number"`
}

type RemoveAccountOutput struct {
	Status int
}

type accountRemover interface {
	Remove(ctx context.Context, accountNumber int64) error
}

// RemoveAccountHandler handles DELETE /v1/account/{accountNumber}.
type RemoveAccountHandler struct {
	AccountService accountRemover
}

func NewRemoveAccountHandler(svc accountRemover) *RemoveAccountHandler {
	return &RemoveAccountHandler{AccountService: svc}
}

func (h *RemoveAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "remove-account",
		Method:        http.MethodDelete,
		Path:          "/v1/account/{accountNumber}",
		Summary:       "Remove an account",
		DefaultStatus: http.StatusNoContent,
		Tags:          []string{"Accounts"},
	}, h.handle)
}

func (h *RemoveAccountHandler) handle(ctx context.Context, input *RemoveAccountInput) (*RemoveAccountOutput, error) {
	if err := h.AccountService.Remove(ctx, input.AccountNumber); err != nil {
		return nil, toHTTPError(err, "failed to remove account")
	}
	return &RemoveAccountOutput{Status: http.StatusNoContent}, nil
}
