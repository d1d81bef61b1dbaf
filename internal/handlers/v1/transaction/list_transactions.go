package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-store/internal/logging"
	"github.com/carson-networks/ledger-store/internal/service"
	"github.com/carson-networks/ledger-store/internal/storage/fixedwidth"
)

// ListTransactionsInput is the Huma input for listing ledger entries.
type ListTransactionsInput struct {
	AccountNumber int64 `query:"accountNumber" minimum:"0" doc:"Only entries for this account; 0 or absent lists every entry"`
}

// ListTransactionsResponseBody is the response body for listing ledger entries.
type ListTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Ledger entries in the order they were written"`
	Message      string        `json:"message,omitempty" doc:"Set when the ledger could not be read and the list is empty because of it"`
}

// ListTransactionsOutput is the Huma output for listing ledger entries.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

type transactionLister interface {
	ListTransactions(ctx context.Context, filter *service.TransactionFilter) ([]service.Transaction, error)
}

// ListTransactionsHandler handles GET /v1/transaction.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transaction",
		Summary:     "List ledger entries",
		Description: "Returns the transaction ledger, optionally for a single account.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseListTransactionsInput(input *ListTransactionsInput) *service.TransactionFilter {
	if input.AccountNumber == 0 {
		return nil
	}
	number := input.AccountNumber
	return &service.TransactionFilter{AccountNumber: &number}
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	transactions, err := h.TransactionService.ListTransactions(ctx, parseListTransactionsInput(input))
	if stopTimer != nil {
		stopTimer()
	}

	resp := ListTransactionsResponseBody{
		Transactions: make([]Transaction, len(transactions)),
	}
	for i, tx := range transactions {
		resp.Transactions[i] = Transaction{
			AccountNumber: tx.AccountNumber,
			Type:          tx.Type,
			Amount:        tx.Amount.StringFixed(2),
			BalanceAfter:  tx.BalanceAfter.StringFixed(2),
			Timestamp:     tx.Timestamp.UTC().Format(fixedwidth.TimestampLayout),
		}
	}
	if err != nil {
		resp.Message = "Error reading transactions: " + err.Error()
	}

	if logData != nil {
		logData.AddData("transactionCount", len(resp.Transactions))
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
