// Package legacy serves the query-string interface of the first bank server:
// GET /bank?action=create|view|transactions|deposit|withdraw|remove.
package legacy

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-store/internal/logging"
	"github.com/carson-networks/ledger-store/internal/service"
)

const (
	msgNoAction          = "No action specified"
	msgInvalidAction     = "Invalid action"
	msgNotFound          = "Account not found!"
	msgInsufficientFunds = "Insufficient funds!"
	msgDeposited         = "Deposit processed"
	msgWithdrawn         = "Withdrawal processed"
	msgRemoved           = "Account removed"
	msgNoAccounts        = "No accounts found!"
	msgNoTransactions    = "No transactions found!"
)

type accountService interface {
	Create(ctx context.Context, name string, amount decimal.Decimal) (int64, error)
	Deposit(ctx context.Context, accountNumber int64, amount decimal.Decimal) (decimal.Decimal, error)
	Withdraw(ctx context.Context, accountNumber int64, amount decimal.Decimal) (decimal.Decimal, error)
	Remove(ctx context.Context, accountNumber int64) error
	ListAccounts(ctx context.Context) ([]service.Account, error)
}

type transactionLister interface {
	ListTransactions(ctx context.Context, filter *service.TransactionFilter) ([]service.Transaction, error)
}

// request holds the query parameters. Which fields are required depends on
// the action and is checked per action.
type request struct {
	Action string `validate:"oneof=create view transactions deposit withdraw remove"`
	Name   string `validate:"required_if=Action create"`
	AccNum string `validate:"required_if=Action deposit,required_if=Action withdraw,required_if=Action remove,omitempty,number"`
	Amount string `validate:"required_if=Action create,required_if=Action deposit,required_if=Action withdraw,omitempty,numeric"`
}

type Handler struct {
	Accounts     accountService
	Transactions transactionLister
	validate     *validator.Validate
}

func NewHandler(accounts accountService, transactions transactionLister) *Handler {
	return &Handler{
		Accounts:     accounts,
		Transactions: transactions,
		validate:     validator.New(),
	}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	w.Header().Set("Content-Type", "text/html")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	query := req.URL.Query()
	r := request{
		Action: query.Get("action"),
		Name:   query.Get("name"),
		AccNum: query.Get("accNum"),
		Amount: query.Get("amount"),
	}
	logData.AddData("action", r.Action)

	if r.Action == "" {
		return writeMessage(w, msgNoAction)
	}
	if err := h.validate.Var(r.Action, "oneof=create view transactions deposit withdraw remove"); err != nil {
		return writeMessage(w, msgInvalidAction)
	}
	if err := h.validate.Struct(&r); err != nil {
		var invalid validator.ValidationErrors
		if errors.As(err, &invalid) && len(invalid) > 0 {
			return writeMessage(w, "Error: invalid "+invalid[0].Field())
		}
		return writeMessage(w, "Error: "+err.Error())
	}

	ctx := req.Context()
	switch r.Action {
	case "view":
		return h.viewAccounts(ctx, w)
	case "transactions":
		return h.viewTransactions(ctx, w)
	}

	var amount decimal.Decimal
	if r.Amount != "" {
		parsed, err := decimal.NewFromString(r.Amount)
		if err != nil {
			return writeMessage(w, "Error: invalid Amount")
		}
		amount = parsed
	}
	if r.Action == "create" {
		return h.create(ctx, w, r.Name, amount)
	}

	// deposit, withdraw and remove all address an existing account
	accNum, err := strconv.ParseInt(r.AccNum, 10, 64)
	if err != nil {
		return writeMessage(w, "Error: invalid AccNum")
	}
	logData.AddData("accountNumber", accNum)

	var opErr error
	var done string
	switch r.Action {
	case "deposit":
		done = msgDeposited
		_, opErr = h.Accounts.Deposit(ctx, accNum, amount)
	case "withdraw":
		done = msgWithdrawn
		_, opErr = h.Accounts.Withdraw(ctx, accNum, amount)
	case "remove":
		done = msgRemoved
		opErr = h.Accounts.Remove(ctx, accNum)
	}

	switch {
	case opErr == nil:
		return writeMessage(w, done)
	case errors.Is(opErr, service.ErrNotFound):
		return writeMessage(w, msgNotFound)
	case errors.Is(opErr, service.ErrInsufficientFunds):
		return writeMessage(w, msgInsufficientFunds)
	case errors.Is(opErr, service.ErrInvalidAmount):
		return writeMessage(w, "Error: "+opErr.Error())
	default:
		if err := writeMessage(w, "Error: "+opErr.Error()); err != nil {
			return err
		}
		return opErr
	}
}

func (h *Handler) create(ctx context.Context, w http.ResponseWriter, name string, amount decimal.Decimal) error {
	number, err := h.Accounts.Create(ctx, name, amount)
	if err != nil {
		if writeErr := writeMessage(w, "Error creating account: "+err.Error()); writeErr != nil {
			return writeErr
		}
		if errors.Is(err, service.ErrInvalidName) || errors.Is(err, service.ErrInvalidAmount) {
			return nil
		}
		return err
	}
	return writeMessage(w, fmt.Sprintf("Account created! Number: %d", number))
}

func (h *Handler) viewAccounts(ctx context.Context, w http.ResponseWriter) error {
	p := page{
		Title:    "View All Accounts",
		Heading:  "Bank Accounts",
		Width:    900,
		Accent:   "#3498db",
		Columns:  []string{"Name", "Account No", "Balance"},
		Fallback: msgNoAccounts,
	}

	accounts, err := h.Accounts.ListAccounts(ctx)
	if err != nil {
		p.Fallback = "Error reading accounts: " + err.Error()
	}
	for _, acc := range accounts {
		p.Rows = append(p.Rows, []string{
			acc.Name,
			strconv.FormatInt(acc.AccountNumber, 10),
			"$" + acc.Balance.StringFixed(2),
		})
	}
	return pageTemplate.Execute(w, p)
}

func (h *Handler) viewTransactions(ctx context.Context, w http.ResponseWriter) error {
	p := page{
		Title:    "Transaction History",
		Heading:  "Transaction History",
		Width:    1200,
		Accent:   "#e67e22",
		Columns:  []string{"Account No", "Type", "Amount", "Balance After", "Timestamp"},
		Fallback: msgNoTransactions,
	}

	transactions, err := h.Transactions.ListTransactions(ctx, nil)
	if err != nil {
		p.Fallback = "Error reading transactions: " + err.Error()
	}
	for _, tx := range transactions {
		p.Rows = append(p.Rows, []string{
			strconv.FormatInt(tx.AccountNumber, 10),
			tx.Type,
			"$" + tx.Amount.StringFixed(2),
			"$" + tx.BalanceAfter.StringFixed(2),
			tx.Timestamp.UTC().Format("2006-01-02T15:04:05.000Z"),
		})
	}
	return pageTemplate.Execute(w, p)
}

func writeMessage(w http.ResponseWriter, message string) error {
	return messageTemplate.Execute(w, message)
}
