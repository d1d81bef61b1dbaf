package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-store/internal/storage"
	"github.com/carson-networks/ledger-store/internal/storage/account"
	"github.com/carson-networks/ledger-store/internal/storage/transaction"
)

// CreateAccount opens an account under the next sequence number.
type CreateAccount struct {
	Name   string
	Amount decimal.Decimal

	// Set by Perform.
	AccountNumber int64
	Balance       decimal.Decimal
}

// Operation names the action in logs and metrics.
func (c *CreateAccount) Operation() string { return "create" }

// Perform inserts the account and records its Create entry.
func (c *CreateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	balance := c.Amount.Round(2)
	if err := ValidateAmount(balance); err != nil {
		return err
	}

	number, err := writer.NextAccountNumber()
	if err != nil {
		return err
	}

	err = writer.InsertAccount(&account.Account{
		Name:          c.Name,
		AccountNumber: number,
		Balance:       balance,
	})
	if err != nil {
		return err
	}

	if err := writer.Record(number, transaction.TypeCreate, balance, balance); err != nil {
		return err
	}

	c.AccountNumber = number
	c.Balance = balance
	return nil
}
