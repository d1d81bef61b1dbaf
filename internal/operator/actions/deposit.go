package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-store/internal/storage"
	"github.com/carson-networks/ledger-store/internal/storage/transaction"
)

// Deposit adds Amount to an existing account.
type Deposit struct {
	AccountNumber int64
	Amount        decimal.Decimal

	// Set by Perform.
	Balance decimal.Decimal
}

// Operation names the action in logs and metrics.
func (d *Deposit) Operation() string { return "deposit" }

// Perform leaves the writer untouched when the new balance would not fit a
// ledger column.
func (d *Deposit) Perform(ctx context.Context, writer *storage.Writer) error {
	acc, err := writer.FindAccount(d.AccountNumber)
	if err != nil {
		return err
	}

	if err := ValidateAmount(d.Amount); err != nil {
		return err
	}
	balance := acc.Balance.Add(d.Amount).Round(2)
	if err := ValidateAmount(balance); err != nil {
		return err
	}

	acc.Balance = balance
	if err := writer.UpdateAccount(acc); err != nil {
		return err
	}

	if err := writer.Record(acc.AccountNumber, transaction.TypeDeposit, d.Amount, acc.Balance); err != nil {
		return err
	}

	d.Balance = acc.Balance
	return nil
}
