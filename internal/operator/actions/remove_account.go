package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-store/internal/storage"
	"github.com/carson-networks/ledger-store/internal/storage/transaction"
)

// RemoveAccount deletes an account and records its final balance.
type RemoveAccount struct {
	AccountNumber int64

	// Set by Perform: the balance the account held when it was removed.
	FinalBalance decimal.Decimal
}

// Operation names the action in logs and metrics.
func (r *RemoveAccount) Operation() string { return "remove" }

// Perform deletes the account and records a Remove entry with balanceAfter 0.
func (r *RemoveAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	acc, err := writer.FindAccount(r.AccountNumber)
	if err != nil {
		return err
	}

	if err := writer.DeleteAccount(acc.AccountNumber); err != nil {
		return err
	}

	if err := writer.Record(acc.AccountNumber, transaction.TypeRemove, acc.Balance, decimal.Zero); err != nil {
		return err
	}

	r.FinalBalance = acc.Balance
	return nil
}
