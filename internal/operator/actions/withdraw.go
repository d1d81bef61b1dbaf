package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-store/internal/storage"
	"github.com/carson-networks/ledger-store/internal/storage/transaction"
)

// Withdraw takes Amount from an existing account.
type Withdraw struct {
	AccountNumber int64
	Amount        decimal.Decimal

	// Set by Perform.
	Balance decimal.Decimal
}

// Operation names the action in logs and metrics.
func (w *Withdraw) Operation() string { return "withdraw" }

// Perform leaves the writer untouched when funds are insufficient.
func (w *Withdraw) Perform(ctx context.Context, writer *storage.Writer) error {
	acc, err := writer.FindAccount(w.AccountNumber)
	if err != nil {
		return err
	}

	if err := ValidateAmount(w.Amount); err != nil {
		return err
	}
	candidate := acc.Balance.Sub(w.Amount)
	if candidate.IsNegative() {
		return ErrInsufficientFunds
	}

	acc.Balance = candidate.Round(2)
	if err := writer.UpdateAccount(acc); err != nil {
		return err
	}

	if err := writer.Record(acc.AccountNumber, transaction.TypeWithdraw, w.Amount, acc.Balance); err != nil {
		return err
	}

	w.Balance = acc.Balance
	return nil
}
