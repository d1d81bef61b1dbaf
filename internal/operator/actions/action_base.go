package actions

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-store/internal/storage"
	"github.com/carson-networks/ledger-store/internal/storage/fixedwidth"
)

var (
	// ErrInsufficientFunds is returned when a withdrawal would make the balance negative.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInvalidAmount is returned for a negative amount or for an amount or
	// resulting balance too wide for the ledger columns.
	ErrInvalidAmount = errors.New("invalid amount")
)

// ValidateAmount rejects negative amounts and amounts that do not fit a
// ledger column once rounded to two places.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() || !fixedwidth.AmountFits(amount) {
		return ErrInvalidAmount
	}
	return nil
}

// IAction is one ledger mutation. Perform reads and changes state through the
// writer only; the operator commits or rolls back afterwards.
type IAction interface {
	Operation() string
	Perform(ctx context.Context, writer *storage.Writer) error
}
