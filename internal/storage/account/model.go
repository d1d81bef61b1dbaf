package account

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-store/internal/storage/fixedwidth"
)

// ErrNotFound is returned when no account has the requested number.
var ErrNotFound = errors.New("account not found")

// Account represents an account record.
type Account struct {
	Name          string
	AccountNumber int64
	Balance       decimal.Decimal
}

// IAccountTable defines the interface for account storage operations.
// This abstraction allows swapping the file implementation without changing callers.
//
//go:generate mockery --name IAccountTable --output mock_IAccountTable.go
type IAccountTable interface {
	// ReadAll returns every valid account in file order.
	ReadAll(ctx context.Context) ([]*Account, error)
	// Find scans ReadAll for the given number.
	Find(ctx context.Context, accountNumber int64) (*Account, error)
	// Append adds one account to the end of the file.
	Append(ctx context.Context, account *Account) error
	// RewriteAll replaces the file contents with the given accounts, in order.
	RewriteAll(ctx context.Context, accounts []*Account) error
}

func recordToAccount(r fixedwidth.AccountRecord) *Account {
	return &Account{
		Name:          r.Name,
		AccountNumber: r.AccountNumber,
		Balance:       r.Balance,
	}
}

func accountToRecord(a *Account) fixedwidth.AccountRecord {
	return fixedwidth.AccountRecord{
		Name:          a.Name,
		AccountNumber: a.AccountNumber,
		Balance:       a.Balance,
	}
}
