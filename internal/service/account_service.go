package service

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-store/internal/operator/actions"
	"github.com/carson-networks/ledger-store/internal/storage"
)

// maxNameBytes is the width of the name column in the accounts file.
const maxNameBytes = 20

// AccountService handles account business logic.
type AccountService struct {
	storage   *storage.Storage
	processor actionProcessor
}

// NewAccountService creates a new AccountService.
func NewAccountService(store *storage.Storage, processor actionProcessor) *AccountService {
	return &AccountService{storage: store, processor: processor}
}

// normalizeName trims the name and rejects anything that cannot be stored
// in the fixed-width name column without shifting the other fields.
func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxNameBytes || strings.ContainsAny(name, "\r\n") {
		return "", ErrInvalidName
	}
	return name, nil
}

// validateAmount accepts amounts from 0 up to 99999999999.99 after rounding,
// the widest value the ledger's amount and balance columns hold.
func validateAmount(amount decimal.Decimal) error {
	return actions.ValidateAmount(amount)
}

// Create opens an account with the given initial balance and returns its number.
//
// A queued create always runs to completion. If ctx is cancelled after the
// action was dequeued, Create returns ctx.Err() even though the account may
// already exist; callers can find it with ListAccounts.
func (s *AccountService) Create(ctx context.Context, name string, amount decimal.Decimal) (int64, error) {
	name, err := normalizeName(name)
	if err != nil {
		return 0, err
	}
	if err := validateAmount(amount); err != nil {
		return 0, err
	}

	action := &actions.CreateAccount{Name: name, Amount: amount}
	if err := s.processor.Process(ctx, action); err != nil {
		return 0, err
	}
	return action.AccountNumber, nil
}

// Deposit adds amount to the account and returns the new balance.
// ErrInvalidAmount is returned when the new balance would be too wide to
// record, and leaves the account and the ledger untouched.
func (s *AccountService) Deposit(ctx context.Context, accountNumber int64, amount decimal.Decimal) (decimal.Decimal, error) {
	if err := validateAmount(amount); err != nil {
		return decimal.Zero, err
	}

	action := &actions.Deposit{AccountNumber: accountNumber, Amount: amount}
	if err := s.processor.Process(ctx, action); err != nil {
		return decimal.Zero, err
	}
	return action.Balance, nil
}

// Withdraw takes amount from the account and returns the new balance.
// ErrInsufficientFunds leaves the account and the ledger untouched.
func (s *AccountService) Withdraw(ctx context.Context, accountNumber int64, amount decimal.Decimal) (decimal.Decimal, error) {
	if err := validateAmount(amount); err != nil {
		return decimal.Zero, err
	}

	action := &actions.Withdraw{AccountNumber: accountNumber, Amount: amount}
	if err := s.processor.Process(ctx, action); err != nil {
		return decimal.Zero, err
	}
	return action.Balance, nil
}

// Remove deletes the account. Its number is never issued again.
func (s *AccountService) Remove(ctx context.Context, accountNumber int64) error {
	return s.processor.Process(ctx, &actions.RemoveAccount{AccountNumber: accountNumber})
}

// GetAccount retrieves an account by number.
func (s *AccountService) GetAccount(ctx context.Context, accountNumber int64) (*Account, error) {
	row, err := s.storage.Accounts.Find(ctx, accountNumber)
	if err != nil {
		return nil, err
	}
	account := accountFromStorage(row)
	return &account, nil
}

// ListAccounts returns every account in file order. On a read failure it
// returns an empty list together with the error, so callers that prefer
// availability can render the empty list and ignore the error.
func (s *AccountService) ListAccounts(ctx context.Context) ([]Account, error) {
	rows, err := s.storage.Accounts.ReadAll(ctx)
	if err != nil {
		logrus.WithError(err).Warn("AccountService.ListAccounts.read failed")
		return []Account{}, err
	}

	accounts := make([]Account, len(rows))
	for i, row := range rows {
		accounts[i] = accountFromStorage(row)
	}
	return accounts, nil
}
