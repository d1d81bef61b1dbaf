package service

import (
	"context"
	"errors"

	"github.com/carson-networks/ledger-store/internal/operator/actions"
	"github.com/carson-networks/ledger-store/internal/storage"
	"github.com/carson-networks/ledger-store/internal/storage/account"
)

var (
	ErrNotFound          = account.ErrNotFound
	ErrInsufficientFunds = actions.ErrInsufficientFunds
	ErrInvalidName       = errors.New("invalid account name")
	ErrInvalidAmount     = actions.ErrInvalidAmount
)

// actionProcessor runs a write action to completion. The operator delegator
// implements it.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Account     *AccountService
}

// NewService creates a new Service. Reads go to store directly, writes
// through processor.
func NewService(store *storage.Storage, processor actionProcessor) *Service {
	return &Service{
		Transaction: NewTransactionService(store),
		Account:     NewAccountService(store, processor),
	}
}
