package storage

import (
	"context"
	"time"

	"github.com/carson-networks/ledger-store/internal/config"
	"github.com/carson-networks/ledger-store/internal/storage/account"
	"github.com/carson-networks/ledger-store/internal/storage/sequence"
	"github.com/carson-networks/ledger-store/internal/storage/transaction"
)

// Storage groups the three stores behind the ledger. Callers never touch the
// files directly, so any implementation of the interfaces can stand in.
type Storage struct {
	Accounts     account.IAccountTable
	Transactions transaction.ITransactionLog
	Sequence     sequence.IAllocator

	// Now stamps ledger entries; tests replace it.
	Now func() time.Time
}

func NewStorage(env *config.Config) *Storage {
	return &Storage{
		Accounts:     account.NewFileTable(env.AccountsPath()),
		Transactions: transaction.NewFileLog(env.TransactionsPath()),
		Sequence:     sequence.NewFileAllocator(env.MetaPath()),
		Now:          time.Now,
	}
}

// Write opens a Writer over the current account snapshot.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	return NewWriter(ctx, s)
}

func (s *Storage) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}
