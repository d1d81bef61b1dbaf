package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-store/internal/storage"
)

// TransactionService reads the ledger.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

// ListTransactions returns ledger entries in the order they were written.
// Like ListAccounts, a read failure yields an empty list plus the error.
func (s *TransactionService) ListTransactions(ctx context.Context, filter *TransactionFilter) ([]Transaction, error) {
	rows, err := s.storage.Transactions.ReadAll(ctx)
	if err != nil {
		logrus.WithError(err).Warn("TransactionService.ListTransactions.read failed")
		return []Transaction{}, err
	}

	transactions := make([]Transaction, 0, len(rows))
	for _, row := range rows {
		if filter != nil && filter.AccountNumber != nil && row.AccountNumber != *filter.AccountNumber {
			continue
		}
		transactions = append(transactions, transactionFromStorage(row))
	}
	return transactions, nil
}
