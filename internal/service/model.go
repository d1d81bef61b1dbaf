package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-store/internal/storage/account"
	"github.com/carson-networks/ledger-store/internal/storage/transaction"
)

// Account represents an account in the service layer.
type Account struct {
	Name          string
	AccountNumber int64
	Balance       decimal.Decimal
}

// Transaction is one ledger entry in the service layer.
type Transaction struct {
	AccountNumber int64
	Type          string
	Amount        decimal.Decimal
	BalanceAfter  decimal.Decimal
	Timestamp     time.Time
}

// TransactionFilter narrows ListTransactions. A nil AccountNumber matches every entry.
type TransactionFilter struct {
	AccountNumber *int64
}

func accountFromStorage(a *account.Account) Account {
	return Account{
		Name:          a.Name,
		AccountNumber: a.AccountNumber,
		Balance:       a.Balance,
	}
}

func transactionFromStorage(t *transaction.Transaction) Transaction {
	return Transaction{
		AccountNumber: t.AccountNumber,
		Type:          string(t.Type),
		Amount:        t.Amount,
		BalanceAfter:  t.BalanceAfter,
		Timestamp:     t.Timestamp,
	}
}
