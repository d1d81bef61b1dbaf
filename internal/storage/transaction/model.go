package transaction

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-store/internal/storage/fixedwidth"
)

// Type is the kind of mutation a ledger entry records.
type Type = fixedwidth.EntryType

const (
	TypeCreate   = fixedwidth.EntryCreate
	TypeDeposit  = fixedwidth.EntryDeposit
	TypeWithdraw = fixedwidth.EntryWithdraw
	TypeRemove   = fixedwidth.EntryRemove
)

// Transaction represents one ledger entry. AccountNumber may refer to an
// account that has since been removed.
type Transaction struct {
	AccountNumber int64
	Type          Type
	Amount        decimal.Decimal
	BalanceAfter  decimal.Decimal
	Timestamp     time.Time
}

// ITransactionLog defines the interface for the append-only ledger.
//
//go:generate mockery --name ITransactionLog --output mock_ITransactionLog.go
type ITransactionLog interface {
	// Append adds one entry to the end of the log.
	Append(ctx context.Context, entry *Transaction) error
	// ReadAll returns every valid entry in append order.
	ReadAll(ctx context.Context) ([]*Transaction, error)
}

func recordToTransaction(r fixedwidth.TransactionRecord) *Transaction {
	return &Transaction{
		AccountNumber: r.AccountNumber,
		Type:          r.Type,
		Amount:        r.Amount,
		BalanceAfter:  r.BalanceAfter,
		Timestamp:     r.Timestamp,
	}
}

func transactionToRecord(t *Transaction) fixedwidth.TransactionRecord {
	return fixedwidth.TransactionRecord{
		AccountNumber: t.AccountNumber,
		Type:          t.Type,
		Amount:        t.Amount,
		BalanceAfter:  t.BalanceAfter,
		Timestamp:     t.Timestamp,
	}
}
