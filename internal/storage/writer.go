package storage

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-store/internal/metrics"
	"github.com/carson-networks/ledger-store/internal/storage/account"
	"github.com/carson-networks/ledger-store/internal/storage/transaction"
)

// ErrWriterClosed is returned when a Writer is used after Commit or Rollback.
var ErrWriterClosed = errors.New("storage: writer already committed or rolled back")

// Writer is one read-modify-write cycle over the account file. It reads the
// full account set once, applies changes in memory and persists them on
// Commit, followed by the queued ledger entries.
//
// Account numbers are persisted by the allocator as soon as they are issued;
// a Rollback after NextAccountNumber leaves a gap that is never reused.
type Writer struct {
	ctx      context.Context
	storage  *Storage
	accounts []*account.Account
	inserted []*account.Account
	rewrite  bool
	entries  []*transaction.Transaction
	closed   bool
}

// NewWriter loads the account snapshot the writer works on.
func NewWriter(ctx context.Context, s *Storage) (*Writer, error) {
	accounts, err := s.Accounts.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	return &Writer{
		ctx:      ctx,
		storage:  s,
		accounts: accounts,
	}, nil
}

func (w *Writer) indexOf(accountNumber int64) int {
	for i, a := range w.accounts {
		if a.AccountNumber == accountNumber {
			return i
		}
	}
	return -1
}

// FindAccount returns a copy of the account, or account.ErrNotFound.
func (w *Writer) FindAccount(accountNumber int64) (*account.Account, error) {
	if w.closed {
		return nil, ErrWriterClosed
	}
	i := w.indexOf(accountNumber)
	if i < 0 {
		return nil, account.ErrNotFound
	}
	cp := *w.accounts[i]
	return &cp, nil
}

// NextAccountNumber allocates a number not used by any account in the
// snapshot. Numbers that collide, which only happens after the meta file was
// lost or reset, are skipped.
func (w *Writer) NextAccountNumber() (int64, error) {
	if w.closed {
		return 0, ErrWriterClosed
	}
	for {
		n, err := w.storage.Sequence.Next(w.ctx)
		if err != nil {
			return 0, err
		}
		if w.indexOf(n) < 0 {
			return n, nil
		}
		logrus.WithField("accountNumber", n).Warn("storage.Writer.NextAccountNumber.skip number already in use")
	}
}

// InsertAccount adds a new account at the end of the set.
func (w *Writer) InsertAccount(a *account.Account) error {
	if w.closed {
		return ErrWriterClosed
	}
	cp := *a
	w.accounts = append(w.accounts, &cp)
	w.inserted = append(w.inserted, &cp)
	return nil
}

// UpdateAccount replaces the stored account with the same number.
func (w *Writer) UpdateAccount(a *account.Account) error {
	if w.closed {
		return ErrWriterClosed
	}
	i := w.indexOf(a.AccountNumber)
	if i < 0 {
		return account.ErrNotFound
	}
	cp := *a
	w.accounts[i] = &cp
	w.rewrite = true
	return nil
}

// DeleteAccount removes the account, keeping the order of the rest.
func (w *Writer) DeleteAccount(accountNumber int64) error {
	if w.closed {
		return ErrWriterClosed
	}
	i := w.indexOf(accountNumber)
	if i < 0 {
		return account.ErrNotFound
	}
	w.accounts = append(w.accounts[:i], w.accounts[i+1:]...)
	w.rewrite = true
	return nil
}

// Record queues a ledger entry, appended after the accounts are persisted.
func (w *Writer) Record(accountNumber int64, entryType transaction.Type, amount, balanceAfter decimal.Decimal) error {
	if w.closed {
		return ErrWriterClosed
	}
	w.entries = append(w.entries, &transaction.Transaction{
		AccountNumber: accountNumber,
		Type:          entryType,
		Amount:        amount,
		BalanceAfter:  balanceAfter,
		Timestamp:     w.storage.now(),
	})
	return nil
}

// Commit persists the account changes, then appends the queued entries.
// Pure inserts are appended to the account file; anything else rewrites it.
// A failed ledger append is logged and does not fail the commit, since the
// account file is already persisted by then.
func (w *Writer) Commit() error {
	if w.closed {
		return ErrWriterClosed
	}
	w.closed = true

	if w.rewrite {
		if err := w.storage.Accounts.RewriteAll(w.ctx, w.accounts); err != nil {
			return err
		}
	} else {
		for _, a := range w.inserted {
			if err := w.storage.Accounts.Append(w.ctx, a); err != nil {
				return err
			}
		}
	}

	for _, entry := range w.entries {
		if err := w.storage.Transactions.Append(w.ctx, entry); err != nil {
			metrics.LedgerAppendFailed()
			logrus.WithError(err).WithFields(logrus.Fields{
				"accountNumber": entry.AccountNumber,
				"type":          entry.Type,
			}).Error("storage.Writer.Commit.ledger append failed")
		}
	}
	return nil
}

// Rollback discards everything not yet persisted.
func (w *Writer) Rollback() error {
	if w.closed {
		return ErrWriterClosed
	}
	w.closed = true
	w.accounts = nil
	w.inserted = nil
	w.entries = nil
	return nil
}
