package transaction

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-store/internal/storage/fixedwidth"
)

// FileLog is the append-only transactions file. Prior entries are never
// rewritten or deleted.
type FileLog struct {
	path string
}

var _ ITransactionLog = (*FileLog)(nil)

// NewFileLog creates a FileLog for the transactions file at path.
func NewFileLog(path string) *FileLog {
	return &FileLog{path: path}
}

// Append writes one entry, creating the file if it is absent.
func (l *FileLog) Append(_ context.Context, entry *Transaction) error {
	line, err := fixedwidth.EncodeTransaction(transactionToRecord(entry))
	if err != nil {
		return fmt.Errorf("transactions: encode entry for %d: %w", entry.AccountNumber, err)
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("transactions: open %s: %w", l.path, err)
	}
	_, writeErr := f.WriteString(line)
	closeErr := f.Close()
	if writeErr != nil {
		return fmt.Errorf("transactions: append %s: %w", l.path, writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("transactions: close %s: %w", l.path, closeErr)
	}
	return nil
}

// ReadAll returns an empty slice when the file does not exist. Malformed
// lines are skipped.
func (l *FileLog) ReadAll(_ context.Context) ([]*Transaction, error) {
	data, err := os.ReadFile(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []*Transaction{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("transactions: read %s: %w", l.path, err)
	}

	lines := fixedwidth.SplitLines(data)
	entries := make([]*Transaction, 0, len(lines))
	for i, line := range lines {
		record, err := fixedwidth.DecodeTransaction(line)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"path": l.path,
				"line": i + 1,
			}).Debug("transactions.ReadAll.skip malformed line")
			continue
		}
		entries = append(entries, recordToTransaction(record))
	}
	return entries, nil
}
