package account

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-store/internal/storage/atomicfile"
	"github.com/carson-networks/ledger-store/internal/storage/fixedwidth"
)

// FileTable stores accounts as fixed-width lines in a single file.
// Every mutation other than Append rewrites the whole file.
type FileTable struct {
	path string
}

// Ensure FileTable implements IAccountTable at compile time.
var _ IAccountTable = (*FileTable)(nil)

// NewFileTable creates a FileTable for the accounts file at path.
func NewFileTable(path string) *FileTable {
	return &FileTable{path: path}
}

// ReadAll returns an empty slice when the file does not exist. Malformed
// lines are skipped.
func (t *FileTable) ReadAll(_ context.Context) ([]*Account, error) {
	data, err := os.ReadFile(t.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []*Account{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("accounts: read %s: %w", t.path, err)
	}

	lines := fixedwidth.SplitLines(data)
	accounts := make([]*Account, 0, len(lines))
	for i, line := range lines {
		record, err := fixedwidth.DecodeAccount(line)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"path": t.path,
				"line": i + 1,
			}).Debug("accounts.ReadAll.skip malformed line")
			continue
		}
		accounts = append(accounts, recordToAccount(record))
	}
	return accounts, nil
}

// Find returns ErrNotFound when no line carries the number.
func (t *FileTable) Find(ctx context.Context, accountNumber int64) (*Account, error) {
	accounts, err := t.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		if a.AccountNumber == accountNumber {
			return a, nil
		}
	}
	return nil, ErrNotFound
}

// Append writes one line at the end of the file, creating it if needed.
func (t *FileTable) Append(_ context.Context, account *Account) error {
	f, err := os.OpenFile(t.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("accounts: open %s: %w", t.path, err)
	}
	_, writeErr := f.WriteString(fixedwidth.EncodeAccount(accountToRecord(account)))
	closeErr := f.Close()
	if writeErr != nil {
		return fmt.Errorf("accounts: append %s: %w", t.path, writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("accounts: close %s: %w", t.path, closeErr)
	}
	return nil
}

// RewriteAll writes the accounts to a temporary file in the same directory
// and renames it over the accounts file, so readers see either the old or
// the new contents.
func (t *FileTable) RewriteAll(_ context.Context, accounts []*Account) error {
	var b strings.Builder
	for _, a := range accounts {
		b.WriteString(fixedwidth.EncodeAccount(accountToRecord(a)))
	}

	if err := atomicfile.WriteFile(t.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("accounts: %w", err)
	}
	return nil
}
