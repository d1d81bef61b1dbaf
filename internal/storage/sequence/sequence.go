package sequence

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-store/internal/storage/atomicfile"
	"github.com/carson-networks/ledger-store/internal/storage/fixedwidth"
)

// InitialValue is the counter value of a fresh store; the first issued number is InitialValue+1.
const InitialValue int64 = 1000

// IAllocator issues account numbers.
//
//go:generate mockery --name IAllocator --output mock_IAllocator.go
type IAllocator interface {
	// Next returns a number greater than any previously returned one and
	// persists it as the last issued value before returning.
	Next(ctx context.Context) (int64, error)
	// Current returns the last issued value without changing it.
	Current(ctx context.Context) (int64, error)
}

// FileAllocator keeps the last issued account number in a single-line meta file.
type FileAllocator struct {
	path string
}

var _ IAllocator = (*FileAllocator)(nil)

// NewFileAllocator creates an allocator backed by the meta file at path.
func NewFileAllocator(path string) *FileAllocator {
	return &FileAllocator{path: path}
}

// Next reads the counter, increments it and replaces the meta file with the
// new value. A missing or unparseable meta file counts as InitialValue, so a
// fresh store issues 1001.
func (a *FileAllocator) Next(ctx context.Context) (int64, error) {
	last, err := a.Current(ctx)
	if err != nil {
		return 0, err
	}

	next := last + 1
	if err := atomicfile.WriteFile(a.path, []byte(fixedwidth.FormatSequence(next)), 0o644); err != nil {
		return 0, fmt.Errorf("sequence: %w", err)
	}
	return next, nil
}

// Current returns the persisted counter, InitialValue when the file is
// absent or corrupt. Other read failures are returned.
func (a *FileAllocator) Current(_ context.Context) (int64, error) {
	data, err := os.ReadFile(a.path)
	if errors.Is(err, fs.ErrNotExist) {
		return InitialValue, nil
	}
	if err != nil {
		return 0, fmt.Errorf("sequence: read %s: %w", a.path, err)
	}

	last, err := fixedwidth.ParseSequence(string(data))
	if err != nil {
		logrus.WithError(err).WithField("path", a.path).Warn("sequence.Current.reset corrupt counter")
		return InitialValue, nil
	}
	return last, nil
}
