package storage

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	ViolationDuplicateNumber   = "duplicate-number"
	ViolationNonPositiveNumber = "non-positive-number"
	ViolationNegativeBalance   = "negative-balance"
	ViolationSequenceBehind    = "sequence-behind"
	ViolationBalanceMismatch   = "balance-mismatch"
	ViolationMissingLedger     = "missing-ledger"
)

// Violation is one broken invariant found by Check.
type Violation struct {
	Kind          string
	AccountNumber int64
	Detail        string
}

// CheckReport summarizes a consistency check over the three stores.
type CheckReport struct {
	Accounts   int
	Entries    int
	Sequence   int64
	Violations []Violation
}

func (r *CheckReport) OK() bool {
	return len(r.Violations) == 0
}

func (r *CheckReport) add(kind string, accountNumber int64, format string, args ...any) {
	r.Violations = append(r.Violations, Violation{
		Kind:          kind,
		AccountNumber: accountNumber,
		Detail:        fmt.Sprintf(format, args...),
	})
}

// Check reads every store once and reports accounts that break the ledger's
// invariants. It never writes.
func (s *Storage) Check(ctx context.Context) (*CheckReport, error) {
	accounts, err := s.Accounts.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := s.Transactions.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	sequence, err := s.Sequence.Current(ctx)
	if err != nil {
		return nil, err
	}

	report := &CheckReport{
		Accounts: len(accounts),
		Entries:  len(entries),
		Sequence: sequence,
	}

	lastBalance := make(map[int64]decimal.Decimal, len(entries))
	for _, entry := range entries {
		lastBalance[entry.AccountNumber] = entry.BalanceAfter
	}

	seen := make(map[int64]bool, len(accounts))
	var highest int64
	for _, acc := range accounts {
		n := acc.AccountNumber
		if seen[n] {
			report.add(ViolationDuplicateNumber, n, "account number %d appears more than once", n)
		}
		seen[n] = true
		if n > highest {
			highest = n
		}

		if n <= 0 {
			report.add(ViolationNonPositiveNumber, n, "account number %d is not positive", n)
		}
		if acc.Balance.IsNegative() {
			report.add(ViolationNegativeBalance, n, "balance %s is negative", acc.Balance.StringFixed(2))
		}

		last, ok := lastBalance[n]
		switch {
		case !ok:
			report.add(ViolationMissingLedger, n, "no ledger entry for account %d", n)
		case !last.Equal(acc.Balance):
			report.add(ViolationBalanceMismatch, n, "balance %s, last ledger balance %s",
				acc.Balance.StringFixed(2), last.StringFixed(2))
		}
	}

	if highest > sequence {
		report.add(ViolationSequenceBehind, highest, "sequence %d is below highest account number %d", sequence, highest)
	}

	return report, nil
}
