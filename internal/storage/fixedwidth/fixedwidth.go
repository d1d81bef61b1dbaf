// Package fixedwidth encodes and decodes the fixed-width text records stored in
// the accounts, meta and transactions files.
//
// Column offsets are a file-format contract shared with existing data files:
// accounts start fields at 0, 20 and 35; transactions at 0, 15, 30, 45 and 60.
package fixedwidth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrMalformedRecord is returned when a stored line cannot be decoded.
var ErrMalformedRecord = errors.New("malformed record")

// ErrFieldOverflow is returned when a value is too wide for its column.
var ErrFieldOverflow = errors.New("field overflow")

// LineTerminator ends every encoded record.
const LineTerminator = "\n"

// TimestampLayout is the ISO-8601 UTC layout written to the transactions file.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// MaxAmountWidth is the widest rendered amount a 15-byte ledger column holds
// while keeping one pad space before the next column.
const MaxAmountWidth = 14

// Field is one column of a Layout. A zero Width marks the trailing field
// that takes the remainder of the line.
type Field struct {
	Name  string
	Width int
}

// Layout is an ordered list of columns.
type Layout []Field

var (
	// AccountLayout is name(20) accountNumber(15) balance(rest).
	AccountLayout = Layout{
		{Name: "name", Width: 20},
		{Name: "accountNumber", Width: 15},
		{Name: "balance"},
	}

	// TransactionLayout is accountNumber(15) type(15) amount(15) balanceAfter(15) timestamp(rest).
	TransactionLayout = Layout{
		{Name: "accountNumber", Width: 15},
		{Name: "type", Width: 15},
		{Name: "amount", Width: 15},
		{Name: "balanceAfter", Width: 15},
		{Name: "timestamp"},
	}
)

// Offsets returns the byte offset at which each field starts.
func (l Layout) Offsets() []int {
	offsets := make([]int, len(l))
	pos := 0
	for i, f := range l {
		offsets[i] = pos
		pos += f.Width
	}
	return offsets
}

// Format pads each value to its field width and appends the line terminator.
// Values wider than their field are written as-is; the layout never truncates.
func (l Layout) Format(values ...string) string {
	var b strings.Builder
	for i, f := range l {
		v := ""
		if i < len(values) {
			v = values[i]
		}
		b.WriteString(v)
		if pad := f.Width - len(v); f.Width > 0 && pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
	}
	b.WriteString(LineTerminator)
	return b.String()
}

// Check returns ErrFieldOverflow if a value is wider than its fixed field.
func (l Layout) Check(values ...string) error {
	for i, f := range l {
		if f.Width == 0 || i >= len(values) {
			continue
		}
		if len(values[i]) > f.Width {
			return fmt.Errorf("%w: %s %q is %d bytes, column is %d", ErrFieldOverflow, f.Name, values[i], len(values[i]), f.Width)
		}
	}
	return nil
}

// Parse slices a line by fixed byte offsets and trims whitespace from each field.
func (l Layout) Parse(line string) ([]string, error) {
	line = strings.TrimRight(line, "\r\n")
	offsets := l.Offsets()
	last := offsets[len(offsets)-1]
	if len(line) <= last {
		return nil, fmt.Errorf("%w: line is %d bytes, want more than %d", ErrMalformedRecord, len(line), last)
	}

	values := make([]string, len(l))
	for i, f := range l {
		start := offsets[i]
		end := len(line)
		if f.Width > 0 {
			end = start + f.Width
		}
		values[i] = strings.TrimSpace(line[start:end])
	}
	return values, nil
}

// EntryType is the closed set of ledger entry kinds.
type EntryType string

const (
	EntryCreate   EntryType = "Create"
	EntryDeposit  EntryType = "Deposit"
	EntryWithdraw EntryType = "Withdraw"
	EntryRemove   EntryType = "Remove"
)

// ParseEntryType accepts only the four known entry kinds.
func ParseEntryType(s string) (EntryType, error) {
	switch t := EntryType(s); t {
	case EntryCreate, EntryDeposit, EntryWithdraw, EntryRemove:
		return t, nil
	}
	return "", fmt.Errorf("%w: unknown entry type %q", ErrMalformedRecord, s)
}

// AccountRecord is the decoded form of one accounts-file line.
type AccountRecord struct {
	Name          string
	AccountNumber int64
	Balance       decimal.Decimal
}

// TransactionRecord is the decoded form of one transactions-file line.
type TransactionRecord struct {
	AccountNumber int64
	Type          EntryType
	Amount        decimal.Decimal
	BalanceAfter  decimal.Decimal
	Timestamp     time.Time
}

// FormatAmount renders a decimal with exactly two places, rounding half away from zero.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// AmountFits reports whether d renders in at most MaxAmountWidth bytes.
func AmountFits(d decimal.Decimal) bool {
	return len(FormatAmount(d)) <= MaxAmountWidth
}

// ParseAmount parses a decimal field.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: amount %q: %v", ErrMalformedRecord, s, err)
	}
	return d, nil
}

// EncodeAccount formats an account as one accounts-file line.
func EncodeAccount(r AccountRecord) string {
	return AccountLayout.Format(
		r.Name,
		strconv.FormatInt(r.AccountNumber, 10),
		FormatAmount(r.Balance),
	)
}

// DecodeAccount parses one accounts-file line. An empty name, a non-integer
// account number or a non-decimal balance make the line malformed.
func DecodeAccount(line string) (AccountRecord, error) {
	fields, err := AccountLayout.Parse(line)
	if err != nil {
		return AccountRecord{}, err
	}
	if fields[0] == "" {
		return AccountRecord{}, fmt.Errorf("%w: empty name", ErrMalformedRecord)
	}
	number, err := ParseSequence(fields[1])
	if err != nil {
		return AccountRecord{}, err
	}
	balance, err := ParseAmount(fields[2])
	if err != nil {
		return AccountRecord{}, err
	}
	return AccountRecord{Name: fields[0], AccountNumber: number, Balance: balance}, nil
}

// EncodeTransaction formats a ledger entry as one transactions-file line. It
// returns ErrFieldOverflow instead of writing a line whose columns would shift.
func EncodeTransaction(r TransactionRecord) (string, error) {
	for _, d := range []decimal.Decimal{r.Amount, r.BalanceAfter} {
		if !AmountFits(d) {
			return "", fmt.Errorf("%w: amount %s is wider than %d bytes", ErrFieldOverflow, FormatAmount(d), MaxAmountWidth)
		}
	}
	values := []string{
		strconv.FormatInt(r.AccountNumber, 10),
		string(r.Type),
		FormatAmount(r.Amount),
		FormatAmount(r.BalanceAfter),
		r.Timestamp.UTC().Format(TimestampLayout),
	}
	if err := TransactionLayout.Check(values...); err != nil {
		return "", err
	}
	return TransactionLayout.Format(values...), nil
}

// DecodeTransaction parses one transactions-file line.
func DecodeTransaction(line string) (TransactionRecord, error) {
	fields, err := TransactionLayout.Parse(line)
	if err != nil {
		return TransactionRecord{}, err
	}
	number, err := ParseSequence(fields[0])
	if err != nil {
		return TransactionRecord{}, err
	}
	entryType, err := ParseEntryType(fields[1])
	if err != nil {
		return TransactionRecord{}, err
	}
	amount, err := ParseAmount(fields[2])
	if err != nil {
		return TransactionRecord{}, err
	}
	balanceAfter, err := ParseAmount(fields[3])
	if err != nil {
		return TransactionRecord{}, err
	}
	ts, err := time.Parse(time.RFC3339Nano, fields[4])
	if err != nil {
		return TransactionRecord{}, fmt.Errorf("%w: timestamp %q: %v", ErrMalformedRecord, fields[4], err)
	}
	return TransactionRecord{
		AccountNumber: number,
		Type:          entryType,
		Amount:        amount,
		BalanceAfter:  balanceAfter,
		Timestamp:     ts.UTC(),
	}, nil
}

// FormatSequence renders the meta file's single integer.
func FormatSequence(n int64) string {
	return strconv.FormatInt(n, 10)
}

// ParseSequence parses a decimal integer field, ignoring surrounding whitespace.
func ParseSequence(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: integer %q: %v", ErrMalformedRecord, s, err)
	}
	return n, nil
}

// SplitLines splits file contents into non-blank lines, preserving order.
func SplitLines(data []byte) []string {
	raw := strings.Split(string(data), LineTerminator)
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
