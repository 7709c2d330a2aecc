package cashbook

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// fieldSeparator separates kind, description and amount on a ledger line.
// There is no escaping: descriptions cannot contain it.
const fieldSeparator = ","

// DecodeTransaction parses one ledger line "<kind>,<description>,<amount>".
//
// The line must have exactly three fields, a known kind and a non negative
// amount. The returned transaction is stamped with the current time since
// creation times are not persisted.
func DecodeTransaction(line string) (Transaction, error) {
	fields := strings.Split(line, fieldSeparator)
	if len(fields) != 3 {
		return Transaction{}, fmt.Errorf("%w: want 3 comma separated fields, got %d", ErrMalformedRecord, len(fields))
	}
	kind, err := ParseKind(fields[0])
	if err != nil {
		return Transaction{}, err
	}
	amount, err := ParseAmount(fields[2])
	if err != nil {
		return Transaction{}, err
	}
	return NewTransaction(kind, fields[1], amount)
}

// decodeLines decodes every non blank line. Lines that cannot be decoded are
// skipped and reported as *RecordError, joined in the returned error.
func decodeLines(lines []string) ([]Transaction, error) {
	txs := make([]Transaction, 0, len(lines))
	var errs []error
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue // Skip empty lines
		}
		tx, err := DecodeTransaction(line)
		if err != nil {
			errs = append(errs, &RecordError{Line: i + 1, Text: line, Err: err})
			continue
		}
		txs = append(txs, tx)
	}
	return txs, errors.Join(errs...)
}

// readLines reads all lines from r, without their line terminators.
// Lines have no length limit: a long line is decoded like any other.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return lines, fmt.Errorf("error reading from input: %w", err)
		}
	}
}

// EncodeTransaction writes a single transaction to w as one ledger line.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	line := strings.Join([]string{tx.kind.String(), tx.description, tx.amount.String()}, fieldSeparator)
	if _, err := io.WriteString(w, line+"\n"); err != nil {
		return fmt.Errorf("failed to write transaction: %w", err)
	}
	return nil
}

// EncodeLedger writes every transaction to w, one per line, in order.
func EncodeLedger(w io.Writer, txs []Transaction) error {
	for _, tx := range txs {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}
