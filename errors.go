package cashbook

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidKind is returned for a kind other than "income" or "expense".
	ErrInvalidKind = errors.New("invalid kind")
	// ErrInvalidAmount is returned for a missing, non numeric or negative amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidDescription is returned for a description the ledger file cannot hold.
	ErrInvalidDescription = errors.New("invalid description")
	// ErrMalformedRecord is returned for a ledger line without exactly three fields.
	ErrMalformedRecord = errors.New("malformed record")
)

// RecordError reports a ledger line that could not be decoded.
// The line is skipped, the rest of the file still loads.
type RecordError struct {
	Line int    // 1-based line number in the store
	Text string // raw line content
	Err  error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// SaveError reports a failure to persist the ledger.
// The in-memory ledger is unaffected.
type SaveError struct {
	Err error
}

func (e *SaveError) Error() string { return fmt.Sprintf("could not save ledger: %v", e.Err) }

func (e *SaveError) Unwrap() error { return e.Err }

// RecordErrors extracts every *RecordError joined in err.
func RecordErrors(err error) []*RecordError {
	var out []*RecordError
	var walk func(error)
	walk = func(err error) {
		if err == nil {
			return
		}
		if re, ok := err.(*RecordError); ok {
			out = append(out, re)
			return
		}
		if j, ok := err.(interface{ Unwrap() []error }); ok {
			for _, e := range j.Unwrap() {
				walk(e)
			}
		}
	}
	walk(err)
	return out
}
