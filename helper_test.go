package cashbook

import (
	"iter"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// d is a helper for test to create an amount from a literal.
func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// tuple is the comparable part of a transaction.
type tuple struct {
	Kind        Kind
	Description string
	Amount      string
}

// tuples extracts the persisted fields of transactions, for comparisons.
func tuples(seq iter.Seq[Transaction]) []tuple {
	var out []tuple
	for tx := range seq {
		out = append(out, tuple{tx.Kind(), tx.Description(), tx.Amount().String()})
	}
	return out
}

// all iterates over every transaction of the ledger.
func all(l *Ledger) iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.Transactions() {
			if !yield(tx) {
				return
			}
		}
	}
}

// fixedClock replaces the transaction clock for the duration of the test.
func fixedClock(t *testing.T, at time.Time) {
	t.Helper()
	old := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = old })
}

// failingStore is a Store that cannot be written to.
type failingStore struct {
	MemoryStore
	err error
}

func (s *failingStore) Save([]Transaction) error { return s.err }
