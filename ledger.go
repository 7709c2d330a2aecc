package cashbook

import (
	"errors"
	"iter"

	"github.com/shopspring/decimal"
)

// Ledger is the ordered list of transactions and their running balance.
//
// Transactions are kept in insertion order, which is the order they were
// loaded from the store and then added. Every Add rewrites the store.
//
// A Ledger is not safe for concurrent use.
type Ledger struct {
	store        Store
	transactions []Transaction
	balance      decimal.Decimal // cached sum of Signed() over transactions
}

// NewLedger creates an empty ledger persisted in store.
func NewLedger(store Store) *Ledger {
	return &Ledger{
		store:        store,
		transactions: make([]Transaction, 0),
		balance:      decimal.Zero,
	}
}

// Load rebuilds a ledger from store.
//
// The returned ledger is never nil. Problems that do not prevent using the
// ledger are joined in the returned error:
//   - an I/O error reading the store, in which case the ledger is empty,
//   - one *RecordError per malformed line, which was skipped.
//
// A store that does not exist yet is not an error.
func Load(store Store) (*Ledger, error) {
	l := NewLedger(store)
	lines, ioErr := store.Load()
	if ioErr != nil {
		return l, ioErr
	}
	txs, err := decodeLines(lines)
	l.append(txs...)
	return l, err
}

// append folds txs into the ledger.
func (l *Ledger) append(txs ...Transaction) {
	for _, tx := range txs {
		l.transactions = append(l.transactions, tx)
		l.balance = l.balance.Add(tx.Signed())
	}
}

// Add records a new transaction and persists the ledger. It returns the
// updated balance.
//
// Invalid input (see NewTransaction) leaves the ledger untouched. If the
// ledger cannot be saved, the transaction is still recorded in memory, the
// new balance is returned along with a *SaveError.
func (l *Ledger) Add(kind Kind, description string, amount decimal.Decimal) (decimal.Decimal, error) {
	tx, err := NewTransaction(kind, description, amount)
	if err != nil {
		return l.balance, err
	}
	l.append(tx)
	if err := l.Save(); err != nil {
		return l.balance, err
	}
	return l.balance, nil
}

// Save writes the whole ledger to its store.
func (l *Ledger) Save() error {
	if l.store == nil {
		return &SaveError{Err: errors.New("ledger has no store")}
	}
	if err := l.store.Save(l.transactions); err != nil {
		return &SaveError{Err: err}
	}
	return nil
}

// Balance returns the sum of all incomes minus the sum of all expenses.
func (l *Ledger) Balance() decimal.Decimal { return l.balance }

// Len returns the number of transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions returns an iterator that yields each transaction in insertion order.
func (l *Ledger) Transactions() iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			if !yield(i, tx) {
				return
			}
		}
	}
}

// FilterByKind returns an iterator over the transactions of that kind, in
// insertion order. The iterator can be reused, each run reflects the ledger
// at that time.
func (l *Ledger) FilterByKind(kind Kind) iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			if !tx.IsKind(kind) {
				continue
			}
			if !yield(tx) {
				return
			}
		}
	}
}

// Total returns the sum of the amounts of all transactions of that kind.
func (l *Ledger) Total(kind Kind) decimal.Decimal {
	total := decimal.Zero
	for tx := range l.FilterByKind(kind) {
		total = total.Add(tx.Amount())
	}
	return total
}
