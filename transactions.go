package cashbook

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// now is the clock used to stamp new transactions. Tests replace it.
var now = time.Now

// Transaction is a single income or expense entry.
//
// A Transaction is immutable: its fields are only set by NewTransaction.
// Corrections are recorded as a new, offsetting transaction.
type Transaction struct {
	kind        Kind
	description string
	amount      decimal.Decimal
	createdAt   time.Time
}

// NewTransaction creates a transaction stamped with the current time.
//
// kind must be Income or Expense, amount must not be negative, and the
// description must fit in a single ledger field (no comma, no line break).
func NewTransaction(kind Kind, description string, amount decimal.Decimal) (Transaction, error) {
	if !kind.Valid() {
		return Transaction{}, fmt.Errorf("%w: %q", ErrInvalidKind, string(kind))
	}
	if amount.IsNegative() {
		return Transaction{}, fmt.Errorf("%w: %s is negative", ErrInvalidAmount, amount)
	}
	if err := ValidateDescription(description); err != nil {
		return Transaction{}, err
	}
	return Transaction{
		kind:        kind,
		description: description,
		amount:      amount,
		createdAt:   now(),
	}, nil
}

// ValidateDescription reports whether s can be stored as a description: the
// ledger file has no escaping, so commas and line breaks are rejected.
func ValidateDescription(s string) error {
	if strings.ContainsAny(s, ",\r\n") {
		return fmt.Errorf("%w: %q contains a comma or a line break", ErrInvalidDescription, s)
	}
	return nil
}

func (t Transaction) Kind() Kind              { return t.kind }
func (t Transaction) Description() string     { return t.description }
func (t Transaction) Amount() decimal.Decimal { return t.amount }
func (t Transaction) CreatedAt() time.Time    { return t.createdAt }
func (t Transaction) IsKind(kind Kind) bool   { return t.kind == kind }

// Signed returns the amount as it contributes to the balance: positive for
// an income, negative for an expense.
func (t Transaction) Signed() decimal.Decimal {
	if t.kind == Expense {
		return t.amount.Neg()
	}
	return t.amount
}

// Equal compares kind, description and amount. The creation time is ignored,
// it is not persisted.
func (t Transaction) Equal(u Transaction) bool {
	return t.kind == u.kind && t.description == u.description && t.amount.Equal(u.amount)
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s,%s,%s", t.kind, t.description, t.amount)
}
