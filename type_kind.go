package cashbook

import "fmt"

// Kind classifies a transaction as money coming in or going out.
type Kind string

const (
	// Income adds its amount to the balance.
	Income Kind = "income"
	// Expense subtracts its amount from the balance.
	Expense Kind = "expense"
)

// Kinds lists every valid Kind, in menu order.
var Kinds = []Kind{Income, Expense}

func (k Kind) String() string { return string(k) }

// Valid reports whether k is Income or Expense.
func (k Kind) Valid() bool { return k == Income || k == Expense }

// ParseKind parses the exact, case-sensitive kind names used in the ledger file.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case Income:
		return Income, nil
	case Expense:
		return Expense, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
}
