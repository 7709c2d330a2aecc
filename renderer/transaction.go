package renderer

import (
	"fmt"
	"time"

	"github.com/etnz/cashbook"
)

// KindName is the human name of a transaction kind.
func KindName(kind cashbook.Kind) string {
	switch kind {
	case cashbook.Income:
		return "Income"
	case cashbook.Expense:
		return "Expense"
	default:
		return string(kind)
	}
}

// Transaction renders a transaction on a single line:
//
//	Income | salary: IDR 5,000.00 | 2025-08-01 09:30:00
func Transaction(label string, tx cashbook.Transaction) string {
	return fmt.Sprintf("%s | %s: %s | %s",
		KindName(tx.Kind()),
		tx.Description(),
		Amount(label, tx.Amount()),
		tx.CreatedAt().Format(time.DateTime))
}
