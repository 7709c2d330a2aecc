// Package renderer turns ledger data into text for humans: single lines for
// the interactive menu and markdown reports for the subcommands.
//
// Every function takes the currency label explicitly. There is no global
// display state.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
	"time"

	"github.com/etnz/cashbook"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.md
var templates embed.FS

// TransactionRow is one line of the transactions table.
type TransactionRow struct {
	Index       int
	Kind        string
	Description string
	Amount      string
	Created     string
}

// TransactionsReport is the data of the transactions table.
type TransactionsReport struct {
	Title string
	Rows  []TransactionRow
	Total string
}

// NewTransactionsReport prepares the table for txs, in the given order.
// Index is the 1-based position of the transaction in the ledger.
func NewTransactionsReport(label, title string, txs []IndexedTransaction) *TransactionsReport {
	r := &TransactionsReport{Title: title}
	total := decimal.Zero
	for _, itx := range txs {
		tx := itx.Transaction
		r.Rows = append(r.Rows, TransactionRow{
			Index:       itx.Index + 1,
			Kind:        KindName(tx.Kind()),
			Description: escapeCell(tx.Description()),
			Amount:      Amount(label, tx.Amount()),
			Created:     tx.CreatedAt().Format(time.DateTime),
		})
		total = total.Add(tx.Signed())
	}
	r.Total = Amount(label, total)
	return r
}

// IndexedTransaction is a transaction with its position in the ledger.
type IndexedTransaction struct {
	Index       int
	Transaction cashbook.Transaction
}

// RenderTransactions renders the transactions table to markdown.
func RenderTransactions(r *TransactionsReport) string {
	return renderTemplate("transactions", "transactions.md", r)
}

// BalanceReport is the data of the balance summary.
type BalanceReport struct {
	Count   int
	Income  string
	Expense string
	Balance string
}

// NewBalanceReport summarizes the ledger totals.
func NewBalanceReport(label string, l *cashbook.Ledger) *BalanceReport {
	return &BalanceReport{
		Count:   l.Len(),
		Income:  Amount(label, l.Total(cashbook.Income)),
		Expense: Amount(label, l.Total(cashbook.Expense)),
		Balance: Amount(label, l.Balance()),
	}
}

// RenderBalance renders the balance summary to markdown.
func RenderBalance(r *BalanceReport) string {
	return renderTemplate("balance", "balance.md", r)
}

// escapeCell keeps a description from breaking the markdown table.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// renderTemplate renders one of the embedded templates.
func renderTemplate(templateName, file string, data any) string {
	content, err := fs.ReadFile(templates, "templates/"+file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}

	tmpl, err := template.New(templateName).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
