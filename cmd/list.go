package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cashbook"
	"github.com/etnz/cashbook/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	kind string
	head int
	tail int
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the transactions in the ledger" }
func (*listCmd) Usage() string {
	return `cbk list [-k income|expense] [-head <n>] [-tail <n>]

  Lists transactions in the order they were recorded, with options for
  filtering by kind and limiting the output.
`
}

func (p *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.kind, "k", "", "Only list transactions of this kind (income, expense).")
	f.IntVar(&p.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N transactions.")
}

func (p *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head > 0 && p.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	title := "Transactions"
	accept := func(cashbook.Transaction) bool { return true }
	if p.kind != "" {
		kind, err := cashbook.ParseKind(p.kind)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		title = renderer.KindName(kind)
		accept = func(tx cashbook.Transaction) bool { return tx.IsKind(kind) }
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var transactions []renderer.IndexedTransaction
	for i, tx := range ledger.Transactions() {
		if accept(tx) {
			transactions = append(transactions, renderer.IndexedTransaction{Index: i, Transaction: tx})
		}
	}

	if p.head > 0 && len(transactions) > p.head {
		transactions = transactions[:p.head]
	}
	if p.tail > 0 && len(transactions) > p.tail {
		transactions = transactions[len(transactions)-p.tail:]
	}

	printMarkdown(renderer.RenderTransactions(renderer.NewTransactionsReport(config.Currency, title, transactions)))
	return subcommands.ExitSuccess
}
