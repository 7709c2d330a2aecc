package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/cashbook"
	"github.com/google/subcommands"
)

type queryCmd struct {
	compact bool
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression over the ledger" }
func (*queryCmd) Usage() string {
	return `cbk query [-c] [<jsonpath>]

  Evaluates a JSONPath expression over the JSON view of the ledger, an array
  of {"kind", "description", "amount"} objects, and prints the result as JSON.
  Without expression the whole ledger is printed.

Usage Examples:
# Descriptions of all expenses.
$ cbk query '$[?(@.kind=="expense")].description'

# Amount of the last transaction.
$ cbk query '$[-1:].amount'

`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.compact, "c", false, "Print compact JSON on a single line.")
}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Error: query takes at most one expression.")
		return subcommands.ExitUsageError
	}
	expr := "$"
	if f.NArg() == 1 {
		expr = f.Arg(0)
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	result, err := query(ledger, expr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var out []byte
	if c.compact {
		out, err = json.Marshal(result)
	} else {
		out, err = json.MarshalIndent(result, "", "  ")
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}

// query evaluates a JSONPath expression over the ledger transactions.
func query(ledger *cashbook.Ledger, expr string) (any, error) {
	txs := make([]cashbook.Transaction, 0, ledger.Len())
	for _, tx := range ledger.Transactions() {
		txs = append(txs, tx)
	}
	b, err := json.Marshal(txs)
	if err != nil {
		return nil, fmt.Errorf("could not encode ledger: %w", err)
	}
	// jsonpath works on generic values, amounts stay exact as json.Number.
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("could not decode ledger: %w", err)
	}
	result, err := jsonpath.Get(expr, v)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", expr, err)
	}
	return result, nil
}
