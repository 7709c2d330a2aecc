package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cashbook"
	"github.com/etnz/cashbook/renderer"
	"github.com/google/subcommands"
)

// addCmd records one transaction of a given kind.
type addCmd struct {
	kind   cashbook.Kind
	memo   string
	amount string
}

func newAddCmd(kind cashbook.Kind) *addCmd { return &addCmd{kind: kind} }

func (c *addCmd) Name() string { return c.kind.String() }
func (c *addCmd) Synopsis() string {
	if c.kind == cashbook.Income {
		return "record money coming in"
	}
	return "record money going out"
}
func (c *addCmd) Usage() string {
	return fmt.Sprintf(`cbk %[1]s -m <description> -a <amount>

  Records an %[1]s in the ledger and prints the new balance.
  The description cannot contain a comma, the amount must be a non negative
  number in plain notation (e.g. 1200 or 45.50).
`, c.kind)
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.memo, "m", "", "Description of the transaction (no comma)")
	f.StringVar(&c.amount, "a", "", "Amount, a non negative number")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := cashbook.ParseAmount(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		f.Usage()
		return subcommands.ExitUsageError
	}
	if err := cashbook.ValidateDescription(c.memo); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		// Saving now would overwrite a file we could not read.
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	balance, err := ledger.Add(c.kind, c.memo, amount)
	var saveErr *cashbook.SaveError
	switch {
	case errors.As(err, &saveErr):
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	fmt.Printf("Balance now: %s\n", renderer.Amount(config.Currency, balance))
	return subcommands.ExitSuccess
}
