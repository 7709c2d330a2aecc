package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cashbook"
	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `cbk fmt

  Validates and formats the ledger file. This command reads all transactions,
  reports malformed lines, and writes the valid ones back in canonical form
  (amounts without trailing zeros, no blank lines).
  Malformed lines are dropped from the file.

Usage Examples:
# Rewrites the default ledger file.
$ cbk fmt

`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (*fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := cashbook.Load(cashbook.NewFileStore(config.LedgerFile))
	records := cashbook.RecordErrors(err)
	if err != nil && len(records) == 0 {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, r := range records {
		fmt.Fprintf(os.Stderr, "Dropping %v\n", r)
	}

	if err := ledger.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Formatted %q: %d transactions kept, %d lines dropped.\n", config.LedgerFile, ledger.Len(), len(records))
	return subcommands.ExitSuccess
}
