// Package cmd implements the CLI application to manage a cashbook.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/cashbook"
	"github.com/etnz/cashbook/renderer"
	"github.com/google/subcommands"
	"golang.org/x/term"
)

// group is a set of subcommands listed together in the help.
type group struct {
	name     string
	commands []subcommands.Command
}

var groups = []group{
	{"ledger", []subcommands.Command{
		&menuCmd{},
		newAddCmd(cashbook.Income),
		newAddCmd(cashbook.Expense),
	}},
	{"reports", []subcommands.Command{
		&listCmd{},
		&balanceCmd{},
		&queryCmd{},
	}},
	{"maintenance", []subcommands.Command{
		&fmtCmd{},
	}},
	{"documentation", []subcommands.Command{
		&topicCmd{},
	}},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, g := range groups {
		for _, cmd := range g.commands {
			c.Register(cmd, g.name)
		}
	}
}

// Commands returns every subcommand of the application.
func Commands() []subcommands.Command {
	var all []subcommands.Command
	for _, g := range groups {
		all = append(all, g.commands...)
	}
	return all
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", DefaultLedgerFile, "Path to the ledger file, one \"kind,description,amount\" line per transaction")
var currency = flag.String("currency", renderer.DefaultCurrency, "Currency label used to display amounts (IDR, USD, EUR)")
var configFile = flag.String("config", "", "Path to a YAML configuration file (defaults to "+DefaultConfigFile+" when present)")
var Verbose = flag.Bool("v", false, "Verbose logging")

// config is the effective configuration, set by Setup.
var config = DefaultConfig()

// Setup configures logging and resolves the configuration. Flags explicitly
// set on the command line win over the config file and the environment.
// It must be called after flag.Parse.
func Setup() error {
	log.SetFlags(0)
	if *Verbose {
		log.SetFlags(log.Ltime | log.Lshortfile)
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		return err
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "ledger-file":
			cfg.LedgerFile = *ledgerFile
		case "currency":
			cfg.Currency = *currency
		}
	})
	if err := cfg.validate(); err != nil {
		return err
	}
	config = cfg
	debugf("ledger file %q, currency %s", config.LedgerFile, config.Currency)
	return nil
}

// debugf logs only in verbose mode.
func debugf(format string, args ...any) {
	if *Verbose {
		log.Output(2, fmt.Sprintf(format, args...))
	}
}

// DecodeLedger loads the ledger from the configured file.
//
// Malformed lines are reported as warnings and skipped. The returned error
// is only set when the file exists but could not be read, the ledger is
// then empty.
func DecodeLedger() (*cashbook.Ledger, error) {
	ledger, err := cashbook.Load(cashbook.NewFileStore(config.LedgerFile))
	if err == nil {
		debugf("loaded %d transactions from %q", ledger.Len(), config.LedgerFile)
		return ledger, nil
	}
	records := cashbook.RecordErrors(err)
	if len(records) == 0 {
		return ledger, err
	}
	for _, r := range records {
		log.Printf("warning, skipping %s: %v", config.LedgerFile, r)
	}
	return ledger, nil
}

// RunMenu runs the interactive menu, it is the default action.
func RunMenu(ctx context.Context) subcommands.ExitStatus {
	return (&menuCmd{}).Execute(ctx, flag.CommandLine)
}

// printMarkdown renders markdown for a terminal, or prints it as is when the
// output is redirected.
func printMarkdown(md string) {
	fprintMarkdown(os.Stdout, md, term.IsTerminal(int(os.Stdout.Fd())))
}

func fprintMarkdown(w io.Writer, md string, styled bool) {
	if !styled {
		fmt.Fprint(w, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithStandardStyle("dark"), glamour.WithWordWrap(100))
	if err != nil {
		debugf("could not create markdown renderer: %v", err)
		fmt.Fprint(w, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		debugf("could not render markdown: %v", err)
		fmt.Fprint(w, md)
		return
	}
	fmt.Fprint(w, out)
}
