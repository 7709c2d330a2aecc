package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/etnz/cashbook"
	"github.com/etnz/cashbook/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type menuCmd struct{}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "interactive menu to record and review transactions (default)" }
func (*menuCmd) Usage() string {
	return `cbk [menu]

  Opens an interactive, numbered menu to add incomes and expenses, list
  them, and change the currency label. Every addition is saved immediately.
`
}

func (c *menuCmd) SetFlags(f *flag.FlagSet) {}

func (c *menuCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := NewMenu(menuLedger(), config.Currency, os.Stdin, os.Stdout).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// menuLedger loads the configured ledger. When the file exists but cannot be
// read, the menu runs on an empty ledger that is never saved, so the file is
// left untouched.
func menuLedger() *cashbook.Ledger {
	ledger, err := DecodeLedger()
	if err != nil {
		log.Printf("warning, could not load ledger, starting empty and read-only: %v", err)
		return cashbook.NewLedger(nil)
	}
	return ledger
}

// Menu options.
const (
	optAddIncome = iota + 1
	optAddExpense
	optListIncome
	optListExpense
	optCurrency
	optExit
)

// Menu is an interactive session over a ledger.
//
// The currency label is the session's own state: changing it only changes
// how amounts are displayed.
type Menu struct {
	ledger   *cashbook.Ledger
	currency string
	in       *bufio.Scanner
	out      io.Writer
	title    lipgloss.Style
}

// NewMenu creates a menu reading answers from in and writing to out.
func NewMenu(ledger *cashbook.Ledger, currency string, in io.Reader, out io.Writer) *Menu {
	r := lipgloss.NewRenderer(out)
	return &Menu{
		ledger:   ledger,
		currency: currency,
		in:       bufio.NewScanner(in),
		out:      out,
		title:    r.NewStyle().Bold(true),
	}
}

// Currency returns the label currently used to display amounts.
func (m *Menu) Currency() string { return m.currency }

// errEndOfInput stops the menu when the input is exhausted.
var errEndOfInput = errors.New("end of input")

// Run displays the menu until the user exits or the input ends. It only
// returns an error if the input cannot be read.
func (m *Menu) Run() error {
	for {
		exit, err := m.step()
		if errors.Is(err, errEndOfInput) {
			fmt.Fprintln(m.out)
			return m.in.Err()
		}
		if err != nil || exit {
			return err
		}
	}
}

// step displays the menu once and runs the selected option.
func (m *Menu) step() (exit bool, err error) {
	fmt.Fprintln(m.out, "=====================================")
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, m.title.Render("Balance: "+renderer.Amount(m.currency, m.ledger.Balance())))
	fmt.Fprintln(m.out, "1. Add income")
	fmt.Fprintln(m.out, "2. Add expense")
	fmt.Fprintln(m.out, "3. List income")
	fmt.Fprintln(m.out, "4. List expense")
	fmt.Fprintln(m.out, "5. Currency settings")
	fmt.Fprintln(m.out, "6. Exit")

	answer, err := m.ask("Choose an option: ")
	if err != nil {
		return false, err
	}
	choice, convErr := strconv.Atoi(strings.TrimSpace(answer))
	if convErr != nil {
		choice = 0
	}

	switch choice {
	case optAddIncome:
		err = m.add(cashbook.Income)
	case optAddExpense:
		err = m.add(cashbook.Expense)
	case optListIncome:
		m.list(cashbook.Income)
	case optListExpense:
		m.list(cashbook.Expense)
	case optCurrency:
		err = m.configureCurrency()
	case optExit:
		fmt.Fprintln(m.out, "Goodbye.")
		return true, nil
	default:
		fmt.Fprintln(m.out, "Invalid choice.")
	}
	return false, err
}

// ask prints prompt and reads one line.
func (m *Menu) ask(prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		return "", errEndOfInput
	}
	return m.in.Text(), nil
}

// add prompts for a description and an amount until both are valid, then
// records the transaction.
func (m *Menu) add(kind cashbook.Kind) error {
	var description string
	for {
		answer, err := m.ask(fmt.Sprintf("Enter %s description: ", kind))
		if err != nil {
			return err
		}
		if err := cashbook.ValidateDescription(answer); err != nil {
			fmt.Fprintln(m.out, "Invalid description, commas are not allowed.")
			continue
		}
		description = answer
		break
	}

	amount, err := m.askAmount(fmt.Sprintf("Enter %s amount: ", kind))
	if err != nil {
		return err
	}

	balance, err := m.ledger.Add(kind, description, amount)
	var saveErr *cashbook.SaveError
	switch {
	case errors.As(err, &saveErr):
		// the transaction is recorded in memory, it may not survive a restart.
		log.Printf("warning, %v", err)
	case err != nil:
		fmt.Fprintf(m.out, "Could not add %s: %v\n", kind, err)
		return nil
	}
	fmt.Fprintf(m.out, "Balance now: %s\n", renderer.Amount(m.currency, balance))
	return nil
}

// askAmount prompts until a valid, non negative number is entered.
func (m *Menu) askAmount(prompt string) (decimal.Decimal, error) {
	for {
		answer, err := m.ask(prompt)
		if err != nil {
			return decimal.Zero, err
		}
		amount, err := cashbook.ParseAmount(answer)
		if err != nil {
			fmt.Fprintln(m.out, "Invalid input, please enter a valid number.")
			continue
		}
		return amount, nil
	}
}

// list prints every transaction of that kind, in the order they were recorded.
func (m *Menu) list(kind cashbook.Kind) {
	fmt.Fprintf(m.out, "%s records:\n", renderer.KindName(kind))
	n := 0
	for tx := range m.ledger.FilterByKind(kind) {
		fmt.Fprintln(m.out, renderer.Transaction(m.currency, tx))
		n++
	}
	if n == 0 {
		fmt.Fprintf(m.out, "No %s recorded.\n", kind)
	}
}

// configureCurrency changes the display label. An invalid choice selects the default label.
func (m *Menu) configureCurrency() error {
	fmt.Fprintln(m.out, "Choose a currency:")
	for i, cur := range renderer.Currencies {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, cur)
	}
	answer, err := m.ask("Choose an option: ")
	if err != nil {
		return err
	}
	choice, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil || choice < 1 || choice > len(renderer.Currencies) {
		fmt.Fprintf(m.out, "Invalid choice, using %s.\n", renderer.DefaultCurrency)
		m.currency = renderer.DefaultCurrency
	} else {
		m.currency = renderer.Currencies[choice-1]
	}
	fmt.Fprintf(m.out, "Current currency: %s\n", m.currency)
	return nil
}
