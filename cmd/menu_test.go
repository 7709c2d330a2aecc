package cmd

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/etnz/cashbook"
	"github.com/google/go-cmp/cmp"
)

// brokenStore loads fine but cannot save.
type brokenStore struct{}

func (brokenStore) Load() ([]string, error)           { return nil, nil }
func (brokenStore) Save([]cashbook.Transaction) error { return errors.New("disk full") }

// runMenu plays input in a menu over store, and returns the menu and its output.
func runMenu(t *testing.T, store cashbook.Store, input string) (*Menu, *cashbook.Ledger, string) {
	t.Helper()
	ledger, err := cashbook.Load(store)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	var out strings.Builder
	m := NewMenu(ledger, "IDR", strings.NewReader(input), &out)
	if err := m.Run(); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	return m, ledger, out.String()
}

func TestMenu(t *testing.T) {
	tests := []struct {
		name  string
		lines []string // initial store content
		input string
		want  []string // expected fragments of the output, in order
		// expected store content after the session
		stored []string
	}{
		{
			name:   "add income",
			input:  "1\nsalary\n5000\n6\n",
			want:   []string{"Balance: IDR 0.00", "Enter income description: ", "Enter income amount: ", "Balance now: IDR 5,000.00", "Balance: IDR 5,000.00", "Goodbye."},
			stored: []string{"income,salary,5000"},
		},
		{
			name:   "add expense after income",
			lines:  []string{"income,salary,5000"},
			input:  "2\nrent\n1200\n6\n",
			want:   []string{"Balance: IDR 5,000.00", "Balance now: IDR 3,800.00"},
			stored: []string{"income,salary,5000", "expense,rent,1200"},
		},
		{
			name:   "negative balance",
			input:  "2\ncoffee\n4.5\n6\n",
			want:   []string{"Balance now: IDR -4.50"},
			stored: []string{"expense,coffee,4.5"},
		},
		{
			name:  "invalid choice",
			input: "9\nabc\n6\n",
			want:  []string{"Invalid choice.", "Invalid choice.", "Goodbye."},
		},
		{
			name:   "invalid amount is asked again",
			input:  "1\ngift\nabc\n-5\n100\n6\n",
			want:   []string{"Invalid input, please enter a valid number.", "Invalid input, please enter a valid number.", "Balance now: IDR 100.00"},
			stored: []string{"income,gift,100"},
		},
		{
			name:   "description with a comma is asked again",
			input:  "1\na,b\nab\n1\n6\n",
			want:   []string{"Invalid description, commas are not allowed.", "Balance now: IDR 1.00"},
			stored: []string{"income,ab,1"},
		},
		{
			name:   "list income",
			lines:  []string{"income,salary,5000", "expense,rent,1200", "income,bonus,250.5"},
			input:  "3\n6\n",
			want:   []string{"Income records:", "Income | salary: IDR 5,000.00 | ", "Income | bonus: IDR 250.50 | "},
			stored: []string{"income,salary,5000", "expense,rent,1200", "income,bonus,250.5"},
		},
		{
			name:   "list empty expense",
			lines:  []string{"income,salary,5000"},
			input:  "4\n6\n",
			want:   []string{"Expense records:", "No expense recorded."},
			stored: []string{"income,salary,5000"},
		},
		{
			name:  "change currency",
			input: "5\n2\n6\n",
			want:  []string{"Choose a currency:", "1. IDR", "2. USD", "3. EUR", "Current currency: USD", "Balance: USD 0.00"},
		},
		{
			name:  "invalid currency falls back to IDR",
			input: "5\n2\n5\n7\n6\n",
			want:  []string{"Current currency: USD", "Invalid choice, using IDR.", "Current currency: IDR", "Balance: IDR 0.00"},
		},
		{
			name:  "end of input",
			input: "1\nsalary\n",
			want:  []string{"Enter income amount: "},
		},
		{
			name:  "empty input",
			input: "",
			want:  []string{"Choose an option: "},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := cashbook.NewMemoryStore(tt.lines...)
			_, _, out := runMenu(t, store, tt.input)

			rest := out
			for _, want := range tt.want {
				i := strings.Index(rest, want)
				if i < 0 {
					t.Fatalf("output does not contain %q after the previous fragments, output:\n%s", want, out)
				}
				rest = rest[i+len(want):]
			}

			got, _ := store.Load()
			if diff := cmp.Diff(tt.stored, got); diff != "" {
				t.Errorf("stored lines mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMenu_Currency(t *testing.T) {
	m, _, _ := runMenu(t, cashbook.NewMemoryStore(), "5\n3\n6\n")
	if got := m.Currency(); got != "EUR" {
		t.Errorf("Currency() = %q, want %q", got, "EUR")
	}
}

func TestMenu_SaveFailure(t *testing.T) {
	_, ledger, out := runMenu(t, brokenStore{}, "1\nsalary\n5000\n6\n")

	// The session goes on with the transaction in memory.
	if !strings.Contains(out, "Balance now: IDR 5,000.00") {
		t.Errorf("output does not contain the new balance:\n%s", out)
	}
	if got, want := ledger.Len(), 1; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
}

func TestMenuLedger_UnreadableIsNotSaved(t *testing.T) {
	// A directory exists but cannot be read as a ledger.
	dir := t.TempDir()
	withConfig(t, Config{LedgerFile: dir, Currency: "IDR"})

	ledger := menuLedger()
	var out strings.Builder
	if err := NewMenu(ledger, "IDR", strings.NewReader("1\nsalary\n5\n6\n"), &out).Run(); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if !strings.Contains(out.String(), "Balance now: IDR 5.00") {
		t.Errorf("output does not contain the new balance:\n%s", out.String())
	}
	var saveErr *cashbook.SaveError
	if err := ledger.Save(); !errors.As(err, &saveErr) {
		t.Errorf("Save() = %v, want a *SaveError", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("ledger location was written to, it holds %d entries", len(entries))
	}
}
