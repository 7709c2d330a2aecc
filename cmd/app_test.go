package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/etnz/cashbook"
	"github.com/google/go-cmp/cmp"
)

// withConfig sets the effective configuration for the duration of the test.
func withConfig(t *testing.T, c Config) {
	t.Helper()
	old := config
	config = c
	t.Cleanup(func() { config = old })
}

func TestFprintMarkdown(t *testing.T) {
	md := "# Title\n\n| a | b |\n|---|---|\n| 1 | 2 |\n"

	var plain strings.Builder
	fprintMarkdown(&plain, md, false)
	if got := plain.String(); got != md {
		t.Errorf("fprintMarkdown(unstyled) = %q, want %q", got, md)
	}

	var styled strings.Builder
	fprintMarkdown(&styled, md, true)
	if got := styled.String(); !strings.Contains(got, "Title") {
		t.Errorf("fprintMarkdown(styled) = %q, want it to contain the title", got)
	}
}

func TestDecodeLedger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.txt")
	writeFile(t, path, "income,salary,5000\nthis is not a record\nexpense,rent,1200\n")
	withConfig(t, Config{LedgerFile: path, Currency: "IDR"})

	ledger, err := DecodeLedger()
	if err != nil {
		t.Fatalf("DecodeLedger() error: %v", err)
	}
	if got, want := ledger.Len(), 2; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
	if got, want := ledger.Balance().String(), "3800"; got != want {
		t.Errorf("Balance() = %s, want %s", got, want)
	}
}

func TestDecodeLedger_Unreadable(t *testing.T) {
	// A directory cannot be read as a ledger.
	withConfig(t, Config{LedgerFile: t.TempDir(), Currency: "IDR"})

	ledger, err := DecodeLedger()
	if err == nil {
		t.Fatal("DecodeLedger() succeeded, want an error")
	}
	if ledger == nil || ledger.Len() != 0 {
		t.Errorf("DecodeLedger() ledger = %v, want an empty ledger", ledger)
	}
}

func TestQuery(t *testing.T) {
	ledger, err := cashbook.Load(cashbook.NewMemoryStore(
		"income,salary,5000",
		"expense,rent,1200.5",
		"expense,coffee,4",
		"income,inheritance,12345678901234567.89",
	))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		expr string
		want any
	}{
		{`$[0].description`, "salary"},
		{`$[1].amount`, json.Number("1200.5")},
		{`$[3].amount`, json.Number("12345678901234567.89")},
		{`$[?(@.kind=="expense")].description`, []any{"rent", "coffee"}},
		{`$[*].kind`, []any{"income", "expense", "expense", "income"}},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := query(ledger, tt.expr)
			if err != nil {
				t.Fatalf("query(%q) error: %v", tt.expr, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("query(%q) mismatch (-want +got):\n%s", tt.expr, diff)
			}
		})
	}

	if _, err := query(ledger, "$[?("); err == nil {
		t.Error("query(invalid) succeeded, want an error")
	}
}

func TestTopicList(t *testing.T) {
	got, err := topicList()
	if err != nil {
		t.Fatalf("topicList() error: %v", err)
	}
	for _, want := range []string{"| Topic | Title |", "| format | Ledger file format |", "| menu | Interactive menu |"} {
		if !strings.Contains(got, want) {
			t.Errorf("topicList() does not contain %q:\n%s", want, got)
		}
	}
}

func TestRunExtension(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("extensions are shell scripts in this test")
	}
	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")
	script := "#!/bin/sh\necho \"$" + EnvLedgerFile + " $" + EnvCurrency + " $" + EnvVerbose + " $*\" > " + out + "\nexit 3\n"
	if err := os.WriteFile(filepath.Join(dir, "cbk-hello"), []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
	withConfig(t, Config{LedgerFile: "cash.txt", Currency: "EUR"})

	found, code := RunExtension("hello", []string{"a", "b"})
	if !found {
		t.Fatal("RunExtension(hello) did not find cbk-hello")
	}
	if code != 3 {
		t.Errorf("RunExtension(hello) exit code = %d, want 3", code)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(b), "cash.txt EUR false a b\n"; got != want {
		t.Errorf("extension output = %q, want %q", got, want)
	}

	if found, _ := RunExtension("does-not-exist", nil); found {
		t.Error("RunExtension(does-not-exist) found an extension")
	}
}
