package renderer

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the label used when none is configured.
const DefaultCurrency = "IDR"

// Currencies lists the supported currency labels, in menu order.
//
// A label is only a display prefix: amounts are never converted.
var Currencies = []string{"IDR", "USD", "EUR"}

// ParseCurrency validates a currency label. It is case-insensitive.
func ParseCurrency(s string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(s))
	if !slices.Contains(Currencies, code) || money.GetCurrency(code) == nil {
		return "", fmt.Errorf("unsupported currency %q, want one of %s", s, strings.Join(Currencies, ", "))
	}
	return code, nil
}

// amountFormatter groups thousands with "," and always prints two decimals.
var amountFormatter = money.NewFormatter(2, ".", ",", "", "1")

// Amount formats amount as "<label> <grouped integer>.<2 digits>", e.g.
// "IDR 1,000.00". Negative amounts read "IDR -1,000.00".
func Amount(label string, amount decimal.Decimal) string {
	cents := amount.Shift(2).RoundBank(0)
	if cents.LessThan(minCents) || cents.GreaterThan(maxCents) {
		return label + " " + groupFixed(amount.StringFixedBank(2))
	}
	return label + " " + amountFormatter.Format(cents.IntPart())
}

// Bounds of the amounts amountFormatter can hold, in cents.
var (
	minCents = decimal.NewFromInt(math.MinInt64)
	maxCents = decimal.NewFromInt(math.MaxInt64)
)

// groupFixed groups the thousands of a fixed point number like "-1234.50".
func groupFixed(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	integer, fraction, _ := strings.Cut(s, ".")

	var b strings.Builder
	b.WriteString(sign)
	for i, c := range integer {
		if i > 0 && (len(integer)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	if fraction != "" {
		b.WriteString(".")
		b.WriteString(fraction)
	}
	return b.String()
}
