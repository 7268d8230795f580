// Package money formats integer currency amounts for display and cleans
// user number input back into raw digits.
package money

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Format renders an amount with the currency symbol: millions with one
// decimal and an "M" suffix, thousands with one decimal and a "K" suffix,
// smaller amounts as the bare integer. The decimal is rounded, not
// truncated.
func Format(amount int64, symbol string) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	d := decimal.NewFromInt(amount)

	switch {
	case amount >= 1_000_000:
		return sign + symbol + d.DivRound(decimal.NewFromInt(1_000_000), 1).StringFixed(1) + "M"
	case amount >= 1_000:
		return sign + symbol + d.DivRound(decimal.NewFromInt(1_000), 1).StringFixed(1) + "K"
	default:
		return sign + symbol + d.String()
	}
}

// FormatNumberInput groups a raw digit string for display, e.g. "1234567"
// becomes "1,234,567". Non-digit characters are dropped first, an empty
// input stays empty.
func FormatNumberInput(input string) string {
	cleaned := CleanNumberInput(input)
	if cleaned == "" {
		return ""
	}

	n, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		// Too long for int64, group manually
		return group(cleaned)
	}

	return printer.Sprintf("%d", n)
}

// CleanNumberInput strips everything that is not a digit.
func CleanNumberInput(input string) string {
	var b strings.Builder
	for _, r := range input {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

func group(digits string) string {
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	return b.String()
}
