package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatRubles renders an amount rounded to whole rubles with thin-space
// thousands grouping, e.g. 1234567.8 -> "1 234 568".
func FormatRubles(amount decimal.Decimal) string {
	s := amount.Round(0).String()
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// FormatShort renders an amount in thousands with one decimal place,
// e.g. 12340 -> "12.3k". Trailing ".0" is dropped.
func FormatShort(amount decimal.Decimal) string {
	s := amount.Div(decimal.NewFromInt(1000)).Round(1).String()
	s = strings.TrimSuffix(s, ".0")
	return s + "k"
}
