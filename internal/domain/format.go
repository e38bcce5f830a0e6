package domain

import (
	"fmt"
	"strings"
)

// currencySymbols mirrors how the shop's locale (en-AU) renders the
// currencies it actually sells in. Anything else falls back to "CODE 1,234.56".
var currencySymbols = map[string]string{
	"AUD": "$",
	"USD": "US$",
	"CAD": "CA$",
	"NZD": "NZ$",
	"EUR": "€",
	"GBP": "£",
}

// FormatAmount renders a minor-unit amount as a display price. It is a pure
// function of (amount, currency); every view regenerates prices through it
// rather than trusting a stored string.
func FormatAmount(amount int64, currency string) string {
	code := strings.ToUpper(strings.TrimSpace(currency))
	neg := amount < 0
	if neg {
		amount = -amount
	}
	major := amount / 100
	cents := amount % 100
	body := fmt.Sprintf("%s.%02d", thousandSep(major), cents)
	if neg {
		body = "-" + body
	}
	if sym, ok := currencySymbols[code]; ok {
		return sym + body
	}
	if code == "" {
		return body
	}
	return code + " " + body
}

func thousandSep(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	rem := len(s) % 3
	if rem > 0 {
		b.WriteString(s[:rem])
	}
	for i := rem; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
