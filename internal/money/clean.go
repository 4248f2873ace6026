// Package money turns statement cells into signed amounts.
package money

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/bankconv/bankconv/internal/model"
)

// Locale selects how separators in text amounts are read.
type Locale int

const (
	// LocaleA uses "." for thousands and "," for decimals: 1.234,56.
	LocaleA Locale = iota
	// LocaleB already uses "." for decimals: 1234.56.
	LocaleB
)

var localeNames = map[Locale]string{
	LocaleA: "eu",
	LocaleB: "us",
}

func (l Locale) String() string {
	if name, ok := localeNames[l]; ok {
		return name
	}
	return fmt.Sprintf("locale(%d)", int(l))
}

// ParseLocale maps "eu" / "us" (or "a" / "b") to a Locale.
func ParseLocale(s string) (Locale, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "eu", "a":
		return LocaleA, nil
	case "us", "b":
		return LocaleB, nil
	default:
		return 0, fmt.Errorf("unknown locale %q (want eu or us)", s)
	}
}

// currencyMarkers are removed before parsing. Codes go first so "EUR" is not
// left behind as "UR" by a symbol pass.
var currencyMarkers = []string{"EUR", "USD", "GBP", "€", "$", "£"}

// Clean converts a cell to a signed amount. The result is invalid (null) when
// the cell is empty or still holds non-numeric text after cleaning; callers
// drop such rows.
func Clean(v model.Value, loc Locale) decimal.NullDecimal {
	switch v.Kind {
	case model.ValueNumber:
		return decimal.NewNullDecimal(v.Number)
	case model.ValueText:
		return cleanText(v.Text, loc)
	default:
		return decimal.NullDecimal{}
	}
}

func cleanText(s string, loc Locale) decimal.NullDecimal {
	for _, m := range currencyMarkers {
		s = strings.ReplaceAll(s, m, "")
	}
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	if loc == LocaleA {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}

	if s == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// Format renders an amount in its shortest form: 45.3, 1200, 0.
func Format(d decimal.Decimal) string {
	return d.String()
}
