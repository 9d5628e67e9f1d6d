// Package money formats cost values for display in the dashboard's fixed pt-BR locale.
package money

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/diillson/cpm-dashboard-go/internal/shared/types"
)

// BaseCurrency is the currency the synthetic series is expressed in.
const BaseCurrency = "BRL"

// DisplayLocale is used for every currency, regardless of the selected code.
var DisplayLocale = language.BrazilianPortuguese

// DefaultRates converts from BaseCurrency to each display currency (prototype: ~R$5 per USD).
func DefaultRates() map[string]float64 {
	return map[string]float64{
		"BRL": 1,
		"USD": 1.0 / 5,
	}
}

func parse(code string) (currency.Unit, error) {
	unit, err := currency.ParseISO(strings.TrimSpace(code))
	if err != nil {
		return currency.Unit{}, fmt.Errorf("%w: %q", types.ErrUnsupportedCurrency, code)
	}
	return unit, nil
}

// Separator sits between the currency symbol and the amount, as pt-BR Intl output does.
const Separator = "\u00a0"

// Format renders value as localized currency text with 2 to 4 fraction digits.
// Negative values carry the sign before the symbol: "-R$\u00a00,25".
func Format(value float64, code string) (string, error) {
	unit, err := parse(code)
	if err != nil {
		return "", err
	}
	sign := ""
	if value < 0 {
		sign, value = "-", -value
	}
	p := message.NewPrinter(DisplayLocale)
	symbol := p.Sprint(currency.Symbol(unit))
	amount := p.Sprint(number.Decimal(value,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(4),
	))
	return sign + symbol + Separator + amount, nil
}

// MustFormat is Format for codes already validated by the caller; unsupported codes render as ISO + plain number.
func MustFormat(value float64, code string) string {
	s, err := Format(value, code)
	if err != nil {
		return fmt.Sprintf("%s %.4f", code, value)
	}
	return s
}

// Convert applies the display rate of code to a base-currency value.
func Convert(value float64, code string, rates map[string]float64) (float64, error) {
	rate, ok := rates[code]
	if !ok {
		return 0, fmt.Errorf("%w: no rate for %q", types.ErrUnsupportedCurrency, code)
	}
	return value * rate, nil
}

// AxisTick is the compact chart-axis label, e.g. "R$0.25" or "$0.25".
func AxisTick(value float64, code string) string {
	unit, err := parse(code)
	if err != nil {
		return fmt.Sprintf("%.2f", value)
	}
	symbol := message.NewPrinter(DisplayLocale).Sprint(currency.NarrowSymbol(unit))
	return fmt.Sprintf("%s%.2f", symbol, value)
}
