package types

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Amount is a monetary input that never fails to decode.
//
// JSON numbers and numeric strings are parsed exactly. Everything else,
// including null, NaN, infinities, booleans and garbage strings, decodes
// to zero.
type Amount struct {
	decimal.Decimal
}

// NewAmount returns an Amount for a decimal.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (a *Amount) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var raw any
	if err := decoder.Decode(&raw); err != nil {
		a.Decimal = decimal.Zero
		return nil
	}

	a.Decimal = Coerce(raw)
	return nil
}

// Coerce converts any value into a finite decimal, falling back to zero.
func Coerce(v any) decimal.Decimal {
	switch value := v.(type) {
	case decimal.Decimal:
		return value
	case Amount:
		return value.Decimal
	case json.Number:
		return parseOrZero(value.String())
	case string:
		return parseOrZero(value)
	case float64:
		return Finite(value)
	case float32:
		return Finite(float64(value))
	case int:
		return decimal.NewFromInt(int64(value))
	case int64:
		return decimal.NewFromInt(value)
	default:
		return decimal.Zero
	}
}

// Finite returns f as a decimal, or zero if f is NaN or infinite.
func Finite(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}

	return decimal.NewFromFloat(f)
}

func parseOrZero(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}

	return d
}

// FormatMoney formats an amount for humans in the given ISO 4217 currency.
//
// Unknown currency codes fall back to a plain number with two decimals.
func FormatMoney(amount decimal.Decimal, code string) string {
	p := message.NewPrinter(language.English)
	f := amount.Round(2).InexactFloat64()

	unit, err := currency.ParseISO(code)
	if err != nil {
		return p.Sprintf("%.2f", f)
	}

	return p.Sprint(currency.Symbol(unit.Amount(f)))
}
