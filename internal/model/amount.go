package model

import (
	"bytes"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a decimal value read from loosely typed sources (JSON bodies, TEXT
// columns). Anything that is not a number decodes to zero, never to an error.
type Amount struct {
	decimal.Decimal
}

// NewAmount wraps a decimal.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// AmountFromString is a convenience for tests and seed data.
func AmountFromString(s string) Amount {
	return Amount{Decimal: ParseAmount(s)}
}

// Limits on accepted decimal literals. A short literal such as "1e20000000"
// expands to millions of digits once rendered, so scale and length are capped.
const (
	maxDecimalLiteral  = 64
	maxDecimalExponent = 30
)

// ParseDecimal parses a trimmed numeric literal. ok is false for empty,
// non-numeric or out-of-range input.
func ParseDecimal(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > maxDecimalLiteral {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	if exp := d.Exponent(); exp > maxDecimalExponent || exp < -maxDecimalExponent {
		return decimal.Zero, false
	}
	return d, true
}

// ParseAmount converts s to a decimal, coercing empty, non-numeric or
// out-of-range input to zero.
func ParseAmount(s string) decimal.Decimal {
	d, ok := ParseDecimal(s)
	if !ok {
		return decimal.Zero
	}
	return d
}

// UnmarshalJSON accepts numbers and numeric strings. null, booleans, objects,
// arrays and non-numeric strings all become zero.
func (a *Amount) UnmarshalJSON(data []byte) error {
	a.Decimal = ParseAmount(string(bytes.Trim(data, `"`)))
	return nil
}

// MarshalJSON renders the amount as a bare JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

// NullAmount is a decimal that remembers whether its source was numeric.
// Used for FX mid rates and the spread, where a malformed value must be
// distinguishable from zero.
type NullAmount struct {
	Decimal decimal.Decimal
	Valid   bool
}

// NewNullAmount returns a valid NullAmount holding d.
func NewNullAmount(d decimal.Decimal) NullAmount {
	return NullAmount{Decimal: d, Valid: true}
}

// ParseNullAmount parses s, returning an invalid NullAmount when s is not a
// numeric literal within range.
func ParseNullAmount(s string) NullAmount {
	d, ok := ParseDecimal(s)
	if !ok {
		return NullAmount{}
	}
	return NullAmount{Decimal: d, Valid: true}
}

// UnmarshalJSON never fails; non-numeric input leaves the amount invalid.
func (n *NullAmount) UnmarshalJSON(data []byte) error {
	*n = ParseNullAmount(string(bytes.Trim(data, `"`)))
	return nil
}

// MarshalJSON renders invalid amounts as null.
func (n NullAmount) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return []byte(n.Decimal.String()), nil
}

// String returns the decimal text, or an empty string when invalid.
func (n NullAmount) String() string {
	if !n.Valid {
		return ""
	}
	return n.Decimal.String()
}
