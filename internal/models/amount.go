package models

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Money crosses the wire as JSON numbers, matching Amount.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Amount is a monetary value as reported by the budget service. Valid is false
// when the value was missing, null, or not numeric.
type Amount struct {
	Value decimal.Decimal
	Valid bool
}

// NewAmount returns a valid Amount.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Value: d, Valid: true}
}

// AmountFromString parses s as a decimal. Unparseable input yields an invalid
// Amount rather than an error.
func AmountFromString(s string) Amount {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Amount{}
	}
	return NewAmount(d)
}

// OrZero returns the value, or zero when the amount is invalid.
func (a Amount) OrZero() decimal.Decimal {
	if !a.Valid {
		return decimal.Zero
	}
	return a.Value
}

// NonNegative returns the value clamped at zero. Invalid amounts count as zero.
func (a Amount) NonNegative() decimal.Decimal {
	v := a.OrZero()
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}

// IsPositive reports whether the amount is valid and greater than zero.
func (a Amount) IsPositive() bool {
	return a.Valid && a.Value.IsPositive()
}

// Equal reports whether two amounts have the same validity and value.
func (a Amount) Equal(b Amount) bool {
	if a.Valid != b.Valid {
		return false
	}
	return !a.Valid || a.Value.Equal(b.Value)
}

// MarshalJSON encodes a valid amount as a JSON number and an invalid one as null.
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Valid {
		return []byte("null"), nil
	}
	return []byte(a.Value.String()), nil
}

// UnmarshalJSON accepts JSON numbers and numeric strings. Anything else
// decodes to an invalid Amount without failing the surrounding document.
func (a *Amount) UnmarshalJSON(data []byte) error {
	*a = Amount{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		*a = AmountFromString(s)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		*a = AmountFromString(string(data))
	}
	return nil
}
