package model

import "github.com/shopspring/decimal"

// Amount is a money value that is written to JSON as a bare number, the
// way task budgets have always been persisted. It reads both numbers and
// quoted strings.
type Amount struct {
	decimal.Decimal
}

// NewAmount wraps d.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// MarshalJSON writes the amount as a JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}
