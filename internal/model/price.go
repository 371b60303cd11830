package model

import "github.com/shopspring/decimal"

// Price is an optional amount rendered as a bare JSON number.
type Price struct {
	decimal.NullDecimal
}

// NewPrice returns a present price of d.
func NewPrice(d decimal.Decimal) Price {
	return Price{decimal.NewNullDecimal(d)}
}

// MarshalJSON writes the amount unquoted, or null when absent.
func (p Price) MarshalJSON() ([]byte, error) {
	if !p.Valid {
		return []byte("null"), nil
	}
	return []byte(p.Decimal.String()), nil
}

// UnmarshalJSON accepts a JSON number, a quoted number or null.
func (p *Price) UnmarshalJSON(data []byte) error {
	return p.NullDecimal.UnmarshalJSON(data)
}
