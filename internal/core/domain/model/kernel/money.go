package kernel

import (
	"fmt"
)

// Money represents a monetary amount in paise (hundredths of a rupee).
// Storing integer paise keeps order arithmetic exact: the ledger invariant
// final = subtotal + delivery charge + tax must hold to the paisa, which
// floating point cannot guarantee.
//
// The zero value is a valid zero amount. Money is immutable; arithmetic
// methods return new values.
type Money struct {
	paise int64
}

// NewMoney creates a Money amount from paise. Negative amounts are allowed
// at this level (e.g. adjustments); callers that require non-negative values
// validate at their own boundary.
func NewMoney(paise int64) Money {
	return Money{paise: paise}
}

// Zero returns the zero amount.
func Zero() Money {
	return Money{}
}

// Paise returns the raw amount in paise.
func (m Money) Paise() int64 {
	return m.paise
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.paise < 0
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{paise: m.paise + other.paise}
}

// MulQuantity returns the amount multiplied by an item quantity.
func (m Money) MulQuantity(quantity int) Money {
	return Money{paise: m.paise * int64(quantity)}
}

// Percent returns p percent of the amount, truncated toward zero.
// Used for the fixed 5% tax policy.
func (m Money) Percent(p int64) Money {
	return Money{paise: m.paise * p / 100}
}

// IsEqual reports whether two amounts are the same.
func (m Money) IsEqual(other Money) bool {
	return m.paise == other.paise
}

// String renders the amount as rupees with two decimals, e.g. "282.00".
func (m Money) String() string {
	sign := ""
	p := m.paise
	if p < 0 {
		sign = "-"
		p = -p
	}
	return fmt.Sprintf("%s%d.%02d", sign, p/100, p%100)
}
