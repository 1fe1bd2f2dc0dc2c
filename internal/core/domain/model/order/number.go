package order

import (
	"fmt"
	"math/rand/v2"
	"time"

	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"
)

const (
	numberPrefix       = "ORD"
	numberRandomDigits = 8
)

// ErrNumberIsNotConstructed is returned when using a zero-value Number.
var ErrNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"Number must be created via GenerateNumber or NumberFromString")

// Number is the human-readable order number: "ORD" followed by eight random
// digits and the two-digit month and day, e.g. "ORD482915030829".
//
// Eight random digits per day make collisions unlikely but possible; the
// database's uniqueness constraint is the backstop, and order creation
// retries with a fresh number on a conflict.
type Number struct {
	value string
	guard guard.ConstructorGuard
}

// GenerateNumber produces a fresh order number for the given time.
func GenerateNumber(now time.Time) Number {
	digits := make([]byte, numberRandomDigits)
	for i := range digits {
		digits[i] = byte('0' + rand.IntN(10))
	}

	return Number{
		value: numberPrefix + string(digits) + now.Format("0102"),
		guard: guard.NewConstructorGuard(),
	}
}

// NumberFromString parses and validates an order number from persistence or
// request input.
func NumberFromString(s string) (Number, error) {
	if len(s) != len(numberPrefix)+numberRandomDigits+4 {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("orderNumber",
			fmt.Errorf("%q has invalid length", s))
	}
	if s[:len(numberPrefix)] != numberPrefix {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("orderNumber",
			fmt.Errorf("%q does not start with %s", s, numberPrefix))
	}
	for _, c := range s[len(numberPrefix):] {
		if c < '0' || c > '9' {
			return Number{}, errs.NewValueIsInvalidErrorWithCause("orderNumber",
				fmt.Errorf("%q contains a non-digit", s))
		}
	}

	return Number{value: s, guard: guard.NewConstructorGuard()}, nil
}

// String returns the order number text.
func (n Number) String() string {
	return n.value
}

// IsEqual reports whether two numbers are the same.
func (n Number) IsEqual(other Number) bool {
	return n.value == other.value
}

// Validate ensures the number was created via a constructor.
func (n Number) Validate() error {
	return n.guard.Validate(ErrNumberIsNotConstructed)
}
