package kernel

import (
	"fmt"
	"strconv"

	"supplytrace/internal/pkg/errs"
)

// Money is a value object representing a monetary amount in integer cents.
// Using integer arithmetic keeps order totals exact and gives the amount a
// single canonical string form, which matters because the order total is one
// of the fields covered by the chain-of-custody signature.
//
// The zero value represents zero money and fails Validate; amounts must be
// created through NewMoney.
type Money struct {
	cents int64
}

// NewMoney creates a Money amount from integer cents.
// The amount must be positive.
func NewMoney(cents int64) (Money, error) {
	if cents <= 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money amount is invalid",
			fmt.Errorf("%d cents is not greater than 0", cents),
		)
	}
	return Money{cents: cents}, nil
}

// Cents returns the amount in integer cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Multiply returns the amount multiplied by a positive quantity.
func (m Money) Multiply(quantity int) (Money, error) {
	if quantity <= 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	return Money{cents: m.cents * int64(quantity)}, nil
}

// CanonicalString returns the deterministic representation used when the
// amount participates in the order hash: the cent count in base 10, no
// separators, no currency symbol.
func (m Money) CanonicalString() string {
	return strconv.FormatInt(m.cents, 10)
}

// String returns a human-readable decimal form, e.g. "125.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}

// IsEqual compares two amounts.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// Validate checks that the amount was constructed with a positive value.
func (m Money) Validate() error {
	if m.cents <= 0 {
		return errs.NewValueIsRequiredError("money must be created via NewMoney")
	}
	return nil
}
