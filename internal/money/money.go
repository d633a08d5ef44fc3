package money

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Scale is the number of decimal places held by an Amount.
const Scale = 2

var (
	ErrPrecision = errors.New("amount has more than two decimal places")
	ErrOverflow  = errors.New("amount out of range")
)

var (
	maxAmount = decimal.NewFromInt(math.MaxInt64)
	minAmount = decimal.NewFromInt(math.MinInt64)
)

// Amount is a quantity of money expressed in minor units (cents, pence).
// Ledger arithmetic happens on Amount only; decimals exist at the edges.
type Amount int64

const (
	// Zero is the empty amount.
	Zero Amount = 0

	MaxAmount Amount = math.MaxInt64
	MinAmount Amount = math.MinInt64
)

// Parse reads a decimal string such as "6.00" or "0.01".
func Parse(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return FromDecimal(d)
}

// MustParse is Parse for literals known to be valid. It panics otherwise.
func MustParse(s string) Amount {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// FromDecimal converts a decimal into minor units, rejecting sub-cent values.
func FromDecimal(d decimal.Decimal) (Amount, error) {
	shifted := d.Shift(Scale)
	if !shifted.Equal(shifted.Truncate(0)) {
		return Zero, fmt.Errorf("%s: %w", d.String(), ErrPrecision)
	}
	if shifted.GreaterThan(maxAmount) || shifted.LessThan(minAmount) {
		return Zero, fmt.Errorf("%s: %w", d.String(), ErrOverflow)
	}
	return Amount(shifted.IntPart()), nil
}

// Decimal returns the amount in major units.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -Scale)
}

func (a Amount) String() string {
	return a.Decimal().StringFixed(Scale)
}

// Float64 is only meant for metrics observations.
func (a Amount) Float64() float64 {
	f, _ := a.Decimal().Float64()
	return f
}

// Add returns a+b, or ErrOverflow when the sum does not fit in an Amount.
func (a Amount) Add(b Amount) (Amount, error) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return Zero, fmt.Errorf("%s + %s: %w", a, b, ErrOverflow)
	}
	return sum, nil
}

func (a Amount) IsPositive() bool {
	return a > 0
}
