package coin

import (
	"fmt"
	"regexp"

	"github.com/mvault/mvault/errors"
)

// IsCC is the RegExp to ensure valid currency codes
var IsCC = regexp.MustCompile(`^[A-Z]{3,4}$`).MatchString

const (
	// MaxInt is the largest whole value we accept
	MaxInt int64 = 999999999999999 // 10^15-1
	// MinInt is the lowest whole value we accept
	MinInt = -MaxInt

	// FracUnit is the smallest numbers we divide by
	FracUnit int64 = 1000000000 // fractional units = 10^9
	// MaxFrac is the highest possible fractional value
	MaxFrac = FracUnit - 1
	// MinFrac is the lowest possible fractional value
	MinFrac = -MaxFrac
)

// Coin is an amount of a single currency. Whole and Fractional carry the
// value, Ticker names the currency. All arithmetic is checked: results
// that leave the representable range fail with ErrOverflow or
// ErrUnderflow instead of wrapping around.
type Coin struct {
	Ticker     string
	Whole      int64
	Fractional int64
}

// NewCoin creates a new coin object
func NewCoin(whole int64, fractional int64, ticker string) Coin {
	return Coin{
		Ticker:     ticker,
		Whole:      whole,
		Fractional: fractional,
	}
}

// NewCoinp returns a pointer to a new coin.
func NewCoinp(whole, fractional int64, ticker string) *Coin {
	c := NewCoin(whole, fractional, ticker)
	return &c
}

// Add combines two coins. Returns an error if they are of different
// currencies, or if the combination would cause an overflow or underflow.
func (c Coin) Add(o Coin) (Coin, error) {
	// If any of the coins represents no value and does not have a ticker
	// set then it has no influence on the addition result.
	if c.Ticker == "" && c.IsZero() {
		return o, nil
	}
	if o.Ticker == "" && o.IsZero() {
		return c, nil
	}

	if !c.SameType(o) {
		err := errors.Wrapf(errors.ErrCurrency, "adding %s to %s", c.Ticker, o.Ticker)
		return Coin{}, err
	}

	c.Whole += o.Whole
	c.Fractional += o.Fractional
	return c.normalize()
}

// Subtract the given amount.
func (c Coin) Subtract(amount Coin) (Coin, error) {
	return c.Add(amount.Negative())
}

// Negative returns the opposite coins value
//   c.Add(c.Negative()).IsZero() == true
func (c Coin) Negative() Coin {
	return Coin{
		Ticker:     c.Ticker,
		Whole:      -1 * c.Whole,
		Fractional: -1 * c.Fractional,
	}
}

// Multiply returns the result of a coin value multiplication. This method
// can fail if the result would overflow the maximum coin value.
func (c Coin) Multiply(times int64) (Coin, error) {
	if times == 0 || (c.Whole == 0 && c.Fractional == 0) {
		return Coin{Ticker: c.Ticker}, nil
	}

	whole, err := mul64(c.Whole, times)
	if err != nil {
		return Coin{}, err
	}
	frac, err := mul64(c.Fractional, times)
	if err != nil {
		return Coin{}, err
	}

	res := Coin{
		Ticker:     c.Ticker,
		Whole:      whole,
		Fractional: frac,
	}
	return res.normalize()
}

// mul64 multiplies two int64 numbers. If the result overflows the int64
// size the ErrOverflow is returned.
func mul64(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	c := a * b
	if c/a != b {
		return c, errors.Wrapf(errors.ErrOverflow, "%d * %d", a, b)
	}
	return c, nil
}

// Compare will check values of two coins, without inspecting the currency
// code. It is up to the caller to determine if they want to check this.
// It also assumes they were already normalized.
//
// Returns 1 if c is larger, -1 if o is larger, 0 if equal
func (c Coin) Compare(o Coin) int {
	if c.Whole > o.Whole {
		return 1
	}
	if c.Whole < o.Whole {
		return -1
	}
	// same integer, compare fractional
	if c.Fractional > o.Fractional {
		return 1
	}
	if c.Fractional < o.Fractional {
		return -1
	}
	// actually the same...
	return 0
}

// Equals returns true if all fields are identical
func (c Coin) Equals(o Coin) bool {
	return c.Ticker == o.Ticker &&
		c.Whole == o.Whole &&
		c.Fractional == o.Fractional
}

// IsEmpty returns true on a nil pointer or zero amount
func IsEmpty(c *Coin) bool {
	return c == nil || c.IsZero()
}

// IsZero returns true if the amount is 0
func (c Coin) IsZero() bool {
	return c.Whole == 0 && c.Fractional == 0
}

// IsPositive returns true if the value is greater than 0
func (c Coin) IsPositive() bool {
	return c.Whole > 0 ||
		(c.Whole == 0 && c.Fractional > 0)
}

// IsNonNegative returns true if the value is 0 or higher
func (c Coin) IsNonNegative() bool {
	return c.Whole >= 0 && c.Fractional >= 0
}

// IsGTE returns true if c is the same type and at least as large as o.
// It assumes they were already normalized.
func (c Coin) IsGTE(o Coin) bool {
	if !c.SameType(o) || c.Whole < o.Whole {
		return false
	}
	if (c.Whole == o.Whole) &&
		(c.Fractional < o.Fractional) {
		return false
	}
	return true
}

// SameType returns true if they have the same currency
func (c Coin) SameType(o Coin) bool {
	return c.Ticker == o.Ticker
}

// Clone provides an independent copy of a coin pointer
func (c *Coin) Clone() *Coin {
	if c == nil {
		return nil
	}
	return &Coin{
		Ticker:     c.Ticker,
		Whole:      c.Whole,
		Fractional: c.Fractional,
	}
}

// Validate ensures that the coin is in the valid range and has a valid
// currency code. It accepts negative values, so you may want to make
// additional checks in your business logic.
func (c Coin) Validate() error {
	if !IsCC(c.Ticker) {
		return errors.Wrapf(errors.ErrCurrency, "invalid currency: %s", c.Ticker)
	}
	if c.Whole < MinInt || c.Whole > MaxInt {
		return errors.Wrap(errors.ErrAmount, "whole out of range")
	}
	if c.Fractional < MinFrac || c.Fractional > MaxFrac {
		return errors.Wrap(errors.ErrAmount, "fractional out of range")
	}
	// make sure the signs correspond
	if (c.Whole > 0 && c.Fractional < 0) ||
		(c.Whole < 0 && c.Fractional > 0) {
		return errors.Wrap(errors.ErrState, "mismatched sign")
	}
	return nil
}

// String provides a human readable representation of the coin
func (c Coin) String() string {
	return fmt.Sprintf("%d.%09d %s", c.Whole, abs(c.Fractional), c.Ticker)
}

func abs(a int64) int64 {
	if a < 0 {
		return -a
	}
	return a
}

// normalize will adjust the fractional parts to move as much as possible
// to the whole coins, and make sure the signs correspond. It returns
// ErrOverflow if the value is larger than the highest representable
// amount and ErrUnderflow if it is below the lowest.
func (c Coin) normalize() (Coin, error) {
	// keep fractional in range
	for c.Fractional < MinFrac {
		c.Whole--
		c.Fractional += FracUnit
	}
	for c.Fractional > MaxFrac {
		c.Whole++
		c.Fractional -= FracUnit
	}

	// make sure the signs correspond
	if c.Whole > 0 && c.Fractional < 0 {
		c.Whole--
		c.Fractional += FracUnit
	} else if c.Whole < 0 && c.Fractional > 0 {
		c.Whole++
		c.Fractional -= FracUnit
	}

	// return an error if we are out of range
	if c.Whole > MaxInt {
		return Coin{}, errors.Wrapf(errors.ErrOverflow, "%d whole units", c.Whole)
	}
	if c.Whole < MinInt {
		return Coin{}, errors.Wrapf(errors.ErrUnderflow, "%d whole units", c.Whole)
	}
	return c, nil
}
