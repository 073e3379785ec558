package coin

import (
	"strings"

	"github.com/mvault/mvault/errors"
)

// Coins is a set of coins, one per ticker, sorted by ticker and holding no
// zero values. Use Add to maintain those rules while folding values in.
type Coins []*Coin

// NewCoins creates a canonical set from an unordered list of coins. It
// fails if the resulting set would be invalid.
func NewCoins(cs ...*Coin) (Coins, error) {
	var res Coins
	for _, c := range cs {
		var err error
		if res, err = res.Add(*c); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Add folds the given coin into the set, combining it with any existing
// value of the same ticker. The receiver is not modified. Zero results are
// dropped from the set.
func (cs Coins) Add(c Coin) (Coins, error) {
	if c.IsZero() {
		return cs.Clone(), nil
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	res := make(Coins, 0, len(cs)+1)
	placed := false
	for _, have := range cs {
		switch {
		case have.Ticker == c.Ticker:
			sum, err := have.Add(c)
			if err != nil {
				return nil, err
			}
			if !sum.IsZero() {
				res = append(res, &sum)
			}
			placed = true
		case !placed && have.Ticker > c.Ticker:
			res = append(res, c.Clone(), have.Clone())
			placed = true
		default:
			res = append(res, have.Clone())
		}
	}
	if !placed {
		res = append(res, c.Clone())
	}
	return res, nil
}

// Combine adds all coins of the other set into a copy of this one.
func (cs Coins) Combine(o Coins) (Coins, error) {
	res := cs.Clone()
	for _, c := range o {
		var err error
		if res, err = res.Add(*c); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Contains returns true if there is at least that much coin of the given
// ticker in the set.
func (cs Coins) Contains(c Coin) bool {
	for _, have := range cs {
		if have.Ticker == c.Ticker {
			return have.IsGTE(c)
		}
		// sorted, no need to look further
		if have.Ticker > c.Ticker {
			break
		}
	}
	// only a zero demand is covered by an absent ticker
	return !c.IsPositive()
}

// IsPositive returns true if every coin in the set is positive and the set
// holds at least one coin.
func (cs Coins) IsPositive() bool {
	if len(cs) == 0 {
		return false
	}
	for _, c := range cs {
		if !c.IsPositive() {
			return false
		}
	}
	return true
}

// IsNonNegative returns true if no coin in the set is negative.
func (cs Coins) IsNonNegative() bool {
	for _, c := range cs {
		if !c.IsNonNegative() {
			return false
		}
	}
	return true
}

// Equals returns true if both sets hold the same values.
func (cs Coins) Equals(o Coins) bool {
	if len(cs) != len(o) {
		return false
	}
	for i := range cs {
		if !cs[i].Equals(*o[i]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the set.
func (cs Coins) Clone() Coins {
	if cs == nil {
		return nil
	}
	res := make(Coins, len(cs))
	for i, c := range cs {
		res[i] = c.Clone()
	}
	return res
}

// Validate requires that all coins are valid, non-zero and sorted by
// ticker without duplicates.
func (cs Coins) Validate() error {
	last := ""
	for _, c := range cs {
		if err := c.Validate(); err != nil {
			return err
		}
		if c.IsZero() {
			return errors.Wrap(errors.ErrAmount, "zero coin in set")
		}
		if c.Ticker <= last {
			return errors.Wrapf(errors.ErrCurrency, "tickers out of order: %s", c.Ticker)
		}
		last = c.Ticker
	}
	return nil
}

func (cs Coins) String() string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
