package coin

import (
	"testing"

	"github.com/mvault/mvault/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoinsAddKeepsOrder(t *testing.T) {
	var cs Coins

	cs, err := cs.Add(NewCoin(1, 0, "IOV"))
	require.NoError(t, err)
	cs, err = cs.Add(NewCoin(2, 0, "ABC"))
	require.NoError(t, err)
	cs, err = cs.Add(NewCoin(3, 0, "ZZZ"))
	require.NoError(t, err)

	require.Len(t, cs, 3)
	assert.Equal(t, "ABC", cs[0].Ticker)
	assert.Equal(t, "IOV", cs[1].Ticker)
	assert.Equal(t, "ZZZ", cs[2].Ticker)
	require.NoError(t, cs.Validate())
}

func TestCoinsAddCombinesAndDropsZero(t *testing.T) {
	cs, err := NewCoins(NewCoinp(5, 0, "IOV"))
	require.NoError(t, err)

	cs, err = cs.Add(NewCoin(2, 0, "IOV"))
	require.NoError(t, err)
	require.Len(t, cs, 1)
	assert.True(t, NewCoin(7, 0, "IOV").Equals(*cs[0]))

	// adding the negation removes the entry entirely
	cs, err = cs.Add(NewCoin(-7, 0, "IOV"))
	require.NoError(t, err)
	assert.Len(t, cs, 0)
}

func TestCoinsAddDoesNotModifyReceiver(t *testing.T) {
	cs, err := NewCoins(NewCoinp(1, 0, "IOV"))
	require.NoError(t, err)

	_, err = cs.Add(NewCoin(10, 0, "IOV"))
	require.NoError(t, err)
	assert.True(t, NewCoin(1, 0, "IOV").Equals(*cs[0]))
}

func TestCoinsContains(t *testing.T) {
	cs, err := NewCoins(NewCoinp(5, 0, "IOV"), NewCoinp(1, 0, "ETH"))
	require.NoError(t, err)

	assert.True(t, cs.Contains(NewCoin(5, 0, "IOV")))
	assert.True(t, cs.Contains(NewCoin(4, FracUnit-1, "IOV")))
	assert.False(t, cs.Contains(NewCoin(5, 1, "IOV")))
	assert.False(t, cs.Contains(NewCoin(1, 0, "BTC")))
	// a zero demand is always satisfied
	assert.True(t, cs.Contains(NewCoin(0, 0, "BTC")))
}

func TestCoinsCombine(t *testing.T) {
	a, err := NewCoins(NewCoinp(1, 0, "IOV"))
	require.NoError(t, err)
	b, err := NewCoins(NewCoinp(2, 0, "IOV"), NewCoinp(3, 0, "ETH"))
	require.NoError(t, err)

	sum, err := a.Combine(b)
	require.NoError(t, err)
	want, err := NewCoins(NewCoinp(3, 0, "IOV"), NewCoinp(3, 0, "ETH"))
	require.NoError(t, err)
	assert.True(t, want.Equals(sum))
}

func TestCoinsValidate(t *testing.T) {
	cases := map[string]struct {
		coins   Coins
		wantErr *errors.Error
	}{
		"empty is valid": {coins: nil},
		"sorted":         {coins: Coins{NewCoinp(1, 0, "ETH"), NewCoinp(1, 0, "IOV")}},
		"out of order": {
			coins:   Coins{NewCoinp(1, 0, "IOV"), NewCoinp(1, 0, "ETH")},
			wantErr: errors.ErrCurrency,
		},
		"duplicate ticker": {
			coins:   Coins{NewCoinp(1, 0, "IOV"), NewCoinp(2, 0, "IOV")},
			wantErr: errors.ErrCurrency,
		},
		"zero value": {
			coins:   Coins{NewCoinp(0, 0, "IOV")},
			wantErr: errors.ErrAmount,
		},
		"invalid coin": {
			coins:   Coins{NewCoinp(1, 0, "x")},
			wantErr: errors.ErrCurrency,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := tc.coins.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
			}
		})
	}
}
