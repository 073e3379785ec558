package x

import (
	"context"
	"testing"

	"github.com/mvault/mvault"
	"github.com/mvault/mvault/mvaulttest"
	"github.com/stretchr/testify/assert"
)

func TestMainSigner(t *testing.T) {
	a := mvaulttest.NewCondition()
	b := mvaulttest.NewCondition()
	ctx := context.Background()

	assert.Nil(t, MainSigner(ctx, &mvaulttest.Auth{}))
	assert.Equal(t, a, MainSigner(ctx, &mvaulttest.Auth{Signer: a}))
	assert.Equal(t, a, MainSigner(ctx, &mvaulttest.Auth{Signers: []mvault.Condition{a, b}}))
}

func TestChainAuth(t *testing.T) {
	a := mvaulttest.NewCondition()
	b := mvaulttest.NewCondition()
	c := mvaulttest.NewCondition()
	ctx := context.Background()

	auth := ChainAuth(
		&mvaulttest.Auth{Signer: a},
		&mvaulttest.Auth{Signer: b},
	)

	assert.True(t, auth.HasAddress(ctx, a.Address()))
	assert.True(t, auth.HasAddress(ctx, b.Address()))
	assert.False(t, auth.HasAddress(ctx, c.Address()))
	assert.Len(t, auth.GetConditions(ctx), 2)
}

func TestHasNAddresses(t *testing.T) {
	a := mvaulttest.NewCondition()
	b := mvaulttest.NewCondition()
	c := mvaulttest.NewCondition()
	ctx := context.Background()
	auth := &mvaulttest.Auth{Signers: []mvault.Condition{a, b}}

	addrs := []mvault.Address{a.Address(), b.Address(), c.Address()}
	assert.True(t, HasNAddresses(ctx, auth, addrs, 0))
	assert.True(t, HasNAddresses(ctx, auth, addrs, 2))
	assert.False(t, HasNAddresses(ctx, auth, addrs, 3))

	assert.True(t, HasAllAddresses(ctx, auth, addrs[:2]))
	assert.False(t, HasAllAddresses(ctx, auth, addrs))
}
