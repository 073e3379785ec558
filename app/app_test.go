package app

import (
	"context"
	"encoding/binary"
	"testing"

	"github.com/mvault/mvault"
	"github.com/mvault/mvault/coin"
	"github.com/mvault/mvault/errors"
	"github.com/mvault/mvault/mvaulttest"
	"github.com/mvault/mvault/store"
	"github.com/mvault/mvault/x/cash"
	"github.com/mvault/mvault/x/multisig"
	"github.com/mvault/mvault/x/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWalletLifecycle drives all four operations through the full
// decorator stack: create a shared wallet, propose a transfer, collect
// the approvals and execute it.
func TestWalletLifecycle(t *testing.T) {
	db := store.MemStore()
	auth := &mvaulttest.CtxAuth{Key: "auth"}
	ctrl := cash.NewController(cash.NewBucket())

	router := NewRouter()
	multisig.RegisterRoutes(router, auth, ctrl)

	stack := ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		utils.NewSavepoint().OnDeliver(),
	).WithHandler(router)

	alice := mvaulttest.NewCondition()
	bob := mvaulttest.NewCondition()
	carol := mvaulttest.NewCondition()
	dest := mvaulttest.NewCondition().Address()

	signedBy := func(signers ...mvault.Condition) mvault.Context {
		return auth.SetConditions(context.Background(), signers...)
	}

	// create a 2 of 3 wallet
	res, err := stack.Deliver(signedBy(alice), db, &mvaulttest.Tx{Msg: &multisig.CreateWalletMsg{
		Metadata:  &mvault.Metadata{Schema: 1},
		Owners:    []mvault.Address{alice.Address(), bob.Address(), carol.Address()},
		Threshold: 2,
	}})
	require.NoError(t, err)
	walletID := res.Data
	require.Len(t, walletID, 8)

	// fund the wallet
	source := multisig.WalletCondition(walletID).Address()
	require.NoError(t, ctrl.IssueCoins(db, source, coin.NewCoin(250, 0, "IOV")))

	// alice proposes a transfer, which is her approval as well
	res, err = stack.Deliver(signedBy(alice), db, &mvaulttest.Tx{Msg: &multisig.ProposeMsg{
		Metadata:    &mvault.Metadata{Schema: 1},
		WalletID:    walletID,
		Destination: dest,
		Amount:      coin.NewCoin(100, 0, "IOV"),
	}})
	require.NoError(t, err)
	require.Len(t, res.Data, 16)
	proposalID := binary.BigEndian.Uint64(res.Data[8:])

	// executing with a single approval fails and changes nothing
	execTx := &mvaulttest.Tx{Msg: &multisig.ExecuteMsg{
		Metadata:   &mvault.Metadata{Schema: 1},
		WalletID:   walletID,
		ProposalID: proposalID,
	}}
	_, err = stack.Deliver(signedBy(), db, execTx)
	assert.True(t, multisig.ErrInsufficientApprovals.Is(err))
	coins, err := ctrl.Balance(db, dest)
	require.NoError(t, err)
	assert.Len(t, coins, 0)

	// bob approves, reaching the threshold
	_, err = stack.Deliver(signedBy(bob), db, &mvaulttest.Tx{Msg: &multisig.ApproveMsg{
		Metadata:   &mvault.Metadata{Schema: 1},
		WalletID:   walletID,
		ProposalID: proposalID,
	}})
	require.NoError(t, err)

	// anyone can execute now
	_, err = stack.Deliver(signedBy(), db, execTx)
	require.NoError(t, err)

	coins, err = ctrl.Balance(db, dest)
	require.NoError(t, err)
	require.Len(t, coins, 1)
	assert.True(t, coin.NewCoin(100, 0, "IOV").Equals(*coins[0]))
	coins, err = ctrl.Balance(db, source)
	require.NoError(t, err)
	require.Len(t, coins, 1)
	assert.True(t, coin.NewCoin(150, 0, "IOV").Equals(*coins[0]))

	// replaying the execution fails and moves nothing
	_, err = stack.Deliver(signedBy(), db, execTx)
	assert.True(t, multisig.ErrAlreadyExecuted.Is(err))
	coins, err = ctrl.Balance(db, dest)
	require.NoError(t, err)
	require.Len(t, coins, 1)
	assert.True(t, coin.NewCoin(100, 0, "IOV").Equals(*coins[0]))
}

// TestTwoOfTwoNeverReachesQuorumAlone mirrors a wallet where a single
// owner cannot move funds on their own.
func TestTwoOfTwoNeverReachesQuorumAlone(t *testing.T) {
	db := store.MemStore()
	auth := &mvaulttest.CtxAuth{Key: "auth"}
	ctrl := cash.NewController(cash.NewBucket())

	router := NewRouter()
	multisig.RegisterRoutes(router, auth, ctrl)
	stack := ChainDecorators(
		utils.NewRecovery(),
		utils.NewSavepoint().OnDeliver(),
	).WithHandler(router)

	alice := mvaulttest.NewCondition()
	bob := mvaulttest.NewCondition()
	dest := mvaulttest.NewCondition().Address()

	signedBy := func(signers ...mvault.Condition) mvault.Context {
		return auth.SetConditions(context.Background(), signers...)
	}

	res, err := stack.Deliver(signedBy(alice), db, &mvaulttest.Tx{Msg: &multisig.CreateWalletMsg{
		Metadata:  &mvault.Metadata{Schema: 1},
		Owners:    []mvault.Address{alice.Address(), bob.Address()},
		Threshold: 2,
	}})
	require.NoError(t, err)
	walletID := res.Data

	source := multisig.WalletCondition(walletID).Address()
	require.NoError(t, ctrl.IssueCoins(db, source, coin.NewCoin(100, 0, "IOV")))

	res, err = stack.Deliver(signedBy(alice), db, &mvaulttest.Tx{Msg: &multisig.ProposeMsg{
		Metadata:    &mvault.Metadata{Schema: 1},
		WalletID:    walletID,
		Destination: dest,
		Amount:      coin.NewCoin(100, 0, "IOV"),
	}})
	require.NoError(t, err)
	proposalID := binary.BigEndian.Uint64(res.Data[8:])

	_, err = stack.Deliver(signedBy(alice), db, &mvaulttest.Tx{Msg: &multisig.ExecuteMsg{
		Metadata:   &mvault.Metadata{Schema: 1},
		WalletID:   walletID,
		ProposalID: proposalID,
	}})
	assert.True(t, multisig.ErrInsufficientApprovals.Is(err))

	// the wallet balance is untouched
	coins, err := ctrl.Balance(db, source)
	require.NoError(t, err)
	require.Len(t, coins, 1)
	assert.True(t, coin.NewCoin(100, 0, "IOV").Equals(*coins[0]))
}

// TestStackRecoversFromBadRoute makes sure an unroutable transaction is a
// clean error, not a crash.
func TestStackRecoversFromBadRoute(t *testing.T) {
	db := store.MemStore()
	router := NewRouter()
	stack := ChainDecorators(utils.NewRecovery()).WithHandler(router)

	_, err := stack.Deliver(context.Background(), db, &mvaulttest.Tx{Msg: &multisig.ExecuteMsg{
		Metadata: &mvault.Metadata{Schema: 1},
		WalletID: []byte{0, 0, 0, 0, 0, 0, 0, 1},
	}})
	assert.True(t, errors.ErrNotFound.Is(err))
}
