package cash

import (
	"github.com/mvault/mvault"
	"github.com/mvault/mvault/coin"
	"github.com/mvault/mvault/errors"
)

// Controller is the functionality offered to other extensions. It hides
// the storage details behind balance queries and transfers.
type Controller interface {
	// Balance returns the coins held by the given address.
	Balance(mvault.ReadOnlyKVStore, mvault.Address) (coin.Coins, error)
	// MoveCoins transfers the amount from the source to the destination
	// address. It fails without writing anything when the source does not
	// hold enough.
	MoveCoins(db mvault.KVStore, src, dest mvault.Address, amount coin.Coin) error
	// IssueCoins creates new coins out of thin air and credits them to
	// the given address.
	IssueCoins(db mvault.KVStore, dest mvault.Address, amount coin.Coin) error
}

// BaseController implements Controller on top of the cash bucket.
type BaseController struct {
	bucket Bucket
}

var _ Controller = BaseController{}

// NewController returns a controller using the given bucket.
func NewController(bucket Bucket) BaseController {
	return BaseController{bucket: bucket}
}

// Balance returns the coins held by the given address. A missing account
// counts as an empty balance.
func (c BaseController) Balance(db mvault.ReadOnlyKVStore, addr mvault.Address) (coin.Coins, error) {
	set, err := c.bucket.Balance(db, addr)
	if err != nil {
		return nil, err
	}
	return set.Coins, nil
}

// MoveCoins transfers the amount between the two addresses. Either both
// the debit and the credit are written, or neither is.
func (c BaseController) MoveCoins(db mvault.KVStore, src, dest mvault.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "cannot move %s", amount)
	}
	if err := amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}

	sender, err := c.bucket.Balance(db, src)
	if err != nil {
		return err
	}
	if !sender.Coins.Contains(amount) {
		return errors.Wrapf(ErrInsufficientFunds, "%s has only %s", src, sender.Coins)
	}
	sender.Coins, err = sender.Coins.Add(amount.Negative())
	if err != nil {
		return err
	}
	if err := c.bucket.Save(db, src, sender); err != nil {
		return errors.Wrap(err, "cannot update source")
	}

	// load the recipient only after the debit is written, so that a
	// transfer to oneself balances out
	recipient, err := c.bucket.Balance(db, dest)
	if err != nil {
		return err
	}
	recipient.Coins, err = recipient.Coins.Add(amount)
	if err != nil {
		return err
	}
	if err := c.bucket.Save(db, dest, recipient); err != nil {
		return errors.Wrap(err, "cannot update destination")
	}
	return nil
}

// IssueCoins attempts to add the given amount of coins to the destination
// address.
func (c BaseController) IssueCoins(db mvault.KVStore, dest mvault.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "cannot issue %s", amount)
	}
	if err := amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}

	recipient, err := c.bucket.Balance(db, dest)
	if err != nil {
		return err
	}
	recipient.Coins, err = recipient.Coins.Add(amount)
	if err != nil {
		return err
	}
	return c.bucket.Save(db, dest, recipient)
}
