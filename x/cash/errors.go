package cash

import (
	"github.com/mvault/mvault/errors"
)

var (
	// ErrInsufficientFunds is returned when the source account does not
	// hold enough coins to cover a transfer.
	ErrInsufficientFunds = errors.Register(1040, "insufficient funds")
)
