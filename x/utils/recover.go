package utils

import (
	"github.com/mvault/mvault"
	"github.com/mvault/mvault/errors"
)

// Recovery turns a panic inside the handler stack into a normal error
// return, so one broken operation cannot take down the host.
type Recovery struct{}

var _ mvault.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator.
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into errors.
func (r Recovery) Check(ctx mvault.Context, db mvault.KVStore, tx mvault.Tx, next mvault.Checker) (res *mvault.CheckResult, err error) {
	defer errors.Recover(&err)
	return next.Check(ctx, db, tx)
}

// Deliver turns panics into errors.
func (r Recovery) Deliver(ctx mvault.Context, db mvault.KVStore, tx mvault.Tx, next mvault.Deliverer) (res *mvault.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, db, tx)
}
