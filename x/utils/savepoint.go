package utils

import (
	"github.com/mvault/mvault"
	"github.com/mvault/mvault/errors"
)

// Savepoint will isolate all data inside of the call, and commit or
// rollback the cache wrap atomically depending on the success of the
// enclosed handler. A failed operation leaves no partial writes behind.
type Savepoint struct {
	onCheck   bool
	onDeliver bool
}

var _ mvault.Decorator = Savepoint{}

// NewSavepoint creates a Savepoint decorator. Without calling OnCheck or
// OnDeliver it is a no-op.
func NewSavepoint() Savepoint {
	return Savepoint{}
}

// OnCheck returns a savepoint that is active on Check.
func (s Savepoint) OnCheck() Savepoint {
	return Savepoint{onCheck: true, onDeliver: s.onDeliver}
}

// OnDeliver returns a savepoint that is active on Deliver.
func (s Savepoint) OnDeliver() Savepoint {
	return Savepoint{onCheck: s.onCheck, onDeliver: true}
}

// Check passes the call through a cache wrap that is only written back on
// success.
func (s Savepoint) Check(ctx mvault.Context, db mvault.KVStore, tx mvault.Tx, next mvault.Checker) (*mvault.CheckResult, error) {
	if !s.onCheck {
		return next.Check(ctx, db, tx)
	}
	cache, err := cacheWrap(db)
	if err != nil {
		return nil, err
	}
	res, err := next.Check(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, err
	}
	return res, nil
}

// Deliver passes the call through a cache wrap that is only written back
// on success.
func (s Savepoint) Deliver(ctx mvault.Context, db mvault.KVStore, tx mvault.Tx, next mvault.Deliverer) (*mvault.DeliverResult, error) {
	if !s.onDeliver {
		return next.Deliver(ctx, db, tx)
	}
	cache, err := cacheWrap(db)
	if err != nil {
		return nil, err
	}
	res, err := next.Deliver(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, err
	}
	return res, nil
}

func cacheWrap(db mvault.KVStore) (mvault.KVCacheWrap, error) {
	cached, ok := db.(mvault.CacheableKVStore)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "%T cannot be cache wrapped", db)
	}
	return cached.CacheWrap(), nil
}
