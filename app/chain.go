package app

import (
	"github.com/mvault/mvault"
)

// Decorators holds an ordered list of decorators waiting for the final
// handler.
type Decorators struct {
	chain []mvault.Decorator
}

// ChainDecorators takes a list of decorators and prepares them to wrap a
// handler. The first decorator is the outermost layer. Nil entries are
// allowed and skipped, which makes optional decorators easy to express.
func ChainDecorators(chain ...mvault.Decorator) Decorators {
	return Decorators{chain: chain}
}

// Chain appends more decorators to the stack.
func (d Decorators) Chain(chain ...mvault.Decorator) Decorators {
	return Decorators{chain: append(d.chain, chain...)}
}

// WithHandler places the handler at the core of the decorator stack and
// returns the complete stack as one handler.
func (d Decorators) WithHandler(h mvault.Handler) mvault.Handler {
	for i := len(d.chain) - 1; i >= 0; i-- {
		if d.chain[i] == nil {
			continue
		}
		h = decoratedHandler{d: d.chain[i], next: h}
	}
	return h
}

// decoratedHandler bundles one decorator with the handler it wraps.
type decoratedHandler struct {
	d    mvault.Decorator
	next mvault.Handler
}

var _ mvault.Handler = decoratedHandler{}

func (h decoratedHandler) Check(ctx mvault.Context, db mvault.KVStore, tx mvault.Tx) (*mvault.CheckResult, error) {
	return h.d.Check(ctx, db, tx, h.next)
}

func (h decoratedHandler) Deliver(ctx mvault.Context, db mvault.KVStore, tx mvault.Tx) (*mvault.DeliverResult, error) {
	return h.d.Deliver(ctx, db, tx, h.next)
}
