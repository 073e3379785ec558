package app

import (
	"fmt"
	"regexp"

	"github.com/mvault/mvault"
	"github.com/mvault/mvault/errors"
)

// isPath ensures path is limited to lowercase letters, numbers, _ and /
var isPath = regexp.MustCompile(`^[a-z0-9_/]{4,40}$`).MatchString

// Router maintains a handler per message path and dispatches incoming
// transactions by the path of the message they carry.
type Router struct {
	routes map[string]mvault.Handler
}

var (
	_ mvault.Registry = (*Router)(nil)
	_ mvault.Handler  = (*Router)(nil)
)

// NewRouter initializes a router with no routes.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]mvault.Handler),
	}
}

// Handle implements the Registry interface. It panics on a malformed path
// or a duplicate registration, both are programmer errors during setup.
func (r *Router) Handle(m mvault.Msg, h mvault.Handler) {
	path := m.Path()
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %q", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %q", path))
	}
	r.routes[path] = h
}

// Check dispatches to the handler registered for the message path.
func (r *Router) Check(ctx mvault.Context, db mvault.KVStore, tx mvault.Tx) (*mvault.CheckResult, error) {
	h, err := r.handler(tx)
	if err != nil {
		return nil, err
	}
	return h.Check(ctx, db, tx)
}

// Deliver dispatches to the handler registered for the message path.
func (r *Router) Deliver(ctx mvault.Context, db mvault.KVStore, tx mvault.Tx) (*mvault.DeliverResult, error) {
	h, err := r.handler(tx)
	if err != nil {
		return nil, err
	}
	return h.Deliver(ctx, db, tx)
}

func (r *Router) handler(tx mvault.Tx) (mvault.Handler, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load message")
	}
	if msg == nil {
		return nil, errors.Wrap(errors.ErrInput, "transaction carries no message")
	}
	h, ok := r.routes[msg.Path()]
	if !ok {
		return nil, errors.Wrapf(errors.ErrNotFound, "no handler for %q", msg.Path())
	}
	return h, nil
}
