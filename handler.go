package mvault

// Handler is a core engine that can process a few specific messages.
// This could represent "create a wallet", or "execute a proposal".
type Handler interface {
	Checker
	Deliverer
}

// Checker is a subset of Handler to verify the validity of a transaction.
// It is its own interface to allow better type controls in the next
// arguments in Decorator.
type Checker interface {
	Check(ctx Context, store KVStore, tx Tx) (*CheckResult, error)
}

// Deliverer is a subset of Handler to execute a transaction.
// It is its own interface to allow better type controls in the next
// arguments in Decorator.
type Deliverer interface {
	Deliver(ctx Context, store KVStore, tx Tx) (*DeliverResult, error)
}

// Decorator wraps a Handler to provide common functionality like
// authentication, logging, or savepoints, to many Handlers.
type Decorator interface {
	Check(ctx Context, store KVStore, tx Tx, next Checker) (*CheckResult, error)
	Deliver(ctx Context, store KVStore, tx Tx, next Deliverer) (*DeliverResult, error)
}

// Registry is an interface to register your handler, the setup side of a
// Router.
type Registry interface {
	// Handle assigns the given handler to handle processing of every
	// message of the provided type.
	Handle(Msg, Handler)
}

// CheckResult captures any non-error check result to make sure people use
// error for failures.
type CheckResult struct {
	// Data is a machine-parseable return value, like id of created entity.
	Data []byte

	// Log is human-readable informational string.
	Log string

	// GasAllocated is the maximum units of work we allow this tx to
	// perform.
	GasAllocated int64
}

// DeliverResult captures any non-error execution result to make sure
// people use error for failures.
type DeliverResult struct {
	// Data is a machine-parseable return value, like id of created entity.
	Data []byte

	// Log is human-readable informational string.
	Log string
}
