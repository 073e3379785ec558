package multisig

import (
	"github.com/mvault/mvault/errors"
)

var (
	// ErrDuplicateOwner is returned when an owner set lists the same
	// address more than once.
	ErrDuplicateOwner = errors.Register(1030, "duplicate owner")

	// ErrEmptyOwnerSet is returned when a wallet would have no owners.
	ErrEmptyOwnerSet = errors.Register(1031, "empty owner set")

	// ErrInvalidThreshold is returned when a threshold is zero or larger
	// than the owner set.
	ErrInvalidThreshold = errors.Register(1032, "invalid threshold")

	// ErrWalletMismatch is returned when a proposal does not belong to the
	// wallet it is used with.
	ErrWalletMismatch = errors.Register(1033, "wallet mismatch")

	// ErrAlreadyExecuted is returned when acting on a proposal that was
	// already executed.
	ErrAlreadyExecuted = errors.Register(1034, "already executed")

	// ErrStaleMandate is returned when a proposal was created against an
	// owner set that has changed since.
	ErrStaleMandate = errors.Register(1035, "stale mandate")

	// ErrInsufficientApprovals is returned when executing a proposal that
	// has not reached the wallet threshold.
	ErrInsufficientApprovals = errors.Register(1036, "insufficient approvals")
)
