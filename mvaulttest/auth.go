package mvaulttest

import (
	"context"

	"github.com/mvault/mvault"
	"github.com/mvault/mvault/errors"
)

// Auth is a mock implementing x.Authenticator that authenticates a fixed
// set of conditions, regardless of the context.
type Auth struct {
	// Signer is the main signer. It is included in the Signers list, there
	// is no need to declare it twice.
	Signer mvault.Condition

	// Signers is the full list of authenticated conditions.
	Signers []mvault.Condition
}

func (a *Auth) signers() []mvault.Condition {
	if a.Signer != nil {
		return append([]mvault.Condition{a.Signer}, a.Signers...)
	}
	return a.Signers
}

func (a *Auth) GetConditions(mvault.Context) []mvault.Condition {
	return a.signers()
}

func (a *Auth) HasAddress(_ mvault.Context, addr mvault.Address) bool {
	for _, s := range a.signers() {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}

// CtxAuth is an x.Authenticator that reads conditions from the context.
// Conditions must have been attached with SetConditions using the same
// key.
type CtxAuth struct {
	Key interface{}
}

// SetConditions returns a context with the given conditions attached.
func (a *CtxAuth) SetConditions(ctx mvault.Context, perms ...mvault.Condition) mvault.Context {
	return context.WithValue(ctx, a.Key, perms)
}

func (a *CtxAuth) GetConditions(ctx mvault.Context) []mvault.Condition {
	val := ctx.Value(a.Key)
	if val == nil {
		return nil
	}
	perms, ok := val.([]mvault.Condition)
	if !ok {
		panic(errors.Wrapf(errors.ErrType, "%T", val))
	}
	return perms
}

func (a *CtxAuth) HasAddress(ctx mvault.Context, addr mvault.Address) bool {
	for _, perm := range a.GetConditions(ctx) {
		if addr.Equals(perm.Address()) {
			return true
		}
	}
	return false
}
