package x

import (
	"github.com/mvault/mvault"
)

// Authenticator reports who authorized the current execution context.
// Implementations read conditions that were attached to the context by
// the transaction surface or by other extensions.
type Authenticator interface {
	// GetConditions returns all conditions that authorized this context.
	GetConditions(mvault.Context) []mvault.Condition
	// HasAddress returns true if the given address authorized this context.
	HasAddress(mvault.Context, mvault.Address) bool
}

// MultiAuth chains together many authenticators into one.
type MultiAuth struct {
	impls []Authenticator
}

var _ Authenticator = MultiAuth{}

// ChainAuth groups a series of authenticators to be used as one.
func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth{impls: impls}
}

// GetConditions combines the conditions of all chained authenticators.
func (m MultiAuth) GetConditions(ctx mvault.Context) []mvault.Condition {
	var res []mvault.Condition
	for _, impl := range m.impls {
		// TODO: remove duplicates
		res = append(res, impl.GetConditions(ctx)...)
	}
	return res
}

// HasAddress returns true if any chained authenticator approves the address.
func (m MultiAuth) HasAddress(ctx mvault.Context, addr mvault.Address) bool {
	for _, impl := range m.impls {
		if impl.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// MainSigner returns the first condition attached to the context, or nil
// if there is none. By convention this is the party that initiated the
// transaction.
func MainSigner(ctx mvault.Context, auth Authenticator) mvault.Condition {
	signers := auth.GetConditions(ctx)
	if len(signers) == 0 {
		return nil
	}
	return signers[0]
}

// GetAddresses returns the addresses for all conditions that authorized
// the context.
func GetAddresses(ctx mvault.Context, auth Authenticator) []mvault.Address {
	perms := auth.GetConditions(ctx)
	addrs := make([]mvault.Address, len(perms))
	for i, p := range perms {
		addrs[i] = p.Address()
	}
	return addrs
}

// HasAllAddresses returns true if all the given addresses authorized the
// context.
func HasAllAddresses(ctx mvault.Context, auth Authenticator, required []mvault.Address) bool {
	for _, addr := range required {
		if !auth.HasAddress(ctx, addr) {
			return false
		}
	}
	return true
}

// HasNAddresses returns true if at least n of the given addresses
// authorized the context.
func HasNAddresses(ctx mvault.Context, auth Authenticator, addrs []mvault.Address, n int) bool {
	cnt := 0
	for _, addr := range addrs {
		if auth.HasAddress(ctx, addr) {
			cnt++
			if cnt >= n {
				return true
			}
		}
	}
	return n <= 0
}
