/*
Package errors implements custom error interfaces for mvault.

The package is built around registered root errors. Every error returned
during runtime wraps one of the roots declared here (or registered by an
extension), so that callers can always test for a specific failure kind
with the root's Is method, while still getting a human readable
description of the full context.
*/
package errors
