/*
Package app assembles handlers and decorators into one dispatch stack.
The Router maps message paths to their handlers, ChainDecorators wraps
the router with the cross-cutting decorators.
*/
package app
