/*
Package mvault defines the common interfaces that connect the threshold
multisignature engine with its collaborators.

A deployment is a stack of Decorators resolved into a Handler. Every
operation is a self-contained transaction: a Tx carrying one Msg enters
the stack, is routed to the Handler registered for the message path,
and either commits all of its writes or none of them. There is no
session state between calls; each Handler reconstructs its safety
checks from the records it loads.

The engine never verifies signatures. An Authenticator (see the x
package) reveals which Conditions the host already authenticated for
this call, and handlers only ever check membership of the derived
Addresses.
*/
package mvault
