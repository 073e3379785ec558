/*
Package multisig implements threshold authorization over shared wallets.

A wallet names a set of owner addresses and a threshold. Any owner can
propose a transfer from the wallet's funds; owners approve the proposal
independently and anyone may trigger execution once the number of
approvals reaches the threshold. Each proposal can execute at most once.

The funds of a wallet are held at the address derived from
WalletCondition, so only this extension can move them.
*/
package multisig
