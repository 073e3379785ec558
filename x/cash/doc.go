/*
Package cash tracks fungible value held by addresses and moves it between
them. Other extensions use the Controller interface to query balances and
to transfer or issue coins without touching the storage layout directly.
*/
package cash
