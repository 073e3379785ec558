/*
Package mvaulttest provides mocks and helpers for testing code built on
the mvault framework. Everything here is intended for tests only.
*/
package mvaulttest
