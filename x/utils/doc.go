/*
Package utils contains generic decorators that are useful in any handler
stack: savepoints, panic recovery, and request logging.
*/
package utils
