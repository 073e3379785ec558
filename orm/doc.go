/*
Package orm provides an easy to use db wrapper.

It breaks the state space into prefixed sections called buckets. Each
bucket contains only one type of record and owns a primary key space.
Sequences provide monotonically increasing IDs that are also valid,
ordered bucket keys.
*/
package orm
