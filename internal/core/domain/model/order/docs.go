// Package order contains the Order aggregate and its lifecycle state
// machine. An order is created open, gets assigned to exactly one
// courier, and is completed when delivered. An assignment may be
// reverted, returning the order to the open pool, but a completed order
// is final and keeps its courier linkage.
package order
