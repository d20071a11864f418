// Package kernel contains the shared value objects of the dispatch domain:
// identifiers (UUID), region identifiers, fixed-point cargo weights, and the
// time-of-day windows used for courier working hours and order delivery hours.
//
// All value objects are immutable and constructed through factory functions
// that validate their invariants. Zero values are invalid and are rejected by
// the Validate methods, following the constructor guard pattern.
package kernel
