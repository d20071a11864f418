// Package services contains stateless domain services that coordinate
// couriers and orders: eligibility filtering, capacity accounting,
// greedy batch assignment, completion with per-batch duration tracking,
// derived courier metrics, and reconciliation after capacity-reducing
// courier changes.
package services
