// Package courier provides the Courier aggregate of the dispatch domain.
//
// The package includes:
//   - Courier: the aggregate root holding transport type, served regions, and
//     working hours
//   - Transport: the transport type value object that determines the cargo
//     capacity ceiling and the earnings coefficient
//
// Key business rules:
//   - A courier must have a valid unique identifier and a known transport type
//   - The transport type caps the total weight of simultaneously assigned orders
//   - Regions and working hours are value collections owned by the courier;
//     they may be replaced wholesale on update
//   - Working hours need not be disjoint or sorted
//
// The package follows Domain-Driven Design principles: rich behavior lives on
// the aggregate, and all instances are created through validating constructors.
package courier
