// Package errs provides the standardized error types used across the dispatch
// service. It implements a consistent pattern for error creation, formatting,
// and unwrapping.
//
// The package covers the common failure scenarios of the engine:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is present but invalid
//   - ValueIsOutOfRangeError: a numeric value falls outside its bounds
//   - ObjectNotFoundError: a lookup by identifier found nothing
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type carrying the error details
//   - Constructor functions with and without an underlying cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// Callers classify failures with errors.Is against the sentinels; the HTTP
// adapter maps them onto status codes.
package errs
