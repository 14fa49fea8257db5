// Package errs provides the standardized error types used across the dispatch
// service. It implements one consistent pattern for error creation, formatting
// and unwrapping.
//
// The package covers the common failure scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value fails validation
//   - ValueIsOutOfRangeError: a value falls outside its allowed bounds
//   - ObjectNotFoundError: a referenced object does not exist
//   - VersionIsInvalidError: an aggregate version check fails
//
// Each error type follows the same shape:
//   - a sentinel error variable (e.g. ErrObjectNotFound) usable with errors.Is
//   - a struct type carrying the error details
//   - constructor functions with and without a cause
//   - Error() for formatting and Unwrap() for sentinel matching
//
// Callers classify errors with errors.Is against the sentinels; the HTTP
// adapter maps them onto response codes.
package errs
