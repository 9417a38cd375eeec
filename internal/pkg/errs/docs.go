// Package errs provides standardized error types for the order-intake application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside allowed bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - BusinessRuleError: For order-submission rules rejected by the validator
//   - OutOfServiceAreaError: For delivery coordinates matched by no active zone
//   - ConflictError: For persistence conflicts such as unique-constraint violations
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The sentinels are the classification surface: callers decide on HTTP status
// codes and retry behavior with errors.Is against them, never by string
// matching. Messages carried by BusinessRuleError are user-facing and surfaced
// verbatim; everything else is formatted from structured fields.
package errs
