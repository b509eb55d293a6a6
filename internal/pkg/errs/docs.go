// Package errs provides standardized error types for the fleet dispatch application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - StateConflictError: For when a state precondition is violated
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The four kinds map onto the operation failure taxonomy: missing entities unwrap to
// ErrObjectNotFound, malformed input to ErrValueIsRequired/ErrValueIsInvalid, and
// violated state preconditions (wrong status, duplicate identity, exceeded capacity,
// fleet mismatch) to ErrStateConflict. Storage failures propagate untranslated.
package errs
