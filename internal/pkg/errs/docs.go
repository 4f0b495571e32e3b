// Package errs provides standardized error types for the cookie admin application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its allowed bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - IllegalTransitionError: For when an order status change is not permitted
//   - InvalidRouteError: For when delivery route preconditions are violated
//   - ConflictError: For when a concurrent change invalidated an optimistic precondition
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The three value errors together form the validation family; IsValidation
// reports whether an error belongs to it so transports can map it to a client error.
package errs
