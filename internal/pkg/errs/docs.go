// Package errs provides the structured error kinds used across the
// marketplace core. Every failure a use case can produce maps onto one of a
// small set of sentinel errors, so callers classify with errors.Is and never
// parse message text.
//
// The error kinds:
//   - ValueIsRequiredError / ValueIsInvalidError: malformed or missing input
//   - ObjectNotFoundError: a referenced order, agent or cart line is absent
//   - NotAuthorizedError: the actor lacks rights over the target entity
//   - InvalidTransitionError: a forbidden order status move
//   - ConflictError: a uniqueness violation (e.g. order number collision)
//
// Each kind follows the same pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound)
//   - a struct type carrying machine-readable detail fields
//   - constructors with and without an underlying cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// The core never formats user-facing prose; translating these kinds into
// human-readable messages is the presentation layer's job.
package errs
