// Package errs provides the classified error kinds used across the order service.
//
// Every kind follows the same shape:
//   - a sentinel error variable (e.g. ErrObjectNotFound) used with errors.Is
//   - a struct type carrying the details
//   - constructors with and without a cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Kinds:
//   - ObjectNotFoundError: a restaurant, dish, order or user does not exist
//   - ForbiddenError: the caller may not see or change the record
//   - ConflictError: the record is in a state that rejects the request
//   - ConcurrencyError: an optimistic update lost the race
//   - InternalError: an unexpected failure hidden behind a public message
//   - ValueIsInvalidError, ValueIsRequiredError, ValueIsOutOfRangeError: input validation
//
// Application handlers wrap anything unclassified with Internal so the transport
// layer only ever sees one of the kinds above.
package errs
