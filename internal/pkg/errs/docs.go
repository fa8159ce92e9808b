// Package errs provides the standardized error types used across the
// logistics application.
//
// Three error kinds cover the failures the workflow reports before and after
// talking to its backends:
//   - ValueIsRequiredError: a required value is missing (validation)
//   - ValueIsInvalidError: a value is present but invalid (validation)
//   - ObjectNotFoundError: a referenced object does not exist
//
// Each kind follows the same pattern: a sentinel error variable (e.g.
// ErrObjectNotFound), a struct type carrying the details, constructor
// functions with and without a cause, an Error() method for formatting, and
// an Unwrap() method returning the sentinel so callers can classify failures
// with errors.Is.
package errs
