// Package errs provides standardized error types shared across the parcels
// application.
//
// Each error type follows the same pattern: a sentinel error variable (e.g.
// ErrValueIsRequired), a struct carrying the error details, constructors with
// and without an underlying cause, an Error() method producing a single-line
// message, and an Unwrap() method returning the sentinel so callers can
// classify errors with errors.Is.
//
// Input-validation failures use ValueIsRequiredError / ValueIsInvalidError /
// ValueIsOutOfRangeError; missing entities use ObjectNotFoundError. Business
// rule rejections are not defined here; those are sentinel errors owned by
// the domain packages that enforce them.
package errs
