// Package delivery provides the Delivery aggregate root and its lifecycle
// guard for the parcels system.
//
// Key business rules:
//   - withdrawals are accepted only between 8h and 18h local time
//   - a deliveryman may withdraw at most 5 packages per calendar day
//   - a delivery can be canceled only while fully open; a withdrawn package
//     can be canceled only through a reported problem
//   - a delivery can be soft-deleted only once it is canceled or delivered
//
// The lifecycle is recorded as nullable timestamps (withdrawal, completion,
// cancellation, removal); Status derives the tagged state from them so callers
// never scatter null-checks.
package delivery
