// Package errs defines the application's error vocabulary: sentinel errors
// for classification with errors.Is, and typed errors carrying the parameter
// name, offending value, and an optional cause.
//
// Every typed error follows the same shape: a sentinel (ErrValueIsRequired),
// a struct with detail fields, constructors with and without a cause, and an
// Unwrap method pointing back at the sentinel. The HTTP layer maps sentinels
// to status codes; everything below it only wraps and classifies.
package errs
