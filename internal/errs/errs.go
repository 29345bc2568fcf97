// Package errs defines custom error types and utilities.
//
// Its purpose is to create specific error structures
// (FieldError for request bodies, HTTPError for API responses)
// so clients receive meaningful and consistent error messages.
package errs
