// Package errors defines the typed errors shared across the module.
//
// Error types here are re-exported by the root package so callers can use
// errors.As without importing internal packages.
package errors
