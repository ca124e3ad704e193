// Package types defines the core types and interfaces shared across the
// picker library.
//
// It exists as a separate package so internal packages can depend on the
// shared definitions without importing the root package, avoiding import
// cycles. The root package re-exports the common names via type aliases,
// so most users never import this package directly.
package types
