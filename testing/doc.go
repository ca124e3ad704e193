// Package testing provides public test helpers for the picker library.
//
// It includes a logger that writes through testing.T and a manual clock
// that drives spin timelines on virtual time, so animation tests run
// deterministically with no real sleeping.
package testing
