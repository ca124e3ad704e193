package types

import "context"

// RosterSource provides the list of students to load into a roster.
//
// Implementations include file-backed sources (JSON and CSV class files)
// and a static in-memory source for tests.
type RosterSource interface {
	// LoadStudents returns the students provided by this source.
	//
	// An empty or all-invalid source is an error, not an empty roster:
	// callers keep their prior roster state when loading fails.
	//
	// Parameters:
	//   - ctx: Context for cancellation and deadline
	//
	// Returns:
	//   - []Student: Loaded students in source order
	//   - error: Load or parse failure
	LoadStudents(ctx context.Context) ([]Student, error)
}
