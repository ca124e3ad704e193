package source

import "errors"

// Sentinel errors returned by roster sources.
var (
	// ErrNoValidStudents is returned when a source yields no student with a
	// non-empty name. Loading such a source must not clear the caller's
	// prior roster.
	ErrNoValidStudents = errors.New("no valid students in source")

	// ErrUnsupportedFormat is returned for class files that are neither
	// .json nor .csv.
	ErrUnsupportedFormat = errors.New("unsupported class file format")
)
