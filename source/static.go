package source

import (
	"context"
	"sync"

	"github.com/Alex-2504834/RandomStudentPicker/types"
)

// Static implements a roster source with a fixed list of students.
type Static struct {
	mu       sync.RWMutex
	students []types.Student
}

// Compile-time assertion that Static implements RosterSource.
var _ types.RosterSource = (*Static)(nil)

// NewStatic creates a new static roster source.
//
// The source returns a fixed list of students that never changes unless
// updated. Useful for tests and callers that assemble rosters in memory.
//
// Parameters:
//   - students: Fixed list of students
//
// Returns:
//   - *Static: Initialized static source
//
// Example:
//
//	src := source.NewStatic([]types.Student{
//	    {Name: "Alice", Weight: 0.5},
//	    {Name: "Bob", Weight: 0.5},
//	})
//	err := roster.Load(ctx, src)
func NewStatic(students []types.Student) *Static {
	return &Static{
		students: students,
	}
}

// LoadStudents returns the static list of students.
//
// Returns:
//   - []types.Student: Copy of the fixed list
//   - error: ErrNoValidStudents when the list is empty
func (s *Static) LoadStudents(_ context.Context) ([]types.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.students) == 0 {
		return nil, ErrNoValidStudents
	}

	result := make([]types.Student, len(s.students))
	copy(result, s.students)

	return result, nil
}

// Update replaces the student list.
//
// This lets the static source simulate class changes, which is useful for
// reload tests.
//
// Parameters:
//   - students: New list of students
func (s *Static) Update(students []types.Student) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.students = make([]types.Student, len(students))
	copy(s.students, students)
}
