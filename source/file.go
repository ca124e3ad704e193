package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Alex-2504834/RandomStudentPicker/types"
)

// File is a roster source backed by a .json or .csv class file, selected
// by extension.
type File string

// Compile-time assertion that File implements RosterSource.
var _ types.RosterSource = (File)("")

// LoadStudents reads and parses the class file.
//
// Parameters:
//   - ctx: Context for cancellation (checked before the read)
//
// Returns:
//   - []types.Student: Parsed students in file order
//   - error: Open, parse, or format failure; ErrNoValidStudents for empty files
func (f File) LoadStudents(ctx context.Context) ([]types.Student, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := string(f)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open class file: %w", err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		students, err := ParseJSON(file)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		return students, nil
	case ".csv":
		students, err := ParseCSV(file)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		return students, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// ListClassFiles returns the class file names (not paths) in dir, sorted,
// restricted to .json and .csv files.
//
// Parameters:
//   - dir: Class directory to scan
//
// Returns:
//   - []string: Sorted class file names; empty when none exist
//   - error: Directory read failure
func ListClassFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read class dir: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".json", ".csv":
			names = append(names, entry.Name())
		}
	}
	// os.ReadDir returns entries sorted by name already.

	return names, nil
}
