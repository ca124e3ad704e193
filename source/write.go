package source

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Alex-2504834/RandomStudentPicker/types"
)

// WriteFile persists students to a class file, format selected by
// extension (.json or .csv).
//
// Parameters:
//   - path: Destination file path
//   - students: Roster content to persist
//
// Returns:
//   - error: Unsupported extension or write failure
func WriteFile(path string, students []types.Student) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return WriteJSONFile(path, students)
	case ".csv":
		return WriteCSVFile(path, students)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// WriteJSONFile persists students as an indented JSON array.
func WriteJSONFile(path string, students []types.Student) error {
	data, err := json.MarshalIndent(students, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal students: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write class file %s: %w", path, err)
	}

	return nil
}

// WriteCSVFile persists students as CSV with a name,weight,count header.
func WriteCSVFile(path string, students []types.Student) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create class file %s: %w", path, err)
	}

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"name", "weight", "count"}); err != nil {
		file.Close()
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, st := range students {
		record := []string{
			st.Name,
			strconv.FormatFloat(st.Weight, 'g', -1, 64),
			strconv.Itoa(st.Count),
		}
		if err := writer.Write(record); err != nil {
			file.Close()
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		file.Close()
		return fmt.Errorf("flush csv %s: %w", path, err)
	}

	return file.Close()
}
