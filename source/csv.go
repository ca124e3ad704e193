package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Alex-2504834/RandomStudentPicker/types"
)

// ParseCSV reads students from a CSV class file.
//
// The first row is a header; a "name" column is required, "weight" and
// "count" columns are optional. Header matching is case-insensitive and
// trims whitespace. Rows with an empty name are skipped; unparseable or
// missing weight/count cells fall back to DefaultWeight and 0.
//
// Parameters:
//   - r: CSV input
//
// Returns:
//   - []types.Student: Parsed students in row order
//   - error: Read failure, missing name column, or ErrNoValidStudents
func ParseCSV(r io.Reader) ([]types.Student, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // rows may omit trailing optional columns
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: file is empty", ErrNoValidStudents)
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	nameCol, weightCol, countCol := -1, -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "name":
			nameCol = i
		case "weight":
			weightCol = i
		case "count":
			countCol = i
		}
	}
	if nameCol < 0 {
		return nil, fmt.Errorf("%w: csv needs a name column", ErrNoValidStudents)
	}

	var students []types.Student
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}

		if nameCol >= len(row) {
			continue
		}
		name := strings.TrimSpace(row[nameCol])
		if name == "" {
			continue
		}

		st := types.Student{Name: name, Weight: DefaultWeight}
		if weightCol >= 0 && weightCol < len(row) {
			if w, err := strconv.ParseFloat(strings.TrimSpace(row[weightCol]), 64); err == nil {
				st.Weight = w
			}
		}
		if countCol >= 0 && countCol < len(row) {
			if c, err := strconv.Atoi(strings.TrimSpace(row[countCol])); err == nil {
				st.Count = c
			}
		}

		students = append(students, st)
	}

	if len(students) == 0 {
		return nil, fmt.Errorf("%w: no usable rows under the header", ErrNoValidStudents)
	}

	return students, nil
}
