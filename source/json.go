package source

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/Alex-2504834/RandomStudentPicker/types"
)

// DefaultWeight is assigned when a record carries no parseable weight.
const DefaultWeight = 0.5

// ParseJSON reads students from a JSON class file.
//
// Accepted shapes:
//   - an array of objects: [{"name": "Alice", "weight": 0.5, "count": 0}, ...]
//   - an array of bare names: ["Alice", "Bob"]
//   - an object keyed by arbitrary ids: {"1": {"name": "Alice"}, ...}
//     (entries are taken in sorted key order for determinism)
//
// Names are trimmed; records with empty names are skipped. Missing or
// unparseable weights default to DefaultWeight, counts to 0.
//
// Parameters:
//   - r: JSON input
//
// Returns:
//   - []types.Student: Parsed students in source order
//   - error: Decode failure, or ErrNoValidStudents when nothing usable remains
func ParseJSON(r io.Reader) ([]types.Student, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read json: %w", err)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		// Not an array; try an object keyed by ids.
		var keyed map[string]json.RawMessage
		if mapErr := json.Unmarshal(data, &keyed); mapErr != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}

		keys := make([]string, 0, len(keyed))
		for k := range keyed {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		items = make([]json.RawMessage, 0, len(keyed))
		for _, k := range keys {
			items = append(items, keyed[k])
		}
	}

	students := make([]types.Student, 0, len(items))
	for _, item := range items {
		if st, ok := decodeStudent(item); ok {
			students = append(students, st)
		}
	}

	if len(students) == 0 {
		return nil, fmt.Errorf("%w: each entry needs at least a name", ErrNoValidStudents)
	}

	return students, nil
}

// decodeStudent decodes one JSON entry, either a bare name string or an
// object with name/weight/count fields. ok is false for empty names.
func decodeStudent(raw json.RawMessage) (types.Student, bool) {
	var name string
	if err := json.Unmarshal(raw, &name); err == nil {
		name = strings.TrimSpace(name)
		if name == "" {
			return types.Student{}, false
		}

		return types.Student{Name: name, Weight: DefaultWeight}, true
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return types.Student{}, false
	}

	name = strings.TrimSpace(coerceString(fields["name"]))
	if name == "" {
		return types.Student{}, false
	}

	st := types.Student{Name: name, Weight: DefaultWeight}
	if w, ok := coerceFloat(fields["weight"]); ok {
		st.Weight = w
	}
	if c, ok := coerceInt(fields["count"]); ok {
		st.Count = c
	}

	return st, true
}

func coerceString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func coerceFloat(v any) (float64, bool) {
	switch f := v.(type) {
	case float64:
		return f, true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return 0, false
		}

		return parsed, true
	default:
		return 0, false
	}
}

func coerceInt(v any) (int, bool) {
	switch c := v.(type) {
	case float64:
		return int(c), true
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(c))
		if err != nil {
			return 0, false
		}

		return parsed, true
	default:
		return 0, false
	}
}
