package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alex-2504834/RandomStudentPicker/types"
)

func writeClassFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestFile_LoadStudentsJSON(t *testing.T) {
	path := writeClassFile(t, "class.json", `[{"name": "Alice", "weight": 0.4}]`)

	students, err := File(path).LoadStudents(context.Background())
	require.NoError(t, err)
	require.Equal(t, []types.Student{{Name: "Alice", Weight: 0.4}}, students)
}

func TestFile_LoadStudentsCSV(t *testing.T) {
	path := writeClassFile(t, "class.csv", "name,weight\nBob,0.6\n")

	students, err := File(path).LoadStudents(context.Background())
	require.NoError(t, err)
	require.Equal(t, []types.Student{{Name: "Bob", Weight: 0.6}}, students)
}

func TestFile_LoadStudentsErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := File(filepath.Join(t.TempDir(), "absent.json")).LoadStudents(context.Background())
		require.Error(t, err)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeClassFile(t, "class.txt", "Alice\n")
		_, err := File(path).LoadStudents(context.Background())
		require.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("cancelled context", func(t *testing.T) {
		path := writeClassFile(t, "class.json", `["Alice"]`)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := File(path).LoadStudents(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestListClassFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.csv", "a.json", "notes.txt", "x.JSON"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.json"), 0o755))

	names, err := ListClassFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.json", "b.csv", "x.JSON"}, names)
}

func TestListClassFiles_MissingDir(t *testing.T) {
	_, err := ListClassFiles(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
}
