package spin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildStrip(t *testing.T) {
	t.Run("repeats names in order", func(t *testing.T) {
		strip := buildStrip([]string{"A", "B", "C"}, 2)
		require.Equal(t, []string{"A", "B", "C", "A", "B", "C"}, strip)
	})

	t.Run("empty names yield empty strip", func(t *testing.T) {
		require.Nil(t, buildStrip(nil, 10))
		require.Nil(t, buildStrip([]string{}, 10))
	})

	t.Run("non-positive repeat yields empty strip", func(t *testing.T) {
		require.Nil(t, buildStrip([]string{"A"}, 0))
	})

	t.Run("every name occurs repeat times", func(t *testing.T) {
		strip := buildStrip([]string{"A", "B"}, 10)
		require.Len(t, strip, 20)

		occurrences := 0
		for _, n := range strip {
			if n == "A" {
				occurrences++
			}
		}
		require.Equal(t, 10, occurrences)
	})
}

func TestForwardDistance(t *testing.T) {
	require.Equal(t, 0, forwardDistance(3, 3, 6))
	require.Equal(t, 1, forwardDistance(2, 1, 6))
	require.Equal(t, 5, forwardDistance(0, 1, 6))
	// Wraps forward, never backward.
	require.Equal(t, 4, forwardDistance(1, 3, 6))
}

func TestClosestForward(t *testing.T) {
	strip := []string{"A", "B", "C", "A", "B", "C"}

	t.Run("closest forward occurrence wins", func(t *testing.T) {
		// From center 1 (B) the next C is at index 2, one step forward.
		d, ok := closestForward(strip, "C", 1)
		require.True(t, ok)
		require.Equal(t, 1, d)
	})

	t.Run("in place counts as zero", func(t *testing.T) {
		d, ok := closestForward(strip, "A", 0)
		require.True(t, ok)
		require.Equal(t, 0, d)
	})

	t.Run("wraps past the end", func(t *testing.T) {
		d, ok := closestForward(strip, "A", 5)
		require.True(t, ok)
		require.Equal(t, 1, d)
	})

	t.Run("absent name reports not found", func(t *testing.T) {
		_, ok := closestForward(strip, "Z", 0)
		require.False(t, ok)
	})
}

func TestWindowAt(t *testing.T) {
	strip := []string{"A", "B", "C", "D", "E"}

	t.Run("center sits in the middle slot", func(t *testing.T) {
		window := windowAt(strip, 2, 3)
		require.Equal(t, []string{"B", "C", "D"}, window)
	})

	t.Run("wraps cyclically on both sides", func(t *testing.T) {
		window := windowAt(strip, 0, 5)
		require.Equal(t, []string{"D", "E", "A", "B", "C"}, window)
	})

	t.Run("window wider than strip repeats names", func(t *testing.T) {
		window := windowAt([]string{"A", "B"}, 0, 5)
		assert.Equal(t, []string{"A", "B", "A", "B", "A"}, window)
	})
}
