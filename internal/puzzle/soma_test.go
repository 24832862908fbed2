package puzzle_test

import (
	"testing"

	"github.com/nmartins/polycube/internal/puzzle"
	"github.com/stretchr/testify/require"
)

func TestSomaPiecesTotalTwentySevenCells(t *testing.T) {
	total := 0
	for _, p := range puzzle.SomaPieces() {
		total += p.Size()
	}
	require.Equal(t, 27, total)
	require.Equal(t, 27, puzzle.SomaTarget().Size())
}

func TestSomaPiecesHaveUniqueNames(t *testing.T) {
	seen := make(map[string]struct{})
	for _, p := range puzzle.SomaPieces() {
		_, dup := seen[p.Name()]
		require.False(t, dup, "duplicate piece name %q", p.Name())
		seen[p.Name()] = struct{}{}
	}
}

func TestSomaPiecesAreShapeDistinct(t *testing.T) {
	seen := make(map[string]string)
	for _, p := range puzzle.SomaPieces() {
		key := p.Cells().Key()
		if other, dup := seen[key]; dup {
			t.Fatalf("pieces %q and %q share a canonical shape", other, p.Name())
		}
		seen[key] = p.Name()
	}
}
