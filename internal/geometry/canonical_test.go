package geometry_test

import (
	"testing"

	"github.com/nmartins/polycube/internal/geometry"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeZeroesMinima(t *testing.T) {
	cells := []geometry.Cell{{X: 5, Y: 5, Z: 5}, {X: 6, Y: 5, Z: 5}, {X: 6, Y: 6, Z: 5}}
	out := geometry.Canonicalize(cells)

	require.Equal(t, geometry.Cell{X: 0, Y: 0, Z: 0}, out[0])
	for _, c := range out {
		require.GreaterOrEqual(t, c.X, 0)
		require.GreaterOrEqual(t, c.Y, 0)
		require.GreaterOrEqual(t, c.Z, 0)
	}
}

func TestCanonicalizeIsIdempotent(t *testing.T) {
	cells := []geometry.Cell{{X: -2, Y: 3, Z: 0}, {X: -1, Y: 3, Z: 0}}
	once := geometry.Canonicalize(cells)
	twice := geometry.Canonicalize(once)
	require.Equal(t, once, twice)
}

func TestCanonicalizeDoesNotMutateInput(t *testing.T) {
	cells := []geometry.Cell{{X: 3, Y: 3, Z: 3}, {X: 4, Y: 3, Z: 3}}
	original := append([]geometry.Cell(nil), cells...)
	geometry.Canonicalize(cells)
	require.Equal(t, original, cells)
}

func TestCanonicalizeEmpty(t *testing.T) {
	out := geometry.Canonicalize(nil)
	require.NotNil(t, out)
	require.Empty(t, out)
}
