package geometry_test

import (
	"testing"

	"github.com/nmartins/polycube/internal/geometry"
	"github.com/stretchr/testify/require"
)

func TestCellSetBasics(t *testing.T) {
	s := geometry.NewCellSet(geometry.Cell{X: 1, Y: 1, Z: 1}, geometry.Cell{X: 1, Y: 1, Z: 1}, geometry.Cell{X: 2, Y: 1, Z: 1})
	require.Equal(t, 2, s.Size(), "duplicate input cells collapse")
	require.True(t, s.Contains(geometry.Cell{X: 1, Y: 1, Z: 1}))
	require.False(t, s.Contains(geometry.Cell{X: 0, Y: 0, Z: 0}))
}

func TestCellSetIsSubsetOf(t *testing.T) {
	target := geometry.Box(2, 2, 2)
	inside := geometry.NewCellSet(geometry.Cell{X: 0, Y: 0, Z: 0}, geometry.Cell{X: 1, Y: 1, Z: 1})
	outside := geometry.NewCellSet(geometry.Cell{X: 5, Y: 5, Z: 5})

	require.True(t, inside.IsSubsetOf(target))
	require.False(t, outside.IsSubsetOf(target))
}

func TestCellSetTranslate(t *testing.T) {
	s := geometry.NewCellSet(geometry.Cell{X: 0, Y: 0, Z: 0}, geometry.Cell{X: 1, Y: 0, Z: 0})
	moved := s.Translate(geometry.Cell{X: 5, Y: -3, Z: 2})
	require.True(t, moved.Contains(geometry.Cell{X: 5, Y: -3, Z: 2}))
	require.True(t, moved.Contains(geometry.Cell{X: 6, Y: -3, Z: 2}))
	require.Equal(t, s.Size(), moved.Size())
}

func TestCellSetCanonicalIsTranslationInvariant(t *testing.T) {
	a := geometry.NewCellSet(geometry.Cell{X: 0, Y: 0, Z: 0}, geometry.Cell{X: 1, Y: 0, Z: 0}, geometry.Cell{X: 1, Y: 1, Z: 0})
	b := a.Translate(geometry.Cell{X: 7, Y: -4, Z: 9})

	require.Equal(t, a.Canonical(), b.Canonical())
	require.Equal(t, a.Key(), b.Key())
}

func TestCellSetCanonicalDistinguishesShapes(t *testing.T) {
	line := geometry.NewCellSet(geometry.Cell{X: 0, Y: 0, Z: 0}, geometry.Cell{X: 1, Y: 0, Z: 0}, geometry.Cell{X: 2, Y: 0, Z: 0})
	bent := geometry.NewCellSet(geometry.Cell{X: 0, Y: 0, Z: 0}, geometry.Cell{X: 1, Y: 0, Z: 0}, geometry.Cell{X: 1, Y: 1, Z: 0})

	require.NotEqual(t, line.Key(), bent.Key())
}

func TestCellSetEmptyCanonical(t *testing.T) {
	var s geometry.CellSet
	require.Equal(t, 0, s.Size())
	require.Empty(t, s.Canonical())
}

func TestBoxDimensions(t *testing.T) {
	b := geometry.Box(2, 3, 4)
	require.Equal(t, 24, b.Size())
	require.True(t, b.Contains(geometry.Cell{X: 1, Y: 2, Z: 3}))
	require.False(t, b.Contains(geometry.Cell{X: 2, Y: 0, Z: 0}))
}

func TestFromLayers(t *testing.T) {
	layers := [][][]bool{
		{
			{true, false},
			{false, true},
		},
	}
	s := geometry.FromLayers(layers)
	require.Equal(t, 2, s.Size())
	require.True(t, s.Contains(geometry.Cell{X: 0, Y: 0, Z: 0}))
	require.True(t, s.Contains(geometry.Cell{X: 1, Y: 1, Z: 0}))
}
