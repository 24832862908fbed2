package loader_test

import (
	"strings"
	"testing"

	"github.com/nmartins/polycube/internal/geometry"
	"github.com/nmartins/polycube/internal/loader"
	"github.com/stretchr/testify/require"
)

const twoPieceDoc = `{
  "pieces": [
    {"name": "a", "cells": [[0,0,0]], "color": "#ff0000"},
    {"name": "b", "cells": [[0,0,0]]}
  ],
  "target": {"cells": [[0,0,0],[1,0,0]]}
}`

func TestLoadDecodesPiecesAndTarget(t *testing.T) {
	p, err := loader.Load(strings.NewReader(twoPieceDoc))
	require.NoError(t, err)
	require.Len(t, p.Pieces, 2)
	require.Equal(t, "a", p.Pieces[0].Name())
	require.Equal(t, "#ff0000", p.Pieces[0].Color())
	require.Equal(t, "", p.Pieces[1].Color())
	require.Equal(t, 2, p.Target.Size())
}

func TestLoadCellTotal(t *testing.T) {
	p, err := loader.Load(strings.NewReader(twoPieceDoc))
	require.NoError(t, err)
	require.Equal(t, 2, p.CellTotal())
}

func TestLoadAssignsDefaultNameWhenMissing(t *testing.T) {
	doc := `{"pieces":[{"cells":[[0,0,0]]}],"target":{"cells":[[0,0,0]]}}`
	p, err := loader.Load(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, "piece-1", p.Pieces[0].Name())
}

func TestLoadCanonicalizesOffsetPieceCells(t *testing.T) {
	doc := `{"pieces":[{"name":"shifted","cells":[[5,5,5],[6,5,5]]}],"target":{"cells":[[0,0,0]]}}`
	p, err := loader.Load(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, []geometry.Cell{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}}, p.Pieces[0].Cells().Canonical())
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	_, err := loader.Load(strings.NewReader("not json"))
	require.Error(t, err)
}

func TestLoadRejectsInvalidPiece(t *testing.T) {
	doc := `{"pieces":[{"name":"dup","cells":[[0,0,0],[0,0,0]]}],"target":{"cells":[[0,0,0]]}}`
	_, err := loader.Load(strings.NewReader(doc))
	require.Error(t, err)
}

func TestLoadSkipsEmptyPieceEntries(t *testing.T) {
	doc := `{"pieces":[{"name":"empty","cells":[]},{"name":"a","cells":[[0,0,0]]}],"target":{"cells":[[0,0,0]]}}`
	p, err := loader.Load(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, p.Pieces, 1)
	require.Equal(t, "a", p.Pieces[0].Name())
}

func TestLoadFileMissingPath(t *testing.T) {
	_, err := loader.LoadFile("/nonexistent/path/to/puzzle.json")
	require.Error(t, err)
}
