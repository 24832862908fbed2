// Package loader reads the puzzle JSON schema into the solver's
// programmatic types. It is a thin collaborator: it never duplicates
// solver semantics, only translates an external format into calls to
// piece.New and geometry.NewCellSet.
package loader

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/nmartins/polycube/internal/geometry"
	"github.com/nmartins/polycube/internal/piece"
)

// pieceJSON and puzzleJSON mirror the wire schema:
//
//	{ "pieces":[{"name":str,"cells":[[x,y,z],...],"color":str?}...],
//	  "target":{"cells":[[x,y,z],...]} }
type pieceJSON struct {
	Name  string   `json:"name"`
	Cells [][3]int `json:"cells"`
	Color string   `json:"color,omitempty"`
}

type puzzleJSON struct {
	Pieces []pieceJSON `json:"pieces"`
	Target struct {
		Cells [][3]int `json:"cells"`
	} `json:"target"`
}

// Puzzle is the decoded, ready-to-solve input.
type Puzzle struct {
	Pieces []*piece.Piece
	Target geometry.CellSet
}

// LoadFile reads and decodes the puzzle at path.
func LoadFile(path string) (*Puzzle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load decodes a puzzle from r. Each piece's cells are translated so
// its own per-axis minima are zero before being handed to piece.New,
// per the external interface contract: callers may supply pieces
// defined anywhere in space.
func Load(r io.Reader) (*Puzzle, error) {
	var doc puzzleJSON
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("loader: decode puzzle: %w", err)
	}

	pieces := make([]*piece.Piece, 0, len(doc.Pieces))
	for i, pd := range doc.Pieces {
		if len(pd.Cells) == 0 {
			continue
		}

		cells := make([]geometry.Cell, len(pd.Cells))
		for j, c := range pd.Cells {
			cells[j] = geometry.Cell{X: c[0], Y: c[1], Z: c[2]}
		}
		cells = geometry.Canonicalize(cells)

		name := pd.Name
		if name == "" {
			name = fmt.Sprintf("piece-%d", i+1)
		}

		p, err := piece.New(name, cells, pd.Color)
		if err != nil {
			return nil, fmt.Errorf("loader: %w", err)
		}
		pieces = append(pieces, p)
	}

	target := make([]geometry.Cell, len(doc.Target.Cells))
	for i, c := range doc.Target.Cells {
		target[i] = geometry.Cell{X: c[0], Y: c[1], Z: c[2]}
	}

	return &Puzzle{Pieces: pieces, Target: geometry.NewCellSet(target...)}, nil
}

// CellTotal returns the sum of every piece's cell count, for the
// caller to compare against Target.Size() before solving.
func (p *Puzzle) CellTotal() int {
	total := 0
	for _, pc := range p.Pieces {
		total += pc.Size()
	}
	return total
}
