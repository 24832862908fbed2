// Package dlx implements Knuth's Dancing Links (DLX) and Algorithm X
// over an abstract sparse 0/1 matrix. It knows nothing about pieces or
// cells: columns are identified only by name, and rows are identified
// only by an opaque integer RowID that the caller assigns meaning to.
package dlx

import "fmt"

// Node is one node of the toroidal doubly linked list: either a 1-cell
// of the matrix, or (embedded in a ColumnNode) a column header.
type Node struct {
	Left, Right, Up, Down *Node
	Column                *ColumnNode
	RowID                 int
}

// ColumnNode is a column header: it tracks the column's current size
// (number of live data nodes) and chains horizontally with its
// neighboring headers.
type ColumnNode struct {
	Node
	Size int
	Name string
}

// Matrix is a Dancing Links exact-cover matrix under construction or
// search. The header is a sentinel ColumnNode whose Right/Left chain
// every real column header; Header.Right == &Header.Node means no
// columns remain.
type Matrix struct {
	Header  *ColumnNode
	columns []*ColumnNode
	// Rows holds the first node of each row, indexed by RowID, for
	// reconstructing a solution's row membership after search.
	Rows []*Node
}

// NewMatrix builds an empty matrix with one column per name, in the
// given order. Column order is preserved exactly; it determines both
// the deterministic column-choice tie-break and the horizontal
// traversal order used throughout search.
func NewMatrix(names []string) *Matrix {
	m := &Matrix{Header: &ColumnNode{Name: "header"}}
	m.Header.Left = &m.Header.Node
	m.Header.Right = &m.Header.Node

	m.columns = make([]*ColumnNode, len(names))
	for i, name := range names {
		col := &ColumnNode{Name: name}
		col.Up = &col.Node
		col.Down = &col.Node
		col.Column = col
		m.columns[i] = col

		col.Left = m.Header.Left
		col.Right = &m.Header.Node
		m.Header.Left.Right = &col.Node
		m.Header.Left = &col.Node
	}

	return m
}

// AddRow inserts a new row with a 1 in each of the given column
// indices, and returns the dense RowID assigned to it. columnIndices
// must be non-empty and every index must refer to a column created by
// NewMatrix; an out-of-range index is a programming error and panics
// with ErrInternal, since it can only be reached by a caller bug, never
// by a malformed but otherwise valid puzzle.
func (m *Matrix) AddRow(columnIndices []int) int {
	if len(columnIndices) == 0 {
		panic(fmt.Errorf("%w: row has no columns", ErrInternal))
	}

	rowID := len(m.Rows)
	nodes := make([]*Node, len(columnIndices))

	for i, colIdx := range columnIndices {
		if colIdx < 0 || colIdx >= len(m.columns) {
			panic(fmt.Errorf("%w: column index %d out of range", ErrInternal, colIdx))
		}
		col := m.columns[colIdx]
		node := &Node{Column: col, RowID: rowID}
		nodes[i] = node

		node.Down = &col.Node
		node.Up = col.Up
		col.Up.Down = node
		col.Up = node
		col.Size++
	}

	for i := range nodes {
		nodes[i].Left = nodes[(i-1+len(nodes))%len(nodes)]
		nodes[i].Right = nodes[(i+1)%len(nodes)]
	}

	m.Rows = append(m.Rows, nodes[0])
	return rowID
}

// ColumnCount returns the number of columns the matrix was built with.
func (m *Matrix) ColumnCount() int {
	return len(m.columns)
}
