package graph

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNotSquare is returned by [FromAdjacency] when the input rows do not
	// form a square matrix.
	ErrNotSquare = errors.New("adjacency matrix is not square")

	// ErrNotBinary is returned by [FromAdjacency] when an entry is neither
	// 0 nor 1.
	ErrNotBinary = errors.New("adjacency entries must be 0 or 1")
)

// AdjacencyMatrix returns the n×n 0/1 adjacency matrix of the graph.
// Row and column i correspond to the i-th node in insertion order (see
// [Graph.NodeIDs]), not to the node's ID value: IDs may have gaps after
// deletions while matrix indices stay dense.
//
// M[i][j] is 1 exactly when a directed edge node_i → node_j exists. The
// diagonal is always zero; [Node.Reflexive] has no effect here.
//
// Returns nil for an empty graph. Calling AdjacencyMatrix twice without
// mutating the graph yields equal matrices.
func (g *Graph) AdjacencyMatrix() *mat.Dense {
	n := len(g.nodes)
	if n == 0 {
		return nil
	}

	index := make(map[int]int, n)
	for i, node := range g.nodes {
		index[node.ID] = i
	}

	m := mat.NewDense(n, n, nil)
	for _, l := range g.links {
		i, j := index[l.Source], index[l.Target]
		if l.Right {
			m.Set(i, j, 1)
		}
		if l.Left {
			m.Set(j, i, 1)
		}
	}
	return m
}

// NodeIDs returns the node IDs in insertion order, matching the row and
// column order of [Graph.AdjacencyMatrix]. Returns an empty slice for an
// empty graph.
func (g *Graph) NodeIDs() []int {
	ids := make([]int, len(g.nodes))
	for i, n := range g.nodes {
		ids[i] = n.ID
	}
	return ids
}

// FromAdjacency builds a graph from a 0/1 adjacency literal. Row i of the
// input describes the outgoing edges of the i-th created node, so
// rows[i][j] == 1 yields a directed edge node_i → node_j. Node IDs are
// assigned 0..n-1 in row order.
//
// Returns ErrNotSquare if any row length differs from the row count,
// ErrSelfLink for a nonzero diagonal entry, or ErrNotBinary for entries
// other than 0 and 1.
func FromAdjacency(rows [][]float64) (*Graph, error) {
	g := New()
	n := len(rows)

	ids := make([]int, n)
	for i := range rows {
		ids[i] = g.AddNode().ID
	}

	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), n, ErrNotSquare)
		}
		for j, v := range row {
			switch v {
			case 0:
				// No edge.
			case 1:
				if i == j {
					return nil, fmt.Errorf("entry (%d,%d): %w", i, j, ErrSelfLink)
				}
				if _, err := g.AddLink(ids[i], ids[j]); err != nil {
					return nil, err
				}
			default:
				return nil, fmt.Errorf("entry (%d,%d) is %v: %w", i, j, v, ErrNotBinary)
			}
		}
	}
	return g, nil
}
