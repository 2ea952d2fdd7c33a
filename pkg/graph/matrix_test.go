package graph

import (
	"errors"
	"slices"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestAdjacencyMatrix(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Graph
		want  []float64 // row-major, nil for empty graph
		dim   int
	}{
		{
			name:  "Empty",
			build: New,
		},
		{
			name: "SingleEdge",
			build: func() *Graph {
				g := New()
				g.AddNode()
				g.AddNode()
				g.AddLink(0, 1)
				return g
			},
			dim:  2,
			want: []float64{0, 1, 0, 0},
		},
		{
			name: "Bidirectional",
			build: func() *Graph {
				g := New()
				g.AddNode()
				g.AddNode()
				g.AddLink(0, 1)
				g.AddLink(1, 0)
				return g
			},
			dim:  2,
			want: []float64{0, 1, 1, 0},
		},
		{
			name: "BackwardLinkOnly",
			build: func() *Graph {
				g := New()
				g.AddNode()
				g.AddNode()
				g.AddLink(1, 0)
				return g
			},
			dim:  2,
			want: []float64{0, 0, 1, 0},
		},
		{
			name: "ReflexiveKeepsZeroDiagonal",
			build: func() *Graph {
				g := New()
				g.AddNode()
				g.SetReflexive(0, true)
				return g
			},
			dim:  1,
			want: []float64{0},
		},
		{
			name: "IndicesFollowOrderNotIDs",
			build: func() *Graph {
				// IDs end up 0, 2, 3 with 0 -> 2 and 3 -> 2; row order
				// is insertion order, so row 1 is node 2 and row 2 is
				// node 3 despite the ID gap.
				g := New()
				g.AddNode() // 0
				g.AddNode() // 1
				g.AddNode() // 2
				g.RemoveNode(1)
				g.AddNode() // 3
				g.AddLink(0, 2)
				g.AddLink(3, 2)
				return g
			},
			dim:  3,
			want: []float64{0, 1, 0, 0, 0, 0, 0, 1, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := tt.build()
			m := g.AdjacencyMatrix()

			if tt.want == nil {
				if m != nil {
					t.Fatalf("matrix = %v, want nil", m)
				}
				return
			}

			want := mat.NewDense(tt.dim, tt.dim, tt.want)
			if !mat.Equal(m, want) {
				t.Errorf("matrix = %v, want %v", mat.Formatted(m), mat.Formatted(want))
			}

			// Rebuilding without mutation yields the same matrix.
			if again := g.AdjacencyMatrix(); !mat.Equal(m, again) {
				t.Error("second AdjacencyMatrix call differs")
			}
		})
	}
}

func TestNodeIDsMatchMatrixOrder(t *testing.T) {
	g := New()
	g.AddNode() // 0
	g.AddNode() // 1
	g.AddNode() // 2
	g.RemoveNode(0)
	g.AddNode() // 3

	if got := g.NodeIDs(); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("NodeIDs = %v, want [1 2 3]", got)
	}
}

func TestFromAdjacency(t *testing.T) {
	tests := []struct {
		name    string
		rows    [][]float64
		wantErr error
	}{
		{
			name: "Path",
			rows: [][]float64{
				{0, 1, 0},
				{0, 0, 1},
				{0, 0, 0},
			},
		},
		{
			name: "Bidirectional",
			rows: [][]float64{
				{0, 1},
				{1, 0},
			},
		},
		{
			name: "Empty",
			rows: nil,
		},
		{
			name: "Ragged",
			rows: [][]float64{
				{0, 1},
				{0},
			},
			wantErr: ErrNotSquare,
		},
		{
			name: "Diagonal",
			rows: [][]float64{
				{1},
			},
			wantErr: ErrSelfLink,
		},
		{
			name: "NonBinary",
			rows: [][]float64{
				{0, 0.5},
				{0, 0},
			},
			wantErr: ErrNotBinary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := FromAdjacency(tt.rows)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromAdjacency: %v", err)
			}

			if got := g.NodeCount(); got != len(tt.rows) {
				t.Errorf("NodeCount = %d, want %d", got, len(tt.rows))
			}
			if len(tt.rows) == 0 {
				if g.AdjacencyMatrix() != nil {
					t.Error("empty graph produced a matrix")
				}
				return
			}

			// Round trip: the rebuilt matrix equals the literal.
			flat := make([]float64, 0, len(tt.rows)*len(tt.rows))
			for _, row := range tt.rows {
				flat = append(flat, row...)
			}
			want := mat.NewDense(len(tt.rows), len(tt.rows), flat)
			if got := g.AdjacencyMatrix(); !mat.Equal(got, want) {
				t.Errorf("matrix = %v, want %v", mat.Formatted(got), mat.Formatted(want))
			}
		})
	}
}
