package catalog

import (
	"errors"
	"slices"
	"testing"

	"github.com/uspp-raketa/vertexsim/pkg/similarity"
)

func TestNames(t *testing.T) {
	want := []string{"cycle-self", "fork-chain", "hub-ring", "path-cycle", "path-self"}
	if got := Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestGet(t *testing.T) {
	p, err := Get("path-self")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.Name != "path-self" {
		t.Errorf("Name = %q, want %q", p.Name, "path-self")
	}
	if p.Description == "" {
		t.Error("Description is empty")
	}

	if _, err := Get("no-such-pair"); !errors.Is(err, ErrUnknownPair) {
		t.Errorf("Get error = %v, want ErrUnknownPair", err)
	}
}

func TestBuildReturnsFreshGraphs(t *testing.T) {
	p, err := Get("path-self")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	row1, _ := p.Build()
	row2, _ := p.Build()
	if err := row1.RemoveNode(0); err != nil {
		t.Fatalf("RemoveNode: %v", err)
	}
	if row1.NodeCount() == row2.NodeCount() {
		t.Error("mutating one build leaked into another")
	}
}

func TestPairShapes(t *testing.T) {
	tests := []struct {
		name               string
		rowNodes, rowEdges int
		colNodes, colEdges int
	}{
		{name: "path-self", rowNodes: 3, rowEdges: 2, colNodes: 3, colEdges: 2},
		{name: "cycle-self", rowNodes: 4, rowEdges: 4, colNodes: 4, colEdges: 4},
		{name: "path-cycle", rowNodes: 3, rowEdges: 2, colNodes: 4, colEdges: 4},
		{name: "fork-chain", rowNodes: 5, rowEdges: 4, colNodes: 5, colEdges: 4},
		{name: "hub-ring", rowNodes: 5, rowEdges: 4, colNodes: 5, colEdges: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Get(tt.name)
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			row, col := p.Build()
			if row.NodeCount() != tt.rowNodes || row.EdgeCount() != tt.rowEdges {
				t.Errorf("row graph = %d nodes %d edges, want %d nodes %d edges",
					row.NodeCount(), row.EdgeCount(), tt.rowNodes, tt.rowEdges)
			}
			if col.NodeCount() != tt.colNodes || col.EdgeCount() != tt.colEdges {
				t.Errorf("col graph = %d nodes %d edges, want %d nodes %d edges",
					col.NodeCount(), col.EdgeCount(), tt.colNodes, tt.colEdges)
			}
		})
	}
}

// Every catalog pair must run through the scoring iteration cleanly.
func TestPairsScore(t *testing.T) {
	for _, p := range All() {
		t.Run(p.Name, func(t *testing.T) {
			row, col := p.Build()
			res, err := similarity.Compute(row.AdjacencyMatrix(), col.AdjacencyMatrix(), similarity.DefaultOptions())
			if err != nil {
				t.Fatalf("Compute: %v", err)
			}
			if !res.Converged {
				t.Errorf("Converged = false after %d rounds", res.Rounds)
			}
			if got := len(res.BestMatches()); got != row.NodeCount() {
				t.Errorf("len(BestMatches()) = %d, want %d", got, row.NodeCount())
			}
		})
	}
}
