// Package catalog ships a small set of named graph pairs with well
// understood similarity structure. They seed the interactive editor, back
// the HTTP API's example listing, and double as documentation: each pair
// demonstrates one behavior of the scoring iteration.
package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/uspp-raketa/vertexsim/pkg/graph"
)

// ErrUnknownPair is returned by [Get] for names not present in the catalog.
var ErrUnknownPair = errors.New("unknown example pair")

// Pair is a named, ready-made pair of directed graphs.
type Pair struct {
	// Name identifies the pair in CLI arguments and API paths.
	Name string

	// Description is a one-line summary of what the pair demonstrates.
	Description string

	build func() (*graph.Graph, *graph.Graph)
}

// Build constructs fresh copies of the pair's graphs. Every call returns
// independent instances, so callers may mutate them freely.
func (p Pair) Build() (row, col *graph.Graph) {
	return p.build()
}

var pairs = map[string]Pair{
	"path-self": {
		Name:        "path-self",
		Description: "a 3-node path against itself; every node is its own best match",
		build: func() (*graph.Graph, *graph.Graph) {
			return path(3), path(3)
		},
	},
	"cycle-self": {
		Name:        "cycle-self",
		Description: "a 4-node cycle against itself; symmetry makes all scores equal",
		build: func() (*graph.Graph, *graph.Graph) {
			return cycle(4), cycle(4)
		},
	},
	"path-cycle": {
		Name:        "path-cycle",
		Description: "a 3-node path against a 4-node cycle",
		build: func() (*graph.Graph, *graph.Graph) {
			return path(3), cycle(4)
		},
	},
	"fork-chain": {
		Name:        "fork-chain",
		Description: "a branching tree against a chain of the same size",
		build: func() (*graph.Graph, *graph.Graph) {
			return fork(), path(5)
		},
	},
	"hub-ring": {
		Name:        "hub-ring",
		Description: "a hub broadcasting to four spokes against a 5-node ring",
		build: func() (*graph.Graph, *graph.Graph) {
			return hub(5), cycle(5)
		},
	},
}

// Names returns the catalog's pair names in sorted order.
func Names() []string {
	names := make([]string, 0, len(pairs))
	for name := range pairs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get looks up a pair by name. Returns ErrUnknownPair for names the catalog
// does not contain.
func Get(name string) (Pair, error) {
	p, ok := pairs[name]
	if !ok {
		return Pair{}, fmt.Errorf("%q: %w", name, ErrUnknownPair)
	}
	return p, nil
}

// All returns every pair in the catalog, sorted by name.
func All() []Pair {
	all := make([]Pair, 0, len(pairs))
	for _, name := range Names() {
		all = append(all, pairs[name])
	}
	return all
}

// path builds 0 → 1 → … → n-1.
func path(n int) *graph.Graph {
	g := graph.New()
	ids := addNodes(g, n)
	for i := 0; i < n-1; i++ {
		mustLink(g, ids[i], ids[i+1])
	}
	return g
}

// cycle builds 0 → 1 → … → n-1 → 0.
func cycle(n int) *graph.Graph {
	g := path(n)
	ids := g.NodeIDs()
	mustLink(g, ids[n-1], ids[0])
	return g
}

// fork builds a binary out-tree of depth two: 0 → {1, 2}, 1 → 3, 2 → 4.
func fork() *graph.Graph {
	g := graph.New()
	ids := addNodes(g, 5)
	mustLink(g, ids[0], ids[1])
	mustLink(g, ids[0], ids[2])
	mustLink(g, ids[1], ids[3])
	mustLink(g, ids[2], ids[4])
	return g
}

// hub builds an out-star: node 0 with edges to each of 1 … n-1.
func hub(n int) *graph.Graph {
	g := graph.New()
	ids := addNodes(g, n)
	for i := 1; i < n; i++ {
		mustLink(g, ids[0], ids[i])
	}
	return g
}

func addNodes(g *graph.Graph, n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = g.AddNode().ID
	}
	return ids
}

func mustLink(g *graph.Graph, from, to int) {
	if _, err := g.AddLink(from, to); err != nil {
		panic(fmt.Sprintf("catalog: building %d -> %d: %v", from, to, err))
	}
}
