package wordgraph

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/uspp-raketa/vertexsim/pkg/graph"
)

// ErrUnknownWord is returned by [Dictionary.Neighbourhood] for words the
// dictionary does not define.
var ErrUnknownWord = errors.New("word not in dictionary")

// DefaultMaxInDegree is the neighbourhood indegree cap used by the CLI and
// the API.
const DefaultMaxInDegree = 1000

// NeighbourhoodOptions configures [Dictionary.Neighbourhood].
type NeighbourhoodOptions struct {
	// MaxInDegree drops neighbours whose full-graph indegree reaches the
	// cap. Filler words like "one" or "which" appear in thousands of
	// definitions and drown the structural signal around the centre.
	// Zero disables the cap. The centre word is never dropped.
	MaxInDegree int
}

// Neighbourhood extracts the subgraph around a word: the word itself plus
// every headword its definitions use and every headword that uses it, with
// all definition edges among those words. The returned labels hold the
// member words in node order, centre first and the rest alphabetical, so
// label positions line up with adjacency matrix indices.
func (d *Dictionary) Neighbourhood(word string, opts NeighbourhoodOptions) (*graph.Graph, []string, error) {
	word = strings.ToLower(strings.TrimSpace(word))
	if !d.Contains(word) {
		return nil, nil, fmt.Errorf("%q: %w", word, ErrUnknownWord)
	}

	members := make(map[string]bool)
	for v := range d.out[word] {
		members[v] = true
	}
	for v := range d.in[word] {
		members[v] = true
	}
	if opts.MaxInDegree > 0 {
		for v := range members {
			if d.InDegree(v) >= opts.MaxInDegree {
				delete(members, v)
			}
		}
	}
	delete(members, word)

	words := make([]string, 0, len(members)+1)
	words = append(words, word)
	rest := make([]string, 0, len(members))
	for v := range members {
		rest = append(rest, v)
	}
	sort.Strings(rest)
	words = append(words, rest...)

	g := graph.New()
	index := make(map[string]int, len(words))
	for _, w := range words {
		index[w] = g.AddNode().ID
	}
	for _, u := range words {
		for v := range d.out[u] {
			to, ok := index[v]
			if !ok {
				continue
			}
			if _, err := g.AddLink(index[u], to); err != nil {
				return nil, nil, fmt.Errorf("edge %s -> %s: %w", u, v, err)
			}
		}
		if d.reflexive[u] {
			if err := g.SetReflexive(index[u], true); err != nil {
				return nil, nil, err
			}
		}
	}
	return g, words, nil
}
