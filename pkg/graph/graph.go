package graph

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrNodeNotFound is returned by [Graph.RemoveNode], [Graph.AddLink],
	// [Graph.RemoveLink] and [Graph.SetReflexive] when a referenced node ID
	// does not exist in the graph.
	ErrNodeNotFound = errors.New("node not found")

	// ErrLinkNotFound is returned by [Graph.RemoveLink] when no link exists
	// between the given pair of nodes.
	ErrLinkNotFound = errors.New("link not found")

	// ErrSelfLink is returned by [Graph.AddLink] when both endpoints are the
	// same node. Self references are modeled with [Node.Reflexive] instead of
	// links, so the adjacency matrix diagonal stays zero.
	ErrSelfLink = errors.New("self links are not allowed")

	// ErrDuplicateNodeID is returned by [Restore] when two nodes carry the
	// same ID. Node IDs must be unique.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrInvalidLink is returned by [Restore] when a link record violates the
	// canonical form: Source must be smaller than Target, both endpoints must
	// exist, at least one direction flag must be set, and at most one record
	// may exist per node pair.
	ErrInvalidLink = errors.New("invalid link record")
)

// Node is a vertex in the graph. IDs are assigned by [Graph.AddNode],
// increase monotonically from zero, and are never reused after deletion,
// so an ID stays a stable handle for the lifetime of the graph.
//
// Reflexive marks a node as self-referential for display purposes only.
// It does not create an edge: the adjacency matrix diagonal is always zero
// regardless of this flag.
type Node struct {
	ID        int
	Reflexive bool
}

// Link is a stored connection record between two nodes. Records are kept in
// canonical form with Source < Target; the actual edge directions are encoded
// in the two flags:
//
//   - Right: directed edge Source → Target
//   - Left: directed edge Target → Source
//
// Both flags set means the pair is connected in both directions. A stored
// record always has at least one flag set, and there is at most one record
// per unordered node pair.
type Link struct {
	Source int
	Target int
	Left   bool
	Right  bool
}

// pair returns the canonical lookup key for the link's node pair.
func (l Link) pair() [2]int { return [2]int{l.Source, l.Target} }

// Connects reports whether the link touches the given node.
func (l Link) Connects(id int) bool { return l.Source == id || l.Target == id }

// HasEdge reports whether the link encodes a directed edge from → to.
func (l Link) HasEdge(from, to int) bool {
	switch {
	case l.Source == from && l.Target == to:
		return l.Right
	case l.Source == to && l.Target == from:
		return l.Left
	default:
		return false
	}
}

// Graph is a small directed graph designed for interactive editing.
// Nodes keep their insertion order (deletions preserve the relative order of
// the survivors), which also defines the row and column order of the
// adjacency matrix. Link records are canonical: one record per node pair,
// with per-direction flags. See [Graph.AddLink] for how directed edges fold
// into records.
//
// The zero value is not usable - use [New] to create a graph.
// Graph is not safe for concurrent use without external synchronization.
type Graph struct {
	nodes  []*Node
	byID   map[int]*Node
	links  []*Link
	byPair map[[2]int]*Link
	nextID int
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		byID:   make(map[int]*Node),
		byPair: make(map[[2]int]*Link),
	}
}

// AddNode creates a node with the next unused ID and returns it.
// The returned pointer refers to the stored node; only the Reflexive field
// should be modified through it (prefer [Graph.SetReflexive]).
func (g *Graph) AddNode() *Node {
	n := &Node{ID: g.nextID}
	g.nextID++
	g.nodes = append(g.nodes, n)
	g.byID[n.ID] = n
	return n
}

// RemoveNode deletes the node and every link record touching it.
// Returns ErrNodeNotFound if the node does not exist. The ID is not reused
// by later AddNode calls.
func (g *Graph) RemoveNode(id int) error {
	if _, ok := g.byID[id]; !ok {
		return ErrNodeNotFound
	}
	delete(g.byID, id)
	g.nodes = slices.DeleteFunc(g.nodes, func(n *Node) bool { return n.ID == id })
	g.links = slices.DeleteFunc(g.links, func(l *Link) bool {
		if !l.Connects(id) {
			return false
		}
		delete(g.byPair, l.pair())
		return true
	})
	return nil
}

// AddLink records a directed edge from → to and returns the resulting record.
//
// The pair is stored canonically (Source = min, Target = max) with the edge
// direction folded into the Left/Right flags. If a record for the pair
// already exists, the matching direction flag is set on it; no second record
// is ever created, so linking a → b and then b → a yields one bidirectional
// record.
//
// Returns ErrNodeNotFound if either endpoint does not exist, or ErrSelfLink
// if from == to (mark the node [Node.Reflexive] instead).
func (g *Graph) AddLink(from, to int) (*Link, error) {
	if from == to {
		return nil, ErrSelfLink
	}
	if _, ok := g.byID[from]; !ok {
		return nil, ErrNodeNotFound
	}
	if _, ok := g.byID[to]; !ok {
		return nil, ErrNodeNotFound
	}

	source, target := from, to
	forward := from < to
	if !forward {
		source, target = to, from
	}

	if l, ok := g.byPair[[2]int{source, target}]; ok {
		if forward {
			l.Right = true
		} else {
			l.Left = true
		}
		return l, nil
	}

	l := &Link{Source: source, Target: target, Right: forward, Left: !forward}
	g.links = append(g.links, l)
	g.byPair[l.pair()] = l
	return l, nil
}

// RemoveLink deletes the link record for the unordered pair {a, b},
// removing both directions at once. Returns ErrNodeNotFound if either node
// does not exist, or ErrLinkNotFound if the pair is not linked.
func (g *Graph) RemoveLink(a, b int) error {
	if _, ok := g.byID[a]; !ok {
		return ErrNodeNotFound
	}
	if _, ok := g.byID[b]; !ok {
		return ErrNodeNotFound
	}
	key := [2]int{min(a, b), max(a, b)}
	l, ok := g.byPair[key]
	if !ok {
		return ErrLinkNotFound
	}
	delete(g.byPair, key)
	g.links = slices.DeleteFunc(g.links, func(x *Link) bool { return x == l })
	return nil
}

// SetReflexive sets the node's display-only self-reference flag.
// Returns ErrNodeNotFound if the node does not exist.
func (g *Graph) SetReflexive(id int, reflexive bool) error {
	n, ok := g.byID[id]
	if !ok {
		return ErrNodeNotFound
	}
	n.Reflexive = reflexive
	return nil
}

// Node returns the node with the given ID and true, or nil and false if it
// does not exist.
func (g *Graph) Node(id int) (*Node, bool) {
	n, ok := g.byID[id]
	return n, ok
}

// Nodes returns the nodes in insertion order. The slice is a copy but the
// pointers refer to the stored nodes.
func (g *Graph) Nodes() []*Node { return slices.Clone(g.nodes) }

// Links returns copies of all link records in insertion order.
func (g *Graph) Links() []Link {
	links := make([]Link, len(g.links))
	for i, l := range g.links {
		links[i] = *l
	}
	return links
}

// Link returns the stored record for the unordered pair {a, b} and true,
// or the zero Link and false if the pair is not linked.
func (g *Graph) Link(a, b int) (Link, bool) {
	l, ok := g.byPair[[2]int{min(a, b), max(a, b)}]
	if !ok {
		return Link{}, false
	}
	return *l, true
}

// HasEdge reports whether a directed edge from → to exists.
func (g *Graph) HasEdge(from, to int) bool {
	l, ok := g.Link(from, to)
	return ok && l.HasEdge(from, to)
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// LinkCount returns the number of stored link records. A bidirectional pair
// counts once; see [Graph.EdgeCount] for the directed edge total.
func (g *Graph) LinkCount() int { return len(g.links) }

// EdgeCount returns the number of directed edges, counting a bidirectional
// record as two.
func (g *Graph) EdgeCount() int {
	count := 0
	for _, l := range g.links {
		if l.Right {
			count++
		}
		if l.Left {
			count++
		}
	}
	return count
}

// OutNeighbors returns the IDs reachable from the node by a directed edge,
// in link insertion order. Returns nil if the node has no outgoing edges or
// does not exist.
func (g *Graph) OutNeighbors(id int) []int {
	var out []int
	for _, l := range g.links {
		if l.Source == id && l.Right {
			out = append(out, l.Target)
		}
		if l.Target == id && l.Left {
			out = append(out, l.Source)
		}
	}
	return out
}

// InNeighbors returns the IDs with a directed edge into the node, in link
// insertion order. Returns nil if the node has no incoming edges or does
// not exist.
func (g *Graph) InNeighbors(id int) []int {
	var in []int
	for _, l := range g.links {
		if l.Target == id && l.Right {
			in = append(in, l.Source)
		}
		if l.Source == id && l.Left {
			in = append(in, l.Target)
		}
	}
	return in
}

// Clone returns a deep copy of the graph. The copy shares no state with the
// original; future IDs continue from the same counter.
func (g *Graph) Clone() *Graph {
	c := New()
	c.nextID = g.nextID
	c.nodes = make([]*Node, len(g.nodes))
	for i, n := range g.nodes {
		cp := *n
		c.nodes[i] = &cp
		c.byID[cp.ID] = &cp
	}
	c.links = make([]*Link, len(g.links))
	for i, l := range g.links {
		cp := *l
		c.links[i] = &cp
		c.byPair[cp.pair()] = &cp
	}
	return c
}

// Restore rebuilds a graph from previously exported nodes and links, for
// example when loading a serialized graph. Node order becomes the insertion
// order, and the ID counter resumes after the highest restored ID so later
// [Graph.AddNode] calls never reuse an ID.
//
// Links must already be canonical (see [Link]). Returns ErrDuplicateNodeID
// for repeated node IDs, ErrSelfLink for a link with equal endpoints, or
// ErrInvalidLink for records that are out of canonical order, reference
// missing nodes, carry no direction flag, or duplicate a pair. Errors are
// wrapped with the offending record for context.
func Restore(nodes []Node, links []Link) (*Graph, error) {
	g := New()
	for _, n := range nodes {
		if n.ID < 0 {
			return nil, fmt.Errorf("node %d: negative ID", n.ID)
		}
		if _, exists := g.byID[n.ID]; exists {
			return nil, fmt.Errorf("node %d: %w", n.ID, ErrDuplicateNodeID)
		}
		cp := n
		g.nodes = append(g.nodes, &cp)
		g.byID[cp.ID] = &cp
		if cp.ID >= g.nextID {
			g.nextID = cp.ID + 1
		}
	}
	for _, l := range links {
		if l.Source == l.Target {
			return nil, fmt.Errorf("link %d-%d: %w", l.Source, l.Target, ErrSelfLink)
		}
		if l.Source > l.Target || (!l.Left && !l.Right) {
			return nil, fmt.Errorf("link %d-%d: %w", l.Source, l.Target, ErrInvalidLink)
		}
		if _, ok := g.byID[l.Source]; !ok {
			return nil, fmt.Errorf("link %d-%d: %w", l.Source, l.Target, ErrInvalidLink)
		}
		if _, ok := g.byID[l.Target]; !ok {
			return nil, fmt.Errorf("link %d-%d: %w", l.Source, l.Target, ErrInvalidLink)
		}
		if _, exists := g.byPair[l.pair()]; exists {
			return nil, fmt.Errorf("link %d-%d: %w", l.Source, l.Target, ErrInvalidLink)
		}
		cp := l
		g.links = append(g.links, &cp)
		g.byPair[cp.pair()] = &cp
	}
	return g, nil
}
