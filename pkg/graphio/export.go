package graphio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/uspp-raketa/vertexsim/pkg/graph"
)

type document struct {
	Nodes []nodeRecord `json:"nodes"`
	Links []linkRecord `json:"links"`
}

type nodeRecord struct {
	ID        int    `json:"id"`
	Reflexive bool   `json:"reflexive,omitempty"`
	Label     string `json:"label,omitempty"`
}

type linkRecord struct {
	Source int  `json:"source"`
	Target int  `json:"target"`
	Left   bool `json:"left"`
	Right  bool `json:"right"`
}

// WriteJSON encodes a graph as JSON and writes it to w. Labels, when not
// nil, must hold one entry per node in insertion order; empty entries are
// omitted from the output. The output can be re-imported with [ReadJSON]
// for round-trip processing.
func WriteJSON(g *graph.Graph, labels []string, w io.Writer) error {
	nodes := g.Nodes()
	if labels != nil && len(labels) != len(nodes) {
		return fmt.Errorf("got %d labels for %d nodes", len(labels), len(nodes))
	}

	out := document{
		Nodes: make([]nodeRecord, len(nodes)),
		Links: make([]linkRecord, 0, g.LinkCount()),
	}
	for i, n := range nodes {
		rec := nodeRecord{ID: n.ID, Reflexive: n.Reflexive}
		if labels != nil {
			rec.Label = labels[i]
		}
		out.Nodes[i] = rec
	}
	for _, l := range g.Links() {
		out.Links = append(out.Links, linkRecord{Source: l.Source, Target: l.Target, Left: l.Left, Right: l.Right})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a graph to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(g *graph.Graph, labels []string, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(g, labels, f)
}
