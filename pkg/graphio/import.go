package graphio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/uspp-raketa/vertexsim/pkg/graph"
)

// ReadJSON decodes a JSON graph from r.
//
// The input must be a JSON object with "nodes" and "links" arrays as
// described in the package documentation. ReadJSON returns an error if:
//
//   - The JSON is malformed
//   - A node id is negative or duplicated
//   - A link is not in canonical form, carries no direction flag, or
//     references an unknown node id
//
// Errors are wrapped with context describing the offending record. Use
// errors.Is to check for the specific graph validation errors.
//
// The second return value holds the node labels in insertion order, or nil
// when the input carries no labels. The returned graph is independent of r
// and can be modified safely. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*graph.Graph, []string, error) {
	var data document
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, nil, fmt.Errorf("decode: %w", err)
	}

	nodes := make([]graph.Node, len(data.Nodes))
	labels := make([]string, len(data.Nodes))
	labeled := false
	for i, n := range data.Nodes {
		nodes[i] = graph.Node{ID: n.ID, Reflexive: n.Reflexive}
		labels[i] = n.Label
		if n.Label != "" {
			labeled = true
		}
	}
	links := make([]graph.Link, len(data.Links))
	for i, l := range data.Links {
		links[i] = graph.Link{Source: l.Source, Target: l.Target, Left: l.Left, Right: l.Right}
	}

	g, err := graph.Restore(nodes, links)
	if err != nil {
		return nil, nil, err
	}
	if !labeled {
		return g, nil, nil
	}
	return g, labels, nil
}

// ImportJSON reads a JSON file at path and returns the decoded graph and
// its labels. The error wraps the underlying cause with the file path for
// context; validation failures are the same as those of [ReadJSON].
func ImportJSON(path string) (*graph.Graph, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// Load reads a graph from path, picking the format by extension: .json
// files go through [ImportJSON], everything else is parsed as an edge list.
// Edge lists carry no labels.
func Load(path string) (*graph.Graph, []string, error) {
	if filepath.Ext(path) == ".json" {
		return ImportJSON(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	g, err := ReadEdgeList(f)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil, nil
}
