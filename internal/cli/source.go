package cli

import (
	"fmt"
	"strings"

	"github.com/uspp-raketa/vertexsim/pkg/catalog"
	"github.com/uspp-raketa/vertexsim/pkg/graph"
	"github.com/uspp-raketa/vertexsim/pkg/graphio"
)

// graphSide selects which half of a catalog pair a source argument refers
// to.
type graphSide int

const (
	sideRow graphSide = iota
	sideCol
)

// resolveGraph loads the graph named by a CLI source argument. Two forms
// exist:
//
//   - "example:NAME" pulls one side of a catalog pair; the row side for
//     the first positional argument, the column side for the second.
//   - anything else is a file path, loaded by extension (.json document or
//     edge-list text).
//
// The returned labels may be nil; file documents without labels and all
// catalog graphs are identified by node IDs alone.
func resolveGraph(arg string, side graphSide) (*graph.Graph, []string, error) {
	if name, ok := strings.CutPrefix(arg, "example:"); ok {
		p, err := catalog.Get(name)
		if err != nil {
			return nil, nil, err
		}
		row, col := p.Build()
		if side == sideCol {
			return col, nil, nil
		}
		return row, nil, nil
	}

	g, labels, err := graphio.Load(arg)
	if err != nil {
		return nil, nil, fmt.Errorf("load graph %s: %w", arg, err)
	}
	return g, labels, nil
}
