// Package graphio provides JSON and edge-list serialization for directed
// graphs.
//
// # Overview
//
// This package moves graphs between the in-memory representation and files,
// so that the editor, the CLI and the HTTP API can share inputs. The JSON
// format round-trips every attribute of a graph; the edge-list format is a
// terser, hand-editable alternative for quick experiments.
//
// # JSON Format
//
// The format has two required top-level arrays:
//
//	{
//	  "nodes": [
//	    {"id": 0},
//	    {"id": 1, "reflexive": true},
//	    {"id": 2, "label": "word"}
//	  ],
//	  "links": [
//	    {"source": 0, "target": 1, "left": false, "right": true},
//	    {"source": 1, "target": 2, "left": true, "right": true}
//	  ]
//	}
//
// Node ids are non-negative integers and must be unique. Links are stored
// in canonical form: source is always the smaller node id, and the left and
// right flags carry the direction (right means source → target). A link
// must have at least one flag set. The optional label field attaches a
// display name to a node; labels are carried alongside the graph rather
// than inside it.
//
// # Edge-List Format
//
// One statement per line. Blank lines and lines starting with # are
// skipped:
//
//	# three nodes, two directed edges and one bidirectional pair
//	0 -> 1
//	1 <-> 2
//	7
//
// A bare id declares an isolated node. The arrows ->, <- and <-> connect
// two ids; a self-arrow such as 3 -> 3 marks the node reflexive instead of
// creating a link. Nodes are created in order of first mention, which fixes
// their adjacency matrix positions.
//
// # Import and Export
//
// Use [Load] to read either format from a file path, dispatched on the
// .json extension, or [ReadJSON] and [ReadEdgeList] to read from any
// io.Reader:
//
//	g, labels, err := graphio.Load("lexicon.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Use [ExportJSON] to write a graph to a file, or [WriteJSON] to write to
// any io.Writer. Exports preserve node ids exactly, so a re-import restores
// the same graph, including the id counter position.
package graphio
