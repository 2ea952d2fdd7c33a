// Package pkg provides the core libraries for vertexsim graph similarity.
//
// # Overview
//
// Vertexsim scores the structural similarity of the nodes of two directed
// graphs using the coupled iteration of Blondel et al. The pkg directory is
// organized around that kernel:
//
//  1. [graph] - The directed graph model (nodes, canonical links, adjacency)
//  2. [similarity] - The scoring iteration over two adjacency matrices
//  3. [compare] - Orchestration: score, label, cache, report
//  4. [wordgraph] - Dictionary word graphs, the workload the tool grew out of
//
// # Architecture
//
// The typical data flow:
//
//	Graph sources (editor, files, catalog, dictionary, Neo4j)
//	         ↓
//	    [graph] package (canonical links → adjacency matrix)
//	         ↓
//	    [similarity] package (coupled iteration → score matrix)
//	         ↓
//	    [compare] package (labels, caching, reports)
//	         ↓
//	    Table/JSON/DOT/SVG/PNG output
//
// # Quick Start
//
// Build two graphs and score them:
//
//	import (
//	    "github.com/uspp-raketa/vertexsim/pkg/graph"
//	    "github.com/uspp-raketa/vertexsim/pkg/similarity"
//	)
//
//	// 1. Build a 3-node path: 0 → 1 → 2
//	a := graph.New()
//	n0, n1, n2 := a.AddNode(), a.AddNode(), a.AddNode()
//	a.AddLink(n0.ID, n1.ID)
//	a.AddLink(n1.ID, n2.ID)
//
//	// 2. Score it against itself
//	res, _ := similarity.Compute(a.AdjacencyMatrix(), a.AdjacencyMatrix(),
//	    similarity.DefaultOptions())
//
//	// 3. Each node is its own best match
//	fmt.Println(res.BestMatches()) // [0 1 2]
//
// # Main Packages
//
// [graph] - The directed graph the engine consumes. Nodes carry stable
// integer IDs; links are stored once per node pair with direction flags.
// [graph.Graph.AdjacencyMatrix] extracts the gonum matrix the engine needs.
//
// [similarity] - The scoring kernel. [similarity.Compute] is a pure function
// from two adjacency matrices to a score matrix with convergence metadata.
//
// [compare] - The comparison runner shared by the CLI and the HTTP API.
// Attaches node labels, caches assembled reports, tracks timing.
//
// [catalog] - Named example graph pairs used by the editor, the CLI and the
// API's example endpoints.
//
// [wordgraph] - Builds the OPTED dictionary word graph (words point at the
// words their definitions use) and extracts word neighbourhoods for
// comparison.
//
// [graphio] - Graph interchange: JSON documents and terse edge lists.
//
// [render/dot] - Graphviz rendering of a compared pair with best matches
// picked out by color.
//
// [source/neo4j] - Materializes a node neighbourhood stored in a Neo4j
// database as a [graph.Graph].
//
// [resultstore] - Persistence for comparison reports behind the HTTP API:
// in-memory for development, MongoDB for deployments.
//
// [cache] - Byte cache with file, Redis and null backends, shared by the
// dictionary fetcher and the comparison runner.
//
// [httputil] - Caching, retrying HTTP client used by the dictionary fetcher.
//
// [config] - TOML configuration file loading.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/similarity   # Specific package
//	go test -run Example       # Examples only
//
// [graph]: https://pkg.go.dev/github.com/uspp-raketa/vertexsim/pkg/graph
// [similarity]: https://pkg.go.dev/github.com/uspp-raketa/vertexsim/pkg/similarity
// [compare]: https://pkg.go.dev/github.com/uspp-raketa/vertexsim/pkg/compare
// [catalog]: https://pkg.go.dev/github.com/uspp-raketa/vertexsim/pkg/catalog
// [wordgraph]: https://pkg.go.dev/github.com/uspp-raketa/vertexsim/pkg/wordgraph
// [graphio]: https://pkg.go.dev/github.com/uspp-raketa/vertexsim/pkg/graphio
// [render/dot]: https://pkg.go.dev/github.com/uspp-raketa/vertexsim/pkg/render/dot
// [source/neo4j]: https://pkg.go.dev/github.com/uspp-raketa/vertexsim/pkg/source/neo4j
// [resultstore]: https://pkg.go.dev/github.com/uspp-raketa/vertexsim/pkg/resultstore
// [cache]: https://pkg.go.dev/github.com/uspp-raketa/vertexsim/pkg/cache
// [httputil]: https://pkg.go.dev/github.com/uspp-raketa/vertexsim/pkg/httputil
// [config]: https://pkg.go.dev/github.com/uspp-raketa/vertexsim/pkg/config
package pkg
