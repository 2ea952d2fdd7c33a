// Package graph provides the directed graph edited and compared by vertexsim.
//
// # Overview
//
// A [Graph] holds numbered nodes and the links between them. It is built for
// interactive editing: node IDs are assigned monotonically and never reused,
// so deleting and adding nodes cannot silently rebind references held by a
// UI, a stored report, or a label table.
//
// Links are stored in canonical form. Each unordered node pair has at most
// one [Link] record with Source < Target, and the actual edge directions
// live in the record's Left/Right flags. Recording a → b and later b → a
// therefore updates one record into a bidirectional link instead of creating
// a second one:
//
//	g := graph.New()
//	a, b := g.AddNode(), g.AddNode()
//	g.AddLink(a.ID, b.ID) // {Source: a, Target: b, Right: true}
//	g.AddLink(b.ID, a.ID) // same record, now Left and Right
//
// Self links are rejected with [ErrSelfLink]. A node that refers to itself
// is marked with [Graph.SetReflexive] instead; the flag is purely visual and
// never reaches the adjacency matrix.
//
// # Adjacency Matrices
//
// [Graph.AdjacencyMatrix] projects the graph onto a dense 0/1 matrix
// (gonum's [gonum.org/v1/gonum/mat.Dense]) for the similarity engine. Matrix
// indices follow node insertion order, not ID values, so the matrix stays
// dense even when IDs have gaps; [Graph.NodeIDs] maps indices back to IDs.
// [FromAdjacency] goes the other way and seeds a graph from a matrix
// literal, which is how the example catalog defines its fixtures.
//
// # Concurrency
//
// Graph instances are not safe for concurrent use. Callers must synchronize
// access if multiple goroutines read or modify the same graph.
package graph
