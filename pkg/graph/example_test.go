package graph_test

import (
	"fmt"

	"github.com/uspp-raketa/vertexsim/pkg/graph"
	"gonum.org/v1/gonum/mat"
)

func ExampleGraph_AddLink() {
	g := graph.New()
	a := g.AddNode()
	b := g.AddNode()

	g.AddLink(a.ID, b.ID)
	g.AddLink(b.ID, a.ID)

	l := g.Links()[0]
	fmt.Printf("%d-%d left=%v right=%v links=%d\n", l.Source, l.Target, l.Left, l.Right, g.LinkCount())
	// Output:
	// 0-1 left=true right=true links=1
}

func ExampleGraph_AdjacencyMatrix() {
	g, _ := graph.FromAdjacency([][]float64{
		{0, 1, 0},
		{0, 0, 1},
		{0, 0, 0},
	})

	fmt.Println(mat.Formatted(g.AdjacencyMatrix()))
	// Output:
	// ⎡0  1  0⎤
	// ⎢0  0  1⎥
	// ⎣0  0  0⎦
}
