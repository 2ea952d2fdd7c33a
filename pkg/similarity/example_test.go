package similarity_test

import (
	"fmt"
	"log"

	"github.com/uspp-raketa/vertexsim/pkg/similarity"
	"gonum.org/v1/gonum/mat"
)

func ExampleCompute() {
	// The path 0 → 1 → 2 compared against itself. Each node has a distinct
	// neighbourhood, so every node is its own best match.
	path := mat.NewDense(3, 3, []float64{
		0, 1, 0,
		0, 0, 1,
		0, 0, 0,
	})

	res, err := similarity.Compute(path, path, similarity.DefaultOptions())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(res.Converged)
	fmt.Println(res.BestMatches())
	// Output:
	// true
	// [0 1 2]
}
