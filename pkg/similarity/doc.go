// Package similarity scores how alike the vertices of two directed graphs
// are, using the coupled power iteration of Blondel, Gajardo, Heymans,
// Senellart and Van Dooren ("A measure of similarity between graph
// vertices", SIAM Review 46(4), 2004).
//
// # Method
//
// Two nodes are similar when their neighbourhoods are similar: node i of
// one graph resembles node k of the other to the degree that i's
// out-neighbours resemble k's out-neighbours and i's in-neighbours resemble
// k's in-neighbours. [Compute] turns this circular definition into a fixed
// point computation on the m×n score matrix Z:
//
//	Z ← a·Z·bᵀ + aᵀ·Z·b, then Z ← Z / ‖Z‖F
//
// where a and b are the adjacency matrices and ‖·‖F is the Frobenius norm.
// The update runs twice per round because the raw sequence can oscillate
// between two accumulation points; the even subsequence converges, so
// convergence is measured round over round.
//
// # Usage
//
// The package operates on plain gonum matrices and carries no state, so it
// composes with any graph representation that can produce an adjacency
// matrix:
//
//	res, err := similarity.Compute(a.AdjacencyMatrix(), b.AdjacencyMatrix(), similarity.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	for i, k := range res.BestMatches() {
//	    fmt.Printf("row node %d best matches column node %d\n", i, k)
//	}
//
// Scores are relative, not absolute: they are normalized jointly, so they
// rank candidate matches within one comparison but are not comparable
// across comparisons. Consumers that display scores conventionally round
// them to three decimals; the stored values keep full precision.
package similarity
