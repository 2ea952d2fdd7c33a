package similarity

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// ErrNotSquare is returned by [Compute] when an adjacency matrix has more
// rows than columns or vice versa. Adjacency matrices of directed graphs are
// always square.
var ErrNotSquare = errors.New("adjacency matrix is not square")

const (
	// DefaultTolerance is the convergence threshold on the Frobenius norm of
	// the score change between rounds.
	DefaultTolerance = 1e-5

	// DefaultMaxRounds caps the iteration count so pathological inputs
	// terminate instead of spinning. Typical graphs converge in well under
	// a hundred rounds.
	DefaultMaxRounds = 1000
)

// Options configures the similarity iteration.
type Options struct {
	// Tolerance is the convergence threshold. The iteration stops once the
	// Frobenius norm of the round-to-round score change falls below it.
	// Zero or negative values fall back to DefaultTolerance.
	Tolerance float64

	// MaxRounds caps the number of rounds. When the cap is reached the
	// current scores are returned with Converged set to false; this is not
	// an error. Zero or negative values fall back to DefaultMaxRounds.
	MaxRounds int
}

// DefaultOptions returns the production defaults.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance, MaxRounds: DefaultMaxRounds}
}

func (o *Options) setDefaults() {
	if o.Tolerance <= 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.MaxRounds <= 0 {
		o.MaxRounds = DefaultMaxRounds
	}
}

// Result holds the outcome of a similarity computation between an m-node
// row graph and an n-node column graph.
type Result struct {
	// M and N are the node counts of the row and column graphs.
	M, N int

	// Scores is the m×n similarity matrix. Scores.At(i, k) measures how
	// similar row-graph node i is to column-graph node k. Nil when either
	// graph is empty. Values are non-negative and, unless both graphs are
	// edgeless, the matrix has unit Frobenius norm.
	Scores *mat.Dense

	// Rounds is the number of completed rounds.
	Rounds int

	// Converged reports whether the score change dropped below the
	// tolerance before MaxRounds was reached.
	Converged bool
}

// BestMatches returns, for each row-graph node, the column-graph node with
// the highest similarity score. Ties resolve to the lowest column index.
// Returns nil when either graph is empty.
func (r *Result) BestMatches() []int {
	if r.Scores == nil || r.M == 0 || r.N == 0 {
		return nil
	}
	best := make([]int, r.M)
	for i := 0; i < r.M; i++ {
		col, val := 0, r.Scores.At(i, 0)
		for k := 1; k < r.N; k++ {
			if v := r.Scores.At(i, k); v > val {
				col, val = k, v
			}
		}
		best[i] = col
	}
	return best
}

// Compute runs the coupled node similarity iteration of Blondel et al.
// between two directed graphs given as square 0/1 adjacency matrices:
// a (m×m) for the row graph and b (n×n) for the column graph. A nil matrix
// stands for an empty graph.
//
// Starting from an all-ones m×n score matrix Z, each round applies the
// update
//
//	Z ← a·Z·bᵀ + aᵀ·Z·b
//
// twice, normalizing Z to unit Frobenius norm after every application.
// The first term accumulates evidence over out-neighbour pairs, the second
// over in-neighbour pairs, and the doubled update keeps the even iterate
// subsequence whose convergence the method guarantees. The iteration stops
// when the round-to-round change drops below Options.Tolerance.
//
// Compute is a pure function: it never modifies a or b, holds no state
// between calls, and always terminates. Degenerate inputs short-circuit:
//
//   - Either graph empty: an empty Result with nil Scores, no iteration.
//   - Both graphs edgeless: the update annihilates every score, so an
//     all-zero matrix is returned immediately instead of dividing by the
//     vanished norm.
//
// Exceeding Options.MaxRounds returns the current scores with Converged set
// to false. The only error condition is a non-square input, reported as
// ErrNotSquare.
func Compute(a, b *mat.Dense, opts Options) (*Result, error) {
	opts.setDefaults()

	m, err := order(a)
	if err != nil {
		return nil, err
	}
	n, err := order(b)
	if err != nil {
		return nil, err
	}

	if m == 0 || n == 0 {
		return &Result{M: m, N: n, Converged: true}, nil
	}

	z := ones(m, n)
	prev := mat.NewDense(m, n, nil)

	// Temporaries for the two product chains, reused across rounds.
	var outTerm, inTerm mat.Dense

	for round := 1; ; round++ {
		prev.Copy(z)

		for step := 0; step < 2; step++ {
			outTerm.Product(a, z, b.T())
			inTerm.Product(a.T(), z, b)
			z.Add(&outTerm, &inTerm)

			norm := mat.Norm(z, 2)
			if norm == 0 {
				// No edges on either side: scores are identically zero.
				return &Result{M: m, N: n, Scores: z, Rounds: round, Converged: true}, nil
			}
			z.Scale(1/norm, z)
		}

		prev.Sub(z, prev)
		if mat.Norm(prev, 2) < opts.Tolerance {
			return &Result{M: m, N: n, Scores: z, Rounds: round, Converged: true}, nil
		}
		if round >= opts.MaxRounds {
			return &Result{M: m, N: n, Scores: z, Rounds: round, Converged: false}, nil
		}
	}
}

// order returns the node count encoded by an adjacency matrix.
// Nil stands for an empty graph.
func order(m *mat.Dense) (int, error) {
	if m == nil {
		return 0, nil
	}
	r, c := m.Dims()
	if r != c {
		return 0, ErrNotSquare
	}
	return r, nil
}

func ones(m, n int) *mat.Dense {
	data := make([]float64, m*n)
	for i := range data {
		data[i] = 1
	}
	return mat.NewDense(m, n, data)
}
