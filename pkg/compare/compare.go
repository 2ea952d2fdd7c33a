// Package compare runs similarity comparisons end to end: it scores two
// graphs, attaches labels and statistics, and caches the assembled report.
// Both the CLI and the HTTP API drive comparisons through [Runner] so the
// caching and reporting logic lives in one place.
package compare

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/uspp-raketa/vertexsim/pkg/cache"
	"github.com/uspp-raketa/vertexsim/pkg/graph"
	"github.com/uspp-raketa/vertexsim/pkg/similarity"
)

// Options configures one comparison run.
type Options struct {
	// Tolerance and MaxRounds tune the scoring iteration. Zero values
	// select the engine defaults.
	Tolerance float64 `json:"tolerance,omitempty"`
	MaxRounds int     `json:"max_rounds,omitempty"`

	// RowLabels and ColLabels attach display names to the nodes of the
	// row and column graphs, in node order. Optional; when present their
	// length must match the node count.
	RowLabels []string `json:"row_labels,omitempty"`
	ColLabels []string `json:"col_labels,omitempty"`

	// Refresh bypasses the report cache and recomputes.
	Refresh bool `json:"refresh,omitempty"`
}

// Report is the JSON-serializable outcome of one comparison. Scores keep
// full precision; consumers round for display.
type Report struct {
	ID        string      `json:"id"`
	RowIDs    []int       `json:"row_ids"`
	ColIDs    []int       `json:"col_ids"`
	RowLabels []string    `json:"row_labels,omitempty"`
	ColLabels []string    `json:"col_labels,omitempty"`
	Scores    [][]float64 `json:"scores"`
	BestMatch []int       `json:"best_match,omitempty"`
	Rounds    int         `json:"rounds"`
	Converged bool        `json:"converged"`
	Stats     Stats       `json:"stats"`
}

// Stats carries sizes and timing for one comparison.
type Stats struct {
	RowNodes int           `json:"row_nodes"`
	RowEdges int           `json:"row_edges"`
	ColNodes int           `json:"col_nodes"`
	ColEdges int           `json:"col_edges"`
	Elapsed  time.Duration `json:"elapsed_ns"`
	CacheHit bool          `json:"cache_hit"`
}

// Runner executes comparisons with report caching. It is stateless apart
// from the cache and logger, so one Runner may serve concurrent callers.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching; a nil logger
// falls back to the default logger.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Run scores the row graph against the column graph and assembles the
// report. Reports are cached by graph structure, labels and engine
// options; a cached report keeps its original ID and is marked as a cache
// hit in its stats.
func (r *Runner) Run(ctx context.Context, row, col *graph.Graph, opts Options) (*Report, error) {
	start := time.Now()

	if opts.RowLabels != nil && len(opts.RowLabels) != row.NodeCount() {
		return nil, fmt.Errorf("got %d row labels for %d nodes", len(opts.RowLabels), row.NodeCount())
	}
	if opts.ColLabels != nil && len(opts.ColLabels) != col.NodeCount() {
		return nil, fmt.Errorf("got %d column labels for %d nodes", len(opts.ColLabels), col.NodeCount())
	}

	key := reportKey(row, col, opts)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var rep Report
			if err := json.Unmarshal(data, &rep); err == nil {
				rep.Stats.CacheHit = true
				rep.Stats.Elapsed = time.Since(start)
				r.Logger.Debug("report served from cache", "id", rep.ID)
				return &rep, nil
			}
		}
	}

	res, err := similarity.Compute(row.AdjacencyMatrix(), col.AdjacencyMatrix(), similarity.Options{
		Tolerance: opts.Tolerance,
		MaxRounds: opts.MaxRounds,
	})
	if err != nil {
		return nil, fmt.Errorf("compute: %w", err)
	}

	rep := &Report{
		ID:        uuid.NewString(),
		RowIDs:    row.NodeIDs(),
		ColIDs:    col.NodeIDs(),
		RowLabels: opts.RowLabels,
		ColLabels: opts.ColLabels,
		Scores:    scoreRows(res),
		BestMatch: res.BestMatches(),
		Rounds:    res.Rounds,
		Converged: res.Converged,
		Stats: Stats{
			RowNodes: row.NodeCount(),
			RowEdges: row.EdgeCount(),
			ColNodes: col.NodeCount(),
			ColEdges: col.EdgeCount(),
			Elapsed:  time.Since(start),
		},
	}

	if data, err := json.Marshal(rep); err == nil {
		_ = r.Cache.Set(ctx, key, data, cache.TTLReport)
	}

	r.Logger.Info("scored graphs",
		"rows", rep.Stats.RowNodes,
		"cols", rep.Stats.ColNodes,
		"rounds", rep.Rounds,
		"converged", rep.Converged,
		"duration", rep.Stats.Elapsed)

	return rep, nil
}

// reportKey derives the cache key from everything that shapes the report:
// node identities, link structure, labels and engine options.
func reportKey(row, col *graph.Graph, opts Options) string {
	return cache.Key("report",
		row.NodeIDs(), row.Links(),
		col.NodeIDs(), col.Links(),
		opts.Tolerance, opts.MaxRounds,
		opts.RowLabels, opts.ColLabels,
	)
}

// scoreRows copies the score matrix into plain slices for serialization.
func scoreRows(res *similarity.Result) [][]float64 {
	rows := make([][]float64, res.M)
	for i := 0; i < res.M; i++ {
		row := make([]float64, res.N)
		for k := 0; k < res.N; k++ {
			row[k] = res.Scores.At(i, k)
		}
		rows[i] = row
	}
	return rows
}
