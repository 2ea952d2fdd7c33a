package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/uspp-raketa/vertexsim/pkg/compare"
	"github.com/uspp-raketa/vertexsim/pkg/graph"
	"github.com/uspp-raketa/vertexsim/pkg/render/dot"
)

// newCompareCmd creates the compare command.
func newCompareCmd(opts *rootOptions) *cobra.Command {
	var (
		tolerance float64
		maxRounds int
		refresh   bool
		asJSON    bool
		format    string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "compare A B",
		Short: "Score two graphs and print the similarity table",
		Long: `Score two directed graphs node by node.

A and B are graph sources: a file path (.json document or edge-list text)
or "example:NAME" for one side of a catalog pair. The result is an
|A|×|B| table of similarity scores where each row's best match is
highlighted.

Edge-list files contain one edge per line:

	0 -> 1
	1 <-> 2
	3

"0 -> 1" is a directed edge, "1 <-> 2" a bidirectional one, and a bare
ID declares an isolated node.`,
		Example: `  vertexsim compare a.json b.json
  vertexsim compare example:path-self example:path-self
  vertexsim compare a.txt b.txt -o pair.svg
  vertexsim compare a.json b.json --format png -o pair.png`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if tolerance == 0 {
				tolerance = cfg.Engine.Tolerance
			}
			if maxRounds == 0 {
				maxRounds = cfg.Engine.MaxRounds
			}

			row, rowLabels, err := resolveGraph(args[0], sideRow)
			if err != nil {
				return err
			}
			col, colLabels, err := resolveGraph(args[1], sideCol)
			if err != nil {
				return err
			}

			runner := opts.newRunner(ctx, cfg)
			defer runner.Cache.Close()

			rep, err := runner.Run(ctx, row, col, compare.Options{
				Tolerance: tolerance,
				MaxRounds: maxRounds,
				RowLabels: rowLabels,
				ColLabels: colLabels,
				Refresh:   refresh,
			})
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(rep)
			}

			if output != "" {
				if err := writePairArtifact(row, col, rep, args[0], args[1], format, output); err != nil {
					return err
				}
				printFile(output)
			}

			if len(rep.Scores) == 0 {
				printInfo("Nothing to compare: one of the graphs is empty")
				return nil
			}

			printNewline()
			fmt.Println(scoreTable(rep))
			printGraphStats("A", rep.Stats.RowNodes, rep.Stats.RowEdges)
			printGraphStats("B", rep.Stats.ColNodes, rep.Stats.ColEdges)
			printRunStats(rep.Rounds, rep.Converged, rep.Stats.CacheHit)
			if !rep.Converged {
				logger.Warn("iteration stopped at the round cap", "rounds", rep.Rounds)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&tolerance, "tolerance", 0, "convergence tolerance (default from config)")
	cmd.Flags().IntVar(&maxRounds, "max-rounds", 0, "iteration round cap (default from config)")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even when a cached report exists")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full report as JSON")
	cmd.Flags().StringVarP(&format, "format", "f", "", "artifact format: dot, svg, png (inferred from -o when empty)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the rendered pair to this file")

	return cmd
}

// writePairArtifact renders the compared pair to DOT, SVG or PNG and
// writes it to path. An empty format is inferred from the path extension.
func writePairArtifact(row, col *graph.Graph, rep *compare.Report, rowName, colName, format, path string) error {
	if format == "" {
		switch {
		case strings.HasSuffix(path, ".svg"):
			format = "svg"
		case strings.HasSuffix(path, ".png"):
			format = "png"
		default:
			format = "dot"
		}
	}

	src := dot.Pair(row, col, dot.Options{
		RowName:   rowName,
		ColName:   colName,
		RowLabels: rep.RowLabels,
		ColLabels: rep.ColLabels,
		BestMatch: rep.BestMatch,
	})

	var data []byte
	var err error
	switch format {
	case "dot":
		data = []byte(src)
	case "svg":
		data, err = dot.RenderSVG(src)
	case "png":
		data, err = dot.RenderPNG(src)
	default:
		return fmt.Errorf("unknown format %q (want dot, svg or png)", format)
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}

	return os.WriteFile(path, data, 0o644)
}
