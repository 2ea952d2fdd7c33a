package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uspp-raketa/vertexsim/pkg/compare"
	"github.com/uspp-raketa/vertexsim/pkg/config"
	"github.com/uspp-raketa/vertexsim/pkg/graphio"
	"github.com/uspp-raketa/vertexsim/pkg/wordgraph"
)

// newWordsCmd creates the words command group for dictionary word-graph
// workflows.
func newWordsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Build and compare dictionary word graphs",
		Long: `Work with the OPTED dictionary word graph, where every word points at
the words its definitions use.

The dictionary is fetched page by page (one page per letter) through the
local cache, so the download happens once. The graph itself is built in
memory on every run; only the HTTP responses are cached.`,
	}

	cmd.AddCommand(newWordsBuildCmd(opts))
	cmd.AddCommand(newWordsNeighboursCmd(opts))
	cmd.AddCommand(newWordsCompareCmd(opts))
	return cmd
}

// buildDictionary fetches all dictionary pages and assembles the word
// graph, with a spinner for the slow first fetch.
func buildDictionary(ctx context.Context, opts *rootOptions, cfg config.Config, refresh bool) (*wordgraph.Dictionary, error) {
	logger := loggerFromContext(ctx)
	c := opts.newCache(cfg)
	defer c.Close()

	fetcher := wordgraph.NewFetcher(c, cfg.Dictionary.BaseURL)

	spinner := newSpinner(ctx, "Fetching dictionary pages...")
	spinner.Start()
	entries, err := fetcher.All(ctx, refresh)
	if err != nil {
		spinner.StopWithError("Dictionary fetch failed")
		return nil, err
	}
	spinner.Stop()

	prog := newProgress(logger)
	d := wordgraph.Build(entries)
	prog.done(fmt.Sprintf("Built word graph: %d words, %d edges", d.WordCount(), d.EdgeCount()))
	return d, nil
}

// newWordsBuildCmd creates the "words build" subcommand.
func newWordsBuildCmd(opts *rootOptions) *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Fetch the dictionary and build the word graph",
		Long: `Fetch all 26 dictionary pages, parse them and build the word graph.

The command exists to warm the page cache and sanity-check the source;
"words compare" and "words neighbours" run the same build themselves.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			d, err := buildDictionary(cmd.Context(), opts, cfg, refresh)
			if err != nil {
				return err
			}
			printSuccess("Word graph ready")
			printDetail("%d words · %d definition edges", d.WordCount(), d.EdgeCount())
			printNextStep("Compare two words", "vertexsim words compare liberty freedom")
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "refetch pages even when cached")
	return cmd
}

// newWordsNeighboursCmd creates the "words neighbours" subcommand.
func newWordsNeighboursCmd(opts *rootOptions) *cobra.Command {
	var (
		refresh     bool
		maxInDegree int
		output      string
	)

	cmd := &cobra.Command{
		Use:   "neighbours WORD",
		Short: "Extract a word's neighbourhood graph",
		Long: `Extract the directed subgraph around a word: the word itself, every
word its definitions use, every word whose definitions use it, and all
definition edges among them.

With -o the neighbourhood is written as a graph JSON document that
"vertexsim compare" accepts as input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if maxInDegree < 0 {
				maxInDegree = cfg.Dictionary.MaxInDegree
			}

			d, err := buildDictionary(cmd.Context(), opts, cfg, refresh)
			if err != nil {
				return err
			}

			g, labels, err := d.Neighbourhood(args[0], wordgraph.NeighbourhoodOptions{
				MaxInDegree: maxInDegree,
			})
			if err != nil {
				return err
			}

			printSuccess("Neighbourhood of %q", args[0])
			printGraphStats(args[0], g.NodeCount(), g.EdgeCount())
			for i, word := range labels {
				if i == 0 {
					continue // the centre word itself
				}
				printDetail("%s", word)
			}

			if output != "" {
				if err := graphio.ExportJSON(g, labels, output); err != nil {
					return err
				}
				printFile(output)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "refetch pages even when cached")
	cmd.Flags().IntVar(&maxInDegree, "max-in-degree", -1, "drop neighbours this common across the dictionary, 0 to keep all (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the neighbourhood as graph JSON")
	return cmd
}

// newWordsCompareCmd creates the "words compare" subcommand.
func newWordsCompareCmd(opts *rootOptions) *cobra.Command {
	var (
		refresh     bool
		maxInDegree int
	)

	cmd := &cobra.Command{
		Use:   "compare WORD1 WORD2",
		Short: "Score the neighbourhood graphs of two words",
		Example: `  vertexsim words compare liberty freedom
  vertexsim words compare sun moon --max-in-degree 500`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if maxInDegree < 0 {
				maxInDegree = cfg.Dictionary.MaxInDegree
			}

			d, err := buildDictionary(ctx, opts, cfg, refresh)
			if err != nil {
				return err
			}

			nopts := wordgraph.NeighbourhoodOptions{MaxInDegree: maxInDegree}
			row, rowLabels, err := d.Neighbourhood(args[0], nopts)
			if err != nil {
				return err
			}
			col, colLabels, err := d.Neighbourhood(args[1], nopts)
			if err != nil {
				return err
			}

			runner := opts.newRunner(ctx, cfg)
			defer runner.Cache.Close()

			rep, err := runner.Run(ctx, row, col, compare.Options{
				Tolerance: cfg.Engine.Tolerance,
				MaxRounds: cfg.Engine.MaxRounds,
				RowLabels: rowLabels,
				ColLabels: colLabels,
			})
			if err != nil {
				return err
			}

			printNewline()
			fmt.Println(scoreTable(rep))
			printGraphStats(args[0], rep.Stats.RowNodes, rep.Stats.RowEdges)
			printGraphStats(args[1], rep.Stats.ColNodes, rep.Stats.ColEdges)
			printRunStats(rep.Rounds, rep.Converged, rep.Stats.CacheHit)
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "refetch pages even when cached")
	cmd.Flags().IntVar(&maxInDegree, "max-in-degree", -1, "drop neighbours this common across the dictionary, 0 to keep all (default from config)")
	return cmd
}
