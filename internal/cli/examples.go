package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uspp-raketa/vertexsim/pkg/catalog"
	"github.com/uspp-raketa/vertexsim/pkg/compare"
)

// newExamplesCmd creates the examples command.
func newExamplesCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "examples",
		Short: "List the example graph pairs",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(StyleTitle.Render("Example pairs"))
			printNewline()
			for _, p := range catalog.All() {
				fmt.Println("  " + StyleValue.Render(p.Name))
				printDetail("%s", p.Description)
			}
			printNewline()
			printNextStep("Preview one", "vertexsim examples show path-self")
			return nil
		},
	}

	cmd.AddCommand(newExamplesShowCmd(opts))
	return cmd
}

// newExamplesShowCmd creates the "examples show" subcommand, which scores
// one catalog pair and prints its table.
func newExamplesShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Score one example pair and print its similarity table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			p, err := catalog.Get(args[0])
			if err != nil {
				return err
			}
			row, col := p.Build()

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			runner := opts.newRunner(ctx, cfg)
			defer runner.Cache.Close()

			rep, err := runner.Run(ctx, row, col, compare.Options{
				Tolerance: cfg.Engine.Tolerance,
				MaxRounds: cfg.Engine.MaxRounds,
			})
			if err != nil {
				return err
			}

			fmt.Println(StyleTitle.Render(p.Name))
			printDetail("%s", p.Description)
			printNewline()
			fmt.Println(scoreTable(rep))
			printGraphStats("A", rep.Stats.RowNodes, rep.Stats.RowEdges)
			printGraphStats("B", rep.Stats.ColNodes, rep.Stats.ColEdges)
			printRunStats(rep.Rounds, rep.Converged, rep.Stats.CacheHit)
			return nil
		},
	}
}
