package cli

import (
	"github.com/spf13/cobra"

	"github.com/uspp-raketa/vertexsim/pkg/graphio"
	"github.com/uspp-raketa/vertexsim/pkg/source/neo4j"
)

// newFetchCmd creates the fetch command group for external graph sources.
func newFetchCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Materialize graphs from external sources",
	}

	cmd.AddCommand(newFetchNeo4jCmd(opts))
	return cmd
}

// newFetchNeo4jCmd creates the "fetch neo4j" subcommand.
func newFetchNeo4jCmd(opts *rootOptions) *cobra.Command {
	var (
		uri      string
		username string
		password string
		database string
		label    string
		property string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "neo4j VALUE",
		Short: "Pull a node neighbourhood out of a Neo4j database",
		Long: `Pull the node whose property equals VALUE, its direct neighbours and
every relationship among them out of a Neo4j database, and write the
result as a graph JSON document that "vertexsim compare" accepts.

Connection settings default to the [neo4j] section of the config file;
flags override it.`,
		Example: `  vertexsim fetch neo4j alice --label Person -o alice.json
  vertexsim compare alice.json bob.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if uri == "" {
				uri = cfg.Neo4j.URI
			}
			if username == "" {
				username = cfg.Neo4j.Username
			}
			if password == "" {
				password = cfg.Neo4j.Password
			}
			if database == "" {
				database = cfg.Neo4j.Database
			}

			src, err := neo4j.Connect(ctx, neo4j.Config{
				URI:      uri,
				Username: username,
				Password: password,
				Database: database,
			})
			if err != nil {
				return err
			}
			defer src.Close(ctx)

			prog := newProgress(logger)
			g, labels, err := src.Neighbourhood(ctx, args[0], neo4j.NeighbourhoodOptions{
				Label:    label,
				Property: property,
			})
			if err != nil {
				return err
			}
			prog.done("Fetched neighbourhood of " + args[0])

			if err := graphio.ExportJSON(g, labels, output); err != nil {
				return err
			}

			printSuccess("Neighbourhood of %q", args[0])
			printGraphStats(args[0], g.NodeCount(), g.EdgeCount())
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVar(&uri, "uri", "", "neo4j connection URI (default from config)")
	cmd.Flags().StringVar(&username, "username", "", "neo4j username (default from config)")
	cmd.Flags().StringVar(&password, "password", "", "neo4j password (default from config)")
	cmd.Flags().StringVar(&database, "database", "", "neo4j database name (default from config)")
	cmd.Flags().StringVar(&label, "label", "", "restrict matching to nodes with this label")
	cmd.Flags().StringVar(&property, "property", "name", "node property holding the lookup value")
	cmd.Flags().StringVarP(&output, "output", "o", "graph.json", "output file")

	return cmd
}
