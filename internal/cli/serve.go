package cli

import (
	"github.com/spf13/cobra"

	"github.com/uspp-raketa/vertexsim/internal/server"
	"github.com/uspp-raketa/vertexsim/pkg/cache"
	"github.com/uspp-raketa/vertexsim/pkg/compare"
	"github.com/uspp-raketa/vertexsim/pkg/resultstore"
)

// newServeCmd creates the serve command.
func newServeCmd(opts *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the vertexsim HTTP API.

Endpoints:
  POST /api/v1/compare          score two adjacency literals
  GET  /api/v1/examples         list the example catalog
  GET  /api/v1/examples/{name}  one example pair's adjacency literals
  GET  /api/v1/results/{id}     a stored comparison result
  GET  /healthz                 liveness probe

With a [redis] address configured, reports are cached in Redis so
replicas share one cache; with a [mongo] URI configured, stored results
go to MongoDB instead of process memory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}

			// Shared Redis cache when configured, local cache otherwise.
			var c cache.Cache
			if cfg.Redis.Addr != "" && !opts.noCache {
				c, err = cache.NewRedisCache(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
				if err != nil {
					return err
				}
				logger.Info("using redis cache", "addr", cfg.Redis.Addr)
			} else {
				c = opts.newCache(cfg)
			}
			defer c.Close()

			var store resultstore.Store
			if cfg.Mongo.URI != "" {
				store, err = resultstore.NewMongoStore(ctx, cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.Collection)
				if err != nil {
					return err
				}
				logger.Info("using mongodb result store", "database", cfg.Mongo.Database)
			} else {
				store = resultstore.NewMemoryStore()
			}
			defer store.Close(ctx)

			runner := compare.NewRunner(c, logger)
			return server.New(runner, store, logger).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	return cmd
}
