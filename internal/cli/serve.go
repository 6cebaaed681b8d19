package cli

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/matzehuels/licensescan/internal/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the check operation over HTTP",
		Long: `Serve starts an HTTP server with a single check endpoint.

  POST /v1/check   {"repository": "https://github.com/pallets/flask"}
  GET  /healthz
  GET  /metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.loadConfig()

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
			server.NewMetrics(reg).Install()

			srv := server.New(c.newRunner(cfg), server.Options{
				Addr:     cfg.ServerAddr,
				Logger:   c.Logger,
				Gatherer: reg,
			})
			return srv.ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().String("addr", defaultServerAddr, "listen address")
	_ = c.config.BindPFlag(keyServerAddr, cmd.Flags().Lookup("addr"))

	return cmd
}
